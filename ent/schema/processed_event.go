package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ProcessedEvent is the idempotency ledger: one row per (consumer, event)
// that has had its business effect applied. Rows are append-only and may be
// pruned after the retention window; effects stay idempotent at the data
// layer, so a duplicate arriving after pruning is merely reprocessed.
type ProcessedEvent struct {
	ent.Schema
}

// Fields of the ProcessedEvent.
func (ProcessedEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("consumer_id").
			NotEmpty().
			Immutable(),
		field.String("event_id").
			NotEmpty().
			Immutable(),
		field.Time("processed_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the ProcessedEvent.
func (ProcessedEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("consumer_id", "event_id").Unique(),
		index.Fields("processed_at"),
	}
}
