package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// OutboxEvent is the transactional outbox: events this service publishes are
// inserted in the same transaction as the local state change, then drained to
// the bus by a background worker. Guarantees the "commit first, publish
// after" collaborator rule without dual writes.
type OutboxEvent struct {
	ent.Schema
}

// Mixin of the OutboxEvent.
func (OutboxEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{
		AuditMixin{},
	}
}

// Fields of the OutboxEvent.
func (OutboxEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("topic").
			NotEmpty().
			Immutable(),
		field.String("partition_key").
			NotEmpty().
			Immutable(),
		field.Bytes("payload").
			Immutable(), // serialized envelope
		field.Time("published_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the OutboxEvent.
func (OutboxEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("published_at"),
		index.Fields("created_at"),
	}
}
