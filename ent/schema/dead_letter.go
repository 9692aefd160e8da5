package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DeadLetter stores messages that exhausted their retry budget or could not
// be parsed at all. Rows await operator inspection and replay; they are never
// deleted automatically.
type DeadLetter struct {
	ent.Schema
}

// Mixin of the DeadLetter.
func (DeadLetter) Mixin() []ent.Mixin {
	return []ent.Mixin{
		AuditMixin{},
	}
}

// Fields of the DeadLetter.
func (DeadLetter) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("topic").
			NotEmpty().
			Immutable(),
		field.String("event_id").
			Optional().
			Immutable(), // empty when the envelope itself was unparseable
		field.Bytes("payload").
			Immutable(), // original message, byte-for-byte
		field.String("failure_reason").
			NotEmpty(),
		field.Int("attempts").
			NonNegative(),
		field.Time("replayed_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the DeadLetter.
func (DeadLetter) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("topic"),
		index.Fields("event_id"),
		index.Fields("created_at"),
	}
}
