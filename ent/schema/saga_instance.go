package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SagaInstance is the durable header row of an orchestrated multi-service
// workflow. Its id doubles as the correlation id on every sub-event the
// coordinator publishes. Terminal states (COMPLETED, FAILED) are immutable.
type SagaInstance struct {
	ent.Schema
}

// Mixin of the SagaInstance.
func (SagaInstance) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the SagaInstance.
func (SagaInstance) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("saga_type").
			NotEmpty().
			Immutable(), // e.g. "tenant_deletion"
		field.String("tenant_id").
			NotEmpty().
			Immutable(),
		field.Enum("status").
			Values("PENDING", "IN_PROGRESS", "COMPLETED", "COMPENSATING", "FAILED").
			Default("PENDING"),
		field.String("failure_reason").
			Optional(),
		field.Time("finished_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the SagaInstance.
func (SagaInstance) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id"),
		index.Fields("saga_type", "status"),
	}
}
