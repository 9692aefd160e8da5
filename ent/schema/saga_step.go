package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SagaStep is one ordered step of a SagaInstance. Compensation walks
// COMPLETED steps strictly in reverse seq order.
type SagaStep struct {
	ent.Schema
}

// Mixin of the SagaStep.
func (SagaStep) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the SagaStep.
func (SagaStep) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("saga_id").
			NotEmpty().
			Immutable(),
		field.Int("seq").
			NonNegative().
			Immutable(),
		field.String("name").
			NotEmpty().
			Immutable(), // e.g. "archive_projects"
		field.String("participant").
			NotEmpty().
			Immutable(), // owning service, e.g. "project-service"
		field.Enum("status").
			Values("PENDING", "COMPLETED", "COMPENSATED", "FAILED").
			Default("PENDING"),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Bytes("compensation_payload").
			Optional(), // state the compensation needs to undo the step
	}
}

// Indexes of the SagaStep.
func (SagaStep) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("saga_id", "seq").Unique(),
		index.Fields("saga_id", "status"),
	}
}
