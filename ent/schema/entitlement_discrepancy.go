package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// EntitlementDiscrepancy records a fail-open decision taken on a cache miss:
// the operation proceeded under default limits and must be reconciled once
// the authoritative entitlements arrive.
type EntitlementDiscrepancy struct {
	ent.Schema
}

// Mixin of the EntitlementDiscrepancy.
func (EntitlementDiscrepancy) Mixin() []ent.Mixin {
	return []ent.Mixin{
		AuditMixin{},
	}
}

// Fields of the EntitlementDiscrepancy.
func (EntitlementDiscrepancy) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			NotEmpty().
			Immutable(),
		field.String("operation").
			NotEmpty().
			Immutable(),
		field.Bool("reconciled").
			Default(false),
	}
}

// Indexes of the EntitlementDiscrepancy.
func (EntitlementDiscrepancy) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id"),
		index.Fields("reconciled"),
	}
}
