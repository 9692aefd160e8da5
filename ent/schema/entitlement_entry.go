package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// EntitlementEntry is the denormalized fail-open projection of plan limits
// owned by the billing service, keyed by tenant only.
type EntitlementEntry struct {
	ent.Schema
}

// Fields of the EntitlementEntry.
func (EntitlementEntry) Fields() []ent.Field {
	return []ent.Field{
		field.String("tenant_id").
			Unique().
			NotEmpty().
			Immutable(),
		field.Int("max_projects").
			NonNegative(),
		field.Int("max_members").
			NonNegative(),
		field.Int("max_storage_mb").
			NonNegative(),
		field.JSON("features", []string{}).
			Optional(),
		field.Time("cached_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the EntitlementEntry.
func (EntitlementEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("cached_at"),
	}
}
