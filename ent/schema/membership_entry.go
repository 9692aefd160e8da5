package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MembershipEntry is the denormalized fail-closed projection of organization
// membership owned by the organization service. Entries are created and
// removed only by event consumption, never by synchronous reads.
type MembershipEntry struct {
	ent.Schema
}

// Fields of the MembershipEntry.
func (MembershipEntry) Fields() []ent.Field {
	return []ent.Field{
		field.String("tenant_id").
			NotEmpty().
			Immutable(),
		field.String("user_id").
			NotEmpty().
			Immutable(),
		field.String("role").
			NotEmpty(),
		field.Time("cached_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the MembershipEntry.
func (MembershipEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "user_id").Unique(),
		index.Fields("cached_at"),
	}
}
