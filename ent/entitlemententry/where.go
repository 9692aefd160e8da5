// Code generated by ent, DO NOT EDIT.

package entitlemententry

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"workgrid.io/workgrid/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.EntitlementEntry {
	return predicate.EntitlementEntry(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.EntitlementEntry {
	return predicate.EntitlementEntry(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.EntitlementEntry {
	return predicate.EntitlementEntry(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.EntitlementEntry {
	return predicate.EntitlementEntry(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.EntitlementEntry {
	return predicate.EntitlementEntry(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.EntitlementEntry {
	return predicate.EntitlementEntry(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.EntitlementEntry {
	return predicate.EntitlementEntry(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.EntitlementEntry {
	return predicate.EntitlementEntry(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.EntitlementEntry {
	return predicate.EntitlementEntry(sql.FieldLTE(FieldID, id))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v string) predicate.EntitlementEntry {
	return predicate.EntitlementEntry(sql.FieldEQ(FieldTenantID, v))
}

// MaxProjects applies equality check predicate on the "max_projects" field. It's identical to MaxProjectsEQ.
func MaxProjects(v int) predicate.EntitlementEntry {
	return predicate.EntitlementEntry(sql.FieldEQ(FieldMaxProjects, v))
}

// MaxMembers applies equality check predicate on the "max_members" field. It's identical to MaxMembersEQ.
func MaxMembers(v int) predicate.EntitlementEntry {
	return predicate.EntitlementEntry(sql.FieldEQ(FieldMaxMembers, v))
}

// MaxStorageMB applies equality check predicate on the "max_storage_mb" field. It's identical to MaxStorageMBEQ.
func MaxStorageMB(v int) predicate.EntitlementEntry {
	return predicate.EntitlementEntry(sql.FieldEQ(FieldMaxStorageMB, v))
}

// CachedAt applies equality check predicate on the "cached_at" field. It's identical to CachedAtEQ.
func CachedAt(v time.Time) predicate.EntitlementEntry {
	return predicate.EntitlementEntry(sql.FieldEQ(FieldCachedAt, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v string) predicate.EntitlementEntry {
	return predicate.EntitlementEntry(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v string) predicate.EntitlementEntry {
	return predicate.EntitlementEntry(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...string) predicate.EntitlementEntry {
	return predicate.EntitlementEntry(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...string) predicate.EntitlementEntry {
	return predicate.EntitlementEntry(sql.FieldNotIn(FieldTenantID, vs...))
}

// TenantIDGT applies the GT predicate on the "tenant_id" field.
func TenantIDGT(v string) predicate.EntitlementEntry {
	return predicate.EntitlementEntry(sql.FieldGT(FieldTenantID, v))
}

// TenantIDGTE applies the GTE predicate on the "tenant_id" field.
func TenantIDGTE(v string) predicate.EntitlementEntry {
	return predicate.EntitlementEntry(sql.FieldGTE(FieldTenantID, v))
}

// TenantIDLT applies the LT predicate on the "tenant_id" field.
func TenantIDLT(v string) predicate.EntitlementEntry {
	return predicate.EntitlementEntry(sql.FieldLT(FieldTenantID, v))
}

// TenantIDLTE applies the LTE predicate on the "tenant_id" field.
func TenantIDLTE(v string) predicate.EntitlementEntry {
	return predicate.EntitlementEntry(sql.FieldLTE(FieldTenantID, v))
}

// TenantIDContains applies the Contains predicate on the "tenant_id" field.
func TenantIDContains(v string) predicate.EntitlementEntry {
	return predicate.EntitlementEntry(sql.FieldContains(FieldTenantID, v))
}

// TenantIDHasPrefix applies the HasPrefix predicate on the "tenant_id" field.
func TenantIDHasPrefix(v string) predicate.EntitlementEntry {
	return predicate.EntitlementEntry(sql.FieldHasPrefix(FieldTenantID, v))
}

// TenantIDHasSuffix applies the HasSuffix predicate on the "tenant_id" field.
func TenantIDHasSuffix(v string) predicate.EntitlementEntry {
	return predicate.EntitlementEntry(sql.FieldHasSuffix(FieldTenantID, v))
}

// TenantIDEqualFold applies the EqualFold predicate on the "tenant_id" field.
func TenantIDEqualFold(v string) predicate.EntitlementEntry {
	return predicate.EntitlementEntry(sql.FieldEqualFold(FieldTenantID, v))
}

// TenantIDContainsFold applies the ContainsFold predicate on the "tenant_id" field.
func TenantIDContainsFold(v string) predicate.EntitlementEntry {
	return predicate.EntitlementEntry(sql.FieldContainsFold(FieldTenantID, v))
}

// MaxProjectsEQ applies the EQ predicate on the "max_projects" field.
func MaxProjectsEQ(v int) predicate.EntitlementEntry {
	return predicate.EntitlementEntry(sql.FieldEQ(FieldMaxProjects, v))
}

// MaxProjectsNEQ applies the NEQ predicate on the "max_projects" field.
func MaxProjectsNEQ(v int) predicate.EntitlementEntry {
	return predicate.EntitlementEntry(sql.FieldNEQ(FieldMaxProjects, v))
}

// MaxProjectsIn applies the In predicate on the "max_projects" field.
func MaxProjectsIn(vs ...int) predicate.EntitlementEntry {
	return predicate.EntitlementEntry(sql.FieldIn(FieldMaxProjects, vs...))
}

// MaxProjectsNotIn applies the NotIn predicate on the "max_projects" field.
func MaxProjectsNotIn(vs ...int) predicate.EntitlementEntry {
	return predicate.EntitlementEntry(sql.FieldNotIn(FieldMaxProjects, vs...))
}

// MaxProjectsGT applies the GT predicate on the "max_projects" field.
func MaxProjectsGT(v int) predicate.EntitlementEntry {
	return predicate.EntitlementEntry(sql.FieldGT(FieldMaxProjects, v))
}

// MaxProjectsGTE applies the GTE predicate on the "max_projects" field.
func MaxProjectsGTE(v int) predicate.EntitlementEntry {
	return predicate.EntitlementEntry(sql.FieldGTE(FieldMaxProjects, v))
}

// MaxProjectsLT applies the LT predicate on the "max_projects" field.
func MaxProjectsLT(v int) predicate.EntitlementEntry {
	return predicate.EntitlementEntry(sql.FieldLT(FieldMaxProjects, v))
}

// MaxProjectsLTE applies the LTE predicate on the "max_projects" field.
func MaxProjectsLTE(v int) predicate.EntitlementEntry {
	return predicate.EntitlementEntry(sql.FieldLTE(FieldMaxProjects, v))
}

// MaxMembersEQ applies the EQ predicate on the "max_members" field.
func MaxMembersEQ(v int) predicate.EntitlementEntry {
	return predicate.EntitlementEntry(sql.FieldEQ(FieldMaxMembers, v))
}

// MaxMembersNEQ applies the NEQ predicate on the "max_members" field.
func MaxMembersNEQ(v int) predicate.EntitlementEntry {
	return predicate.EntitlementEntry(sql.FieldNEQ(FieldMaxMembers, v))
}

// MaxMembersIn applies the In predicate on the "max_members" field.
func MaxMembersIn(vs ...int) predicate.EntitlementEntry {
	return predicate.EntitlementEntry(sql.FieldIn(FieldMaxMembers, vs...))
}

// MaxMembersNotIn applies the NotIn predicate on the "max_members" field.
func MaxMembersNotIn(vs ...int) predicate.EntitlementEntry {
	return predicate.EntitlementEntry(sql.FieldNotIn(FieldMaxMembers, vs...))
}

// MaxMembersGT applies the GT predicate on the "max_members" field.
func MaxMembersGT(v int) predicate.EntitlementEntry {
	return predicate.EntitlementEntry(sql.FieldGT(FieldMaxMembers, v))
}

// MaxMembersGTE applies the GTE predicate on the "max_members" field.
func MaxMembersGTE(v int) predicate.EntitlementEntry {
	return predicate.EntitlementEntry(sql.FieldGTE(FieldMaxMembers, v))
}

// MaxMembersLT applies the LT predicate on the "max_members" field.
func MaxMembersLT(v int) predicate.EntitlementEntry {
	return predicate.EntitlementEntry(sql.FieldLT(FieldMaxMembers, v))
}

// MaxMembersLTE applies the LTE predicate on the "max_members" field.
func MaxMembersLTE(v int) predicate.EntitlementEntry {
	return predicate.EntitlementEntry(sql.FieldLTE(FieldMaxMembers, v))
}

// MaxStorageMBEQ applies the EQ predicate on the "max_storage_mb" field.
func MaxStorageMBEQ(v int) predicate.EntitlementEntry {
	return predicate.EntitlementEntry(sql.FieldEQ(FieldMaxStorageMB, v))
}

// MaxStorageMBNEQ applies the NEQ predicate on the "max_storage_mb" field.
func MaxStorageMBNEQ(v int) predicate.EntitlementEntry {
	return predicate.EntitlementEntry(sql.FieldNEQ(FieldMaxStorageMB, v))
}

// MaxStorageMBIn applies the In predicate on the "max_storage_mb" field.
func MaxStorageMBIn(vs ...int) predicate.EntitlementEntry {
	return predicate.EntitlementEntry(sql.FieldIn(FieldMaxStorageMB, vs...))
}

// MaxStorageMBNotIn applies the NotIn predicate on the "max_storage_mb" field.
func MaxStorageMBNotIn(vs ...int) predicate.EntitlementEntry {
	return predicate.EntitlementEntry(sql.FieldNotIn(FieldMaxStorageMB, vs...))
}

// MaxStorageMBGT applies the GT predicate on the "max_storage_mb" field.
func MaxStorageMBGT(v int) predicate.EntitlementEntry {
	return predicate.EntitlementEntry(sql.FieldGT(FieldMaxStorageMB, v))
}

// MaxStorageMBGTE applies the GTE predicate on the "max_storage_mb" field.
func MaxStorageMBGTE(v int) predicate.EntitlementEntry {
	return predicate.EntitlementEntry(sql.FieldGTE(FieldMaxStorageMB, v))
}

// MaxStorageMBLT applies the LT predicate on the "max_storage_mb" field.
func MaxStorageMBLT(v int) predicate.EntitlementEntry {
	return predicate.EntitlementEntry(sql.FieldLT(FieldMaxStorageMB, v))
}

// MaxStorageMBLTE applies the LTE predicate on the "max_storage_mb" field.
func MaxStorageMBLTE(v int) predicate.EntitlementEntry {
	return predicate.EntitlementEntry(sql.FieldLTE(FieldMaxStorageMB, v))
}

// FeaturesIsNil applies the IsNil predicate on the "features" field.
func FeaturesIsNil() predicate.EntitlementEntry {
	return predicate.EntitlementEntry(sql.FieldIsNull(FieldFeatures))
}

// FeaturesNotNil applies the NotNil predicate on the "features" field.
func FeaturesNotNil() predicate.EntitlementEntry {
	return predicate.EntitlementEntry(sql.FieldNotNull(FieldFeatures))
}

// CachedAtEQ applies the EQ predicate on the "cached_at" field.
func CachedAtEQ(v time.Time) predicate.EntitlementEntry {
	return predicate.EntitlementEntry(sql.FieldEQ(FieldCachedAt, v))
}

// CachedAtNEQ applies the NEQ predicate on the "cached_at" field.
func CachedAtNEQ(v time.Time) predicate.EntitlementEntry {
	return predicate.EntitlementEntry(sql.FieldNEQ(FieldCachedAt, v))
}

// CachedAtIn applies the In predicate on the "cached_at" field.
func CachedAtIn(vs ...time.Time) predicate.EntitlementEntry {
	return predicate.EntitlementEntry(sql.FieldIn(FieldCachedAt, vs...))
}

// CachedAtNotIn applies the NotIn predicate on the "cached_at" field.
func CachedAtNotIn(vs ...time.Time) predicate.EntitlementEntry {
	return predicate.EntitlementEntry(sql.FieldNotIn(FieldCachedAt, vs...))
}

// CachedAtGT applies the GT predicate on the "cached_at" field.
func CachedAtGT(v time.Time) predicate.EntitlementEntry {
	return predicate.EntitlementEntry(sql.FieldGT(FieldCachedAt, v))
}

// CachedAtGTE applies the GTE predicate on the "cached_at" field.
func CachedAtGTE(v time.Time) predicate.EntitlementEntry {
	return predicate.EntitlementEntry(sql.FieldGTE(FieldCachedAt, v))
}

// CachedAtLT applies the LT predicate on the "cached_at" field.
func CachedAtLT(v time.Time) predicate.EntitlementEntry {
	return predicate.EntitlementEntry(sql.FieldLT(FieldCachedAt, v))
}

// CachedAtLTE applies the LTE predicate on the "cached_at" field.
func CachedAtLTE(v time.Time) predicate.EntitlementEntry {
	return predicate.EntitlementEntry(sql.FieldLTE(FieldCachedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.EntitlementEntry) predicate.EntitlementEntry {
	return predicate.EntitlementEntry(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.EntitlementEntry) predicate.EntitlementEntry {
	return predicate.EntitlementEntry(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.EntitlementEntry) predicate.EntitlementEntry {
	return predicate.EntitlementEntry(sql.NotPredicates(p))
}
