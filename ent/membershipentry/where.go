// Code generated by ent, DO NOT EDIT.

package membershipentry

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"workgrid.io/workgrid/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.MembershipEntry {
	return predicate.MembershipEntry(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.MembershipEntry {
	return predicate.MembershipEntry(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.MembershipEntry {
	return predicate.MembershipEntry(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.MembershipEntry {
	return predicate.MembershipEntry(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.MembershipEntry {
	return predicate.MembershipEntry(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.MembershipEntry {
	return predicate.MembershipEntry(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.MembershipEntry {
	return predicate.MembershipEntry(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.MembershipEntry {
	return predicate.MembershipEntry(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.MembershipEntry {
	return predicate.MembershipEntry(sql.FieldLTE(FieldID, id))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v string) predicate.MembershipEntry {
	return predicate.MembershipEntry(sql.FieldEQ(FieldTenantID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.MembershipEntry {
	return predicate.MembershipEntry(sql.FieldEQ(FieldUserID, v))
}

// Role applies equality check predicate on the "role" field. It's identical to RoleEQ.
func Role(v string) predicate.MembershipEntry {
	return predicate.MembershipEntry(sql.FieldEQ(FieldRole, v))
}

// CachedAt applies equality check predicate on the "cached_at" field. It's identical to CachedAtEQ.
func CachedAt(v time.Time) predicate.MembershipEntry {
	return predicate.MembershipEntry(sql.FieldEQ(FieldCachedAt, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v string) predicate.MembershipEntry {
	return predicate.MembershipEntry(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v string) predicate.MembershipEntry {
	return predicate.MembershipEntry(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...string) predicate.MembershipEntry {
	return predicate.MembershipEntry(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...string) predicate.MembershipEntry {
	return predicate.MembershipEntry(sql.FieldNotIn(FieldTenantID, vs...))
}

// TenantIDGT applies the GT predicate on the "tenant_id" field.
func TenantIDGT(v string) predicate.MembershipEntry {
	return predicate.MembershipEntry(sql.FieldGT(FieldTenantID, v))
}

// TenantIDGTE applies the GTE predicate on the "tenant_id" field.
func TenantIDGTE(v string) predicate.MembershipEntry {
	return predicate.MembershipEntry(sql.FieldGTE(FieldTenantID, v))
}

// TenantIDLT applies the LT predicate on the "tenant_id" field.
func TenantIDLT(v string) predicate.MembershipEntry {
	return predicate.MembershipEntry(sql.FieldLT(FieldTenantID, v))
}

// TenantIDLTE applies the LTE predicate on the "tenant_id" field.
func TenantIDLTE(v string) predicate.MembershipEntry {
	return predicate.MembershipEntry(sql.FieldLTE(FieldTenantID, v))
}

// TenantIDContains applies the Contains predicate on the "tenant_id" field.
func TenantIDContains(v string) predicate.MembershipEntry {
	return predicate.MembershipEntry(sql.FieldContains(FieldTenantID, v))
}

// TenantIDHasPrefix applies the HasPrefix predicate on the "tenant_id" field.
func TenantIDHasPrefix(v string) predicate.MembershipEntry {
	return predicate.MembershipEntry(sql.FieldHasPrefix(FieldTenantID, v))
}

// TenantIDHasSuffix applies the HasSuffix predicate on the "tenant_id" field.
func TenantIDHasSuffix(v string) predicate.MembershipEntry {
	return predicate.MembershipEntry(sql.FieldHasSuffix(FieldTenantID, v))
}

// TenantIDEqualFold applies the EqualFold predicate on the "tenant_id" field.
func TenantIDEqualFold(v string) predicate.MembershipEntry {
	return predicate.MembershipEntry(sql.FieldEqualFold(FieldTenantID, v))
}

// TenantIDContainsFold applies the ContainsFold predicate on the "tenant_id" field.
func TenantIDContainsFold(v string) predicate.MembershipEntry {
	return predicate.MembershipEntry(sql.FieldContainsFold(FieldTenantID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.MembershipEntry {
	return predicate.MembershipEntry(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.MembershipEntry {
	return predicate.MembershipEntry(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.MembershipEntry {
	return predicate.MembershipEntry(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.MembershipEntry {
	return predicate.MembershipEntry(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.MembershipEntry {
	return predicate.MembershipEntry(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.MembershipEntry {
	return predicate.MembershipEntry(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.MembershipEntry {
	return predicate.MembershipEntry(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.MembershipEntry {
	return predicate.MembershipEntry(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.MembershipEntry {
	return predicate.MembershipEntry(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.MembershipEntry {
	return predicate.MembershipEntry(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.MembershipEntry {
	return predicate.MembershipEntry(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.MembershipEntry {
	return predicate.MembershipEntry(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.MembershipEntry {
	return predicate.MembershipEntry(sql.FieldContainsFold(FieldUserID, v))
}

// RoleEQ applies the EQ predicate on the "role" field.
func RoleEQ(v string) predicate.MembershipEntry {
	return predicate.MembershipEntry(sql.FieldEQ(FieldRole, v))
}

// RoleNEQ applies the NEQ predicate on the "role" field.
func RoleNEQ(v string) predicate.MembershipEntry {
	return predicate.MembershipEntry(sql.FieldNEQ(FieldRole, v))
}

// RoleIn applies the In predicate on the "role" field.
func RoleIn(vs ...string) predicate.MembershipEntry {
	return predicate.MembershipEntry(sql.FieldIn(FieldRole, vs...))
}

// RoleNotIn applies the NotIn predicate on the "role" field.
func RoleNotIn(vs ...string) predicate.MembershipEntry {
	return predicate.MembershipEntry(sql.FieldNotIn(FieldRole, vs...))
}

// RoleGT applies the GT predicate on the "role" field.
func RoleGT(v string) predicate.MembershipEntry {
	return predicate.MembershipEntry(sql.FieldGT(FieldRole, v))
}

// RoleGTE applies the GTE predicate on the "role" field.
func RoleGTE(v string) predicate.MembershipEntry {
	return predicate.MembershipEntry(sql.FieldGTE(FieldRole, v))
}

// RoleLT applies the LT predicate on the "role" field.
func RoleLT(v string) predicate.MembershipEntry {
	return predicate.MembershipEntry(sql.FieldLT(FieldRole, v))
}

// RoleLTE applies the LTE predicate on the "role" field.
func RoleLTE(v string) predicate.MembershipEntry {
	return predicate.MembershipEntry(sql.FieldLTE(FieldRole, v))
}

// RoleContains applies the Contains predicate on the "role" field.
func RoleContains(v string) predicate.MembershipEntry {
	return predicate.MembershipEntry(sql.FieldContains(FieldRole, v))
}

// RoleHasPrefix applies the HasPrefix predicate on the "role" field.
func RoleHasPrefix(v string) predicate.MembershipEntry {
	return predicate.MembershipEntry(sql.FieldHasPrefix(FieldRole, v))
}

// RoleHasSuffix applies the HasSuffix predicate on the "role" field.
func RoleHasSuffix(v string) predicate.MembershipEntry {
	return predicate.MembershipEntry(sql.FieldHasSuffix(FieldRole, v))
}

// RoleEqualFold applies the EqualFold predicate on the "role" field.
func RoleEqualFold(v string) predicate.MembershipEntry {
	return predicate.MembershipEntry(sql.FieldEqualFold(FieldRole, v))
}

// RoleContainsFold applies the ContainsFold predicate on the "role" field.
func RoleContainsFold(v string) predicate.MembershipEntry {
	return predicate.MembershipEntry(sql.FieldContainsFold(FieldRole, v))
}

// CachedAtEQ applies the EQ predicate on the "cached_at" field.
func CachedAtEQ(v time.Time) predicate.MembershipEntry {
	return predicate.MembershipEntry(sql.FieldEQ(FieldCachedAt, v))
}

// CachedAtNEQ applies the NEQ predicate on the "cached_at" field.
func CachedAtNEQ(v time.Time) predicate.MembershipEntry {
	return predicate.MembershipEntry(sql.FieldNEQ(FieldCachedAt, v))
}

// CachedAtIn applies the In predicate on the "cached_at" field.
func CachedAtIn(vs ...time.Time) predicate.MembershipEntry {
	return predicate.MembershipEntry(sql.FieldIn(FieldCachedAt, vs...))
}

// CachedAtNotIn applies the NotIn predicate on the "cached_at" field.
func CachedAtNotIn(vs ...time.Time) predicate.MembershipEntry {
	return predicate.MembershipEntry(sql.FieldNotIn(FieldCachedAt, vs...))
}

// CachedAtGT applies the GT predicate on the "cached_at" field.
func CachedAtGT(v time.Time) predicate.MembershipEntry {
	return predicate.MembershipEntry(sql.FieldGT(FieldCachedAt, v))
}

// CachedAtGTE applies the GTE predicate on the "cached_at" field.
func CachedAtGTE(v time.Time) predicate.MembershipEntry {
	return predicate.MembershipEntry(sql.FieldGTE(FieldCachedAt, v))
}

// CachedAtLT applies the LT predicate on the "cached_at" field.
func CachedAtLT(v time.Time) predicate.MembershipEntry {
	return predicate.MembershipEntry(sql.FieldLT(FieldCachedAt, v))
}

// CachedAtLTE applies the LTE predicate on the "cached_at" field.
func CachedAtLTE(v time.Time) predicate.MembershipEntry {
	return predicate.MembershipEntry(sql.FieldLTE(FieldCachedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MembershipEntry) predicate.MembershipEntry {
	return predicate.MembershipEntry(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MembershipEntry) predicate.MembershipEntry {
	return predicate.MembershipEntry(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MembershipEntry) predicate.MembershipEntry {
	return predicate.MembershipEntry(sql.NotPredicates(p))
}
