// Code generated by ent, DO NOT EDIT.

package entitlementdiscrepancy

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"workgrid.io/workgrid/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.EntitlementDiscrepancy {
	return predicate.EntitlementDiscrepancy(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.EntitlementDiscrepancy {
	return predicate.EntitlementDiscrepancy(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.EntitlementDiscrepancy {
	return predicate.EntitlementDiscrepancy(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.EntitlementDiscrepancy {
	return predicate.EntitlementDiscrepancy(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.EntitlementDiscrepancy {
	return predicate.EntitlementDiscrepancy(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.EntitlementDiscrepancy {
	return predicate.EntitlementDiscrepancy(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.EntitlementDiscrepancy {
	return predicate.EntitlementDiscrepancy(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.EntitlementDiscrepancy {
	return predicate.EntitlementDiscrepancy(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.EntitlementDiscrepancy {
	return predicate.EntitlementDiscrepancy(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.EntitlementDiscrepancy {
	return predicate.EntitlementDiscrepancy(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.EntitlementDiscrepancy {
	return predicate.EntitlementDiscrepancy(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.EntitlementDiscrepancy {
	return predicate.EntitlementDiscrepancy(sql.FieldEQ(FieldCreatedAt, v))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v string) predicate.EntitlementDiscrepancy {
	return predicate.EntitlementDiscrepancy(sql.FieldEQ(FieldTenantID, v))
}

// Operation applies equality check predicate on the "operation" field. It's identical to OperationEQ.
func Operation(v string) predicate.EntitlementDiscrepancy {
	return predicate.EntitlementDiscrepancy(sql.FieldEQ(FieldOperation, v))
}

// Reconciled applies equality check predicate on the "reconciled" field. It's identical to ReconciledEQ.
func Reconciled(v bool) predicate.EntitlementDiscrepancy {
	return predicate.EntitlementDiscrepancy(sql.FieldEQ(FieldReconciled, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.EntitlementDiscrepancy {
	return predicate.EntitlementDiscrepancy(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.EntitlementDiscrepancy {
	return predicate.EntitlementDiscrepancy(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.EntitlementDiscrepancy {
	return predicate.EntitlementDiscrepancy(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.EntitlementDiscrepancy {
	return predicate.EntitlementDiscrepancy(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.EntitlementDiscrepancy {
	return predicate.EntitlementDiscrepancy(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.EntitlementDiscrepancy {
	return predicate.EntitlementDiscrepancy(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.EntitlementDiscrepancy {
	return predicate.EntitlementDiscrepancy(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.EntitlementDiscrepancy {
	return predicate.EntitlementDiscrepancy(sql.FieldLTE(FieldCreatedAt, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v string) predicate.EntitlementDiscrepancy {
	return predicate.EntitlementDiscrepancy(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v string) predicate.EntitlementDiscrepancy {
	return predicate.EntitlementDiscrepancy(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...string) predicate.EntitlementDiscrepancy {
	return predicate.EntitlementDiscrepancy(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...string) predicate.EntitlementDiscrepancy {
	return predicate.EntitlementDiscrepancy(sql.FieldNotIn(FieldTenantID, vs...))
}

// TenantIDGT applies the GT predicate on the "tenant_id" field.
func TenantIDGT(v string) predicate.EntitlementDiscrepancy {
	return predicate.EntitlementDiscrepancy(sql.FieldGT(FieldTenantID, v))
}

// TenantIDGTE applies the GTE predicate on the "tenant_id" field.
func TenantIDGTE(v string) predicate.EntitlementDiscrepancy {
	return predicate.EntitlementDiscrepancy(sql.FieldGTE(FieldTenantID, v))
}

// TenantIDLT applies the LT predicate on the "tenant_id" field.
func TenantIDLT(v string) predicate.EntitlementDiscrepancy {
	return predicate.EntitlementDiscrepancy(sql.FieldLT(FieldTenantID, v))
}

// TenantIDLTE applies the LTE predicate on the "tenant_id" field.
func TenantIDLTE(v string) predicate.EntitlementDiscrepancy {
	return predicate.EntitlementDiscrepancy(sql.FieldLTE(FieldTenantID, v))
}

// TenantIDContains applies the Contains predicate on the "tenant_id" field.
func TenantIDContains(v string) predicate.EntitlementDiscrepancy {
	return predicate.EntitlementDiscrepancy(sql.FieldContains(FieldTenantID, v))
}

// TenantIDHasPrefix applies the HasPrefix predicate on the "tenant_id" field.
func TenantIDHasPrefix(v string) predicate.EntitlementDiscrepancy {
	return predicate.EntitlementDiscrepancy(sql.FieldHasPrefix(FieldTenantID, v))
}

// TenantIDHasSuffix applies the HasSuffix predicate on the "tenant_id" field.
func TenantIDHasSuffix(v string) predicate.EntitlementDiscrepancy {
	return predicate.EntitlementDiscrepancy(sql.FieldHasSuffix(FieldTenantID, v))
}

// TenantIDEqualFold applies the EqualFold predicate on the "tenant_id" field.
func TenantIDEqualFold(v string) predicate.EntitlementDiscrepancy {
	return predicate.EntitlementDiscrepancy(sql.FieldEqualFold(FieldTenantID, v))
}

// TenantIDContainsFold applies the ContainsFold predicate on the "tenant_id" field.
func TenantIDContainsFold(v string) predicate.EntitlementDiscrepancy {
	return predicate.EntitlementDiscrepancy(sql.FieldContainsFold(FieldTenantID, v))
}

// OperationEQ applies the EQ predicate on the "operation" field.
func OperationEQ(v string) predicate.EntitlementDiscrepancy {
	return predicate.EntitlementDiscrepancy(sql.FieldEQ(FieldOperation, v))
}

// OperationNEQ applies the NEQ predicate on the "operation" field.
func OperationNEQ(v string) predicate.EntitlementDiscrepancy {
	return predicate.EntitlementDiscrepancy(sql.FieldNEQ(FieldOperation, v))
}

// OperationIn applies the In predicate on the "operation" field.
func OperationIn(vs ...string) predicate.EntitlementDiscrepancy {
	return predicate.EntitlementDiscrepancy(sql.FieldIn(FieldOperation, vs...))
}

// OperationNotIn applies the NotIn predicate on the "operation" field.
func OperationNotIn(vs ...string) predicate.EntitlementDiscrepancy {
	return predicate.EntitlementDiscrepancy(sql.FieldNotIn(FieldOperation, vs...))
}

// OperationGT applies the GT predicate on the "operation" field.
func OperationGT(v string) predicate.EntitlementDiscrepancy {
	return predicate.EntitlementDiscrepancy(sql.FieldGT(FieldOperation, v))
}

// OperationGTE applies the GTE predicate on the "operation" field.
func OperationGTE(v string) predicate.EntitlementDiscrepancy {
	return predicate.EntitlementDiscrepancy(sql.FieldGTE(FieldOperation, v))
}

// OperationLT applies the LT predicate on the "operation" field.
func OperationLT(v string) predicate.EntitlementDiscrepancy {
	return predicate.EntitlementDiscrepancy(sql.FieldLT(FieldOperation, v))
}

// OperationLTE applies the LTE predicate on the "operation" field.
func OperationLTE(v string) predicate.EntitlementDiscrepancy {
	return predicate.EntitlementDiscrepancy(sql.FieldLTE(FieldOperation, v))
}

// OperationContains applies the Contains predicate on the "operation" field.
func OperationContains(v string) predicate.EntitlementDiscrepancy {
	return predicate.EntitlementDiscrepancy(sql.FieldContains(FieldOperation, v))
}

// OperationHasPrefix applies the HasPrefix predicate on the "operation" field.
func OperationHasPrefix(v string) predicate.EntitlementDiscrepancy {
	return predicate.EntitlementDiscrepancy(sql.FieldHasPrefix(FieldOperation, v))
}

// OperationHasSuffix applies the HasSuffix predicate on the "operation" field.
func OperationHasSuffix(v string) predicate.EntitlementDiscrepancy {
	return predicate.EntitlementDiscrepancy(sql.FieldHasSuffix(FieldOperation, v))
}

// OperationEqualFold applies the EqualFold predicate on the "operation" field.
func OperationEqualFold(v string) predicate.EntitlementDiscrepancy {
	return predicate.EntitlementDiscrepancy(sql.FieldEqualFold(FieldOperation, v))
}

// OperationContainsFold applies the ContainsFold predicate on the "operation" field.
func OperationContainsFold(v string) predicate.EntitlementDiscrepancy {
	return predicate.EntitlementDiscrepancy(sql.FieldContainsFold(FieldOperation, v))
}

// ReconciledEQ applies the EQ predicate on the "reconciled" field.
func ReconciledEQ(v bool) predicate.EntitlementDiscrepancy {
	return predicate.EntitlementDiscrepancy(sql.FieldEQ(FieldReconciled, v))
}

// ReconciledNEQ applies the NEQ predicate on the "reconciled" field.
func ReconciledNEQ(v bool) predicate.EntitlementDiscrepancy {
	return predicate.EntitlementDiscrepancy(sql.FieldNEQ(FieldReconciled, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.EntitlementDiscrepancy) predicate.EntitlementDiscrepancy {
	return predicate.EntitlementDiscrepancy(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.EntitlementDiscrepancy) predicate.EntitlementDiscrepancy {
	return predicate.EntitlementDiscrepancy(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.EntitlementDiscrepancy) predicate.EntitlementDiscrepancy {
	return predicate.EntitlementDiscrepancy(sql.NotPredicates(p))
}
