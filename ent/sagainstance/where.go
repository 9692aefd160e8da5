// Code generated by ent, DO NOT EDIT.

package sagainstance

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"workgrid.io/workgrid/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.SagaInstance {
	return predicate.SagaInstance(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.SagaInstance {
	return predicate.SagaInstance(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.SagaInstance {
	return predicate.SagaInstance(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.SagaInstance {
	return predicate.SagaInstance(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.SagaInstance {
	return predicate.SagaInstance(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.SagaInstance {
	return predicate.SagaInstance(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.SagaInstance {
	return predicate.SagaInstance(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.SagaInstance {
	return predicate.SagaInstance(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.SagaInstance {
	return predicate.SagaInstance(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.SagaInstance {
	return predicate.SagaInstance(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.SagaInstance {
	return predicate.SagaInstance(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.SagaInstance {
	return predicate.SagaInstance(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.SagaInstance {
	return predicate.SagaInstance(sql.FieldEQ(FieldUpdatedAt, v))
}

// SagaType applies equality check predicate on the "saga_type" field. It's identical to SagaTypeEQ.
func SagaType(v string) predicate.SagaInstance {
	return predicate.SagaInstance(sql.FieldEQ(FieldSagaType, v))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v string) predicate.SagaInstance {
	return predicate.SagaInstance(sql.FieldEQ(FieldTenantID, v))
}

// FailureReason applies equality check predicate on the "failure_reason" field. It's identical to FailureReasonEQ.
func FailureReason(v string) predicate.SagaInstance {
	return predicate.SagaInstance(sql.FieldEQ(FieldFailureReason, v))
}

// FinishedAt applies equality check predicate on the "finished_at" field. It's identical to FinishedAtEQ.
func FinishedAt(v time.Time) predicate.SagaInstance {
	return predicate.SagaInstance(sql.FieldEQ(FieldFinishedAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.SagaInstance {
	return predicate.SagaInstance(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.SagaInstance {
	return predicate.SagaInstance(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.SagaInstance {
	return predicate.SagaInstance(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.SagaInstance {
	return predicate.SagaInstance(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.SagaInstance {
	return predicate.SagaInstance(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.SagaInstance {
	return predicate.SagaInstance(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.SagaInstance {
	return predicate.SagaInstance(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.SagaInstance {
	return predicate.SagaInstance(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.SagaInstance {
	return predicate.SagaInstance(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.SagaInstance {
	return predicate.SagaInstance(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.SagaInstance {
	return predicate.SagaInstance(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.SagaInstance {
	return predicate.SagaInstance(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.SagaInstance {
	return predicate.SagaInstance(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.SagaInstance {
	return predicate.SagaInstance(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.SagaInstance {
	return predicate.SagaInstance(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.SagaInstance {
	return predicate.SagaInstance(sql.FieldLTE(FieldUpdatedAt, v))
}

// SagaTypeEQ applies the EQ predicate on the "saga_type" field.
func SagaTypeEQ(v string) predicate.SagaInstance {
	return predicate.SagaInstance(sql.FieldEQ(FieldSagaType, v))
}

// SagaTypeNEQ applies the NEQ predicate on the "saga_type" field.
func SagaTypeNEQ(v string) predicate.SagaInstance {
	return predicate.SagaInstance(sql.FieldNEQ(FieldSagaType, v))
}

// SagaTypeIn applies the In predicate on the "saga_type" field.
func SagaTypeIn(vs ...string) predicate.SagaInstance {
	return predicate.SagaInstance(sql.FieldIn(FieldSagaType, vs...))
}

// SagaTypeNotIn applies the NotIn predicate on the "saga_type" field.
func SagaTypeNotIn(vs ...string) predicate.SagaInstance {
	return predicate.SagaInstance(sql.FieldNotIn(FieldSagaType, vs...))
}

// SagaTypeGT applies the GT predicate on the "saga_type" field.
func SagaTypeGT(v string) predicate.SagaInstance {
	return predicate.SagaInstance(sql.FieldGT(FieldSagaType, v))
}

// SagaTypeGTE applies the GTE predicate on the "saga_type" field.
func SagaTypeGTE(v string) predicate.SagaInstance {
	return predicate.SagaInstance(sql.FieldGTE(FieldSagaType, v))
}

// SagaTypeLT applies the LT predicate on the "saga_type" field.
func SagaTypeLT(v string) predicate.SagaInstance {
	return predicate.SagaInstance(sql.FieldLT(FieldSagaType, v))
}

// SagaTypeLTE applies the LTE predicate on the "saga_type" field.
func SagaTypeLTE(v string) predicate.SagaInstance {
	return predicate.SagaInstance(sql.FieldLTE(FieldSagaType, v))
}

// SagaTypeContains applies the Contains predicate on the "saga_type" field.
func SagaTypeContains(v string) predicate.SagaInstance {
	return predicate.SagaInstance(sql.FieldContains(FieldSagaType, v))
}

// SagaTypeHasPrefix applies the HasPrefix predicate on the "saga_type" field.
func SagaTypeHasPrefix(v string) predicate.SagaInstance {
	return predicate.SagaInstance(sql.FieldHasPrefix(FieldSagaType, v))
}

// SagaTypeHasSuffix applies the HasSuffix predicate on the "saga_type" field.
func SagaTypeHasSuffix(v string) predicate.SagaInstance {
	return predicate.SagaInstance(sql.FieldHasSuffix(FieldSagaType, v))
}

// SagaTypeEqualFold applies the EqualFold predicate on the "saga_type" field.
func SagaTypeEqualFold(v string) predicate.SagaInstance {
	return predicate.SagaInstance(sql.FieldEqualFold(FieldSagaType, v))
}

// SagaTypeContainsFold applies the ContainsFold predicate on the "saga_type" field.
func SagaTypeContainsFold(v string) predicate.SagaInstance {
	return predicate.SagaInstance(sql.FieldContainsFold(FieldSagaType, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v string) predicate.SagaInstance {
	return predicate.SagaInstance(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v string) predicate.SagaInstance {
	return predicate.SagaInstance(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...string) predicate.SagaInstance {
	return predicate.SagaInstance(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...string) predicate.SagaInstance {
	return predicate.SagaInstance(sql.FieldNotIn(FieldTenantID, vs...))
}

// TenantIDGT applies the GT predicate on the "tenant_id" field.
func TenantIDGT(v string) predicate.SagaInstance {
	return predicate.SagaInstance(sql.FieldGT(FieldTenantID, v))
}

// TenantIDGTE applies the GTE predicate on the "tenant_id" field.
func TenantIDGTE(v string) predicate.SagaInstance {
	return predicate.SagaInstance(sql.FieldGTE(FieldTenantID, v))
}

// TenantIDLT applies the LT predicate on the "tenant_id" field.
func TenantIDLT(v string) predicate.SagaInstance {
	return predicate.SagaInstance(sql.FieldLT(FieldTenantID, v))
}

// TenantIDLTE applies the LTE predicate on the "tenant_id" field.
func TenantIDLTE(v string) predicate.SagaInstance {
	return predicate.SagaInstance(sql.FieldLTE(FieldTenantID, v))
}

// TenantIDContains applies the Contains predicate on the "tenant_id" field.
func TenantIDContains(v string) predicate.SagaInstance {
	return predicate.SagaInstance(sql.FieldContains(FieldTenantID, v))
}

// TenantIDHasPrefix applies the HasPrefix predicate on the "tenant_id" field.
func TenantIDHasPrefix(v string) predicate.SagaInstance {
	return predicate.SagaInstance(sql.FieldHasPrefix(FieldTenantID, v))
}

// TenantIDHasSuffix applies the HasSuffix predicate on the "tenant_id" field.
func TenantIDHasSuffix(v string) predicate.SagaInstance {
	return predicate.SagaInstance(sql.FieldHasSuffix(FieldTenantID, v))
}

// TenantIDEqualFold applies the EqualFold predicate on the "tenant_id" field.
func TenantIDEqualFold(v string) predicate.SagaInstance {
	return predicate.SagaInstance(sql.FieldEqualFold(FieldTenantID, v))
}

// TenantIDContainsFold applies the ContainsFold predicate on the "tenant_id" field.
func TenantIDContainsFold(v string) predicate.SagaInstance {
	return predicate.SagaInstance(sql.FieldContainsFold(FieldTenantID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.SagaInstance {
	return predicate.SagaInstance(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.SagaInstance {
	return predicate.SagaInstance(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.SagaInstance {
	return predicate.SagaInstance(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.SagaInstance {
	return predicate.SagaInstance(sql.FieldNotIn(FieldStatus, vs...))
}

// FailureReasonEQ applies the EQ predicate on the "failure_reason" field.
func FailureReasonEQ(v string) predicate.SagaInstance {
	return predicate.SagaInstance(sql.FieldEQ(FieldFailureReason, v))
}

// FailureReasonNEQ applies the NEQ predicate on the "failure_reason" field.
func FailureReasonNEQ(v string) predicate.SagaInstance {
	return predicate.SagaInstance(sql.FieldNEQ(FieldFailureReason, v))
}

// FailureReasonIn applies the In predicate on the "failure_reason" field.
func FailureReasonIn(vs ...string) predicate.SagaInstance {
	return predicate.SagaInstance(sql.FieldIn(FieldFailureReason, vs...))
}

// FailureReasonNotIn applies the NotIn predicate on the "failure_reason" field.
func FailureReasonNotIn(vs ...string) predicate.SagaInstance {
	return predicate.SagaInstance(sql.FieldNotIn(FieldFailureReason, vs...))
}

// FailureReasonGT applies the GT predicate on the "failure_reason" field.
func FailureReasonGT(v string) predicate.SagaInstance {
	return predicate.SagaInstance(sql.FieldGT(FieldFailureReason, v))
}

// FailureReasonGTE applies the GTE predicate on the "failure_reason" field.
func FailureReasonGTE(v string) predicate.SagaInstance {
	return predicate.SagaInstance(sql.FieldGTE(FieldFailureReason, v))
}

// FailureReasonLT applies the LT predicate on the "failure_reason" field.
func FailureReasonLT(v string) predicate.SagaInstance {
	return predicate.SagaInstance(sql.FieldLT(FieldFailureReason, v))
}

// FailureReasonLTE applies the LTE predicate on the "failure_reason" field.
func FailureReasonLTE(v string) predicate.SagaInstance {
	return predicate.SagaInstance(sql.FieldLTE(FieldFailureReason, v))
}

// FailureReasonContains applies the Contains predicate on the "failure_reason" field.
func FailureReasonContains(v string) predicate.SagaInstance {
	return predicate.SagaInstance(sql.FieldContains(FieldFailureReason, v))
}

// FailureReasonHasPrefix applies the HasPrefix predicate on the "failure_reason" field.
func FailureReasonHasPrefix(v string) predicate.SagaInstance {
	return predicate.SagaInstance(sql.FieldHasPrefix(FieldFailureReason, v))
}

// FailureReasonHasSuffix applies the HasSuffix predicate on the "failure_reason" field.
func FailureReasonHasSuffix(v string) predicate.SagaInstance {
	return predicate.SagaInstance(sql.FieldHasSuffix(FieldFailureReason, v))
}

// FailureReasonIsNil applies the IsNil predicate on the "failure_reason" field.
func FailureReasonIsNil() predicate.SagaInstance {
	return predicate.SagaInstance(sql.FieldIsNull(FieldFailureReason))
}

// FailureReasonNotNil applies the NotNil predicate on the "failure_reason" field.
func FailureReasonNotNil() predicate.SagaInstance {
	return predicate.SagaInstance(sql.FieldNotNull(FieldFailureReason))
}

// FailureReasonEqualFold applies the EqualFold predicate on the "failure_reason" field.
func FailureReasonEqualFold(v string) predicate.SagaInstance {
	return predicate.SagaInstance(sql.FieldEqualFold(FieldFailureReason, v))
}

// FailureReasonContainsFold applies the ContainsFold predicate on the "failure_reason" field.
func FailureReasonContainsFold(v string) predicate.SagaInstance {
	return predicate.SagaInstance(sql.FieldContainsFold(FieldFailureReason, v))
}

// FinishedAtEQ applies the EQ predicate on the "finished_at" field.
func FinishedAtEQ(v time.Time) predicate.SagaInstance {
	return predicate.SagaInstance(sql.FieldEQ(FieldFinishedAt, v))
}

// FinishedAtNEQ applies the NEQ predicate on the "finished_at" field.
func FinishedAtNEQ(v time.Time) predicate.SagaInstance {
	return predicate.SagaInstance(sql.FieldNEQ(FieldFinishedAt, v))
}

// FinishedAtIn applies the In predicate on the "finished_at" field.
func FinishedAtIn(vs ...time.Time) predicate.SagaInstance {
	return predicate.SagaInstance(sql.FieldIn(FieldFinishedAt, vs...))
}

// FinishedAtNotIn applies the NotIn predicate on the "finished_at" field.
func FinishedAtNotIn(vs ...time.Time) predicate.SagaInstance {
	return predicate.SagaInstance(sql.FieldNotIn(FieldFinishedAt, vs...))
}

// FinishedAtGT applies the GT predicate on the "finished_at" field.
func FinishedAtGT(v time.Time) predicate.SagaInstance {
	return predicate.SagaInstance(sql.FieldGT(FieldFinishedAt, v))
}

// FinishedAtGTE applies the GTE predicate on the "finished_at" field.
func FinishedAtGTE(v time.Time) predicate.SagaInstance {
	return predicate.SagaInstance(sql.FieldGTE(FieldFinishedAt, v))
}

// FinishedAtLT applies the LT predicate on the "finished_at" field.
func FinishedAtLT(v time.Time) predicate.SagaInstance {
	return predicate.SagaInstance(sql.FieldLT(FieldFinishedAt, v))
}

// FinishedAtLTE applies the LTE predicate on the "finished_at" field.
func FinishedAtLTE(v time.Time) predicate.SagaInstance {
	return predicate.SagaInstance(sql.FieldLTE(FieldFinishedAt, v))
}

// FinishedAtIsNil applies the IsNil predicate on the "finished_at" field.
func FinishedAtIsNil() predicate.SagaInstance {
	return predicate.SagaInstance(sql.FieldIsNull(FieldFinishedAt))
}

// FinishedAtNotNil applies the NotNil predicate on the "finished_at" field.
func FinishedAtNotNil() predicate.SagaInstance {
	return predicate.SagaInstance(sql.FieldNotNull(FieldFinishedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SagaInstance) predicate.SagaInstance {
	return predicate.SagaInstance(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SagaInstance) predicate.SagaInstance {
	return predicate.SagaInstance(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SagaInstance) predicate.SagaInstance {
	return predicate.SagaInstance(sql.NotPredicates(p))
}
