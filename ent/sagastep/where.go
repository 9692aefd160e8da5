// Code generated by ent, DO NOT EDIT.

package sagastep

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"workgrid.io/workgrid/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.SagaStep {
	return predicate.SagaStep(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.SagaStep {
	return predicate.SagaStep(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.SagaStep {
	return predicate.SagaStep(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.SagaStep {
	return predicate.SagaStep(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.SagaStep {
	return predicate.SagaStep(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.SagaStep {
	return predicate.SagaStep(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.SagaStep {
	return predicate.SagaStep(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.SagaStep {
	return predicate.SagaStep(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.SagaStep {
	return predicate.SagaStep(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.SagaStep {
	return predicate.SagaStep(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.SagaStep {
	return predicate.SagaStep(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.SagaStep {
	return predicate.SagaStep(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.SagaStep {
	return predicate.SagaStep(sql.FieldEQ(FieldUpdatedAt, v))
}

// SagaID applies equality check predicate on the "saga_id" field. It's identical to SagaIDEQ.
func SagaID(v string) predicate.SagaStep {
	return predicate.SagaStep(sql.FieldEQ(FieldSagaID, v))
}

// Seq applies equality check predicate on the "seq" field. It's identical to SeqEQ.
func Seq(v int) predicate.SagaStep {
	return predicate.SagaStep(sql.FieldEQ(FieldSeq, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.SagaStep {
	return predicate.SagaStep(sql.FieldEQ(FieldName, v))
}

// Participant applies equality check predicate on the "participant" field. It's identical to ParticipantEQ.
func Participant(v string) predicate.SagaStep {
	return predicate.SagaStep(sql.FieldEQ(FieldParticipant, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.SagaStep {
	return predicate.SagaStep(sql.FieldEQ(FieldCompletedAt, v))
}

// CompensationPayload applies equality check predicate on the "compensation_payload" field. It's identical to CompensationPayloadEQ.
func CompensationPayload(v []byte) predicate.SagaStep {
	return predicate.SagaStep(sql.FieldEQ(FieldCompensationPayload, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.SagaStep {
	return predicate.SagaStep(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.SagaStep {
	return predicate.SagaStep(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.SagaStep {
	return predicate.SagaStep(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.SagaStep {
	return predicate.SagaStep(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.SagaStep {
	return predicate.SagaStep(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.SagaStep {
	return predicate.SagaStep(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.SagaStep {
	return predicate.SagaStep(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.SagaStep {
	return predicate.SagaStep(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.SagaStep {
	return predicate.SagaStep(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.SagaStep {
	return predicate.SagaStep(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.SagaStep {
	return predicate.SagaStep(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.SagaStep {
	return predicate.SagaStep(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.SagaStep {
	return predicate.SagaStep(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.SagaStep {
	return predicate.SagaStep(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.SagaStep {
	return predicate.SagaStep(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.SagaStep {
	return predicate.SagaStep(sql.FieldLTE(FieldUpdatedAt, v))
}

// SagaIDEQ applies the EQ predicate on the "saga_id" field.
func SagaIDEQ(v string) predicate.SagaStep {
	return predicate.SagaStep(sql.FieldEQ(FieldSagaID, v))
}

// SagaIDNEQ applies the NEQ predicate on the "saga_id" field.
func SagaIDNEQ(v string) predicate.SagaStep {
	return predicate.SagaStep(sql.FieldNEQ(FieldSagaID, v))
}

// SagaIDIn applies the In predicate on the "saga_id" field.
func SagaIDIn(vs ...string) predicate.SagaStep {
	return predicate.SagaStep(sql.FieldIn(FieldSagaID, vs...))
}

// SagaIDNotIn applies the NotIn predicate on the "saga_id" field.
func SagaIDNotIn(vs ...string) predicate.SagaStep {
	return predicate.SagaStep(sql.FieldNotIn(FieldSagaID, vs...))
}

// SagaIDGT applies the GT predicate on the "saga_id" field.
func SagaIDGT(v string) predicate.SagaStep {
	return predicate.SagaStep(sql.FieldGT(FieldSagaID, v))
}

// SagaIDGTE applies the GTE predicate on the "saga_id" field.
func SagaIDGTE(v string) predicate.SagaStep {
	return predicate.SagaStep(sql.FieldGTE(FieldSagaID, v))
}

// SagaIDLT applies the LT predicate on the "saga_id" field.
func SagaIDLT(v string) predicate.SagaStep {
	return predicate.SagaStep(sql.FieldLT(FieldSagaID, v))
}

// SagaIDLTE applies the LTE predicate on the "saga_id" field.
func SagaIDLTE(v string) predicate.SagaStep {
	return predicate.SagaStep(sql.FieldLTE(FieldSagaID, v))
}

// SagaIDContains applies the Contains predicate on the "saga_id" field.
func SagaIDContains(v string) predicate.SagaStep {
	return predicate.SagaStep(sql.FieldContains(FieldSagaID, v))
}

// SagaIDHasPrefix applies the HasPrefix predicate on the "saga_id" field.
func SagaIDHasPrefix(v string) predicate.SagaStep {
	return predicate.SagaStep(sql.FieldHasPrefix(FieldSagaID, v))
}

// SagaIDHasSuffix applies the HasSuffix predicate on the "saga_id" field.
func SagaIDHasSuffix(v string) predicate.SagaStep {
	return predicate.SagaStep(sql.FieldHasSuffix(FieldSagaID, v))
}

// SagaIDEqualFold applies the EqualFold predicate on the "saga_id" field.
func SagaIDEqualFold(v string) predicate.SagaStep {
	return predicate.SagaStep(sql.FieldEqualFold(FieldSagaID, v))
}

// SagaIDContainsFold applies the ContainsFold predicate on the "saga_id" field.
func SagaIDContainsFold(v string) predicate.SagaStep {
	return predicate.SagaStep(sql.FieldContainsFold(FieldSagaID, v))
}

// SeqEQ applies the EQ predicate on the "seq" field.
func SeqEQ(v int) predicate.SagaStep {
	return predicate.SagaStep(sql.FieldEQ(FieldSeq, v))
}

// SeqNEQ applies the NEQ predicate on the "seq" field.
func SeqNEQ(v int) predicate.SagaStep {
	return predicate.SagaStep(sql.FieldNEQ(FieldSeq, v))
}

// SeqIn applies the In predicate on the "seq" field.
func SeqIn(vs ...int) predicate.SagaStep {
	return predicate.SagaStep(sql.FieldIn(FieldSeq, vs...))
}

// SeqNotIn applies the NotIn predicate on the "seq" field.
func SeqNotIn(vs ...int) predicate.SagaStep {
	return predicate.SagaStep(sql.FieldNotIn(FieldSeq, vs...))
}

// SeqGT applies the GT predicate on the "seq" field.
func SeqGT(v int) predicate.SagaStep {
	return predicate.SagaStep(sql.FieldGT(FieldSeq, v))
}

// SeqGTE applies the GTE predicate on the "seq" field.
func SeqGTE(v int) predicate.SagaStep {
	return predicate.SagaStep(sql.FieldGTE(FieldSeq, v))
}

// SeqLT applies the LT predicate on the "seq" field.
func SeqLT(v int) predicate.SagaStep {
	return predicate.SagaStep(sql.FieldLT(FieldSeq, v))
}

// SeqLTE applies the LTE predicate on the "seq" field.
func SeqLTE(v int) predicate.SagaStep {
	return predicate.SagaStep(sql.FieldLTE(FieldSeq, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.SagaStep {
	return predicate.SagaStep(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.SagaStep {
	return predicate.SagaStep(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.SagaStep {
	return predicate.SagaStep(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.SagaStep {
	return predicate.SagaStep(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.SagaStep {
	return predicate.SagaStep(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.SagaStep {
	return predicate.SagaStep(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.SagaStep {
	return predicate.SagaStep(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.SagaStep {
	return predicate.SagaStep(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.SagaStep {
	return predicate.SagaStep(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.SagaStep {
	return predicate.SagaStep(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.SagaStep {
	return predicate.SagaStep(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.SagaStep {
	return predicate.SagaStep(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.SagaStep {
	return predicate.SagaStep(sql.FieldContainsFold(FieldName, v))
}

// ParticipantEQ applies the EQ predicate on the "participant" field.
func ParticipantEQ(v string) predicate.SagaStep {
	return predicate.SagaStep(sql.FieldEQ(FieldParticipant, v))
}

// ParticipantNEQ applies the NEQ predicate on the "participant" field.
func ParticipantNEQ(v string) predicate.SagaStep {
	return predicate.SagaStep(sql.FieldNEQ(FieldParticipant, v))
}

// ParticipantIn applies the In predicate on the "participant" field.
func ParticipantIn(vs ...string) predicate.SagaStep {
	return predicate.SagaStep(sql.FieldIn(FieldParticipant, vs...))
}

// ParticipantNotIn applies the NotIn predicate on the "participant" field.
func ParticipantNotIn(vs ...string) predicate.SagaStep {
	return predicate.SagaStep(sql.FieldNotIn(FieldParticipant, vs...))
}

// ParticipantGT applies the GT predicate on the "participant" field.
func ParticipantGT(v string) predicate.SagaStep {
	return predicate.SagaStep(sql.FieldGT(FieldParticipant, v))
}

// ParticipantGTE applies the GTE predicate on the "participant" field.
func ParticipantGTE(v string) predicate.SagaStep {
	return predicate.SagaStep(sql.FieldGTE(FieldParticipant, v))
}

// ParticipantLT applies the LT predicate on the "participant" field.
func ParticipantLT(v string) predicate.SagaStep {
	return predicate.SagaStep(sql.FieldLT(FieldParticipant, v))
}

// ParticipantLTE applies the LTE predicate on the "participant" field.
func ParticipantLTE(v string) predicate.SagaStep {
	return predicate.SagaStep(sql.FieldLTE(FieldParticipant, v))
}

// ParticipantContains applies the Contains predicate on the "participant" field.
func ParticipantContains(v string) predicate.SagaStep {
	return predicate.SagaStep(sql.FieldContains(FieldParticipant, v))
}

// ParticipantHasPrefix applies the HasPrefix predicate on the "participant" field.
func ParticipantHasPrefix(v string) predicate.SagaStep {
	return predicate.SagaStep(sql.FieldHasPrefix(FieldParticipant, v))
}

// ParticipantHasSuffix applies the HasSuffix predicate on the "participant" field.
func ParticipantHasSuffix(v string) predicate.SagaStep {
	return predicate.SagaStep(sql.FieldHasSuffix(FieldParticipant, v))
}

// ParticipantEqualFold applies the EqualFold predicate on the "participant" field.
func ParticipantEqualFold(v string) predicate.SagaStep {
	return predicate.SagaStep(sql.FieldEqualFold(FieldParticipant, v))
}

// ParticipantContainsFold applies the ContainsFold predicate on the "participant" field.
func ParticipantContainsFold(v string) predicate.SagaStep {
	return predicate.SagaStep(sql.FieldContainsFold(FieldParticipant, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.SagaStep {
	return predicate.SagaStep(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.SagaStep {
	return predicate.SagaStep(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.SagaStep {
	return predicate.SagaStep(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.SagaStep {
	return predicate.SagaStep(sql.FieldNotIn(FieldStatus, vs...))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.SagaStep {
	return predicate.SagaStep(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.SagaStep {
	return predicate.SagaStep(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.SagaStep {
	return predicate.SagaStep(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.SagaStep {
	return predicate.SagaStep(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.SagaStep {
	return predicate.SagaStep(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.SagaStep {
	return predicate.SagaStep(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.SagaStep {
	return predicate.SagaStep(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.SagaStep {
	return predicate.SagaStep(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.SagaStep {
	return predicate.SagaStep(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.SagaStep {
	return predicate.SagaStep(sql.FieldNotNull(FieldCompletedAt))
}

// CompensationPayloadEQ applies the EQ predicate on the "compensation_payload" field.
func CompensationPayloadEQ(v []byte) predicate.SagaStep {
	return predicate.SagaStep(sql.FieldEQ(FieldCompensationPayload, v))
}

// CompensationPayloadNEQ applies the NEQ predicate on the "compensation_payload" field.
func CompensationPayloadNEQ(v []byte) predicate.SagaStep {
	return predicate.SagaStep(sql.FieldNEQ(FieldCompensationPayload, v))
}

// CompensationPayloadIn applies the In predicate on the "compensation_payload" field.
func CompensationPayloadIn(vs ...[]byte) predicate.SagaStep {
	return predicate.SagaStep(sql.FieldIn(FieldCompensationPayload, vs...))
}

// CompensationPayloadNotIn applies the NotIn predicate on the "compensation_payload" field.
func CompensationPayloadNotIn(vs ...[]byte) predicate.SagaStep {
	return predicate.SagaStep(sql.FieldNotIn(FieldCompensationPayload, vs...))
}

// CompensationPayloadGT applies the GT predicate on the "compensation_payload" field.
func CompensationPayloadGT(v []byte) predicate.SagaStep {
	return predicate.SagaStep(sql.FieldGT(FieldCompensationPayload, v))
}

// CompensationPayloadGTE applies the GTE predicate on the "compensation_payload" field.
func CompensationPayloadGTE(v []byte) predicate.SagaStep {
	return predicate.SagaStep(sql.FieldGTE(FieldCompensationPayload, v))
}

// CompensationPayloadLT applies the LT predicate on the "compensation_payload" field.
func CompensationPayloadLT(v []byte) predicate.SagaStep {
	return predicate.SagaStep(sql.FieldLT(FieldCompensationPayload, v))
}

// CompensationPayloadLTE applies the LTE predicate on the "compensation_payload" field.
func CompensationPayloadLTE(v []byte) predicate.SagaStep {
	return predicate.SagaStep(sql.FieldLTE(FieldCompensationPayload, v))
}

// CompensationPayloadIsNil applies the IsNil predicate on the "compensation_payload" field.
func CompensationPayloadIsNil() predicate.SagaStep {
	return predicate.SagaStep(sql.FieldIsNull(FieldCompensationPayload))
}

// CompensationPayloadNotNil applies the NotNil predicate on the "compensation_payload" field.
func CompensationPayloadNotNil() predicate.SagaStep {
	return predicate.SagaStep(sql.FieldNotNull(FieldCompensationPayload))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SagaStep) predicate.SagaStep {
	return predicate.SagaStep(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SagaStep) predicate.SagaStep {
	return predicate.SagaStep(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SagaStep) predicate.SagaStep {
	return predicate.SagaStep(sql.NotPredicates(p))
}
