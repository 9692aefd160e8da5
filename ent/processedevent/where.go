// Code generated by ent, DO NOT EDIT.

package processedevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"workgrid.io/workgrid/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ProcessedEvent {
	return predicate.ProcessedEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ProcessedEvent {
	return predicate.ProcessedEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ProcessedEvent {
	return predicate.ProcessedEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ProcessedEvent {
	return predicate.ProcessedEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ProcessedEvent {
	return predicate.ProcessedEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ProcessedEvent {
	return predicate.ProcessedEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ProcessedEvent {
	return predicate.ProcessedEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ProcessedEvent {
	return predicate.ProcessedEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ProcessedEvent {
	return predicate.ProcessedEvent(sql.FieldLTE(FieldID, id))
}

// ConsumerID applies equality check predicate on the "consumer_id" field. It's identical to ConsumerIDEQ.
func ConsumerID(v string) predicate.ProcessedEvent {
	return predicate.ProcessedEvent(sql.FieldEQ(FieldConsumerID, v))
}

// EventID applies equality check predicate on the "event_id" field. It's identical to EventIDEQ.
func EventID(v string) predicate.ProcessedEvent {
	return predicate.ProcessedEvent(sql.FieldEQ(FieldEventID, v))
}

// ProcessedAt applies equality check predicate on the "processed_at" field. It's identical to ProcessedAtEQ.
func ProcessedAt(v time.Time) predicate.ProcessedEvent {
	return predicate.ProcessedEvent(sql.FieldEQ(FieldProcessedAt, v))
}

// ConsumerIDEQ applies the EQ predicate on the "consumer_id" field.
func ConsumerIDEQ(v string) predicate.ProcessedEvent {
	return predicate.ProcessedEvent(sql.FieldEQ(FieldConsumerID, v))
}

// ConsumerIDNEQ applies the NEQ predicate on the "consumer_id" field.
func ConsumerIDNEQ(v string) predicate.ProcessedEvent {
	return predicate.ProcessedEvent(sql.FieldNEQ(FieldConsumerID, v))
}

// ConsumerIDIn applies the In predicate on the "consumer_id" field.
func ConsumerIDIn(vs ...string) predicate.ProcessedEvent {
	return predicate.ProcessedEvent(sql.FieldIn(FieldConsumerID, vs...))
}

// ConsumerIDNotIn applies the NotIn predicate on the "consumer_id" field.
func ConsumerIDNotIn(vs ...string) predicate.ProcessedEvent {
	return predicate.ProcessedEvent(sql.FieldNotIn(FieldConsumerID, vs...))
}

// ConsumerIDGT applies the GT predicate on the "consumer_id" field.
func ConsumerIDGT(v string) predicate.ProcessedEvent {
	return predicate.ProcessedEvent(sql.FieldGT(FieldConsumerID, v))
}

// ConsumerIDGTE applies the GTE predicate on the "consumer_id" field.
func ConsumerIDGTE(v string) predicate.ProcessedEvent {
	return predicate.ProcessedEvent(sql.FieldGTE(FieldConsumerID, v))
}

// ConsumerIDLT applies the LT predicate on the "consumer_id" field.
func ConsumerIDLT(v string) predicate.ProcessedEvent {
	return predicate.ProcessedEvent(sql.FieldLT(FieldConsumerID, v))
}

// ConsumerIDLTE applies the LTE predicate on the "consumer_id" field.
func ConsumerIDLTE(v string) predicate.ProcessedEvent {
	return predicate.ProcessedEvent(sql.FieldLTE(FieldConsumerID, v))
}

// ConsumerIDContains applies the Contains predicate on the "consumer_id" field.
func ConsumerIDContains(v string) predicate.ProcessedEvent {
	return predicate.ProcessedEvent(sql.FieldContains(FieldConsumerID, v))
}

// ConsumerIDHasPrefix applies the HasPrefix predicate on the "consumer_id" field.
func ConsumerIDHasPrefix(v string) predicate.ProcessedEvent {
	return predicate.ProcessedEvent(sql.FieldHasPrefix(FieldConsumerID, v))
}

// ConsumerIDHasSuffix applies the HasSuffix predicate on the "consumer_id" field.
func ConsumerIDHasSuffix(v string) predicate.ProcessedEvent {
	return predicate.ProcessedEvent(sql.FieldHasSuffix(FieldConsumerID, v))
}

// ConsumerIDEqualFold applies the EqualFold predicate on the "consumer_id" field.
func ConsumerIDEqualFold(v string) predicate.ProcessedEvent {
	return predicate.ProcessedEvent(sql.FieldEqualFold(FieldConsumerID, v))
}

// ConsumerIDContainsFold applies the ContainsFold predicate on the "consumer_id" field.
func ConsumerIDContainsFold(v string) predicate.ProcessedEvent {
	return predicate.ProcessedEvent(sql.FieldContainsFold(FieldConsumerID, v))
}

// EventIDEQ applies the EQ predicate on the "event_id" field.
func EventIDEQ(v string) predicate.ProcessedEvent {
	return predicate.ProcessedEvent(sql.FieldEQ(FieldEventID, v))
}

// EventIDNEQ applies the NEQ predicate on the "event_id" field.
func EventIDNEQ(v string) predicate.ProcessedEvent {
	return predicate.ProcessedEvent(sql.FieldNEQ(FieldEventID, v))
}

// EventIDIn applies the In predicate on the "event_id" field.
func EventIDIn(vs ...string) predicate.ProcessedEvent {
	return predicate.ProcessedEvent(sql.FieldIn(FieldEventID, vs...))
}

// EventIDNotIn applies the NotIn predicate on the "event_id" field.
func EventIDNotIn(vs ...string) predicate.ProcessedEvent {
	return predicate.ProcessedEvent(sql.FieldNotIn(FieldEventID, vs...))
}

// EventIDGT applies the GT predicate on the "event_id" field.
func EventIDGT(v string) predicate.ProcessedEvent {
	return predicate.ProcessedEvent(sql.FieldGT(FieldEventID, v))
}

// EventIDGTE applies the GTE predicate on the "event_id" field.
func EventIDGTE(v string) predicate.ProcessedEvent {
	return predicate.ProcessedEvent(sql.FieldGTE(FieldEventID, v))
}

// EventIDLT applies the LT predicate on the "event_id" field.
func EventIDLT(v string) predicate.ProcessedEvent {
	return predicate.ProcessedEvent(sql.FieldLT(FieldEventID, v))
}

// EventIDLTE applies the LTE predicate on the "event_id" field.
func EventIDLTE(v string) predicate.ProcessedEvent {
	return predicate.ProcessedEvent(sql.FieldLTE(FieldEventID, v))
}

// EventIDContains applies the Contains predicate on the "event_id" field.
func EventIDContains(v string) predicate.ProcessedEvent {
	return predicate.ProcessedEvent(sql.FieldContains(FieldEventID, v))
}

// EventIDHasPrefix applies the HasPrefix predicate on the "event_id" field.
func EventIDHasPrefix(v string) predicate.ProcessedEvent {
	return predicate.ProcessedEvent(sql.FieldHasPrefix(FieldEventID, v))
}

// EventIDHasSuffix applies the HasSuffix predicate on the "event_id" field.
func EventIDHasSuffix(v string) predicate.ProcessedEvent {
	return predicate.ProcessedEvent(sql.FieldHasSuffix(FieldEventID, v))
}

// EventIDEqualFold applies the EqualFold predicate on the "event_id" field.
func EventIDEqualFold(v string) predicate.ProcessedEvent {
	return predicate.ProcessedEvent(sql.FieldEqualFold(FieldEventID, v))
}

// EventIDContainsFold applies the ContainsFold predicate on the "event_id" field.
func EventIDContainsFold(v string) predicate.ProcessedEvent {
	return predicate.ProcessedEvent(sql.FieldContainsFold(FieldEventID, v))
}

// ProcessedAtEQ applies the EQ predicate on the "processed_at" field.
func ProcessedAtEQ(v time.Time) predicate.ProcessedEvent {
	return predicate.ProcessedEvent(sql.FieldEQ(FieldProcessedAt, v))
}

// ProcessedAtNEQ applies the NEQ predicate on the "processed_at" field.
func ProcessedAtNEQ(v time.Time) predicate.ProcessedEvent {
	return predicate.ProcessedEvent(sql.FieldNEQ(FieldProcessedAt, v))
}

// ProcessedAtIn applies the In predicate on the "processed_at" field.
func ProcessedAtIn(vs ...time.Time) predicate.ProcessedEvent {
	return predicate.ProcessedEvent(sql.FieldIn(FieldProcessedAt, vs...))
}

// ProcessedAtNotIn applies the NotIn predicate on the "processed_at" field.
func ProcessedAtNotIn(vs ...time.Time) predicate.ProcessedEvent {
	return predicate.ProcessedEvent(sql.FieldNotIn(FieldProcessedAt, vs...))
}

// ProcessedAtGT applies the GT predicate on the "processed_at" field.
func ProcessedAtGT(v time.Time) predicate.ProcessedEvent {
	return predicate.ProcessedEvent(sql.FieldGT(FieldProcessedAt, v))
}

// ProcessedAtGTE applies the GTE predicate on the "processed_at" field.
func ProcessedAtGTE(v time.Time) predicate.ProcessedEvent {
	return predicate.ProcessedEvent(sql.FieldGTE(FieldProcessedAt, v))
}

// ProcessedAtLT applies the LT predicate on the "processed_at" field.
func ProcessedAtLT(v time.Time) predicate.ProcessedEvent {
	return predicate.ProcessedEvent(sql.FieldLT(FieldProcessedAt, v))
}

// ProcessedAtLTE applies the LTE predicate on the "processed_at" field.
func ProcessedAtLTE(v time.Time) predicate.ProcessedEvent {
	return predicate.ProcessedEvent(sql.FieldLTE(FieldProcessedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ProcessedEvent) predicate.ProcessedEvent {
	return predicate.ProcessedEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ProcessedEvent) predicate.ProcessedEvent {
	return predicate.ProcessedEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ProcessedEvent) predicate.ProcessedEvent {
	return predicate.ProcessedEvent(sql.NotPredicates(p))
}
