// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AuditLog is the predicate function for auditlog builders.
type AuditLog func(*sql.Selector)

// DeadLetter is the predicate function for deadletter builders.
type DeadLetter func(*sql.Selector)

// EntitlementDiscrepancy is the predicate function for entitlementdiscrepancy builders.
type EntitlementDiscrepancy func(*sql.Selector)

// EntitlementEntry is the predicate function for entitlemententry builders.
type EntitlementEntry func(*sql.Selector)

// MembershipEntry is the predicate function for membershipentry builders.
type MembershipEntry func(*sql.Selector)

// OutboxEvent is the predicate function for outboxevent builders.
type OutboxEvent func(*sql.Selector)

// ProcessedEvent is the predicate function for processedevent builders.
type ProcessedEvent func(*sql.Selector)

// SagaInstance is the predicate function for sagainstance builders.
type SagaInstance func(*sql.Selector)

// SagaStep is the predicate function for sagastep builders.
type SagaStep func(*sql.Selector)
