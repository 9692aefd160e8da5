// Package domain defines the event vocabulary shared by the Workgrid
// consumer core: the wire envelope, topic names, and versioned payloads.
package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// EventType identifies an event. By platform convention the event type is
// also the topic it is published on: <domain>.<entity>.<event>.
type EventType string

const (
	// Membership projection updates (organization service).
	EventMemberAdded       EventType = "organization.member.added"
	EventMemberRemoved     EventType = "organization.member.removed"
	EventMemberRoleChanged EventType = "organization.member.role_changed"

	// Entitlement projection updates (billing service).
	EventEntitlementsUpdated EventType = "billing.entitlements.updated"

	// Tenant deletion saga.
	EventOrganizationDeleted EventType = "organization.deleted"

	// Step commands the coordinator publishes to participants.
	EventProjectArchiveRequested         EventType = "project.tenant.archive_requested"
	EventProjectUnarchiveRequested       EventType = "project.tenant.unarchive_requested"
	EventSubscriptionCancelRequested     EventType = "billing.subscription.cancel_requested"
	EventSubscriptionReactivateRequested EventType = "billing.subscription.reactivate_requested"

	// Participant acknowledgements the coordinator subscribes to.
	EventProjectArchived          EventType = "project.tenant.archived"
	EventProjectArchiveFailed     EventType = "project.tenant.archive_failed"
	EventSubscriptionCancelled    EventType = "billing.subscription.cancelled"
	EventSubscriptionCancelFailed EventType = "billing.subscription.cancel_failed"

	// Saga facts the coordinator publishes.
	EventDeletionStepCompleted   EventType = "organization.deletion.step_completed"
	EventDeletionStepCompensated EventType = "organization.deletion.step_compensated"
	EventDeletionCompleted       EventType = "organization.deletion.completed"
	EventDeletionFailed          EventType = "organization.deletion.failed"
)

// Schema versions. Handlers must tolerate at least the two most recent
// versions of an event.
const (
	Version10 = "1.0"
	Version11 = "1.1"
)

// Envelope is the wire format consumed and produced by this core. The
// correlation id is reused as the saga id on saga-initiated events, and the
// tenant id is the bus partition key.
type Envelope struct {
	EventID       string          `json:"eventId"`
	EventType     EventType       `json:"eventType"`
	EventVersion  string          `json:"eventVersion"`
	Timestamp     time.Time       `json:"timestamp"`
	Source        string          `json:"source"`
	CorrelationID string          `json:"correlationId"`
	TraceID       string          `json:"traceId,omitempty"`
	UserID        string          `json:"userId,omitempty"`
	TenantID      string          `json:"tenantId,omitempty"`
	Data          json.RawMessage `json:"data"`
}

// NewEnvelope builds an envelope for a fresh event with a v7 UUID id and the
// current schema version. The correlation id defaults to the event id; saga
// sub-events overwrite it with the saga id.
func NewEnvelope(eventType EventType, source, tenantID string, data interface{}) (*Envelope, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("marshal %s payload: %w", eventType, err)
	}
	id := newEventID()
	return &Envelope{
		EventID:       id,
		EventType:     eventType,
		EventVersion:  Version11,
		Timestamp:     time.Now().UTC(),
		Source:        source,
		CorrelationID: id,
		TenantID:      tenantID,
		Data:          raw,
	}, nil
}

// Topic returns the bus topic this envelope belongs on.
func (e *Envelope) Topic() string { return string(e.EventType) }

// PartitionKey returns the bus partition key; per-tenant ordering hangs off
// this. Events with no tenant fall back to the event id (no ordering scope).
func (e *Envelope) PartitionKey() string {
	if e.TenantID != "" {
		return e.TenantID
	}
	return e.EventID
}

// Validate checks the envelope fields every consumer depends on.
func (e *Envelope) Validate() error {
	switch {
	case e.EventID == "":
		return fmt.Errorf("envelope missing eventId")
	case e.EventType == "":
		return fmt.Errorf("envelope missing eventType")
	case e.EventVersion == "":
		return fmt.Errorf("envelope missing eventVersion")
	case e.Timestamp.IsZero():
		return fmt.Errorf("envelope missing timestamp")
	case e.Source == "":
		return fmt.Errorf("envelope missing source")
	default:
		return nil
	}
}

// ToJSON serializes the envelope for the bus.
func (e *Envelope) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// ParseEnvelope deserializes a bus message.
func ParseEnvelope(raw []byte) (*Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("unmarshal envelope: %w", err)
	}
	if err := env.Validate(); err != nil {
		return nil, err
	}
	return &env, nil
}

func newEventID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
