// Package saga orchestrates multi-service workflows with compensation. The
// coordinator persists every instance and step, publishes step commands to
// participant services through the transactional outbox, and reacts to their
// acknowledgement events. A failed step triggers reverse-order compensation
// of everything already completed.
package saga

import (
	"context"

	"workgrid.io/workgrid/ent"
	"workgrid.io/workgrid/internal/domain"
)

// Step is one ordered unit of a saga. Remote steps publish a command to a
// participant service and wait for its acknowledgement; local steps run
// inside the coordinator's own transaction and complete immediately.
type Step struct {
	Name        string
	Participant string

	// Remote wiring. Command starts the step; the participant answers on
	// CompletedAck or FailedAck. Compensate, when set, is published to undo
	// the step during compensation.
	Command      domain.EventType
	CompletedAck domain.EventType
	FailedAck    domain.EventType
	Compensate   domain.EventType

	// Run makes the step local. Local steps have no acks; an error rolls
	// back the whole transaction and the triggering event is redelivered.
	Run func(ctx context.Context, tx *ent.Tx, tenantID string) error
}

func (s Step) local() bool { return s.Run != nil }

// Definition declares a saga type: the event that starts it, its ordered
// steps, and the facts the coordinator publishes as it progresses.
type Definition struct {
	Type    string
	Trigger domain.EventType
	Steps   []Step

	StepCompletedFact   domain.EventType
	StepCompensatedFact domain.EventType
	CompletedFact       domain.EventType
	FailedFact          domain.EventType
}

func (d Definition) step(name string) (int, Step, bool) {
	for i, s := range d.Steps {
		if s.Name == name {
			return i, s, true
		}
	}
	return 0, Step{}, false
}
