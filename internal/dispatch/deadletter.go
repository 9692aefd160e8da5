package dispatch

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"workgrid.io/workgrid/ent"
	"workgrid.io/workgrid/ent/deadletter"
)

// Sink is the durable dead-letter store: messages that exhausted their retry
// budget or could not be parsed land here for operator inspection and
// replay.
type Sink struct {
	client *ent.Client
}

// NewSink creates a Sink.
func NewSink(client *ent.Client) *Sink {
	return &Sink{client: client}
}

// Send parks a message. eventID may be empty when the envelope itself was
// unparseable.
func (s *Sink) Send(ctx context.Context, topic, eventID string, payload []byte, reason string, attempts int) error {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Errorf("generate dead letter id: %w", err)
	}
	create := s.client.DeadLetter.Create().
		SetID(id.String()).
		SetTopic(topic).
		SetPayload(payload).
		SetFailureReason(reason).
		SetAttempts(attempts)
	if eventID != "" {
		create.SetEventID(eventID)
	}
	if err := create.Exec(ctx); err != nil {
		return fmt.Errorf("persist dead letter for topic %s: %w", topic, err)
	}
	return nil
}

// List returns the most recent dead letters, newest first.
func (s *Sink) List(ctx context.Context, limit int) ([]*ent.DeadLetter, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	rows, err := s.client.DeadLetter.Query().
		Order(ent.Desc(deadletter.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list dead letters: %w", err)
	}
	return rows, nil
}

// Get fetches one dead letter by id.
func (s *Sink) Get(ctx context.Context, id string) (*ent.DeadLetter, error) {
	row, err := s.client.DeadLetter.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetch dead letter %s: %w", id, err)
	}
	return row, nil
}

// MarkReplayed stamps a dead letter after a successful replay. Rows are kept
// for the audit trail; they are never hard-deleted automatically.
func (s *Sink) MarkReplayed(ctx context.Context, id string) error {
	if err := s.client.DeadLetter.UpdateOneID(id).
		SetReplayedAt(time.Now().UTC()).
		Exec(ctx); err != nil {
		return fmt.Errorf("mark dead letter %s replayed: %w", id, err)
	}
	return nil
}
