// Package outbox implements the transactional outbox: events this service
// emits are inserted into the OutboxEvent table inside the same transaction
// as the state change that caused them, and a background drain publishes them
// to the bus afterwards. The local commit never depends on the bus being up,
// and a crash between commit and publish loses nothing.
package outbox

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"workgrid.io/workgrid/ent"
	"workgrid.io/workgrid/ent/outboxevent"
	"workgrid.io/workgrid/internal/bus"
	"workgrid.io/workgrid/internal/domain"
	"workgrid.io/workgrid/internal/pkg/logger"
)

// AppendTx queues an envelope for publication in the caller's transaction.
func AppendTx(ctx context.Context, tx *ent.Tx, env *domain.Envelope) error {
	raw, err := env.ToJSON()
	if err != nil {
		return fmt.Errorf("serialize outbox envelope %s: %w", env.EventID, err)
	}
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Errorf("generate outbox id: %w", err)
	}
	if err := tx.OutboxEvent.Create().
		SetID(id.String()).
		SetTopic(env.Topic()).
		SetPartitionKey(env.PartitionKey()).
		SetPayload(raw).
		Exec(ctx); err != nil {
		return fmt.Errorf("append outbox event %s: %w", env.EventID, err)
	}
	return nil
}

// Drainer publishes committed outbox rows to the bus. One instance runs as a
// periodic job; a second concurrent drain would at worst publish a row twice,
// which downstream idempotency absorbs.
type Drainer struct {
	client    *ent.Client
	publisher bus.Publisher
	batchSize int
}

// NewDrainer creates a Drainer.
func NewDrainer(client *ent.Client, publisher bus.Publisher, batchSize int) *Drainer {
	if batchSize <= 0 {
		batchSize = 100
	}
	return &Drainer{client: client, publisher: publisher, batchSize: batchSize}
}

// Drain publishes up to one batch of unpublished rows in insertion order and
// stamps each one after the bus accepts it. Returns how many were published.
// Stops at the first publish failure so ordering within a partition key is
// preserved across runs.
func (d *Drainer) Drain(ctx context.Context) (int, error) {
	rows, err := d.client.OutboxEvent.Query().
		Where(outboxevent.PublishedAtIsNil()).
		Order(ent.Asc(outboxevent.FieldCreatedAt), ent.Asc(outboxevent.FieldID)).
		Limit(d.batchSize).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("query unpublished outbox events: %w", err)
	}

	published := 0
	for _, row := range rows {
		if err := d.publisher.Publish(ctx, row.Topic, row.PartitionKey, row.Payload); err != nil {
			return published, fmt.Errorf("publish outbox event %s to %s: %w", row.ID, row.Topic, err)
		}
		if err := d.client.OutboxEvent.UpdateOneID(row.ID).
			SetPublishedAt(time.Now().UTC()).
			Exec(ctx); err != nil {
			// Published but not stamped: the next drain re-publishes it and
			// consumers dedupe on event id.
			return published, fmt.Errorf("stamp outbox event %s: %w", row.ID, err)
		}
		published++
	}
	if published > 0 {
		logger.Debug("outbox drained", zap.Int("published", published))
	}
	return published, nil
}

// PruneBefore deletes published rows older than the cutoff. Unpublished rows
// are never pruned.
func (d *Drainer) PruneBefore(ctx context.Context, cutoff time.Time) (int, error) {
	deleted, err := d.client.OutboxEvent.Delete().
		Where(
			outboxevent.PublishedAtNotNil(),
			outboxevent.CreatedAtLT(cutoff),
		).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("prune outbox events: %w", err)
	}
	return deleted, nil
}
