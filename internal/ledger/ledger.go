// Package ledger implements the idempotency ledger: the per-consumer record
// of already-applied event ids that turns at-least-once delivery into
// exactly-once effect.
package ledger

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"workgrid.io/workgrid/ent"
	"workgrid.io/workgrid/ent/processedevent"
	apperrors "workgrid.io/workgrid/internal/pkg/errors"
	"workgrid.io/workgrid/internal/pkg/logger"
)

// Effect is the business-effect half of an atomic apply. It must perform all
// writes through the supplied transaction so the effect and the ledger row
// commit or roll back together.
type Effect func(ctx context.Context, tx *ent.Tx) error

// Ledger records processed event ids for one consumer group.
type Ledger struct {
	client     *ent.Client
	consumerID string
}

// New creates a Ledger for the given consumer group.
func New(client *ent.Client, consumerID string) *Ledger {
	return &Ledger{client: client, consumerID: consumerID}
}

// ConsumerID returns the consumer group this ledger records for.
func (l *Ledger) ConsumerID() string { return l.consumerID }

// HasProcessed reports whether the event's effect was already applied.
// Store unavailability is a transient error: the caller must not apply the
// effect and must let the bus redeliver.
func (l *Ledger) HasProcessed(ctx context.Context, eventID string) (bool, error) {
	exists, err := l.client.ProcessedEvent.Query().
		Where(
			processedevent.ConsumerID(l.consumerID),
			processedevent.EventID(eventID),
		).
		Exist(ctx)
	if err != nil {
		return false, apperrors.Transient("LEDGER_UNAVAILABLE", "query idempotency ledger", err)
	}
	return exists, nil
}

// Apply runs the effect and records the event as processed in one
// transaction. Returns applied=false without running the effect when the
// event was already processed. A concurrent duplicate that loses the unique
// (consumer_id, event_id) race rolls back its effect and reports
// applied=false.
func (l *Ledger) Apply(ctx context.Context, eventID string, effect Effect) (applied bool, err error) {
	tx, err := l.client.Tx(ctx)
	if err != nil {
		return false, apperrors.Transient("LEDGER_UNAVAILABLE", "begin ledger transaction", err)
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil && !errIsTxDone(rerr) {
				logger.Warn("ledger rollback failed", zap.String("event_id", eventID), zap.Error(rerr))
			}
		}
	}()

	// Check inside the transaction so the read and the insert see the same
	// snapshot.
	exists, err := tx.ProcessedEvent.Query().
		Where(
			processedevent.ConsumerID(l.consumerID),
			processedevent.EventID(eventID),
		).
		Exist(ctx)
	if err != nil {
		err = apperrors.Transient("LEDGER_UNAVAILABLE", "query idempotency ledger", err)
		return false, err
	}
	if exists {
		if cerr := tx.Rollback(); cerr != nil && !errIsTxDone(cerr) {
			logger.Warn("ledger rollback failed", zap.String("event_id", eventID), zap.Error(cerr))
		}
		return false, nil
	}

	if err = effect(ctx, tx); err != nil {
		return false, err
	}

	if _, err = tx.ProcessedEvent.Create().
		SetConsumerID(l.consumerID).
		SetEventID(eventID).
		SetProcessedAt(time.Now().UTC()).
		Save(ctx); err != nil {
		if ent.IsConstraintError(err) {
			// A concurrent worker won the race; its effect stands, ours
			// rolls back.
			if rerr := tx.Rollback(); rerr != nil && !errIsTxDone(rerr) {
				logger.Warn("ledger rollback failed", zap.String("event_id", eventID), zap.Error(rerr))
			}
			return false, nil
		}
		err = apperrors.Transient("LEDGER_UNAVAILABLE", "record processed event", err)
		return false, err
	}

	if err = tx.Commit(); err != nil {
		err = apperrors.Transient("LEDGER_UNAVAILABLE", "commit ledger transaction", err)
		return false, err
	}
	return true, nil
}

// Prune removes ledger rows older than the retention window. Duplicates
// arriving after pruning are reprocessed; effects are idempotent at the data
// layer, so correctness holds.
func (l *Ledger) Prune(ctx context.Context, retention time.Duration) (int, error) {
	if retention <= 0 {
		return 0, fmt.Errorf("ledger retention must be positive")
	}
	cutoff := time.Now().UTC().Add(-retention)
	deleted, err := l.client.ProcessedEvent.Delete().
		Where(
			processedevent.ConsumerID(l.consumerID),
			processedevent.ProcessedAtLT(cutoff),
		).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("prune ledger before %s: %w", cutoff.Format(time.RFC3339), err)
	}
	return deleted, nil
}

func errIsTxDone(err error) bool {
	return errors.Is(err, sql.ErrTxDone)
}
