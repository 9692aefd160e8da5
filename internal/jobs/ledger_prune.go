package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"workgrid.io/workgrid/internal/ledger"
	"workgrid.io/workgrid/internal/outbox"
	"workgrid.io/workgrid/internal/pkg/logger"
)

// DefaultLedgerRetention is how long processed-event markers are kept. It
// must exceed the bus's redelivery horizon by a wide margin, or a late
// redelivery would re-apply an already-applied event.
const DefaultLedgerRetention = 30 * 24 * time.Hour

// LedgerPruneArgs is the daily housekeeping job for the idempotency ledger
// and the published outbox backlog.
type LedgerPruneArgs struct{}

// Kind returns the job kind identifier for ledger pruning.
func (LedgerPruneArgs) Kind() string { return "ledger_prune" }

// InsertOpts ensures at most one prune job is enqueued within the same day.
func (LedgerPruneArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		Queue:       river.QueueDefault,
		MaxAttempts: 1,
		UniqueOpts: river.UniqueOpts{
			ByPeriod: 24 * time.Hour,
			ByQueue:  true,
			ByArgs:   true,
		},
	}
}

// LedgerPruneWorker removes expired processed-event markers and published
// outbox rows past retention.
type LedgerPruneWorker struct {
	river.WorkerDefaults[LedgerPruneArgs]
	ledger    *ledger.Ledger
	drainer   *outbox.Drainer
	retention time.Duration
}

// NewLedgerPruneWorker creates a prune worker. Non-positive retention falls
// back to the 30-day default.
func NewLedgerPruneWorker(l *ledger.Ledger, drainer *outbox.Drainer, retention time.Duration) *LedgerPruneWorker {
	if retention <= 0 {
		retention = DefaultLedgerRetention
	}
	return &LedgerPruneWorker{ledger: l, drainer: drainer, retention: retention}
}

// Work prunes both tables.
func (w *LedgerPruneWorker) Work(ctx context.Context, _ *river.Job[LedgerPruneArgs]) error {
	if w == nil || w.ledger == nil {
		return fmt.Errorf("ledger prune worker is not initialized")
	}

	pruned, err := w.ledger.Prune(ctx, w.retention)
	if err != nil {
		return err
	}

	cutoff := time.Now().UTC().Add(-w.retention)
	outboxPruned := 0
	if w.drainer != nil {
		outboxPruned, err = w.drainer.PruneBefore(ctx, cutoff)
		if err != nil {
			return err
		}
	}

	logger.Info("ledger prune completed",
		zap.Int("processed_events", pruned),
		zap.Int("outbox_rows", outboxPruned),
		zap.Duration("retention", w.retention),
	)
	return nil
}
