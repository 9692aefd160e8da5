// Package jobs holds the river background jobs: outbox draining and the
// retention housekeeping for the ledger and the projection cache.
package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/riverqueue/river"

	"workgrid.io/workgrid/internal/outbox"
)

// OutboxDrainArgs is the periodic job that publishes committed outbox rows to
// the bus.
type OutboxDrainArgs struct{}

// Kind returns the job kind identifier for outbox draining.
func (OutboxDrainArgs) Kind() string { return "outbox_drain" }

// InsertOpts keeps at most one drain job queued per tick window.
func (OutboxDrainArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		Queue:       river.QueueDefault,
		MaxAttempts: 1,
		UniqueOpts: river.UniqueOpts{
			ByPeriod: time.Minute,
			ByQueue:  true,
			ByArgs:   true,
		},
	}
}

// OutboxDrainWorker drains the transactional outbox until it is empty.
type OutboxDrainWorker struct {
	river.WorkerDefaults[OutboxDrainArgs]
	drainer *outbox.Drainer
}

// NewOutboxDrainWorker creates a drain worker.
func NewOutboxDrainWorker(drainer *outbox.Drainer) *OutboxDrainWorker {
	return &OutboxDrainWorker{drainer: drainer}
}

// Work publishes batches until none remain. A publish failure ends the run;
// the next tick picks up where this one stopped.
func (w *OutboxDrainWorker) Work(ctx context.Context, _ *river.Job[OutboxDrainArgs]) error {
	if w == nil || w.drainer == nil {
		return fmt.Errorf("outbox drain worker is not initialized")
	}
	for {
		published, err := w.drainer.Drain(ctx)
		if err != nil {
			return err
		}
		if published == 0 {
			return nil
		}
	}
}
