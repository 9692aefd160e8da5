package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"workgrid.io/workgrid/internal/cache"
	"workgrid.io/workgrid/internal/pkg/logger"
)

// DefaultCacheMaxAge is the safety-net TTL for projection rows whose
// invalidation event was permanently lost. Event-driven invalidation remains
// authoritative; this only bounds how long a zombie entry can live.
const DefaultCacheMaxAge = 24 * time.Hour

// CacheSweepArgs is the periodic job that evicts projection rows past the
// safety-net TTL.
type CacheSweepArgs struct{}

// Kind returns the job kind identifier for cache sweeping.
func (CacheSweepArgs) Kind() string { return "cache_sweep" }

// InsertOpts keeps at most one sweep queued per hour.
func (CacheSweepArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		Queue:       river.QueueDefault,
		MaxAttempts: 1,
		UniqueOpts: river.UniqueOpts{
			ByPeriod: time.Hour,
			ByQueue:  true,
			ByArgs:   true,
		},
	}
}

// CacheSweepWorker evicts stale projection rows.
type CacheSweepWorker struct {
	river.WorkerDefaults[CacheSweepArgs]
	store  *cache.Store
	maxAge time.Duration
}

// NewCacheSweepWorker creates a sweep worker. Non-positive maxAge falls back
// to the 24-hour default.
func NewCacheSweepWorker(store *cache.Store, maxAge time.Duration) *CacheSweepWorker {
	if maxAge <= 0 {
		maxAge = DefaultCacheMaxAge
	}
	return &CacheSweepWorker{store: store, maxAge: maxAge}
}

// Work deletes projection rows older than the safety-net TTL.
func (w *CacheSweepWorker) Work(ctx context.Context, _ *river.Job[CacheSweepArgs]) error {
	if w == nil || w.store == nil {
		return fmt.Errorf("cache sweep worker is not initialized")
	}

	deleted, err := w.store.SweepOlderThan(ctx, w.maxAge)
	if err != nil {
		return err
	}
	if deleted > 0 {
		logger.Warn("cache sweep evicted stale projections, check event delivery",
			zap.Int("deleted_rows", deleted),
			zap.Duration("max_age", w.maxAge),
		)
	}
	return nil
}
