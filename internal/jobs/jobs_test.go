package jobs

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/riverqueue/river"
)

func TestJobKinds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		args river.JobArgs
		want string
	}{
		{OutboxDrainArgs{}, "outbox_drain"},
		{LedgerPruneArgs{}, "ledger_prune"},
		{CacheSweepArgs{}, "cache_sweep"},
	}
	for _, tt := range tests {
		if got := tt.args.Kind(); got != tt.want {
			t.Fatalf("Kind() = %q, want %q", got, tt.want)
		}
	}
}

func TestJobInsertOptsAreUniquePerPeriod(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		opts   river.InsertOpts
		period time.Duration
	}{
		{"outbox_drain", OutboxDrainArgs{}.InsertOpts(), time.Minute},
		{"ledger_prune", LedgerPruneArgs{}.InsertOpts(), 24 * time.Hour},
		{"cache_sweep", CacheSweepArgs{}.InsertOpts(), time.Hour},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.opts.Queue != river.QueueDefault {
				t.Fatalf("Queue = %q, want %q", tt.opts.Queue, river.QueueDefault)
			}
			if tt.opts.MaxAttempts != 1 {
				t.Fatalf("MaxAttempts = %d, want 1", tt.opts.MaxAttempts)
			}
			if tt.opts.UniqueOpts.ByPeriod != tt.period {
				t.Fatalf("UniqueOpts.ByPeriod = %s, want %s", tt.opts.UniqueOpts.ByPeriod, tt.period)
			}
			if !tt.opts.UniqueOpts.ByQueue || !tt.opts.UniqueOpts.ByArgs {
				t.Fatal("UniqueOpts must scope by queue and args")
			}
		})
	}
}

func TestWorkerDefaults(t *testing.T) {
	t.Parallel()

	if w := NewLedgerPruneWorker(nil, nil, 0); w.retention != DefaultLedgerRetention {
		t.Fatalf("retention = %s, want %s", w.retention, DefaultLedgerRetention)
	}
	if w := NewLedgerPruneWorker(nil, nil, 7*24*time.Hour); w.retention != 7*24*time.Hour {
		t.Fatalf("retention = %s, want %s", w.retention, 7*24*time.Hour)
	}
	if w := NewCacheSweepWorker(nil, 0); w.maxAge != DefaultCacheMaxAge {
		t.Fatalf("maxAge = %s, want %s", w.maxAge, DefaultCacheMaxAge)
	}
}

func TestWorkersRejectUninitializedState(t *testing.T) {
	t.Parallel()

	workers := []struct {
		name string
		work func() error
	}{
		{"outbox_drain nil receiver", func() error {
			var w *OutboxDrainWorker
			return w.Work(context.Background(), nil)
		}},
		{"outbox_drain nil drainer", func() error {
			return (&OutboxDrainWorker{}).Work(context.Background(), nil)
		}},
		{"ledger_prune nil ledger", func() error {
			return (&LedgerPruneWorker{}).Work(context.Background(), nil)
		}},
		{"cache_sweep nil store", func() error {
			return (&CacheSweepWorker{}).Work(context.Background(), nil)
		}},
	}
	for _, tt := range workers {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.work()
			if err == nil || !strings.Contains(err.Error(), "not initialized") {
				t.Fatalf("Work() error = %v, want contains %q", err, "not initialized")
			}
		})
	}
}
