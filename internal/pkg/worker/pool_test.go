package worker

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"workgrid.io/workgrid/internal/pkg/logger"
)

func init() {
	_ = logger.Init("error", "console")
}

func TestSubmitRunsTask(t *testing.T) {
	pools, err := NewPools(context.Background(), DefaultPoolConfig())
	if err != nil {
		t.Fatalf("NewPools: %v", err)
	}
	defer pools.Shutdown()

	done := make(chan struct{})
	if err := pools.General.Submit(context.Background(), func(ctx context.Context) {
		close(done)
	}); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("task did not run")
	}
}

func TestSubmitRejectsCancelledContext(t *testing.T) {
	pools, err := NewPools(context.Background(), DefaultPoolConfig())
	if err != nil {
		t.Fatalf("NewPools: %v", err)
	}
	defer pools.Shutdown()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var ran atomic.Bool
	err = pools.Partition.Submit(ctx, func(ctx context.Context) {
		ran.Store(true)
	})
	if err == nil {
		t.Fatal("expected error for cancelled context")
	}
	if ran.Load() {
		t.Fatal("task ran despite cancelled context")
	}
}

func TestSubmitDetachedUsesServiceContext(t *testing.T) {
	pools, err := NewPools(context.Background(), DefaultPoolConfig())
	if err != nil {
		t.Fatalf("NewPools: %v", err)
	}

	ctxCh := make(chan context.Context, 1)
	if err := pools.SubmitDetached("general", func(ctx context.Context) {
		ctxCh <- ctx
		<-ctx.Done()
	}); err != nil {
		t.Fatalf("SubmitDetached: %v", err)
	}

	var taskCtx context.Context
	select {
	case taskCtx = <-ctxCh:
	case <-time.After(2 * time.Second):
		t.Fatal("detached task did not start")
	}

	// Shutdown cancels the service context, releasing the task.
	pools.Shutdown()

	select {
	case <-taskCtx.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("service context not cancelled on shutdown")
	}
}
