package dispatch

import (
	"context"
	"encoding/json"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"workgrid.io/workgrid/ent"
	"workgrid.io/workgrid/ent/deadletter"
	"workgrid.io/workgrid/ent/membershipentry"
	"workgrid.io/workgrid/internal/bus"
	"workgrid.io/workgrid/internal/domain"
	"workgrid.io/workgrid/internal/ledger"
	apperrors "workgrid.io/workgrid/internal/pkg/errors"
	"workgrid.io/workgrid/internal/pkg/logger"
	"workgrid.io/workgrid/internal/pkg/worker"
	"workgrid.io/workgrid/internal/testutil"
)

func init() {
	_ = logger.Init("error", "console")
}

func testConfig() Config {
	return Config{
		HandlerTimeout:  5 * time.Second,
		MaxRetries:      3,
		RetryBackoff:    time.Millisecond,
		RetryBackoffMax: 5 * time.Millisecond,
		BatchSize:       16,
	}
}

func newTestDispatcher(t *testing.T, prefix string) (*Dispatcher, *ent.Client) {
	t.Helper()
	client := testutil.OpenEntPostgres(t, prefix)
	l := ledger.New(client, "workgrid-core")
	return New(testConfig(), l, NewSink(client), nil), client
}

func memberAddedEnvelope(t *testing.T, tenantID, userID string) *domain.Envelope {
	t.Helper()
	env, err := domain.NewEnvelope(domain.EventMemberAdded, "membership-service", tenantID,
		domain.MemberAddedPayload{UserID: userID, Role: "member"})
	require.NoError(t, err)
	return env
}

func deadLetterCount(t *testing.T, client *ent.Client) int {
	t.Helper()
	count, err := client.DeadLetter.Query().Count(context.Background())
	require.NoError(t, err)
	return count
}

func TestProcessAppliesHandlerExactlyOnce(t *testing.T) {
	d, client := newTestDispatcher(t, "dispatch_once")
	ctx := context.Background()

	var calls atomic.Int32
	d.Register(domain.EventMemberAdded, "counter", []string{domain.Version10, domain.Version11},
		func(ctx context.Context, tx *ent.Tx, env *domain.Envelope) error {
			calls.Add(1)
			return nil
		})

	env := memberAddedEnvelope(t, "tenant-1", "user-1")
	raw, err := env.ToJSON()
	require.NoError(t, err)

	require.NoError(t, d.Process(ctx, env, raw))
	require.NoError(t, d.Process(ctx, env, raw))

	require.Equal(t, int32(1), calls.Load())
	require.Zero(t, deadLetterCount(t, client))
}

func TestProcessUnsupportedVersionDeadLetters(t *testing.T) {
	d, client := newTestDispatcher(t, "dispatch_version")
	ctx := context.Background()

	var calls atomic.Int32
	d.Register(domain.EventMemberAdded, "counter", []string{domain.Version10, domain.Version11},
		func(ctx context.Context, tx *ent.Tx, env *domain.Envelope) error {
			calls.Add(1)
			return nil
		})

	env := memberAddedEnvelope(t, "tenant-1", "user-1")
	env.EventVersion = "0.9"
	raw, err := env.ToJSON()
	require.NoError(t, err)

	require.NoError(t, d.Process(ctx, env, raw))
	require.Zero(t, calls.Load(), "unsupported version must never reach the handler")

	rows, err := client.DeadLetter.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Contains(t, rows[0].FailureReason, "unsupported schema version")
	require.Equal(t, env.EventID, rows[0].EventID)
}

func TestProcessPoisonDeadLettersWithoutRetry(t *testing.T) {
	d, client := newTestDispatcher(t, "dispatch_poison")
	ctx := context.Background()

	var calls atomic.Int32
	d.Register(domain.EventMemberAdded, "poisoner", []string{domain.Version11},
		func(ctx context.Context, tx *ent.Tx, env *domain.Envelope) error {
			calls.Add(1)
			return apperrors.Poison("BAD_PAYLOAD", "unusable payload", nil)
		})

	env := memberAddedEnvelope(t, "tenant-1", "user-1")
	raw, err := env.ToJSON()
	require.NoError(t, err)

	require.NoError(t, d.Process(ctx, env, raw))
	require.Equal(t, int32(1), calls.Load(), "poison must not be retried")

	rows, err := client.DeadLetter.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, 1, rows[0].Attempts)
}

func TestProcessRetriesTransientThenDeadLetters(t *testing.T) {
	d, client := newTestDispatcher(t, "dispatch_exhaust")
	ctx := context.Background()

	var calls atomic.Int32
	d.Register(domain.EventMemberAdded, "flaky", []string{domain.Version11},
		func(ctx context.Context, tx *ent.Tx, env *domain.Envelope) error {
			calls.Add(1)
			return apperrors.Transient("DOWNSTREAM_DOWN", "dependency unavailable", nil)
		})

	env := memberAddedEnvelope(t, "tenant-1", "user-1")
	raw, err := env.ToJSON()
	require.NoError(t, err)

	require.NoError(t, d.Process(ctx, env, raw))
	require.Equal(t, int32(3), calls.Load())

	rows, err := client.DeadLetter.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Contains(t, rows[0].FailureReason, "retries exhausted")
	require.Equal(t, 3, rows[0].Attempts)
}

func TestProcessRecoversAfterTransientFailure(t *testing.T) {
	d, client := newTestDispatcher(t, "dispatch_recover")
	ctx := context.Background()

	var calls atomic.Int32
	d.Register(domain.EventMemberAdded, "flaky", []string{domain.Version11},
		func(ctx context.Context, tx *ent.Tx, env *domain.Envelope) error {
			if calls.Add(1) < 3 {
				return apperrors.Transient("DOWNSTREAM_DOWN", "dependency unavailable", nil)
			}
			return tx.MembershipEntry.Create().
				SetTenantID(env.TenantID).
				SetUserID("user-1").
				SetRole("member").
				Exec(ctx)
		})

	env := memberAddedEnvelope(t, "tenant-1", "user-1")
	raw, err := env.ToJSON()
	require.NoError(t, err)

	require.NoError(t, d.Process(ctx, env, raw))
	require.Equal(t, int32(3), calls.Load())
	require.Zero(t, deadLetterCount(t, client))

	count, err := client.MembershipEntry.Query().
		Where(membershipentry.TenantID("tenant-1")).
		Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, count, "only the successful attempt's write survives")
}

func TestProcessWithoutHandlersIsSkipped(t *testing.T) {
	d, client := newTestDispatcher(t, "dispatch_nohandler")

	env := memberAddedEnvelope(t, "tenant-1", "user-1")
	raw, err := env.ToJSON()
	require.NoError(t, err)

	require.NoError(t, d.Process(context.Background(), env, raw))
	require.Zero(t, deadLetterCount(t, client))
}

func TestReplayRunsDeadLetterThroughPipeline(t *testing.T) {
	d, client := newTestDispatcher(t, "dispatch_replay")
	ctx := context.Background()

	var calls atomic.Int32
	d.Register(domain.EventMemberAdded, "counter", []string{domain.Version11},
		func(ctx context.Context, tx *ent.Tx, env *domain.Envelope) error {
			calls.Add(1)
			return nil
		})

	env := memberAddedEnvelope(t, "tenant-1", "user-1")
	raw, err := env.ToJSON()
	require.NoError(t, err)
	require.NoError(t, d.sink.Send(ctx, env.Topic(), env.EventID, raw, "handler crashed", 3))

	rows, err := client.DeadLetter.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	require.NoError(t, d.Replay(ctx, rows[0].ID))
	require.Equal(t, int32(1), calls.Load())

	replayed, err := client.DeadLetter.Query().
		Where(deadletter.ReplayedAtNotNil()).
		Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, replayed)

	// Replaying again is safe: the ledger skips the duplicate.
	require.NoError(t, d.Replay(ctx, rows[0].ID))
	require.Equal(t, int32(1), calls.Load())
}

func TestRunConsumesFromBus(t *testing.T) {
	d, client := newTestDispatcher(t, "dispatch_run")
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pools, err := worker.NewPools(ctx, worker.DefaultPoolConfig())
	require.NoError(t, err)
	defer pools.Shutdown()
	d.pools = pools

	d.Register(domain.EventMemberAdded, "projector", []string{domain.Version10, domain.Version11},
		func(ctx context.Context, tx *ent.Tx, env *domain.Envelope) error {
			var p domain.MemberAddedPayload
			if err := json.Unmarshal(env.Data, &p); err != nil {
				return apperrors.Poison("BAD_PAYLOAD", "decode member payload", err)
			}
			return tx.MembershipEntry.Create().
				SetTenantID(env.TenantID).
				SetUserID(p.UserID).
				SetRole(p.Role).
				OnConflictColumns(membershipentry.FieldTenantID, membershipentry.FieldUserID).
				UpdateNewValues().
				Exec(ctx)
		})

	b := bus.NewMemoryBus(4)
	sub, err := b.Subscribe("workgrid-core", d.Topics()...)
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = d.Run(ctx, sub)
	}()

	for _, userID := range []string{"user-1", "user-2", "user-3"} {
		env := memberAddedEnvelope(t, "tenant-1", userID)
		raw, err := env.ToJSON()
		require.NoError(t, err)
		require.NoError(t, b.Publish(ctx, env.Topic(), env.PartitionKey(), raw))
	}

	require.Eventually(t, func() bool {
		count, err := client.MembershipEntry.Query().
			Where(membershipentry.TenantID("tenant-1")).
			Count(context.Background())
		return err == nil && count == 3
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("dispatcher did not stop after cancellation")
	}
}

func TestPrioritizeRemovals(t *testing.T) {
	mk := func(eventType domain.EventType, tenantID string) *item {
		return &item{env: &domain.Envelope{EventType: eventType, TenantID: tenantID}}
	}

	tests := []struct {
		name string
		in   []*item
		want []domain.EventType
	}{
		{
			name: "removal overtakes same-tenant entitlement update",
			in: []*item{
				mk(domain.EventEntitlementsUpdated, "tenant-1"),
				mk(domain.EventMemberRemoved, "tenant-1"),
			},
			want: []domain.EventType{domain.EventMemberRemoved, domain.EventEntitlementsUpdated},
		},
		{
			name: "removal never overtakes same-tenant membership event",
			in: []*item{
				mk(domain.EventMemberAdded, "tenant-1"),
				mk(domain.EventMemberRemoved, "tenant-1"),
			},
			want: []domain.EventType{domain.EventMemberAdded, domain.EventMemberRemoved},
		},
		{
			name: "removal overtakes other tenants' membership events",
			in: []*item{
				mk(domain.EventMemberAdded, "tenant-2"),
				mk(domain.EventMemberRemoved, "tenant-1"),
			},
			want: []domain.EventType{domain.EventMemberRemoved, domain.EventMemberAdded},
		},
		{
			name: "removal stops behind the blocking membership event",
			in: []*item{
				mk(domain.EventMemberRoleChanged, "tenant-1"),
				mk(domain.EventEntitlementsUpdated, "tenant-1"),
				mk(domain.EventMemberRemoved, "tenant-1"),
			},
			want: []domain.EventType{
				domain.EventMemberRoleChanged,
				domain.EventMemberRemoved,
				domain.EventEntitlementsUpdated,
			},
		},
		{
			name: "two removals keep their relative order",
			in: []*item{
				mk(domain.EventEntitlementsUpdated, "tenant-1"),
				mk(domain.EventMemberRemoved, "tenant-1"),
				mk(domain.EventMemberRemoved, "tenant-1"),
			},
			want: []domain.EventType{
				domain.EventMemberRemoved,
				domain.EventMemberRemoved,
				domain.EventEntitlementsUpdated,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prioritizeRemovals(tt.in)
			got := make([]domain.EventType, len(tt.in))
			for i, it := range tt.in {
				got[i] = it.env.EventType
			}
			require.Equal(t, tt.want, got)
		})
	}
}
