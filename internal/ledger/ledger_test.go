package ledger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"workgrid.io/workgrid/ent"
	"workgrid.io/workgrid/ent/membershipentry"
	"workgrid.io/workgrid/ent/processedevent"
	apperrors "workgrid.io/workgrid/internal/pkg/errors"
	"workgrid.io/workgrid/internal/pkg/logger"
	"workgrid.io/workgrid/internal/testutil"
)

func init() {
	_ = logger.Init("error", "console")
}

func TestApplyOnce(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "ledger_apply")
	l := New(client, "workgrid-core")
	ctx := context.Background()

	applied, err := l.Apply(ctx, "evt-1", func(ctx context.Context, tx *ent.Tx) error {
		return tx.MembershipEntry.Create().
			SetTenantID("tenant-1").
			SetUserID("user-1").
			SetRole("admin").
			Exec(ctx)
	})
	require.NoError(t, err)
	require.True(t, applied)

	processed, err := l.HasProcessed(ctx, "evt-1")
	require.NoError(t, err)
	require.True(t, processed)

	count, err := client.MembershipEntry.Query().
		Where(membershipentry.TenantID("tenant-1")).
		Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, count)
}

func TestApplyDuplicateIsNoOp(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "ledger_dup")
	l := New(client, "workgrid-core")
	ctx := context.Background()

	effectRuns := 0
	effect := func(ctx context.Context, tx *ent.Tx) error {
		effectRuns++
		return tx.MembershipEntry.Create().
			SetTenantID("tenant-1").
			SetUserID("user-1").
			SetRole("admin").
			OnConflictColumns(membershipentry.FieldTenantID, membershipentry.FieldUserID).
			UpdateNewValues().
			Exec(ctx)
	}

	for i := 0; i < 3; i++ {
		applied, err := l.Apply(ctx, "evt-dup", effect)
		require.NoError(t, err)
		if i == 0 {
			require.True(t, applied)
		} else {
			require.False(t, applied)
		}
	}
	require.Equal(t, 1, effectRuns)
}

func TestApplyRollsBackEffectOnError(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "ledger_rollback")
	l := New(client, "workgrid-core")
	ctx := context.Background()

	boom := errors.New("participant unavailable")
	applied, err := l.Apply(ctx, "evt-fail", func(ctx context.Context, tx *ent.Tx) error {
		if err := tx.MembershipEntry.Create().
			SetTenantID("tenant-1").
			SetUserID("user-1").
			SetRole("admin").
			Exec(ctx); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)
	require.False(t, applied)

	// Neither the effect nor the ledger row survived.
	count, err := client.MembershipEntry.Query().Count(ctx)
	require.NoError(t, err)
	require.Zero(t, count)

	processed, err := l.HasProcessed(ctx, "evt-fail")
	require.NoError(t, err)
	require.False(t, processed)
}

func TestLedgersAreConsumerScoped(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "ledger_scope")
	core := New(client, "workgrid-core")
	audit := New(client, "workgrid-audit")
	ctx := context.Background()

	applied, err := core.Apply(ctx, "evt-1", func(ctx context.Context, tx *ent.Tx) error { return nil })
	require.NoError(t, err)
	require.True(t, applied)

	processed, err := audit.HasProcessed(ctx, "evt-1")
	require.NoError(t, err)
	require.False(t, processed, "another consumer group must see the event as unprocessed")
}

func TestPrune(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "ledger_prune")
	l := New(client, "workgrid-core")
	ctx := context.Background()

	old := time.Now().UTC().Add(-48 * time.Hour)
	require.NoError(t, client.ProcessedEvent.Create().
		SetConsumerID("workgrid-core").
		SetEventID("evt-old").
		SetProcessedAt(old).
		Exec(ctx))
	require.NoError(t, client.ProcessedEvent.Create().
		SetConsumerID("workgrid-core").
		SetEventID("evt-new").
		SetProcessedAt(time.Now().UTC()).
		Exec(ctx))

	deleted, err := l.Prune(ctx, 24*time.Hour)
	require.NoError(t, err)
	require.Equal(t, 1, deleted)

	remaining, err := client.ProcessedEvent.Query().
		Where(processedevent.ConsumerID("workgrid-core")).
		Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, remaining)

	_, err = l.Prune(ctx, 0)
	require.Error(t, err)
}

func TestHasProcessedClassifiesStoreFailure(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "ledger_unavail")
	l := New(client, "workgrid-core")

	// Closing the client makes the store unavailable; the caller must get a
	// transient error, not a false "unprocessed".
	require.NoError(t, client.Close())

	_, err := l.HasProcessed(context.Background(), "evt-1")
	require.Error(t, err)
	require.True(t, apperrors.IsTransient(err))
}
