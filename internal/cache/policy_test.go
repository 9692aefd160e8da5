package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"workgrid.io/workgrid/ent"
	"workgrid.io/workgrid/ent/entitlementdiscrepancy"
	apperrors "workgrid.io/workgrid/internal/pkg/errors"
	"workgrid.io/workgrid/internal/pkg/logger"
	"workgrid.io/workgrid/internal/testutil"
)

func init() {
	_ = logger.Init("error", "console")
}

func seedMembership(t *testing.T, client *ent.Client, tenantID, userID, role string, cachedAt time.Time) {
	t.Helper()
	require.NoError(t, client.MembershipEntry.Create().
		SetTenantID(tenantID).
		SetUserID(userID).
		SetRole(role).
		SetCachedAt(cachedAt).
		Exec(context.Background()))
}

func seedEntitlements(t *testing.T, client *ent.Client, tenantID string, limits Entitlements) {
	t.Helper()
	require.NoError(t, client.EntitlementEntry.Create().
		SetTenantID(tenantID).
		SetMaxProjects(limits.MaxProjects).
		SetMaxMembers(limits.MaxMembers).
		SetMaxStorageMB(limits.MaxStorageMB).
		SetFeatures(limits.Features).
		SetCachedAt(limits.CachedAt).
		Exec(context.Background()))
}

func TestAuthorizeHit(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "policy_authorize")
	engine := NewEngine(NewStore(client), client, 24*time.Hour)

	seedMembership(t, client, "tenant-1", "user-1", "admin", time.Now().UTC())

	role, err := engine.Authorize(context.Background(), "tenant-1", "user-1")
	require.NoError(t, err)
	require.Equal(t, "admin", role)
}

func TestAuthorizeFailsClosedOnMiss(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "policy_miss")
	engine := NewEngine(NewStore(client), client, 24*time.Hour)

	_, err := engine.Authorize(context.Background(), "tenant-1", "user-unknown")
	require.Error(t, err)
	require.True(t, apperrors.IsPolicyViolation(err))
}

func TestAuthorizeFailsClosedOnStaleEntry(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "policy_stale")
	engine := NewEngine(NewStore(client), client, time.Hour)

	seedMembership(t, client, "tenant-1", "user-1", "admin", time.Now().UTC().Add(-2*time.Hour))

	_, err := engine.Authorize(context.Background(), "tenant-1", "user-1")
	require.Error(t, err)
	require.True(t, apperrors.IsPolicyViolation(err))
}

func TestAuthorizeFailsClosedOnStoreFailure(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "policy_down")
	engine := NewEngine(NewStore(client), client, 24*time.Hour)

	seedMembership(t, client, "tenant-1", "user-1", "admin", time.Now().UTC())
	require.NoError(t, client.Close())

	_, err := engine.Authorize(context.Background(), "tenant-1", "user-1")
	require.Error(t, err)
	require.True(t, apperrors.IsPolicyViolation(err))
}

func TestLimitsHit(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "policy_limits")
	engine := NewEngine(NewStore(client), client, 24*time.Hour)

	seedEntitlements(t, client, "tenant-1", Entitlements{
		MaxProjects:  50,
		MaxMembers:   200,
		MaxStorageMB: 10240,
		Features:     []string{"sso", "audit_export"},
		CachedAt:     time.Now().UTC(),
	})

	limits, err := engine.Limits(context.Background(), "tenant-1", "project.create")
	require.NoError(t, err)
	require.Equal(t, 50, limits.MaxProjects)
	require.Equal(t, []string{"sso", "audit_export"}, limits.Features)

	// A hit must not leave a discrepancy behind.
	count, err := client.EntitlementDiscrepancy.Query().Count(context.Background())
	require.NoError(t, err)
	require.Zero(t, count)
}

func TestLimitsFailsOpenOnMiss(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "policy_failopen")
	engine := NewEngine(NewStore(client), client, 24*time.Hour)
	ctx := context.Background()

	limits, err := engine.Limits(ctx, "tenant-unknown", "project.create")
	require.NoError(t, err, "fail-open must never reject the operation")
	require.Equal(t, DefaultEntitlements, limits)

	rows, err := client.EntitlementDiscrepancy.Query().
		Where(entitlementdiscrepancy.TenantID("tenant-unknown")).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "project.create", rows[0].Operation)
	require.False(t, rows[0].Reconciled)
}

func TestLimitsFailsOpenOnStaleEntry(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "policy_limits_stale")
	engine := NewEngine(NewStore(client), client, time.Hour)
	ctx := context.Background()

	seedEntitlements(t, client, "tenant-1", Entitlements{
		MaxProjects:  50,
		MaxMembers:   200,
		MaxStorageMB: 10240,
		CachedAt:     time.Now().UTC().Add(-2 * time.Hour),
	})

	limits, err := engine.Limits(ctx, "tenant-1", "member.invite")
	require.NoError(t, err)
	require.Equal(t, DefaultEntitlements, limits)

	count, err := client.EntitlementDiscrepancy.Query().
		Where(entitlementdiscrepancy.TenantID("tenant-1")).
		Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, count)
}

func TestSweepOlderThan(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "cache_sweep")
	store := NewStore(client)
	ctx := context.Background()

	seedMembership(t, client, "tenant-1", "user-old", "member", time.Now().UTC().Add(-48*time.Hour))
	seedMembership(t, client, "tenant-1", "user-new", "member", time.Now().UTC())
	seedEntitlements(t, client, "tenant-old", Entitlements{CachedAt: time.Now().UTC().Add(-48 * time.Hour)})

	deleted, err := store.SweepOlderThan(ctx, 24*time.Hour)
	require.NoError(t, err)
	require.Equal(t, 2, deleted)

	m, err := store.GetMembership(ctx, "tenant-1", "user-new")
	require.NoError(t, err)
	require.NotNil(t, m)

	_, err = store.SweepOlderThan(ctx, 0)
	require.Error(t, err)
}

func TestPurgeTenantTx(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "cache_purge")
	ctx := context.Background()

	seedMembership(t, client, "tenant-1", "user-1", "admin", time.Now().UTC())
	seedMembership(t, client, "tenant-1", "user-2", "member", time.Now().UTC())
	seedMembership(t, client, "tenant-2", "user-3", "admin", time.Now().UTC())
	seedEntitlements(t, client, "tenant-1", Entitlements{MaxProjects: 5, CachedAt: time.Now().UTC()})

	tx, err := client.Tx(ctx)
	require.NoError(t, err)
	purged, err := PurgeTenantTx(ctx, tx, "tenant-1")
	require.NoError(t, err)
	require.NoError(t, tx.Commit())
	require.Equal(t, 3, purged)

	// Re-invoking is harmless.
	tx, err = client.Tx(ctx)
	require.NoError(t, err)
	purged, err = PurgeTenantTx(ctx, tx, "tenant-1")
	require.NoError(t, err)
	require.NoError(t, tx.Commit())
	require.Zero(t, purged)

	other, err := NewStore(client).GetMembership(ctx, "tenant-2", "user-3")
	require.NoError(t, err)
	require.NotNil(t, other)
}
