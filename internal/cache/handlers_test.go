package cache

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"workgrid.io/workgrid/ent"
	"workgrid.io/workgrid/internal/domain"
	"workgrid.io/workgrid/internal/ledger"
	apperrors "workgrid.io/workgrid/internal/pkg/errors"
	"workgrid.io/workgrid/internal/testutil"
)

func mustEnvelope(t *testing.T, eventType domain.EventType, version, tenantID string, payload any) *domain.Envelope {
	t.Helper()
	env, err := domain.NewEnvelope(eventType, "membership-service", tenantID, payload)
	require.NoError(t, err)
	env.EventVersion = version
	return env
}

// applyThroughLedger runs a handler the way the dispatcher does: inside the
// idempotency ledger's transaction, keyed by the envelope's event id.
func applyThroughLedger(t *testing.T, l *ledger.Ledger, env *domain.Envelope, fn func(context.Context, *ent.Tx, *domain.Envelope) error) (bool, error) {
	t.Helper()
	return l.Apply(context.Background(), env.EventID, func(ctx context.Context, tx *ent.Tx) error {
		return fn(ctx, tx, env)
	})
}

func TestMemberAddedDeliveredTwiceCreatesOneEntry(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "handlers_dup_add")
	l := ledger.New(client, "workgrid-core")
	ctx := context.Background()

	env := mustEnvelope(t, domain.EventMemberAdded, domain.Version11, "tenant-1",
		domain.MemberAddedPayload{UserID: "user-1", Role: "admin"})

	for i := 0; i < 2; i++ {
		applied, err := applyThroughLedger(t, l, env, HandleMembershipUpsert)
		require.NoError(t, err)
		require.Equal(t, i == 0, applied)
	}

	count, err := client.MembershipEntry.Query().Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, count)

	m, err := NewStore(client).GetMembership(ctx, "tenant-1", "user-1")
	require.NoError(t, err)
	require.NotNil(t, m)
	require.Equal(t, "admin", m.Role)
}

func TestMemberAddedDecodesPreviousSchemaVersion(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "handlers_v10")
	l := ledger.New(client, "workgrid-core")
	ctx := context.Background()

	// 1.0 carried the role under role_name.
	env := mustEnvelope(t, domain.EventMemberAdded, domain.Version10, "tenant-1",
		map[string]string{"user_id": "user-1", "role_name": "member"})

	applied, err := applyThroughLedger(t, l, env, HandleMembershipUpsert)
	require.NoError(t, err)
	require.True(t, applied)

	m, err := NewStore(client).GetMembership(ctx, "tenant-1", "user-1")
	require.NoError(t, err)
	require.NotNil(t, m)
	require.Equal(t, "member", m.Role)
}

func TestRoleChangedOverwritesRole(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "handlers_role")
	l := ledger.New(client, "workgrid-core")
	ctx := context.Background()

	added := mustEnvelope(t, domain.EventMemberAdded, domain.Version11, "tenant-1",
		domain.MemberAddedPayload{UserID: "user-1", Role: "member"})
	_, err := applyThroughLedger(t, l, added, HandleMembershipUpsert)
	require.NoError(t, err)

	changed := mustEnvelope(t, domain.EventMemberRoleChanged, domain.Version11, "tenant-1",
		domain.MemberAddedPayload{UserID: "user-1", Role: "admin"})
	_, err = applyThroughLedger(t, l, changed, HandleMembershipUpsert)
	require.NoError(t, err)

	m, err := NewStore(client).GetMembership(ctx, "tenant-1", "user-1")
	require.NoError(t, err)
	require.Equal(t, "admin", m.Role)

	count, err := client.MembershipEntry.Query().Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, count)
}

func TestMemberRemovedWithoutPriorEntry(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "handlers_remove_miss")
	l := ledger.New(client, "workgrid-core")

	env := mustEnvelope(t, domain.EventMemberRemoved, domain.Version11, "tenant-1",
		domain.MemberRemovedPayload{UserID: "user-ghost"})

	applied, err := applyThroughLedger(t, l, env, HandleMembershipRemove)
	require.NoError(t, err, "removing an entry that was never cached is not an error")
	require.True(t, applied)

	// The event still counts as processed; a later duplicate is skipped.
	processed, err := l.HasProcessed(context.Background(), env.EventID)
	require.NoError(t, err)
	require.True(t, processed)
}

func TestMemberRemovedDeletesEntry(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "handlers_remove")
	l := ledger.New(client, "workgrid-core")
	ctx := context.Background()

	seedMembership(t, client, "tenant-1", "user-1", "admin", time.Now().UTC())

	env := mustEnvelope(t, domain.EventMemberRemoved, domain.Version11, "tenant-1",
		domain.MemberRemovedPayload{UserID: "user-1"})
	applied, err := applyThroughLedger(t, l, env, HandleMembershipRemove)
	require.NoError(t, err)
	require.True(t, applied)

	m, err := NewStore(client).GetMembership(ctx, "tenant-1", "user-1")
	require.NoError(t, err)
	require.Nil(t, m)
}

func TestEntitlementsUpdateUpserts(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "handlers_entitlements")
	l := ledger.New(client, "workgrid-core")
	ctx := context.Background()

	first := mustEnvelope(t, domain.EventEntitlementsUpdated, domain.Version11, "tenant-1",
		domain.EntitlementsUpdatedPayload{MaxProjects: 10, MaxMembers: 25, MaxStorageMB: 2048})
	_, err := applyThroughLedger(t, l, first, HandleEntitlementsUpdate)
	require.NoError(t, err)

	second := mustEnvelope(t, domain.EventEntitlementsUpdated, domain.Version11, "tenant-1",
		domain.EntitlementsUpdatedPayload{MaxProjects: 50, MaxMembers: 200, MaxStorageMB: 10240, Features: []string{"sso"}})
	_, err = applyThroughLedger(t, l, second, HandleEntitlementsUpdate)
	require.NoError(t, err)

	limits, err := NewStore(client).GetEntitlements(ctx, "tenant-1")
	require.NoError(t, err)
	require.NotNil(t, limits)
	require.Equal(t, 50, limits.MaxProjects)
	require.Equal(t, []string{"sso"}, limits.Features)

	count, err := client.EntitlementEntry.Query().Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, count)
}

func TestHandlersRejectMalformedPayloadsAsPoison(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "handlers_poison")
	l := ledger.New(client, "workgrid-core")

	tests := []struct {
		name    string
		env     *domain.Envelope
		handler func(context.Context, *ent.Tx, *domain.Envelope) error
	}{
		{
			name: "member added without user id",
			env: mustEnvelope(t, domain.EventMemberAdded, domain.Version11, "tenant-1",
				domain.MemberAddedPayload{Role: "admin"}),
			handler: HandleMembershipUpsert,
		},
		{
			name: "member added without tenant",
			env: mustEnvelope(t, domain.EventMemberAdded, domain.Version11, "",
				domain.MemberAddedPayload{UserID: "user-1", Role: "admin"}),
			handler: HandleMembershipUpsert,
		},
		{
			name: "member removed with junk data",
			env: func() *domain.Envelope {
				env := mustEnvelope(t, domain.EventMemberRemoved, domain.Version11, "tenant-1", struct{}{})
				env.Data = json.RawMessage(`"not an object"`)
				return env
			}(),
			handler: HandleMembershipRemove,
		},
		{
			name: "entitlements with negative limit",
			env: mustEnvelope(t, domain.EventEntitlementsUpdated, domain.Version11, "tenant-1",
				domain.EntitlementsUpdatedPayload{MaxProjects: -1}),
			handler: HandleEntitlementsUpdate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			applied, err := applyThroughLedger(t, l, tt.env, tt.handler)
			require.Error(t, err)
			require.True(t, apperrors.IsPoison(err), "want poison classification, got %v", err)
			require.False(t, applied)

			// A poisoned event must not be marked processed; the dispatcher
			// dead-letters it for operator repair and replay.
			processed, perr := l.HasProcessed(context.Background(), tt.env.EventID)
			require.NoError(t, perr)
			require.False(t, processed)
		})
	}
}
