// Package cache maintains the denormalized read-through projections of
// foreign-owned state: organization membership and billing entitlements.
// Entries are written only by event consumption; there is no synchronous
// fallback read to the owning service in the request path.
package cache

import (
	"context"
	"fmt"
	"time"

	"workgrid.io/workgrid/ent"
	"workgrid.io/workgrid/ent/entitlemententry"
	"workgrid.io/workgrid/ent/membershipentry"
	"workgrid.io/workgrid/internal/domain"
	apperrors "workgrid.io/workgrid/internal/pkg/errors"
)

// Membership is one cached membership projection row.
type Membership struct {
	TenantID string
	UserID   string
	Role     string
	CachedAt time.Time
}

// Entitlements is one cached entitlement projection row.
type Entitlements struct {
	MaxProjects  int
	MaxMembers   int
	MaxStorageMB int
	Features     []string
	CachedAt     time.Time
}

// Store reads the projections. Writes go through the Tx functions below so
// they share the transaction of the idempotency ledger.
type Store struct {
	client *ent.Client
}

// NewStore creates a Store.
func NewStore(client *ent.Client) *Store {
	return &Store{client: client}
}

// GetMembership returns the cached membership for (tenant, user), or nil on
// a miss. Store unavailability is transient.
func (s *Store) GetMembership(ctx context.Context, tenantID, userID string) (*Membership, error) {
	row, err := s.client.MembershipEntry.Query().
		Where(
			membershipentry.TenantID(tenantID),
			membershipentry.UserID(userID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, apperrors.Transient("CACHE_UNAVAILABLE", "query membership projection", err)
	}
	return &Membership{
		TenantID: row.TenantID,
		UserID:   row.UserID,
		Role:     row.Role,
		CachedAt: row.CachedAt,
	}, nil
}

// GetEntitlements returns the cached entitlements for a tenant, or nil on a
// miss.
func (s *Store) GetEntitlements(ctx context.Context, tenantID string) (*Entitlements, error) {
	row, err := s.client.EntitlementEntry.Query().
		Where(entitlemententry.TenantID(tenantID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, apperrors.Transient("CACHE_UNAVAILABLE", "query entitlement projection", err)
	}
	return &Entitlements{
		MaxProjects:  row.MaxProjects,
		MaxMembers:   row.MaxMembers,
		MaxStorageMB: row.MaxStorageMB,
		Features:     row.Features,
		CachedAt:     row.CachedAt,
	}, nil
}

// SweepOlderThan deletes projection rows older than maxAge. This is the
// safety net for permanently undelivered invalidation events; event-driven
// invalidation remains authoritative.
func (s *Store) SweepOlderThan(ctx context.Context, maxAge time.Duration) (int, error) {
	if maxAge <= 0 {
		return 0, fmt.Errorf("cache max age must be positive")
	}
	cutoff := time.Now().UTC().Add(-maxAge)

	memberships, err := s.client.MembershipEntry.Delete().
		Where(membershipentry.CachedAtLT(cutoff)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("sweep membership entries: %w", err)
	}
	entitlements, err := s.client.EntitlementEntry.Delete().
		Where(entitlemententry.CachedAtLT(cutoff)).
		Exec(ctx)
	if err != nil {
		return memberships, fmt.Errorf("sweep entitlement entries: %w", err)
	}
	return memberships + entitlements, nil
}

// UpsertMembershipTx creates or overwrites the (tenant, user) membership
// entry. Applying the same update twice leaves state unchanged;
// last-write-wins is safe because events for one tenant arrive in partition
// order.
func UpsertMembershipTx(ctx context.Context, tx *ent.Tx, tenantID, userID, role string) error {
	return tx.MembershipEntry.Create().
		SetTenantID(tenantID).
		SetUserID(userID).
		SetRole(role).
		SetCachedAt(time.Now().UTC()).
		OnConflictColumns(membershipentry.FieldTenantID, membershipentry.FieldUserID).
		UpdateNewValues().
		Exec(ctx)
}

// RemoveMembershipTx deletes the (tenant, user) membership entry. Removing
// an absent entry is a no-op, not an error (removal may be delivered before
// or more often than the matching add).
func RemoveMembershipTx(ctx context.Context, tx *ent.Tx, tenantID, userID string) error {
	_, err := tx.MembershipEntry.Delete().
		Where(
			membershipentry.TenantID(tenantID),
			membershipentry.UserID(userID),
		).
		Exec(ctx)
	return err
}

// UpsertEntitlementsTx creates or overwrites a tenant's entitlement entry.
func UpsertEntitlementsTx(ctx context.Context, tx *ent.Tx, tenantID string, p domain.EntitlementsUpdatedPayload) error {
	return tx.EntitlementEntry.Create().
		SetTenantID(tenantID).
		SetMaxProjects(p.MaxProjects).
		SetMaxMembers(p.MaxMembers).
		SetMaxStorageMB(p.MaxStorageMB).
		SetFeatures(p.Features).
		SetCachedAt(time.Now().UTC()).
		OnConflictColumns(entitlemententry.FieldTenantID).
		UpdateNewValues().
		Exec(ctx)
}

// PurgeTenantTx removes every projection row for a tenant. Used by the
// deletion saga's local purge step; safe to re-invoke.
func PurgeTenantTx(ctx context.Context, tx *ent.Tx, tenantID string) (int, error) {
	memberships, err := tx.MembershipEntry.Delete().
		Where(membershipentry.TenantID(tenantID)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("purge membership entries for tenant %s: %w", tenantID, err)
	}
	entitlements, err := tx.EntitlementEntry.Delete().
		Where(entitlemententry.TenantID(tenantID)).
		Exec(ctx)
	if err != nil {
		return memberships, fmt.Errorf("purge entitlement entries for tenant %s: %w", tenantID, err)
	}
	return memberships + entitlements, nil
}
