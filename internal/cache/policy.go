package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"workgrid.io/workgrid/ent"
	apperrors "workgrid.io/workgrid/internal/pkg/errors"
	"workgrid.io/workgrid/internal/pkg/logger"
)

// Policy is the staleness-tolerance classification of a projection.
type Policy string

const (
	// FailClosed guards security-bearing data: a miss means "not
	// authorized". A false rejection is cheaper than unauthorized access.
	FailClosed Policy = "FAIL_CLOSED"

	// FailOpen guards availability-bearing data: a miss falls back to
	// conservative defaults instead of rejecting the operation. Billing
	// concerns must not block core product usage.
	FailOpen Policy = "FAIL_OPEN"
)

// DefaultEntitlements is the conservative fallback applied on a fail-open
// miss: the lowest paid tier's limits, never "no limit".
var DefaultEntitlements = Entitlements{
	MaxProjects:  1,
	MaxMembers:   3,
	MaxStorageMB: 512,
}

// Engine wraps Store reads with the per-projection policy decision.
type Engine struct {
	store  *Store
	client *ent.Client

	// maxEntryAge is the safety-net TTL: entries older than this are
	// treated as misses in case their invalidation event was permanently
	// lost. Zero disables the check.
	maxEntryAge time.Duration
}

// NewEngine creates a policy Engine.
func NewEngine(store *Store, client *ent.Client, maxEntryAge time.Duration) *Engine {
	return &Engine{store: store, client: client, maxEntryAge: maxEntryAge}
}

// Authorize resolves the caller's role in a tenant under the fail-closed
// policy. A cache miss (or safety-net-stale entry) returns a
// PolicyViolation, never "allowed".
func (e *Engine) Authorize(ctx context.Context, tenantID, userID string) (string, error) {
	m, err := e.store.GetMembership(ctx, tenantID, userID)
	if err != nil {
		// Store down: fail closed here too. Unauthorized access is the
		// worse outcome.
		return "", apperrors.PolicyViolation("MEMBERSHIP_UNAVAILABLE",
			fmt.Sprintf("membership for tenant %s cannot be verified", tenantID))
	}
	if m == nil || e.stale(m.CachedAt) {
		return "", apperrors.PolicyViolation("MEMBERSHIP_DENIED",
			fmt.Sprintf("user %s has no cached membership in tenant %s", userID, tenantID))
	}
	return m.Role, nil
}

// Limits resolves a tenant's entitlements under the fail-open policy. A miss
// (or safety-net-stale entry) returns DefaultEntitlements and records a
// discrepancy for later reconciliation; operation names the caller's intent,
// e.g. "project.create".
func (e *Engine) Limits(ctx context.Context, tenantID, operation string) (Entitlements, error) {
	limits, err := e.store.GetEntitlements(ctx, tenantID)
	if err == nil && limits != nil && !e.stale(limits.CachedAt) {
		return *limits, nil
	}
	if err != nil {
		logger.Warn("entitlement lookup failed, applying default limits",
			zap.String("tenant_id", tenantID),
			zap.Error(err),
		)
	}

	e.recordDiscrepancy(ctx, tenantID, operation)
	return DefaultEntitlements, nil
}

// recordDiscrepancy persists the fail-open decision. Best effort: a failed
// write is logged, never surfaced, because the whole point of fail-open is
// not blocking the caller.
func (e *Engine) recordDiscrepancy(ctx context.Context, tenantID, operation string) {
	id, err := uuid.NewV7()
	if err != nil {
		logger.Error("generate discrepancy id", zap.Error(err))
		return
	}
	if err := e.client.EntitlementDiscrepancy.Create().
		SetID(id.String()).
		SetTenantID(tenantID).
		SetOperation(operation).
		Exec(ctx); err != nil {
		logger.Error("record entitlement discrepancy",
			zap.String("tenant_id", tenantID),
			zap.String("operation", operation),
			zap.Error(err),
		)
		return
	}
	logger.Info("fail-open default limits applied",
		zap.String("tenant_id", tenantID),
		zap.String("operation", operation),
	)
}

func (e *Engine) stale(cachedAt time.Time) bool {
	if e.maxEntryAge <= 0 {
		return false
	}
	return time.Since(cachedAt) > e.maxEntryAge
}
