package cache

import (
	"context"
	"encoding/json"

	"workgrid.io/workgrid/ent"
	"workgrid.io/workgrid/internal/dispatch"
	"workgrid.io/workgrid/internal/domain"
	apperrors "workgrid.io/workgrid/internal/pkg/errors"
)

// supportedVersions is the tolerance window: the current schema version and
// its predecessor.
var supportedVersions = []string{domain.Version10, domain.Version11}

// RegisterHandlers wires the cache updater onto the dispatcher. All handlers
// are idempotent upserts or removals keyed by (tenant, subject); replaying
// an event leaves state unchanged.
func RegisterHandlers(d *dispatch.Dispatcher) {
	d.Register(domain.EventMemberAdded, "membership-upsert", supportedVersions, HandleMembershipUpsert)
	d.Register(domain.EventMemberRoleChanged, "membership-role-change", supportedVersions, HandleMembershipUpsert)
	d.Register(domain.EventMemberRemoved, "membership-remove", supportedVersions, HandleMembershipRemove)
	d.Register(domain.EventEntitlementsUpdated, "entitlements-upsert", supportedVersions, HandleEntitlementsUpdate)
}

// HandleMembershipUpsert applies organization.member.added and
// organization.member.role_changed: both overwrite the (tenant, user) role.
func HandleMembershipUpsert(ctx context.Context, tx *ent.Tx, env *domain.Envelope) error {
	if env.TenantID == "" {
		return apperrors.Poison("MISSING_TENANT", "membership event without tenantId", nil)
	}
	p, err := domain.DecodeMemberAdded(env.EventVersion, env.Data)
	if err != nil {
		return apperrors.Poison("BAD_MEMBERSHIP_PAYLOAD", "decode membership payload", err)
	}
	if p.UserID == "" || p.Role == "" {
		return apperrors.Poison("BAD_MEMBERSHIP_PAYLOAD", "membership payload missing user_id or role", nil)
	}
	return UpsertMembershipTx(ctx, tx, env.TenantID, p.UserID, p.Role)
}

// HandleMembershipRemove applies organization.member.removed. Removing an
// entry that was never cached is a no-op, not an error.
func HandleMembershipRemove(ctx context.Context, tx *ent.Tx, env *domain.Envelope) error {
	if env.TenantID == "" {
		return apperrors.Poison("MISSING_TENANT", "membership event without tenantId", nil)
	}
	var p domain.MemberRemovedPayload
	if err := json.Unmarshal(env.Data, &p); err != nil {
		return apperrors.Poison("BAD_MEMBERSHIP_PAYLOAD", "decode member-removed payload", err)
	}
	if p.UserID == "" {
		return apperrors.Poison("BAD_MEMBERSHIP_PAYLOAD", "member-removed payload missing user_id", nil)
	}
	return RemoveMembershipTx(ctx, tx, env.TenantID, p.UserID)
}

// HandleEntitlementsUpdate applies billing.entitlements.updated. The payload
// shape is identical in 1.0 and 1.1.
func HandleEntitlementsUpdate(ctx context.Context, tx *ent.Tx, env *domain.Envelope) error {
	if env.TenantID == "" {
		return apperrors.Poison("MISSING_TENANT", "entitlement event without tenantId", nil)
	}
	var p domain.EntitlementsUpdatedPayload
	if err := json.Unmarshal(env.Data, &p); err != nil {
		return apperrors.Poison("BAD_ENTITLEMENT_PAYLOAD", "decode entitlements payload", err)
	}
	if p.MaxProjects < 0 || p.MaxMembers < 0 || p.MaxStorageMB < 0 {
		return apperrors.Poison("BAD_ENTITLEMENT_PAYLOAD", "entitlement limits must not be negative", nil)
	}
	return UpsertEntitlementsTx(ctx, tx, env.TenantID, p)
}
