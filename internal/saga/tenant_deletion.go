package saga

import (
	"context"

	"workgrid.io/workgrid/ent"
	"workgrid.io/workgrid/internal/cache"
	"workgrid.io/workgrid/internal/domain"
)

// Saga and step names.
const (
	TypeTenantDeletion = "tenant_deletion"

	StepArchiveProjects    = "archive_projects"
	StepCancelSubscription = "cancel_subscription"
	StepPurgeTenantViews   = "purge_tenant_views"
)

// TenantDeletion is the organization.deleted workflow: archive the tenant's
// projects, cancel its subscription, then purge the local projections. The
// purge is last and has no compensation; once the remote steps committed
// there is nothing left to fail for.
func TenantDeletion() Definition {
	return Definition{
		Type:    TypeTenantDeletion,
		Trigger: domain.EventOrganizationDeleted,
		Steps: []Step{
			{
				Name:         StepArchiveProjects,
				Participant:  "project-service",
				Command:      domain.EventProjectArchiveRequested,
				CompletedAck: domain.EventProjectArchived,
				FailedAck:    domain.EventProjectArchiveFailed,
				Compensate:   domain.EventProjectUnarchiveRequested,
			},
			{
				Name:         StepCancelSubscription,
				Participant:  "billing-service",
				Command:      domain.EventSubscriptionCancelRequested,
				CompletedAck: domain.EventSubscriptionCancelled,
				FailedAck:    domain.EventSubscriptionCancelFailed,
				Compensate:   domain.EventSubscriptionReactivateRequested,
			},
			{
				Name:        StepPurgeTenantViews,
				Participant: "workgrid-core",
				Run: func(ctx context.Context, tx *ent.Tx, tenantID string) error {
					_, err := cache.PurgeTenantTx(ctx, tx, tenantID)
					return err
				},
			},
		},
		StepCompletedFact:   domain.EventDeletionStepCompleted,
		StepCompensatedFact: domain.EventDeletionStepCompensated,
		CompletedFact:       domain.EventDeletionCompleted,
		FailedFact:          domain.EventDeletionFailed,
	}
}
