package saga

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"workgrid.io/workgrid/ent"
	"workgrid.io/workgrid/ent/auditlog"
	"workgrid.io/workgrid/ent/outboxevent"
	"workgrid.io/workgrid/ent/sagainstance"
	"workgrid.io/workgrid/ent/sagastep"
	"workgrid.io/workgrid/internal/dispatch"
	"workgrid.io/workgrid/internal/domain"
	"workgrid.io/workgrid/internal/ledger"
	"workgrid.io/workgrid/internal/pkg/logger"
	"workgrid.io/workgrid/internal/testutil"
)

func init() {
	_ = logger.Init("error", "console")
}

type harness struct {
	client      *ent.Client
	dispatcher  *dispatch.Dispatcher
	coordinator *Coordinator
}

func newHarness(t *testing.T, prefix string) *harness {
	t.Helper()
	return newHarnessWith(t, prefix, TenantDeletion())
}

func newHarnessWith(t *testing.T, prefix string, defs ...Definition) *harness {
	t.Helper()
	client := testutil.OpenEntPostgres(t, prefix)
	l := ledger.New(client, "workgrid-core")
	d := dispatch.New(dispatch.Config{
		HandlerTimeout: 5 * time.Second,
		MaxRetries:     1,
		RetryBackoff:   time.Millisecond,
	}, l, dispatch.NewSink(client), nil)
	c := NewCoordinator(client, "workgrid-core", defs...)
	c.RegisterHandlers(d)
	return &harness{client: client, dispatcher: d, coordinator: c}
}

func (h *harness) process(t *testing.T, env *domain.Envelope) {
	t.Helper()
	raw, err := env.ToJSON()
	require.NoError(t, err)
	require.NoError(t, h.dispatcher.Process(context.Background(), env, raw))
}

func (h *harness) trigger(t *testing.T, tenantID string) string {
	t.Helper()
	env, err := domain.NewEnvelope(domain.EventOrganizationDeleted, "organization-service", tenantID,
		domain.OrganizationDeletedPayload{RequestedBy: "owner-1"})
	require.NoError(t, err)
	h.process(t, env)
	return env.CorrelationID
}

func (h *harness) ack(t *testing.T, eventType domain.EventType, source, tenantID, sagaID, stepName, ackErr string) {
	t.Helper()
	env, err := domain.NewEnvelope(eventType, source, tenantID,
		domain.StepAckPayload{SagaID: sagaID, StepName: stepName, Error: ackErr})
	require.NoError(t, err)
	env.CorrelationID = sagaID
	h.process(t, env)
}

func (h *harness) outboxTopics(t *testing.T, topic string) int {
	t.Helper()
	count, err := h.client.OutboxEvent.Query().
		Where(outboxevent.Topic(topic)).
		Count(context.Background())
	require.NoError(t, err)
	return count
}

func (h *harness) stepStatus(t *testing.T, sagaID, name string) sagastep.Status {
	t.Helper()
	row, err := h.client.SagaStep.Query().
		Where(sagastep.SagaID(sagaID), sagastep.Name(name)).
		Only(context.Background())
	require.NoError(t, err)
	return row.Status
}

func seedTenantViews(t *testing.T, client *ent.Client, tenantID string) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, client.MembershipEntry.Create().
		SetTenantID(tenantID).
		SetUserID("user-1").
		SetRole("admin").
		SetCachedAt(time.Now().UTC()).
		Exec(ctx))
	require.NoError(t, client.EntitlementEntry.Create().
		SetTenantID(tenantID).
		SetMaxProjects(10).
		SetMaxMembers(25).
		SetMaxStorageMB(2048).
		SetCachedAt(time.Now().UTC()).
		Exec(ctx))
}

func TestTenantDeletionHappyPath(t *testing.T) {
	h := newHarness(t, "saga_happy")
	ctx := context.Background()
	seedTenantViews(t, h.client, "tenant-1")

	sagaID := h.trigger(t, "tenant-1")

	inst, err := h.client.SagaInstance.Get(ctx, sagaID)
	require.NoError(t, err)
	require.Equal(t, sagainstance.StatusIN_PROGRESS, inst.Status)
	require.Equal(t, 1, h.outboxTopics(t, string(domain.EventProjectArchiveRequested)))

	h.ack(t, domain.EventProjectArchived, "project-service", "tenant-1", sagaID, StepArchiveProjects, "")
	require.Equal(t, sagastep.StatusCOMPLETED, h.stepStatus(t, sagaID, StepArchiveProjects))
	require.Equal(t, 1, h.outboxTopics(t, string(domain.EventSubscriptionCancelRequested)))

	h.ack(t, domain.EventSubscriptionCancelled, "billing-service", "tenant-1", sagaID, StepCancelSubscription, "")

	inst, err = h.client.SagaInstance.Get(ctx, sagaID)
	require.NoError(t, err)
	require.Equal(t, sagainstance.StatusCOMPLETED, inst.Status)
	require.NotNil(t, inst.FinishedAt)
	require.Equal(t, sagastep.StatusCOMPLETED, h.stepStatus(t, sagaID, StepPurgeTenantViews))
	require.Equal(t, 1, h.outboxTopics(t, string(domain.EventDeletionCompleted)))
	require.Equal(t, 3, h.outboxTopics(t, string(domain.EventDeletionStepCompleted)),
		"one step_completed fact per step, the local purge included")

	// The local purge step emptied the tenant's projections.
	memberships, err := h.client.MembershipEntry.Query().Count(ctx)
	require.NoError(t, err)
	require.Zero(t, memberships)
	entitlements, err := h.client.EntitlementEntry.Query().Count(ctx)
	require.NoError(t, err)
	require.Zero(t, entitlements)

	started, err := h.client.AuditLog.Query().
		Where(auditlog.Action("saga.started"), auditlog.ResourceID(sagaID)).
		Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, started)
	completed, err := h.client.AuditLog.Query().
		Where(auditlog.Action("saga.completed"), auditlog.ResourceID(sagaID)).
		Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, completed)
}

func TestTenantDeletionCompensatesCompletedStepsOnFailure(t *testing.T) {
	h := newHarness(t, "saga_compensate")
	ctx := context.Background()
	seedTenantViews(t, h.client, "tenant-1")

	sagaID := h.trigger(t, "tenant-1")
	archiveResult := json.RawMessage(`{"archive_id":"arch-42"}`)
	env, err := domain.NewEnvelope(domain.EventProjectArchived, "project-service", "tenant-1",
		domain.StepAckPayload{SagaID: sagaID, StepName: StepArchiveProjects, Result: archiveResult})
	require.NoError(t, err)
	env.CorrelationID = sagaID
	h.process(t, env)
	h.ack(t, domain.EventSubscriptionCancelFailed, "billing-service", "tenant-1", sagaID, StepCancelSubscription,
		"payment provider rejected cancellation")

	inst, err := h.client.SagaInstance.Get(ctx, sagaID)
	require.NoError(t, err)
	require.Equal(t, sagainstance.StatusFAILED, inst.Status)
	require.Equal(t, "payment provider rejected cancellation", inst.FailureReason)
	require.NotNil(t, inst.FinishedAt)

	// Step 1 completed, so it was compensated; step 3 never ran.
	require.Equal(t, sagastep.StatusCOMPENSATED, h.stepStatus(t, sagaID, StepArchiveProjects))
	require.Equal(t, sagastep.StatusFAILED, h.stepStatus(t, sagaID, StepCancelSubscription))
	require.Equal(t, sagastep.StatusPENDING, h.stepStatus(t, sagaID, StepPurgeTenantViews))

	require.Equal(t, 1, h.outboxTopics(t, string(domain.EventProjectUnarchiveRequested)))
	require.Equal(t, 1, h.outboxTopics(t, string(domain.EventDeletionStepCompensated)))
	require.Equal(t, 1, h.outboxTopics(t, string(domain.EventDeletionFailed)))

	// The compensation command carries the participant's archive result back.
	raw, err := h.client.OutboxEvent.Query().
		Where(outboxevent.Topic(string(domain.EventProjectUnarchiveRequested))).
		Only(ctx)
	require.NoError(t, err)
	undo, err := domain.ParseEnvelope(raw.Payload)
	require.NoError(t, err)
	var cmd domain.StepCommandPayload
	require.NoError(t, json.Unmarshal(undo.Data, &cmd))
	require.JSONEq(t, string(archiveResult), string(cmd.Context))

	// The purge never ran; the tenant's projections survive.
	memberships, err := h.client.MembershipEntry.Query().Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, memberships)
}

// environmentProvision is a three-remote-step workflow for exercising
// multi-step compensation; tenant deletion ends in a local step and can
// never leave more than one completed remote step behind.
func environmentProvision() Definition {
	return Definition{
		Type:    "environment_provision",
		Trigger: "environment.provision.requested",
		Steps: []Step{
			{
				Name:         "allocate_network",
				Participant:  "network-service",
				Command:      "network.allocation.requested",
				CompletedAck: "network.allocation.completed",
				FailedAck:    "network.allocation.failed",
				Compensate:   "network.release.requested",
			},
			{
				Name:         "create_database",
				Participant:  "database-service",
				Command:      "database.creation.requested",
				CompletedAck: "database.creation.completed",
				FailedAck:    "database.creation.failed",
				Compensate:   "database.drop.requested",
			},
			{
				Name:         "deploy_runtime",
				Participant:  "runtime-service",
				Command:      "runtime.deployment.requested",
				CompletedAck: "runtime.deployment.completed",
				FailedAck:    "runtime.deployment.failed",
				Compensate:   "runtime.teardown.requested",
			},
		},
	}
}

func TestCompensationRunsInReverseStepOrder(t *testing.T) {
	h := newHarnessWith(t, "saga_reverse", environmentProvision())
	ctx := context.Background()

	env, err := domain.NewEnvelope("environment.provision.requested", "ops-portal", "tenant-1",
		map[string]string{"requested_by": "ops-1"})
	require.NoError(t, err)
	h.process(t, env)
	sagaID := env.CorrelationID

	h.ack(t, "network.allocation.completed", "network-service", "tenant-1", sagaID, "allocate_network", "")
	h.ack(t, "database.creation.completed", "database-service", "tenant-1", sagaID, "create_database", "")
	h.ack(t, "runtime.deployment.failed", "runtime-service", "tenant-1", sagaID, "deploy_runtime", "quota exceeded")

	inst, err := h.client.SagaInstance.Get(ctx, sagaID)
	require.NoError(t, err)
	require.Equal(t, sagainstance.StatusFAILED, inst.Status)
	require.Equal(t, sagastep.StatusCOMPENSATED, h.stepStatus(t, sagaID, "allocate_network"))
	require.Equal(t, sagastep.StatusCOMPENSATED, h.stepStatus(t, sagaID, "create_database"))
	require.Equal(t, sagastep.StatusFAILED, h.stepStatus(t, sagaID, "deploy_runtime"))

	// Undo commands were queued strictly in reverse step order: the database
	// drop before the network release. Outbox ids are v7 uuids, so id order
	// is insertion order even when created_at ties within the transaction.
	rows, err := h.client.OutboxEvent.Query().
		Where(outboxevent.TopicIn("database.drop.requested", "network.release.requested")).
		Order(ent.Asc(outboxevent.FieldCreatedAt), ent.Asc(outboxevent.FieldID)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, "database.drop.requested", rows[0].Topic)
	require.Equal(t, "network.release.requested", rows[1].Topic)
}

func TestTriggerWhileSagaActiveIsIgnored(t *testing.T) {
	h := newHarness(t, "saga_single")
	ctx := context.Background()

	first := h.trigger(t, "tenant-1")
	second := h.trigger(t, "tenant-1")
	require.NotEqual(t, first, second)

	count, err := h.client.SagaInstance.Query().
		Where(sagainstance.TenantID("tenant-1")).
		Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, count)
	require.Equal(t, 1, h.outboxTopics(t, string(domain.EventProjectArchiveRequested)))
}

func TestDuplicateAckDoesNotAdvanceTwice(t *testing.T) {
	h := newHarness(t, "saga_dup_ack")

	sagaID := h.trigger(t, "tenant-1")
	// Same step acknowledged twice under distinct event ids.
	h.ack(t, domain.EventProjectArchived, "project-service", "tenant-1", sagaID, StepArchiveProjects, "")
	h.ack(t, domain.EventProjectArchived, "project-service", "tenant-1", sagaID, StepArchiveProjects, "")

	require.Equal(t, 1, h.outboxTopics(t, string(domain.EventSubscriptionCancelRequested)))
}

func TestAckForUnknownSagaIsDeadLettered(t *testing.T) {
	h := newHarness(t, "saga_unknown")
	ctx := context.Background()

	h.ack(t, domain.EventProjectArchived, "project-service", "tenant-1", "saga-missing", StepArchiveProjects, "")

	letters, err := h.client.DeadLetter.Query().Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, letters)

	sagas, err := h.client.SagaInstance.Query().Count(ctx)
	require.NoError(t, err)
	require.Zero(t, sagas)
}

func TestAckAfterSagaFinishedIsIgnored(t *testing.T) {
	h := newHarness(t, "saga_late_ack")
	ctx := context.Background()

	sagaID := h.trigger(t, "tenant-1")
	h.ack(t, domain.EventProjectArchived, "project-service", "tenant-1", sagaID, StepArchiveProjects, "")
	h.ack(t, domain.EventSubscriptionCancelled, "billing-service", "tenant-1", sagaID, StepCancelSubscription, "")

	inst, err := h.client.SagaInstance.Get(ctx, sagaID)
	require.NoError(t, err)
	require.Equal(t, sagainstance.StatusCOMPLETED, inst.Status)

	// A straggler failure ack must not flip a terminal saga.
	h.ack(t, domain.EventSubscriptionCancelFailed, "billing-service", "tenant-1", sagaID, StepCancelSubscription, "late failure")

	inst, err = h.client.SagaInstance.Get(ctx, sagaID)
	require.NoError(t, err)
	require.Equal(t, sagainstance.StatusCOMPLETED, inst.Status)

	letters, err := h.client.DeadLetter.Query().Count(ctx)
	require.NoError(t, err)
	require.Zero(t, letters)
}

func TestInspectReturnsOrderedSteps(t *testing.T) {
	h := newHarness(t, "saga_inspect")
	ctx := context.Background()

	sagaID := h.trigger(t, "tenant-1")

	got, err := h.coordinator.Inspect(ctx, sagaID)
	require.NoError(t, err)
	require.Equal(t, sagaID, got.Saga.ID)
	require.Len(t, got.Steps, 3)
	require.Equal(t, StepArchiveProjects, got.Steps[0].Name)
	require.Equal(t, StepCancelSubscription, got.Steps[1].Name)
	require.Equal(t, StepPurgeTenantViews, got.Steps[2].Name)

	listed, err := h.coordinator.List(ctx, 10, string(sagainstance.StatusIN_PROGRESS))
	require.NoError(t, err)
	require.Len(t, listed, 1)
}
