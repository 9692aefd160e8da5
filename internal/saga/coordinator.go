package saga

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"workgrid.io/workgrid/ent"
	"workgrid.io/workgrid/ent/sagainstance"
	"workgrid.io/workgrid/ent/sagastep"
	"workgrid.io/workgrid/internal/audit"
	"workgrid.io/workgrid/internal/dispatch"
	"workgrid.io/workgrid/internal/domain"
	"workgrid.io/workgrid/internal/outbox"
	apperrors "workgrid.io/workgrid/internal/pkg/errors"
	"workgrid.io/workgrid/internal/pkg/logger"
)

var ackVersions = []string{domain.Version10, domain.Version11}

// Coordinator drives saga instances through their state machine. All state
// transitions happen inside the dispatcher's ledger transaction, so a crash
// mid-transition redelivers the triggering event and replays it exactly once.
type Coordinator struct {
	client *ent.Client
	source string
	defs   []Definition
}

// NewCoordinator creates a Coordinator. source stamps the envelopes it
// publishes.
func NewCoordinator(client *ent.Client, source string, defs ...Definition) *Coordinator {
	return &Coordinator{client: client, source: source, defs: defs}
}

// RegisterHandlers wires the coordinator onto the dispatcher: one handler per
// saga trigger, plus the acknowledgement events of every remote step.
func (c *Coordinator) RegisterHandlers(d *dispatch.Dispatcher) {
	for _, def := range c.defs {
		def := def
		d.Register(def.Trigger, def.Type+"-start", ackVersions,
			func(ctx context.Context, tx *ent.Tx, env *domain.Envelope) error {
				return c.start(ctx, tx, def, env)
			})
		for _, st := range def.Steps {
			if st.local() {
				continue
			}
			st := st
			d.Register(st.CompletedAck, def.Type+"-"+st.Name+"-completed", ackVersions,
				func(ctx context.Context, tx *ent.Tx, env *domain.Envelope) error {
					return c.handleAck(ctx, tx, def, st, env, false)
				})
			d.Register(st.FailedAck, def.Type+"-"+st.Name+"-failed", ackVersions,
				func(ctx context.Context, tx *ent.Tx, env *domain.Envelope) error {
					return c.handleAck(ctx, tx, def, st, env, true)
				})
		}
	}
}

// start creates a saga instance for a trigger event. The trigger's
// correlation id becomes the saga id, so every sub-event of the workflow
// shares it. A tenant can only have one active saga of a type at a time.
func (c *Coordinator) start(ctx context.Context, tx *ent.Tx, def Definition, env *domain.Envelope) error {
	if env.TenantID == "" {
		return apperrors.Poison("MISSING_TENANT", fmt.Sprintf("%s trigger without tenantId", def.Type), nil)
	}

	active, err := tx.SagaInstance.Query().
		Where(
			sagainstance.SagaType(def.Type),
			sagainstance.TenantID(env.TenantID),
			sagainstance.StatusIn(
				sagainstance.StatusPENDING,
				sagainstance.StatusIN_PROGRESS,
				sagainstance.StatusCOMPENSATING,
			),
		).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("query active %s sagas: %w", def.Type, err)
	}
	if active {
		logger.Warn("saga already active for tenant, trigger ignored",
			zap.String("saga_type", def.Type),
			zap.String("tenant_id", env.TenantID),
			zap.String("event_id", env.EventID),
		)
		return nil
	}

	sagaID := env.CorrelationID
	if sagaID == "" {
		sagaID = env.EventID
	}

	// Created PENDING (the default); the instance turns IN_PROGRESS once its
	// step rows exist. Both writes commit together.
	inst, err := tx.SagaInstance.Create().
		SetID(sagaID).
		SetSagaType(def.Type).
		SetTenantID(env.TenantID).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// Same correlation id re-triggered; the existing instance wins.
			logger.Warn("saga id already exists, trigger ignored",
				zap.String("saga_id", sagaID),
				zap.String("saga_type", def.Type),
			)
			return nil
		}
		return fmt.Errorf("create %s saga %s: %w", def.Type, sagaID, err)
	}

	for i, st := range def.Steps {
		id, err := uuid.NewV7()
		if err != nil {
			return fmt.Errorf("generate saga step id: %w", err)
		}
		if err := tx.SagaStep.Create().
			SetID(id.String()).
			SetSagaID(sagaID).
			SetSeq(i).
			SetName(st.Name).
			SetParticipant(st.Participant).
			Exec(ctx); err != nil {
			return fmt.Errorf("create saga step %s/%s: %w", sagaID, st.Name, err)
		}
	}

	inst, err = inst.Update().
		SetStatus(sagainstance.StatusIN_PROGRESS).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("mark saga %s in progress: %w", sagaID, err)
	}

	if err := audit.RecordTx(ctx, tx, "saga.started", "saga", sagaID, env.Source, map[string]interface{}{
		"saga_type": def.Type,
		"tenant_id": env.TenantID,
	}); err != nil {
		return err
	}
	logger.Info("saga started",
		zap.String("saga_id", sagaID),
		zap.String("saga_type", def.Type),
		zap.String("tenant_id", env.TenantID),
	)
	return c.advance(ctx, tx, def, inst, 0)
}

// advance moves a saga forward from the given step index: local steps run
// and complete inline, the first remote step publishes its command and
// returns to wait for the acknowledgement. Falling off the end completes the
// saga.
func (c *Coordinator) advance(ctx context.Context, tx *ent.Tx, def Definition, inst *ent.SagaInstance, from int) error {
	for i := from; i < len(def.Steps); i++ {
		st := def.Steps[i]
		if !st.local() {
			return c.publishCommand(ctx, tx, inst, st)
		}
		if err := st.Run(ctx, tx, inst.TenantID); err != nil {
			return apperrors.SagaStepFailure("LOCAL_STEP_FAILED",
				fmt.Sprintf("saga %s step %s", inst.ID, st.Name), err)
		}
		if err := c.completeStep(ctx, tx, def, inst, st); err != nil {
			return err
		}
	}
	return c.complete(ctx, tx, def, inst)
}

func (c *Coordinator) publishCommand(ctx context.Context, tx *ent.Tx, inst *ent.SagaInstance, st Step) error {
	cmd, err := domain.NewEnvelope(st.Command, c.source, inst.TenantID, domain.StepCommandPayload{
		SagaID:   inst.ID,
		StepName: st.Name,
	})
	if err != nil {
		return err
	}
	cmd.CorrelationID = inst.ID
	if err := outbox.AppendTx(ctx, tx, cmd); err != nil {
		return err
	}
	logger.Info("saga step command queued",
		zap.String("saga_id", inst.ID),
		zap.String("step", st.Name),
		zap.String("participant", st.Participant),
	)
	return nil
}

// handleAck processes a participant acknowledgement for a remote step.
func (c *Coordinator) handleAck(ctx context.Context, tx *ent.Tx, def Definition, st Step, env *domain.Envelope, failed bool) error {
	var p domain.StepAckPayload
	if err := json.Unmarshal(env.Data, &p); err != nil {
		return apperrors.Poison("BAD_ACK_PAYLOAD", "decode step acknowledgement", err)
	}
	sagaID := p.SagaID
	if sagaID == "" {
		sagaID = env.CorrelationID
	}
	if sagaID == "" {
		return apperrors.Poison("MISSING_SAGA_ID", "acknowledgement names no saga", nil)
	}

	inst, err := tx.SagaInstance.Get(ctx, sagaID)
	if err != nil {
		if ent.IsNotFound(err) {
			return apperrors.Poison("UNKNOWN_SAGA",
				fmt.Sprintf("acknowledgement for unknown saga %s", sagaID), nil)
		}
		return fmt.Errorf("load saga %s: %w", sagaID, err)
	}

	switch inst.Status {
	case sagainstance.StatusCOMPLETED, sagainstance.StatusFAILED:
		// Terminal states are immutable; a straggler ack changes nothing.
		logger.Warn("acknowledgement for finished saga ignored",
			zap.String("saga_id", sagaID),
			zap.String("step", st.Name),
			zap.String("status", string(inst.Status)),
		)
		return nil
	}

	row, err := tx.SagaStep.Query().
		Where(sagastep.SagaID(sagaID), sagastep.Name(st.Name)).
		Only(ctx)
	if err != nil {
		return fmt.Errorf("load saga step %s/%s: %w", sagaID, st.Name, err)
	}

	if failed {
		reason := p.Error
		if reason == "" {
			reason = fmt.Sprintf("participant %s reported failure", st.Participant)
		}
		return c.fail(ctx, tx, def, inst, row, reason)
	}

	if row.Status != sagastep.StatusPENDING {
		// Duplicate ack under a fresh event id; the ledger only catches
		// exact redeliveries.
		logger.Debug("duplicate step acknowledgement ignored",
			zap.String("saga_id", sagaID),
			zap.String("step", st.Name),
		)
		return nil
	}

	if len(p.Result) > 0 {
		// Whatever the participant reports back is what its compensation
		// will need to undo the step.
		if err := tx.SagaStep.UpdateOneID(row.ID).
			SetCompensationPayload([]byte(p.Result)).
			Exec(ctx); err != nil {
			return fmt.Errorf("record compensation payload of %s/%s: %w", sagaID, st.Name, err)
		}
	}
	if err := c.completeStep(ctx, tx, def, inst, st); err != nil {
		return err
	}
	seq, _, ok := def.step(st.Name)
	if !ok {
		return apperrors.Poison("UNKNOWN_STEP",
			fmt.Sprintf("saga %s has no step %s", def.Type, st.Name), nil)
	}
	return c.advance(ctx, tx, def, inst, seq+1)
}

func (c *Coordinator) completeStep(ctx context.Context, tx *ent.Tx, def Definition, inst *ent.SagaInstance, st Step) error {
	if _, err := tx.SagaStep.Update().
		Where(sagastep.SagaID(inst.ID), sagastep.Name(st.Name)).
		SetStatus(sagastep.StatusCOMPLETED).
		SetCompletedAt(time.Now().UTC()).
		Save(ctx); err != nil {
		return fmt.Errorf("complete saga step %s/%s: %w", inst.ID, st.Name, err)
	}
	if err := c.publishFact(ctx, tx, inst, def.StepCompletedFact, domain.SagaFactPayload{
		SagaID:   inst.ID,
		SagaType: def.Type,
		StepName: st.Name,
		Status:   string(sagastep.StatusCOMPLETED),
	}); err != nil {
		return err
	}
	logger.Info("saga step completed",
		zap.String("saga_id", inst.ID),
		zap.String("step", st.Name),
	)
	return nil
}

// fail marks the failed step, compensates every completed step in reverse
// order, and finishes the saga as FAILED for operator attention.
func (c *Coordinator) fail(ctx context.Context, tx *ent.Tx, def Definition, inst *ent.SagaInstance, failedRow *ent.SagaStep, reason string) error {
	if err := tx.SagaStep.UpdateOneID(failedRow.ID).
		SetStatus(sagastep.StatusFAILED).
		Exec(ctx); err != nil {
		return fmt.Errorf("mark saga step %s/%s failed: %w", inst.ID, failedRow.Name, err)
	}
	inst, err := tx.SagaInstance.UpdateOneID(inst.ID).
		SetStatus(sagainstance.StatusCOMPENSATING).
		SetFailureReason(reason).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("mark saga %s compensating: %w", inst.ID, err)
	}
	if err := audit.RecordTx(ctx, tx, "saga.step_failed", "saga", inst.ID, failedRow.Participant, map[string]interface{}{
		"step":   failedRow.Name,
		"reason": reason,
	}); err != nil {
		return err
	}

	completed, err := tx.SagaStep.Query().
		Where(sagastep.SagaID(inst.ID), sagastep.StatusEQ(sagastep.StatusCOMPLETED)).
		Order(ent.Desc(sagastep.FieldSeq)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("query completed steps of saga %s: %w", inst.ID, err)
	}
	for _, row := range completed {
		if err := c.compensateStep(ctx, tx, def, inst, row); err != nil {
			return err
		}
	}

	if _, err := tx.SagaInstance.UpdateOneID(inst.ID).
		SetStatus(sagainstance.StatusFAILED).
		SetFinishedAt(time.Now().UTC()).
		Save(ctx); err != nil {
		return fmt.Errorf("mark saga %s failed: %w", inst.ID, err)
	}
	if err := c.publishFact(ctx, tx, inst, def.FailedFact, domain.SagaFactPayload{
		SagaID:   inst.ID,
		SagaType: def.Type,
		StepName: failedRow.Name,
		Status:   string(sagainstance.StatusFAILED),
		Reason:   reason,
	}); err != nil {
		return err
	}
	if err := audit.RecordTx(ctx, tx, "saga.failed", "saga", inst.ID, c.source, map[string]interface{}{
		"failed_step": failedRow.Name,
		"reason":      reason,
	}); err != nil {
		return err
	}
	logger.Error("saga failed, operator attention required",
		zap.String("saga_id", inst.ID),
		zap.String("saga_type", def.Type),
		zap.String("tenant_id", inst.TenantID),
		zap.String("failed_step", failedRow.Name),
		zap.String("reason", reason),
	)
	return nil
}

// compensateStep publishes the step's compensation command (when it has one)
// and marks the step compensated. Participants execute compensations with
// their own retries; the command only needs to be durably queued here.
func (c *Coordinator) compensateStep(ctx context.Context, tx *ent.Tx, def Definition, inst *ent.SagaInstance, row *ent.SagaStep) error {
	_, st, ok := def.step(row.Name)
	if !ok {
		return apperrors.Poison("UNKNOWN_STEP",
			fmt.Sprintf("saga %s has no step %s", def.Type, row.Name), nil)
	}
	if st.Compensate != "" {
		cmd, err := domain.NewEnvelope(st.Compensate, c.source, inst.TenantID, domain.StepCommandPayload{
			SagaID:   inst.ID,
			StepName: st.Name,
			Context:  row.CompensationPayload,
		})
		if err != nil {
			return apperrors.CompensationFailure("COMPENSATION_PUBLISH",
				fmt.Sprintf("saga %s step %s", inst.ID, st.Name), err)
		}
		cmd.CorrelationID = inst.ID
		if err := outbox.AppendTx(ctx, tx, cmd); err != nil {
			return apperrors.CompensationFailure("COMPENSATION_PUBLISH",
				fmt.Sprintf("saga %s step %s", inst.ID, st.Name), err)
		}
	}
	if err := tx.SagaStep.UpdateOneID(row.ID).
		SetStatus(sagastep.StatusCOMPENSATED).
		Exec(ctx); err != nil {
		return fmt.Errorf("mark saga step %s/%s compensated: %w", inst.ID, row.Name, err)
	}
	if err := c.publishFact(ctx, tx, inst, def.StepCompensatedFact, domain.SagaFactPayload{
		SagaID:   inst.ID,
		SagaType: def.Type,
		StepName: row.Name,
		Status:   string(sagastep.StatusCOMPENSATED),
	}); err != nil {
		return err
	}
	logger.Info("saga step compensated",
		zap.String("saga_id", inst.ID),
		zap.String("step", row.Name),
	)
	return nil
}

func (c *Coordinator) complete(ctx context.Context, tx *ent.Tx, def Definition, inst *ent.SagaInstance) error {
	if _, err := tx.SagaInstance.UpdateOneID(inst.ID).
		SetStatus(sagainstance.StatusCOMPLETED).
		SetFinishedAt(time.Now().UTC()).
		Save(ctx); err != nil {
		return fmt.Errorf("mark saga %s completed: %w", inst.ID, err)
	}
	if err := c.publishFact(ctx, tx, inst, def.CompletedFact, domain.SagaFactPayload{
		SagaID:   inst.ID,
		SagaType: def.Type,
		Status:   string(sagainstance.StatusCOMPLETED),
	}); err != nil {
		return err
	}
	if err := audit.RecordTx(ctx, tx, "saga.completed", "saga", inst.ID, c.source, map[string]interface{}{
		"saga_type": def.Type,
		"tenant_id": inst.TenantID,
	}); err != nil {
		return err
	}
	logger.Info("saga completed",
		zap.String("saga_id", inst.ID),
		zap.String("saga_type", def.Type),
		zap.String("tenant_id", inst.TenantID),
	)
	return nil
}

func (c *Coordinator) publishFact(ctx context.Context, tx *ent.Tx, inst *ent.SagaInstance, eventType domain.EventType, p domain.SagaFactPayload) error {
	if eventType == "" {
		return nil
	}
	fact, err := domain.NewEnvelope(eventType, c.source, inst.TenantID, p)
	if err != nil {
		return err
	}
	fact.CorrelationID = inst.ID
	return outbox.AppendTx(ctx, tx, fact)
}

// Instance bundles a saga header with its ordered steps for inspection.
type Instance struct {
	Saga  *ent.SagaInstance `json:"saga"`
	Steps []*ent.SagaStep   `json:"steps"`
}

// Inspect returns one saga with its steps.
func (c *Coordinator) Inspect(ctx context.Context, sagaID string) (*Instance, error) {
	inst, err := c.client.SagaInstance.Get(ctx, sagaID)
	if err != nil {
		return nil, fmt.Errorf("fetch saga %s: %w", sagaID, err)
	}
	steps, err := c.client.SagaStep.Query().
		Where(sagastep.SagaID(sagaID)).
		Order(ent.Asc(sagastep.FieldSeq)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch steps of saga %s: %w", sagaID, err)
	}
	return &Instance{Saga: inst, Steps: steps}, nil
}

// List returns recent sagas, newest first, optionally filtered by status.
func (c *Coordinator) List(ctx context.Context, limit int, status string) ([]*ent.SagaInstance, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	q := c.client.SagaInstance.Query().
		Order(ent.Desc(sagainstance.FieldCreatedAt)).
		Limit(limit)
	if status != "" {
		q = q.Where(sagainstance.StatusEQ(sagainstance.Status(status)))
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sagas: %w", err)
	}
	return rows, nil
}
