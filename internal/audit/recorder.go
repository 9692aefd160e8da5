// Package audit writes the append-only compliance trail. Records are written
// inside the caller's transaction so they commit (or vanish) together with
// the change they describe.
package audit

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"workgrid.io/workgrid/ent"
	"workgrid.io/workgrid/ent/auditlog"
)

// Recorder writes audit records.
type Recorder struct {
	client *ent.Client
}

// NewRecorder creates a Recorder.
func NewRecorder(client *ent.Client) *Recorder {
	return &Recorder{client: client}
}

// RecordTx appends one audit record in the caller's transaction. actor is the
// originating service or user; empty defaults to "system".
func RecordTx(ctx context.Context, tx *ent.Tx, action, resourceType, resourceID, actor string, details map[string]interface{}) error {
	if actor == "" {
		actor = "system"
	}
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Errorf("generate audit id: %w", err)
	}
	create := tx.AuditLog.Create().
		SetID(id.String()).
		SetAction(action).
		SetResourceType(resourceType).
		SetResourceID(resourceID).
		SetActor(actor)
	if len(details) > 0 {
		create.SetDetails(details)
	}
	if err := create.Exec(ctx); err != nil {
		return fmt.Errorf("append audit record %s/%s: %w", action, resourceID, err)
	}
	return nil
}

// ForResource returns a resource's audit trail, oldest first.
func (r *Recorder) ForResource(ctx context.Context, resourceType, resourceID string) ([]*ent.AuditLog, error) {
	rows, err := r.client.AuditLog.Query().
		Where(
			auditlog.ResourceType(resourceType),
			auditlog.ResourceID(resourceID),
		).
		Order(ent.Asc(auditlog.FieldCreatedAt), ent.Asc(auditlog.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query audit trail for %s/%s: %w", resourceType, resourceID, err)
	}
	return rows, nil
}
