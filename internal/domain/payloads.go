package domain

import (
	"encoding/json"
	"fmt"
)

// MemberAddedPayload is the data of organization.member.added (and
// role_changed, which carries the same shape).
type MemberAddedPayload struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}

// ToJSON converts payload to JSON bytes.
func (p MemberAddedPayload) ToJSON() ([]byte, error) {
	return json.Marshal(p)
}

// memberAddedV10 is the retired 1.0 shape, kept for the two-version
// tolerance window. 1.0 named the role field "role_name".
type memberAddedV10 struct {
	UserID   string `json:"user_id"`
	RoleName string `json:"role_name"`
}

// DecodeMemberAdded decodes a member-added (or role-changed) payload,
// tolerating the two most recent schema versions.
func DecodeMemberAdded(version string, data []byte) (MemberAddedPayload, error) {
	switch version {
	case Version11:
		var p MemberAddedPayload
		if err := json.Unmarshal(data, &p); err != nil {
			return MemberAddedPayload{}, fmt.Errorf("unmarshal member payload v%s: %w", version, err)
		}
		return p, nil
	case Version10:
		var old memberAddedV10
		if err := json.Unmarshal(data, &old); err != nil {
			return MemberAddedPayload{}, fmt.Errorf("unmarshal member payload v%s: %w", version, err)
		}
		return MemberAddedPayload{UserID: old.UserID, Role: old.RoleName}, nil
	default:
		return MemberAddedPayload{}, fmt.Errorf("unsupported member payload version %q", version)
	}
}

// MemberRemovedPayload is the data of organization.member.removed. Stable
// across 1.0 and 1.1.
type MemberRemovedPayload struct {
	UserID string `json:"user_id"`
}

// ToJSON converts payload to JSON bytes.
func (p MemberRemovedPayload) ToJSON() ([]byte, error) {
	return json.Marshal(p)
}

// EntitlementsUpdatedPayload is the data of billing.entitlements.updated.
type EntitlementsUpdatedPayload struct {
	MaxProjects  int      `json:"max_projects"`
	MaxMembers   int      `json:"max_members"`
	MaxStorageMB int      `json:"max_storage_mb"`
	Features     []string `json:"features,omitempty"`
}

// ToJSON converts payload to JSON bytes.
func (p EntitlementsUpdatedPayload) ToJSON() ([]byte, error) {
	return json.Marshal(p)
}

// OrganizationDeletedPayload is the data of organization.deleted, the
// deletion saga's initiating event.
type OrganizationDeletedPayload struct {
	RequestedBy string `json:"requested_by"`
	Reason      string `json:"reason,omitempty"`
}

// ToJSON converts payload to JSON bytes.
func (p OrganizationDeletedPayload) ToJSON() ([]byte, error) {
	return json.Marshal(p)
}

// StepCommandPayload is the data of a step command the coordinator publishes
// to a participant. The envelope's correlation id is the saga id.
type StepCommandPayload struct {
	SagaID   string          `json:"saga_id"`
	StepName string          `json:"step_name"`
	Context  json.RawMessage `json:"context,omitempty"`
}

// ToJSON converts payload to JSON bytes.
func (p StepCommandPayload) ToJSON() ([]byte, error) {
	return json.Marshal(p)
}

// StepAckPayload is the data of a participant acknowledgement. Failure acks
// carry the participant's terminal error; the participant only publishes a
// failure ack after its own local retries are exhausted.
type StepAckPayload struct {
	SagaID   string          `json:"saga_id"`
	StepName string          `json:"step_name"`
	Error    string          `json:"error,omitempty"`
	Result   json.RawMessage `json:"result,omitempty"`
}

// ToJSON converts payload to JSON bytes.
func (p StepAckPayload) ToJSON() ([]byte, error) {
	return json.Marshal(p)
}

// SagaFactPayload is the data of the step-completion / compensation facts
// the coordinator publishes for audit and downstream choreography.
type SagaFactPayload struct {
	SagaID   string `json:"saga_id"`
	SagaType string `json:"saga_type"`
	StepName string `json:"step_name,omitempty"`
	Status   string `json:"status"`
	Reason   string `json:"reason,omitempty"`
}

// ToJSON converts payload to JSON bytes.
func (p SagaFactPayload) ToJSON() ([]byte, error) {
	return json.Marshal(p)
}
