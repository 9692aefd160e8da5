// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"workgrid.io/workgrid/ent/sagastep"
)

// SagaStep is the model entity for the SagaStep schema.
type SagaStep struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// SagaID holds the value of the "saga_id" field.
	SagaID string `json:"saga_id,omitempty"`
	// Seq holds the value of the "seq" field.
	Seq int `json:"seq,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Participant holds the value of the "participant" field.
	Participant string `json:"participant,omitempty"`
	// Status holds the value of the "status" field.
	Status sagastep.Status `json:"status,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// CompensationPayload holds the value of the "compensation_payload" field.
	CompensationPayload []byte `json:"compensation_payload,omitempty"`
	selectValues        sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SagaStep) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case sagastep.FieldCompensationPayload:
			values[i] = new([]byte)
		case sagastep.FieldSeq:
			values[i] = new(sql.NullInt64)
		case sagastep.FieldID, sagastep.FieldSagaID, sagastep.FieldName, sagastep.FieldParticipant, sagastep.FieldStatus:
			values[i] = new(sql.NullString)
		case sagastep.FieldCreatedAt, sagastep.FieldUpdatedAt, sagastep.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SagaStep fields.
func (_m *SagaStep) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case sagastep.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case sagastep.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case sagastep.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case sagastep.FieldSagaID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field saga_id", values[i])
			} else if value.Valid {
				_m.SagaID = value.String
			}
		case sagastep.FieldSeq:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field seq", values[i])
			} else if value.Valid {
				_m.Seq = int(value.Int64)
			}
		case sagastep.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case sagastep.FieldParticipant:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field participant", values[i])
			} else if value.Valid {
				_m.Participant = value.String
			}
		case sagastep.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = sagastep.Status(value.String)
			}
		case sagastep.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case sagastep.FieldCompensationPayload:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field compensation_payload", values[i])
			} else if value != nil {
				_m.CompensationPayload = *value
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SagaStep.
// This includes values selected through modifiers, order, etc.
func (_m *SagaStep) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SagaStep.
// Note that you need to call SagaStep.Unwrap() before calling this method if this SagaStep
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SagaStep) Update() *SagaStepUpdateOne {
	return NewSagaStepClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SagaStep entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SagaStep) Unwrap() *SagaStep {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SagaStep is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SagaStep) String() string {
	var builder strings.Builder
	builder.WriteString("SagaStep(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("saga_id=")
	builder.WriteString(_m.SagaID)
	builder.WriteString(", ")
	builder.WriteString("seq=")
	builder.WriteString(fmt.Sprintf("%v", _m.Seq))
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("participant=")
	builder.WriteString(_m.Participant)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("compensation_payload=")
	builder.WriteString(fmt.Sprintf("%v", _m.CompensationPayload))
	builder.WriteByte(')')
	return builder.String()
}

// SagaSteps is a parsable slice of SagaStep.
type SagaSteps []*SagaStep
