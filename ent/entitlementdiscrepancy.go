// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"workgrid.io/workgrid/ent/entitlementdiscrepancy"
)

// EntitlementDiscrepancy is the model entity for the EntitlementDiscrepancy schema.
type EntitlementDiscrepancy struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// TenantID holds the value of the "tenant_id" field.
	TenantID string `json:"tenant_id,omitempty"`
	// Operation holds the value of the "operation" field.
	Operation string `json:"operation,omitempty"`
	// Reconciled holds the value of the "reconciled" field.
	Reconciled   bool `json:"reconciled,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*EntitlementDiscrepancy) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case entitlementdiscrepancy.FieldReconciled:
			values[i] = new(sql.NullBool)
		case entitlementdiscrepancy.FieldID, entitlementdiscrepancy.FieldTenantID, entitlementdiscrepancy.FieldOperation:
			values[i] = new(sql.NullString)
		case entitlementdiscrepancy.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the EntitlementDiscrepancy fields.
func (_m *EntitlementDiscrepancy) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case entitlementdiscrepancy.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case entitlementdiscrepancy.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case entitlementdiscrepancy.FieldTenantID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tenant_id", values[i])
			} else if value.Valid {
				_m.TenantID = value.String
			}
		case entitlementdiscrepancy.FieldOperation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field operation", values[i])
			} else if value.Valid {
				_m.Operation = value.String
			}
		case entitlementdiscrepancy.FieldReconciled:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field reconciled", values[i])
			} else if value.Valid {
				_m.Reconciled = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the EntitlementDiscrepancy.
// This includes values selected through modifiers, order, etc.
func (_m *EntitlementDiscrepancy) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this EntitlementDiscrepancy.
// Note that you need to call EntitlementDiscrepancy.Unwrap() before calling this method if this EntitlementDiscrepancy
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *EntitlementDiscrepancy) Update() *EntitlementDiscrepancyUpdateOne {
	return NewEntitlementDiscrepancyClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the EntitlementDiscrepancy entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *EntitlementDiscrepancy) Unwrap() *EntitlementDiscrepancy {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: EntitlementDiscrepancy is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *EntitlementDiscrepancy) String() string {
	var builder strings.Builder
	builder.WriteString("EntitlementDiscrepancy(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("tenant_id=")
	builder.WriteString(_m.TenantID)
	builder.WriteString(", ")
	builder.WriteString("operation=")
	builder.WriteString(_m.Operation)
	builder.WriteString(", ")
	builder.WriteString("reconciled=")
	builder.WriteString(fmt.Sprintf("%v", _m.Reconciled))
	builder.WriteByte(')')
	return builder.String()
}

// EntitlementDiscrepancies is a parsable slice of EntitlementDiscrepancy.
type EntitlementDiscrepancies []*EntitlementDiscrepancy
