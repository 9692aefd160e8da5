// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"workgrid.io/workgrid/ent/membershipentry"
)

// MembershipEntry is the model entity for the MembershipEntry schema.
type MembershipEntry struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// TenantID holds the value of the "tenant_id" field.
	TenantID string `json:"tenant_id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// Role holds the value of the "role" field.
	Role string `json:"role,omitempty"`
	// CachedAt holds the value of the "cached_at" field.
	CachedAt     time.Time `json:"cached_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*MembershipEntry) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case membershipentry.FieldID:
			values[i] = new(sql.NullInt64)
		case membershipentry.FieldTenantID, membershipentry.FieldUserID, membershipentry.FieldRole:
			values[i] = new(sql.NullString)
		case membershipentry.FieldCachedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the MembershipEntry fields.
func (_m *MembershipEntry) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case membershipentry.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case membershipentry.FieldTenantID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tenant_id", values[i])
			} else if value.Valid {
				_m.TenantID = value.String
			}
		case membershipentry.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case membershipentry.FieldRole:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field role", values[i])
			} else if value.Valid {
				_m.Role = value.String
			}
		case membershipentry.FieldCachedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field cached_at", values[i])
			} else if value.Valid {
				_m.CachedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the MembershipEntry.
// This includes values selected through modifiers, order, etc.
func (_m *MembershipEntry) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this MembershipEntry.
// Note that you need to call MembershipEntry.Unwrap() before calling this method if this MembershipEntry
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *MembershipEntry) Update() *MembershipEntryUpdateOne {
	return NewMembershipEntryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the MembershipEntry entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *MembershipEntry) Unwrap() *MembershipEntry {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: MembershipEntry is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *MembershipEntry) String() string {
	var builder strings.Builder
	builder.WriteString("MembershipEntry(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("tenant_id=")
	builder.WriteString(_m.TenantID)
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("role=")
	builder.WriteString(_m.Role)
	builder.WriteString(", ")
	builder.WriteString("cached_at=")
	builder.WriteString(_m.CachedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// MembershipEntries is a parsable slice of MembershipEntry.
type MembershipEntries []*MembershipEntry
