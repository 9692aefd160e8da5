// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"workgrid.io/workgrid/ent/entitlemententry"
)

// EntitlementEntry is the model entity for the EntitlementEntry schema.
type EntitlementEntry struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// TenantID holds the value of the "tenant_id" field.
	TenantID string `json:"tenant_id,omitempty"`
	// MaxProjects holds the value of the "max_projects" field.
	MaxProjects int `json:"max_projects,omitempty"`
	// MaxMembers holds the value of the "max_members" field.
	MaxMembers int `json:"max_members,omitempty"`
	// MaxStorageMB holds the value of the "max_storage_mb" field.
	MaxStorageMB int `json:"max_storage_mb,omitempty"`
	// Features holds the value of the "features" field.
	Features []string `json:"features,omitempty"`
	// CachedAt holds the value of the "cached_at" field.
	CachedAt     time.Time `json:"cached_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*EntitlementEntry) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case entitlemententry.FieldFeatures:
			values[i] = new([]byte)
		case entitlemententry.FieldID, entitlemententry.FieldMaxProjects, entitlemententry.FieldMaxMembers, entitlemententry.FieldMaxStorageMB:
			values[i] = new(sql.NullInt64)
		case entitlemententry.FieldTenantID:
			values[i] = new(sql.NullString)
		case entitlemententry.FieldCachedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the EntitlementEntry fields.
func (_m *EntitlementEntry) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case entitlemententry.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case entitlemententry.FieldTenantID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tenant_id", values[i])
			} else if value.Valid {
				_m.TenantID = value.String
			}
		case entitlemententry.FieldMaxProjects:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_projects", values[i])
			} else if value.Valid {
				_m.MaxProjects = int(value.Int64)
			}
		case entitlemententry.FieldMaxMembers:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_members", values[i])
			} else if value.Valid {
				_m.MaxMembers = int(value.Int64)
			}
		case entitlemententry.FieldMaxStorageMB:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_storage_mb", values[i])
			} else if value.Valid {
				_m.MaxStorageMB = int(value.Int64)
			}
		case entitlemententry.FieldFeatures:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field features", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Features); err != nil {
					return fmt.Errorf("unmarshal field features: %w", err)
				}
			}
		case entitlemententry.FieldCachedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the EntitlementEntry.
// This includes values selected through modifiers, order, etc.
func (_m *EntitlementEntry) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this EntitlementEntry.
// Note that you need to call EntitlementEntry.Unwrap() before calling this method if this EntitlementEntry
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *EntitlementEntry) Update() *EntitlementEntryUpdateOne {
	return NewEntitlementEntryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the EntitlementEntry entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *EntitlementEntry) Unwrap() *EntitlementEntry {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: EntitlementEntry is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *EntitlementEntry) String() string {
	var builder strings.Builder
	builder.WriteString("EntitlementEntry(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("tenant_id=")
	builder.WriteString(_m.TenantID)
	builder.WriteString(", ")
	builder.WriteString("max_projects=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxProjects))
	builder.WriteString(", ")
	builder.WriteString("max_members=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxMembers))
	builder.WriteString(", ")
	builder.WriteString("max_storage_mb=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxStorageMB))
	builder.WriteString(", ")
	builder.WriteString("features=")
	builder.WriteString(fmt.Sprintf("%v", _m.Features))
	builder.WriteString(", ")
	builder.WriteString("cached_at=")
	builder.WriteString(_m.CachedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// EntitlementEntries is a parsable slice of EntitlementEntry.
type EntitlementEntries []*EntitlementEntry
