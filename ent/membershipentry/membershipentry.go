// Code generated by ent, DO NOT EDIT.

package membershipentry

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the membershipentry type in the database.
	Label = "membership_entry"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTenantID holds the string denoting the tenant_id field in the database.
	FieldTenantID = "tenant_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldRole holds the string denoting the role field in the database.
	FieldRole = "role"
	// FieldCachedAt holds the string denoting the cached_at field in the database.
	FieldCachedAt = "cached_at"
	// Table holds the table name of the membershipentry in the database.
	Table = "membership_entries"
)

// Columns holds all SQL columns for membershipentry fields.
var Columns = []string{
	FieldID,
	FieldTenantID,
	FieldUserID,
	FieldRole,
	FieldCachedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// TenantIDValidator is a validator for the "tenant_id" field. It is called by the builders before save.
	TenantIDValidator func(string) error
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// RoleValidator is a validator for the "role" field. It is called by the builders before save.
	RoleValidator func(string) error
	// DefaultCachedAt holds the default value on creation for the "cached_at" field.
	DefaultCachedAt func() time.Time
	// UpdateDefaultCachedAt holds the default value on update for the "cached_at" field.
	UpdateDefaultCachedAt func() time.Time
)

// OrderOption defines the ordering options for the MembershipEntry queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTenantID orders the results by the tenant_id field.
func ByTenantID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTenantID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByRole orders the results by the role field.
func ByRole(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRole, opts...).ToFunc()
}

// ByCachedAt orders the results by the cached_at field.
func ByCachedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCachedAt, opts...).ToFunc()
}
