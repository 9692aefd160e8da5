// Code generated by ent, DO NOT EDIT.

package entitlemententry

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the entitlemententry type in the database.
	Label = "entitlement_entry"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTenantID holds the string denoting the tenant_id field in the database.
	FieldTenantID = "tenant_id"
	// FieldMaxProjects holds the string denoting the max_projects field in the database.
	FieldMaxProjects = "max_projects"
	// FieldMaxMembers holds the string denoting the max_members field in the database.
	FieldMaxMembers = "max_members"
	// FieldMaxStorageMB holds the string denoting the max_storage_mb field in the database.
	FieldMaxStorageMB = "max_storage_mb"
	// FieldFeatures holds the string denoting the features field in the database.
	FieldFeatures = "features"
	// FieldCachedAt holds the string denoting the cached_at field in the database.
	FieldCachedAt = "cached_at"
	// Table holds the table name of the entitlemententry in the database.
	Table = "entitlement_entries"
)

// Columns holds all SQL columns for entitlemententry fields.
var Columns = []string{
	FieldID,
	FieldTenantID,
	FieldMaxProjects,
	FieldMaxMembers,
	FieldMaxStorageMB,
	FieldFeatures,
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
	// MaxProjectsValidator is a validator for the "max_projects" field. It is called by the builders before save.
	MaxProjectsValidator func(int) error
	// MaxMembersValidator is a validator for the "max_members" field. It is called by the builders before save.
	MaxMembersValidator func(int) error
	// MaxStorageMBValidator is a validator for the "max_storage_mb" field. It is called by the builders before save.
	MaxStorageMBValidator func(int) error
	// DefaultCachedAt holds the default value on creation for the "cached_at" field.
	DefaultCachedAt func() time.Time
	// UpdateDefaultCachedAt holds the default value on update for the "cached_at" field.
	UpdateDefaultCachedAt func() time.Time
)

// OrderOption defines the ordering options for the EntitlementEntry queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTenantID orders the results by the tenant_id field.
func ByTenantID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTenantID, opts...).ToFunc()
}

// ByMaxProjects orders the results by the max_projects field.
func ByMaxProjects(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxProjects, opts...).ToFunc()
}

// ByMaxMembers orders the results by the max_members field.
func ByMaxMembers(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxMembers, opts...).ToFunc()
}

// ByMaxStorageMB orders the results by the max_storage_mb field.
func ByMaxStorageMB(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxStorageMB, opts...).ToFunc()
}

// ByCachedAt orders the results by the cached_at field.
func ByCachedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCachedAt, opts...).ToFunc()
}
