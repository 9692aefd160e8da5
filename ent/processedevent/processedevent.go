// Code generated by ent, DO NOT EDIT.

package processedevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the processedevent type in the database.
	Label = "processed_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldConsumerID holds the string denoting the consumer_id field in the database.
	FieldConsumerID = "consumer_id"
	// FieldEventID holds the string denoting the event_id field in the database.
	FieldEventID = "event_id"
	// FieldProcessedAt holds the string denoting the processed_at field in the database.
	FieldProcessedAt = "processed_at"
	// Table holds the table name of the processedevent in the database.
	Table = "processed_events"
)

// Columns holds all SQL columns for processedevent fields.
var Columns = []string{
	FieldID,
	FieldConsumerID,
	FieldEventID,
	FieldProcessedAt,
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
	// ConsumerIDValidator is a validator for the "consumer_id" field. It is called by the builders before save.
	ConsumerIDValidator func(string) error
	// EventIDValidator is a validator for the "event_id" field. It is called by the builders before save.
	EventIDValidator func(string) error
	// DefaultProcessedAt holds the default value on creation for the "processed_at" field.
	DefaultProcessedAt func() time.Time
)

// OrderOption defines the ordering options for the ProcessedEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByConsumerID orders the results by the consumer_id field.
func ByConsumerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConsumerID, opts...).ToFunc()
}

// ByEventID orders the results by the event_id field.
func ByEventID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEventID, opts...).ToFunc()
}

// ByProcessedAt orders the results by the processed_at field.
func ByProcessedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProcessedAt, opts...).ToFunc()
}
