// Code generated by ent, DO NOT EDIT.

package assessmentevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the assessmentevent type in the database.
	Label = "assessment_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldAction holds the string denoting the action field in the database.
	FieldAction = "action"
	// FieldPlacedTitle holds the string denoting the placed_title field in the database.
	FieldPlacedTitle = "placed_title"
	// FieldPlacedLevel holds the string denoting the placed_level field in the database.
	FieldPlacedLevel = "placed_level"
	// FieldRecommendedModule holds the string denoting the recommended_module field in the database.
	FieldRecommendedModule = "recommended_module"
	// Table holds the table name of the assessmentevent in the database.
	Table = "assessment_events"
)

// Columns holds all SQL columns for assessmentevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionID,
	FieldAction,
	FieldPlacedTitle,
	FieldPlacedLevel,
	FieldRecommendedModule,
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
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// ActionValidator is a validator for the "action" field. It is called by the builders before save.
	ActionValidator func(string) error
	// DefaultPlacedLevel holds the default value on creation for the "placed_level" field.
	DefaultPlacedLevel int
	// DefaultRecommendedModule holds the default value on creation for the "recommended_module" field.
	DefaultRecommendedModule int
)

// OrderOption defines the ordering options for the AssessmentEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByAction orders the results by the action field.
func ByAction(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAction, opts...).ToFunc()
}

// ByPlacedTitle orders the results by the placed_title field.
func ByPlacedTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlacedTitle, opts...).ToFunc()
}

// ByPlacedLevel orders the results by the placed_level field.
func ByPlacedLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlacedLevel, opts...).ToFunc()
}

// ByRecommendedModule orders the results by the recommended_module field.
func ByRecommendedModule(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecommendedModule, opts...).ToFunc()
}
