// Code generated by ent, DO NOT EDIT.

package taskevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the taskevent type in the database.
	Label = "task_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldTaskID holds the string denoting the task_id field in the database.
	FieldTaskID = "task_id"
	// FieldTaskTitle holds the string denoting the task_title field in the database.
	FieldTaskTitle = "task_title"
	// FieldModule holds the string denoting the module field in the database.
	FieldModule = "module"
	// FieldKind holds the string denoting the kind field in the database.
	FieldKind = "kind"
	// FieldXpAwarded holds the string denoting the xp_awarded field in the database.
	FieldXpAwarded = "xp_awarded"
	// FieldBadge holds the string denoting the badge field in the database.
	FieldBadge = "badge"
	// FieldQuizAllCorrect holds the string denoting the quiz_all_correct field in the database.
	FieldQuizAllCorrect = "quiz_all_correct"
	// Table holds the table name of the taskevent in the database.
	Table = "task_events"
)

// Columns holds all SQL columns for taskevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionID,
	FieldTaskID,
	FieldTaskTitle,
	FieldModule,
	FieldKind,
	FieldXpAwarded,
	FieldBadge,
	FieldQuizAllCorrect,
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
	// TaskIDValidator is a validator for the "task_id" field. It is called by the builders before save.
	TaskIDValidator func(int) error
	// TaskTitleValidator is a validator for the "task_title" field. It is called by the builders before save.
	TaskTitleValidator func(string) error
	// ModuleValidator is a validator for the "module" field. It is called by the builders before save.
	ModuleValidator func(string) error
	// KindValidator is a validator for the "kind" field. It is called by the builders before save.
	KindValidator func(string) error
	// DefaultQuizAllCorrect holds the default value on creation for the "quiz_all_correct" field.
	DefaultQuizAllCorrect bool
)

// OrderOption defines the ordering options for the TaskEvent queries.
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

// ByTaskID orders the results by the task_id field.
func ByTaskID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTaskID, opts...).ToFunc()
}

// ByTaskTitle orders the results by the task_title field.
func ByTaskTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTaskTitle, opts...).ToFunc()
}

// ByModule orders the results by the module field.
func ByModule(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModule, opts...).ToFunc()
}

// ByKind orders the results by the kind field.
func ByKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKind, opts...).ToFunc()
}

// ByXpAwarded orders the results by the xp_awarded field.
func ByXpAwarded(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldXpAwarded, opts...).ToFunc()
}

// ByBadge orders the results by the badge field.
func ByBadge(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBadge, opts...).ToFunc()
}

// ByQuizAllCorrect orders the results by the quiz_all_correct field.
func ByQuizAllCorrect(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuizAllCorrect, opts...).ToFunc()
}
