// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/kaiwen/hrquest/ent/taskevent"
)

// TaskEvent is the model entity for the TaskEvent schema.
type TaskEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Launch this completion belongs to
	SessionID string `json:"session_id,omitempty"`
	// Catalog id of the completed task
	TaskID int `json:"task_id,omitempty"`
	// TaskTitle holds the value of the "task_title" field.
	TaskTitle string `json:"task_title,omitempty"`
	// Module display name
	Module string `json:"module,omitempty"`
	// quiz or standard
	Kind string `json:"kind,omitempty"`
	// XpAwarded holds the value of the "xp_awarded" field.
	XpAwarded int `json:"xp_awarded,omitempty"`
	// Badge granted by this completion, empty if none or already held
	Badge string `json:"badge,omitempty"`
	// For quiz tasks, whether every answer was correct
	QuizAllCorrect bool `json:"quiz_all_correct,omitempty"`
	selectValues   sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TaskEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case taskevent.FieldQuizAllCorrect:
			values[i] = new(sql.NullBool)
		case taskevent.FieldID, taskevent.FieldSequence, taskevent.FieldTaskID, taskevent.FieldXpAwarded:
			values[i] = new(sql.NullInt64)
		case taskevent.FieldSessionID, taskevent.FieldTaskTitle, taskevent.FieldModule, taskevent.FieldKind, taskevent.FieldBadge:
			values[i] = new(sql.NullString)
		case taskevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TaskEvent fields.
func (_m *TaskEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case taskevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case taskevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case taskevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case taskevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case taskevent.FieldTaskID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field task_id", values[i])
			} else if value.Valid {
				_m.TaskID = int(value.Int64)
			}
		case taskevent.FieldTaskTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field task_title", values[i])
			} else if value.Valid {
				_m.TaskTitle = value.String
			}
		case taskevent.FieldModule:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field module", values[i])
			} else if value.Valid {
				_m.Module = value.String
			}
		case taskevent.FieldKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field kind", values[i])
			} else if value.Valid {
				_m.Kind = value.String
			}
		case taskevent.FieldXpAwarded:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field xp_awarded", values[i])
			} else if value.Valid {
				_m.XpAwarded = int(value.Int64)
			}
		case taskevent.FieldBadge:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field badge", values[i])
			} else if value.Valid {
				_m.Badge = value.String
			}
		case taskevent.FieldQuizAllCorrect:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field quiz_all_correct", values[i])
			} else if value.Valid {
				_m.QuizAllCorrect = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TaskEvent.
// This includes values selected through modifiers, order, etc.
func (_m *TaskEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this TaskEvent.
// Note that you need to call TaskEvent.Unwrap() before calling this method if this TaskEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TaskEvent) Update() *TaskEventUpdateOne {
	return NewTaskEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TaskEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TaskEvent) Unwrap() *TaskEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TaskEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TaskEvent) String() string {
	var builder strings.Builder
	builder.WriteString("TaskEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("task_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.TaskID))
	builder.WriteString(", ")
	builder.WriteString("task_title=")
	builder.WriteString(_m.TaskTitle)
	builder.WriteString(", ")
	builder.WriteString("module=")
	builder.WriteString(_m.Module)
	builder.WriteString(", ")
	builder.WriteString("kind=")
	builder.WriteString(_m.Kind)
	builder.WriteString(", ")
	builder.WriteString("xp_awarded=")
	builder.WriteString(fmt.Sprintf("%v", _m.XpAwarded))
	builder.WriteString(", ")
	builder.WriteString("badge=")
	builder.WriteString(_m.Badge)
	builder.WriteString(", ")
	builder.WriteString("quiz_all_correct=")
	builder.WriteString(fmt.Sprintf("%v", _m.QuizAllCorrect))
	builder.WriteByte(')')
	return builder.String()
}

// TaskEvents is a parsable slice of TaskEvent.
type TaskEvents []*TaskEvent
