// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/kaiwen/hrquest/ent/predicate"
	"github.com/kaiwen/hrquest/ent/taskevent"
)

// TaskEventUpdate is the builder for updating TaskEvent entities.
type TaskEventUpdate struct {
	config
	hooks    []Hook
	mutation *TaskEventMutation
}

// Where appends a list predicates to the TaskEventUpdate builder.
func (_u *TaskEventUpdate) Where(ps ...predicate.TaskEvent) *TaskEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *TaskEventUpdate) SetSessionID(v string) *TaskEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *TaskEventUpdate) SetNillableSessionID(v *string) *TaskEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetTaskID sets the "task_id" field.
func (_u *TaskEventUpdate) SetTaskID(v int) *TaskEventUpdate {
	_u.mutation.ResetTaskID()
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *TaskEventUpdate) SetNillableTaskID(v *int) *TaskEventUpdate {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// AddTaskID adds value to the "task_id" field.
func (_u *TaskEventUpdate) AddTaskID(v int) *TaskEventUpdate {
	_u.mutation.AddTaskID(v)
	return _u
}

// SetTaskTitle sets the "task_title" field.
func (_u *TaskEventUpdate) SetTaskTitle(v string) *TaskEventUpdate {
	_u.mutation.SetTaskTitle(v)
	return _u
}

// SetNillableTaskTitle sets the "task_title" field if the given value is not nil.
func (_u *TaskEventUpdate) SetNillableTaskTitle(v *string) *TaskEventUpdate {
	if v != nil {
		_u.SetTaskTitle(*v)
	}
	return _u
}

// SetModule sets the "module" field.
func (_u *TaskEventUpdate) SetModule(v string) *TaskEventUpdate {
	_u.mutation.SetModule(v)
	return _u
}

// SetNillableModule sets the "module" field if the given value is not nil.
func (_u *TaskEventUpdate) SetNillableModule(v *string) *TaskEventUpdate {
	if v != nil {
		_u.SetModule(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *TaskEventUpdate) SetKind(v string) *TaskEventUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *TaskEventUpdate) SetNillableKind(v *string) *TaskEventUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetXpAwarded sets the "xp_awarded" field.
func (_u *TaskEventUpdate) SetXpAwarded(v int) *TaskEventUpdate {
	_u.mutation.ResetXpAwarded()
	_u.mutation.SetXpAwarded(v)
	return _u
}

// SetNillableXpAwarded sets the "xp_awarded" field if the given value is not nil.
func (_u *TaskEventUpdate) SetNillableXpAwarded(v *int) *TaskEventUpdate {
	if v != nil {
		_u.SetXpAwarded(*v)
	}
	return _u
}

// AddXpAwarded adds value to the "xp_awarded" field.
func (_u *TaskEventUpdate) AddXpAwarded(v int) *TaskEventUpdate {
	_u.mutation.AddXpAwarded(v)
	return _u
}

// SetBadge sets the "badge" field.
func (_u *TaskEventUpdate) SetBadge(v string) *TaskEventUpdate {
	_u.mutation.SetBadge(v)
	return _u
}

// SetNillableBadge sets the "badge" field if the given value is not nil.
func (_u *TaskEventUpdate) SetNillableBadge(v *string) *TaskEventUpdate {
	if v != nil {
		_u.SetBadge(*v)
	}
	return _u
}

// ClearBadge clears the value of the "badge" field.
func (_u *TaskEventUpdate) ClearBadge() *TaskEventUpdate {
	_u.mutation.ClearBadge()
	return _u
}

// SetQuizAllCorrect sets the "quiz_all_correct" field.
func (_u *TaskEventUpdate) SetQuizAllCorrect(v bool) *TaskEventUpdate {
	_u.mutation.SetQuizAllCorrect(v)
	return _u
}

// SetNillableQuizAllCorrect sets the "quiz_all_correct" field if the given value is not nil.
func (_u *TaskEventUpdate) SetNillableQuizAllCorrect(v *bool) *TaskEventUpdate {
	if v != nil {
		_u.SetQuizAllCorrect(*v)
	}
	return _u
}

// Mutation returns the TaskEventMutation object of the builder.
func (_u *TaskEventUpdate) Mutation() *TaskEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TaskEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TaskEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := taskevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "TaskEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TaskID(); ok {
		if err := taskevent.TaskIDValidator(v); err != nil {
			return &ValidationError{Name: "task_id", err: fmt.Errorf(`ent: validator failed for field "TaskEvent.task_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TaskTitle(); ok {
		if err := taskevent.TaskTitleValidator(v); err != nil {
			return &ValidationError{Name: "task_title", err: fmt.Errorf(`ent: validator failed for field "TaskEvent.task_title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Module(); ok {
		if err := taskevent.ModuleValidator(v); err != nil {
			return &ValidationError{Name: "module", err: fmt.Errorf(`ent: validator failed for field "TaskEvent.module": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Kind(); ok {
		if err := taskevent.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "TaskEvent.kind": %w`, err)}
		}
	}
	return nil
}

func (_u *TaskEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(taskevent.Table, taskevent.Columns, sqlgraph.NewFieldSpec(taskevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(taskevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TaskID(); ok {
		_spec.SetField(taskevent.FieldTaskID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTaskID(); ok {
		_spec.AddField(taskevent.FieldTaskID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TaskTitle(); ok {
		_spec.SetField(taskevent.FieldTaskTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Module(); ok {
		_spec.SetField(taskevent.FieldModule, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(taskevent.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.XpAwarded(); ok {
		_spec.SetField(taskevent.FieldXpAwarded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedXpAwarded(); ok {
		_spec.AddField(taskevent.FieldXpAwarded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Badge(); ok {
		_spec.SetField(taskevent.FieldBadge, field.TypeString, value)
	}
	if _u.mutation.BadgeCleared() {
		_spec.ClearField(taskevent.FieldBadge, field.TypeString)
	}
	if value, ok := _u.mutation.QuizAllCorrect(); ok {
		_spec.SetField(taskevent.FieldQuizAllCorrect, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{taskevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TaskEventUpdateOne is the builder for updating a single TaskEvent entity.
type TaskEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TaskEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *TaskEventUpdateOne) SetSessionID(v string) *TaskEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *TaskEventUpdateOne) SetNillableSessionID(v *string) *TaskEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetTaskID sets the "task_id" field.
func (_u *TaskEventUpdateOne) SetTaskID(v int) *TaskEventUpdateOne {
	_u.mutation.ResetTaskID()
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *TaskEventUpdateOne) SetNillableTaskID(v *int) *TaskEventUpdateOne {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// AddTaskID adds value to the "task_id" field.
func (_u *TaskEventUpdateOne) AddTaskID(v int) *TaskEventUpdateOne {
	_u.mutation.AddTaskID(v)
	return _u
}

// SetTaskTitle sets the "task_title" field.
func (_u *TaskEventUpdateOne) SetTaskTitle(v string) *TaskEventUpdateOne {
	_u.mutation.SetTaskTitle(v)
	return _u
}

// SetNillableTaskTitle sets the "task_title" field if the given value is not nil.
func (_u *TaskEventUpdateOne) SetNillableTaskTitle(v *string) *TaskEventUpdateOne {
	if v != nil {
		_u.SetTaskTitle(*v)
	}
	return _u
}

// SetModule sets the "module" field.
func (_u *TaskEventUpdateOne) SetModule(v string) *TaskEventUpdateOne {
	_u.mutation.SetModule(v)
	return _u
}

// SetNillableModule sets the "module" field if the given value is not nil.
func (_u *TaskEventUpdateOne) SetNillableModule(v *string) *TaskEventUpdateOne {
	if v != nil {
		_u.SetModule(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *TaskEventUpdateOne) SetKind(v string) *TaskEventUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *TaskEventUpdateOne) SetNillableKind(v *string) *TaskEventUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetXpAwarded sets the "xp_awarded" field.
func (_u *TaskEventUpdateOne) SetXpAwarded(v int) *TaskEventUpdateOne {
	_u.mutation.ResetXpAwarded()
	_u.mutation.SetXpAwarded(v)
	return _u
}

// SetNillableXpAwarded sets the "xp_awarded" field if the given value is not nil.
func (_u *TaskEventUpdateOne) SetNillableXpAwarded(v *int) *TaskEventUpdateOne {
	if v != nil {
		_u.SetXpAwarded(*v)
	}
	return _u
}

// AddXpAwarded adds value to the "xp_awarded" field.
func (_u *TaskEventUpdateOne) AddXpAwarded(v int) *TaskEventUpdateOne {
	_u.mutation.AddXpAwarded(v)
	return _u
}

// SetBadge sets the "badge" field.
func (_u *TaskEventUpdateOne) SetBadge(v string) *TaskEventUpdateOne {
	_u.mutation.SetBadge(v)
	return _u
}

// SetNillableBadge sets the "badge" field if the given value is not nil.
func (_u *TaskEventUpdateOne) SetNillableBadge(v *string) *TaskEventUpdateOne {
	if v != nil {
		_u.SetBadge(*v)
	}
	return _u
}

// ClearBadge clears the value of the "badge" field.
func (_u *TaskEventUpdateOne) ClearBadge() *TaskEventUpdateOne {
	_u.mutation.ClearBadge()
	return _u
}

// SetQuizAllCorrect sets the "quiz_all_correct" field.
func (_u *TaskEventUpdateOne) SetQuizAllCorrect(v bool) *TaskEventUpdateOne {
	_u.mutation.SetQuizAllCorrect(v)
	return _u
}

// SetNillableQuizAllCorrect sets the "quiz_all_correct" field if the given value is not nil.
func (_u *TaskEventUpdateOne) SetNillableQuizAllCorrect(v *bool) *TaskEventUpdateOne {
	if v != nil {
		_u.SetQuizAllCorrect(*v)
	}
	return _u
}

// Mutation returns the TaskEventMutation object of the builder.
func (_u *TaskEventUpdateOne) Mutation() *TaskEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the TaskEventUpdate builder.
func (_u *TaskEventUpdateOne) Where(ps ...predicate.TaskEvent) *TaskEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TaskEventUpdateOne) Select(field string, fields ...string) *TaskEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TaskEvent entity.
func (_u *TaskEventUpdateOne) Save(ctx context.Context) (*TaskEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskEventUpdateOne) SaveX(ctx context.Context) *TaskEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TaskEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := taskevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "TaskEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TaskID(); ok {
		if err := taskevent.TaskIDValidator(v); err != nil {
			return &ValidationError{Name: "task_id", err: fmt.Errorf(`ent: validator failed for field "TaskEvent.task_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TaskTitle(); ok {
		if err := taskevent.TaskTitleValidator(v); err != nil {
			return &ValidationError{Name: "task_title", err: fmt.Errorf(`ent: validator failed for field "TaskEvent.task_title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Module(); ok {
		if err := taskevent.ModuleValidator(v); err != nil {
			return &ValidationError{Name: "module", err: fmt.Errorf(`ent: validator failed for field "TaskEvent.module": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Kind(); ok {
		if err := taskevent.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "TaskEvent.kind": %w`, err)}
		}
	}
	return nil
}

func (_u *TaskEventUpdateOne) sqlSave(ctx context.Context) (_node *TaskEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(taskevent.Table, taskevent.Columns, sqlgraph.NewFieldSpec(taskevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TaskEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, taskevent.FieldID)
		for _, f := range fields {
			if !taskevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != taskevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(taskevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TaskID(); ok {
		_spec.SetField(taskevent.FieldTaskID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTaskID(); ok {
		_spec.AddField(taskevent.FieldTaskID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TaskTitle(); ok {
		_spec.SetField(taskevent.FieldTaskTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Module(); ok {
		_spec.SetField(taskevent.FieldModule, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(taskevent.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.XpAwarded(); ok {
		_spec.SetField(taskevent.FieldXpAwarded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedXpAwarded(); ok {
		_spec.AddField(taskevent.FieldXpAwarded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Badge(); ok {
		_spec.SetField(taskevent.FieldBadge, field.TypeString, value)
	}
	if _u.mutation.BadgeCleared() {
		_spec.ClearField(taskevent.FieldBadge, field.TypeString)
	}
	if value, ok := _u.mutation.QuizAllCorrect(); ok {
		_spec.SetField(taskevent.FieldQuizAllCorrect, field.TypeBool, value)
	}
	_node = &TaskEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{taskevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
