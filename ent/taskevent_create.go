// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/kaiwen/hrquest/ent/taskevent"
)

// TaskEventCreate is the builder for creating a TaskEvent entity.
type TaskEventCreate struct {
	config
	mutation *TaskEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *TaskEventCreate) SetSequence(v int64) *TaskEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *TaskEventCreate) SetTimestamp(v time.Time) *TaskEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *TaskEventCreate) SetNillableTimestamp(v *time.Time) *TaskEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *TaskEventCreate) SetSessionID(v string) *TaskEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetTaskID sets the "task_id" field.
func (_c *TaskEventCreate) SetTaskID(v int) *TaskEventCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetTaskTitle sets the "task_title" field.
func (_c *TaskEventCreate) SetTaskTitle(v string) *TaskEventCreate {
	_c.mutation.SetTaskTitle(v)
	return _c
}

// SetModule sets the "module" field.
func (_c *TaskEventCreate) SetModule(v string) *TaskEventCreate {
	_c.mutation.SetModule(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *TaskEventCreate) SetKind(v string) *TaskEventCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetXpAwarded sets the "xp_awarded" field.
func (_c *TaskEventCreate) SetXpAwarded(v int) *TaskEventCreate {
	_c.mutation.SetXpAwarded(v)
	return _c
}

// SetBadge sets the "badge" field.
func (_c *TaskEventCreate) SetBadge(v string) *TaskEventCreate {
	_c.mutation.SetBadge(v)
	return _c
}

// SetNillableBadge sets the "badge" field if the given value is not nil.
func (_c *TaskEventCreate) SetNillableBadge(v *string) *TaskEventCreate {
	if v != nil {
		_c.SetBadge(*v)
	}
	return _c
}

// SetQuizAllCorrect sets the "quiz_all_correct" field.
func (_c *TaskEventCreate) SetQuizAllCorrect(v bool) *TaskEventCreate {
	_c.mutation.SetQuizAllCorrect(v)
	return _c
}

// SetNillableQuizAllCorrect sets the "quiz_all_correct" field if the given value is not nil.
func (_c *TaskEventCreate) SetNillableQuizAllCorrect(v *bool) *TaskEventCreate {
	if v != nil {
		_c.SetQuizAllCorrect(*v)
	}
	return _c
}

// Mutation returns the TaskEventMutation object of the builder.
func (_c *TaskEventCreate) Mutation() *TaskEventMutation {
	return _c.mutation
}

// Save creates the TaskEvent in the database.
func (_c *TaskEventCreate) Save(ctx context.Context) (*TaskEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TaskEventCreate) SaveX(ctx context.Context) *TaskEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaskEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaskEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TaskEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := taskevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.QuizAllCorrect(); !ok {
		v := taskevent.DefaultQuizAllCorrect
		_c.mutation.SetQuizAllCorrect(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TaskEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "TaskEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "TaskEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "TaskEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := taskevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "TaskEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TaskID(); !ok {
		return &ValidationError{Name: "task_id", err: errors.New(`ent: missing required field "TaskEvent.task_id"`)}
	}
	if v, ok := _c.mutation.TaskID(); ok {
		if err := taskevent.TaskIDValidator(v); err != nil {
			return &ValidationError{Name: "task_id", err: fmt.Errorf(`ent: validator failed for field "TaskEvent.task_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TaskTitle(); !ok {
		return &ValidationError{Name: "task_title", err: errors.New(`ent: missing required field "TaskEvent.task_title"`)}
	}
	if v, ok := _c.mutation.TaskTitle(); ok {
		if err := taskevent.TaskTitleValidator(v); err != nil {
			return &ValidationError{Name: "task_title", err: fmt.Errorf(`ent: validator failed for field "TaskEvent.task_title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Module(); !ok {
		return &ValidationError{Name: "module", err: errors.New(`ent: missing required field "TaskEvent.module"`)}
	}
	if v, ok := _c.mutation.Module(); ok {
		if err := taskevent.ModuleValidator(v); err != nil {
			return &ValidationError{Name: "module", err: fmt.Errorf(`ent: validator failed for field "TaskEvent.module": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "TaskEvent.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := taskevent.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "TaskEvent.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.XpAwarded(); !ok {
		return &ValidationError{Name: "xp_awarded", err: errors.New(`ent: missing required field "TaskEvent.xp_awarded"`)}
	}
	if _, ok := _c.mutation.QuizAllCorrect(); !ok {
		return &ValidationError{Name: "quiz_all_correct", err: errors.New(`ent: missing required field "TaskEvent.quiz_all_correct"`)}
	}
	return nil
}

func (_c *TaskEventCreate) sqlSave(ctx context.Context) (*TaskEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TaskEventCreate) createSpec() (*TaskEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &TaskEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(taskevent.Table, sqlgraph.NewFieldSpec(taskevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(taskevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(taskevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(taskevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.TaskID(); ok {
		_spec.SetField(taskevent.FieldTaskID, field.TypeInt, value)
		_node.TaskID = value
	}
	if value, ok := _c.mutation.TaskTitle(); ok {
		_spec.SetField(taskevent.FieldTaskTitle, field.TypeString, value)
		_node.TaskTitle = value
	}
	if value, ok := _c.mutation.Module(); ok {
		_spec.SetField(taskevent.FieldModule, field.TypeString, value)
		_node.Module = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(taskevent.FieldKind, field.TypeString, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.XpAwarded(); ok {
		_spec.SetField(taskevent.FieldXpAwarded, field.TypeInt, value)
		_node.XpAwarded = value
	}
	if value, ok := _c.mutation.Badge(); ok {
		_spec.SetField(taskevent.FieldBadge, field.TypeString, value)
		_node.Badge = value
	}
	if value, ok := _c.mutation.QuizAllCorrect(); ok {
		_spec.SetField(taskevent.FieldQuizAllCorrect, field.TypeBool, value)
		_node.QuizAllCorrect = value
	}
	return _node, _spec
}

// TaskEventCreateBulk is the builder for creating many TaskEvent entities in bulk.
type TaskEventCreateBulk struct {
	config
	err      error
	builders []*TaskEventCreate
}

// Save creates the TaskEvent entities in the database.
func (_c *TaskEventCreateBulk) Save(ctx context.Context) ([]*TaskEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TaskEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TaskEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *TaskEventCreateBulk) SaveX(ctx context.Context) []*TaskEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaskEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaskEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
