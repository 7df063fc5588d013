// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/kaiwen/hrquest/ent/assessmentevent"
	"github.com/kaiwen/hrquest/ent/predicate"
)

// AssessmentEventUpdate is the builder for updating AssessmentEvent entities.
type AssessmentEventUpdate struct {
	config
	hooks    []Hook
	mutation *AssessmentEventMutation
}

// Where appends a list predicates to the AssessmentEventUpdate builder.
func (_u *AssessmentEventUpdate) Where(ps ...predicate.AssessmentEvent) *AssessmentEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *AssessmentEventUpdate) SetSessionID(v string) *AssessmentEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillableSessionID(v *string) *AssessmentEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *AssessmentEventUpdate) SetAction(v string) *AssessmentEventUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillableAction(v *string) *AssessmentEventUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetPlacedTitle sets the "placed_title" field.
func (_u *AssessmentEventUpdate) SetPlacedTitle(v string) *AssessmentEventUpdate {
	_u.mutation.SetPlacedTitle(v)
	return _u
}

// SetNillablePlacedTitle sets the "placed_title" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillablePlacedTitle(v *string) *AssessmentEventUpdate {
	if v != nil {
		_u.SetPlacedTitle(*v)
	}
	return _u
}

// ClearPlacedTitle clears the value of the "placed_title" field.
func (_u *AssessmentEventUpdate) ClearPlacedTitle() *AssessmentEventUpdate {
	_u.mutation.ClearPlacedTitle()
	return _u
}

// SetPlacedLevel sets the "placed_level" field.
func (_u *AssessmentEventUpdate) SetPlacedLevel(v int) *AssessmentEventUpdate {
	_u.mutation.ResetPlacedLevel()
	_u.mutation.SetPlacedLevel(v)
	return _u
}

// SetNillablePlacedLevel sets the "placed_level" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillablePlacedLevel(v *int) *AssessmentEventUpdate {
	if v != nil {
		_u.SetPlacedLevel(*v)
	}
	return _u
}

// AddPlacedLevel adds value to the "placed_level" field.
func (_u *AssessmentEventUpdate) AddPlacedLevel(v int) *AssessmentEventUpdate {
	_u.mutation.AddPlacedLevel(v)
	return _u
}

// SetRecommendedModule sets the "recommended_module" field.
func (_u *AssessmentEventUpdate) SetRecommendedModule(v int) *AssessmentEventUpdate {
	_u.mutation.ResetRecommendedModule()
	_u.mutation.SetRecommendedModule(v)
	return _u
}

// SetNillableRecommendedModule sets the "recommended_module" field if the given value is not nil.
func (_u *AssessmentEventUpdate) SetNillableRecommendedModule(v *int) *AssessmentEventUpdate {
	if v != nil {
		_u.SetRecommendedModule(*v)
	}
	return _u
}

// AddRecommendedModule adds value to the "recommended_module" field.
func (_u *AssessmentEventUpdate) AddRecommendedModule(v int) *AssessmentEventUpdate {
	_u.mutation.AddRecommendedModule(v)
	return _u
}

// Mutation returns the AssessmentEventMutation object of the builder.
func (_u *AssessmentEventUpdate) Mutation() *AssessmentEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AssessmentEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssessmentEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AssessmentEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssessmentEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AssessmentEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := assessmentevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := assessmentevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *AssessmentEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(assessmentevent.Table, assessmentevent.Columns, sqlgraph.NewFieldSpec(assessmentevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(assessmentevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(assessmentevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.PlacedTitle(); ok {
		_spec.SetField(assessmentevent.FieldPlacedTitle, field.TypeString, value)
	}
	if _u.mutation.PlacedTitleCleared() {
		_spec.ClearField(assessmentevent.FieldPlacedTitle, field.TypeString)
	}
	if value, ok := _u.mutation.PlacedLevel(); ok {
		_spec.SetField(assessmentevent.FieldPlacedLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPlacedLevel(); ok {
		_spec.AddField(assessmentevent.FieldPlacedLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RecommendedModule(); ok {
		_spec.SetField(assessmentevent.FieldRecommendedModule, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRecommendedModule(); ok {
		_spec.AddField(assessmentevent.FieldRecommendedModule, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assessmentevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AssessmentEventUpdateOne is the builder for updating a single AssessmentEvent entity.
type AssessmentEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AssessmentEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *AssessmentEventUpdateOne) SetSessionID(v string) *AssessmentEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillableSessionID(v *string) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *AssessmentEventUpdateOne) SetAction(v string) *AssessmentEventUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillableAction(v *string) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetPlacedTitle sets the "placed_title" field.
func (_u *AssessmentEventUpdateOne) SetPlacedTitle(v string) *AssessmentEventUpdateOne {
	_u.mutation.SetPlacedTitle(v)
	return _u
}

// SetNillablePlacedTitle sets the "placed_title" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillablePlacedTitle(v *string) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetPlacedTitle(*v)
	}
	return _u
}

// ClearPlacedTitle clears the value of the "placed_title" field.
func (_u *AssessmentEventUpdateOne) ClearPlacedTitle() *AssessmentEventUpdateOne {
	_u.mutation.ClearPlacedTitle()
	return _u
}

// SetPlacedLevel sets the "placed_level" field.
func (_u *AssessmentEventUpdateOne) SetPlacedLevel(v int) *AssessmentEventUpdateOne {
	_u.mutation.ResetPlacedLevel()
	_u.mutation.SetPlacedLevel(v)
	return _u
}

// SetNillablePlacedLevel sets the "placed_level" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillablePlacedLevel(v *int) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetPlacedLevel(*v)
	}
	return _u
}

// AddPlacedLevel adds value to the "placed_level" field.
func (_u *AssessmentEventUpdateOne) AddPlacedLevel(v int) *AssessmentEventUpdateOne {
	_u.mutation.AddPlacedLevel(v)
	return _u
}

// SetRecommendedModule sets the "recommended_module" field.
func (_u *AssessmentEventUpdateOne) SetRecommendedModule(v int) *AssessmentEventUpdateOne {
	_u.mutation.ResetRecommendedModule()
	_u.mutation.SetRecommendedModule(v)
	return _u
}

// SetNillableRecommendedModule sets the "recommended_module" field if the given value is not nil.
func (_u *AssessmentEventUpdateOne) SetNillableRecommendedModule(v *int) *AssessmentEventUpdateOne {
	if v != nil {
		_u.SetRecommendedModule(*v)
	}
	return _u
}

// AddRecommendedModule adds value to the "recommended_module" field.
func (_u *AssessmentEventUpdateOne) AddRecommendedModule(v int) *AssessmentEventUpdateOne {
	_u.mutation.AddRecommendedModule(v)
	return _u
}

// Mutation returns the AssessmentEventMutation object of the builder.
func (_u *AssessmentEventUpdateOne) Mutation() *AssessmentEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AssessmentEventUpdate builder.
func (_u *AssessmentEventUpdateOne) Where(ps ...predicate.AssessmentEvent) *AssessmentEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AssessmentEventUpdateOne) Select(field string, fields ...string) *AssessmentEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AssessmentEvent entity.
func (_u *AssessmentEventUpdateOne) Save(ctx context.Context) (*AssessmentEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssessmentEventUpdateOne) SaveX(ctx context.Context) *AssessmentEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AssessmentEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssessmentEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AssessmentEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := assessmentevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := assessmentevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "AssessmentEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *AssessmentEventUpdateOne) sqlSave(ctx context.Context) (_node *AssessmentEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(assessmentevent.Table, assessmentevent.Columns, sqlgraph.NewFieldSpec(assessmentevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AssessmentEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, assessmentevent.FieldID)
		for _, f := range fields {
			if !assessmentevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != assessmentevent.FieldID {
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
		_spec.SetField(assessmentevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(assessmentevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.PlacedTitle(); ok {
		_spec.SetField(assessmentevent.FieldPlacedTitle, field.TypeString, value)
	}
	if _u.mutation.PlacedTitleCleared() {
		_spec.ClearField(assessmentevent.FieldPlacedTitle, field.TypeString)
	}
	if value, ok := _u.mutation.PlacedLevel(); ok {
		_spec.SetField(assessmentevent.FieldPlacedLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPlacedLevel(); ok {
		_spec.AddField(assessmentevent.FieldPlacedLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RecommendedModule(); ok {
		_spec.SetField(assessmentevent.FieldRecommendedModule, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRecommendedModule(); ok {
		_spec.AddField(assessmentevent.FieldRecommendedModule, field.TypeInt, value)
	}
	_node = &AssessmentEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assessmentevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
