// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/kaiwen/hrquest/ent/assessmentevent"
	"github.com/kaiwen/hrquest/ent/predicate"
	"github.com/kaiwen/hrquest/ent/taskevent"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAssessmentEvent = "AssessmentEvent"
	TypeTaskEvent       = "TaskEvent"
)

// AssessmentEventMutation represents an operation that mutates the AssessmentEvent nodes in the graph.
type AssessmentEventMutation struct {
	config
	op                    Op
	typ                   string
	id                    *int
	sequence              *int64
	addsequence           *int64
	timestamp             *time.Time
	session_id            *string
	action                *string
	placed_title          *string
	placed_level          *int
	addplaced_level       *int
	recommended_module    *int
	addrecommended_module *int
	clearedFields         map[string]struct{}
	done                  bool
	oldValue              func(context.Context) (*AssessmentEvent, error)
	predicates            []predicate.AssessmentEvent
}

var _ ent.Mutation = (*AssessmentEventMutation)(nil)

// assessmenteventOption allows management of the mutation configuration using functional options.
type assessmenteventOption func(*AssessmentEventMutation)

// newAssessmentEventMutation creates new mutation for the AssessmentEvent entity.
func newAssessmentEventMutation(c config, op Op, opts ...assessmenteventOption) *AssessmentEventMutation {
	m := &AssessmentEventMutation{
		config:        c,
		op:            op,
		typ:           TypeAssessmentEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAssessmentEventID sets the ID field of the mutation.
func withAssessmentEventID(id int) assessmenteventOption {
	return func(m *AssessmentEventMutation) {
		var (
			err   error
			once  sync.Once
			value *AssessmentEvent
		)
		m.oldValue = func(ctx context.Context) (*AssessmentEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AssessmentEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAssessmentEvent sets the old AssessmentEvent of the mutation.
func withAssessmentEvent(node *AssessmentEvent) assessmenteventOption {
	return func(m *AssessmentEventMutation) {
		m.oldValue = func(context.Context) (*AssessmentEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AssessmentEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AssessmentEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AssessmentEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AssessmentEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AssessmentEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *AssessmentEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *AssessmentEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the AssessmentEvent entity.
// If the AssessmentEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *AssessmentEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *AssessmentEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *AssessmentEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *AssessmentEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *AssessmentEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the AssessmentEvent entity.
// If the AssessmentEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *AssessmentEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetSessionID sets the "session_id" field.
func (m *AssessmentEventMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *AssessmentEventMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the AssessmentEvent entity.
// If the AssessmentEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentEventMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *AssessmentEventMutation) ResetSessionID() {
	m.session_id = nil
}

// SetAction sets the "action" field.
func (m *AssessmentEventMutation) SetAction(s string) {
	m.action = &s
}

// Action returns the value of the "action" field in the mutation.
func (m *AssessmentEventMutation) Action() (r string, exists bool) {
	v := m.action
	if v == nil {
		return
	}
	return *v, true
}

// OldAction returns the old "action" field's value of the AssessmentEvent entity.
// If the AssessmentEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentEventMutation) OldAction(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAction: %w", err)
	}
	return oldValue.Action, nil
}

// ResetAction resets all changes to the "action" field.
func (m *AssessmentEventMutation) ResetAction() {
	m.action = nil
}

// SetPlacedTitle sets the "placed_title" field.
func (m *AssessmentEventMutation) SetPlacedTitle(s string) {
	m.placed_title = &s
}

// PlacedTitle returns the value of the "placed_title" field in the mutation.
func (m *AssessmentEventMutation) PlacedTitle() (r string, exists bool) {
	v := m.placed_title
	if v == nil {
		return
	}
	return *v, true
}

// OldPlacedTitle returns the old "placed_title" field's value of the AssessmentEvent entity.
// If the AssessmentEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentEventMutation) OldPlacedTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlacedTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlacedTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlacedTitle: %w", err)
	}
	return oldValue.PlacedTitle, nil
}

// ClearPlacedTitle clears the value of the "placed_title" field.
func (m *AssessmentEventMutation) ClearPlacedTitle() {
	m.placed_title = nil
	m.clearedFields[assessmentevent.FieldPlacedTitle] = struct{}{}
}

// PlacedTitleCleared returns if the "placed_title" field was cleared in this mutation.
func (m *AssessmentEventMutation) PlacedTitleCleared() bool {
	_, ok := m.clearedFields[assessmentevent.FieldPlacedTitle]
	return ok
}

// ResetPlacedTitle resets all changes to the "placed_title" field.
func (m *AssessmentEventMutation) ResetPlacedTitle() {
	m.placed_title = nil
	delete(m.clearedFields, assessmentevent.FieldPlacedTitle)
}

// SetPlacedLevel sets the "placed_level" field.
func (m *AssessmentEventMutation) SetPlacedLevel(i int) {
	m.placed_level = &i
	m.addplaced_level = nil
}

// PlacedLevel returns the value of the "placed_level" field in the mutation.
func (m *AssessmentEventMutation) PlacedLevel() (r int, exists bool) {
	v := m.placed_level
	if v == nil {
		return
	}
	return *v, true
}

// OldPlacedLevel returns the old "placed_level" field's value of the AssessmentEvent entity.
// If the AssessmentEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentEventMutation) OldPlacedLevel(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlacedLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlacedLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlacedLevel: %w", err)
	}
	return oldValue.PlacedLevel, nil
}

// AddPlacedLevel adds i to the "placed_level" field.
func (m *AssessmentEventMutation) AddPlacedLevel(i int) {
	if m.addplaced_level != nil {
		*m.addplaced_level += i
	} else {
		m.addplaced_level = &i
	}
}

// AddedPlacedLevel returns the value that was added to the "placed_level" field in this mutation.
func (m *AssessmentEventMutation) AddedPlacedLevel() (r int, exists bool) {
	v := m.addplaced_level
	if v == nil {
		return
	}
	return *v, true
}

// ResetPlacedLevel resets all changes to the "placed_level" field.
func (m *AssessmentEventMutation) ResetPlacedLevel() {
	m.placed_level = nil
	m.addplaced_level = nil
}

// SetRecommendedModule sets the "recommended_module" field.
func (m *AssessmentEventMutation) SetRecommendedModule(i int) {
	m.recommended_module = &i
	m.addrecommended_module = nil
}

// RecommendedModule returns the value of the "recommended_module" field in the mutation.
func (m *AssessmentEventMutation) RecommendedModule() (r int, exists bool) {
	v := m.recommended_module
	if v == nil {
		return
	}
	return *v, true
}

// OldRecommendedModule returns the old "recommended_module" field's value of the AssessmentEvent entity.
// If the AssessmentEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentEventMutation) OldRecommendedModule(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecommendedModule is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecommendedModule requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecommendedModule: %w", err)
	}
	return oldValue.RecommendedModule, nil
}

// AddRecommendedModule adds i to the "recommended_module" field.
func (m *AssessmentEventMutation) AddRecommendedModule(i int) {
	if m.addrecommended_module != nil {
		*m.addrecommended_module += i
	} else {
		m.addrecommended_module = &i
	}
}

// AddedRecommendedModule returns the value that was added to the "recommended_module" field in this mutation.
func (m *AssessmentEventMutation) AddedRecommendedModule() (r int, exists bool) {
	v := m.addrecommended_module
	if v == nil {
		return
	}
	return *v, true
}

// ResetRecommendedModule resets all changes to the "recommended_module" field.
func (m *AssessmentEventMutation) ResetRecommendedModule() {
	m.recommended_module = nil
	m.addrecommended_module = nil
}

// Where appends a list predicates to the AssessmentEventMutation builder.
func (m *AssessmentEventMutation) Where(ps ...predicate.AssessmentEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AssessmentEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AssessmentEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AssessmentEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AssessmentEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AssessmentEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AssessmentEvent).
func (m *AssessmentEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AssessmentEventMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.sequence != nil {
		fields = append(fields, assessmentevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, assessmentevent.FieldTimestamp)
	}
	if m.session_id != nil {
		fields = append(fields, assessmentevent.FieldSessionID)
	}
	if m.action != nil {
		fields = append(fields, assessmentevent.FieldAction)
	}
	if m.placed_title != nil {
		fields = append(fields, assessmentevent.FieldPlacedTitle)
	}
	if m.placed_level != nil {
		fields = append(fields, assessmentevent.FieldPlacedLevel)
	}
	if m.recommended_module != nil {
		fields = append(fields, assessmentevent.FieldRecommendedModule)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AssessmentEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case assessmentevent.FieldSequence:
		return m.Sequence()
	case assessmentevent.FieldTimestamp:
		return m.Timestamp()
	case assessmentevent.FieldSessionID:
		return m.SessionID()
	case assessmentevent.FieldAction:
		return m.Action()
	case assessmentevent.FieldPlacedTitle:
		return m.PlacedTitle()
	case assessmentevent.FieldPlacedLevel:
		return m.PlacedLevel()
	case assessmentevent.FieldRecommendedModule:
		return m.RecommendedModule()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AssessmentEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case assessmentevent.FieldSequence:
		return m.OldSequence(ctx)
	case assessmentevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case assessmentevent.FieldSessionID:
		return m.OldSessionID(ctx)
	case assessmentevent.FieldAction:
		return m.OldAction(ctx)
	case assessmentevent.FieldPlacedTitle:
		return m.OldPlacedTitle(ctx)
	case assessmentevent.FieldPlacedLevel:
		return m.OldPlacedLevel(ctx)
	case assessmentevent.FieldRecommendedModule:
		return m.OldRecommendedModule(ctx)
	}
	return nil, fmt.Errorf("unknown AssessmentEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AssessmentEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case assessmentevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case assessmentevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case assessmentevent.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case assessmentevent.FieldAction:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAction(v)
		return nil
	case assessmentevent.FieldPlacedTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlacedTitle(v)
		return nil
	case assessmentevent.FieldPlacedLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlacedLevel(v)
		return nil
	case assessmentevent.FieldRecommendedModule:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecommendedModule(v)
		return nil
	}
	return fmt.Errorf("unknown AssessmentEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AssessmentEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, assessmentevent.FieldSequence)
	}
	if m.addplaced_level != nil {
		fields = append(fields, assessmentevent.FieldPlacedLevel)
	}
	if m.addrecommended_module != nil {
		fields = append(fields, assessmentevent.FieldRecommendedModule)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AssessmentEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case assessmentevent.FieldSequence:
		return m.AddedSequence()
	case assessmentevent.FieldPlacedLevel:
		return m.AddedPlacedLevel()
	case assessmentevent.FieldRecommendedModule:
		return m.AddedRecommendedModule()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AssessmentEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case assessmentevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case assessmentevent.FieldPlacedLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPlacedLevel(v)
		return nil
	case assessmentevent.FieldRecommendedModule:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRecommendedModule(v)
		return nil
	}
	return fmt.Errorf("unknown AssessmentEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AssessmentEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(assessmentevent.FieldPlacedTitle) {
		fields = append(fields, assessmentevent.FieldPlacedTitle)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AssessmentEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AssessmentEventMutation) ClearField(name string) error {
	switch name {
	case assessmentevent.FieldPlacedTitle:
		m.ClearPlacedTitle()
		return nil
	}
	return fmt.Errorf("unknown AssessmentEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AssessmentEventMutation) ResetField(name string) error {
	switch name {
	case assessmentevent.FieldSequence:
		m.ResetSequence()
		return nil
	case assessmentevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case assessmentevent.FieldSessionID:
		m.ResetSessionID()
		return nil
	case assessmentevent.FieldAction:
		m.ResetAction()
		return nil
	case assessmentevent.FieldPlacedTitle:
		m.ResetPlacedTitle()
		return nil
	case assessmentevent.FieldPlacedLevel:
		m.ResetPlacedLevel()
		return nil
	case assessmentevent.FieldRecommendedModule:
		m.ResetRecommendedModule()
		return nil
	}
	return fmt.Errorf("unknown AssessmentEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AssessmentEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AssessmentEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AssessmentEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AssessmentEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AssessmentEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AssessmentEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AssessmentEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AssessmentEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AssessmentEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AssessmentEvent edge %s", name)
}

// TaskEventMutation represents an operation that mutates the TaskEvent nodes in the graph.
type TaskEventMutation struct {
	config
	op               Op
	typ              string
	id               *int
	sequence         *int64
	addsequence      *int64
	timestamp        *time.Time
	session_id       *string
	task_id          *int
	addtask_id       *int
	task_title       *string
	module           *string
	kind             *string
	xp_awarded       *int
	addxp_awarded    *int
	badge            *string
	quiz_all_correct *bool
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*TaskEvent, error)
	predicates       []predicate.TaskEvent
}

var _ ent.Mutation = (*TaskEventMutation)(nil)

// taskeventOption allows management of the mutation configuration using functional options.
type taskeventOption func(*TaskEventMutation)

// newTaskEventMutation creates new mutation for the TaskEvent entity.
func newTaskEventMutation(c config, op Op, opts ...taskeventOption) *TaskEventMutation {
	m := &TaskEventMutation{
		config:        c,
		op:            op,
		typ:           TypeTaskEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTaskEventID sets the ID field of the mutation.
func withTaskEventID(id int) taskeventOption {
	return func(m *TaskEventMutation) {
		var (
			err   error
			once  sync.Once
			value *TaskEvent
		)
		m.oldValue = func(ctx context.Context) (*TaskEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TaskEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTaskEvent sets the old TaskEvent of the mutation.
func withTaskEvent(node *TaskEvent) taskeventOption {
	return func(m *TaskEventMutation) {
		m.oldValue = func(context.Context) (*TaskEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TaskEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TaskEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TaskEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TaskEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TaskEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *TaskEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *TaskEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the TaskEvent entity.
// If the TaskEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *TaskEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *TaskEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *TaskEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *TaskEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *TaskEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the TaskEvent entity.
// If the TaskEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *TaskEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetSessionID sets the "session_id" field.
func (m *TaskEventMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *TaskEventMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the TaskEvent entity.
// If the TaskEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskEventMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *TaskEventMutation) ResetSessionID() {
	m.session_id = nil
}

// SetTaskID sets the "task_id" field.
func (m *TaskEventMutation) SetTaskID(i int) {
	m.task_id = &i
	m.addtask_id = nil
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *TaskEventMutation) TaskID() (r int, exists bool) {
	v := m.task_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the TaskEvent entity.
// If the TaskEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskEventMutation) OldTaskID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// AddTaskID adds i to the "task_id" field.
func (m *TaskEventMutation) AddTaskID(i int) {
	if m.addtask_id != nil {
		*m.addtask_id += i
	} else {
		m.addtask_id = &i
	}
}

// AddedTaskID returns the value that was added to the "task_id" field in this mutation.
func (m *TaskEventMutation) AddedTaskID() (r int, exists bool) {
	v := m.addtask_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *TaskEventMutation) ResetTaskID() {
	m.task_id = nil
	m.addtask_id = nil
}

// SetTaskTitle sets the "task_title" field.
func (m *TaskEventMutation) SetTaskTitle(s string) {
	m.task_title = &s
}

// TaskTitle returns the value of the "task_title" field in the mutation.
func (m *TaskEventMutation) TaskTitle() (r string, exists bool) {
	v := m.task_title
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskTitle returns the old "task_title" field's value of the TaskEvent entity.
// If the TaskEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskEventMutation) OldTaskTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskTitle: %w", err)
	}
	return oldValue.TaskTitle, nil
}

// ResetTaskTitle resets all changes to the "task_title" field.
func (m *TaskEventMutation) ResetTaskTitle() {
	m.task_title = nil
}

// SetModule sets the "module" field.
func (m *TaskEventMutation) SetModule(s string) {
	m.module = &s
}

// Module returns the value of the "module" field in the mutation.
func (m *TaskEventMutation) Module() (r string, exists bool) {
	v := m.module
	if v == nil {
		return
	}
	return *v, true
}

// OldModule returns the old "module" field's value of the TaskEvent entity.
// If the TaskEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskEventMutation) OldModule(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModule is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModule requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModule: %w", err)
	}
	return oldValue.Module, nil
}

// ResetModule resets all changes to the "module" field.
func (m *TaskEventMutation) ResetModule() {
	m.module = nil
}

// SetKind sets the "kind" field.
func (m *TaskEventMutation) SetKind(s string) {
	m.kind = &s
}

// Kind returns the value of the "kind" field in the mutation.
func (m *TaskEventMutation) Kind() (r string, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the TaskEvent entity.
// If the TaskEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskEventMutation) OldKind(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *TaskEventMutation) ResetKind() {
	m.kind = nil
}

// SetXpAwarded sets the "xp_awarded" field.
func (m *TaskEventMutation) SetXpAwarded(i int) {
	m.xp_awarded = &i
	m.addxp_awarded = nil
}

// XpAwarded returns the value of the "xp_awarded" field in the mutation.
func (m *TaskEventMutation) XpAwarded() (r int, exists bool) {
	v := m.xp_awarded
	if v == nil {
		return
	}
	return *v, true
}

// OldXpAwarded returns the old "xp_awarded" field's value of the TaskEvent entity.
// If the TaskEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskEventMutation) OldXpAwarded(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldXpAwarded is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldXpAwarded requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldXpAwarded: %w", err)
	}
	return oldValue.XpAwarded, nil
}

// AddXpAwarded adds i to the "xp_awarded" field.
func (m *TaskEventMutation) AddXpAwarded(i int) {
	if m.addxp_awarded != nil {
		*m.addxp_awarded += i
	} else {
		m.addxp_awarded = &i
	}
}

// AddedXpAwarded returns the value that was added to the "xp_awarded" field in this mutation.
func (m *TaskEventMutation) AddedXpAwarded() (r int, exists bool) {
	v := m.addxp_awarded
	if v == nil {
		return
	}
	return *v, true
}

// ResetXpAwarded resets all changes to the "xp_awarded" field.
func (m *TaskEventMutation) ResetXpAwarded() {
	m.xp_awarded = nil
	m.addxp_awarded = nil
}

// SetBadge sets the "badge" field.
func (m *TaskEventMutation) SetBadge(s string) {
	m.badge = &s
}

// Badge returns the value of the "badge" field in the mutation.
func (m *TaskEventMutation) Badge() (r string, exists bool) {
	v := m.badge
	if v == nil {
		return
	}
	return *v, true
}

// OldBadge returns the old "badge" field's value of the TaskEvent entity.
// If the TaskEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskEventMutation) OldBadge(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBadge is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBadge requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBadge: %w", err)
	}
	return oldValue.Badge, nil
}

// ClearBadge clears the value of the "badge" field.
func (m *TaskEventMutation) ClearBadge() {
	m.badge = nil
	m.clearedFields[taskevent.FieldBadge] = struct{}{}
}

// BadgeCleared returns if the "badge" field was cleared in this mutation.
func (m *TaskEventMutation) BadgeCleared() bool {
	_, ok := m.clearedFields[taskevent.FieldBadge]
	return ok
}

// ResetBadge resets all changes to the "badge" field.
func (m *TaskEventMutation) ResetBadge() {
	m.badge = nil
	delete(m.clearedFields, taskevent.FieldBadge)
}

// SetQuizAllCorrect sets the "quiz_all_correct" field.
func (m *TaskEventMutation) SetQuizAllCorrect(b bool) {
	m.quiz_all_correct = &b
}

// QuizAllCorrect returns the value of the "quiz_all_correct" field in the mutation.
func (m *TaskEventMutation) QuizAllCorrect() (r bool, exists bool) {
	v := m.quiz_all_correct
	if v == nil {
		return
	}
	return *v, true
}

// OldQuizAllCorrect returns the old "quiz_all_correct" field's value of the TaskEvent entity.
// If the TaskEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskEventMutation) OldQuizAllCorrect(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuizAllCorrect is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuizAllCorrect requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuizAllCorrect: %w", err)
	}
	return oldValue.QuizAllCorrect, nil
}

// ResetQuizAllCorrect resets all changes to the "quiz_all_correct" field.
func (m *TaskEventMutation) ResetQuizAllCorrect() {
	m.quiz_all_correct = nil
}

// Where appends a list predicates to the TaskEventMutation builder.
func (m *TaskEventMutation) Where(ps ...predicate.TaskEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TaskEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TaskEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TaskEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TaskEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TaskEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TaskEvent).
func (m *TaskEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TaskEventMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.sequence != nil {
		fields = append(fields, taskevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, taskevent.FieldTimestamp)
	}
	if m.session_id != nil {
		fields = append(fields, taskevent.FieldSessionID)
	}
	if m.task_id != nil {
		fields = append(fields, taskevent.FieldTaskID)
	}
	if m.task_title != nil {
		fields = append(fields, taskevent.FieldTaskTitle)
	}
	if m.module != nil {
		fields = append(fields, taskevent.FieldModule)
	}
	if m.kind != nil {
		fields = append(fields, taskevent.FieldKind)
	}
	if m.xp_awarded != nil {
		fields = append(fields, taskevent.FieldXpAwarded)
	}
	if m.badge != nil {
		fields = append(fields, taskevent.FieldBadge)
	}
	if m.quiz_all_correct != nil {
		fields = append(fields, taskevent.FieldQuizAllCorrect)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TaskEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case taskevent.FieldSequence:
		return m.Sequence()
	case taskevent.FieldTimestamp:
		return m.Timestamp()
	case taskevent.FieldSessionID:
		return m.SessionID()
	case taskevent.FieldTaskID:
		return m.TaskID()
	case taskevent.FieldTaskTitle:
		return m.TaskTitle()
	case taskevent.FieldModule:
		return m.Module()
	case taskevent.FieldKind:
		return m.Kind()
	case taskevent.FieldXpAwarded:
		return m.XpAwarded()
	case taskevent.FieldBadge:
		return m.Badge()
	case taskevent.FieldQuizAllCorrect:
		return m.QuizAllCorrect()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TaskEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case taskevent.FieldSequence:
		return m.OldSequence(ctx)
	case taskevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case taskevent.FieldSessionID:
		return m.OldSessionID(ctx)
	case taskevent.FieldTaskID:
		return m.OldTaskID(ctx)
	case taskevent.FieldTaskTitle:
		return m.OldTaskTitle(ctx)
	case taskevent.FieldModule:
		return m.OldModule(ctx)
	case taskevent.FieldKind:
		return m.OldKind(ctx)
	case taskevent.FieldXpAwarded:
		return m.OldXpAwarded(ctx)
	case taskevent.FieldBadge:
		return m.OldBadge(ctx)
	case taskevent.FieldQuizAllCorrect:
		return m.OldQuizAllCorrect(ctx)
	}
	return nil, fmt.Errorf("unknown TaskEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case taskevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case taskevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case taskevent.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case taskevent.FieldTaskID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case taskevent.FieldTaskTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskTitle(v)
		return nil
	case taskevent.FieldModule:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModule(v)
		return nil
	case taskevent.FieldKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case taskevent.FieldXpAwarded:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetXpAwarded(v)
		return nil
	case taskevent.FieldBadge:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBadge(v)
		return nil
	case taskevent.FieldQuizAllCorrect:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuizAllCorrect(v)
		return nil
	}
	return fmt.Errorf("unknown TaskEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TaskEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, taskevent.FieldSequence)
	}
	if m.addtask_id != nil {
		fields = append(fields, taskevent.FieldTaskID)
	}
	if m.addxp_awarded != nil {
		fields = append(fields, taskevent.FieldXpAwarded)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TaskEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case taskevent.FieldSequence:
		return m.AddedSequence()
	case taskevent.FieldTaskID:
		return m.AddedTaskID()
	case taskevent.FieldXpAwarded:
		return m.AddedXpAwarded()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case taskevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case taskevent.FieldTaskID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTaskID(v)
		return nil
	case taskevent.FieldXpAwarded:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddXpAwarded(v)
		return nil
	}
	return fmt.Errorf("unknown TaskEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TaskEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(taskevent.FieldBadge) {
		fields = append(fields, taskevent.FieldBadge)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TaskEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TaskEventMutation) ClearField(name string) error {
	switch name {
	case taskevent.FieldBadge:
		m.ClearBadge()
		return nil
	}
	return fmt.Errorf("unknown TaskEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TaskEventMutation) ResetField(name string) error {
	switch name {
	case taskevent.FieldSequence:
		m.ResetSequence()
		return nil
	case taskevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case taskevent.FieldSessionID:
		m.ResetSessionID()
		return nil
	case taskevent.FieldTaskID:
		m.ResetTaskID()
		return nil
	case taskevent.FieldTaskTitle:
		m.ResetTaskTitle()
		return nil
	case taskevent.FieldModule:
		m.ResetModule()
		return nil
	case taskevent.FieldKind:
		m.ResetKind()
		return nil
	case taskevent.FieldXpAwarded:
		m.ResetXpAwarded()
		return nil
	case taskevent.FieldBadge:
		m.ResetBadge()
		return nil
	case taskevent.FieldQuizAllCorrect:
		m.ResetQuizAllCorrect()
		return nil
	}
	return fmt.Errorf("unknown TaskEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TaskEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TaskEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TaskEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TaskEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TaskEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TaskEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TaskEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown TaskEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TaskEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown TaskEvent edge %s", name)
}
