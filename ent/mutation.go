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
	"github.com/sproutfi/sprout/ent/challengeevent"
	"github.com/sproutfi/sprout/ent/predicate"
	"github.com/sproutfi/sprout/ent/quizanswerevent"
	"github.com/sproutfi/sprout/ent/sessionevent"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeChallengeEvent  = "ChallengeEvent"
	TypeQuizAnswerEvent = "QuizAnswerEvent"
	TypeSessionEvent    = "SessionEvent"
)

// ChallengeEventMutation represents an operation that mutates the ChallengeEvent nodes in the graph.
type ChallengeEventMutation struct {
	config
	op               Op
	typ              string
	id               *int
	sequence         *int64
	addsequence      *int64
	timestamp        *time.Time
	session_id       *string
	challenge_id     *string
	challenge_title  *string
	challenge_type   *string
	xp_awarded       *int
	addxp_awarded    *int
	coins_awarded    *int
	addcoins_awarded *int
	repeat           *bool
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*ChallengeEvent, error)
	predicates       []predicate.ChallengeEvent
}

var _ ent.Mutation = (*ChallengeEventMutation)(nil)

// challengeeventOption allows management of the mutation configuration using functional options.
type challengeeventOption func(*ChallengeEventMutation)

// newChallengeEventMutation creates new mutation for the ChallengeEvent entity.
func newChallengeEventMutation(c config, op Op, opts ...challengeeventOption) *ChallengeEventMutation {
	m := &ChallengeEventMutation{
		config:        c,
		op:            op,
		typ:           TypeChallengeEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withChallengeEventID sets the ID field of the mutation.
func withChallengeEventID(id int) challengeeventOption {
	return func(m *ChallengeEventMutation) {
		var (
			err   error
			once  sync.Once
			value *ChallengeEvent
		)
		m.oldValue = func(ctx context.Context) (*ChallengeEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ChallengeEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withChallengeEvent sets the old ChallengeEvent of the mutation.
func withChallengeEvent(node *ChallengeEvent) challengeeventOption {
	return func(m *ChallengeEventMutation) {
		m.oldValue = func(context.Context) (*ChallengeEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ChallengeEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ChallengeEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ChallengeEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ChallengeEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ChallengeEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *ChallengeEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *ChallengeEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the ChallengeEvent entity.
// If the ChallengeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChallengeEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
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
func (m *ChallengeEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *ChallengeEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *ChallengeEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *ChallengeEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *ChallengeEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the ChallengeEvent entity.
// If the ChallengeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChallengeEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
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
func (m *ChallengeEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetSessionID sets the "session_id" field.
func (m *ChallengeEventMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *ChallengeEventMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the ChallengeEvent entity.
// If the ChallengeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChallengeEventMutation) OldSessionID(ctx context.Context) (v string, err error) {
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
func (m *ChallengeEventMutation) ResetSessionID() {
	m.session_id = nil
}

// SetChallengeID sets the "challenge_id" field.
func (m *ChallengeEventMutation) SetChallengeID(s string) {
	m.challenge_id = &s
}

// ChallengeID returns the value of the "challenge_id" field in the mutation.
func (m *ChallengeEventMutation) ChallengeID() (r string, exists bool) {
	v := m.challenge_id
	if v == nil {
		return
	}
	return *v, true
}

// OldChallengeID returns the old "challenge_id" field's value of the ChallengeEvent entity.
// If the ChallengeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChallengeEventMutation) OldChallengeID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChallengeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChallengeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChallengeID: %w", err)
	}
	return oldValue.ChallengeID, nil
}

// ResetChallengeID resets all changes to the "challenge_id" field.
func (m *ChallengeEventMutation) ResetChallengeID() {
	m.challenge_id = nil
}

// SetChallengeTitle sets the "challenge_title" field.
func (m *ChallengeEventMutation) SetChallengeTitle(s string) {
	m.challenge_title = &s
}

// ChallengeTitle returns the value of the "challenge_title" field in the mutation.
func (m *ChallengeEventMutation) ChallengeTitle() (r string, exists bool) {
	v := m.challenge_title
	if v == nil {
		return
	}
	return *v, true
}

// OldChallengeTitle returns the old "challenge_title" field's value of the ChallengeEvent entity.
// If the ChallengeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChallengeEventMutation) OldChallengeTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChallengeTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChallengeTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChallengeTitle: %w", err)
	}
	return oldValue.ChallengeTitle, nil
}

// ResetChallengeTitle resets all changes to the "challenge_title" field.
func (m *ChallengeEventMutation) ResetChallengeTitle() {
	m.challenge_title = nil
}

// SetChallengeType sets the "challenge_type" field.
func (m *ChallengeEventMutation) SetChallengeType(s string) {
	m.challenge_type = &s
}

// ChallengeType returns the value of the "challenge_type" field in the mutation.
func (m *ChallengeEventMutation) ChallengeType() (r string, exists bool) {
	v := m.challenge_type
	if v == nil {
		return
	}
	return *v, true
}

// OldChallengeType returns the old "challenge_type" field's value of the ChallengeEvent entity.
// If the ChallengeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChallengeEventMutation) OldChallengeType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChallengeType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChallengeType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChallengeType: %w", err)
	}
	return oldValue.ChallengeType, nil
}

// ResetChallengeType resets all changes to the "challenge_type" field.
func (m *ChallengeEventMutation) ResetChallengeType() {
	m.challenge_type = nil
}

// SetXpAwarded sets the "xp_awarded" field.
func (m *ChallengeEventMutation) SetXpAwarded(i int) {
	m.xp_awarded = &i
	m.addxp_awarded = nil
}

// XpAwarded returns the value of the "xp_awarded" field in the mutation.
func (m *ChallengeEventMutation) XpAwarded() (r int, exists bool) {
	v := m.xp_awarded
	if v == nil {
		return
	}
	return *v, true
}

// OldXpAwarded returns the old "xp_awarded" field's value of the ChallengeEvent entity.
// If the ChallengeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChallengeEventMutation) OldXpAwarded(ctx context.Context) (v int, err error) {
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
func (m *ChallengeEventMutation) AddXpAwarded(i int) {
	if m.addxp_awarded != nil {
		*m.addxp_awarded += i
	} else {
		m.addxp_awarded = &i
	}
}

// AddedXpAwarded returns the value that was added to the "xp_awarded" field in this mutation.
func (m *ChallengeEventMutation) AddedXpAwarded() (r int, exists bool) {
	v := m.addxp_awarded
	if v == nil {
		return
	}
	return *v, true
}

// ResetXpAwarded resets all changes to the "xp_awarded" field.
func (m *ChallengeEventMutation) ResetXpAwarded() {
	m.xp_awarded = nil
	m.addxp_awarded = nil
}

// SetCoinsAwarded sets the "coins_awarded" field.
func (m *ChallengeEventMutation) SetCoinsAwarded(i int) {
	m.coins_awarded = &i
	m.addcoins_awarded = nil
}

// CoinsAwarded returns the value of the "coins_awarded" field in the mutation.
func (m *ChallengeEventMutation) CoinsAwarded() (r int, exists bool) {
	v := m.coins_awarded
	if v == nil {
		return
	}
	return *v, true
}

// OldCoinsAwarded returns the old "coins_awarded" field's value of the ChallengeEvent entity.
// If the ChallengeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChallengeEventMutation) OldCoinsAwarded(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCoinsAwarded is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCoinsAwarded requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCoinsAwarded: %w", err)
	}
	return oldValue.CoinsAwarded, nil
}

// AddCoinsAwarded adds i to the "coins_awarded" field.
func (m *ChallengeEventMutation) AddCoinsAwarded(i int) {
	if m.addcoins_awarded != nil {
		*m.addcoins_awarded += i
	} else {
		m.addcoins_awarded = &i
	}
}

// AddedCoinsAwarded returns the value that was added to the "coins_awarded" field in this mutation.
func (m *ChallengeEventMutation) AddedCoinsAwarded() (r int, exists bool) {
	v := m.addcoins_awarded
	if v == nil {
		return
	}
	return *v, true
}

// ResetCoinsAwarded resets all changes to the "coins_awarded" field.
func (m *ChallengeEventMutation) ResetCoinsAwarded() {
	m.coins_awarded = nil
	m.addcoins_awarded = nil
}

// SetRepeat sets the "repeat" field.
func (m *ChallengeEventMutation) SetRepeat(b bool) {
	m.repeat = &b
}

// Repeat returns the value of the "repeat" field in the mutation.
func (m *ChallengeEventMutation) Repeat() (r bool, exists bool) {
	v := m.repeat
	if v == nil {
		return
	}
	return *v, true
}

// OldRepeat returns the old "repeat" field's value of the ChallengeEvent entity.
// If the ChallengeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChallengeEventMutation) OldRepeat(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRepeat is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRepeat requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRepeat: %w", err)
	}
	return oldValue.Repeat, nil
}

// ResetRepeat resets all changes to the "repeat" field.
func (m *ChallengeEventMutation) ResetRepeat() {
	m.repeat = nil
}

// Where appends a list predicates to the ChallengeEventMutation builder.
func (m *ChallengeEventMutation) Where(ps ...predicate.ChallengeEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ChallengeEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ChallengeEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ChallengeEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ChallengeEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ChallengeEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ChallengeEvent).
func (m *ChallengeEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ChallengeEventMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.sequence != nil {
		fields = append(fields, challengeevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, challengeevent.FieldTimestamp)
	}
	if m.session_id != nil {
		fields = append(fields, challengeevent.FieldSessionID)
	}
	if m.challenge_id != nil {
		fields = append(fields, challengeevent.FieldChallengeID)
	}
	if m.challenge_title != nil {
		fields = append(fields, challengeevent.FieldChallengeTitle)
	}
	if m.challenge_type != nil {
		fields = append(fields, challengeevent.FieldChallengeType)
	}
	if m.xp_awarded != nil {
		fields = append(fields, challengeevent.FieldXpAwarded)
	}
	if m.coins_awarded != nil {
		fields = append(fields, challengeevent.FieldCoinsAwarded)
	}
	if m.repeat != nil {
		fields = append(fields, challengeevent.FieldRepeat)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ChallengeEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case challengeevent.FieldSequence:
		return m.Sequence()
	case challengeevent.FieldTimestamp:
		return m.Timestamp()
	case challengeevent.FieldSessionID:
		return m.SessionID()
	case challengeevent.FieldChallengeID:
		return m.ChallengeID()
	case challengeevent.FieldChallengeTitle:
		return m.ChallengeTitle()
	case challengeevent.FieldChallengeType:
		return m.ChallengeType()
	case challengeevent.FieldXpAwarded:
		return m.XpAwarded()
	case challengeevent.FieldCoinsAwarded:
		return m.CoinsAwarded()
	case challengeevent.FieldRepeat:
		return m.Repeat()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ChallengeEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case challengeevent.FieldSequence:
		return m.OldSequence(ctx)
	case challengeevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case challengeevent.FieldSessionID:
		return m.OldSessionID(ctx)
	case challengeevent.FieldChallengeID:
		return m.OldChallengeID(ctx)
	case challengeevent.FieldChallengeTitle:
		return m.OldChallengeTitle(ctx)
	case challengeevent.FieldChallengeType:
		return m.OldChallengeType(ctx)
	case challengeevent.FieldXpAwarded:
		return m.OldXpAwarded(ctx)
	case challengeevent.FieldCoinsAwarded:
		return m.OldCoinsAwarded(ctx)
	case challengeevent.FieldRepeat:
		return m.OldRepeat(ctx)
	}
	return nil, fmt.Errorf("unknown ChallengeEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChallengeEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case challengeevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case challengeevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case challengeevent.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case challengeevent.FieldChallengeID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChallengeID(v)
		return nil
	case challengeevent.FieldChallengeTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChallengeTitle(v)
		return nil
	case challengeevent.FieldChallengeType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChallengeType(v)
		return nil
	case challengeevent.FieldXpAwarded:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetXpAwarded(v)
		return nil
	case challengeevent.FieldCoinsAwarded:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCoinsAwarded(v)
		return nil
	case challengeevent.FieldRepeat:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRepeat(v)
		return nil
	}
	return fmt.Errorf("unknown ChallengeEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ChallengeEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, challengeevent.FieldSequence)
	}
	if m.addxp_awarded != nil {
		fields = append(fields, challengeevent.FieldXpAwarded)
	}
	if m.addcoins_awarded != nil {
		fields = append(fields, challengeevent.FieldCoinsAwarded)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ChallengeEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case challengeevent.FieldSequence:
		return m.AddedSequence()
	case challengeevent.FieldXpAwarded:
		return m.AddedXpAwarded()
	case challengeevent.FieldCoinsAwarded:
		return m.AddedCoinsAwarded()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChallengeEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case challengeevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case challengeevent.FieldXpAwarded:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddXpAwarded(v)
		return nil
	case challengeevent.FieldCoinsAwarded:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCoinsAwarded(v)
		return nil
	}
	return fmt.Errorf("unknown ChallengeEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ChallengeEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ChallengeEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ChallengeEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ChallengeEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ChallengeEventMutation) ResetField(name string) error {
	switch name {
	case challengeevent.FieldSequence:
		m.ResetSequence()
		return nil
	case challengeevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case challengeevent.FieldSessionID:
		m.ResetSessionID()
		return nil
	case challengeevent.FieldChallengeID:
		m.ResetChallengeID()
		return nil
	case challengeevent.FieldChallengeTitle:
		m.ResetChallengeTitle()
		return nil
	case challengeevent.FieldChallengeType:
		m.ResetChallengeType()
		return nil
	case challengeevent.FieldXpAwarded:
		m.ResetXpAwarded()
		return nil
	case challengeevent.FieldCoinsAwarded:
		m.ResetCoinsAwarded()
		return nil
	case challengeevent.FieldRepeat:
		m.ResetRepeat()
		return nil
	}
	return fmt.Errorf("unknown ChallengeEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ChallengeEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ChallengeEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ChallengeEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ChallengeEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ChallengeEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ChallengeEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ChallengeEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ChallengeEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ChallengeEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ChallengeEvent edge %s", name)
}

// QuizAnswerEventMutation represents an operation that mutates the QuizAnswerEvent nodes in the graph.
type QuizAnswerEventMutation struct {
	config
	op                Op
	typ               string
	id                *int
	sequence          *int64
	addsequence       *int64
	timestamp         *time.Time
	session_id        *string
	question_index    *int
	addquestion_index *int
	option_index      *int
	addoption_index   *int
	overwrite         *bool
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*QuizAnswerEvent, error)
	predicates        []predicate.QuizAnswerEvent
}

var _ ent.Mutation = (*QuizAnswerEventMutation)(nil)

// quizanswereventOption allows management of the mutation configuration using functional options.
type quizanswereventOption func(*QuizAnswerEventMutation)

// newQuizAnswerEventMutation creates new mutation for the QuizAnswerEvent entity.
func newQuizAnswerEventMutation(c config, op Op, opts ...quizanswereventOption) *QuizAnswerEventMutation {
	m := &QuizAnswerEventMutation{
		config:        c,
		op:            op,
		typ:           TypeQuizAnswerEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withQuizAnswerEventID sets the ID field of the mutation.
func withQuizAnswerEventID(id int) quizanswereventOption {
	return func(m *QuizAnswerEventMutation) {
		var (
			err   error
			once  sync.Once
			value *QuizAnswerEvent
		)
		m.oldValue = func(ctx context.Context) (*QuizAnswerEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().QuizAnswerEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withQuizAnswerEvent sets the old QuizAnswerEvent of the mutation.
func withQuizAnswerEvent(node *QuizAnswerEvent) quizanswereventOption {
	return func(m *QuizAnswerEventMutation) {
		m.oldValue = func(context.Context) (*QuizAnswerEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m QuizAnswerEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m QuizAnswerEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *QuizAnswerEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *QuizAnswerEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().QuizAnswerEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *QuizAnswerEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *QuizAnswerEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the QuizAnswerEvent entity.
// If the QuizAnswerEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizAnswerEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
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
func (m *QuizAnswerEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *QuizAnswerEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *QuizAnswerEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *QuizAnswerEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *QuizAnswerEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the QuizAnswerEvent entity.
// If the QuizAnswerEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizAnswerEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
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
func (m *QuizAnswerEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetSessionID sets the "session_id" field.
func (m *QuizAnswerEventMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *QuizAnswerEventMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the QuizAnswerEvent entity.
// If the QuizAnswerEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizAnswerEventMutation) OldSessionID(ctx context.Context) (v string, err error) {
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
func (m *QuizAnswerEventMutation) ResetSessionID() {
	m.session_id = nil
}

// SetQuestionIndex sets the "question_index" field.
func (m *QuizAnswerEventMutation) SetQuestionIndex(i int) {
	m.question_index = &i
	m.addquestion_index = nil
}

// QuestionIndex returns the value of the "question_index" field in the mutation.
func (m *QuizAnswerEventMutation) QuestionIndex() (r int, exists bool) {
	v := m.question_index
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionIndex returns the old "question_index" field's value of the QuizAnswerEvent entity.
// If the QuizAnswerEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizAnswerEventMutation) OldQuestionIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionIndex: %w", err)
	}
	return oldValue.QuestionIndex, nil
}

// AddQuestionIndex adds i to the "question_index" field.
func (m *QuizAnswerEventMutation) AddQuestionIndex(i int) {
	if m.addquestion_index != nil {
		*m.addquestion_index += i
	} else {
		m.addquestion_index = &i
	}
}

// AddedQuestionIndex returns the value that was added to the "question_index" field in this mutation.
func (m *QuizAnswerEventMutation) AddedQuestionIndex() (r int, exists bool) {
	v := m.addquestion_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetQuestionIndex resets all changes to the "question_index" field.
func (m *QuizAnswerEventMutation) ResetQuestionIndex() {
	m.question_index = nil
	m.addquestion_index = nil
}

// SetOptionIndex sets the "option_index" field.
func (m *QuizAnswerEventMutation) SetOptionIndex(i int) {
	m.option_index = &i
	m.addoption_index = nil
}

// OptionIndex returns the value of the "option_index" field in the mutation.
func (m *QuizAnswerEventMutation) OptionIndex() (r int, exists bool) {
	v := m.option_index
	if v == nil {
		return
	}
	return *v, true
}

// OldOptionIndex returns the old "option_index" field's value of the QuizAnswerEvent entity.
// If the QuizAnswerEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizAnswerEventMutation) OldOptionIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOptionIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOptionIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOptionIndex: %w", err)
	}
	return oldValue.OptionIndex, nil
}

// AddOptionIndex adds i to the "option_index" field.
func (m *QuizAnswerEventMutation) AddOptionIndex(i int) {
	if m.addoption_index != nil {
		*m.addoption_index += i
	} else {
		m.addoption_index = &i
	}
}

// AddedOptionIndex returns the value that was added to the "option_index" field in this mutation.
func (m *QuizAnswerEventMutation) AddedOptionIndex() (r int, exists bool) {
	v := m.addoption_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetOptionIndex resets all changes to the "option_index" field.
func (m *QuizAnswerEventMutation) ResetOptionIndex() {
	m.option_index = nil
	m.addoption_index = nil
}

// SetOverwrite sets the "overwrite" field.
func (m *QuizAnswerEventMutation) SetOverwrite(b bool) {
	m.overwrite = &b
}

// Overwrite returns the value of the "overwrite" field in the mutation.
func (m *QuizAnswerEventMutation) Overwrite() (r bool, exists bool) {
	v := m.overwrite
	if v == nil {
		return
	}
	return *v, true
}

// OldOverwrite returns the old "overwrite" field's value of the QuizAnswerEvent entity.
// If the QuizAnswerEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuizAnswerEventMutation) OldOverwrite(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOverwrite is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOverwrite requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOverwrite: %w", err)
	}
	return oldValue.Overwrite, nil
}

// ResetOverwrite resets all changes to the "overwrite" field.
func (m *QuizAnswerEventMutation) ResetOverwrite() {
	m.overwrite = nil
}

// Where appends a list predicates to the QuizAnswerEventMutation builder.
func (m *QuizAnswerEventMutation) Where(ps ...predicate.QuizAnswerEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the QuizAnswerEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *QuizAnswerEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.QuizAnswerEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *QuizAnswerEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *QuizAnswerEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (QuizAnswerEvent).
func (m *QuizAnswerEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *QuizAnswerEventMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.sequence != nil {
		fields = append(fields, quizanswerevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, quizanswerevent.FieldTimestamp)
	}
	if m.session_id != nil {
		fields = append(fields, quizanswerevent.FieldSessionID)
	}
	if m.question_index != nil {
		fields = append(fields, quizanswerevent.FieldQuestionIndex)
	}
	if m.option_index != nil {
		fields = append(fields, quizanswerevent.FieldOptionIndex)
	}
	if m.overwrite != nil {
		fields = append(fields, quizanswerevent.FieldOverwrite)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *QuizAnswerEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case quizanswerevent.FieldSequence:
		return m.Sequence()
	case quizanswerevent.FieldTimestamp:
		return m.Timestamp()
	case quizanswerevent.FieldSessionID:
		return m.SessionID()
	case quizanswerevent.FieldQuestionIndex:
		return m.QuestionIndex()
	case quizanswerevent.FieldOptionIndex:
		return m.OptionIndex()
	case quizanswerevent.FieldOverwrite:
		return m.Overwrite()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *QuizAnswerEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case quizanswerevent.FieldSequence:
		return m.OldSequence(ctx)
	case quizanswerevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case quizanswerevent.FieldSessionID:
		return m.OldSessionID(ctx)
	case quizanswerevent.FieldQuestionIndex:
		return m.OldQuestionIndex(ctx)
	case quizanswerevent.FieldOptionIndex:
		return m.OldOptionIndex(ctx)
	case quizanswerevent.FieldOverwrite:
		return m.OldOverwrite(ctx)
	}
	return nil, fmt.Errorf("unknown QuizAnswerEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuizAnswerEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case quizanswerevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case quizanswerevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case quizanswerevent.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case quizanswerevent.FieldQuestionIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionIndex(v)
		return nil
	case quizanswerevent.FieldOptionIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOptionIndex(v)
		return nil
	case quizanswerevent.FieldOverwrite:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOverwrite(v)
		return nil
	}
	return fmt.Errorf("unknown QuizAnswerEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *QuizAnswerEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, quizanswerevent.FieldSequence)
	}
	if m.addquestion_index != nil {
		fields = append(fields, quizanswerevent.FieldQuestionIndex)
	}
	if m.addoption_index != nil {
		fields = append(fields, quizanswerevent.FieldOptionIndex)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *QuizAnswerEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case quizanswerevent.FieldSequence:
		return m.AddedSequence()
	case quizanswerevent.FieldQuestionIndex:
		return m.AddedQuestionIndex()
	case quizanswerevent.FieldOptionIndex:
		return m.AddedOptionIndex()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuizAnswerEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case quizanswerevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case quizanswerevent.FieldQuestionIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuestionIndex(v)
		return nil
	case quizanswerevent.FieldOptionIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOptionIndex(v)
		return nil
	}
	return fmt.Errorf("unknown QuizAnswerEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *QuizAnswerEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *QuizAnswerEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *QuizAnswerEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown QuizAnswerEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *QuizAnswerEventMutation) ResetField(name string) error {
	switch name {
	case quizanswerevent.FieldSequence:
		m.ResetSequence()
		return nil
	case quizanswerevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case quizanswerevent.FieldSessionID:
		m.ResetSessionID()
		return nil
	case quizanswerevent.FieldQuestionIndex:
		m.ResetQuestionIndex()
		return nil
	case quizanswerevent.FieldOptionIndex:
		m.ResetOptionIndex()
		return nil
	case quizanswerevent.FieldOverwrite:
		m.ResetOverwrite()
		return nil
	}
	return fmt.Errorf("unknown QuizAnswerEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *QuizAnswerEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *QuizAnswerEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *QuizAnswerEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *QuizAnswerEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *QuizAnswerEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *QuizAnswerEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *QuizAnswerEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown QuizAnswerEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *QuizAnswerEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown QuizAnswerEvent edge %s", name)
}

// SessionEventMutation represents an operation that mutates the SessionEvent nodes in the graph.
type SessionEventMutation struct {
	config
	op                      Op
	typ                     string
	id                      *int
	sequence                *int64
	addsequence             *int64
	timestamp               *time.Time
	session_id              *string
	action                  *string
	persona                 *string
	xp                      *int
	addxp                   *int
	coins                   *int
	addcoins                *int
	challenges_completed    *int
	addchallenges_completed *int
	duration_secs           *int
	addduration_secs        *int
	clearedFields           map[string]struct{}
	done                    bool
	oldValue                func(context.Context) (*SessionEvent, error)
	predicates              []predicate.SessionEvent
}

var _ ent.Mutation = (*SessionEventMutation)(nil)

// sessioneventOption allows management of the mutation configuration using functional options.
type sessioneventOption func(*SessionEventMutation)

// newSessionEventMutation creates new mutation for the SessionEvent entity.
func newSessionEventMutation(c config, op Op, opts ...sessioneventOption) *SessionEventMutation {
	m := &SessionEventMutation{
		config:        c,
		op:            op,
		typ:           TypeSessionEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSessionEventID sets the ID field of the mutation.
func withSessionEventID(id int) sessioneventOption {
	return func(m *SessionEventMutation) {
		var (
			err   error
			once  sync.Once
			value *SessionEvent
		)
		m.oldValue = func(ctx context.Context) (*SessionEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SessionEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSessionEvent sets the old SessionEvent of the mutation.
func withSessionEvent(node *SessionEvent) sessioneventOption {
	return func(m *SessionEventMutation) {
		m.oldValue = func(context.Context) (*SessionEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SessionEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SessionEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SessionEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SessionEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SessionEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *SessionEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *SessionEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
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
func (m *SessionEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *SessionEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *SessionEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *SessionEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *SessionEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
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
func (m *SessionEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetSessionID sets the "session_id" field.
func (m *SessionEventMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *SessionEventMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldSessionID(ctx context.Context) (v string, err error) {
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
func (m *SessionEventMutation) ResetSessionID() {
	m.session_id = nil
}

// SetAction sets the "action" field.
func (m *SessionEventMutation) SetAction(s string) {
	m.action = &s
}

// Action returns the value of the "action" field in the mutation.
func (m *SessionEventMutation) Action() (r string, exists bool) {
	v := m.action
	if v == nil {
		return
	}
	return *v, true
}

// OldAction returns the old "action" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldAction(ctx context.Context) (v string, err error) {
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
func (m *SessionEventMutation) ResetAction() {
	m.action = nil
}

// SetPersona sets the "persona" field.
func (m *SessionEventMutation) SetPersona(s string) {
	m.persona = &s
}

// Persona returns the value of the "persona" field in the mutation.
func (m *SessionEventMutation) Persona() (r string, exists bool) {
	v := m.persona
	if v == nil {
		return
	}
	return *v, true
}

// OldPersona returns the old "persona" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldPersona(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPersona is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPersona requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPersona: %w", err)
	}
	return oldValue.Persona, nil
}

// ResetPersona resets all changes to the "persona" field.
func (m *SessionEventMutation) ResetPersona() {
	m.persona = nil
}

// SetXp sets the "xp" field.
func (m *SessionEventMutation) SetXp(i int) {
	m.xp = &i
	m.addxp = nil
}

// Xp returns the value of the "xp" field in the mutation.
func (m *SessionEventMutation) Xp() (r int, exists bool) {
	v := m.xp
	if v == nil {
		return
	}
	return *v, true
}

// OldXp returns the old "xp" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldXp(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldXp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldXp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldXp: %w", err)
	}
	return oldValue.Xp, nil
}

// AddXp adds i to the "xp" field.
func (m *SessionEventMutation) AddXp(i int) {
	if m.addxp != nil {
		*m.addxp += i
	} else {
		m.addxp = &i
	}
}

// AddedXp returns the value that was added to the "xp" field in this mutation.
func (m *SessionEventMutation) AddedXp() (r int, exists bool) {
	v := m.addxp
	if v == nil {
		return
	}
	return *v, true
}

// ResetXp resets all changes to the "xp" field.
func (m *SessionEventMutation) ResetXp() {
	m.xp = nil
	m.addxp = nil
}

// SetCoins sets the "coins" field.
func (m *SessionEventMutation) SetCoins(i int) {
	m.coins = &i
	m.addcoins = nil
}

// Coins returns the value of the "coins" field in the mutation.
func (m *SessionEventMutation) Coins() (r int, exists bool) {
	v := m.coins
	if v == nil {
		return
	}
	return *v, true
}

// OldCoins returns the old "coins" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldCoins(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCoins is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCoins requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCoins: %w", err)
	}
	return oldValue.Coins, nil
}

// AddCoins adds i to the "coins" field.
func (m *SessionEventMutation) AddCoins(i int) {
	if m.addcoins != nil {
		*m.addcoins += i
	} else {
		m.addcoins = &i
	}
}

// AddedCoins returns the value that was added to the "coins" field in this mutation.
func (m *SessionEventMutation) AddedCoins() (r int, exists bool) {
	v := m.addcoins
	if v == nil {
		return
	}
	return *v, true
}

// ResetCoins resets all changes to the "coins" field.
func (m *SessionEventMutation) ResetCoins() {
	m.coins = nil
	m.addcoins = nil
}

// SetChallengesCompleted sets the "challenges_completed" field.
func (m *SessionEventMutation) SetChallengesCompleted(i int) {
	m.challenges_completed = &i
	m.addchallenges_completed = nil
}

// ChallengesCompleted returns the value of the "challenges_completed" field in the mutation.
func (m *SessionEventMutation) ChallengesCompleted() (r int, exists bool) {
	v := m.challenges_completed
	if v == nil {
		return
	}
	return *v, true
}

// OldChallengesCompleted returns the old "challenges_completed" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldChallengesCompleted(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChallengesCompleted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChallengesCompleted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChallengesCompleted: %w", err)
	}
	return oldValue.ChallengesCompleted, nil
}

// AddChallengesCompleted adds i to the "challenges_completed" field.
func (m *SessionEventMutation) AddChallengesCompleted(i int) {
	if m.addchallenges_completed != nil {
		*m.addchallenges_completed += i
	} else {
		m.addchallenges_completed = &i
	}
}

// AddedChallengesCompleted returns the value that was added to the "challenges_completed" field in this mutation.
func (m *SessionEventMutation) AddedChallengesCompleted() (r int, exists bool) {
	v := m.addchallenges_completed
	if v == nil {
		return
	}
	return *v, true
}

// ResetChallengesCompleted resets all changes to the "challenges_completed" field.
func (m *SessionEventMutation) ResetChallengesCompleted() {
	m.challenges_completed = nil
	m.addchallenges_completed = nil
}

// SetDurationSecs sets the "duration_secs" field.
func (m *SessionEventMutation) SetDurationSecs(i int) {
	m.duration_secs = &i
	m.addduration_secs = nil
}

// DurationSecs returns the value of the "duration_secs" field in the mutation.
func (m *SessionEventMutation) DurationSecs() (r int, exists bool) {
	v := m.duration_secs
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationSecs returns the old "duration_secs" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldDurationSecs(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationSecs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationSecs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationSecs: %w", err)
	}
	return oldValue.DurationSecs, nil
}

// AddDurationSecs adds i to the "duration_secs" field.
func (m *SessionEventMutation) AddDurationSecs(i int) {
	if m.addduration_secs != nil {
		*m.addduration_secs += i
	} else {
		m.addduration_secs = &i
	}
}

// AddedDurationSecs returns the value that was added to the "duration_secs" field in this mutation.
func (m *SessionEventMutation) AddedDurationSecs() (r int, exists bool) {
	v := m.addduration_secs
	if v == nil {
		return
	}
	return *v, true
}

// ResetDurationSecs resets all changes to the "duration_secs" field.
func (m *SessionEventMutation) ResetDurationSecs() {
	m.duration_secs = nil
	m.addduration_secs = nil
}

// Where appends a list predicates to the SessionEventMutation builder.
func (m *SessionEventMutation) Where(ps ...predicate.SessionEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SessionEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SessionEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SessionEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SessionEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SessionEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SessionEvent).
func (m *SessionEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SessionEventMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.sequence != nil {
		fields = append(fields, sessionevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, sessionevent.FieldTimestamp)
	}
	if m.session_id != nil {
		fields = append(fields, sessionevent.FieldSessionID)
	}
	if m.action != nil {
		fields = append(fields, sessionevent.FieldAction)
	}
	if m.persona != nil {
		fields = append(fields, sessionevent.FieldPersona)
	}
	if m.xp != nil {
		fields = append(fields, sessionevent.FieldXp)
	}
	if m.coins != nil {
		fields = append(fields, sessionevent.FieldCoins)
	}
	if m.challenges_completed != nil {
		fields = append(fields, sessionevent.FieldChallengesCompleted)
	}
	if m.duration_secs != nil {
		fields = append(fields, sessionevent.FieldDurationSecs)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SessionEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case sessionevent.FieldSequence:
		return m.Sequence()
	case sessionevent.FieldTimestamp:
		return m.Timestamp()
	case sessionevent.FieldSessionID:
		return m.SessionID()
	case sessionevent.FieldAction:
		return m.Action()
	case sessionevent.FieldPersona:
		return m.Persona()
	case sessionevent.FieldXp:
		return m.Xp()
	case sessionevent.FieldCoins:
		return m.Coins()
	case sessionevent.FieldChallengesCompleted:
		return m.ChallengesCompleted()
	case sessionevent.FieldDurationSecs:
		return m.DurationSecs()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SessionEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case sessionevent.FieldSequence:
		return m.OldSequence(ctx)
	case sessionevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case sessionevent.FieldSessionID:
		return m.OldSessionID(ctx)
	case sessionevent.FieldAction:
		return m.OldAction(ctx)
	case sessionevent.FieldPersona:
		return m.OldPersona(ctx)
	case sessionevent.FieldXp:
		return m.OldXp(ctx)
	case sessionevent.FieldCoins:
		return m.OldCoins(ctx)
	case sessionevent.FieldChallengesCompleted:
		return m.OldChallengesCompleted(ctx)
	case sessionevent.FieldDurationSecs:
		return m.OldDurationSecs(ctx)
	}
	return nil, fmt.Errorf("unknown SessionEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case sessionevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case sessionevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case sessionevent.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case sessionevent.FieldAction:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAction(v)
		return nil
	case sessionevent.FieldPersona:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPersona(v)
		return nil
	case sessionevent.FieldXp:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetXp(v)
		return nil
	case sessionevent.FieldCoins:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCoins(v)
		return nil
	case sessionevent.FieldChallengesCompleted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChallengesCompleted(v)
		return nil
	case sessionevent.FieldDurationSecs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationSecs(v)
		return nil
	}
	return fmt.Errorf("unknown SessionEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SessionEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, sessionevent.FieldSequence)
	}
	if m.addxp != nil {
		fields = append(fields, sessionevent.FieldXp)
	}
	if m.addcoins != nil {
		fields = append(fields, sessionevent.FieldCoins)
	}
	if m.addchallenges_completed != nil {
		fields = append(fields, sessionevent.FieldChallengesCompleted)
	}
	if m.addduration_secs != nil {
		fields = append(fields, sessionevent.FieldDurationSecs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SessionEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case sessionevent.FieldSequence:
		return m.AddedSequence()
	case sessionevent.FieldXp:
		return m.AddedXp()
	case sessionevent.FieldCoins:
		return m.AddedCoins()
	case sessionevent.FieldChallengesCompleted:
		return m.AddedChallengesCompleted()
	case sessionevent.FieldDurationSecs:
		return m.AddedDurationSecs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case sessionevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case sessionevent.FieldXp:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddXp(v)
		return nil
	case sessionevent.FieldCoins:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCoins(v)
		return nil
	case sessionevent.FieldChallengesCompleted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddChallengesCompleted(v)
		return nil
	case sessionevent.FieldDurationSecs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationSecs(v)
		return nil
	}
	return fmt.Errorf("unknown SessionEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SessionEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SessionEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SessionEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown SessionEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SessionEventMutation) ResetField(name string) error {
	switch name {
	case sessionevent.FieldSequence:
		m.ResetSequence()
		return nil
	case sessionevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case sessionevent.FieldSessionID:
		m.ResetSessionID()
		return nil
	case sessionevent.FieldAction:
		m.ResetAction()
		return nil
	case sessionevent.FieldPersona:
		m.ResetPersona()
		return nil
	case sessionevent.FieldXp:
		m.ResetXp()
		return nil
	case sessionevent.FieldCoins:
		m.ResetCoins()
		return nil
	case sessionevent.FieldChallengesCompleted:
		m.ResetChallengesCompleted()
		return nil
	case sessionevent.FieldDurationSecs:
		m.ResetDurationSecs()
		return nil
	}
	return fmt.Errorf("unknown SessionEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SessionEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SessionEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SessionEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SessionEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SessionEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SessionEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SessionEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SessionEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SessionEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SessionEvent edge %s", name)
}
