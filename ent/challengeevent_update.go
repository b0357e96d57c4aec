// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/sproutfi/sprout/ent/challengeevent"
	"github.com/sproutfi/sprout/ent/predicate"
)

// ChallengeEventUpdate is the builder for updating ChallengeEvent entities.
type ChallengeEventUpdate struct {
	config
	hooks    []Hook
	mutation *ChallengeEventMutation
}

// Where appends a list predicates to the ChallengeEventUpdate builder.
func (_u *ChallengeEventUpdate) Where(ps ...predicate.ChallengeEvent) *ChallengeEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *ChallengeEventUpdate) SetSessionID(v string) *ChallengeEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ChallengeEventUpdate) SetNillableSessionID(v *string) *ChallengeEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetChallengeID sets the "challenge_id" field.
func (_u *ChallengeEventUpdate) SetChallengeID(v string) *ChallengeEventUpdate {
	_u.mutation.SetChallengeID(v)
	return _u
}

// SetNillableChallengeID sets the "challenge_id" field if the given value is not nil.
func (_u *ChallengeEventUpdate) SetNillableChallengeID(v *string) *ChallengeEventUpdate {
	if v != nil {
		_u.SetChallengeID(*v)
	}
	return _u
}

// SetChallengeTitle sets the "challenge_title" field.
func (_u *ChallengeEventUpdate) SetChallengeTitle(v string) *ChallengeEventUpdate {
	_u.mutation.SetChallengeTitle(v)
	return _u
}

// SetNillableChallengeTitle sets the "challenge_title" field if the given value is not nil.
func (_u *ChallengeEventUpdate) SetNillableChallengeTitle(v *string) *ChallengeEventUpdate {
	if v != nil {
		_u.SetChallengeTitle(*v)
	}
	return _u
}

// SetChallengeType sets the "challenge_type" field.
func (_u *ChallengeEventUpdate) SetChallengeType(v string) *ChallengeEventUpdate {
	_u.mutation.SetChallengeType(v)
	return _u
}

// SetNillableChallengeType sets the "challenge_type" field if the given value is not nil.
func (_u *ChallengeEventUpdate) SetNillableChallengeType(v *string) *ChallengeEventUpdate {
	if v != nil {
		_u.SetChallengeType(*v)
	}
	return _u
}

// SetXpAwarded sets the "xp_awarded" field.
func (_u *ChallengeEventUpdate) SetXpAwarded(v int) *ChallengeEventUpdate {
	_u.mutation.ResetXpAwarded()
	_u.mutation.SetXpAwarded(v)
	return _u
}

// SetNillableXpAwarded sets the "xp_awarded" field if the given value is not nil.
func (_u *ChallengeEventUpdate) SetNillableXpAwarded(v *int) *ChallengeEventUpdate {
	if v != nil {
		_u.SetXpAwarded(*v)
	}
	return _u
}

// AddXpAwarded adds value to the "xp_awarded" field.
func (_u *ChallengeEventUpdate) AddXpAwarded(v int) *ChallengeEventUpdate {
	_u.mutation.AddXpAwarded(v)
	return _u
}

// SetCoinsAwarded sets the "coins_awarded" field.
func (_u *ChallengeEventUpdate) SetCoinsAwarded(v int) *ChallengeEventUpdate {
	_u.mutation.ResetCoinsAwarded()
	_u.mutation.SetCoinsAwarded(v)
	return _u
}

// SetNillableCoinsAwarded sets the "coins_awarded" field if the given value is not nil.
func (_u *ChallengeEventUpdate) SetNillableCoinsAwarded(v *int) *ChallengeEventUpdate {
	if v != nil {
		_u.SetCoinsAwarded(*v)
	}
	return _u
}

// AddCoinsAwarded adds value to the "coins_awarded" field.
func (_u *ChallengeEventUpdate) AddCoinsAwarded(v int) *ChallengeEventUpdate {
	_u.mutation.AddCoinsAwarded(v)
	return _u
}

// SetRepeat sets the "repeat" field.
func (_u *ChallengeEventUpdate) SetRepeat(v bool) *ChallengeEventUpdate {
	_u.mutation.SetRepeat(v)
	return _u
}

// SetNillableRepeat sets the "repeat" field if the given value is not nil.
func (_u *ChallengeEventUpdate) SetNillableRepeat(v *bool) *ChallengeEventUpdate {
	if v != nil {
		_u.SetRepeat(*v)
	}
	return _u
}

// Mutation returns the ChallengeEventMutation object of the builder.
func (_u *ChallengeEventUpdate) Mutation() *ChallengeEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ChallengeEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChallengeEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ChallengeEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChallengeEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChallengeEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := challengeevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ChallengeEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ChallengeID(); ok {
		if err := challengeevent.ChallengeIDValidator(v); err != nil {
			return &ValidationError{Name: "challenge_id", err: fmt.Errorf(`ent: validator failed for field "ChallengeEvent.challenge_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ChallengeTitle(); ok {
		if err := challengeevent.ChallengeTitleValidator(v); err != nil {
			return &ValidationError{Name: "challenge_title", err: fmt.Errorf(`ent: validator failed for field "ChallengeEvent.challenge_title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ChallengeType(); ok {
		if err := challengeevent.ChallengeTypeValidator(v); err != nil {
			return &ValidationError{Name: "challenge_type", err: fmt.Errorf(`ent: validator failed for field "ChallengeEvent.challenge_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.XpAwarded(); ok {
		if err := challengeevent.XpAwardedValidator(v); err != nil {
			return &ValidationError{Name: "xp_awarded", err: fmt.Errorf(`ent: validator failed for field "ChallengeEvent.xp_awarded": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CoinsAwarded(); ok {
		if err := challengeevent.CoinsAwardedValidator(v); err != nil {
			return &ValidationError{Name: "coins_awarded", err: fmt.Errorf(`ent: validator failed for field "ChallengeEvent.coins_awarded": %w`, err)}
		}
	}
	return nil
}

func (_u *ChallengeEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(challengeevent.Table, challengeevent.Columns, sqlgraph.NewFieldSpec(challengeevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(challengeevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ChallengeID(); ok {
		_spec.SetField(challengeevent.FieldChallengeID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ChallengeTitle(); ok {
		_spec.SetField(challengeevent.FieldChallengeTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.ChallengeType(); ok {
		_spec.SetField(challengeevent.FieldChallengeType, field.TypeString, value)
	}
	if value, ok := _u.mutation.XpAwarded(); ok {
		_spec.SetField(challengeevent.FieldXpAwarded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedXpAwarded(); ok {
		_spec.AddField(challengeevent.FieldXpAwarded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CoinsAwarded(); ok {
		_spec.SetField(challengeevent.FieldCoinsAwarded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCoinsAwarded(); ok {
		_spec.AddField(challengeevent.FieldCoinsAwarded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Repeat(); ok {
		_spec.SetField(challengeevent.FieldRepeat, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{challengeevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ChallengeEventUpdateOne is the builder for updating a single ChallengeEvent entity.
type ChallengeEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ChallengeEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *ChallengeEventUpdateOne) SetSessionID(v string) *ChallengeEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ChallengeEventUpdateOne) SetNillableSessionID(v *string) *ChallengeEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetChallengeID sets the "challenge_id" field.
func (_u *ChallengeEventUpdateOne) SetChallengeID(v string) *ChallengeEventUpdateOne {
	_u.mutation.SetChallengeID(v)
	return _u
}

// SetNillableChallengeID sets the "challenge_id" field if the given value is not nil.
func (_u *ChallengeEventUpdateOne) SetNillableChallengeID(v *string) *ChallengeEventUpdateOne {
	if v != nil {
		_u.SetChallengeID(*v)
	}
	return _u
}

// SetChallengeTitle sets the "challenge_title" field.
func (_u *ChallengeEventUpdateOne) SetChallengeTitle(v string) *ChallengeEventUpdateOne {
	_u.mutation.SetChallengeTitle(v)
	return _u
}

// SetNillableChallengeTitle sets the "challenge_title" field if the given value is not nil.
func (_u *ChallengeEventUpdateOne) SetNillableChallengeTitle(v *string) *ChallengeEventUpdateOne {
	if v != nil {
		_u.SetChallengeTitle(*v)
	}
	return _u
}

// SetChallengeType sets the "challenge_type" field.
func (_u *ChallengeEventUpdateOne) SetChallengeType(v string) *ChallengeEventUpdateOne {
	_u.mutation.SetChallengeType(v)
	return _u
}

// SetNillableChallengeType sets the "challenge_type" field if the given value is not nil.
func (_u *ChallengeEventUpdateOne) SetNillableChallengeType(v *string) *ChallengeEventUpdateOne {
	if v != nil {
		_u.SetChallengeType(*v)
	}
	return _u
}

// SetXpAwarded sets the "xp_awarded" field.
func (_u *ChallengeEventUpdateOne) SetXpAwarded(v int) *ChallengeEventUpdateOne {
	_u.mutation.ResetXpAwarded()
	_u.mutation.SetXpAwarded(v)
	return _u
}

// SetNillableXpAwarded sets the "xp_awarded" field if the given value is not nil.
func (_u *ChallengeEventUpdateOne) SetNillableXpAwarded(v *int) *ChallengeEventUpdateOne {
	if v != nil {
		_u.SetXpAwarded(*v)
	}
	return _u
}

// AddXpAwarded adds value to the "xp_awarded" field.
func (_u *ChallengeEventUpdateOne) AddXpAwarded(v int) *ChallengeEventUpdateOne {
	_u.mutation.AddXpAwarded(v)
	return _u
}

// SetCoinsAwarded sets the "coins_awarded" field.
func (_u *ChallengeEventUpdateOne) SetCoinsAwarded(v int) *ChallengeEventUpdateOne {
	_u.mutation.ResetCoinsAwarded()
	_u.mutation.SetCoinsAwarded(v)
	return _u
}

// SetNillableCoinsAwarded sets the "coins_awarded" field if the given value is not nil.
func (_u *ChallengeEventUpdateOne) SetNillableCoinsAwarded(v *int) *ChallengeEventUpdateOne {
	if v != nil {
		_u.SetCoinsAwarded(*v)
	}
	return _u
}

// AddCoinsAwarded adds value to the "coins_awarded" field.
func (_u *ChallengeEventUpdateOne) AddCoinsAwarded(v int) *ChallengeEventUpdateOne {
	_u.mutation.AddCoinsAwarded(v)
	return _u
}

// SetRepeat sets the "repeat" field.
func (_u *ChallengeEventUpdateOne) SetRepeat(v bool) *ChallengeEventUpdateOne {
	_u.mutation.SetRepeat(v)
	return _u
}

// SetNillableRepeat sets the "repeat" field if the given value is not nil.
func (_u *ChallengeEventUpdateOne) SetNillableRepeat(v *bool) *ChallengeEventUpdateOne {
	if v != nil {
		_u.SetRepeat(*v)
	}
	return _u
}

// Mutation returns the ChallengeEventMutation object of the builder.
func (_u *ChallengeEventUpdateOne) Mutation() *ChallengeEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ChallengeEventUpdate builder.
func (_u *ChallengeEventUpdateOne) Where(ps ...predicate.ChallengeEvent) *ChallengeEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ChallengeEventUpdateOne) Select(field string, fields ...string) *ChallengeEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ChallengeEvent entity.
func (_u *ChallengeEventUpdateOne) Save(ctx context.Context) (*ChallengeEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChallengeEventUpdateOne) SaveX(ctx context.Context) *ChallengeEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ChallengeEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChallengeEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChallengeEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := challengeevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ChallengeEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ChallengeID(); ok {
		if err := challengeevent.ChallengeIDValidator(v); err != nil {
			return &ValidationError{Name: "challenge_id", err: fmt.Errorf(`ent: validator failed for field "ChallengeEvent.challenge_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ChallengeTitle(); ok {
		if err := challengeevent.ChallengeTitleValidator(v); err != nil {
			return &ValidationError{Name: "challenge_title", err: fmt.Errorf(`ent: validator failed for field "ChallengeEvent.challenge_title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ChallengeType(); ok {
		if err := challengeevent.ChallengeTypeValidator(v); err != nil {
			return &ValidationError{Name: "challenge_type", err: fmt.Errorf(`ent: validator failed for field "ChallengeEvent.challenge_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.XpAwarded(); ok {
		if err := challengeevent.XpAwardedValidator(v); err != nil {
			return &ValidationError{Name: "xp_awarded", err: fmt.Errorf(`ent: validator failed for field "ChallengeEvent.xp_awarded": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CoinsAwarded(); ok {
		if err := challengeevent.CoinsAwardedValidator(v); err != nil {
			return &ValidationError{Name: "coins_awarded", err: fmt.Errorf(`ent: validator failed for field "ChallengeEvent.coins_awarded": %w`, err)}
		}
	}
	return nil
}

func (_u *ChallengeEventUpdateOne) sqlSave(ctx context.Context) (_node *ChallengeEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(challengeevent.Table, challengeevent.Columns, sqlgraph.NewFieldSpec(challengeevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ChallengeEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, challengeevent.FieldID)
		for _, f := range fields {
			if !challengeevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != challengeevent.FieldID {
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
		_spec.SetField(challengeevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ChallengeID(); ok {
		_spec.SetField(challengeevent.FieldChallengeID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ChallengeTitle(); ok {
		_spec.SetField(challengeevent.FieldChallengeTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.ChallengeType(); ok {
		_spec.SetField(challengeevent.FieldChallengeType, field.TypeString, value)
	}
	if value, ok := _u.mutation.XpAwarded(); ok {
		_spec.SetField(challengeevent.FieldXpAwarded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedXpAwarded(); ok {
		_spec.AddField(challengeevent.FieldXpAwarded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CoinsAwarded(); ok {
		_spec.SetField(challengeevent.FieldCoinsAwarded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCoinsAwarded(); ok {
		_spec.AddField(challengeevent.FieldCoinsAwarded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Repeat(); ok {
		_spec.SetField(challengeevent.FieldRepeat, field.TypeBool, value)
	}
	_node = &ChallengeEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{challengeevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
