// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/sproutfi/sprout/ent/challengeevent"
)

// ChallengeEventCreate is the builder for creating a ChallengeEvent entity.
type ChallengeEventCreate struct {
	config
	mutation *ChallengeEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *ChallengeEventCreate) SetSequence(v int64) *ChallengeEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *ChallengeEventCreate) SetTimestamp(v time.Time) *ChallengeEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *ChallengeEventCreate) SetNillableTimestamp(v *time.Time) *ChallengeEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *ChallengeEventCreate) SetSessionID(v string) *ChallengeEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetChallengeID sets the "challenge_id" field.
func (_c *ChallengeEventCreate) SetChallengeID(v string) *ChallengeEventCreate {
	_c.mutation.SetChallengeID(v)
	return _c
}

// SetChallengeTitle sets the "challenge_title" field.
func (_c *ChallengeEventCreate) SetChallengeTitle(v string) *ChallengeEventCreate {
	_c.mutation.SetChallengeTitle(v)
	return _c
}

// SetChallengeType sets the "challenge_type" field.
func (_c *ChallengeEventCreate) SetChallengeType(v string) *ChallengeEventCreate {
	_c.mutation.SetChallengeType(v)
	return _c
}

// SetXpAwarded sets the "xp_awarded" field.
func (_c *ChallengeEventCreate) SetXpAwarded(v int) *ChallengeEventCreate {
	_c.mutation.SetXpAwarded(v)
	return _c
}

// SetCoinsAwarded sets the "coins_awarded" field.
func (_c *ChallengeEventCreate) SetCoinsAwarded(v int) *ChallengeEventCreate {
	_c.mutation.SetCoinsAwarded(v)
	return _c
}

// SetRepeat sets the "repeat" field.
func (_c *ChallengeEventCreate) SetRepeat(v bool) *ChallengeEventCreate {
	_c.mutation.SetRepeat(v)
	return _c
}

// SetNillableRepeat sets the "repeat" field if the given value is not nil.
func (_c *ChallengeEventCreate) SetNillableRepeat(v *bool) *ChallengeEventCreate {
	if v != nil {
		_c.SetRepeat(*v)
	}
	return _c
}

// Mutation returns the ChallengeEventMutation object of the builder.
func (_c *ChallengeEventCreate) Mutation() *ChallengeEventMutation {
	return _c.mutation
}

// Save creates the ChallengeEvent in the database.
func (_c *ChallengeEventCreate) Save(ctx context.Context) (*ChallengeEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ChallengeEventCreate) SaveX(ctx context.Context) *ChallengeEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChallengeEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChallengeEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ChallengeEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := challengeevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Repeat(); !ok {
		v := challengeevent.DefaultRepeat
		_c.mutation.SetRepeat(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ChallengeEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "ChallengeEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "ChallengeEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "ChallengeEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := challengeevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ChallengeEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ChallengeID(); !ok {
		return &ValidationError{Name: "challenge_id", err: errors.New(`ent: missing required field "ChallengeEvent.challenge_id"`)}
	}
	if v, ok := _c.mutation.ChallengeID(); ok {
		if err := challengeevent.ChallengeIDValidator(v); err != nil {
			return &ValidationError{Name: "challenge_id", err: fmt.Errorf(`ent: validator failed for field "ChallengeEvent.challenge_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ChallengeTitle(); !ok {
		return &ValidationError{Name: "challenge_title", err: errors.New(`ent: missing required field "ChallengeEvent.challenge_title"`)}
	}
	if v, ok := _c.mutation.ChallengeTitle(); ok {
		if err := challengeevent.ChallengeTitleValidator(v); err != nil {
			return &ValidationError{Name: "challenge_title", err: fmt.Errorf(`ent: validator failed for field "ChallengeEvent.challenge_title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ChallengeType(); !ok {
		return &ValidationError{Name: "challenge_type", err: errors.New(`ent: missing required field "ChallengeEvent.challenge_type"`)}
	}
	if v, ok := _c.mutation.ChallengeType(); ok {
		if err := challengeevent.ChallengeTypeValidator(v); err != nil {
			return &ValidationError{Name: "challenge_type", err: fmt.Errorf(`ent: validator failed for field "ChallengeEvent.challenge_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.XpAwarded(); !ok {
		return &ValidationError{Name: "xp_awarded", err: errors.New(`ent: missing required field "ChallengeEvent.xp_awarded"`)}
	}
	if v, ok := _c.mutation.XpAwarded(); ok {
		if err := challengeevent.XpAwardedValidator(v); err != nil {
			return &ValidationError{Name: "xp_awarded", err: fmt.Errorf(`ent: validator failed for field "ChallengeEvent.xp_awarded": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CoinsAwarded(); !ok {
		return &ValidationError{Name: "coins_awarded", err: errors.New(`ent: missing required field "ChallengeEvent.coins_awarded"`)}
	}
	if v, ok := _c.mutation.CoinsAwarded(); ok {
		if err := challengeevent.CoinsAwardedValidator(v); err != nil {
			return &ValidationError{Name: "coins_awarded", err: fmt.Errorf(`ent: validator failed for field "ChallengeEvent.coins_awarded": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Repeat(); !ok {
		return &ValidationError{Name: "repeat", err: errors.New(`ent: missing required field "ChallengeEvent.repeat"`)}
	}
	return nil
}

func (_c *ChallengeEventCreate) sqlSave(ctx context.Context) (*ChallengeEvent, error) {
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

func (_c *ChallengeEventCreate) createSpec() (*ChallengeEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &ChallengeEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(challengeevent.Table, sqlgraph.NewFieldSpec(challengeevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(challengeevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(challengeevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(challengeevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.ChallengeID(); ok {
		_spec.SetField(challengeevent.FieldChallengeID, field.TypeString, value)
		_node.ChallengeID = value
	}
	if value, ok := _c.mutation.ChallengeTitle(); ok {
		_spec.SetField(challengeevent.FieldChallengeTitle, field.TypeString, value)
		_node.ChallengeTitle = value
	}
	if value, ok := _c.mutation.ChallengeType(); ok {
		_spec.SetField(challengeevent.FieldChallengeType, field.TypeString, value)
		_node.ChallengeType = value
	}
	if value, ok := _c.mutation.XpAwarded(); ok {
		_spec.SetField(challengeevent.FieldXpAwarded, field.TypeInt, value)
		_node.XpAwarded = value
	}
	if value, ok := _c.mutation.CoinsAwarded(); ok {
		_spec.SetField(challengeevent.FieldCoinsAwarded, field.TypeInt, value)
		_node.CoinsAwarded = value
	}
	if value, ok := _c.mutation.Repeat(); ok {
		_spec.SetField(challengeevent.FieldRepeat, field.TypeBool, value)
		_node.Repeat = value
	}
	return _node, _spec
}

// ChallengeEventCreateBulk is the builder for creating many ChallengeEvent entities in bulk.
type ChallengeEventCreateBulk struct {
	config
	err      error
	builders []*ChallengeEventCreate
}

// Save creates the ChallengeEvent entities in the database.
func (_c *ChallengeEventCreateBulk) Save(ctx context.Context) ([]*ChallengeEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ChallengeEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ChallengeEventMutation)
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
func (_c *ChallengeEventCreateBulk) SaveX(ctx context.Context) []*ChallengeEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChallengeEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChallengeEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
