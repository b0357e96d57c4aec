// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/sproutfi/sprout/ent/quizanswerevent"
)

// QuizAnswerEventCreate is the builder for creating a QuizAnswerEvent entity.
type QuizAnswerEventCreate struct {
	config
	mutation *QuizAnswerEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *QuizAnswerEventCreate) SetSequence(v int64) *QuizAnswerEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *QuizAnswerEventCreate) SetTimestamp(v time.Time) *QuizAnswerEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *QuizAnswerEventCreate) SetNillableTimestamp(v *time.Time) *QuizAnswerEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *QuizAnswerEventCreate) SetSessionID(v string) *QuizAnswerEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetQuestionIndex sets the "question_index" field.
func (_c *QuizAnswerEventCreate) SetQuestionIndex(v int) *QuizAnswerEventCreate {
	_c.mutation.SetQuestionIndex(v)
	return _c
}

// SetOptionIndex sets the "option_index" field.
func (_c *QuizAnswerEventCreate) SetOptionIndex(v int) *QuizAnswerEventCreate {
	_c.mutation.SetOptionIndex(v)
	return _c
}

// SetOverwrite sets the "overwrite" field.
func (_c *QuizAnswerEventCreate) SetOverwrite(v bool) *QuizAnswerEventCreate {
	_c.mutation.SetOverwrite(v)
	return _c
}

// SetNillableOverwrite sets the "overwrite" field if the given value is not nil.
func (_c *QuizAnswerEventCreate) SetNillableOverwrite(v *bool) *QuizAnswerEventCreate {
	if v != nil {
		_c.SetOverwrite(*v)
	}
	return _c
}

// Mutation returns the QuizAnswerEventMutation object of the builder.
func (_c *QuizAnswerEventCreate) Mutation() *QuizAnswerEventMutation {
	return _c.mutation
}

// Save creates the QuizAnswerEvent in the database.
func (_c *QuizAnswerEventCreate) Save(ctx context.Context) (*QuizAnswerEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QuizAnswerEventCreate) SaveX(ctx context.Context) *QuizAnswerEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuizAnswerEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuizAnswerEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QuizAnswerEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := quizanswerevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Overwrite(); !ok {
		v := quizanswerevent.DefaultOverwrite
		_c.mutation.SetOverwrite(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QuizAnswerEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "QuizAnswerEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "QuizAnswerEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "QuizAnswerEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := quizanswerevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "QuizAnswerEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestionIndex(); !ok {
		return &ValidationError{Name: "question_index", err: errors.New(`ent: missing required field "QuizAnswerEvent.question_index"`)}
	}
	if v, ok := _c.mutation.QuestionIndex(); ok {
		if err := quizanswerevent.QuestionIndexValidator(v); err != nil {
			return &ValidationError{Name: "question_index", err: fmt.Errorf(`ent: validator failed for field "QuizAnswerEvent.question_index": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OptionIndex(); !ok {
		return &ValidationError{Name: "option_index", err: errors.New(`ent: missing required field "QuizAnswerEvent.option_index"`)}
	}
	if v, ok := _c.mutation.OptionIndex(); ok {
		if err := quizanswerevent.OptionIndexValidator(v); err != nil {
			return &ValidationError{Name: "option_index", err: fmt.Errorf(`ent: validator failed for field "QuizAnswerEvent.option_index": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Overwrite(); !ok {
		return &ValidationError{Name: "overwrite", err: errors.New(`ent: missing required field "QuizAnswerEvent.overwrite"`)}
	}
	return nil
}

func (_c *QuizAnswerEventCreate) sqlSave(ctx context.Context) (*QuizAnswerEvent, error) {
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

func (_c *QuizAnswerEventCreate) createSpec() (*QuizAnswerEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &QuizAnswerEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(quizanswerevent.Table, sqlgraph.NewFieldSpec(quizanswerevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(quizanswerevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(quizanswerevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(quizanswerevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.QuestionIndex(); ok {
		_spec.SetField(quizanswerevent.FieldQuestionIndex, field.TypeInt, value)
		_node.QuestionIndex = value
	}
	if value, ok := _c.mutation.OptionIndex(); ok {
		_spec.SetField(quizanswerevent.FieldOptionIndex, field.TypeInt, value)
		_node.OptionIndex = value
	}
	if value, ok := _c.mutation.Overwrite(); ok {
		_spec.SetField(quizanswerevent.FieldOverwrite, field.TypeBool, value)
		_node.Overwrite = value
	}
	return _node, _spec
}

// QuizAnswerEventCreateBulk is the builder for creating many QuizAnswerEvent entities in bulk.
type QuizAnswerEventCreateBulk struct {
	config
	err      error
	builders []*QuizAnswerEventCreate
}

// Save creates the QuizAnswerEvent entities in the database.
func (_c *QuizAnswerEventCreateBulk) Save(ctx context.Context) ([]*QuizAnswerEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*QuizAnswerEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuizAnswerEventMutation)
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
func (_c *QuizAnswerEventCreateBulk) SaveX(ctx context.Context) []*QuizAnswerEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuizAnswerEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuizAnswerEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
