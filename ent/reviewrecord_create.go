// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/kanado/ent/reviewrecord"
)

// ReviewRecordCreate is the builder for creating a ReviewRecord entity.
type ReviewRecordCreate struct {
	config
	mutation *ReviewRecordMutation
	hooks    []Hook
}

// SetSymbolID sets the "symbol_id" field.
func (rrc *ReviewRecordCreate) SetSymbolID(i int) *ReviewRecordCreate {
	rrc.mutation.SetSymbolID(i)
	return rrc
}

// SetStage sets the "stage" field.
func (rrc *ReviewRecordCreate) SetStage(i int) *ReviewRecordCreate {
	rrc.mutation.SetStage(i)
	return rrc
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (rrc *ReviewRecordCreate) SetNillableStage(i *int) *ReviewRecordCreate {
	if i != nil {
		rrc.SetStage(*i)
	}
	return rrc
}

// SetNextDue sets the "next_due" field.
func (rrc *ReviewRecordCreate) SetNextDue(t time.Time) *ReviewRecordCreate {
	rrc.mutation.SetNextDue(t)
	return rrc
}

// SetCorrectCount sets the "correct_count" field.
func (rrc *ReviewRecordCreate) SetCorrectCount(i int) *ReviewRecordCreate {
	rrc.mutation.SetCorrectCount(i)
	return rrc
}

// SetNillableCorrectCount sets the "correct_count" field if the given value is not nil.
func (rrc *ReviewRecordCreate) SetNillableCorrectCount(i *int) *ReviewRecordCreate {
	if i != nil {
		rrc.SetCorrectCount(*i)
	}
	return rrc
}

// SetIncorrectCount sets the "incorrect_count" field.
func (rrc *ReviewRecordCreate) SetIncorrectCount(i int) *ReviewRecordCreate {
	rrc.mutation.SetIncorrectCount(i)
	return rrc
}

// SetNillableIncorrectCount sets the "incorrect_count" field if the given value is not nil.
func (rrc *ReviewRecordCreate) SetNillableIncorrectCount(i *int) *ReviewRecordCreate {
	if i != nil {
		rrc.SetIncorrectCount(*i)
	}
	return rrc
}

// SetLastReviewed sets the "last_reviewed" field.
func (rrc *ReviewRecordCreate) SetLastReviewed(t time.Time) *ReviewRecordCreate {
	rrc.mutation.SetLastReviewed(t)
	return rrc
}

// SetNillableLastReviewed sets the "last_reviewed" field if the given value is not nil.
func (rrc *ReviewRecordCreate) SetNillableLastReviewed(t *time.Time) *ReviewRecordCreate {
	if t != nil {
		rrc.SetLastReviewed(*t)
	}
	return rrc
}

// SetCreatedAt sets the "created_at" field.
func (rrc *ReviewRecordCreate) SetCreatedAt(t time.Time) *ReviewRecordCreate {
	rrc.mutation.SetCreatedAt(t)
	return rrc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (rrc *ReviewRecordCreate) SetNillableCreatedAt(t *time.Time) *ReviewRecordCreate {
	if t != nil {
		rrc.SetCreatedAt(*t)
	}
	return rrc
}

// Mutation returns the ReviewRecordMutation object of the builder.
func (rrc *ReviewRecordCreate) Mutation() *ReviewRecordMutation {
	return rrc.mutation
}

// Save creates the ReviewRecord in the database.
func (rrc *ReviewRecordCreate) Save(ctx context.Context) (*ReviewRecord, error) {
	rrc.defaults()
	return withHooks(ctx, rrc.sqlSave, rrc.mutation, rrc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (rrc *ReviewRecordCreate) SaveX(ctx context.Context) *ReviewRecord {
	v, err := rrc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (rrc *ReviewRecordCreate) Exec(ctx context.Context) error {
	_, err := rrc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (rrc *ReviewRecordCreate) ExecX(ctx context.Context) {
	if err := rrc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (rrc *ReviewRecordCreate) defaults() {
	if _, ok := rrc.mutation.Stage(); !ok {
		v := reviewrecord.DefaultStage
		rrc.mutation.SetStage(v)
	}
	if _, ok := rrc.mutation.CorrectCount(); !ok {
		v := reviewrecord.DefaultCorrectCount
		rrc.mutation.SetCorrectCount(v)
	}
	if _, ok := rrc.mutation.IncorrectCount(); !ok {
		v := reviewrecord.DefaultIncorrectCount
		rrc.mutation.SetIncorrectCount(v)
	}
	if _, ok := rrc.mutation.CreatedAt(); !ok {
		v := reviewrecord.DefaultCreatedAt()
		rrc.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (rrc *ReviewRecordCreate) check() error {
	if _, ok := rrc.mutation.SymbolID(); !ok {
		return &ValidationError{Name: "symbol_id", err: errors.New(`ent: missing required field "ReviewRecord.symbol_id"`)}
	}
	if _, ok := rrc.mutation.Stage(); !ok {
		return &ValidationError{Name: "stage", err: errors.New(`ent: missing required field "ReviewRecord.stage"`)}
	}
	if v, ok := rrc.mutation.Stage(); ok {
		if err := reviewrecord.StageValidator(v); err != nil {
			return &ValidationError{Name: "stage", err: fmt.Errorf(`ent: validator failed for field "ReviewRecord.stage": %w`, err)}
		}
	}
	if _, ok := rrc.mutation.NextDue(); !ok {
		return &ValidationError{Name: "next_due", err: errors.New(`ent: missing required field "ReviewRecord.next_due"`)}
	}
	if _, ok := rrc.mutation.CorrectCount(); !ok {
		return &ValidationError{Name: "correct_count", err: errors.New(`ent: missing required field "ReviewRecord.correct_count"`)}
	}
	if v, ok := rrc.mutation.CorrectCount(); ok {
		if err := reviewrecord.CorrectCountValidator(v); err != nil {
			return &ValidationError{Name: "correct_count", err: fmt.Errorf(`ent: validator failed for field "ReviewRecord.correct_count": %w`, err)}
		}
	}
	if _, ok := rrc.mutation.IncorrectCount(); !ok {
		return &ValidationError{Name: "incorrect_count", err: errors.New(`ent: missing required field "ReviewRecord.incorrect_count"`)}
	}
	if v, ok := rrc.mutation.IncorrectCount(); ok {
		if err := reviewrecord.IncorrectCountValidator(v); err != nil {
			return &ValidationError{Name: "incorrect_count", err: fmt.Errorf(`ent: validator failed for field "ReviewRecord.incorrect_count": %w`, err)}
		}
	}
	if _, ok := rrc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ReviewRecord.created_at"`)}
	}
	return nil
}

func (rrc *ReviewRecordCreate) sqlSave(ctx context.Context) (*ReviewRecord, error) {
	if err := rrc.check(); err != nil {
		return nil, err
	}
	_node, _spec := rrc.createSpec()
	if err := sqlgraph.CreateNode(ctx, rrc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	rrc.mutation.id = &_node.ID
	rrc.mutation.done = true
	return _node, nil
}

func (rrc *ReviewRecordCreate) createSpec() (*ReviewRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &ReviewRecord{config: rrc.config}
		_spec = sqlgraph.NewCreateSpec(reviewrecord.Table, sqlgraph.NewFieldSpec(reviewrecord.FieldID, field.TypeInt))
	)
	if value, ok := rrc.mutation.SymbolID(); ok {
		_spec.SetField(reviewrecord.FieldSymbolID, field.TypeInt, value)
		_node.SymbolID = value
	}
	if value, ok := rrc.mutation.Stage(); ok {
		_spec.SetField(reviewrecord.FieldStage, field.TypeInt, value)
		_node.Stage = value
	}
	if value, ok := rrc.mutation.NextDue(); ok {
		_spec.SetField(reviewrecord.FieldNextDue, field.TypeTime, value)
		_node.NextDue = value
	}
	if value, ok := rrc.mutation.CorrectCount(); ok {
		_spec.SetField(reviewrecord.FieldCorrectCount, field.TypeInt, value)
		_node.CorrectCount = value
	}
	if value, ok := rrc.mutation.IncorrectCount(); ok {
		_spec.SetField(reviewrecord.FieldIncorrectCount, field.TypeInt, value)
		_node.IncorrectCount = value
	}
	if value, ok := rrc.mutation.LastReviewed(); ok {
		_spec.SetField(reviewrecord.FieldLastReviewed, field.TypeTime, value)
		_node.LastReviewed = &value
	}
	if value, ok := rrc.mutation.CreatedAt(); ok {
		_spec.SetField(reviewrecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// ReviewRecordCreateBulk is the builder for creating many ReviewRecord entities in bulk.
type ReviewRecordCreateBulk struct {
	config
	err      error
	builders []*ReviewRecordCreate
}

// Save creates the ReviewRecord entities in the database.
func (rrcb *ReviewRecordCreateBulk) Save(ctx context.Context) ([]*ReviewRecord, error) {
	if rrcb.err != nil {
		return nil, rrcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(rrcb.builders))
	nodes := make([]*ReviewRecord, len(rrcb.builders))
	mutators := make([]Mutator, len(rrcb.builders))
	for i := range rrcb.builders {
		func(i int, root context.Context) {
			builder := rrcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReviewRecordMutation)
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
					_, err = mutators[i+1].Mutate(root, rrcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, rrcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, rrcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (rrcb *ReviewRecordCreateBulk) SaveX(ctx context.Context) []*ReviewRecord {
	v, err := rrcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (rrcb *ReviewRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := rrcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (rrcb *ReviewRecordCreateBulk) ExecX(ctx context.Context) {
	if err := rrcb.Exec(ctx); err != nil {
		panic(err)
	}
}
