// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/kanado/ent/lessonbatch"
)

// LessonBatchCreate is the builder for creating a LessonBatch entity.
type LessonBatchCreate struct {
	config
	mutation *LessonBatchMutation
	hooks    []Hook
}

// SetBatchNumber sets the "batch_number" field.
func (lbc *LessonBatchCreate) SetBatchNumber(i int) *LessonBatchCreate {
	lbc.mutation.SetBatchNumber(i)
	return lbc
}

// SetName sets the "name" field.
func (lbc *LessonBatchCreate) SetName(s string) *LessonBatchCreate {
	lbc.mutation.SetName(s)
	return lbc
}

// SetDescription sets the "description" field.
func (lbc *LessonBatchCreate) SetDescription(s string) *LessonBatchCreate {
	lbc.mutation.SetDescription(s)
	return lbc
}

// SetCompleted sets the "completed" field.
func (lbc *LessonBatchCreate) SetCompleted(b bool) *LessonBatchCreate {
	lbc.mutation.SetCompleted(b)
	return lbc
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (lbc *LessonBatchCreate) SetNillableCompleted(b *bool) *LessonBatchCreate {
	if b != nil {
		lbc.SetCompleted(*b)
	}
	return lbc
}

// SetCompletedAt sets the "completed_at" field.
func (lbc *LessonBatchCreate) SetCompletedAt(t time.Time) *LessonBatchCreate {
	lbc.mutation.SetCompletedAt(t)
	return lbc
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (lbc *LessonBatchCreate) SetNillableCompletedAt(t *time.Time) *LessonBatchCreate {
	if t != nil {
		lbc.SetCompletedAt(*t)
	}
	return lbc
}

// Mutation returns the LessonBatchMutation object of the builder.
func (lbc *LessonBatchCreate) Mutation() *LessonBatchMutation {
	return lbc.mutation
}

// Save creates the LessonBatch in the database.
func (lbc *LessonBatchCreate) Save(ctx context.Context) (*LessonBatch, error) {
	lbc.defaults()
	return withHooks(ctx, lbc.sqlSave, lbc.mutation, lbc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (lbc *LessonBatchCreate) SaveX(ctx context.Context) *LessonBatch {
	v, err := lbc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (lbc *LessonBatchCreate) Exec(ctx context.Context) error {
	_, err := lbc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (lbc *LessonBatchCreate) ExecX(ctx context.Context) {
	if err := lbc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (lbc *LessonBatchCreate) defaults() {
	if _, ok := lbc.mutation.Completed(); !ok {
		v := lessonbatch.DefaultCompleted
		lbc.mutation.SetCompleted(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (lbc *LessonBatchCreate) check() error {
	if _, ok := lbc.mutation.BatchNumber(); !ok {
		return &ValidationError{Name: "batch_number", err: errors.New(`ent: missing required field "LessonBatch.batch_number"`)}
	}
	if v, ok := lbc.mutation.BatchNumber(); ok {
		if err := lessonbatch.BatchNumberValidator(v); err != nil {
			return &ValidationError{Name: "batch_number", err: fmt.Errorf(`ent: validator failed for field "LessonBatch.batch_number": %w`, err)}
		}
	}
	if _, ok := lbc.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "LessonBatch.name"`)}
	}
	if v, ok := lbc.mutation.Name(); ok {
		if err := lessonbatch.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "LessonBatch.name": %w`, err)}
		}
	}
	if _, ok := lbc.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "LessonBatch.description"`)}
	}
	if v, ok := lbc.mutation.Description(); ok {
		if err := lessonbatch.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "LessonBatch.description": %w`, err)}
		}
	}
	if _, ok := lbc.mutation.Completed(); !ok {
		return &ValidationError{Name: "completed", err: errors.New(`ent: missing required field "LessonBatch.completed"`)}
	}
	return nil
}

func (lbc *LessonBatchCreate) sqlSave(ctx context.Context) (*LessonBatch, error) {
	if err := lbc.check(); err != nil {
		return nil, err
	}
	_node, _spec := lbc.createSpec()
	if err := sqlgraph.CreateNode(ctx, lbc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	lbc.mutation.id = &_node.ID
	lbc.mutation.done = true
	return _node, nil
}

func (lbc *LessonBatchCreate) createSpec() (*LessonBatch, *sqlgraph.CreateSpec) {
	var (
		_node = &LessonBatch{config: lbc.config}
		_spec = sqlgraph.NewCreateSpec(lessonbatch.Table, sqlgraph.NewFieldSpec(lessonbatch.FieldID, field.TypeInt))
	)
	if value, ok := lbc.mutation.BatchNumber(); ok {
		_spec.SetField(lessonbatch.FieldBatchNumber, field.TypeInt, value)
		_node.BatchNumber = value
	}
	if value, ok := lbc.mutation.Name(); ok {
		_spec.SetField(lessonbatch.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := lbc.mutation.Description(); ok {
		_spec.SetField(lessonbatch.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := lbc.mutation.Completed(); ok {
		_spec.SetField(lessonbatch.FieldCompleted, field.TypeBool, value)
		_node.Completed = value
	}
	if value, ok := lbc.mutation.CompletedAt(); ok {
		_spec.SetField(lessonbatch.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	return _node, _spec
}

// LessonBatchCreateBulk is the builder for creating many LessonBatch entities in bulk.
type LessonBatchCreateBulk struct {
	config
	err      error
	builders []*LessonBatchCreate
}

// Save creates the LessonBatch entities in the database.
func (lbcb *LessonBatchCreateBulk) Save(ctx context.Context) ([]*LessonBatch, error) {
	if lbcb.err != nil {
		return nil, lbcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(lbcb.builders))
	nodes := make([]*LessonBatch, len(lbcb.builders))
	mutators := make([]Mutator, len(lbcb.builders))
	for i := range lbcb.builders {
		func(i int, root context.Context) {
			builder := lbcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LessonBatchMutation)
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
					_, err = mutators[i+1].Mutate(root, lbcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, lbcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, lbcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (lbcb *LessonBatchCreateBulk) SaveX(ctx context.Context) []*LessonBatch {
	v, err := lbcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (lbcb *LessonBatchCreateBulk) Exec(ctx context.Context) error {
	_, err := lbcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (lbcb *LessonBatchCreateBulk) ExecX(ctx context.Context) {
	if err := lbcb.Exec(ctx); err != nil {
		panic(err)
	}
}
