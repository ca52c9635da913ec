// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/kanado/ent/usernote"
)

// UserNoteCreate is the builder for creating a UserNote entity.
type UserNoteCreate struct {
	config
	mutation *UserNoteMutation
	hooks    []Hook
}

// SetSymbolID sets the "symbol_id" field.
func (unc *UserNoteCreate) SetSymbolID(i int) *UserNoteCreate {
	unc.mutation.SetSymbolID(i)
	return unc
}

// SetNote sets the "note" field.
func (unc *UserNoteCreate) SetNote(s string) *UserNoteCreate {
	unc.mutation.SetNote(s)
	return unc
}

// SetCreatedAt sets the "created_at" field.
func (unc *UserNoteCreate) SetCreatedAt(t time.Time) *UserNoteCreate {
	unc.mutation.SetCreatedAt(t)
	return unc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (unc *UserNoteCreate) SetNillableCreatedAt(t *time.Time) *UserNoteCreate {
	if t != nil {
		unc.SetCreatedAt(*t)
	}
	return unc
}

// SetUpdatedAt sets the "updated_at" field.
func (unc *UserNoteCreate) SetUpdatedAt(t time.Time) *UserNoteCreate {
	unc.mutation.SetUpdatedAt(t)
	return unc
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (unc *UserNoteCreate) SetNillableUpdatedAt(t *time.Time) *UserNoteCreate {
	if t != nil {
		unc.SetUpdatedAt(*t)
	}
	return unc
}

// Mutation returns the UserNoteMutation object of the builder.
func (unc *UserNoteCreate) Mutation() *UserNoteMutation {
	return unc.mutation
}

// Save creates the UserNote in the database.
func (unc *UserNoteCreate) Save(ctx context.Context) (*UserNote, error) {
	unc.defaults()
	return withHooks(ctx, unc.sqlSave, unc.mutation, unc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (unc *UserNoteCreate) SaveX(ctx context.Context) *UserNote {
	v, err := unc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (unc *UserNoteCreate) Exec(ctx context.Context) error {
	_, err := unc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (unc *UserNoteCreate) ExecX(ctx context.Context) {
	if err := unc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (unc *UserNoteCreate) defaults() {
	if _, ok := unc.mutation.CreatedAt(); !ok {
		v := usernote.DefaultCreatedAt()
		unc.mutation.SetCreatedAt(v)
	}
	if _, ok := unc.mutation.UpdatedAt(); !ok {
		v := usernote.DefaultUpdatedAt()
		unc.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (unc *UserNoteCreate) check() error {
	if _, ok := unc.mutation.SymbolID(); !ok {
		return &ValidationError{Name: "symbol_id", err: errors.New(`ent: missing required field "UserNote.symbol_id"`)}
	}
	if _, ok := unc.mutation.Note(); !ok {
		return &ValidationError{Name: "note", err: errors.New(`ent: missing required field "UserNote.note"`)}
	}
	if v, ok := unc.mutation.Note(); ok {
		if err := usernote.NoteValidator(v); err != nil {
			return &ValidationError{Name: "note", err: fmt.Errorf(`ent: validator failed for field "UserNote.note": %w`, err)}
		}
	}
	if _, ok := unc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "UserNote.created_at"`)}
	}
	if _, ok := unc.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "UserNote.updated_at"`)}
	}
	return nil
}

func (unc *UserNoteCreate) sqlSave(ctx context.Context) (*UserNote, error) {
	if err := unc.check(); err != nil {
		return nil, err
	}
	_node, _spec := unc.createSpec()
	if err := sqlgraph.CreateNode(ctx, unc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	unc.mutation.id = &_node.ID
	unc.mutation.done = true
	return _node, nil
}

func (unc *UserNoteCreate) createSpec() (*UserNote, *sqlgraph.CreateSpec) {
	var (
		_node = &UserNote{config: unc.config}
		_spec = sqlgraph.NewCreateSpec(usernote.Table, sqlgraph.NewFieldSpec(usernote.FieldID, field.TypeInt))
	)
	if value, ok := unc.mutation.SymbolID(); ok {
		_spec.SetField(usernote.FieldSymbolID, field.TypeInt, value)
		_node.SymbolID = value
	}
	if value, ok := unc.mutation.Note(); ok {
		_spec.SetField(usernote.FieldNote, field.TypeString, value)
		_node.Note = value
	}
	if value, ok := unc.mutation.CreatedAt(); ok {
		_spec.SetField(usernote.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := unc.mutation.UpdatedAt(); ok {
		_spec.SetField(usernote.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// UserNoteCreateBulk is the builder for creating many UserNote entities in bulk.
type UserNoteCreateBulk struct {
	config
	err      error
	builders []*UserNoteCreate
}

// Save creates the UserNote entities in the database.
func (uncb *UserNoteCreateBulk) Save(ctx context.Context) ([]*UserNote, error) {
	if uncb.err != nil {
		return nil, uncb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(uncb.builders))
	nodes := make([]*UserNote, len(uncb.builders))
	mutators := make([]Mutator, len(uncb.builders))
	for i := range uncb.builders {
		func(i int, root context.Context) {
			builder := uncb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UserNoteMutation)
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
					_, err = mutators[i+1].Mutate(root, uncb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, uncb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, uncb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (uncb *UserNoteCreateBulk) SaveX(ctx context.Context) []*UserNote {
	v, err := uncb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (uncb *UserNoteCreateBulk) Exec(ctx context.Context) error {
	_, err := uncb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (uncb *UserNoteCreateBulk) ExecX(ctx context.Context) {
	if err := uncb.Exec(ctx); err != nil {
		panic(err)
	}
}
