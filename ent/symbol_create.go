// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/kanado/ent/symbol"
)

// SymbolCreate is the builder for creating a Symbol entity.
type SymbolCreate struct {
	config
	mutation *SymbolMutation
	hooks    []Hook
}

// SetGlyph sets the "glyph" field.
func (sc *SymbolCreate) SetGlyph(s string) *SymbolCreate {
	sc.mutation.SetGlyph(s)
	return sc
}

// SetRomaji sets the "romaji" field.
func (sc *SymbolCreate) SetRomaji(s string) *SymbolCreate {
	sc.mutation.SetRomaji(s)
	return sc
}

// SetKind sets the "kind" field.
func (sc *SymbolCreate) SetKind(s symbol.Kind) *SymbolCreate {
	sc.mutation.SetKind(s)
	return sc
}

// SetBatchNumber sets the "batch_number" field.
func (sc *SymbolCreate) SetBatchNumber(i int) *SymbolCreate {
	sc.mutation.SetBatchNumber(i)
	return sc
}

// SetCreatedAt sets the "created_at" field.
func (sc *SymbolCreate) SetCreatedAt(t time.Time) *SymbolCreate {
	sc.mutation.SetCreatedAt(t)
	return sc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (sc *SymbolCreate) SetNillableCreatedAt(t *time.Time) *SymbolCreate {
	if t != nil {
		sc.SetCreatedAt(*t)
	}
	return sc
}

// Mutation returns the SymbolMutation object of the builder.
func (sc *SymbolCreate) Mutation() *SymbolMutation {
	return sc.mutation
}

// Save creates the Symbol in the database.
func (sc *SymbolCreate) Save(ctx context.Context) (*Symbol, error) {
	sc.defaults()
	return withHooks(ctx, sc.sqlSave, sc.mutation, sc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (sc *SymbolCreate) SaveX(ctx context.Context) *Symbol {
	v, err := sc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (sc *SymbolCreate) Exec(ctx context.Context) error {
	_, err := sc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (sc *SymbolCreate) ExecX(ctx context.Context) {
	if err := sc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (sc *SymbolCreate) defaults() {
	if _, ok := sc.mutation.CreatedAt(); !ok {
		v := symbol.DefaultCreatedAt()
		sc.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (sc *SymbolCreate) check() error {
	if _, ok := sc.mutation.Glyph(); !ok {
		return &ValidationError{Name: "glyph", err: errors.New(`ent: missing required field "Symbol.glyph"`)}
	}
	if v, ok := sc.mutation.Glyph(); ok {
		if err := symbol.GlyphValidator(v); err != nil {
			return &ValidationError{Name: "glyph", err: fmt.Errorf(`ent: validator failed for field "Symbol.glyph": %w`, err)}
		}
	}
	if _, ok := sc.mutation.Romaji(); !ok {
		return &ValidationError{Name: "romaji", err: errors.New(`ent: missing required field "Symbol.romaji"`)}
	}
	if v, ok := sc.mutation.Romaji(); ok {
		if err := symbol.RomajiValidator(v); err != nil {
			return &ValidationError{Name: "romaji", err: fmt.Errorf(`ent: validator failed for field "Symbol.romaji": %w`, err)}
		}
	}
	if _, ok := sc.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "Symbol.kind"`)}
	}
	if v, ok := sc.mutation.Kind(); ok {
		if err := symbol.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "Symbol.kind": %w`, err)}
		}
	}
	if _, ok := sc.mutation.BatchNumber(); !ok {
		return &ValidationError{Name: "batch_number", err: errors.New(`ent: missing required field "Symbol.batch_number"`)}
	}
	if v, ok := sc.mutation.BatchNumber(); ok {
		if err := symbol.BatchNumberValidator(v); err != nil {
			return &ValidationError{Name: "batch_number", err: fmt.Errorf(`ent: validator failed for field "Symbol.batch_number": %w`, err)}
		}
	}
	if _, ok := sc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Symbol.created_at"`)}
	}
	return nil
}

func (sc *SymbolCreate) sqlSave(ctx context.Context) (*Symbol, error) {
	if err := sc.check(); err != nil {
		return nil, err
	}
	_node, _spec := sc.createSpec()
	if err := sqlgraph.CreateNode(ctx, sc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	sc.mutation.id = &_node.ID
	sc.mutation.done = true
	return _node, nil
}

func (sc *SymbolCreate) createSpec() (*Symbol, *sqlgraph.CreateSpec) {
	var (
		_node = &Symbol{config: sc.config}
		_spec = sqlgraph.NewCreateSpec(symbol.Table, sqlgraph.NewFieldSpec(symbol.FieldID, field.TypeInt))
	)
	if value, ok := sc.mutation.Glyph(); ok {
		_spec.SetField(symbol.FieldGlyph, field.TypeString, value)
		_node.Glyph = value
	}
	if value, ok := sc.mutation.Romaji(); ok {
		_spec.SetField(symbol.FieldRomaji, field.TypeString, value)
		_node.Romaji = value
	}
	if value, ok := sc.mutation.Kind(); ok {
		_spec.SetField(symbol.FieldKind, field.TypeEnum, value)
		_node.Kind = value
	}
	if value, ok := sc.mutation.BatchNumber(); ok {
		_spec.SetField(symbol.FieldBatchNumber, field.TypeInt, value)
		_node.BatchNumber = value
	}
	if value, ok := sc.mutation.CreatedAt(); ok {
		_spec.SetField(symbol.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// SymbolCreateBulk is the builder for creating many Symbol entities in bulk.
type SymbolCreateBulk struct {
	config
	err      error
	builders []*SymbolCreate
}

// Save creates the Symbol entities in the database.
func (scb *SymbolCreateBulk) Save(ctx context.Context) ([]*Symbol, error) {
	if scb.err != nil {
		return nil, scb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(scb.builders))
	nodes := make([]*Symbol, len(scb.builders))
	mutators := make([]Mutator, len(scb.builders))
	for i := range scb.builders {
		func(i int, root context.Context) {
			builder := scb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SymbolMutation)
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
					_, err = mutators[i+1].Mutate(root, scb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, scb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, scb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (scb *SymbolCreateBulk) SaveX(ctx context.Context) []*Symbol {
	v, err := scb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (scb *SymbolCreateBulk) Exec(ctx context.Context) error {
	_, err := scb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (scb *SymbolCreateBulk) ExecX(ctx context.Context) {
	if err := scb.Exec(ctx); err != nil {
		panic(err)
	}
}
