// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/kanado/ent/predicate"
	"github.com/abhisek/kanado/ent/usernote"
)

// UserNoteUpdate is the builder for updating UserNote entities.
type UserNoteUpdate struct {
	config
	hooks    []Hook
	mutation *UserNoteMutation
}

// Where appends a list predicates to the UserNoteUpdate builder.
func (unu *UserNoteUpdate) Where(ps ...predicate.UserNote) *UserNoteUpdate {
	unu.mutation.Where(ps...)
	return unu
}

// SetNote sets the "note" field.
func (unu *UserNoteUpdate) SetNote(s string) *UserNoteUpdate {
	unu.mutation.SetNote(s)
	return unu
}

// SetNillableNote sets the "note" field if the given value is not nil.
func (unu *UserNoteUpdate) SetNillableNote(s *string) *UserNoteUpdate {
	if s != nil {
		unu.SetNote(*s)
	}
	return unu
}

// SetUpdatedAt sets the "updated_at" field.
func (unu *UserNoteUpdate) SetUpdatedAt(t time.Time) *UserNoteUpdate {
	unu.mutation.SetUpdatedAt(t)
	return unu
}

// Mutation returns the UserNoteMutation object of the builder.
func (unu *UserNoteUpdate) Mutation() *UserNoteMutation {
	return unu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (unu *UserNoteUpdate) Save(ctx context.Context) (int, error) {
	unu.defaults()
	return withHooks(ctx, unu.sqlSave, unu.mutation, unu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (unu *UserNoteUpdate) SaveX(ctx context.Context) int {
	affected, err := unu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (unu *UserNoteUpdate) Exec(ctx context.Context) error {
	_, err := unu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (unu *UserNoteUpdate) ExecX(ctx context.Context) {
	if err := unu.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (unu *UserNoteUpdate) defaults() {
	if _, ok := unu.mutation.UpdatedAt(); !ok {
		v := usernote.UpdateDefaultUpdatedAt()
		unu.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (unu *UserNoteUpdate) check() error {
	if v, ok := unu.mutation.Note(); ok {
		if err := usernote.NoteValidator(v); err != nil {
			return &ValidationError{Name: "note", err: fmt.Errorf(`ent: validator failed for field "UserNote.note": %w`, err)}
		}
	}
	return nil
}

func (unu *UserNoteUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := unu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(usernote.Table, usernote.Columns, sqlgraph.NewFieldSpec(usernote.FieldID, field.TypeInt))
	if ps := unu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := unu.mutation.Note(); ok {
		_spec.SetField(usernote.FieldNote, field.TypeString, value)
	}
	if value, ok := unu.mutation.UpdatedAt(); ok {
		_spec.SetField(usernote.FieldUpdatedAt, field.TypeTime, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, unu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{usernote.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	unu.mutation.done = true
	return n, nil
}

// UserNoteUpdateOne is the builder for updating a single UserNote entity.
type UserNoteUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UserNoteMutation
}

// SetNote sets the "note" field.
func (unuo *UserNoteUpdateOne) SetNote(s string) *UserNoteUpdateOne {
	unuo.mutation.SetNote(s)
	return unuo
}

// SetNillableNote sets the "note" field if the given value is not nil.
func (unuo *UserNoteUpdateOne) SetNillableNote(s *string) *UserNoteUpdateOne {
	if s != nil {
		unuo.SetNote(*s)
	}
	return unuo
}

// SetUpdatedAt sets the "updated_at" field.
func (unuo *UserNoteUpdateOne) SetUpdatedAt(t time.Time) *UserNoteUpdateOne {
	unuo.mutation.SetUpdatedAt(t)
	return unuo
}

// Mutation returns the UserNoteMutation object of the builder.
func (unuo *UserNoteUpdateOne) Mutation() *UserNoteMutation {
	return unuo.mutation
}

// Where appends a list predicates to the UserNoteUpdate builder.
func (unuo *UserNoteUpdateOne) Where(ps ...predicate.UserNote) *UserNoteUpdateOne {
	unuo.mutation.Where(ps...)
	return unuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (unuo *UserNoteUpdateOne) Select(field string, fields ...string) *UserNoteUpdateOne {
	unuo.fields = append([]string{field}, fields...)
	return unuo
}

// Save executes the query and returns the updated UserNote entity.
func (unuo *UserNoteUpdateOne) Save(ctx context.Context) (*UserNote, error) {
	unuo.defaults()
	return withHooks(ctx, unuo.sqlSave, unuo.mutation, unuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (unuo *UserNoteUpdateOne) SaveX(ctx context.Context) *UserNote {
	node, err := unuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (unuo *UserNoteUpdateOne) Exec(ctx context.Context) error {
	_, err := unuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (unuo *UserNoteUpdateOne) ExecX(ctx context.Context) {
	if err := unuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (unuo *UserNoteUpdateOne) defaults() {
	if _, ok := unuo.mutation.UpdatedAt(); !ok {
		v := usernote.UpdateDefaultUpdatedAt()
		unuo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (unuo *UserNoteUpdateOne) check() error {
	if v, ok := unuo.mutation.Note(); ok {
		if err := usernote.NoteValidator(v); err != nil {
			return &ValidationError{Name: "note", err: fmt.Errorf(`ent: validator failed for field "UserNote.note": %w`, err)}
		}
	}
	return nil
}

func (unuo *UserNoteUpdateOne) sqlSave(ctx context.Context) (_node *UserNote, err error) {
	if err := unuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(usernote.Table, usernote.Columns, sqlgraph.NewFieldSpec(usernote.FieldID, field.TypeInt))
	id, ok := unuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "UserNote.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := unuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, usernote.FieldID)
		for _, f := range fields {
			if !usernote.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != usernote.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := unuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := unuo.mutation.Note(); ok {
		_spec.SetField(usernote.FieldNote, field.TypeString, value)
	}
	if value, ok := unuo.mutation.UpdatedAt(); ok {
		_spec.SetField(usernote.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &UserNote{config: unuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, unuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{usernote.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	unuo.mutation.done = true
	return _node, nil
}
