// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/kanado/ent/predicate"
	"github.com/abhisek/kanado/ent/usernote"
)

// UserNoteDelete is the builder for deleting a UserNote entity.
type UserNoteDelete struct {
	config
	hooks    []Hook
	mutation *UserNoteMutation
}

// Where appends a list predicates to the UserNoteDelete builder.
func (und *UserNoteDelete) Where(ps ...predicate.UserNote) *UserNoteDelete {
	und.mutation.Where(ps...)
	return und
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (und *UserNoteDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, und.sqlExec, und.mutation, und.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (und *UserNoteDelete) ExecX(ctx context.Context) int {
	n, err := und.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (und *UserNoteDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(usernote.Table, sqlgraph.NewFieldSpec(usernote.FieldID, field.TypeInt))
	if ps := und.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, und.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	und.mutation.done = true
	return affected, err
}

// UserNoteDeleteOne is the builder for deleting a single UserNote entity.
type UserNoteDeleteOne struct {
	und *UserNoteDelete
}

// Where appends a list predicates to the UserNoteDelete builder.
func (undo *UserNoteDeleteOne) Where(ps ...predicate.UserNote) *UserNoteDeleteOne {
	undo.und.mutation.Where(ps...)
	return undo
}

// Exec executes the deletion query.
func (undo *UserNoteDeleteOne) Exec(ctx context.Context) error {
	n, err := undo.und.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{usernote.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (undo *UserNoteDeleteOne) ExecX(ctx context.Context) {
	if err := undo.Exec(ctx); err != nil {
		panic(err)
	}
}
