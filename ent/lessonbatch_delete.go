// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/kanado/ent/lessonbatch"
	"github.com/abhisek/kanado/ent/predicate"
)

// LessonBatchDelete is the builder for deleting a LessonBatch entity.
type LessonBatchDelete struct {
	config
	hooks    []Hook
	mutation *LessonBatchMutation
}

// Where appends a list predicates to the LessonBatchDelete builder.
func (lbd *LessonBatchDelete) Where(ps ...predicate.LessonBatch) *LessonBatchDelete {
	lbd.mutation.Where(ps...)
	return lbd
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (lbd *LessonBatchDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, lbd.sqlExec, lbd.mutation, lbd.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (lbd *LessonBatchDelete) ExecX(ctx context.Context) int {
	n, err := lbd.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (lbd *LessonBatchDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(lessonbatch.Table, sqlgraph.NewFieldSpec(lessonbatch.FieldID, field.TypeInt))
	if ps := lbd.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, lbd.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	lbd.mutation.done = true
	return affected, err
}

// LessonBatchDeleteOne is the builder for deleting a single LessonBatch entity.
type LessonBatchDeleteOne struct {
	lbd *LessonBatchDelete
}

// Where appends a list predicates to the LessonBatchDelete builder.
func (lbdo *LessonBatchDeleteOne) Where(ps ...predicate.LessonBatch) *LessonBatchDeleteOne {
	lbdo.lbd.mutation.Where(ps...)
	return lbdo
}

// Exec executes the deletion query.
func (lbdo *LessonBatchDeleteOne) Exec(ctx context.Context) error {
	n, err := lbdo.lbd.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{lessonbatch.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (lbdo *LessonBatchDeleteOne) ExecX(ctx context.Context) {
	if err := lbdo.Exec(ctx); err != nil {
		panic(err)
	}
}
