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
	"github.com/abhisek/kanado/ent/lessonbatch"
	"github.com/abhisek/kanado/ent/predicate"
)

// LessonBatchUpdate is the builder for updating LessonBatch entities.
type LessonBatchUpdate struct {
	config
	hooks    []Hook
	mutation *LessonBatchMutation
}

// Where appends a list predicates to the LessonBatchUpdate builder.
func (lbu *LessonBatchUpdate) Where(ps ...predicate.LessonBatch) *LessonBatchUpdate {
	lbu.mutation.Where(ps...)
	return lbu
}

// SetName sets the "name" field.
func (lbu *LessonBatchUpdate) SetName(s string) *LessonBatchUpdate {
	lbu.mutation.SetName(s)
	return lbu
}

// SetNillableName sets the "name" field if the given value is not nil.
func (lbu *LessonBatchUpdate) SetNillableName(s *string) *LessonBatchUpdate {
	if s != nil {
		lbu.SetName(*s)
	}
	return lbu
}

// SetDescription sets the "description" field.
func (lbu *LessonBatchUpdate) SetDescription(s string) *LessonBatchUpdate {
	lbu.mutation.SetDescription(s)
	return lbu
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (lbu *LessonBatchUpdate) SetNillableDescription(s *string) *LessonBatchUpdate {
	if s != nil {
		lbu.SetDescription(*s)
	}
	return lbu
}

// SetCompleted sets the "completed" field.
func (lbu *LessonBatchUpdate) SetCompleted(b bool) *LessonBatchUpdate {
	lbu.mutation.SetCompleted(b)
	return lbu
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (lbu *LessonBatchUpdate) SetNillableCompleted(b *bool) *LessonBatchUpdate {
	if b != nil {
		lbu.SetCompleted(*b)
	}
	return lbu
}

// SetCompletedAt sets the "completed_at" field.
func (lbu *LessonBatchUpdate) SetCompletedAt(t time.Time) *LessonBatchUpdate {
	lbu.mutation.SetCompletedAt(t)
	return lbu
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (lbu *LessonBatchUpdate) SetNillableCompletedAt(t *time.Time) *LessonBatchUpdate {
	if t != nil {
		lbu.SetCompletedAt(*t)
	}
	return lbu
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (lbu *LessonBatchUpdate) ClearCompletedAt() *LessonBatchUpdate {
	lbu.mutation.ClearCompletedAt()
	return lbu
}

// Mutation returns the LessonBatchMutation object of the builder.
func (lbu *LessonBatchUpdate) Mutation() *LessonBatchMutation {
	return lbu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (lbu *LessonBatchUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, lbu.sqlSave, lbu.mutation, lbu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (lbu *LessonBatchUpdate) SaveX(ctx context.Context) int {
	affected, err := lbu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (lbu *LessonBatchUpdate) Exec(ctx context.Context) error {
	_, err := lbu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (lbu *LessonBatchUpdate) ExecX(ctx context.Context) {
	if err := lbu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (lbu *LessonBatchUpdate) check() error {
	if v, ok := lbu.mutation.Name(); ok {
		if err := lessonbatch.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "LessonBatch.name": %w`, err)}
		}
	}
	if v, ok := lbu.mutation.Description(); ok {
		if err := lessonbatch.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "LessonBatch.description": %w`, err)}
		}
	}
	return nil
}

func (lbu *LessonBatchUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := lbu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(lessonbatch.Table, lessonbatch.Columns, sqlgraph.NewFieldSpec(lessonbatch.FieldID, field.TypeInt))
	if ps := lbu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := lbu.mutation.Name(); ok {
		_spec.SetField(lessonbatch.FieldName, field.TypeString, value)
	}
	if value, ok := lbu.mutation.Description(); ok {
		_spec.SetField(lessonbatch.FieldDescription, field.TypeString, value)
	}
	if value, ok := lbu.mutation.Completed(); ok {
		_spec.SetField(lessonbatch.FieldCompleted, field.TypeBool, value)
	}
	if value, ok := lbu.mutation.CompletedAt(); ok {
		_spec.SetField(lessonbatch.FieldCompletedAt, field.TypeTime, value)
	}
	if lbu.mutation.CompletedAtCleared() {
		_spec.ClearField(lessonbatch.FieldCompletedAt, field.TypeTime)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, lbu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lessonbatch.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	lbu.mutation.done = true
	return n, nil
}

// LessonBatchUpdateOne is the builder for updating a single LessonBatch entity.
type LessonBatchUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LessonBatchMutation
}

// SetName sets the "name" field.
func (lbuo *LessonBatchUpdateOne) SetName(s string) *LessonBatchUpdateOne {
	lbuo.mutation.SetName(s)
	return lbuo
}

// SetNillableName sets the "name" field if the given value is not nil.
func (lbuo *LessonBatchUpdateOne) SetNillableName(s *string) *LessonBatchUpdateOne {
	if s != nil {
		lbuo.SetName(*s)
	}
	return lbuo
}

// SetDescription sets the "description" field.
func (lbuo *LessonBatchUpdateOne) SetDescription(s string) *LessonBatchUpdateOne {
	lbuo.mutation.SetDescription(s)
	return lbuo
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (lbuo *LessonBatchUpdateOne) SetNillableDescription(s *string) *LessonBatchUpdateOne {
	if s != nil {
		lbuo.SetDescription(*s)
	}
	return lbuo
}

// SetCompleted sets the "completed" field.
func (lbuo *LessonBatchUpdateOne) SetCompleted(b bool) *LessonBatchUpdateOne {
	lbuo.mutation.SetCompleted(b)
	return lbuo
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (lbuo *LessonBatchUpdateOne) SetNillableCompleted(b *bool) *LessonBatchUpdateOne {
	if b != nil {
		lbuo.SetCompleted(*b)
	}
	return lbuo
}

// SetCompletedAt sets the "completed_at" field.
func (lbuo *LessonBatchUpdateOne) SetCompletedAt(t time.Time) *LessonBatchUpdateOne {
	lbuo.mutation.SetCompletedAt(t)
	return lbuo
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (lbuo *LessonBatchUpdateOne) SetNillableCompletedAt(t *time.Time) *LessonBatchUpdateOne {
	if t != nil {
		lbuo.SetCompletedAt(*t)
	}
	return lbuo
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (lbuo *LessonBatchUpdateOne) ClearCompletedAt() *LessonBatchUpdateOne {
	lbuo.mutation.ClearCompletedAt()
	return lbuo
}

// Mutation returns the LessonBatchMutation object of the builder.
func (lbuo *LessonBatchUpdateOne) Mutation() *LessonBatchMutation {
	return lbuo.mutation
}

// Where appends a list predicates to the LessonBatchUpdate builder.
func (lbuo *LessonBatchUpdateOne) Where(ps ...predicate.LessonBatch) *LessonBatchUpdateOne {
	lbuo.mutation.Where(ps...)
	return lbuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (lbuo *LessonBatchUpdateOne) Select(field string, fields ...string) *LessonBatchUpdateOne {
	lbuo.fields = append([]string{field}, fields...)
	return lbuo
}

// Save executes the query and returns the updated LessonBatch entity.
func (lbuo *LessonBatchUpdateOne) Save(ctx context.Context) (*LessonBatch, error) {
	return withHooks(ctx, lbuo.sqlSave, lbuo.mutation, lbuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (lbuo *LessonBatchUpdateOne) SaveX(ctx context.Context) *LessonBatch {
	node, err := lbuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (lbuo *LessonBatchUpdateOne) Exec(ctx context.Context) error {
	_, err := lbuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (lbuo *LessonBatchUpdateOne) ExecX(ctx context.Context) {
	if err := lbuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (lbuo *LessonBatchUpdateOne) check() error {
	if v, ok := lbuo.mutation.Name(); ok {
		if err := lessonbatch.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "LessonBatch.name": %w`, err)}
		}
	}
	if v, ok := lbuo.mutation.Description(); ok {
		if err := lessonbatch.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "LessonBatch.description": %w`, err)}
		}
	}
	return nil
}

func (lbuo *LessonBatchUpdateOne) sqlSave(ctx context.Context) (_node *LessonBatch, err error) {
	if err := lbuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lessonbatch.Table, lessonbatch.Columns, sqlgraph.NewFieldSpec(lessonbatch.FieldID, field.TypeInt))
	id, ok := lbuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LessonBatch.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := lbuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, lessonbatch.FieldID)
		for _, f := range fields {
			if !lessonbatch.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != lessonbatch.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := lbuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := lbuo.mutation.Name(); ok {
		_spec.SetField(lessonbatch.FieldName, field.TypeString, value)
	}
	if value, ok := lbuo.mutation.Description(); ok {
		_spec.SetField(lessonbatch.FieldDescription, field.TypeString, value)
	}
	if value, ok := lbuo.mutation.Completed(); ok {
		_spec.SetField(lessonbatch.FieldCompleted, field.TypeBool, value)
	}
	if value, ok := lbuo.mutation.CompletedAt(); ok {
		_spec.SetField(lessonbatch.FieldCompletedAt, field.TypeTime, value)
	}
	if lbuo.mutation.CompletedAtCleared() {
		_spec.ClearField(lessonbatch.FieldCompletedAt, field.TypeTime)
	}
	_node = &LessonBatch{config: lbuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, lbuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lessonbatch.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	lbuo.mutation.done = true
	return _node, nil
}
