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
	"github.com/abhisek/kanado/ent/reviewrecord"
)

// ReviewRecordUpdate is the builder for updating ReviewRecord entities.
type ReviewRecordUpdate struct {
	config
	hooks    []Hook
	mutation *ReviewRecordMutation
}

// Where appends a list predicates to the ReviewRecordUpdate builder.
func (rru *ReviewRecordUpdate) Where(ps ...predicate.ReviewRecord) *ReviewRecordUpdate {
	rru.mutation.Where(ps...)
	return rru
}

// SetStage sets the "stage" field.
func (rru *ReviewRecordUpdate) SetStage(i int) *ReviewRecordUpdate {
	rru.mutation.ResetStage()
	rru.mutation.SetStage(i)
	return rru
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (rru *ReviewRecordUpdate) SetNillableStage(i *int) *ReviewRecordUpdate {
	if i != nil {
		rru.SetStage(*i)
	}
	return rru
}

// AddStage adds i to the "stage" field.
func (rru *ReviewRecordUpdate) AddStage(i int) *ReviewRecordUpdate {
	rru.mutation.AddStage(i)
	return rru
}

// SetNextDue sets the "next_due" field.
func (rru *ReviewRecordUpdate) SetNextDue(t time.Time) *ReviewRecordUpdate {
	rru.mutation.SetNextDue(t)
	return rru
}

// SetNillableNextDue sets the "next_due" field if the given value is not nil.
func (rru *ReviewRecordUpdate) SetNillableNextDue(t *time.Time) *ReviewRecordUpdate {
	if t != nil {
		rru.SetNextDue(*t)
	}
	return rru
}

// SetCorrectCount sets the "correct_count" field.
func (rru *ReviewRecordUpdate) SetCorrectCount(i int) *ReviewRecordUpdate {
	rru.mutation.ResetCorrectCount()
	rru.mutation.SetCorrectCount(i)
	return rru
}

// SetNillableCorrectCount sets the "correct_count" field if the given value is not nil.
func (rru *ReviewRecordUpdate) SetNillableCorrectCount(i *int) *ReviewRecordUpdate {
	if i != nil {
		rru.SetCorrectCount(*i)
	}
	return rru
}

// AddCorrectCount adds i to the "correct_count" field.
func (rru *ReviewRecordUpdate) AddCorrectCount(i int) *ReviewRecordUpdate {
	rru.mutation.AddCorrectCount(i)
	return rru
}

// SetIncorrectCount sets the "incorrect_count" field.
func (rru *ReviewRecordUpdate) SetIncorrectCount(i int) *ReviewRecordUpdate {
	rru.mutation.ResetIncorrectCount()
	rru.mutation.SetIncorrectCount(i)
	return rru
}

// SetNillableIncorrectCount sets the "incorrect_count" field if the given value is not nil.
func (rru *ReviewRecordUpdate) SetNillableIncorrectCount(i *int) *ReviewRecordUpdate {
	if i != nil {
		rru.SetIncorrectCount(*i)
	}
	return rru
}

// AddIncorrectCount adds i to the "incorrect_count" field.
func (rru *ReviewRecordUpdate) AddIncorrectCount(i int) *ReviewRecordUpdate {
	rru.mutation.AddIncorrectCount(i)
	return rru
}

// SetLastReviewed sets the "last_reviewed" field.
func (rru *ReviewRecordUpdate) SetLastReviewed(t time.Time) *ReviewRecordUpdate {
	rru.mutation.SetLastReviewed(t)
	return rru
}

// SetNillableLastReviewed sets the "last_reviewed" field if the given value is not nil.
func (rru *ReviewRecordUpdate) SetNillableLastReviewed(t *time.Time) *ReviewRecordUpdate {
	if t != nil {
		rru.SetLastReviewed(*t)
	}
	return rru
}

// ClearLastReviewed clears the value of the "last_reviewed" field.
func (rru *ReviewRecordUpdate) ClearLastReviewed() *ReviewRecordUpdate {
	rru.mutation.ClearLastReviewed()
	return rru
}

// Mutation returns the ReviewRecordMutation object of the builder.
func (rru *ReviewRecordUpdate) Mutation() *ReviewRecordMutation {
	return rru.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (rru *ReviewRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, rru.sqlSave, rru.mutation, rru.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (rru *ReviewRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := rru.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (rru *ReviewRecordUpdate) Exec(ctx context.Context) error {
	_, err := rru.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (rru *ReviewRecordUpdate) ExecX(ctx context.Context) {
	if err := rru.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (rru *ReviewRecordUpdate) check() error {
	if v, ok := rru.mutation.Stage(); ok {
		if err := reviewrecord.StageValidator(v); err != nil {
			return &ValidationError{Name: "stage", err: fmt.Errorf(`ent: validator failed for field "ReviewRecord.stage": %w`, err)}
		}
	}
	if v, ok := rru.mutation.CorrectCount(); ok {
		if err := reviewrecord.CorrectCountValidator(v); err != nil {
			return &ValidationError{Name: "correct_count", err: fmt.Errorf(`ent: validator failed for field "ReviewRecord.correct_count": %w`, err)}
		}
	}
	if v, ok := rru.mutation.IncorrectCount(); ok {
		if err := reviewrecord.IncorrectCountValidator(v); err != nil {
			return &ValidationError{Name: "incorrect_count", err: fmt.Errorf(`ent: validator failed for field "ReviewRecord.incorrect_count": %w`, err)}
		}
	}
	return nil
}

func (rru *ReviewRecordUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := rru.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(reviewrecord.Table, reviewrecord.Columns, sqlgraph.NewFieldSpec(reviewrecord.FieldID, field.TypeInt))
	if ps := rru.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := rru.mutation.Stage(); ok {
		_spec.SetField(reviewrecord.FieldStage, field.TypeInt, value)
	}
	if value, ok := rru.mutation.AddedStage(); ok {
		_spec.AddField(reviewrecord.FieldStage, field.TypeInt, value)
	}
	if value, ok := rru.mutation.NextDue(); ok {
		_spec.SetField(reviewrecord.FieldNextDue, field.TypeTime, value)
	}
	if value, ok := rru.mutation.CorrectCount(); ok {
		_spec.SetField(reviewrecord.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := rru.mutation.AddedCorrectCount(); ok {
		_spec.AddField(reviewrecord.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := rru.mutation.IncorrectCount(); ok {
		_spec.SetField(reviewrecord.FieldIncorrectCount, field.TypeInt, value)
	}
	if value, ok := rru.mutation.AddedIncorrectCount(); ok {
		_spec.AddField(reviewrecord.FieldIncorrectCount, field.TypeInt, value)
	}
	if value, ok := rru.mutation.LastReviewed(); ok {
		_spec.SetField(reviewrecord.FieldLastReviewed, field.TypeTime, value)
	}
	if rru.mutation.LastReviewedCleared() {
		_spec.ClearField(reviewrecord.FieldLastReviewed, field.TypeTime)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, rru.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reviewrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	rru.mutation.done = true
	return n, nil
}

// ReviewRecordUpdateOne is the builder for updating a single ReviewRecord entity.
type ReviewRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReviewRecordMutation
}

// SetStage sets the "stage" field.
func (rruo *ReviewRecordUpdateOne) SetStage(i int) *ReviewRecordUpdateOne {
	rruo.mutation.ResetStage()
	rruo.mutation.SetStage(i)
	return rruo
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (rruo *ReviewRecordUpdateOne) SetNillableStage(i *int) *ReviewRecordUpdateOne {
	if i != nil {
		rruo.SetStage(*i)
	}
	return rruo
}

// AddStage adds i to the "stage" field.
func (rruo *ReviewRecordUpdateOne) AddStage(i int) *ReviewRecordUpdateOne {
	rruo.mutation.AddStage(i)
	return rruo
}

// SetNextDue sets the "next_due" field.
func (rruo *ReviewRecordUpdateOne) SetNextDue(t time.Time) *ReviewRecordUpdateOne {
	rruo.mutation.SetNextDue(t)
	return rruo
}

// SetNillableNextDue sets the "next_due" field if the given value is not nil.
func (rruo *ReviewRecordUpdateOne) SetNillableNextDue(t *time.Time) *ReviewRecordUpdateOne {
	if t != nil {
		rruo.SetNextDue(*t)
	}
	return rruo
}

// SetCorrectCount sets the "correct_count" field.
func (rruo *ReviewRecordUpdateOne) SetCorrectCount(i int) *ReviewRecordUpdateOne {
	rruo.mutation.ResetCorrectCount()
	rruo.mutation.SetCorrectCount(i)
	return rruo
}

// SetNillableCorrectCount sets the "correct_count" field if the given value is not nil.
func (rruo *ReviewRecordUpdateOne) SetNillableCorrectCount(i *int) *ReviewRecordUpdateOne {
	if i != nil {
		rruo.SetCorrectCount(*i)
	}
	return rruo
}

// AddCorrectCount adds i to the "correct_count" field.
func (rruo *ReviewRecordUpdateOne) AddCorrectCount(i int) *ReviewRecordUpdateOne {
	rruo.mutation.AddCorrectCount(i)
	return rruo
}

// SetIncorrectCount sets the "incorrect_count" field.
func (rruo *ReviewRecordUpdateOne) SetIncorrectCount(i int) *ReviewRecordUpdateOne {
	rruo.mutation.ResetIncorrectCount()
	rruo.mutation.SetIncorrectCount(i)
	return rruo
}

// SetNillableIncorrectCount sets the "incorrect_count" field if the given value is not nil.
func (rruo *ReviewRecordUpdateOne) SetNillableIncorrectCount(i *int) *ReviewRecordUpdateOne {
	if i != nil {
		rruo.SetIncorrectCount(*i)
	}
	return rruo
}

// AddIncorrectCount adds i to the "incorrect_count" field.
func (rruo *ReviewRecordUpdateOne) AddIncorrectCount(i int) *ReviewRecordUpdateOne {
	rruo.mutation.AddIncorrectCount(i)
	return rruo
}

// SetLastReviewed sets the "last_reviewed" field.
func (rruo *ReviewRecordUpdateOne) SetLastReviewed(t time.Time) *ReviewRecordUpdateOne {
	rruo.mutation.SetLastReviewed(t)
	return rruo
}

// SetNillableLastReviewed sets the "last_reviewed" field if the given value is not nil.
func (rruo *ReviewRecordUpdateOne) SetNillableLastReviewed(t *time.Time) *ReviewRecordUpdateOne {
	if t != nil {
		rruo.SetLastReviewed(*t)
	}
	return rruo
}

// ClearLastReviewed clears the value of the "last_reviewed" field.
func (rruo *ReviewRecordUpdateOne) ClearLastReviewed() *ReviewRecordUpdateOne {
	rruo.mutation.ClearLastReviewed()
	return rruo
}

// Mutation returns the ReviewRecordMutation object of the builder.
func (rruo *ReviewRecordUpdateOne) Mutation() *ReviewRecordMutation {
	return rruo.mutation
}

// Where appends a list predicates to the ReviewRecordUpdate builder.
func (rruo *ReviewRecordUpdateOne) Where(ps ...predicate.ReviewRecord) *ReviewRecordUpdateOne {
	rruo.mutation.Where(ps...)
	return rruo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (rruo *ReviewRecordUpdateOne) Select(field string, fields ...string) *ReviewRecordUpdateOne {
	rruo.fields = append([]string{field}, fields...)
	return rruo
}

// Save executes the query and returns the updated ReviewRecord entity.
func (rruo *ReviewRecordUpdateOne) Save(ctx context.Context) (*ReviewRecord, error) {
	return withHooks(ctx, rruo.sqlSave, rruo.mutation, rruo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (rruo *ReviewRecordUpdateOne) SaveX(ctx context.Context) *ReviewRecord {
	node, err := rruo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (rruo *ReviewRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := rruo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (rruo *ReviewRecordUpdateOne) ExecX(ctx context.Context) {
	if err := rruo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (rruo *ReviewRecordUpdateOne) check() error {
	if v, ok := rruo.mutation.Stage(); ok {
		if err := reviewrecord.StageValidator(v); err != nil {
			return &ValidationError{Name: "stage", err: fmt.Errorf(`ent: validator failed for field "ReviewRecord.stage": %w`, err)}
		}
	}
	if v, ok := rruo.mutation.CorrectCount(); ok {
		if err := reviewrecord.CorrectCountValidator(v); err != nil {
			return &ValidationError{Name: "correct_count", err: fmt.Errorf(`ent: validator failed for field "ReviewRecord.correct_count": %w`, err)}
		}
	}
	if v, ok := rruo.mutation.IncorrectCount(); ok {
		if err := reviewrecord.IncorrectCountValidator(v); err != nil {
			return &ValidationError{Name: "incorrect_count", err: fmt.Errorf(`ent: validator failed for field "ReviewRecord.incorrect_count": %w`, err)}
		}
	}
	return nil
}

func (rruo *ReviewRecordUpdateOne) sqlSave(ctx context.Context) (_node *ReviewRecord, err error) {
	if err := rruo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reviewrecord.Table, reviewrecord.Columns, sqlgraph.NewFieldSpec(reviewrecord.FieldID, field.TypeInt))
	id, ok := rruo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ReviewRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := rruo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, reviewrecord.FieldID)
		for _, f := range fields {
			if !reviewrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != reviewrecord.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := rruo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := rruo.mutation.Stage(); ok {
		_spec.SetField(reviewrecord.FieldStage, field.TypeInt, value)
	}
	if value, ok := rruo.mutation.AddedStage(); ok {
		_spec.AddField(reviewrecord.FieldStage, field.TypeInt, value)
	}
	if value, ok := rruo.mutation.NextDue(); ok {
		_spec.SetField(reviewrecord.FieldNextDue, field.TypeTime, value)
	}
	if value, ok := rruo.mutation.CorrectCount(); ok {
		_spec.SetField(reviewrecord.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := rruo.mutation.AddedCorrectCount(); ok {
		_spec.AddField(reviewrecord.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := rruo.mutation.IncorrectCount(); ok {
		_spec.SetField(reviewrecord.FieldIncorrectCount, field.TypeInt, value)
	}
	if value, ok := rruo.mutation.AddedIncorrectCount(); ok {
		_spec.AddField(reviewrecord.FieldIncorrectCount, field.TypeInt, value)
	}
	if value, ok := rruo.mutation.LastReviewed(); ok {
		_spec.SetField(reviewrecord.FieldLastReviewed, field.TypeTime, value)
	}
	if rruo.mutation.LastReviewedCleared() {
		_spec.ClearField(reviewrecord.FieldLastReviewed, field.TypeTime)
	}
	_node = &ReviewRecord{config: rruo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, rruo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reviewrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	rruo.mutation.done = true
	return _node, nil
}
