// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/kanado/ent/lessonbatch"
	"github.com/abhisek/kanado/ent/predicate"
)

// LessonBatchQuery is the builder for querying LessonBatch entities.
type LessonBatchQuery struct {
	config
	ctx        *QueryContext
	order      []lessonbatch.OrderOption
	inters     []Interceptor
	predicates []predicate.LessonBatch
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the LessonBatchQuery builder.
func (lbq *LessonBatchQuery) Where(ps ...predicate.LessonBatch) *LessonBatchQuery {
	lbq.predicates = append(lbq.predicates, ps...)
	return lbq
}

// Limit the number of records to be returned by this query.
func (lbq *LessonBatchQuery) Limit(limit int) *LessonBatchQuery {
	lbq.ctx.Limit = &limit
	return lbq
}

// Offset to start from.
func (lbq *LessonBatchQuery) Offset(offset int) *LessonBatchQuery {
	lbq.ctx.Offset = &offset
	return lbq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (lbq *LessonBatchQuery) Unique(unique bool) *LessonBatchQuery {
	lbq.ctx.Unique = &unique
	return lbq
}

// Order specifies how the records should be ordered.
func (lbq *LessonBatchQuery) Order(o ...lessonbatch.OrderOption) *LessonBatchQuery {
	lbq.order = append(lbq.order, o...)
	return lbq
}

// First returns the first LessonBatch entity from the query.
// Returns a *NotFoundError when no LessonBatch was found.
func (lbq *LessonBatchQuery) First(ctx context.Context) (*LessonBatch, error) {
	nodes, err := lbq.Limit(1).All(setContextOp(ctx, lbq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{lessonbatch.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (lbq *LessonBatchQuery) FirstX(ctx context.Context) *LessonBatch {
	node, err := lbq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first LessonBatch ID from the query.
// Returns a *NotFoundError when no LessonBatch ID was found.
func (lbq *LessonBatchQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = lbq.Limit(1).IDs(setContextOp(ctx, lbq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{lessonbatch.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (lbq *LessonBatchQuery) FirstIDX(ctx context.Context) int {
	id, err := lbq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single LessonBatch entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one LessonBatch entity is found.
// Returns a *NotFoundError when no LessonBatch entities are found.
func (lbq *LessonBatchQuery) Only(ctx context.Context) (*LessonBatch, error) {
	nodes, err := lbq.Limit(2).All(setContextOp(ctx, lbq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{lessonbatch.Label}
	default:
		return nil, &NotSingularError{lessonbatch.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (lbq *LessonBatchQuery) OnlyX(ctx context.Context) *LessonBatch {
	node, err := lbq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only LessonBatch ID in the query.
// Returns a *NotSingularError when more than one LessonBatch ID is found.
// Returns a *NotFoundError when no entities are found.
func (lbq *LessonBatchQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = lbq.Limit(2).IDs(setContextOp(ctx, lbq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{lessonbatch.Label}
	default:
		err = &NotSingularError{lessonbatch.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (lbq *LessonBatchQuery) OnlyIDX(ctx context.Context) int {
	id, err := lbq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of LessonBatches.
func (lbq *LessonBatchQuery) All(ctx context.Context) ([]*LessonBatch, error) {
	ctx = setContextOp(ctx, lbq.ctx, ent.OpQueryAll)
	if err := lbq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*LessonBatch, *LessonBatchQuery]()
	return withInterceptors[[]*LessonBatch](ctx, lbq, qr, lbq.inters)
}

// AllX is like All, but panics if an error occurs.
func (lbq *LessonBatchQuery) AllX(ctx context.Context) []*LessonBatch {
	nodes, err := lbq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of LessonBatch IDs.
func (lbq *LessonBatchQuery) IDs(ctx context.Context) (ids []int, err error) {
	if lbq.ctx.Unique == nil && lbq.path != nil {
		lbq.Unique(true)
	}
	ctx = setContextOp(ctx, lbq.ctx, ent.OpQueryIDs)
	if err = lbq.Select(lessonbatch.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (lbq *LessonBatchQuery) IDsX(ctx context.Context) []int {
	ids, err := lbq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (lbq *LessonBatchQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, lbq.ctx, ent.OpQueryCount)
	if err := lbq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, lbq, querierCount[*LessonBatchQuery](), lbq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (lbq *LessonBatchQuery) CountX(ctx context.Context) int {
	count, err := lbq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (lbq *LessonBatchQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, lbq.ctx, ent.OpQueryExist)
	switch _, err := lbq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (lbq *LessonBatchQuery) ExistX(ctx context.Context) bool {
	exist, err := lbq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the LessonBatchQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (lbq *LessonBatchQuery) Clone() *LessonBatchQuery {
	if lbq == nil {
		return nil
	}
	return &LessonBatchQuery{
		config:     lbq.config,
		ctx:        lbq.ctx.Clone(),
		order:      append([]lessonbatch.OrderOption{}, lbq.order...),
		inters:     append([]Interceptor{}, lbq.inters...),
		predicates: append([]predicate.LessonBatch{}, lbq.predicates...),
		// clone intermediate query.
		sql:  lbq.sql.Clone(),
		path: lbq.path,
	}
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		BatchNumber int `json:"batch_number,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.LessonBatch.Query().
//		GroupBy(lessonbatch.FieldBatchNumber).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (lbq *LessonBatchQuery) GroupBy(field string, fields ...string) *LessonBatchGroupBy {
	lbq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &LessonBatchGroupBy{build: lbq}
	grbuild.flds = &lbq.ctx.Fields
	grbuild.label = lessonbatch.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		BatchNumber int `json:"batch_number,omitempty"`
//	}
//
//	client.LessonBatch.Query().
//		Select(lessonbatch.FieldBatchNumber).
//		Scan(ctx, &v)
func (lbq *LessonBatchQuery) Select(fields ...string) *LessonBatchSelect {
	lbq.ctx.Fields = append(lbq.ctx.Fields, fields...)
	sbuild := &LessonBatchSelect{LessonBatchQuery: lbq}
	sbuild.label = lessonbatch.Label
	sbuild.flds, sbuild.scan = &lbq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a LessonBatchSelect configured with the given aggregations.
func (lbq *LessonBatchQuery) Aggregate(fns ...AggregateFunc) *LessonBatchSelect {
	return lbq.Select().Aggregate(fns...)
}

func (lbq *LessonBatchQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range lbq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, lbq); err != nil {
				return err
			}
		}
	}
	for _, f := range lbq.ctx.Fields {
		if !lessonbatch.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if lbq.path != nil {
		prev, err := lbq.path(ctx)
		if err != nil {
			return err
		}
		lbq.sql = prev
	}
	return nil
}

func (lbq *LessonBatchQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*LessonBatch, error) {
	var (
		nodes = []*LessonBatch{}
		_spec = lbq.querySpec()
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*LessonBatch).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &LessonBatch{config: lbq.config}
		nodes = append(nodes, node)
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, lbq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	return nodes, nil
}

func (lbq *LessonBatchQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := lbq.querySpec()
	_spec.Node.Columns = lbq.ctx.Fields
	if len(lbq.ctx.Fields) > 0 {
		_spec.Unique = lbq.ctx.Unique != nil && *lbq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, lbq.driver, _spec)
}

func (lbq *LessonBatchQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(lessonbatch.Table, lessonbatch.Columns, sqlgraph.NewFieldSpec(lessonbatch.FieldID, field.TypeInt))
	_spec.From = lbq.sql
	if unique := lbq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if lbq.path != nil {
		_spec.Unique = true
	}
	if fields := lbq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, lessonbatch.FieldID)
		for i := range fields {
			if fields[i] != lessonbatch.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := lbq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := lbq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := lbq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := lbq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (lbq *LessonBatchQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(lbq.driver.Dialect())
	t1 := builder.Table(lessonbatch.Table)
	columns := lbq.ctx.Fields
	if len(columns) == 0 {
		columns = lessonbatch.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if lbq.sql != nil {
		selector = lbq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if lbq.ctx.Unique != nil && *lbq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range lbq.predicates {
		p(selector)
	}
	for _, p := range lbq.order {
		p(selector)
	}
	if offset := lbq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := lbq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// LessonBatchGroupBy is the group-by builder for LessonBatch entities.
type LessonBatchGroupBy struct {
	selector
	build *LessonBatchQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (lbgb *LessonBatchGroupBy) Aggregate(fns ...AggregateFunc) *LessonBatchGroupBy {
	lbgb.fns = append(lbgb.fns, fns...)
	return lbgb
}

// Scan applies the selector query and scans the result into the given value.
func (lbgb *LessonBatchGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, lbgb.build.ctx, ent.OpQueryGroupBy)
	if err := lbgb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*LessonBatchQuery, *LessonBatchGroupBy](ctx, lbgb.build, lbgb, lbgb.build.inters, v)
}

func (lbgb *LessonBatchGroupBy) sqlScan(ctx context.Context, root *LessonBatchQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(lbgb.fns))
	for _, fn := range lbgb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*lbgb.flds)+len(lbgb.fns))
		for _, f := range *lbgb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*lbgb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := lbgb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// LessonBatchSelect is the builder for selecting fields of LessonBatch entities.
type LessonBatchSelect struct {
	*LessonBatchQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (lbs *LessonBatchSelect) Aggregate(fns ...AggregateFunc) *LessonBatchSelect {
	lbs.fns = append(lbs.fns, fns...)
	return lbs
}

// Scan applies the selector query and scans the result into the given value.
func (lbs *LessonBatchSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, lbs.ctx, ent.OpQuerySelect)
	if err := lbs.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*LessonBatchQuery, *LessonBatchSelect](ctx, lbs.LessonBatchQuery, lbs, lbs.inters, v)
}

func (lbs *LessonBatchSelect) sqlScan(ctx context.Context, root *LessonBatchQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(lbs.fns))
	for _, fn := range lbs.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*lbs.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := lbs.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
