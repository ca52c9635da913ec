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
	"github.com/abhisek/kanado/ent/predicate"
	"github.com/abhisek/kanado/ent/reviewrecord"
)

// ReviewRecordQuery is the builder for querying ReviewRecord entities.
type ReviewRecordQuery struct {
	config
	ctx        *QueryContext
	order      []reviewrecord.OrderOption
	inters     []Interceptor
	predicates []predicate.ReviewRecord
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the ReviewRecordQuery builder.
func (rrq *ReviewRecordQuery) Where(ps ...predicate.ReviewRecord) *ReviewRecordQuery {
	rrq.predicates = append(rrq.predicates, ps...)
	return rrq
}

// Limit the number of records to be returned by this query.
func (rrq *ReviewRecordQuery) Limit(limit int) *ReviewRecordQuery {
	rrq.ctx.Limit = &limit
	return rrq
}

// Offset to start from.
func (rrq *ReviewRecordQuery) Offset(offset int) *ReviewRecordQuery {
	rrq.ctx.Offset = &offset
	return rrq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (rrq *ReviewRecordQuery) Unique(unique bool) *ReviewRecordQuery {
	rrq.ctx.Unique = &unique
	return rrq
}

// Order specifies how the records should be ordered.
func (rrq *ReviewRecordQuery) Order(o ...reviewrecord.OrderOption) *ReviewRecordQuery {
	rrq.order = append(rrq.order, o...)
	return rrq
}

// First returns the first ReviewRecord entity from the query.
// Returns a *NotFoundError when no ReviewRecord was found.
func (rrq *ReviewRecordQuery) First(ctx context.Context) (*ReviewRecord, error) {
	nodes, err := rrq.Limit(1).All(setContextOp(ctx, rrq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{reviewrecord.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (rrq *ReviewRecordQuery) FirstX(ctx context.Context) *ReviewRecord {
	node, err := rrq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first ReviewRecord ID from the query.
// Returns a *NotFoundError when no ReviewRecord ID was found.
func (rrq *ReviewRecordQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = rrq.Limit(1).IDs(setContextOp(ctx, rrq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{reviewrecord.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (rrq *ReviewRecordQuery) FirstIDX(ctx context.Context) int {
	id, err := rrq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single ReviewRecord entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one ReviewRecord entity is found.
// Returns a *NotFoundError when no ReviewRecord entities are found.
func (rrq *ReviewRecordQuery) Only(ctx context.Context) (*ReviewRecord, error) {
	nodes, err := rrq.Limit(2).All(setContextOp(ctx, rrq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{reviewrecord.Label}
	default:
		return nil, &NotSingularError{reviewrecord.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (rrq *ReviewRecordQuery) OnlyX(ctx context.Context) *ReviewRecord {
	node, err := rrq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only ReviewRecord ID in the query.
// Returns a *NotSingularError when more than one ReviewRecord ID is found.
// Returns a *NotFoundError when no entities are found.
func (rrq *ReviewRecordQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = rrq.Limit(2).IDs(setContextOp(ctx, rrq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{reviewrecord.Label}
	default:
		err = &NotSingularError{reviewrecord.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (rrq *ReviewRecordQuery) OnlyIDX(ctx context.Context) int {
	id, err := rrq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of ReviewRecords.
func (rrq *ReviewRecordQuery) All(ctx context.Context) ([]*ReviewRecord, error) {
	ctx = setContextOp(ctx, rrq.ctx, ent.OpQueryAll)
	if err := rrq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*ReviewRecord, *ReviewRecordQuery]()
	return withInterceptors[[]*ReviewRecord](ctx, rrq, qr, rrq.inters)
}

// AllX is like All, but panics if an error occurs.
func (rrq *ReviewRecordQuery) AllX(ctx context.Context) []*ReviewRecord {
	nodes, err := rrq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of ReviewRecord IDs.
func (rrq *ReviewRecordQuery) IDs(ctx context.Context) (ids []int, err error) {
	if rrq.ctx.Unique == nil && rrq.path != nil {
		rrq.Unique(true)
	}
	ctx = setContextOp(ctx, rrq.ctx, ent.OpQueryIDs)
	if err = rrq.Select(reviewrecord.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (rrq *ReviewRecordQuery) IDsX(ctx context.Context) []int {
	ids, err := rrq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (rrq *ReviewRecordQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, rrq.ctx, ent.OpQueryCount)
	if err := rrq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, rrq, querierCount[*ReviewRecordQuery](), rrq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (rrq *ReviewRecordQuery) CountX(ctx context.Context) int {
	count, err := rrq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (rrq *ReviewRecordQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, rrq.ctx, ent.OpQueryExist)
	switch _, err := rrq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (rrq *ReviewRecordQuery) ExistX(ctx context.Context) bool {
	exist, err := rrq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the ReviewRecordQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (rrq *ReviewRecordQuery) Clone() *ReviewRecordQuery {
	if rrq == nil {
		return nil
	}
	return &ReviewRecordQuery{
		config:     rrq.config,
		ctx:        rrq.ctx.Clone(),
		order:      append([]reviewrecord.OrderOption{}, rrq.order...),
		inters:     append([]Interceptor{}, rrq.inters...),
		predicates: append([]predicate.ReviewRecord{}, rrq.predicates...),
		// clone intermediate query.
		sql:  rrq.sql.Clone(),
		path: rrq.path,
	}
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		SymbolID int `json:"symbol_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.ReviewRecord.Query().
//		GroupBy(reviewrecord.FieldSymbolID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (rrq *ReviewRecordQuery) GroupBy(field string, fields ...string) *ReviewRecordGroupBy {
	rrq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &ReviewRecordGroupBy{build: rrq}
	grbuild.flds = &rrq.ctx.Fields
	grbuild.label = reviewrecord.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		SymbolID int `json:"symbol_id,omitempty"`
//	}
//
//	client.ReviewRecord.Query().
//		Select(reviewrecord.FieldSymbolID).
//		Scan(ctx, &v)
func (rrq *ReviewRecordQuery) Select(fields ...string) *ReviewRecordSelect {
	rrq.ctx.Fields = append(rrq.ctx.Fields, fields...)
	sbuild := &ReviewRecordSelect{ReviewRecordQuery: rrq}
	sbuild.label = reviewrecord.Label
	sbuild.flds, sbuild.scan = &rrq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a ReviewRecordSelect configured with the given aggregations.
func (rrq *ReviewRecordQuery) Aggregate(fns ...AggregateFunc) *ReviewRecordSelect {
	return rrq.Select().Aggregate(fns...)
}

func (rrq *ReviewRecordQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range rrq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, rrq); err != nil {
				return err
			}
		}
	}
	for _, f := range rrq.ctx.Fields {
		if !reviewrecord.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if rrq.path != nil {
		prev, err := rrq.path(ctx)
		if err != nil {
			return err
		}
		rrq.sql = prev
	}
	return nil
}

func (rrq *ReviewRecordQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*ReviewRecord, error) {
	var (
		nodes = []*ReviewRecord{}
		_spec = rrq.querySpec()
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*ReviewRecord).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &ReviewRecord{config: rrq.config}
		nodes = append(nodes, node)
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, rrq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	return nodes, nil
}

func (rrq *ReviewRecordQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := rrq.querySpec()
	_spec.Node.Columns = rrq.ctx.Fields
	if len(rrq.ctx.Fields) > 0 {
		_spec.Unique = rrq.ctx.Unique != nil && *rrq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, rrq.driver, _spec)
}

func (rrq *ReviewRecordQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(reviewrecord.Table, reviewrecord.Columns, sqlgraph.NewFieldSpec(reviewrecord.FieldID, field.TypeInt))
	_spec.From = rrq.sql
	if unique := rrq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if rrq.path != nil {
		_spec.Unique = true
	}
	if fields := rrq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, reviewrecord.FieldID)
		for i := range fields {
			if fields[i] != reviewrecord.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := rrq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := rrq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := rrq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := rrq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (rrq *ReviewRecordQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(rrq.driver.Dialect())
	t1 := builder.Table(reviewrecord.Table)
	columns := rrq.ctx.Fields
	if len(columns) == 0 {
		columns = reviewrecord.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if rrq.sql != nil {
		selector = rrq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if rrq.ctx.Unique != nil && *rrq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range rrq.predicates {
		p(selector)
	}
	for _, p := range rrq.order {
		p(selector)
	}
	if offset := rrq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := rrq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// ReviewRecordGroupBy is the group-by builder for ReviewRecord entities.
type ReviewRecordGroupBy struct {
	selector
	build *ReviewRecordQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (rrgb *ReviewRecordGroupBy) Aggregate(fns ...AggregateFunc) *ReviewRecordGroupBy {
	rrgb.fns = append(rrgb.fns, fns...)
	return rrgb
}

// Scan applies the selector query and scans the result into the given value.
func (rrgb *ReviewRecordGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, rrgb.build.ctx, ent.OpQueryGroupBy)
	if err := rrgb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ReviewRecordQuery, *ReviewRecordGroupBy](ctx, rrgb.build, rrgb, rrgb.build.inters, v)
}

func (rrgb *ReviewRecordGroupBy) sqlScan(ctx context.Context, root *ReviewRecordQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(rrgb.fns))
	for _, fn := range rrgb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*rrgb.flds)+len(rrgb.fns))
		for _, f := range *rrgb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*rrgb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := rrgb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// ReviewRecordSelect is the builder for selecting fields of ReviewRecord entities.
type ReviewRecordSelect struct {
	*ReviewRecordQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (rrs *ReviewRecordSelect) Aggregate(fns ...AggregateFunc) *ReviewRecordSelect {
	rrs.fns = append(rrs.fns, fns...)
	return rrs
}

// Scan applies the selector query and scans the result into the given value.
func (rrs *ReviewRecordSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, rrs.ctx, ent.OpQuerySelect)
	if err := rrs.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ReviewRecordQuery, *ReviewRecordSelect](ctx, rrs.ReviewRecordQuery, rrs, rrs.inters, v)
}

func (rrs *ReviewRecordSelect) sqlScan(ctx context.Context, root *ReviewRecordQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(rrs.fns))
	for _, fn := range rrs.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*rrs.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := rrs.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
