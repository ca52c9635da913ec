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
	"github.com/abhisek/kanado/ent/usernote"
)

// UserNoteQuery is the builder for querying UserNote entities.
type UserNoteQuery struct {
	config
	ctx        *QueryContext
	order      []usernote.OrderOption
	inters     []Interceptor
	predicates []predicate.UserNote
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the UserNoteQuery builder.
func (unq *UserNoteQuery) Where(ps ...predicate.UserNote) *UserNoteQuery {
	unq.predicates = append(unq.predicates, ps...)
	return unq
}

// Limit the number of records to be returned by this query.
func (unq *UserNoteQuery) Limit(limit int) *UserNoteQuery {
	unq.ctx.Limit = &limit
	return unq
}

// Offset to start from.
func (unq *UserNoteQuery) Offset(offset int) *UserNoteQuery {
	unq.ctx.Offset = &offset
	return unq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (unq *UserNoteQuery) Unique(unique bool) *UserNoteQuery {
	unq.ctx.Unique = &unique
	return unq
}

// Order specifies how the records should be ordered.
func (unq *UserNoteQuery) Order(o ...usernote.OrderOption) *UserNoteQuery {
	unq.order = append(unq.order, o...)
	return unq
}

// First returns the first UserNote entity from the query.
// Returns a *NotFoundError when no UserNote was found.
func (unq *UserNoteQuery) First(ctx context.Context) (*UserNote, error) {
	nodes, err := unq.Limit(1).All(setContextOp(ctx, unq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{usernote.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (unq *UserNoteQuery) FirstX(ctx context.Context) *UserNote {
	node, err := unq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first UserNote ID from the query.
// Returns a *NotFoundError when no UserNote ID was found.
func (unq *UserNoteQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = unq.Limit(1).IDs(setContextOp(ctx, unq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{usernote.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (unq *UserNoteQuery) FirstIDX(ctx context.Context) int {
	id, err := unq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single UserNote entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one UserNote entity is found.
// Returns a *NotFoundError when no UserNote entities are found.
func (unq *UserNoteQuery) Only(ctx context.Context) (*UserNote, error) {
	nodes, err := unq.Limit(2).All(setContextOp(ctx, unq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{usernote.Label}
	default:
		return nil, &NotSingularError{usernote.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (unq *UserNoteQuery) OnlyX(ctx context.Context) *UserNote {
	node, err := unq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only UserNote ID in the query.
// Returns a *NotSingularError when more than one UserNote ID is found.
// Returns a *NotFoundError when no entities are found.
func (unq *UserNoteQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = unq.Limit(2).IDs(setContextOp(ctx, unq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{usernote.Label}
	default:
		err = &NotSingularError{usernote.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (unq *UserNoteQuery) OnlyIDX(ctx context.Context) int {
	id, err := unq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of UserNotes.
func (unq *UserNoteQuery) All(ctx context.Context) ([]*UserNote, error) {
	ctx = setContextOp(ctx, unq.ctx, ent.OpQueryAll)
	if err := unq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*UserNote, *UserNoteQuery]()
	return withInterceptors[[]*UserNote](ctx, unq, qr, unq.inters)
}

// AllX is like All, but panics if an error occurs.
func (unq *UserNoteQuery) AllX(ctx context.Context) []*UserNote {
	nodes, err := unq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of UserNote IDs.
func (unq *UserNoteQuery) IDs(ctx context.Context) (ids []int, err error) {
	if unq.ctx.Unique == nil && unq.path != nil {
		unq.Unique(true)
	}
	ctx = setContextOp(ctx, unq.ctx, ent.OpQueryIDs)
	if err = unq.Select(usernote.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (unq *UserNoteQuery) IDsX(ctx context.Context) []int {
	ids, err := unq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (unq *UserNoteQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, unq.ctx, ent.OpQueryCount)
	if err := unq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, unq, querierCount[*UserNoteQuery](), unq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (unq *UserNoteQuery) CountX(ctx context.Context) int {
	count, err := unq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (unq *UserNoteQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, unq.ctx, ent.OpQueryExist)
	switch _, err := unq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (unq *UserNoteQuery) ExistX(ctx context.Context) bool {
	exist, err := unq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the UserNoteQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (unq *UserNoteQuery) Clone() *UserNoteQuery {
	if unq == nil {
		return nil
	}
	return &UserNoteQuery{
		config:     unq.config,
		ctx:        unq.ctx.Clone(),
		order:      append([]usernote.OrderOption{}, unq.order...),
		inters:     append([]Interceptor{}, unq.inters...),
		predicates: append([]predicate.UserNote{}, unq.predicates...),
		// clone intermediate query.
		sql:  unq.sql.Clone(),
		path: unq.path,
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
//	client.UserNote.Query().
//		GroupBy(usernote.FieldSymbolID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (unq *UserNoteQuery) GroupBy(field string, fields ...string) *UserNoteGroupBy {
	unq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &UserNoteGroupBy{build: unq}
	grbuild.flds = &unq.ctx.Fields
	grbuild.label = usernote.Label
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
//	client.UserNote.Query().
//		Select(usernote.FieldSymbolID).
//		Scan(ctx, &v)
func (unq *UserNoteQuery) Select(fields ...string) *UserNoteSelect {
	unq.ctx.Fields = append(unq.ctx.Fields, fields...)
	sbuild := &UserNoteSelect{UserNoteQuery: unq}
	sbuild.label = usernote.Label
	sbuild.flds, sbuild.scan = &unq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a UserNoteSelect configured with the given aggregations.
func (unq *UserNoteQuery) Aggregate(fns ...AggregateFunc) *UserNoteSelect {
	return unq.Select().Aggregate(fns...)
}

func (unq *UserNoteQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range unq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, unq); err != nil {
				return err
			}
		}
	}
	for _, f := range unq.ctx.Fields {
		if !usernote.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if unq.path != nil {
		prev, err := unq.path(ctx)
		if err != nil {
			return err
		}
		unq.sql = prev
	}
	return nil
}

func (unq *UserNoteQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*UserNote, error) {
	var (
		nodes = []*UserNote{}
		_spec = unq.querySpec()
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*UserNote).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &UserNote{config: unq.config}
		nodes = append(nodes, node)
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, unq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	return nodes, nil
}

func (unq *UserNoteQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := unq.querySpec()
	_spec.Node.Columns = unq.ctx.Fields
	if len(unq.ctx.Fields) > 0 {
		_spec.Unique = unq.ctx.Unique != nil && *unq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, unq.driver, _spec)
}

func (unq *UserNoteQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(usernote.Table, usernote.Columns, sqlgraph.NewFieldSpec(usernote.FieldID, field.TypeInt))
	_spec.From = unq.sql
	if unique := unq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if unq.path != nil {
		_spec.Unique = true
	}
	if fields := unq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, usernote.FieldID)
		for i := range fields {
			if fields[i] != usernote.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := unq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := unq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := unq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := unq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (unq *UserNoteQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(unq.driver.Dialect())
	t1 := builder.Table(usernote.Table)
	columns := unq.ctx.Fields
	if len(columns) == 0 {
		columns = usernote.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if unq.sql != nil {
		selector = unq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if unq.ctx.Unique != nil && *unq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range unq.predicates {
		p(selector)
	}
	for _, p := range unq.order {
		p(selector)
	}
	if offset := unq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := unq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// UserNoteGroupBy is the group-by builder for UserNote entities.
type UserNoteGroupBy struct {
	selector
	build *UserNoteQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (ungb *UserNoteGroupBy) Aggregate(fns ...AggregateFunc) *UserNoteGroupBy {
	ungb.fns = append(ungb.fns, fns...)
	return ungb
}

// Scan applies the selector query and scans the result into the given value.
func (ungb *UserNoteGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, ungb.build.ctx, ent.OpQueryGroupBy)
	if err := ungb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*UserNoteQuery, *UserNoteGroupBy](ctx, ungb.build, ungb, ungb.build.inters, v)
}

func (ungb *UserNoteGroupBy) sqlScan(ctx context.Context, root *UserNoteQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(ungb.fns))
	for _, fn := range ungb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*ungb.flds)+len(ungb.fns))
		for _, f := range *ungb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*ungb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := ungb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// UserNoteSelect is the builder for selecting fields of UserNote entities.
type UserNoteSelect struct {
	*UserNoteQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (uns *UserNoteSelect) Aggregate(fns ...AggregateFunc) *UserNoteSelect {
	uns.fns = append(uns.fns, fns...)
	return uns
}

// Scan applies the selector query and scans the result into the given value.
func (uns *UserNoteSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, uns.ctx, ent.OpQuerySelect)
	if err := uns.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*UserNoteQuery, *UserNoteSelect](ctx, uns.UserNoteQuery, uns, uns.inters, v)
}

func (uns *UserNoteSelect) sqlScan(ctx context.Context, root *UserNoteQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(uns.fns))
	for _, fn := range uns.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*uns.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := uns.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
