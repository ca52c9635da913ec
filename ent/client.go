// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/abhisek/kanado/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/kanado/ent/lessonbatch"
	"github.com/abhisek/kanado/ent/reviewrecord"
	"github.com/abhisek/kanado/ent/schemamigration"
	"github.com/abhisek/kanado/ent/symbol"
	"github.com/abhisek/kanado/ent/usernote"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// LessonBatch is the client for interacting with the LessonBatch builders.
	LessonBatch *LessonBatchClient
	// ReviewRecord is the client for interacting with the ReviewRecord builders.
	ReviewRecord *ReviewRecordClient
	// SchemaMigration is the client for interacting with the SchemaMigration builders.
	SchemaMigration *SchemaMigrationClient
	// Symbol is the client for interacting with the Symbol builders.
	Symbol *SymbolClient
	// UserNote is the client for interacting with the UserNote builders.
	UserNote *UserNoteClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.LessonBatch = NewLessonBatchClient(c.config)
	c.ReviewRecord = NewReviewRecordClient(c.config)
	c.SchemaMigration = NewSchemaMigrationClient(c.config)
	c.Symbol = NewSymbolClient(c.config)
	c.UserNote = NewUserNoteClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:             ctx,
		config:          cfg,
		LessonBatch:     NewLessonBatchClient(cfg),
		ReviewRecord:    NewReviewRecordClient(cfg),
		SchemaMigration: NewSchemaMigrationClient(cfg),
		Symbol:          NewSymbolClient(cfg),
		UserNote:        NewUserNoteClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:             ctx,
		config:          cfg,
		LessonBatch:     NewLessonBatchClient(cfg),
		ReviewRecord:    NewReviewRecordClient(cfg),
		SchemaMigration: NewSchemaMigrationClient(cfg),
		Symbol:          NewSymbolClient(cfg),
		UserNote:        NewUserNoteClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		LessonBatch.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	c.LessonBatch.Use(hooks...)
	c.ReviewRecord.Use(hooks...)
	c.SchemaMigration.Use(hooks...)
	c.Symbol.Use(hooks...)
	c.UserNote.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.LessonBatch.Intercept(interceptors...)
	c.ReviewRecord.Intercept(interceptors...)
	c.SchemaMigration.Intercept(interceptors...)
	c.Symbol.Intercept(interceptors...)
	c.UserNote.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *LessonBatchMutation:
		return c.LessonBatch.mutate(ctx, m)
	case *ReviewRecordMutation:
		return c.ReviewRecord.mutate(ctx, m)
	case *SchemaMigrationMutation:
		return c.SchemaMigration.mutate(ctx, m)
	case *SymbolMutation:
		return c.Symbol.mutate(ctx, m)
	case *UserNoteMutation:
		return c.UserNote.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// LessonBatchClient is a client for the LessonBatch schema.
type LessonBatchClient struct {
	config
}

// NewLessonBatchClient returns a client for the LessonBatch from the given config.
func NewLessonBatchClient(c config) *LessonBatchClient {
	return &LessonBatchClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `lessonbatch.Hooks(f(g(h())))`.
func (c *LessonBatchClient) Use(hooks ...Hook) {
	c.hooks.LessonBatch = append(c.hooks.LessonBatch, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `lessonbatch.Intercept(f(g(h())))`.
func (c *LessonBatchClient) Intercept(interceptors ...Interceptor) {
	c.inters.LessonBatch = append(c.inters.LessonBatch, interceptors...)
}

// Create returns a builder for creating a LessonBatch entity.
func (c *LessonBatchClient) Create() *LessonBatchCreate {
	mutation := newLessonBatchMutation(c.config, OpCreate)
	return &LessonBatchCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LessonBatch entities.
func (c *LessonBatchClient) CreateBulk(builders ...*LessonBatchCreate) *LessonBatchCreateBulk {
	return &LessonBatchCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LessonBatchClient) MapCreateBulk(slice any, setFunc func(*LessonBatchCreate, int)) *LessonBatchCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LessonBatchCreateBulk{err: fmt.Errorf("calling to LessonBatchClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LessonBatchCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LessonBatchCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LessonBatch.
func (c *LessonBatchClient) Update() *LessonBatchUpdate {
	mutation := newLessonBatchMutation(c.config, OpUpdate)
	return &LessonBatchUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LessonBatchClient) UpdateOne(lb *LessonBatch) *LessonBatchUpdateOne {
	mutation := newLessonBatchMutation(c.config, OpUpdateOne, withLessonBatch(lb))
	return &LessonBatchUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LessonBatchClient) UpdateOneID(id int) *LessonBatchUpdateOne {
	mutation := newLessonBatchMutation(c.config, OpUpdateOne, withLessonBatchID(id))
	return &LessonBatchUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LessonBatch.
func (c *LessonBatchClient) Delete() *LessonBatchDelete {
	mutation := newLessonBatchMutation(c.config, OpDelete)
	return &LessonBatchDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LessonBatchClient) DeleteOne(lb *LessonBatch) *LessonBatchDeleteOne {
	return c.DeleteOneID(lb.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LessonBatchClient) DeleteOneID(id int) *LessonBatchDeleteOne {
	builder := c.Delete().Where(lessonbatch.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LessonBatchDeleteOne{builder}
}

// Query returns a query builder for LessonBatch.
func (c *LessonBatchClient) Query() *LessonBatchQuery {
	return &LessonBatchQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLessonBatch},
		inters: c.Interceptors(),
	}
}

// Get returns a LessonBatch entity by its id.
func (c *LessonBatchClient) Get(ctx context.Context, id int) (*LessonBatch, error) {
	return c.Query().Where(lessonbatch.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LessonBatchClient) GetX(ctx context.Context, id int) *LessonBatch {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LessonBatchClient) Hooks() []Hook {
	return c.hooks.LessonBatch
}

// Interceptors returns the client interceptors.
func (c *LessonBatchClient) Interceptors() []Interceptor {
	return c.inters.LessonBatch
}

func (c *LessonBatchClient) mutate(ctx context.Context, m *LessonBatchMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LessonBatchCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LessonBatchUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LessonBatchUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LessonBatchDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LessonBatch mutation op: %q", m.Op())
	}
}

// ReviewRecordClient is a client for the ReviewRecord schema.
type ReviewRecordClient struct {
	config
}

// NewReviewRecordClient returns a client for the ReviewRecord from the given config.
func NewReviewRecordClient(c config) *ReviewRecordClient {
	return &ReviewRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `reviewrecord.Hooks(f(g(h())))`.
func (c *ReviewRecordClient) Use(hooks ...Hook) {
	c.hooks.ReviewRecord = append(c.hooks.ReviewRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `reviewrecord.Intercept(f(g(h())))`.
func (c *ReviewRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.ReviewRecord = append(c.inters.ReviewRecord, interceptors...)
}

// Create returns a builder for creating a ReviewRecord entity.
func (c *ReviewRecordClient) Create() *ReviewRecordCreate {
	mutation := newReviewRecordMutation(c.config, OpCreate)
	return &ReviewRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ReviewRecord entities.
func (c *ReviewRecordClient) CreateBulk(builders ...*ReviewRecordCreate) *ReviewRecordCreateBulk {
	return &ReviewRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ReviewRecordClient) MapCreateBulk(slice any, setFunc func(*ReviewRecordCreate, int)) *ReviewRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ReviewRecordCreateBulk{err: fmt.Errorf("calling to ReviewRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ReviewRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ReviewRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ReviewRecord.
func (c *ReviewRecordClient) Update() *ReviewRecordUpdate {
	mutation := newReviewRecordMutation(c.config, OpUpdate)
	return &ReviewRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ReviewRecordClient) UpdateOne(rr *ReviewRecord) *ReviewRecordUpdateOne {
	mutation := newReviewRecordMutation(c.config, OpUpdateOne, withReviewRecord(rr))
	return &ReviewRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ReviewRecordClient) UpdateOneID(id int) *ReviewRecordUpdateOne {
	mutation := newReviewRecordMutation(c.config, OpUpdateOne, withReviewRecordID(id))
	return &ReviewRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ReviewRecord.
func (c *ReviewRecordClient) Delete() *ReviewRecordDelete {
	mutation := newReviewRecordMutation(c.config, OpDelete)
	return &ReviewRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ReviewRecordClient) DeleteOne(rr *ReviewRecord) *ReviewRecordDeleteOne {
	return c.DeleteOneID(rr.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ReviewRecordClient) DeleteOneID(id int) *ReviewRecordDeleteOne {
	builder := c.Delete().Where(reviewrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ReviewRecordDeleteOne{builder}
}

// Query returns a query builder for ReviewRecord.
func (c *ReviewRecordClient) Query() *ReviewRecordQuery {
	return &ReviewRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeReviewRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a ReviewRecord entity by its id.
func (c *ReviewRecordClient) Get(ctx context.Context, id int) (*ReviewRecord, error) {
	return c.Query().Where(reviewrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ReviewRecordClient) GetX(ctx context.Context, id int) *ReviewRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ReviewRecordClient) Hooks() []Hook {
	return c.hooks.ReviewRecord
}

// Interceptors returns the client interceptors.
func (c *ReviewRecordClient) Interceptors() []Interceptor {
	return c.inters.ReviewRecord
}

func (c *ReviewRecordClient) mutate(ctx context.Context, m *ReviewRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ReviewRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ReviewRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ReviewRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ReviewRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ReviewRecord mutation op: %q", m.Op())
	}
}

// SchemaMigrationClient is a client for the SchemaMigration schema.
type SchemaMigrationClient struct {
	config
}

// NewSchemaMigrationClient returns a client for the SchemaMigration from the given config.
func NewSchemaMigrationClient(c config) *SchemaMigrationClient {
	return &SchemaMigrationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `schemamigration.Hooks(f(g(h())))`.
func (c *SchemaMigrationClient) Use(hooks ...Hook) {
	c.hooks.SchemaMigration = append(c.hooks.SchemaMigration, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `schemamigration.Intercept(f(g(h())))`.
func (c *SchemaMigrationClient) Intercept(interceptors ...Interceptor) {
	c.inters.SchemaMigration = append(c.inters.SchemaMigration, interceptors...)
}

// Create returns a builder for creating a SchemaMigration entity.
func (c *SchemaMigrationClient) Create() *SchemaMigrationCreate {
	mutation := newSchemaMigrationMutation(c.config, OpCreate)
	return &SchemaMigrationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SchemaMigration entities.
func (c *SchemaMigrationClient) CreateBulk(builders ...*SchemaMigrationCreate) *SchemaMigrationCreateBulk {
	return &SchemaMigrationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SchemaMigrationClient) MapCreateBulk(slice any, setFunc func(*SchemaMigrationCreate, int)) *SchemaMigrationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SchemaMigrationCreateBulk{err: fmt.Errorf("calling to SchemaMigrationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SchemaMigrationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SchemaMigrationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SchemaMigration.
func (c *SchemaMigrationClient) Update() *SchemaMigrationUpdate {
	mutation := newSchemaMigrationMutation(c.config, OpUpdate)
	return &SchemaMigrationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SchemaMigrationClient) UpdateOne(sm *SchemaMigration) *SchemaMigrationUpdateOne {
	mutation := newSchemaMigrationMutation(c.config, OpUpdateOne, withSchemaMigration(sm))
	return &SchemaMigrationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SchemaMigrationClient) UpdateOneID(id int) *SchemaMigrationUpdateOne {
	mutation := newSchemaMigrationMutation(c.config, OpUpdateOne, withSchemaMigrationID(id))
	return &SchemaMigrationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SchemaMigration.
func (c *SchemaMigrationClient) Delete() *SchemaMigrationDelete {
	mutation := newSchemaMigrationMutation(c.config, OpDelete)
	return &SchemaMigrationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SchemaMigrationClient) DeleteOne(sm *SchemaMigration) *SchemaMigrationDeleteOne {
	return c.DeleteOneID(sm.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SchemaMigrationClient) DeleteOneID(id int) *SchemaMigrationDeleteOne {
	builder := c.Delete().Where(schemamigration.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SchemaMigrationDeleteOne{builder}
}

// Query returns a query builder for SchemaMigration.
func (c *SchemaMigrationClient) Query() *SchemaMigrationQuery {
	return &SchemaMigrationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSchemaMigration},
		inters: c.Interceptors(),
	}
}

// Get returns a SchemaMigration entity by its id.
func (c *SchemaMigrationClient) Get(ctx context.Context, id int) (*SchemaMigration, error) {
	return c.Query().Where(schemamigration.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SchemaMigrationClient) GetX(ctx context.Context, id int) *SchemaMigration {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SchemaMigrationClient) Hooks() []Hook {
	return c.hooks.SchemaMigration
}

// Interceptors returns the client interceptors.
func (c *SchemaMigrationClient) Interceptors() []Interceptor {
	return c.inters.SchemaMigration
}

func (c *SchemaMigrationClient) mutate(ctx context.Context, m *SchemaMigrationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SchemaMigrationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SchemaMigrationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SchemaMigrationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SchemaMigrationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SchemaMigration mutation op: %q", m.Op())
	}
}

// SymbolClient is a client for the Symbol schema.
type SymbolClient struct {
	config
}

// NewSymbolClient returns a client for the Symbol from the given config.
func NewSymbolClient(c config) *SymbolClient {
	return &SymbolClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `symbol.Hooks(f(g(h())))`.
func (c *SymbolClient) Use(hooks ...Hook) {
	c.hooks.Symbol = append(c.hooks.Symbol, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `symbol.Intercept(f(g(h())))`.
func (c *SymbolClient) Intercept(interceptors ...Interceptor) {
	c.inters.Symbol = append(c.inters.Symbol, interceptors...)
}

// Create returns a builder for creating a Symbol entity.
func (c *SymbolClient) Create() *SymbolCreate {
	mutation := newSymbolMutation(c.config, OpCreate)
	return &SymbolCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Symbol entities.
func (c *SymbolClient) CreateBulk(builders ...*SymbolCreate) *SymbolCreateBulk {
	return &SymbolCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SymbolClient) MapCreateBulk(slice any, setFunc func(*SymbolCreate, int)) *SymbolCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SymbolCreateBulk{err: fmt.Errorf("calling to SymbolClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SymbolCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SymbolCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Symbol.
func (c *SymbolClient) Update() *SymbolUpdate {
	mutation := newSymbolMutation(c.config, OpUpdate)
	return &SymbolUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SymbolClient) UpdateOne(s *Symbol) *SymbolUpdateOne {
	mutation := newSymbolMutation(c.config, OpUpdateOne, withSymbol(s))
	return &SymbolUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SymbolClient) UpdateOneID(id int) *SymbolUpdateOne {
	mutation := newSymbolMutation(c.config, OpUpdateOne, withSymbolID(id))
	return &SymbolUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Symbol.
func (c *SymbolClient) Delete() *SymbolDelete {
	mutation := newSymbolMutation(c.config, OpDelete)
	return &SymbolDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SymbolClient) DeleteOne(s *Symbol) *SymbolDeleteOne {
	return c.DeleteOneID(s.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SymbolClient) DeleteOneID(id int) *SymbolDeleteOne {
	builder := c.Delete().Where(symbol.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SymbolDeleteOne{builder}
}

// Query returns a query builder for Symbol.
func (c *SymbolClient) Query() *SymbolQuery {
	return &SymbolQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSymbol},
		inters: c.Interceptors(),
	}
}

// Get returns a Symbol entity by its id.
func (c *SymbolClient) Get(ctx context.Context, id int) (*Symbol, error) {
	return c.Query().Where(symbol.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SymbolClient) GetX(ctx context.Context, id int) *Symbol {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SymbolClient) Hooks() []Hook {
	return c.hooks.Symbol
}

// Interceptors returns the client interceptors.
func (c *SymbolClient) Interceptors() []Interceptor {
	return c.inters.Symbol
}

func (c *SymbolClient) mutate(ctx context.Context, m *SymbolMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SymbolCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SymbolUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SymbolUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SymbolDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Symbol mutation op: %q", m.Op())
	}
}

// UserNoteClient is a client for the UserNote schema.
type UserNoteClient struct {
	config
}

// NewUserNoteClient returns a client for the UserNote from the given config.
func NewUserNoteClient(c config) *UserNoteClient {
	return &UserNoteClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `usernote.Hooks(f(g(h())))`.
func (c *UserNoteClient) Use(hooks ...Hook) {
	c.hooks.UserNote = append(c.hooks.UserNote, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `usernote.Intercept(f(g(h())))`.
func (c *UserNoteClient) Intercept(interceptors ...Interceptor) {
	c.inters.UserNote = append(c.inters.UserNote, interceptors...)
}

// Create returns a builder for creating a UserNote entity.
func (c *UserNoteClient) Create() *UserNoteCreate {
	mutation := newUserNoteMutation(c.config, OpCreate)
	return &UserNoteCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of UserNote entities.
func (c *UserNoteClient) CreateBulk(builders ...*UserNoteCreate) *UserNoteCreateBulk {
	return &UserNoteCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserNoteClient) MapCreateBulk(slice any, setFunc func(*UserNoteCreate, int)) *UserNoteCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserNoteCreateBulk{err: fmt.Errorf("calling to UserNoteClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserNoteCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserNoteCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for UserNote.
func (c *UserNoteClient) Update() *UserNoteUpdate {
	mutation := newUserNoteMutation(c.config, OpUpdate)
	return &UserNoteUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserNoteClient) UpdateOne(un *UserNote) *UserNoteUpdateOne {
	mutation := newUserNoteMutation(c.config, OpUpdateOne, withUserNote(un))
	return &UserNoteUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserNoteClient) UpdateOneID(id int) *UserNoteUpdateOne {
	mutation := newUserNoteMutation(c.config, OpUpdateOne, withUserNoteID(id))
	return &UserNoteUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for UserNote.
func (c *UserNoteClient) Delete() *UserNoteDelete {
	mutation := newUserNoteMutation(c.config, OpDelete)
	return &UserNoteDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserNoteClient) DeleteOne(un *UserNote) *UserNoteDeleteOne {
	return c.DeleteOneID(un.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserNoteClient) DeleteOneID(id int) *UserNoteDeleteOne {
	builder := c.Delete().Where(usernote.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserNoteDeleteOne{builder}
}

// Query returns a query builder for UserNote.
func (c *UserNoteClient) Query() *UserNoteQuery {
	return &UserNoteQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUserNote},
		inters: c.Interceptors(),
	}
}

// Get returns a UserNote entity by its id.
func (c *UserNoteClient) Get(ctx context.Context, id int) (*UserNote, error) {
	return c.Query().Where(usernote.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserNoteClient) GetX(ctx context.Context, id int) *UserNote {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *UserNoteClient) Hooks() []Hook {
	return c.hooks.UserNote
}

// Interceptors returns the client interceptors.
func (c *UserNoteClient) Interceptors() []Interceptor {
	return c.inters.UserNote
}

func (c *UserNoteClient) mutate(ctx context.Context, m *UserNoteMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserNoteCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserNoteUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserNoteUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserNoteDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown UserNote mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		LessonBatch, ReviewRecord, SchemaMigration, Symbol, UserNote []ent.Hook
	}
	inters struct {
		LessonBatch, ReviewRecord, SchemaMigration, Symbol, UserNote []ent.Interceptor
	}
)
