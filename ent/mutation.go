// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/kanado/ent/lessonbatch"
	"github.com/abhisek/kanado/ent/predicate"
	"github.com/abhisek/kanado/ent/reviewrecord"
	"github.com/abhisek/kanado/ent/schemamigration"
	"github.com/abhisek/kanado/ent/symbol"
	"github.com/abhisek/kanado/ent/usernote"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeLessonBatch     = "LessonBatch"
	TypeReviewRecord    = "ReviewRecord"
	TypeSchemaMigration = "SchemaMigration"
	TypeSymbol          = "Symbol"
	TypeUserNote        = "UserNote"
)

// LessonBatchMutation represents an operation that mutates the LessonBatch nodes in the graph.
type LessonBatchMutation struct {
	config
	op              Op
	typ             string
	id              *int
	batch_number    *int
	addbatch_number *int
	name            *string
	description     *string
	completed       *bool
	completed_at    *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*LessonBatch, error)
	predicates      []predicate.LessonBatch
}

var _ ent.Mutation = (*LessonBatchMutation)(nil)

// lessonbatchOption allows management of the mutation configuration using functional options.
type lessonbatchOption func(*LessonBatchMutation)

// newLessonBatchMutation creates new mutation for the LessonBatch entity.
func newLessonBatchMutation(c config, op Op, opts ...lessonbatchOption) *LessonBatchMutation {
	m := &LessonBatchMutation{
		config:        c,
		op:            op,
		typ:           TypeLessonBatch,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLessonBatchID sets the ID field of the mutation.
func withLessonBatchID(id int) lessonbatchOption {
	return func(m *LessonBatchMutation) {
		var (
			err   error
			once  sync.Once
			value *LessonBatch
		)
		m.oldValue = func(ctx context.Context) (*LessonBatch, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LessonBatch.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLessonBatch sets the old LessonBatch of the mutation.
func withLessonBatch(node *LessonBatch) lessonbatchOption {
	return func(m *LessonBatchMutation) {
		m.oldValue = func(context.Context) (*LessonBatch, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LessonBatchMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LessonBatchMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LessonBatchMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LessonBatchMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LessonBatch.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetBatchNumber sets the "batch_number" field.
func (m *LessonBatchMutation) SetBatchNumber(i int) {
	m.batch_number = &i
	m.addbatch_number = nil
}

// BatchNumber returns the value of the "batch_number" field in the mutation.
func (m *LessonBatchMutation) BatchNumber() (r int, exists bool) {
	v := m.batch_number
	if v == nil {
		return
	}
	return *v, true
}

// OldBatchNumber returns the old "batch_number" field's value of the LessonBatch entity.
// If the LessonBatch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonBatchMutation) OldBatchNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBatchNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBatchNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBatchNumber: %w", err)
	}
	return oldValue.BatchNumber, nil
}

// AddBatchNumber adds i to the "batch_number" field.
func (m *LessonBatchMutation) AddBatchNumber(i int) {
	if m.addbatch_number != nil {
		*m.addbatch_number += i
	} else {
		m.addbatch_number = &i
	}
}

// AddedBatchNumber returns the value that was added to the "batch_number" field in this mutation.
func (m *LessonBatchMutation) AddedBatchNumber() (r int, exists bool) {
	v := m.addbatch_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetBatchNumber resets all changes to the "batch_number" field.
func (m *LessonBatchMutation) ResetBatchNumber() {
	m.batch_number = nil
	m.addbatch_number = nil
}

// SetName sets the "name" field.
func (m *LessonBatchMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *LessonBatchMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the LessonBatch entity.
// If the LessonBatch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonBatchMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *LessonBatchMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *LessonBatchMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *LessonBatchMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the LessonBatch entity.
// If the LessonBatch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonBatchMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *LessonBatchMutation) ResetDescription() {
	m.description = nil
}

// SetCompleted sets the "completed" field.
func (m *LessonBatchMutation) SetCompleted(b bool) {
	m.completed = &b
}

// Completed returns the value of the "completed" field in the mutation.
func (m *LessonBatchMutation) Completed() (r bool, exists bool) {
	v := m.completed
	if v == nil {
		return
	}
	return *v, true
}

// OldCompleted returns the old "completed" field's value of the LessonBatch entity.
// If the LessonBatch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonBatchMutation) OldCompleted(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompleted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompleted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompleted: %w", err)
	}
	return oldValue.Completed, nil
}

// ResetCompleted resets all changes to the "completed" field.
func (m *LessonBatchMutation) ResetCompleted() {
	m.completed = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *LessonBatchMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *LessonBatchMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the LessonBatch entity.
// If the LessonBatch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonBatchMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *LessonBatchMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[lessonbatch.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *LessonBatchMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[lessonbatch.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *LessonBatchMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, lessonbatch.FieldCompletedAt)
}

// Where appends a list predicates to the LessonBatchMutation builder.
func (m *LessonBatchMutation) Where(ps ...predicate.LessonBatch) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LessonBatchMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LessonBatchMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LessonBatch, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LessonBatchMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LessonBatchMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LessonBatch).
func (m *LessonBatchMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LessonBatchMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.batch_number != nil {
		fields = append(fields, lessonbatch.FieldBatchNumber)
	}
	if m.name != nil {
		fields = append(fields, lessonbatch.FieldName)
	}
	if m.description != nil {
		fields = append(fields, lessonbatch.FieldDescription)
	}
	if m.completed != nil {
		fields = append(fields, lessonbatch.FieldCompleted)
	}
	if m.completed_at != nil {
		fields = append(fields, lessonbatch.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LessonBatchMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case lessonbatch.FieldBatchNumber:
		return m.BatchNumber()
	case lessonbatch.FieldName:
		return m.Name()
	case lessonbatch.FieldDescription:
		return m.Description()
	case lessonbatch.FieldCompleted:
		return m.Completed()
	case lessonbatch.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LessonBatchMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case lessonbatch.FieldBatchNumber:
		return m.OldBatchNumber(ctx)
	case lessonbatch.FieldName:
		return m.OldName(ctx)
	case lessonbatch.FieldDescription:
		return m.OldDescription(ctx)
	case lessonbatch.FieldCompleted:
		return m.OldCompleted(ctx)
	case lessonbatch.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown LessonBatch field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LessonBatchMutation) SetField(name string, value ent.Value) error {
	switch name {
	case lessonbatch.FieldBatchNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBatchNumber(v)
		return nil
	case lessonbatch.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case lessonbatch.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case lessonbatch.FieldCompleted:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompleted(v)
		return nil
	case lessonbatch.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown LessonBatch field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LessonBatchMutation) AddedFields() []string {
	var fields []string
	if m.addbatch_number != nil {
		fields = append(fields, lessonbatch.FieldBatchNumber)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LessonBatchMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case lessonbatch.FieldBatchNumber:
		return m.AddedBatchNumber()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LessonBatchMutation) AddField(name string, value ent.Value) error {
	switch name {
	case lessonbatch.FieldBatchNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBatchNumber(v)
		return nil
	}
	return fmt.Errorf("unknown LessonBatch numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LessonBatchMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(lessonbatch.FieldCompletedAt) {
		fields = append(fields, lessonbatch.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LessonBatchMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LessonBatchMutation) ClearField(name string) error {
	switch name {
	case lessonbatch.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown LessonBatch nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LessonBatchMutation) ResetField(name string) error {
	switch name {
	case lessonbatch.FieldBatchNumber:
		m.ResetBatchNumber()
		return nil
	case lessonbatch.FieldName:
		m.ResetName()
		return nil
	case lessonbatch.FieldDescription:
		m.ResetDescription()
		return nil
	case lessonbatch.FieldCompleted:
		m.ResetCompleted()
		return nil
	case lessonbatch.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown LessonBatch field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LessonBatchMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LessonBatchMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LessonBatchMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LessonBatchMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LessonBatchMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LessonBatchMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LessonBatchMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown LessonBatch unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LessonBatchMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown LessonBatch edge %s", name)
}

// ReviewRecordMutation represents an operation that mutates the ReviewRecord nodes in the graph.
type ReviewRecordMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	symbol_id          *int
	addsymbol_id       *int
	stage              *int
	addstage           *int
	next_due           *time.Time
	correct_count      *int
	addcorrect_count   *int
	incorrect_count    *int
	addincorrect_count *int
	last_reviewed      *time.Time
	created_at         *time.Time
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*ReviewRecord, error)
	predicates         []predicate.ReviewRecord
}

var _ ent.Mutation = (*ReviewRecordMutation)(nil)

// reviewrecordOption allows management of the mutation configuration using functional options.
type reviewrecordOption func(*ReviewRecordMutation)

// newReviewRecordMutation creates new mutation for the ReviewRecord entity.
func newReviewRecordMutation(c config, op Op, opts ...reviewrecordOption) *ReviewRecordMutation {
	m := &ReviewRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeReviewRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withReviewRecordID sets the ID field of the mutation.
func withReviewRecordID(id int) reviewrecordOption {
	return func(m *ReviewRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *ReviewRecord
		)
		m.oldValue = func(ctx context.Context) (*ReviewRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ReviewRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withReviewRecord sets the old ReviewRecord of the mutation.
func withReviewRecord(node *ReviewRecord) reviewrecordOption {
	return func(m *ReviewRecordMutation) {
		m.oldValue = func(context.Context) (*ReviewRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ReviewRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ReviewRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ReviewRecordMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ReviewRecordMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ReviewRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSymbolID sets the "symbol_id" field.
func (m *ReviewRecordMutation) SetSymbolID(i int) {
	m.symbol_id = &i
	m.addsymbol_id = nil
}

// SymbolID returns the value of the "symbol_id" field in the mutation.
func (m *ReviewRecordMutation) SymbolID() (r int, exists bool) {
	v := m.symbol_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSymbolID returns the old "symbol_id" field's value of the ReviewRecord entity.
// If the ReviewRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewRecordMutation) OldSymbolID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSymbolID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSymbolID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSymbolID: %w", err)
	}
	return oldValue.SymbolID, nil
}

// AddSymbolID adds i to the "symbol_id" field.
func (m *ReviewRecordMutation) AddSymbolID(i int) {
	if m.addsymbol_id != nil {
		*m.addsymbol_id += i
	} else {
		m.addsymbol_id = &i
	}
}

// AddedSymbolID returns the value that was added to the "symbol_id" field in this mutation.
func (m *ReviewRecordMutation) AddedSymbolID() (r int, exists bool) {
	v := m.addsymbol_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetSymbolID resets all changes to the "symbol_id" field.
func (m *ReviewRecordMutation) ResetSymbolID() {
	m.symbol_id = nil
	m.addsymbol_id = nil
}

// SetStage sets the "stage" field.
func (m *ReviewRecordMutation) SetStage(i int) {
	m.stage = &i
	m.addstage = nil
}

// Stage returns the value of the "stage" field in the mutation.
func (m *ReviewRecordMutation) Stage() (r int, exists bool) {
	v := m.stage
	if v == nil {
		return
	}
	return *v, true
}

// OldStage returns the old "stage" field's value of the ReviewRecord entity.
// If the ReviewRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewRecordMutation) OldStage(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStage: %w", err)
	}
	return oldValue.Stage, nil
}

// AddStage adds i to the "stage" field.
func (m *ReviewRecordMutation) AddStage(i int) {
	if m.addstage != nil {
		*m.addstage += i
	} else {
		m.addstage = &i
	}
}

// AddedStage returns the value that was added to the "stage" field in this mutation.
func (m *ReviewRecordMutation) AddedStage() (r int, exists bool) {
	v := m.addstage
	if v == nil {
		return
	}
	return *v, true
}

// ResetStage resets all changes to the "stage" field.
func (m *ReviewRecordMutation) ResetStage() {
	m.stage = nil
	m.addstage = nil
}

// SetNextDue sets the "next_due" field.
func (m *ReviewRecordMutation) SetNextDue(t time.Time) {
	m.next_due = &t
}

// NextDue returns the value of the "next_due" field in the mutation.
func (m *ReviewRecordMutation) NextDue() (r time.Time, exists bool) {
	v := m.next_due
	if v == nil {
		return
	}
	return *v, true
}

// OldNextDue returns the old "next_due" field's value of the ReviewRecord entity.
// If the ReviewRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewRecordMutation) OldNextDue(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNextDue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNextDue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNextDue: %w", err)
	}
	return oldValue.NextDue, nil
}

// ResetNextDue resets all changes to the "next_due" field.
func (m *ReviewRecordMutation) ResetNextDue() {
	m.next_due = nil
}

// SetCorrectCount sets the "correct_count" field.
func (m *ReviewRecordMutation) SetCorrectCount(i int) {
	m.correct_count = &i
	m.addcorrect_count = nil
}

// CorrectCount returns the value of the "correct_count" field in the mutation.
func (m *ReviewRecordMutation) CorrectCount() (r int, exists bool) {
	v := m.correct_count
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrectCount returns the old "correct_count" field's value of the ReviewRecord entity.
// If the ReviewRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewRecordMutation) OldCorrectCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrectCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrectCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrectCount: %w", err)
	}
	return oldValue.CorrectCount, nil
}

// AddCorrectCount adds i to the "correct_count" field.
func (m *ReviewRecordMutation) AddCorrectCount(i int) {
	if m.addcorrect_count != nil {
		*m.addcorrect_count += i
	} else {
		m.addcorrect_count = &i
	}
}

// AddedCorrectCount returns the value that was added to the "correct_count" field in this mutation.
func (m *ReviewRecordMutation) AddedCorrectCount() (r int, exists bool) {
	v := m.addcorrect_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetCorrectCount resets all changes to the "correct_count" field.
func (m *ReviewRecordMutation) ResetCorrectCount() {
	m.correct_count = nil
	m.addcorrect_count = nil
}

// SetIncorrectCount sets the "incorrect_count" field.
func (m *ReviewRecordMutation) SetIncorrectCount(i int) {
	m.incorrect_count = &i
	m.addincorrect_count = nil
}

// IncorrectCount returns the value of the "incorrect_count" field in the mutation.
func (m *ReviewRecordMutation) IncorrectCount() (r int, exists bool) {
	v := m.incorrect_count
	if v == nil {
		return
	}
	return *v, true
}

// OldIncorrectCount returns the old "incorrect_count" field's value of the ReviewRecord entity.
// If the ReviewRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewRecordMutation) OldIncorrectCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIncorrectCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIncorrectCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIncorrectCount: %w", err)
	}
	return oldValue.IncorrectCount, nil
}

// AddIncorrectCount adds i to the "incorrect_count" field.
func (m *ReviewRecordMutation) AddIncorrectCount(i int) {
	if m.addincorrect_count != nil {
		*m.addincorrect_count += i
	} else {
		m.addincorrect_count = &i
	}
}

// AddedIncorrectCount returns the value that was added to the "incorrect_count" field in this mutation.
func (m *ReviewRecordMutation) AddedIncorrectCount() (r int, exists bool) {
	v := m.addincorrect_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetIncorrectCount resets all changes to the "incorrect_count" field.
func (m *ReviewRecordMutation) ResetIncorrectCount() {
	m.incorrect_count = nil
	m.addincorrect_count = nil
}

// SetLastReviewed sets the "last_reviewed" field.
func (m *ReviewRecordMutation) SetLastReviewed(t time.Time) {
	m.last_reviewed = &t
}

// LastReviewed returns the value of the "last_reviewed" field in the mutation.
func (m *ReviewRecordMutation) LastReviewed() (r time.Time, exists bool) {
	v := m.last_reviewed
	if v == nil {
		return
	}
	return *v, true
}

// OldLastReviewed returns the old "last_reviewed" field's value of the ReviewRecord entity.
// If the ReviewRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewRecordMutation) OldLastReviewed(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastReviewed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastReviewed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastReviewed: %w", err)
	}
	return oldValue.LastReviewed, nil
}

// ClearLastReviewed clears the value of the "last_reviewed" field.
func (m *ReviewRecordMutation) ClearLastReviewed() {
	m.last_reviewed = nil
	m.clearedFields[reviewrecord.FieldLastReviewed] = struct{}{}
}

// LastReviewedCleared returns if the "last_reviewed" field was cleared in this mutation.
func (m *ReviewRecordMutation) LastReviewedCleared() bool {
	_, ok := m.clearedFields[reviewrecord.FieldLastReviewed]
	return ok
}

// ResetLastReviewed resets all changes to the "last_reviewed" field.
func (m *ReviewRecordMutation) ResetLastReviewed() {
	m.last_reviewed = nil
	delete(m.clearedFields, reviewrecord.FieldLastReviewed)
}

// SetCreatedAt sets the "created_at" field.
func (m *ReviewRecordMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ReviewRecordMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ReviewRecord entity.
// If the ReviewRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewRecordMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ReviewRecordMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the ReviewRecordMutation builder.
func (m *ReviewRecordMutation) Where(ps ...predicate.ReviewRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ReviewRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ReviewRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ReviewRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ReviewRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ReviewRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ReviewRecord).
func (m *ReviewRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ReviewRecordMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.symbol_id != nil {
		fields = append(fields, reviewrecord.FieldSymbolID)
	}
	if m.stage != nil {
		fields = append(fields, reviewrecord.FieldStage)
	}
	if m.next_due != nil {
		fields = append(fields, reviewrecord.FieldNextDue)
	}
	if m.correct_count != nil {
		fields = append(fields, reviewrecord.FieldCorrectCount)
	}
	if m.incorrect_count != nil {
		fields = append(fields, reviewrecord.FieldIncorrectCount)
	}
	if m.last_reviewed != nil {
		fields = append(fields, reviewrecord.FieldLastReviewed)
	}
	if m.created_at != nil {
		fields = append(fields, reviewrecord.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ReviewRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case reviewrecord.FieldSymbolID:
		return m.SymbolID()
	case reviewrecord.FieldStage:
		return m.Stage()
	case reviewrecord.FieldNextDue:
		return m.NextDue()
	case reviewrecord.FieldCorrectCount:
		return m.CorrectCount()
	case reviewrecord.FieldIncorrectCount:
		return m.IncorrectCount()
	case reviewrecord.FieldLastReviewed:
		return m.LastReviewed()
	case reviewrecord.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ReviewRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case reviewrecord.FieldSymbolID:
		return m.OldSymbolID(ctx)
	case reviewrecord.FieldStage:
		return m.OldStage(ctx)
	case reviewrecord.FieldNextDue:
		return m.OldNextDue(ctx)
	case reviewrecord.FieldCorrectCount:
		return m.OldCorrectCount(ctx)
	case reviewrecord.FieldIncorrectCount:
		return m.OldIncorrectCount(ctx)
	case reviewrecord.FieldLastReviewed:
		return m.OldLastReviewed(ctx)
	case reviewrecord.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ReviewRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReviewRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case reviewrecord.FieldSymbolID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSymbolID(v)
		return nil
	case reviewrecord.FieldStage:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStage(v)
		return nil
	case reviewrecord.FieldNextDue:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNextDue(v)
		return nil
	case reviewrecord.FieldCorrectCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrectCount(v)
		return nil
	case reviewrecord.FieldIncorrectCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIncorrectCount(v)
		return nil
	case reviewrecord.FieldLastReviewed:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastReviewed(v)
		return nil
	case reviewrecord.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ReviewRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ReviewRecordMutation) AddedFields() []string {
	var fields []string
	if m.addsymbol_id != nil {
		fields = append(fields, reviewrecord.FieldSymbolID)
	}
	if m.addstage != nil {
		fields = append(fields, reviewrecord.FieldStage)
	}
	if m.addcorrect_count != nil {
		fields = append(fields, reviewrecord.FieldCorrectCount)
	}
	if m.addincorrect_count != nil {
		fields = append(fields, reviewrecord.FieldIncorrectCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ReviewRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case reviewrecord.FieldSymbolID:
		return m.AddedSymbolID()
	case reviewrecord.FieldStage:
		return m.AddedStage()
	case reviewrecord.FieldCorrectCount:
		return m.AddedCorrectCount()
	case reviewrecord.FieldIncorrectCount:
		return m.AddedIncorrectCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReviewRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case reviewrecord.FieldSymbolID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSymbolID(v)
		return nil
	case reviewrecord.FieldStage:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStage(v)
		return nil
	case reviewrecord.FieldCorrectCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCorrectCount(v)
		return nil
	case reviewrecord.FieldIncorrectCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddIncorrectCount(v)
		return nil
	}
	return fmt.Errorf("unknown ReviewRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ReviewRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(reviewrecord.FieldLastReviewed) {
		fields = append(fields, reviewrecord.FieldLastReviewed)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ReviewRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ReviewRecordMutation) ClearField(name string) error {
	switch name {
	case reviewrecord.FieldLastReviewed:
		m.ClearLastReviewed()
		return nil
	}
	return fmt.Errorf("unknown ReviewRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ReviewRecordMutation) ResetField(name string) error {
	switch name {
	case reviewrecord.FieldSymbolID:
		m.ResetSymbolID()
		return nil
	case reviewrecord.FieldStage:
		m.ResetStage()
		return nil
	case reviewrecord.FieldNextDue:
		m.ResetNextDue()
		return nil
	case reviewrecord.FieldCorrectCount:
		m.ResetCorrectCount()
		return nil
	case reviewrecord.FieldIncorrectCount:
		m.ResetIncorrectCount()
		return nil
	case reviewrecord.FieldLastReviewed:
		m.ResetLastReviewed()
		return nil
	case reviewrecord.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ReviewRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ReviewRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ReviewRecordMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ReviewRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ReviewRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ReviewRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ReviewRecordMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ReviewRecordMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ReviewRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ReviewRecordMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ReviewRecord edge %s", name)
}

// SchemaMigrationMutation represents an operation that mutates the SchemaMigration nodes in the graph.
type SchemaMigrationMutation struct {
	config
	op            Op
	typ           string
	id            *int
	version       *int
	addversion    *int
	name          *string
	applied_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*SchemaMigration, error)
	predicates    []predicate.SchemaMigration
}

var _ ent.Mutation = (*SchemaMigrationMutation)(nil)

// schemamigrationOption allows management of the mutation configuration using functional options.
type schemamigrationOption func(*SchemaMigrationMutation)

// newSchemaMigrationMutation creates new mutation for the SchemaMigration entity.
func newSchemaMigrationMutation(c config, op Op, opts ...schemamigrationOption) *SchemaMigrationMutation {
	m := &SchemaMigrationMutation{
		config:        c,
		op:            op,
		typ:           TypeSchemaMigration,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSchemaMigrationID sets the ID field of the mutation.
func withSchemaMigrationID(id int) schemamigrationOption {
	return func(m *SchemaMigrationMutation) {
		var (
			err   error
			once  sync.Once
			value *SchemaMigration
		)
		m.oldValue = func(ctx context.Context) (*SchemaMigration, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SchemaMigration.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSchemaMigration sets the old SchemaMigration of the mutation.
func withSchemaMigration(node *SchemaMigration) schemamigrationOption {
	return func(m *SchemaMigrationMutation) {
		m.oldValue = func(context.Context) (*SchemaMigration, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SchemaMigrationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SchemaMigrationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SchemaMigrationMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SchemaMigrationMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SchemaMigration.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetVersion sets the "version" field.
func (m *SchemaMigrationMutation) SetVersion(i int) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *SchemaMigrationMutation) Version() (r int, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the SchemaMigration entity.
// If the SchemaMigration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SchemaMigrationMutation) OldVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *SchemaMigrationMutation) AddVersion(i int) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *SchemaMigrationMutation) AddedVersion() (r int, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *SchemaMigrationMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetName sets the "name" field.
func (m *SchemaMigrationMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *SchemaMigrationMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the SchemaMigration entity.
// If the SchemaMigration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SchemaMigrationMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *SchemaMigrationMutation) ResetName() {
	m.name = nil
}

// SetAppliedAt sets the "applied_at" field.
func (m *SchemaMigrationMutation) SetAppliedAt(t time.Time) {
	m.applied_at = &t
}

// AppliedAt returns the value of the "applied_at" field in the mutation.
func (m *SchemaMigrationMutation) AppliedAt() (r time.Time, exists bool) {
	v := m.applied_at
	if v == nil {
		return
	}
	return *v, true
}

// OldAppliedAt returns the old "applied_at" field's value of the SchemaMigration entity.
// If the SchemaMigration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SchemaMigrationMutation) OldAppliedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAppliedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAppliedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAppliedAt: %w", err)
	}
	return oldValue.AppliedAt, nil
}

// ResetAppliedAt resets all changes to the "applied_at" field.
func (m *SchemaMigrationMutation) ResetAppliedAt() {
	m.applied_at = nil
}

// Where appends a list predicates to the SchemaMigrationMutation builder.
func (m *SchemaMigrationMutation) Where(ps ...predicate.SchemaMigration) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SchemaMigrationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SchemaMigrationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SchemaMigration, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SchemaMigrationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SchemaMigrationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SchemaMigration).
func (m *SchemaMigrationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SchemaMigrationMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.version != nil {
		fields = append(fields, schemamigration.FieldVersion)
	}
	if m.name != nil {
		fields = append(fields, schemamigration.FieldName)
	}
	if m.applied_at != nil {
		fields = append(fields, schemamigration.FieldAppliedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SchemaMigrationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case schemamigration.FieldVersion:
		return m.Version()
	case schemamigration.FieldName:
		return m.Name()
	case schemamigration.FieldAppliedAt:
		return m.AppliedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SchemaMigrationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case schemamigration.FieldVersion:
		return m.OldVersion(ctx)
	case schemamigration.FieldName:
		return m.OldName(ctx)
	case schemamigration.FieldAppliedAt:
		return m.OldAppliedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SchemaMigration field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SchemaMigrationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case schemamigration.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case schemamigration.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case schemamigration.FieldAppliedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAppliedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SchemaMigration field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SchemaMigrationMutation) AddedFields() []string {
	var fields []string
	if m.addversion != nil {
		fields = append(fields, schemamigration.FieldVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SchemaMigrationMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case schemamigration.FieldVersion:
		return m.AddedVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SchemaMigrationMutation) AddField(name string, value ent.Value) error {
	switch name {
	case schemamigration.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	}
	return fmt.Errorf("unknown SchemaMigration numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SchemaMigrationMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SchemaMigrationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SchemaMigrationMutation) ClearField(name string) error {
	return fmt.Errorf("unknown SchemaMigration nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SchemaMigrationMutation) ResetField(name string) error {
	switch name {
	case schemamigration.FieldVersion:
		m.ResetVersion()
		return nil
	case schemamigration.FieldName:
		m.ResetName()
		return nil
	case schemamigration.FieldAppliedAt:
		m.ResetAppliedAt()
		return nil
	}
	return fmt.Errorf("unknown SchemaMigration field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SchemaMigrationMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SchemaMigrationMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SchemaMigrationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SchemaMigrationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SchemaMigrationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SchemaMigrationMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SchemaMigrationMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SchemaMigration unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SchemaMigrationMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SchemaMigration edge %s", name)
}

// SymbolMutation represents an operation that mutates the Symbol nodes in the graph.
type SymbolMutation struct {
	config
	op              Op
	typ             string
	id              *int
	glyph           *string
	romaji          *string
	kind            *symbol.Kind
	batch_number    *int
	addbatch_number *int
	created_at      *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*Symbol, error)
	predicates      []predicate.Symbol
}

var _ ent.Mutation = (*SymbolMutation)(nil)

// symbolOption allows management of the mutation configuration using functional options.
type symbolOption func(*SymbolMutation)

// newSymbolMutation creates new mutation for the Symbol entity.
func newSymbolMutation(c config, op Op, opts ...symbolOption) *SymbolMutation {
	m := &SymbolMutation{
		config:        c,
		op:            op,
		typ:           TypeSymbol,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSymbolID sets the ID field of the mutation.
func withSymbolID(id int) symbolOption {
	return func(m *SymbolMutation) {
		var (
			err   error
			once  sync.Once
			value *Symbol
		)
		m.oldValue = func(ctx context.Context) (*Symbol, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Symbol.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSymbol sets the old Symbol of the mutation.
func withSymbol(node *Symbol) symbolOption {
	return func(m *SymbolMutation) {
		m.oldValue = func(context.Context) (*Symbol, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SymbolMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SymbolMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SymbolMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SymbolMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Symbol.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetGlyph sets the "glyph" field.
func (m *SymbolMutation) SetGlyph(s string) {
	m.glyph = &s
}

// Glyph returns the value of the "glyph" field in the mutation.
func (m *SymbolMutation) Glyph() (r string, exists bool) {
	v := m.glyph
	if v == nil {
		return
	}
	return *v, true
}

// OldGlyph returns the old "glyph" field's value of the Symbol entity.
// If the Symbol object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SymbolMutation) OldGlyph(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGlyph is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGlyph requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGlyph: %w", err)
	}
	return oldValue.Glyph, nil
}

// ResetGlyph resets all changes to the "glyph" field.
func (m *SymbolMutation) ResetGlyph() {
	m.glyph = nil
}

// SetRomaji sets the "romaji" field.
func (m *SymbolMutation) SetRomaji(s string) {
	m.romaji = &s
}

// Romaji returns the value of the "romaji" field in the mutation.
func (m *SymbolMutation) Romaji() (r string, exists bool) {
	v := m.romaji
	if v == nil {
		return
	}
	return *v, true
}

// OldRomaji returns the old "romaji" field's value of the Symbol entity.
// If the Symbol object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SymbolMutation) OldRomaji(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRomaji is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRomaji requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRomaji: %w", err)
	}
	return oldValue.Romaji, nil
}

// ResetRomaji resets all changes to the "romaji" field.
func (m *SymbolMutation) ResetRomaji() {
	m.romaji = nil
}

// SetKind sets the "kind" field.
func (m *SymbolMutation) SetKind(s symbol.Kind) {
	m.kind = &s
}

// Kind returns the value of the "kind" field in the mutation.
func (m *SymbolMutation) Kind() (r symbol.Kind, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the Symbol entity.
// If the Symbol object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SymbolMutation) OldKind(ctx context.Context) (v symbol.Kind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *SymbolMutation) ResetKind() {
	m.kind = nil
}

// SetBatchNumber sets the "batch_number" field.
func (m *SymbolMutation) SetBatchNumber(i int) {
	m.batch_number = &i
	m.addbatch_number = nil
}

// BatchNumber returns the value of the "batch_number" field in the mutation.
func (m *SymbolMutation) BatchNumber() (r int, exists bool) {
	v := m.batch_number
	if v == nil {
		return
	}
	return *v, true
}

// OldBatchNumber returns the old "batch_number" field's value of the Symbol entity.
// If the Symbol object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SymbolMutation) OldBatchNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBatchNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBatchNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBatchNumber: %w", err)
	}
	return oldValue.BatchNumber, nil
}

// AddBatchNumber adds i to the "batch_number" field.
func (m *SymbolMutation) AddBatchNumber(i int) {
	if m.addbatch_number != nil {
		*m.addbatch_number += i
	} else {
		m.addbatch_number = &i
	}
}

// AddedBatchNumber returns the value that was added to the "batch_number" field in this mutation.
func (m *SymbolMutation) AddedBatchNumber() (r int, exists bool) {
	v := m.addbatch_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetBatchNumber resets all changes to the "batch_number" field.
func (m *SymbolMutation) ResetBatchNumber() {
	m.batch_number = nil
	m.addbatch_number = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *SymbolMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SymbolMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Symbol entity.
// If the Symbol object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SymbolMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SymbolMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the SymbolMutation builder.
func (m *SymbolMutation) Where(ps ...predicate.Symbol) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SymbolMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SymbolMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Symbol, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SymbolMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SymbolMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Symbol).
func (m *SymbolMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SymbolMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.glyph != nil {
		fields = append(fields, symbol.FieldGlyph)
	}
	if m.romaji != nil {
		fields = append(fields, symbol.FieldRomaji)
	}
	if m.kind != nil {
		fields = append(fields, symbol.FieldKind)
	}
	if m.batch_number != nil {
		fields = append(fields, symbol.FieldBatchNumber)
	}
	if m.created_at != nil {
		fields = append(fields, symbol.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SymbolMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case symbol.FieldGlyph:
		return m.Glyph()
	case symbol.FieldRomaji:
		return m.Romaji()
	case symbol.FieldKind:
		return m.Kind()
	case symbol.FieldBatchNumber:
		return m.BatchNumber()
	case symbol.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SymbolMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case symbol.FieldGlyph:
		return m.OldGlyph(ctx)
	case symbol.FieldRomaji:
		return m.OldRomaji(ctx)
	case symbol.FieldKind:
		return m.OldKind(ctx)
	case symbol.FieldBatchNumber:
		return m.OldBatchNumber(ctx)
	case symbol.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Symbol field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SymbolMutation) SetField(name string, value ent.Value) error {
	switch name {
	case symbol.FieldGlyph:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGlyph(v)
		return nil
	case symbol.FieldRomaji:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRomaji(v)
		return nil
	case symbol.FieldKind:
		v, ok := value.(symbol.Kind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case symbol.FieldBatchNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBatchNumber(v)
		return nil
	case symbol.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Symbol field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SymbolMutation) AddedFields() []string {
	var fields []string
	if m.addbatch_number != nil {
		fields = append(fields, symbol.FieldBatchNumber)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SymbolMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case symbol.FieldBatchNumber:
		return m.AddedBatchNumber()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SymbolMutation) AddField(name string, value ent.Value) error {
	switch name {
	case symbol.FieldBatchNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBatchNumber(v)
		return nil
	}
	return fmt.Errorf("unknown Symbol numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SymbolMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SymbolMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SymbolMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Symbol nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SymbolMutation) ResetField(name string) error {
	switch name {
	case symbol.FieldGlyph:
		m.ResetGlyph()
		return nil
	case symbol.FieldRomaji:
		m.ResetRomaji()
		return nil
	case symbol.FieldKind:
		m.ResetKind()
		return nil
	case symbol.FieldBatchNumber:
		m.ResetBatchNumber()
		return nil
	case symbol.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Symbol field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SymbolMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SymbolMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SymbolMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SymbolMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SymbolMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SymbolMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SymbolMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Symbol unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SymbolMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Symbol edge %s", name)
}

// UserNoteMutation represents an operation that mutates the UserNote nodes in the graph.
type UserNoteMutation struct {
	config
	op            Op
	typ           string
	id            *int
	symbol_id     *int
	addsymbol_id  *int
	note          *string
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*UserNote, error)
	predicates    []predicate.UserNote
}

var _ ent.Mutation = (*UserNoteMutation)(nil)

// usernoteOption allows management of the mutation configuration using functional options.
type usernoteOption func(*UserNoteMutation)

// newUserNoteMutation creates new mutation for the UserNote entity.
func newUserNoteMutation(c config, op Op, opts ...usernoteOption) *UserNoteMutation {
	m := &UserNoteMutation{
		config:        c,
		op:            op,
		typ:           TypeUserNote,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserNoteID sets the ID field of the mutation.
func withUserNoteID(id int) usernoteOption {
	return func(m *UserNoteMutation) {
		var (
			err   error
			once  sync.Once
			value *UserNote
		)
		m.oldValue = func(ctx context.Context) (*UserNote, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().UserNote.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUserNote sets the old UserNote of the mutation.
func withUserNote(node *UserNote) usernoteOption {
	return func(m *UserNoteMutation) {
		m.oldValue = func(context.Context) (*UserNote, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserNoteMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserNoteMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserNoteMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserNoteMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().UserNote.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSymbolID sets the "symbol_id" field.
func (m *UserNoteMutation) SetSymbolID(i int) {
	m.symbol_id = &i
	m.addsymbol_id = nil
}

// SymbolID returns the value of the "symbol_id" field in the mutation.
func (m *UserNoteMutation) SymbolID() (r int, exists bool) {
	v := m.symbol_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSymbolID returns the old "symbol_id" field's value of the UserNote entity.
// If the UserNote object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserNoteMutation) OldSymbolID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSymbolID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSymbolID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSymbolID: %w", err)
	}
	return oldValue.SymbolID, nil
}

// AddSymbolID adds i to the "symbol_id" field.
func (m *UserNoteMutation) AddSymbolID(i int) {
	if m.addsymbol_id != nil {
		*m.addsymbol_id += i
	} else {
		m.addsymbol_id = &i
	}
}

// AddedSymbolID returns the value that was added to the "symbol_id" field in this mutation.
func (m *UserNoteMutation) AddedSymbolID() (r int, exists bool) {
	v := m.addsymbol_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetSymbolID resets all changes to the "symbol_id" field.
func (m *UserNoteMutation) ResetSymbolID() {
	m.symbol_id = nil
	m.addsymbol_id = nil
}

// SetNote sets the "note" field.
func (m *UserNoteMutation) SetNote(s string) {
	m.note = &s
}

// Note returns the value of the "note" field in the mutation.
func (m *UserNoteMutation) Note() (r string, exists bool) {
	v := m.note
	if v == nil {
		return
	}
	return *v, true
}

// OldNote returns the old "note" field's value of the UserNote entity.
// If the UserNote object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserNoteMutation) OldNote(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNote is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNote requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNote: %w", err)
	}
	return oldValue.Note, nil
}

// ResetNote resets all changes to the "note" field.
func (m *UserNoteMutation) ResetNote() {
	m.note = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *UserNoteMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserNoteMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the UserNote entity.
// If the UserNote object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserNoteMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UserNoteMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UserNoteMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UserNoteMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the UserNote entity.
// If the UserNote object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserNoteMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *UserNoteMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the UserNoteMutation builder.
func (m *UserNoteMutation) Where(ps ...predicate.UserNote) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserNoteMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserNoteMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.UserNote, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserNoteMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserNoteMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (UserNote).
func (m *UserNoteMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserNoteMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.symbol_id != nil {
		fields = append(fields, usernote.FieldSymbolID)
	}
	if m.note != nil {
		fields = append(fields, usernote.FieldNote)
	}
	if m.created_at != nil {
		fields = append(fields, usernote.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, usernote.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserNoteMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case usernote.FieldSymbolID:
		return m.SymbolID()
	case usernote.FieldNote:
		return m.Note()
	case usernote.FieldCreatedAt:
		return m.CreatedAt()
	case usernote.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserNoteMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case usernote.FieldSymbolID:
		return m.OldSymbolID(ctx)
	case usernote.FieldNote:
		return m.OldNote(ctx)
	case usernote.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case usernote.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown UserNote field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserNoteMutation) SetField(name string, value ent.Value) error {
	switch name {
	case usernote.FieldSymbolID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSymbolID(v)
		return nil
	case usernote.FieldNote:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNote(v)
		return nil
	case usernote.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case usernote.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown UserNote field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserNoteMutation) AddedFields() []string {
	var fields []string
	if m.addsymbol_id != nil {
		fields = append(fields, usernote.FieldSymbolID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserNoteMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case usernote.FieldSymbolID:
		return m.AddedSymbolID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserNoteMutation) AddField(name string, value ent.Value) error {
	switch name {
	case usernote.FieldSymbolID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSymbolID(v)
		return nil
	}
	return fmt.Errorf("unknown UserNote numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserNoteMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserNoteMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserNoteMutation) ClearField(name string) error {
	return fmt.Errorf("unknown UserNote nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserNoteMutation) ResetField(name string) error {
	switch name {
	case usernote.FieldSymbolID:
		m.ResetSymbolID()
		return nil
	case usernote.FieldNote:
		m.ResetNote()
		return nil
	case usernote.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case usernote.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown UserNote field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserNoteMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserNoteMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserNoteMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserNoteMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserNoteMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserNoteMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserNoteMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown UserNote unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserNoteMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown UserNote edge %s", name)
}
