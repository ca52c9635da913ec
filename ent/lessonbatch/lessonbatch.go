// Code generated by ent, DO NOT EDIT.

package lessonbatch

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the lessonbatch type in the database.
	Label = "lesson_batch"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldBatchNumber holds the string denoting the batch_number field in the database.
	FieldBatchNumber = "batch_number"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldCompleted holds the string denoting the completed field in the database.
	FieldCompleted = "completed"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// Table holds the table name of the lessonbatch in the database.
	Table = "lesson_batches"
)

// Columns holds all SQL columns for lessonbatch fields.
var Columns = []string{
	FieldID,
	FieldBatchNumber,
	FieldName,
	FieldDescription,
	FieldCompleted,
	FieldCompletedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// BatchNumberValidator is a validator for the "batch_number" field. It is called by the builders before save.
	BatchNumberValidator func(int) error
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// DescriptionValidator is a validator for the "description" field. It is called by the builders before save.
	DescriptionValidator func(string) error
	// DefaultCompleted holds the default value on creation for the "completed" field.
	DefaultCompleted bool
)

// OrderOption defines the ordering options for the LessonBatch queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByBatchNumber orders the results by the batch_number field.
func ByBatchNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBatchNumber, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByCompleted orders the results by the completed field.
func ByCompleted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompleted, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}
