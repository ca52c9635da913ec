// Code generated by ent, DO NOT EDIT.

package symbol

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the symbol type in the database.
	Label = "symbol"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldGlyph holds the string denoting the glyph field in the database.
	FieldGlyph = "glyph"
	// FieldRomaji holds the string denoting the romaji field in the database.
	FieldRomaji = "romaji"
	// FieldKind holds the string denoting the kind field in the database.
	FieldKind = "kind"
	// FieldBatchNumber holds the string denoting the batch_number field in the database.
	FieldBatchNumber = "batch_number"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the symbol in the database.
	Table = "symbols"
)

// Columns holds all SQL columns for symbol fields.
var Columns = []string{
	FieldID,
	FieldGlyph,
	FieldRomaji,
	FieldKind,
	FieldBatchNumber,
	FieldCreatedAt,
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
	// GlyphValidator is a validator for the "glyph" field. It is called by the builders before save.
	GlyphValidator func(string) error
	// RomajiValidator is a validator for the "romaji" field. It is called by the builders before save.
	RomajiValidator func(string) error
	// BatchNumberValidator is a validator for the "batch_number" field. It is called by the builders before save.
	BatchNumberValidator func(int) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Kind defines the type for the "kind" enum field.
type Kind string

// Kind values.
const (
	KindBasic   Kind = "basic"
	KindDakuten Kind = "dakuten"
	KindCombo   Kind = "combo"
)

func (k Kind) String() string {
	return string(k)
}

// KindValidator is a validator for the "kind" field enum values. It is called by the builders before save.
func KindValidator(k Kind) error {
	switch k {
	case KindBasic, KindDakuten, KindCombo:
		return nil
	default:
		return fmt.Errorf("symbol: invalid enum value for kind field: %q", k)
	}
}

// OrderOption defines the ordering options for the Symbol queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByGlyph orders the results by the glyph field.
func ByGlyph(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGlyph, opts...).ToFunc()
}

// ByRomaji orders the results by the romaji field.
func ByRomaji(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRomaji, opts...).ToFunc()
}

// ByKind orders the results by the kind field.
func ByKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKind, opts...).ToFunc()
}

// ByBatchNumber orders the results by the batch_number field.
func ByBatchNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBatchNumber, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
