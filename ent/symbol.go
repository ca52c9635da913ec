// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/kanado/ent/symbol"
)

// Symbol is the model entity for the Symbol schema.
type Symbol struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// The written katakana character
	Glyph string `json:"glyph,omitempty"`
	// Phonetic transliteration, lowercase
	Romaji string `json:"romaji,omitempty"`
	// Character category
	Kind symbol.Kind `json:"kind,omitempty"`
	// Lesson batch that introduces this symbol
	BatchNumber int `json:"batch_number,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Symbol) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case symbol.FieldID, symbol.FieldBatchNumber:
			values[i] = new(sql.NullInt64)
		case symbol.FieldGlyph, symbol.FieldRomaji, symbol.FieldKind:
			values[i] = new(sql.NullString)
		case symbol.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Symbol fields.
func (s *Symbol) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case symbol.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			s.ID = int(value.Int64)
		case symbol.FieldGlyph:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field glyph", values[i])
			} else if value.Valid {
				s.Glyph = value.String
			}
		case symbol.FieldRomaji:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field romaji", values[i])
			} else if value.Valid {
				s.Romaji = value.String
			}
		case symbol.FieldKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field kind", values[i])
			} else if value.Valid {
				s.Kind = symbol.Kind(value.String)
			}
		case symbol.FieldBatchNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field batch_number", values[i])
			} else if value.Valid {
				s.BatchNumber = int(value.Int64)
			}
		case symbol.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				s.CreatedAt = value.Time
			}
		default:
			s.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Symbol.
// This includes values selected through modifiers, order, etc.
func (s *Symbol) Value(name string) (ent.Value, error) {
	return s.selectValues.Get(name)
}

// Update returns a builder for updating this Symbol.
// Note that you need to call Symbol.Unwrap() before calling this method if this Symbol
// was returned from a transaction, and the transaction was committed or rolled back.
func (s *Symbol) Update() *SymbolUpdateOne {
	return NewSymbolClient(s.config).UpdateOne(s)
}

// Unwrap unwraps the Symbol entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (s *Symbol) Unwrap() *Symbol {
	_tx, ok := s.config.driver.(*txDriver)
	if !ok {
		panic("ent: Symbol is not a transactional entity")
	}
	s.config.driver = _tx.drv
	return s
}

// String implements the fmt.Stringer.
func (s *Symbol) String() string {
	var builder strings.Builder
	builder.WriteString("Symbol(")
	builder.WriteString(fmt.Sprintf("id=%v, ", s.ID))
	builder.WriteString("glyph=")
	builder.WriteString(s.Glyph)
	builder.WriteString(", ")
	builder.WriteString("romaji=")
	builder.WriteString(s.Romaji)
	builder.WriteString(", ")
	builder.WriteString("kind=")
	builder.WriteString(fmt.Sprintf("%v", s.Kind))
	builder.WriteString(", ")
	builder.WriteString("batch_number=")
	builder.WriteString(fmt.Sprintf("%v", s.BatchNumber))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(s.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Symbols is a parsable slice of Symbol.
type Symbols []*Symbol
