// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/kanado/ent/usernote"
)

// UserNote is the model entity for the UserNote schema.
type UserNote struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// SymbolID holds the value of the "symbol_id" field.
	SymbolID int `json:"symbol_id,omitempty"`
	// Note holds the value of the "note" field.
	Note string `json:"note,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*UserNote) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case usernote.FieldID, usernote.FieldSymbolID:
			values[i] = new(sql.NullInt64)
		case usernote.FieldNote:
			values[i] = new(sql.NullString)
		case usernote.FieldCreatedAt, usernote.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the UserNote fields.
func (un *UserNote) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case usernote.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			un.ID = int(value.Int64)
		case usernote.FieldSymbolID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field symbol_id", values[i])
			} else if value.Valid {
				un.SymbolID = int(value.Int64)
			}
		case usernote.FieldNote:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field note", values[i])
			} else if value.Valid {
				un.Note = value.String
			}
		case usernote.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				un.CreatedAt = value.Time
			}
		case usernote.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				un.UpdatedAt = value.Time
			}
		default:
			un.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the UserNote.
// This includes values selected through modifiers, order, etc.
func (un *UserNote) Value(name string) (ent.Value, error) {
	return un.selectValues.Get(name)
}

// Update returns a builder for updating this UserNote.
// Note that you need to call UserNote.Unwrap() before calling this method if this UserNote
// was returned from a transaction, and the transaction was committed or rolled back.
func (un *UserNote) Update() *UserNoteUpdateOne {
	return NewUserNoteClient(un.config).UpdateOne(un)
}

// Unwrap unwraps the UserNote entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (un *UserNote) Unwrap() *UserNote {
	_tx, ok := un.config.driver.(*txDriver)
	if !ok {
		panic("ent: UserNote is not a transactional entity")
	}
	un.config.driver = _tx.drv
	return un
}

// String implements the fmt.Stringer.
func (un *UserNote) String() string {
	var builder strings.Builder
	builder.WriteString("UserNote(")
	builder.WriteString(fmt.Sprintf("id=%v, ", un.ID))
	builder.WriteString("symbol_id=")
	builder.WriteString(fmt.Sprintf("%v", un.SymbolID))
	builder.WriteString(", ")
	builder.WriteString("note=")
	builder.WriteString(un.Note)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(un.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(un.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// UserNotes is a parsable slice of UserNote.
type UserNotes []*UserNote
