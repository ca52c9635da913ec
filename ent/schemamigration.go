// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/kanado/ent/schemamigration"
)

// SchemaMigration is the model entity for the SchemaMigration schema.
type SchemaMigration struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Version holds the value of the "version" field.
	Version int `json:"version,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// AppliedAt holds the value of the "applied_at" field.
	AppliedAt    time.Time `json:"applied_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SchemaMigration) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case schemamigration.FieldID, schemamigration.FieldVersion:
			values[i] = new(sql.NullInt64)
		case schemamigration.FieldName:
			values[i] = new(sql.NullString)
		case schemamigration.FieldAppliedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SchemaMigration fields.
func (sm *SchemaMigration) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case schemamigration.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			sm.ID = int(value.Int64)
		case schemamigration.FieldVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field version", values[i])
			} else if value.Valid {
				sm.Version = int(value.Int64)
			}
		case schemamigration.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				sm.Name = value.String
			}
		case schemamigration.FieldAppliedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field applied_at", values[i])
			} else if value.Valid {
				sm.AppliedAt = value.Time
			}
		default:
			sm.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SchemaMigration.
// This includes values selected through modifiers, order, etc.
func (sm *SchemaMigration) Value(name string) (ent.Value, error) {
	return sm.selectValues.Get(name)
}

// Update returns a builder for updating this SchemaMigration.
// Note that you need to call SchemaMigration.Unwrap() before calling this method if this SchemaMigration
// was returned from a transaction, and the transaction was committed or rolled back.
func (sm *SchemaMigration) Update() *SchemaMigrationUpdateOne {
	return NewSchemaMigrationClient(sm.config).UpdateOne(sm)
}

// Unwrap unwraps the SchemaMigration entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (sm *SchemaMigration) Unwrap() *SchemaMigration {
	_tx, ok := sm.config.driver.(*txDriver)
	if !ok {
		panic("ent: SchemaMigration is not a transactional entity")
	}
	sm.config.driver = _tx.drv
	return sm
}

// String implements the fmt.Stringer.
func (sm *SchemaMigration) String() string {
	var builder strings.Builder
	builder.WriteString("SchemaMigration(")
	builder.WriteString(fmt.Sprintf("id=%v, ", sm.ID))
	builder.WriteString("version=")
	builder.WriteString(fmt.Sprintf("%v", sm.Version))
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(sm.Name)
	builder.WriteString(", ")
	builder.WriteString("applied_at=")
	builder.WriteString(sm.AppliedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SchemaMigrations is a parsable slice of SchemaMigration.
type SchemaMigrations []*SchemaMigration
