// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/kanado/ent/lessonbatch"
)

// LessonBatch is the model entity for the LessonBatch schema.
type LessonBatch struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Sequence number defining the total lesson order
	BatchNumber int `json:"batch_number,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// Completed holds the value of the "completed" field.
	Completed bool `json:"completed,omitempty"`
	// Unset until the batch is completed
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LessonBatch) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case lessonbatch.FieldCompleted:
			values[i] = new(sql.NullBool)
		case lessonbatch.FieldID, lessonbatch.FieldBatchNumber:
			values[i] = new(sql.NullInt64)
		case lessonbatch.FieldName, lessonbatch.FieldDescription:
			values[i] = new(sql.NullString)
		case lessonbatch.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LessonBatch fields.
func (lb *LessonBatch) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case lessonbatch.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			lb.ID = int(value.Int64)
		case lessonbatch.FieldBatchNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field batch_number", values[i])
			} else if value.Valid {
				lb.BatchNumber = int(value.Int64)
			}
		case lessonbatch.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				lb.Name = value.String
			}
		case lessonbatch.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				lb.Description = value.String
			}
		case lessonbatch.FieldCompleted:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field completed", values[i])
			} else if value.Valid {
				lb.Completed = value.Bool
			}
		case lessonbatch.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				lb.CompletedAt = new(time.Time)
				*lb.CompletedAt = value.Time
			}
		default:
			lb.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the LessonBatch.
// This includes values selected through modifiers, order, etc.
func (lb *LessonBatch) Value(name string) (ent.Value, error) {
	return lb.selectValues.Get(name)
}

// Update returns a builder for updating this LessonBatch.
// Note that you need to call LessonBatch.Unwrap() before calling this method if this LessonBatch
// was returned from a transaction, and the transaction was committed or rolled back.
func (lb *LessonBatch) Update() *LessonBatchUpdateOne {
	return NewLessonBatchClient(lb.config).UpdateOne(lb)
}

// Unwrap unwraps the LessonBatch entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (lb *LessonBatch) Unwrap() *LessonBatch {
	_tx, ok := lb.config.driver.(*txDriver)
	if !ok {
		panic("ent: LessonBatch is not a transactional entity")
	}
	lb.config.driver = _tx.drv
	return lb
}

// String implements the fmt.Stringer.
func (lb *LessonBatch) String() string {
	var builder strings.Builder
	builder.WriteString("LessonBatch(")
	builder.WriteString(fmt.Sprintf("id=%v, ", lb.ID))
	builder.WriteString("batch_number=")
	builder.WriteString(fmt.Sprintf("%v", lb.BatchNumber))
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(lb.Name)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(lb.Description)
	builder.WriteString(", ")
	builder.WriteString("completed=")
	builder.WriteString(fmt.Sprintf("%v", lb.Completed))
	builder.WriteString(", ")
	if v := lb.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// LessonBatches is a parsable slice of LessonBatch.
type LessonBatches []*LessonBatch
