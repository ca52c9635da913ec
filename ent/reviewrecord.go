// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/kanado/ent/reviewrecord"
)

// ReviewRecord is the model entity for the ReviewRecord schema.
type ReviewRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Owning symbol, one record per symbol
	SymbolID int `json:"symbol_id,omitempty"`
	// Spaced-repetition stage, 0..7
	Stage int `json:"stage,omitempty"`
	// When the symbol next comes up for review
	NextDue time.Time `json:"next_due,omitempty"`
	// CorrectCount holds the value of the "correct_count" field.
	CorrectCount int `json:"correct_count,omitempty"`
	// IncorrectCount holds the value of the "incorrect_count" field.
	IncorrectCount int `json:"incorrect_count,omitempty"`
	// Unset until the first answer is submitted
	LastReviewed *time.Time `json:"last_reviewed,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ReviewRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case reviewrecord.FieldID, reviewrecord.FieldSymbolID, reviewrecord.FieldStage, reviewrecord.FieldCorrectCount, reviewrecord.FieldIncorrectCount:
			values[i] = new(sql.NullInt64)
		case reviewrecord.FieldNextDue, reviewrecord.FieldLastReviewed, reviewrecord.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ReviewRecord fields.
func (rr *ReviewRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case reviewrecord.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			rr.ID = int(value.Int64)
		case reviewrecord.FieldSymbolID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field symbol_id", values[i])
			} else if value.Valid {
				rr.SymbolID = int(value.Int64)
			}
		case reviewrecord.FieldStage:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field stage", values[i])
			} else if value.Valid {
				rr.Stage = int(value.Int64)
			}
		case reviewrecord.FieldNextDue:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field next_due", values[i])
			} else if value.Valid {
				rr.NextDue = value.Time
			}
		case reviewrecord.FieldCorrectCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field correct_count", values[i])
			} else if value.Valid {
				rr.CorrectCount = int(value.Int64)
			}
		case reviewrecord.FieldIncorrectCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field incorrect_count", values[i])
			} else if value.Valid {
				rr.IncorrectCount = int(value.Int64)
			}
		case reviewrecord.FieldLastReviewed:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_reviewed", values[i])
			} else if value.Valid {
				rr.LastReviewed = new(time.Time)
				*rr.LastReviewed = value.Time
			}
		case reviewrecord.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				rr.CreatedAt = value.Time
			}
		default:
			rr.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ReviewRecord.
// This includes values selected through modifiers, order, etc.
func (rr *ReviewRecord) Value(name string) (ent.Value, error) {
	return rr.selectValues.Get(name)
}

// Update returns a builder for updating this ReviewRecord.
// Note that you need to call ReviewRecord.Unwrap() before calling this method if this ReviewRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (rr *ReviewRecord) Update() *ReviewRecordUpdateOne {
	return NewReviewRecordClient(rr.config).UpdateOne(rr)
}

// Unwrap unwraps the ReviewRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (rr *ReviewRecord) Unwrap() *ReviewRecord {
	_tx, ok := rr.config.driver.(*txDriver)
	if !ok {
		panic("ent: ReviewRecord is not a transactional entity")
	}
	rr.config.driver = _tx.drv
	return rr
}

// String implements the fmt.Stringer.
func (rr *ReviewRecord) String() string {
	var builder strings.Builder
	builder.WriteString("ReviewRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", rr.ID))
	builder.WriteString("symbol_id=")
	builder.WriteString(fmt.Sprintf("%v", rr.SymbolID))
	builder.WriteString(", ")
	builder.WriteString("stage=")
	builder.WriteString(fmt.Sprintf("%v", rr.Stage))
	builder.WriteString(", ")
	builder.WriteString("next_due=")
	builder.WriteString(rr.NextDue.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("correct_count=")
	builder.WriteString(fmt.Sprintf("%v", rr.CorrectCount))
	builder.WriteString(", ")
	builder.WriteString("incorrect_count=")
	builder.WriteString(fmt.Sprintf("%v", rr.IncorrectCount))
	builder.WriteString(", ")
	if v := rr.LastReviewed; v != nil {
		builder.WriteString("last_reviewed=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(rr.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ReviewRecords is a parsable slice of ReviewRecord.
type ReviewRecords []*ReviewRecord
