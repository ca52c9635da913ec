package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// LessonBatch is an ordered group of symbols introduced together.
// The completed flag transitions false -> true exactly once and never
// reverts.
type LessonBatch struct {
	ent.Schema
}

func (LessonBatch) Fields() []ent.Field {
	return []ent.Field{
		field.Int("batch_number").
			Positive().
			Unique().
			Immutable().
			Comment("Sequence number defining the total lesson order"),
		field.String("name").
			NotEmpty(),
		field.String("description").
			NotEmpty(),
		field.Bool("completed").
			Default(false),
		field.Time("completed_at").
			Optional().
			Nillable().
			Comment("Unset until the batch is completed"),
	}
}
