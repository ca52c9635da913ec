package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ReviewRecord is the mutable learning state for one symbol. A record
// exists iff the symbol's lesson batch has been completed; it is created
// by the lesson advancer and mutated only by the review scheduler.
type ReviewRecord struct {
	ent.Schema
}

func (ReviewRecord) Fields() []ent.Field {
	return []ent.Field{
		field.Int("symbol_id").
			Unique().
			Immutable().
			Comment("Owning symbol, one record per symbol"),
		field.Int("stage").
			Default(0).
			Min(0).
			Max(7).
			Comment("Spaced-repetition stage, 0..7"),
		field.Time("next_due").
			Comment("When the symbol next comes up for review"),
		field.Int("correct_count").
			Default(0).
			NonNegative(),
		field.Int("incorrect_count").
			Default(0).
			NonNegative(),
		field.Time("last_reviewed").
			Optional().
			Nillable().
			Comment("Unset until the first answer is submitted"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (ReviewRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("next_due"),
		index.Fields("stage"),
	}
}
