package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Symbol is one katakana character in the study catalog.
// Rows are seeded once at startup and never mutated or deleted.
type Symbol struct {
	ent.Schema
}

func (Symbol) Fields() []ent.Field {
	return []ent.Field{
		field.String("glyph").
			NotEmpty().
			Unique().
			Immutable().
			Comment("The written katakana character"),
		field.String("romaji").
			NotEmpty().
			Immutable().
			Comment("Phonetic transliteration, lowercase"),
		field.Enum("kind").
			Values("basic", "dakuten", "combo").
			Immutable().
			Comment("Character category"),
		field.Int("batch_number").
			Positive().
			Immutable().
			Comment("Lesson batch that introduces this symbol"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Symbol) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("batch_number"),
	}
}
