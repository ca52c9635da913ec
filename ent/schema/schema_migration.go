package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// SchemaMigration records which versioned data migrations have been
// applied, so each one runs exactly once.
type SchemaMigration struct {
	ent.Schema
}

func (SchemaMigration) Fields() []ent.Field {
	return []ent.Field{
		field.Int("version").
			Positive().
			Unique().
			Immutable(),
		field.String("name").
			NotEmpty().
			Immutable(),
		field.Time("applied_at").
			Default(time.Now).
			Immutable(),
	}
}
