package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// UserNote is a free-text annotation keyed one-to-one to a symbol.
// Independent of scheduling state.
type UserNote struct {
	ent.Schema
}

func (UserNote) Fields() []ent.Field {
	return []ent.Field{
		field.Int("symbol_id").
			Unique().
			Immutable(),
		field.String("note").
			NotEmpty(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}
