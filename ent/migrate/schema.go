// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// LessonBatchesColumns holds the columns for the "lesson_batches" table.
	LessonBatchesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "batch_number", Type: field.TypeInt, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString},
		{Name: "completed", Type: field.TypeBool, Default: false},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// LessonBatchesTable holds the schema information for the "lesson_batches" table.
	LessonBatchesTable = &schema.Table{
		Name:       "lesson_batches",
		Columns:    LessonBatchesColumns,
		PrimaryKey: []*schema.Column{LessonBatchesColumns[0]},
	}
	// ReviewRecordsColumns holds the columns for the "review_records" table.
	ReviewRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "symbol_id", Type: field.TypeInt, Unique: true},
		{Name: "stage", Type: field.TypeInt, Default: 0},
		{Name: "next_due", Type: field.TypeTime},
		{Name: "correct_count", Type: field.TypeInt, Default: 0},
		{Name: "incorrect_count", Type: field.TypeInt, Default: 0},
		{Name: "last_reviewed", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ReviewRecordsTable holds the schema information for the "review_records" table.
	ReviewRecordsTable = &schema.Table{
		Name:       "review_records",
		Columns:    ReviewRecordsColumns,
		PrimaryKey: []*schema.Column{ReviewRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "reviewrecord_next_due",
				Unique:  false,
				Columns: []*schema.Column{ReviewRecordsColumns[3]},
			},
			{
				Name:    "reviewrecord_stage",
				Unique:  false,
				Columns: []*schema.Column{ReviewRecordsColumns[2]},
			},
		},
	}
	// SchemaMigrationsColumns holds the columns for the "schema_migrations" table.
	SchemaMigrationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "version", Type: field.TypeInt, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "applied_at", Type: field.TypeTime},
	}
	// SchemaMigrationsTable holds the schema information for the "schema_migrations" table.
	SchemaMigrationsTable = &schema.Table{
		Name:       "schema_migrations",
		Columns:    SchemaMigrationsColumns,
		PrimaryKey: []*schema.Column{SchemaMigrationsColumns[0]},
	}
	// SymbolsColumns holds the columns for the "symbols" table.
	SymbolsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "glyph", Type: field.TypeString, Unique: true},
		{Name: "romaji", Type: field.TypeString},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"basic", "dakuten", "combo"}},
		{Name: "batch_number", Type: field.TypeInt},
		{Name: "created_at", Type: field.TypeTime},
	}
	// SymbolsTable holds the schema information for the "symbols" table.
	SymbolsTable = &schema.Table{
		Name:       "symbols",
		Columns:    SymbolsColumns,
		PrimaryKey: []*schema.Column{SymbolsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "symbol_batch_number",
				Unique:  false,
				Columns: []*schema.Column{SymbolsColumns[4]},
			},
		},
	}
	// UserNotesColumns holds the columns for the "user_notes" table.
	UserNotesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "symbol_id", Type: field.TypeInt, Unique: true},
		{Name: "note", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// UserNotesTable holds the schema information for the "user_notes" table.
	UserNotesTable = &schema.Table{
		Name:       "user_notes",
		Columns:    UserNotesColumns,
		PrimaryKey: []*schema.Column{UserNotesColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		LessonBatchesTable,
		ReviewRecordsTable,
		SchemaMigrationsTable,
		SymbolsTable,
		UserNotesTable,
	}
)

func init() {
}
