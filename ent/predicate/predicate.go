// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// LessonBatch is the predicate function for lessonbatch builders.
type LessonBatch func(*sql.Selector)

// ReviewRecord is the predicate function for reviewrecord builders.
type ReviewRecord func(*sql.Selector)

// SchemaMigration is the predicate function for schemamigration builders.
type SchemaMigration func(*sql.Selector)

// Symbol is the predicate function for symbol builders.
type Symbol func(*sql.Selector)

// UserNote is the predicate function for usernote builders.
type UserNote func(*sql.Selector)
