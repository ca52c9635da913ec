// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/kanado/ent/lessonbatch"
	"github.com/abhisek/kanado/ent/reviewrecord"
	"github.com/abhisek/kanado/ent/schema"
	"github.com/abhisek/kanado/ent/schemamigration"
	"github.com/abhisek/kanado/ent/symbol"
	"github.com/abhisek/kanado/ent/usernote"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	lessonbatchFields := schema.LessonBatch{}.Fields()
	_ = lessonbatchFields
	// lessonbatchDescBatchNumber is the schema descriptor for batch_number field.
	lessonbatchDescBatchNumber := lessonbatchFields[0].Descriptor()
	// lessonbatch.BatchNumberValidator is a validator for the "batch_number" field. It is called by the builders before save.
	lessonbatch.BatchNumberValidator = lessonbatchDescBatchNumber.Validators[0].(func(int) error)
	// lessonbatchDescName is the schema descriptor for name field.
	lessonbatchDescName := lessonbatchFields[1].Descriptor()
	// lessonbatch.NameValidator is a validator for the "name" field. It is called by the builders before save.
	lessonbatch.NameValidator = lessonbatchDescName.Validators[0].(func(string) error)
	// lessonbatchDescDescription is the schema descriptor for description field.
	lessonbatchDescDescription := lessonbatchFields[2].Descriptor()
	// lessonbatch.DescriptionValidator is a validator for the "description" field. It is called by the builders before save.
	lessonbatch.DescriptionValidator = lessonbatchDescDescription.Validators[0].(func(string) error)
	// lessonbatchDescCompleted is the schema descriptor for completed field.
	lessonbatchDescCompleted := lessonbatchFields[3].Descriptor()
	// lessonbatch.DefaultCompleted holds the default value on creation for the completed field.
	lessonbatch.DefaultCompleted = lessonbatchDescCompleted.Default.(bool)
	reviewrecordFields := schema.ReviewRecord{}.Fields()
	_ = reviewrecordFields
	// reviewrecordDescStage is the schema descriptor for stage field.
	reviewrecordDescStage := reviewrecordFields[1].Descriptor()
	// reviewrecord.DefaultStage holds the default value on creation for the stage field.
	reviewrecord.DefaultStage = reviewrecordDescStage.Default.(int)
	// reviewrecord.StageValidator is a validator for the "stage" field. It is called by the builders before save.
	reviewrecord.StageValidator = func() func(int) error {
		validators := reviewrecordDescStage.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(stage int) error {
			for _, fn := range fns {
				if err := fn(stage); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// reviewrecordDescCorrectCount is the schema descriptor for correct_count field.
	reviewrecordDescCorrectCount := reviewrecordFields[3].Descriptor()
	// reviewrecord.DefaultCorrectCount holds the default value on creation for the correct_count field.
	reviewrecord.DefaultCorrectCount = reviewrecordDescCorrectCount.Default.(int)
	// reviewrecord.CorrectCountValidator is a validator for the "correct_count" field. It is called by the builders before save.
	reviewrecord.CorrectCountValidator = reviewrecordDescCorrectCount.Validators[0].(func(int) error)
	// reviewrecordDescIncorrectCount is the schema descriptor for incorrect_count field.
	reviewrecordDescIncorrectCount := reviewrecordFields[4].Descriptor()
	// reviewrecord.DefaultIncorrectCount holds the default value on creation for the incorrect_count field.
	reviewrecord.DefaultIncorrectCount = reviewrecordDescIncorrectCount.Default.(int)
	// reviewrecord.IncorrectCountValidator is a validator for the "incorrect_count" field. It is called by the builders before save.
	reviewrecord.IncorrectCountValidator = reviewrecordDescIncorrectCount.Validators[0].(func(int) error)
	// reviewrecordDescCreatedAt is the schema descriptor for created_at field.
	reviewrecordDescCreatedAt := reviewrecordFields[6].Descriptor()
	// reviewrecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	reviewrecord.DefaultCreatedAt = reviewrecordDescCreatedAt.Default.(func() time.Time)
	schemamigrationFields := schema.SchemaMigration{}.Fields()
	_ = schemamigrationFields
	// schemamigrationDescVersion is the schema descriptor for version field.
	schemamigrationDescVersion := schemamigrationFields[0].Descriptor()
	// schemamigration.VersionValidator is a validator for the "version" field. It is called by the builders before save.
	schemamigration.VersionValidator = schemamigrationDescVersion.Validators[0].(func(int) error)
	// schemamigrationDescName is the schema descriptor for name field.
	schemamigrationDescName := schemamigrationFields[1].Descriptor()
	// schemamigration.NameValidator is a validator for the "name" field. It is called by the builders before save.
	schemamigration.NameValidator = schemamigrationDescName.Validators[0].(func(string) error)
	// schemamigrationDescAppliedAt is the schema descriptor for applied_at field.
	schemamigrationDescAppliedAt := schemamigrationFields[2].Descriptor()
	// schemamigration.DefaultAppliedAt holds the default value on creation for the applied_at field.
	schemamigration.DefaultAppliedAt = schemamigrationDescAppliedAt.Default.(func() time.Time)
	symbolFields := schema.Symbol{}.Fields()
	_ = symbolFields
	// symbolDescGlyph is the schema descriptor for glyph field.
	symbolDescGlyph := symbolFields[0].Descriptor()
	// symbol.GlyphValidator is a validator for the "glyph" field. It is called by the builders before save.
	symbol.GlyphValidator = symbolDescGlyph.Validators[0].(func(string) error)
	// symbolDescRomaji is the schema descriptor for romaji field.
	symbolDescRomaji := symbolFields[1].Descriptor()
	// symbol.RomajiValidator is a validator for the "romaji" field. It is called by the builders before save.
	symbol.RomajiValidator = symbolDescRomaji.Validators[0].(func(string) error)
	// symbolDescBatchNumber is the schema descriptor for batch_number field.
	symbolDescBatchNumber := symbolFields[3].Descriptor()
	// symbol.BatchNumberValidator is a validator for the "batch_number" field. It is called by the builders before save.
	symbol.BatchNumberValidator = symbolDescBatchNumber.Validators[0].(func(int) error)
	// symbolDescCreatedAt is the schema descriptor for created_at field.
	symbolDescCreatedAt := symbolFields[4].Descriptor()
	// symbol.DefaultCreatedAt holds the default value on creation for the created_at field.
	symbol.DefaultCreatedAt = symbolDescCreatedAt.Default.(func() time.Time)
	usernoteFields := schema.UserNote{}.Fields()
	_ = usernoteFields
	// usernoteDescNote is the schema descriptor for note field.
	usernoteDescNote := usernoteFields[1].Descriptor()
	// usernote.NoteValidator is a validator for the "note" field. It is called by the builders before save.
	usernote.NoteValidator = usernoteDescNote.Validators[0].(func(string) error)
	// usernoteDescCreatedAt is the schema descriptor for created_at field.
	usernoteDescCreatedAt := usernoteFields[2].Descriptor()
	// usernote.DefaultCreatedAt holds the default value on creation for the created_at field.
	usernote.DefaultCreatedAt = usernoteDescCreatedAt.Default.(func() time.Time)
	// usernoteDescUpdatedAt is the schema descriptor for updated_at field.
	usernoteDescUpdatedAt := usernoteFields[3].Descriptor()
	// usernote.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	usernote.DefaultUpdatedAt = usernoteDescUpdatedAt.Default.(func() time.Time)
	// usernote.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	usernote.UpdateDefaultUpdatedAt = usernoteDescUpdatedAt.UpdateDefault.(func() time.Time)
}
