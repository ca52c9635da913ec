package store

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("store: not found")

// Symbol is one catalog character. Immutable after seeding.
type Symbol struct {
	ID          int    `json:"id"`
	Glyph       string `json:"character"`
	Romaji      string `json:"romaji"`
	Kind        string `json:"type"`
	BatchNumber int    `json:"lesson_batch_number"`
}

// LessonBatch is an ordered group of symbols introduced together.
type LessonBatch struct {
	BatchNumber int        `json:"batch_number"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at"`
}

// ReviewRecord is the learning state for one symbol.
type ReviewRecord struct {
	ID             int        `json:"id"`
	SymbolID       int        `json:"katakana_id"`
	Stage          int        `json:"srs_stage"`
	NextDue        time.Time  `json:"next_review_date"`
	CorrectCount   int        `json:"correct_count"`
	IncorrectCount int        `json:"incorrect_count"`
	LastReviewed   *time.Time `json:"last_reviewed"`
	CreatedAt      time.Time  `json:"created_at"`
}

// ReviewWithSymbol joins a review record with its symbol's display info.
type ReviewWithSymbol struct {
	ReviewRecord
	Glyph  string `json:"character"`
	Romaji string `json:"romaji"`
	Kind   string `json:"type"`
}

// SymbolWithReview is the left-join shape: every symbol, with its review
// record when one exists.
type SymbolWithReview struct {
	Symbol
	Review *ReviewRecord `json:"review"`
}

// LessonItem is a symbol together with the user's note, if any.
type LessonItem struct {
	Symbol
	UserNote *string `json:"user_note"`
}

// UserNote is a free-text annotation on a symbol.
type UserNote struct {
	ID        int       `json:"id"`
	SymbolID  int       `json:"katakana_id"`
	Note      string    `json:"note"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ReviewSeed describes a review record to create when a lesson batch is
// completed.
type ReviewSeed struct {
	SymbolID       int
	Stage          int
	NextDue        time.Time
	CorrectCount   int
	IncorrectCount int
}

// SymbolRepo reads the immutable symbol catalog.
type SymbolRepo interface {
	All(ctx context.Context) ([]Symbol, error)
	Get(ctx context.Context, id int) (*Symbol, error)
	ByBatch(ctx context.Context, batchNumber int) ([]Symbol, error)
	Count(ctx context.Context) (int, error)
}

// ReviewRepo manages review records.
type ReviewRepo interface {
	Get(ctx context.Context, id int) (*ReviewRecord, error)
	All(ctx context.Context) ([]ReviewRecord, error)
	// Due returns records with next_due <= now, joined with symbol info,
	// ordered by next_due ascending.
	Due(ctx context.Context, now time.Time) ([]ReviewWithSymbol, error)
	// SymbolsWithReviews returns every symbol left-joined with its
	// review record, ordered by symbol id.
	SymbolsWithReviews(ctx context.Context) ([]SymbolWithReview, error)
	// Transition loads the record, applies mutate, and persists the
	// result, all inside one transaction. A concurrent reader never
	// observes a partially updated record.
	Transition(ctx context.Context, id int, mutate func(*ReviewRecord) error) (*ReviewRecord, error)
	// DeleteAll removes every review record. Used by the reset command.
	DeleteAll(ctx context.Context) (int, error)
}

// LessonBatchRepo manages lesson batches.
type LessonBatchRepo interface {
	All(ctx context.Context) ([]LessonBatch, error)
	Get(ctx context.Context, batchNumber int) (*LessonBatch, error)
	// NextIncomplete returns the lowest-numbered incomplete batch, or
	// nil when every batch is completed.
	NextIncomplete(ctx context.Context) (*LessonBatch, error)
	IncompleteCount(ctx context.Context) (int, error)
	// CompleteBatch marks the batch completed and creates the given
	// review records, skipping symbols that already have one, inside a
	// single transaction. Completing an already-completed batch is a
	// no-op.
	CompleteBatch(ctx context.Context, batchNumber int, completedAt time.Time, seeds []ReviewSeed) error
	// ResetAll clears the completion flag on every batch. Used by the
	// reset command.
	ResetAll(ctx context.Context) error
}

// NoteRepo manages user notes.
type NoteRepo interface {
	// Upsert creates or replaces the note for a symbol.
	Upsert(ctx context.Context, symbolID int, note string) (*UserNote, error)
	// Delete removes the note for a symbol. Deleting a missing note is
	// not an error.
	Delete(ctx context.Context, symbolID int) error
	// ForSymbols returns note text keyed by symbol id for the given
	// symbols. Symbols without a note are absent from the map.
	ForSymbols(ctx context.Context, symbolIDs []int) (map[int]string, error)
}
