// Package lessons drives the lesson flow: listing batches, serving
// their symbols for study, and converting a finished lesson into review
// records.
package lessons

import (
	"context"
	"time"

	"github.com/abhisek/kanado/internal/srs"
	"github.com/abhisek/kanado/internal/store"
)

// Service exposes lesson batches and completes them.
type Service struct {
	batches store.LessonBatchRepo
	symbols store.SymbolRepo
	notes   store.NoteRepo
}

// NewService creates a lesson service backed by the given repositories.
func NewService(batches store.LessonBatchRepo, symbols store.SymbolRepo, notes store.NoteRepo) *Service {
	return &Service{batches: batches, symbols: symbols, notes: notes}
}

// Batches returns every lesson batch in order.
func (s *Service) Batches(ctx context.Context) ([]store.LessonBatch, error) {
	return s.batches.All(ctx)
}

// Next returns the lowest-numbered incomplete batch, or nil when all
// lessons are done.
func (s *Service) Next(ctx context.Context) (*store.LessonBatch, error) {
	return s.batches.NextIncomplete(ctx)
}

// Items returns the batch's symbols together with any user notes.
func (s *Service) Items(ctx context.Context, batchNumber int) ([]store.LessonItem, error) {
	if _, err := s.batches.Get(ctx, batchNumber); err != nil {
		return nil, err
	}
	syms, err := s.symbols.ByBatch(ctx, batchNumber)
	if err != nil {
		return nil, err
	}

	ids := make([]int, len(syms))
	for i, sym := range syms {
		ids[i] = sym.ID
	}
	notes, err := s.notes.ForSymbols(ctx, ids)
	if err != nil {
		return nil, err
	}

	items := make([]store.LessonItem, len(syms))
	for i, sym := range syms {
		items[i] = store.LessonItem{Symbol: sym}
		if text, ok := notes[sym.ID]; ok {
			note := text
			items[i].UserNote = &note
		}
	}
	return items, nil
}

// Complete marks the batch finished and seeds a review record for every
// symbol in it that lacks one. A symbol answered correctly on its first
// quiz attempt starts one stage up with a correct answer on the books;
// everything else (including symbols missing from firstAttempt, or all
// of them when firstAttempt is nil) starts at the first stage with an
// incorrect answer recorded. Due dates land on hour boundaries.
// Completing an already-completed batch is a no-op: existing records
// are never duplicated or overwritten.
func (s *Service) Complete(ctx context.Context, batchNumber int, firstAttempt map[int]bool, now time.Time) error {
	batch, err := s.batches.Get(ctx, batchNumber)
	if err != nil {
		return err
	}
	if batch.Completed {
		return nil
	}

	syms, err := s.symbols.ByBatch(ctx, batchNumber)
	if err != nil {
		return err
	}

	seeds := make([]store.ReviewSeed, len(syms))
	for i, sym := range syms {
		stage := srs.SeedStage(firstAttempt[sym.ID])
		iv, err := stage.Interval()
		if err != nil {
			return err
		}
		seed := store.ReviewSeed{
			SymbolID: sym.ID,
			Stage:    int(stage),
			NextDue:  now.Add(iv).Truncate(time.Hour),
		}
		if firstAttempt[sym.ID] {
			seed.CorrectCount = 1
		} else {
			seed.IncorrectCount = 1
		}
		seeds[i] = seed
	}

	return s.batches.CompleteBatch(ctx, batchNumber, now, seeds)
}

// SaveNote creates or replaces the note on a symbol.
func (s *Service) SaveNote(ctx context.Context, symbolID int, note string) (*store.UserNote, error) {
	if _, err := s.symbols.Get(ctx, symbolID); err != nil {
		return nil, err
	}
	return s.notes.Upsert(ctx, symbolID, note)
}

// DeleteNote removes the note on a symbol, if any.
func (s *Service) DeleteNote(ctx context.Context, symbolID int) error {
	return s.notes.Delete(ctx, symbolID)
}
