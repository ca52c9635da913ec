package store_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/abhisek/kanado/internal/catalog"
	"github.com/abhisek/kanado/internal/store"
)

func openTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func seedTestStore(t *testing.T) *store.Store {
	t.Helper()
	s := openTestStore(t)
	if err := s.Seed(context.Background(), catalog.Symbols(), catalog.Batches()); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSeedIdempotent(t *testing.T) {
	s := seedTestStore(t)
	ctx := context.Background()

	if err := s.Seed(ctx, catalog.Symbols(), catalog.Batches()); err != nil {
		t.Fatalf("re-seed: %v", err)
	}

	count, err := s.SymbolRepo().Count(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if count != 104 {
		t.Errorf("symbol count = %d, want 104", count)
	}
	batches, err := s.LessonBatchRepo().All(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(batches) != 26 {
		t.Errorf("batch count = %d, want 26", len(batches))
	}
}

func TestSymbolRepoByBatch(t *testing.T) {
	s := seedTestStore(t)
	ctx := context.Background()

	syms, err := s.SymbolRepo().ByBatch(ctx, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(syms) != 5 {
		t.Fatalf("batch 1 has %d symbols, want 5", len(syms))
	}
	for _, sym := range syms {
		if sym.BatchNumber != 1 || sym.Kind != "basic" {
			t.Errorf("unexpected symbol in batch 1: %+v", sym)
		}
	}

	if _, err := s.SymbolRepo().Get(ctx, 99999); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("Get unknown id: err = %v, want store.ErrNotFound", err)
	}
}

func TestCompleteBatchCreatesReviews(t *testing.T) {
	s := seedTestStore(t)
	ctx := context.Background()
	now := time.Date(2025, 3, 1, 14, 0, 0, 0, time.UTC)

	syms, err := s.SymbolRepo().ByBatch(ctx, 1)
	if err != nil {
		t.Fatal(err)
	}
	seeds := make([]store.ReviewSeed, len(syms))
	for i, sym := range syms {
		seeds[i] = store.ReviewSeed{SymbolID: sym.ID, Stage: 0, NextDue: now.Add(2 * time.Hour), IncorrectCount: 1}
	}

	if err := s.LessonBatchRepo().CompleteBatch(ctx, 1, now, seeds); err != nil {
		t.Fatal(err)
	}

	batch, err := s.LessonBatchRepo().Get(ctx, 1)
	if err != nil {
		t.Fatal(err)
	}
	if !batch.Completed || batch.CompletedAt == nil {
		t.Errorf("batch not marked completed: %+v", batch)
	}

	records, err := s.ReviewRepo().All(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 5 {
		t.Fatalf("review records = %d, want 5", len(records))
	}

	// Re-completing must not duplicate or overwrite.
	if err := s.LessonBatchRepo().CompleteBatch(ctx, 1, now.Add(time.Hour), seeds); err != nil {
		t.Fatal(err)
	}
	records, err = s.ReviewRepo().All(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 5 {
		t.Errorf("review records after re-complete = %d, want 5", len(records))
	}

	incomplete, err := s.LessonBatchRepo().IncompleteCount(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if incomplete != 25 {
		t.Errorf("incomplete batches = %d, want 25", incomplete)
	}
}

func TestDueOrderedByNextDue(t *testing.T) {
	s := seedTestStore(t)
	ctx := context.Background()
	now := time.Date(2025, 3, 1, 14, 0, 0, 0, time.UTC)

	syms, err := s.SymbolRepo().ByBatch(ctx, 1)
	if err != nil {
		t.Fatal(err)
	}
	seeds := []store.ReviewSeed{
		{SymbolID: syms[0].ID, Stage: 0, NextDue: now.Add(-time.Hour)},
		{SymbolID: syms[1].ID, Stage: 0, NextDue: now.Add(-3 * time.Hour)},
		{SymbolID: syms[2].ID, Stage: 0, NextDue: now.Add(time.Hour)}, // not due
	}
	if err := s.LessonBatchRepo().CompleteBatch(ctx, 1, now, seeds); err != nil {
		t.Fatal(err)
	}

	due, err := s.ReviewRepo().Due(ctx, now)
	if err != nil {
		t.Fatal(err)
	}
	if len(due) != 2 {
		t.Fatalf("due = %d, want 2", len(due))
	}
	if due[0].SymbolID != syms[1].ID {
		t.Errorf("due not ordered by next_due ascending: %+v", due)
	}
	if due[0].Glyph == "" || due[0].Romaji == "" {
		t.Errorf("due review missing symbol info: %+v", due[0])
	}
}

func TestTransitionAtomicUpdate(t *testing.T) {
	s := seedTestStore(t)
	ctx := context.Background()
	now := time.Date(2025, 3, 1, 14, 0, 0, 0, time.UTC)

	syms, err := s.SymbolRepo().ByBatch(ctx, 1)
	if err != nil {
		t.Fatal(err)
	}
	seeds := []store.ReviewSeed{{SymbolID: syms[0].ID, Stage: 1, NextDue: now}}
	if err := s.LessonBatchRepo().CompleteBatch(ctx, 1, now, seeds); err != nil {
		t.Fatal(err)
	}
	records, err := s.ReviewRepo().All(ctx)
	if err != nil {
		t.Fatal(err)
	}

	updated, err := s.ReviewRepo().Transition(ctx, records[0].ID, func(r *store.ReviewRecord) error {
		r.Stage = 2
		r.CorrectCount++
		r.NextDue = now.Add(8 * time.Hour)
		r.LastReviewed = &now
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if updated.Stage != 2 || updated.CorrectCount != 1 {
		t.Errorf("updated = %+v", updated)
	}

	reloaded, err := s.ReviewRepo().Get(ctx, records[0].ID)
	if err != nil {
		t.Fatal(err)
	}
	if reloaded.Stage != 2 || reloaded.LastReviewed == nil {
		t.Errorf("reloaded = %+v", reloaded)
	}

	// A failing mutate leaves the record untouched.
	boom := errors.New("boom")
	if _, err := s.ReviewRepo().Transition(ctx, records[0].ID, func(r *store.ReviewRecord) error {
		r.Stage = 7
		return boom
	}); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}
	reloaded, err = s.ReviewRepo().Get(ctx, records[0].ID)
	if err != nil {
		t.Fatal(err)
	}
	if reloaded.Stage != 2 {
		t.Errorf("stage after failed transition = %d, want 2", reloaded.Stage)
	}

	if _, err := s.ReviewRepo().Transition(ctx, 99999, func(*store.ReviewRecord) error { return nil }); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("unknown id: err = %v, want store.ErrNotFound", err)
	}
}

func TestSymbolsWithReviewsLeftJoin(t *testing.T) {
	s := seedTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC()

	syms, err := s.SymbolRepo().ByBatch(ctx, 1)
	if err != nil {
		t.Fatal(err)
	}
	seeds := []store.ReviewSeed{{SymbolID: syms[0].ID, Stage: 0, NextDue: now}}
	if err := s.LessonBatchRepo().CompleteBatch(ctx, 1, now, seeds); err != nil {
		t.Fatal(err)
	}

	all, err := s.ReviewRepo().SymbolsWithReviews(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 104 {
		t.Fatalf("rows = %d, want 104", len(all))
	}
	withReview := 0
	for _, row := range all {
		if row.Review != nil {
			withReview++
		}
	}
	if withReview != 1 {
		t.Errorf("rows with review = %d, want 1", withReview)
	}
}

func TestNoteUpsertAndDelete(t *testing.T) {
	s := seedTestStore(t)
	ctx := context.Background()

	first, err := s.NoteRepo().Upsert(ctx, 1, "first note")
	if err != nil {
		t.Fatal(err)
	}
	second, err := s.NoteRepo().Upsert(ctx, 1, "revised note")
	if err != nil {
		t.Fatal(err)
	}
	if second.ID != first.ID {
		t.Errorf("upsert created a new row: %d, then %d", first.ID, second.ID)
	}
	if second.Note != "revised note" {
		t.Errorf("note = %q", second.Note)
	}

	notes, err := s.NoteRepo().ForSymbols(ctx, []int{1, 2})
	if err != nil {
		t.Fatal(err)
	}
	if notes[1] != "revised note" || len(notes) != 1 {
		t.Errorf("notes = %v", notes)
	}

	if err := s.NoteRepo().Delete(ctx, 1); err != nil {
		t.Fatal(err)
	}
	// Deleting an absent note is silent.
	if err := s.NoteRepo().Delete(ctx, 1); err != nil {
		t.Fatal(err)
	}
}

func TestResetAllReopensBatches(t *testing.T) {
	s := seedTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC()

	if err := s.LessonBatchRepo().CompleteBatch(ctx, 1, now, nil); err != nil {
		t.Fatal(err)
	}
	if err := s.LessonBatchRepo().ResetAll(ctx); err != nil {
		t.Fatal(err)
	}

	next, err := s.LessonBatchRepo().NextIncomplete(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if next == nil || next.BatchNumber != 1 {
		t.Errorf("next incomplete = %+v, want batch 1", next)
	}

	deleted, err := s.ReviewRepo().DeleteAll(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if deleted != 0 {
		t.Errorf("deleted = %d, want 0", deleted)
	}
}
