package lessons

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/abhisek/kanado/internal/store"
)

type mockBatchRepo struct {
	batches map[int]store.LessonBatch
	// seeds records every CompleteBatch call for inspection.
	completed []int
	seeded    [][]store.ReviewSeed
	existing  map[int]bool // symbol ids that already have a review
}

func newMockBatchRepo(batches ...store.LessonBatch) *mockBatchRepo {
	m := &mockBatchRepo{
		batches:  make(map[int]store.LessonBatch),
		existing: make(map[int]bool),
	}
	for _, b := range batches {
		m.batches[b.BatchNumber] = b
	}
	return m
}

func (m *mockBatchRepo) All(_ context.Context) ([]store.LessonBatch, error) { return nil, nil }

func (m *mockBatchRepo) Get(_ context.Context, n int) (*store.LessonBatch, error) {
	b, ok := m.batches[n]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &b, nil
}

func (m *mockBatchRepo) NextIncomplete(_ context.Context) (*store.LessonBatch, error) {
	return nil, nil
}

func (m *mockBatchRepo) IncompleteCount(_ context.Context) (int, error) { return 0, nil }

func (m *mockBatchRepo) CompleteBatch(_ context.Context, n int, completedAt time.Time, seeds []store.ReviewSeed) error {
	b, ok := m.batches[n]
	if !ok {
		return store.ErrNotFound
	}
	if b.Completed {
		return nil
	}
	b.Completed = true
	b.CompletedAt = &completedAt
	m.batches[n] = b

	var created []store.ReviewSeed
	for _, seed := range seeds {
		if m.existing[seed.SymbolID] {
			continue
		}
		m.existing[seed.SymbolID] = true
		created = append(created, seed)
	}
	m.completed = append(m.completed, n)
	m.seeded = append(m.seeded, created)
	return nil
}

func (m *mockBatchRepo) ResetAll(_ context.Context) error { return nil }

type mockSymbolRepo struct {
	symbols []store.Symbol
}

func (m *mockSymbolRepo) All(_ context.Context) ([]store.Symbol, error) { return m.symbols, nil }

func (m *mockSymbolRepo) Get(_ context.Context, id int) (*store.Symbol, error) {
	for _, s := range m.symbols {
		if s.ID == id {
			return &s, nil
		}
	}
	return nil, store.ErrNotFound
}

func (m *mockSymbolRepo) ByBatch(_ context.Context, n int) ([]store.Symbol, error) {
	var out []store.Symbol
	for _, s := range m.symbols {
		if s.BatchNumber == n {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *mockSymbolRepo) Count(_ context.Context) (int, error) { return len(m.symbols), nil }

type mockNoteRepo struct {
	notes map[int]string
}

func (m *mockNoteRepo) Upsert(_ context.Context, symbolID int, note string) (*store.UserNote, error) {
	if m.notes == nil {
		m.notes = make(map[int]string)
	}
	m.notes[symbolID] = note
	return &store.UserNote{SymbolID: symbolID, Note: note}, nil
}

func (m *mockNoteRepo) Delete(_ context.Context, symbolID int) error {
	delete(m.notes, symbolID)
	return nil
}

func (m *mockNoteRepo) ForSymbols(_ context.Context, _ []int) (map[int]string, error) {
	return m.notes, nil
}

func vowelBatch() (*mockBatchRepo, *mockSymbolRepo) {
	batches := newMockBatchRepo(store.LessonBatch{
		BatchNumber: 1,
		Name:        "Vowels",
		Description: "The five basic vowel sounds",
	})
	symbols := &mockSymbolRepo{symbols: []store.Symbol{
		{ID: 1, Glyph: "ア", Romaji: "a", Kind: "basic", BatchNumber: 1},
		{ID: 2, Glyph: "イ", Romaji: "i", Kind: "basic", BatchNumber: 1},
		{ID: 3, Glyph: "ウ", Romaji: "u", Kind: "basic", BatchNumber: 1},
	}}
	return batches, symbols
}

func TestCompleteSeedsByFirstAttempt(t *testing.T) {
	batches, symbols := vowelBatch()
	svc := NewService(batches, symbols, &mockNoteRepo{})

	now := time.Date(2025, 5, 1, 10, 42, 17, 0, time.UTC)
	firstAttempt := map[int]bool{1: true, 2: false} // 3 absent: incorrect path

	if err := svc.Complete(context.Background(), 1, firstAttempt, now); err != nil {
		t.Fatal(err)
	}

	if len(batches.seeded) != 1 {
		t.Fatalf("CompleteBatch calls = %d, want 1", len(batches.seeded))
	}
	seeds := batches.seeded[0]
	if len(seeds) != 3 {
		t.Fatalf("seeded %d records, want 3", len(seeds))
	}

	bySymbol := make(map[int]store.ReviewSeed)
	for _, seed := range seeds {
		bySymbol[seed.SymbolID] = seed
	}

	// Correct first try: stage 1, 4h interval, one correct answer.
	correct := bySymbol[1]
	if correct.Stage != 1 || correct.CorrectCount != 1 || correct.IncorrectCount != 0 {
		t.Errorf("correct seed = %+v", correct)
	}
	wantDue := now.Add(4 * time.Hour).Truncate(time.Hour)
	if !correct.NextDue.Equal(wantDue) {
		t.Errorf("correct next due = %v, want %v", correct.NextDue, wantDue)
	}

	// Missed first try and absent from the map: stage 0, 2h interval.
	for _, id := range []int{2, 3} {
		seed := bySymbol[id]
		if seed.Stage != 0 || seed.CorrectCount != 0 || seed.IncorrectCount != 1 {
			t.Errorf("incorrect seed %d = %+v", id, seed)
		}
		wantDue := now.Add(2 * time.Hour).Truncate(time.Hour)
		if !seed.NextDue.Equal(wantDue) {
			t.Errorf("incorrect seed %d next due = %v, want %v", id, seed.NextDue, wantDue)
		}
	}
}

func TestCompleteDueDatesOnHourBoundary(t *testing.T) {
	batches, symbols := vowelBatch()
	svc := NewService(batches, symbols, &mockNoteRepo{})

	now := time.Date(2025, 5, 1, 10, 59, 59, 0, time.UTC)
	if err := svc.Complete(context.Background(), 1, nil, now); err != nil {
		t.Fatal(err)
	}
	for _, seed := range batches.seeded[0] {
		if !seed.NextDue.Equal(seed.NextDue.Truncate(time.Hour)) {
			t.Errorf("next due %v not on an hour boundary", seed.NextDue)
		}
	}
}

func TestCompleteNilMapDefaultsToIncorrect(t *testing.T) {
	batches, symbols := vowelBatch()
	svc := NewService(batches, symbols, &mockNoteRepo{})

	if err := svc.Complete(context.Background(), 1, nil, time.Now().UTC()); err != nil {
		t.Fatal(err)
	}
	for _, seed := range batches.seeded[0] {
		if seed.Stage != 0 || seed.IncorrectCount != 1 {
			t.Errorf("seed = %+v, want stage 0 with one incorrect", seed)
		}
	}
}

func TestCompleteIdempotent(t *testing.T) {
	batches, symbols := vowelBatch()
	svc := NewService(batches, symbols, &mockNoteRepo{})
	ctx := context.Background()
	now := time.Now().UTC()

	if err := svc.Complete(ctx, 1, nil, now); err != nil {
		t.Fatal(err)
	}
	if err := svc.Complete(ctx, 1, map[int]bool{1: true}, now.Add(time.Hour)); err != nil {
		t.Fatal(err)
	}

	// The second call must not reach the store again.
	if len(batches.completed) != 1 {
		t.Errorf("CompleteBatch calls = %d, want 1", len(batches.completed))
	}
	if len(batches.existing) != 3 {
		t.Errorf("review records = %d, want 3", len(batches.existing))
	}
}

func TestCompleteUnknownBatch(t *testing.T) {
	batches, symbols := vowelBatch()
	svc := NewService(batches, symbols, &mockNoteRepo{})

	err := svc.Complete(context.Background(), 42, nil, time.Now())
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("err = %v, want store.ErrNotFound", err)
	}
}

func TestItemsIncludeNotes(t *testing.T) {
	batches, symbols := vowelBatch()
	notes := &mockNoteRepo{notes: map[int]string{2: "looks like a fishhook"}}
	svc := NewService(batches, symbols, notes)

	items, err := svc.Items(context.Background(), 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 3 {
		t.Fatalf("items = %d, want 3", len(items))
	}
	for _, item := range items {
		if item.ID == 2 {
			if item.UserNote == nil || *item.UserNote != "looks like a fishhook" {
				t.Errorf("note on symbol 2 = %v", item.UserNote)
			}
		} else if item.UserNote != nil {
			t.Errorf("unexpected note on symbol %d", item.ID)
		}
	}
}

func TestSaveNoteUnknownSymbol(t *testing.T) {
	batches, symbols := vowelBatch()
	svc := NewService(batches, symbols, &mockNoteRepo{})

	_, err := svc.SaveNote(context.Background(), 999, "nope")
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("err = %v, want store.ErrNotFound", err)
	}
}
