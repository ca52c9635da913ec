package session

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/abhisek/kanado/internal/lessons"
	"github.com/abhisek/kanado/internal/review"
	"github.com/abhisek/kanado/internal/store"
)

type fakeReviewRepo struct {
	records   map[int]*store.ReviewRecord
	symbols   map[int]store.Symbol
	submitted []int // review ids in SubmitAnswer order
}

func (f *fakeReviewRepo) Get(_ context.Context, id int) (*store.ReviewRecord, error) {
	r, ok := f.records[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *r
	return &cp, nil
}

func (f *fakeReviewRepo) All(_ context.Context) ([]store.ReviewRecord, error) {
	var out []store.ReviewRecord
	for _, r := range f.records {
		out = append(out, *r)
	}
	return out, nil
}

func (f *fakeReviewRepo) Due(_ context.Context, now time.Time) ([]store.ReviewWithSymbol, error) {
	var out []store.ReviewWithSymbol
	for _, r := range f.records {
		if !r.NextDue.After(now) {
			sym := f.symbols[r.SymbolID]
			out = append(out, store.ReviewWithSymbol{
				ReviewRecord: *r,
				Glyph:        sym.Glyph,
				Romaji:       sym.Romaji,
				Kind:         sym.Kind,
			})
		}
	}
	return out, nil
}

func (f *fakeReviewRepo) SymbolsWithReviews(_ context.Context) ([]store.SymbolWithReview, error) {
	return nil, nil
}

func (f *fakeReviewRepo) Transition(_ context.Context, id int, apply func(*store.ReviewRecord) error) (*store.ReviewRecord, error) {
	r, ok := f.records[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	if err := apply(r); err != nil {
		return nil, err
	}
	f.submitted = append(f.submitted, id)
	cp := *r
	return &cp, nil
}

func (f *fakeReviewRepo) DeleteAll(_ context.Context) (int, error) { return 0, nil }

type fakeBatchRepo struct {
	batch         store.LessonBatch
	completedWith map[int]bool
}

func (f *fakeBatchRepo) All(_ context.Context) ([]store.LessonBatch, error) {
	return []store.LessonBatch{f.batch}, nil
}

func (f *fakeBatchRepo) Get(_ context.Context, n int) (*store.LessonBatch, error) {
	if n != f.batch.BatchNumber {
		return nil, store.ErrNotFound
	}
	cp := f.batch
	return &cp, nil
}

func (f *fakeBatchRepo) NextIncomplete(_ context.Context) (*store.LessonBatch, error) {
	return nil, nil
}

func (f *fakeBatchRepo) IncompleteCount(_ context.Context) (int, error) { return 0, nil }

func (f *fakeBatchRepo) CompleteBatch(_ context.Context, _ int, completedAt time.Time, seeds []store.ReviewSeed) error {
	f.batch.Completed = true
	f.batch.CompletedAt = &completedAt
	f.completedWith = make(map[int]bool)
	for _, seed := range seeds {
		f.completedWith[seed.SymbolID] = seed.Stage > 0
	}
	return nil
}

func (f *fakeBatchRepo) ResetAll(_ context.Context) error { return nil }

type fakeSymbolRepo struct{ symbols []store.Symbol }

func (f *fakeSymbolRepo) All(_ context.Context) ([]store.Symbol, error) { return f.symbols, nil }

func (f *fakeSymbolRepo) Get(_ context.Context, id int) (*store.Symbol, error) {
	for _, s := range f.symbols {
		if s.ID == id {
			return &s, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeSymbolRepo) ByBatch(_ context.Context, n int) ([]store.Symbol, error) {
	var out []store.Symbol
	for _, s := range f.symbols {
		if s.BatchNumber == n {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSymbolRepo) Count(_ context.Context) (int, error) { return len(f.symbols), nil }

type fakeNoteRepo struct{}

func (fakeNoteRepo) Upsert(_ context.Context, id int, note string) (*store.UserNote, error) {
	return &store.UserNote{SymbolID: id, Note: note}, nil
}
func (fakeNoteRepo) Delete(_ context.Context, _ int) error { return nil }
func (fakeNoteRepo) ForSymbols(_ context.Context, _ []int) (map[int]string, error) {
	return nil, nil
}

func fixedClock() func() time.Time {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return func() time.Time { return now }
}

func newTestManager(t *testing.T) (*Manager, *fakeReviewRepo, *fakeBatchRepo) {
	t.Helper()
	symbols := []store.Symbol{
		{ID: 1, Glyph: "ア", Romaji: "a", Kind: "basic", BatchNumber: 1},
		{ID: 2, Glyph: "イ", Romaji: "i", Kind: "basic", BatchNumber: 1},
		{ID: 3, Glyph: "ウ", Romaji: "u", Kind: "basic", BatchNumber: 1},
	}
	now := fixedClock()()
	reviews := &fakeReviewRepo{
		records: map[int]*store.ReviewRecord{
			10: {ID: 10, SymbolID: 1, Stage: 2, NextDue: now.Add(-time.Hour), CorrectCount: 2},
			11: {ID: 11, SymbolID: 2, Stage: 0, NextDue: now, IncorrectCount: 1},
		},
		symbols: map[int]store.Symbol{1: symbols[0], 2: symbols[1]},
	}
	batches := &fakeBatchRepo{batch: store.LessonBatch{BatchNumber: 1, Name: "Vowels"}}

	m := NewManager(
		review.NewService(reviews),
		lessons.NewService(batches, &fakeSymbolRepo{symbols: symbols}, fakeNoteRepo{}),
	)
	m.now = fixedClock()
	m.newRNG = func() *rand.Rand { return rand.New(rand.NewSource(42)) }
	return m, reviews, batches
}

func TestReviewSessionPersistsFirstAttemptOnly(t *testing.T) {
	m, repo, _ := newTestManager(t)
	ctx := context.Background()

	s, err := m.StartReview(ctx)
	if err != nil {
		t.Fatal(err)
	}

	// Miss the first card, then answer everything correctly.
	if _, err := m.SubmitAnswer(ctx, s.ID, false); err != nil {
		t.Fatal(err)
	}
	var last *Answer
	for {
		ans, err := m.SubmitAnswer(ctx, s.ID, true)
		if err != nil {
			t.Fatal(err)
		}
		last = ans
		if ans.Done {
			break
		}
	}

	// Two cards, each persisted exactly once despite the retry.
	if len(repo.submitted) != 2 {
		t.Fatalf("persisted %d answers, want 2: %v", len(repo.submitted), repo.submitted)
	}
	if last.Answered != 2 || last.Remaining != 0 {
		t.Errorf("final answer = %+v", last)
	}

	// The missed card reset to stage 0; the other advanced.
	var sawReset, sawAdvance bool
	for _, r := range repo.records {
		switch {
		case r.Stage == 0 && r.IncorrectCount > 0:
			sawReset = true
		case r.Stage > 0 && r.LastReviewed != nil:
			sawAdvance = true
		}
	}
	if !sawReset || !sawAdvance {
		t.Errorf("records after session: reset=%v advance=%v", sawReset, sawAdvance)
	}

	if _, _, err := m.Next(s.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("finished session still registered: %v", err)
	}
}

func TestLessonSessionCompletesBatchWithFirstAttempts(t *testing.T) {
	m, _, batches := newTestManager(t)
	ctx := context.Background()

	s, err := m.StartLesson(ctx, 1)
	if err != nil {
		t.Fatal(err)
	}
	_, first, err := m.Next(s.ID)
	if err != nil || first == nil {
		t.Fatalf("Next: card=%v err=%v", first, err)
	}

	// Miss the first card once, clear the rest.
	if _, err := m.SubmitAnswer(ctx, s.ID, false); err != nil {
		t.Fatal(err)
	}
	for {
		ans, err := m.SubmitAnswer(ctx, s.ID, true)
		if err != nil {
			t.Fatal(err)
		}
		if ans.Done {
			break
		}
	}

	if !batches.batch.Completed {
		t.Fatal("batch not completed when session drained")
	}
	if len(batches.completedWith) != 3 {
		t.Fatalf("seeded %d symbols, want 3", len(batches.completedWith))
	}
	if batches.completedWith[first.SymbolID] {
		t.Errorf("missed symbol %d seeded as correct", first.SymbolID)
	}
}

func TestStartReviewNothingDue(t *testing.T) {
	m, repo, _ := newTestManager(t)
	for _, r := range repo.records {
		r.NextDue = m.now().Add(48 * time.Hour)
	}
	if _, err := m.StartReview(context.Background()); !errors.Is(err, ErrNoCards) {
		t.Errorf("err = %v, want ErrNoCards", err)
	}
}

func TestStartLessonUnknownBatch(t *testing.T) {
	m, _, _ := newTestManager(t)
	if _, err := m.StartLesson(context.Background(), 9); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("err = %v, want store.ErrNotFound", err)
	}
}

func TestUnknownSessionID(t *testing.T) {
	m, _, _ := newTestManager(t)
	if _, _, err := m.Next("nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Next err = %v", err)
	}
	if _, err := m.SubmitAnswer(context.Background(), "nope", true); !errors.Is(err, ErrNotFound) {
		t.Errorf("SubmitAnswer err = %v", err)
	}
}

func TestIdleSessionsSweptOnRegister(t *testing.T) {
	m, _, _ := newTestManager(t)
	ctx := context.Background()

	s, err := m.StartLesson(ctx, 1)
	if err != nil {
		t.Fatal(err)
	}

	base := m.now()
	m.now = func() time.Time { return base.Add(idleTTL + time.Minute) }
	if _, err := m.StartLesson(ctx, 1); err != nil {
		t.Fatal(err)
	}
	if _, _, err := m.Next(s.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("stale session survived sweep: %v", err)
	}
}
