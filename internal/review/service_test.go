package review

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/abhisek/kanado/internal/srs"
	"github.com/abhisek/kanado/internal/store"
)

// mockReviewRepo keeps records in memory and applies Transition the way
// the store does: load, mutate, persist.
type mockReviewRepo struct {
	records map[int]store.ReviewRecord
}

func newMockReviewRepo(records ...store.ReviewRecord) *mockReviewRepo {
	m := &mockReviewRepo{records: make(map[int]store.ReviewRecord)}
	for _, r := range records {
		m.records[r.ID] = r
	}
	return m
}

func (m *mockReviewRepo) Get(_ context.Context, id int) (*store.ReviewRecord, error) {
	rec, ok := m.records[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &rec, nil
}

func (m *mockReviewRepo) All(_ context.Context) ([]store.ReviewRecord, error) {
	var out []store.ReviewRecord
	for _, r := range m.records {
		out = append(out, r)
	}
	return out, nil
}

func (m *mockReviewRepo) Due(_ context.Context, now time.Time) ([]store.ReviewWithSymbol, error) {
	var out []store.ReviewWithSymbol
	for _, r := range m.records {
		if !r.NextDue.After(now) {
			out = append(out, store.ReviewWithSymbol{ReviewRecord: r})
		}
	}
	return out, nil
}

func (m *mockReviewRepo) SymbolsWithReviews(_ context.Context) ([]store.SymbolWithReview, error) {
	return nil, nil
}

func (m *mockReviewRepo) Transition(_ context.Context, id int, mutate func(*store.ReviewRecord) error) (*store.ReviewRecord, error) {
	rec, ok := m.records[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	if err := mutate(&rec); err != nil {
		return nil, err
	}
	m.records[id] = rec
	return &rec, nil
}

func (m *mockReviewRepo) DeleteAll(_ context.Context) (int, error) {
	n := len(m.records)
	m.records = make(map[int]store.ReviewRecord)
	return n, nil
}

func testRecord(id, stage int) store.ReviewRecord {
	return store.ReviewRecord{
		ID:        id,
		SymbolID:  100 + id,
		Stage:     stage,
		NextDue:   time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC),
		CreatedAt: time.Date(2025, 4, 30, 8, 0, 0, 0, time.UTC),
	}
}

func TestSubmitAnswerCorrectAdvancesEveryStage(t *testing.T) {
	now := time.Date(2025, 5, 1, 9, 15, 0, 0, time.UTC)
	ctx := context.Background()

	for stage := 0; stage <= 7; stage++ {
		repo := newMockReviewRepo(testRecord(1, stage))
		svc := NewService(repo)

		got, err := svc.SubmitAnswer(ctx, 1, true, now)
		if err != nil {
			t.Fatalf("stage %d: %v", stage, err)
		}

		wantStage := stage + 1
		if wantStage > 7 {
			wantStage = 7
		}
		if got.Stage != wantStage {
			t.Errorf("stage %d correct: new stage = %d, want %d", stage, got.Stage, wantStage)
		}

		iv, _ := srs.Stage(wantStage).Interval()
		if !got.NextDue.Equal(now.Add(iv)) {
			t.Errorf("stage %d correct: next due = %v, want %v", stage, got.NextDue, now.Add(iv))
		}
		if got.CorrectCount != 1 || got.IncorrectCount != 0 {
			t.Errorf("stage %d correct: counts = %d/%d, want 1/0", stage, got.CorrectCount, got.IncorrectCount)
		}
		if got.LastReviewed == nil || !got.LastReviewed.Equal(now) {
			t.Errorf("stage %d correct: last reviewed = %v, want %v", stage, got.LastReviewed, now)
		}
	}
}

func TestSubmitAnswerIncorrectResetsEveryStage(t *testing.T) {
	now := time.Date(2025, 5, 1, 9, 15, 0, 0, time.UTC)
	ctx := context.Background()

	for stage := 0; stage <= 7; stage++ {
		repo := newMockReviewRepo(testRecord(1, stage))
		svc := NewService(repo)

		got, err := svc.SubmitAnswer(ctx, 1, false, now)
		if err != nil {
			t.Fatalf("stage %d: %v", stage, err)
		}
		if got.Stage != 0 {
			t.Errorf("stage %d incorrect: new stage = %d, want 0", stage, got.Stage)
		}
		if !got.NextDue.Equal(now.Add(2 * time.Hour)) {
			t.Errorf("stage %d incorrect: next due = %v, want %v", stage, got.NextDue, now.Add(2*time.Hour))
		}
		if got.CorrectCount != 0 || got.IncorrectCount != 1 {
			t.Errorf("stage %d incorrect: counts = %d/%d, want 0/1", stage, got.CorrectCount, got.IncorrectCount)
		}
	}
}

func TestSubmitAnswerStageThreeScenario(t *testing.T) {
	// A stage-3 record answered correctly moves to Guru I with a one
	// week wait.
	now := time.Date(2025, 5, 2, 14, 0, 0, 0, time.UTC)
	rec := testRecord(7, 3)
	rec.CorrectCount = 4
	repo := newMockReviewRepo(rec)
	svc := NewService(repo)

	got, err := svc.SubmitAnswer(context.Background(), 7, true, now)
	if err != nil {
		t.Fatal(err)
	}
	if got.Stage != 4 {
		t.Errorf("stage = %d, want 4", got.Stage)
	}
	if !got.NextDue.Equal(now.Add(168 * time.Hour)) {
		t.Errorf("next due = %v, want %v", got.NextDue, now.Add(168*time.Hour))
	}
	if got.CorrectCount != 5 {
		t.Errorf("correct count = %d, want 5", got.CorrectCount)
	}
}

func TestSubmitAnswerExactlyOneCounterIncrements(t *testing.T) {
	now := time.Now().UTC()
	rec := testRecord(3, 2)
	rec.CorrectCount = 5
	rec.IncorrectCount = 2
	repo := newMockReviewRepo(rec)
	svc := NewService(repo)

	got, err := svc.SubmitAnswer(context.Background(), 3, false, now)
	if err != nil {
		t.Fatal(err)
	}
	if got.CorrectCount != 5 {
		t.Errorf("correct count changed: %d", got.CorrectCount)
	}
	if got.IncorrectCount != 3 {
		t.Errorf("incorrect count = %d, want 3", got.IncorrectCount)
	}
}

func TestSubmitAnswerUnknownRecord(t *testing.T) {
	svc := NewService(newMockReviewRepo())
	_, err := svc.SubmitAnswer(context.Background(), 99, true, time.Now())
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("err = %v, want store.ErrNotFound", err)
	}
}
