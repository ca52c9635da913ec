package stats

import (
	"context"
	"testing"
	"time"

	"github.com/abhisek/kanado/internal/store"
)

type stubSymbolRepo struct{ count int }

func (s stubSymbolRepo) All(_ context.Context) ([]store.Symbol, error)        { return nil, nil }
func (s stubSymbolRepo) Get(_ context.Context, _ int) (*store.Symbol, error)  { return nil, store.ErrNotFound }
func (s stubSymbolRepo) ByBatch(_ context.Context, _ int) ([]store.Symbol, error) { return nil, nil }
func (s stubSymbolRepo) Count(_ context.Context) (int, error)                 { return s.count, nil }

type stubReviewRepo struct{ records []store.ReviewRecord }

func (s stubReviewRepo) Get(_ context.Context, _ int) (*store.ReviewRecord, error) {
	return nil, store.ErrNotFound
}
func (s stubReviewRepo) All(_ context.Context) ([]store.ReviewRecord, error) {
	return s.records, nil
}
func (s stubReviewRepo) Due(_ context.Context, _ time.Time) ([]store.ReviewWithSymbol, error) {
	return nil, nil
}
func (s stubReviewRepo) SymbolsWithReviews(_ context.Context) ([]store.SymbolWithReview, error) {
	return nil, nil
}
func (s stubReviewRepo) Transition(_ context.Context, _ int, _ func(*store.ReviewRecord) error) (*store.ReviewRecord, error) {
	return nil, store.ErrNotFound
}
func (s stubReviewRepo) DeleteAll(_ context.Context) (int, error) { return 0, nil }

type stubBatchRepo struct{ incomplete int }

func (s stubBatchRepo) All(_ context.Context) ([]store.LessonBatch, error) { return nil, nil }
func (s stubBatchRepo) Get(_ context.Context, _ int) (*store.LessonBatch, error) {
	return nil, store.ErrNotFound
}
func (s stubBatchRepo) NextIncomplete(_ context.Context) (*store.LessonBatch, error) {
	return nil, nil
}
func (s stubBatchRepo) IncompleteCount(_ context.Context) (int, error) { return s.incomplete, nil }
func (s stubBatchRepo) CompleteBatch(_ context.Context, _ int, _ time.Time, _ []store.ReviewSeed) error {
	return nil
}
func (s stubBatchRepo) ResetAll(_ context.Context) error { return nil }

func newAggregator(symbols int, incomplete int, records []store.ReviewRecord) *Aggregator {
	return NewAggregator(
		stubSymbolRepo{count: symbols},
		stubReviewRepo{records: records},
		stubBatchRepo{incomplete: incomplete},
	)
}

var testNow = time.Date(2025, 7, 10, 9, 0, 0, 0, time.UTC)

func TestDashboardCounts(t *testing.T) {
	records := []store.ReviewRecord{
		{ID: 1, Stage: 0, NextDue: testNow.Add(-2 * time.Hour), CorrectCount: 1, IncorrectCount: 2},
		{ID: 2, Stage: 2, NextDue: testNow, CorrectCount: 3},
		{ID: 3, Stage: 4, NextDue: testNow.Add(10 * time.Hour), CorrectCount: 2, IncorrectCount: 1},
		{ID: 4, Stage: 6, NextDue: testNow.Add(30 * time.Hour), CorrectCount: 1},
		{ID: 5, Stage: 7, NextDue: testNow.Add(100 * time.Hour)},
	}
	agg := newAggregator(104, 21, records)

	d, err := agg.Dashboard(context.Background(), testNow)
	if err != nil {
		t.Fatal(err)
	}
	if d.TotalItems != 104 {
		t.Errorf("total = %d", d.TotalItems)
	}
	if d.ReviewsDueNow != 2 {
		t.Errorf("due now = %d, want 2", d.ReviewsDueNow)
	}
	if d.ReviewsDueToday != 3 {
		t.Errorf("due today = %d, want 3", d.ReviewsDueToday)
	}
	if d.AccuracyRate != 70 {
		t.Errorf("accuracy = %d, want 70", d.AccuracyRate)
	}
	if d.LessonsAvailable != 21 {
		t.Errorf("lessons available = %d, want 21", d.LessonsAvailable)
	}

	want := map[string]int{"Apprentice": 2, "Guru": 1, "Master": 1, "Enlightened": 1}
	for tier, n := range want {
		if d.StageDistribution[tier] != n {
			t.Errorf("tier %s = %d, want %d", tier, d.StageDistribution[tier], n)
		}
	}
}

func TestDashboardZeroAnswers(t *testing.T) {
	agg := newAggregator(104, 26, nil)
	d, err := agg.Dashboard(context.Background(), testNow)
	if err != nil {
		t.Fatal(err)
	}
	if d.AccuracyRate != 0 {
		t.Errorf("accuracy with no answers = %d, want 0", d.AccuracyRate)
	}
	if len(d.StageDistribution) != 4 {
		t.Errorf("histogram has %d tiers, want all 4", len(d.StageDistribution))
	}
	for tier, n := range d.StageDistribution {
		if n != 0 {
			t.Errorf("tier %s = %d, want 0", tier, n)
		}
	}
}

func TestUpcomingSevenDays(t *testing.T) {
	records := []store.ReviewRecord{
		{ID: 1, NextDue: testNow.Add(-time.Hour)},      // overdue folds into today
		{ID: 2, NextDue: testNow.Add(time.Hour)},       // today
		{ID: 3, NextDue: testNow.Add(24 * time.Hour)},  // tomorrow
		{ID: 4, NextDue: testNow.Add(26 * time.Hour)},  // tomorrow
		{ID: 5, NextDue: testNow.Add(30 * time.Hour)},  // tomorrow
		{ID: 6, NextDue: testNow.Add(200 * time.Hour)}, // beyond the window
	}
	agg := newAggregator(104, 0, records)

	days, err := agg.Upcoming(context.Background(), testNow)
	if err != nil {
		t.Fatal(err)
	}
	if len(days) != 7 {
		t.Fatalf("forecast days = %d, want 7", len(days))
	}
	if days[0].Date != "2025-07-10" {
		t.Errorf("first day = %s, want today", days[0].Date)
	}
	if days[0].NewCount != 2 || days[0].Count != 2 {
		t.Errorf("today = %+v, want new 2 cumulative 2", days[0])
	}
	if days[1].NewCount != 3 || days[1].Count != 5 {
		t.Errorf("tomorrow = %+v, want new 3 cumulative 5", days[1])
	}
	for i := 2; i < 7; i++ {
		if days[i].NewCount != 0 || days[i].Count != 5 {
			t.Errorf("day %d = %+v, want new 0 cumulative 5", i, days[i])
		}
	}
}

func TestHourlyForecast(t *testing.T) {
	day := time.Date(2025, 7, 11, 0, 0, 0, 0, time.UTC)
	records := []store.ReviewRecord{
		{ID: 1, NextDue: day.Add(8 * time.Hour)},
		{ID: 2, NextDue: day.Add(8*time.Hour + 30*time.Minute)},
		{ID: 3, NextDue: day.Add(15 * time.Hour)},
		{ID: 4, NextDue: day.Add(-time.Hour)},     // previous day, excluded
		{ID: 5, NextDue: day.Add(24 * time.Hour)}, // next day, excluded
	}
	agg := newAggregator(104, 0, records)

	hours, err := agg.Hourly(context.Background(), day)
	if err != nil {
		t.Fatal(err)
	}
	if len(hours) != 24 {
		t.Fatalf("hours = %d, want 24", len(hours))
	}
	if hours[8].NewCount != 2 || hours[8].Count != 2 {
		t.Errorf("hour 8 = %+v", hours[8])
	}
	if hours[15].NewCount != 1 || hours[15].Count != 3 {
		t.Errorf("hour 15 = %+v", hours[15])
	}
	if hours[23].Count != 3 || hours[23].NewCount != 0 {
		t.Errorf("hour 23 = %+v", hours[23])
	}
	if hours[0].Count != 0 {
		t.Errorf("hour 0 = %+v", hours[0])
	}
}
