// Package stats computes read-side dashboard numbers from the full
// review and lesson state at request time. Nothing here is cached;
// dueness is always measured against the clock the caller passes in.
package stats

import (
	"context"
	"math"
	"time"

	"github.com/abhisek/kanado/internal/srs"
	"github.com/abhisek/kanado/internal/store"
)

// forecastDays is the span of the upcoming-reviews forecast.
const forecastDays = 7

// Dashboard is the summary block shown on the home screen.
type Dashboard struct {
	TotalItems        int            `json:"total_items"`
	ReviewsDueNow     int            `json:"reviews_due_now"`
	ReviewsDueToday   int            `json:"reviews_due_today"`
	AccuracyRate      int            `json:"accuracy_rate"`
	StageDistribution map[string]int `json:"stage_distribution"`
	LessonsAvailable  int            `json:"lessons_available"`
}

// DayForecast is one day of the upcoming-reviews forecast. Count is
// cumulative (everything due by end of day), NewCount is that day's own
// bucket.
type DayForecast struct {
	Date     string `json:"date"`
	Count    int    `json:"count"`
	NewCount int    `json:"new_count"`
}

// HourForecast is one hour of a single day's forecast, same
// cumulative/new split as DayForecast.
type HourForecast struct {
	Hour     int `json:"hour"`
	Count    int `json:"count"`
	NewCount int `json:"new_count"`
}

// Aggregator answers the dashboard and forecast queries.
type Aggregator struct {
	symbols store.SymbolRepo
	reviews store.ReviewRepo
	batches store.LessonBatchRepo
}

// NewAggregator wires an aggregator over the given repositories.
func NewAggregator(symbols store.SymbolRepo, reviews store.ReviewRepo, batches store.LessonBatchRepo) *Aggregator {
	return &Aggregator{symbols: symbols, reviews: reviews, batches: batches}
}

// Dashboard computes the summary numbers as of now.
func (a *Aggregator) Dashboard(ctx context.Context, now time.Time) (*Dashboard, error) {
	total, err := a.symbols.Count(ctx)
	if err != nil {
		return nil, err
	}
	records, err := a.reviews.All(ctx)
	if err != nil {
		return nil, err
	}
	incomplete, err := a.batches.IncompleteCount(ctx)
	if err != nil {
		return nil, err
	}

	d := &Dashboard{
		TotalItems:        total,
		LessonsAvailable:  incomplete,
		StageDistribution: make(map[string]int, len(srs.Tiers)),
	}
	for _, tier := range srs.Tiers {
		d.StageDistribution[string(tier)] = 0
	}

	var correct, incorrect int
	dayEnd := now.Add(24 * time.Hour)
	for _, r := range records {
		if !r.NextDue.After(now) {
			d.ReviewsDueNow++
		}
		if !r.NextDue.After(dayEnd) {
			d.ReviewsDueToday++
		}
		correct += r.CorrectCount
		incorrect += r.IncorrectCount
		if tier, err := srs.Stage(r.Stage).Tier(); err == nil {
			d.StageDistribution[string(tier)]++
		}
	}
	d.AccuracyRate = accuracy(correct, incorrect)
	return d, nil
}

// Upcoming forecasts the next seven days including today. Anything
// already overdue folds into today's bucket; days with nothing new
// still appear, carrying the running total forward.
func (a *Aggregator) Upcoming(ctx context.Context, now time.Time) ([]DayForecast, error) {
	records, err := a.reviews.All(ctx)
	if err != nil {
		return nil, err
	}

	dayStart := startOfDay(now)
	buckets := make([]int, forecastDays)
	for _, r := range records {
		day := int(r.NextDue.Sub(dayStart).Hours() / 24)
		if day < 0 {
			day = 0 // overdue counts as today
		}
		if day < forecastDays {
			buckets[day]++
		}
	}

	out := make([]DayForecast, forecastDays)
	running := 0
	for i := range out {
		running += buckets[i]
		out[i] = DayForecast{
			Date:     dayStart.AddDate(0, 0, i).Format("2006-01-02"),
			Count:    running,
			NewCount: buckets[i],
		}
	}
	return out, nil
}

// Hourly forecasts one day hour by hour. The cumulative count runs
// within the day only.
func (a *Aggregator) Hourly(ctx context.Context, date time.Time) ([]HourForecast, error) {
	records, err := a.reviews.All(ctx)
	if err != nil {
		return nil, err
	}

	dayStart := startOfDay(date)
	dayEnd := dayStart.AddDate(0, 0, 1)
	buckets := make([]int, 24)
	for _, r := range records {
		if r.NextDue.Before(dayStart) || !r.NextDue.Before(dayEnd) {
			continue
		}
		buckets[r.NextDue.In(dayStart.Location()).Hour()]++
	}

	out := make([]HourForecast, 24)
	running := 0
	for h := range out {
		running += buckets[h]
		out[h] = HourForecast{Hour: h, Count: running, NewCount: buckets[h]}
	}
	return out, nil
}

func accuracy(correct, incorrect int) int {
	answered := correct + incorrect
	if answered == 0 {
		return 0
	}
	return int(math.Round(float64(correct) / float64(answered) * 100))
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
