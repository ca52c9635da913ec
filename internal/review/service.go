// Package review applies answer outcomes to review records and exposes
// the due-review read paths.
package review

import (
	"context"
	"time"

	"github.com/abhisek/kanado/internal/srs"
	"github.com/abhisek/kanado/internal/store"
)

// Service is the review scheduler. All stage mutations for existing
// records flow through SubmitAnswer.
type Service struct {
	reviews store.ReviewRepo
}

// NewService creates a review service backed by the given repository.
func NewService(reviews store.ReviewRepo) *Service {
	return &Service{reviews: reviews}
}

// Due returns the reviews due at now, soonest first.
func (s *Service) Due(ctx context.Context, now time.Time) ([]store.ReviewWithSymbol, error) {
	return s.reviews.Due(ctx, now)
}

// SymbolsWithReviews returns the whole catalog with review state where
// it exists.
func (s *Service) SymbolsWithReviews(ctx context.Context) ([]store.SymbolWithReview, error) {
	return s.reviews.SymbolsWithReviews(ctx)
}

// SubmitAnswer records one answer for a review: a correct answer moves
// the record one stage up (clamped at the top), an incorrect answer
// resets it to the first stage. Exactly one of the answer counters is
// incremented and next_due becomes now plus the new stage's interval.
// The whole update is applied atomically.
func (s *Service) SubmitAnswer(ctx context.Context, reviewID int, correct bool, now time.Time) (*store.ReviewRecord, error) {
	return s.reviews.Transition(ctx, reviewID, func(rec *store.ReviewRecord) error {
		next, err := srs.Advance(srs.Stage(rec.Stage), correct)
		if err != nil {
			return err
		}
		due, err := srs.NextDue(now, next)
		if err != nil {
			return err
		}

		rec.Stage = int(next)
		rec.NextDue = due
		if correct {
			rec.CorrectCount++
		} else {
			rec.IncorrectCount++
		}
		answered := now
		rec.LastReviewed = &answered
		return nil
	})
}
