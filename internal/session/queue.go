// Package session holds the in-memory study queue and the registry of
// active study sessions. A queue is a shuffled snapshot of cards; missed
// cards circle back later in the same sitting, and the queue drains once
// every card has been answered correctly.
package session

import (
	"math/rand"

	"github.com/abhisek/kanado/internal/store"
)

// Card is one quizzable item in a queue. ReviewID is zero for lesson
// quizzes, where no review record exists yet.
type Card struct {
	SymbolID int    `json:"katakana_id"`
	ReviewID int    `json:"review_id,omitempty"`
	Glyph    string `json:"character"`
	Romaji   string `json:"romaji"`
}

// Queue is a single-session shuffled card queue. It is not safe for
// concurrent use; the Manager serializes access per session.
type Queue struct {
	cards []Card
	rng   *rand.Rand

	firstAttempt map[int]bool // symbol id -> first answer outcome
	answered     int          // cards retired so far
	attempts     int
	misses       int
}

// NewQueue shuffles the cards with rng and returns the queue. The rng is
// retained for requeue positions.
func NewQueue(cards []Card, rng *rand.Rand) *Queue {
	shuffled := make([]Card, len(cards))
	copy(shuffled, cards)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return &Queue{
		cards:        shuffled,
		rng:          rng,
		firstAttempt: make(map[int]bool, len(cards)),
	}
}

// QueueFromReviews builds a queue from due reviews.
func QueueFromReviews(due []store.ReviewWithSymbol, rng *rand.Rand) *Queue {
	cards := make([]Card, len(due))
	for i, r := range due {
		cards[i] = Card{
			SymbolID: r.SymbolID,
			ReviewID: r.ID,
			Glyph:    r.Glyph,
			Romaji:   r.Romaji,
		}
	}
	return NewQueue(cards, rng)
}

// QueueFromSymbols builds a lesson-quiz queue from a batch's symbols.
func QueueFromSymbols(syms []store.Symbol, rng *rand.Rand) *Queue {
	cards := make([]Card, len(syms))
	for i, s := range syms {
		cards[i] = Card{SymbolID: s.ID, Glyph: s.Glyph, Romaji: s.Romaji}
	}
	return NewQueue(cards, rng)
}

// Next returns the current card, or nil when the queue is drained.
func (q *Queue) Next() *Card {
	if len(q.cards) == 0 {
		return nil
	}
	card := q.cards[0]
	return &card
}

// RecordAnswer scores the current card and returns it. A correct answer
// retires the card; an incorrect one sends it back into the queue, never
// to the immediately next slot when there is room to avoid it. Returns
// nil when the queue is already drained.
func (q *Queue) RecordAnswer(correct bool) *Card {
	if len(q.cards) == 0 {
		return nil
	}
	card := q.cards[0]
	if _, seen := q.firstAttempt[card.SymbolID]; !seen {
		q.firstAttempt[card.SymbolID] = correct
	}
	q.attempts++

	if correct {
		q.cards = q.cards[1:]
		q.answered++
		return &card
	}

	q.misses++
	rest := q.cards[1:]
	if len(rest) <= 1 {
		q.cards = append(rest, card)
		return &card
	}
	// Uniform over positions after the next card, end inclusive.
	pos := 1 + q.rng.Intn(len(rest))
	requeued := make([]Card, 0, len(q.cards))
	requeued = append(requeued, rest[:pos]...)
	requeued = append(requeued, card)
	requeued = append(requeued, rest[pos:]...)
	q.cards = requeued
	return &card
}

// Done reports whether every card has been answered correctly.
func (q *Queue) Done() bool { return len(q.cards) == 0 }

// Remaining is the number of cards still in the queue.
func (q *Queue) Remaining() int { return len(q.cards) }

// Answered is the number of cards retired so far.
func (q *Queue) Answered() int { return q.answered }

// Total is answered plus remaining.
func (q *Queue) Total() int { return q.answered + len(q.cards) }

// FirstAttempts returns the first answer recorded per symbol. The map is
// live; callers must not mutate it while the queue is in use.
func (q *Queue) FirstAttempts() map[int]bool { return q.firstAttempt }

// Attempted reports whether the symbol has been answered at least once.
func (q *Queue) Attempted(symbolID int) bool {
	_, ok := q.firstAttempt[symbolID]
	return ok
}

// Accuracy is the percentage of attempts answered correctly, rounded to
// the nearest integer, 0 before any attempt.
func (q *Queue) Accuracy() int {
	if q.attempts == 0 {
		return 0
	}
	correct := q.attempts - q.misses
	return int(float64(correct)/float64(q.attempts)*100 + 0.5)
}
