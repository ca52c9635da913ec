package session

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/kanado/internal/lessons"
	"github.com/abhisek/kanado/internal/review"
)

var (
	// ErrNotFound means the session id is unknown or has expired.
	ErrNotFound = errors.New("session: not found")
	// ErrNoCards means a session was requested with nothing to study.
	ErrNoCards = errors.New("session: nothing to study")
)

// Kind distinguishes review sessions from lesson quizzes.
type Kind string

const (
	KindReview Kind = "review"
	KindLesson Kind = "lesson"
)

// idleTTL is how long a session may sit untouched before it is dropped.
const idleTTL = 2 * time.Hour

// Session is one in-flight study sitting.
type Session struct {
	ID          string
	Kind        Kind
	BatchNumber int // lesson sessions only

	queue     *Queue
	touchedAt time.Time
}

// Answer is the outcome of scoring one card.
type Answer struct {
	Card      Card `json:"card"`
	Correct   bool `json:"correct"`
	Answered  int  `json:"answered"`
	Remaining int  `json:"remaining"`
	Accuracy  int  `json:"accuracy_rate"`
	Done      bool `json:"done"`
}

// Manager owns the registry of active sessions. It persists review
// answers on each card's first attempt and completes the lesson batch
// when a lesson session drains. Safe for concurrent use; session state
// is mutated only under the manager lock.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session

	reviews *review.Service
	lessons *lessons.Service
	now     func() time.Time
	newRNG  func() *rand.Rand
}

// NewManager wires a manager over the review and lesson services.
func NewManager(reviews *review.Service, lessonSvc *lessons.Service) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		reviews:  reviews,
		lessons:  lessonSvc,
		now:      func() time.Time { return time.Now().UTC() },
		newRNG: func() *rand.Rand {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		},
	}
}

// StartReview snapshots the currently due reviews into a new session.
func (m *Manager) StartReview(ctx context.Context) (*Session, error) {
	due, err := m.reviews.Due(ctx, m.now())
	if err != nil {
		return nil, err
	}
	if len(due) == 0 {
		return nil, ErrNoCards
	}
	return m.register(KindReview, 0, QueueFromReviews(due, m.newRNG())), nil
}

// StartLesson snapshots the batch's symbols into a new quiz session.
func (m *Manager) StartLesson(ctx context.Context, batchNumber int) (*Session, error) {
	items, err := m.lessons.Items(ctx, batchNumber)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrNoCards
	}
	cards := make([]Card, len(items))
	for i, item := range items {
		cards[i] = Card{SymbolID: item.ID, Glyph: item.Glyph, Romaji: item.Romaji}
	}
	return m.register(KindLesson, batchNumber, NewQueue(cards, m.newRNG())), nil
}

func (m *Manager) register(kind Kind, batchNumber int, q *Queue) *Session {
	s := &Session{
		ID:          uuid.NewString(),
		Kind:        kind,
		BatchNumber: batchNumber,
		queue:       q,
		touchedAt:   m.now(),
	}
	m.mu.Lock()
	m.sweepLocked()
	m.sessions[s.ID] = s
	m.mu.Unlock()
	return s
}

// Next returns the session's current card, or nil when it is drained.
func (m *Manager) Next(id string) (*Session, *Card, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, nil, ErrNotFound
	}
	s.touchedAt = m.now()
	return s, s.queue.Next(), nil
}

// SubmitAnswer scores the session's current card. Review answers hit
// the scheduler on the card's first attempt only; later attempts at the
// same card reorder the queue without touching the record. A lesson
// session that drains completes its batch with the first-attempt map
// and is removed from the registry.
func (m *Manager) SubmitAnswer(ctx context.Context, id string, correct bool) (*Answer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	s.touchedAt = m.now()

	current := s.queue.Next()
	if current == nil {
		return nil, ErrNoCards
	}

	if s.Kind == KindReview && !s.queue.Attempted(current.SymbolID) {
		if _, err := m.reviews.SubmitAnswer(ctx, current.ReviewID, correct, m.now()); err != nil {
			return nil, err
		}
	}

	card := s.queue.RecordAnswer(correct)
	ans := &Answer{
		Card:      *card,
		Correct:   correct,
		Answered:  s.queue.Answered(),
		Remaining: s.queue.Remaining(),
		Accuracy:  s.queue.Accuracy(),
		Done:      s.queue.Done(),
	}

	if ans.Done {
		if s.Kind == KindLesson {
			if err := m.lessons.Complete(ctx, s.BatchNumber, s.queue.FirstAttempts(), m.now()); err != nil {
				return nil, err
			}
		}
		delete(m.sessions, id)
	}
	return ans, nil
}

// Progress reports where the session stands.
func (m *Manager) Progress(id string) (answered, total, accuracy int, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return 0, 0, 0, ErrNotFound
	}
	return s.queue.Answered(), s.queue.Total(), s.queue.Accuracy(), nil
}

func (m *Manager) sweepLocked() {
	cutoff := m.now().Add(-idleTTL)
	for id, s := range m.sessions {
		if s.touchedAt.Before(cutoff) {
			delete(m.sessions, id)
		}
	}
}
