package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/kanado/internal/lessons"
	"github.com/abhisek/kanado/internal/review"
	"github.com/abhisek/kanado/internal/session"
	"github.com/abhisek/kanado/internal/stats"
	"github.com/abhisek/kanado/internal/store"
)

// fixture is an in-memory world the handlers run against.
type fixture struct {
	symbols map[int]store.Symbol
	batches map[int]*store.LessonBatch
	records map[int]*store.ReviewRecord
	notes   map[int]string
	nextID  int
}

func newFixture() *fixture {
	now := time.Now().UTC()
	return &fixture{
		symbols: map[int]store.Symbol{
			1: {ID: 1, Glyph: "ア", Romaji: "a", Kind: "basic", BatchNumber: 1},
			2: {ID: 2, Glyph: "イ", Romaji: "i", Kind: "basic", BatchNumber: 1},
			3: {ID: 3, Glyph: "ガ", Romaji: "ga", Kind: "dakuten", BatchNumber: 2},
		},
		batches: map[int]*store.LessonBatch{
			1: {BatchNumber: 1, Name: "Vowels"},
			2: {BatchNumber: 2, Name: "G-row"},
		},
		records: map[int]*store.ReviewRecord{
			10: {ID: 10, SymbolID: 1, Stage: 1, NextDue: now.Add(-time.Hour), CorrectCount: 1},
		},
		notes:  map[int]string{},
		nextID: 100,
	}
}

func (f *fixture) symbolList() []store.Symbol {
	var out []store.Symbol
	for id := 1; id <= len(f.symbols); id++ {
		out = append(out, f.symbols[id])
	}
	return out
}

// fixture implements the repo interfaces.

func (f *fixture) All(ctx context.Context) ([]store.Symbol, error) { return f.symbolList(), nil }
func (f *fixture) Get(ctx context.Context, id int) (*store.Symbol, error) {
	s, ok := f.symbols[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &s, nil
}
func (f *fixture) ByBatch(ctx context.Context, n int) ([]store.Symbol, error) {
	var out []store.Symbol
	for _, s := range f.symbolList() {
		if s.BatchNumber == n {
			out = append(out, s)
		}
	}
	return out, nil
}
func (f *fixture) Count(ctx context.Context) (int, error) { return len(f.symbols), nil }

type fixtureReviews struct{ f *fixture }

func (r fixtureReviews) Get(_ context.Context, id int) (*store.ReviewRecord, error) {
	rec, ok := r.f.records[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *rec
	return &cp, nil
}
func (r fixtureReviews) All(_ context.Context) ([]store.ReviewRecord, error) {
	var out []store.ReviewRecord
	for _, rec := range r.f.records {
		out = append(out, *rec)
	}
	return out, nil
}
func (r fixtureReviews) Due(_ context.Context, now time.Time) ([]store.ReviewWithSymbol, error) {
	var out []store.ReviewWithSymbol
	for _, rec := range r.f.records {
		if !rec.NextDue.After(now) {
			sym := r.f.symbols[rec.SymbolID]
			out = append(out, store.ReviewWithSymbol{
				ReviewRecord: *rec,
				Glyph:        sym.Glyph,
				Romaji:       sym.Romaji,
				Kind:         sym.Kind,
			})
		}
	}
	return out, nil
}
func (r fixtureReviews) SymbolsWithReviews(_ context.Context) ([]store.SymbolWithReview, error) {
	var out []store.SymbolWithReview
	for _, s := range r.f.symbolList() {
		item := store.SymbolWithReview{Symbol: s}
		for _, rec := range r.f.records {
			if rec.SymbolID == s.ID {
				cp := *rec
				item.Review = &cp
			}
		}
		out = append(out, item)
	}
	return out, nil
}
func (r fixtureReviews) Transition(_ context.Context, id int, apply func(*store.ReviewRecord) error) (*store.ReviewRecord, error) {
	rec, ok := r.f.records[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	if err := apply(rec); err != nil {
		return nil, err
	}
	cp := *rec
	return &cp, nil
}
func (r fixtureReviews) DeleteAll(_ context.Context) (int, error) { return 0, nil }

type fixtureBatches struct{ f *fixture }

func (b fixtureBatches) All(_ context.Context) ([]store.LessonBatch, error) {
	var out []store.LessonBatch
	for n := 1; n <= len(b.f.batches); n++ {
		out = append(out, *b.f.batches[n])
	}
	return out, nil
}
func (b fixtureBatches) Get(_ context.Context, n int) (*store.LessonBatch, error) {
	batch, ok := b.f.batches[n]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *batch
	return &cp, nil
}
func (b fixtureBatches) NextIncomplete(_ context.Context) (*store.LessonBatch, error) {
	for n := 1; n <= len(b.f.batches); n++ {
		if !b.f.batches[n].Completed {
			cp := *b.f.batches[n]
			return &cp, nil
		}
	}
	return nil, nil
}
func (b fixtureBatches) IncompleteCount(_ context.Context) (int, error) {
	count := 0
	for _, batch := range b.f.batches {
		if !batch.Completed {
			count++
		}
	}
	return count, nil
}
func (b fixtureBatches) CompleteBatch(_ context.Context, n int, completedAt time.Time, seeds []store.ReviewSeed) error {
	batch := b.f.batches[n]
	if batch.Completed {
		return nil
	}
	batch.Completed = true
	batch.CompletedAt = &completedAt
	for _, seed := range seeds {
		exists := false
		for _, rec := range b.f.records {
			if rec.SymbolID == seed.SymbolID {
				exists = true
			}
		}
		if exists {
			continue
		}
		id := b.f.nextID
		b.f.nextID++
		b.f.records[id] = &store.ReviewRecord{
			ID:             id,
			SymbolID:       seed.SymbolID,
			Stage:          seed.Stage,
			NextDue:        seed.NextDue,
			CorrectCount:   seed.CorrectCount,
			IncorrectCount: seed.IncorrectCount,
			CreatedAt:      completedAt,
		}
	}
	return nil
}
func (b fixtureBatches) ResetAll(_ context.Context) error { return nil }

type fixtureNotes struct{ f *fixture }

func (n fixtureNotes) Upsert(_ context.Context, id int, note string) (*store.UserNote, error) {
	n.f.notes[id] = note
	return &store.UserNote{SymbolID: id, Note: note}, nil
}
func (n fixtureNotes) Delete(_ context.Context, id int) error {
	delete(n.f.notes, id)
	return nil
}
func (n fixtureNotes) ForSymbols(_ context.Context, _ []int) (map[int]string, error) {
	return n.f.notes, nil
}

func newTestServer(t *testing.T) (*Server, *fixture) {
	t.Helper()
	f := newFixture()
	reviewSvc := review.NewService(fixtureReviews{f})
	lessonSvc := lessons.NewService(fixtureBatches{f}, f, fixtureNotes{f})
	agg := stats.NewAggregator(f, fixtureReviews{f}, fixtureBatches{f})
	mgr := session.NewManager(reviewSvc, lessonSvc)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewServer(log, reviewSvc, lessonSvc, agg, mgr), f
}

func doJSON(t *testing.T, srv *Server, method, target, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echoContentType, "application/json")
	}
	rec := httptest.NewRecorder()
	srv.Echo().ServeHTTP(rec, req)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &parsed), "body: %s", rec.Body.String())
	return rec, parsed
}

const echoContentType = "Content-Type"

func TestHealth(t *testing.T) {
	srv, _ := newTestServer(t)
	rec, body := doJSON(t, srv, http.MethodGet, "/api/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", body["status"])
}

func TestDueReviews(t *testing.T) {
	srv, _ := newTestServer(t)
	rec, body := doJSON(t, srv, http.MethodGet, "/api/reviews/due", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(1), body["count"])
}

func TestAnswerReview(t *testing.T) {
	srv, f := newTestServer(t)

	rec, body := doJSON(t, srv, http.MethodPost, "/api/reviews/10/answer", `{"isCorrect":true}`)
	require.Equal(t, http.StatusOK, rec.Code, body)
	data := body["data"].(map[string]any)
	assert.Equal(t, float64(2), data["srs_stage"])
	assert.Equal(t, 2, f.records[10].Stage)

	rec, _ = doJSON(t, srv, http.MethodPost, "/api/reviews/999/answer", `{"isCorrect":true}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = doJSON(t, srv, http.MethodPost, "/api/reviews/abc/answer", `{"isCorrect":true}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = doJSON(t, srv, http.MethodPost, "/api/reviews/10/answer", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAllSymbolsLeftJoin(t *testing.T) {
	srv, _ := newTestServer(t)
	rec, body := doJSON(t, srv, http.MethodGet, "/api/katakana", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(3), body["count"])

	items := body["data"].([]any)
	withReview := 0
	for _, raw := range items {
		if raw.(map[string]any)["review"] != nil {
			withReview++
		}
	}
	assert.Equal(t, 1, withReview)
}

func TestDashboardStats(t *testing.T) {
	srv, _ := newTestServer(t)
	rec, body := doJSON(t, srv, http.MethodGet, "/api/stats", "")
	require.Equal(t, http.StatusOK, rec.Code)
	data := body["data"].(map[string]any)
	assert.Equal(t, float64(3), data["total_items"])
	assert.Equal(t, float64(1), data["reviews_due_now"])
	assert.Equal(t, float64(2), data["lessons_available"])
	dist := data["stage_distribution"].(map[string]any)
	assert.Len(t, dist, 4)
}

func TestUpcomingAndHourly(t *testing.T) {
	srv, _ := newTestServer(t)

	rec, body := doJSON(t, srv, http.MethodGet, "/api/reviews/upcoming", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, body["data"].([]any), 7)

	date := time.Now().UTC().Format("2006-01-02")
	rec, body = doJSON(t, srv, http.MethodGet, "/api/reviews/upcoming/"+date+"/hourly", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, body["data"].([]any), 24)

	rec, _ = doJSON(t, srv, http.MethodGet, "/api/reviews/upcoming/not-a-date/hourly", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLessonFlow(t *testing.T) {
	srv, f := newTestServer(t)

	rec, body := doJSON(t, srv, http.MethodGet, "/api/lessons", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(2), body["count"])

	rec, body = doJSON(t, srv, http.MethodGet, "/api/lessons/next", "")
	require.Equal(t, http.StatusOK, rec.Code)
	next := body["data"].(map[string]any)
	assert.Equal(t, float64(1), next["batch_number"])

	rec, body = doJSON(t, srv, http.MethodGet, "/api/lessons/1/items", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(2), body["count"])

	payload := `{"quizResults":[{"katakanaId":1,"correct":true},{"katakanaId":2,"correct":false}]}`
	rec, _ = doJSON(t, srv, http.MethodPost, "/api/lessons/1/complete", payload)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, f.batches[1].Completed)

	// Symbol 2 missed its first attempt: seeded at the first stage.
	var seeded *store.ReviewRecord
	for _, r := range f.records {
		if r.SymbolID == 2 {
			seeded = r
		}
	}
	require.NotNil(t, seeded)
	assert.Equal(t, 0, seeded.Stage)

	// Re-completing is a no-op.
	rec, _ = doJSON(t, srv, http.MethodPost, "/api/lessons/1/complete", `{}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = doJSON(t, srv, http.MethodPost, "/api/lessons/99/complete", `{}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestNotes(t *testing.T) {
	srv, f := newTestServer(t)

	rec, body := doJSON(t, srv, http.MethodPost, "/api/lessons/notes", `{"katakanaId":1,"note":"first vowel"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	data := body["data"].(map[string]any)
	assert.Equal(t, "first vowel", data["note"])
	assert.Equal(t, "first vowel", f.notes[1])

	rec, _ = doJSON(t, srv, http.MethodPost, "/api/lessons/notes", `{"note":"orphan"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = doJSON(t, srv, http.MethodDelete, "/api/lessons/notes/1", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, f.notes)
}

func TestReviewSessionOverHTTP(t *testing.T) {
	srv, _ := newTestServer(t)

	rec, body := doJSON(t, srv, http.MethodPost, "/api/sessions/reviews", "")
	require.Equal(t, http.StatusOK, rec.Code)
	data := body["data"].(map[string]any)
	id := data["session_id"].(string)
	require.NotEmpty(t, id)
	assert.Equal(t, float64(1), data["total"])

	rec, body = doJSON(t, srv, http.MethodGet, "/api/sessions/"+id+"/next", "")
	require.Equal(t, http.StatusOK, rec.Code)
	card := body["data"].(map[string]any)["card"].(map[string]any)
	assert.Equal(t, "ア", card["character"])

	rec, body = doJSON(t, srv, http.MethodPost, "/api/sessions/"+id+"/answer", `{"isCorrect":true}`)
	require.Equal(t, http.StatusOK, rec.Code)
	ans := body["data"].(map[string]any)
	assert.Equal(t, true, ans["done"])

	// Session is gone once drained.
	rec, _ = doJSON(t, srv, http.MethodGet, "/api/sessions/"+id+"/next", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// Nothing due anymore: starting another review session conflicts.
	rec, _ = doJSON(t, srv, http.MethodPost, "/api/sessions/reviews", "")
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestLessonSessionOverHTTP(t *testing.T) {
	srv, f := newTestServer(t)

	rec, body := doJSON(t, srv, http.MethodPost, "/api/sessions/lessons/2", "")
	require.Equal(t, http.StatusOK, rec.Code)
	id := body["data"].(map[string]any)["session_id"].(string)

	for i := 0; i < 10; i++ {
		rec, body = doJSON(t, srv, http.MethodPost, "/api/sessions/"+id+"/answer", `{"isCorrect":true}`)
		require.Equal(t, http.StatusOK, rec.Code)
		if body["data"].(map[string]any)["done"] == true {
			break
		}
	}
	assert.True(t, f.batches[2].Completed)

	rec, _ = doJSON(t, srv, http.MethodPost, "/api/sessions/lessons/99", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
