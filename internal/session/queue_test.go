package session

import (
	"math/rand"
	"testing"
)

func testCards(n int) []Card {
	glyphs := []string{"ア", "イ", "ウ", "エ", "オ", "カ", "キ", "ク", "ケ", "コ"}
	cards := make([]Card, n)
	for i := range cards {
		cards[i] = Card{SymbolID: i + 1, Glyph: glyphs[i%len(glyphs)], Romaji: "x"}
	}
	return cards
}

func TestQueueShuffleKeepsAllCards(t *testing.T) {
	q := NewQueue(testCards(10), rand.New(rand.NewSource(7)))
	if q.Total() != 10 || q.Remaining() != 10 {
		t.Fatalf("total %d remaining %d, want 10/10", q.Total(), q.Remaining())
	}
	seen := make(map[int]bool)
	for !q.Done() {
		card := q.Next()
		seen[card.SymbolID] = true
		q.RecordAnswer(true)
	}
	if len(seen) != 10 {
		t.Errorf("saw %d distinct cards, want 10", len(seen))
	}
}

func TestQueueMissedCardNotImmediatelyRepeated(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		q := NewQueue(testCards(5), rand.New(rand.NewSource(seed)))
		missed := q.Next().SymbolID
		q.RecordAnswer(false)
		if next := q.Next().SymbolID; next == missed {
			t.Fatalf("seed %d: card %d came straight back", seed, missed)
		}
	}
}

func TestQueueMissedCardAppendsWhenOneLeft(t *testing.T) {
	q := NewQueue(testCards(2), rand.New(rand.NewSource(1)))
	first := q.Next().SymbolID
	q.RecordAnswer(false)
	// With only one other card, the missed one goes to the end.
	if q.Next().SymbolID == first {
		t.Fatal("missed card not deferred behind the remaining one")
	}
	q.RecordAnswer(true)
	if q.Next().SymbolID != first {
		t.Fatal("missed card did not come back")
	}
}

func TestQueueTerminates(t *testing.T) {
	q := NewQueue(testCards(6), rand.New(rand.NewSource(3)))
	rng := rand.New(rand.NewSource(99))
	steps := 0
	for !q.Done() {
		// Miss roughly half the time; every card still eventually clears.
		correct := rng.Intn(2) == 0
		if q.RecordAnswer(correct) == nil {
			t.Fatal("RecordAnswer returned nil on a live queue")
		}
		if steps++; steps > 10_000 {
			t.Fatal("queue did not drain")
		}
	}
	if q.Answered() != 6 || q.Remaining() != 0 {
		t.Errorf("answered %d remaining %d", q.Answered(), q.Remaining())
	}
	if q.Next() != nil || q.RecordAnswer(true) != nil {
		t.Error("drained queue still serving cards")
	}
}

func TestQueueFirstAttemptIsSticky(t *testing.T) {
	q := NewQueue(testCards(3), rand.New(rand.NewSource(5)))
	first := q.Next().SymbolID
	q.RecordAnswer(false)
	for !q.Done() {
		q.RecordAnswer(true)
	}
	attempts := q.FirstAttempts()
	if len(attempts) != 3 {
		t.Fatalf("first attempts = %d, want 3", len(attempts))
	}
	if attempts[first] {
		t.Errorf("card %d missed first but recorded correct", first)
	}
	for id, ok := range attempts {
		if id != first && !ok {
			t.Errorf("card %d answered correctly first but recorded miss", id)
		}
	}
}

func TestQueueAccuracy(t *testing.T) {
	q := NewQueue(testCards(3), rand.New(rand.NewSource(2)))
	if q.Accuracy() != 0 {
		t.Errorf("accuracy before answers = %d, want 0", q.Accuracy())
	}
	q.RecordAnswer(false)
	q.RecordAnswer(true)
	q.RecordAnswer(true)
	// 2 of 3 attempts correct: 66.67 rounds to 67.
	if got := q.Accuracy(); got != 67 {
		t.Errorf("accuracy = %d, want 67", got)
	}
}

func TestQueueEmpty(t *testing.T) {
	q := NewQueue(nil, rand.New(rand.NewSource(1)))
	if !q.Done() || q.Next() != nil {
		t.Error("empty queue should be done immediately")
	}
}
