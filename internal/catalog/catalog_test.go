package catalog

import "testing"

func TestCatalogSize(t *testing.T) {
	syms := Symbols()
	if len(syms) != 104 {
		t.Errorf("len(Symbols()) = %d, want 104", len(syms))
	}
	if got := len(Batches()); got != 26 {
		t.Errorf("len(Batches()) = %d, want 26", got)
	}
}

func TestCatalogComplete(t *testing.T) {
	seen := make(map[string]bool)
	for _, s := range Symbols() {
		if s.Glyph == "" {
			t.Fatal("empty glyph in catalog")
		}
		if seen[s.Glyph] {
			t.Errorf("duplicate glyph %q", s.Glyph)
		}
		seen[s.Glyph] = true

		if s.Romaji == "" {
			t.Errorf("symbol %q missing romaji", s.Glyph)
		}
		if s.Kind != KindBasic && s.Kind != KindDakuten && s.Kind != KindCombo {
			t.Errorf("symbol %q has unknown kind %q", s.Glyph, s.Kind)
		}
		if s.BatchNumber < 1 || s.BatchNumber > 26 {
			t.Errorf("symbol %q in batch %d, want 1..26", s.Glyph, s.BatchNumber)
		}
	}
}

func TestCatalogKindCounts(t *testing.T) {
	counts := make(map[string]int)
	for _, s := range Symbols() {
		counts[s.Kind]++
	}
	if counts[KindBasic] != 46 {
		t.Errorf("basic count = %d, want 46", counts[KindBasic])
	}
	if counts[KindDakuten] != 25 {
		t.Errorf("dakuten count = %d, want 25", counts[KindDakuten])
	}
	if counts[KindCombo] != 33 {
		t.Errorf("combo count = %d, want 33", counts[KindCombo])
	}
}

func TestBatchOrdering(t *testing.T) {
	for i, b := range Batches() {
		if b.BatchNumber != i+1 {
			t.Errorf("batch %d has number %d", i, b.BatchNumber)
		}
		if b.Name == "" || b.Description == "" {
			t.Errorf("batch %d missing name or description", b.BatchNumber)
		}
	}
}
