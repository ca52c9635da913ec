package srs

import (
	"errors"
	"testing"
	"time"
)

func TestIntervalTable(t *testing.T) {
	tests := []struct {
		stage Stage
		want  time.Duration
	}{
		{StageApprentice1, 2 * time.Hour},
		{StageApprentice2, 4 * time.Hour},
		{StageApprentice3, 8 * time.Hour},
		{StageApprentice4, 24 * time.Hour},
		{StageGuru1, 168 * time.Hour},
		{StageGuru2, 336 * time.Hour},
		{StageMaster, 720 * time.Hour},
		{StageEnlightened, 2880 * time.Hour},
	}

	for _, tt := range tests {
		got, err := tt.stage.Interval()
		if err != nil {
			t.Errorf("Interval(%d): %v", tt.stage, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Interval(%d) = %v, want %v", tt.stage, got, tt.want)
		}
	}
}

func TestIntervalsNonDecreasing(t *testing.T) {
	prev := time.Duration(0)
	for s := MinStage; s <= MaxStage; s++ {
		iv, err := s.Interval()
		if err != nil {
			t.Fatalf("Interval(%d): %v", s, err)
		}
		if iv < prev {
			t.Errorf("Interval(%d) = %v shrank below %v", s, iv, prev)
		}
		prev = iv
	}
}

func TestIntervalInvalidStage(t *testing.T) {
	for _, s := range []Stage{-1, 8, 100} {
		if _, err := s.Interval(); !errors.Is(err, ErrInvalidStage) {
			t.Errorf("Interval(%d) err = %v, want ErrInvalidStage", s, err)
		}
	}
}

func TestTierGrouping(t *testing.T) {
	tests := []struct {
		stage Stage
		want  Tier
	}{
		{StageApprentice1, TierApprentice},
		{StageApprentice2, TierApprentice},
		{StageApprentice3, TierApprentice},
		{StageApprentice4, TierApprentice},
		{StageGuru1, TierGuru},
		{StageGuru2, TierGuru},
		{StageMaster, TierMaster},
		{StageEnlightened, TierEnlightened},
	}

	for _, tt := range tests {
		got, err := tt.stage.Tier()
		if err != nil {
			t.Errorf("Tier(%d): %v", tt.stage, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Tier(%d) = %q, want %q", tt.stage, got, tt.want)
		}
	}

	if _, err := Stage(8).Tier(); !errors.Is(err, ErrInvalidStage) {
		t.Errorf("Tier(8) err = %v, want ErrInvalidStage", err)
	}
}

func TestStageNames(t *testing.T) {
	if got := StageApprentice1.Name(); got != "Apprentice I" {
		t.Errorf("Name(0) = %q", got)
	}
	if got := StageEnlightened.Name(); got != "Enlightened" {
		t.Errorf("Name(7) = %q", got)
	}
	if got := Stage(-1).Name(); got != "" {
		t.Errorf("Name(-1) = %q, want empty", got)
	}
}

func TestAdvanceCorrect(t *testing.T) {
	for s := MinStage; s < MaxStage; s++ {
		got, err := Advance(s, true)
		if err != nil {
			t.Fatalf("Advance(%d, true): %v", s, err)
		}
		if got != s+1 {
			t.Errorf("Advance(%d, true) = %d, want %d", s, got, s+1)
		}
	}

	// Clamped at the top.
	got, err := Advance(MaxStage, true)
	if err != nil {
		t.Fatalf("Advance(max, true): %v", err)
	}
	if got != MaxStage {
		t.Errorf("Advance(max, true) = %d, want %d", got, MaxStage)
	}
}

func TestAdvanceIncorrectResetsToFirstStage(t *testing.T) {
	for s := MinStage; s <= MaxStage; s++ {
		got, err := Advance(s, false)
		if err != nil {
			t.Fatalf("Advance(%d, false): %v", s, err)
		}
		if got != MinStage {
			t.Errorf("Advance(%d, false) = %d, want %d", s, got, MinStage)
		}
	}
}

func TestAdvanceInvalidStage(t *testing.T) {
	if _, err := Advance(Stage(9), true); !errors.Is(err, ErrInvalidStage) {
		t.Errorf("Advance(9, true) err = %v, want ErrInvalidStage", err)
	}
}

func TestNextDue(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC)
	for s := MinStage; s <= MaxStage; s++ {
		iv, _ := s.Interval()
		got, err := NextDue(now, s)
		if err != nil {
			t.Fatalf("NextDue(%d): %v", s, err)
		}
		if !got.Equal(now.Add(iv)) {
			t.Errorf("NextDue(%d) = %v, want %v", s, got, now.Add(iv))
		}
		if !got.After(now) {
			t.Errorf("NextDue(%d) = %v not after now", s, got)
		}
	}
}

func TestSeedStage(t *testing.T) {
	if got := SeedStage(true); got != StageApprentice2 {
		t.Errorf("SeedStage(true) = %d, want %d", got, StageApprentice2)
	}
	if got := SeedStage(false); got != StageApprentice1 {
		t.Errorf("SeedStage(false) = %d, want %d", got, StageApprentice1)
	}
}
