package srs

import (
	"errors"
	"time"
)

// Stage is a spaced-repetition progress level. Higher stages carry
// longer review intervals.
type Stage int

// The eight stages, grouped into four display tiers.
const (
	StageApprentice1 Stage = iota
	StageApprentice2
	StageApprentice3
	StageApprentice4
	StageGuru1
	StageGuru2
	StageMaster
	StageEnlightened
)

// MinStage and MaxStage bound the valid stage range.
const (
	MinStage = StageApprentice1
	MaxStage = StageEnlightened
)

// ErrInvalidStage is returned for stages outside [MinStage, MaxStage].
var ErrInvalidStage = errors.New("srs: invalid stage")

// Tier is the display grouping of stages.
type Tier string

const (
	TierApprentice  Tier = "Apprentice"
	TierGuru        Tier = "Guru"
	TierMaster      Tier = "Master"
	TierEnlightened Tier = "Enlightened"
)

// Tiers lists all tiers in display order. Stats output always includes
// every tier, even when empty.
var Tiers = []Tier{TierApprentice, TierGuru, TierMaster, TierEnlightened}

// intervals is the single source of truth for review timing. Changing
// scheduling policy means changing this table and shipping a data
// migration that retimes existing records (see store.DataMigrations).
var intervals = [...]time.Duration{
	StageApprentice1: 2 * time.Hour,
	StageApprentice2: 4 * time.Hour,
	StageApprentice3: 8 * time.Hour,
	StageApprentice4: 24 * time.Hour,
	StageGuru1:       168 * time.Hour,
	StageGuru2:       336 * time.Hour,
	StageMaster:      720 * time.Hour,
	StageEnlightened: 2880 * time.Hour,
}

var names = [...]string{
	StageApprentice1: "Apprentice I",
	StageApprentice2: "Apprentice II",
	StageApprentice3: "Apprentice III",
	StageApprentice4: "Apprentice IV",
	StageGuru1:       "Guru I",
	StageGuru2:       "Guru II",
	StageMaster:      "Master",
	StageEnlightened: "Enlightened",
}

// Valid reports whether s is within the stage range.
func (s Stage) Valid() bool {
	return s >= MinStage && s <= MaxStage
}

// Interval returns the review interval for s.
func (s Stage) Interval() (time.Duration, error) {
	if !s.Valid() {
		return 0, ErrInvalidStage
	}
	return intervals[s], nil
}

// Tier returns the display tier for s.
func (s Stage) Tier() (Tier, error) {
	switch {
	case !s.Valid():
		return "", ErrInvalidStage
	case s <= StageApprentice4:
		return TierApprentice, nil
	case s <= StageGuru2:
		return TierGuru, nil
	case s == StageMaster:
		return TierMaster, nil
	default:
		return TierEnlightened, nil
	}
}

// Name returns the display name for s, or an empty string when invalid.
func (s Stage) Name() string {
	if !s.Valid() {
		return ""
	}
	return names[s]
}
