package srs

import "time"

// Advance returns the stage that follows current after an answer. A
// correct answer moves one stage up, clamped at MaxStage. An incorrect
// answer drops all the way back to the first stage, not one step down.
func Advance(current Stage, correct bool) (Stage, error) {
	if !current.Valid() {
		return 0, ErrInvalidStage
	}
	if !correct {
		return MinStage, nil
	}
	if current == MaxStage {
		return MaxStage, nil
	}
	return current + 1, nil
}

// NextDue returns when a record at stage s should come up again,
// counting from now.
func NextDue(now time.Time, s Stage) (time.Time, error) {
	iv, err := s.Interval()
	if err != nil {
		return time.Time{}, err
	}
	return now.Add(iv), nil
}

// SeedStage returns the initial stage for a freshly created review
// record. A symbol answered correctly on its first quiz attempt skips
// the first stage.
func SeedStage(correctFirstTry bool) Stage {
	if correctFirstTry {
		return StageApprentice2
	}
	return StageApprentice1
}
