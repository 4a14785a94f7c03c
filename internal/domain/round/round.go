// Package round contains the round objects passed between layers: one
// generated sample, its ground-truth statistics, and the verdict on a
// player's guess. A round is explicit state owned by the caller; nothing in
// this package reads ambient globals.
package round

import (
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/st-1989/Correlation-game/internal/domain/correlation"
	"github.com/st-1989/Correlation-game/internal/domain/sample"
)

// Round holds one playable round: the sample shown to the player and the
// actual statistics held back until after guessing.
type Round struct {
	ID        string
	Target    float64 // jittered population correlation baked into generation
	Sample    sample.Sample
	Actual    correlation.Triple
	StartedAt time.Time
}

// New builds a round with a fresh ID.
func New(s sample.Sample, actual correlation.Triple, target float64) *Round {
	return &Round{
		ID:        uuid.New().String(),
		Target:    target,
		Sample:    s,
		Actual:    actual,
		StartedAt: time.Now(),
	}
}

// Score is the per-statistic outcome of a checked guess.
type Score struct {
	Guess  float64
	Actual float64
	Diff   float64
	Pass   bool
}

// Verdict is the outcome of one checked guess. Win is true only when all
// three statistics pass.
type Verdict struct {
	Pearson  Score
	Spearman Score
	Kendall  Score
	Win      bool
}

// Check compares a guess against the round's actual statistics. A guess
// passes on a statistic when its absolute difference from the actual value
// is within tolerance. Invalid guesses fail before any diff is computed.
func (r *Round) Check(g Guess, tolerance float64) (Verdict, error) {
	values, err := g.parse()
	if err != nil {
		return Verdict{}, err
	}
	if tolerance < 0 {
		tolerance = 0
	}

	v := Verdict{
		Pearson:  score(values.Pearson, r.Actual.Pearson, tolerance),
		Spearman: score(values.Spearman, r.Actual.Spearman, tolerance),
		Kendall:  score(values.Kendall, r.Actual.Kendall, tolerance),
	}
	v.Win = v.Pearson.Pass && v.Spearman.Pass && v.Kendall.Pass
	return v, nil
}

func score(guess, actual, tolerance float64) Score {
	diff := math.Abs(guess - actual)
	return Score{
		Guess:  guess,
		Actual: actual,
		Diff:   diff,
		Pass:   diff <= tolerance,
	}
}
