package correlation

import (
	"fmt"
)

// Triple bundles the three statistics computed from one sample. It is
// derived state: recomputed whenever a new sample is generated, never
// stored independently.
type Triple struct {
	Pearson  float64
	Spearman float64
	Kendall  float64
}

// Compute evaluates all three statistics on the same pair of sequences.
func Compute(x, y []float64) (Triple, error) {
	r, err := Pearson(x, y)
	if err != nil {
		return Triple{}, fmt.Errorf("pearson: %w", err)
	}
	rho, err := Spearman(x, y)
	if err != nil {
		return Triple{}, fmt.Errorf("spearman: %w", err)
	}
	tau, err := Kendall(x, y)
	if err != nil {
		return Triple{}, fmt.Errorf("kendall: %w", err)
	}
	return Triple{Pearson: r, Spearman: rho, Kendall: tau}, nil
}
