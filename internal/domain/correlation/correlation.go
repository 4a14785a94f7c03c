// Package correlation implements the three statistics the game asks
// players to estimate: Pearson's r, Spearman's rho and Kendall's tau.
// All functions here are pure and deterministic.
package correlation

import (
	"fmt"
	"math"
	"sort"
)

const minObservations = 2

// Pearson returns the sample product-moment correlation of x and y.
// Means are computed first and deviations accumulated in a second pass,
// which is better conditioned than the single-pass sum-of-products form.
// Standard deviations use the n-1 divisor.
func Pearson(x, y []float64) (float64, error) {
	if err := validate(x, y); err != nil {
		return math.NaN(), err
	}

	n := float64(len(x))
	var meanX, meanY float64
	for i := range x {
		meanX += x[i]
		meanY += y[i]
	}
	meanX /= n
	meanY /= n

	var cov, varX, varY float64
	for i := range x {
		dx := x[i] - meanX
		dy := y[i] - meanY
		cov += dx * dy
		varX += dx * dx
		varY += dy * dy
	}
	cov /= n - 1
	sdX := math.Sqrt(varX / (n - 1))
	sdY := math.Sqrt(varY / (n - 1))

	if sdX == 0 || sdY == 0 {
		return math.NaN(), ErrZeroVariance
	}
	return cov / (sdX * sdY), nil
}

// Spearman returns Pearson's r computed on the rank transforms of x and y.
func Spearman(x, y []float64) (float64, error) {
	if len(x) != len(y) {
		return math.NaN(), fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(x), len(y))
	}
	return Pearson(Ranks(x), Ranks(y))
}

// Ranks returns the 1-based ascending ranks of v. Tied values (exact
// equality) all receive the mid-rank: the arithmetic mean of the ranks they
// would jointly occupy. The rank sum is therefore always n(n+1)/2.
func Ranks(v []float64) []float64 {
	n := len(v)
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(i, j int) bool { return v[idx[i]] < v[idx[j]] })

	ranks := make([]float64, n)
	for i := 0; i < n; {
		j := i
		for j+1 < n && v[idx[j+1]] == v[idx[i]] {
			j++
		}
		// positions i..j (0-based) share the mean of ranks i+1..j+1
		mid := float64(i+j)/2 + 1
		for k := i; k <= j; k++ {
			ranks[idx[k]] = mid
		}
		i = j + 1
	}
	return ranks
}

// Kendall returns the tau-a rank correlation: over all C(n,2) unordered
// pairs, (concordant - discordant) / (n(n-1)/2). Pairs tied in x or y count
// toward neither total but stay in the denominator, so ties pull |tau|
// toward zero. The tau-b tie adjustment is deliberately not applied.
func Kendall(x, y []float64) (float64, error) {
	if err := validate(x, y); err != nil {
		return math.NaN(), err
	}

	n := len(x)
	var concordant, discordant int
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			p := (x[i] - x[j]) * (y[i] - y[j])
			switch {
			case p > 0:
				concordant++
			case p < 0:
				discordant++
			}
		}
	}

	pairs := float64(n*(n-1)) / 2
	return float64(concordant-discordant) / pairs, nil
}

// validate applies the shared input contract: equal lengths, at least two
// observations, spread in both sequences.
func validate(x, y []float64) error {
	if len(x) != len(y) {
		return fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(x), len(y))
	}
	if len(x) < minObservations {
		return fmt.Errorf("%w: got %d", ErrTooFewValues, len(x))
	}
	if !hasSpread(x) || !hasSpread(y) {
		return ErrZeroVariance
	}
	return nil
}

func hasSpread(v []float64) bool {
	for i := 1; i < len(v); i++ {
		if v[i] != v[0] {
			return true
		}
	}
	return false
}
