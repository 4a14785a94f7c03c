package round

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/st-1989/Correlation-game/internal/domain/correlation"
)

// Guess carries the player's three raw input fields. The fields are
// untrusted text: empty, non-numeric and non-finite values are all rejected
// as one incomplete-guess failure so the round can be retried.
type Guess struct {
	Pearson  string
	Spearman string
	Kendall  string
}

// parse converts the raw fields into numeric values, short-circuiting on
// the first unusable field.
func (g Guess) parse() (correlation.Triple, error) {
	r, err := parseField("pearson", g.Pearson)
	if err != nil {
		return correlation.Triple{}, err
	}
	rho, err := parseField("spearman", g.Spearman)
	if err != nil {
		return correlation.Triple{}, err
	}
	tau, err := parseField("kendall", g.Kendall)
	if err != nil {
		return correlation.Triple{}, err
	}
	return correlation.Triple{Pearson: r, Spearman: rho, Kendall: tau}, nil
}

func parseField(name, raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("%w: %s is empty", ErrIncompleteGuess, name)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s is not a number", ErrIncompleteGuess, name)
	}
	// strconv accepts "NaN" and "Inf"; neither is a usable guess.
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %s is not finite", ErrIncompleteGuess, name)
	}
	return v, nil
}
