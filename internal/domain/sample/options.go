package sample

import (
	"math/rand"
)

// Option applies a configuration option to the gaussianGenerator.
type Option func(*gaussianGenerator)

// WithSource sets the uniform source backing the normal-variate transform.
// Injecting a fixed-seed source makes generation fully deterministic.
func WithSource(src rand.Source) Option {
	return func(g *gaussianGenerator) {
		if src != nil {
			g.rng = rand.New(src) //nolint:gosec // game randomness, not security
		}
	}
}

// WithRhoClamp sets the magnitude the target correlation is clamped to
// before mixing. Values outside (0, 1) are ignored.
func WithRhoClamp(limit float64) Option {
	return func(g *gaussianGenerator) {
		if limit > 0 && limit < 1 {
			g.rhoClamp = limit
		}
	}
}
