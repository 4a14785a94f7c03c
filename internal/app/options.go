package app

import (
	"math/rand"

	"github.com/st-1989/Correlation-game/internal/domain/sample"
	"github.com/st-1989/Correlation-game/internal/history"
	"github.com/st-1989/Correlation-game/pkg/logger"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithGenerator sets the sample generator.
func WithGenerator(g sample.Generator) Option {
	return func(s *Service) {
		if g != nil {
			s.generator = g
		}
	}
}

// WithSampleSize sets the number of points per generated sample.
func WithSampleSize(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.sampleSize = n
		}
	}
}

// WithTargetCorrelation sets the base target correlation.
func WithTargetCorrelation(rho float64) Option {
	return func(s *Service) {
		s.targetRho = rho
	}
}

// WithTolerance sets the guess tolerance applied to all three statistics.
func WithTolerance(tolerance float64) Option {
	return func(s *Service) {
		s.tolerance = tolerance
	}
}

// WithJitter sets the amplitude of the per-round target perturbation.
// Zero disables jitter entirely.
func WithJitter(amplitude float64) Option {
	return func(s *Service) {
		s.jitter = amplitude
	}
}

// WithJitterSource sets the uniform source driving the per-round jitter.
// Injecting a fixed-seed source makes round targets reproducible.
func WithJitterSource(src rand.Source) Option {
	return func(s *Service) {
		if src != nil {
			s.jitterFn = rand.New(src).Float64 //nolint:gosec // game randomness, not security
		}
	}
}

// WithMaxRegenerates bounds the retries on degenerate samples.
func WithMaxRegenerates(n int) Option {
	return func(s *Service) {
		if n >= 0 {
			s.maxRegenerates = n
		}
	}
}

// WithHistory sets the session store.
func WithHistory(store *history.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.history = store
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}
