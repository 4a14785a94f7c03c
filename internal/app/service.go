// Package app provides the round service consumed by the CLI: it wires the
// sample generator, the correlation engine, the session history and the
// metrics into the newRound/submitGuess contract.
package app

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/st-1989/Correlation-game/internal/config"
	"github.com/st-1989/Correlation-game/internal/domain/correlation"
	"github.com/st-1989/Correlation-game/internal/domain/round"
	"github.com/st-1989/Correlation-game/internal/domain/sample"
	"github.com/st-1989/Correlation-game/internal/history"
	"github.com/st-1989/Correlation-game/pkg/logger"
	"github.com/st-1989/Correlation-game/pkg/metrics"
)

// Default service configuration constants.
const (
	defaultSampleSize = 75
	defaultTargetRho  = 0.6
	// defaultMaxRegenerates bounds retries on degenerate (zero variance)
	// samples. One retry virtually always suffices; the bound exists so a
	// broken generator cannot loop forever.
	defaultMaxRegenerates = 3
)

// Service implements the round controller contract.
type Service struct {
	generator      sample.Generator
	sampleSize     int
	targetRho      float64
	tolerance      float64
	jitter         float64
	jitterFn       func() float64 // uniform in [0,1)
	maxRegenerates int

	history *history.Store
	logger  logger.Logger
}

// New constructs a Service with default configuration. Out-of-range
// settings are clamped, mirroring the input boundary policy: play is never
// interrupted by strict validation.
func New(opts ...Option) *Service {
	s := &Service{
		sampleSize:     defaultSampleSize,
		targetRho:      defaultTargetRho,
		tolerance:      config.DefaultTolerance,
		jitter:         config.DefaultJitter,
		jitterFn:       rand.New(rand.NewSource(time.Now().UnixNano())).Float64, //nolint:gosec // game randomness, not security
		maxRegenerates: defaultMaxRegenerates,
		history:        history.NewStore(),
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.generator == nil {
		s.generator = sample.NewGaussianGenerator()
	}

	s.clampSettings()

	return s
}

// clampSettings silently pulls out-of-range settings back into the
// playable configuration ranges.
func (s *Service) clampSettings() {
	if s.sampleSize < config.MinSampleSize {
		s.sampleSize = config.MinSampleSize
	}
	if s.sampleSize > config.MaxSampleSize {
		s.sampleSize = config.MaxSampleSize
	}
	if s.targetRho > config.MaxTargetCorrelation {
		s.targetRho = config.MaxTargetCorrelation
	}
	if s.targetRho < -config.MaxTargetCorrelation {
		s.targetRho = -config.MaxTargetCorrelation
	}
	if s.tolerance < 0 {
		s.tolerance = config.DefaultTolerance
	}
	if s.jitter < 0 {
		s.jitter = 0
	}
}

// NewRound generates a fresh sample, computes its ground-truth statistics
// and returns the round. Degenerate samples (zero variance, possible only
// at tiny n) are regenerated instead of surfacing an unplayable NaN target.
func (s *Service) NewRound(ctx context.Context) (*round.Round, error) {
	target := s.jitteredTarget()

	for attempt := 0; attempt <= s.maxRegenerates; attempt++ {
		smp, err := s.generator.Generate(ctx, s.sampleSize, target)
		if err != nil {
			return nil, fmt.Errorf("generate sample: %w", err)
		}

		actual, err := correlation.Compute(smp.X, smp.Y)
		if errors.Is(err, correlation.ErrZeroVariance) {
			metrics.RecordRegeneratedSample()
			if s.logger != nil {
				s.logger.Warn(ctx, "degenerate sample, regenerating",
					logger.Int("attempt", attempt+1),
					logger.Float64("target", target))
			}
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("compute statistics: %w", err)
		}

		metrics.RecordRoundStarted()
		r := round.New(smp, actual, target)
		if s.logger != nil {
			s.logger.Debug(ctx, "round started",
				logger.String("round_id", r.ID),
				logger.Int("size", smp.Len()),
				logger.Float64("target", target),
				logger.Float64("pearson", actual.Pearson))
		}
		return r, nil
	}

	return nil, ErrDegenerateSample
}

// SubmitGuess checks the guess against the round under the configured
// tolerance. Incomplete or non-numeric guesses fail validation and leave
// the round open for resubmission; valid guesses settle the round into the
// session history.
func (s *Service) SubmitGuess(ctx context.Context, r *round.Round, g round.Guess) (round.Verdict, error) {
	metrics.RecordGuess()

	verdict, err := r.Check(g, s.tolerance)
	if err != nil {
		if errors.Is(err, round.ErrIncompleteGuess) {
			metrics.RecordInvalidGuess()
		}
		return round.Verdict{}, err
	}

	duration := time.Since(r.StartedAt)
	metrics.ObserveGuessError(metrics.StatPearson, verdict.Pearson.Diff)
	metrics.ObserveGuessError(metrics.StatSpearman, verdict.Spearman.Diff)
	metrics.ObserveGuessError(metrics.StatKendall, verdict.Kendall.Diff)
	metrics.ObserveRoundDuration(duration)
	if verdict.Win {
		metrics.RecordRoundWon()
	}

	s.history.Add(history.Result{
		RoundID:  r.ID,
		Target:   r.Target,
		Actual:   r.Actual,
		Verdict:  verdict,
		Duration: duration,
	})

	if s.logger != nil {
		s.logger.Debug(ctx, "round settled",
			logger.String("round_id", r.ID),
			logger.Bool("win", verdict.Win),
			logger.Float64("pearson_diff", verdict.Pearson.Diff))
	}

	return verdict, nil
}

// jitteredTarget perturbs the configured target so consecutive rounds are
// not exactly reproducible, then re-clamps into the playable range.
func (s *Service) jitteredTarget() float64 {
	target := s.targetRho
	if s.jitter > 0 && s.jitterFn != nil {
		target += s.jitter * (2*s.jitterFn() - 1)
	}
	if target > config.MaxTargetCorrelation {
		target = config.MaxTargetCorrelation
	}
	if target < -config.MaxTargetCorrelation {
		target = -config.MaxTargetCorrelation
	}
	return target
}

// History returns the session store.
func (s *Service) History() *history.Store {
	return s.history
}

// Tolerance returns the tolerance applied to all three comparisons.
func (s *Service) Tolerance() float64 {
	return s.tolerance
}

// SampleSize returns the clamped points-per-sample setting.
func (s *Service) SampleSize() int {
	return s.sampleSize
}

// Target returns the clamped base target correlation.
func (s *Service) Target() float64 {
	return s.targetRho
}
