// Package calibrate verifies the sample generator against its contract: the
// realized sample correlation must fluctuate around the target without
// systematic drift. It is the batch analog of one game round, run many
// times concurrently.
package calibrate

import (
	"context"
	"fmt"
	"math/rand"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/st-1989/Correlation-game/internal/domain/correlation"
	"github.com/st-1989/Correlation-game/internal/domain/sample"
	"github.com/st-1989/Correlation-game/pkg/logger"
)

// workerSeedStride separates per-repetition seeds so derived generators do
// not overlap their draw sequences.
const workerSeedStride = 1_000_003

// Run executes the calibration sweep and reports one line per target. It
// fails when any target drifts beyond the configured bound.
func Run(ctx context.Context, cfg *Config) error {
	log := logger.Get()
	log.Info(ctx, "starting generator calibration",
		logger.Int("targets", len(cfg.Targets)),
		logger.Int("reps", cfg.Reps),
		logger.Int("size", cfg.SampleSize),
		logger.Int("workers", cfg.Workers))

	var drifted []float64
	for _, target := range cfg.Targets {
		res, err := Measure(ctx, cfg, target)
		if err != nil {
			return fmt.Errorf("measure target %.2f: %w", target, err)
		}

		status := "✅"
		if res.Drifted(cfg.Drift) {
			status = "⚠️"
			drifted = append(drifted, target)
		}
		log.Info(ctx, fmt.Sprintf("%s target %+.2f: mean %+.4f sd %.4f range [%+.3f, %+.3f]",
			status, res.Target, res.Mean, res.StdDev, res.Min, res.Max))
	}

	if len(drifted) > 0 {
		return fmt.Errorf("%w: targets %v exceeded drift %.3f", ErrCalibrationDrift, drifted, cfg.Drift)
	}
	log.Info(ctx, "calibration passed", logger.Float64("drift_bound", cfg.Drift))
	return nil
}

// Measure generates cfg.Reps samples at the given target and aggregates the
// realized Pearson correlations. Each repetition owns a derived generator,
// so repetitions are independent and the sweep is reproducible per seed.
func Measure(ctx context.Context, cfg *Config, target float64) (Result, error) {
	if cfg.Reps < 1 {
		return Result{}, fmt.Errorf("%w: reps must be positive", ErrBadSweep)
	}

	// SetLimit(0) would block every Go call, so a non-positive worker
	// count is clamped to a serial sweep instead.
	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}

	realized := make([]float64, cfg.Reps)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := 0; i < cfg.Reps; i++ {
		i := i
		g.Go(func() error {
			gen := sample.NewGaussianGenerator(
				sample.WithSource(rand.NewSource(cfg.Seed + int64(i)*workerSeedStride)), //nolint:gosec // reproducible sweep
			)
			s, err := gen.Generate(ctx, cfg.SampleSize, target)
			if err != nil {
				return fmt.Errorf("generate: %w", err)
			}
			r, err := correlation.Pearson(s.X, s.Y)
			if err != nil {
				return fmt.Errorf("pearson: %w", err)
			}
			realized[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	return Result{
		Target: target,
		Reps:   cfg.Reps,
		Mean:   stat.Mean(realized, nil),
		StdDev: stat.StdDev(realized, nil),
		Min:    floats.Min(realized),
		Max:    floats.Max(realized),
	}, nil
}
