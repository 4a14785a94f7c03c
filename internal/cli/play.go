package cli

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/st-1989/Correlation-game/internal/app"
	"github.com/st-1989/Correlation-game/internal/config"
	"github.com/st-1989/Correlation-game/internal/domain/sample"
	"github.com/st-1989/Correlation-game/internal/game"
	"github.com/st-1989/Correlation-game/pkg/logger"
)

func newPlayCmd() *cobra.Command {
	var (
		size      int
		target    float64
		tolerance float64
		jitter    float64
		seed      int64
		rounds    int
		logLevel  string
	)

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play guessing rounds against freshly generated samples.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := logger.Init(); err != nil {
				return fmt.Errorf("initialize logging: %w", err)
			}

			cfg, err := config.Load(cmd.Context())
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			// Flags win over file/env config, but only when set.
			flags := cmd.Flags()
			if flags.Changed("size") {
				cfg.SampleSize = size
			}
			if flags.Changed("target") {
				cfg.TargetCorrelation = target
			}
			if flags.Changed("tolerance") {
				cfg.Tolerance = tolerance
			}
			if flags.Changed("jitter") {
				cfg.Jitter = jitter
			}
			if flags.Changed("seed") {
				cfg.Seed = seed
			}
			if flags.Changed("rounds") {
				cfg.Rounds = rounds
			}
			if flags.Changed("log-level") {
				cfg.LogLevel = logLevel
			}
			if cfg.Normalize() {
				logger.Get().Debug(cmd.Context(), "settings clamped into playable ranges")
			}

			if err := logger.SetLevelString(cfg.LogLevel); err != nil {
				logger.Get().Warn(cmd.Context(), "invalid log_level; falling back to info",
					logger.String("log_level", cfg.LogLevel), logger.Error(err))
				_ = logger.SetLevelString("info")
			}

			svc := app.New(
				app.WithGenerator(newGenerator(cfg.Seed)),
				app.WithJitterSource(newJitterSource(cfg.Seed)),
				app.WithSampleSize(cfg.SampleSize),
				app.WithTargetCorrelation(cfg.TargetCorrelation),
				app.WithTolerance(cfg.Tolerance),
				app.WithJitter(cfg.Jitter),
				app.WithLogger(logger.Named("app")),
			)

			runner := game.NewRunner(svc, game.WithRounds(cfg.Rounds))
			return runner.Run(cmd.Context())
		},
	}

	fs := cmd.Flags()
	fs.IntVar(&size, "size", 75, "points per sample, clamped to [10, 1000] (env: CORRGAME_SAMPLE_SIZE)")
	fs.Float64Var(&target, "target", 0.6, "target correlation, clamped to [-0.95, 0.95] (env: CORRGAME_TARGET_CORRELATION)")
	fs.Float64Var(&tolerance, "tolerance", config.DefaultTolerance, "maximum absolute guess error that still passes (env: CORRGAME_TOLERANCE)")
	fs.Float64Var(&jitter, "jitter", config.DefaultJitter, "per-round target perturbation amplitude (env: CORRGAME_JITTER)")
	fs.Int64Var(&seed, "seed", 0, "fixed random seed, 0 for time-based (env: CORRGAME_SEED)")
	fs.IntVar(&rounds, "rounds", 0, "rounds to play, 0 for until quit (env: CORRGAME_ROUNDS)")
	fs.StringVar(&logLevel, "log-level", "info", "log verbosity: debug, info, warn, error (env: CORRGAME_LOG_LEVEL)")

	return cmd
}

func newGenerator(seed int64) sample.Generator {
	if seed == 0 {
		return sample.NewGaussianGenerator()
	}
	return sample.NewGaussianGenerator(sample.WithSource(rand.NewSource(seed)))
}

func newJitterSource(seed int64) rand.Source {
	if seed == 0 {
		return rand.NewSource(time.Now().UnixNano())
	}
	// offset so jitter and generation do not share a draw sequence
	return rand.NewSource(seed + 1)
}
