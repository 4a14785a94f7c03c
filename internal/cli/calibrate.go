package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/st-1989/Correlation-game/internal/calibrate"
	"github.com/st-1989/Correlation-game/pkg/logger"
)

func newCalibrateCmd() *cobra.Command {
	cfg := calibrate.NewConfig()
	var logLevel string

	cmd := &cobra.Command{
		Use:   "calibrate",
		Short: "Sweep the sample generator and report realized correlations.",
		Long: `Calibrate generates many samples per target correlation and compares
the mean realized Pearson coefficient against the requested target.
It exits nonzero when any target drifts beyond the tolerated bound.`,
		Args: cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := logger.Init(); err != nil {
				return fmt.Errorf("initialize logging: %w", err)
			}
			if err := logger.SetLevelString(logLevel); err != nil {
				return fmt.Errorf("set log level: %w", err)
			}
			return calibrate.Run(cmd.Context(), cfg)
		},
	}

	fs := cmd.Flags()
	fs.Float64SliceVar(&cfg.Targets, "targets", cfg.Targets, "target correlations to sweep")
	fs.IntVar(&cfg.Reps, "reps", cfg.Reps, "samples generated per target")
	fs.IntVar(&cfg.SampleSize, "size", cfg.SampleSize, "observations per sample")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "concurrent generation workers")
	fs.Float64Var(&cfg.Drift, "drift", cfg.Drift, "maximum tolerated distance between mean realized and target")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "base random seed for reproducible sweeps")
	fs.StringVar(&logLevel, "log-level", "info", "log verbosity: debug, info, warn, error")

	return cmd
}
