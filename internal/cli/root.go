// Package cli defines the command surface of the game binary: an
// interactive play mode and a generator calibration sweep. Flags override
// whatever the config layer loaded from file and environment.
package cli

import (
	"context"

	"github.com/spf13/cobra"
)

const releaseVersion = "0.1.0"

// NewRootCmd builds the root command with its subcommands.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "correlation-game",
		Short:         "Guess the correlation statistics of a random scatter plot.",
		Version:       releaseVersion,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	cmd.AddCommand(newPlayCmd())
	cmd.AddCommand(newCalibrateCmd())

	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.SetVersionTemplate("correlation-game v{{.Version}}\n")

	return cmd
}

// Execute runs the root command under the given context.
func Execute(ctx context.Context) {
	cobra.CheckErr(NewRootCmd().ExecuteContext(ctx))
}
