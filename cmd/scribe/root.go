package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/scribe/internal/logging"
	"github.com/aretw0/scribe/internal/runner"
	"github.com/spf13/cobra"
)

// newRootCmd builds the scribe command.
// argv is the full argument list including the program name and goes to the
// runner unchanged. Cobra itself never sees the user tokens, so none of them
// can select a command or flag (including the hidden completion commands).
func newRootCmd(argv []string, cfg runner.Config, stdout io.Writer, logger *slog.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:                "scribe",
		Short:              "Echo the last argument and write a fixed output file",
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r := runner.New(cfg,
				runner.WithStdout(stdout),
				runner.WithLogger(logger),
			)
			return r.Run(argv)
		},
	}
	cmd.SetArgs([]string{})
	return cmd
}

// Execute runs the command against the process arguments and exits non-zero on failure.
func Execute() {
	os.Exit(run(os.Args, runner.DefaultConfig(), os.Stdout, os.Stderr))
}

// run executes the command and returns the process exit status.
func run(argv []string, cfg runner.Config, stdout, stderr io.Writer) int {
	logger := logging.New(stderr, slog.LevelInfo)
	if err := newRootCmd(argv, cfg, stdout, logger).Execute(); err != nil {
		logger.Error("scribe failed", "error", err)
		return 1
	}
	return 0
}
