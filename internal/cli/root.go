// Package cli implements the wuyun command-line tool.
package cli

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/zapponejosh/wuyun-api/internal/logger"
)

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	cmd := NewRootCmd(os.Stdout, os.Stderr)
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// env carries what every subcommand shares.
type env struct {
	out io.Writer
	log *slog.Logger
	now func() time.Time
}

// NewRootCmd builds the command tree writing results to out and logs to errOut.
func NewRootCmd(out, errOut io.Writer) *cobra.Command {
	return newRootCmd(out, errOut, time.Now)
}

func newRootCmd(out, errOut io.Writer, now func() time.Time) *cobra.Command {
	var debug bool
	e := &env{out: out, now: now}

	cmd := &cobra.Command{
		Use:          "wuyun",
		Short:        "Annual five-movements six-qi profiles",
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			level := "warn"
			if debug {
				level = "debug"
			}
			e.log = logger.New(errOut, level, "text")
		},
	}

	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging on stderr")

	cmd.AddCommand(
		profileCmd(e),
		cycleCmd(e),
		stepsCmd(e),
	)
	return cmd
}
