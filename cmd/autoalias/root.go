package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// Exit codes for CLI commands.
const (
	exitFailure      = 1 // Unexpected failure
	exitCommandError = 2 // Command error (missing file, unknown sheet, bad config)
)

// exitError carries an exit code through cobra.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }

func (e *exitError) Unwrap() error { return e.err }

func commandError(format string, args ...any) error {
	return &exitError{code: exitCommandError, err: fmt.Errorf(format, args...)}
}

func exitCode(err error) int {
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return exitFailure
}

// rootOptions holds global flags for all commands.
type rootOptions struct {
	verbose    bool
	configPath string
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "autoalias",
		Short: "Bind spreadsheet value cells to aliases derived from their labels",
		Long: `autoalias derives an identifier from every label cell (column N) and
binds it as an alias to the value cell next to it (column N+1).
Re-running on an unchanged sheet changes nothing.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if opts.verbose {
				level = slog.LevelDebug
			}
			handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})
			slog.SetDefault(slog.New(handler))
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/autoalias/config.yaml)")

	cmd.AddCommand(newSyncCommand(opts))
	cmd.AddCommand(newNormalizeCommand())
	cmd.AddCommand(newConfigCommand(opts))

	cmd.SetErr(os.Stderr)
	return cmd
}
