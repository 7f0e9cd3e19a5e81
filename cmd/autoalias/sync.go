package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ukaji3/autoalias-go/pkg/autoalias"
	"github.com/ukaji3/autoalias-go/pkg/autoalias/config"
	"github.com/ukaji3/autoalias-go/pkg/autoalias/output"
)

type syncOptions struct {
	*rootOptions
	outputPath string
	reportPath string
	sheets     []string
	dryRun     bool
	pretty     bool
	format     string
}

func newSyncCommand(root *rootOptions) *cobra.Command {
	opts := &syncOptions{rootOptions: root}

	cmd := &cobra.Command{
		Use:   "sync <input.xlsx|fixture.yaml>",
		Short: "Create or update aliases for every label cell",
		Long: `Sync scans each sheet for label cells, derives an alias from the label
text and binds it to the cell on the right. Duplicate labels get numeric
suffixes in row order. Empty value cells are initialized to the default value.

Example:
  autoalias sync params.xlsx
  autoalias sync params.xlsx --sheet Variables --dry-run --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSync(cmd, opts, args[0])
		},
	}

	cmd.Flags().StringVarP(&opts.outputPath, "output", "o", "", "write the result here instead of overwriting the input")
	cmd.Flags().StringVar(&opts.reportPath, "report", "", "write the JSON report to this file")
	cmd.Flags().StringSliceVar(&opts.sheets, "sheet", nil, "only sync the named sheet (repeatable)")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "compute the report without writing")
	cmd.Flags().BoolVar(&opts.pretty, "pretty", false, "pretty-print JSON output")
	cmd.Flags().StringVar(&opts.format, "format", "text", "output format: text, json")

	return cmd
}

func runSync(cmd *cobra.Command, opts *syncOptions, inputPath string) error {
	if opts.format != "text" && opts.format != "json" {
		return commandError("invalid format: %s (must be text or json)", opts.format)
	}

	store, err := config.Open(opts.configPath)
	if err != nil {
		return commandError("loading config: %w", err)
	}

	report, err := autoalias.SyncFile(cmd.Context(), inputPath, autoalias.FileOptions{
		Options:    store.Config().Options(),
		Sheets:     opts.sheets,
		OutputPath: opts.outputPath,
		DryRun:     opts.dryRun,
	})
	switch {
	case errors.Is(err, autoalias.ErrFileNotFound),
		errors.Is(err, autoalias.ErrInvalidFormat),
		errors.Is(err, autoalias.ErrUnknownSheet):
		return &exitError{code: exitCommandError, err: err}
	case err != nil:
		return fmt.Errorf("sync failed: %w", err)
	}

	if opts.reportPath != "" {
		data, err := output.ToJSON(report, opts.pretty)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		if err := os.WriteFile(opts.reportPath, data, 0644); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}

	if opts.format == "json" {
		data, err := output.ToJSON(report, opts.pretty)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}
	return output.WriteText(cmd.OutOrStdout(), report)
}
