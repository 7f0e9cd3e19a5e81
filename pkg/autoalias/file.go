package autoalias

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/ukaji3/autoalias-go/pkg/autoalias/grid"
	"github.com/ukaji3/autoalias-go/pkg/autoalias/models"
)

// FileOptions configures SyncFile.
type FileOptions struct {
	Options
	// Sheets restricts the run to the named sheets. Empty means all sheets.
	Sheets []string
	// OutputPath receives the result. Empty means the input is overwritten.
	OutputPath string
	// DryRun computes the report without writing anything.
	DryRun bool
}

// SyncFile synchronizes aliases in an xlsx workbook or a YAML fixture
// (by extension) and saves the result.
func SyncFile(ctx context.Context, path string, opts FileOptions) (*models.WorkbookReport, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	runID := uuid.Must(uuid.NewV7()).String()
	opts.Options = opts.Options.withDefaults()
	opts.Logger = opts.Logger.With("run_id", runID)
	opts.Logger.Info("syncing file", "path", path, "dry_run", opts.DryRun)

	report := &models.WorkbookReport{
		RunID:    runID,
		BookName: filepath.Base(path),
		DryRun:   opts.DryRun,
		Sheets:   []models.SheetReport{},
	}

	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = syncFixtureFile(ctx, path, opts, report)
	default:
		err = syncWorkbookFile(ctx, path, opts, report)
	}
	if err != nil {
		return nil, err
	}

	opts.Logger.Info("file synced", "path", path, "updated", report.Total, "output", report.Output)
	return report, nil
}

func syncWorkbookFile(ctx context.Context, path string, opts FileOptions, report *models.WorkbookReport) error {
	wb, err := grid.OpenWorkbook(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	defer wb.Close()

	if err := syncSelected(ctx, wb, opts, report); err != nil {
		return err
	}

	out := outputPath(path, opts, report)
	if out == "" {
		return nil
	}
	if err := wb.SaveAs(out); err != nil {
		return fmt.Errorf("saving %s: %w", out, err)
	}
	report.Output = out
	return nil
}

func syncFixtureFile(ctx context.Context, path string, opts FileOptions, report *models.WorkbookReport) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	doc, err := grid.LoadFixture(f)
	f.Close()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}

	if err := syncSelected(ctx, doc, opts, report); err != nil {
		return err
	}

	out := outputPath(path, opts, report)
	if out == "" {
		return nil
	}
	w, err := os.Create(out)
	if err != nil {
		return err
	}
	if err := doc.WriteFixture(w); err != nil {
		w.Close()
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	report.Output = out
	return nil
}

// outputPath returns where results go, or "" when nothing is written.
// An unchanged input is not rewritten in place.
func outputPath(path string, opts FileOptions, report *models.WorkbookReport) string {
	if opts.DryRun {
		return ""
	}
	if opts.OutputPath != "" {
		return opts.OutputPath
	}
	if report.Total == 0 {
		return ""
	}
	return path
}

func syncSelected(ctx context.Context, doc grid.Document, opts FileOptions, report *models.WorkbookReport) error {
	sheets, err := selectSheets(doc, opts.Sheets)
	if err != nil {
		return err
	}

	syncer := NewSynchronizer(opts.Options)
	for _, sheet := range sheets {
		if err := ctx.Err(); err != nil {
			return err
		}
		sr, err := syncer.Sync(sheet)
		if err != nil {
			return err
		}
		report.Sheets = append(report.Sheets, *sr)
		report.Total += sr.Updated
	}
	return nil
}

// selectSheets returns the named sheets of doc in the requested order, or
// all sheets when names is empty.
func selectSheets(doc grid.Document, names []string) ([]grid.Sheet, error) {
	all := doc.Sheets()
	if len(names) == 0 {
		return all, nil
	}

	byName := make(map[string]grid.Sheet, len(all))
	for _, s := range all {
		byName[s.Name()] = s
	}
	selected := make([]grid.Sheet, 0, len(names))
	for _, n := range names {
		s, ok := byName[n]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownSheet, n)
		}
		selected = append(selected, s)
	}
	return selected, nil
}
