// Package output serializes synchronization reports.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/ukaji3/autoalias-go/pkg/autoalias/models"
)

// ToJSON serializes a workbook report.
func ToJSON(report *models.WorkbookReport, pretty bool) ([]byte, error) {
	return marshal(report, pretty)
}

// SheetToJSON serializes a single sheet report.
func SheetToJSON(report *models.SheetReport, pretty bool) ([]byte, error) {
	return marshal(report, pretty)
}

func marshal(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

// WriteText writes a human-readable summary of the report.
func WriteText(w io.Writer, report *models.WorkbookReport) error {
	header := fmt.Sprintf("%s: %d alias(es) updated", report.BookName, report.Total)
	if report.DryRun {
		header += " (dry run)"
	}
	if _, err := fmt.Fprintln(w, header); err != nil {
		return err
	}

	for _, sheet := range report.Sheets {
		if _, err := fmt.Fprintf(w, "  %s: %d updated, %d skipped\n", sheet.Sheet, sheet.Updated, len(sheet.Skipped)); err != nil {
			return err
		}
		for _, b := range sheet.Bindings {
			line := fmt.Sprintf("    %s <- %s (from %s)", b.Cell, b.Alias, b.Label)
			if b.Previous != "" {
				line += fmt.Sprintf(", was %s", b.Previous)
			}
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
		for _, s := range sheet.Skipped {
			if _, err := fmt.Fprintf(w, "    skipped %s: %s\n", s.Label, s.Reason); err != nil {
				return err
			}
		}
	}

	if report.Output != "" {
		if _, err := fmt.Fprintf(w, "written to %s\n", report.Output); err != nil {
			return err
		}
	}
	return nil
}
