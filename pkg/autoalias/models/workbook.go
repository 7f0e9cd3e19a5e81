package models

// WorkbookReport represents a synchronization run over a whole workbook.
type WorkbookReport struct {
	// RunID identifies the run in logs.
	RunID string `json:"run_id"`
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// DryRun is true when changes were not saved.
	DryRun bool `json:"dry_run,omitempty"`
	// Output is the path the workbook was written to, if any.
	Output string `json:"output,omitempty"`
	// Sheets holds per-sheet reports in workbook order.
	Sheets []SheetReport `json:"sheets"`
	// Total is the sum of Updated over all sheets.
	Total int `json:"total"`
}
