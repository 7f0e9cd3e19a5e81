package models

// SheetReport summarizes one synchronization pass over a sheet.
type SheetReport struct {
	// Sheet is the sheet name.
	Sheet string `json:"sheet"`
	// Labels is the number of label cells considered.
	Labels int `json:"labels"`
	// Updated is the number of aliases created or changed.
	Updated int `json:"updated"`
	// Bindings lists the aliases written, in processing order.
	Bindings []Binding `json:"bindings,omitempty"`
	// Skipped lists label cells abandoned during the pass.
	Skipped []Skip `json:"skipped,omitempty"`
}
