// Package models defines the reports produced by alias synchronization.
package models

// Binding records an alias written to a value cell.
type Binding struct {
	// Label is the address of the label cell the alias was derived from.
	Label string `json:"label"`
	// Cell is the address of the value cell that received the alias.
	Cell string `json:"cell"`
	// Alias is the alias now bound to Cell.
	Alias string `json:"alias"`
	// Previous is the alias Cell carried before, if any.
	Previous string `json:"previous,omitempty"`
	// Initialized is true when the empty value cell was set to the default value.
	Initialized bool `json:"initialized,omitempty"`
}

// Skip records a label cell that could not be synchronized.
type Skip struct {
	// Label is the address of the label cell.
	Label string `json:"label"`
	// Alias is the alias that was attempted, if one was chosen.
	Alias string `json:"alias,omitempty"`
	// Reason is the failure kind.
	Reason string `json:"reason"`
	// Message is the full error text.
	Message string `json:"message"`
}
