// Package grid defines the cell grid capability the alias synchronizer
// operates on, together with in-memory and xlsx implementations.
package grid

import "errors"

// ErrAliasTaken indicates an alias is already bound to a different cell.
var ErrAliasTaken = errors.New("alias already bound to another cell")

// ErrInvalidAlias indicates an alias rejected by the grid's syntax rule.
var ErrInvalidAlias = errors.New("invalid alias")

// Grid is a sparse two-dimensional store of cell text and aliases.
// Addresses are A1 strings.
type Grid interface {
	// Text returns the cell text, or "" for a blank cell.
	Text(ref string) (string, error)
	// SetText replaces the cell text.
	SetText(ref, text string) error
	// Alias returns the alias bound to the cell, or "".
	Alias(ref string) (string, error)
	// CellForAlias returns the address the alias is bound to, or "".
	CellForAlias(alias string) (string, error)
	// SetAlias binds alias to the cell, replacing any alias the cell had.
	SetAlias(ref, alias string) error
}

// Enumerator is implemented by grids that can list their non-empty cells.
type Enumerator interface {
	NonEmptyCells() ([]string, error)
}

// AliasValidator is implemented by grids with their own alias syntax rule.
type AliasValidator interface {
	IsValidAlias(alias string) bool
}

// Sheet is a named grid.
type Sheet interface {
	Grid
	Name() string
}

// Document owns zero or more sheets.
type Document interface {
	Name() string
	Sheets() []Sheet
}
