package autoalias

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file could not be opened as a workbook.
var ErrInvalidFormat = errors.New("invalid workbook format")

// ErrUnknownSheet indicates a requested sheet does not exist.
var ErrUnknownSheet = errors.New("unknown sheet")

// ErrNilSheet and ErrNilDocument signal a missing handle from the caller.
var (
	ErrNilSheet    = errors.New("nil sheet")
	ErrNilDocument = errors.New("nil document")
)

// ErrAttemptsExhausted indicates no valid, free alias was found within
// the attempt limit.
var ErrAttemptsExhausted = errors.New("no usable alias within attempt limit")

// FailureKind classifies why a label cell was skipped.
type FailureKind string

const (
	// KindReadFailed: the grid failed to report text or alias state.
	KindReadFailed FailureKind = "read_failed"
	// KindDisambiguationExhausted: every candidate was invalid or taken.
	KindDisambiguationExhausted FailureKind = "disambiguation_exhausted"
	// KindWriteFailed: the grid rejected a text or alias write.
	KindWriteFailed FailureKind = "write_failed"
)

// CandidateError represents a failure isolated to one label cell.
type CandidateError struct {
	Sheet string
	Cell  string
	Alias string
	Kind  FailureKind
	Err   error
}

func (e *CandidateError) Error() string {
	if e.Alias != "" {
		return fmt.Sprintf("sheet %q cell %s (%s, alias %q): %v", e.Sheet, e.Cell, e.Kind, e.Alias, e.Err)
	}
	return fmt.Sprintf("sheet %q cell %s (%s): %v", e.Sheet, e.Cell, e.Kind, e.Err)
}

func (e *CandidateError) Unwrap() error {
	return e.Err
}

// NewCandidateError creates a new CandidateError.
func NewCandidateError(sheet, cell, alias string, kind FailureKind, err error) *CandidateError {
	return &CandidateError{
		Sheet: sheet,
		Cell:  cell,
		Alias: alias,
		Kind:  kind,
		Err:   err,
	}
}
