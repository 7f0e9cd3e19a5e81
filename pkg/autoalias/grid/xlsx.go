package grid

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ukaji3/autoalias-go/pkg/autoalias/address"
	"github.com/ukaji3/autoalias-go/pkg/autoalias/ident"
	"github.com/xuri/excelize/v2"
)

// maxDefinedNameLength is Excel's limit on defined name length.
const maxDefinedNameLength = 255

// workbookScope is the scope excelize reports for global defined names.
const workbookScope = "Workbook"

var r1c1Re = regexp.MustCompile(`(?i)^(r|c|r[0-9]*c[0-9]*|r[0-9]+|c[0-9]+)$`)

// Workbook is a Document backed by an excelize workbook. Aliases are stored
// as defined names scoped to their worksheet.
type Workbook struct {
	name string
	path string
	f    *excelize.File
}

// OpenWorkbook opens an xlsx file.
func OpenWorkbook(path string) (*Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	name := path
	if abs, err := filepath.Abs(path); err == nil {
		name = abs
	}
	return &Workbook{name: name, path: path, f: f}, nil
}

// NewWorkbook wraps an already open excelize file.
func NewWorkbook(name string, f *excelize.File) *Workbook {
	return &Workbook{name: name, f: f}
}

// Name identifies the workbook, normally by its absolute path.
func (w *Workbook) Name() string { return w.name }

// File returns the underlying excelize file.
func (w *Workbook) File() *excelize.File { return w.f }

// Sheets returns the worksheets in workbook order.
func (w *Workbook) Sheets() []Sheet {
	names := w.f.GetSheetList()
	out := make([]Sheet, 0, len(names))
	for _, n := range names {
		out = append(out, &XLSXSheet{wb: w, name: n})
	}
	return out
}

// Sheet returns the named worksheet.
func (w *Workbook) Sheet(name string) (*XLSXSheet, bool) {
	idx, err := w.f.GetSheetIndex(name)
	if err != nil || idx < 0 {
		return nil, false
	}
	return &XLSXSheet{wb: w, name: name}, true
}

// Save writes the workbook back to the path it was opened from.
func (w *Workbook) Save() error {
	if w.path == "" {
		return fmt.Errorf("workbook %q has no path", w.name)
	}
	return w.f.SaveAs(w.path)
}

// SaveAs writes the workbook to path.
func (w *Workbook) SaveAs(path string) error {
	return w.f.SaveAs(path)
}

// Close releases the workbook.
func (w *Workbook) Close() error {
	return w.f.Close()
}

// XLSXSheet is a single worksheet of a Workbook.
type XLSXSheet struct {
	wb   *Workbook
	name string
}

// Name returns the worksheet name.
func (s *XLSXSheet) Name() string { return s.name }

// Text returns the formatted cell value, or the formula prefixed with "="
// for formula cells regardless of any cached result.
func (s *XLSXSheet) Text(ref string) (string, error) {
	a, err := address.Parse(ref)
	if err != nil {
		return "", err
	}
	return cellText(s.wb.f, s.name, a.String())
}

// SetText writes text to the cell. Numeric text is stored as a number and
// text starting with "=" as a formula.
func (s *XLSXSheet) SetText(ref, text string) error {
	a, err := address.Parse(ref)
	if err != nil {
		return err
	}
	if formula, ok := strings.CutPrefix(text, "="); ok && formula != "" {
		return s.wb.f.SetCellFormula(s.name, a.String(), formula)
	}
	return s.wb.f.SetCellValue(s.name, a.String(), parseValue(text))
}

// NonEmptyCells lists cells with non-blank values in row-major order.
func (s *XLSXSheet) NonEmptyCells() ([]string, error) {
	return nonEmptyCells(s.wb.f, s.name)
}

// Alias returns the defined name pointing at ref, preferring a sheet-scoped
// name over a workbook-scoped one.
func (s *XLSXSheet) Alias(ref string) (string, error) {
	target, err := address.Parse(ref)
	if err != nil {
		return "", err
	}
	local, global := s.definedNames()
	for _, names := range [][]excelize.DefinedName{local, global} {
		for _, dn := range names {
			sheet, a, ok := parseCellReference(dn.RefersTo)
			if ok && sheet == s.name && a == target {
				return dn.Name, nil
			}
		}
	}
	return "", nil
}

// CellForAlias resolves a defined name visible from this sheet. A
// sheet-scoped name shadows a workbook-scoped one of the same name, so both
// count as taken. Names are matched case-insensitively as Excel does. A name
// that does not refer to a single cell of this sheet resolves to its raw
// reference.
func (s *XLSXSheet) CellForAlias(alias string) (string, error) {
	local, global := s.definedNames()
	for _, names := range [][]excelize.DefinedName{local, global} {
		for _, dn := range names {
			if !strings.EqualFold(dn.Name, alias) {
				continue
			}
			sheet, a, ok := parseCellReference(dn.RefersTo)
			if ok && sheet == s.name {
				return a.String(), nil
			}
			return dn.RefersTo, nil
		}
	}
	return "", nil
}

// SetAlias binds alias to ref as a sheet-scoped defined name, removing any
// other name that pointed at ref.
func (s *XLSXSheet) SetAlias(ref, alias string) error {
	target, err := address.Parse(ref)
	if err != nil {
		return err
	}
	if !s.IsValidAlias(alias) {
		return fmt.Errorf("%w: %q", ErrInvalidAlias, alias)
	}

	occupied, err := s.CellForAlias(alias)
	if err != nil {
		return err
	}
	if occupied != "" {
		if occupied != target.String() {
			return fmt.Errorf("%w: %q is bound to %s", ErrAliasTaken, alias, occupied)
		}
		return nil
	}

	local, _ := s.definedNames()
	for _, dn := range local {
		sheet, a, ok := parseCellReference(dn.RefersTo)
		if !ok || sheet != s.name || a != target {
			continue
		}
		if err := s.wb.f.DeleteDefinedName(&excelize.DefinedName{Name: dn.Name, Scope: s.name}); err != nil {
			return fmt.Errorf("removing alias %q: %w", dn.Name, err)
		}
	}

	return s.wb.f.SetDefinedName(&excelize.DefinedName{
		Name:     alias,
		RefersTo: formatCellReference(s.name, target),
		Scope:    s.name,
	})
}

// IsValidAlias applies Excel's defined name rules on top of the default
// identifier rule: names must not read as A1 or R1C1 references.
func (s *XLSXSheet) IsValidAlias(alias string) bool {
	if !ident.IsIdentifier(alias) || len(alias) > maxDefinedNameLength {
		return false
	}
	if a, err := address.Parse(alias); err == nil && a.Row <= address.MaxRow {
		return false
	}
	return !r1c1Re.MatchString(alias)
}

// definedNames splits the names visible from this sheet into those scoped
// to it and the workbook-scoped ones.
func (s *XLSXSheet) definedNames() (local, global []excelize.DefinedName) {
	for _, dn := range s.wb.f.GetDefinedName() {
		switch dn.Scope {
		case s.name:
			local = append(local, dn)
		case workbookScope:
			global = append(global, dn)
		}
	}
	return local, global
}
