package grid

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ukaji3/autoalias-go/pkg/autoalias/address"
	"github.com/ukaji3/autoalias-go/pkg/autoalias/ident"
)

// MemorySheet is a map-backed Sheet. The zero value is not usable; call
// NewMemorySheet.
type MemorySheet struct {
	name    string
	cells   map[string]string
	aliases map[string]string // alias -> address
}

// NewMemorySheet creates an empty in-memory sheet.
func NewMemorySheet(name string) *MemorySheet {
	return &MemorySheet{
		name:    name,
		cells:   make(map[string]string),
		aliases: make(map[string]string),
	}
}

// Name returns the sheet name.
func (s *MemorySheet) Name() string { return s.name }

// Text returns the cell text.
func (s *MemorySheet) Text(ref string) (string, error) {
	return s.cells[address.Normalize(ref)], nil
}

// SetText sets the cell text. Setting "" clears the cell.
func (s *MemorySheet) SetText(ref, text string) error {
	key, err := normalizeRef(ref)
	if err != nil {
		return err
	}
	if text == "" {
		delete(s.cells, key)
		return nil
	}
	s.cells[key] = text
	return nil
}

// Alias returns the alias bound to ref.
func (s *MemorySheet) Alias(ref string) (string, error) {
	key := address.Normalize(ref)
	for alias, cell := range s.aliases {
		if cell == key {
			return alias, nil
		}
	}
	return "", nil
}

// CellForAlias returns the address alias is bound to.
func (s *MemorySheet) CellForAlias(alias string) (string, error) {
	return s.aliases[alias], nil
}

// SetAlias binds alias to ref. A previous alias of ref is dropped.
func (s *MemorySheet) SetAlias(ref, alias string) error {
	key, err := normalizeRef(ref)
	if err != nil {
		return err
	}
	if !s.IsValidAlias(alias) {
		return fmt.Errorf("%w: %q", ErrInvalidAlias, alias)
	}
	if existing, ok := s.aliases[alias]; ok && existing != key {
		return fmt.Errorf("%w: %q is bound to %s", ErrAliasTaken, alias, existing)
	}
	for old, cell := range s.aliases {
		if cell == key && old != alias {
			delete(s.aliases, old)
		}
	}
	s.aliases[alias] = key
	return nil
}

// IsValidAlias applies the default identifier rule.
func (s *MemorySheet) IsValidAlias(alias string) bool {
	return ident.IsIdentifier(alias)
}

// NonEmptyCells lists cells with non-blank text in row-major order.
func (s *MemorySheet) NonEmptyCells() ([]string, error) {
	refs := make([]string, 0, len(s.cells))
	for ref, text := range s.cells {
		if strings.TrimSpace(text) != "" {
			refs = append(refs, ref)
		}
	}
	sortRefs(refs)
	return refs, nil
}

// Aliases returns a copy of the alias bindings.
func (s *MemorySheet) Aliases() map[string]string {
	out := make(map[string]string, len(s.aliases))
	for k, v := range s.aliases {
		out[k] = v
	}
	return out
}

// Cells returns a copy of the cell contents.
func (s *MemorySheet) Cells() map[string]string {
	out := make(map[string]string, len(s.cells))
	for k, v := range s.cells {
		out[k] = v
	}
	return out
}

// MemoryDocument is an in-memory Document.
type MemoryDocument struct {
	name   string
	sheets []*MemorySheet
}

// NewMemoryDocument creates a document holding the given sheets.
func NewMemoryDocument(name string, sheets ...*MemorySheet) *MemoryDocument {
	return &MemoryDocument{name: name, sheets: sheets}
}

// Name returns the document name.
func (d *MemoryDocument) Name() string { return d.name }

// Sheets returns the document's sheets in insertion order.
func (d *MemoryDocument) Sheets() []Sheet {
	out := make([]Sheet, len(d.sheets))
	for i, s := range d.sheets {
		out[i] = s
	}
	return out
}

// AddSheet appends a new empty sheet.
func (d *MemoryDocument) AddSheet(name string) *MemorySheet {
	s := NewMemorySheet(name)
	d.sheets = append(d.sheets, s)
	return s
}

// Sheet looks a sheet up by name.
func (d *MemoryDocument) Sheet(name string) (*MemorySheet, bool) {
	for _, s := range d.sheets {
		if s.name == name {
			return s, true
		}
	}
	return nil, false
}

func normalizeRef(ref string) (string, error) {
	a, err := address.Parse(ref)
	if err != nil {
		return "", err
	}
	return a.String(), nil
}

// sortRefs sorts parseable addresses row-major; unparseable ones go last.
func sortRefs(refs []string) {
	sort.SliceStable(refs, func(i, j int) bool {
		ai, errI := address.Parse(refs[i])
		aj, errJ := address.Parse(refs[j])
		switch {
		case errI != nil && errJ != nil:
			return refs[i] < refs[j]
		case errI != nil:
			return false
		case errJ != nil:
			return true
		}
		return ai.Less(aj)
	})
}
