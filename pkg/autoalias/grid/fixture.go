package grid

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Fixture is the YAML form of a MemoryDocument.
type Fixture struct {
	Name   string         `yaml:"name"`
	Sheets []FixtureSheet `yaml:"sheets"`
}

// FixtureSheet is the YAML form of a MemorySheet.
type FixtureSheet struct {
	Name    string            `yaml:"name"`
	Cells   map[string]string `yaml:"cells,omitempty"`
	Aliases map[string]string `yaml:"aliases,omitempty"`
}

// LoadFixture decodes a YAML fixture into a MemoryDocument. Unknown fields
// are rejected.
func LoadFixture(r io.Reader) (*MemoryDocument, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading fixture: %w", err)
	}

	var fx Fixture
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&fx); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing fixture: %w", err)
	}

	doc := NewMemoryDocument(fx.Name)
	for _, fs := range fx.Sheets {
		if fs.Name == "" {
			return nil, fmt.Errorf("fixture sheet without name")
		}
		if _, dup := doc.Sheet(fs.Name); dup {
			return nil, fmt.Errorf("duplicate fixture sheet %q", fs.Name)
		}
		sheet := doc.AddSheet(fs.Name)
		for ref, text := range fs.Cells {
			if err := sheet.SetText(ref, text); err != nil {
				return nil, fmt.Errorf("sheet %q: %w", fs.Name, err)
			}
		}
		for alias, ref := range fs.Aliases {
			if err := sheet.SetAlias(ref, alias); err != nil {
				return nil, fmt.Errorf("sheet %q: %w", fs.Name, err)
			}
		}
	}
	return doc, nil
}

// Fixture converts the document back to its YAML form.
func (d *MemoryDocument) Fixture() Fixture {
	fx := Fixture{Name: d.name}
	for _, s := range d.sheets {
		fs := FixtureSheet{Name: s.name}
		if len(s.cells) > 0 {
			fs.Cells = s.Cells()
		}
		if len(s.aliases) > 0 {
			fs.Aliases = s.Aliases()
		}
		fx.Sheets = append(fx.Sheets, fs)
	}
	return fx
}

// WriteFixture encodes the document as YAML.
func (d *MemoryDocument) WriteFixture(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(d.Fixture()); err != nil {
		return fmt.Errorf("encoding fixture: %w", err)
	}
	return enc.Close()
}
