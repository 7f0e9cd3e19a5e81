package grid

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleFixture = `
name: demo
sheets:
  - name: Variables
    cells:
      A1: wall thickness
      b1: 5 mm
    aliases:
      wall_thickness: B1
  - name: Empty
`

func TestLoadFixture(t *testing.T) {
	doc, err := LoadFixture(strings.NewReader(sampleFixture))
	require.NoError(t, err)

	assert.Equal(t, "demo", doc.Name())
	require.Len(t, doc.Sheets(), 2)

	vars, ok := doc.Sheet("Variables")
	require.True(t, ok)
	assert.Equal(t, map[string]string{"A1": "wall thickness", "B1": "5 mm"}, vars.Cells())
	assert.Equal(t, map[string]string{"wall_thickness": "B1"}, vars.Aliases())
}

func TestLoadFixture_Errors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"unknown field", "name: x\ncolor: red\n"},
		{"unnamed sheet", "sheets:\n  - cells: {A1: x}\n"},
		{"duplicate sheet", "sheets:\n  - name: S\n  - name: S\n"},
		{"bad address", "sheets:\n  - name: S\n    cells: {A0: x}\n"},
		{"alias clash", "sheets:\n  - name: S\n    aliases: {\"9x\": B1}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFixture(strings.NewReader(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestLoadFixture_Empty(t *testing.T) {
	doc, err := LoadFixture(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, doc.Sheets())
}

func TestWriteFixture_RoundTrip(t *testing.T) {
	doc, err := LoadFixture(strings.NewReader(sampleFixture))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, doc.WriteFixture(&buf))

	again, err := LoadFixture(&buf)
	require.NoError(t, err)
	assert.Equal(t, doc.Fixture(), again.Fixture())
}
