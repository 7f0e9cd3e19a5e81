package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemorySheet_TextRoundTrip(t *testing.T) {
	s := NewMemorySheet("Variables")
	require.NoError(t, s.SetText("b2", "5 mm"))

	text, err := s.Text("B2")
	require.NoError(t, err)
	assert.Equal(t, "5 mm", text)

	require.NoError(t, s.SetText("B2", ""))
	text, err = s.Text("B2")
	require.NoError(t, err)
	assert.Empty(t, text)
}

func TestMemorySheet_SetTextRejectsBadAddress(t *testing.T) {
	s := NewMemorySheet("Variables")
	assert.Error(t, s.SetText("1A", "x"))
}

func TestMemorySheet_SetAliasReplacesPrevious(t *testing.T) {
	s := NewMemorySheet("Variables")
	require.NoError(t, s.SetAlias("B1", "old_name"))
	require.NoError(t, s.SetAlias("B1", "new_name"))

	assert.Equal(t, map[string]string{"new_name": "B1"}, s.Aliases())

	alias, err := s.Alias("b1")
	require.NoError(t, err)
	assert.Equal(t, "new_name", alias)
}

func TestMemorySheet_SetAliasRejectsTaken(t *testing.T) {
	s := NewMemorySheet("Variables")
	require.NoError(t, s.SetAlias("B1", "height"))

	err := s.SetAlias("B2", "height")
	assert.ErrorIs(t, err, ErrAliasTaken)

	cell, err := s.CellForAlias("height")
	require.NoError(t, err)
	assert.Equal(t, "B1", cell)
}

func TestMemorySheet_SetAliasRejectsInvalid(t *testing.T) {
	s := NewMemorySheet("Variables")
	assert.ErrorIs(t, s.SetAlias("B1", "9lives"), ErrInvalidAlias)
	assert.Empty(t, s.Aliases())
}

func TestMemorySheet_NonEmptyCellsRowMajor(t *testing.T) {
	s := NewMemorySheet("Variables")
	require.NoError(t, s.SetText("B2", "x"))
	require.NoError(t, s.SetText("A2", "x"))
	require.NoError(t, s.SetText("AA1", "x"))
	require.NoError(t, s.SetText("C1", "   "))
	require.NoError(t, s.SetText("B1", "x"))

	cells, err := s.NonEmptyCells()
	require.NoError(t, err)
	assert.Equal(t, []string{"B1", "AA1", "A2", "B2"}, cells)
}

func TestMemoryDocument_Sheets(t *testing.T) {
	doc := NewMemoryDocument("demo")
	doc.AddSheet("One")
	doc.AddSheet("Two")

	sheets := doc.Sheets()
	require.Len(t, sheets, 2)
	assert.Equal(t, "One", sheets[0].Name())
	assert.Equal(t, "Two", sheets[1].Name())

	_, ok := doc.Sheet("Three")
	assert.False(t, ok)
}
