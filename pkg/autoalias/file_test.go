package autoalias

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/autoalias-go/pkg/autoalias/grid"
	"github.com/xuri/excelize/v2"
)

func writeTestWorkbook(t *testing.T) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	f.SetCellValue("Sheet1", "A1", "wall thickness")
	f.SetCellValue("Sheet1", "B1", "5 mm")
	f.SetCellValue("Sheet1", "A2", "wall thickness")
	f.SetCellValue("Sheet1", "B2", "8 mm")
	f.SetCellValue("Sheet1", "A3", "height")
	if _, err := f.NewSheet("Notes"); err != nil {
		t.Fatalf("NewSheet failed: %v", err)
	}
	f.SetCellValue("Notes", "C5", "author")
	f.SetCellValue("Notes", "D5", 2024)

	path := filepath.Join(t.TempDir(), "params.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}
	return path
}

func fileOptions() FileOptions {
	return FileOptions{Options: quietOptions()}
}

func definedNames(t *testing.T, path string) map[string]string {
	t.Helper()
	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	out := make(map[string]string)
	for _, dn := range f.GetDefinedName() {
		out[dn.Scope+"/"+dn.Name] = dn.RefersTo
	}
	return out
}

func TestSyncFile_Workbook(t *testing.T) {
	path := writeTestWorkbook(t)

	report, err := SyncFile(context.Background(), path, fileOptions())
	require.NoError(t, err)

	parsed, err := uuid.Parse(report.RunID)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
	assert.Equal(t, "params.xlsx", report.BookName)
	assert.Equal(t, path, report.Output)
	assert.Equal(t, 4, report.Total)
	require.Len(t, report.Sheets, 2)
	assert.Equal(t, "Sheet1", report.Sheets[0].Sheet)
	assert.Equal(t, 3, report.Sheets[0].Updated)
	assert.Equal(t, 1, report.Sheets[1].Updated)

	assert.Equal(t, map[string]string{
		"Sheet1/wall_thickness":  "'Sheet1'!$B$1",
		"Sheet1/wall_thickness2": "'Sheet1'!$B$2",
		"Sheet1/height":          "'Sheet1'!$B$3",
		"Notes/author":           "'Notes'!$D$5",
	}, definedNames(t, path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	b1, _ := f.GetCellValue("Sheet1", "B1")
	b3, _ := f.GetCellValue("Sheet1", "B3")
	assert.Equal(t, "5 mm", b1)
	assert.Equal(t, "0", b3)

	// Second run changes nothing and leaves the file alone.
	again, err := SyncFile(context.Background(), path, fileOptions())
	require.NoError(t, err)
	assert.Equal(t, 0, again.Total)
	assert.Empty(t, again.Output)
}

func TestSyncFile_DryRun(t *testing.T) {
	path := writeTestWorkbook(t)
	opts := fileOptions()
	opts.DryRun = true

	report, err := SyncFile(context.Background(), path, opts)
	require.NoError(t, err)

	assert.True(t, report.DryRun)
	assert.Equal(t, 4, report.Total)
	assert.Empty(t, report.Output)
	assert.Empty(t, definedNames(t, path))
}

func TestSyncFile_OutputPathAndSheetFilter(t *testing.T) {
	path := writeTestWorkbook(t)
	out := filepath.Join(t.TempDir(), "out.xlsx")
	opts := fileOptions()
	opts.OutputPath = out
	opts.Sheets = []string{"Notes"}

	report, err := SyncFile(context.Background(), path, opts)
	require.NoError(t, err)

	assert.Equal(t, 1, report.Total)
	assert.Equal(t, out, report.Output)
	assert.Empty(t, definedNames(t, path))
	assert.Equal(t, map[string]string{"Notes/author": "'Notes'!$D$5"}, definedNames(t, out))
}

func TestSyncFile_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := SyncFile(context.Background(), filepath.Join(dir, "missing.xlsx"), fileOptions())
	assert.ErrorIs(t, err, ErrFileNotFound)

	bogus := filepath.Join(dir, "bogus.xlsx")
	require.NoError(t, os.WriteFile(bogus, []byte("not a zip"), 0644))
	_, err = SyncFile(context.Background(), bogus, fileOptions())
	assert.ErrorIs(t, err, ErrInvalidFormat)

	opts := fileOptions()
	opts.Sheets = []string{"Nope"}
	_, err = SyncFile(context.Background(), writeTestWorkbook(t), opts)
	assert.ErrorIs(t, err, ErrUnknownSheet)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = SyncFile(ctx, writeTestWorkbook(t), fileOptions())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSyncFile_Fixture(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grid.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`name: demo
sheets:
  - name: Variables
    cells:
      A1: wall thickness
      B1: 5 mm
`), 0644))

	report, err := SyncFile(context.Background(), path, fileOptions())
	require.NoError(t, err)
	assert.Equal(t, 1, report.Total)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	doc, err := grid.LoadFixture(f)
	require.NoError(t, err)
	sheet, ok := doc.Sheet("Variables")
	require.True(t, ok)
	assert.Equal(t, map[string]string{"wall_thickness": "B1"}, sheet.Aliases())
}
