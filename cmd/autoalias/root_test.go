package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/autoalias-go/pkg/autoalias/models"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestNormalizeCommand(t *testing.T) {
	out, err := execute(t, "normalize", "wall", "thickness")
	require.NoError(t, err)
	assert.Equal(t, "wall_thickness\n", out)

	out, err = execute(t, "normalize", "--camel", "größe außen")
	require.NoError(t, err)
	assert.Equal(t, "groesseAussen\n", out)

	_, err = execute(t, "normalize")
	assert.Error(t, err)
}

func TestSyncCommand_Fixture(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	input := filepath.Join(dir, "grid.yaml")
	require.NoError(t, os.WriteFile(input, []byte(`name: demo
sheets:
  - name: Variables
    cells:
      A1: wall thickness
      B1: 5 mm
      A2: wall thickness
      B2: 8 mm
`), 0644))
	reportPath := filepath.Join(dir, "report.json")

	out, err := execute(t, "sync", input, "--config", cfgPath, "--format", "json", "--report", reportPath)
	require.NoError(t, err)

	var report models.WorkbookReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, 2, report.Total)
	assert.Equal(t, "grid.yaml", report.BookName)
	require.Len(t, report.Sheets, 1)
	assert.Equal(t, "wall_thickness2", report.Sheets[0].Bindings[1].Alias)

	saved, err := os.ReadFile(reportPath)
	require.NoError(t, err)
	assert.Contains(t, string(saved), `"total":2`)

	out, err = execute(t, "sync", input, "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "grid.yaml: 0 alias(es) updated")
}

func TestSyncCommand_Errors(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")

	_, err := execute(t, "sync", filepath.Join(dir, "missing.xlsx"), "--config", cfgPath)
	require.Error(t, err)
	assert.Equal(t, exitCommandError, exitCode(err))

	_, err = execute(t, "sync", filepath.Join(dir, "missing.xlsx"), "--config", cfgPath, "--format", "xml")
	require.Error(t, err)
	assert.Equal(t, exitCommandError, exitCode(err))

	require.NoError(t, os.WriteFile(cfgPath, []byte("fallback_rows: 0\n"), 0644))
	_, err = execute(t, "sync", filepath.Join(dir, "missing.xlsx"), "--config", cfgPath)
	require.Error(t, err)
	assert.Equal(t, exitCommandError, exitCode(err))
}

func TestConfigCommands(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")

	out, err := execute(t, "config", "path", "--config", cfgPath)
	require.NoError(t, err)
	assert.Equal(t, cfgPath+"\n", out)

	out, err = execute(t, "config", "disable", "--config", cfgPath)
	require.NoError(t, err)
	assert.Equal(t, "automatic alias sync disabled\n", out)

	out, err = execute(t, "config", "show", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "auto_alias_enabled: false")

	out, err = execute(t, "config", "toggle", "--config", cfgPath)
	require.NoError(t, err)
	assert.Equal(t, "automatic alias sync enabled\n", out)

	out, err = execute(t, "config", "enable", "--config", cfgPath)
	require.NoError(t, err)
	assert.Equal(t, "automatic alias sync enabled\n", out)
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, exitFailure, exitCode(assert.AnError))
	assert.Equal(t, exitCommandError, exitCode(commandError("bad %s", "input")))
}
