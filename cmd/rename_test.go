package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureOutput points the shared UI's writer at a buffer for one test.
func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer

	rootCmd.SetOut(&buf)
	t.Cleanup(func() { rootCmd.SetOut(nil) })

	return &buf
}

func TestRenameDryRunLeavesFilesUntouched(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "铁矿.txt"), []byte("ore"), 0o600))

	buf := captureOutput(t)

	cmd := newRenameCmd()
	cmd.SetArgs([]string{dir, "--dry-run"})
	require.NoError(t, cmd.Execute())

	assert.FileExists(t, filepath.Join(dir, "铁矿.txt"))
	assert.NoFileExists(t, filepath.Join(dir, "Iron-Ore.txt"))

	output := buf.String()
	assert.Contains(t, output, "DRY RUN")
	assert.Contains(t, output, "Iron-Ore.txt")
	assert.Contains(t, output, "Would rename")
}

func TestRenameAppliesDictionaryTerms(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "煤.txt"), []byte("coal"), 0o600))

	buf := captureOutput(t)

	cmd := newRenameCmd()
	cmd.SetArgs([]string{dir})
	require.NoError(t, cmd.Execute())

	assert.NoFileExists(t, filepath.Join(dir, "煤.txt"))
	assert.FileExists(t, filepath.Join(dir, "Coal.txt"))

	assert.Contains(t, buf.String(), "Coal.txt")
}

func TestRenameRenamesNestedDirectories(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "蓝图"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "蓝图", "铁矿.txt"), []byte("x"), 0o600))

	captureOutput(t)

	cmd := newRenameCmd()
	cmd.SetArgs([]string{dir})
	require.NoError(t, cmd.Execute())

	assert.FileExists(t, filepath.Join(dir, "Blueprint", "Iron-Ore.txt"))
}

func TestRenameNoCandidates(t *testing.T) {
	dir := t.TempDir()

	buf := captureOutput(t)

	cmd := newRenameCmd()
	cmd.SetArgs([]string{dir})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, buf.String(), "No files or folders with Chinese names found.")
}

func TestRenameRejectsInvalidDirectory(t *testing.T) {
	captureOutput(t)

	cmd := newRenameCmd()
	cmd.SetArgs([]string{filepath.Join(t.TempDir(), "absent")})
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	require.Error(t, cmd.Execute())
}
