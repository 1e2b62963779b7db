package validation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidInputFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "input.csv")
	require.NoError(t, os.WriteFile(path, []byte("a,b\n"), 0644))

	assert.NoError(t, IsValidInputFile(path))
	assert.Error(t, IsValidInputFile(filepath.Join(dir, "missing.csv")))
	assert.Error(t, IsValidInputFile(dir))
}

func TestIsValidReportPath(t *testing.T) {
	dir := t.TempDir()

	assert.NoError(t, IsValidReportPath(filepath.Join(dir, "report.csv")))
	assert.NoError(t, IsValidReportPath(filepath.Join(dir, "report.CSV")))
	assert.Error(t, IsValidReportPath(filepath.Join(dir, "report.txt")))
	assert.Error(t, IsValidReportPath(filepath.Join(dir, "nope", "report.csv")))
}
