// Package validation checks user-supplied paths before the pipeline runs.
package validation

import (
	"fmt"
	"path/filepath"
	"strings"

	"gigbook/gig-import/internal/fileutils"
)

// IsValidInputFile checks that the given path exists and is a regular file.
func IsValidInputFile(path string) error {
	if fileutils.DirectoryExists(path) {
		return fmt.Errorf("input path is a directory, not a file: %s", path)
	}
	if !fileutils.FileExists(path) {
		return fmt.Errorf("input file does not exist: %s", path)
	}
	return nil
}

// IsValidReportPath checks that a report can be written at the given path:
// the parent directory must exist and the extension must be .csv.
func IsValidReportPath(path string) error {
	if strings.ToLower(filepath.Ext(path)) != ".csv" {
		return fmt.Errorf("report file must have a .csv extension: %s", path)
	}

	dir := filepath.Dir(path)
	if !fileutils.DirectoryExists(dir) {
		return fmt.Errorf("report directory does not exist: %s", dir)
	}
	return nil
}
