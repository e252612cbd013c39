// Package validation checks user-supplied output settings.
package validation

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Output formats accepted for console output.
var OutputFormats = []string{"text", "json"}

// IsValidOutputFormat checks if the given format is supported.
func IsValidOutputFormat(format string) error {
	for _, f := range OutputFormats {
		if format == f {
			return nil
		}
	}
	return fmt.Errorf("unsupported output format: %s. Supported formats are %s", format, quoteList(OutputFormats))
}

// IsValidExportPath checks that path can receive a CSV export: it must not
// be a directory and must not overwrite one of the input files.
func IsValidExportPath(path string, inputs ...string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("export path must not be empty")
	}

	info, err := os.Stat(path)
	switch {
	case err == nil && info.IsDir():
		return fmt.Errorf("export path %s is a directory", path)
	case err == nil && !info.Mode().IsRegular():
		return fmt.Errorf("export path %s is not a regular file", path)
	case err != nil && !os.IsNotExist(err):
		return fmt.Errorf("error checking path %s: %w", path, err)
	}

	target, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("error resolving path %s: %w", path, err)
	}
	for _, input := range inputs {
		if input == "" {
			continue
		}
		if abs, err := filepath.Abs(input); err == nil && abs == target {
			return fmt.Errorf("export path %s would overwrite input file", path)
		}
		// catches links and differently spelled paths to the same file
		if info != nil {
			if inputInfo, err := os.Stat(input); err == nil && os.SameFile(info, inputInfo) {
				return fmt.Errorf("export path %s would overwrite input file %s", path, input)
			}
		}
	}
	return nil
}

func quoteList(items []string) string {
	quoted := make([]string, len(items))
	for i, item := range items {
		quoted[i] = "'" + item + "'"
	}
	return strings.Join(quoted, ", ")
}
