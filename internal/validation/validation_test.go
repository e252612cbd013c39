package validation_test

import (
	"os"
	"path/filepath"
	"testing"

	"fjacquet/proposal-search/internal/validation"

	"github.com/stretchr/testify/assert"
)

func TestIsValidExportPath(t *testing.T) {
	tmpDir := t.TempDir()

	existing := filepath.Join(tmpDir, "results.csv")
	err := os.WriteFile(existing, []byte("old"), 0600)
	assert.NoError(t, err)

	input := filepath.Join(tmpDir, "budget.csv")

	tests := []struct {
		name        string
		path        string
		expectError bool
		errContains string
	}{
		{
			name: "New file",
			path: filepath.Join(tmpDir, "new.csv"),
		},
		{
			name: "Existing file is overwritten",
			path: existing,
		},
		{
			name:        "Empty path",
			path:        "  ",
			expectError: true,
			errContains: "must not be empty",
		},
		{
			name:        "Directory",
			path:        tmpDir,
			expectError: true,
			errContains: "is a directory",
		},
		{
			name:        "Input file",
			path:        input,
			expectError: true,
			errContains: "would overwrite input file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validation.IsValidExportPath(tt.path, input, "")
			if tt.expectError {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestIsValidOutputFormat(t *testing.T) {
	tests := []struct {
		format      string
		expectError bool
	}{
		{"text", false},
		{"json", false},
		{"xml", true},
		{"", true},
		{"JSON", true},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			err := validation.IsValidOutputFormat(tt.format)
			if tt.expectError {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "unsupported output format")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestIsValidExportPath_SameFileThroughLink(t *testing.T) {
	tmpDir := t.TempDir()

	input := filepath.Join(tmpDir, "budget.csv")
	err := os.WriteFile(input, []byte("category\n"), 0600)
	assert.NoError(t, err)

	link := filepath.Join(tmpDir, "alias.csv")
	if err := os.Symlink(input, link); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	err = validation.IsValidExportPath(link, input)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "would overwrite input file")
}
