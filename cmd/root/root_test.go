package root_test

import (
	"testing"

	"fjacquet/proposal-search/cmd/root"
	"fjacquet/proposal-search/internal/config"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
)

func init() {
	root.Init()
}

func TestRootCommand_Metadata(t *testing.T) {
	assert.Equal(t, "proposal-search", root.Cmd.Use)
	assert.Contains(t, root.Cmd.Short, "search budget proposals")
	assert.Contains(t, root.Cmd.Long, "loads a table of budget proposals")
	assert.NotNil(t, root.Cmd.Run)
	assert.NotNil(t, root.Cmd.PersistentPreRunE)
}

func TestRootCommand_Flags(t *testing.T) {
	tests := []struct {
		name      string
		shorthand string
	}{
		{"proposals", "p"},
		{"categories", "c"},
		{"output", "o"},
		{"format", ""},
		{"log-level", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var flag *pflag.Flag = root.Cmd.PersistentFlags().Lookup(tt.name)
			if assert.NotNil(t, flag) {
				assert.Equal(t, tt.shorthand, flag.Shorthand)
				assert.Equal(t, "", flag.DefValue)
				assert.NotEmpty(t, flag.Usage)
			}
		})
	}
}

func TestApplyFlags(t *testing.T) {
	cfg := config.Default()
	root.ApplyFlags(cfg, root.CommonFlags{})
	assert.Equal(t, config.Default(), cfg)

	root.ApplyFlags(cfg, root.CommonFlags{
		ProposalsFile:  "other.csv",
		CategoriesFile: "other.yaml",
		Format:         "json",
		LogLevel:       "debug",
	})
	assert.Equal(t, "other.csv", cfg.Data.ProposalsFile)
	assert.Equal(t, "other.yaml", cfg.Data.CategoriesFile)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.Equal(t, "debug", cfg.Log.Level)
}
