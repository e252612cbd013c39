package container

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"fjacquet/proposal-search/internal/config"
	"fjacquet/proposal-search/internal/index"
	"fjacquet/proposal-search/internal/logging"
	"fjacquet/proposal-search/internal/searcherror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFixtures(t *testing.T, dir, csvContent, taxonomyContent string) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.Data.ProposalsFile = filepath.Join(dir, "budget.csv")
	cfg.Data.CategoriesFile = filepath.Join(dir, "bucket.json")
	require.NoError(t, os.WriteFile(cfg.Data.ProposalsFile, []byte(csvContent), 0600))
	require.NoError(t, os.WriteFile(cfg.Data.CategoriesFile, []byte(taxonomyContent), 0600))
	return cfg
}

const fixtureCSV = `category,who,result,full_name,time_place,cost,content
A,Alice,Approved,Dept1,,,road repair
B,Bob,Rejected,Dept2,,,
`

const fixtureTaxonomy = `{"categories": [{"A": ["road"]}, {"B": ["park"]}]}`

func TestNewContainer_NilConfig(t *testing.T) {
	_, err := NewContainer(nil)
	assert.EqualError(t, err, "configuration cannot be nil")

	_, err = NewContainerWithLogger(config.Default(), nil)
	assert.EqualError(t, err, "logger cannot be nil")
}

func TestNewContainer_Wiring(t *testing.T) {
	cfg := writeFixtures(t, t.TempDir(), fixtureCSV, fixtureTaxonomy)
	logger := logging.NewMockLogger()

	c, err := NewContainerWithLogger(cfg, logger)
	require.NoError(t, err)

	assert.Same(t, cfg, c.GetConfig())
	assert.Equal(t, logging.Logger(logger), c.GetLogger())
	assert.Equal(t, cfg.Data.ProposalsFile, c.GetStore().ProposalsFile)
	assert.Equal(t, 2, c.GetIndex().Len())

	key, ok := c.GetCategoryMapping().Lookup("park")
	require.True(t, ok)
	assert.Equal(t, "B", key)

	matches := c.GetIndex().SearchProposals(index.Filters{Category: "A"})
	require.Len(t, matches, 1)
	assert.Equal(t, "Alice", matches[0].Who.String())
	assert.True(t, logger.HasEntry("DEBUG", "Container initialized successfully"))
}

func TestNewContainer_LoadFailuresAbort(t *testing.T) {
	tests := []struct {
		name      string
		csv       string
		taxonomy  string
		malformed bool
	}{
		{"malformed taxonomy", fixtureCSV, `{"categories": 3}`, true},
		{"malformed table", "category,who\nA,Alice\n", fixtureTaxonomy, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := writeFixtures(t, t.TempDir(), tt.csv, tt.taxonomy)
			c, err := NewContainerWithLogger(cfg, logging.NewMockLogger())
			require.Error(t, err)
			assert.Nil(t, c)
			assert.Equal(t, tt.malformed, errors.Is(err, searcherror.ErrMalformedInput))
		})
	}
}

func TestNewContainer_MissingFile(t *testing.T) {
	cfg := config.Default()
	cfg.Data.ProposalsFile = filepath.Join(t.TempDir(), "none.csv")
	cfg.Data.CategoriesFile = filepath.Join(t.TempDir(), "none.json")

	c, err := NewContainerWithLogger(cfg, logging.NewMockLogger())
	require.Error(t, err)
	assert.Nil(t, c)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
