// Package container provides dependency injection for proposal-search.
// It builds the logger, the data store, the category mapping and the
// proposal index once at startup.
package container

import (
	"fmt"
	"os"

	"fjacquet/proposal-search/internal/config"
	"fjacquet/proposal-search/internal/index"
	"fjacquet/proposal-search/internal/logging"
	"fjacquet/proposal-search/internal/store"
	"fjacquet/proposal-search/internal/taxonomy"
)

// Container holds the application dependencies. It is immutable after
// creation; a failed load never yields a partially built container.
type Container struct {
	logger   logging.Logger
	config   *config.Config
	store    *store.ProposalStore
	mapping  taxonomy.Mapping
	proposal *index.Index
}

// NewContainer wires all dependencies from cfg, logging to stderr.
func NewContainer(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	logger := logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format)
	if adapter, ok := logger.(*logging.LogrusAdapter); ok {
		adapter.SetOutput(os.Stderr)
	}
	return NewContainerWithLogger(cfg, logger)
}

// NewContainerWithLogger wires all dependencies using the given logger.
func NewContainerWithLogger(cfg *config.Config, logger logging.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	proposalStore := store.NewProposalStore(
		cfg.Data.ProposalsFile,
		cfg.Data.CategoriesFile,
		cfg.Delimiter(),
		cfg.CSV.Encoding,
		logger,
	)

	mapping, err := proposalStore.LoadTaxonomy()
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}

	proposals, err := proposalStore.LoadProposals()
	if err != nil {
		return nil, fmt.Errorf("failed to load proposals: %w", err)
	}

	idx := index.New(proposals, logger)

	logger.Debug("Container initialized successfully",
		logging.F("proposals", idx.Len()),
		logging.F("category_values", mapping.Len()))

	return &Container{
		logger:   logger,
		config:   cfg,
		store:    proposalStore,
		mapping:  mapping,
		proposal: idx,
	}, nil
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetStore returns the data store.
func (c *Container) GetStore() *store.ProposalStore {
	return c.store
}

// GetCategoryMapping returns the flattened taxonomy.
func (c *Container) GetCategoryMapping() taxonomy.Mapping {
	return c.mapping
}

// GetIndex returns the proposal index.
func (c *Container) GetIndex() *index.Index {
	return c.proposal
}
