// Package container provides dependency injection for the txlabel application.
// It centralizes the creation and wiring of all application dependencies,
// making them explicit and testable.
package container

import (
	"fmt"

	"fjacquet/txlabel/internal/config"
	"fjacquet/txlabel/internal/logging"
	"fjacquet/txlabel/internal/store"
	"fjacquet/txlabel/pkg/processor"
)

// Container holds all application dependencies and provides methods to access them.
// Fields are private and only exposed through getters.
type Container struct {
	logger     logging.Logger
	config     *config.Config
	store      *store.RuleStore
	loadResult store.LoadResult
	processor  *processor.Processor
}

// NewContainer creates and wires all application dependencies, logging
// through a logger built from cfg.
func NewContainer(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	return NewContainerWithLogger(cfg, config.ConfigureLogging(cfg))
}

// NewContainerWithLogger is NewContainer with an explicit logger.
//
// The rule database is loaded once here. When rules.init_missing is set and
// the file does not exist, the default rules are written to it.
func NewContainerWithLogger(cfg *config.Config, logger logging.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	logger = logging.OrDefault(logger)

	ruleStore := store.NewRuleStore(cfg.Rules.File, logger)

	load := ruleStore.Load
	if cfg.Rules.InitMissing {
		load = ruleStore.LoadOrInit
	}
	result, err := load()
	if err != nil {
		return nil, fmt.Errorf("failed to load rule database: %w", err)
	}

	proc := processor.NewProcessor(ruleStore, result.DB, cfg.DelimiterRune(), logger)

	logger.Debug("Container initialized successfully",
		logging.Field{Key: logging.FieldFile, Value: result.Path},
		logging.Field{Key: "rules_count", Value: result.DB.Len()},
		logging.Field{Key: "used_defaults", Value: result.UsedDefaults})

	return &Container{
		logger:     logger,
		config:     cfg,
		store:      ruleStore,
		loadResult: result,
		processor:  proc,
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

// GetStore returns the rule store.
func (c *Container) GetStore() *store.RuleStore {
	return c.store
}

// GetProcessor returns the processor wired to the loaded rule database.
func (c *Container) GetProcessor() *processor.Processor {
	return c.processor
}

// LoadResult reports how the rule database was obtained at startup.
func (c *Container) LoadResult() store.LoadResult {
	return c.loadResult
}

// Close performs cleanup of container resources.
func (c *Container) Close() error {
	c.logger.Debug("Container closed")
	return nil
}
