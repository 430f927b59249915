// Package container provides dependency injection for the inventory index.
// It centralizes the creation and wiring of all application dependencies,
// making them explicit and testable.
package container

import (
	"context"
	"fmt"

	"pickman/inventory-index/internal/config"
	"pickman/inventory-index/internal/impexp"
	"pickman/inventory-index/internal/inventory"
	"pickman/inventory-index/internal/logging"
	"pickman/inventory-index/internal/store"
	"pickman/inventory-index/internal/uex"
)

// Container holds all application dependencies and provides methods to access them.
//
// Container is immutable after creation - all fields are private and can only
// be accessed through getter methods.
type Container struct {
	logger  logging.Logger
	config  *config.Config
	store   *store.InventoryStore
	client  *uex.Client
	merger  *impexp.Merger
	session *inventory.Session
}

// NewContainer creates and wires all application dependencies. The ledger
// is loaded from disk; the catalog is not fetched until LoadCatalog is called.
func NewContainer(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	logger := logging.NewLogrusAdapterFromLogger(config.ConfigureLoggingFromConfig(cfg))
	return NewContainerWithLogger(cfg, logger)
}

// NewContainerWithLogger is NewContainer with a caller-supplied logger.
func NewContainerWithLogger(cfg *config.Config, logger logging.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	inventoryStore := store.NewInventoryStore(cfg.InventoryPath(), logger)
	inventoryStore.Load()

	var opts []uex.Option
	if cfg.UEX.Cache {
		opts = append(opts, uex.WithDailyCache(cfg.UEX.CacheDir))
	}
	client := uex.NewClient(cfg.UEX.BaseURL, cfg.UEXTimeout(), logger, opts...)

	format, err := impexp.ParseFormat(cfg.Export.DefaultFormat)
	if err != nil {
		return nil, fmt.Errorf("invalid export format: %w", err)
	}
	merger := impexp.NewMerger(inventoryStore, logger, format)

	session := inventory.NewSession(inventoryStore, logger)

	logger.Debug("Container initialized successfully",
		logging.F(logging.FieldFile, inventoryStore.Path()),
		logging.F("uex_cache", cfg.UEX.Cache))

	return &Container{
		logger:  logger,
		config:  cfg,
		store:   inventoryStore,
		client:  client,
		merger:  merger,
		session: session,
	}, nil
}

// LoadCatalog refreshes the session catalog, from catalogFile when set or
// from the UEX API otherwise.
func (c *Container) LoadCatalog(ctx context.Context, catalogFile string) error {
	var (
		cat uex.Catalog
		err error
	)
	if catalogFile != "" {
		cat, err = uex.LoadFile(catalogFile)
	} else {
		cat, err = c.client.FetchCatalog(ctx)
	}
	if err != nil {
		return err
	}
	c.session.Refresh(cat.Items, cat.Categories)
	return nil
}

// GetLogger returns the logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the configuration.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetStore returns the inventory store.
func (c *Container) GetStore() *store.InventoryStore {
	return c.store
}

// GetClient returns the UEX client.
func (c *Container) GetClient() *uex.Client {
	return c.client
}

// GetMerger returns the import/export merger.
func (c *Container) GetMerger() *impexp.Merger {
	return c.merger
}

// GetSession returns the inventory session.
func (c *Container) GetSession() *inventory.Session {
	return c.session
}
