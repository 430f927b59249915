// Package root contains the root command for the application
package root

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"pickman/inventory-index/internal/config"
	"pickman/inventory-index/internal/container"
	"pickman/inventory-index/internal/inventory"
	"pickman/inventory-index/internal/logging"
)

// CommonFlags represents the flags that are common to all commands
type CommonFlags struct {
	ConfigFile string
	Inventory  string
	Catalog    string
}

var (
	// Log is the shared logger instance for commands
	Log logging.Logger = logging.NewLogrusAdapter("info", "text")

	// AppContainer holds the dependencies built for the running command
	AppContainer *container.Container

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "pickman",
		Short: "Track an inventory of UEX market items and what it is worth.",
		Long: `pickman keeps a local inventory ledger of Star Citizen market items.
It reconciles the ledger with the UEX market catalog to show listed prices,
your own sell prices, line totals and the overall inventory value, and it
imports and exports the ledger as JSON, YAML, CSV, TSV or XLSX.`,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
		},
	}

	// SharedFlags are accessible to all commands
	SharedFlags = CommonFlags{}
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVar(&SharedFlags.ConfigFile, "config", "", "Config file (default is $HOME/.pickman/config.yaml)")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Inventory, "inventory", "i", "", "Inventory ledger file")
	Cmd.PersistentFlags().StringVar(&SharedFlags.Catalog, "catalog", "", "Read the market catalog from a local JSON file instead of the UEX API")
}

func setup(cmd *cobra.Command, args []string) error {
	config.LoadEnv()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if SharedFlags.Inventory != "" {
		path, err := filepath.Abs(SharedFlags.Inventory)
		if err != nil {
			return fmt.Errorf("invalid inventory path: %w", err)
		}
		cfg.Data.InventoryFile = path
	}

	c, err := container.NewContainer(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	AppContainer = c
	Log = c.GetLogger()
	return nil
}

func loadConfig() (*config.Config, error) {
	if SharedFlags.ConfigFile != "" {
		return config.InitializeConfigFile(SharedFlags.ConfigFile)
	}
	return config.InitializeConfig()
}

// GetContainer returns the application container, or nil before setup ran.
func GetContainer() *container.Container {
	return AppContainer
}

// GetLogger returns the configured logger.
func GetLogger() logging.Logger {
	if AppContainer != nil {
		return AppContainer.GetLogger()
	}
	return Log
}

// LoadSession fetches the market catalog and returns the session bound to
// it.
func LoadSession(ctx context.Context) (*inventory.Session, error) {
	c := GetContainer()
	if c == nil {
		return nil, fmt.Errorf("container not initialized")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if err := c.LoadCatalog(ctx, SharedFlags.Catalog); err != nil {
		return nil, fmt.Errorf("failed to load market catalog: %w", err)
	}
	return c.GetSession(), nil
}
