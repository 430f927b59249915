// Package config provides Viper-based hierarchical configuration management
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"pickman/inventory-index/internal/impexp"
)

// AppDirName is the per-user directory holding config and inventory.
const AppDirName = ".pickman"

// Styles accepted by view.style.
var validStyles = map[string]bool{
	"auto":  true,
	"dark":  true,
	"light": true,
	"notty": true,
	"ascii": true,
}

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Data struct {
		Directory     string `mapstructure:"directory" yaml:"directory"`
		InventoryFile string `mapstructure:"inventory_file" yaml:"inventory_file"`
	} `mapstructure:"data" yaml:"data"`

	UEX struct {
		BaseURL        string `mapstructure:"base_url" yaml:"base_url"`
		TimeoutSeconds int    `mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
		Cache          bool   `mapstructure:"cache" yaml:"cache"`
		CacheDir       string `mapstructure:"cache_dir" yaml:"cache_dir"`
	} `mapstructure:"uex" yaml:"uex"`

	View struct {
		OwnedOnly bool   `mapstructure:"owned_only" yaml:"owned_only"`
		Style     string `mapstructure:"style" yaml:"style"`
	} `mapstructure:"view" yaml:"view"`

	Export struct {
		DefaultFormat string `mapstructure:"default_format" yaml:"default_format"`
	} `mapstructure:"export" yaml:"export"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading
func InitializeConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/" + AppDirName)
	v.AddConfigPath(AppDirName)
	v.AddConfigPath(".")
	return load(v)
}

// InitializeConfigFile loads configuration from an explicit file, still
// applying defaults and environment overrides.
func InitializeConfigFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	// 1. Set defaults
	setDefaults(v)

	// 2. Environment variables
	v.SetEnvPrefix("PICKMAN")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 3. Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Continue with defaults and env vars
			fmt.Fprintf(os.Stderr, "Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 4. Validate configuration
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("data.directory", "")
	v.SetDefault("data.inventory_file", "inventory.json")

	v.SetDefault("uex.base_url", "https://api.uexcorp.uk/2.0")
	v.SetDefault("uex.timeout_seconds", 15)
	v.SetDefault("uex.cache", false)
	v.SetDefault("uex.cache_dir", "")

	v.SetDefault("view.owned_only", true)
	v.SetDefault("view.style", "auto")

	v.SetDefault("export.default_format", "json")
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if strings.TrimSpace(config.Data.InventoryFile) == "" {
		return fmt.Errorf("data.inventory_file must not be empty")
	}

	if config.UEX.TimeoutSeconds < 1 || config.UEX.TimeoutSeconds > 300 {
		return fmt.Errorf("uex.timeout_seconds must be between 1 and 300, got: %d", config.UEX.TimeoutSeconds)
	}

	if !validStyles[config.View.Style] {
		return fmt.Errorf("invalid view style: %s (must be auto, dark, light, notty or ascii)", config.View.Style)
	}

	if _, err := impexp.ParseFormat(config.Export.DefaultFormat); err != nil {
		return fmt.Errorf("invalid export.default_format: %w", err)
	}

	return nil
}

// DataDir returns the directory holding the inventory, defaulting to
// ~/.pickman.
func (c *Config) DataDir() string {
	if c.Data.Directory != "" {
		return c.Data.Directory
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return AppDirName
	}
	return filepath.Join(home, AppDirName)
}

// InventoryPath returns the location of the inventory ledger file.
func (c *Config) InventoryPath() string {
	if filepath.IsAbs(c.Data.InventoryFile) {
		return c.Data.InventoryFile
	}
	return filepath.Join(c.DataDir(), c.Data.InventoryFile)
}

// UEXTimeout returns the UEX request timeout.
func (c *Config) UEXTimeout() time.Duration {
	return time.Duration(c.UEX.TimeoutSeconds) * time.Second
}

// ConfigureLoggingFromConfig configures logging based on the Config struct
func ConfigureLoggingFromConfig(config *Config) *logrus.Logger {
	logger := logrus.New()

	logLevel, err := logrus.ParseLevel(strings.ToLower(config.Log.Level))
	if err != nil {
		logger.Warnf("Invalid log level '%s', using 'info'", config.Log.Level)
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	if strings.ToLower(config.Log.Format) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger
}
