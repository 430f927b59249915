package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"pickman/inventory-index/cmd/categories"
	"pickman/inventory-index/cmd/export"
	"pickman/inventory-index/cmd/importer"
	"pickman/inventory-index/cmd/list"
	"pickman/inventory-index/cmd/root"
	"pickman/inventory-index/cmd/set"
	"pickman/inventory-index/cmd/totals"
)

func init() {
	// Environment first so PICKMAN_* overrides are visible to viper.
	loadEnvSilently()

	root.Init()

	root.Cmd.AddCommand(list.Cmd)
	root.Cmd.AddCommand(set.Cmd)
	root.Cmd.AddCommand(totals.Cmd)
	root.Cmd.AddCommand(categories.Cmd)
	root.Cmd.AddCommand(export.Cmd)
	root.Cmd.AddCommand(importer.Cmd)
}

// loadEnvSilently loads environment variables without logging anything
func loadEnvSilently() {
	envFile := ".env"
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		envFile = filepath.Join("..", ".env")
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			return
		}
	}
	_ = godotenv.Load(envFile)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
