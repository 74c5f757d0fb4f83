// Init command: create the config and data directories on first run.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/stencil/internal/paths"
	"github.com/mesh-intelligence/stencil/internal/sqlite"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize stencil configuration and storage",
	Long: `Init creates the configuration directory with a default config.yaml
and initializes the schema store in the data directory.`,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	configDir, err := paths.ResolveConfigDir(flagConfigDir)
	if err != nil {
		return fmt.Errorf("resolve config dir: %w", err)
	}
	if _, err := loadConfig(configDir); err != nil {
		return err
	}

	cfg, err := resolveStoreConfig()
	if err != nil {
		return err
	}

	// Attach once so the data directory and schemas.jsonl exist.
	backend := sqlite.NewBackend()
	if err := backend.Attach(cfg); err != nil {
		return fmt.Errorf("initialize store: %w", err)
	}
	if err := backend.Detach(); err != nil {
		return fmt.Errorf("detach store: %w", err)
	}

	fmt.Printf("Initialized stencil\n  config: %s\n  data:   %s\n", configDir, cfg.DataDir)
	return nil
}
