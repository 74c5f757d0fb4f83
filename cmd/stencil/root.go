// Root command for the stencil CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/stencil/internal/sqlite"
	"github.com/mesh-intelligence/stencil/pkg/stencil"
	"github.com/mesh-intelligence/stencil/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagJSON      bool
)

// store is the global Store instance, attached by PersistentPreRunE for
// commands that touch persistence.
var store types.Store

// storelessCommands do not need an attached store.
var storelessCommands = map[string]bool{
	"version":   true,
	"templates": true,
	"help":      true,
	"init":      true,
}

var rootCmd = &cobra.Command{
	Use:     "stencil",
	Short:   "Stencil composes JSON schemas and previews their output",
	Version: stencil.Version,
	Long: `Stencil is a JSON schema composer. Seed a schema from a template,
edit fields anywhere in the tree, preview the JSON an instance of the
schema would produce, and send finalized schemas to a generation service.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if storelessCommands[cmd.Name()] {
			return nil
		}
		return attachStore()
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return detachStore()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: .stencil-db)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output in JSON format")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(templatesCmd)
	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(fieldCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(generateCmd)
}

// attachStore loads config, resolves directories, and attaches the SQLite
// backend to the global store.
func attachStore() error {
	cfg, err := resolveStoreConfig()
	if err != nil {
		return err
	}

	backend := sqlite.NewBackend()
	if err := backend.Attach(cfg); err != nil {
		return err
	}
	store = backend
	return nil
}

// detachStore releases the store if one was attached.
func detachStore() error {
	if store != nil {
		return store.Detach()
	}
	return nil
}
