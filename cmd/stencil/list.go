// List command: enumerate stored schema documents.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored schema documents",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	schemas, err := store.List()
	if err != nil {
		return fmt.Errorf("list schemas: %w", err)
	}

	if flagJSON {
		return printJSON(schemas)
	}

	if len(schemas) == 0 {
		fmt.Println("No schemas. Create one with 'stencil new'.")
		return nil
	}
	for _, s := range schemas {
		fmt.Printf("%s  %-20s %2d fields  updated %s\n",
			s.SchemaID, s.Name, len(s.Fields), s.UpdatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}
