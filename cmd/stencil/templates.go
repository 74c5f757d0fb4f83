// Templates command: list the built-in schema templates.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/stencil/pkg/catalog"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List the built-in schema templates",
	RunE:  runTemplates,
}

func runTemplates(cmd *cobra.Command, args []string) error {
	templates := catalog.Templates()

	if flagJSON {
		type entry struct {
			Name        string `json:"name"`
			Description string `json:"description"`
		}
		entries := make([]entry, len(templates))
		for i, t := range templates {
			entries[i] = entry{Name: t.Name, Description: t.Description}
		}
		return printJSON(entries)
	}

	for _, t := range templates {
		fmt.Printf("%-12s %s\n", t.Name, t.Description)
	}
	return nil
}
