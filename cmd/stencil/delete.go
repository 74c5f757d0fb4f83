// Delete command: remove a schema document.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/stencil/pkg/types"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <schema-id>",
	Short: "Delete a schema document",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

func runDelete(cmd *cobra.Command, args []string) error {
	id := args[0]
	if err := store.Delete(id); err != nil {
		if err == types.ErrNotFound {
			return fmt.Errorf("schema %q not found (run 'stencil list')", id)
		}
		return fmt.Errorf("delete schema: %w", err)
	}
	fmt.Printf("Deleted schema %s\n", id)
	return nil
}
