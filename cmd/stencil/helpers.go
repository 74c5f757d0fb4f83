// Shared helpers for stencil CLI commands.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/mesh-intelligence/stencil/pkg/types"
)

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(output))
	return nil
}

// loadSchema fetches a schema document by id with a CLI-friendly error.
func loadSchema(id string) (*types.Schema, error) {
	s, err := store.Get(id)
	if err != nil {
		if err == types.ErrNotFound {
			return nil, fmt.Errorf("schema %q not found (run 'stencil list')", id)
		}
		return nil, fmt.Errorf("get schema: %w", err)
	}
	return s, nil
}

// collapsedSet converts repeated --collapse flag values into the renderer's
// collapsed-id set.
func collapsedSet(ids []string) map[string]bool {
	if len(ids) == 0 {
		return nil
	}
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}
