// Field commands: structural edits on a schema's field tree. Every edit
// goes through the copy-on-write tree operations and the resulting tree
// replaces the document wholesale on save.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/stencil/pkg/types"
)

var (
	fieldUpdateName     string
	fieldUpdateRequired string // "true", "false", or "" (no change)
)

var fieldCmd = &cobra.Command{
	Use:   "field",
	Short: "Edit fields within a schema document",
}

var fieldUpdateCmd = &cobra.Command{
	Use:   "update <schema-id> <field-id>",
	Short: "Update a field anywhere in the schema tree",
	Long: `Update locates the field by id anywhere in the tree (top level, object
children, or array item chains of any depth) and replaces it with the
edited copy. Untouched subtrees are carried over unchanged.

Example:
  stencil field update <schema-id> <field-id> --name nickname
  stencil field update <schema-id> <field-id> --required=false`,
	Args: cobra.ExactArgs(2),
	RunE: runFieldUpdate,
}

var fieldRemoveCmd = &cobra.Command{
	Use:   "remove <schema-id> <field-id>",
	Short: "Remove a field anywhere in the schema tree",
	Long: `Remove deletes the field by id from wherever it lives: a top-level
list, an object's children, or an array's item slot. Removing an array's
item leaves the array without an element type.`,
	Args: cobra.ExactArgs(2),
	RunE: runFieldRemove,
}

func init() {
	fieldUpdateCmd.Flags().StringVar(&fieldUpdateName, "name", "", "new field name")
	fieldUpdateCmd.Flags().StringVar(&fieldUpdateRequired, "required", "", "set required: true or false")

	fieldCmd.AddCommand(fieldUpdateCmd)
	fieldCmd.AddCommand(fieldRemoveCmd)
}

func runFieldUpdate(cmd *cobra.Command, args []string) error {
	schemaID, fieldID := args[0], args[1]

	if fieldUpdateName == "" && fieldUpdateRequired == "" {
		return fmt.Errorf("nothing to update: pass --name and/or --required")
	}
	required, err := parseRequiredFlag(fieldUpdateRequired)
	if err != nil {
		return err
	}

	s, err := loadSchema(schemaID)
	if err != nil {
		return err
	}
	if types.FindField(s.Fields, fieldID) == nil {
		return fmt.Errorf("field %q not found in schema %q", fieldID, schemaID)
	}

	newFields := types.UpdateField(s.Fields, fieldID, func(f *types.SchemaField) *types.SchemaField {
		cp := *f
		if fieldUpdateName != "" {
			cp.Name = fieldUpdateName
		}
		if required != nil {
			cp.Logic = types.WithRequired(f.Kind, f.Logic, *required)
		}
		return &cp
	})

	if _, err := store.Save(s.WithFields(newFields)); err != nil {
		return fmt.Errorf("save schema: %w", err)
	}
	fmt.Printf("Updated field %s in schema %s\n", fieldID, schemaID)
	return nil
}

func runFieldRemove(cmd *cobra.Command, args []string) error {
	schemaID, fieldID := args[0], args[1]

	s, err := loadSchema(schemaID)
	if err != nil {
		return err
	}
	if types.FindField(s.Fields, fieldID) == nil {
		return fmt.Errorf("field %q not found in schema %q", fieldID, schemaID)
	}

	newFields := types.RemoveField(s.Fields, fieldID)
	if _, err := store.Save(s.WithFields(newFields)); err != nil {
		return fmt.Errorf("save schema: %w", err)
	}
	fmt.Printf("Removed field %s from schema %s\n", fieldID, schemaID)
	return nil
}

// parseRequiredFlag converts the tri-state --required value; nil means
// no change.
func parseRequiredFlag(v string) (*bool, error) {
	switch v {
	case "":
		return nil, nil
	case "true":
		t := true
		return &t, nil
	case "false":
		f := false
		return &f, nil
	default:
		return nil, fmt.Errorf("invalid --required value %q (expected true or false)", v)
	}
}
