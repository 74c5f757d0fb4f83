// Preview command: render the JSON an instance of the schema would produce.
package main

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/stencil/pkg/preview"
)

var (
	previewCollapse []string
	previewSample   bool
)

var previewCmd = &cobra.Command{
	Use:   "preview <schema-id>",
	Short: "Render a deterministic preview of a schema",
	Long: `Preview renders the schema into representative JSON: leaf fields show
a description of their constraints, objects expand their children, and
arrays repeat samples of their element type.

By default arrays render a single sample (compact preview). With --sample
arrays render their full sample count, bounded by min/max items. Container
fields named by --collapse render a short placeholder instead of their
expansion.

Example:
  stencil preview 0190f2d3-...
  stencil preview 0190f2d3-... --sample
  stencil preview 0190f2d3-... --collapse 0190f2d4-...`,
	Args: cobra.ExactArgs(1),
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().StringArrayVar(&previewCollapse, "collapse", nil, "field id to collapse (repeatable)")
	previewCmd.Flags().BoolVar(&previewSample, "sample", false, "render full array sample counts")
}

func runPreview(cmd *cobra.Command, args []string) error {
	s, err := loadSchema(args[0])
	if err != nil {
		return err
	}

	opts := preview.Options{
		Collapsed:  collapsedSet(previewCollapse),
		ForPreview: !previewSample,
	}
	return printJSON(preview.RenderSchema(s.Fields, opts))
}
