// Generate command: send a finalized schema to the generation service.
package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/stencil/internal/generate"
)

var (
	generatePrompt   string
	generateCount    int
	generateEndpoint string
)

var generateCmd = &cobra.Command{
	Use:   "generate <schema-id>",
	Short: "Generate data instances from a schema",
	Long: `Generate sends the schema, a natural-language prompt, and a requested
item count to the configured generation service and prints the items it
returns. The endpoint comes from --endpoint or the generate_endpoint key
in config.yaml.

Example:
  stencil generate <schema-id> --prompt "realistic German customers" --count 10`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&generatePrompt, "prompt", "", "natural-language generation prompt")
	generateCmd.Flags().IntVar(&generateCount, "count", 5, "number of items to generate")
	generateCmd.Flags().StringVar(&generateEndpoint, "endpoint", "", "generation service URL (overrides config)")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	s, err := loadSchema(args[0])
	if err != nil {
		return err
	}

	endpoint := generateEndpoint
	if endpoint == "" {
		endpoint, err = configuredGenerateEndpoint()
		if err != nil {
			return err
		}
	}

	client := generate.NewClient(endpoint)
	ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
	defer cancel()

	result, err := client.Generate(ctx, generate.Request{
		Schema: s,
		Prompt: generatePrompt,
		Count:  generateCount,
	})
	if err != nil {
		return err
	}

	if flagJSON {
		return printJSON(result.Items)
	}
	fmt.Printf("Generated %d items\n", len(result.Items))
	return printJSON(result.Items)
}
