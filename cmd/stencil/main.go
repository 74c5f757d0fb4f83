// Package main provides the stencil CLI: compose JSON schemas from
// templates, edit fields anywhere in the tree, preview the JSON an
// instance would produce, and hand finalized schemas to the generation
// service.
// See docs/ARCHITECTURE.md § CLI.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitUserError)
	}
}
