package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "hexgrid",
	Short:        "Inspect and convert hexagonal grid cells",
	SilenceUsage: true, // don't print usage on operational errors
	Long: `hexgrid works with the hierarchical hexagonal grid from the command
line: inspect cell indexes, walk the hierarchy, and cover geometries
with cells at a chosen resolution.`,
}

// Execute is called by main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
