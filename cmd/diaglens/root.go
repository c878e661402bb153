package main

import (
	"github.com/spf13/cobra"
)

var (
	verbose bool
	quiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "diaglens",
	Short: "Diaglens - interactive viewer for static-analyzer diagnostics",
	Long: `Diaglens browses the structured diagnostic dumps a static analyzer emits:
per-module error lists and variable-binding traces, each record pinned to a
line:column source range.

Queries combine a location range with free text, e.g. "8" (line 8),
"1:2-3:4 unbound" (a range plus a message substring), or bare words for a
pure text search.`,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Quiet mode (errors only)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
