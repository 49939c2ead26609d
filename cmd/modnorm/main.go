package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"modnorm/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "modnorm",
	Short: "Normalize declaration modifiers in Java sources",
	Long:  "modnorm removes modifiers implied by context and fixes modifier order, without changing what the code means.",
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(normalizeCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Int("jobs", 0, "parallel workers for directory runs (0 = all cores)")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to show per file")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
