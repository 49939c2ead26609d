package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"modnorm/internal/driver"
	"modnorm/internal/preview"
)

var previewCmd = &cobra.Command{
	Use:   "preview [flags] <file.java|directory>",
	Short: "Show which refactorings would apply, without writing",
	Long:  "Run the normalization passes in memory and list the applied refactoring descriptions per compilation unit.",
	Args:  cobra.ExactArgs(1),
	RunE:  runPreview,
}

func init() {
	previewCmd.Flags().String("select", "", "only show units whose name matches the selected element")
}

func runPreview(cmd *cobra.Command, args []string) error {
	targetPath := args[0]

	selected, err := cmd.Flags().GetString("select")
	if err != nil {
		return err
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return err
	}
	jobs, err := cmd.Root().PersistentFlags().GetInt("jobs")
	if err != nil {
		return err
	}

	opts := &driver.Options{
		MaxDiagnostics: maxDiagnostics,
		Jobs:           jobs,
		Write:          false,
	}

	info, err := os.Stat(targetPath)
	if err != nil {
		return fmt.Errorf("preview: %w", err)
	}

	var results []*driver.FileResult
	if info.IsDir() {
		results, err = driver.NormalizeDir(cmd.Context(), targetPath, opts)
	} else {
		var res *driver.FileResult
		res, err = driver.NormalizeFile(cmd.Context(), targetPath, opts)
		results = []*driver.FileResult{res}
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for i, res := range results {
		if res == nil {
			continue
		}
		if i > 0 {
			fmt.Fprintln(out)
		}
		entries := preview.Summary(res.Descriptions, res.UnitName, selected)
		if res.UnitName != "" {
			fmt.Fprintln(out, preview.RenderUnit(res.UnitName, entries))
		} else {
			fmt.Fprintln(out, preview.Render(entries))
		}
	}
	return nil
}
