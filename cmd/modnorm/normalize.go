package main

import (
	"context"
	"fmt"
	"os"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"modnorm/internal/cache"
	"modnorm/internal/driver"
	"modnorm/internal/ui"
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize [flags] <file.java|directory>",
	Short: "Remove redundant modifiers and fix modifier order",
	Long:  "Parse each file, stage non-conflicting tree edits, and commit them pass by pass until the source is a fixpoint.",
	Args:  cobra.ExactArgs(1),
	RunE:  runNormalize,
}

func init() {
	normalizeCmd.Flags().Bool("check", false, "report what would change without rewriting files")
	normalizeCmd.Flags().Bool("backup", false, "keep the previous content as .bak next to rewritten files")
	normalizeCmd.Flags().Bool("no-cache", false, "bypass the clean-file result cache")
	normalizeCmd.Flags().Bool("no-ui", false, "disable the progress UI for directory runs")
}

func runNormalize(cmd *cobra.Command, args []string) error {
	targetPath := args[0]

	check, err := cmd.Flags().GetBool("check")
	if err != nil {
		return err
	}
	backupFlag, err := cmd.Flags().GetBool("backup")
	if err != nil {
		return err
	}
	noCache, err := cmd.Flags().GetBool("no-cache")
	if err != nil {
		return err
	}
	noUI, err := cmd.Flags().GetBool("no-ui")
	if err != nil {
		return err
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return err
	}
	jobs, err := cmd.Root().PersistentFlags().GetInt("jobs")
	if err != nil {
		return err
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return err
	}

	cfg, err := loadProjectConfig(".")
	if err != nil {
		return err
	}

	opts := &driver.Options{
		MaxDiagnostics: maxDiagnostics,
		Jobs:           jobs,
		Include:        cfg.Normalize.Include,
		Write:          !check,
		Backup:         backupFlag || cfg.Normalize.Backup,
	}
	if cfg.Normalize.Cache && !noCache {
		if c, err := cache.Open("modnorm"); err == nil {
			opts.Cache = c
		}
	}

	info, err := os.Stat(targetPath)
	if err != nil {
		return fmt.Errorf("normalize: %w", err)
	}
	if !info.IsDir() {
		res, err := driver.NormalizeFile(cmd.Context(), targetPath, opts)
		if err != nil {
			return err
		}
		return reportResults(cmd, []*driver.FileResult{res}, check, quiet)
	}
	return runNormalizeDir(cmd.Context(), cmd, targetPath, opts, check, quiet, noUI)
}

func runNormalizeDir(ctx context.Context, cmd *cobra.Command, dir string, opts *driver.Options, check, quiet, noUI bool) error {
	useUI := !noUI && !quiet && isTerminal(os.Stdout)

	var (
		results []*driver.FileResult
		runErr  error
	)
	if useUI {
		files, err := driver.ListJavaFiles(dir, opts.Include)
		if err != nil {
			return err
		}
		if len(files) == 0 {
			return reportResults(cmd, nil, check, quiet)
		}

		events := make(chan driver.Event, len(files)*4)
		opts.Progress = events

		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			results, runErr = driver.NormalizeDir(ctx, dir, opts)
			close(events)
		}()

		model := ui.NewProgressModel("normalizing "+dir, files, events)
		if _, err := tea.NewProgram(model).Run(); err != nil {
			// Fall back to plain output; the run itself still finishes.
			fmt.Fprintf(os.Stderr, "progress ui failed: %v\n", err)
		}
		wg.Wait()
	} else {
		results, runErr = driver.NormalizeDir(ctx, dir, opts)
	}

	if runErr != nil {
		return runErr
	}
	return reportResults(cmd, results, check, quiet)
}

func reportResults(cmd *cobra.Command, results []*driver.FileResult, check, quiet bool) error {
	out := cmd.OutOrStdout()
	changedColor := color.New(color.FgGreen)
	failedColor := color.New(color.FgRed)

	var changed, failed int
	for _, res := range results {
		if res == nil {
			continue
		}
		switch {
		case res.Err != nil:
			failed++
			failedColor.Fprintf(out, "%s: %v\n", res.Path, res.Err)
		case res.Bag != nil && res.Bag.HasErrors():
			failed++
			printDiagnostics(out, res)
		case res.Changed:
			changed++
			verb := "normalized"
			if check {
				verb = "would normalize"
			}
			changedColor.Fprintf(out, "%s %s (%d passes)\n", verb, res.Path, res.Passes)
			if !quiet {
				for _, d := range res.Descriptions {
					fmt.Fprintf(out, "  %s\n", d)
				}
			}
		}
	}

	if !quiet {
		fmt.Fprintf(out, "%d file(s) checked, %d changed, %d failed\n",
			len(results), changed, failed)
	}
	if failed > 0 {
		return fmt.Errorf("%d file(s) failed", failed)
	}
	if check && changed > 0 {
		return fmt.Errorf("%d file(s) need normalizing", changed)
	}
	return nil
}
