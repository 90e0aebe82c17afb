package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history [run-id]",
	Short: "Show recorded import runs",
	Long: `Show recorded import runs, newest first.

With a run ID, shows that run and the files it imported.

Examples:
  curator history           # Recent runs
  curator history -n 5      # Last five runs
  curator history 42        # Run #42 with its files`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistoryCmd,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntP("limit", "n", 20, "Number of runs to show")
}

func runHistoryCmd(cmd *cobra.Command, args []string) error {
	client := NewClient(serverURL)

	if len(args) > 0 {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid run ID: %s", args[0])
		}
		return showRun(client, id)
	}

	limit, _ := cmd.Flags().GetInt("limit")
	runs, err := client.History(limit)
	if err != nil {
		return fmt.Errorf("failed to fetch history: %w", err)
	}

	if jsonOutput {
		printJSON(runs)
		return nil
	}

	if len(runs.Items) == 0 {
		fmt.Println("No runs recorded")
		return nil
	}

	fmt.Printf("Runs (%d):\n\n", len(runs.Items))
	fmt.Printf("  %-4s %-10s %-9s %-9s %-9s %-10s %s\n", "ID", "WHEN", "IMPORTED", "SKIPPED", "FAILED", "SIZE", "MODE")
	fmt.Println("  " + strings.Repeat("-", 62))

	for _, run := range runs.Items {
		when := "-"
		if t, err := time.Parse(time.RFC3339, run.CreatedAt); err == nil {
			when = formatTimeAgo(t)
		}
		mode := "live"
		if run.DryRun {
			mode = "dry-run"
		}
		fmt.Printf("  %-4d %-10s %-9d %-9d %-9d %-10s %s\n",
			run.ID, when, run.SuccessfulImports, run.SkippedFiles,
			run.FailedImports, formatSize(run.TotalSize), mode)
	}

	return nil
}

func showRun(client *Client, id int64) error {
	run, err := client.Run(id)
	if err != nil {
		return fmt.Errorf("failed to fetch run: %w", err)
	}
	files, err := client.RunFiles(id)
	if err != nil {
		return fmt.Errorf("failed to fetch run files: %w", err)
	}

	if jsonOutput {
		printJSON(map[string]any{"run": run, "files": files})
		return nil
	}

	mode := "live"
	if run.DryRun {
		mode = "dry-run"
	}
	fmt.Printf("Run #%d (%s)\n\n", run.ID, mode)
	fmt.Printf("  Source:    %s\n", run.SourcePath)
	fmt.Printf("  Library:   %s\n", run.DestinationPath)
	fmt.Printf("  Scanned:   %d\n", run.FilesScanned)
	fmt.Printf("  Imported:  %d\n", run.SuccessfulImports)
	fmt.Printf("  Skipped:   %d\n", run.SkippedFiles)
	fmt.Printf("  Failed:    %d\n", run.FailedImports)
	fmt.Printf("  Size:      %s\n", formatSize(run.TotalSize))
	fmt.Printf("  Duration:  %dms\n", run.DurationMs)

	if len(files) > 0 {
		fmt.Println()
		fmt.Printf("Files (%d):\n\n", len(files))
		for _, f := range files {
			link := "copy"
			if f.Hardlinked {
				link = "link"
			}
			fmt.Printf("  [%s] %-14s %s\n", link, f.Quality, f.NewPath)
		}
	}

	return nil
}
