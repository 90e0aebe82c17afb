package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import finished downloads into the library",
	Long: `Scan a source directory and import video files into the library.

Imports are dry runs by default: the server reports what it would do
without touching the filesystem. Pass --live to actually move files.

Examples:
  curator import                           # Preview import of the default roots
  curator import --live                    # Actually import
  curator import --path /data/done --live  # Import a specific directory
  curator import --output /mnt/movies      # Override the library root`,
	RunE: runImportCmd,
}

func init() {
	rootCmd.AddCommand(importCmd)
	importCmd.Flags().String("path", "", "Source path (default: server's source root)")
	importCmd.Flags().String("output", "", "Library root (default: server's library root)")
	importCmd.Flags().Bool("live", false, "Perform the import instead of a dry run")
}

func runImportCmd(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("path")
	output, _ := cmd.Flags().GetString("output")
	live, _ := cmd.Flags().GetBool("live")

	dryRun := !live
	req := &ImportRequest{
		Path:       path,
		OutputPath: output,
		DryRun:     &dryRun,
	}

	client := NewClient(serverURL)
	resp, err := client.Import(req)
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	if jsonOutput {
		printJSON(resp)
		return nil
	}

	printImportResult(resp)
	return nil
}

func printImportResult(r *ImportResponse) {
	mode := "Import"
	if r.DryRun {
		mode = "Dry run"
	}

	if !r.Success {
		fmt.Printf("%s failed: %s\n", mode, r.Message)
		return
	}

	fmt.Printf("%s: %s\n", mode, r.Message)
	fmt.Println()
	fmt.Printf("  Source:    %s\n", r.SourcePath)
	fmt.Printf("  Library:   %s\n", r.DestinationPath)
	fmt.Println()
	fmt.Printf("  Scanned:   %d\n", r.Stats.FilesScanned)
	fmt.Printf("  Imported:  %d (%d hardlinked, %d copied)\n",
		r.Stats.SuccessfulImports, r.Stats.HardlinksCreated, r.Stats.FilesCopied)
	fmt.Printf("  Skipped:   %d\n", r.Stats.SkippedFiles)
	fmt.Printf("  Failed:    %d\n", r.Stats.FailedImports)
	fmt.Printf("  Size:      %s\n", formatSize(r.Stats.TotalSize))
	fmt.Printf("  Duration:  %dms\n", r.Stats.TotalDurationMs)

	if len(r.ImportedFiles) > 0 {
		fmt.Println()
		fmt.Printf("Files (%d):\n\n", len(r.ImportedFiles))
		for _, f := range r.ImportedFiles {
			link := "copy"
			if f.Hardlinked {
				link = "link"
			}
			fmt.Printf("  [%s] %s\n", link, f.NewPath)
		}
	}

	if len(r.Groups) > 0 {
		fmt.Println()
		fmt.Printf("Groups (%d):\n\n", len(r.Groups))
		fmt.Printf("  %-16s %-9s %-9s %-9s %s\n", "GROUP", "RELEASES", "OK", "FAILED", "SIZE")
		fmt.Println("  " + strings.Repeat("-", 55))
		for name, g := range r.Groups {
			fmt.Printf("  %-16s %-9d %-9d %-9d %s\n",
				name, g.Releases, g.Successes, g.Failures, formatSize(g.Bytes))
		}
	}
}
