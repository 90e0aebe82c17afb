package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var groupsCmd = &cobra.Command{
	Use:   "groups",
	Short: "Show release group analytics",
	Long: `Show accumulated per-release-group metrics.

Groups are folded across runs: near-identical names (case or minor
spelling variants) accumulate into one row.`,
	RunE: runGroupsCmd,
}

func init() {
	rootCmd.AddCommand(groupsCmd)
}

func runGroupsCmd(cmd *cobra.Command, args []string) error {
	client := NewClient(serverURL)
	groups, err := client.Groups()
	if err != nil {
		return fmt.Errorf("failed to fetch groups: %w", err)
	}

	if jsonOutput {
		printJSON(groups)
		return nil
	}

	if len(groups) == 0 {
		fmt.Println("No release groups recorded")
		return nil
	}

	fmt.Printf("Release Groups (%d):\n\n", len(groups))
	fmt.Printf("  %-16s %-9s %-9s %-9s %-10s %s\n", "GROUP", "RELEASES", "OK", "FAILED", "SIZE", "LAST SEEN")
	fmt.Println("  " + strings.Repeat("-", 66))

	for _, g := range groups {
		lastSeen := "-"
		if t, err := time.Parse(time.RFC3339, g.LastSeen); err == nil {
			lastSeen = formatTimeAgo(t)
		}
		fmt.Printf("  %-16s %-9d %-9d %-9d %-10s %s\n",
			g.Name, g.Releases, g.Successes, g.Failures, formatSize(g.TotalBytes), lastSeen)
	}

	return nil
}
