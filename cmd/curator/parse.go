package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vmunix/curator/pkg/release"
)

// ParseResultJSON is the JSON-friendly representation of a parsed release.
type ParseResultJSON struct {
	Name       string `json:"name"`
	Title      string `json:"title"`
	Year       int    `json:"year,omitempty"`
	Resolution string `json:"resolution"`
	Source     string `json:"source"`
	Codec      string `json:"codec"`
	UHD        bool   `json:"uhd,omitempty"`
	Group      string `json:"group,omitempty"`
	Quality    string `json:"quality"`
	CleanTitle string `json:"clean_title"`
}

func toParseJSON(name string, info *release.Info) ParseResultJSON {
	return ParseResultJSON{
		Name:       name,
		Title:      info.Title,
		Year:       info.Year,
		Resolution: info.Resolution.String(),
		Source:     info.Source.String(),
		Codec:      info.Codec.String(),
		UHD:        info.IsUHD,
		Group:      info.Group,
		Quality:    info.QualityLabel(),
		CleanTitle: info.CleanTitle,
	}
}

var parseCmd = &cobra.Command{
	Use:   "parse [flags] <release-name>",
	Short: "Parse release name (local, no server needed)",
	Long: `Parse a release name to extract metadata and its quality label.

Examples:
  curator parse "The.Matrix.1999.2160p.UHD.BluRay.x265-GROUP"
  curator parse --file releases.txt --json`,
	RunE: runParseCmd,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().StringP("file", "f", "", "Read release names from file (one per line)")
}

func runParseCmd(cmd *cobra.Command, args []string) error {
	inputFile, _ := cmd.Flags().GetString("file")

	// Determine input mode
	var releaseNames []string
	if inputFile != "" {
		names, err := readReleaseFile(inputFile)
		if err != nil {
			return fmt.Errorf("reading file: %w", err)
		}
		releaseNames = names
	} else if len(args) > 0 {
		releaseNames = []string{args[0]}
	} else {
		return fmt.Errorf("usage: curator parse <release-name> or curator parse --file <filename>")
	}

	if jsonOutput {
		results := make([]ParseResultJSON, 0, len(releaseNames))
		for _, name := range releaseNames {
			results = append(results, toParseJSON(name, release.Parse(name)))
		}
		printJSON(results)
		return nil
	}

	for i, name := range releaseNames {
		if i > 0 {
			fmt.Println()
		}
		printParsed(name, release.Parse(name))
	}
	return nil
}

// readReleaseFile reads release names from a file, one per line.
func readReleaseFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	var names []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" && !strings.HasPrefix(line, "#") {
			names = append(names, line)
		}
	}
	return names, scanner.Err()
}

func printParsed(name string, info *release.Info) {
	fmt.Println(name)
	fmt.Printf("  Title:      %s\n", info.Title)
	if info.Year > 0 {
		fmt.Printf("  Year:       %d\n", info.Year)
	}
	fmt.Printf("  Resolution: %s\n", info.Resolution)
	fmt.Printf("  Source:     %s\n", info.Source)
	fmt.Printf("  Codec:      %s\n", info.Codec)
	if info.IsUHD {
		fmt.Println("  UHD:        yes")
	}
	if info.Group != "" {
		fmt.Printf("  Group:      %s\n", info.Group)
	}
	if q := info.QualityLabel(); q != "" {
		fmt.Printf("  Quality:    %s\n", q)
	}
}
