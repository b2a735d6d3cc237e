package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilegrid/internal/generators"
	"github.com/vovakirdan/tilegrid/internal/maps"
)

var generatorsCmd = &cobra.Command{
	Use:   "generators",
	Short: "List all grid generators",
	Long:  `Shows the generators that can build a starting grid.`,
	Args:  cobra.NoArgs,
	Run:   runGenerators,
}

var mapsCmd = &cobra.Command{
	Use:   "maps",
	Short: "List map files",
	Long: `Scans the maps directory (--maps) for YAML map files.

Invalid files are skipped with a warning.`,
	Args: cobra.NoArgs,
	Run:  runMaps,
}

func runGenerators(cmd *cobra.Command, args []string) {
	infos := generators.List()

	fmt.Println("Available generators:")
	fmt.Println()

	rows := make([][2]string, len(infos))
	for i, info := range infos {
		rows[i] = [2]string{info.ID, info.Title}
	}
	printTable("ID", "Title", rows)

	fmt.Println()
	fmt.Println("Set grid.generator in the config to choose one.")
}

func runMaps(cmd *cobra.Command, args []string) {
	s, err := setup()
	if err != nil {
		fail("%v", err)
	}

	list, err := maps.NewLoader(flagMapsDir, s.logger).LoadAll()
	if err != nil {
		fail("%v", err)
	}

	if len(list) == 0 {
		fmt.Println("No maps found.")
		return
	}

	fmt.Println("Available maps:")
	fmt.Println()

	rows := make([][2]string, len(list))
	for i, m := range list {
		rows[i] = [2]string{m.ID, fmt.Sprintf("%s (%dx%d) %s", m.Name, m.Width, m.Height, m.FilePath)}
	}
	printTable("ID", "Map", rows)

	fmt.Println()
	fmt.Println("Run 'tilegrid show --map <file>' to view a map.")
}

// printTable prints two aligned columns with a header.
func printTable(left, right string, rows [][2]string) {
	// Calculate column widths
	maxLen := len(left)
	for _, r := range rows {
		if len(r[0]) > maxLen {
			maxLen = len(r[0])
		}
	}

	fmt.Printf("  %-*s  %s\n", maxLen, left, right)
	fmt.Printf("  %-*s  %s\n", maxLen, "--", "-----")

	for _, r := range rows {
		fmt.Printf("  %-*s  %s\n", maxLen, r[0], r[1])
	}
}
