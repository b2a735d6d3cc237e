package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tilegrid/internal/grid"
)

var flagStats bool

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Dump the grid as text",
	Long: `Print the grid one row per line, north at the top.

Legend:
  .  soil       #  stone
  T  tree       s  soil block   o  stone block
  O  orc        H  human

Examples:
  tilegrid show
  tilegrid show --map maps/ridge.yaml --stats`,
	Args: cobra.NoArgs,
	Run:  runShow,
}

func init() {
	showCmd.Flags().BoolVar(&flagStats, "stats", false, "Print square counts after the dump")
}

func runShow(cmd *cobra.Command, args []string) {
	s, err := setup()
	if err != nil {
		fail("%v", err)
	}

	g, err := s.buildGrid()
	if err != nil {
		fail("%v", err)
	}

	if w, _, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil && g.W > w {
		s.logger.Warn("grid is wider than the terminal", "grid", g.W, "terminal", w)
	}

	fmt.Println(g)

	if flagStats {
		printStats(g.Stats())
	}
}

func printStats(st grid.Stats) {
	fmt.Println()
	fmt.Printf("  %-8s %dx%d\n", "Size", st.Width, st.Height)
	fmt.Printf("  %-8s %d\n", "Squares", st.Total)
	fmt.Printf("  %-8s %d\n", "Stone", st.Stone)
	fmt.Printf("  %-8s %d\n", "Blocks", st.Blocks)
	fmt.Printf("  %-8s %d\n", "Beings", st.Beings)
}
