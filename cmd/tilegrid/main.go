// tilegrid is a prototype of single-step movement on a tile grid.
//
// Usage:
//
//	tilegrid                       - Print a greeting
//	tilegrid move <x> <y> <dir>    - Validate (or apply) a one-step move
//	tilegrid show                  - Dump the grid as text
//	tilegrid generators            - List available grid generators
//	tilegrid maps                  - List map files in the maps directory
//
// Global flags:
//
//	--config <path>  - Config file (default search: ~/.tilegrid/config.yaml, ./configs/tilegrid.yaml)
//	--map <path>     - Build the grid from a map file instead of the configured generator
//	--maps <dir>     - Directory scanned by 'maps' (default: ./maps)
//	--verbose        - Enable debug logging
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig  string
	flagMap     string
	flagMapsDir string
	flagVerbose bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tilegrid",
	Short: "tilegrid - movement on a tile grid",
	Long: `tilegrid models a rectangular grid of squares with ground terrain,
optional blocks and optional beings, and validates one-step moves.

Available commands:
  move        - Validate or apply a move
  show        - Dump the grid
  generators  - List grid generators
  maps        - List map files

Examples:
  tilegrid move 0 1 north --map maps/ridge.yaml
  tilegrid move 1 1 east --being orc --apply
  tilegrid show --map maps/ridge.yaml`,
	Args: cobra.NoArgs,
	Run:  runRoot,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagMap, "map", "", "Path to a map YAML file")
	rootCmd.PersistentFlags().StringVar(&flagMapsDir, "maps", "maps", "Directory containing map files")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(moveCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(generatorsCmd)
	rootCmd.AddCommand(mapsCmd)
}

func runRoot(cmd *cobra.Command, args []string) {
	fmt.Fprintln(cmd.OutOrStdout(), "Hello, world!")
}
