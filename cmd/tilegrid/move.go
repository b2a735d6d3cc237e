package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilegrid/internal/grid"
)

var (
	flagApply bool
	flagBeing string
)

var moveCmd = &cobra.Command{
	Use:   "move <x> <y> <direction>",
	Short: "Validate a one-step move",
	Long: `Validate moving the being at (x, y) one step in a direction.

Directions: west, east, north, south (or w, e, n, s).
West/East change x, North/South change y. North is y-1.

By default the move is only validated and the destination printed.
With --apply the being is relocated and the grid is dumped.

Possible errors:
  NoBeingInSquare        - nothing stands at (x, y)
  SquareOffGrid          - the destination is outside the grid
  StoneTerrain           - the destination ground is stone
  SquareOccupied         - another being stands on the destination
  CoordinateOutOfBounds  - (x, y) is outside the grid

Examples:
  tilegrid move 0 1 north --map maps/ridge.yaml
  tilegrid move 1 1 e --being human --apply`,
	Args: cobra.ExactArgs(3),
	Run:  runMove,
}

func init() {
	moveCmd.Flags().BoolVar(&flagApply, "apply", false, "Relocate the being after validation")
	moveCmd.Flags().StringVar(&flagBeing, "being", "", "Place a being (orc, human) at (x, y) before moving")
}

func runMove(cmd *cobra.Command, args []string) {
	if err := moveBeing(cmd, args); err != nil {
		fail("%v", err)
	}
}

// moveBeing validates (and with --apply performs) the move named by args,
// writing the destination to the command's output.
func moveBeing(cmd *cobra.Command, args []string) error {
	x, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid x %q", args[0])
	}
	y, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid y %q", args[1])
	}
	dir, ok := grid.ParseDirection(args[2])
	if !ok {
		return fmt.Errorf("invalid direction %q (use west, east, north or south)", args[2])
	}

	s, err := setup()
	if err != nil {
		return err
	}

	g, err := s.buildGrid()
	if err != nil {
		return err
	}

	from := grid.C(x, y)
	if flagBeing != "" {
		being, ok := grid.ParseBeing(flagBeing)
		if !ok {
			return fmt.Errorf("unknown being %q", flagBeing)
		}
		if err := g.PlaceBeing(from, being); err != nil {
			return fmt.Errorf("placing %s: %w", being, err)
		}
	}

	var dst grid.Coord
	if flagApply {
		dst, err = g.ApplyMove(from, dir)
	} else {
		dst, err = g.MoveBeingInCoord(from, dir)
	}
	if err != nil {
		s.logger.Debug("move rejected", "from", from, "direction", dir, "kind", grid.KindOf(err))
		return err
	}

	s.logger.Debug("move validated", "from", from, "direction", dir, "to", dst)
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, dst)

	if flagApply {
		fmt.Fprintln(out)
		fmt.Fprintln(out, g)
	}
	return nil
}
