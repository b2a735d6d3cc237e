package grid

import (
	"fmt"
	"strings"
)

// Direction is a cardinal movement direction.
type Direction uint8

const (
	West Direction = iota
	East
	North
	South
)

// AllDirections returns the cardinal directions in declaration order.
func AllDirections() []Direction {
	return []Direction{West, East, North, South}
}

// String returns the string representation of a direction.
func (d Direction) String() string {
	switch d {
	case West:
		return "West"
	case East:
		return "East"
	case North:
		return "North"
	case South:
		return "South"
	default:
		return "Unknown"
	}
}

// Valid reports whether d is one of the four cardinal directions.
func (d Direction) Valid() bool {
	return d <= South
}

// Delta returns the (dx, dy) offset for one step in this direction.
// West/East move along X, North/South along Y. North decreases Y.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case West:
		return -1, 0
	case East:
		return 1, 0
	case North:
		return 0, -1
	case South:
		return 0, 1
	default:
		return 0, 0
	}
}

// Opposite returns the opposite direction.
func (d Direction) Opposite() Direction {
	switch d {
	case West:
		return East
	case East:
		return West
	case North:
		return South
	case South:
		return North
	default:
		return d
	}
}

// ParseDirection accepts full names (case-insensitive) and the
// single-letter forms w, e, n, s.
func ParseDirection(s string) (Direction, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "west", "w":
		return West, true
	case "east", "e":
		return East, true
	case "north", "n":
		return North, true
	case "south", "s":
		return South, true
	default:
		return 0, false
	}
}

// Coord is a position on the grid. X is the West/East axis,
// Y is the North/South axis.
type Coord struct {
	X int
	Y int
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns a new Coord offset by (dx, dy).
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// Step returns the neighbouring Coord in the given direction.
func (c Coord) Step(d Direction) Coord {
	dx, dy := d.Delta()
	return c.Add(dx, dy)
}
