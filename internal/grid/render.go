package grid

import "strings"

// Runes used by Dump.
const (
	RuneSoil       = '.'
	RuneStone      = '#'
	RuneTree       = 'T'
	RuneSoilBlock  = 's'
	RuneStoneBlock = 'o'
	RuneOrc        = 'O'
	RuneHuman      = 'H'
)

// SquareRune returns the rune that represents a square in a dump.
// A being hides the block, and a block hides the ground.
func SquareRune(sq Square) rune {
	switch sq.Being {
	case BeingOrc:
		return RuneOrc
	case BeingHuman:
		return RuneHuman
	}

	switch sq.Block {
	case BlockTree:
		return RuneTree
	case BlockSoil:
		return RuneSoilBlock
	case BlockStone:
		return RuneStoneBlock
	}

	if sq.Ground == GroundStone {
		return RuneStone
	}
	return RuneSoil
}

// Dump returns the grid as text, one line per row, north at the top.
func (g *Grid) Dump() []string {
	lines := make([]string, g.H)
	var sb strings.Builder
	for y := 0; y < g.H; y++ {
		sb.Reset()
		for x := 0; x < g.W; x++ {
			sq, _ := g.Square(C(x, y))
			sb.WriteRune(SquareRune(sq))
		}
		lines[y] = sb.String()
	}
	return lines
}

// String returns the grid dump joined with newlines.
func (g *Grid) String() string {
	return strings.Join(g.Dump(), "\n")
}
