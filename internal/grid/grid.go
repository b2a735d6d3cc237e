package grid

import "fmt"

// Grid is a rectangular board of squares.
// Squares are stored in row-major order: index = y*W + x.
type Grid struct {
	W       int      // Width of the grid (X axis)
	H       int      // Height of the grid (Y axis)
	Squares []Square // Flat array of squares, length W*H
}

// MaxSquares caps the number of squares a grid may hold.
const MaxSquares = 1 << 24

// SizeError reports grid dimensions that are negative or too large.
type SizeError struct {
	W, H int
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("invalid grid size %dx%d (max %d squares)", e.W, e.H, MaxSquares)
}

// CheckSize returns a *SizeError when w or h is negative or w*h exceeds
// MaxSquares. Zero dimensions are allowed.
func CheckSize(w, h int) error {
	if w < 0 || h < 0 {
		return &SizeError{W: w, H: h}
	}
	if h != 0 && w > MaxSquares/h {
		return &SizeError{W: w, H: h}
	}
	return nil
}

// GenerateEmpty creates a grid whose squares are all soil with no block
// and no being. Negative dimensions are treated as zero, and dimensions
// over MaxSquares yield a 0x0 grid.
func GenerateEmpty(w, h int) *Grid {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	if CheckSize(w, h) != nil {
		w, h = 0, 0
	}
	return &Grid{
		W:       w,
		H:       h,
		Squares: make([]Square, w*h),
	}
}

// NewGrid creates an empty grid and replaces the given squares.
// Overrides outside the grid are ignored.
func NewGrid(w, h int, overrides map[Coord]Square) *Grid {
	g := GenerateEmpty(w, h)
	for c, sq := range overrides {
		if g.InBounds(c) {
			g.Squares[g.index(c)] = sq
		}
	}
	return g
}

// index converts a coordinate to a flat array index.
func (g *Grid) index(c Coord) int {
	return c.Y*g.W + c.X
}

// InBounds returns true if the coordinate is within the grid boundaries
// and backed by a square.
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.W && c.Y >= 0 && c.Y < g.H && g.index(c) < len(g.Squares)
}

// Square returns the square at c. The second result is false when c is
// outside the grid.
func (g *Grid) Square(c Coord) (Square, bool) {
	if !g.InBounds(c) {
		return Square{}, false
	}
	return g.Squares[g.index(c)], true
}

// SetSquare replaces the square at c.
func (g *Grid) SetSquare(c Coord, sq Square) error {
	if !g.InBounds(c) {
		return newMoveError(CoordinateOutOfBounds, c)
	}
	g.Squares[g.index(c)] = sq
	return nil
}

// SetGround changes the ground of the square at c.
func (g *Grid) SetGround(c Coord, ground Ground) error {
	if !g.InBounds(c) {
		return newMoveError(CoordinateOutOfBounds, c)
	}
	g.Squares[g.index(c)].Ground = ground
	return nil
}

// SetBlock changes the block of the square at c. BlockNone clears it.
func (g *Grid) SetBlock(c Coord, block Block) error {
	if !g.InBounds(c) {
		return newMoveError(CoordinateOutOfBounds, c)
	}
	g.Squares[g.index(c)].Block = block
	return nil
}

// PlaceBeing puts a being on the square at c.
// Placing onto a square that already holds a being fails with
// ErrSquareOccupied; BeingNone clears the slot.
func (g *Grid) PlaceBeing(c Coord, b Being) error {
	if !g.InBounds(c) {
		return newMoveError(CoordinateOutOfBounds, c)
	}
	i := g.index(c)
	if b != BeingNone && g.Squares[i].HasBeing() {
		return newMoveError(SquareOccupied, c)
	}
	g.Squares[i].Being = b
	return nil
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	squares := make([]Square, len(g.Squares))
	copy(squares, g.Squares)
	return &Grid{
		W:       g.W,
		H:       g.H,
		Squares: squares,
	}
}

// Equal returns true if two grids have the same dimensions and contents.
func (g *Grid) Equal(other *Grid) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.W != other.W || g.H != other.H || len(g.Squares) != len(other.Squares) {
		return false
	}
	for i, sq := range g.Squares {
		if sq != other.Squares[i] {
			return false
		}
	}
	return true
}

// AllCoords returns all coordinates in the grid, ordered by row then column.
func (g *Grid) AllCoords() []Coord {
	coords := make([]Coord, 0, g.W*g.H)
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			coords = append(coords, C(x, y))
		}
	}
	return coords
}

// Beings returns the position of every being on the grid.
func (g *Grid) Beings() map[Coord]Being {
	beings := make(map[Coord]Being)
	for _, c := range g.AllCoords() {
		if sq := g.Squares[g.index(c)]; sq.HasBeing() {
			beings[c] = sq.Being
		}
	}
	return beings
}

// CountBeings returns the number of squares holding a being.
func (g *Grid) CountBeings() int {
	count := 0
	for _, sq := range g.Squares {
		if sq.HasBeing() {
			count++
		}
	}
	return count
}

// Stats summarises a grid.
type Stats struct {
	Width  int
	Height int
	Total  int
	Stone  int
	Blocks int
	Beings int
}

// Stats analyzes the grid and returns counts by content.
func (g *Grid) Stats() Stats {
	st := Stats{
		Width:  g.W,
		Height: g.H,
		Total:  len(g.Squares),
	}
	for _, sq := range g.Squares {
		if sq.Ground == GroundStone {
			st.Stone++
		}
		if sq.HasBlock() {
			st.Blocks++
		}
		if sq.HasBeing() {
			st.Beings++
		}
	}
	return st
}
