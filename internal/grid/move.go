package grid

// MoveBeingInCoord validates a one-step move of the being standing at c.
// It returns the destination coordinate and never mutates the grid.
//
// Checks, in order:
//   - c is inside the grid (ErrCoordinateOutOfBounds)
//   - a being stands at c (ErrNoBeingInSquare)
//   - the destination is inside the grid (ErrSquareOffGrid)
//   - the destination ground is not stone (ErrStoneTerrain)
//   - no being stands on the destination (ErrSquareOccupied)
func (g *Grid) MoveBeingInCoord(c Coord, d Direction) (Coord, error) {
	from, ok := g.Square(c)
	if !ok {
		return c, newMoveError(CoordinateOutOfBounds, c)
	}
	if !from.HasBeing() {
		return c, newMoveError(NoBeingInSquare, c)
	}
	if !d.Valid() {
		return c, newMoveError(InvalidDirection, c)
	}

	dst := c.Step(d)
	to, ok := g.Square(dst)
	if !ok {
		return c, newMoveError(SquareOffGrid, dst)
	}
	if !to.Ground.Passable() {
		return c, newMoveError(StoneTerrain, dst)
	}
	if to.HasBeing() {
		return c, newMoveError(SquareOccupied, dst)
	}

	return dst, nil
}

// ApplyMove validates the move and, if it is allowed, relocates the being.
// On failure the grid is left unchanged.
func (g *Grid) ApplyMove(c Coord, d Direction) (Coord, error) {
	dst, err := g.MoveBeingInCoord(c, d)
	if err != nil {
		return c, err
	}

	src := g.index(c)
	g.Squares[g.index(dst)].Being = g.Squares[src].Being
	g.Squares[src].Being = BeingNone
	return dst, nil
}

// ValidMoves returns the directions in which the being at c may step,
// in AllDirections order. It returns nil when no being stands at c.
func (g *Grid) ValidMoves(c Coord) []Direction {
	var dirs []Direction
	for _, d := range AllDirections() {
		if _, err := g.MoveBeingInCoord(c, d); err == nil {
			dirs = append(dirs, d)
		}
	}
	return dirs
}
