package grid

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a movement or placement failure.
type ErrorKind uint8

const (
	NoBeingInSquare ErrorKind = iota + 1
	SquareOffGrid
	SquareOccupied
	StoneTerrain
	CoordinateOutOfBounds
	InvalidDirection
)

// String returns the name of the error kind.
func (k ErrorKind) String() string {
	switch k {
	case NoBeingInSquare:
		return "NoBeingInSquare"
	case SquareOffGrid:
		return "SquareOffGrid"
	case SquareOccupied:
		return "SquareOccupied"
	case StoneTerrain:
		return "StoneTerrain"
	case CoordinateOutOfBounds:
		return "CoordinateOutOfBounds"
	case InvalidDirection:
		return "InvalidDirection"
	default:
		return "Unknown"
	}
}

// MoveError reports why a move or square update was rejected.
// Two MoveErrors match under errors.Is when their kinds are equal, so the
// Err* sentinels can be compared against errors carrying a coordinate.
type MoveError struct {
	Kind  ErrorKind
	Coord Coord
	// HasCoord is false for the bare sentinels.
	HasCoord bool
}

func (e *MoveError) Error() string {
	msg := kindMessage(e.Kind)
	if e.HasCoord {
		return fmt.Sprintf("[%s] %s at %s", e.Kind, msg, e.Coord)
	}
	return fmt.Sprintf("[%s] %s", e.Kind, msg)
}

// Is matches any *MoveError of the same kind.
func (e *MoveError) Is(target error) bool {
	t, ok := target.(*MoveError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

func kindMessage(k ErrorKind) string {
	switch k {
	case NoBeingInSquare:
		return "no being in square"
	case SquareOffGrid:
		return "destination is off the grid"
	case SquareOccupied:
		return "destination square is occupied"
	case StoneTerrain:
		return "destination ground is stone"
	case CoordinateOutOfBounds:
		return "coordinate out of bounds"
	case InvalidDirection:
		return "invalid direction"
	default:
		return "unknown movement error"
	}
}

// Sentinels for errors.Is.
var (
	ErrNoBeingInSquare       = &MoveError{Kind: NoBeingInSquare}
	ErrSquareOffGrid         = &MoveError{Kind: SquareOffGrid}
	ErrSquareOccupied        = &MoveError{Kind: SquareOccupied}
	ErrStoneTerrain          = &MoveError{Kind: StoneTerrain}
	ErrCoordinateOutOfBounds = &MoveError{Kind: CoordinateOutOfBounds}
	ErrInvalidDirection      = &MoveError{Kind: InvalidDirection}
)

func newMoveError(k ErrorKind, c Coord) *MoveError {
	return &MoveError{Kind: k, Coord: c, HasCoord: true}
}

// KindOf returns the ErrorKind carried by err, or 0 if err is not a MoveError.
func KindOf(err error) ErrorKind {
	var me *MoveError
	if errors.As(err, &me) {
		return me.Kind
	}
	return 0
}
