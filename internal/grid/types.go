// Package grid provides the tile grid model and single-step movement rules.
// This package is UI-agnostic and deterministic.
package grid

import "strings"

// Ground is the base terrain of a square.
type Ground uint8

const (
	GroundSoil Ground = iota
	GroundStone
)

// String returns the lower-case name of the ground.
func (g Ground) String() string {
	switch g {
	case GroundSoil:
		return "soil"
	case GroundStone:
		return "stone"
	default:
		return "unknown"
	}
}

// Passable reports whether a being may step onto this ground.
func (g Ground) Passable() bool {
	return g != GroundStone
}

// ParseGround converts a name to a Ground.
func ParseGround(s string) (Ground, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "soil":
		return GroundSoil, true
	case "stone":
		return GroundStone, true
	default:
		return GroundSoil, false
	}
}

// Block is a static occupant of a square. BlockNone means the slot is empty.
type Block uint8

const (
	BlockNone Block = iota
	BlockTree
	BlockSoil
	BlockStone
)

// String returns the lower-case name of the block.
func (b Block) String() string {
	switch b {
	case BlockNone:
		return "none"
	case BlockTree:
		return "tree"
	case BlockSoil:
		return "soil"
	case BlockStone:
		return "stone"
	default:
		return "unknown"
	}
}

// ParseBlock converts a name to a Block. Empty string and "none" yield BlockNone.
func ParseBlock(s string) (Block, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return BlockNone, true
	case "tree":
		return BlockTree, true
	case "soil":
		return BlockSoil, true
	case "stone":
		return BlockStone, true
	default:
		return BlockNone, false
	}
}

// Being is a mobile occupant of a square. BeingNone means the slot is empty.
type Being uint8

const (
	BeingNone Being = iota
	BeingOrc
	BeingHuman
)

// String returns the lower-case name of the being.
func (b Being) String() string {
	switch b {
	case BeingNone:
		return "none"
	case BeingOrc:
		return "orc"
	case BeingHuman:
		return "human"
	default:
		return "unknown"
	}
}

// ParseBeing converts a name to a Being. Empty string and "none" yield BeingNone.
func ParseBeing(s string) (Being, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return BeingNone, true
	case "orc":
		return BeingOrc, true
	case "human":
		return BeingHuman, true
	default:
		return BeingNone, false
	}
}

// Square is one cell of the grid.
// The zero value is the default square: soil ground, no block, no being.
type Square struct {
	Ground Ground
	Block  Block
	Being  Being
}

// DefaultSquare returns a soil square with no occupants.
func DefaultSquare() Square {
	return Square{}
}

// HasBlock reports whether the block slot is occupied.
func (s Square) HasBlock() bool {
	return s.Block != BlockNone
}

// HasBeing reports whether a being stands on this square.
func (s Square) HasBeing() bool {
	return s.Being != BeingNone
}
