package generators

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tilegrid/internal/grid"
)

func init() {
	Register("empty", func() Generator { return emptyGenerator{} })
	Register("walled", func() Generator { return walledGenerator{} })
	Register("forest", func() Generator { return forestGenerator{} })
}

// emptyGenerator produces an all-soil grid.
type emptyGenerator struct{}

func (emptyGenerator) ID() string    { return "empty" }
func (emptyGenerator) Title() string { return "Empty field" }

// Generate accepts zero sizes, which yield an empty grid.
func (emptyGenerator) Generate(p Params) (*grid.Grid, error) {
	if err := grid.CheckSize(p.Width, p.Height); err != nil {
		return nil, err
	}
	return grid.GenerateEmpty(p.Width, p.Height), nil
}

// walledGenerator rings the field with stone ground.
type walledGenerator struct{}

func (walledGenerator) ID() string    { return "walled" }
func (walledGenerator) Title() string { return "Stone-walled field" }

func (walledGenerator) Generate(p Params) (*grid.Grid, error) {
	if err := checkSize(p); err != nil {
		return nil, err
	}

	g := grid.GenerateEmpty(p.Width, p.Height)
	for _, c := range g.AllCoords() {
		if c.X == 0 || c.Y == 0 || c.X == p.Width-1 || c.Y == p.Height-1 {
			_ = g.SetGround(c, grid.GroundStone)
		}
	}
	return g, nil
}

// forestGenerator scatters trees over soil. Output depends only on Params.
type forestGenerator struct{}

func (forestGenerator) ID() string    { return "forest" }
func (forestGenerator) Title() string { return "Forest clearing" }

func (forestGenerator) Generate(p Params) (*grid.Grid, error) {
	if err := checkSize(p); err != nil {
		return nil, err
	}
	if p.Density < 0 || p.Density > 1 {
		return nil, fmt.Errorf("density %.2f outside [0,1]", p.Density)
	}

	rng := rand.New(rand.NewSource(p.Seed))
	g := grid.GenerateEmpty(p.Width, p.Height)
	for _, c := range g.AllCoords() {
		if rng.Float64() < p.Density {
			_ = g.SetBlock(c, grid.BlockTree)
		}
	}
	return g, nil
}
