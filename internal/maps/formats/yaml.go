// Package formats provides map file format parsers.
package formats

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tilegrid/internal/grid"
)

// YAMLMap represents the YAML structure of a map file.
type YAMLMap struct {
	ID        string            `yaml:"id"`
	Name      string            `yaml:"name"`
	Size      YAMLSize          `yaml:"size"`
	Generator string            `yaml:"generator,omitempty"`
	Seed      int64             `yaml:"seed,omitempty"`
	Density   float64           `yaml:"density,omitempty"`
	Squares   []YAMLSquare      `yaml:"squares"`
	Metadata  map[string]string `yaml:"metadata,omitempty"`
}

// YAMLSize represents grid dimensions.
type YAMLSize struct {
	W int `yaml:"w"`
	H int `yaml:"h"`
}

// YAMLSquare overrides one square. Omitted fields keep the generated value.
type YAMLSquare struct {
	X      int    `yaml:"x"`
	Y      int    `yaml:"y"`
	Ground string `yaml:"ground,omitempty"`
	Block  string `yaml:"block,omitempty"`
	Being  string `yaml:"being,omitempty"`
}

// SquarePatch is a parsed square override. Nil fields are left untouched.
type SquarePatch struct {
	Ground *grid.Ground
	Block  *grid.Block
	Being  *grid.Being
}

// Map is a parsed map ready for use.
type Map struct {
	ID        string
	Name      string
	Width     int
	Height    int
	Generator string
	Seed      int64
	Density   float64
	Squares   map[grid.Coord]SquarePatch
	Metadata  map[string]string
}

// ParseYAML parses a YAML map file.
func ParseYAML(data []byte) (Map, error) {
	var ym YAMLMap
	if err := yaml.Unmarshal(data, &ym); err != nil {
		return Map{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	if ym.ID == "" {
		return Map{}, fmt.Errorf("map has no id")
	}
	if ym.Size.W <= 0 || ym.Size.H <= 0 {
		return Map{}, fmt.Errorf("map %s: invalid size %dx%d", ym.ID, ym.Size.W, ym.Size.H)
	}
	if err := grid.CheckSize(ym.Size.W, ym.Size.H); err != nil {
		return Map{}, fmt.Errorf("map %s: %w", ym.ID, err)
	}

	generator := ym.Generator
	if generator == "" {
		generator = "empty"
	}

	m := Map{
		ID:        ym.ID,
		Name:      ym.Name,
		Width:     ym.Size.W,
		Height:    ym.Size.H,
		Generator: generator,
		Seed:      ym.Seed,
		Density:   ym.Density,
		Squares:   make(map[grid.Coord]SquarePatch, len(ym.Squares)),
		Metadata:  ym.Metadata,
	}

	for _, s := range ym.Squares {
		c := grid.C(s.X, s.Y)
		if s.X < 0 || s.X >= m.Width || s.Y < 0 || s.Y >= m.Height {
			return Map{}, fmt.Errorf("map %s: square %s outside %dx%d", m.ID, c, m.Width, m.Height)
		}
		if _, dup := m.Squares[c]; dup {
			return Map{}, fmt.Errorf("map %s: duplicate square %s", m.ID, c)
		}
		patch, err := parseSquare(s)
		if err != nil {
			return Map{}, fmt.Errorf("map %s: square %s: %w", m.ID, c, err)
		}
		m.Squares[c] = patch
	}

	return m, nil
}

func parseSquare(s YAMLSquare) (SquarePatch, error) {
	var patch SquarePatch

	if s.Ground != "" {
		g, ok := grid.ParseGround(s.Ground)
		if !ok {
			return patch, fmt.Errorf("unknown ground %q", s.Ground)
		}
		patch.Ground = &g
	}
	if s.Block != "" {
		b, ok := grid.ParseBlock(s.Block)
		if !ok {
			return patch, fmt.Errorf("unknown block %q", s.Block)
		}
		patch.Block = &b
	}
	if s.Being != "" {
		b, ok := grid.ParseBeing(s.Being)
		if !ok {
			return patch, fmt.Errorf("unknown being %q", s.Being)
		}
		patch.Being = &b
	}

	return patch, nil
}

// Apply writes the patch onto sq.
func (p SquarePatch) Apply(sq grid.Square) grid.Square {
	if p.Ground != nil {
		sq.Ground = *p.Ground
	}
	if p.Block != nil {
		sq.Block = *p.Block
	}
	if p.Being != nil {
		sq.Being = *p.Being
	}
	return sq
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
