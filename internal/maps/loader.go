// Package maps loads grid definitions from map files.
// This package depends on grid but grid does not depend on maps.
package maps

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tilegrid/internal/generators"
	"github.com/vovakirdan/tilegrid/internal/grid"
	"github.com/vovakirdan/tilegrid/internal/maps/formats"
)

// Map is a complete map definition.
type Map struct {
	formats.Map
	FilePath string
}

// ToGrid builds the grid: the base generator output with the map's
// squares applied on top.
func (m *Map) ToGrid() (*grid.Grid, error) {
	g, err := generators.Generate(m.Generator, generators.Params{
		Width:   m.Width,
		Height:  m.Height,
		Seed:    m.Seed,
		Density: m.Density,
	})
	if err != nil {
		return nil, fmt.Errorf("map %s: %w", m.ID, err)
	}

	for c, patch := range m.Squares {
		sq, _ := g.Square(c)
		if err := g.SetSquare(c, patch.Apply(sq)); err != nil {
			return nil, fmt.Errorf("map %s: %w", m.ID, err)
		}
	}
	return g, nil
}

// Loader handles loading maps from a directory.
type Loader struct {
	Root string
	// Logger receives a warning for every file LoadAll skips. May be nil.
	Logger *log.Logger
}

// NewLoader creates a new map loader.
func NewLoader(root string, logger *log.Logger) *Loader {
	return &Loader{Root: root, Logger: logger}
}

// LoadAll recursively scans and loads all map files.
// Returns maps sorted by ID for deterministic ordering.
func (l *Loader) LoadAll() ([]Map, error) {
	var maps []Map

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if !isSupportedExtension(ext) {
			return nil
		}

		m, err := l.LoadFile(path)
		if err != nil {
			if l.Logger != nil {
				l.Logger.Warn("skipping map file", "path", path, "error", err)
			}
			return nil
		}

		maps = append(maps, m)
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sort.Slice(maps, func(i, j int) bool {
		return maps[i].ID < maps[j].ID
	})

	return maps, nil
}

// LoadFile loads a single map file.
func (l *Loader) LoadFile(path string) (Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Map{}, fmt.Errorf("reading file %s: %w", path, err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	parsed, err := parseByExtension(data, ext)
	if err != nil {
		return Map{}, fmt.Errorf("parsing file %s: %w", path, err)
	}

	if l.Logger != nil {
		l.Logger.Debug("loaded map", "id", parsed.ID, "path", path)
	}

	return Map{Map: parsed, FilePath: path}, nil
}

// LoadByID loads a specific map by ID.
func (l *Loader) LoadByID(id string) (Map, error) {
	maps, err := l.LoadAll()
	if err != nil {
		return Map{}, err
	}

	for _, m := range maps {
		if m.ID == id {
			return m, nil
		}
	}

	return Map{}, fmt.Errorf("map not found: %s", id)
}

// ListIDs returns all map IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	maps, err := l.LoadAll()
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(maps))
	for i, m := range maps {
		ids[i] = m.ID
	}
	return ids, nil
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

// parseByExtension routes to the correct parser.
func parseByExtension(data []byte, ext string) (formats.Map, error) {
	switch ext {
	case ".yaml", ".yml":
		return formats.ParseYAML(data)
	default:
		return formats.Map{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}
