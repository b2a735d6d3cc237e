// Package generators provides a registry of named grid generators.
// Generators register themselves in init() functions, allowing the CLI
// and map loader to build starting grids by name.
package generators

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tilegrid/internal/grid"
)

// Params controls the grid a generator produces.
type Params struct {
	Width   int
	Height  int
	Seed    int64   // RNG seed for generators that place content randomly
	Density float64 // Fill ratio in [0, 1] for random content
}

// Generator builds a starting grid.
type Generator interface {
	// ID returns a unique identifier (e.g., "empty", "forest").
	ID() string

	// Title returns a human-readable name for listings.
	Title() string

	// Generate builds a new grid from the given parameters.
	Generate(p Params) (*grid.Grid, error)
}

// Info contains metadata about a registered generator.
type Info struct {
	ID    string
	Title string
}

// Factory creates a new generator instance.
type Factory func() Generator

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a generator factory to the registry.
// Panics if a generator with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("generators: %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns all registered generators, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(factories))
	for id := range factories {
		result = append(result, Info{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a generator by its ID.
func Create(id string) (Generator, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("generators: unknown generator %q", id)
	}

	return f(), nil
}

// Exists checks if a generator with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

// Generate is shorthand for Create followed by Generate.
func Generate(id string, p Params) (*grid.Grid, error) {
	g, err := Create(id)
	if err != nil {
		return nil, err
	}
	out, err := g.Generate(p)
	if err != nil {
		return nil, fmt.Errorf("generators: %s: %w", id, err)
	}
	return out, nil
}

// checkSize requires positive dimensions within grid.MaxSquares.
func checkSize(p Params) error {
	if p.Width == 0 || p.Height == 0 {
		return &grid.SizeError{W: p.Width, H: p.Height}
	}
	return grid.CheckSize(p.Width, p.Height)
}
