package maps

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tilegrid/internal/grid"
)

const ridgeYAML = `id: ridge
name: Stone Ridge
size: {w: 3, h: 3}
squares:
  - {x: 0, y: 0, ground: stone}
  - {x: 0, y: 1, block: soil, being: human}
metadata:
  author: test
`

const walledYAML = `id: arena
name: Arena
size: {w: 4, h: 4}
generator: walled
squares:
  - {x: 1, y: 1, being: orc}
  - {x: 2, y: 2, being: human}
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir failed: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	return path
}

func TestLoadFileToGrid(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "ridge.yaml", ridgeYAML)

	m, err := NewLoader(dir, nil).LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if m.ID != "ridge" || m.Name != "Stone Ridge" {
		t.Errorf("unexpected header: %q %q", m.ID, m.Name)
	}
	if m.Metadata["author"] != "test" {
		t.Errorf("expected metadata author=test, got %v", m.Metadata)
	}
	if m.FilePath != path {
		t.Errorf("FilePath = %q, expected %q", m.FilePath, path)
	}

	g, err := m.ToGrid()
	if err != nil {
		t.Fatalf("ToGrid failed: %v", err)
	}

	expected := grid.GenerateEmpty(3, 3)
	_ = expected.SetGround(grid.C(0, 0), grid.GroundStone)
	_ = expected.SetSquare(grid.C(0, 1), grid.Square{Block: grid.BlockSoil, Being: grid.BeingHuman})
	if !g.Equal(expected) {
		t.Errorf("grid mismatch:\n%s\nexpected:\n%s", g, expected)
	}

	_, err = g.MoveBeingInCoord(grid.C(0, 1), grid.North)
	if !errors.Is(err, grid.ErrStoneTerrain) {
		t.Errorf("expected ErrStoneTerrain, got %v", err)
	}
}

func TestMapWithGenerator(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "arena.yml", walledYAML)

	m, err := NewLoader(dir, nil).LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	g, err := m.ToGrid()
	if err != nil {
		t.Fatalf("ToGrid failed: %v", err)
	}

	expected := []string{"####", "#O.#", "#.H#", "####"}
	lines := g.Dump()
	for i := range expected {
		if lines[i] != expected[i] {
			t.Errorf("row %d = %q, expected %q", i, lines[i], expected[i])
		}
	}
}

func TestMapUnknownGenerator(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "bad.yaml", "id: bad\nsize: {w: 2, h: 2}\ngenerator: volcano\n")

	m, err := NewLoader(dir, nil).LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if _, err := m.ToGrid(); err == nil {
		t.Error("expected error for unknown generator")
	}
}

func TestLoadAllSkipsInvalid(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "ridge.yaml", ridgeYAML)
	writeFile(t, dir, "nested/arena.yml", walledYAML)
	writeFile(t, dir, "broken.yaml", "id: broken\nsize: {w: 2, h: 2}\nsquares:\n  - {x: 0, y: 0, ground: lava}\n")
	writeFile(t, dir, "notes.txt", "not a map")

	var buf bytes.Buffer
	loader := NewLoader(dir, log.New(&buf))

	maps, err := loader.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}

	if len(maps) != 2 {
		t.Fatalf("expected 2 maps, got %d", len(maps))
	}
	if maps[0].ID != "arena" || maps[1].ID != "ridge" {
		t.Errorf("maps not sorted by ID: %s, %s", maps[0].ID, maps[1].ID)
	}

	if !strings.Contains(buf.String(), "skipping map file") {
		t.Errorf("expected warning for broken map, log was %q", buf.String())
	}

	ids, err := loader.ListIDs()
	if err != nil {
		t.Fatalf("ListIDs failed: %v", err)
	}
	if len(ids) != 2 || ids[0] != "arena" || ids[1] != "ridge" {
		t.Errorf("unexpected ids: %v", ids)
	}
}

func TestLoadByID(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "ridge.yaml", ridgeYAML)

	loader := NewLoader(dir, nil)
	if _, err := loader.LoadByID("ridge"); err != nil {
		t.Errorf("LoadByID(ridge) failed: %v", err)
	}
	if _, err := loader.LoadByID("missing"); err == nil {
		t.Error("expected error for missing map")
	}
}

func TestLoadAllMissingRoot(t *testing.T) {
	loader := NewLoader(filepath.Join(t.TempDir(), "nope"), nil)
	if _, err := loader.LoadAll(); err == nil {
		t.Error("expected error for missing root directory")
	}
}

func TestBundledMaps(t *testing.T) {
	maps, err := NewLoader(filepath.Join("..", "..", "maps"), nil).LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	if len(maps) == 0 {
		t.Fatal("expected bundled maps")
	}

	for _, m := range maps {
		g, err := m.ToGrid()
		if err != nil {
			t.Errorf("map %s: ToGrid failed: %v", m.ID, err)
			continue
		}
		if len(g.Squares) != m.Width*m.Height {
			t.Errorf("map %s: %d squares for %dx%d", m.ID, len(g.Squares), m.Width, m.Height)
		}
	}
}
