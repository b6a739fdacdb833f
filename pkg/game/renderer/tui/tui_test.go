package tui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gookit/color"

	"gridpath/pkg/engine/pathfind"
	"gridpath/pkg/engine/world"
	"gridpath/pkg/game/renderer"
)

func TestRender_Icons(t *testing.T) {
	grid, err := world.NewGrid(3, 3)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	grid.SetType(0, 2, world.Wall)
	grid.SetType(2, 0, world.Water)

	pf := pathfind.New(grid)
	pf.FindPath()

	var buf bytes.Buffer
	r := New()
	r.Legend = false
	if err := r.Render(&buf, grid, pf.ReconstructPath()); err != nil {
		t.Fatalf("Render: %v", err)
	}

	lines := strings.Split(strings.TrimRight(color.ClearCode(buf.String()), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}

	// The buffer is not a terminal, so centering uses the default width.
	want := []string{"S·▒", "·●·", "≈·T"}
	for i, line := range lines {
		if got := strings.TrimLeft(line, " "); got != want[i] {
			t.Errorf("line %d = %q, want %q", i, got, want[i])
		}
	}
}

func TestRender_Legend(t *testing.T) {
	grid, _ := world.NewGrid(2, 2)

	var buf bytes.Buffer
	r := New()
	r.Center = false
	if err := r.Render(&buf, grid, nil); err != nil {
		t.Fatalf("Render: %v", err)
	}

	out := color.ClearCode(buf.String())
	if !strings.HasPrefix(out, "S·\n·T\n") {
		t.Errorf("unexpected map output %q", out)
	}
	for _, label := range []string{"passable", "water", "wall", "path", "start", "target"} {
		if !strings.Contains(out, label) {
			t.Errorf("legend is missing %q", label)
		}
	}
}

func TestIcon_AllTiles(t *testing.T) {
	seen := map[string]renderer.Tile{}
	for tile := renderer.TilePassable; tile <= renderer.TileUnknown; tile++ {
		icon := Icon(tile)
		if prev, ok := seen[icon]; ok {
			t.Errorf("tiles %v and %v share icon %q", prev, tile, icon)
		}
		seen[icon] = tile
	}
}
