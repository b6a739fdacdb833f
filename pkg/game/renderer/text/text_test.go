package text

import (
	"bytes"
	"strings"
	"testing"

	"gridpath/pkg/engine/pathfind"
	"gridpath/pkg/engine/world"
)

func TestRender_MapAndPath(t *testing.T) {
	grid, err := world.NewGrid(4, 3)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	grid.SetType(0, 2, world.Wall)
	grid.SetType(2, 0, world.Water)

	pf := pathfind.New(grid)
	if pf.FindPath() != pathfind.Found {
		t.Fatal("expected a path")
	}

	var buf bytes.Buffer
	if err := New().Render(&buf, grid, pf.ReconstructPath()); err != nil {
		t.Fatalf("Render: %v", err)
	}

	want := strings.Join([]string{
		"S.#.",
		".*..",
		"~.*T",
	}, "\n") + "\n"
	if buf.String() != want {
		t.Errorf("Render output:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestRender_NoPathAndLegend(t *testing.T) {
	grid, _ := world.NewGrid(3, 2)
	grid.SetType(1, 0, world.Wall)

	var buf bytes.Buffer
	r := &TextRenderer{Legend: true}
	if err := r.Render(&buf, grid, nil); err != nil {
		t.Fatalf("Render: %v", err)
	}
	lines := strings.Split(buf.String(), "\n")
	if lines[0] != "S.." || lines[1] != "#.T" {
		t.Errorf("map lines = %q, %q", lines[0], lines[1])
	}
	if !strings.Contains(buf.String(), "# wall") {
		t.Errorf("legend missing from output:\n%s", buf.String())
	}
}

func TestRender_AnomalyIsNotDrawnAsPath(t *testing.T) {
	grid, _ := world.NewGrid(3, 3)
	pf := pathfind.New(grid)
	pf.FindPath()
	path := pf.ReconstructPath()
	grid.SetType(1, 1, world.Water)

	var buf bytes.Buffer
	_ = New().Render(&buf, grid, path)
	if got := strings.Split(buf.String(), "\n")[1]; got != ".!." {
		t.Errorf("middle row = %q, want %q", got, ".!.")
	}
}
