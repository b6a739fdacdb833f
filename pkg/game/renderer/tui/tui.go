package tui

import (
	"bufio"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"gridpath/pkg/engine/terminal"
	"gridpath/pkg/engine/world"
	"gridpath/pkg/game/renderer"
)

// Icons drawn for each tile
const (
	IconPassable = "·"
	IconWater    = "≈"
	IconWall     = "▒"
	IconPath     = "●"
	IconStart    = "S"
	IconTarget   = "T"
	IconAnomaly  = "✕"
	IconUnknown  = "?"
)

// TUIRenderer is the colored terminal renderer
type TUIRenderer struct {
	colorPassable color.Style
	colorWater    color.Style
	colorWall     color.Style
	colorPath     color.Style
	colorEndpoint color.Style
	colorAnomaly  color.Style
	colorSubtle   color.Style

	// Center pads each line so the map sits in the middle of the terminal
	Center bool
	// Legend prints a key of the icons below the map
	Legend bool
}

// New creates a new TUI renderer
func New() *TUIRenderer {
	t := &TUIRenderer{Center: true, Legend: true}
	t.Init()
	return t
}

// Init initializes the colors
func (t *TUIRenderer) Init() {
	t.colorPassable = color.Style{color.FgGray}
	t.colorWater = color.Style{color.FgBlue, color.OpBold}
	t.colorWall = color.Style{color.FgWhite}
	t.colorPath = color.Style{color.FgGreen, color.OpBold}
	t.colorEndpoint = color.Style{color.FgYellow, color.OpBold}
	t.colorAnomaly = color.Style{color.FgRed, color.OpBold}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}
}

// Name returns the name of this renderer
func (t *TUIRenderer) Name() string {
	return "tui"
}

// Icon returns the uncolored icon for a tile
func Icon(tile renderer.Tile) string {
	switch tile {
	case renderer.TilePassable:
		return IconPassable
	case renderer.TileWater:
		return IconWater
	case renderer.TileWall:
		return IconWall
	case renderer.TilePath:
		return IconPath
	case renderer.TileStart:
		return IconStart
	case renderer.TileTarget:
		return IconTarget
	case renderer.TileAnomaly:
		return IconAnomaly
	default:
		return IconUnknown
	}
}

// renderTile returns the colored icon for a tile
func (t *TUIRenderer) renderTile(tile renderer.Tile) string {
	icon := Icon(tile)
	switch tile {
	case renderer.TilePassable:
		return t.colorPassable.Sprint(icon)
	case renderer.TileWater:
		return t.colorWater.Sprint(icon)
	case renderer.TileWall:
		return t.colorWall.Sprint(icon)
	case renderer.TilePath:
		return t.colorPath.Sprint(icon)
	case renderer.TileStart, renderer.TileTarget:
		return t.colorEndpoint.Sprint(icon)
	case renderer.TileAnomaly:
		return t.colorAnomaly.Sprint(icon)
	default:
		return t.colorSubtle.Sprint(icon)
	}
}

// Render prints the map, one grid row per line, centered when w is a terminal
func (t *TUIRenderer) Render(w io.Writer, grid *world.Grid, path []*world.Cell) error {
	bw := bufio.NewWriter(w)
	tiles := renderer.Tiles(grid, path)

	indent := ""
	if t.Center {
		indent = strings.Repeat(" ", terminal.Indent(w, grid.Length()))
	}

	for _, row := range tiles {
		bw.WriteString(indent)
		for _, tile := range row {
			bw.WriteString(t.renderTile(tile))
		}
		bw.WriteByte('\n')
	}

	if t.Legend {
		bw.WriteByte('\n')
		t.printLegend(bw, w)
	}

	return bw.Flush()
}

// printLegend prints the icon key centered under the map
func (t *TUIRenderer) printLegend(bw *bufio.Writer, w io.Writer) {
	entries := []struct {
		tile  renderer.Tile
		label string
	}{
		{renderer.TilePassable, gotext.Get("passable")},
		{renderer.TileWater, gotext.Get("water")},
		{renderer.TileWall, gotext.Get("wall")},
		{renderer.TilePath, gotext.Get("path")},
		{renderer.TileStart, gotext.Get("start")},
		{renderer.TileTarget, gotext.Get("target")},
	}

	parts := make([]string, len(entries))
	for i, e := range entries {
		parts[i] = t.renderTile(e.tile) + " " + t.colorSubtle.Sprint(e.label)
	}
	line := strings.Join(parts, "  ")

	if t.Center {
		bw.WriteString(strings.Repeat(" ", terminal.Indent(w, utf8.RuneCountInString(color.ClearCode(line)))))
	}
	bw.WriteString(line)
	bw.WriteByte('\n')
}
