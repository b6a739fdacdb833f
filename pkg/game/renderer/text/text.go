// Package text renders the map as plain ASCII, one row of cells per line.
package text

import (
	"bufio"
	"fmt"
	"io"

	"gridpath/pkg/engine/world"
	"gridpath/pkg/game/renderer"
)

// Symbols for each tile
const (
	SymbolPassable = '.'
	SymbolWater    = '~'
	SymbolWall     = '#'
	SymbolPath     = '*'
	SymbolStart    = 'S'
	SymbolTarget   = 'T'
	SymbolAnomaly  = '!'
	SymbolUnknown  = '?'
)

// TextRenderer writes one character per cell
type TextRenderer struct {
	// Legend adds a key of the symbols below the map
	Legend bool
}

// New creates a new text renderer
func New() *TextRenderer {
	return &TextRenderer{}
}

// Name returns the name of this renderer
func (r *TextRenderer) Name() string {
	return "text"
}

// Symbol returns the character drawn for a tile
func Symbol(t renderer.Tile) rune {
	switch t {
	case renderer.TilePassable:
		return SymbolPassable
	case renderer.TileWater:
		return SymbolWater
	case renderer.TileWall:
		return SymbolWall
	case renderer.TilePath:
		return SymbolPath
	case renderer.TileStart:
		return SymbolStart
	case renderer.TileTarget:
		return SymbolTarget
	case renderer.TileAnomaly:
		return SymbolAnomaly
	default:
		return SymbolUnknown
	}
}

// Render writes the grid row by row: x selects the line, y the column
func (r *TextRenderer) Render(w io.Writer, grid *world.Grid, path []*world.Cell) error {
	bw := bufio.NewWriter(w)
	tiles := renderer.Tiles(grid, path)

	for _, row := range tiles {
		for _, tile := range row {
			bw.WriteRune(Symbol(tile))
		}
		bw.WriteByte('\n')
	}

	if r.Legend {
		fmt.Fprintf(bw, "\n%c passable  %c water  %c wall  %c path  %c start  %c target  %c anomaly\n",
			SymbolPassable, SymbolWater, SymbolWall, SymbolPath, SymbolStart, SymbolTarget, SymbolAnomaly)
	}

	return bw.Flush()
}
