// Package renderer turns a grid and a path into drawable tiles and defines
// the interface shared by the rendering backends.
package renderer

import (
	"image/color"

	"gridpath/pkg/engine/world"
)

// Tile is what a backend draws for one cell
type Tile int

const (
	TilePassable Tile = iota
	TileWater
	TileWall
	TilePath
	TileStart
	TileTarget
	// TileAnomaly is a path cell that is not passable. It is drawn
	// distinctly instead of as part of the path.
	TileAnomaly
	TileUnknown
)

// String returns the string representation of a tile
func (t Tile) String() string {
	switch t {
	case TilePassable:
		return "Passable"
	case TileWater:
		return "Water"
	case TileWall:
		return "Wall"
	case TilePath:
		return "Path"
	case TileStart:
		return "Start"
	case TileTarget:
		return "Target"
	case TileAnomaly:
		return "Anomaly"
	default:
		return "Unknown"
	}
}

// TileForType maps a cell type to its base tile
func TileForType(t world.CellType) Tile {
	switch t {
	case world.Passable:
		return TilePassable
	case world.Water:
		return TileWater
	case world.Wall:
		return TileWall
	default:
		return TileUnknown
	}
}

// Tiles lays out the grid as tiles[x][y] with the path drawn over it.
// Start and target are marked even when no path was found.
func Tiles(grid *world.Grid, path []*world.Cell) [][]Tile {
	tiles := make([][]Tile, grid.Height())
	for x := range tiles {
		tiles[x] = make([]Tile, grid.Length())
	}
	grid.ForEachCell(func(x, y int, cell *world.Cell) {
		tiles[x][y] = TileForType(cell.Type)
	})

	for _, cell := range path {
		if cell == nil || !grid.InBounds(cell.X(), cell.Y()) {
			continue
		}
		if cell.IsPassable() {
			tiles[cell.X()][cell.Y()] = TilePath
		} else {
			tiles[cell.X()][cell.Y()] = TileAnomaly
		}
	}

	start, target := grid.Start(), grid.Target()
	if tiles[start.X()][start.Y()] != TileAnomaly {
		tiles[start.X()][start.Y()] = TileStart
	}
	if tiles[target.X()][target.Y()] != TileAnomaly {
		tiles[target.X()][target.Y()] = TileTarget
	}

	return tiles
}

// Palette colors shared by the image and window backends
var (
	ColorPassable = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	ColorWater    = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	ColorWall     = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	ColorPath     = color.RGBA{R: 0, G: 128, B: 0, A: 255}
	ColorStart    = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	ColorTarget   = color.RGBA{R: 255, G: 215, B: 0, A: 255}
	ColorAnomaly  = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	ColorGridLine = color.RGBA{R: 96, G: 96, B: 96, A: 255}
)

// TileColor returns the palette color for a tile
func TileColor(t Tile) color.RGBA {
	switch t {
	case TilePassable:
		return ColorPassable
	case TileWater:
		return ColorWater
	case TileWall:
		return ColorWall
	case TilePath:
		return ColorPath
	case TileStart:
		return ColorStart
	case TileTarget:
		return ColorTarget
	default:
		return ColorAnomaly
	}
}
