// Package img draws the map and path into a PNG image.
package img

import (
	"fmt"
	"io"
	"os"

	"github.com/fogleman/gg"

	"gridpath/pkg/engine/world"
	"gridpath/pkg/game/renderer"
)

// DefaultCellSize is the edge of one cell in pixels
const DefaultCellSize = 20

// PNGRenderer paints one square per cell. Grid row x is image row x.
type PNGRenderer struct {
	CellSize  int
	GridLines bool
	// PathLine strokes a line through the centers of consecutive path cells
	PathLine bool
}

// New creates a PNG renderer with the default cell size, grid lines and path line
func New() *PNGRenderer {
	return &PNGRenderer{CellSize: DefaultCellSize, GridLines: true, PathLine: true}
}

// Name returns the name of this renderer
func (r *PNGRenderer) Name() string {
	return "png"
}

func (r *PNGRenderer) cellSize() int {
	if r.CellSize <= 0 {
		return DefaultCellSize
	}
	return r.CellSize
}

// Draw paints the map into a new drawing context
func (r *PNGRenderer) Draw(grid *world.Grid, path []*world.Cell) *gg.Context {
	scale := r.cellSize()
	tiles := renderer.Tiles(grid, path)

	dc := gg.NewContext(grid.Length()*scale, grid.Height()*scale)
	dc.SetColor(renderer.ColorPassable)
	dc.Clear()

	for x, row := range tiles {
		for y, tile := range row {
			dc.SetColor(renderer.TileColor(tile))
			dc.DrawRectangle(float64(y*scale), float64(x*scale), float64(scale), float64(scale))
			dc.Fill()
		}
	}

	if r.GridLines && scale > 2 {
		dc.SetColor(renderer.ColorGridLine)
		dc.SetLineWidth(1)
		for x := 0; x <= grid.Height(); x++ {
			dc.DrawLine(0, float64(x*scale), float64(grid.Length()*scale), float64(x*scale))
		}
		for y := 0; y <= grid.Length(); y++ {
			dc.DrawLine(float64(y*scale), 0, float64(y*scale), float64(grid.Height()*scale))
		}
		dc.Stroke()
	}

	if r.PathLine && len(path) > 1 {
		half := float64(scale) / 2
		dc.SetColor(renderer.ColorPath)
		dc.SetLineWidth(float64(scale) / 4)
		dc.MoveTo(float64(path[0].Y()*scale)+half, float64(path[0].X()*scale)+half)
		for _, c := range path[1:] {
			dc.LineTo(float64(c.Y()*scale)+half, float64(c.X()*scale)+half)
		}
		dc.Stroke()
	}

	return dc
}

// Render encodes the image as PNG into w
func (r *PNGRenderer) Render(w io.Writer, grid *world.Grid, path []*world.Cell) error {
	if err := r.Draw(grid, path).EncodePNG(w); err != nil {
		return fmt.Errorf("img: encode png: %w", err)
	}
	return nil
}

// SaveFile writes the image to the named file
func (r *PNGRenderer) SaveFile(name string, grid *world.Grid, path []*world.Cell) error {
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("img: %w", err)
	}
	if err := r.Render(f, grid, path); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
