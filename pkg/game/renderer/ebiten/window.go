// Package ebiten shows the map and path in a desktop window.
package ebiten

import (
	"errors"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"gridpath/pkg/engine/world"
	"gridpath/pkg/game/renderer"
)

// Window sizing limits
const (
	MaxTileSize   = 32
	MinTileSize   = 2
	MaxWindowEdge = 960
	tileMargin    = 1
)

// Viewer is an ebiten.Game that draws a fixed map until the window is closed
type Viewer struct {
	tiles    [][]renderer.Tile
	length   int
	height   int
	tileSize int
	title    string

	windowOpenedLogged bool
}

// NewViewer lays out the grid and path for drawing
func NewViewer(grid *world.Grid, path []*world.Cell) *Viewer {
	return &Viewer{
		tiles:    renderer.Tiles(grid, path),
		length:   grid.Length(),
		height:   grid.Height(),
		tileSize: TileSize(grid.Length(), grid.Height()),
		title:    "gridpath",
	}
}

// TileSize picks the largest tile edge that keeps the window within MaxWindowEdge
func TileSize(length, height int) int {
	edge := max(length, height)
	if edge <= 0 {
		return MaxTileSize
	}
	size := MaxWindowEdge / edge
	return min(max(size, MinTileSize), MaxTileSize)
}

// ScreenSize returns the logical screen size in pixels
func (v *Viewer) ScreenSize() (width, height int) {
	return v.length * v.tileSize, v.height * v.tileSize
}

// Update closes the window on Escape or Q (Ebiten interface)
func (v *Viewer) Update() error {
	if !v.windowOpenedLogged {
		v.windowOpenedLogged = true
		w, h := ebiten.WindowSize()
		log.Printf("Map window opened (%dx%d)", w, h)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	return nil
}

// Draw paints one square per cell (Ebiten interface)
func (v *Viewer) Draw(screen *ebiten.Image) {
	screen.Fill(renderer.ColorGridLine)

	margin := float32(0)
	if v.tileSize > 4 {
		margin = tileMargin
	}
	size := float32(v.tileSize)

	for x, row := range v.tiles {
		for y, tile := range row {
			vector.DrawFilledRect(screen,
				float32(y)*size+margin, float32(x)*size+margin,
				size-margin*2, size-margin*2,
				renderer.TileColor(tile), false)
		}
	}
}

// Layout returns the fixed map size (Ebiten interface)
func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.ScreenSize()
}

// Show opens a window with the map and blocks until it is closed
func Show(grid *world.Grid, path []*world.Cell) error {
	v := NewViewer(grid, path)
	w, h := v.ScreenSize()

	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(v.title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(v); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
