package img

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gridpath/pkg/engine/pathfind"
	"gridpath/pkg/engine/world"
	"gridpath/pkg/game/renderer"
)

func rgba(c color.Color) color.RGBA {
	r, g, b, a := c.RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}

func centerOf(img image.Image, x, y, scale int) color.RGBA {
	return rgba(img.At(y*scale+scale/2, x*scale+scale/2))
}

func TestRender_TileColors(t *testing.T) {
	grid, err := world.NewGrid(4, 3)
	require.NoError(t, err)
	grid.SetType(0, 3, world.Wall)
	grid.SetType(2, 0, world.Water)

	pf := pathfind.New(grid)
	require.Equal(t, pathfind.Found, pf.FindPath())

	r := &PNGRenderer{CellSize: 10}
	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, grid, pf.ReconstructPath()))

	decoded, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 40, 30), decoded.Bounds())

	assert.Equal(t, renderer.ColorStart, centerOf(decoded, 0, 0, 10))
	assert.Equal(t, renderer.ColorTarget, centerOf(decoded, 2, 3, 10))
	assert.Equal(t, renderer.ColorWall, centerOf(decoded, 0, 3, 10))
	assert.Equal(t, renderer.ColorWater, centerOf(decoded, 2, 0, 10))
	assert.Equal(t, renderer.ColorPath, centerOf(decoded, 1, 1, 10))
	assert.Equal(t, renderer.ColorPassable, centerOf(decoded, 0, 1, 10))
}

func TestSaveFile(t *testing.T) {
	grid, err := world.NewGrid(3, 3)
	require.NoError(t, err)

	name := filepath.Join(t.TempDir(), "map.png")
	require.NoError(t, New().SaveFile(name, grid, nil))

	f, err := os.Open(name)
	require.NoError(t, err)
	defer f.Close()

	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, 3*DefaultCellSize, cfg.Width)
	assert.Equal(t, 3*DefaultCellSize, cfg.Height)
}

func TestDraw_DefaultCellSize(t *testing.T) {
	grid, err := world.NewGrid(5, 2)
	require.NoError(t, err)

	dc := (&PNGRenderer{}).Draw(grid, nil)
	assert.Equal(t, 5*DefaultCellSize, dc.Width())
	assert.Equal(t, 2*DefaultCellSize, dc.Height())
}
