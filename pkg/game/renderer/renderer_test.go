package renderer

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gridpath/pkg/engine/world"
)

type countingRenderer struct {
	name  string
	calls int
}

func (c *countingRenderer) Name() string { return c.name }

func (c *countingRenderer) Render(w io.Writer, grid *world.Grid, path []*world.Cell) error {
	c.calls++
	_, err := io.WriteString(w, c.name)
	return err
}

func TestRegistry(t *testing.T) {
	b := &countingRenderer{name: "b"}
	a := &countingRenderer{name: "a"}
	Register(b)
	Register(a)

	got, ok := Lookup("a")
	require.True(t, ok)
	assert.Same(t, a, got)

	_, ok = Lookup("missing")
	assert.False(t, ok)

	assert.Equal(t, []string{"a", "b"}, Names())
}

func TestRender_Current(t *testing.T) {
	grid, err := world.NewGrid(2, 2)
	require.NoError(t, err)

	SetRenderer(nil)
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, grid, nil))
	assert.Empty(t, buf.String())

	r := &countingRenderer{name: "counting"}
	SetRenderer(r)
	defer SetRenderer(nil)
	require.NoError(t, Render(&buf, grid, nil))
	assert.Equal(t, "counting", buf.String())
	assert.Equal(t, 1, r.calls)
}

func TestTiles(t *testing.T) {
	grid, err := world.NewGrid(3, 2)
	require.NoError(t, err)
	grid.SetType(0, 1, world.Wall)
	grid.SetType(1, 0, world.Water)

	path := []*world.Cell{grid.Cell(0, 0), grid.Cell(0, 1), grid.Cell(1, 2)}
	tiles := Tiles(grid, path)

	require.Len(t, tiles, 2)
	require.Len(t, tiles[0], 3)
	assert.Equal(t, TileStart, tiles[0][0])
	assert.Equal(t, TileAnomaly, tiles[0][1])
	assert.Equal(t, TilePassable, tiles[0][2])
	assert.Equal(t, TileWater, tiles[1][0])
	assert.Equal(t, TilePassable, tiles[1][1])
	assert.Equal(t, TileTarget, tiles[1][2])
}

func TestTiles_BlockedEndpointIsAnomaly(t *testing.T) {
	grid, err := world.NewGrid(2, 2)
	require.NoError(t, err)
	grid.SetType(1, 1, world.Wall)

	tiles := Tiles(grid, []*world.Cell{grid.Cell(0, 0), grid.Cell(1, 1)})
	assert.Equal(t, TileAnomaly, tiles[1][1])

	tiles = Tiles(grid, nil)
	assert.Equal(t, TileTarget, tiles[1][1])
}

func TestTileColor(t *testing.T) {
	assert.Equal(t, ColorWall, TileColor(TileWall))
	assert.Equal(t, ColorPath, TileColor(TilePath))
	assert.Equal(t, ColorAnomaly, TileColor(TileUnknown))
	assert.Equal(t, TileUnknown, TileForType(world.CellType(99)))
	assert.Equal(t, "Anomaly", TileAnomaly.String())
}
