package report

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gridpath/pkg/engine/pathfind"
	"gridpath/pkg/engine/world"
)

func TestFormatPath(t *testing.T) {
	cases := []struct {
		name string
		path []world.Point
		want string
	}{
		{"Empty", nil, ""},
		{"Single", []world.Point{{X: 0, Y: 0}}, "(0, 0)"},
		{"Three", []world.Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 1, Y: 2}}, "(0, 0) -> (1, 1) -> (1, 2)"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FormatPath(tc.path))
		})
	}
}

func TestBuild_Found(t *testing.T) {
	g, err := world.NewGrid(5, 5)
	require.NoError(t, err)

	r := Build(g, pathfind.New(g))
	require.True(t, r.Found())
	assert.NoError(t, r.Err())
	assert.Equal(t, world.Point{X: 0, Y: 0}, r.Start)
	assert.Equal(t, world.Point{X: 4, Y: 4}, r.Target)
	assert.Len(t, r.Path, 5)
	assert.Equal(t, 56, r.Cost)
	assert.Empty(t, r.Anomalies)

	var buf bytes.Buffer
	n, err := r.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)
	out := buf.String()
	assert.Contains(t, out, "start: (0, 0)\n")
	assert.Contains(t, out, "target: (4, 4)\n")
	assert.Contains(t, out, "length: 5\n")
	assert.Contains(t, out, "cost: 56\n")
	assert.Contains(t, out, "path: (0, 0) -> (1, 1) -> (2, 2) -> (3, 3) -> (4, 4)\n")
}

func TestBuild_NotFound(t *testing.T) {
	g, _ := world.NewGrid(3, 3)
	for y := 0; y < 3; y++ {
		g.SetType(1, y, world.Wall)
	}

	r := Build(g, pathfind.New(g))
	assert.False(t, r.Found())
	assert.Equal(t, pathfind.NotFound, r.Result)
	assert.Empty(t, r.Path)
	assert.NoError(t, r.Err())

	var buf bytes.Buffer
	_, err := r.WriteTo(&buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "no path from (0, 0) to (2, 2)")
	assert.NotContains(t, buf.String(), "path: ")
}

// A grid edited after the search leaves a wall on the path; the report must
// surface it instead of printing the path as if it were valid.
func TestBuild_ReportsAnomalies(t *testing.T) {
	g, _ := world.NewGrid(4, 4)
	pf := pathfind.New(g)
	require.Equal(t, pathfind.Found, pf.FindPath())
	g.SetType(2, 2, world.Wall)

	r := Build(g, pf)
	require.Len(t, r.Anomalies, 1)
	assert.Equal(t, Anomaly{Step: 2, Point: world.Point{X: 2, Y: 2}, Type: world.Wall}, r.Anomalies[0])
	assert.True(t, errors.Is(r.Err(), ErrPathAnomaly))

	var buf bytes.Buffer
	_, _ = r.WriteTo(&buf)
	assert.Contains(t, buf.String(), "anomaly: pos:(2, 2) wrong path type: Wall")
}
