package generator

import (
	"math/rand"

	"gridpath/pkg/engine/world"
)

// Line walker defaults
const (
	DefaultLines             = 4
	DefaultBranchProbability = float32(0.25)
	DefaultMinLineLength     = 3
	DefaultMaxLineLength     = 8
	branchDecay              = float32(0.1)
)

// LineWalkerGenerator draws straight wall segments in the four cardinal
// directions. Each step may branch into a new segment with a lower branch
// probability, so the recursion always dies out.
type LineWalkerGenerator struct {
	rng  *rand.Rand
	opts Options

	Lines             int
	BranchProbability float32
	MinLength         int
	MaxLength         int
}

// NewLineWalkerGenerator creates a line walker drawing from rng.
// Only ProtectEndpoints is read from the options.
func NewLineWalkerGenerator(rng *rand.Rand, options ...Option) *LineWalkerGenerator {
	opts := DefaultOptions()
	for _, opt := range options {
		opt(&opts)
	}
	return &LineWalkerGenerator{
		rng:               rng,
		opts:              opts,
		Lines:             DefaultLines,
		BranchProbability: DefaultBranchProbability,
		MinLength:         DefaultMinLineLength,
		MaxLength:         DefaultMaxLineLength,
	}
}

// Name returns the name of this generator
func (g *LineWalkerGenerator) Name() string {
	return "Line Walker"
}

// Generate walks each line from a random cell in a random direction
func (g *LineWalkerGenerator) Generate(grid *world.Grid) {
	for i := 0; i < g.Lines; i++ {
		x := g.rng.Intn(grid.Height())
		y := g.rng.Intn(grid.Length())
		g.walk(grid, x, y, g.randomDirection(), g.BranchProbability)
	}
}

// randomDirection returns a random cardinal direction
func (g *LineWalkerGenerator) randomDirection() world.Direction {
	return world.Direction(g.rng.Intn(4) * 2)
}

// walk marks a segment starting at (x, y) and returns where it ended.
// The segment stops early at the grid edge.
func (g *LineWalkerGenerator) walk(grid *world.Grid, x, y int, dir world.Direction, branchProbability float32) (int, int) {
	dx, dy := dir.Delta()

	distance := g.MinLength
	if g.MaxLength > g.MinLength {
		distance += g.rng.Intn(g.MaxLength - g.MinLength + 1)
	}

	for segment := 0; segment < distance; segment++ {
		g.mark(grid, x, y)

		if !grid.InBounds(x+dx, y+dy) {
			return x, y
		}

		if g.rng.Float32() < branchProbability {
			g.walk(grid, x, y, g.randomDirection(), branchProbability-branchDecay)
		}

		x += dx
		y += dy
	}

	g.mark(grid, x, y)
	return x, y
}

func (g *LineWalkerGenerator) mark(grid *world.Grid, x, y int) {
	if g.opts.ProtectEndpoints && grid.IsEndpoint(x, y) {
		return
	}
	grid.SetType(x, y, world.Wall)
}
