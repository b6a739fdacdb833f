package generator

import (
	"math/rand"

	"github.com/zyedidia/generic/mapset"

	"gridpath/pkg/engine/world"
)

// Options controls how many blobs are carved and how large they are.
type Options struct {
	WallBlobs  int
	WaterBlobs int

	// Blob sizes are drawn uniformly from [MinBlobSize, MaxBlobSize).
	MinBlobSize int
	MaxBlobSize int

	// ProtectEndpoints keeps the start and target cells passable.
	// Off by default: blobs may cover either corner and the search then fails.
	ProtectEndpoints bool
}

// DefaultOptions returns three wall blobs and three water blobs of 10 to 19 cells
func DefaultOptions() Options {
	return Options{
		WallBlobs:   3,
		WaterBlobs:  3,
		MinBlobSize: 10,
		MaxBlobSize: 20,
	}
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithProtectedEndpoints stops blobs from overwriting the start and target.
func WithProtectedEndpoints() Option {
	return func(o *Options) { o.ProtectEndpoints = true }
}

// WithBlobCounts sets how many wall and water blobs are carved.
func WithBlobCounts(walls, water int) Option {
	return func(o *Options) {
		o.WallBlobs = walls
		o.WaterBlobs = water
	}
}

// WithBlobSize sets the half-open range blob sizes are drawn from.
func WithBlobSize(minSize, maxSize int) Option {
	return func(o *Options) {
		o.MinBlobSize = minSize
		o.MaxBlobSize = maxSize
	}
}

// BlobGenerator carves random-walk clusters of walls, then water, into a grid
type BlobGenerator struct {
	rng  *rand.Rand
	opts Options
}

// NewBlobGenerator creates a generator drawing every random value from rng
func NewBlobGenerator(rng *rand.Rand, options ...Option) *BlobGenerator {
	opts := DefaultOptions()
	for _, option := range options {
		option(&opts)
	}
	if opts.MinBlobSize < 1 {
		opts.MinBlobSize = 1
	}
	if opts.MaxBlobSize <= opts.MinBlobSize {
		opts.MaxBlobSize = opts.MinBlobSize + 1
	}
	return &BlobGenerator{rng: rng, opts: opts}
}

// Name returns the name of this generator
func (g *BlobGenerator) Name() string {
	return "Blob"
}

// Options returns the options the generator was built with
func (g *BlobGenerator) Options() Options {
	return g.opts
}

// MaxObstacleCells is the upper bound on cells a single Generate call can touch
func (g *BlobGenerator) MaxObstacleCells() int {
	return (g.opts.WallBlobs + g.opts.WaterBlobs) * (g.opts.MaxBlobSize - 1)
}

// Generate carves the wall blobs and then the water blobs. Water is written
// last, so a cell covered by both ends up as Water.
func (g *BlobGenerator) Generate(grid *world.Grid) {
	for i := 0; i < g.opts.WallBlobs; i++ {
		g.place(grid, world.Wall)
	}
	for i := 0; i < g.opts.WaterBlobs; i++ {
		g.place(grid, world.Water)
	}
}

func (g *BlobGenerator) place(grid *world.Grid, t world.CellType) {
	for _, p := range g.Blob(grid, g.blobSize()) {
		if g.opts.ProtectEndpoints && grid.IsEndpoint(p.X, p.Y) {
			continue
		}
		grid.SetType(p.X, p.Y, t)
	}
}

func (g *BlobGenerator) blobSize() int {
	return g.opts.MinBlobSize + g.rng.Intn(g.opts.MaxBlobSize-g.opts.MinBlobSize)
}

// Blob random-walks up to n distinct cells and returns them in visiting order.
// Each step tries the eight neighbors of the current cell in random order and
// moves to the first one that is in bounds and not yet in this blob. If none
// qualifies the blob ends early.
func (g *BlobGenerator) Blob(grid *world.Grid, n int) []world.Point {
	if n <= 0 {
		return nil
	}

	current := world.Point{X: g.rng.Intn(grid.Height()), Y: g.rng.Intn(grid.Length())}
	blob := []world.Point{current}
	visited := mapset.New[int]()
	visited.Put(grid.Index(current.X, current.Y))

	dirs := world.AllDirections()
	for len(blob) < n {
		g.rng.Shuffle(len(dirs), func(i, j int) { dirs[i], dirs[j] = dirs[j], dirs[i] })

		moved := false
		for _, dir := range dirs {
			next := current.Add(dir)
			if !grid.InBounds(next.X, next.Y) || visited.Has(grid.Index(next.X, next.Y)) {
				continue
			}
			visited.Put(grid.Index(next.X, next.Y))
			blob = append(blob, next)
			current = next
			moved = true
			break
		}
		if !moved {
			break
		}
	}

	return blob
}
