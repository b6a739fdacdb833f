// Package generator fills a world.Grid with obstacles.
package generator

import (
	"math/rand"
	"time"

	"gridpath/pkg/engine/world"
)

// GridGenerator is an interface for obstacle generation algorithms
type GridGenerator interface {
	Generate(grid *world.Grid)
	Name() string
}

// Seeded returns a random source for the given seed. A zero seed uses the clock.
func Seeded(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Compile-time interface checks
var (
	_ GridGenerator = (*BlobGenerator)(nil)
	_ GridGenerator = (*LineWalkerGenerator)(nil)
	_ GridGenerator = EmptyGenerator{}
)

// EmptyGenerator leaves the grid untouched
type EmptyGenerator struct{}

// Name returns the name of this generator
func (EmptyGenerator) Name() string {
	return "Empty"
}

// Generate does nothing
func (EmptyGenerator) Generate(*world.Grid) {}

// ByName returns the generator registered under name, using rng for random draws
func ByName(name string, rng *rand.Rand, options ...Option) (GridGenerator, bool) {
	switch name {
	case "blob", "":
		return NewBlobGenerator(rng, options...), true
	case "lines":
		return NewLineWalkerGenerator(rng, options...), true
	case "empty":
		return EmptyGenerator{}, true
	default:
		return nil, false
	}
}
