package renderer

import (
	"io"
	"sort"

	"gridpath/pkg/engine/world"
)

// Renderer defines the interface for map rendering backends.
// Implementations include plain text, colored terminal output and PNG images.
type Renderer interface {
	// Name identifies the backend on the command line
	Name() string

	// Render draws the grid with the path on top of it.
	// An empty path draws the map alone.
	Render(w io.Writer, grid *world.Grid, path []*world.Cell) error
}

// Current holds the active renderer instance
var Current Renderer

// SetRenderer sets the active renderer
func SetRenderer(r Renderer) {
	Current = r
}

// Render draws with the current renderer. Without one it draws nothing.
func Render(w io.Writer, grid *world.Grid, path []*world.Cell) error {
	if Current != nil {
		return Current.Render(w, grid, path)
	}
	return nil
}

var registry = map[string]Renderer{}

// Register makes a renderer selectable by its name
func Register(r Renderer) {
	registry[r.Name()] = r
}

// Lookup returns the renderer registered under name
func Lookup(name string) (Renderer, bool) {
	r, ok := registry[name]
	return r, ok
}

// Names returns the registered renderer names in sorted order
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
