package world

import (
	"errors"
	"fmt"
)

// Default grid dimensions
const (
	DefaultLength = 30
	DefaultHeight = 30
)

// ErrInvalidDimensions indicates a grid was requested with a non-positive size.
var ErrInvalidDimensions = errors.New("world: grid dimensions must be positive")

// Grid is the obstacle map with encapsulated cell storage.
//
// Cells are addressed by (x, y) with 0 <= x < Height and 0 <= y < Length.
// Start is the corner (0, 0) and Target the opposite corner
// (Height-1, Length-1). Both are cells of the grid itself.
type Grid struct {
	cells  []*Cell
	length int
	height int

	startCell  *Cell
	targetCell *Cell
}

// NewGrid creates an all-passable grid with the given dimensions
func NewGrid(length, height int) (*Grid, error) {
	if length <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, length, height)
	}

	g := &Grid{
		cells:  make([]*Cell, length*height),
		length: length,
		height: height,
	}
	for x := 0; x < height; x++ {
		for y := 0; y < length; y++ {
			g.cells[g.Index(x, y)] = NewCell(x, y)
		}
	}
	g.startCell = g.Cell(0, 0)
	g.targetCell = g.Cell(height-1, length-1)

	return g, nil
}

// NewDefaultGrid creates a DefaultLength x DefaultHeight grid
func NewDefaultGrid() *Grid {
	g, _ := NewGrid(DefaultLength, DefaultHeight)
	return g
}

// Length returns the extent of the y axis
func (g *Grid) Length() int {
	return g.length
}

// Height returns the extent of the x axis
func (g *Grid) Height() int {
	return g.height
}

// Size returns the number of cells in the grid
func (g *Grid) Size() int {
	return len(g.cells)
}

// Start returns the start cell
func (g *Grid) Start() *Cell {
	return g.startCell
}

// Target returns the target cell
func (g *Grid) Target() *Cell {
	return g.targetCell
}

// InBounds checks if an x/y position is within grid bounds
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.height && y >= 0 && y < g.length
}

// Index maps (x, y) to a linear index. Distinct cells never share an index.
func (g *Grid) Index(x, y int) int {
	return x*g.length + y
}

// Coordinate converts a linear index back to (x, y)
func (g *Grid) Coordinate(idx int) (x, y int) {
	return idx / g.length, idx % g.length
}

// Cell returns the cell at the given position, or nil if out of bounds
func (g *Grid) Cell(x, y int) *Cell {
	if !g.InBounds(x, y) {
		return nil
	}
	return g.cells[g.Index(x, y)]
}

// CellAt returns the cell with the given linear index, or nil if out of range
func (g *Grid) CellAt(idx int) *Cell {
	if idx < 0 || idx >= len(g.cells) {
		return nil
	}
	return g.cells[idx]
}

// CellAtPoint returns the cell at p, or nil if out of bounds
func (g *Grid) CellAtPoint(p Point) *Cell {
	return g.Cell(p.X, p.Y)
}

// Neighbor returns the cell adjacent to c in the given direction, or nil
func (g *Grid) Neighbor(c *Cell, dir Direction) *Cell {
	if c == nil || !dir.IsValid() {
		return nil
	}
	dx, dy := dir.Delta()
	return g.Cell(c.x+dx, c.y+dy)
}

// ParentOf returns the predecessor of c recorded by the last search, or nil
func (g *Grid) ParentOf(c *Cell) *Cell {
	if c == nil || !c.HasParent() {
		return nil
	}
	return g.CellAt(c.Parent)
}

// SetType sets the type of the cell at (x, y). Returns false if out of bounds.
func (g *Grid) SetType(x, y int, t CellType) bool {
	cell := g.Cell(x, y)
	if cell == nil {
		return false
	}
	cell.Type = t
	return true
}

// IsEndpoint returns true if (x, y) is the start or the target
func (g *Grid) IsEndpoint(x, y int) bool {
	return (g.startCell.x == x && g.startCell.y == y) ||
		(g.targetCell.x == x && g.targetCell.y == y)
}

// ForEachCell iterates over all cells in the grid, calling the provided function for each
func (g *Grid) ForEachCell(fn func(x, y int, cell *Cell)) {
	for x := 0; x < g.height; x++ {
		for y := 0; y < g.length; y++ {
			fn(x, y, g.cells[g.Index(x, y)])
		}
	}
}

// CountType returns how many cells have the given type
func (g *Grid) CountType(t CellType) int {
	n := 0
	for _, c := range g.cells {
		if c.Type == t {
			n++
		}
	}
	return n
}

// ResetScratch clears the search values of every cell.
// A grid must be reset before it is searched a second time.
func (g *Grid) ResetScratch() {
	for _, c := range g.cells {
		c.ResetScratch()
	}
}

// Validate checks the grid for common issues and returns an error description or empty string if valid
func (g *Grid) Validate() string {
	if g.length <= 0 || g.height <= 0 {
		return "Grid has invalid dimensions"
	}
	if g.startCell == nil {
		return "Grid has no start cell"
	}
	if g.targetCell == nil {
		return "Grid has no target cell"
	}
	for _, c := range g.cells {
		if !c.Type.IsValid() {
			return fmt.Sprintf("Cell %v has unknown type %d", c.Point(), int(c.Type))
		}
	}
	return ""
}
