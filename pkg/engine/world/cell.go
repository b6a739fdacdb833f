// Package world provides the 2D obstacle grid shared by the generator,
// the path finder and the renderers.
package world

// CellType is the terrain of a single cell.
type CellType int

// Cell types
const (
	Passable CellType = iota
	Water
	Wall
)

// AllCellTypes returns every valid cell type for iteration
func AllCellTypes() []CellType {
	return []CellType{Passable, Water, Wall}
}

// String returns the string representation of a cell type
func (t CellType) String() string {
	switch t {
	case Passable:
		return "Passable"
	case Water:
		return "Water"
	case Wall:
		return "Wall"
	default:
		return "Unknown"
	}
}

// IsValid returns true if t is one of the known cell types
func (t CellType) IsValid() bool {
	return t >= Passable && t <= Wall
}

// IsPassable returns true if a path may step onto a cell of this type
func (t CellType) IsPassable() bool {
	switch t {
	case Passable:
		return true
	case Water, Wall:
		return false
	default:
		return false
	}
}

// NoParent marks a cell that has no predecessor in the search tree.
const NoParent = -1

// Cell represents a single cell in the grid.
//
// G, H, F and Parent are scratch values written by a search. Parent is the
// linear grid index of the predecessor (see Grid.Index), never a pointer.
type Cell struct {
	x int
	y int

	Type CellType

	G      int
	H      int
	F      int
	Parent int
}

// NewCell creates a new passable cell at the given position
func NewCell(x, y int) *Cell {
	return &Cell{
		x:      x,
		y:      y,
		Type:   Passable,
		Parent: NoParent,
	}
}

// X returns the cell's outer coordinate
func (c *Cell) X() int {
	return c.x
}

// Y returns the cell's inner coordinate
func (c *Cell) Y() int {
	return c.y
}

// Point returns the cell's coordinates
func (c *Cell) Point() Point {
	return Point{X: c.x, Y: c.y}
}

// IsPassable returns true if the cell can be traversed
func (c *Cell) IsPassable() bool {
	return c != nil && c.Type.IsPassable()
}

// HasParent returns true if the search linked this cell to a predecessor
func (c *Cell) HasParent() bool {
	return c.Parent != NoParent
}

// ResetScratch clears the search values so the cell can take part in a new search
func (c *Cell) ResetScratch() {
	c.G = 0
	c.H = 0
	c.F = 0
	c.Parent = NoParent
}
