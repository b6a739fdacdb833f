package pathfind

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"gridpath/pkg/engine/world"
)

// PathFinder runs one A* search from the grid's start to its target.
// The open and closed sets live only as long as the PathFinder.
type PathFinder struct {
	grid   *world.Grid
	target *world.Cell

	open   *openSet
	closed mapset.Set[int]

	maxSteps  int
	expanded  int
	exhausted bool
	state     State
}

// New creates a PathFinder over grid with the open set seeded with the start cell.
// The grid is used by reference; its cells receive the search's scratch values.
func New(grid *world.Grid, options ...Option) *PathFinder {
	var opts Options
	for _, option := range options {
		option(&opts)
	}

	pf := &PathFinder{
		grid:     grid,
		target:   grid.Target(),
		open:     newOpenSet(),
		closed:   mapset.New[int](),
		maxSteps: opts.MaxSteps,
		state:    StateInitialized,
	}

	start := grid.Start()
	start.ResetScratch()
	start.H = Heuristic(start, pf.target)
	start.F = start.G + start.H
	pf.open.push(grid.Index(start.X(), start.Y()), start.F)

	return pf
}

// State returns the current lifecycle state
func (pf *PathFinder) State() State {
	return pf.state
}

// Expanded returns how many cells have been moved to the closed set
func (pf *PathFinder) Expanded() int {
	return pf.expanded
}

// Exhausted returns true if the search stopped because of WithMaxSteps
func (pf *PathFinder) Exhausted() bool {
	return pf.exhausted
}

// OpenLen returns the number of cells waiting for expansion
func (pf *PathFinder) OpenLen() int {
	return pf.open.len()
}

// IsClosed returns true if c has already been expanded
func (pf *PathFinder) IsClosed(c *world.Cell) bool {
	return c != nil && pf.closed.Has(pf.grid.Index(c.X(), c.Y()))
}

// IsOpen returns true if c is waiting in the open set
func (pf *PathFinder) IsOpen(c *world.Cell) bool {
	return c != nil && pf.open.has(pf.grid.Index(c.X(), c.Y()))
}

// FindPath runs the search to completion and reports whether the target was reached.
// Calling it again after completion returns the same result without searching.
func (pf *PathFinder) FindPath() Result {
	for !pf.state.Done() {
		pf.Step()
	}
	if pf.state == StateFound {
		return Found
	}
	return NotFound
}

// Step advances the search by one iteration and returns the new state.
// Once a terminal state is reached further calls are no-ops.
func (pf *PathFinder) Step() State {
	if pf.state.Done() {
		return pf.state
	}
	pf.state = StateRunning

	item, ok := pf.open.peek()
	if !ok {
		pf.state = StateNotFound
		return pf.state
	}

	current := pf.grid.CellAt(item.index)
	if current == pf.target {
		pf.state = StateFound
		return pf.state
	}

	if pf.maxSteps > 0 && pf.expanded >= pf.maxSteps {
		pf.exhausted = true
		pf.state = StateNotFound
		return pf.state
	}

	pf.open.pop()
	pf.closed.Put(item.index)
	pf.expanded++
	pf.expand(current)

	return pf.state
}

// expand adds the eligible neighbors of c to the open set. Neighbors that are
// already open keep their first parent.
func (pf *PathFinder) expand(c *world.Cell) {
	parentIndex := pf.grid.Index(c.X(), c.Y())

	for _, dir := range world.AllDirections() {
		neighbor := pf.grid.Neighbor(c, dir)
		if neighbor == nil {
			continue
		}
		idx := pf.grid.Index(neighbor.X(), neighbor.Y())
		if pf.closed.Has(idx) || pf.open.has(idx) {
			continue
		}
		if !neighbor.IsPassable() {
			continue
		}

		dx, dy := dir.Delta()
		neighbor.Parent = parentIndex
		neighbor.G = c.G + StepCost(dx, dy)
		neighbor.H = Heuristic(neighbor, pf.target)
		neighbor.F = neighbor.G + neighbor.H
		pf.open.push(idx, neighbor.F)
	}
}

// Cost returns the accumulated cost of the found path, or 0 if no path was found
func (pf *PathFinder) Cost() int {
	if pf.state != StateFound {
		return 0
	}
	return pf.target.G
}

// ReconstructPath returns the cells from start to target. It is empty unless
// the search ended with Found.
func (pf *PathFinder) ReconstructPath() []*world.Cell {
	path, err := pf.ReconstructPathErr()
	if err != nil {
		return []*world.Cell{}
	}
	return path
}

// ReconstructPathErr is ReconstructPath that also reports a corrupt parent chain.
// A search that has not ended with Found yields an empty path and no error.
func (pf *PathFinder) ReconstructPathErr() ([]*world.Cell, error) {
	if pf.state != StateFound {
		return []*world.Cell{}, nil
	}
	return walkParents(pf.grid, pf.target, pf.grid.Start())
}

// walkParents follows parent links from end back to start and returns the
// chain in start-to-end order. It gives up after grid.Size() steps.
func walkParents(grid *world.Grid, end, start *world.Cell) ([]*world.Cell, error) {
	path := make([]*world.Cell, 0)
	cell := end
	for steps := 0; cell != nil; steps++ {
		if steps >= grid.Size() {
			return []*world.Cell{}, fmt.Errorf("%w: more than %d links from %v", ErrParentCycle, grid.Size(), end.Point())
		}
		path = append(path, cell)
		cell = grid.ParentOf(cell)
	}

	if path[len(path)-1] != start {
		return []*world.Cell{}, fmt.Errorf("%w: chain ends at %v", ErrBrokenChain, path[len(path)-1].Point())
	}

	// reverse path
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}
