package pathfind

import "gridpath/pkg/engine/world"

// Step costs
const (
	OrthogonalCost = 10
	DiagonalCost   = 14
)

// StepCost returns the cost of moving by (dx, dy) to an adjacent cell
func StepCost(dx, dy int) int {
	if dx == 0 || dy == 0 {
		return OrthogonalCost
	}
	return DiagonalCost
}

// Heuristic estimates the remaining cost from c to target as the Manhattan
// distance times OrthogonalCost.
func Heuristic(c, target *world.Cell) int {
	return OrthogonalCost * (abs(target.X()-c.X()) + abs(target.Y()-c.Y()))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
