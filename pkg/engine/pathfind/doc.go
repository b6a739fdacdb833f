// Package pathfind runs A* over a world.Grid with eight-way movement.
//
// Costs: an orthogonal step costs 10 and a diagonal step 14. The heuristic is
// the Manhattan distance to the target scaled by 10. With diagonal moves this
// heuristic can overestimate, so the returned path is valid but not always the
// cheapest one.
//
// A cell that has entered the open set is never re-parented, even if a
// cheaper route to it is discovered later. This keeps the search simple and
// is another reason a found path may cost more than the optimum.
//
// A PathFinder writes G, H, F and Parent into the grid's cells. Searching the
// same grid again requires Grid.ResetScratch and a new PathFinder.
package pathfind
