// Package astar runs A* search over a grid.Grid: cells are expanded in
// order of accumulated cost plus Manhattan distance to the goal.
//
// The Manhattan heuristic is admissible and consistent for 4-connected
// unit-cost movement, so A* returns a shortest path while expanding far
// fewer cells than Dijkstra on open grids. Integer priorities and
// insertion-order tie-breaking keep every run reproducible.
//
// Complexity: O((V + E) log V) time, O(V + E) memory.
package astar

import (
	"github.com/katalvlaran/gridplanner/grid"
	"github.com/katalvlaran/gridplanner/search"
)

// Stream returns the stepwise form: a lazy sequence of search.State
// snapshots, one per expansion. Returns search.ErrNilGrid if g is nil.
func Stream(g *grid.Grid) (*search.Stream, error) {
	if g == nil {
		return nil, search.ErrNilGrid
	}
	goal := g.GoalCell()

	return search.New(g, search.Config{
		Order:      search.MinHeap,
		Successors: search.UnitSteps4(g),
		TrackCost:  true,
		Priority: func(cost int, c grid.Cell) int {
			return cost + search.Manhattan(c, goal)
		},
	})
}

// Find returns a shortest start→goal path, or search.ErrNoPath when start
// and goal are not connected.
func Find(g *grid.Grid) ([]grid.Cell, error) {
	s, err := Stream(g)
	if err != nil {
		return nil, err
	}

	return s.Drain()
}
