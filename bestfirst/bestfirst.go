// Package bestfirst runs greedy best-first search over a grid.Grid:
// cells are expanded in order of Manhattan distance to the goal alone,
// ignoring accumulated cost.
//
// Greedy search is fast and often heads straight for the goal, but it can
// be misled by obstacles and makes no shortest-path guarantee. Equal
// heuristic values expand in insertion order, so runs are reproducible.
//
// Complexity: O((V + E) log V) time, O(V) memory.
package bestfirst

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
		Priority: func(_ int, c grid.Cell) int {
			return search.Manhattan(c, goal)
		},
	})
}

// Find returns a start→goal path (not necessarily shortest), or
// search.ErrNoPath when start and goal are not connected.
func Find(g *grid.Grid) ([]grid.Cell, error) {
	s, err := Stream(g)
	if err != nil {
		return nil, err
	}

	return s.Drain()
}
