// Package dijkstra runs uniform-cost search over a grid.Grid: cells are
// expanded in order of accumulated cost from the start, guaranteeing a
// shortest path.
//
// On a unit-cost grid Dijkstra behaves like BFS, but it relaxes costs the
// general way (lazy decrease-key on a min-heap), so it is the reference
// implementation the heuristic searches are validated against.
//
// Complexity: O((V + E) log V) time, O(V + E) memory.
package dijkstra

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

	return search.New(g, search.Config{
		Order:      search.MinHeap,
		Successors: search.UnitSteps4(g),
		TrackCost:  true,
		Priority: func(cost int, _ grid.Cell) int {
			return cost
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
