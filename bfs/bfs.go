// Package bfs runs breadth-first search over a grid.Grid: FIFO expansion
// of 4-connected unit-cost moves, guaranteeing a shortest path.
//
// BFS expands cells in non-decreasing distance from the start. Because the
// grid is unit-cost, the first time the goal is finalized its path is
// optimal.
//
// Complexity: O(V + E) time, O(V) memory.
package bfs

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
		Order:      search.FIFO,
		Successors: search.UnitSteps4(g),
	})
}

// Find returns the start→goal path, or search.ErrNoPath when start and
// goal are not connected.
func Find(g *grid.Grid) ([]grid.Cell, error) {
	s, err := Stream(g)
	if err != nil {
		return nil, err
	}

	return s.Drain()
}
