// Package dfs runs depth-first search over a grid.Grid: LIFO expansion of
// 4-connected moves. DFS terminates quickly on open grids but makes no
// shortest-path guarantee — use bfs, dijkstra, or astar for optimal routes.
//
// Each cell is pushed at most once (seen guard); costs are never
// reconsidered.
//
// Complexity: O(V + E) time, O(V) memory.
package dfs

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
		Order:      search.LIFO,
		Successors: search.UnitSteps4(g),
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
