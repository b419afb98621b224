package jps

import (
	"github.com/katalvlaran/gridplanner/grid"
	"github.com/katalvlaran/gridplanner/search"
)

// Stream returns the stepwise form: a lazy sequence of search.State
// snapshots, one per jump-point expansion. Returns search.ErrNilGrid if
// g is nil.
//
// Note that intermediate cells skipped by a jump never appear in the
// visited or frontier sets — only jump points do. The terminal path is
// still a full unit-step sequence.
func Stream(g *grid.Grid) (*search.Stream, error) {
	if g == nil {
		return nil, search.ErrNilGrid
	}
	goal := g.GoalCell()

	return search.New(g, search.Config{
		Order:      search.MinHeap,
		TrackCost:  true,
		Successors: successors(g),
		Priority: func(cost int, c grid.Cell) int {
			return cost + search.Chebyshev(c, goal)
		},
		ExpandPath: expandChain,
	})
}

// Find returns a shortest 8-connected start→goal path (unit step cost,
// diagonals included, no corner-cutting), or search.ErrNoPath when start
// and goal are not connected.
func Find(g *grid.Grid) ([]grid.Cell, error) {
	s, err := Stream(g)
	if err != nil {
		return nil, err
	}

	return s.Drain()
}

// successors builds the pruned jump-point generator: candidate directions
// come from the parent direction (all eight at the start), and each
// direction is scanned for its first jump point. Edge cost between a cell
// and its jump point is their Chebyshev distance.
func successors(g *grid.Grid) func(cur, parent grid.Cell, hasParent bool) []search.Successor {
	goal := g.GoalCell()

	return func(cur, parent grid.Cell, hasParent bool) []search.Successor {
		var dirs []dir
		if hasParent {
			d := dir{
				dr: sign(cur.Row - parent.Row),
				dc: sign(cur.Col - parent.Col),
			}
			dirs = prunedDirections(g, cur.Row, cur.Col, d)
		} else {
			dirs = allDirections[:]
		}

		out := make([]search.Successor, 0, len(dirs))
		for _, d := range dirs {
			if jp, ok := jump(g, cur, d, goal); ok {
				out = append(out, search.Successor{
					Cell: jp,
					Cost: search.Chebyshev(cur, jp),
				})
			}
		}

		return out
	}
}
