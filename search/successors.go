package search

import "github.com/katalvlaran/gridplanner/grid"

// UnitSteps4 returns the successor generator shared by all 4-connected
// algorithms: every free orthogonal neighbour, edge cost 1.
func UnitSteps4(g *grid.Grid) func(cur, parent grid.Cell, hasParent bool) []Successor {
	return func(cur, _ grid.Cell, _ bool) []Successor {
		nbrs := g.Neighbours4(cur)
		out := make([]Successor, len(nbrs))
		for i, n := range nbrs {
			out[i] = Successor{Cell: n, Cost: 1}
		}

		return out
	}
}
