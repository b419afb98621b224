package search

import "github.com/katalvlaran/gridplanner/grid"

// Manhattan returns |Δrow| + |Δcol| — admissible and consistent for
// 4-connected movement with unit edge cost.
func Manhattan(a, b grid.Cell) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

// Chebyshev returns max(|Δrow|, |Δcol|) — admissible for 8-connected
// movement with uniform step cost (diagonals count 1 in this engine).
func Chebyshev(a, b grid.Cell) int {
	dr, dc := abs(a.Row-b.Row), abs(a.Col-b.Col)
	if dr > dc {
		return dr
	}

	return dc
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
