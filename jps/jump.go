package jps

import (
	"github.com/katalvlaran/gridplanner/grid"
)

// dir is a unit movement direction: each component is -1, 0, or +1.
type dir struct {
	dr, dc int
}

// allDirections is the candidate set at the start cell, which has no
// parent and therefore no pruning: four cardinals, then four diagonals.
// Diagonal legality (both flanks free) is enforced by jump itself.
var allDirections = [8]dir{
	{-1, 0}, {1, 0}, {0, -1}, {0, 1},
	{-1, -1}, {-1, 1}, {1, -1}, {1, 1},
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

func walkable(g *grid.Grid, r, c int) bool {
	return g.IsFree(grid.Cell{Row: r, Col: c})
}

// prunedDirections restricts the candidate directions at (r,c) given the
// incoming direction of travel d (from parent to this cell). Movement
// legality matches Grid.Neighbours8: a diagonal is only ever attempted
// when both flanking orthogonal cells are free.
//
//   - Diagonal travel keeps its two cardinal components and, when both
//     flanks are free, the diagonal itself.
//   - Cardinal travel keeps the continuation, the two perpendicular
//     cardinals, and the two forward diagonals their flanks allow.
func prunedDirections(g *grid.Grid, r, c int, d dir) []dir {
	dirs := make([]dir, 0, 5)
	switch {
	case d.dr != 0 && d.dc != 0:
		vert := walkable(g, r+d.dr, c)
		horiz := walkable(g, r, c+d.dc)
		if vert {
			dirs = append(dirs, dir{d.dr, 0})
		}
		if horiz {
			dirs = append(dirs, dir{0, d.dc})
		}
		if vert && horiz {
			dirs = append(dirs, dir{d.dr, d.dc})
		}
	case d.dr != 0:
		next := walkable(g, r+d.dr, c)
		left := walkable(g, r, c-1)
		right := walkable(g, r, c+1)
		if next {
			dirs = append(dirs, dir{d.dr, 0})
			if left {
				dirs = append(dirs, dir{d.dr, -1})
			}
			if right {
				dirs = append(dirs, dir{d.dr, 1})
			}
		}
		if left {
			dirs = append(dirs, dir{0, -1})
		}
		if right {
			dirs = append(dirs, dir{0, 1})
		}
	default:
		next := walkable(g, r, c+d.dc)
		up := walkable(g, r-1, c)
		down := walkable(g, r+1, c)
		if next {
			dirs = append(dirs, dir{0, d.dc})
			if up {
				dirs = append(dirs, dir{-1, d.dc})
			}
			if down {
				dirs = append(dirs, dir{1, d.dc})
			}
		}
		if up {
			dirs = append(dirs, dir{-1, 0})
		}
		if down {
			dirs = append(dirs, dir{1, 0})
		}
	}

	return dirs
}

// jump walks from cell `from` one step at a time along d and returns the
// first jump point, if any. A cell is a jump point when it is the goal,
// when straight travel finds a forced turn (an open side cell whose
// behind-side cell is blocked, so the side area is only reachable by
// turning here), or, on diagonal travel, when either orthogonal
// sub-scan from it finds a jump point. A diagonal step is taken only
// when both flanking orthogonal cells are free, so jumps can never cut
// a corner.
//
// The walk is iterative; only the two orthogonal sub-scans of a diagonal
// walk recurse, so recursion depth is bounded by one grid traversal.
func jump(g *grid.Grid, from grid.Cell, d dir, goal grid.Cell) (grid.Cell, bool) {
	r, c := from.Row, from.Col
	diagonal := d.dr != 0 && d.dc != 0
	for {
		if diagonal && (!walkable(g, r+d.dr, c) || !walkable(g, r, c+d.dc)) {
			return grid.Cell{}, false
		}
		r += d.dr
		c += d.dc
		if !walkable(g, r, c) {
			return grid.Cell{}, false
		}
		cur := grid.Cell{Row: r, Col: c}
		if cur == goal {
			return cur, true
		}

		switch {
		case diagonal:
			// a diagonal cell is a jump point when a purely horizontal or
			// purely vertical scan from it finds one
			if _, ok := jump(g, cur, dir{d.dr, 0}, goal); ok {
				return cur, true
			}
			if _, ok := jump(g, cur, dir{0, d.dc}, goal); ok {
				return cur, true
			}
		case d.dr != 0:
			// vertical travel: forced turn when a side cell is open but its
			// behind-side cell is blocked
			if walkable(g, r, c-1) && !walkable(g, r-d.dr, c-1) {
				return cur, true
			}
			if walkable(g, r, c+1) && !walkable(g, r-d.dr, c+1) {
				return cur, true
			}
		default:
			// horizontal travel
			if walkable(g, r-1, c) && !walkable(g, r-1, c-d.dc) {
				return cur, true
			}
			if walkable(g, r+1, c) && !walkable(g, r+1, c-d.dc) {
				return cur, true
			}
		}
	}
}

// expandChain turns the sparse jump-point chain into an explicit
// unit-step path by walking the constant direction between each
// consecutive pair.
func expandChain(chain []grid.Cell) []grid.Cell {
	if len(chain) <= 1 {
		return chain
	}
	full := make([]grid.Cell, 1, len(chain))
	full[0] = chain[0]
	for i := 1; i < len(chain); i++ {
		cur, next := chain[i-1], chain[i]
		for cur != next {
			cur.Row += sign(next.Row - cur.Row)
			cur.Col += sign(next.Col - cur.Col)
			full = append(full, cur)
		}
	}

	return full
}
