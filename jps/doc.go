// Package jps implements Jump Point Search over a grid.Grid: an
// optimization of A* for uniform-cost 8-connected grids that prunes
// symmetric paths by jumping along straight lines and diagonals instead
// of pushing every visible neighbour.
//
// What
//
//   - Direction pruning: given the direction of travel from a node's
//     parent, only the continuation directions that movement legality
//     allows are explored: the natural continuations plus, for straight
//     travel, the perpendicular cardinals and the forward diagonals whose
//     flanks are free. The start cell, having no parent, explores all
//     eight directions.
//   - Jumping: a candidate direction is walked one step at a time until a
//     jump point is found: the goal, a straight-travel cell with a forced
//     turn (an open side cell whose behind-side cell is blocked), or a
//     diagonal-travel cell whose horizontal or vertical sub-scan finds a
//     jump point. A diagonal step is only taken when both orthogonal
//     cells flanking it are free, the same legality rule Neighbours8
//     applies, so jumps never cut through corners.
//   - Each jump point enters the shared engine exactly like a neighbour,
//     with edge cost equal to its Chebyshev distance from the current
//     cell; the heuristic is Chebyshev distance to the goal.
//   - Path expansion: the terminal predecessor chain holds only jump
//     points, so consecutive pairs are expanded into explicit unit steps
//     along their constant direction.
//
// Cost convention
//
//	Diagonal steps cost 1, the same as orthogonal steps. True octile
//	distance would weight diagonals √2; the unit convention keeps every
//	priority integral and makes JPS path lengths directly comparable with
//	a unit-cost 8-connected Dijkstra or BFS run. Changing it would alter
//	which of several equal-length routes is returned.
//
// Determinism and termination follow the shared engine: integer
// priorities, insertion-order tie-break, failure snapshot when the open
// set drains.
//
// Complexity
//
//   - Worst case O(V·L) jump scanning where L is the grid diagonal, with
//     O(K log K) heap traffic over K jump points; in practice far fewer
//     expansions than A* on open grids.
//   - Memory: O(V).
//
// Errors
//
//   - search.ErrNilGrid from Stream/Find on a nil grid.
//   - search.ErrNoPath from Find when no route exists.
package jps
