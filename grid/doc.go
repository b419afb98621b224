// Package grid provides the 2-D occupancy-grid model shared by every
// search algorithm in gridplanner.
//
// What
//
//   - Cell: a (row, col) coordinate with identity equality, usable as a map key.
//   - CellKind: Free, Obstacle, Start, Goal.
//   - Grid: an immutable rows×cols occupancy array with exactly one start
//     and one goal cell.
//   - Construction: New (random obstacles, seeded and reproducible) and
//     Parse (explicit text-art layouts for fixtures).
//   - Queries: InBounds, IsFree, Kind, Neighbours4, Neighbours8, Summary.
//
// Why
//
//   - Every search algorithm consumes only this contract: bounds, free-space
//     and adjacency queries. Keeping the model immutable makes each search
//     run referentially transparent.
//   - Neighbour order is fixed (N,S,W,E then diagonals), so searches that
//     iterate neighbours produce reproducible expansion sequences.
//
// Connectivity
//
//	Neighbours4 yields the orthogonal neighbours only. Neighbours8 adds
//	diagonals but never allows corner-cutting: a diagonal move is legal only
//	when both flanking orthogonal cells are free.
//
// Invariants
//
//   - rows ≥ 2 and cols ≥ 2.
//   - Exactly one Start and one Goal, both in bounds, Start ≠ Goal.
//   - The grid never mutates after construction.
//
// Complexity
//
//   - Construction: O(rows×cols) time and memory.
//   - All queries: O(1) (neighbour queries O(1) with small constant).
//
// Errors
//
//   - ErrTooSmall, ErrCellOutOfBounds, ErrStartEqualsGoal,
//     ErrBadObstaclePercent for New.
//   - ErrEmptyGrid, ErrNonRectangular, ErrUnknownRune, ErrMissingStart,
//     ErrMissingGoal additionally for Parse.
package grid
