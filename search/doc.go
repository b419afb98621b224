// Package search provides the shared stepwise execution skeleton behind
// every gridplanner algorithm: snapshot emission, open/closed bookkeeping,
// deterministic frontier ordering, and path reconstruction.
//
// What
//
//   - State: an immutable full-copy snapshot of one expansion step
//     (current cell, visited set, frontier set, terminal path).
//   - Stream: a lazy, finite, pull-based iterator — call Next until it
//     reports exhaustion, or Drain to run to completion.
//   - Config: wires an algorithm into the engine by choosing a frontier
//     Order (FIFO, LIFO, MinHeap), a successor generator, a priority
//     function, and the relaxation policy.
//   - Heuristics: Manhattan and Chebyshev distances, integer-valued.
//   - ReconstructPath: predecessor walk-back shared by all algorithms.
//
// Execution protocol
//
//	Each Next call pops the best frontier entry, finalizes it, and emits a
//	snapshot. Stale duplicates (lazy decrease-key) are discarded without
//	emission. Reaching the goal emits the finalize snapshot and then one
//	terminal snapshot carrying the reconstructed path. Draining the open
//	set emits one failure snapshot with no current cell and no path.
//
// Determinism
//
//	Priorities are plain ints and equal-priority entries pop in insertion
//	order (a monotone sequence number breaks ties), so the same grid and
//	configuration always produce the identical snapshot sequence.
//
// Concurrency
//
//	A Stream is single-threaded and owns its bookkeeping exclusively.
//	Nothing is shared across runs; suspend simply by not calling Next.
//
// Complexity (V = cells, E = admissible moves)
//
//   - Time:   O((V + E) log V) with MinHeap order, O(V + E) otherwise.
//   - Memory: O(V) bookkeeping plus O(V) per retained snapshot.
//
// Errors
//
//   - ErrNilGrid  if a nil grid is supplied.
//   - ErrNoPath   from Drain when the search exhausts without success.
package search
