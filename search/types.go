// Package search defines the snapshot type, stream protocol, and shared
// engine configuration used by every search algorithm package.
package search

import (
	"errors"

	"github.com/katalvlaran/gridplanner/grid"
)

// Sentinel errors shared by all search packages.
var (
	// ErrNilGrid is returned when a nil *grid.Grid is passed to a search.
	ErrNilGrid = errors.New("search: grid is nil")
	// ErrNoPath is returned by the convenience form when the search
	// terminates without reaching the goal. It is a regular outcome,
	// not a fault: test with errors.Is.
	ErrNoPath = errors.New("search: no path between start and goal")
)

// State is one snapshot of a running search, emitted after every
// expansion. Each snapshot is a full copy — consumers may retain any
// subset of snapshots without aliasing hazards.
type State struct {
	// Current is the cell just finalized. HasCurrent is false only on the
	// failure terminal snapshot of an unsuccessful search.
	Current    grid.Cell
	HasCurrent bool

	// Visited holds every cell permanently finalized so far (the closed set).
	Visited map[grid.Cell]bool

	// Frontier holds the cells currently pending expansion (the open set).
	Frontier map[grid.Cell]bool

	// Path is non-nil only on the terminal snapshot that reaches the goal,
	// ordered start → goal.
	Path []grid.Cell
}

// Order selects the frontier discipline of an engine instantiation.
type Order int

const (
	// FIFO pops cells in insertion order (breadth-first).
	FIFO Order = iota
	// LIFO pops the most recently inserted cell (depth-first).
	LIFO
	// MinHeap pops the minimum-priority cell, ties broken by insertion order.
	MinHeap
)

// Successor is one candidate move out of a cell, with its edge cost.
type Successor struct {
	Cell grid.Cell
	Cost int
}

// Config wires one algorithm into the shared engine. All priorities and
// costs are integral, so tie-breaking is exact.
type Config struct {
	// Successors generates the candidate moves out of cur. parent is the
	// recorded predecessor of cur; hasParent is false at the start cell.
	Successors func(cur, parent grid.Cell, hasParent bool) []Successor

	// Priority computes the frontier key from a cell's accumulated cost.
	// Ignored for FIFO and LIFO orders and may be nil there.
	Priority func(cost int, cell grid.Cell) int

	// Order selects the frontier discipline.
	Order Order

	// TrackCost enables cost-improvement relaxation: a successor is
	// (re-)pushed whenever a strictly cheaper route to it is found
	// (Dijkstra, A*, JPS). When false the engine keeps only a seen
	// set and pushes each cell at most once (BFS, DFS, greedy).
	TrackCost bool

	// ExpandPath post-processes the reconstructed predecessor chain on the
	// success terminal snapshot. Used by JPS to fill in the unit steps
	// between sparse jump points. Optional.
	ExpandPath func(chain []grid.Cell) []grid.Cell
}
