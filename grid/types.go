// Package grid defines core types, options, and sentinel errors
// for the occupancy-grid model used by every search package.
package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction and parsing.
var (
	// ErrTooSmall indicates the requested dimensions are below the 2×2 minimum.
	ErrTooSmall = errors.New("grid: grid must be at least 2×2")
	// ErrCellOutOfBounds indicates a start or goal cell outside the grid.
	ErrCellOutOfBounds = errors.New("grid: cell out of bounds")
	// ErrStartEqualsGoal indicates start and goal were set to the same cell.
	ErrStartEqualsGoal = errors.New("grid: start and goal must be different cells")
	// ErrBadObstaclePercent indicates an obstacle fraction outside [0,1).
	ErrBadObstaclePercent = errors.New("grid: obstacle percent must be in [0,1)")
	// ErrEmptyGrid indicates parse input with no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")
	// ErrNonRectangular indicates parse rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrUnknownRune indicates an unrecognized character in parse input.
	ErrUnknownRune = errors.New("grid: unknown cell rune")
	// ErrMissingStart indicates parse input without exactly one 'S'.
	ErrMissingStart = errors.New("grid: input must contain exactly one start cell")
	// ErrMissingGoal indicates parse input without exactly one 'G'.
	ErrMissingGoal = errors.New("grid: input must contain exactly one goal cell")
)

// Cell is a grid coordinate. Cells are comparable and used as map keys
// throughout the search packages.
type Cell struct {
	Row, Col int
}

// String renders the cell as "(row,col)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// CellKind classifies the content of a single grid cell.
type CellKind int8

const (
	// Free is a traversable cell.
	Free CellKind = iota
	// Obstacle blocks movement.
	Obstacle
	// Start marks the unique search origin.
	Start
	// Goal marks the unique search target.
	Goal
)

// String returns the human-readable kind label.
func (k CellKind) String() string {
	switch k {
	case Free:
		return "Free"
	case Obstacle:
		return "Obstacle"
	case Start:
		return "Start"
	case Goal:
		return "Goal"
	default:
		return fmt.Sprintf("CellKind(%d)", int8(k))
	}
}

// Options holds tunable parameters for random grid construction.
type Options struct {
	// Start is the search origin. Defaults to (0,0).
	Start Cell
	// Goal is the search target. Defaults to the bottom-right corner.
	Goal Cell

	// ObstaclePercent is the fraction of cells turned into obstacles,
	// excluding start and goal. Must be in [0,1).
	ObstaclePercent float64

	// Seed drives the obstacle-placement RNG, making layouts reproducible.
	Seed int64

	goalSet bool
	err     error
}

// Option configures grid construction via functional arguments.
// An invalid Option is recorded internally and surfaced when New runs.
type Option func(*Options)

// DefaultOptions returns Options with sane defaults:
// start (0,0), goal bottom-right, no obstacles, seed 1.
func DefaultOptions() Options {
	return Options{
		Start:           Cell{0, 0},
		ObstaclePercent: 0,
		Seed:            1,
	}
}

// WithStart sets the start cell.
func WithStart(c Cell) Option {
	return func(o *Options) { o.Start = c }
}

// WithGoal sets the goal cell. If never called, the goal defaults to the
// bottom-right corner of the grid.
func WithGoal(c Cell) Option {
	return func(o *Options) {
		o.Goal = c
		o.goalSet = true
	}
}

// WithObstaclePercent sets the fraction of cells to fill with obstacles.
//
//	0 ≤ p < 1: valid
//	otherwise: ErrBadObstaclePercent when New runs
func WithObstaclePercent(p float64) Option {
	return func(o *Options) {
		if p < 0 || p >= 1 {
			o.err = fmt.Errorf("%w: got %v", ErrBadObstaclePercent, p)
			return
		}
		o.ObstaclePercent = p
	}
}

// WithSeed sets the RNG seed for reproducible obstacle layouts.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}
