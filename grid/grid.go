package grid

import (
	"fmt"
	"math/rand"
)

// neighbour offset tables. Fixed iteration order keeps every search that
// walks the grid fully deterministic.
var (
	offsets4 = [4]Cell{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	offsets8 = [8]Cell{
		{-1, 0}, {1, 0}, {0, -1}, {0, 1},
		{-1, -1}, {-1, 1}, {1, -1}, {1, 1},
	}
)

// Grid is a 2-D occupancy grid with one start cell, one goal cell, and
// any number of obstacles. It is immutable once constructed: all methods
// are pure queries over fixed state.
type Grid struct {
	rows, cols int
	cells      [][]CellKind
	start      Cell
	goal       Cell
}

// New constructs a rows×cols grid with randomly placed obstacles.
// Obstacle candidates exclude the start and goal cells; placement is
// deterministic for a fixed Options.Seed.
//
// Returns ErrTooSmall, ErrCellOutOfBounds, ErrStartEqualsGoal, or
// ErrBadObstaclePercent on invalid input.
// Complexity: O(rows×cols) time and memory.
func New(rows, cols int, opts ...Option) (*Grid, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	if rows < 2 || cols < 2 {
		return nil, fmt.Errorf("%w: got %d×%d", ErrTooSmall, rows, cols)
	}
	if !o.goalSet {
		o.Goal = Cell{rows - 1, cols - 1}
	}

	g := &Grid{rows: rows, cols: cols, start: o.Start, goal: o.Goal}
	if !g.InBounds(o.Start) {
		return nil, fmt.Errorf("%w: start %v in %d×%d grid", ErrCellOutOfBounds, o.Start, rows, cols)
	}
	if !g.InBounds(o.Goal) {
		return nil, fmt.Errorf("%w: goal %v in %d×%d grid", ErrCellOutOfBounds, o.Goal, rows, cols)
	}
	if o.Start == o.Goal {
		return nil, fmt.Errorf("%w: %v", ErrStartEqualsGoal, o.Start)
	}

	g.cells = make([][]CellKind, rows)
	for r := range g.cells {
		g.cells[r] = make([]CellKind, cols)
	}

	// Collect obstacle candidates in row-major order, shuffle with the
	// seeded RNG, and take the first n. Start and goal are never candidates.
	candidates := make([]Cell, 0, rows*cols-2)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			cell := Cell{r, c}
			if cell != o.Start && cell != o.Goal {
				candidates = append(candidates, cell)
			}
		}
	}
	n := int(float64(rows*cols) * o.ObstaclePercent)
	if n > len(candidates) {
		n = len(candidates)
	}
	rng := rand.New(rand.NewSource(o.Seed))
	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	for _, cell := range candidates[:n] {
		g.cells[cell.Row][cell.Col] = Obstacle
	}

	g.cells[o.Start.Row][o.Start.Col] = Start
	g.cells[o.Goal.Row][o.Goal.Col] = Goal

	return g, nil
}

// Parse builds a grid from text art, one string per row:
//
//	'.' Free   '#' Obstacle   'S' Start   'G' Goal
//
// Exactly one 'S' and one 'G' must appear. Mostly useful for fixtures
// and tests where the obstacle layout must be explicit.
func Parse(lines []string) (*Grid, error) {
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(lines), len(lines[0])
	if rows < 2 || cols < 2 {
		return nil, fmt.Errorf("%w: got %d×%d", ErrTooSmall, rows, cols)
	}

	g := &Grid{rows: rows, cols: cols}
	g.cells = make([][]CellKind, rows)

	var haveStart, haveGoal bool
	for r, line := range lines {
		if len(line) != cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrNonRectangular, r, len(line), cols)
		}
		g.cells[r] = make([]CellKind, cols)
		for c, ch := range line {
			switch ch {
			case '.':
				g.cells[r][c] = Free
			case '#':
				g.cells[r][c] = Obstacle
			case 'S':
				if haveStart {
					return nil, fmt.Errorf("%w: second 'S' at (%d,%d)", ErrMissingStart, r, c)
				}
				haveStart = true
				g.start = Cell{r, c}
				g.cells[r][c] = Start
			case 'G':
				if haveGoal {
					return nil, fmt.Errorf("%w: second 'G' at (%d,%d)", ErrMissingGoal, r, c)
				}
				haveGoal = true
				g.goal = Cell{r, c}
				g.cells[r][c] = Goal
			default:
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrUnknownRune, ch, r, c)
			}
		}
	}
	if !haveStart {
		return nil, ErrMissingStart
	}
	if !haveGoal {
		return nil, ErrMissingGoal
	}

	return g, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// StartCell returns the designated start cell.
func (g *Grid) StartCell() Cell { return g.start }

// GoalCell returns the designated goal cell.
func (g *Grid) GoalCell() Cell { return g.goal }

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// Kind returns the CellKind at c. Caller must ensure c is in bounds.
func (g *Grid) Kind(c Cell) CellKind {
	return g.cells[c.Row][c.Col]
}

// IsFree reports whether c is in bounds and not an Obstacle.
// Start and goal cells count as free.
func (g *Grid) IsFree(c Cell) bool {
	return g.InBounds(c) && g.cells[c.Row][c.Col] != Obstacle
}

// Neighbours4 returns the up-to-4 orthogonally adjacent cells of c that
// are in bounds and not obstacles, in fixed N,S,W,E order.
func (g *Grid) Neighbours4(c Cell) []Cell {
	nbrs := make([]Cell, 0, 4)
	for _, d := range offsets4 {
		n := Cell{c.Row + d.Row, c.Col + d.Col}
		if g.IsFree(n) {
			nbrs = append(nbrs, n)
		}
	}

	return nbrs
}

// Neighbours8 returns the up-to-8 adjacent cells of c (orthogonal and
// diagonal) that are in bounds and not obstacles. A diagonal neighbour is
// excluded unless both orthogonal cells flanking the move are free, so a
// path can never cut through a blocked corner.
func (g *Grid) Neighbours8(c Cell) []Cell {
	nbrs := make([]Cell, 0, 8)
	for _, d := range offsets8 {
		n := Cell{c.Row + d.Row, c.Col + d.Col}
		if !g.IsFree(n) {
			continue
		}
		if d.Row != 0 && d.Col != 0 {
			if !g.IsFree(Cell{c.Row + d.Row, c.Col}) || !g.IsFree(Cell{c.Row, c.Col + d.Col}) {
				continue
			}
		}
		nbrs = append(nbrs, n)
	}

	return nbrs
}

// Obstacles returns the total obstacle count.
// Complexity: O(rows×cols).
func (g *Grid) Obstacles() int {
	n := 0
	for _, row := range g.cells {
		for _, k := range row {
			if k == Obstacle {
				n++
			}
		}
	}

	return n
}

// Summary returns a one-line description of the grid layout.
func (g *Grid) Summary() string {
	total := g.rows * g.cols
	obs := g.Obstacles()

	return fmt.Sprintf("Grid %d×%d | Start %v | Goal %v | Obstacles %d/%d (%.1f%%)",
		g.rows, g.cols, g.start, g.goal, obs, total, 100*float64(obs)/float64(total))
}
