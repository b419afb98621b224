package search

import (
	"github.com/katalvlaran/gridplanner/grid"
)

// Stream drives one search run, one expansion per Next call. A Stream is
// finite and non-restartable: build a fresh one for every run. It owns all
// bookkeeping exclusively, so concurrent runs never share state.
type Stream struct {
	g   *grid.Grid
	cfg Config

	open     frontier
	inOpen   map[grid.Cell]bool
	closed   map[grid.Cell]bool
	seen     map[grid.Cell]bool
	cameFrom map[grid.Cell]grid.Cell
	cost     map[grid.Cell]int
	seq      int

	pending *State
	done    bool
}

// New builds a Stream over g for the algorithm described by cfg.
// Returns ErrNilGrid if g is nil. The grid must be structurally valid
// (in-bounds start and goal, start ≠ goal); grid construction enforces that.
func New(g *grid.Grid, cfg Config) (*Stream, error) {
	if g == nil {
		return nil, ErrNilGrid
	}

	s := &Stream{
		g:        g,
		cfg:      cfg,
		open:     newFrontier(cfg.Order),
		inOpen:   make(map[grid.Cell]bool),
		closed:   make(map[grid.Cell]bool),
		seen:     make(map[grid.Cell]bool),
		cameFrom: make(map[grid.Cell]grid.Cell),
		cost:     make(map[grid.Cell]int),
	}

	start := g.StartCell()
	s.cost[start] = 0
	s.seen[start] = true
	prio := 0
	if cfg.Priority != nil {
		prio = cfg.Priority(0, start)
	}
	s.open.push(start, prio, s.seq)
	s.inOpen[start] = true

	return s, nil
}

// Next advances the search by one expansion and returns the resulting
// snapshot. The second return value is false once the stream is exhausted:
// the last snapshot delivered is either the success terminal (non-nil Path)
// or the failure terminal (HasCurrent false, nil Path).
func (s *Stream) Next() (State, bool) {
	if s.done {
		return State{}, false
	}
	if s.pending != nil {
		st := *s.pending
		s.pending = nil
		s.done = true

		return st, true
	}

	for {
		cur, ok := s.open.pop()
		if !ok {
			// Open set drained without reaching the goal.
			s.done = true

			return s.snapshot(grid.Cell{}, false, nil), true
		}
		if s.closed[cur] {
			// Stale duplicate from lazy decrease-key; discard silently.
			continue
		}
		delete(s.inOpen, cur)
		s.closed[cur] = true

		if cur == s.g.GoalCell() {
			chain := ReconstructPath(s.cameFrom, cur)
			if s.cfg.ExpandPath != nil {
				chain = s.cfg.ExpandPath(chain)
			}
			term := s.snapshot(cur, true, chain)
			s.pending = &term

			return s.snapshot(cur, true, nil), true
		}

		s.relax(cur)

		return s.snapshot(cur, true, nil), true
	}
}

// Drain drives the stream to completion and returns the final start→goal
// path, or ErrNoPath if the search terminated without one.
func (s *Stream) Drain() ([]grid.Cell, error) {
	var path []grid.Cell
	for st, ok := s.Next(); ok; st, ok = s.Next() {
		if st.Path != nil {
			path = st.Path
		}
	}
	if path == nil {
		return nil, ErrNoPath
	}

	return path, nil
}

// relax pushes every admissible successor of cur onto the open set,
// recording cost and predecessor bookkeeping.
func (s *Stream) relax(cur grid.Cell) {
	parent, hasParent := s.cameFrom[cur]
	for _, succ := range s.cfg.Successors(cur, parent, hasParent) {
		if s.closed[succ.Cell] {
			continue
		}
		cand := s.cost[cur] + succ.Cost
		if s.cfg.TrackCost {
			if best, known := s.cost[succ.Cell]; known && cand >= best {
				continue
			}
		} else if s.seen[succ.Cell] {
			continue
		}

		s.seen[succ.Cell] = true
		s.cost[succ.Cell] = cand
		s.cameFrom[succ.Cell] = cur
		s.seq++
		prio := 0
		if s.cfg.Priority != nil {
			prio = s.cfg.Priority(cand, succ.Cell)
		}
		s.open.push(succ.Cell, prio, s.seq)
		s.inOpen[succ.Cell] = true
	}
}

// snapshot deep-copies the closed and open sets into a State.
func (s *Stream) snapshot(cur grid.Cell, hasCur bool, path []grid.Cell) State {
	visited := make(map[grid.Cell]bool, len(s.closed))
	for c := range s.closed {
		visited[c] = true
	}
	front := make(map[grid.Cell]bool, len(s.inOpen))
	for c := range s.inOpen {
		front[c] = true
	}

	return State{
		Current:    cur,
		HasCurrent: hasCur,
		Visited:    visited,
		Frontier:   front,
		Path:       path,
	}
}
