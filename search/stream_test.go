package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridplanner/grid"
	"github.com/katalvlaran/gridplanner/search"
)

// fifoConfig is the simplest engine instantiation: BFS-style FIFO over
// 4-connected unit moves.
func fifoConfig(g *grid.Grid) search.Config {
	return search.Config{
		Order:      search.FIFO,
		Successors: search.UnitSteps4(g),
	}
}

// costConfig is a Dijkstra-style instantiation exercising the min-heap
// and lazy decrease-key paths of the engine.
func costConfig(g *grid.Grid) search.Config {
	return search.Config{
		Order:      search.MinHeap,
		Successors: search.UnitSteps4(g),
		TrackCost:  true,
		Priority:   func(cost int, _ grid.Cell) int { return cost },
	}
}

func mustParse(t *testing.T, lines []string) *grid.Grid {
	t.Helper()
	g, err := grid.Parse(lines)
	require.NoError(t, err)

	return g
}

func TestNew_NilGrid(t *testing.T) {
	s, err := search.New(nil, search.Config{})
	assert.Nil(t, s)
	assert.ErrorIs(t, err, search.ErrNilGrid)
}

func TestStream_FirstSnapshotIsStart(t *testing.T) {
	g := mustParse(t, []string{"S.", ".G"})
	s, err := search.New(g, fifoConfig(g))
	require.NoError(t, err)

	st, ok := s.Next()
	require.True(t, ok)
	assert.True(t, st.HasCurrent)
	assert.Equal(t, g.StartCell(), st.Current)
	assert.True(t, st.Visited[g.StartCell()])
	assert.Nil(t, st.Path)
}

func TestStream_GoalEmitsTwoSnapshots(t *testing.T) {
	g := mustParse(t, []string{"S.", ".G"})
	s, err := search.New(g, fifoConfig(g))
	require.NoError(t, err)

	var states []search.State
	for st, ok := s.Next(); ok; st, ok = s.Next() {
		states = append(states, st)
	}
	require.GreaterOrEqual(t, len(states), 2)

	last := states[len(states)-1]
	prev := states[len(states)-2]

	assert.Equal(t, g.GoalCell(), prev.Current, "finalize snapshot precedes the path snapshot")
	assert.Nil(t, prev.Path)
	assert.Equal(t, g.GoalCell(), last.Current)
	require.NotNil(t, last.Path)
	assert.Equal(t, g.StartCell(), last.Path[0])
	assert.Equal(t, g.GoalCell(), last.Path[len(last.Path)-1])

	// exhausted streams keep reporting done
	_, ok := s.Next()
	assert.False(t, ok)
	_, ok = s.Next()
	assert.False(t, ok)
}

func TestStream_FailureTerminal(t *testing.T) {
	g := mustParse(t, []string{
		"S.#.",
		"..#.",
		"..#G",
	})
	s, err := search.New(g, fifoConfig(g))
	require.NoError(t, err)

	var last search.State
	steps := 0
	for st, ok := s.Next(); ok; st, ok = s.Next() {
		last = st
		steps++
		require.Less(t, steps, 100, "search must terminate")
	}

	assert.False(t, last.HasCurrent, "failure terminal has no current cell")
	assert.Nil(t, last.Path)
	assert.Empty(t, last.Frontier)
	assert.False(t, last.Visited[g.GoalCell()])
}

func TestStream_SnapshotsAreIndependentCopies(t *testing.T) {
	g := mustParse(t, []string{"S..", "..G"})
	s, err := search.New(g, fifoConfig(g))
	require.NoError(t, err)

	first, ok := s.Next()
	require.True(t, ok)

	// sabotage the returned maps; later snapshots must not notice
	for c := range first.Visited {
		delete(first.Visited, c)
	}
	first.Frontier[grid.Cell{Row: 9, Col: 9}] = true

	second, ok := s.Next()
	require.True(t, ok)
	assert.True(t, second.Visited[g.StartCell()], "engine state must not alias snapshot maps")
	assert.False(t, second.Frontier[grid.Cell{Row: 9, Col: 9}])
}

func TestStream_Determinism(t *testing.T) {
	lines := []string{
		"S..#....",
		".#.#.##.",
		".#......",
		".####.#.",
		"......#G",
	}
	run := func(cfg func(*grid.Grid) search.Config) []search.State {
		g := mustParse(t, lines)
		s, err := search.New(g, cfg(g))
		require.NoError(t, err)
		var states []search.State
		for st, ok := s.Next(); ok; st, ok = s.Next() {
			states = append(states, st)
		}

		return states
	}

	for name, cfg := range map[string]func(*grid.Grid) search.Config{
		"FIFO":    fifoConfig,
		"MinHeap": costConfig,
	} {
		t.Run(name, func(t *testing.T) {
			a, b := run(cfg), run(cfg)
			require.Equal(t, len(a), len(b))
			for i := range a {
				assert.Equal(t, a[i].Current, b[i].Current, "step %d", i)
				assert.Equal(t, a[i].Visited, b[i].Visited, "step %d", i)
				assert.Equal(t, a[i].Frontier, b[i].Frontier, "step %d", i)
				assert.Equal(t, a[i].Path, b[i].Path, "step %d", i)
			}
		})
	}
}

func TestStream_NoCellFinalizedTwice(t *testing.T) {
	g := mustParse(t, []string{
		"S...",
		".##.",
		"...G",
	})
	s, err := search.New(g, costConfig(g))
	require.NoError(t, err)

	seen := make(map[grid.Cell]int)
	for st, ok := s.Next(); ok; st, ok = s.Next() {
		if st.HasCurrent && st.Path == nil {
			seen[st.Current]++
		}
	}
	for c, n := range seen {
		assert.Equal(t, 1, n, "cell %v finalized %d times", c, n)
	}
}

func TestDrain_Success(t *testing.T) {
	g := mustParse(t, []string{"S.", ".G"})
	s, err := search.New(g, fifoConfig(g))
	require.NoError(t, err)

	path, err := s.Drain()
	require.NoError(t, err)
	assert.Equal(t, g.StartCell(), path[0])
	assert.Equal(t, g.GoalCell(), path[len(path)-1])
}

func TestDrain_NoPath(t *testing.T) {
	g := mustParse(t, []string{"S#G", "###"})
	s, err := search.New(g, fifoConfig(g))
	require.NoError(t, err)

	path, err := s.Drain()
	assert.Nil(t, path)
	assert.ErrorIs(t, err, search.ErrNoPath)
}

func TestReconstructPath(t *testing.T) {
	a, b, c := grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 0, Col: 1}, grid.Cell{Row: 1, Col: 1}
	cameFrom := map[grid.Cell]grid.Cell{b: a, c: b}

	assert.Equal(t, []grid.Cell{a, b, c}, search.ReconstructPath(cameFrom, c))
	assert.Equal(t, []grid.Cell{a}, search.ReconstructPath(map[grid.Cell]grid.Cell{}, a))
}

func TestHeuristics(t *testing.T) {
	a := grid.Cell{Row: 1, Col: 2}
	b := grid.Cell{Row: 4, Col: 0}

	assert.Equal(t, 5, search.Manhattan(a, b))
	assert.Equal(t, 5, search.Manhattan(b, a))
	assert.Equal(t, 3, search.Chebyshev(a, b))
	assert.Equal(t, 3, search.Chebyshev(b, a))
	assert.Zero(t, search.Manhattan(a, a))
	assert.Zero(t, search.Chebyshev(a, a))
}
