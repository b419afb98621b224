package dfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridplanner/bfs"
	"github.com/katalvlaran/gridplanner/dfs"
	"github.com/katalvlaran/gridplanner/grid"
	"github.com/katalvlaran/gridplanner/search"
)

func mustParse(t *testing.T, lines []string) *grid.Grid {
	t.Helper()
	g, err := grid.Parse(lines)
	require.NoError(t, err)

	return g
}

func assertValid4(t *testing.T, g *grid.Grid, path []grid.Cell) {
	t.Helper()
	require.NotEmpty(t, path)
	assert.Equal(t, g.StartCell(), path[0])
	assert.Equal(t, g.GoalCell(), path[len(path)-1])
	for i := 1; i < len(path); i++ {
		assert.Equal(t, 1, search.Manhattan(path[i-1], path[i]))
		assert.True(t, g.IsFree(path[i]))
	}
}

func TestFind_NilGrid(t *testing.T) {
	_, err := dfs.Find(nil)
	assert.ErrorIs(t, err, search.ErrNilGrid)
}

func TestFind_ValidButNotNecessarilyShortest(t *testing.T) {
	g := mustParse(t, []string{
		"S....",
		".###.",
		".....",
		".###.",
		"....G",
	})

	path, err := dfs.Find(g)
	require.NoError(t, err)
	assertValid4(t, g, path)

	shortest, err := bfs.Find(g)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(path), len(shortest),
		"DFS may wander but can never beat the BFS optimum")
}

func TestFind_OpenGrid(t *testing.T) {
	g, err := grid.New(5, 5)
	require.NoError(t, err)

	path, err := dfs.Find(g)
	require.NoError(t, err)
	assertValid4(t, g, path)
}

func TestFind_NoPath(t *testing.T) {
	g := mustParse(t, []string{
		"S.#..",
		"..#..",
		"..#.G",
	})

	path, err := dfs.Find(g)
	assert.Nil(t, path)
	assert.ErrorIs(t, err, search.ErrNoPath)
}

func TestStream_Determinism(t *testing.T) {
	run := func() []grid.Cell {
		g, err := grid.New(8, 8, grid.WithObstaclePercent(0.2), grid.WithSeed(5))
		require.NoError(t, err)
		s, err := dfs.Stream(g)
		require.NoError(t, err)

		var order []grid.Cell
		for st, ok := s.Next(); ok; st, ok = s.Next() {
			if st.HasCurrent {
				order = append(order, st.Current)
			}
		}

		return order
	}

	assert.Equal(t, run(), run())
}
