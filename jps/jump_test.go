package jps

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridplanner/grid"
)

func buildGrid(t *testing.T, lines []string) *grid.Grid {
	t.Helper()
	g, err := grid.Parse(lines)
	require.NoError(t, err)

	return g
}

func TestJump_ForcedTurnOnStraightTravel(t *testing.T) {
	// scanning right along the top row: (0,3) is forced because the open
	// cell below it sits past a blocked behind-side cell (1,2)
	g := buildGrid(t, []string{
		"S....",
		".##..",
		".....",
		".....",
		"....G",
	})

	jp, ok := jump(g, grid.Cell{Row: 0, Col: 0}, dir{0, 1}, g.GoalCell())
	require.True(t, ok)
	assert.Equal(t, grid.Cell{Row: 0, Col: 3}, jp)
}

func TestJump_StopsAtWallAndBoundary(t *testing.T) {
	g := buildGrid(t, []string{
		"S.#..",
		".....",
		"....G",
	})

	_, ok := jump(g, grid.Cell{Row: 0, Col: 0}, dir{0, 1}, g.GoalCell())
	assert.False(t, ok, "the wall ends the scan before any jump point")

	_, ok = jump(g, grid.Cell{Row: 0, Col: 0}, dir{-1, 0}, g.GoalCell())
	assert.False(t, ok, "scanning off the boundary finds nothing")
}

func TestJump_DiagonalNeedsBothFlanks(t *testing.T) {
	// the south flank of the first diagonal step is blocked, so the
	// diagonal scan must give up immediately rather than slip through
	g := buildGrid(t, []string{
		"S....",
		"#....",
		".....",
		"....G",
	})

	_, ok := jump(g, grid.Cell{Row: 0, Col: 0}, dir{1, 1}, g.GoalCell())
	assert.False(t, ok)
}

func TestJump_DiagonalFindsGoal(t *testing.T) {
	g := buildGrid(t, []string{
		"S....",
		".....",
		".....",
		"....G",
	})

	jp, ok := jump(g, grid.Cell{Row: 0, Col: 0}, dir{1, 1}, g.GoalCell())
	require.True(t, ok)
	assert.Equal(t, grid.Cell{Row: 3, Col: 3}, jp,
		"the diagonal runs out at row 3, and its horizontal sub-scan sees the goal")
}

func TestPrunedDirections_DiagonalTravel(t *testing.T) {
	g := buildGrid(t, []string{
		"S....",
		".....",
		".....",
		"....G",
	})

	dirs := prunedDirections(g, 1, 1, dir{1, 1})
	assert.Equal(t, []dir{{1, 0}, {0, 1}, {1, 1}}, dirs)
}

func TestPrunedDirections_StraightTravelBlockedAhead(t *testing.T) {
	// moving right into a wall: only the perpendicular cardinals remain
	g := buildGrid(t, []string{
		"S.#..",
		".....",
		"....G",
	})

	dirs := prunedDirections(g, 0, 1, dir{0, 1})
	assert.Equal(t, []dir{{1, 0}}, dirs, "up is off the boundary, right is blocked")
}

func TestExpandChain(t *testing.T) {
	chain := []grid.Cell{
		{Row: 0, Col: 0},
		{Row: 3, Col: 3},
		{Row: 3, Col: 6},
	}

	full := expandChain(chain)
	want := []grid.Cell{
		{Row: 0, Col: 0}, {Row: 1, Col: 1}, {Row: 2, Col: 2}, {Row: 3, Col: 3},
		{Row: 3, Col: 4}, {Row: 3, Col: 5}, {Row: 3, Col: 6},
	}
	assert.Equal(t, want, full)

	assert.Len(t, expandChain(nil), 0)
	single := []grid.Cell{{Row: 2, Col: 2}}
	assert.Equal(t, single, expandChain(single))
}
