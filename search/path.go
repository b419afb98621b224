package search

import "github.com/katalvlaran/gridplanner/grid"

// ReconstructPath walks predecessors from goal back to the start (the one
// cell with no recorded predecessor) and returns the start→goal sequence.
func ReconstructPath(cameFrom map[grid.Cell]grid.Cell, goal grid.Cell) []grid.Cell {
	path := []grid.Cell{goal}
	cur := goal
	for {
		prev, ok := cameFrom[cur]
		if !ok {
			break
		}
		path = append(path, prev)
		cur = prev
	}
	// reverse to start → goal
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
