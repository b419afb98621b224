// Package gridplanner is a playground for exploring classic search
// algorithms on a 2-D occupancy grid — watch BFS, DFS, greedy best-first,
// Dijkstra, A* and Jump Point Search carve a route step by step.
//
// 🚀 What is gridplanner?
//
//	A small, deterministic pathfinding laboratory that brings together:
//		• grid/      — the occupancy grid: cells, obstacles, 4/8-connectivity
//		• search/    — the shared stepwise engine: snapshots, frontiers, paths
//		• bfs/       — breadth-first search (optimal on unit-cost grids)
//		• dfs/       — depth-first search (fast, not optimal)
//		• bestfirst/ — greedy best-first search (heuristic only)
//		• dijkstra/  — uniform-cost search (optimal)
//		• astar/     — A* with Manhattan heuristic (optimal)
//		• jps/       — Jump Point Search over 8-connected movement
//		• config/    — YAML configuration for grids and animation
//		• vis/       — live terminal animation of any search (tcell)
//
// ✨ Why choose gridplanner?
//
//   - Every algorithm emits a full search.State snapshot after every
//     expansion, so any run can be paused, inspected, or animated.
//   - Deterministic by construction — insertion-order tie-breaking and
//     integer priorities make every run reproducible.
//   - One engine, six behaviours — swap the frontier and the priority
//     function, keep everything else.
//
// Quick start:
//
//	g, _ := grid.New(20, 30, grid.WithObstaclePercent(0.25), grid.WithSeed(42))
//	path, err := astar.Find(g)
//	if errors.Is(err, search.ErrNoPath) {
//	    fmt.Println("walled in!")
//	}
//
// Or drive a search one expansion at a time:
//
//	stream, _ := jps.Stream(g)
//	for st, ok := stream.Next(); ok; st, ok = stream.Next() {
//	    render(st)
//	}
//
// See cmd/gridplanner for the interactive CLI.
package gridplanner
