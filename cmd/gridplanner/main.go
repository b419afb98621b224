// Command gridplanner generates an occupancy grid and animates one of six
// search algorithms over it in the terminal.
//
// Usage:
//
//	gridplanner                          # config defaults (A*, 20×30, 25% obstacles)
//	gridplanner -algorithm jps           # override the algorithm
//	gridplanner -rows 30 -cols 40        # override grid size
//	gridplanner -start 0,0 -goal 9,9 -obstacle-pct 0.25
//	gridplanner -seed 42                 # reproducible obstacle layout
//	gridplanner -config config.yaml      # load settings from YAML
//	gridplanner -headless                # no animation, print the outcome
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/katalvlaran/gridplanner/astar"
	"github.com/katalvlaran/gridplanner/bestfirst"
	"github.com/katalvlaran/gridplanner/bfs"
	"github.com/katalvlaran/gridplanner/config"
	"github.com/katalvlaran/gridplanner/dfs"
	"github.com/katalvlaran/gridplanner/dijkstra"
	"github.com/katalvlaran/gridplanner/grid"
	"github.com/katalvlaran/gridplanner/jps"
	"github.com/katalvlaran/gridplanner/search"
	"github.com/katalvlaran/gridplanner/vis"
)

// streamers maps algorithm names to their stepwise constructors.
var streamers = map[string]func(*grid.Grid) (*search.Stream, error){
	"bfs":        bfs.Stream,
	"dfs":        dfs.Stream,
	"best_first": bestfirst.Stream,
	"dijkstra":   dijkstra.Stream,
	"astar":      astar.Stream,
	"jps":        jps.Stream,
}

var labels = map[string]string{
	"bfs":        "BFS",
	"dfs":        "DFS",
	"best_first": "Best-First",
	"dijkstra":   "Dijkstra",
	"astar":      "A*",
	"jps":        "JPS",
}

func main() {
	cfgPath := flag.String("config", "", "path to a YAML config file")
	algorithm := flag.String("algorithm", "", "search algorithm: "+strings.Join(config.Algorithms, ", "))
	rows := flag.Int("rows", 0, "number of rows")
	cols := flag.Int("cols", 0, "number of columns")
	startArg := flag.String("start", "", "start cell as row,col")
	goalArg := flag.String("goal", "", "goal cell as row,col (default: bottom-right corner)")
	obstaclePct := flag.Float64("obstacle-pct", -1, "fraction of cells that are obstacles")
	seed := flag.Int64("seed", 0, "random seed for obstacle placement")
	seedSet := false
	headless := flag.Bool("headless", false, "skip the animation; print the outcome only")
	flag.Parse()
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			seedSet = true
		}
	})

	cfg := config.Default()
	if *cfgPath != "" {
		loaded, err := config.Load(*cfgPath)
		if err != nil {
			log.Fatal(err)
		}
		cfg = loaded
	}

	// CLI flags override the config file.
	if *algorithm != "" {
		cfg.Algorithm = *algorithm
	}
	if *rows > 0 {
		cfg.Grid.Rows = *rows
	}
	if *cols > 0 {
		cfg.Grid.Cols = *cols
	}
	if *startArg != "" {
		cfg.Start = parsePair(*startArg)
	}
	if *goalArg != "" {
		cfg.Goal = parsePair(*goalArg)
	}
	if *obstaclePct >= 0 {
		cfg.Obstacles.Percentage = *obstaclePct
	}
	if seedSet {
		cfg.Obstacles.Seed = *seed
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	opts := []grid.Option{
		grid.WithStart(grid.Cell{Row: cfg.Start[0], Col: cfg.Start[1]}),
		grid.WithObstaclePercent(cfg.Obstacles.Percentage),
		grid.WithSeed(cfg.Obstacles.Seed),
	}
	if cfg.Goal != nil {
		opts = append(opts, grid.WithGoal(grid.Cell{Row: cfg.Goal[0], Col: cfg.Goal[1]}))
	}
	g, err := grid.New(cfg.Grid.Rows, cfg.Grid.Cols, opts...)
	if err != nil {
		log.Fatal(err)
	}

	label := labels[cfg.Algorithm]
	fmt.Printf("%s  |  %s\n", label, g.Summary())

	stream, err := streamers[cfg.Algorithm](g)
	if err != nil {
		log.Fatal(err)
	}

	var path []grid.Cell
	if *headless {
		path, err = stream.Drain()
	} else {
		path, err = animate(g, stream, cfg.Visualisation)
	}

	switch {
	case errors.Is(err, search.ErrNoPath):
		fmt.Println("No path found!")
	case errors.Is(err, vis.ErrInterrupted):
		fmt.Println("Interrupted.")
	case err != nil:
		log.Fatal(err)
	default:
		fmt.Printf("Path length: %d\n", len(path))
	}
}

func animate(g *grid.Grid, stream *search.Stream, vc config.VisConfig) ([]grid.Cell, error) {
	v, err := vis.New(g, vis.Options{
		Delay:     time.Duration(vc.DelayMs) * time.Millisecond,
		PathDelay: time.Duration(vc.PathDelayMs) * time.Millisecond,
		Pause:     time.Duration(vc.PauseMs) * time.Millisecond,
	})
	if err != nil {
		return nil, err
	}
	defer v.Close()

	return v.Run(stream)
}

func parsePair(s string) []int {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		fmt.Fprintf(os.Stderr, "expected row,col but got %q\n", s)
		os.Exit(2)
	}
	r, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
	c, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err1 != nil || err2 != nil {
		fmt.Fprintf(os.Stderr, "expected row,col but got %q\n", s)
		os.Exit(2)
	}

	return []int{r, c}
}
