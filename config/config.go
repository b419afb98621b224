// Package config loads gridplanner run configuration from a YAML file
// and provides the defaults the CLI starts from.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Sentinel errors for configuration loading.
var (
	// ErrUnknownAlgorithm indicates an algorithm name outside Algorithms.
	ErrUnknownAlgorithm = errors.New("config: unknown algorithm")
	// ErrBadCellPair indicates a start/goal entry that is not [row, col].
	ErrBadCellPair = errors.New("config: cell must be a [row, col] pair")
)

// Algorithms lists the accepted algorithm names, in menu order.
var Algorithms = []string{"bfs", "dfs", "best_first", "dijkstra", "astar", "jps"}

// GridConfig sets the grid dimensions.
type GridConfig struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// ObstacleConfig controls random obstacle placement.
type ObstacleConfig struct {
	Percentage float64 `yaml:"percentage"`
	Seed       int64   `yaml:"seed"`
}

// VisConfig controls animation pacing in the terminal visualiser.
type VisConfig struct {
	DelayMs     int `yaml:"delay_ms"`
	PathDelayMs int `yaml:"path_delay_ms"`
	PauseMs     int `yaml:"pause_before_close_ms"`
}

// Config is the full run configuration. Goal may be nil, meaning the
// bottom-right corner of the grid.
type Config struct {
	Algorithm     string         `yaml:"algorithm"`
	Grid          GridConfig     `yaml:"grid"`
	Start         []int          `yaml:"start"`
	Goal          []int          `yaml:"goal"`
	Obstacles     ObstacleConfig `yaml:"obstacles"`
	Visualisation VisConfig      `yaml:"visualisation"`
}

// Default returns the configuration used when no file is supplied:
// A* on a 20×30 grid, 25% obstacles, seed 42, moderate animation pace.
func Default() Config {
	return Config{
		Algorithm: "astar",
		Grid:      GridConfig{Rows: 20, Cols: 30},
		Start:     []int{0, 0},
		Goal:      nil,
		Obstacles: ObstacleConfig{Percentage: 0.25, Seed: 42},
		Visualisation: VisConfig{
			DelayMs:     25,
			PathDelayMs: 40,
			PauseMs:     1500,
		},
	}
}

// Load reads path, overlays it on Default, and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks the algorithm name and the shape of start/goal pairs.
// Bounds and start≠goal are enforced later by grid.New.
func (c Config) Validate() error {
	if !KnownAlgorithm(c.Algorithm) {
		return fmt.Errorf("%w: %q (want one of %v)", ErrUnknownAlgorithm, c.Algorithm, Algorithms)
	}
	if len(c.Start) != 2 {
		return fmt.Errorf("%w: start = %v", ErrBadCellPair, c.Start)
	}
	if c.Goal != nil && len(c.Goal) != 2 {
		return fmt.Errorf("%w: goal = %v", ErrBadCellPair, c.Goal)
	}

	return nil
}

// KnownAlgorithm reports whether name is a recognized algorithm.
func KnownAlgorithm(name string) bool {
	for _, a := range Algorithms {
		if a == name {
			return true
		}
	}

	return false
}
