// Package vis animates a running search in the terminal. It consumes the
// stepwise form (a search.Stream) and redraws the grid after every
// expansion: obstacles, visited cells, the frontier, the current cell,
// and finally the reconstructed path.
//
// Rendering is cell-per-two-columns so grid cells appear square in most
// terminal fonts. Esc, 'q', or Ctrl-C aborts the animation.
package vis

import (
	"errors"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/gridplanner/grid"
	"github.com/katalvlaran/gridplanner/search"
)

// ErrInterrupted is returned when the user aborts the animation.
var ErrInterrupted = errors.New("vis: interrupted by user")

// Options controls animation pacing.
type Options struct {
	// Delay between expansion frames.
	Delay time.Duration
	// PathDelay between path cells during the final path sweep.
	PathDelay time.Duration
	// Pause shown after the final frame before the screen closes.
	Pause time.Duration
}

// DefaultOptions returns a moderate animation pace.
func DefaultOptions() Options {
	return Options{
		Delay:     25 * time.Millisecond,
		PathDelay: 40 * time.Millisecond,
		Pause:     1500 * time.Millisecond,
	}
}

// cell styles
var (
	styleFree     = tcell.StyleDefault.Background(tcell.ColorBlack)
	styleObstacle = tcell.StyleDefault.Background(tcell.ColorGray)
	styleVisited  = tcell.StyleDefault.Background(tcell.ColorNavy)
	styleFrontier = tcell.StyleDefault.Background(tcell.ColorOlive)
	styleCurrent  = tcell.StyleDefault.Background(tcell.ColorRed)
	stylePath     = tcell.StyleDefault.Background(tcell.ColorGreen)
	styleMark     = tcell.StyleDefault.Background(tcell.ColorPurple).Foreground(tcell.ColorWhite).Bold(true)
)

// Visualiser renders one grid and animates search streams over it.
type Visualiser struct {
	screen tcell.Screen
	g      *grid.Grid
	opts   Options
	events chan tcell.Event
}

// New initializes the terminal screen for g.
func New(g *grid.Grid, opts Options) (*Visualiser, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}

	return newWithScreen(g, screen, opts)
}

// newWithScreen backs New and lets tests substitute a simulation screen.
func newWithScreen(g *grid.Grid, screen tcell.Screen, opts Options) (*Visualiser, error) {
	if g == nil {
		return nil, search.ErrNilGrid
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	v := &Visualiser{
		screen: screen,
		g:      g,
		opts:   opts,
		events: make(chan tcell.Event, 8),
	}
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			v.events <- ev
		}
	}()

	return v, nil
}

// Close releases the terminal. Safe to call once after Run.
func (v *Visualiser) Close() {
	v.screen.Fini()
}

// Run drives the stream to completion, drawing every snapshot, then
// sweeps the final path if one was found. Returns the path,
// search.ErrNoPath when the search failed, or ErrInterrupted on user
// abort.
func (v *Visualiser) Run(stream *search.Stream) ([]grid.Cell, error) {
	var path []grid.Cell
	for st, ok := stream.Next(); ok; st, ok = stream.Next() {
		if v.interrupted() {
			return nil, ErrInterrupted
		}
		v.draw(st, nil)
		if st.Path != nil {
			path = st.Path
		}
		time.Sleep(v.opts.Delay)
	}

	if path == nil {
		time.Sleep(v.opts.Pause)

		return nil, search.ErrNoPath
	}

	// final sweep: reveal the path cell by cell
	for i := range path {
		if v.interrupted() {
			return nil, ErrInterrupted
		}
		v.draw(search.State{}, path[:i+1])
		time.Sleep(v.opts.PathDelay)
	}
	time.Sleep(v.opts.Pause)

	return path, nil
}

// interrupted drains pending events and reports whether a quit key or an
// interrupt arrived. Resize events trigger a screen sync.
func (v *Visualiser) interrupted() bool {
	for {
		select {
		case ev := <-v.events:
			switch e := ev.(type) {
			case *tcell.EventKey:
				if e.Key() == tcell.KeyEscape || e.Key() == tcell.KeyCtrlC || e.Rune() == 'q' {
					return true
				}
			case *tcell.EventResize:
				v.screen.Sync()
			}
		default:
			return false
		}
	}
}

// draw renders one frame: base grid, then snapshot overlays, then the
// path overlay if given.
func (v *Visualiser) draw(st search.State, path []grid.Cell) {
	for r := 0; r < v.g.Rows(); r++ {
		for c := 0; c < v.g.Cols(); c++ {
			cell := grid.Cell{Row: r, Col: c}
			v.put(cell, v.cellStyle(cell, st))
		}
	}
	for _, cell := range path {
		v.put(cell, stylePath)
	}
	// start and goal markers always on top
	v.mark(v.g.StartCell(), 'S')
	v.mark(v.g.GoalCell(), 'G')
	v.screen.Show()
}

func (v *Visualiser) cellStyle(cell grid.Cell, st search.State) tcell.Style {
	switch {
	case v.g.Kind(cell) == grid.Obstacle:
		return styleObstacle
	case st.HasCurrent && cell == st.Current:
		return styleCurrent
	case st.Frontier[cell]:
		return styleFrontier
	case st.Visited[cell]:
		return styleVisited
	default:
		return styleFree
	}
}

func (v *Visualiser) put(cell grid.Cell, style tcell.Style) {
	x := cell.Col * 2
	v.screen.SetContent(x, cell.Row, ' ', nil, style)
	v.screen.SetContent(x+1, cell.Row, ' ', nil, style)
}

func (v *Visualiser) mark(cell grid.Cell, r rune) {
	x := cell.Col * 2
	v.screen.SetContent(x, cell.Row, r, nil, styleMark)
	v.screen.SetContent(x+1, cell.Row, ' ', nil, styleMark)
}
