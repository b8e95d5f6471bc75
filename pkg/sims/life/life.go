// Package life runs the toroidal Game of Life on top of the grid engine.
package life

import (
	"strconv"

	"torus-life/pkg/core"
	"torus-life/pkg/grid"
)

// Cell is the state of a single Life cell.
type Cell uint8

const (
	// Empty marks a dead cell.
	Empty Cell = 0
	// Alive marks a live cell.
	Alive Cell = 1
)

// Life implements Conway's Game of Life with toroidal wrapping.
type Life struct {
	cfg        Config
	board      grid.Grid[Cell]
	cells      []uint8
	generation int
	seeded     int
}

// New returns a Life simulation with the provided configuration. The board
// starts empty until Reset is called.
func New(cfg Config) *Life {
	if cfg.Rows <= 0 {
		cfg.Rows = 1
	}
	if cfg.Cols <= 0 {
		cfg.Cols = 1
	}
	l := &Life{cfg: cfg, cells: make([]uint8, cfg.Rows*cfg.Cols)}
	l.board = grid.Create(cfg.Rows, cfg.Cols, Empty)
	return l
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return core.Size{W: l.cfg.Cols, H: l.cfg.Rows} }

// Reset rebuilds an empty board and seeds SeedPercent of it with live cells.
func (l *Life) Reset(seed int64) {
	l.board = grid.Create(l.cfg.Rows, l.cfg.Cols, Empty)
	l.seeded = grid.Seed(core.NewRNG(seed).Source(), l.board, Alive, l.cfg.SeedPercent)
	l.generation = 0
}

// Step advances the simulation by one generation.
func (l *Life) Step() {
	grid.Update(l.board, Empty, Alive)
	l.generation++
}

// Cells flattens the current board row-major into a reused buffer.
func (l *Life) Cells() []uint8 {
	i := 0
	for _, row := range l.board {
		for _, c := range row {
			l.cells[i] = uint8(c)
			i++
		}
	}
	return l.cells
}

// Grid exposes the current board. Callers may edit cells in place.
func (l *Life) Grid() grid.Grid[Cell] { return l.board }

// Extinct reports whether no cell is alive.
func (l *Life) Extinct() bool { return !grid.ValueCheck(l.board, Alive) }

// Population returns the number of live cells.
func (l *Life) Population() int { return grid.Count(l.board, Alive) }

// Generation returns how many steps have run since the last Reset.
func (l *Life) Generation() int { return l.generation }

// Seeded returns how many cells the last Reset turned alive.
func (l *Life) Seeded() int { return l.seeded }

// Parameters describes the board setup.
func (l *Life) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name: "Board",
		Params: []core.Parameter{
			{Key: "rows", Label: "Rows", Value: strconv.Itoa(l.cfg.Rows)},
			{Key: "cols", Label: "Columns", Value: strconv.Itoa(l.cfg.Cols)},
			{Key: "seed_percent", Label: "Seed %", Value: strconv.Itoa(l.cfg.SeedPercent), Description: "share of cells alive at start"},
		},
	}}}
}

func init() {
	core.Register("life", func(cfg map[string]string) core.Sim {
		return New(FromMap(cfg))
	})
}
