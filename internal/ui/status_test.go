package ui

import (
	"testing"

	"github.com/stretchr/testify/require"

	"torus-life/pkg/core"
	"torus-life/pkg/sims/life"
)

type plainSim struct{}

func (plainSim) Name() string    { return "plain" }
func (plainSim) Size() core.Size { return core.Size{W: 1, H: 1} }
func (plainSim) Reset(int64)     {}
func (plainSim) Step()           {}
func (plainSim) Cells() []uint8  { return []uint8{0} }

func TestStatusLinesLife(t *testing.T) {
	sim := life.New(life.Config{Rows: 4, Cols: 4, SeedPercent: 25})
	sim.Reset(3)

	lines := StatusLines(sim, false)
	require.Equal(t, "life", lines[0])
	require.Contains(t, lines, "generation 0")
	require.Contains(t, lines, "alive 4")
	require.Contains(t, lines, "running")
	require.Contains(t, lines, "Rows: 4")
	require.Contains(t, lines, "Seed %: 25")

	require.Contains(t, StatusLines(sim, true), "paused")
}

func TestStatusLinesGameOver(t *testing.T) {
	sim := life.New(life.Config{Rows: 3, Cols: 3, SeedPercent: 0})
	sim.Reset(1)
	require.Contains(t, StatusLines(sim, false), "game over")
}

func TestStatusLinesPlainSim(t *testing.T) {
	lines := StatusLines(plainSim{}, false)
	require.Equal(t, "plain", lines[0])
	require.Equal(t, "running", lines[1])
	require.Contains(t, lines, "q      quit")
}
