package life

import (
	"testing"

	"github.com/stretchr/testify/require"

	"torus-life/pkg/core"
)

func TestBlinkerOscillation(t *testing.T) {
	life := New(Config{Rows: 5, Cols: 5})
	w := life.Size().W
	set := func(x, y int) { life.Grid()[y][x] = Alive }
	set(2, 1)
	set(2, 2)
	set(2, 3)

	life.Step()
	cells := life.Cells()

	expects := map[[2]int]bool{
		{1, 2}: true,
		{2, 2}: true,
		{3, 2}: true,
	}

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			alive := cells[y*w+x] == 1
			_, shouldBeAlive := expects[[2]int{x, y}]
			if shouldBeAlive != alive {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", x, y, alive, shouldBeAlive)
			}
		}
	}

	life.Step()
	cells = life.Cells()

	expects = map[[2]int]bool{
		{2, 1}: true,
		{2, 2}: true,
		{2, 3}: true,
	}

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			alive := cells[y*w+x] == 1
			_, shouldBeAlive := expects[[2]int{x, y}]
			if shouldBeAlive != alive {
				t.Fatalf("after second step cell (%d,%d) alive=%v, expected %v", x, y, alive, shouldBeAlive)
			}
		}
	}
	require.Equal(t, 2, life.Generation())
}

func TestResetSeedsPercentage(t *testing.T) {
	life := New(DefaultConfig())
	life.Reset(7)

	require.Equal(t, 600, life.Seeded())
	require.Equal(t, 600, life.Population())
	require.Equal(t, 0, life.Generation())
	require.False(t, life.Extinct())
	require.Equal(t, core.Size{W: 60, H: 40}, life.Size())
	require.Len(t, life.Cells(), 2400)
}

func TestResetDeterministic(t *testing.T) {
	a := New(Config{Rows: 12, Cols: 9, SeedPercent: 40})
	b := New(Config{Rows: 12, Cols: 9, SeedPercent: 40})
	a.Reset(99)
	b.Reset(99)
	require.Equal(t, a.Cells(), b.Cells())

	a.Step()
	b.Step()
	require.Equal(t, a.Cells(), b.Cells())
}

func TestResetClearsPreviousRun(t *testing.T) {
	life := New(Config{Rows: 4, Cols: 4, SeedPercent: 100})
	life.Reset(1)
	life.Step()
	require.True(t, life.Extinct(), "a full board overcrowds in one step")

	life.Reset(1)
	require.Equal(t, 16, life.Population())
	require.Equal(t, 0, life.Generation())
}

func TestZeroPercentIsExtinct(t *testing.T) {
	life := New(Config{Rows: 3, Cols: 3, SeedPercent: 0})
	life.Reset(5)
	require.True(t, life.Extinct())
	require.Equal(t, 0, life.Seeded())
}

func TestNewClampsDimensions(t *testing.T) {
	life := New(Config{Rows: 0, Cols: -3})
	require.Equal(t, core.Size{W: 1, H: 1}, life.Size())
	require.Len(t, life.Cells(), 1)
}

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{"rows": "10", "cols": "20", "seed_percent": "50"})
	require.Equal(t, Config{Rows: 10, Cols: 20, SeedPercent: 50}, c)

	c = FromMap(map[string]string{"rows": "-1", "cols": "abc", "seed_percent": "101"})
	require.Equal(t, DefaultConfig(), c)

	require.Equal(t, DefaultConfig(), FromMap(nil))
}

func TestRegistered(t *testing.T) {
	factory, ok := core.Sims()["life"]
	require.True(t, ok)

	sim := factory(map[string]string{"rows": "6", "cols": "8"})
	require.Equal(t, "life", sim.Name())
	require.Equal(t, core.Size{W: 8, H: 6}, sim.Size())
}

func TestParameters(t *testing.T) {
	snap := New(DefaultConfig()).Parameters()
	require.Len(t, snap.Groups, 1)

	values := map[string]string{}
	for _, p := range snap.Groups[0].Params {
		values[p.Key] = p.Value
	}
	require.Equal(t, map[string]string{"rows": "40", "cols": "60", "seed_percent": "25"}, values)
}
