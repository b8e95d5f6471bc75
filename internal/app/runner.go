package app

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"

	"torus-life/internal/ctxlog"
	"torus-life/internal/input"
	"torus-life/internal/render"
	"torus-life/pkg/core"
	"torus-life/pkg/sims/life"
)

const percentPrompt = "Enter the percentage of live cells for the initial state: "

var cellStates = map[life.Cell]string{life.Empty: " ", life.Alive: "#"}

// Runner drives a Life simulation in a terminal, printing one board per
// generation at a fixed cadence.
type Runner struct {
	cfg *Config
	in  *bufio.Reader
	out io.Writer
}

// NewRunner returns a Runner reading answers from in and printing to out.
func NewRunner(cfg *Config, in io.Reader, out io.Writer) *Runner {
	return &Runner{cfg: cfg, in: bufio.NewReader(in), out: out}
}

// Run plays the game until every cell has died, the generation limit is
// reached or ctx is cancelled. Cancellation is a normal way to stop and is
// not reported as an error.
func (r *Runner) Run(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)
	fmt.Fprint(r.out, welcome())

	percent, err := r.seedPercent(ctx)
	if err != nil {
		if ctx.Err() != nil {
			r.endedByUser()
			return nil
		}
		return err
	}

	seed := r.cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	sim := life.New(life.Config{Rows: r.cfg.Rows, Cols: r.cfg.Cols, SeedPercent: percent})
	sim.Reset(seed)
	logger.Info("Board seeded.", "rows", r.cfg.Rows, "cols", r.cfg.Cols, "percent", percent, "alive", sim.Seeded(), "seed", seed)

	separator := render.Separator(r.cfg.Cols)
	fmt.Fprintln(r.out, separator)
	fmt.Fprintln(r.out, render.Text(sim.Grid(), cellStates), separator)

	pacer := core.NewPacer(r.cfg.Interval)
	for {
		if sim.Extinct() {
			logger.Info("All cells died.", "generation", sim.Generation())
			fmt.Fprint(r.out, "All the cells have died.\n\nGame Over!\n\n")
			return nil
		}
		if r.cfg.MaxGenerations > 0 && sim.Generation() >= r.cfg.MaxGenerations {
			logger.Info("Generation limit reached.", "generation", sim.Generation(), "alive", sim.Population())
			return nil
		}

		sim.Step()
		logger.Debug("Generation computed.", "generation", sim.Generation(), "alive", sim.Population())
		fmt.Fprintln(r.out, render.Text(sim.Grid(), cellStates), separator)

		if err := pacer.Wait(ctx); err != nil {
			logger.Info("Run cancelled.", "generation", sim.Generation(), "reason", err)
			r.endedByUser()
			return nil
		}
	}
}

// seedPercent returns the configured percentage or asks for one. The prompt
// reads in its own goroutine so that cancellation is not held up by a
// blocked read.
func (r *Runner) seedPercent(ctx context.Context) (int, error) {
	if r.cfg.SeedPercent != AskSeedPercent {
		return r.cfg.SeedPercent, nil
	}

	type answer struct {
		v   int
		err error
	}
	ch := make(chan answer, 1)
	go func() {
		v, err := input.Integer(r.in, r.out, percentPrompt, 0, 100, DefaultSeedPercent)
		ch <- answer{v, err}
	}()

	select {
	case <-ctx.Done():
		return 0, ctx.Err()
	case a := <-ch:
		if a.err != nil {
			return 0, fmt.Errorf("failed to read seed percentage: %w", a.err)
		}
		return a.v, nil
	}
}

func (r *Runner) endedByUser() {
	fmt.Fprint(r.out, "\n\nGame ended by user.\n\n")
}

func welcome() string {
	return fmt.Sprintf(`
Welcome to The Game of Life!

In this version of the game:
    If a live cell has fewer than 2 neighbours, it will die by underpopulation.
    If a live cell has more than 3 neighbours, it will die by overpopulation.
    If an empty cell has exactly 3 neighbours, it will become live by reproduction.

Note that the top and bottom rows are considered adjacent, as are the left- and right-most columns.

To begin, you can choose a proportion of cells to begin alive, or press enter to use the default (%d%%).
Press Ctrl+C at any time to stop the game.

`, DefaultSeedPercent)
}
