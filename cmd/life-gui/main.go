//go:build ebiten

package main

import (
	"errors"
	"log"
	"os"
	"time"

	"torus-life/internal/app"
	"torus-life/internal/cli"
	"torus-life/pkg/core"
	_ "torus-life/pkg/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg, shouldExit, err := cli.Parse("life-gui", os.Args[1:], os.Stdout)
	if err != nil {
		log.Fatal(err)
	}
	if shouldExit {
		return
	}

	factory, ok := core.Sims()["life"]
	if !ok {
		log.Fatal("life simulation is not registered")
	}

	percent := cfg.SeedPercent
	if percent == app.AskSeedPercent {
		percent = app.DefaultSeedPercent
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	sim := factory(cfg.Params(percent))
	sim.Reset(seed)

	game := app.NewGame(sim, cfg.Scale, seed, cfg.Interval)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("torus-life - " + sim.Name())
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
