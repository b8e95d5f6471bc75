package ui

import (
	"fmt"
	"sort"

	"torus-life/pkg/core"
)

type statusProvider interface {
	Generation() int
	Population() int
	Extinct() bool
}

// StatusLines describes the running simulation for the HUD panel: its name,
// progress counters, run state, configured parameters and key bindings.
func StatusLines(sim core.Sim, paused bool) []string {
	lines := []string{sim.Name()}

	state := "running"
	if paused {
		state = "paused"
	}
	if sp, ok := sim.(statusProvider); ok {
		lines = append(lines,
			fmt.Sprintf("generation %d", sp.Generation()),
			fmt.Sprintf("alive %d", sp.Population()),
		)
		if sp.Extinct() {
			state = "game over"
		}
	}
	lines = append(lines, state, "")

	if pp, ok := sim.(core.ParameterProvider); ok {
		for _, group := range pp.Parameters().Groups {
			params := append([]core.Parameter(nil), group.Params...)
			sort.SliceStable(params, func(i, j int) bool { return params[i].Label < params[j].Label })
			for _, p := range params {
				lines = append(lines, fmt.Sprintf("%s: %s", p.Label, p.Value))
			}
		}
		lines = append(lines, "")
	}

	return append(lines,
		"space  pause",
		"n      step",
		"r      reset",
		"s      reseed",
		"q      quit",
	)
}
