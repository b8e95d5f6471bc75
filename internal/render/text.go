// Package render turns simulation state into something a person can look at.
package render

import (
	"strings"

	"torus-life/pkg/grid"
)

// Unknown is written for cell values missing from the state map.
const Unknown = "?"

// Text renders g one row per line, replacing every cell with its entry in
// states and separating cells with a single space.
func Text[T grid.Cell](g grid.Grid[T], states map[T]string) string {
	var b strings.Builder
	for _, row := range g {
		for c, cell := range row {
			if c > 0 {
				b.WriteByte(' ')
			}
			s, ok := states[cell]
			if !ok {
				s = Unknown
			}
			b.WriteString(s)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Separator returns a dashed rule wide enough for a board of cols columns,
// surrounded by newlines.
func Separator(cols int) string {
	if cols < 0 {
		cols = 0
	}
	return "\n" + strings.Repeat("-", cols*2) + "\n"
}
