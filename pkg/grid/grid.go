// Package grid implements a two-state cellular automaton on a toroidal grid.
//
// Cell values are caller supplied: every operation that writes a state takes
// the "off" and/or "on" value explicitly, so the engine works with any
// numeric encoding whose off value is 0 and on value is 1 when summed.
package grid

import "math/rand/v2"

// Cell constrains the numeric types a grid can hold. Cells must be summable
// because neighbourhood counting adds their values.
type Cell interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Grid is a row-major matrix of cells. All rows have the same length.
type Grid[T Cell] [][]T

// Create returns a rows×cols grid with every cell set to v. Non-positive
// dimensions produce an empty grid.
func Create[T Cell](rows, cols int, v T) Grid[T] {
	if rows <= 0 || cols <= 0 {
		return Grid[T]{}
	}
	g := make(Grid[T], rows)
	for r := range g {
		row := make([]T, cols)
		for c := range row {
			row[c] = v
		}
		g[r] = row
	}
	return g
}

// Rows returns the number of rows.
func (g Grid[T]) Rows() int { return len(g) }

// Cols returns the number of columns.
func (g Grid[T]) Cols() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Clone returns a deep copy of g.
func (g Grid[T]) Clone() Grid[T] {
	out := make(Grid[T], len(g))
	for r, row := range g {
		out[r] = append([]T(nil), row...)
	}
	return out
}

// CountNeighbourhood sums the 3×3 block centred on (row, col), including the
// centre cell. Indices wrap modulo the grid dimensions. Offsets that land on
// the same cell in grids narrower than three are counted once per offset.
func CountNeighbourhood[T Cell](g Grid[T], row, col int) int {
	rows, cols := g.Rows(), g.Cols()
	count := 0
	for dr := -1; dr <= 1; dr++ {
		r := ((row+dr)%rows + rows) % rows
		for dc := -1; dc <= 1; dc++ {
			c := ((col+dc)%cols + cols) % cols
			count += int(g[r][c])
		}
	}
	return count
}

// ValueCheck reports whether any cell in g equals v.
func ValueCheck[T Cell](g Grid[T], v T) bool {
	for _, row := range g {
		for _, cell := range row {
			if cell == v {
				return true
			}
		}
	}
	return false
}

// Count returns the number of cells equal to v.
func Count[T Cell](g Grid[T], v T) int {
	n := 0
	for _, row := range g {
		for _, cell := range row {
			if cell == v {
				n++
			}
		}
	}
	return n
}

// SeedCount returns ceil(total*percentage/100), clamped to [0, total].
func SeedCount(total, percentage int) int {
	n := (total*percentage + 99) / 100
	if n < 0 {
		return 0
	}
	if n > total {
		return total
	}
	return n
}

// Seed sets SeedCount(rows*cols, percentage) distinct, uniformly chosen cells
// to on and returns how many were set. Other cells are left untouched.
func Seed[T Cell](rng *rand.Rand, g Grid[T], on T, percentage int) int {
	rows, cols := g.Rows(), g.Cols()
	total := rows * cols
	n := SeedCount(total, percentage)

	// Partial Fisher-Yates: after iteration i, positions[:i+1] is a uniform
	// sample without replacement.
	positions := make([]int, total)
	for i := range positions {
		positions[i] = i
	}
	for i := 0; i < n; i++ {
		j := i + rng.IntN(total-i)
		positions[i], positions[j] = positions[j], positions[i]
		p := positions[i]
		g[p/cols][p%cols] = on
	}
	return n
}

// Update advances g by one generation in place. Each cell's neighbourhood sum
// N is taken from a snapshot of g before the update: N == 3 sets the cell to
// on, N == 4 leaves it unchanged and any other sum sets it to off.
func Update[T Cell](g Grid[T], off, on T) {
	prev := g.Clone()
	for r, row := range g {
		for c := range row {
			switch CountNeighbourhood(prev, r, c) {
			case 3:
				row[c] = on
			case 4:
			default:
				row[c] = off
			}
		}
	}
}
