// Package life implements the bounded Game of Life board: a fixed-size
// matrix of cells and the generation rule that advances it.
package life

import (
	"errors"
	"fmt"
)

// Cell is the state of a single grid position.
type Cell uint8

const (
	// Dead is the zero value so a freshly allocated grid starts empty.
	Dead Cell = iota
	Alive
)

// Glyph returns the character used for the cell in snapshots and on screen.
func (c Cell) Glyph() byte {
	if c == Alive {
		return '#'
	}
	return '-'
}

// FromGlyph maps a snapshot byte back to a cell. Only '#' means alive; any
// other byte is dead, which keeps loading total on malformed input.
func FromGlyph(b byte) Cell {
	if b == '#' {
		return Alive
	}
	return Dead
}

// ErrInvalidDimensions reports a grid request with no cells in it.
var ErrInvalidDimensions = errors.New("life: grid dimensions must be at least 1x1")

// Grid stores cells in row-major order with origin (0,0) at the top left.
// A second buffer of identical size serves as the workspace for Step, so a
// generation is always computed against the full pre-step state.
type Grid struct {
	rows, cols int
	cur        []Cell
	next       []Cell
}

// New allocates an all-dead grid. The dimensions are fixed for the
// lifetime of the grid.
func New(rows, cols int) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, ErrInvalidDimensions
	}
	cells := make([]Cell, rows*cols)
	return &Grid{rows: rows, cols: cols, cur: cells, next: make([]Cell, len(cells))}, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// index converts (r, c) to a linear offset. Out-of-range coordinates are a
// caller bug: the driver gates every coordinate it passes in.
func (g *Grid) index(r, c int) int {
	if r < 0 || r >= g.rows || c < 0 || c >= g.cols {
		panic(fmt.Sprintf("life: cell (%d,%d) outside %dx%d grid", r, c, g.rows, g.cols))
	}
	return r*g.cols + c
}

// Get returns the cell at (r, c).
func (g *Grid) Get(r, c int) Cell { return g.cur[g.index(r, c)] }

// Set stores v at (r, c).
func (g *Grid) Set(r, c int, v Cell) { g.cur[g.index(r, c)] = v }

// Toggle flips the cell at (r, c) between alive and dead.
func (g *Grid) Toggle(r, c int) {
	i := g.index(r, c)
	if g.cur[i] == Alive {
		g.cur[i] = Dead
	} else {
		g.cur[i] = Alive
	}
}

// Row returns row r backed by the grid's storage. The view is valid until
// the next Step.
func (g *Grid) Row(r int) []Cell {
	if r < 0 || r >= g.rows {
		panic(fmt.Sprintf("life: row %d outside %dx%d grid", r, g.rows, g.cols))
	}
	return g.cur[r*g.cols : (r+1)*g.cols]
}

// Cells exposes the current backing slice so renderers can read values
// directly. It is valid until the next Step.
func (g *Grid) Cells() []Cell { return g.cur }

// Clear sets every cell to dead.
func (g *Grid) Clear() {
	for i := range g.cur {
		g.cur[i] = Dead
	}
}

// Equal reports whether both grids have the same dimensions and contents.
func (g *Grid) Equal(o *Grid) bool {
	if g.rows != o.rows || g.cols != o.cols {
		return false
	}
	for i, c := range g.cur {
		if o.cur[i] != c {
			return false
		}
	}
	return true
}

// Step advances the grid by one generation of Conway's rules. Neighbors
// beyond the boundary count as dead; there is no wrapping. The whole next
// generation is computed first, then published by swapping the buffers.
func (g *Grid) Step() {
	rows, cols := g.rows, g.cols
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			n := g.liveNeighbors(r, c)
			i := r*cols + c
			switch {
			case g.cur[i] == Alive && (n == 2 || n == 3):
				g.next[i] = Alive
			case g.cur[i] == Dead && n == 3:
				g.next[i] = Alive
			default:
				g.next[i] = Dead
			}
		}
	}
	g.cur, g.next = g.next, g.cur
}

// liveNeighbors counts alive cells in the Moore neighborhood of (r, c),
// clipped at the grid edge.
func (g *Grid) liveNeighbors(r, c int) int {
	n := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			nr, nc := r+dr, c+dc
			if nr < 0 || nr >= g.rows || nc < 0 || nc >= g.cols {
				continue
			}
			if g.cur[nr*g.cols+nc] == Alive {
				n++
			}
		}
	}
	return n
}
