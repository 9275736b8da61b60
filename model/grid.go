package model

import (
	"iter"
	"strings"

	"github.com/pkg/errors"
)

var (
	// ErrIndexOutOfBounds is returned by direct accessors given coordinates outside the grid
	ErrIndexOutOfBounds = errors.New("index out of bounds")
	// ErrInvalidDimensions is returned when a grid is built with a non-positive size
	ErrInvalidDimensions = errors.New("invalid grid dimensions")
)

// neighborOffsets lists the 3x3 neighborhood without the center, row by row
var neighborOffsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Grid represents the toroidal game board
type Grid struct {
	width   int
	height  int
	cells   [][]Cell
	history []string // Store recent grid states for cycle detection
}

// NewGrid creates a new grid with the specified dimensions, all cells dead
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "[NewGrid] %dx%d", width, height)
	}
	g := &Grid{width: width, height: height}
	g.cells = freshCells(width, height)
	return g, nil
}

func freshCells(width, height int) [][]Cell {
	cells := make([][]Cell, height)
	for y := range cells {
		cells[y] = make([]Cell, width)
		for x := range cells[y] {
			cells[y][x] = newCell(x, y)
		}
	}
	return cells
}

// Width returns the width of the grid
func (g *Grid) Width() int {
	return g.width
}

// Height returns the height of the grid
func (g *Grid) Height() int {
	return g.height
}

// Clear replaces every cell with a fresh dead one
func (g *Grid) Clear() {
	g.cells = freshCells(g.width, g.height)
	g.history = nil
}

func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Get returns the cell at (x, y)
func (g *Grid) Get(x, y int) (*Cell, error) {
	if !g.inBounds(x, y) {
		return nil, errors.Wrapf(ErrIndexOutOfBounds, "[Get] (%d,%d) outside %dx%d", x, y, g.width, g.height)
	}
	return &g.cells[y][x], nil
}

// SetAlive sets a cell to alive (true) or dead (false)
func (g *Grid) SetAlive(x, y int, alive bool) error {
	if !g.inBounds(x, y) {
		return errors.Wrapf(ErrIndexOutOfBounds, "[SetAlive] (%d,%d) outside %dx%d", x, y, g.width, g.height)
	}
	g.cells[y][x].Alive = alive
	return nil
}

// Toggle flips the cell at (x, y)
func (g *Grid) Toggle(x, y int) error {
	if !g.inBounds(x, y) {
		return errors.Wrapf(ErrIndexOutOfBounds, "[Toggle] (%d,%d) outside %dx%d", x, y, g.width, g.height)
	}
	g.cells[y][x].Toggle()
	return nil
}

// At returns the cell at p, which must lie on the grid.
// It is meant for positions produced by the grid itself, such as transition lists.
func (g *Grid) At(p Position) *Cell {
	return &g.cells[p.Y][p.X]
}

// wrap maps any coordinate onto the torus
func wrap(v, size int) int {
	return ((v % size) + size) % size
}

// Neighbors returns the 8 cells around (x, y), wrapping across the edges
func (g *Grid) Neighbors(x, y int) [8]*Cell {
	var out [8]*Cell
	for i, off := range neighborOffsets {
		out[i] = &g.cells[wrap(y+off[1], g.height)][wrap(x+off[0], g.width)]
	}
	return out
}

// AliveNeighborCount counts the living cells among the 8 neighbors of (x, y)
func (g *Grid) AliveNeighborCount(x, y int) (count int) {
	for _, off := range neighborOffsets {
		if g.cells[wrap(y+off[1], g.height)][wrap(x+off[0], g.width)].Alive {
			count++
		}
	}
	return
}

// All yields every cell in row-major order, starting top-left
func (g *Grid) All() iter.Seq[*Cell] {
	return func(yield func(*Cell) bool) {
		for y := range g.height {
			for x := range g.width {
				if !yield(&g.cells[y][x]) {
					return
				}
			}
		}
	}
}

// Rows yields each row index with its cells, top to bottom.
// The row slices alias the grid and are only valid until the next Clear.
func (g *Grid) Rows() iter.Seq2[int, []Cell] {
	return func(yield func(int, []Cell) bool) {
		for y := range g.height {
			if !yield(y, g.cells[y]) {
				return
			}
		}
	}
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for c := range g.All() {
		if c.Alive {
			count++
		}
	}
	return
}

// String dumps the grid as rows of 0/1, each row ending with a newline
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.width + 1) * g.height)
	for _, row := range g.Rows() {
		for i := range row {
			b.WriteString(row[i].String())
		}
		b.WriteByte('\n')
	}
	return b.String()
}
