package board

import (
	"fmt"

	"github.com/vovakirdan/orbfall/internal/core"
)

// Grid owns the board cells.
// Cells are stored in row-major order: index = y*W + x.
// Out-of-range access panics: callers clamp external input before calling.
type Grid struct {
	w     int
	h     int
	cells []Cell
}

// NewGrid creates a w x h grid with every slot empty.
func NewGrid(w, h int) *Grid {
	if w <= 0 || h <= 0 {
		panic(fmt.Sprintf("board: invalid grid size %dx%d", w, h))
	}
	g := &Grid{
		w:     w,
		h:     h,
		cells: make([]Cell, w*h),
	}
	for i := range g.cells {
		g.cells[i] = EmptyCell()
	}
	return g
}

// NewGridFromColors builds a grid from rows of colors (rows[y][x]).
// All rows must have the same length.
func NewGridFromColors(rows [][]Color) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("board: empty color matrix")
	}
	g := NewGrid(len(rows[0]), len(rows))
	for y, row := range rows {
		if len(row) != g.w {
			return nil, fmt.Errorf("board: row %d has %d cells, expected %d", y, len(row), g.w)
		}
		for x, c := range row {
			if c == NoColor {
				continue
			}
			g.cells[g.index(x, y)] = NewCell(c)
		}
	}
	return g, nil
}

// index converts a coordinate to a flat array index.
func (g *Grid) index(x, y int) int {
	if x < 0 || x >= g.w || y < 0 || y >= g.h {
		panic(fmt.Sprintf("board: coordinate (%d,%d) outside %dx%d grid", x, y, g.w, g.h))
	}
	return y*g.w + x
}

// Dimensions returns the grid width and height.
func (g *Grid) Dimensions() (w, h int) {
	return g.w, g.h
}

// InBounds returns true if (x, y) is a valid coordinate.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.w && y >= 0 && y < g.h
}

// Get returns the cell at (x, y).
func (g *Grid) Get(x, y int) Cell {
	return g.cells[g.index(x, y)]
}

// At returns the cell at c.
func (g *Grid) At(c core.Coord) Cell {
	return g.Get(c.X, c.Y)
}

// Set stores a cell at (x, y).
func (g *Grid) Set(x, y int, cell Cell) {
	g.cells[g.index(x, y)] = cell
}

// Swap exchanges the cells at a and b.
func (g *Grid) Swap(a, b core.Coord) {
	ia, ib := g.index(a.X, a.Y), g.index(b.X, b.Y)
	g.cells[ia], g.cells[ib] = g.cells[ib], g.cells[ia]
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return &Grid{
		w:     g.w,
		h:     g.h,
		cells: cells,
	}
}

// Equal returns true if two grids have the same dimensions and colors.
// Group marks and drop hints are transient and not compared.
func (g *Grid) Equal(other *Grid) bool {
	if g.w != other.w || g.h != other.h {
		return false
	}
	for i, cell := range g.cells {
		if cell.Color != other.cells[i].Color {
			return false
		}
	}
	return true
}

// Colors returns a copy of the color matrix as rows[y][x].
func (g *Grid) Colors() [][]Color {
	rows := make([][]Color, g.h)
	for y := range rows {
		rows[y] = make([]Color, g.w)
		for x := range rows[y] {
			rows[y][x] = g.cells[y*g.w+x].Color
		}
	}
	return rows
}

// EmptyCount returns the number of vacated slots.
func (g *Grid) EmptyCount() int {
	count := 0
	for _, cell := range g.cells {
		if cell.IsEmpty() {
			count++
		}
	}
	return count
}

// IsFull returns true if every slot holds one of the first n colors.
func (g *Grid) IsFull(n int) bool {
	for _, cell := range g.cells {
		if !cell.Color.Valid(n) {
			return false
		}
	}
	return true
}

// clearGroups resets every cell's match group.
func (g *Grid) clearGroups() {
	for i := range g.cells {
		g.cells[i].Group = 0
	}
}
