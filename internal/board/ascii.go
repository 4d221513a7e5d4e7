package board

import (
	"fmt"
	"strings"
	"unicode"
)

// ParseGrid builds a grid from an ASCII board, one row per line, top row first.
// Letters follow Color.Char (S, H, B, E, X, case-insensitive); '.' is an
// empty slot. Whitespace inside a row and blank lines are ignored.
func ParseGrid(s string) (*Grid, error) {
	var rows [][]Color
	for lineNo, line := range strings.Split(s, "\n") {
		var row []Color
		for _, r := range line {
			if unicode.IsSpace(r) {
				continue
			}
			if r == '.' {
				row = append(row, NoColor)
				continue
			}
			c, ok := ParseColor(string(r))
			if !ok {
				return nil, fmt.Errorf("board: line %d: unknown cell %q", lineNo+1, r)
			}
			row = append(row, c)
		}
		if len(row) > 0 {
			rows = append(rows, row)
		}
	}
	return NewGridFromColors(rows)
}

// MustParseGrid is like ParseGrid but panics on error.
// Intended for tests and fixed fixtures.
func MustParseGrid(s string) *Grid {
	g, err := ParseGrid(s)
	if err != nil {
		panic(err)
	}
	return g
}

// String renders the grid as ASCII rows, top row first.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.w*g.h + g.h)

	for y := 0; y < g.h; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < g.w; x++ {
			sb.WriteRune(g.cells[y*g.w+x].Color.Char())
		}
	}
	return sb.String()
}
