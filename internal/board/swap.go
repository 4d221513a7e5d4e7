package board

import (
	"fmt"

	"github.com/vovakirdan/orbfall/internal/core"
)

// Swapper tracks the cell held by the player and applies exchanges.
// The held coordinate is a reference into the grid, not a copy of the cell:
// each exchange mutates the grid in place and moves the reference.
type Swapper struct {
	grid    *Grid
	held    core.Coord
	holding bool
}

// NewSwapper creates a swapper operating on the given grid.
func NewSwapper(g *Grid) *Swapper {
	return &Swapper{grid: g}
}

// Pick records c as the held coordinate.
func (s *Swapper) Pick(c core.Coord) {
	if !s.grid.InBounds(c.X, c.Y) {
		panic(fmt.Sprintf("board: pick at %v outside grid", c))
	}
	s.held = c
	s.holding = true
}

// Held returns the held coordinate and whether anything is held.
func (s *Swapper) Held() (core.Coord, bool) {
	return s.held, s.holding
}

// RequestSwap moves the held cell one step toward target.
// Targets farther than one cell on an axis are clamped to the adjacent cell,
// so a fast drag cannot skip over cells. Returns the two exchanged
// coordinates, or swapped=false if the clamped target is the held cell.
func (s *Swapper) RequestSwap(target core.Coord) (from, to core.Coord, swapped bool) {
	if !s.holding {
		panic("board: swap requested with no held cell")
	}
	if !s.grid.InBounds(target.X, target.Y) {
		panic(fmt.Sprintf("board: swap target %v outside grid", target))
	}

	from = s.held
	to = from.StepToward(target)
	if to == from {
		return from, to, false
	}

	s.exchange(from, to)
	s.held = to
	return from, to, true
}

// exchange swaps two king-adjacent cells.
func (s *Swapper) exchange(a, b core.Coord) {
	if !a.Adjacent(b) {
		panic(fmt.Sprintf("board: cannot exchange non-adjacent cells %v and %v", a, b))
	}
	s.grid.Swap(a, b)
}

// Release clears and returns the held coordinate.
func (s *Swapper) Release() core.Coord {
	if !s.holding {
		panic("board: release with no held cell")
	}
	c := s.held
	s.held = core.Coord{}
	s.holding = false
	return c
}
