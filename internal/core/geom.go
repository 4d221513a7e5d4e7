// Package core provides fundamental types and utilities shared by the board
// engine and its collaborators. It has no external dependencies so that
// engine logic stays pure and testable.
package core

import "fmt"

// Coord is a cell position on the board.
// X increases to the right, Y increases downward (row 0 is the top row).
type Coord struct {
	X int
	Y int
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns a new Coord offset by (dx, dy).
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// Chebyshev returns the Chebyshev (king-move) distance to another coordinate.
func (c Coord) Chebyshev(other Coord) int {
	return Max(Abs(c.X-other.X), Abs(c.Y-other.Y))
}

// Adjacent returns true if other is exactly one king-move away.
func (c Coord) Adjacent(other Coord) bool {
	return c.Chebyshev(other) == 1
}

// StepToward returns the coordinate reached by moving at most one cell on
// each axis from c in the direction of target.
func (c Coord) StepToward(target Coord) Coord {
	return Coord{
		X: Clamp(target.X, c.X-1, c.X+1),
		Y: Clamp(target.Y, c.Y-1, c.Y+1),
	}
}

// Within returns true if the coordinate lies inside a w x h board.
func (c Coord) Within(w, h int) bool {
	return c.X >= 0 && c.X < w && c.Y >= 0 && c.Y < h
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
