package board

// Cell is one board slot.
// Group is 0 when the cell is not part of a match in the current detection
// pass. Drop is a presentation hint: rows the cell should visually fall,
// reset to 0 once reported.
type Cell struct {
	Color Color
	Group int
	Drop  int
}

// NewCell returns an unmatched cell of the given color.
func NewCell(c Color) Cell {
	return Cell{Color: c}
}

// EmptyCell returns a vacated slot.
func EmptyCell() Cell {
	return Cell{Color: NoColor}
}

// IsEmpty returns true for a vacated slot.
func (c Cell) IsEmpty() bool {
	return c.Color == NoColor
}

// Matched returns true if the cell belongs to a group in the current pass.
func (c Cell) Matched() bool {
	return c.Group > 0
}
