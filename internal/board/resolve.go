package board

import "github.com/vovakirdan/orbfall/internal/core"

// Combo feedback pitch: the first step plays at BasePitch, each later step
// in the same turn adds PitchStep.
const (
	BasePitch = 0.8
	PitchStep = 0.08
)

// ComboStep is one non-empty group removal.
// Step counts removals within a turn (1-based, reset on pickup).
// Cascade is the resolution pass that produced it (1-based, reset on release).
type ComboStep struct {
	Step    int
	Cascade int
	GroupID int
	Color   Color
	Size    int
	Cells   []core.Coord
}

// Pitch returns the escalating feedback pitch for this step.
func (s ComboStep) Pitch() float64 {
	return BasePitch + PitchStep*float64(s.Step-1)
}

// removal is the outcome of clearing one group id.
type removal struct {
	group int
	color Color
	cells []core.Coord
}

// resolve clears matched cells for ids 1..maxID in ascending order.
// Each id is swept row-major; the color recorded is the last one removed.
// Ids with no cells produce no removal.
func resolve(g *Grid, maxID int) []removal {
	var out []removal
	for id := 1; id <= maxID; id++ {
		r := removal{group: id}
		for i, cell := range g.cells {
			if cell.Group != id {
				continue
			}
			r.color = cell.Color
			r.cells = append(r.cells, core.C(i%g.w, i/g.w))
			g.cells[i] = EmptyCell()
		}
		if len(r.cells) > 0 {
			out = append(out, r)
		}
	}
	return out
}
