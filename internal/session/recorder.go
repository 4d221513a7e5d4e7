package session

import "github.com/vovakirdan/orbfall/internal/board"

// Recorder is a board listener that keeps the event log for a session and
// tallies combo steps per color, the way skill counters consume them.
type Recorder struct {
	Combos []board.ComboStep
	Swaps  int
	Drops  int

	tally [board.ColorCount]int
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) OnComboStep(step board.ComboStep) {
	r.Combos = append(r.Combos, step)
	if step.Color < board.ColorCount {
		r.tally[step.Color]++
	}
}

func (r *Recorder) OnSwap(board.SwapHint) { r.Swaps++ }
func (r *Recorder) OnDrop(board.DropHint) { r.Drops++ }

// Tally returns the number of combo steps that removed color c.
func (r *Recorder) Tally(c board.Color) int {
	if c >= board.ColorCount {
		return 0
	}
	return r.tally[c]
}

// Charges returns skill charges by skill color name.
// The obstacle color matches like any other but grants no charge.
func (r *Recorder) Charges() map[string]int {
	charges := make(map[string]int, board.ColorCount-1)
	for _, c := range board.Palette(int(board.ColorCount)) {
		if c == board.ColorX {
			continue
		}
		charges[c.String()] = r.tally[c]
	}
	return charges
}

// BestStep returns the highest combo step index reached in any turn.
func (r *Recorder) BestStep() int {
	best := 0
	for _, s := range r.Combos {
		if s.Step > best {
			best = s.Step
		}
	}
	return best
}

// BestCascade returns the deepest cascade level reached in any turn.
func (r *Recorder) BestCascade() int {
	best := 0
	for _, s := range r.Combos {
		if s.Cascade > best {
			best = s.Cascade
		}
	}
	return best
}

// Removed returns the total number of cells cleared.
func (r *Recorder) Removed() int {
	n := 0
	for _, s := range r.Combos {
		n += s.Size
	}
	return n
}
