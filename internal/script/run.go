package script

import "github.com/vovakirdan/orbfall/internal/core"

// Engine is the part of the board engine a replay drives.
type Engine interface {
	core.Controller
	Settle() int
	Dimensions() (w, h int)
	String() string
}

// Result summarizes a replay.
type Result struct {
	Turns    int
	Swaps    int
	Rejected int // Gestures the engine refused
	Cascades int
	Board    string
}

// PlayTurn applies one turn and settles the board.
// Coordinates are clamped into the board first, as a pointer mapping would.
func PlayTurn(e Engine, t Turn) Result {
	w, h := e.Dimensions()
	var res Result
	for _, in := range t.Inputs() {
		if in.Kind != core.InputRelease {
			in.X = core.Clamp(in.X, 0, w-1)
			in.Y = core.Clamp(in.Y, 0, h-1)
		}
		ok := core.Apply(e, in)
		switch {
		case ok && in.Kind == core.InputDrag:
			res.Swaps++
		case !ok && in.Kind != core.InputDrag:
			res.Rejected++
		}
	}
	res.Cascades = e.Settle()
	res.Turns = 1
	res.Board = e.String()
	return res
}

// Run replays every turn of s on e.
func Run(e Engine, s Script) Result {
	res := Result{Board: e.String()}
	for _, t := range s.Turns {
		r := PlayTurn(e, t)
		res.Turns++
		res.Swaps += r.Swaps
		res.Rejected += r.Rejected
		res.Cascades += r.Cascades
		res.Board = r.Board
	}
	return res
}
