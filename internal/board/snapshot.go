package board

import "github.com/vovakirdan/orbfall/internal/core"

// Snapshot captures the engine state for determinism testing and replay.
type Snapshot struct {
	SessionID string
	State     State
	Width     int
	Height    int
	Board     [][]Color
	Held      core.Coord
	Holding   bool
	Step      int // Combo steps in the current turn
	Cascade   int // Passes since the last release
	Detector  string
}

// Snapshot returns the current engine snapshot.
func (e *Engine) Snapshot() Snapshot {
	held, holding := e.swapper.Held()
	return Snapshot{
		SessionID: e.opts.SessionID,
		State:     e.state,
		Width:     e.grid.w,
		Height:    e.grid.h,
		Board:     e.grid.Colors(),
		Held:      held,
		Holding:   holding,
		Step:      e.step,
		Cascade:   e.cascade,
		Detector:  e.opts.Detector.Name(),
	}
}
