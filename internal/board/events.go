package board

import "github.com/vovakirdan/orbfall/internal/core"

// SwapHint reports one exchange applied during a drag.
type SwapHint struct {
	From core.Coord
	To   core.Coord
}

// DropHint reports how far the cell now at (X, Y) should visually fall.
type DropHint struct {
	X        int
	Y        int
	Distance int
}

// Listener receives engine events.
// Calls are fire-and-forget: return values are not consulted and a panicking
// listener is recovered by the engine.
type Listener interface {
	OnComboStep(step ComboStep)
	OnSwap(hint SwapHint)
	OnDrop(hint DropHint)
}

// ListenerFuncs adapts plain functions to Listener. Nil fields are skipped.
type ListenerFuncs struct {
	ComboStep func(ComboStep)
	Swap      func(SwapHint)
	Drop      func(DropHint)
}

func (f ListenerFuncs) OnComboStep(step ComboStep) {
	if f.ComboStep != nil {
		f.ComboStep(step)
	}
}

func (f ListenerFuncs) OnSwap(hint SwapHint) {
	if f.Swap != nil {
		f.Swap(hint)
	}
}

func (f ListenerFuncs) OnDrop(hint DropHint) {
	if f.Drop != nil {
		f.Drop(hint)
	}
}

// NopListener drops every event.
type NopListener struct{}

func (NopListener) OnComboStep(ComboStep) {}
func (NopListener) OnSwap(SwapHint)       {}
func (NopListener) OnDrop(DropHint)       {}
