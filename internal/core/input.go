package core

import "fmt"

// InputKind is a semantic player gesture, abstracted from the physical device.
type InputKind int

const (
	InputNone    InputKind = iota
	InputPick              // Press on a cell
	InputDrag              // Move the held cell over another cell
	InputRelease           // Let go of the held cell
)

// String returns a human-readable name for the input kind.
func (k InputKind) String() string {
	switch k {
	case InputNone:
		return "None"
	case InputPick:
		return "Pick"
	case InputDrag:
		return "Drag"
	case InputRelease:
		return "Release"
	default:
		return "Unknown"
	}
}

// Input is a single gesture in board coordinates.
// X and Y are ignored for InputRelease.
type Input struct {
	Kind InputKind
	X, Y int
}

// Pick returns a pick input at (x, y).
func Pick(x, y int) Input { return Input{Kind: InputPick, X: x, Y: y} }

// Drag returns a drag input toward (x, y).
func Drag(x, y int) Input { return Input{Kind: InputDrag, X: x, Y: y} }

// Release returns a release input.
func Release() Input { return Input{Kind: InputRelease} }

// String returns a compact representation such as "Pick(1,2)".
func (in Input) String() string {
	if in.Kind == InputRelease || in.Kind == InputNone {
		return in.Kind.String()
	}
	return fmt.Sprintf("%s(%d,%d)", in.Kind, in.X, in.Y)
}

// Controller is anything that accepts the three input entry points.
// Each method reports whether the input was accepted.
type Controller interface {
	PickUp(x, y int) bool
	DragTo(x, y int) bool
	Release() bool
}

// Apply dispatches a single input to the controller.
// Returns false if the controller ignored it.
func Apply(c Controller, in Input) bool {
	switch in.Kind {
	case InputPick:
		return c.PickUp(in.X, in.Y)
	case InputDrag:
		return c.DragTo(in.X, in.Y)
	case InputRelease:
		return c.Release()
	default:
		return false
	}
}
