package board

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/orbfall/internal/core"
)

// State is the engine's turn state.
type State string

const (
	StateIdle      State = "idle"      // Awaiting pickup
	StateHeld      State = "held"      // A cell is held, awaiting drag or release
	StateResolving State = "resolving" // Board locked, cascade in progress
)

// DefaultMaxCascades bounds a single resolution. A board that keeps matching
// past this is a defect and panics.
const DefaultMaxCascades = 1000

// Options configures an Engine.
// Zero values select the defaults from DefaultOptions.
type Options struct {
	Width     int
	Height    int
	Colors    int // Palette size, 3..5
	Overshoot int // Drop distance for refill cells

	Detector Detector
	Rand     Rand
	Listener Listener
	Logger   *log.Logger

	SkipInitialSettle bool // Keep startup matches on the board
	MaxCascades       int
	SessionID         string // Generated when empty
}

// DefaultOptions returns the reference 6x5 five-color board.
func DefaultOptions() Options {
	return Options{
		Width:       6,
		Height:      5,
		Colors:      int(ColorCount),
		Overshoot:   DefaultOvershoot,
		Detector:    UnionDetector{},
		MaxCascades: DefaultMaxCascades,
	}
}

func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.Width == 0 {
		o.Width = def.Width
	}
	if o.Height == 0 {
		o.Height = def.Height
	}
	if o.Colors == 0 {
		o.Colors = def.Colors
	}
	if o.Overshoot == 0 {
		o.Overshoot = def.Overshoot
	}
	if o.Detector == nil {
		o.Detector = def.Detector
	}
	if o.MaxCascades == 0 {
		o.MaxCascades = def.MaxCascades
	}
	if o.Rand == nil {
		o.Rand = NewRand(core.DefaultConfig().ResolveSeed())
	}
	if o.Listener == nil {
		o.Listener = NopListener{}
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	if o.SessionID == "" {
		o.SessionID = uuid.NewString()
	}
	return o
}

func (o Options) validate() error {
	if o.Width < MinRun || o.Height < MinRun {
		return fmt.Errorf("board: size %dx%d is smaller than %dx%d", o.Width, o.Height, MinRun, MinRun)
	}
	if o.Colors < 3 || o.Colors > int(ColorCount) {
		return fmt.Errorf("board: colors must be between 3 and %d, got %d", ColorCount, o.Colors)
	}
	if o.Overshoot < 0 {
		return fmt.Errorf("board: overshoot must not be negative, got %d", o.Overshoot)
	}
	if o.MaxCascades < 1 {
		return fmt.Errorf("board: max cascades must be positive, got %d", o.MaxCascades)
	}
	return nil
}

// Engine owns a board and runs the pickup, drag, release and cascade cycle.
// It is not safe for concurrent use: one goroutine drives it and paces
// Step calls to suit its animation.
type Engine struct {
	opts    Options
	grid    *Grid
	swapper *Swapper
	log     *log.Logger

	state   State
	step    int  // Combo steps in the current turn
	cascade int  // Resolution passes since release
	silent  bool // Suppress combo events during the startup settle
}

// New creates an engine with a randomly filled board.
// Every cell starts above the board with the overshoot drop distance. Unless
// SkipInitialSettle is set, startup matches are resolved before New returns.
// Combo steps from that settle are logged but not reported to the listener.
func New(opts Options) (*Engine, error) {
	opts = opts.withDefaults()
	if err := opts.validate(); err != nil {
		return nil, err
	}

	g := NewGrid(opts.Width, opts.Height)
	for i := range g.cells {
		cell := NewCell(randomColor(opts.Rand, opts.Colors))
		cell.Drop = opts.Overshoot
		g.cells[i] = cell
	}

	e := newEngine(g, opts)
	e.log.Debug("board filled", "width", opts.Width, "height", opts.Height, "colors", opts.Colors)
	e.emitDrops()

	if !opts.SkipInitialSettle {
		e.silent = true
		e.state = StateResolving
		passes := e.Settle()
		e.silent = false
		e.step = 0
		e.cascade = 0
		e.log.Debug("startup settle done", "cascades", passes)
	}
	return e, nil
}

// NewWithGrid creates an engine around an existing board.
// The grid's dimensions override Width and Height. No fill or settle is
// performed, so the caller controls the starting position exactly.
func NewWithGrid(g *Grid, opts Options) (*Engine, error) {
	opts.Width, opts.Height = g.Dimensions()
	opts = opts.withDefaults()
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if !g.IsFull(opts.Colors) {
		return nil, fmt.Errorf("board: grid has cells outside the %d-color palette", opts.Colors)
	}
	return newEngine(g.Clone(), opts), nil
}

func newEngine(g *Grid, opts Options) *Engine {
	return &Engine{
		opts:    opts,
		grid:    g,
		swapper: NewSwapper(g),
		log:     opts.Logger.With("session", opts.SessionID),
		state:   StateIdle,
	}
}

// PickUp holds the cell at (x, y) and starts a turn.
// Returns false if the board is locked or a cell is already held.
// Coordinates must be inside the board.
func (e *Engine) PickUp(x, y int) bool {
	if e.state != StateIdle {
		return false
	}
	e.swapper.Pick(core.C(x, y))
	e.state = StateHeld
	e.step = 0
	e.log.Debug("pickup", "x", x, "y", y)
	return true
}

// DragTo moves the held cell one step toward (x, y), exchanging it with the
// cell it lands on. Returns true if an exchange happened.
// Returns false while locked. Panics if nothing is held.
func (e *Engine) DragTo(x, y int) bool {
	switch e.state {
	case StateResolving:
		return false
	case StateIdle:
		panic("board: drag with no held cell")
	}

	from, to, swapped := e.swapper.RequestSwap(core.C(x, y))
	if !swapped {
		return false
	}
	e.notify("swap", func(l Listener) { l.OnSwap(SwapHint{From: from, To: to}) })
	return true
}

// Release drops the held cell and locks the board for resolution, whether
// or not any exchange took place. Drive the cascade with Step or Settle.
// Returns false while locked. Panics if nothing is held.
func (e *Engine) Release() bool {
	switch e.state {
	case StateResolving:
		return false
	case StateIdle:
		panic("board: release with no held cell")
	}

	at := e.swapper.Release()
	e.state = StateResolving
	e.cascade = 0
	e.log.Debug("release", "x", at.X, "y", at.Y)
	return true
}

// Step runs one resolution pass: detect, then remove, drop and refill.
// A pass that finds nothing unlocks the board. Returns true if the pass
// removed cells and another pass is due.
func (e *Engine) Step() bool {
	if e.state != StateResolving {
		return false
	}

	d := e.opts.Detector.Detect(e.grid)
	if d.Empty() {
		e.state = StateIdle
		e.log.Debug("board stable", "cascades", e.cascade, "steps", e.step)
		return false
	}

	e.cascade++
	if e.cascade > e.opts.MaxCascades {
		panic(fmt.Sprintf("board: cascade did not stabilize after %d passes", e.opts.MaxCascades))
	}
	e.log.Debug("cascade", "cascade", e.cascade, "groups", len(d.Groups), "cells", d.Size())

	for _, r := range resolve(e.grid, d.MaxID) {
		e.step++
		step := ComboStep{
			Step:    e.step,
			Cascade: e.cascade,
			GroupID: r.group,
			Color:   r.color,
			Size:    len(r.cells),
			Cells:   r.cells,
		}
		e.log.Debug("combo", "step", step.Step, "color", step.Color, "size", step.Size)
		if !e.silent {
			e.notify("combo", func(l Listener) { l.OnComboStep(step) })
		}
	}

	compact(e.grid)
	refill(e.grid, e.opts.Rand, e.opts.Colors, e.opts.Overshoot)
	e.emitDrops()
	return true
}

// Settle runs Step until the board unlocks and returns the number of passes
// that removed cells.
func (e *Engine) Settle() int {
	passes := 0
	for e.Step() {
		passes++
	}
	return passes
}

func (e *Engine) emitDrops() {
	for _, hint := range collectDrops(e.grid) {
		e.notify("drop", func(l Listener) { l.OnDrop(hint) })
	}
}

// notify delivers an event. A panicking listener is logged and ignored.
func (e *Engine) notify(event string, fn func(Listener)) {
	defer func() {
		if r := recover(); r != nil {
			e.log.Warn("listener panicked", "event", event, "err", r)
		}
	}()
	fn(e.opts.Listener)
}

// IsLocked returns true while a cascade is in progress.
func (e *Engine) IsLocked() bool {
	return e.state == StateResolving
}

// State returns the current turn state.
func (e *Engine) State() State {
	return e.state
}

// CellAt returns the color at (x, y).
func (e *Engine) CellAt(x, y int) Color {
	return e.grid.Get(x, y).Color
}

// Dimensions returns the board width and height.
func (e *Engine) Dimensions() (w, h int) {
	return e.grid.Dimensions()
}

// Held returns the held coordinate and whether a cell is held.
func (e *Engine) Held() (core.Coord, bool) {
	return e.swapper.Held()
}

// Board returns a copy of the current grid.
func (e *Engine) Board() *Grid {
	return e.grid.Clone()
}

// SessionID returns the identifier used in this engine's log lines.
func (e *Engine) SessionID() string {
	return e.opts.SessionID
}

// DetectorName returns the active match strategy.
func (e *Engine) DetectorName() string {
	return e.opts.Detector.Name()
}

// String renders the board as ASCII rows.
func (e *Engine) String() string {
	return e.grid.String()
}
