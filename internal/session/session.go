// Package session wires configuration, randomness, logging and event
// recording around a board engine.
package session

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/orbfall/internal/board"
	"github.com/vovakirdan/orbfall/internal/config"
	"github.com/vovakirdan/orbfall/internal/core"
	"github.com/vovakirdan/orbfall/internal/script"
)

// Session is one play session on one board.
type Session struct {
	ID       string
	Seed     int64
	Config   config.BoardConfig
	Engine   *board.Engine
	Recorder *Recorder

	log   *log.Logger
	turns int
}

// New creates a session with a randomly filled board.
func New(cfg config.BoardConfig, rc core.RuntimeConfig, logger *log.Logger) (*Session, error) {
	return build(cfg, rc.ResolveSeed(), nil, logger)
}

// FromScript creates a session for replaying s.
// The script's seed, palette and detector override cfg, and its board,
// when present, replaces the random fill.
func FromScript(cfg config.BoardConfig, s script.Script, logger *log.Logger) (*Session, error) {
	if s.Colors != 0 {
		cfg.Board.Colors = s.Colors
	}
	if s.Detector != "" {
		cfg.Match.Detector = s.Detector
	}
	g, err := s.Grid()
	if err != nil {
		return nil, err
	}
	seed := core.RuntimeConfig{Seed: s.Seed}.ResolveSeed()
	return build(cfg, seed, g, logger)
}

func build(cfg config.BoardConfig, seed int64, g *board.Grid, logger *log.Logger) (*Session, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if g != nil {
		cfg.Board.Width, cfg.Board.Height = g.Dimensions()
	}

	opts, err := cfg.Options()
	if err != nil {
		return nil, err
	}

	s := &Session{
		ID:       uuid.NewString(),
		Seed:     seed,
		Config:   cfg,
		Recorder: NewRecorder(),
	}
	s.log = logger.With("session", s.ID)

	opts.Rand = board.NewRand(seed)
	opts.Listener = s.Recorder
	opts.Logger = logger
	opts.SessionID = s.ID

	if g != nil {
		s.Engine, err = board.NewWithGrid(g, opts)
	} else {
		s.Engine, err = board.New(opts)
	}
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}

	s.log.Info("session started",
		"seed", seed,
		"width", cfg.Board.Width,
		"height", cfg.Board.Height,
		"colors", cfg.Board.Colors,
		"detector", s.Engine.DetectorName(),
	)
	return s, nil
}

// Play applies one turn and settles the board.
func (s *Session) Play(t script.Turn) script.Result {
	before := len(s.Recorder.Combos)
	res := script.PlayTurn(s.Engine, t)
	s.turns++
	s.log.Debug("turn played",
		"turn", s.turns,
		"swaps", res.Swaps,
		"cascades", res.Cascades,
		"steps", len(s.Recorder.Combos)-before,
	)
	return res
}

// Replay plays every turn of sc and checks its expectations.
func (s *Session) Replay(sc script.Script) (script.Result, error) {
	res := script.Result{Board: s.Engine.String()}
	for _, t := range sc.Turns {
		r := s.Play(t)
		res.Turns++
		res.Swaps += r.Swaps
		res.Rejected += r.Rejected
		res.Cascades += r.Cascades
		res.Board = r.Board
	}

	if err := s.check(sc, res); err != nil {
		s.log.Warn("replay mismatch", "script", sc.ID, "err", err)
		return res, err
	}
	s.log.Info("replay finished", "script", sc.ID, "turns", res.Turns, "combos", len(s.Recorder.Combos))
	return res, nil
}

func (s *Session) check(sc script.Script, res script.Result) error {
	exp := sc.Expect
	if exp == nil {
		return nil
	}
	if exp.Board != "" {
		want, err := board.ParseGrid(exp.Board)
		if err != nil {
			return fmt.Errorf("session: script %s: expected board: %w", sc.ID, err)
		}
		if want.String() != res.Board {
			return fmt.Errorf("session: script %s: final board\n%s\nwant\n%s", sc.ID, res.Board, want)
		}
	}
	if exp.Combos != nil && *exp.Combos != len(s.Recorder.Combos) {
		return fmt.Errorf("session: script %s: %d combo steps, want %d", sc.ID, len(s.Recorder.Combos), *exp.Combos)
	}
	if exp.Swaps != nil && *exp.Swaps != res.Swaps {
		return fmt.Errorf("session: script %s: %d swaps, want %d", sc.ID, res.Swaps, *exp.Swaps)
	}
	return nil
}

// Turns returns the number of turns played.
func (s *Session) Turns() int {
	return s.turns
}

// Summary renders the board and the per-color tallies.
func (s *Session) Summary() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s\n\n", s.Engine)
	fmt.Fprintf(&sb, "turns: %d  combos: %d  cleared: %d  best step: %d  best cascade: %d\n",
		s.turns, len(s.Recorder.Combos), s.Recorder.Removed(), s.Recorder.BestStep(), s.Recorder.BestCascade())
	for _, c := range board.Palette(s.Config.Board.Colors) {
		fmt.Fprintf(&sb, "  %c %-7s %d\n", c.Char(), c, s.Recorder.Tally(c))
	}
	return sb.String()
}
