// Package script loads and replays scripted board sessions.
// A script fixes the seed, optionally the starting board, and the
// sequence of pick and drag gestures of every turn.
package script

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/orbfall/internal/board"
	"github.com/vovakirdan/orbfall/internal/core"
)

// Script is a parsed session script.
type Script struct {
	ID       string
	Name     string
	Seed     int64
	Board    string // ASCII start board, empty for a random fill
	Colors   int    // Palette override, 0 keeps the configured value
	Detector string // Detector override, empty keeps the configured value
	Turns    []Turn
	Expect   *Expect
	FilePath string
}

// Turn is one pickup, an optional drag path, and the release.
type Turn struct {
	Pick core.Coord
	Drag []core.Coord
}

// Expect holds optional checks applied after a replay.
type Expect struct {
	Board  string // Final board, ASCII
	Combos *int   // Total combo steps across all turns
	Swaps  *int   // Total exchanges applied
}

// Inputs flattens a turn into gestures: pick, drags, release.
func (t Turn) Inputs() []core.Input {
	inputs := make([]core.Input, 0, len(t.Drag)+2)
	inputs = append(inputs, core.Pick(t.Pick.X, t.Pick.Y))
	for _, d := range t.Drag {
		inputs = append(inputs, core.Drag(d.X, d.Y))
	}
	return append(inputs, core.Release())
}

// Grid parses the start board, or returns nil if the script has none.
func (s Script) Grid() (*board.Grid, error) {
	if strings.TrimSpace(s.Board) == "" {
		return nil, nil
	}
	g, err := board.ParseGrid(s.Board)
	if err != nil {
		return nil, fmt.Errorf("script %s: %w", s.ID, err)
	}
	return g, nil
}

// yamlScript is the on-disk layout.
type yamlScript struct {
	ID       string      `yaml:"id"`
	Name     string      `yaml:"name"`
	Seed     int64       `yaml:"seed"`
	Board    string      `yaml:"board,omitempty"`
	Colors   int         `yaml:"colors,omitempty"`
	Detector string      `yaml:"detector,omitempty"`
	Turns    []yamlTurn  `yaml:"turns"`
	Expect   *yamlExpect `yaml:"expect,omitempty"`
}

type yamlTurn struct {
	Pick []int   `yaml:"pick"`
	Drag [][]int `yaml:"drag,omitempty"`
}

type yamlExpect struct {
	Board  string `yaml:"board,omitempty"`
	Combos *int   `yaml:"combos,omitempty"`
	Swaps  *int   `yaml:"swaps,omitempty"`
}

// Parse decodes a YAML script.
func Parse(data []byte) (Script, error) {
	var ys yamlScript
	if err := yaml.Unmarshal(data, &ys); err != nil {
		return Script{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if ys.ID == "" {
		return Script{}, fmt.Errorf("script has no id")
	}

	s := Script{
		ID:       ys.ID,
		Name:     ys.Name,
		Seed:     ys.Seed,
		Board:    ys.Board,
		Colors:   ys.Colors,
		Detector: ys.Detector,
	}
	if s.Name == "" {
		s.Name = s.ID
	}

	for i, yt := range ys.Turns {
		pick, err := parseCoord(yt.Pick)
		if err != nil {
			return Script{}, fmt.Errorf("turn %d pick: %w", i+1, err)
		}
		turn := Turn{Pick: pick}
		for j, yd := range yt.Drag {
			c, err := parseCoord(yd)
			if err != nil {
				return Script{}, fmt.Errorf("turn %d drag %d: %w", i+1, j+1, err)
			}
			turn.Drag = append(turn.Drag, c)
		}
		s.Turns = append(s.Turns, turn)
	}

	if ys.Expect != nil {
		s.Expect = &Expect{
			Board:  strings.TrimSpace(ys.Expect.Board),
			Combos: ys.Expect.Combos,
			Swaps:  ys.Expect.Swaps,
		}
	}

	if _, err := s.Grid(); err != nil {
		return Script{}, err
	}
	return s, nil
}

func parseCoord(v []int) (core.Coord, error) {
	if len(v) != 2 {
		return core.Coord{}, fmt.Errorf("expected [x, y], got %v", v)
	}
	return core.C(v[0], v[1]), nil
}
