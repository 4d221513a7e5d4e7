// Package config provides YAML-based board configuration loading and
// size presets for orbfall sessions.
package config

import (
	"fmt"

	"github.com/vovakirdan/orbfall/internal/board"
)

// BoardConfig contains all configuration for a board session.
type BoardConfig struct {
	Board  BoardSize    `yaml:"board"`
	Spawn  SpawnConfig  `yaml:"spawn"`
	Match  MatchConfig  `yaml:"match"`
	Engine EngineConfig `yaml:"engine"`
}

// BoardSize defines the grid dimensions and palette.
type BoardSize struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Colors int `yaml:"colors"` // First N of sword, shield, boot, estus, x
}

// SpawnConfig defines refill parameters.
type SpawnConfig struct {
	Overshoot int `yaml:"overshoot"` // Rows above the board a refill cell falls from
}

// MatchConfig selects the match detection strategy.
type MatchConfig struct {
	Detector string `yaml:"detector"` // "union" or "legacy"
}

// EngineConfig defines cascade behavior.
type EngineConfig struct {
	SettleOnStart bool `yaml:"settle_on_start"`
	MaxCascades   int  `yaml:"max_cascades"`
}

// Validate checks that the configuration describes a playable board.
func (c BoardConfig) Validate() error {
	if c.Board.Width < board.MinRun || c.Board.Height < board.MinRun {
		return fmt.Errorf("config: board %dx%d is smaller than %dx%d",
			c.Board.Width, c.Board.Height, board.MinRun, board.MinRun)
	}
	if c.Board.Colors < 3 || c.Board.Colors > int(board.ColorCount) {
		return fmt.Errorf("config: colors must be between 3 and %d, got %d", board.ColorCount, c.Board.Colors)
	}
	if c.Spawn.Overshoot < 1 {
		return fmt.Errorf("config: spawn overshoot must be positive, got %d", c.Spawn.Overshoot)
	}
	if c.Engine.MaxCascades < 1 {
		return fmt.Errorf("config: max_cascades must be positive, got %d", c.Engine.MaxCascades)
	}
	if _, err := board.DetectorByName(c.Match.Detector); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Options converts the configuration into engine options.
// Runtime collaborators (rand, listener, logger) are left for the caller.
func (c BoardConfig) Options() (board.Options, error) {
	if err := c.Validate(); err != nil {
		return board.Options{}, err
	}
	det, _ := board.DetectorByName(c.Match.Detector)
	return board.Options{
		Width:             c.Board.Width,
		Height:            c.Board.Height,
		Colors:            c.Board.Colors,
		Overshoot:         c.Spawn.Overshoot,
		Detector:          det,
		SkipInitialSettle: !c.Engine.SettleOnStart,
		MaxCascades:       c.Engine.MaxCascades,
	}, nil
}
