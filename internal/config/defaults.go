package config

import (
	_ "embed"

	"github.com/vovakirdan/orbfall/internal/board"
)

//go:embed defaults/board.yaml
var defaultBoardYAML []byte

// DefaultBoardConfig returns the reference 6x5 five-color board.
func DefaultBoardConfig() BoardConfig {
	return BoardConfig{
		Board: BoardSize{
			Width:  6,
			Height: 5,
			Colors: int(board.ColorCount),
		},
		Spawn: SpawnConfig{
			Overshoot: board.DefaultOvershoot,
		},
		Match: MatchConfig{
			Detector: board.DetectorUnion,
		},
		Engine: EngineConfig{
			SettleOnStart: true,
			MaxCascades:   board.DefaultMaxCascades,
		},
	}
}

// GetDefaultYAML returns the embedded default board YAML.
func GetDefaultYAML() []byte {
	return defaultBoardYAML
}
