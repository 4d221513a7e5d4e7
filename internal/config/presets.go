package config

import "fmt"

// Preset represents a named board size.
type Preset string

const (
	PresetSmall    Preset = "small"
	PresetStandard Preset = "standard"
	PresetLarge    Preset = "large"
)

// Presets lists the known presets, smallest first.
func Presets() []Preset {
	return []Preset{PresetSmall, PresetStandard, PresetLarge}
}

// Dimensions returns the board width and height for a preset.
func (p Preset) Dimensions() (w, h int, ok bool) {
	switch p {
	case PresetSmall:
		return 5, 4, true
	case PresetStandard:
		return 6, 5, true
	case PresetLarge:
		return 7, 6, true
	default:
		return 0, 0, false
	}
}

// ParsePreset converts a name to a Preset.
func ParsePreset(name string) (Preset, error) {
	p := Preset(name)
	if _, _, ok := p.Dimensions(); !ok {
		return "", fmt.Errorf("config: unknown preset %q", name)
	}
	return p, nil
}

// ApplyPreset modifies the config based on a size preset.
// Small boards drop the obstacle color so they stay matchable.
func ApplyPreset(cfg *BoardConfig, preset Preset) error {
	w, h, ok := preset.Dimensions()
	if !ok {
		return fmt.Errorf("config: unknown preset %q", preset)
	}
	cfg.Board.Width = w
	cfg.Board.Height = h

	if preset == PresetSmall && cfg.Board.Colors > 4 {
		cfg.Board.Colors = 4
	}
	return nil
}
