package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadBoard loads the board configuration.
// Search order: customPath -> ~/.orbfall/configs/board.yaml -> ./configs/board.yaml -> embedded default
//
// Missing keys keep their default values. A custom path that cannot be read,
// parsed or validated is an error; broken files found by the search are
// skipped.
func LoadBoard(customPath string) (BoardConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return BoardConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := ParseBoard(data)
		if err != nil {
			return BoardConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("board.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := ParseBoard(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "board.yaml")); err == nil {
		if cfg, err := ParseBoard(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := ParseBoard(defaultBoardYAML)
	if err != nil {
		return DefaultBoardConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ParseBoard decodes YAML over the defaults and validates the result.
func ParseBoard(data []byte) (BoardConfig, error) {
	cfg := DefaultBoardConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return BoardConfig{}, fmt.Errorf("failed to parse board config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return BoardConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func (c BoardConfig) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".orbfall", "configs", filename)
}
