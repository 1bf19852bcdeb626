package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadTetris loads Tetris configuration.
// Search order: customPath -> ~/.tetris/configs/tetris.yaml -> ./configs/tetris.yaml -> embedded default
func LoadTetris(customPath string) (TetrisConfig, error) {
	var cfg TetrisConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then the local one
	for _, path := range []string{userConfigPath("tetris.yaml"), filepath.Join("configs", "tetris.yaml")} {
		if path == "" {
			continue
		}
		if loaded, ok := tryLoad(path); ok {
			return loaded, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultTetrisYAML, &cfg); err != nil || cfg.Validate() != nil {
		return DefaultTetrisConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryLoad reads and validates an optional config file.
func tryLoad(path string) (TetrisConfig, bool) {
	var cfg TetrisConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	if cfg.Validate() != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tetris", "configs", filename)
}

// Validate checks that the configuration can drive a game.
func (c TetrisConfig) Validate() error {
	if len(c.Gravity.EveryTicks) != SpeedLevels {
		return fmt.Errorf("config: gravity.every_ticks needs %d entries, got %d", SpeedLevels, len(c.Gravity.EveryTicks))
	}
	for i, n := range c.Gravity.EveryTicks {
		if n <= 0 {
			return fmt.Errorf("config: gravity.every_ticks[%d] must be positive, got %d", i, n)
		}
	}
	if c.Difficulty.InitialLevel < 0 || c.Difficulty.InitialLevel > 1 {
		return fmt.Errorf("config: difficulty.initial_level must be within [0, 1], got %g", c.Difficulty.InitialLevel)
	}
	switch c.Difficulty.Progression.Type {
	case ProgressionLines, ProgressionTime, ProgressionNone, "":
	default:
		return fmt.Errorf("config: unknown progression type %q", c.Difficulty.Progression.Type)
	}
	return nil
}

// Marshal encodes the configuration as YAML.
func (c TetrisConfig) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return data, nil
}

// ErrUnknownPreset is returned for difficulty names other than easy, normal, hard and fixed.
var ErrUnknownPreset = errors.New("config: unknown difficulty preset")

// ApplyTetrisPreset modifies the config based on a difficulty preset.
func ApplyTetrisPreset(cfg *TetrisConfig, preset DifficultyPreset) error {
	if _, ok := ParsePreset(string(preset)); !ok {
		return fmt.Errorf("%w %q", ErrUnknownPreset, preset)
	}
	switch {
	case preset == "":
		return nil
	case IsFixedPreset(preset):
		cfg.Difficulty.Enabled = false
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
	return nil
}
