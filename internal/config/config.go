// Package config provides YAML-based game configuration loading and
// difficulty management for Tetris.
package config

// SpeedLevels is the number of gravity speed levels.
const SpeedLevels = 5

// TetrisConfig contains all configuration for the Tetris game.
type TetrisConfig struct {
	Gravity    TetrisGravity    `yaml:"gravity"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// TetrisGravity defines how often gravity applies at each speed level.
type TetrisGravity struct {
	// EveryTicks holds frames between gravity steps for speed levels 1..5.
	EveryTicks []int `yaml:"every_ticks"`
}

// IntervalFor returns the frames between gravity steps for a speed level.
// Levels outside 1..len(EveryTicks) are clamped.
func (g TetrisGravity) IntervalFor(speed int) int {
	if len(g.EveryTicks) == 0 {
		return 1
	}
	idx := speed - 1
	if idx < 0 {
		idx = 0
	}
	if idx >= len(g.EveryTicks) {
		idx = len(g.EveryTicks) - 1
	}
	return max(1, g.EveryTicks[idx])
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "lines", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Lines/ticks at which max difficulty is reached
}

// Progression types.
const (
	ProgressionLines = "lines"
	ProgressionTime  = "time"
	ProgressionNone  = "none"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ParsePreset validates a preset name. The empty string is accepted and
// leaves the configuration untouched.
func ParsePreset(name string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(name); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	default:
		return "", false
	}
}
