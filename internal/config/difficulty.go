package config

import "math"

// DifficultyManager maps progress (lines cleared or ticks) to a speed level.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != ProgressionNone && d.cfg.Progression.Type != ""
}

// Level returns the current difficulty level (0.0 to 1.0) based on lines/ticks.
func (d *DifficultyManager) Level(lines int, ticks int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	var progress float64
	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	switch d.cfg.Progression.Type {
	case ProgressionLines:
		progress = float64(lines) / maxAt
	case ProgressionTime:
		progress = float64(ticks) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// InitialSpeed returns the speed level a new game starts at.
func (d *DifficultyManager) InitialSpeed() int {
	return speedForLevel(d.initialLevel)
}

// SpeedLevel returns the speed level (1..SpeedLevels) for the given progress.
func (d *DifficultyManager) SpeedLevel(lines int, ticks int) int {
	return speedForLevel(d.Level(lines, ticks))
}

// speedForLevel maps a difficulty in [0, 1] onto 1..SpeedLevels.
func speedForLevel(level float64) int {
	return 1 + int(math.Round(clampF(level, 0.0, 1.0)*float64(SpeedLevels-1)))
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
