package config

import "math"

// DifficultyManager derives chase parameters from the difficulty settings.
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
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the difficulty level (0.0 to 1.0) after ticks of pursuit.
func (d *DifficultyManager) Level(ticks int) float64 {
	if !d.IsEnabled() || d.cfg.Progression.Type != "time" {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}
	progress := clampF(float64(ticks)/maxAt, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// ChaseSpeed returns the chaser speed after ticks of pursuit.
func (d *DifficultyManager) ChaseSpeed(baseSpeed float64, ticks int) float64 {
	return baseSpeed * (1.0 + d.Level(ticks)*d.cfg.Scaling.SpeedMultiplier)
}

// SpawnDelay returns how many ticks of play pass before the chaser appears.
func (d *DifficultyManager) SpawnDelay(baseDelay int) int {
	reduction := d.initialLevel * clampF(d.cfg.Scaling.DelayReduction, 0.0, 1.0)
	delay := int(math.Round(float64(baseDelay) * (1.0 - reduction)))
	if delay < 1 {
		delay = 1
	}
	return delay
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
