// Package config provides YAML-based tuning for the platformer: physics
// constants, tick durations and chase difficulty.
package config

import (
	"errors"
	"fmt"
)

// PlatformerConfig contains all tunable values of the simulation.
type PlatformerConfig struct {
	Physics    Physics          `yaml:"physics"`
	World      World            `yaml:"world"`
	Player     Size             `yaml:"player"`
	Timing     Timing           `yaml:"timing"`
	Chase      Chase            `yaml:"chase"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// Physics defines the per-tick movement constants.
type Physics struct {
	Gravity   float64 `yaml:"gravity"`
	Friction  float64 `yaml:"friction"`
	JumpForce float64 `yaml:"jump_force"` // Negative: up is -y
	MoveSpeed float64 `yaml:"move_speed"`
}

// World is the playfield size in pixels.
type World struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Size is a body size in pixels.
type Size struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Timing holds every duration the simulation counts in ticks.
type Timing struct {
	LevelCompleteTicks int `yaml:"level_complete_ticks"`
	CaughtTicks        int `yaml:"caught_ticks"`
	StageDelayTicks    int `yaml:"stage_delay_ticks"` // Door entered -> stage 2
	DoorOpenTicks      int `yaml:"door_open_ticks"`
	DoorEnterTicks     int `yaml:"door_enter_ticks"`
	RingInterval       int `yaml:"ring_interval"`
	DialogueGap        int `yaml:"dialogue_gap"`
	CutsceneGap        int `yaml:"cutscene_gap"`
	CutsceneBlack      int `yaml:"cutscene_black"`
}

// Chase defines the pursuing entity on chase levels. Levels may override
// delay and speed.
type Chase struct {
	DelayTicks int     `yaml:"delay_ticks"`
	Speed      float64 `yaml:"speed"`
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
}

// DifficultyConfig defines how the chaser scales.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases during a chase.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "time" or "none"
	MaxAt int    `yaml:"max_at"` // Chase ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to chaser speed at max difficulty
	DelayReduction  float64 `yaml:"delay_reduction"`  // Fraction of spawn delay removed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. The empty string means "keep config".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

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

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *PlatformerConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
}

// Validate reports values the simulation cannot run with.
func (c PlatformerConfig) Validate() error {
	var errs []error
	if c.World.Width <= 0 || c.World.Height <= 0 {
		errs = append(errs, fmt.Errorf("world size must be positive, got %vx%v", c.World.Width, c.World.Height))
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		errs = append(errs, fmt.Errorf("player size must be positive, got %vx%v", c.Player.Width, c.Player.Height))
	}
	if c.Physics.Friction < 0 || c.Physics.Friction > 1 {
		errs = append(errs, fmt.Errorf("friction must be in [0,1], got %v", c.Physics.Friction))
	}
	if c.Timing.RingInterval <= 0 {
		errs = append(errs, fmt.Errorf("ring_interval must be positive, got %d", c.Timing.RingInterval))
	}
	if c.Timing.DoorOpenTicks <= 0 || c.Timing.DoorEnterTicks <= 0 {
		errs = append(errs, errors.New("door ramp durations must be positive"))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid platformer config: %w", err)
	}
	return nil
}
