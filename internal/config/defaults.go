package config

import (
	_ "embed"
)

//go:embed defaults/platformer.yaml
var defaultPlatformerYAML []byte

// DefaultPlatformerConfig returns the built-in tuning.
func DefaultPlatformerConfig() PlatformerConfig {
	return PlatformerConfig{
		Physics: Physics{
			Gravity:   0.6,
			Friction:  0.85,
			JumpForce: -14,
			MoveSpeed: 3,
		},
		World:  World{Width: 800, Height: 600},
		Player: Size{Width: 32, Height: 48},
		Timing: Timing{
			LevelCompleteTicks: 120,
			CaughtTicks:        150,
			StageDelayTicks:    30,
			DoorOpenTicks:      20,
			DoorEnterTicks:     34,
			RingInterval:       60,
			DialogueGap:        20,
			CutsceneGap:        60,
			CutsceneBlack:      60,
		},
		Chase: Chase{
			DelayTicks: 240,
			Speed:      2.2,
			Width:      32,
			Height:     48,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.3,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 1800,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.35,
				DelayReduction:  0.5,
			},
		},
	}
}

// DefaultYAML returns the embedded default config file.
func DefaultYAML() []byte {
	return defaultPlatformerYAML
}
