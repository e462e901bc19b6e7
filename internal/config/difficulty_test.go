package config

import (
	"math"
	"testing"
)

func testDifficulty() DifficultyConfig {
	return DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.5,
		Progression:  ProgressionConfig{Type: "time", MaxAt: 100},
		Scaling:      ScalingConfig{SpeedMultiplier: 1.0, DelayReduction: 0.5},
	}
}

func TestDifficultyLevel(t *testing.T) {
	d := NewDifficultyManager(testDifficulty())

	tests := []struct {
		ticks    int
		expected float64
	}{
		{0, 0.5},
		{50, 0.75},
		{100, 1.0},
		{500, 1.0},
	}
	for _, tc := range tests {
		if got := d.Level(tc.ticks); math.Abs(got-tc.expected) > 1e-9 {
			t.Errorf("Level(%d) = %v, expected %v", tc.ticks, got, tc.expected)
		}
	}
}

func TestDifficultyDisabled(t *testing.T) {
	cfg := testDifficulty()
	cfg.Enabled = false
	d := NewDifficultyManager(cfg)

	if d.IsEnabled() {
		t.Error("IsEnabled() = true for disabled config")
	}
	if got := d.Level(1000); got != 0.5 {
		t.Errorf("Level() = %v, expected initial level 0.5", got)
	}
}

func TestChaseSpeed(t *testing.T) {
	d := NewDifficultyManager(testDifficulty())
	if got := d.ChaseSpeed(2, 0); got != 3 {
		t.Errorf("ChaseSpeed(2, 0) = %v, expected 3", got)
	}
	if got := d.ChaseSpeed(2, 100); got != 4 {
		t.Errorf("ChaseSpeed(2, 100) = %v, expected 4", got)
	}
}

func TestSpawnDelay(t *testing.T) {
	d := NewDifficultyManager(testDifficulty())
	if got := d.SpawnDelay(200); got != 150 {
		t.Errorf("SpawnDelay(200) = %d, expected 150", got)
	}
	if got := d.SpawnDelay(0); got != 1 {
		t.Errorf("SpawnDelay(0) = %d, expected minimum 1", got)
	}
}
