package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parse(DefaultYAML())
	if err != nil {
		t.Fatalf("parse(embedded) error: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultPlatformerConfig()) {
		t.Errorf("embedded defaults drifted from DefaultPlatformerConfig():\n got %+v\nwant %+v", cfg, DefaultPlatformerConfig())
	}
}

func TestLoadPlatformerCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := []byte("physics:\n  gravity: 0.9\nchase:\n  speed: 4\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadPlatformer(path)
	if err != nil {
		t.Fatalf("LoadPlatformer() error: %v", err)
	}
	if cfg.Physics.Gravity != 0.9 {
		t.Errorf("Gravity = %v, expected 0.9", cfg.Physics.Gravity)
	}
	if cfg.Chase.Speed != 4 {
		t.Errorf("Chase.Speed = %v, expected 4", cfg.Chase.Speed)
	}
	// Untouched keys keep defaults
	if cfg.Physics.JumpForce != -14 {
		t.Errorf("JumpForce = %v, expected default -14", cfg.Physics.JumpForce)
	}
}

func TestLoadPlatformerErrors(t *testing.T) {
	if _, err := LoadPlatformer(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing custom file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("world:\n  width: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadPlatformer(path); err == nil {
		t.Error("expected validation error for zero world width")
	}
}

func TestParsePreset(t *testing.T) {
	for _, s := range []string{"", "easy", "normal", "hard", "fixed"} {
		if _, err := ParsePreset(s); err != nil {
			t.Errorf("ParsePreset(%q) error: %v", s, err)
		}
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("ParsePreset(nightmare) should fail")
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultPlatformerConfig()
	ApplyPreset(&cfg, DifficultyHard)
	if !cfg.Difficulty.Enabled || cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("hard preset = %+v", cfg.Difficulty)
	}

	ApplyPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}

	before := cfg
	ApplyPreset(&cfg, "")
	if !reflect.DeepEqual(before, cfg) {
		t.Error("empty preset should not change config")
	}
}
