// Package levels provides the read-only level table: level descriptors,
// dialogue scripts and cutscene text, loaded from YAML.
// The game package depends on levels but levels does not depend on game.
package levels

import (
	"unicode/utf8"

	"github.com/vovakirdan/mias-adventure/internal/core"
)

// Point is a position in world pixels.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Platform is a static platform rect.
type Platform struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	W      float64 `yaml:"w"`
	H      float64 `yaml:"h"`
	Bloody bool    `yaml:"bloody,omitempty"`
}

// Box returns the platform's collision box.
func (p Platform) Box() core.Box {
	return core.NewBox(p.X, p.Y, p.W, p.H)
}

// Stage is the layout of one stage of a multi-stage level.
type Stage struct {
	PlayerStart *Point     `yaml:"player_start,omitempty"`
	Goal        *Point     `yaml:"goal,omitempty"`
	Platforms   []Platform `yaml:"platforms"`
}

// Trigger is a region that opens a dialogue script: story beats fire on
// overlap, peek points on interact.
type Trigger struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	W      float64 `yaml:"w"`
	H      float64 `yaml:"h"`
	Script string  `yaml:"script"`
}

// Box returns the trigger region.
func (t Trigger) Box() core.Box {
	return core.NewBox(t.X, t.Y, t.W, t.H)
}

// Chase configures the pursuing entity of a chase level. Zero values fall
// back to the global chase tuning.
type Chase struct {
	DelayTicks int     `yaml:"delay_ticks,omitempty"`
	Speed      float64 `yaml:"speed,omitempty"`
	Spawn      Point   `yaml:"spawn"`
}

// Level is one entry of the level table.
type Level struct {
	Name        string     `yaml:"name"`
	PlayerStart Point      `yaml:"player_start"`
	Goal        *Point     `yaml:"goal,omitempty"`
	Platforms   []Platform `yaml:"platforms,omitempty"`

	HasStages bool   `yaml:"has_stages,omitempty"`
	Stage1    *Stage `yaml:"stage1,omitempty"`
	Stage2    *Stage `yaml:"stage2,omitempty"`

	HasKey  bool   `yaml:"has_key,omitempty"`
	Key     *Point `yaml:"key,omitempty"`
	HasDoor bool   `yaml:"has_door,omitempty"`
	Door    *Point `yaml:"door,omitempty"`

	// Cosmetic flags, passed through to the render and audio sinks.
	Bloody      bool `yaml:"bloody,omitempty"`
	NoMusic     bool `yaml:"no_music,omitempty"`
	ScaryMusic  bool `yaml:"scary_music,omitempty"`
	GlitchTitle bool `yaml:"glitch_title,omitempty"`

	TriggerCutscene bool `yaml:"trigger_cutscene,omitempty"`

	Call  string    `yaml:"call,omitempty"` // Phone call script, rings once per session
	Beats []Trigger `yaml:"beats,omitempty"`
	Peeks []Trigger `yaml:"peeks,omitempty"`
	Chase *Chase    `yaml:"chase,omitempty"`
}

// StartPlatforms returns the platform list used when the level is loaded.
// Multi-stage levels start with their stage-1 layout.
func (l Level) StartPlatforms() []Platform {
	if l.HasStages && l.Stage1 != nil {
		return l.Stage1.Platforms
	}
	return l.Platforms
}

// StartGoal returns the goal active on load. Multi-stage levels have no goal
// until stage 2.
func (l Level) StartGoal() *Point {
	if l.HasStages {
		return nil
	}
	return l.Goal
}

// HasStage2 reports whether LoadStage2 applies to this level.
func (l Level) HasStage2() bool {
	return l.HasStages && l.Stage2 != nil
}

// Stage2Start returns where the player appears in stage 2.
func (l Level) Stage2Start() Point {
	if l.Stage2 != nil && l.Stage2.PlayerStart != nil {
		return *l.Stage2.PlayerStart
	}
	return l.PlayerStart
}

// Line is one timed line of dialogue.
type Line struct {
	Speaker  string `yaml:"speaker,omitempty"`
	Text     string `yaml:"text"`
	Duration int    `yaml:"duration,omitempty"` // Ticks; 0 derives it from the text length
}

// Ticks returns how long the line stays on screen before its gap.
func (l Line) Ticks() int {
	if l.Duration > 0 {
		return l.Duration
	}
	return 100 + 2*utf8.RuneCountInString(l.Text)
}

// Choice is a selectable reply ending a script.
type Choice struct {
	Text     string `yaml:"text"`
	Response string `yaml:"response"` // Script played after picking this choice
}

// Script is a linear run of lines, optionally ending in a choice.
type Script struct {
	Speaker string   `yaml:"speaker,omitempty"` // Default speaker for lines without one
	Gap     int      `yaml:"gap,omitempty"`     // Ticks between lines; 0 uses the configured default
	Lines   []Line   `yaml:"lines"`
	Choices []Choice `yaml:"choices,omitempty"`
}

// SpeakerOf returns the speaker for line i.
func (s Script) SpeakerOf(i int) string {
	if i >= 0 && i < len(s.Lines) && s.Lines[i].Speaker != "" {
		return s.Lines[i].Speaker
	}
	return s.Speaker
}
