package game

import (
	"math"

	"github.com/vovakirdan/mias-adventure/internal/core"
)

// Snapshot is a read-only copy of everything a renderer needs for one frame.
type Snapshot struct {
	Tick  int
	Mode  Mode
	Muted bool

	MenuCursor     int
	SettingsCursor int
	ShowControls   bool

	LevelIndex int
	LevelCount int
	LevelName  string
	Stage      int
	Bloody     bool
	Glitching  bool

	Player    PlayerPose
	Platforms []Platform
	Goal      *Goal
	Key       *KeyPose
	Door      *DoorPose
	Chaser    *core.Box

	PhoneRinging bool
	Prompt       string // Interaction hint, empty when nothing is in reach

	Dialogue   *DialogueView
	Cutscene   *CutsceneView
	Transition float64 // Progress of the active transition, 0..1
}

// PlayerPose is the player part of a snapshot.
type PlayerPose struct {
	Box      core.Box
	Facing   int
	Grounded bool
	Talking  bool // Mia has the current dialogue line
	Fainting bool
}

// KeyPose is the key part of a snapshot.
type KeyPose struct {
	Box   core.Box // Swung hitbox
	Angle float64
}

// DoorPose is the door part of a snapshot.
type DoorPose struct {
	Box           core.Box
	State         DoorState
	OpenProgress  float64
	EnterProgress float64
}

// Snapshot captures the session for rendering.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:           s.tick,
		Mode:           s.mode,
		Muted:          s.muted,
		MenuCursor:     s.menuCursor,
		SettingsCursor: s.settingsCursor,
		ShowControls:   s.showControls,
		LevelIndex:     s.levelIndex,
		LevelCount:     s.table.Len(),
		Stage:          s.stage,
	}

	if s.mode.Kind == ModeCutscene && s.cutscene != nil {
		v := s.cutscene.View()
		snap.Cutscene = &v
		return snap
	}
	if !s.mode.InWorld() {
		return snap
	}

	lvl := s.Level()
	snap.LevelName = lvl.Name
	snap.Bloody = lvl.Bloody
	snap.Glitching = s.glitch.remaining > 0

	caught := s.mode.Kind == ModeTransitioning && s.mode.Transition == TransitionCaught
	snap.Player = PlayerPose{
		Box:      s.player.Box(),
		Facing:   s.player.Facing,
		Grounded: s.player.Grounded,
		Fainting: caught,
	}
	snap.Platforms = append([]Platform(nil), s.platforms...)

	if s.goal != nil {
		g := *s.goal
		snap.Goal = &g
	}
	if s.key != nil && !s.key.Collected {
		snap.Key = &KeyPose{Box: s.key.HitBox(s.tick), Angle: s.key.SwingAngle(s.tick)}
	}
	if s.door != nil {
		snap.Door = &DoorPose{
			Box:           s.door.Box,
			State:         s.door.State,
			OpenProgress:  s.door.OpenProgress,
			EnterProgress: s.door.EnterProgress,
		}
	}
	if s.chaser != nil {
		b := s.chaser.Box()
		snap.Chaser = &b
	}

	snap.PhoneRinging = s.phone.ringing

	switch s.mode.Kind {
	case ModeDialogue:
		if s.dialogue != nil {
			v := s.dialogue.View()
			snap.Dialogue = &v
			snap.Player.Talking = v.Speaker == "Mia"
		}
	case ModeTransitioning:
		total := s.cfg.Timing.LevelCompleteTicks
		if caught {
			total = s.cfg.Timing.CaughtTicks
		}
		if total > 0 {
			snap.Transition = core.ClampF(float64(s.transitionTimer)/float64(total), 0, 1)
		}
	case ModePlaying:
		snap.Prompt = s.prompt()
	}

	return snap
}

// prompt returns the hint for what the interact key would do now.
func (s *Session) prompt() string {
	if s.phone.ringing {
		return "Press E to answer the phone"
	}

	pb := s.player.Box()
	if d := s.door; d != nil && d.IsNear(pb) {
		switch d.State {
		case DoorLocked:
			if s.key != nil && s.key.Collected {
				return "Press E to unlock"
			}
			return "Locked. Find the key"
		case DoorUnlocked:
			return "Press E to open"
		case DoorOpen:
			if d.IsFullyOpen() {
				return "Press E to enter"
			}
		}
		return ""
	}

	if _, ok := s.peekAt(); ok {
		return "Press E to look"
	}
	return ""
}

// Hash returns a simple hash of the simulated state for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Tick) //#nosec G115 -- hash computation
	h = h*31 + (uint64(snap.Mode.Kind)<<16 | uint64(snap.Mode.Dialogue)<<8 | uint64(snap.Mode.Transition))
	h = h*31 + uint64(snap.LevelIndex) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Stage)      //#nosec G115 -- hash computation
	h = hashBox(h, snap.Player.Box)
	if snap.Key != nil {
		h = hashBox(h, snap.Key.Box)
	}
	if snap.Door != nil {
		h = h*31 + uint64(snap.Door.State)
		h = h*31 + math.Float64bits(snap.Door.OpenProgress)
	}
	if snap.Chaser != nil {
		h = hashBox(h, *snap.Chaser)
	}
	if snap.Dialogue != nil {
		h = h*31 + uint64(snap.Dialogue.Visible) //#nosec G115 -- hash computation
	}
	return h
}

func hashBox(h uint64, b core.Box) uint64 {
	h = h*31 + math.Float64bits(b.X)
	h = h*31 + math.Float64bits(b.Y)
	return h
}
