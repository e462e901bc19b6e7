package game

import "fmt"

// ModeKind is the top-level game mode.
type ModeKind uint8

const (
	ModeMenu ModeKind = iota
	ModeSettings
	ModePlaying
	ModeCutscene
	ModeDialogue
	ModeTransitioning
)

// DialogueKind is what opened a dialogue modal.
type DialogueKind uint8

const (
	DialogueCall DialogueKind = iota // Answered phone call
	DialogueBeat                     // Story beat reached
	DialoguePeek                     // Observation point
)

// TransitionKind is the flavor of a timed, non-interactive transition.
type TransitionKind uint8

const (
	TransitionLevelComplete TransitionKind = iota
	TransitionCaught                       // Fainting after the chaser's touch
)

// Mode is the active game mode. Dialogue and Transition are only meaningful
// for their matching Kind.
type Mode struct {
	Kind       ModeKind
	Dialogue   DialogueKind
	Transition TransitionKind
}

// Frozen reports whether the world simulation is suspended in this mode.
func (m Mode) Frozen() bool {
	return m.Kind != ModePlaying
}

// InWorld reports whether the level is on screen in this mode.
func (m Mode) InWorld() bool {
	switch m.Kind {
	case ModePlaying, ModeDialogue, ModeTransitioning:
		return true
	default:
		return false
	}
}

func (m Mode) String() string {
	switch m.Kind {
	case ModeMenu:
		return "menu"
	case ModeSettings:
		return "settings"
	case ModePlaying:
		return "playing"
	case ModeCutscene:
		return "cutscene"
	case ModeDialogue:
		switch m.Dialogue {
		case DialogueCall:
			return "dialogue(call)"
		case DialogueBeat:
			return "dialogue(beat)"
		case DialoguePeek:
			return "dialogue(peek)"
		}
	case ModeTransitioning:
		switch m.Transition {
		case TransitionLevelComplete:
			return "transitioning(complete)"
		case TransitionCaught:
			return "transitioning(caught)"
		}
	}
	return fmt.Sprintf("mode(%d,%d,%d)", m.Kind, m.Dialogue, m.Transition)
}

// ModeEvent is an input to the mode state machine.
type ModeEvent uint8

const (
	ModePlay ModeEvent = iota
	ModeOpenSettings
	ModeCloseSettings
	ModeEscape
	ModeOpenCall
	ModeOpenBeat
	ModeOpenPeek
	ModeCloseDialogue
	ModeCompleteLevel
	ModeCatch
	ModeStartCutscene
	ModeEndCutscene
	ModeAdvance // Level-complete transition finished without a cutscene
)

var (
	menu     = Mode{Kind: ModeMenu}
	settings = Mode{Kind: ModeSettings}
	playing  = Mode{Kind: ModePlaying}
	cutscene = Mode{Kind: ModeCutscene}
)

// NextMode is the single transition function of the mode machine.
// Illegal pairs return the current mode and false.
func NextMode(cur Mode, ev ModeEvent) (Mode, bool) {
	switch cur.Kind {
	case ModeMenu:
		switch ev {
		case ModePlay:
			return playing, true
		case ModeOpenSettings:
			return settings, true
		}

	case ModeSettings:
		switch ev {
		case ModeCloseSettings, ModeEscape:
			return menu, true
		}

	case ModePlaying:
		switch ev {
		case ModeEscape:
			return menu, true
		case ModeOpenCall:
			return Mode{Kind: ModeDialogue, Dialogue: DialogueCall}, true
		case ModeOpenBeat:
			return Mode{Kind: ModeDialogue, Dialogue: DialogueBeat}, true
		case ModeOpenPeek:
			return Mode{Kind: ModeDialogue, Dialogue: DialoguePeek}, true
		case ModeCompleteLevel:
			return Mode{Kind: ModeTransitioning, Transition: TransitionLevelComplete}, true
		case ModeCatch:
			return Mode{Kind: ModeTransitioning, Transition: TransitionCaught}, true
		}

	case ModeDialogue:
		if ev == ModeCloseDialogue {
			return playing, true
		}

	case ModeTransitioning:
		switch cur.Transition {
		case TransitionCaught:
			if ev == ModeCompleteLevel {
				return Mode{Kind: ModeTransitioning, Transition: TransitionLevelComplete}, true
			}
		case TransitionLevelComplete:
			switch ev {
			case ModeAdvance:
				return playing, true
			case ModeStartCutscene:
				return cutscene, true
			}
		}

	case ModeCutscene:
		if ev == ModeEndCutscene {
			return playing, true
		}
	}

	return cur, false
}
