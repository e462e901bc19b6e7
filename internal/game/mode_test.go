package game

import "testing"

func TestNextMode(t *testing.T) {
	callDialogue := Mode{Kind: ModeDialogue, Dialogue: DialogueCall}
	beatDialogue := Mode{Kind: ModeDialogue, Dialogue: DialogueBeat}
	peekDialogue := Mode{Kind: ModeDialogue, Dialogue: DialoguePeek}
	complete := Mode{Kind: ModeTransitioning, Transition: TransitionLevelComplete}
	caught := Mode{Kind: ModeTransitioning, Transition: TransitionCaught}

	tests := []struct {
		name string
		cur  Mode
		ev   ModeEvent
		want Mode
		ok   bool
	}{
		{"menu play", menu, ModePlay, playing, true},
		{"menu settings", menu, ModeOpenSettings, settings, true},
		{"settings back", settings, ModeCloseSettings, menu, true},
		{"settings escape", settings, ModeEscape, menu, true},
		{"playing escape", playing, ModeEscape, menu, true},
		{"playing call", playing, ModeOpenCall, callDialogue, true},
		{"playing beat", playing, ModeOpenBeat, beatDialogue, true},
		{"playing peek", playing, ModeOpenPeek, peekDialogue, true},
		{"playing complete", playing, ModeCompleteLevel, complete, true},
		{"playing caught", playing, ModeCatch, caught, true},
		{"dialogue close", peekDialogue, ModeCloseDialogue, playing, true},
		{"caught faints into complete", caught, ModeCompleteLevel, complete, true},
		{"complete advances", complete, ModeAdvance, playing, true},
		{"complete starts cutscene", complete, ModeStartCutscene, cutscene, true},
		{"cutscene ends", cutscene, ModeEndCutscene, playing, true},

		{"menu escape", menu, ModeEscape, menu, false},
		{"menu complete", menu, ModeCompleteLevel, menu, false},
		{"settings play", settings, ModePlay, settings, false},
		{"playing play", playing, ModePlay, playing, false},
		{"dialogue nests", callDialogue, ModeOpenPeek, callDialogue, false},
		{"dialogue escape", beatDialogue, ModeEscape, beatDialogue, false},
		{"dialogue complete", callDialogue, ModeCompleteLevel, callDialogue, false},
		{"caught escape", caught, ModeEscape, caught, false},
		{"caught advance", caught, ModeAdvance, caught, false},
		{"complete escape", complete, ModeEscape, complete, false},
		{"cutscene escape", cutscene, ModeEscape, cutscene, false},
		{"cutscene play", cutscene, ModePlay, cutscene, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NextMode(tt.cur, tt.ev)
			if got != tt.want || ok != tt.ok {
				t.Errorf("NextMode(%s, %d) = (%s, %v), want (%s, %v)", tt.cur, tt.ev, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestModeFrozen(t *testing.T) {
	if playing.Frozen() {
		t.Error("playing should not be frozen")
	}
	for _, m := range []Mode{menu, settings, cutscene, {Kind: ModeDialogue}, {Kind: ModeTransitioning}} {
		if !m.Frozen() {
			t.Errorf("%s should be frozen", m)
		}
	}
}

func TestModeString(t *testing.T) {
	m := Mode{Kind: ModeDialogue, Dialogue: DialoguePeek}
	if got := m.String(); got != "dialogue(peek)" {
		t.Errorf("String() = %q", got)
	}
}
