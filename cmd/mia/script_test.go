package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vovakirdan/mias-adventure/internal/core"
	"github.com/vovakirdan/mias-adventure/internal/game"
	"github.com/vovakirdan/mias-adventure/internal/levels"
)

const testScript = `
- ticks: 1
  press: [confirm]
- ticks: 3
  hold: [Right, jump]
- ticks: 2
  digit: 4
`

func TestInputScriptFrames(t *testing.T) {
	s, err := parseInputScript([]byte(testScript))
	if err != nil {
		t.Fatalf("parseInputScript() error: %v", err)
	}
	if s.Len() != 6 {
		t.Fatalf("Len() = %d, want 6", s.Len())
	}

	in := s.Next()
	if !in.Has(core.ActionConfirm) {
		t.Error("frame 1: confirm missing")
	}
	for i := range 3 {
		in = s.Next()
		if !in.Has(core.ActionRight) || !in.Has(core.ActionJump) || in.Has(core.ActionConfirm) {
			t.Errorf("frame %d: got %v", i+2, in.Actions)
		}
	}
	if in = s.Next(); in.Digit != 4 {
		t.Errorf("frame 5: digit = %d, want 4", in.Digit)
	}
	if in = s.Next(); in.Digit != 0 {
		t.Errorf("frame 6: digit repeated")
	}
	if in = s.Next(); len(in.Actions) != 0 || in.Digit != 0 {
		t.Error("exhausted script should idle")
	}
}

func TestInputScriptErrors(t *testing.T) {
	tests := []struct {
		name   string
		script string
		want   string
	}{
		{"unknown action", "- ticks: 1\n  hold: [fly]", "unknown action"},
		{"zero ticks", "- ticks: 0", "ticks must be positive"},
		{"bad digit", "- ticks: 1\n  digit: 12", "out of range"},
		{"not a list", "ticks: 1", "parsing input script"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseInputScript([]byte(tt.script))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %v, want it to mention %q", err, tt.want)
			}
		})
	}
}

func simulate(t *testing.T) (*game.Session, game.EventCounts) {
	t.Helper()
	script, err := parseInputScript([]byte(testScript))
	if err != nil {
		t.Fatal(err)
	}

	session := game.NewSession(levels.Default(), game.WithSeed(3))
	counts := game.EventCounts{}
	driver := &game.Driver{Session: session, Audio: counts}
	for range 60 {
		driver.Step(script.Next())
	}
	return session, counts
}

func TestSimDeterministic(t *testing.T) {
	a, _ := simulate(t)
	b, _ := simulate(t)

	sa, sb := a.Snapshot(), b.Snapshot()
	if sa.Hash() != sb.Hash() {
		t.Error("identical runs ended in different states")
	}
	if a.LevelIndex() != 3 {
		t.Errorf("level = %d, want 3 after pressing 4", a.LevelIndex())
	}
}

func TestPrintSimResult(t *testing.T) {
	session, counts := simulate(t)

	var buf bytes.Buffer
	printSimResult(&buf, session, counts)
	out := buf.String()

	for _, want := range []string{"tick      60", "mode      playing", "level     4/", "menu-select", "hash"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestFeatures(t *testing.T) {
	l := levels.Level{HasKey: true, HasDoor: true, Call: "intro"}
	got := strings.Join(features(l), ", ")
	if got != "key, door, call:intro" {
		t.Errorf("features() = %q", got)
	}
	if got := features(levels.Level{}); len(got) != 1 || got[0] != "-" {
		t.Errorf("features() of a bare level = %v", got)
	}
}
