package game

import (
	"unicode/utf8"

	"github.com/vovakirdan/mias-adventure/internal/core"
	"github.com/vovakirdan/mias-adventure/internal/levels"
)

// Dialogue plays a script line by line, then an optional choice, then the
// chosen response script, all inside one modal.
type Dialogue struct {
	Kind DialogueKind

	script     levels.Script
	defaultGap int
	lookup     func(string) (levels.Script, bool)

	line     int
	timer    int // Ticks spent on the current line
	choosing bool
	cursor   int
	chosen   []int
}

func newDialogue(kind DialogueKind, script levels.Script, defaultGap int, lookup func(string) (levels.Script, bool)) *Dialogue {
	return &Dialogue{
		Kind:       kind,
		script:     script,
		defaultGap: defaultGap,
		lookup:     lookup,
	}
}

func (d *Dialogue) gap() int {
	if d.script.Gap > 0 {
		return d.script.Gap
	}
	return d.defaultGap
}

// Update advances the dialogue one tick. typed is true on ticks where a
// character sound should play; finished is true once the modal should close.
func (d *Dialogue) Update(in core.InputFrame) (typed, finished bool) {
	if d.choosing {
		return false, d.updateChoice(in)
	}

	d.timer++
	line := d.script.Lines[d.line]

	// Enter skips straight to the next line.
	if in.Has(core.ActionConfirm) || d.timer > line.Ticks()+d.gap() {
		return false, d.nextLine()
	}

	return d.timer%3 == 1 && d.timer/2 < utf8.RuneCountInString(line.Text), false
}

func (d *Dialogue) nextLine() bool {
	d.line++
	d.timer = 0
	if d.line < len(d.script.Lines) {
		return false
	}
	if len(d.script.Choices) > 0 {
		d.line = len(d.script.Lines) - 1
		d.choosing = true
		d.cursor = 0
		return false
	}
	return true
}

func (d *Dialogue) updateChoice(in core.InputFrame) bool {
	n := len(d.script.Choices)
	switch {
	case in.Digit >= 1 && in.Digit <= n:
		d.cursor = in.Digit - 1
		return d.pick()
	case in.Has(core.ActionConfirm):
		return d.pick()
	case in.Has(core.ActionUp):
		d.cursor = max(d.cursor-1, 0)
	case in.Has(core.ActionDown):
		d.cursor = min(d.cursor+1, n-1)
	}
	return false
}

func (d *Dialogue) pick() bool {
	choice := d.script.Choices[d.cursor]
	d.chosen = append(d.chosen, d.cursor)

	resp, ok := d.lookup(choice.Response)
	if !ok || len(resp.Lines) == 0 {
		return true
	}
	d.script = resp
	d.line = 0
	d.timer = 0
	d.choosing = false
	d.cursor = 0
	return false
}

// Chosen returns the choice indices picked so far.
func (d *Dialogue) Chosen() []int {
	return d.chosen
}

// Speaker returns who is talking on the current line.
func (d *Dialogue) Speaker() string {
	return d.script.SpeakerOf(d.line)
}

// View returns the renderable dialogue state.
func (d *Dialogue) View() DialogueView {
	line := d.script.Lines[d.line]
	n := utf8.RuneCountInString(line.Text)
	v := DialogueView{
		Kind:     d.Kind,
		Speaker:  d.Speaker(),
		Text:     line.Text,
		Visible:  min(d.timer/2, n),
		Choosing: d.choosing,
		Cursor:   d.cursor,
	}
	if d.choosing {
		v.Visible = n
		for _, c := range d.script.Choices {
			v.Choices = append(v.Choices, c.Text)
		}
	}
	return v
}

// DialogueView is the dialogue part of a snapshot.
type DialogueView struct {
	Kind     DialogueKind
	Speaker  string
	Text     string
	Visible  int // Runes of Text revealed so far
	Choosing bool
	Choices  []string
	Cursor   int
}

// VisibleText returns the revealed prefix of Text.
func (v DialogueView) VisibleText() string {
	if v.Visible <= 0 {
		return ""
	}
	i := 0
	for pos := range v.Text {
		if i == v.Visible {
			return v.Text[:pos]
		}
		i++
	}
	return v.Text
}
