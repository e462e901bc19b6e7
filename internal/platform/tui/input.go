package tui

import "github.com/vovakirdan/mias-adventure/internal/core"

// Terminals report key presses but never releases, so held actions are
// emulated: a press keeps the action down for a few ticks, and the key
// repeat of a physically held key keeps refreshing it.
const (
	// firstHoldTicks bridges the pause before the terminal starts repeating.
	firstHoldTicks = 30
	// repeatHoldTicks covers the gap between repeats.
	repeatHoldTicks = 6
	// jumpHoldTicks lets a tap register even a few ticks before landing.
	jumpHoldTicks = 6
)

// heldInput turns key presses into per-tick input frames.
type heldInput struct {
	held    map[core.Action]int // Ticks left for held actions
	pending []core.Action       // One-shot actions for the next tick
	digit   int
}

func newHeldInput() *heldInput {
	return &heldInput{held: make(map[core.Action]int)}
}

// Press records a decoded key press.
func (h *heldInput) Press(p Press) {
	if p.Digit > 0 {
		h.digit = p.Digit
	}
	for _, a := range p.Actions {
		switch a {
		case core.ActionLeft, core.ActionRight:
			h.hold(a)
		case core.ActionJump:
			h.held[a] = jumpHoldTicks
		default:
			h.pending = append(h.pending, a)
		}
	}
}

func (h *heldInput) hold(a core.Action) {
	opposite := core.ActionRight
	if a == core.ActionRight {
		opposite = core.ActionLeft
	}
	delete(h.held, opposite)

	if h.held[a] > 0 {
		h.held[a] = max(h.held[a], repeatHoldTicks)
		return
	}
	h.held[a] = firstHoldTicks
}

// Frame returns the input for the next tick and ages the held actions.
func (h *heldInput) Frame() core.InputFrame {
	in := core.NewInputFrame()
	for a, ticks := range h.held {
		if ticks <= 0 {
			delete(h.held, a)
			continue
		}
		in.Set(a)
		h.held[a] = ticks - 1
	}
	for _, a := range h.pending {
		in.Set(a)
	}
	in.Digit = h.digit

	h.pending = h.pending[:0]
	h.digit = 0
	return in
}

// Release drops every held action, e.g. when the game leaves play.
func (h *heldInput) Release() {
	clear(h.held)
}
