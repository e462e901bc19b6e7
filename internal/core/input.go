package core

import "strings"

// Action is a semantic input, abstracted from physical key presses.
type Action int

const (
	ActionNone     Action = iota
	ActionLeft            // A, Left arrow (held)
	ActionRight           // D, Right arrow (held)
	ActionJump            // W, Up arrow, Space (held)
	ActionUp              // W, Up arrow - menu/choice cursor
	ActionDown            // S, Down arrow - menu/choice cursor
	ActionInteract        // E - answer phone, use door, peek
	ActionConfirm         // Enter - menu select, advance dialogue
	ActionRestart         // R - reload current level
	ActionBack            // Esc - back to menu
	ActionMute            // M - toggle sound
	ActionQuit            // Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionJump:
		return "Jump"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionInteract:
		return "Interact"
	case ActionConfirm:
		return "Confirm"
	case ActionRestart:
		return "Restart"
	case ActionBack:
		return "Back"
	case ActionMute:
		return "Mute"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// ParseAction returns the action with the given name, ignoring case.
func ParseAction(name string) (Action, bool) {
	for a := ActionLeft; a <= ActionQuit; a++ {
		if strings.EqualFold(a.String(), name) {
			return a, true
		}
	}
	return ActionNone, false
}

// InputFrame is the input sampled for one simulation tick.
// Left, Right and Jump are level-triggered (true while held); every other
// action is edge-triggered and reported only on the tick it was pressed.
type InputFrame struct {
	Actions map[Action]bool

	// Digit is the number key 1..9 pressed this tick, or 0.
	Digit int
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as active for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is active this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Digit = 0
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Digit = f.Digit
	return clone
}

// Held builds a frame with only held movement inputs. Handy in tests and
// headless runs.
func Held(actions ...Action) InputFrame {
	f := NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}
