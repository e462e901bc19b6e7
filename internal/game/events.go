package game

// EventKind names a trigger emitted by the simulation for the render and
// audio sinks.
type EventKind uint8

const (
	EventJumped EventKind = iota
	EventLanded
	EventCollected
	EventLevelComplete
	EventDoorUnlocked
	EventDoorOpened
	EventDoorEntered
	EventDoorDenied
	EventTyped
	EventPhoneRing
	EventPhoneAnswered
	EventWhisper
	EventChaserSpawned
	EventCaught
	EventFainted
	EventLevelLoaded
	EventStageLoaded
	EventMusic
	EventAudioInit
	EventMuted
	EventUnmuted
	EventMenuMove
	EventMenuSelect
)

var eventNames = [...]string{
	EventJumped:        "jumped",
	EventLanded:        "landed",
	EventCollected:     "collected",
	EventLevelComplete: "level-complete",
	EventDoorUnlocked:  "door-unlocked",
	EventDoorOpened:    "door-opened",
	EventDoorEntered:   "door-entered",
	EventDoorDenied:    "door-denied",
	EventTyped:         "typed",
	EventPhoneRing:     "phone-ring",
	EventPhoneAnswered: "phone-answered",
	EventWhisper:       "whisper",
	EventChaserSpawned: "chaser-spawned",
	EventCaught:        "caught",
	EventFainted:       "fainted",
	EventLevelLoaded:   "level-loaded",
	EventStageLoaded:   "stage-loaded",
	EventMusic:         "music",
	EventAudioInit:     "audio-init",
	EventMuted:         "muted",
	EventUnmuted:       "unmuted",
	EventMenuMove:      "menu-move",
	EventMenuSelect:    "menu-select",
}

// String returns the trigger name.
func (k EventKind) String() string {
	if int(k) < len(eventNames) {
		return eventNames[k]
	}
	return "unknown"
}

// Music selects the background track.
type Music uint8

const (
	MusicNone Music = iota
	MusicMenu
	MusicNormal
	MusicScary
)

// String returns the track name.
func (m Music) String() string {
	switch m {
	case MusicNone:
		return "none"
	case MusicMenu:
		return "menu"
	case MusicNormal:
		return "normal"
	case MusicScary:
		return "scary"
	default:
		return "unknown"
	}
}

// Event is one trigger with its context.
type Event struct {
	Kind    EventKind
	Tick    int
	Level   int    // Level index when the event fired
	Music   Music  // For EventMusic
	Speaker string // For EventTyped
}

// EventQueue collects the triggers of one tick. The session pushes while it
// steps; the host drains once the tick is over.
type EventQueue struct {
	events []Event
}

// Push appends an event.
func (q *EventQueue) Push(e Event) {
	q.events = append(q.events, e)
}

// Len returns the number of pending events.
func (q *EventQueue) Len() int {
	return len(q.events)
}

// Consume returns all pending events in FIFO order and empties the queue.
func (q *EventQueue) Consume() []Event {
	if len(q.events) == 0 {
		return nil
	}
	out := q.events
	q.events = nil
	return out
}
