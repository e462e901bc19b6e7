package tui

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/mias-adventure/internal/game"
)

// noteTicks is how long a sound caption stays in the status line.
const noteTicks = 45

// soundCaptions are the status-line stand-ins for sound effects.
var soundCaptions = map[game.EventKind]string{
	game.EventJumped:        "*hop*",
	game.EventLanded:        "*thud*",
	game.EventCollected:     "*clink*",
	game.EventLevelComplete: "*fanfare*",
	game.EventDoorUnlocked:  "*click*",
	game.EventDoorOpened:    "*creak*",
	game.EventDoorEntered:   "*whoosh*",
	game.EventDoorDenied:    "*rattle*",
	game.EventPhoneRing:     "*ring ring*",
	game.EventPhoneAnswered: "*beep*",
	game.EventWhisper:       "*whisper*",
	game.EventChaserSpawned: "*footsteps*",
	game.EventCaught:        "*gasp*",
}

// CaptionAudio is the terminal's audio sink: it logs every trigger and shows
// sound effects as short captions. It follows the session's mute toggle.
type CaptionAudio struct {
	logger *log.Logger
	muted  bool
	ready  bool
	music  game.Music
	note   string
	ttl    int
}

// NewCaptionAudio creates an audio sink logging to logger, or nowhere if
// logger is nil.
func NewCaptionAudio(logger *log.Logger) *CaptionAudio {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &CaptionAudio{logger: logger}
}

// Play handles one event.
func (a *CaptionAudio) Play(e game.Event) {
	switch e.Kind {
	case game.EventAudioInit:
		a.ready = true
		a.logger.Debug("audio ready")
		return
	case game.EventMuted:
		a.muted = true
		return
	case game.EventUnmuted:
		a.muted = false
		return
	case game.EventMusic:
		if e.Music != a.music {
			a.logger.Debug("music", "track", e.Music, "level", e.Level)
		}
		a.music = e.Music
		return
	case game.EventTyped:
		// Too frequent for the log or the status line.
		return
	}

	a.logger.Debug("sound", "event", e.Kind, "tick", e.Tick, "level", e.Level)

	caption, ok := soundCaptions[e.Kind]
	if !ok || a.muted || !a.ready {
		return
	}
	a.note = caption
	a.ttl = noteTicks
}

// Advance ages the current caption by one tick.
func (a *CaptionAudio) Advance() {
	if a.ttl > 0 {
		a.ttl--
		if a.ttl == 0 {
			a.note = ""
		}
	}
}

// Status returns the status-line text: the latest caption and the track.
func (a *CaptionAudio) Status() string {
	if a.muted {
		return "♪ muted"
	}
	s := ""
	if a.music != game.MusicNone {
		s = "♪ " + a.music.String()
	}
	if a.note != "" {
		if s != "" {
			s += "  "
		}
		s += a.note
	}
	return s
}
