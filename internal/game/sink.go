package game

import "github.com/vovakirdan/mias-adventure/internal/core"

// RenderSink receives one snapshot per tick.
type RenderSink interface {
	Render(Snapshot)
}

// AudioSink receives every drained event.
type AudioSink interface {
	Play(Event)
}

// Driver ticks a session and fans its output out to the sinks.
// Either sink may be nil.
type Driver struct {
	Session *Session
	Render  RenderSink
	Audio   AudioSink
}

// Step runs one tick: simulate, drain events to audio, then render.
func (d *Driver) Step(in core.InputFrame) []Event {
	events := d.Session.Tick(in)
	if d.Audio != nil {
		for _, e := range events {
			d.Audio.Play(e)
		}
	}
	if d.Render != nil {
		d.Render.Render(d.Session.Snapshot())
	}
	return events
}

// EventCounts is an AudioSink that tallies events by kind.
type EventCounts map[EventKind]int

// Play counts e.
func (c EventCounts) Play(e Event) {
	c[e.Kind]++
}
