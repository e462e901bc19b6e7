package game

import (
	"github.com/vovakirdan/mias-adventure/internal/config"
	"github.com/vovakirdan/mias-adventure/internal/core"
	"github.com/vovakirdan/mias-adventure/internal/levels"
)

func (s *Session) tickPlaying(in core.InputFrame) {
	switch {
	case in.Has(core.ActionBack):
		s.escape()
		return
	case in.Has(core.ActionRestart):
		s.LoadLevel(s.levelIndex)
		return
	case in.Digit >= 1 && in.Digit <= s.table.Len():
		s.LoadLevel(in.Digit - 1)
		return
	}

	if in.Has(core.ActionInteract) {
		s.interact()
		if s.mode.Kind != ModePlaying {
			return
		}
	}

	s.step(in)
}

// step runs one unpaused simulation tick.
func (s *Session) step(in core.InputFrame) {
	s.playTicks++
	phys, world := s.cfg.Physics, s.cfg.World

	s.ringPhone()

	jumped, landed := s.player.Update(in, s.platforms, phys, world)
	if jumped {
		s.emit(Event{Kind: EventJumped})
	}
	if landed {
		s.emit(Event{Kind: EventLanded})
	}

	if s.door != nil {
		if s.door.BlocksPlayer(s.player.Box()) {
			s.door.PushOut(&s.player.Body)
		}
		s.door.Update()
	}

	if s.key != nil && s.key.Touch(s.player.Box(), s.tick) {
		s.emit(Event{Kind: EventCollected})
		s.logger.Debug("key collected", "index", s.levelIndex)
	}

	if s.stageTimer > 0 {
		s.stageTimer--
		if s.stageTimer == 0 {
			s.LoadStage2()
			return
		}
	}

	if s.stepChase() {
		return
	}
	if s.checkBeats() {
		return
	}

	if s.goal != nil && (s.door == nil || s.door.IsFullyOpen()) && s.goal.Reached(s.player.Box()) {
		s.completeLevel()
	}
}

// interact resolves the interact key: phone, then door, then peeks.
func (s *Session) interact() {
	if s.phone.ringing {
		s.answerPhone()
		return
	}

	pb := s.player.Box()
	if s.door != nil && s.door.IsNear(pb) {
		s.useDoor()
		return
	}

	if p, ok := s.peekAt(); ok {
		s.openDialogue(DialoguePeek, p.Script)
	}
}

func (s *Session) useDoor() {
	d := s.door
	switch d.State {
	case DoorLocked:
		if s.key == nil || !s.key.Collected {
			s.emit(Event{Kind: EventDoorDenied})
			return
		}
		d.Unlock()
		s.emit(Event{Kind: EventDoorUnlocked})
	case DoorUnlocked:
		d.Open()
		s.emit(Event{Kind: EventDoorOpened})
	case DoorOpen:
		if !d.Enter() {
			return
		}
		s.emit(Event{Kind: EventDoorEntered})
		if delay := s.cfg.Timing.StageDelayTicks; delay > 0 {
			s.stageTimer = delay
		} else {
			s.LoadStage2()
		}
	}
	s.logger.Debug("door", "state", d.State)
}

func (s *Session) ringPhone() {
	p := &s.phone
	if !p.ringing {
		return
	}
	p.timer++
	if interval := s.cfg.Timing.RingInterval; interval > 0 && p.timer%interval == 1 {
		s.emit(Event{Kind: EventPhoneRing})
	}
}

// answerPhone stops the ringing and opens the call. Answering is idempotent:
// a phone that is not ringing does nothing.
func (s *Session) answerPhone() bool {
	if !s.phone.ringing {
		return false
	}
	script := s.phone.script
	s.phone = phone{}
	s.emit(Event{Kind: EventPhoneAnswered})
	return s.openDialogue(DialogueCall, script)
}

// stepChase spawns, moves and checks the chaser. It reports whether the
// player was caught this tick.
func (s *Session) stepChase() bool {
	c := &s.chase
	if !c.enabled {
		return false
	}

	if s.chaser == nil {
		if c.spawned || s.playTicks < c.delay {
			return false
		}
		c.spawned = true
		s.chaser = NewChaser(c.spawn.X, c.spawn.Y, s.chaserSize(), c.speed)
		s.emit(Event{Kind: EventChaserSpawned})
		s.logger.Info("chaser spawned", "index", s.levelIndex, "tick", s.tick)
	}

	c.ticks++
	s.chaser.Speed = s.difficulty.ChaseSpeed(c.speed, c.ticks)
	s.chaser.Update(s.player.Box(), s.platforms, s.cfg.Physics, s.cfg.World)

	if !s.chaser.Catches(s.player.Box()) || !s.apply(ModeCatch) {
		return false
	}
	s.transitionTimer = 0
	s.emit(Event{Kind: EventCaught})
	s.logger.Info("caught", "index", s.levelIndex, "after", c.ticks)
	return true
}

func (s *Session) chaserSize() config.Size {
	return config.Size{Width: s.cfg.Chase.Width, Height: s.cfg.Chase.Height}
}

// checkBeats opens the first unfired story beat the player stands in.
func (s *Session) checkBeats() bool {
	pb := s.player.Box()
	for i := range s.beats {
		b := &s.beats[i]
		if b.fired || !core.Collides(pb, b.trigger.Box()) {
			continue
		}
		b.fired = true
		return s.openDialogue(DialogueBeat, b.trigger.Script)
	}
	return false
}

// peekAt returns the peek point the player stands in, if any.
func (s *Session) peekAt() (levels.Trigger, bool) {
	pb := s.player.Box()
	for _, p := range s.peeks {
		if core.Collides(pb, p.Box()) {
			return p, true
		}
	}
	return levels.Trigger{}, false
}
