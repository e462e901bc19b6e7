package game

import (
	"io"
	"math"
	"math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/mias-adventure/internal/config"
	"github.com/vovakirdan/mias-adventure/internal/core"
	"github.com/vovakirdan/mias-adventure/internal/levels"
)

// MenuItem is an entry of the main menu.
type MenuItem uint8

const (
	MenuPlay MenuItem = iota
	MenuSettings
)

// MenuItems lists the main menu in display order.
var MenuItems = []MenuItem{MenuPlay, MenuSettings}

// SettingsItem is an entry of the settings screen.
type SettingsItem uint8

const (
	SettingsSound SettingsItem = iota
	SettingsControls
	SettingsBack
)

// SettingsItems lists the settings screen in display order.
var SettingsItems = []SettingsItem{SettingsSound, SettingsControls, SettingsBack}

type beat struct {
	trigger levels.Trigger
	fired   bool
}

type phone struct {
	ringing bool
	timer   int
	script  string
}

type chase struct {
	enabled bool
	spawned bool
	delay   int // Unpaused play ticks before the chaser appears
	speed   float64
	spawn   levels.Point
	ticks   int // Ticks since spawn
}

type glitch struct {
	enabled   bool
	next      int // Ticks until the next glitch
	remaining int // Ticks left in the current glitch
}

// Session is one play-through: every piece of mutable game state lives here.
// It is not safe for concurrent use; the host calls Tick from its frame loop.
type Session struct {
	cfg        config.PlatformerConfig
	table      *levels.Table
	difficulty *config.DifficultyManager
	logger     *log.Logger
	rng        *rand.Rand

	mode   Mode
	events EventQueue
	tick   int

	muted          bool
	audioReady     bool
	menuCursor     int
	settingsCursor int
	showControls   bool

	levelIndex int
	stage      int
	player     Player
	platforms  []Platform
	goal       *Goal
	key        *Key
	door       *Door
	chaser     *Chaser
	beats      []beat
	peeks      []levels.Trigger

	playTicks       int // Unpaused ticks on the current level
	stageTimer      int // Ticks until stage 2 loads, 0 when idle
	transitionTimer int
	called          map[int]bool // Levels whose phone call already rang
	phone           phone
	chase           chase
	glitch          glitch
	dialogue        *Dialogue
	cutscene        *Cutscene
}

// Option configures a Session.
type Option func(*Session)

// WithConfig sets the tuning.
func WithConfig(cfg config.PlatformerConfig) Option {
	return func(s *Session) {
		s.cfg = cfg
	}
}

// WithLogger sets the logger. Sessions are silent by default.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithSeed seeds the cosmetic randomness (key swing phase, title glitches).
func WithSeed(seed int64) Option {
	return func(s *Session) {
		s.rng = rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))
	}
}

// NewSession creates a session sitting on the main menu.
func NewSession(table *levels.Table, opts ...Option) *Session {
	s := &Session{
		cfg:    config.DefaultPlatformerConfig(),
		table:  table,
		logger: log.New(io.Discard),
		called: make(map[int]bool),
		mode:   menu,
	}
	WithSeed(1)(s)
	for _, opt := range opts {
		opt(s)
	}
	s.difficulty = config.NewDifficultyManager(s.cfg.Difficulty)
	s.player = NewPlayer(s.cfg.Player)
	return s
}

// Mode returns the active game mode.
func (s *Session) Mode() Mode {
	return s.mode
}

// LevelIndex returns the index of the loaded level.
func (s *Session) LevelIndex() int {
	return s.levelIndex
}

// Stage returns the active stage (1 or 2).
func (s *Session) Stage() int {
	return s.stage
}

// Level returns the descriptor of the loaded level.
func (s *Session) Level() levels.Level {
	return s.table.Level(s.levelIndex)
}

// Table returns the level table in use.
func (s *Session) Table() *levels.Table {
	return s.table
}

// Player returns the player.
func (s *Session) Player() *Player {
	return &s.player
}

// Platforms returns the active platform set.
func (s *Session) Platforms() []Platform {
	return s.platforms
}

// Goal returns the active goal, or nil.
func (s *Session) Goal() *Goal {
	return s.goal
}

// Key returns the level's key, or nil.
func (s *Session) Key() *Key {
	return s.key
}

// Door returns the level's door, or nil.
func (s *Session) Door() *Door {
	return s.door
}

// Chaser returns the chaser while one is active, or nil.
func (s *Session) Chaser() *Chaser {
	return s.chaser
}

// Muted reports whether sound is off.
func (s *Session) Muted() bool {
	return s.muted
}

// Tick advances the session by one fixed tick and returns the events it
// emitted, in order.
func (s *Session) Tick(in core.InputFrame) []Event {
	s.tick++

	if in.Has(core.ActionMute) {
		s.toggleMute()
	}

	switch s.mode.Kind {
	case ModeMenu:
		s.tickMenu(in)
	case ModeSettings:
		s.tickSettings(in)
	case ModePlaying:
		s.tickPlaying(in)
	case ModeDialogue:
		s.tickDialogue(in)
	case ModeTransitioning:
		s.tickTransition()
	case ModeCutscene:
		s.tickCutscene()
	}

	if s.mode.InWorld() {
		s.tickGlitch()
	}

	return s.events.Consume()
}

// Play starts the game from the first level, as the menu's Play button does.
func (s *Session) Play() bool {
	if !s.apply(ModePlay) {
		return false
	}
	s.initAudio()
	s.LoadLevel(0)
	return true
}

// LoadLevel rebuilds the world from level i. The index wraps around the
// table in both directions, and the level always starts at stage 1.
func (s *Session) LoadLevel(i int) {
	i = core.Mod(i, s.table.Len())
	lvl := s.table.Level(i)

	s.levelIndex = i
	s.stage = 1
	s.platforms = buildPlatforms(lvl.StartPlatforms())

	s.goal = nil
	if g := lvl.StartGoal(); g != nil {
		s.goal = NewGoal(g.X, g.Y, lvl.Bloody)
	}

	s.key = nil
	if lvl.HasKey && lvl.Key != nil {
		s.key = NewKey(lvl.Key.X, lvl.Key.Y, s.rng.Float64()*2*math.Pi)
	}

	s.door = nil
	if lvl.HasDoor && lvl.Door != nil {
		s.door = NewDoor(lvl.Door.X, lvl.Door.Y, s.cfg.Timing.DoorOpenTicks, s.cfg.Timing.DoorEnterTicks)
	}

	s.player.Place(lvl.PlayerStart.X, lvl.PlayerStart.Y)

	s.beats = s.beats[:0]
	for _, t := range lvl.Beats {
		s.beats = append(s.beats, beat{trigger: t})
	}
	s.peeks = lvl.Peeks

	s.chaser = nil
	s.chase = chase{}
	if lvl.Chase != nil {
		delay := lvl.Chase.DelayTicks
		if delay <= 0 {
			delay = s.cfg.Chase.DelayTicks
		}
		speed := lvl.Chase.Speed
		if speed <= 0 {
			speed = s.cfg.Chase.Speed
		}
		s.chase = chase{
			enabled: true,
			delay:   s.difficulty.SpawnDelay(delay),
			speed:   speed,
			spawn:   lvl.Chase.Spawn,
		}
	}

	s.playTicks = 0
	s.stageTimer = 0
	s.glitch = glitch{enabled: lvl.GlitchTitle}
	if s.glitch.enabled {
		s.glitch.next = 120 + s.rng.IntN(360)
	}

	s.emit(Event{Kind: EventMusic, Music: levelMusic(lvl)})
	s.emit(Event{Kind: EventLevelLoaded})

	// Story calls ring once per session, however often the level is replayed.
	if lvl.Call != "" && !s.called[i] {
		s.called[i] = true
		s.phone = phone{ringing: true, script: lvl.Call}
	}

	s.logger.Info("level loaded", "index", i, "name", lvl.Name, "stages", lvl.HasStages)
}

// LoadStage2 switches a multi-stage level to its second layout. It is a
// no-op returning false on single-stage levels and once stage 2 is active.
func (s *Session) LoadStage2() bool {
	lvl := s.Level()
	if !lvl.HasStage2() || s.stage != 1 {
		return false
	}

	s.stage = 2
	s.platforms = buildPlatforms(lvl.Stage2.Platforms)
	s.goal = nil
	if g := lvl.Stage2.Goal; g != nil {
		s.goal = NewGoal(g.X, g.Y, lvl.Bloody)
	}
	s.key = nil
	s.door = nil
	s.beats = s.beats[:0]
	s.peeks = nil
	s.stageTimer = 0

	start := lvl.Stage2Start()
	s.player.Place(start.X, start.Y)

	s.emit(Event{Kind: EventStageLoaded})
	s.logger.Info("stage loaded", "index", s.levelIndex, "stage", s.stage)
	return true
}

// ReplaceTable swaps in a new level table, for example after the level file
// changed on disk. The current level is rebuilt if it is on screen.
func (s *Session) ReplaceTable(t *levels.Table) {
	s.table = t
	s.levelIndex = core.Mod(s.levelIndex, t.Len())
	if s.mode.InWorld() {
		s.LoadLevel(s.levelIndex)
	}
	s.logger.Info("level table replaced", "levels", t.Len(), "source", t.Source)
}

func (s *Session) tickMenu(in core.InputFrame) {
	n := len(MenuItems)
	switch {
	case in.Has(core.ActionUp):
		s.menuCursor = core.Mod(s.menuCursor-1, n)
		s.emit(Event{Kind: EventMenuMove})
	case in.Has(core.ActionDown):
		s.menuCursor = core.Mod(s.menuCursor+1, n)
		s.emit(Event{Kind: EventMenuMove})
	case in.Has(core.ActionConfirm):
		s.emit(Event{Kind: EventMenuSelect})
		switch MenuItems[s.menuCursor] {
		case MenuPlay:
			s.Play()
		case MenuSettings:
			s.initAudio()
			s.apply(ModeOpenSettings)
			s.settingsCursor = 0
			s.showControls = false
		}
	}
}

func (s *Session) tickSettings(in core.InputFrame) {
	n := len(SettingsItems)
	switch {
	case in.Has(core.ActionBack):
		s.apply(ModeEscape)
	case in.Has(core.ActionUp):
		s.settingsCursor = core.Mod(s.settingsCursor-1, n)
		s.emit(Event{Kind: EventMenuMove})
	case in.Has(core.ActionDown):
		s.settingsCursor = core.Mod(s.settingsCursor+1, n)
		s.emit(Event{Kind: EventMenuMove})
	case in.Has(core.ActionConfirm):
		s.emit(Event{Kind: EventMenuSelect})
		switch SettingsItems[s.settingsCursor] {
		case SettingsSound:
			s.toggleMute()
		case SettingsControls:
			s.showControls = !s.showControls
		case SettingsBack:
			s.apply(ModeCloseSettings)
		}
	}
}

func (s *Session) tickDialogue(in core.InputFrame) {
	typed, finished := s.dialogue.Update(in)
	if typed {
		s.emit(Event{Kind: EventTyped, Speaker: s.dialogue.Speaker()})
	}
	if finished && s.apply(ModeCloseDialogue) {
		s.logger.Debug("dialogue closed", "chosen", s.dialogue.Chosen())
		s.dialogue = nil
	}
}

func (s *Session) tickTransition() {
	s.transitionTimer++

	switch s.mode.Transition {
	case TransitionCaught:
		if s.transitionTimer > s.cfg.Timing.CaughtTicks {
			s.emit(Event{Kind: EventFainted})
			s.chaser = nil
			s.completeLevel()
		}

	case TransitionLevelComplete:
		if s.transitionTimer <= s.cfg.Timing.LevelCompleteTicks {
			return
		}
		if s.Level().TriggerCutscene {
			if s.apply(ModeStartCutscene) {
				s.cutscene = newCutscene(s.table.Cutscene, s.cfg.Timing.CutsceneGap, s.cfg.Timing.CutsceneBlack)
				s.emit(Event{Kind: EventMusic, Music: MusicNone})
			}
			return
		}
		if s.apply(ModeAdvance) {
			s.LoadLevel(s.levelIndex + 1)
		}
	}
}

func (s *Session) tickCutscene() {
	whisper, done := s.cutscene.Update()
	if whisper {
		s.emit(Event{Kind: EventWhisper})
	}
	if done && s.apply(ModeEndCutscene) {
		s.cutscene = nil
		s.LoadLevel(s.levelIndex + 1)
	}
}

func (s *Session) tickGlitch() {
	g := &s.glitch
	if !g.enabled {
		return
	}
	if g.remaining > 0 {
		g.remaining--
		return
	}
	g.next--
	if g.next <= 0 {
		g.remaining = 10 + s.rng.IntN(20)
		g.next = 120 + s.rng.IntN(360)
	}
}

// escape leaves the level for the menu, discarding its progress.
func (s *Session) escape() {
	if !s.apply(ModeEscape) {
		return
	}
	s.chaser = nil
	s.dialogue = nil
	s.cutscene = nil
	s.stageTimer = 0
	s.emit(Event{Kind: EventMusic, Music: MusicMenu})
}

func (s *Session) completeLevel() {
	if !s.apply(ModeCompleteLevel) {
		return
	}
	s.transitionTimer = 0
	s.emit(Event{Kind: EventLevelComplete})
	s.logger.Info("level complete", "index", s.levelIndex)
}

func (s *Session) openDialogue(kind DialogueKind, name string) bool {
	script, ok := s.table.Script(name)
	if !ok || len(script.Lines) == 0 {
		s.logger.Warn("missing dialogue script", "script", name)
		return false
	}

	ev := ModeOpenCall
	switch kind {
	case DialogueBeat:
		ev = ModeOpenBeat
	case DialoguePeek:
		ev = ModeOpenPeek
	}
	if !s.apply(ev) {
		return false
	}

	s.dialogue = newDialogue(kind, script, s.cfg.Timing.DialogueGap, s.table.Script)
	s.logger.Debug("dialogue opened", "script", name, "mode", s.mode)
	return true
}

func (s *Session) toggleMute() {
	s.muted = !s.muted
	if s.muted {
		s.emit(Event{Kind: EventMuted})
	} else {
		s.emit(Event{Kind: EventUnmuted})
	}
}

// initAudio fires once, on the first menu gesture.
func (s *Session) initAudio() {
	if s.audioReady {
		return
	}
	s.audioReady = true
	s.emit(Event{Kind: EventAudioInit})
}

func (s *Session) apply(ev ModeEvent) bool {
	next, ok := NextMode(s.mode, ev)
	if !ok {
		s.logger.Debug("mode event ignored", "mode", s.mode, "event", ev)
		return false
	}
	s.logger.Debug("mode changed", "from", s.mode, "to", next)
	s.mode = next
	return true
}

func (s *Session) emit(e Event) {
	e.Tick = s.tick
	e.Level = s.levelIndex
	s.events.Push(e)
}

func levelMusic(l levels.Level) Music {
	switch {
	case l.NoMusic:
		return MusicNone
	case l.ScaryMusic:
		return MusicScary
	default:
		return MusicNormal
	}
}

func buildPlatforms(src []levels.Platform) []Platform {
	out := make([]Platform, len(src))
	for i, p := range src {
		out[i] = Platform{Box: p.Box(), Bloody: p.Bloody}
	}
	return out
}
