package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/mias-adventure/internal/config"
	"github.com/vovakirdan/mias-adventure/internal/core"
	"github.com/vovakirdan/mias-adventure/internal/game"
	"github.com/vovakirdan/mias-adventure/internal/levels"
)

// Options configures a Model.
type Options struct {
	Table      *levels.Table
	Config     config.PlatformerConfig
	Runtime    core.RuntimeConfig
	StartLevel int    // Level to open directly; negative starts on the menu
	WatchPath  string // Level table file reloaded on change, empty to disable
	Logger     *log.Logger
}

// tableReloadedMsg carries a level table re-read after a file change.
type tableReloadedMsg struct {
	table *levels.Table
}

// reloadErrorMsg reports a failed reload; the running table is kept.
type reloadErrorMsg struct {
	err error
}

// Model is the Bubble Tea model hosting one game session.
type Model struct {
	session  *game.Session
	driver   *game.Driver
	sink     *screenSink
	audio    *CaptionAudio
	input    *heldInput
	keys     KeyMap
	help     help.Model
	runtime  core.RuntimeConfig
	watcher  *levels.Watcher
	logger   *log.Logger
	lastMode game.ModeKind
	quitting bool
}

// NewModel creates a model. The bottom terminal rows are kept for the
// status and help line.
func NewModel(opts Options) Model {
	cfg := opts.Runtime
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.ScreenW <= 0 || cfg.ScreenH <= 1 {
		def := core.DefaultConfig()
		cfg.ScreenW, cfg.ScreenH = def.ScreenW, def.ScreenH
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	table := opts.Table
	if table == nil {
		table = levels.Default()
	}
	if opts.Config.World.Width <= 0 || opts.Config.World.Height <= 0 {
		opts.Config = config.DefaultPlatformerConfig()
	}

	session := game.NewSession(table,
		game.WithConfig(opts.Config),
		game.WithLogger(logger),
		game.WithSeed(cfg.Seed),
	)

	sink := &screenSink{
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH-1),
		worldW: opts.Config.World.Width,
		worldH: opts.Config.World.Height,
	}
	audio := NewCaptionAudio(logger)

	m := Model{
		session: session,
		driver:  &game.Driver{Session: session, Render: sink, Audio: audio},
		sink:    sink,
		audio:   audio,
		input:   newHeldInput(),
		keys:    DefaultKeyMap(),
		help:    help.New(),
		runtime: cfg,
		logger:  logger,
	}
	m.help.Width = cfg.ScreenW

	if opts.StartLevel >= 0 {
		session.Play()
		session.LoadLevel(opts.StartLevel)
	}

	if opts.WatchPath != "" {
		w, err := levels.NewWatcher(opts.WatchPath)
		if err != nil {
			logger.Warn("level reload disabled", "path", opts.WatchPath, "error", err)
		} else {
			m.watcher = w
			logger.Info("watching level table", "path", opts.WatchPath)
		}
	}

	m.lastMode = session.Mode().Kind
	sink.Render(session.Snapshot())
	return m
}

// Session returns the hosted session.
func (m Model) Session() *game.Session {
	return m.session
}

// Init starts the tick loop and the level watcher.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(m.runtime.TickRate), waitForReload(m.watcher))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()

	case tableReloadedMsg:
		m.session.ReplaceTable(msg.table)
		return m, waitForReload(m.watcher)

	case reloadErrorMsg:
		m.logger.Warn("level table reload failed", "error", msg.err)
		return m, waitForReload(m.watcher)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	p := m.keys.Decode(msg)
	switch {
	case p.Quit:
		m.quitting = true
		m.closeWatcher()
		return m, tea.Quit
	case p.Help:
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
		return m, nil
	}
	m.input.Press(p)
	return m, nil
}

// handleResize processes window resize events. The session keeps running;
// only the viewport changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.runtime.ScreenW = msg.Width
	m.runtime.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.layout()
	return m, nil
}

// layout sizes the game screen to the rows the help view leaves free.
func (m *Model) layout() {
	helpRows := lipgloss.Height(m.help.View(m.keys))
	m.sink.screen.Resize(m.runtime.ScreenW, max(m.runtime.ScreenH-helpRows, 1))
	m.sink.Render(m.session.Snapshot())
}

// handleTick runs one simulation tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.driver.Step(m.input.Frame())
	m.audio.Advance()

	if kind := m.session.Mode().Kind; kind != m.lastMode {
		m.input.Release()
		m.lastMode = kind
	}

	return m, tickCmd(m.runtime.TickRate)
}

func (m *Model) closeWatcher() {
	if m.watcher != nil {
		//nolint:errcheck // Best-effort close on exit
		m.watcher.Close()
	}
}

// waitForReload blocks on the watcher until the table file changes, then
// re-reads it. A nil watcher disables reloads.
func waitForReload(w *levels.Watcher) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case path, ok := <-w.Events:
			if !ok {
				return nil
			}
			t, err := levels.LoadFile(path)
			if err != nil {
				return reloadErrorMsg{err: err}
			}
			return tableReloadedMsg{table: t}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return reloadErrorMsg{err: err}
		}
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	status := m.audio.Status()
	helpView := m.help.View(m.keys)
	if status != "" {
		helpView = status + "  " + helpView
	}
	return RenderScreen(m.sink.screen) + "\n" + statusStyle.Render(helpView)
}

// Run starts the Bubble Tea program for a local session.
func Run(opts Options) error {
	model := NewModel(opts)
	defer model.closeWatcher()

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
