package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/mias-adventure/internal/config"
	"github.com/vovakirdan/mias-adventure/internal/core"
	"github.com/vovakirdan/mias-adventure/internal/game"
	"github.com/vovakirdan/mias-adventure/internal/levels"
)

func testOptions() Options {
	return Options{
		Table:      levels.Default(),
		Config:     config.DefaultPlatformerConfig(),
		Runtime:    core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7},
		StartLevel: -1,
	}
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm
}

func TestModelMenuToPlay(t *testing.T) {
	m := NewModel(testOptions())
	if got := m.Session().Mode().Kind; got != game.ModeMenu {
		t.Fatalf("initial mode = %v, want menu", got)
	}
	if !strings.Contains(m.View(), "MIA'S ADVENTURE") {
		t.Error("menu title missing from view")
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = update(t, m, TickMsg{})

	if got := m.Session().Mode().Kind; got != game.ModePlaying {
		t.Errorf("mode after enter = %v, want playing", got)
	}
	if m.Session().LevelIndex() != 0 {
		t.Errorf("level = %d, want 0", m.Session().LevelIndex())
	}
}

func TestModelStartLevel(t *testing.T) {
	opts := testOptions()
	opts.StartLevel = 2
	m := NewModel(opts)

	if got := m.Session().Mode().Kind; got != game.ModePlaying {
		t.Fatalf("mode = %v, want playing", got)
	}
	if m.Session().LevelIndex() != 2 {
		t.Errorf("level = %d, want 2", m.Session().LevelIndex())
	}
}

func TestModelResizeKeepsSession(t *testing.T) {
	opts := testOptions()
	opts.StartLevel = 1
	m := NewModel(opts)
	m = update(t, m, TickMsg{})

	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	if m.sink.screen.Width() != 100 || m.sink.screen.Height() != 29 {
		t.Errorf("screen = %dx%d, want 100x29", m.sink.screen.Width(), m.sink.screen.Height())
	}
	if m.Session().LevelIndex() != 1 {
		t.Error("resize reset the session")
	}
}

func TestModelHelpTakesRows(t *testing.T) {
	m := NewModel(testOptions())
	short := m.sink.screen.Height()

	m = update(t, m, runes("?"))

	if m.sink.screen.Height() >= short {
		t.Errorf("screen height %d with full help, want less than %d", m.sink.screen.Height(), short)
	}
	if rows := strings.Count(m.View(), "\n") + 1; rows > 24 {
		t.Errorf("view has %d rows, terminal has 24", rows)
	}
}

func TestModelQuit(t *testing.T) {
	m := NewModel(testOptions())
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("quit returned no command")
	}
	if next.(Model).View() != "" {
		t.Error("view not cleared on quit")
	}
}

func TestModelReload(t *testing.T) {
	opts := testOptions()
	opts.StartLevel = 0
	m := NewModel(opts)

	path := filepath.Join(t.TempDir(), "levels.yaml")
	if err := os.WriteFile(path, levels.DefaultYAML(), 0o600); err != nil {
		t.Fatal(err)
	}
	table, err := levels.LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error: %v", err)
	}

	m = update(t, m, tableReloadedMsg{table: table})
	if m.Session().Table() != table {
		t.Error("session still runs the old table")
	}

	// A failed reload keeps the running table.
	m = update(t, m, reloadErrorMsg{err: os.ErrNotExist})
	if m.Session().Table() != table {
		t.Error("failed reload replaced the table")
	}
}

func TestCaptionAudio(t *testing.T) {
	a := NewCaptionAudio(nil)

	a.Play(game.Event{Kind: game.EventJumped})
	if a.Status() != "" {
		t.Errorf("caption before audio init: %q", a.Status())
	}

	a.Play(game.Event{Kind: game.EventAudioInit})
	a.Play(game.Event{Kind: game.EventJumped})
	if !strings.Contains(a.Status(), "*hop*") {
		t.Errorf("Status() = %q, want the jump caption", a.Status())
	}

	for range noteTicks {
		a.Advance()
	}
	if strings.Contains(a.Status(), "*hop*") {
		t.Error("caption outlived its ticks")
	}

	a.Play(game.Event{Kind: game.EventMuted})
	if a.Status() != "♪ muted" {
		t.Errorf("muted Status() = %q", a.Status())
	}
}
