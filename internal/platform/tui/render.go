package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/mias-adventure/internal/core"
	"github.com/vovakirdan/mias-adventure/internal/game"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:   lipgloss.NewStyle(),
	core.ColorSky:       lipgloss.NewStyle().Foreground(lipgloss.Color("153")),
	core.ColorPlatform:  lipgloss.NewStyle().Foreground(lipgloss.Color("71")),
	core.ColorBlood:     lipgloss.NewStyle().Foreground(lipgloss.Color("88")),
	core.ColorPlayer:    lipgloss.NewStyle().Foreground(lipgloss.Color("213")),
	core.ColorGoal:      lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorKey:       lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true),
	core.ColorDoor:      lipgloss.NewStyle().Foreground(lipgloss.Color("130")),
	core.ColorDoorOpen:  lipgloss.NewStyle().Foreground(lipgloss.Color("236")),
	core.ColorChaser:    lipgloss.NewStyle().Foreground(lipgloss.Color("232")).Background(lipgloss.Color("52")),
	core.ColorText:      lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorDim:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorSpeaker:   lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
	core.ColorHighlight: lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
	core.ColorPhone:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	core.ColorGlitch:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Background(lipgloss.Color("0")),
}

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// screenSink is the render sink: it draws every snapshot into a screen
// buffer that View later converts to text.
type screenSink struct {
	screen         *core.Screen
	worldW, worldH float64
}

// Render draws snap.
func (r *screenSink) Render(snap game.Snapshot) {
	game.Render(snap, r.worldW, r.worldH, r.screen)
}
