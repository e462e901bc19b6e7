package game

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/mias-adventure/internal/core"
)

// Visual constants
const (
	PlatformChar = '▀'
	PlayerChar   = '█'
	ChaserChar   = '▓'
	KeyChar      = '⚷'
	FlagChar     = '⚑'
	PoleChar     = '│'
	DoorChar     = '▒'
	LockChar     = '▓'
	FaintChar    = '▬'
	ShadeChar    = '░'

	dialogueBoxH = 7
)

var glitchRunes = []rune("#%&@$?!▚▞")

// Render draws the snapshot onto dst. World coordinates are scaled to fit
// the whole screen; the top row is the HUD.
func Render(snap Snapshot, worldW, worldH float64, dst *core.Screen) {
	dst.Clear()

	switch snap.Mode.Kind {
	case ModeMenu:
		renderMenu(snap, dst)
		return
	case ModeSettings:
		renderSettings(snap, dst)
		return
	case ModeCutscene:
		renderCutscene(snap, dst)
		return
	}

	v := viewport{sx: float64(dst.Width()) / worldW, sy: float64(dst.Height()) / worldH}

	for _, p := range snap.Platforms {
		c := core.ColorPlatform
		if p.Bloody {
			c = core.ColorBlood
		}
		dst.FillRect(v.rect(p.Box), PlatformChar, c)
	}

	if snap.Goal != nil {
		drawGoal(dst, v.rect(snap.Goal.Box), snap.Goal.Bloody)
	}
	if snap.Door != nil {
		drawDoor(dst, v.rect(snap.Door.Box), *snap.Door)
	}
	if snap.Key != nil {
		r := v.rect(snap.Key.Box)
		dst.FillRect(r, ' ', core.ColorKey)
		dst.SetCell(r.X, r.Y, KeyChar, core.ColorKey)
	}
	if snap.Chaser != nil {
		dst.FillRect(v.rect(*snap.Chaser), ChaserChar, core.ColorChaser)
	}

	drawPlayer(dst, v.rect(snap.Player.Box), snap.Player)
	drawHUD(dst, snap)

	if snap.Mode.Kind == ModeTransitioning {
		drawTransition(dst, snap)
	}
	if snap.Dialogue != nil {
		drawDialogue(dst, *snap.Dialogue)
	}
	if snap.Prompt != "" {
		dst.DrawTextCentered(dst.Height()-1, " "+snap.Prompt+" ", core.ColorHighlight)
	}
}

type viewport struct {
	sx, sy float64
}

// rect maps a world box to the cells it touches. Anything visible gets at
// least one cell.
func (v viewport) rect(b core.Box) core.Rect {
	x0 := int(math.Floor(b.X * v.sx))
	y0 := int(math.Floor(b.Y * v.sy))
	x1 := int(math.Ceil(b.Right() * v.sx))
	y1 := int(math.Ceil(b.Bottom() * v.sy))
	return core.NewRect(x0, y0, max(x1-x0, 1), max(y1-y0, 1))
}

func drawPlayer(dst *core.Screen, r core.Rect, pose PlayerPose) {
	if pose.Fainting {
		dst.FillRect(core.NewRect(r.X, r.Bottom()-1, max(r.W, r.H), 1), FaintChar, core.ColorPlayer)
		return
	}
	dst.FillRect(r, PlayerChar, core.ColorPlayer)

	eye := '▶'
	x := r.Right() - 1
	if pose.Facing < 0 {
		eye = '◀'
		x = r.X
	}
	if pose.Talking {
		eye = '○'
	}
	dst.SetCell(x, r.Y, eye, core.ColorHighlight)
}

func drawGoal(dst *core.Screen, r core.Rect, bloody bool) {
	c := core.ColorGoal
	if bloody {
		c = core.ColorBlood
	}
	for y := r.Y; y < r.Bottom(); y++ {
		dst.SetCell(r.X, y, PoleChar, c)
	}
	dst.SetCell(r.X+1, r.Y, FlagChar, c)
}

func drawDoor(dst *core.Screen, r core.Rect, d DoorPose) {
	switch d.State {
	case DoorLocked:
		dst.FillRect(r, LockChar, core.ColorDoor)
	case DoorUnlocked:
		dst.FillRect(r, DoorChar, core.ColorDoor)
	case DoorOpen:
		// The leaf slides away as the door opens.
		dst.FillRect(r, ' ', core.ColorDoorOpen)
		leaf := int(math.Round(float64(r.W) * (1 - d.OpenProgress)))
		dst.FillRect(core.NewRect(r.X, r.Y, leaf, r.H), DoorChar, core.ColorDoor)
	case DoorEntered:
		dst.FillRect(r, ShadeChar, core.ColorDoorOpen)
	}
}

func drawHUD(dst *core.Screen, snap Snapshot) {
	name := snap.LevelName
	if snap.Glitching {
		name = glitchText(name, snap.Tick)
	}
	title := fmt.Sprintf(" %d/%d %s ", snap.LevelIndex+1, snap.LevelCount, name)
	if snap.Stage > 1 {
		title += fmt.Sprintf("(stage %d) ", snap.Stage)
	}
	c := core.ColorText
	if snap.Glitching {
		c = core.ColorGlitch
	}
	dst.DrawTextColor(1, 0, title, c)

	right := ""
	if snap.PhoneRinging && (snap.Tick/15)%2 == 0 {
		right += " ☎ RING "
	}
	if snap.Muted {
		right += " ♪ off "
	}
	if right != "" {
		dst.DrawTextColor(dst.Width()-len([]rune(right))-1, 0, right, core.ColorPhone)
	}
}

func glitchText(s string, tick int) string {
	rs := []rune(s)
	for i := range rs {
		if (tick+i*7)%3 == 0 {
			rs[i] = glitchRunes[(tick+i)%len(glitchRunes)]
		}
	}
	return string(rs)
}

func drawTransition(dst *core.Screen, snap Snapshot) {
	mid := dst.Height() / 2
	if snap.Mode.Transition == TransitionCaught {
		// Vision closes in from the edges.
		rows := int(float64(mid) * snap.Transition)
		for y := 0; y < rows; y++ {
			dst.FillRect(core.NewRect(0, y, dst.Width(), 1), ShadeChar, core.ColorDim)
			dst.FillRect(core.NewRect(0, dst.Height()-1-y, dst.Width(), 1), ShadeChar, core.ColorDim)
		}
		dst.DrawTextCentered(mid, " ... ", core.ColorDim)
		return
	}
	dst.DrawTextCentered(mid, " LEVEL COMPLETE ", core.ColorHighlight)
}

func drawDialogue(dst *core.Screen, d DialogueView) {
	w := dst.Width()
	h := min(dialogueBoxH, dst.Height())
	box := core.NewRect(1, dst.Height()-h-1, max(w-2, 2), h)

	dst.FillRect(box, ' ', core.ColorText)
	dst.DrawBox(box, core.ColorDim)
	dst.DrawTextColor(box.X+2, box.Y, " "+d.Speaker+" ", core.ColorSpeaker)

	inner := max(box.W-4, 1)
	y := box.Y + 1
	for _, line := range strings.Split(ansi.Wordwrap(d.VisibleText(), inner, ""), "\n") {
		if y >= box.Bottom()-1 {
			break
		}
		dst.DrawTextColor(box.X+2, y, line, core.ColorText)
		y++
	}

	if !d.Choosing {
		return
	}
	for i, choice := range d.Choices {
		if y >= box.Bottom()-1 {
			break
		}
		c := core.ColorDim
		marker := "  "
		if i == d.Cursor {
			c = core.ColorHighlight
			marker = "> "
		}
		dst.DrawTextColor(box.X+2, y, fmt.Sprintf("%s%d. %s", marker, i+1, choice), c)
		y++
	}
}

func renderMenu(snap Snapshot, dst *core.Screen) {
	mid := dst.Height() / 2
	dst.DrawTextCentered(mid-4, "MIA'S ADVENTURE", core.ColorHighlight)

	labels := map[MenuItem]string{MenuPlay: "PLAY", MenuSettings: "SETTINGS"}
	for i, item := range MenuItems {
		drawMenuLine(dst, mid+i*2, labels[item], i == snap.MenuCursor)
	}
	dst.DrawTextCentered(dst.Height()-2, "↑/↓ select  enter confirm  m mute", core.ColorDim)
}

func renderSettings(snap Snapshot, dst *core.Screen) {
	mid := dst.Height() / 2
	dst.DrawTextCentered(mid-6, "SETTINGS", core.ColorHighlight)

	sound := "SOUND: ON"
	if snap.Muted {
		sound = "SOUND: OFF"
	}
	labels := map[SettingsItem]string{SettingsSound: sound, SettingsControls: "CONTROLS", SettingsBack: "BACK"}
	for i, item := range SettingsItems {
		drawMenuLine(dst, mid-3+i*2, labels[item], i == snap.SettingsCursor)
	}

	if !snap.ShowControls {
		return
	}
	for i, line := range ControlsHelp {
		dst.DrawTextCentered(mid+4+i, line, core.ColorDim)
	}
}

// ControlsHelp is the in-game controls reference.
var ControlsHelp = []string{
	"←/→ or A/D  move",
	"space/W/↑   jump",
	"E           interact",
	"enter       skip line",
	"R restart   1-9 level   esc menu",
}

func drawMenuLine(dst *core.Screen, y int, label string, selected bool) {
	if selected {
		dst.DrawTextCentered(y, "> "+label+" <", core.ColorHighlight)
		return
	}
	dst.DrawTextCentered(y, label, core.ColorText)
}

func renderCutscene(snap Snapshot, dst *core.Screen) {
	c := snap.Cutscene
	if c == nil || c.Black || c.Caption == "" {
		return
	}
	color := core.ColorDim
	if c.Fade >= 0.5 {
		color = core.ColorText
	}
	dst.DrawTextCentered(dst.Height()/2, c.Caption, color)
}
