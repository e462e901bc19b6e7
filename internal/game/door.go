package game

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/vovakirdan/mias-adventure/internal/core"
)

// DoorState is the forward-only door lifecycle.
type DoorState uint8

const (
	DoorLocked DoorState = iota
	DoorUnlocked
	DoorOpen
	DoorEntered
)

// String returns the state name.
func (s DoorState) String() string {
	switch s {
	case DoorLocked:
		return "locked"
	case DoorUnlocked:
		return "unlocked"
	case DoorOpen:
		return "open"
	case DoorEntered:
		return "entered"
	default:
		return "unknown"
	}
}

// Door blocks the way until unlocked and opened, then leads to stage 2.
// Transitions are only ever requested by the player, never by collision.
type Door struct {
	Box           core.Box
	State         DoorState
	OpenProgress  float64 // 0..1, ramps while open
	EnterProgress float64 // 0..1, ramps once entered

	openTween  *gween.Tween
	enterTween *gween.Tween
}

// NewDoor creates a locked door at (x, y). The ramps take openTicks and
// enterTicks ticks to complete.
func NewDoor(x, y float64, openTicks, enterTicks int) *Door {
	return &Door{
		Box:        core.NewBox(x, y, DoorW, DoorH),
		State:      DoorLocked,
		openTween:  gween.New(0, 1, float32(max(openTicks, 1)), ease.Linear),
		enterTween: gween.New(0, 1, float32(max(enterTicks, 1)), ease.Linear),
	}
}

// Unlock moves locked -> unlocked. The caller checks key possession.
func (d *Door) Unlock() bool {
	if d.State != DoorLocked {
		return false
	}
	d.State = DoorUnlocked
	return true
}

// Open moves unlocked -> open and starts the open ramp.
func (d *Door) Open() bool {
	if d.State != DoorUnlocked {
		return false
	}
	d.State = DoorOpen
	return true
}

// Enter moves a fully open door to entered.
func (d *Door) Enter() bool {
	if !d.IsFullyOpen() {
		return false
	}
	d.State = DoorEntered
	return true
}

// IsFullyOpen reports whether the open ramp has finished.
func (d *Door) IsFullyOpen() bool {
	return d.State == DoorOpen && d.OpenProgress >= 1
}

// Update advances whichever ramp is active by one tick.
func (d *Door) Update() {
	switch d.State {
	case DoorOpen:
		v, _ := d.openTween.Update(1)
		d.OpenProgress = core.ClampF(float64(v), 0, 1)
	case DoorEntered:
		v, _ := d.enterTween.Update(1)
		d.EnterProgress = core.ClampF(float64(v), 0, 1)
	}
}

// IsNear reports whether the player is within interaction range.
func (d *Door) IsNear(player core.Box) bool {
	zone := d.Box
	zone.X -= doorRange
	zone.W += 2 * doorRange
	return core.Collides(player, zone)
}

// BlocksPlayer reports whether the door is solid and overlaps the player.
// An entered door stays passable.
func (d *Door) BlocksPlayer(player core.Box) bool {
	if d.IsFullyOpen() || d.State == DoorEntered {
		return false
	}
	return core.Collides(player, d.Box)
}

// PushOut moves the body to the door side its center is nearer to.
func (d *Door) PushOut(b *Body) {
	if b.Box().CenterX() < d.Box.CenterX() {
		b.X = d.Box.X - b.W
	} else {
		b.X = d.Box.Right()
	}
	b.VX = 0
}
