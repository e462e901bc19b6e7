// Package game implements the platformer simulation: entities, collision
// resolution, the level/stage manager and the game mode state machine.
// A Session owns all state; hosts drive it one fixed tick at a time and
// drain the events it emits.
package game

import (
	"math"

	"github.com/vovakirdan/mias-adventure/internal/config"
	"github.com/vovakirdan/mias-adventure/internal/core"
)

// Entity sizes in world pixels.
const (
	GoalW = 40
	GoalH = 60
	KeyW  = 20
	KeyH  = 30
	DoorW = 50
	DoorH = 80

	// doorRange is the horizontal padding of the door interaction zone.
	doorRange = 20

	// Key swing: angle = sin(tick*keySwingRate + phase) * keySwingAmp,
	// collision offset = sin(angle) * keySwingReach.
	keySwingRate  = 1.0 / 60
	keySwingAmp   = 0.15
	keySwingReach = 10

	// resolveEpsilon absorbs float drift when reconstructing the
	// pre-integration edge from the post-integration position.
	resolveEpsilon = 1e-9
)

// Platform is a static, solid rect.
type Platform struct {
	Box    core.Box
	Bloody bool
}

// Body is a moving box with velocity, shared by the player and the chaser.
type Body struct {
	X, Y     float64
	W, H     float64
	VX, VY   float64
	Grounded bool
}

// Box returns the body's current bounding box.
func (b *Body) Box() core.Box {
	return core.NewBox(b.X, b.Y, b.W, b.H)
}

// Place moves the body to (x, y) and stops it.
func (b *Body) Place(x, y float64) {
	b.X, b.Y = x, y
	b.VX, b.VY = 0, 0
	b.Grounded = false
}

// integrate applies gravity, moves the body, resolves it against every
// platform in order and clamps it to the world. It reports whether the body
// landed this tick.
func (b *Body) integrate(platforms []Platform, phys config.Physics, world config.World) (landed bool) {
	b.VY += phys.Gravity

	b.X += b.VX
	b.Y += b.VY

	wasGrounded := b.Grounded
	b.Grounded = false

	// Pairwise, in list order: a later platform may undo an earlier one.
	for _, p := range platforms {
		b.resolve(p.Box)
	}

	b.X = core.ClampF(b.X, 0, world.Width-b.W)
	if b.Y+b.H > world.Height {
		b.Y = world.Height - b.H
		b.VY = 0
		b.Grounded = true
	}

	return !wasGrounded && b.Grounded
}

// resolve pushes the body out of a single platform.
// Vertical cases use the edge position before this tick's vertical move;
// otherwise the shallower horizontal overlap means a side hit. When none of
// the cases match nothing is corrected and the next tick re-evaluates.
func (b *Body) resolve(p core.Box) {
	box := b.Box()
	if !core.Collides(box, p) {
		return
	}
	ox, oy := core.Overlap(box, p)

	prevBottom := b.Y + b.H - b.VY
	prevTop := b.Y - b.VY

	switch {
	case prevBottom <= p.Y+resolveEpsilon && b.VY >= 0:
		b.Y = p.Y - b.H
		b.VY = 0
		b.Grounded = true
	case prevTop >= p.Bottom()-resolveEpsilon && b.VY < 0:
		b.Y = p.Bottom()
		b.VY = 0
	case ox < oy:
		if box.CenterX() < p.CenterX() {
			b.X = p.X - b.W
		} else {
			b.X = p.Right()
		}
		b.VX = 0
	}
}

// Player is the controlled character. One instance lives for the whole
// session and is repositioned on every level and stage load.
type Player struct {
	Body
	Facing int // -1 left, 1 right
}

// NewPlayer creates a player of the given size facing right.
func NewPlayer(size config.Size) Player {
	return Player{
		Body:   Body{W: size.Width, H: size.Height},
		Facing: 1,
	}
}

// Update advances the player one tick from held input.
func (p *Player) Update(in core.InputFrame, platforms []Platform, phys config.Physics, world config.World) (jumped, landed bool) {
	switch {
	case in.Has(core.ActionLeft):
		p.VX = -phys.MoveSpeed
		p.Facing = -1
	case in.Has(core.ActionRight):
		p.VX = phys.MoveSpeed
		p.Facing = 1
	default:
		p.VX *= phys.Friction
	}

	// Holding jump does not repeat: grounded is only restored by landing.
	if in.Has(core.ActionJump) && p.Grounded {
		p.VY = phys.JumpForce
		p.Grounded = false
		jumped = true
	}

	landed = p.integrate(platforms, phys, world)
	return jumped, landed
}

// Goal is the level exit trigger.
type Goal struct {
	Box    core.Box
	Bloody bool
}

// NewGoal creates a goal flag at (x, y).
func NewGoal(x, y float64, bloody bool) *Goal {
	return &Goal{Box: core.NewBox(x, y, GoalW, GoalH), Bloody: bloody}
}

// Reached reports whether the player touches the goal.
func (g *Goal) Reached(player core.Box) bool {
	return core.Collides(player, g.Box)
}

// Key is the one-shot collectible that unlocks a door. Its hitbox follows
// the cosmetic swing.
type Key struct {
	Box       core.Box
	Collected bool
	Phase     float64
}

// NewKey creates an uncollected key at (x, y).
func NewKey(x, y, phase float64) *Key {
	return &Key{Box: core.NewBox(x, y, KeyW, KeyH), Phase: phase}
}

// SwingAngle returns the rope angle at the given tick.
func (k *Key) SwingAngle(tick int) float64 {
	return math.Sin(float64(tick)*keySwingRate+k.Phase) * keySwingAmp
}

// HitBox returns the key's collision box at the given tick.
func (k *Key) HitBox(tick int) core.Box {
	b := k.Box
	b.X += math.Sin(k.SwingAngle(tick)) * keySwingReach
	return b
}

// Touch collects the key on first contact. Later calls return false.
func (k *Key) Touch(player core.Box, tick int) bool {
	if k.Collected {
		return false
	}
	if core.Collides(player, k.HitBox(tick)) {
		k.Collected = true
		return true
	}
	return false
}

// Chaser is the pursuer of chase levels. It walks toward the player's x and
// falls like the player but never jumps.
type Chaser struct {
	Body
	Speed float64
}

// NewChaser spawns a chaser at (x, y).
func NewChaser(x, y float64, size config.Size, speed float64) *Chaser {
	c := &Chaser{Body: Body{W: size.Width, H: size.Height}, Speed: speed}
	c.Place(x, y)
	return c
}

// Update steps the chaser toward target.
func (c *Chaser) Update(target core.Box, platforms []Platform, phys config.Physics, world config.World) {
	c.VX = core.Sign(target.CenterX()-c.Box().CenterX()) * c.Speed
	c.integrate(platforms, phys, world)
}

// Catches reports whether the chaser touches the player.
func (c *Chaser) Catches(player core.Box) bool {
	return core.Collides(c.Box(), player)
}
