package game

import (
	"math"
	"testing"

	"github.com/vovakirdan/mias-adventure/internal/config"
	"github.com/vovakirdan/mias-adventure/internal/core"
)

const eps = 1e-9

func testTuning() (config.Physics, config.World, config.Size) {
	cfg := config.DefaultPlatformerConfig()
	return cfg.Physics, cfg.World, cfg.Player
}

func ground() []Platform {
	return []Platform{{Box: core.NewBox(0, 550, 800, 50)}}
}

func held(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestPlayerFallsOntoGround(t *testing.T) {
	phys, world, size := testTuning()
	p := NewPlayer(size)
	p.Place(50, 480)
	platforms := ground()

	p.Update(core.NewInputFrame(), platforms, phys, world)
	if math.Abs(p.VY-0.6) > eps || math.Abs(p.Y-480.6) > eps {
		t.Fatalf("after 1 tick: y=%v vy=%v, want y=480.6 vy=0.6", p.Y, p.VY)
	}
	if p.Grounded {
		t.Fatal("player should not be grounded before touching the platform")
	}

	landedAt := 0
	for i := 2; i <= 30; i++ {
		_, landed := p.Update(core.NewInputFrame(), platforms, phys, world)
		if landed {
			landedAt = i
			break
		}
	}

	if landedAt != 9 {
		t.Errorf("expected landing on tick 9, got %d", landedAt)
	}
	if p.Y != 502 || p.VY != 0 || !p.Grounded {
		t.Errorf("after landing: y=%v vy=%v grounded=%v, want 502 0 true", p.Y, p.VY, p.Grounded)
	}
}

func TestRestingPlayerStaysPut(t *testing.T) {
	phys, world, size := testTuning()
	p := NewPlayer(size)
	p.Place(100, 502)
	p.Grounded = true
	platforms := ground()

	for i := 0; i < 100; i++ {
		_, landed := p.Update(core.NewInputFrame(), platforms, phys, world)
		if landed {
			t.Fatalf("tick %d: landed fired while resting", i)
		}
		if p.Y != 502 || p.VY != 0 || !p.Grounded {
			t.Fatalf("tick %d: y=%v vy=%v grounded=%v", i, p.Y, p.VY, p.Grounded)
		}
	}
}

func TestGravityAccumulates(t *testing.T) {
	phys, world, size := testTuning()
	p := NewPlayer(size)
	p.Place(100, 0)

	for i := 1; i <= 20; i++ {
		p.Update(core.NewInputFrame(), nil, phys, world)
		want := phys.Gravity * float64(i)
		if math.Abs(p.VY-want) > eps {
			t.Fatalf("tick %d: vy=%v, want %v", i, p.VY, want)
		}
	}
}

func TestFloorClamp(t *testing.T) {
	phys, world, size := testTuning()
	p := NewPlayer(size)
	p.Place(100, 500)

	landed := false
	for i := 0; i < 60 && !landed; i++ {
		_, landed = p.Update(core.NewInputFrame(), nil, phys, world)
	}
	if !landed {
		t.Fatal("player never reached the floor")
	}
	if p.Y != world.Height-p.H || p.VY != 0 {
		t.Errorf("floor snap: y=%v vy=%v", p.Y, p.VY)
	}
}

func TestFrictionDecay(t *testing.T) {
	phys, world, size := testTuning()
	p := NewPlayer(size)
	p.Place(100, 100)
	p.VX = 3

	for n := 1; n <= 30; n++ {
		p.Update(core.NewInputFrame(), nil, phys, world)
		want := 3 * math.Pow(phys.Friction, float64(n))
		if math.Abs(math.Abs(p.VX)-want) > 1e-9 {
			t.Fatalf("tick %d: |vx|=%v, want %v", n, math.Abs(p.VX), want)
		}
		if p.VX == 0 {
			t.Fatalf("tick %d: vx reached exactly zero", n)
		}
	}
}

func TestHorizontalInput(t *testing.T) {
	phys, world, size := testTuning()
	p := NewPlayer(size)
	p.Place(400, 502)

	p.Update(held(core.ActionLeft), ground(), phys, world)
	if p.VX != -phys.MoveSpeed || p.Facing != -1 {
		t.Errorf("left: vx=%v facing=%d", p.VX, p.Facing)
	}

	p.Update(held(core.ActionRight), ground(), phys, world)
	if p.VX != phys.MoveSpeed || p.Facing != 1 {
		t.Errorf("right: vx=%v facing=%d", p.VX, p.Facing)
	}

	p.Update(held(core.ActionLeft, core.ActionRight), ground(), phys, world)
	if p.VX != -phys.MoveSpeed {
		t.Errorf("left should win when both are held, vx=%v", p.VX)
	}
}

func TestJumpRequiresGrounded(t *testing.T) {
	phys, world, size := testTuning()
	p := NewPlayer(size)
	p.Place(100, 100)

	jumped, _ := p.Update(held(core.ActionJump), nil, phys, world)
	if jumped {
		t.Fatal("jumped in mid-air")
	}
	if math.Abs(p.VY-phys.Gravity) > eps {
		t.Errorf("mid-air jump changed velocity: vy=%v", p.VY)
	}

	p.Place(100, 502)
	p.Grounded = true
	jumped, _ = p.Update(held(core.ActionJump), ground(), phys, world)
	if !jumped {
		t.Fatal("grounded jump did not fire")
	}
	if math.Abs(p.VY-(phys.JumpForce+phys.Gravity)) > eps {
		t.Errorf("vy after jump = %v", p.VY)
	}

	// Holding jump does not repeat until the player lands again.
	jumped, _ = p.Update(held(core.ActionJump), ground(), phys, world)
	if jumped {
		t.Error("held jump repeated in the air")
	}
}

func TestSideCollision(t *testing.T) {
	phys, world, size := testTuning()
	p := NewPlayer(size)
	p.Place(170, 420)
	wall := []Platform{{Box: core.NewBox(200, 400, 50, 100)}}

	p.Update(held(core.ActionRight), wall, phys, world)

	if p.X != 168 || p.VX != 0 {
		t.Errorf("side hit: x=%v vx=%v, want 168 0", p.X, p.VX)
	}
}

func TestUndersideCollision(t *testing.T) {
	phys, world, size := testTuning()
	p := NewPlayer(size)
	p.Place(100, 330)
	p.VY = -10
	ceiling := []Platform{{Box: core.NewBox(0, 300, 400, 25)}}

	p.Update(core.NewInputFrame(), ceiling, phys, world)

	if p.Y != 325 || p.VY != 0 {
		t.Errorf("head bump: y=%v vy=%v, want 325 0", p.Y, p.VY)
	}
}

func TestResolveFallbackLeavesOverlap(t *testing.T) {
	b := Body{X: 200, Y: 405, W: 32, H: 48}
	p := core.NewBox(200, 400, 40, 20)

	b.resolve(p)

	if b.X != 200 || b.Y != 405 || b.Grounded {
		t.Errorf("fallback case corrected the body: %+v", b)
	}
}

func TestKeyCollectedOnce(t *testing.T) {
	k := NewKey(400, 150, 0)
	player := core.NewBox(400, 150, 32, 48)

	if !k.Touch(player, 0) {
		t.Fatal("first touch should collect the key")
	}
	if !k.Collected {
		t.Fatal("key not marked collected")
	}
	if k.Touch(player, 0) {
		t.Error("second touch should return false")
	}
}

func TestKeyHitboxSwings(t *testing.T) {
	k := NewKey(400, 150, 0.5)

	for _, tick := range []int{0, 30, 90, 200} {
		angle := math.Sin(float64(tick)/60+0.5) * 0.15
		want := 400 + math.Sin(angle)*10
		if got := k.HitBox(tick).X; math.Abs(got-want) > eps {
			t.Errorf("tick %d: hitbox x=%v, want %v", tick, got, want)
		}
	}
}

func TestChaserPursues(t *testing.T) {
	phys, world, size := testTuning()
	c := NewChaser(0, 502, size, 2)
	target := core.NewBox(400, 502, 32, 48)

	c.Update(target, ground(), phys, world)
	if c.VX != 2 {
		t.Errorf("chaser should step right, vx=%v", c.VX)
	}

	target.X = -100
	c.Update(target, ground(), phys, world)
	if c.VX != -2 {
		t.Errorf("chaser should step left, vx=%v", c.VX)
	}

	if c.Catches(core.NewBox(600, 502, 32, 48)) {
		t.Error("chaser should not catch a distant player")
	}
	if !c.Catches(c.Box()) {
		t.Error("chaser should catch an overlapping player")
	}
}
