// Package core provides the primitive types shared by the simulation and the
// terminal host: world-space boxes, input frames and the character screen.
// It has no external dependencies so game logic stays pure and testable.
package core

// Box is an axis-aligned rectangle in world pixels (y grows downward).
type Box struct {
	X, Y float64 // Top-left corner
	W, H float64 // Width and height
}

// NewBox creates a box at (x, y) with the given size.
func NewBox(x, y, w, h float64) Box {
	return Box{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.X + b.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 {
	return b.Y + b.H
}

// CenterX returns the horizontal center.
func (b Box) CenterX() float64 {
	return b.X + b.W/2
}

// CenterY returns the vertical center.
func (b Box) CenterY() float64 {
	return b.Y + b.H/2
}

// Valid reports whether both dimensions are positive.
func (b Box) Valid() bool {
	return b.W > 0 && b.H > 0
}

// Expand grows the box by pad on every side.
func (b Box) Expand(pad float64) Box {
	return Box{X: b.X - pad, Y: b.Y - pad, W: b.W + 2*pad, H: b.H + 2*pad}
}

// Overlap returns the penetration depth of two boxes on each axis.
// A value <= 0 on either axis means the boxes are separated (or only touching)
// along that axis.
func Overlap(a, b Box) (ox, oy float64) {
	ox = minF(a.Right(), b.Right()) - maxF(a.X, b.X)
	oy = minF(a.Bottom(), b.Bottom()) - maxF(a.Y, b.Y)
	return ox, oy
}

// Collides reports whether two boxes strictly overlap.
// Touching edges do not collide, and degenerate boxes never collide.
func Collides(a, b Box) bool {
	if !a.Valid() || !b.Valid() {
		return false
	}
	ox, oy := Overlap(a, b)
	return ox > 0 && oy > 0
}

// Rect is an integer rectangle in screen cells.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// ClampF restricts a float64 value to be within [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// Sign returns -1, 0 or 1 according to the sign of v.
func Sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// Mod returns i modulo n in the range [0, n). n must be positive.
func Mod(i, n int) int {
	m := i % n
	if m < 0 {
		m += n
	}
	return m
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
