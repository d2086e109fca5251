package physics

import "github.com/jakecoffman/cp"

// Touching holds the sides of a body that were in contact during the last Step.
type Touching struct {
	Up, Down, Left, Right bool
}

// Any reports whether any side is set.
func (t Touching) Any() bool {
	return t.Up || t.Down || t.Left || t.Right
}

// mark sets the side that n points to, n being the direction from the body
// to whatever it touched (+Y is down).
func (t *Touching) mark(n cp.Vector) {
	switch {
	case n.Y > 0.5:
		t.Down = true
	case n.Y < -0.5:
		t.Up = true
	}
	switch {
	case n.X > 0.5:
		t.Right = true
	case n.X < -0.5:
		t.Left = true
	}
}

// Body is an axis-aligned box in a World. Static bodies never move.
type Body struct {
	world *World
	kind  Kind
	body  *cp.Body
	shape *cp.Shape

	static        bool
	active        bool
	bounce        float64
	collideBounds bool

	// static bodies keep their own centre
	x, y          float64
	width, height float64

	touching Touching // other bodies
	blocked  Touching // world bounds
}

func (b *Body) Kind() Kind { return b.kind }

func (b *Body) Static() bool { return b.static }

// Active reports whether the body takes part in the simulation.
func (b *Body) Active() bool { return b.active }

func (b *Body) Width() float64  { return b.width }
func (b *Body) Height() float64 { return b.height }

// Position returns the centre of the body.
func (b *Body) Position() (x, y float64) {
	if b.static {
		return b.x, b.y
	}
	p := b.body.Position()
	return p.X, p.Y
}

func (b *Body) X() float64 {
	x, _ := b.Position()
	return x
}

func (b *Body) Y() float64 {
	_, y := b.Position()
	return y
}

// Velocity returns the body's velocity in pixels/sec.
func (b *Body) Velocity() (vx, vy float64) {
	if b.static {
		return 0, 0
	}
	v := b.body.Velocity()
	return v.X, v.Y
}

func (b *Body) SetVelocity(vx, vy float64) {
	if b.static {
		return
	}
	b.body.SetVelocity(vx, vy)
}

func (b *Body) SetVelocityX(vx float64) {
	_, vy := b.Velocity()
	b.SetVelocity(vx, vy)
}

func (b *Body) SetVelocityY(vy float64) {
	vx, _ := b.Velocity()
	b.SetVelocity(vx, vy)
}

// Bounce is the restitution of the body's shape.
func (b *Body) Bounce() float64 {
	return b.bounce
}

// Touching returns the sides that touched another body during the last Step.
func (b *Body) Touching() Touching { return b.touching }

// Blocked returns the sides that touched the world bounds during the last Step.
func (b *Body) Blocked() Touching { return b.blocked }

// OnFloor reports whether the body is standing on something.
func (b *Body) OnFloor() bool {
	return b.touching.Down || b.blocked.Down
}

// Bounds returns the body's box as left, top, right, bottom.
func (b *Body) Bounds() (l, t, r, bt float64) {
	x, y := b.Position()
	return x - b.width/2, y - b.height/2, x + b.width/2, y + b.height/2
}
