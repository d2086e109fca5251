// Package physics adapts the Chipmunk space to the arcade-style vocabulary
// the level speaks: centre-origin bodies, colliders and overlaps between
// kinds of bodies, touching flags and world bounds.
package physics

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Kind groups bodies for collider and overlap registration.
type Kind int

const (
	KindPlatform Kind = iota
	KindPlayer
	KindStar
	KindBomb
	kindBounds
	kindCount
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindPlatform:
		return "Platform"
	case KindPlayer:
		return "Player"
	case KindStar:
		return "Star"
	case KindBomb:
		return "Bomb"
	case kindBounds:
		return "Bounds"
	default:
		return "Unknown"
	}
}

func (k Kind) category() uint { return 1 << uint(k) }
func (k Kind) collisionType() cp.CollisionType { return cp.CollisionType(k + 1) }

const boundsThickness = 64.0

// Settings configures a World.
type Settings struct {
	Gravity    float64 // pixels/sec², +Y is down
	Substeps   int
	Iterations int
	Width      float64 // world bounds
	Height     float64
}

type pairMode int

const (
	pairNone pairMode = iota
	pairCollide
	pairCollideNotify
	pairOverlap
)

// Contact reports that two bodies met during a Step.
// A is always the body with the lower Kind.
type Contact struct {
	A, B *Body
}

// Other returns the body of contact c that is not b.
func (c Contact) Other(b *Body) *Body {
	if c.A == b {
		return c.B
	}
	return c.A
}

// World owns the Chipmunk space and every shape in it.
type World struct {
	space    *cp.Space
	settings Settings

	shapes map[*cp.Shape]*Body
	bodies []*Body
	pairs  [kindCount][kindCount]pairMode

	contacts []Contact
	seen     map[[2]*Body]struct{}
	paused   bool
}

// NewWorld creates a world with gravity and solid bounds around
// (0,0)-(Width,Height).
func NewWorld(settings Settings) *World {
	if settings.Substeps <= 0 {
		settings.Substeps = 1
	}
	if settings.Iterations <= 0 {
		settings.Iterations = 10
	}

	space := cp.NewSpace()
	space.Iterations = uint(settings.Iterations)
	space.SetGravity(cp.Vector{X: 0, Y: settings.Gravity})

	w := &World{
		space:    space,
		settings: settings,
		shapes:   make(map[*cp.Shape]*Body),
		seen:     make(map[[2]*Body]struct{}),
	}
	w.buildBounds()
	w.setupBoundsHandlers()
	return w
}

func (w *World) buildBounds() {
	wd, ht, t := w.settings.Width, w.settings.Height, boundsThickness
	if wd <= 0 || ht <= 0 {
		return
	}
	boxes := []cp.BB{
		{L: -t, B: -t, R: wd + t, T: 0},     // top
		{L: -t, B: ht, R: wd + t, T: ht + t}, // bottom
		{L: -t, B: 0, R: 0, T: ht},           // left
		{L: wd, B: 0, R: wd + t, T: ht},      // right
	}
	for _, bb := range boxes {
		shape := cp.NewBox2(w.space.StaticBody, bb, 0)
		shape.SetElasticity(1)
		shape.SetFriction(0)
		shape.SetCollisionType(kindBounds.collisionType())
		shape.SetFilter(cp.ShapeFilter{Categories: kindBounds.category(), Mask: ^uint(0)})
		w.space.AddShape(shape)
		w.shapes[shape] = &Body{
			world:  w,
			kind:   kindBounds,
			shape:  shape,
			static: true,
			active: true,
			x:      (bb.L + bb.R) / 2,
			y:      (bb.B + bb.T) / 2,
			width:  bb.R - bb.L,
			height: bb.T - bb.B,
		}
	}
}

func (w *World) setupBoundsHandlers() {
	for k := KindPlayer; k < kindBounds; k++ {
		h := w.space.NewCollisionHandler(k.collisionType(), kindBounds.collisionType())
		h.PreSolveFunc = func(arb *cp.Arbiter, _ *cp.Space, _ interface{}) bool {
			w.markContact(arb, true)
			return true
		}
	}
}

// Settings returns the settings the world was built with.
func (w *World) Settings() Settings {
	return w.settings
}

// AddStatic adds an immovable box centred on (x, y).
func (w *World) AddStatic(kind Kind, x, y, width, height float64) *Body {
	bb := cp.BB{L: x - width/2, B: y - height/2, R: x + width/2, T: y + height/2}
	shape := cp.NewBox2(w.space.StaticBody, bb, 0)
	shape.SetElasticity(1)
	shape.SetFriction(0)
	shape.SetCollisionType(kind.collisionType())

	b := &Body{
		world:  w,
		kind:   kind,
		shape:  shape,
		static: true,
		bounce: 1,
		x:      x,
		y:      y,
		width:  width,
		height: height,
	}
	shape.SetFilter(w.filterFor(b))
	w.space.AddShape(shape)
	b.active = true

	w.shapes[shape] = b
	w.bodies = append(w.bodies, b)
	return b
}

// BodyOptions tunes a dynamic body.
type BodyOptions struct {
	Bounce             float64
	CollideWorldBounds bool
	NoGravity          bool
}

// AddDynamic adds a non-rotating box centred on (x, y).
func (w *World) AddDynamic(kind Kind, x, y, width, height float64, opts BodyOptions) *Body {
	body := cp.NewBody(1, math.Inf(1))
	body.SetPosition(cp.Vector{X: x, Y: y})
	if opts.NoGravity {
		body.SetVelocityUpdateFunc(func(body *cp.Body, gravity cp.Vector, damping float64, dt float64) {
			cp.BodyUpdateVelocity(body, cp.Vector{}, damping, dt)
		})
	}

	shape := cp.NewBox(body, width, height, 0)
	shape.SetElasticity(opts.Bounce)
	shape.SetFriction(0)
	shape.SetCollisionType(kind.collisionType())

	b := &Body{
		world:         w,
		kind:          kind,
		body:          body,
		shape:         shape,
		width:         width,
		height:        height,
		bounce:        opts.Bounce,
		collideBounds: opts.CollideWorldBounds,
	}
	shape.SetFilter(w.filterFor(b))

	w.space.AddBody(body)
	w.space.AddShape(shape)
	b.active = true

	w.shapes[shape] = b
	w.bodies = append(w.bodies, b)
	return b
}

// Collider makes bodies of kinds a and b block each other. With notify set,
// every first touch between two such bodies is reported by Step.
func (w *World) Collider(a, b Kind, notify bool) {
	mode := pairCollide
	if notify {
		mode = pairCollideNotify
	}
	w.setPair(a, b, mode)
}

// Overlap makes bodies of kinds a and b pass through each other while
// reporting when they start to overlap.
func (w *World) Overlap(a, b Kind) {
	w.setPair(a, b, pairOverlap)
}

func (w *World) setPair(a, b Kind, mode pairMode) {
	w.pairs[a][b] = mode
	w.pairs[b][a] = mode

	h := w.space.NewCollisionHandler(a.collisionType(), b.collisionType())
	switch mode {
	case pairOverlap:
		h.BeginFunc = func(arb *cp.Arbiter, _ *cp.Space, _ interface{}) bool {
			w.report(arb)
			return false
		}
	default:
		h.BeginFunc = func(arb *cp.Arbiter, _ *cp.Space, _ interface{}) bool {
			if mode == pairCollideNotify {
				w.report(arb)
			}
			return true
		}
		h.PreSolveFunc = func(arb *cp.Arbiter, _ *cp.Space, _ interface{}) bool {
			w.markContact(arb, false)
			return true
		}
	}

	for _, body := range w.bodies {
		body.shape.SetFilter(w.filterFor(body))
	}
}

func (w *World) filterFor(b *Body) cp.ShapeFilter {
	var mask uint
	for k := Kind(0); k < kindCount; k++ {
		if w.pairs[b.kind][k] != pairNone {
			mask |= k.category()
		}
	}
	if b.collideBounds {
		mask |= kindBounds.category()
	}
	return cp.ShapeFilter{Categories: b.kind.category(), Mask: mask}
}

func (w *World) bodiesOf(arb *cp.Arbiter) (*Body, *Body) {
	sa, sb := arb.Shapes()
	return w.shapes[sa], w.shapes[sb]
}

func (w *World) report(arb *cp.Arbiter) {
	a, b := w.bodiesOf(arb)
	if a == nil || b == nil || !a.active || !b.active {
		return
	}
	if b.kind < a.kind {
		a, b = b, a
	}
	key := [2]*Body{a, b}
	if _, ok := w.seen[key]; ok {
		return
	}
	w.seen[key] = struct{}{}
	w.contacts = append(w.contacts, Contact{A: a, B: b})
}

// markContact records the contact normal on both bodies. The arbiter normal
// points from its first shape to its second.
func (w *World) markContact(arb *cp.Arbiter, bounds bool) {
	a, b := w.bodiesOf(arb)
	n := arb.Normal()
	if a != nil && a.kind != kindBounds {
		if bounds {
			a.blocked.mark(n)
		} else {
			a.touching.mark(n)
		}
	}
	if b != nil && b.kind != kindBounds {
		if bounds {
			b.blocked.mark(n.Neg())
		} else {
			b.touching.mark(n.Neg())
		}
	}
}

// Step advances the simulation by dt seconds in Substeps equal slices and
// returns the contacts reported during the frame. A paused world does not
// move and reports nothing.
func (w *World) Step(dt float64) []Contact {
	if w.paused || dt <= 0 {
		return nil
	}

	w.contacts = w.contacts[:0]
	clear(w.seen)
	for _, b := range w.bodies {
		b.touching = Touching{}
		b.blocked = Touching{}
	}

	h := dt / float64(w.settings.Substeps)
	for i := 0; i < w.settings.Substeps; i++ {
		w.space.Step(h)
	}

	out := make([]Contact, len(w.contacts))
	copy(out, w.contacts)
	return out
}

// Pause freezes the simulation.
func (w *World) Pause() { w.paused = true }

// Resume unfreezes the simulation.
func (w *World) Resume() { w.paused = false }

// Paused reports whether the simulation is frozen.
func (w *World) Paused() bool { return w.paused }

// Disable removes b from the simulation. It keeps its position and can be
// brought back with Enable.
func (w *World) Disable(b *Body) {
	if b == nil || !b.active || b.static {
		return
	}
	w.space.RemoveShape(b.shape)
	w.space.RemoveBody(b.body)
	b.body.SetVelocity(0, 0)
	b.touching = Touching{}
	b.blocked = Touching{}
	b.active = false
}

// Enable resets b to (x, y) at rest and puts it back into the simulation.
func (w *World) Enable(b *Body, x, y float64) {
	if b == nil || b.static {
		return
	}
	b.body.SetPosition(cp.Vector{X: x, Y: y})
	b.body.SetVelocity(0, 0)
	if b.active {
		return
	}
	w.space.AddBody(b.body)
	w.space.AddShape(b.shape)
	b.active = true
}
