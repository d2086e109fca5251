package physics

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const frame = 1.0 / 60.0

func newTestWorld() *World {
	return NewWorld(Settings{Gravity: 300, Substeps: 4, Iterations: 10, Width: 800, Height: 600})
}

func run(w *World, frames int) []Contact {
	var all []Contact
	for i := 0; i < frames; i++ {
		all = append(all, w.Step(frame)...)
	}
	return all
}

func TestWorld_BodyLandsOnPlatform(t *testing.T) {
	w := newTestWorld()
	w.AddStatic(KindPlatform, 400, 500, 400, 32)
	player := w.AddDynamic(KindPlayer, 400, 300, 32, 48, BodyOptions{CollideWorldBounds: true})
	w.Collider(KindPlayer, KindPlatform, false)

	run(w, 240)

	// platform top is 484, player half height is 24
	assert.InDelta(t, 460, player.Y(), 1.5)
	assert.True(t, player.Touching().Down)
	assert.False(t, player.Blocked().Down)
	assert.True(t, player.OnFloor())
}

func TestWorld_WorldBoundsBlock(t *testing.T) {
	w := newTestWorld()
	player := w.AddDynamic(KindPlayer, 100, 100, 32, 48, BodyOptions{CollideWorldBounds: true})

	run(w, 300)

	assert.InDelta(t, 576, player.Y(), 1.5)
	assert.True(t, player.Blocked().Down)
	assert.False(t, player.Touching().Any())
	assert.True(t, player.OnFloor())
}

func TestWorld_WithoutBoundsFallsThrough(t *testing.T) {
	w := newTestWorld()
	star := w.AddDynamic(KindStar, 100, 100, 24, 22, BodyOptions{})

	run(w, 300)

	assert.Greater(t, star.Y(), 600.0)
	assert.False(t, star.OnFloor())
}

func TestWorld_UnpairedKindsIgnoreEachOther(t *testing.T) {
	w := newTestWorld()
	w.AddStatic(KindPlatform, 400, 500, 400, 32)
	star := w.AddDynamic(KindStar, 400, 300, 24, 22, BodyOptions{})

	run(w, 240)

	assert.Greater(t, star.Y(), 500.0)
}

func TestWorld_OverlapReportsOnceAndPassesThrough(t *testing.T) {
	w := newTestWorld()
	w.Overlap(KindPlayer, KindStar)
	star := w.AddDynamic(KindStar, 200, 200, 24, 22, BodyOptions{NoGravity: true})
	player := w.AddDynamic(KindPlayer, 200, 200, 32, 48, BodyOptions{NoGravity: true})
	player.SetVelocity(30, 0)

	contacts := w.Step(frame)
	require.Len(t, contacts, 1)
	assert.Same(t, player, contacts[0].A)
	assert.Same(t, star, contacts[0].B)
	assert.Same(t, star, contacts[0].Other(player))

	vx, vy := player.Velocity()
	assert.InDelta(t, 30, vx, 1e-9)
	assert.InDelta(t, 0, vy, 1e-9)

	assert.Empty(t, w.Step(frame))
}

func TestWorld_ColliderNotify(t *testing.T) {
	w := newTestWorld()
	w.Collider(KindPlayer, KindBomb, true)
	player := w.AddDynamic(KindPlayer, 200, 300, 32, 48, BodyOptions{NoGravity: true})
	bomb := w.AddDynamic(KindBomb, 200, 200, 14, 14, BodyOptions{NoGravity: true, Bounce: 1})
	bomb.SetVelocity(0, 200)

	contacts := run(w, 60)

	require.NotEmpty(t, contacts)
	assert.Same(t, player, contacts[0].A)
	assert.Same(t, bomb, contacts[0].B)
}

func TestWorld_ColliderWithoutNotifyIsSilent(t *testing.T) {
	w := newTestWorld()
	w.Collider(KindPlayer, KindPlatform, false)
	w.AddStatic(KindPlatform, 400, 500, 400, 32)
	w.AddDynamic(KindPlayer, 400, 300, 32, 48, BodyOptions{})

	assert.Empty(t, run(w, 240))
}

func TestWorld_FiltersRefreshForExistingBodies(t *testing.T) {
	w := newTestWorld()
	w.AddStatic(KindPlatform, 400, 500, 400, 32)
	star := w.AddDynamic(KindStar, 400, 300, 24, 22, BodyOptions{})

	// registered after both bodies exist
	w.Collider(KindStar, KindPlatform, false)
	run(w, 240)

	assert.InDelta(t, 473, star.Y(), 1.5)
}

func TestWorld_DisableEnable(t *testing.T) {
	w := newTestWorld()
	stars := NewGroup(KindStar)
	for i := 0; i < 3; i++ {
		stars.Add(w.AddDynamic(KindStar, float64(100+i*50), 100, 24, 22, BodyOptions{}))
	}
	require.Equal(t, 3, stars.CountActive())

	s := stars.Children()[1]
	run(w, 10)
	x, y := s.Position()
	w.Disable(s)
	assert.False(t, s.Active())
	assert.Equal(t, 2, stars.CountActive())

	run(w, 10)
	sx, sy := s.Position()
	assert.Equal(t, x, sx)
	assert.Equal(t, y, sy)

	w.Disable(s)
	assert.Equal(t, 2, stars.CountActive())

	w.Enable(s, 175, 0)
	assert.True(t, s.Active())
	assert.Equal(t, 3, stars.CountActive())
	sx, sy = s.Position()
	assert.Equal(t, 175.0, sx)
	assert.Equal(t, 0.0, sy)
	vx, vy := s.Velocity()
	assert.Zero(t, vx)
	assert.Zero(t, vy)

	run(w, 10)
	assert.Greater(t, s.Y(), 0.0)
}

func TestWorld_PauseFreezes(t *testing.T) {
	w := newTestWorld()
	b := w.AddDynamic(KindBomb, 100, 100, 14, 14, BodyOptions{})
	b.SetVelocity(50, 0)

	w.Pause()
	assert.True(t, w.Paused())
	assert.Nil(t, w.Step(frame))
	x, y := b.Position()
	assert.Equal(t, 100.0, x)
	assert.Equal(t, 100.0, y)

	w.Resume()
	w.Step(frame)
	assert.Greater(t, b.X(), 100.0)
}

func TestWorld_BouncingBombComesBackUp(t *testing.T) {
	w := newTestWorld()
	bomb := w.AddDynamic(KindBomb, 400, 100, 14, 14, BodyOptions{Bounce: 1, CollideWorldBounds: true})
	assert.Equal(t, 1.0, bomb.Bounce())

	hitFloor, rose := false, false
	for i := 0; i < 600 && !rose; i++ {
		w.Step(frame)
		if bomb.Blocked().Down {
			hitFloor = true
		}
		if hitFloor && bomb.Y() < 300 {
			rose = true
		}
	}
	assert.True(t, hitFloor)
	assert.True(t, rose)
}

func TestStaticBody(t *testing.T) {
	w := newTestWorld()
	p := w.AddStatic(KindPlatform, 400, 568, 800, 64)

	assert.True(t, p.Static())
	assert.True(t, p.Active())
	assert.Equal(t, 400.0, p.X())
	assert.Equal(t, 568.0, p.Y())

	p.SetVelocity(10, 10)
	vx, vy := p.Velocity()
	assert.Zero(t, vx)
	assert.Zero(t, vy)

	l, top, r, b := p.Bounds()
	assert.Equal(t, 0.0, l)
	assert.Equal(t, 536.0, top)
	assert.Equal(t, 800.0, r)
	assert.Equal(t, 600.0, b)

	w.Disable(p)
	assert.True(t, p.Active())
}

func TestGroup_Add(t *testing.T) {
	w := newTestWorld()
	g := NewGroup(KindStar)

	assert.True(t, g.Add(w.AddDynamic(KindStar, 0, 0, 10, 10, BodyOptions{})))
	assert.False(t, g.Add(w.AddDynamic(KindBomb, 0, 0, 10, 10, BodyOptions{})))
	assert.False(t, g.Add(nil))
	assert.Equal(t, 1, g.Len())
	assert.True(t, g.Contains(g.Children()[0]))
}

func TestTouching_Mark(t *testing.T) {
	tests := []struct {
		name string
		n    cp.Vector
		want Touching
	}{
		{"down", cp.Vector{X: 0, Y: 1}, Touching{Down: true}},
		{"up", cp.Vector{X: 0, Y: -1}, Touching{Up: true}},
		{"right", cp.Vector{X: 1, Y: 0}, Touching{Right: true}},
		{"left", cp.Vector{X: -1, Y: 0}, Touching{Left: true}},
		{"shallow", cp.Vector{X: 0.3, Y: 0.3}, Touching{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Touching
			got.mark(tt.n)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "Player", KindPlayer.String())
	assert.Equal(t, "Bounds", kindBounds.String())
	assert.Equal(t, "Unknown", Kind(42).String())
}
