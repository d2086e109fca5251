// Package game provides the main game loop manager that handles Scene transitions.
package game

import (
	"errors"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/starcatcher/internal/application/eventbus"
	"github.com/younwookim/starcatcher/internal/application/scene"
)

// Game implements ebiten.Game and manages Scene transitions.
type Game struct {
	current scene.Scene
	screenW int
	screenH int
	dt      float64
	ticks   int
	bus     *eventbus.Bus
}

// New creates a new Game with the given initial scene.
// The initial scene's OnEnter is called immediately.
func New(initialScene scene.Scene, screenW, screenH int) *Game {
	g := &Game{
		current: initialScene,
		screenW: screenW,
		screenH: screenH,
		dt:      1.0 / 60.0,
	}
	log.Printf("[Game] enter %s", g.current.Name())
	g.current.OnEnter()
	return g
}

// Update updates the current scene and handles scene transitions.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	g.ticks++
	next, err := g.current.Update(g.dt)
	if err != nil {
		if !errors.Is(err, ebiten.Termination) {
			log.Printf("[Game] %s failed: %v", g.current.Name(), err)
		}
		return err
	}

	if next != nil {
		g.switchTo(next)
	}
	return nil
}

func (g *Game) switchTo(next scene.Scene) {
	log.Printf("[Game] %s -> %s", g.current.Name(), next.Name())
	g.current.OnExit()
	g.current = next
	g.current.OnEnter()
	g.bus.Emit(eventbus.SceneChanged, next.Name())
}

// SetBus makes the game announce every scene change on bus with the new
// scene's name.
func (g *Game) SetBus(bus *eventbus.Bus) {
	g.bus = bus
}

// Draw renders the current scene.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// SetDT sets the delta time used for updates.
func (g *Game) SetDT(dt float64) {
	g.dt = dt
}

// Current returns the active scene.
func (g *Game) Current() scene.Scene {
	return g.current
}

// Ticks returns the number of Update calls so far.
func (g *Game) Ticks() int {
	return g.ticks
}
