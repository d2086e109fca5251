// Package scene defines the Scene interface for game screens.
//
// Each screen (menu, playing, game over) implements Scene to handle its own
// update logic and rendering. Scenes never construct each other directly;
// they ask a Director for the next one.
package scene

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Scene represents a game screen (menu, playing, game over)
//
// The game loop delegates Update and Draw calls to the current scene.
// Scene transitions are handled by returning a new Scene from Update.
type Scene interface {
	// Name identifies the scene in logs and events.
	Name() string

	// Update updates the scene state.
	// dt is the delta time in seconds (typically 1/60).
	// Returns the next scene if a transition is needed, nil to stay on current scene.
	// Returns an error to terminate the game.
	Update(dt float64) (next Scene, err error)

	// Draw renders the scene to the screen.
	Draw(screen *ebiten.Image)

	// OnEnter is called when entering this scene.
	OnEnter()

	// OnExit is called when leaving this scene.
	OnExit()
}

// Result is what a finished level hands to the game over scene.
type Result struct {
	Score     int
	Best      int
	NewRecord bool
	Waves     int
	Frames    int
}

// Director builds scenes on request.
type Director interface {
	Menu() Scene
	Playing() Scene
	GameOver(result Result) Scene
}

// ScoreBoard keeps the best score across runs.
type ScoreBoard interface {
	Best() int
	Runs() int
	Submit(score int) (newRecord bool, err error)
}

// KeyFunc reports whether a key was pressed this tick.
type KeyFunc func(key ebiten.Key) bool

// JustPressed is the KeyFunc backed by the keyboard.
var JustPressed KeyFunc = inpututil.IsKeyJustPressed
