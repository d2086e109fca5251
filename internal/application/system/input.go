package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputState holds the current input state
type InputState struct {
	Left  bool
	Right bool
	Up    bool
	Pause bool // toggles pause, true only on the frame it is pressed
}

// InputSource supplies one InputState per frame. ok is false once the
// source has nothing more to give.
type InputSource interface {
	Poll() (input InputState, ok bool)
}

// KeyboardInput reads the cursor keys, with WASD as aliases.
type KeyboardInput struct{}

// NewKeyboardInput creates a new keyboard input source
func NewKeyboardInput() *KeyboardInput {
	return &KeyboardInput{}
}

// Poll reads the current keyboard state. It never runs out.
func (k *KeyboardInput) Poll() (InputState, bool) {
	return InputState{
		Left:  anyPressed(ebiten.KeyArrowLeft, ebiten.KeyA),
		Right: anyPressed(ebiten.KeyArrowRight, ebiten.KeyD),
		Up:    anyPressed(ebiten.KeyArrowUp, ebiten.KeyW),
		Pause: inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyP),
	}, true
}

func anyPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

// ScriptedInput plays back a fixed list of states, then reports ok=false.
type ScriptedInput struct {
	States []InputState
	next   int
}

func (s *ScriptedInput) Poll() (InputState, bool) {
	if s.next >= len(s.States) {
		return InputState{}, false
	}
	in := s.States[s.next]
	s.next++
	return in, true
}
