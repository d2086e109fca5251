package entity

import "image/color"

// Facing selects the player's animation.
type Facing int

const (
	FacingTurn Facing = iota
	FacingLeft
	FacingRight
)

// AnimKey returns the animation key registered for the facing.
func (f Facing) AnimKey() string {
	switch f {
	case FacingLeft:
		return "left"
	case FacingRight:
		return "right"
	default:
		return "turn"
	}
}

// Player holds the state of the player that the physics body does not.
type Player struct {
	Facing Facing
	Hit    bool

	tint   color.RGBA
	tinted bool
}

// NewPlayer creates a player facing the camera.
func NewPlayer() *Player {
	return &Player{Facing: FacingTurn}
}

// SetTint multiplies the sprite colour by c.
func (p *Player) SetTint(c color.RGBA) {
	p.tint = c
	p.tinted = true
}

// ClearTint restores the sprite colours.
func (p *Player) ClearTint() {
	p.tint = color.RGBA{}
	p.tinted = false
}

// Tint returns the current tint and whether one is set.
func (p *Player) Tint() (color.RGBA, bool) {
	return p.tint, p.tinted
}
