package system

import (
	"github.com/younwookim/starcatcher/internal/domain/anim"
	"github.com/younwookim/starcatcher/internal/domain/entity"
	"github.com/younwookim/starcatcher/internal/infrastructure/config"
	"github.com/younwookim/starcatcher/internal/infrastructure/physics"
)

// MovementSystem maps the held keys to the player's velocity and animation
type MovementSystem struct {
	runSpeed  float64
	jumpSpeed float64
}

// NewMovementSystem creates a new movement system
func NewMovementSystem(cfg config.PlayerConfig) *MovementSystem {
	return &MovementSystem{runSpeed: cfg.RunSpeed, jumpSpeed: cfg.JumpSpeed}
}

// Apply sets the horizontal velocity every frame. Left wins over right.
// A jump only starts while the body stands on something.
func (s *MovementSystem) Apply(body *physics.Body, player *entity.Player, animator *anim.Animator, input InputState) {
	switch {
	case input.Left:
		body.SetVelocityX(-s.runSpeed)
		player.Facing = entity.FacingLeft
		_ = animator.Play(player.Facing.AnimKey(), true)
	case input.Right:
		body.SetVelocityX(s.runSpeed)
		player.Facing = entity.FacingRight
		_ = animator.Play(player.Facing.AnimKey(), true)
	default:
		body.SetVelocityX(0)
		player.Facing = entity.FacingTurn
		_ = animator.Play(player.Facing.AnimKey(), false)
	}

	if input.Up && body.OnFloor() {
		body.SetVelocityY(-s.jumpSpeed)
	}
}
