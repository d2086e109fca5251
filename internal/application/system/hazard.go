package system

import (
	"image/color"

	"github.com/younwookim/starcatcher/internal/application/eventbus"
	"github.com/younwookim/starcatcher/internal/domain/anim"
	"github.com/younwookim/starcatcher/internal/domain/entity"
	"github.com/younwookim/starcatcher/internal/infrastructure/physics"
)

// HazardSystem ends the level when the player touches a bomb
type HazardSystem struct {
	world *physics.World
	tint  color.RGBA
	bus   *eventbus.Bus
}

// NewHazardSystem creates a new hazard system
func NewHazardSystem(world *physics.World, tint color.RGBA, bus *eventbus.Bus) *HazardSystem {
	return &HazardSystem{world: world, tint: tint, bus: bus}
}

// Hit freezes the world and marks the player as hit. Further hits are ignored.
func (s *HazardSystem) Hit(player *entity.Player, animator *anim.Animator, score int) bool {
	if player.Hit {
		return false
	}
	s.world.Pause()

	player.Hit = true
	player.SetTint(s.tint)
	player.Facing = entity.FacingTurn
	_ = animator.Play(player.Facing.AnimKey(), false)

	s.bus.Emit(eventbus.PlayerHit, score)
	return true
}
