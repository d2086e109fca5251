package system

import (
	"math/rand"

	"github.com/younwookim/starcatcher/internal/application/eventbus"
	"github.com/younwookim/starcatcher/internal/domain/entity"
	"github.com/younwookim/starcatcher/internal/infrastructure/config"
	"github.com/younwookim/starcatcher/internal/infrastructure/physics"
)

// CollectSystem scores stars and spawns a bomb every time the row is cleared
type CollectSystem struct {
	world *physics.World
	stars *physics.Group
	bombs *physics.Group
	score *entity.Score
	rng   *rand.Rand
	bus   *eventbus.Bus

	bomb  config.BombConfig
	starY float64
	waves int
}

// NewCollectSystem creates a new collect system
func NewCollectSystem(world *physics.World, stars, bombs *physics.Group, score *entity.Score,
	bomb config.BombConfig, starY float64, rng *rand.Rand, bus *eventbus.Bus) *CollectSystem {
	return &CollectSystem{
		world: world,
		stars: stars,
		bombs: bombs,
		score: score,
		rng:   rng,
		bus:   bus,
		bomb:  bomb,
		starY: starY,
	}
}

// Collect takes star out of play and scores it. It returns false for a star
// that was already collected.
func (s *CollectSystem) Collect(player, star *physics.Body) bool {
	if !star.Active() {
		return false
	}
	s.world.Disable(star)
	s.bus.Emit(eventbus.ScoreChanged, s.score.Collect())

	if s.stars.CountActive() == 0 {
		s.nextWave(player.X())
	}
	return true
}

func (s *CollectSystem) nextWave(playerX float64) {
	for _, star := range s.stars.Children() {
		s.world.Enable(star, star.X(), s.starY)
	}
	s.waves++
	s.bus.Emit(eventbus.WaveCleared, s.waves)

	s.SpawnBomb(playerX)
}

// SpawnBomb drops a bomb on the half of the world away from playerX.
func (s *CollectSystem) SpawnBomb(playerX float64) *physics.Body {
	b := s.bomb
	var x int
	if playerX < float64(b.SplitX) {
		x = Between(s.rng, b.SplitX, b.MaxX)
	} else {
		x = Between(s.rng, b.MinX, b.SplitX)
	}

	bomb := s.world.AddDynamic(physics.KindBomb, float64(x), b.SpawnY, b.Size.Width, b.Size.Height,
		physics.BodyOptions{Bounce: b.Bounce, CollideWorldBounds: true})
	bomb.SetVelocity(float64(Between(s.rng, b.MinSpeed, b.MaxSpeed)), b.DropVY)
	s.bombs.Add(bomb)

	s.bus.Emit(eventbus.BombSpawned, s.bombs.Len())
	return bomb
}

// Waves returns how many times the star row has been cleared.
func (s *CollectSystem) Waves() int {
	return s.waves
}
