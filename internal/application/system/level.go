package system

import (
	"fmt"
	"image/color"
	"math/rand"

	"github.com/younwookim/starcatcher/internal/application/eventbus"
	"github.com/younwookim/starcatcher/internal/domain/anim"
	"github.com/younwookim/starcatcher/internal/domain/entity"
	"github.com/younwookim/starcatcher/internal/infrastructure/config"
	"github.com/younwookim/starcatcher/internal/infrastructure/physics"
)

var hitTintFallback = color.RGBA{0xff, 0x00, 0x00, 0xff}

// Level is one run of a stage: the physics world, the player, the
// platforms, the stars and the bombs, plus the systems that glue them.
type Level struct {
	stage *entity.Stage
	world *physics.World
	bus   *eventbus.Bus

	player    *physics.Body
	hero      *entity.Player
	platforms *physics.Group
	stars     *physics.Group
	bombs     *physics.Group

	anims    *anim.Registry
	animator *anim.Animator
	score    *entity.Score

	movement *MovementSystem
	collect  *CollectSystem
	hazard   *HazardSystem

	frames int
}

// NewLevel builds the level and announces it on bus.
// All randomness is drawn from rng so a seed reproduces a run.
func NewLevel(cfg *config.GameConfig, stage *entity.Stage, rng *rand.Rand, bus *eventbus.Bus) (*Level, error) {
	anims, err := NewAnimations(cfg.Animations)
	if err != nil {
		return nil, err
	}

	world := physics.NewWorld(physics.Settings{
		Gravity:    cfg.Physics.Gravity,
		Substeps:   cfg.Physics.Substeps,
		Iterations: cfg.Physics.Iterations,
		Width:      stage.Width,
		Height:     stage.Height,
	})

	l := &Level{
		stage:     stage,
		world:     world,
		bus:       bus,
		hero:      entity.NewPlayer(),
		platforms: physics.NewGroup(physics.KindPlatform),
		stars:     physics.NewGroup(physics.KindStar),
		bombs:     physics.NewGroup(physics.KindBomb),
		anims:     anims,
		animator:  anim.NewAnimator(anims),
		score:     entity.NewScore(cfg.Stars.Points),
		movement:  NewMovementSystem(cfg.Player),
	}

	for _, p := range stage.Platforms {
		l.platforms.Add(world.AddStatic(physics.KindPlatform, p.X, p.Y, p.Width, p.Height))
	}

	frame := cfg.Player.Frame
	l.player = world.AddDynamic(physics.KindPlayer, stage.Spawn.X, stage.Spawn.Y, frame.Width, frame.Height,
		physics.BodyOptions{Bounce: cfg.Player.Bounce, CollideWorldBounds: true})

	star := cfg.Stars
	for _, pos := range stage.Stars.Positions() {
		l.stars.Add(world.AddDynamic(physics.KindStar, pos.X, pos.Y, star.Size.Width, star.Size.Height,
			physics.BodyOptions{Bounce: FloatBetween(rng, star.BounceMin, star.BounceMax)}))
	}

	world.Collider(physics.KindStar, physics.KindPlatform, false)
	world.Collider(physics.KindPlayer, physics.KindPlatform, false)
	world.Collider(physics.KindBomb, physics.KindPlatform, false)
	world.Overlap(physics.KindPlayer, physics.KindStar)
	world.Collider(physics.KindPlayer, physics.KindBomb, true)

	l.collect = NewCollectSystem(world, l.stars, l.bombs, l.score, cfg.Bombs, stage.Stars.Y, rng, bus)
	l.hazard = NewHazardSystem(world, config.ColorOr(cfg.Player.HitTint, hitTintFallback), bus)

	_ = l.animator.Play(entity.FacingTurn.AnimKey(), false)

	bus.Emit(eventbus.CurrentSceneReady, l)
	return l, nil
}

// NewAnimations registers the configured animations.
func NewAnimations(cfgs []config.AnimationConfig) (*anim.Registry, error) {
	r := anim.NewRegistry()
	for _, c := range cfgs {
		frames := c.Frames
		if len(frames) == 0 {
			frames = anim.GenerateFrameNumbers(c.Start, c.End)
		}
		err := r.Create(anim.Animation{
			Key:       c.Key,
			Frames:    frames,
			FrameRate: float64(c.FrameRate),
			Repeat:    c.Repeat,
		})
		if err != nil {
			return nil, fmt.Errorf("animation %q: %w", c.Key, err)
		}
	}
	return r, nil
}

// Update runs one frame: input, physics, then the contact callbacks.
// It does nothing once the player has been hit.
func (l *Level) Update(input InputState, dt float64) {
	if l.hero.Hit {
		return
	}
	l.frames++

	l.movement.Apply(l.player, l.hero, l.animator, input)

	for _, c := range l.world.Step(dt) {
		if c.A != l.player && c.B != l.player {
			continue
		}
		other := c.Other(l.player)
		switch other.Kind() {
		case physics.KindStar:
			if l.stars.Contains(other) {
				l.collect.Collect(l.player, other)
			}
		case physics.KindBomb:
			l.hazard.Hit(l.hero, l.animator, l.score.Value())
		}
		if l.hero.Hit {
			break
		}
	}

	l.animator.Update(dt)
}

// Over reports whether the player has been hit.
func (l *Level) Over() bool { return l.hero.Hit }

func (l *Level) Score() int { return l.score.Value() }
func (l *Level) ScoreText() string { return l.score.Text() }
func (l *Level) Waves() int { return l.collect.Waves() }
func (l *Level) Frames() int { return l.frames }
func (l *Level) Stage() *entity.Stage { return l.stage }

func (l *Level) World() *physics.World { return l.world }
func (l *Level) Player() *physics.Body { return l.player }
func (l *Level) Hero() *entity.Player { return l.hero }
func (l *Level) Platforms() *physics.Group { return l.platforms }
func (l *Level) Stars() *physics.Group { return l.stars }
func (l *Level) Bombs() *physics.Group { return l.bombs }
func (l *Level) Animator() *anim.Animator { return l.animator }
func (l *Level) Animations() *anim.Registry { return l.anims }
