package system

import (
	"github.com/younwookim/starcatcher/internal/domain/entity"
	"github.com/younwookim/starcatcher/internal/infrastructure/config"
)

// LoadStage converts a StageConfig into a Stage entity. Platform sizes come
// from the game config's base platform scaled per entry.
func LoadStage(cfg *config.StageConfig, platform config.SizeConfig) *entity.Stage {
	platforms := make([]entity.Platform, 0, len(cfg.Platforms))
	for _, p := range cfg.Platforms {
		scale := p.Scale
		if scale <= 0 {
			scale = 1
		}
		platforms = append(platforms, entity.Platform{
			X:      p.X,
			Y:      p.Y,
			Width:  platform.Width * scale,
			Height: platform.Height * scale,
			Scale:  scale,
		})
	}

	return &entity.Stage{
		ID:        cfg.ID,
		Name:      cfg.Name,
		Width:     cfg.World.Width,
		Height:    cfg.World.Height,
		Spawn:     entity.Point{X: cfg.PlayerSpawn.X, Y: cfg.PlayerSpawn.Y},
		Platforms: platforms,
		Stars: entity.StarRow{
			Count: cfg.Stars.Repeat + 1,
			X:     cfg.Stars.X,
			Y:     cfg.Stars.Y,
			StepX: cfg.Stars.StepX,
		},
	}
}
