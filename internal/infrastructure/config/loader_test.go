package config

import (
	"image/color"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_LoadGame(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	cfg, err := loader.LoadGame()
	require.NoError(t, err)

	assert.Equal(t, 1024, cfg.Display.ScreenWidth)
	assert.Equal(t, 768, cfg.Display.ScreenHeight)
	assert.Equal(t, 60, cfg.Display.Framerate)
	assert.Equal(t, 300.0, cfg.Physics.Gravity)
	assert.Equal(t, 160.0, cfg.Player.RunSpeed)
	assert.Equal(t, 330.0, cfg.Player.JumpSpeed)
	assert.Equal(t, 0.2, cfg.Player.Bounce)
	assert.Equal(t, 10, cfg.Stars.Points)
	assert.Equal(t, 1.0, cfg.Bombs.Bounce)
	assert.Equal(t, 400, cfg.Bombs.SplitX)

	require.Len(t, cfg.Animations, 3)
	assert.Equal(t, "left", cfg.Animations[0].Key)
	assert.Equal(t, -1, cfg.Animations[0].Repeat)
	assert.Equal(t, []int{4}, cfg.Animations[1].Frames)
}

func TestLoader_LoadStage(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	cfg, err := loader.LoadStage("level1")
	require.NoError(t, err)

	assert.Equal(t, "level1", cfg.ID)
	assert.Equal(t, 100.0, cfg.PlayerSpawn.X)
	assert.Equal(t, 450.0, cfg.PlayerSpawn.Y)
	require.Len(t, cfg.Platforms, 4)
	assert.Equal(t, 2.0, cfg.Platforms[0].Scale)
	assert.Equal(t, 0.0, cfg.Platforms[1].Scale)
	assert.Equal(t, 11, cfg.Stars.Repeat)
	assert.Equal(t, 70.0, cfg.Stars.StepX)
	assert.Equal(t, 0.5, cfg.Background.Alpha)
}

func TestLoader_LoadStage_AcceptsExtension(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	cfg, err := loader.LoadStage("level1.yaml")
	require.NoError(t, err)
	assert.Equal(t, "level1", cfg.ID)
}

func TestLoader_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		loader := NewFSLoader(fstest.MapFS{}, "mem")
		_, err := loader.LoadGame()
		assert.ErrorContains(t, err, "mem/game.yaml")
	})

	t.Run("empty stage name", func(t *testing.T) {
		loader := NewFSLoader(fstest.MapFS{}, "mem")
		_, err := loader.LoadStage("")
		assert.ErrorIs(t, err, ErrNoStage)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		loader := NewFSLoader(fstest.MapFS{
			"stages/bad.yaml": {Data: []byte("world: [1, 2")},
		}, "mem")
		_, err := loader.LoadStage("bad")
		assert.Error(t, err)
	})

	t.Run("invalid stage", func(t *testing.T) {
		loader := NewFSLoader(fstest.MapFS{
			"stages/empty.yaml": {Data: []byte("id: empty\nworld: {width: 0, height: 10}\n")},
		}, "mem")
		_, err := loader.LoadStage("empty")
		assert.ErrorIs(t, err, ErrInvalid)
	})

	t.Run("stage without id", func(t *testing.T) {
		loader := NewFSLoader(fstest.MapFS{
			"stages/anon.yaml": {Data: []byte("world: {width: 800, height: 600}\n")},
		}, "mem")
		_, err := loader.LoadStage("anon")
		assert.ErrorIs(t, err, ErrInvalid)
	})
}

func TestGameConfig_Validate(t *testing.T) {
	valid := func() GameConfig {
		return GameConfig{
			Display:  DisplayConfig{ScreenWidth: 800, ScreenHeight: 600, Framerate: 60},
			Player:   PlayerConfig{Frame: SizeConfig{Width: 32, Height: 48}, HitTint: "#ff0000"},
			Stars:    StarConfig{Points: 10, BounceMin: 0.4, BounceMax: 0.8},
			Bombs:    BombConfig{MinX: 0, SplitX: 400, MaxX: 800, MinSpeed: -200, MaxSpeed: 200},
			Platform: SizeConfig{Width: 400, Height: 32},
		}
	}

	cfg := valid()
	require.NoError(t, cfg.Validate())

	tests := []struct {
		name   string
		mutate func(*GameConfig)
	}{
		{"zero framerate", func(c *GameConfig) { c.Display.Framerate = 0 }},
		{"no points", func(c *GameConfig) { c.Stars.Points = 0 }},
		{"bounce range inverted", func(c *GameConfig) { c.Stars.BounceMin = 0.9 }},
		{"split outside range", func(c *GameConfig) { c.Bombs.SplitX = 900 }},
		{"speed range inverted", func(c *GameConfig) { c.Bombs.MinSpeed = 300 }},
		{"empty animation key", func(c *GameConfig) { c.Animations = []AnimationConfig{{FrameRate: 10}} }},
		{"bad tint", func(c *GameConfig) { c.Player.HitTint = "red" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(&c)
			assert.ErrorIs(t, c.Validate(), ErrInvalid)
		})
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
		ok   bool
	}{
		{"#00ff00", color.RGBA{0, 255, 0, 255}, true},
		{"0xff0000", color.RGBA{255, 0, 0, 255}, true},
		{"#10203040", color.RGBA{0x10, 0x20, 0x30, 0x40}, true},
		{"#fff", color.RGBA{}, false},
		{"#gg0000", color.RGBA{}, false},
		{"", color.RGBA{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if !tt.ok {
				assert.ErrorIs(t, err, ErrInvalid)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestColorOr(t *testing.T) {
	fallback := color.RGBA{1, 2, 3, 4}
	assert.Equal(t, fallback, ColorOr("nope", fallback))
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, ColorOr("#000000", fallback))
}
