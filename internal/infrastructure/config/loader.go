package config

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"os"
	"path"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is returned when a config file parses but fails validation.
var ErrInvalid = errors.New("invalid config")

// ErrNoStage is returned when a stage is requested without a name.
var ErrNoStage = errors.New("no stage name")

// Loader loads game configuration from YAML files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// LoadGame loads game.yaml
func (l *Loader) LoadGame() (*GameConfig, error) {
	var cfg GameConfig
	if err := l.decode("game.yaml", &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("game.yaml: %w", err)
	}
	return &cfg, nil
}

// LoadStage loads a stage YAML file
func (l *Loader) LoadStage(name string) (*StageConfig, error) {
	if name == "" {
		return nil, ErrNoStage
	}
	file := "stages/" + strings.TrimSuffix(name, ".yaml") + ".yaml"

	var cfg StageConfig
	if err := l.decode(file, &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("stage %s: %w", name, err)
	}
	return &cfg, nil
}

func (l *Loader) decode(file string, out any) error {
	data, err := fs.ReadFile(l.fsys, file)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path.Join(l.basePath, file), err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", file, err)
	}
	return nil
}

// Validate checks the values the level cannot run without.
func (c *GameConfig) Validate() error {
	switch {
	case c.Display.ScreenWidth <= 0 || c.Display.ScreenHeight <= 0:
		return fmt.Errorf("%w: display size must be positive", ErrInvalid)
	case c.Display.Framerate <= 0:
		return fmt.Errorf("%w: framerate must be positive", ErrInvalid)
	case c.Player.Frame.Width <= 0 || c.Player.Frame.Height <= 0:
		return fmt.Errorf("%w: player frame size must be positive", ErrInvalid)
	case c.Stars.Points <= 0:
		return fmt.Errorf("%w: star points must be positive", ErrInvalid)
	case c.Stars.BounceMin > c.Stars.BounceMax:
		return fmt.Errorf("%w: star bounceMin > bounceMax", ErrInvalid)
	case c.Bombs.MinX > c.Bombs.SplitX || c.Bombs.SplitX > c.Bombs.MaxX:
		return fmt.Errorf("%w: bomb splitX must lie within [minX, maxX]", ErrInvalid)
	case c.Bombs.MinSpeed > c.Bombs.MaxSpeed:
		return fmt.Errorf("%w: bomb minSpeed > maxSpeed", ErrInvalid)
	case c.Platform.Width <= 0 || c.Platform.Height <= 0:
		return fmt.Errorf("%w: platform size must be positive", ErrInvalid)
	}
	for _, a := range c.Animations {
		if a.Key == "" {
			return fmt.Errorf("%w: animation without key", ErrInvalid)
		}
	}
	if _, err := ParseColor(c.Player.HitTint); err != nil {
		return fmt.Errorf("player hitTint: %w", err)
	}
	return nil
}

// Validate checks stage geometry.
func (c *StageConfig) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("%w: stage without id", ErrInvalid)
	}
	if c.World.Width <= 0 || c.World.Height <= 0 {
		return fmt.Errorf("%w: world size must be positive", ErrInvalid)
	}
	if c.Stars.Repeat < 0 {
		return fmt.Errorf("%w: star repeat must not be negative", ErrInvalid)
	}
	for _, s := range []string{c.Background.Color, c.Background.Tint, c.Banner.Color, c.Banner.Stroke, c.Score.Color} {
		if s == "" {
			continue
		}
		if _, err := ParseColor(s); err != nil {
			return err
		}
	}
	return nil
}

// ParseColor parses "#rrggbb", "#rrggbbaa" or "0xrrggbb".
func ParseColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimPrefix(s, "#"), "0x")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("%w: bad colour %q", ErrInvalid, s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: bad colour %q", ErrInvalid, s)
	}
	if len(hex) == 6 {
		return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// ColorOr is ParseColor for values that already passed validation.
// An unparsable value falls back to fallback.
func ColorOr(s string, fallback color.RGBA) color.RGBA {
	c, err := ParseColor(s)
	if err != nil {
		return fallback
	}
	return c
}
