package config

// StageConfig is the root config for stage YAML files
type StageConfig struct {
	ID          string           `yaml:"id"`
	Name        string           `yaml:"name"`
	World       SizeConfig       `yaml:"world"`
	Background  BackgroundConfig `yaml:"background"`
	Banner      BannerConfig     `yaml:"banner"`
	Score       TextConfig       `yaml:"score"`
	PlayerSpawn PositionConfig   `yaml:"playerSpawn"`
	Platforms   []PlatformConfig `yaml:"platforms"`
	Stars       StarRowConfig    `yaml:"stars"`
}

type BackgroundConfig struct {
	Color string  `yaml:"color"` // camera clear colour
	Tint  string  `yaml:"tint"`  // backdrop image colour
	Alpha float64 `yaml:"alpha"`
}

type BannerConfig struct {
	Text        string  `yaml:"text"`
	X           float64 `yaml:"x"`
	Y           float64 `yaml:"y"`
	Size        float64 `yaml:"size"`
	Color       string  `yaml:"color"`
	Stroke      string  `yaml:"stroke"`
	StrokeWidth float64 `yaml:"strokeWidth"`
}

type TextConfig struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Size  float64 `yaml:"size"`
	Color string  `yaml:"color"`
}

type PositionConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// PlatformConfig places one static platform by its centre.
type PlatformConfig struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Scale float64 `yaml:"scale,omitempty"`
}

// StarRowConfig lays out Repeat+1 stars starting at (X, Y), StepX apart.
type StarRowConfig struct {
	Repeat int     `yaml:"repeat"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	StepX  float64 `yaml:"stepX"`
}
