package config

// GameConfig is the root config for game.yaml
type GameConfig struct {
	Display    DisplayConfig     `yaml:"display"`
	Physics    PhysicsSettings   `yaml:"physics"`
	Player     PlayerConfig      `yaml:"player"`
	Stars      StarConfig        `yaml:"stars"`
	Bombs      BombConfig        `yaml:"bombs"`
	Platform   SizeConfig        `yaml:"platform"`
	Animations []AnimationConfig `yaml:"animations"`
	GameOver   GameOverConfig    `yaml:"gameOver"`
	Save       SaveConfig        `yaml:"save"`
}

type DisplayConfig struct {
	Title        string `yaml:"title"`
	ScreenWidth  int    `yaml:"screenWidth"`
	ScreenHeight int    `yaml:"screenHeight"`
	Scale        int    `yaml:"scale"`
	Framerate    int    `yaml:"framerate"`
}

// PhysicsSettings configures the Chipmunk space.
type PhysicsSettings struct {
	Gravity    float64 `yaml:"gravity"`    // pixels/sec², +Y is down
	Substeps   int     `yaml:"substeps"`   // space steps per frame
	Iterations int     `yaml:"iterations"` // solver iterations
}

type PlayerConfig struct {
	Frame     SizeConfig `yaml:"frame"`
	Bounce    float64    `yaml:"bounce"`
	RunSpeed  float64    `yaml:"runSpeed"`  // pixels/sec
	JumpSpeed float64    `yaml:"jumpSpeed"` // pixels/sec, applied upwards
	HitTint   string     `yaml:"hitTint"`
}

type StarConfig struct {
	Size      SizeConfig `yaml:"size"`
	Points    int        `yaml:"points"`
	BounceMin float64    `yaml:"bounceMin"`
	BounceMax float64    `yaml:"bounceMax"`
}

// BombConfig describes the hazard spawned each time the star row is cleared.
type BombConfig struct {
	Size     SizeConfig `yaml:"size"`
	Bounce   float64    `yaml:"bounce"`
	SpawnY   float64    `yaml:"spawnY"`
	SplitX   int        `yaml:"splitX"` // spawn on the opposite side of this line from the player
	MinX     int        `yaml:"minX"`
	MaxX     int        `yaml:"maxX"`
	MinSpeed int        `yaml:"minSpeed"`
	MaxSpeed int        `yaml:"maxSpeed"`
	DropVY   float64    `yaml:"dropVY"`
}

type SizeConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// AnimationConfig registers one player animation.
// Either Frames or Start/End is used; Frames wins when set.
type AnimationConfig struct {
	Key       string `yaml:"key"`
	Start     int    `yaml:"start"`
	End       int    `yaml:"end"`
	Frames    []int  `yaml:"frames"`
	FrameRate int    `yaml:"frameRate"`
	Repeat    int    `yaml:"repeat"` // -1 loops forever
}

type GameOverConfig struct {
	Delay float64 `yaml:"delay"` // seconds between the hit and the scene change
}

type SaveConfig struct {
	AppName string `yaml:"appName"`
}
