// Package playing provides the main gameplay scene.
package playing

import (
	"errors"
	"image/color"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/younwookim/starcatcher/internal/application/eventbus"
	"github.com/younwookim/starcatcher/internal/application/replay"
	"github.com/younwookim/starcatcher/internal/application/scene"
	"github.com/younwookim/starcatcher/internal/application/state"
	"github.com/younwookim/starcatcher/internal/application/system"
	"github.com/younwookim/starcatcher/internal/infrastructure/config"
	"github.com/younwookim/starcatcher/internal/infrastructure/render"
)

var (
	colorCamera  = color.RGBA{0x00, 0xff, 0x00, 0xff}
	colorBanner  = color.RGBA{0xff, 0xff, 0xff, 0xff}
	colorStroke  = color.RGBA{0x00, 0x00, 0x00, 0xff}
	colorScore   = color.RGBA{0x00, 0x00, 0x00, 0xff}
	colorOverlay = color.RGBA{0, 0, 0, 150}
)

// ErrNoConfig is returned when the scene has no config to build a level from.
var ErrNoConfig = errors.New("playing: no config")

// Options configure one run.
type Options struct {
	Live     *config.Live
	Director scene.Director
	Scores   scene.ScoreBoard // nil skips score submission
	Bus      *eventbus.Bus
	Fonts    *render.Fonts

	// Input defaults to the keyboard.
	Input system.InputSource
	// Seed 0 picks one from the clock.
	Seed int64
	// RecordPath, when set, saves the run's input there on game over.
	RecordPath string
}

// Playing is the main gameplay scene
type Playing struct {
	opts Options

	cfg      *config.GameConfig
	stageCfg *config.StageConfig
	level    *system.Level
	state    state.GameState
	input    system.InputSource
	seed     int64
	err      error

	hitTimer float64
	result   *scene.Result
	recorder *Recorder
	offs     []func()

	textures *render.Textures
}

// New creates the scene. The level itself is built in OnEnter.
func New(opts Options) *Playing {
	input := opts.Input
	if input == nil {
		input = system.NewKeyboardInput()
	}
	return &Playing{opts: opts, input: input}
}

func (p *Playing) Name() string { return "playing" }

// OnEnter builds a fresh level from the current config snapshot.
func (p *Playing) OnEnter() {
	if p.level != nil {
		return
	}
	if p.opts.Live == nil {
		p.err = ErrNoConfig
		return
	}
	p.cfg, p.stageCfg = p.opts.Live.Snapshot()

	p.seed = p.opts.Seed
	if p.seed == 0 {
		p.seed = time.Now().UnixNano()
	}

	p.offs = append(p.offs,
		p.opts.Bus.On(eventbus.WaveCleared, func(v any) {
			log.Printf("[Playing] wave %v cleared", v)
		}),
		p.opts.Bus.On(eventbus.PlayerHit, func(v any) {
			log.Printf("[Playing] player hit, score %v", v)
		}),
	)

	stage := system.LoadStage(p.stageCfg, p.cfg.Platform)
	level, err := system.NewLevel(p.cfg, stage, rand.New(rand.NewSource(p.seed)), p.opts.Bus)
	if err != nil {
		p.err = err
		return
	}
	p.level = level
	p.state = state.StatePlaying

	if p.opts.RecordPath != "" {
		p.recorder = NewRecorder(p.seed, p.stageCfg.ID)
		log.Printf("[Playing] recording to %s (seed: %d)", p.opts.RecordPath, p.seed)
	}
	log.Printf("[Playing] stage %s (config v%d, seed %d)", p.stageCfg.ID, p.opts.Live.Version(), p.seed)
}

// OnExit drops the event subscriptions and saves an unfinished recording.
func (p *Playing) OnExit() {
	for _, off := range p.offs {
		off()
	}
	p.offs = nil
	if p.recorder != nil && p.recorder.IsRecording() {
		p.saveRecording()
	}
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(dt float64) (scene.Scene, error) {
	if p.level == nil && p.err == nil {
		p.OnEnter()
	}
	if p.err != nil {
		return nil, p.err
	}

	switch p.state {
	case state.StatePlaying, state.StatePaused:
		in, ok := p.input.Poll()
		if !ok {
			log.Printf("[Playing] input ended after %d frames", p.level.Frames())
			return p.finish(false), nil
		}
		if in.Pause {
			p.togglePause()
			return nil, nil
		}
		if !p.state.Simulating() {
			return nil, nil
		}
		if p.recorder != nil {
			p.recorder.RecordFrame(in)
		}
		p.level.Update(in, dt)
		if p.level.Over() {
			p.state = state.StateHit
			p.hitTimer = 0
		}
	case state.StateHit:
		p.hitTimer += dt
		if p.hitTimer >= p.cfg.GameOver.Delay {
			return p.finish(true), nil
		}
	}
	return nil, nil
}

func (p *Playing) togglePause() {
	if p.state == state.StatePaused {
		p.state = state.StatePlaying
		p.level.World().Resume()
	} else {
		p.state = state.StatePaused
		p.level.World().Pause()
	}
	log.Printf("[Playing] %s", p.state)
}

// finish ends the run and returns the game over scene. Only runs that
// ended with a hit count towards the best score.
func (p *Playing) finish(submit bool) scene.Scene {
	p.state = state.StateGameOver
	res := scene.Result{
		Score:  p.level.Score(),
		Waves:  p.level.Waves(),
		Frames: p.level.Frames(),
	}
	if p.opts.Scores != nil {
		if submit {
			rec, err := p.opts.Scores.Submit(res.Score)
			if err != nil {
				log.Printf("[Playing] Warning: failed to save score: %v", err)
			}
			res.NewRecord = rec
		}
		res.Best = p.opts.Scores.Best()
	}
	p.result = &res

	if p.recorder != nil {
		p.recorder.Finish(replay.Outcome{
			Score:  res.Score,
			Waves:  res.Waves,
			Hit:    p.level.Over(),
			Frames: res.Frames,
		})
		p.saveRecording()
	}

	if p.opts.Director == nil {
		return nil
	}
	return p.opts.Director.GameOver(res)
}

func (p *Playing) saveRecording() {
	p.recorder.Stop()
	if err := p.recorder.Save(p.opts.RecordPath); err != nil {
		log.Printf("[Playing] Failed to save recording: %v", err)
		return
	}
	log.Printf("[Playing] Recording saved: %s (%d frames)", p.opts.RecordPath, p.recorder.FrameCount())
}

// State returns the scene's state.
func (p *Playing) State() state.GameState { return p.state }

// Level returns the running level, nil before OnEnter.
func (p *Playing) Level() *system.Level { return p.level }

// Seed returns the seed of the current run.
func (p *Playing) Seed() int64 { return p.seed }

// Result returns the outcome once the run is over.
func (p *Playing) Result() (scene.Result, bool) {
	if p.result == nil {
		return scene.Result{}, false
	}
	return *p.result, true
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	if p.level == nil {
		return
	}
	if p.textures == nil {
		p.textures = render.NewTextures(p.cfg, p.stageCfg)
	}
	bg := p.stageCfg.Background
	screen.Fill(config.ColorOr(bg.Color, colorCamera))

	stage := p.level.Stage()
	render.Sprite{X: stage.Width / 2, Y: stage.Height / 2, Alpha: bg.Alpha}.Draw(screen, p.textures.Sky)

	for _, pl := range stage.Platforms {
		render.Sprite{X: pl.X, Y: pl.Y, ScaleX: pl.Scale, ScaleY: pl.Scale}.Draw(screen, p.textures.Ground)
	}
	for _, s := range p.level.Stars().Children() {
		if s.Active() {
			render.Sprite{X: s.X(), Y: s.Y()}.Draw(screen, p.textures.Star)
		}
	}
	for _, b := range p.level.Bombs().Children() {
		if b.Active() {
			render.Sprite{X: b.X(), Y: b.Y()}.Draw(screen, p.textures.Bomb)
		}
	}
	p.drawPlayer(screen)
	p.drawText(screen)

	if p.state == state.StatePaused {
		p.drawPauseOverlay(screen)
	}
}

func (p *Playing) drawPlayer(screen *ebiten.Image) {
	sp := render.Sprite{X: p.level.Player().X(), Y: p.level.Player().Y()}
	if tint, ok := p.level.Hero().Tint(); ok {
		sp.Tint = tint
	}
	sp.Draw(screen, p.textures.DudeFrame(p.level.Animator().Frame()))
}

func (p *Playing) drawText(screen *ebiten.Image) {
	if p.opts.Fonts == nil {
		ebitenutil.DebugPrintAt(screen, p.level.ScoreText(), 16, 16)
		return
	}
	b := p.stageCfg.Banner
	if b.Text != "" {
		p.opts.Fonts.Draw(screen, render.Label{
			Text:        b.Text,
			X:           b.X,
			Y:           b.Y,
			Size:        b.Size,
			Color:       config.ColorOr(b.Color, colorBanner),
			Centred:     true,
			Stroke:      config.ColorOr(b.Stroke, colorStroke),
			StrokeWidth: b.StrokeWidth,
		})
	}
	sc := p.stageCfg.Score
	p.opts.Fonts.Draw(screen, render.Label{
		Text:  p.level.ScoreText(),
		X:     sc.X,
		Y:     sc.Y,
		Size:  sc.Size,
		Color: config.ColorOr(sc.Color, colorScore),
	})
}

func (p *Playing) drawPauseOverlay(screen *ebiten.Image) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.FillRect(screen, 0, 0, float32(w), float32(h), colorOverlay, false)
	if p.opts.Fonts == nil {
		return
	}
	p.opts.Fonts.Draw(screen, render.Label{
		Text:    "PAUSED\nESC or P to resume",
		X:       float64(w) / 2,
		Y:       float64(h) / 2,
		Size:    32,
		Color:   colornames.White,
		Centred: true,
	})
}
