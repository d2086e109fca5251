// Package gameover provides the scene shown after a run ends.
package gameover

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/colornames"

	"github.com/younwookim/starcatcher/internal/application/scene"
	"github.com/younwookim/starcatcher/internal/infrastructure/render"
)

var colorBG = color.RGBA{0x2e, 0x1a, 0x1a, 0xff}

// GameOver shows the result of a run. SPACE retries and ESC goes back to
// the menu.
type GameOver struct {
	result   scene.Result
	director scene.Director
	fonts    *render.Fonts
	keys     scene.KeyFunc
}

func New(result scene.Result, director scene.Director, fonts *render.Fonts) *GameOver {
	return &GameOver{
		result:   result,
		director: director,
		fonts:    fonts,
		keys:     scene.JustPressed,
	}
}

func (g *GameOver) Name() string { return "gameover" }
func (g *GameOver) OnEnter()     {}
func (g *GameOver) OnExit()      {}

func (g *GameOver) Update(float64) (scene.Scene, error) {
	switch {
	case g.keys(ebiten.KeySpace), g.keys(ebiten.KeyEnter):
		return g.director.Playing(), nil
	case g.keys(ebiten.KeyEscape):
		return g.director.Menu(), nil
	}
	return nil, nil
}

func (g *GameOver) Result() scene.Result { return g.result }

// Lines returns the summary text.
func (g *GameOver) Lines() []string {
	r := g.result
	lines := []string{
		fmt.Sprintf("Score: %d", r.Score),
		fmt.Sprintf("Best: %d", r.Best),
	}
	if r.NewRecord {
		lines = append(lines, "New record!")
	}
	lines = append(lines,
		fmt.Sprintf("Waves cleared: %d", r.Waves),
		"SPACE to retry, ESC for the menu",
	)
	return lines
}

func (g *GameOver) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)
	if g.fonts == nil {
		return
	}
	w, h := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	g.fonts.Draw(screen, render.Label{
		Text:        "GAME OVER",
		X:           w / 2,
		Y:           h / 3,
		Size:        64,
		Color:       colornames.Red,
		Centred:     true,
		Stroke:      colornames.Black,
		StrokeWidth: 8,
	})
	for i, line := range g.Lines() {
		g.fonts.Draw(screen, render.Label{
			Text:    line,
			X:       w / 2,
			Y:       h/2 + float64(i)*40,
			Size:    28,
			Color:   colornames.White,
			Centred: true,
		})
	}
}
