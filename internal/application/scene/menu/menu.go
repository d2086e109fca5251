// Package menu provides the title scene.
package menu

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/colornames"

	"github.com/younwookim/starcatcher/internal/application/scene"
	"github.com/younwookim/starcatcher/internal/infrastructure/render"
)

var colorBG = color.RGBA{0x1a, 0x1a, 0x2e, 0xff}

// Menu shows the title and the best score. SPACE starts a run and ESC
// quits the game.
type Menu struct {
	title    string
	director scene.Director
	scores   scene.ScoreBoard
	fonts    *render.Fonts
	keys     scene.KeyFunc
}

func New(title string, director scene.Director, scores scene.ScoreBoard, fonts *render.Fonts) *Menu {
	return &Menu{
		title:    title,
		director: director,
		scores:   scores,
		fonts:    fonts,
		keys:     scene.JustPressed,
	}
}

func (m *Menu) Name() string { return "menu" }
func (m *Menu) OnEnter()     {}
func (m *Menu) OnExit()      {}

func (m *Menu) Update(float64) (scene.Scene, error) {
	switch {
	case m.keys(ebiten.KeySpace), m.keys(ebiten.KeyEnter):
		return m.director.Playing(), nil
	case m.keys(ebiten.KeyEscape):
		return nil, ebiten.Termination
	}
	return nil, nil
}

// Lines returns the text shown under the title.
func (m *Menu) Lines() []string {
	lines := []string{"Press SPACE to start", "ESC to quit"}
	if m.scores != nil && m.scores.Runs() > 0 {
		lines = append([]string{fmt.Sprintf("Best: %d", m.scores.Best())}, lines...)
	}
	return lines
}

func (m *Menu) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)
	if m.fonts == nil {
		return
	}
	w, h := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	m.fonts.Draw(screen, render.Label{
		Text:        m.title,
		X:           w / 2,
		Y:           h / 3,
		Size:        64,
		Color:       colornames.Gold,
		Centred:     true,
		Stroke:      colornames.Black,
		StrokeWidth: 8,
	})
	for i, line := range m.Lines() {
		m.fonts.Draw(screen, render.Label{
			Text:    line,
			X:       w / 2,
			Y:       h/2 + float64(i)*40,
			Size:    28,
			Color:   colornames.White,
			Centred: true,
		})
	}
}
