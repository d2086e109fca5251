package render

import (
	"bytes"
	"fmt"
	"image/color"
	"math"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// Fonts caches Go Regular faces by size.
type Fonts struct {
	mu     sync.Mutex
	source *text.GoTextFaceSource
	faces  map[float64]*text.GoTextFace
}

func NewFonts() (*Fonts, error) {
	s, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	return &Fonts{source: s, faces: make(map[float64]*text.GoTextFace)}, nil
}

func (f *Fonts) Face(size float64) *text.GoTextFace {
	f.mu.Lock()
	defer f.mu.Unlock()
	face, ok := f.faces[size]
	if !ok {
		face = &text.GoTextFace{Source: f.source, Size: size}
		f.faces[size] = face
	}
	return face
}

// Label describes one piece of text on screen.
type Label struct {
	Text  string
	X, Y  float64
	Size  float64
	Color color.Color

	// Centred draws the text centred on X, Y instead of from its top left.
	Centred bool

	Stroke      color.Color
	StrokeWidth float64
}

// Draw draws l. A stroke is drawn as offset copies under the fill.
func (f *Fonts) Draw(dst *ebiten.Image, l Label) {
	face := f.Face(l.Size)
	if l.Stroke != nil && l.StrokeWidth > 0 {
		for _, o := range StrokeOffsets(l.StrokeWidth / 2) {
			f.drawAt(dst, face, l, l.X+o[0], l.Y+o[1], l.Stroke)
		}
	}
	f.drawAt(dst, face, l, l.X, l.Y, l.Color)
}

func (f *Fonts) drawAt(dst *ebiten.Image, face *text.GoTextFace, l Label, x, y float64, c color.Color) {
	op := &text.DrawOptions{}
	op.LineSpacing = l.Size * 1.2
	if l.Centred {
		op.PrimaryAlign = text.AlignCenter
		op.SecondaryAlign = text.AlignCenter
	}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(dst, l.Text, face, op)
}

// StrokeOffsets returns eight offsets around the origin at radius r.
func StrokeOffsets(r float64) [][2]float64 {
	if r <= 0 {
		return nil
	}
	out := make([][2]float64, 0, 8)
	for i := 0; i < 8; i++ {
		a := float64(i) * math.Pi / 4
		out = append(out, [2]float64{
			math.Round(r*math.Cos(a)*1000) / 1000,
			math.Round(r*math.Sin(a)*1000) / 1000,
		})
	}
	return out
}
