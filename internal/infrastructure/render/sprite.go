package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Sprite places an image by its centre.
type Sprite struct {
	X, Y           float64
	ScaleX, ScaleY float64
	Alpha          float64
	Tint           color.Color
}

// GeoM returns the transform that draws an image of w by h with its
// centre at X, Y. A zero scale counts as 1.
func (s Sprite) GeoM(w, h int) ebiten.GeoM {
	sx, sy := s.ScaleX, s.ScaleY
	if sx == 0 {
		sx = 1
	}
	if sy == 0 {
		sy = 1
	}
	var m ebiten.GeoM
	m.Translate(-float64(w)/2, -float64(h)/2)
	m.Scale(sx, sy)
	m.Translate(s.X, s.Y)
	return m
}

// Draw draws img onto dst.
func (s Sprite) Draw(dst, img *ebiten.Image) {
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{GeoM: s.GeoM(b.Dx(), b.Dy())}
	if s.Tint != nil {
		op.ColorScale.ScaleWithColor(s.Tint)
	}
	if s.Alpha > 0 && s.Alpha < 1 {
		op.ColorScale.ScaleAlpha(float32(s.Alpha))
	}
	dst.DrawImage(img, op)
}
