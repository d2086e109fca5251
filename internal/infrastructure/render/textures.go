// Package render draws the level with procedurally generated textures.
package render

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/younwookim/starcatcher/internal/infrastructure/config"
)

// DudeFrames is the number of frames in the player sheet: four running
// left, one facing the camera, four running right.
const DudeFrames = 9

// Textures holds every image the level draws.
type Textures struct {
	Sky    *ebiten.Image
	Ground *ebiten.Image
	Star   *ebiten.Image
	Bomb   *ebiten.Image
	Dude   *ebiten.Image

	frameW, frameH int
}

// NewTextures draws the textures at the sizes the config asks for.
func NewTextures(cfg *config.GameConfig, stage *config.StageConfig) *Textures {
	t := &Textures{
		frameW: int(cfg.Player.Frame.Width),
		frameH: int(cfg.Player.Frame.Height),
	}
	t.Sky = drawSky(int(stage.World.Width), int(stage.World.Height),
		config.ColorOr(stage.Background.Tint, color.RGBA{0x1a, 0x1a, 0x2e, 0xff}))
	t.Ground = drawGround(int(cfg.Platform.Width), int(cfg.Platform.Height))
	t.Star = drawStar(int(cfg.Stars.Size.Width), int(cfg.Stars.Size.Height))
	t.Bomb = drawBomb(int(cfg.Bombs.Size.Width), int(cfg.Bombs.Size.Height))
	t.Dude = drawDude(t.frameW, t.frameH)
	return t
}

// FrameRect returns the sheet rectangle of frame i for frames of w by h
// laid out in one row. Out of range frames clamp to the sheet.
func FrameRect(i, w, h int) image.Rectangle {
	if i < 0 {
		i = 0
	}
	if i >= DudeFrames {
		i = DudeFrames - 1
	}
	return image.Rect(i*w, 0, (i+1)*w, h)
}

// DudeFrame returns frame i of the player sheet.
func (t *Textures) DudeFrame(i int) *ebiten.Image {
	return t.Dude.SubImage(FrameRect(i, t.frameW, t.frameH)).(*ebiten.Image)
}

func drawSky(w, h int, tint color.Color) *ebiten.Image {
	img := ebiten.NewImage(w, h)
	img.Fill(tint)
	for i := 0; i < 60; i++ {
		// fixed pattern so every run looks the same
		x := float32((i*373 + 91) % w)
		y := float32((i*157 + 37) % (h * 2 / 3))
		r := float32(1 + i%3)
		vector.FillCircle(img, x, y, r, colornames.Lightsteelblue, true)
	}
	return img
}

func drawGround(w, h int) *ebiten.Image {
	img := ebiten.NewImage(w, h)
	img.Fill(colornames.Saddlebrown)
	vector.FillRect(img, 0, 0, float32(w), float32(h)/4, colornames.Forestgreen, false)
	for x := 0; x < w; x += 16 {
		vector.StrokeLine(img, float32(x), float32(h)/4, float32(x+8), float32(h), 1, colornames.Sienna, false)
	}
	return img
}

func drawStar(w, h int) *ebiten.Image {
	img := ebiten.NewImage(w, h)
	cx, cy := float32(w)/2, float32(h)/2
	outer := float32(math.Min(float64(w), float64(h))) / 2
	inner := outer * 0.45

	var path vector.Path
	for i := 0; i < 10; i++ {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		a := float64(i)*math.Pi/5 - math.Pi/2
		x := cx + r*float32(math.Cos(a))
		y := cy + r*float32(math.Sin(a))
		if i == 0 {
			path.MoveTo(x, y)
		} else {
			path.LineTo(x, y)
		}
	}
	path.Close()
	fill := &vector.DrawPathOptions{AntiAlias: true}
	fill.ColorScale.ScaleWithColor(colornames.Gold)
	vector.FillPath(img, &path, nil, fill)
	return img
}

func drawBomb(w, h int) *ebiten.Image {
	img := ebiten.NewImage(w, h)
	r := float32(math.Min(float64(w), float64(h))) / 2
	vector.FillCircle(img, float32(w)/2, float32(h)/2, r, colornames.Black, true)
	vector.FillCircle(img, float32(w)/2-r/3, float32(h)/2-r/3, r/4, colornames.Dimgray, true)
	return img
}

// drawDude paints a one row sheet: legs swing on the running frames and
// the eyes show the facing.
func drawDude(w, h int) *ebiten.Image {
	img := ebiten.NewImage(w*DudeFrames, h)
	fw, fh := float32(w), float32(h)
	for i := 0; i < DudeFrames; i++ {
		ox := float32(i * w)
		body := colornames.Mediumpurple
		vector.FillRect(img, ox+fw*0.25, fh*0.3, fw*0.5, fh*0.45, body, false)
		vector.FillCircle(img, ox+fw/2, fh*0.18, fw*0.22, body, true)

		eye := fw * 0.06
		switch {
		case i < 4:
			vector.FillCircle(img, ox+fw*0.4, fh*0.16, eye, colornames.White, true)
		case i > 4:
			vector.FillCircle(img, ox+fw*0.6, fh*0.16, eye, colornames.White, true)
		default:
			vector.FillCircle(img, ox+fw*0.42, fh*0.16, eye, colornames.White, true)
			vector.FillCircle(img, ox+fw*0.58, fh*0.16, eye, colornames.White, true)
		}

		swing := float32(0)
		if i != 4 {
			swing = float32(i%4-1) * fw * 0.08
		}
		vector.StrokeLine(img, ox+fw*0.4, fh*0.75, ox+fw*0.4+swing, fh, 3, body, false)
		vector.StrokeLine(img, ox+fw*0.6, fh*0.75, ox+fw*0.6-swing, fh, 3, body, false)
	}
	return img
}
