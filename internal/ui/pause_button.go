// internal/ui/pause_button.go
package ui

import (
	"image"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// PauseButton - круглая кнопка паузы таймера волн.
type PauseButton struct {
	X, Y          float32
	Size          float32
	LastClickTime time.Time
	IsPaused      bool
	PauseColor    color.Color
	PlayColor     color.Color
}

func NewPauseButton(x, y, size float32, pauseColor, playColor color.Color) *PauseButton {
	return &PauseButton{
		X:          x,
		Y:          y,
		Size:       size,
		PauseColor: pauseColor,
		PlayColor:  playColor,
	}
}

func (b *PauseButton) Draw(screen *ebiten.Image) {
	elapsed := time.Since(b.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	s := b.Size * float32(scale)

	if b.IsPaused {
		// Треугольник (play)
		var path vector.Path
		path.MoveTo(b.X-s/2, b.Y-s*0.6)
		path.LineTo(b.X-s/2, b.Y+s*0.6)
		path.LineTo(b.X+s/2, b.Y)
		path.Close()
		fillPath(screen, &path, b.PlayColor)
		return
	}

	// Два прямоугольника (pause)
	width := s * 0.3
	height := s * 1.2
	spacing := s * 0.2
	vector.DrawFilledRect(screen, b.X-width-spacing/2, b.Y-height/2, width, height, b.PauseColor, false)
	vector.DrawFilledRect(screen, b.X+spacing/2, b.Y-height/2, width, height, b.PauseColor, false)
}

// IsClicked проверяет, попал ли клик в кнопку.
func (b *PauseButton) IsClicked(x, y int) bool {
	dx := float32(x) - b.X
	dy := float32(y) - b.Y
	return dx*dx+dy*dy <= b.Size*b.Size
}

func (b *PauseButton) SetPaused(paused bool) {
	if b.IsPaused != paused {
		b.LastClickTime = time.Now()
	}
	b.IsPaused = paused
}

var whiteImage *ebiten.Image

func whiteSubImage() *ebiten.Image {
	if whiteImage == nil {
		whiteImage = ebiten.NewImage(3, 3)
		whiteImage.Fill(color.White)
	}
	return whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}

func fillPath(screen *ebiten.Image, path *vector.Path, clr color.Color) {
	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	r, g, b, a := clr.RGBA()
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(r) / 0xffff
		vs[i].ColorG = float32(g) / 0xffff
		vs[i].ColorB = float32(b) / 0xffff
		vs[i].ColorA = float32(a) / 0xffff
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	screen.DrawTriangles(vs, is, whiteSubImage(), op)
}
