// internal/ui/pause_button.go
package ui

import (
	"image/color"
	"time"

	"go-delivery-canvas/pkg/render"
)

// PauseButton shows two bars while running and a play triangle while paused.
type PauseButton struct {
	button
	IsPaused   bool
	PauseColor color.Color
	PlayColor  color.Color
}

func NewPauseButton(x, y, size float64, pauseColor, playColor color.Color) *PauseButton {
	return &PauseButton{
		button:     button{X: x, Y: y, Size: size},
		PauseColor: pauseColor,
		PlayColor:  playColor,
	}
}

func (b *PauseButton) Draw(s render.Surface, now time.Time) {
	size := b.Size * b.scale(now)

	if b.IsPaused {
		tri := []render.Point{
			{X: b.X - size, Y: b.Y - size*1.2},
			{X: b.X - size, Y: b.Y + size*1.2},
			{X: b.X + size, Y: b.Y},
		}
		s.FillPolygon(tri, b.PlayColor)
		s.StrokePolygon(tri, buttonOutline, 1)
		return
	}

	width := size * 0.6
	height := size * 2.0
	spacing := size * 0.4
	for _, x0 := range []float64{b.X - width - spacing/2, b.X + spacing/2} {
		s.FillRect(x0, b.Y-height/2, width, height, b.PauseColor)
		s.StrokeRect(x0, b.Y-height/2, width, height, buttonOutline, 1)
	}
}

func (b *PauseButton) TogglePause(now time.Time) {
	b.IsPaused = !b.IsPaused
	b.click(now)
}

func (b *PauseButton) SetPaused(paused bool) {
	b.IsPaused = paused
}
