// internal/ui/speed_button.go
package ui

import (
	"image/color"
	"time"

	"go-delivery-canvas/pkg/render"
)

// SpeedButton is a fast-forward glyph whose colour tracks the speed state.
type SpeedButton struct {
	button
	StateColors  []color.Color
	CurrentState int
}

func NewSpeedButton(x, y, size float64, stateColors []color.Color) *SpeedButton {
	return &SpeedButton{
		button:      button{X: x, Y: y, Size: size},
		StateColors: stateColors,
	}
}

func (b *SpeedButton) Draw(s render.Surface, now time.Time) {
	if len(b.StateColors) == 0 {
		return
	}
	size := b.Size * b.scale(now)
	c := b.StateColors[b.CurrentState]

	height := size * 1.2
	width := size
	offset := width * 0.8
	for _, dx := range []float64{0, offset} {
		tri := []render.Point{
			{X: b.X - width + dx, Y: b.Y - height/2},
			{X: b.X + dx, Y: b.Y},
			{X: b.X - width + dx, Y: b.Y + height/2},
		}
		s.FillPolygon(tri, c)
		s.StrokePolygon(tri, buttonOutline, 1)
	}
}

func (b *SpeedButton) ToggleState(now time.Time) {
	if len(b.StateColors) == 0 {
		return
	}
	b.CurrentState = (b.CurrentState + 1) % len(b.StateColors)
	b.click(now)
}
