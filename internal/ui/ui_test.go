package ui

import (
	"image/color"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-delivery-canvas/pkg/render"
)

func kinds(ops []render.Op) []render.OpKind {
	out := make([]render.OpKind, len(ops))
	for i, op := range ops {
		out[i] = op.Kind
	}
	return out
}

func TestPauseButtonDraw(t *testing.T) {
	pauseColor := color.RGBA{1, 2, 3, 255}
	playColor := color.RGBA{4, 5, 6, 255}
	b := NewPauseButton(100, 50, 10, pauseColor, playColor)
	rec := render.NewRecorder(200, 100)

	b.Draw(rec, time.Now())
	ops := rec.Ops()
	assert.Equal(t, []render.OpKind{render.OpFillRect, render.OpStrokeRect, render.OpFillRect, render.OpStrokeRect}, kinds(ops))
	assert.Equal(t, pauseColor, ops[0].Color)
	assert.InDelta(t, 6.0, ops[0].W, 1e-9)
	assert.InDelta(t, 20.0, ops[0].H, 1e-9)
	assert.InDelta(t, 92.0, ops[0].X, 1e-9)
	assert.InDelta(t, 40.0, ops[0].Y, 1e-9)
	assert.InDelta(t, 102.0, ops[2].X, 1e-9)

	rec.Reset()
	b.TogglePause(time.Time{}.Add(time.Hour))
	assert.True(t, b.IsPaused)
	b.Draw(rec, time.Time{}.Add(2*time.Hour))
	ops = rec.Ops()
	require.Equal(t, []render.OpKind{render.OpFillPolygon, render.OpStrokePolygon}, kinds(ops))
	assert.Equal(t, playColor, ops[0].Color)
	assert.Len(t, ops[0].Points, 3)
}

func TestButtonPulse(t *testing.T) {
	b := NewPauseButton(0, 0, 10, color.Black, color.White)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 1.0, b.scale(now))

	b.TogglePause(now)
	assert.InDelta(t, 1.3, b.scale(now), 1e-9)
	assert.InDelta(t, 1.0, b.scale(now.Add(5*time.Second)), 1e-6)
}

func TestButtonHitTest(t *testing.T) {
	b := NewSpeedButton(100, 50, 10, nil)
	assert.True(t, b.IsClicked(100, 50))
	assert.True(t, b.IsClicked(114, 50))
	assert.False(t, b.IsClicked(116, 50))
}

func TestSpeedButtonCycles(t *testing.T) {
	colors := []color.Color{color.RGBA{1, 0, 0, 255}, color.RGBA{2, 0, 0, 255}, color.RGBA{3, 0, 0, 255}}
	b := NewSpeedButton(100, 50, 10, colors)
	rec := render.NewRecorder(200, 100)

	for i := 0; i < 4; i++ {
		b.Draw(rec, time.Now())
		b.ToggleState(time.Now())
	}
	ops := rec.Ops()
	require.Len(t, ops, 16)
	assert.Equal(t, colors[0], ops[0].Color)
	assert.Equal(t, colors[1], ops[4].Color)
	assert.Equal(t, colors[2], ops[8].Color)
	assert.Equal(t, colors[0], ops[12].Color)

	empty := NewSpeedButton(0, 0, 10, nil)
	empty.ToggleState(time.Now())
	rec.Reset()
	empty.Draw(rec, time.Now())
	assert.Empty(t, rec.Ops())
}
