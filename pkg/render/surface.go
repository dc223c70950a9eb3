// pkg/render/surface.go
package render

import (
	"context"
	"image/color"
	"log/slog"
	"sync/atomic"
)

// Point is a position in pixel space.
type Point struct {
	X, Y float64
}

// Align is the horizontal anchor of a text label.
type Align int

const (
	AlignCenter Align = iota
	AlignLeft
	AlignRight
)

func (a Align) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignRight:
		return "right"
	default:
		return "center"
	}
}

// anchor returns the fraction of the text width left of the anchor point.
func (a Align) anchor() float64 {
	switch a {
	case AlignLeft:
		return 0
	case AlignRight:
		return 1
	default:
		return 0.5
	}
}

// Surface is a fixed-size pixel canvas with immediate-mode drawing primitives.
// All coordinates are raw pixels. A Surface is not safe for concurrent use;
// callers serialize Clear and drawing calls.
//
// Degenerate input (negative radius, zero width, fewer than three polygon
// points) draws nothing. Implementations never panic on it.
type Surface interface {
	Width() int
	Height() int

	// Clear erases the whole surface to transparent.
	Clear()

	// StrokeAndFillCircle draws a filled disk with a 1px black border.
	StrokeAndFillCircle(cx, cy, r float64, fill color.Color)

	FillRect(x0, y0, w, h float64, c color.Color)
	StrokeRect(x0, y0, w, h float64, c color.Color, lineWidth float64)

	// FillPolygon and StrokePolygon treat points as a closed path.
	FillPolygon(points []Point, fill color.Color)
	StrokePolygon(points []Point, stroke color.Color, lineWidth float64)

	// DrawText draws s with its baseline at y, anchored horizontally at x.
	DrawText(s string, x, y, fontSize float64, c color.Color, align Align)
}

// circleBorder is the outline color of StrokeAndFillCircle.
var circleBorder = color.RGBA{0, 0, 0, 255}

// CircleBorderWidth is the outline width of StrokeAndFillCircle.
const CircleBorderWidth = 1.0

type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// SetLogger sets the logger used by the surfaces for backend diagnostics.
// Logging is off by default. Pass nil to turn it off again.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	loggerPtr.Store(l)
}

// Logger returns the package logger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
