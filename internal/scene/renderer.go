// internal/scene/renderer.go
package scene

import (
	"context"
	"errors"
	"image/color"
	"log/slog"
	"math"

	"go-delivery-canvas/pkg/render"
)

var (
	ErrUnknownShape   = errors.New("unknown shape")
	ErrNonFinite      = errors.New("non-finite coordinate or size")
	ErrNegativeRadius = errors.New("negative radius")
	ErrNegativeSize   = errors.New("negative width or height")
)

// SkipFunc is told about every entity left out of a frame.
type SkipFunc func(index int, e Entity, reason error)

// Renderer draws whole frames of entities onto a surface. It keeps no state
// between frames. Like the surface, it must not be used from several
// goroutines at once.
type Renderer struct {
	surface render.Surface
	palette render.Palette
	onSkip  SkipFunc
	logger  *slog.Logger
}

type Option func(*Renderer)

func WithPalette(p render.Palette) Option {
	return func(r *Renderer) { r.palette = p }
}

// WithSkipHook installs f as the skip diagnostic.
func WithSkipHook(f SkipFunc) Option {
	return func(r *Renderer) { r.onSkip = f }
}

func WithLogger(l *slog.Logger) Option {
	return func(r *Renderer) { r.logger = l }
}

func NewRenderer(surface render.Surface, opts ...Option) *Renderer {
	r := &Renderer{
		surface: surface,
		palette: render.DefaultPalette(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Surface returns the surface the renderer draws on.
func (r *Renderer) Surface() render.Surface {
	return r.surface
}

// SetPalette replaces the colors used from the next Render on.
func (r *Renderer) SetPalette(p render.Palette) {
	r.palette = p
}

// Clear erases the surface without drawing anything.
func (r *Renderer) Clear() {
	r.surface.Clear()
}

// Render clears the surface and draws entities in order, later ones on top.
// An entity that cannot be drawn is skipped; the rest of the frame is still drawn.
func (r *Renderer) Render(entities []Entity) {
	r.surface.Clear()
	w, h := r.surface.Width(), r.surface.Height()
	for i, e := range entities {
		if err := validate(e); err != nil {
			r.skip(i, e, err)
			continue
		}
		cx, cy := ToPixel(e.X, e.Y, w, h)
		switch e.Shape {
		case ShapeRect:
			r.drawRect(cx, cy, e)
		case ShapeCircle:
			r.drawCircle(cx, cy, e)
		case ShapeTriangle:
			r.drawTriangle(cx, cy, e)
		default:
			// Unknown kinds are dropped, not fatal.
			r.skip(i, e, ErrUnknownShape)
		}
	}
}

func (r *Renderer) skip(i int, e Entity, err error) {
	if l := r.log(); l.Enabled(context.Background(), slog.LevelDebug) {
		l.Debug("entity skipped", "index", i, "shape", e.Shape.String(), "reason", err)
	}
	if r.onSkip != nil {
		r.onSkip(i, e, err)
	}
}

func (r *Renderer) log() *slog.Logger {
	if r.logger != nil {
		return r.logger
	}
	return render.Logger()
}

func validate(e Entity) error {
	if !finite(e.X, e.Y) {
		return ErrNonFinite
	}
	switch e.Shape {
	case ShapeRect:
		if !finite(e.W, e.H) {
			return ErrNonFinite
		}
		if e.W < 0 || e.H < 0 {
			return ErrNegativeSize
		}
	case ShapeCircle, ShapeTriangle:
		if !finite(e.Radius) {
			return ErrNonFinite
		}
		if e.Radius < 0 {
			return ErrNegativeRadius
		}
	}
	return nil
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func fillColor(c color.Color) color.Color {
	if c == nil {
		return color.RGBA{0, 0, 0, 255}
	}
	return c
}

// drawCircle draws the disk, then MaxLoad empty slots, then repaints the
// lowest Load of them as filled.
func (r *Renderer) drawCircle(cx, cy float64, e Entity) {
	s := r.surface
	s.StrokeAndFillCircle(cx, cy, e.Radius, fillColor(e.Color))

	for i := 0; i < e.MaxLoad; i++ {
		x0, y0, w, h := SlotRect(cx, cy, e.Radius, i)
		s.StrokeRect(x0, y0, w, h, r.palette.Outline, slotBorderWidth)
		s.FillRect(x0, y0, w, h, r.palette.SlotEmpty)
	}

	filled := min(e.Load, e.MaxLoad)
	for i := 0; i < filled; i++ {
		x0, y0, w, h := SlotRect(cx, cy, e.Radius, i)
		s.FillRect(x0, y0, w, h, r.palette.SlotFilled)
	}
}

func (r *Renderer) drawTriangle(cx, cy float64, e Entity) {
	v := TriangleVertices(cx, cy, e.Radius)
	points := v[:]
	r.surface.FillPolygon(points, fillColor(e.Color))
	r.surface.StrokePolygon(points, r.palette.TriangleStroke, triangleBorderWidth)
	r.surface.DrawText(e.Value, cx, cy+triangleLabelOffset*e.Radius, e.Radius, r.palette.Label, render.AlignCenter)
}

func (r *Renderer) drawRect(cx, cy float64, e Entity) {
	x0, y0 := RectOrigin(cx, cy, e.W, e.H)
	r.surface.FillRect(x0, y0, e.W, e.H, fillColor(e.Color))
	if e.Obstacle {
		return
	}
	r.surface.StrokeRect(x0, y0, e.W, e.H, r.palette.Border, rectBorderWidth)
	// TODO: every non-obstacle rectangle gets the fixed "W"; take the label
	// from the entity once warehouse portrayals carry a name.
	r.surface.DrawText(WallLabel, cx, cy+rectLabelOffset*e.W, rectLabelSize*e.W, r.palette.Label, render.AlignCenter)
}
