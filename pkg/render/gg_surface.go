// pkg/render/gg_surface.go
package render

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

// GGSurface is a headless raster surface backed by a gg context.
// It is used for PNG output and pixel-level tests.
type GGSurface struct {
	dc     *gg.Context
	source *text.FontSource
	faces  map[float64]text.Face
}

// NewGGSurface allocates a transparent width×height surface.
func NewGGSurface(width, height int) (*GGSurface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid surface size %dx%d", width, height)
	}
	source, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to load font: %w", err)
	}
	return &GGSurface{
		dc:     gg.NewContext(width, height),
		source: source,
		faces:  make(map[float64]text.Face),
	}, nil
}

func (s *GGSurface) Width() int  { return s.dc.Width() }
func (s *GGSurface) Height() int { return s.dc.Height() }

func (s *GGSurface) Clear() {
	s.dc.ClearPath()
	s.dc.Clear()
}

func (s *GGSurface) StrokeAndFillCircle(cx, cy, r float64, fill color.Color) {
	if !(r > 0) {
		return
	}
	s.dc.DrawCircle(cx, cy, r)
	s.dc.SetColor(orBlack(fill))
	s.check("fill circle", s.dc.FillPreserve())
	s.dc.SetColor(circleBorder)
	s.dc.SetLineWidth(CircleBorderWidth)
	s.check("stroke circle", s.dc.Stroke())
}

func (s *GGSurface) FillRect(x0, y0, w, h float64, c color.Color) {
	if !(w > 0 && h > 0) {
		return
	}
	s.dc.DrawRectangle(x0, y0, w, h)
	s.dc.SetColor(orBlack(c))
	s.check("fill rect", s.dc.Fill())
}

func (s *GGSurface) StrokeRect(x0, y0, w, h float64, c color.Color, lineWidth float64) {
	if !(w > 0 && h > 0 && lineWidth > 0) {
		return
	}
	s.dc.DrawRectangle(x0, y0, w, h)
	s.dc.SetColor(orBlack(c))
	s.dc.SetLineWidth(lineWidth)
	s.check("stroke rect", s.dc.Stroke())
}

func (s *GGSurface) FillPolygon(points []Point, fill color.Color) {
	if !s.polygon(points) {
		return
	}
	s.dc.SetColor(orBlack(fill))
	s.check("fill polygon", s.dc.Fill())
}

func (s *GGSurface) StrokePolygon(points []Point, stroke color.Color, lineWidth float64) {
	if !(lineWidth > 0) || !s.polygon(points) {
		s.dc.ClearPath()
		return
	}
	s.dc.SetColor(orBlack(stroke))
	s.dc.SetLineWidth(lineWidth)
	s.check("stroke polygon", s.dc.Stroke())
}

func (s *GGSurface) polygon(points []Point) bool {
	if len(points) < 3 {
		return false
	}
	for i, p := range points {
		if i == 0 {
			s.dc.MoveTo(p.X, p.Y)
		} else {
			s.dc.LineTo(p.X, p.Y)
		}
	}
	s.dc.ClosePath()
	return true
}

func (s *GGSurface) DrawText(str string, x, y, fontSize float64, c color.Color, align Align) {
	if str == "" {
		return
	}
	face := s.face(fontSize)
	if face == nil {
		return
	}
	s.dc.SetFont(face)
	s.dc.SetColor(orBlack(c))
	// ay=0 keeps y on the baseline.
	s.dc.DrawStringAnchored(str, x, y, align.anchor(), 0)
}

func (s *GGSurface) face(size float64) text.Face {
	size = quantizeSize(size)
	if !(size > 0) || math.IsInf(size, 0) {
		return nil
	}
	if f, ok := s.faces[size]; ok {
		return f
	}
	f := s.source.Face(size)
	s.faces[size] = f
	return f
}

func (s *GGSurface) check(op string, err error) {
	if err != nil {
		Logger().Debug("gg draw failed", "op", op, "err", err)
	}
}

// Image returns the current pixels.
func (s *GGSurface) Image() image.Image {
	return s.dc.Image()
}

// SavePNG writes the current pixels to path.
func (s *GGSurface) SavePNG(path string) error {
	if err := s.dc.SavePNG(path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}

// EncodePNG writes the current pixels to w.
func (s *GGSurface) EncodePNG(w io.Writer) error {
	return s.dc.EncodePNG(w)
}

// Close releases the drawing context.
func (s *GGSurface) Close() error {
	return s.dc.Close()
}
