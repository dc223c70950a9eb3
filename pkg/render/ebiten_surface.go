// pkg/render/ebiten_surface.go
package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// EbitenSurface draws onto an ebiten image, usually the screen passed to Draw.
type EbitenSurface struct {
	// Background, when set, is painted by Clear instead of transparency.
	// A window has nothing behind it to show through.
	Background color.Color

	target   *ebiten.Image
	width    int
	height   int
	faces    *FaceCache
	whiteImg *ebiten.Image
	vs       []ebiten.Vertex
	is       []uint16
}

// NewEbitenSurface wraps target. The surface size is fixed to width×height
// even if target is later retargeted to a larger image.
func NewEbitenSurface(target *ebiten.Image, width, height int, faces *FaceCache) *EbitenSurface {
	whiteImg := ebiten.NewImage(1, 1)
	whiteImg.Fill(color.White)

	return &EbitenSurface{
		target:   target,
		width:    width,
		height:   height,
		faces:    faces,
		whiteImg: whiteImg,
		vs:       make([]ebiten.Vertex, 0, 16),
		is:       make([]uint16, 0, 16),
	}
}

// SetTarget switches the image drawn on. ebiten hands a new screen to every Draw call.
func (s *EbitenSurface) SetTarget(target *ebiten.Image) {
	s.target = target
}

func (s *EbitenSurface) Width() int  { return s.width }
func (s *EbitenSurface) Height() int { return s.height }

func (s *EbitenSurface) Clear() {
	if s.Background != nil {
		s.target.Fill(s.Background)
		return
	}
	s.target.Clear()
}

func (s *EbitenSurface) StrokeAndFillCircle(cx, cy, r float64, fill color.Color) {
	if !(r > 0) {
		return
	}
	vector.DrawFilledCircle(s.target, float32(cx), float32(cy), float32(r), orBlack(fill), true)
	vector.StrokeCircle(s.target, float32(cx), float32(cy), float32(r), CircleBorderWidth, circleBorder, true)
}

func (s *EbitenSurface) FillRect(x0, y0, w, h float64, c color.Color) {
	if !(w > 0 && h > 0) {
		return
	}
	vector.DrawFilledRect(s.target, float32(x0), float32(y0), float32(w), float32(h), orBlack(c), true)
}

func (s *EbitenSurface) StrokeRect(x0, y0, w, h float64, c color.Color, lineWidth float64) {
	if !(w > 0 && h > 0 && lineWidth > 0) {
		return
	}
	vector.StrokeRect(s.target, float32(x0), float32(y0), float32(w), float32(h), float32(lineWidth), orBlack(c), true)
}

func (s *EbitenSurface) FillPolygon(points []Point, fill color.Color) {
	path, ok := polygonPath(points)
	if !ok {
		return
	}
	s.vs, s.is = path.AppendVerticesAndIndicesForFilling(s.vs[:0], s.is[:0])
	s.drawTriangles(orBlack(fill))
}

func (s *EbitenSurface) StrokePolygon(points []Point, stroke color.Color, lineWidth float64) {
	if !(lineWidth > 0) {
		return
	}
	path, ok := polygonPath(points)
	if !ok {
		return
	}
	s.vs, s.is = path.AppendVerticesAndIndicesForStroke(s.vs[:0], s.is[:0], &vector.StrokeOptions{
		Width:    float32(lineWidth),
		LineJoin: vector.LineJoinMiter,
	})
	s.drawTriangles(orBlack(stroke))
}

func (s *EbitenSurface) drawTriangles(c color.Color) {
	r, g, b, a := c.RGBA()
	for i := range s.vs {
		s.vs[i].SrcX = 0
		s.vs[i].SrcY = 0
		s.vs[i].ColorR = float32(r) / 0xffff
		s.vs[i].ColorG = float32(g) / 0xffff
		s.vs[i].ColorB = float32(b) / 0xffff
		s.vs[i].ColorA = float32(a) / 0xffff
	}
	s.target.DrawTriangles(s.vs, s.is, s.whiteImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

func (s *EbitenSurface) DrawText(str string, x, y, fontSize float64, c color.Color, align Align) {
	if str == "" || s.faces == nil {
		return
	}
	face := s.faces.Face(fontSize)
	if face == nil {
		return
	}
	bounds := text.BoundString(face, str)
	left := x - float64(bounds.Dx())*align.anchor() - float64(bounds.Min.X)
	text.Draw(s.target, str, face, int(math.Round(left)), int(math.Round(y)), orBlack(c))
}

func polygonPath(points []Point) (*vector.Path, bool) {
	if len(points) < 3 {
		return nil, false
	}
	path := &vector.Path{}
	for i, p := range points {
		if i == 0 {
			path.MoveTo(float32(p.X), float32(p.Y))
		} else {
			path.LineTo(float32(p.X), float32(p.Y))
		}
	}
	path.Close()
	return path, true
}

// orBlack mirrors the canvas default fill style.
func orBlack(c color.Color) color.Color {
	if c == nil {
		return color.Black
	}
	return c
}
