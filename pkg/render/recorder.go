// pkg/render/recorder.go
package render

import (
	"fmt"
	"image/color"
	"strings"
)

// OpKind identifies a recorded primitive call.
type OpKind int

const (
	OpClear OpKind = iota
	OpCircle
	OpFillRect
	OpStrokeRect
	OpFillPolygon
	OpStrokePolygon
	OpText
)

var opNames = [...]string{
	OpClear:         "clear",
	OpCircle:        "circle",
	OpFillRect:      "fill_rect",
	OpStrokeRect:    "stroke_rect",
	OpFillPolygon:   "fill_polygon",
	OpStrokePolygon: "stroke_polygon",
	OpText:          "text",
}

func (k OpKind) String() string {
	if k >= 0 && int(k) < len(opNames) {
		return opNames[k]
	}
	return fmt.Sprintf("op(%d)", int(k))
}

// Op is one primitive call with its arguments. Fields that do not apply to
// the kind are left zero.
type Op struct {
	Kind      OpKind
	X, Y      float64 // circle center, rect origin, text anchor
	W, H      float64
	R         float64
	Points    []Point
	Color     color.Color
	LineWidth float64
	Text      string
	FontSize  float64
	Align     Align
}

func (op Op) String() string {
	var b strings.Builder
	b.WriteString(op.Kind.String())
	switch op.Kind {
	case OpCircle:
		fmt.Fprintf(&b, " c=(%.2f,%.2f) r=%.2f", op.X, op.Y, op.R)
	case OpFillRect, OpStrokeRect:
		fmt.Fprintf(&b, " at=(%.2f,%.2f) size=%.2fx%.2f", op.X, op.Y, op.W, op.H)
	case OpFillPolygon, OpStrokePolygon:
		for _, p := range op.Points {
			fmt.Fprintf(&b, " (%.2f,%.2f)", p.X, p.Y)
		}
	case OpText:
		fmt.Fprintf(&b, " %q at=(%.2f,%.2f) size=%.2f %s", op.Text, op.X, op.Y, op.FontSize, op.Align)
	}
	if op.Color != nil {
		r, g, bl, a := op.Color.RGBA()
		fmt.Fprintf(&b, " color=#%02x%02x%02x%02x", r>>8, g>>8, bl>>8, a>>8)
	}
	if op.LineWidth != 0 {
		fmt.Fprintf(&b, " lw=%.2f", op.LineWidth)
	}
	return b.String()
}

// Recorder is a Surface that records every call instead of drawing.
// It can optionally forward calls to another surface.
type Recorder struct {
	width, height int
	next          Surface
	ops           []Op
}

// NewRecorder returns a width×height recorder.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{width: width, height: height}
}

// Tee returns a recorder that records and forwards every call to next.
func Tee(next Surface) *Recorder {
	return &Recorder{width: next.Width(), height: next.Height(), next: next}
}

func (r *Recorder) Width() int  { return r.width }
func (r *Recorder) Height() int { return r.height }

func (r *Recorder) Clear() {
	r.ops = append(r.ops, Op{Kind: OpClear})
	if r.next != nil {
		r.next.Clear()
	}
}

func (r *Recorder) StrokeAndFillCircle(cx, cy, radius float64, fill color.Color) {
	r.ops = append(r.ops, Op{Kind: OpCircle, X: cx, Y: cy, R: radius, Color: fill, LineWidth: CircleBorderWidth})
	if r.next != nil {
		r.next.StrokeAndFillCircle(cx, cy, radius, fill)
	}
}

func (r *Recorder) FillRect(x0, y0, w, h float64, c color.Color) {
	r.ops = append(r.ops, Op{Kind: OpFillRect, X: x0, Y: y0, W: w, H: h, Color: c})
	if r.next != nil {
		r.next.FillRect(x0, y0, w, h, c)
	}
}

func (r *Recorder) StrokeRect(x0, y0, w, h float64, c color.Color, lineWidth float64) {
	r.ops = append(r.ops, Op{Kind: OpStrokeRect, X: x0, Y: y0, W: w, H: h, Color: c, LineWidth: lineWidth})
	if r.next != nil {
		r.next.StrokeRect(x0, y0, w, h, c, lineWidth)
	}
}

func (r *Recorder) FillPolygon(points []Point, fill color.Color) {
	r.ops = append(r.ops, Op{Kind: OpFillPolygon, Points: append([]Point(nil), points...), Color: fill})
	if r.next != nil {
		r.next.FillPolygon(points, fill)
	}
}

func (r *Recorder) StrokePolygon(points []Point, stroke color.Color, lineWidth float64) {
	r.ops = append(r.ops, Op{Kind: OpStrokePolygon, Points: append([]Point(nil), points...), Color: stroke, LineWidth: lineWidth})
	if r.next != nil {
		r.next.StrokePolygon(points, stroke, lineWidth)
	}
}

func (r *Recorder) DrawText(s string, x, y, fontSize float64, c color.Color, align Align) {
	r.ops = append(r.ops, Op{Kind: OpText, X: x, Y: y, Text: s, FontSize: fontSize, Color: c, Align: align})
	if r.next != nil {
		r.next.DrawText(s, x, y, fontSize, c, align)
	}
}

// Ops returns a copy of everything recorded so far.
func (r *Recorder) Ops() []Op {
	return append([]Op(nil), r.ops...)
}

// Frames splits the recording at each clear. Every returned frame starts with
// its OpClear. Calls made before the first clear are dropped.
func (r *Recorder) Frames() [][]Op {
	var frames [][]Op
	for _, op := range r.ops {
		if op.Kind == OpClear {
			frames = append(frames, []Op{op})
			continue
		}
		if len(frames) == 0 {
			continue
		}
		last := len(frames) - 1
		frames[last] = append(frames[last], op)
	}
	return frames
}

// Reset forgets all recorded calls.
func (r *Recorder) Reset() {
	r.ops = r.ops[:0]
}
