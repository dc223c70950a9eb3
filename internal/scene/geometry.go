// internal/scene/geometry.go
package scene

import (
	"math"

	"go-delivery-canvas/pkg/render"
)

const (
	// capacity slots inside a circle, as fractions of the radius
	slotWidth  = 0.6
	slotHeight = 0.4
	slotBase   = 0.5 // top edge of slot 0 below the center
	slotStep   = 0.4

	slotBorderWidth = 0.5

	triangleBorderWidth = 1.0
	triangleLabelOffset = 0.25

	rectBorderWidth = 0.1
	rectLabelSize   = 0.6  // of W
	rectLabelOffset = 0.22 // of W

	// WallLabel is drawn on every non-obstacle rectangle.
	WallLabel = "W"
)

var (
	triangleBaseAngle1 = 7.0 / 6.0 * math.Pi
	triangleBaseAngle2 = 11.0 / 6.0 * math.Pi
)

// ToPixel converts a normalized position to pixels on a width×height surface.
func ToPixel(x, y float64, width, height int) (float64, float64) {
	return x * float64(width), y * float64(height)
}

// TriangleVertices returns the apex above (cx, cy) followed by the two base
// vertices at 7π/6 and 11π/6, all at distance r from the center.
func TriangleVertices(cx, cy, r float64) [3]render.Point {
	return [3]render.Point{
		{X: cx, Y: cy - r},
		{X: cx - r*math.Cos(triangleBaseAngle1), Y: cy - r*math.Sin(triangleBaseAngle1)},
		{X: cx - r*math.Cos(triangleBaseAngle2), Y: cy - r*math.Sin(triangleBaseAngle2)},
	}
}

// SlotRect returns the origin and size of capacity slot i of a circle.
// Slot 0 sits just below the center; higher slots stack upward.
func SlotRect(cx, cy, r float64, i int) (x0, y0, w, h float64) {
	return cx - r*slotWidth/2, cy + r*slotBase - r*float64(i)*slotStep, r * slotWidth, r * slotHeight
}

// RectOrigin returns the top-left corner of a w×h box centered on (cx, cy).
func RectOrigin(cx, cy, w, h float64) (float64, float64) {
	return cx - 0.5*w, cy - 0.5*h
}
