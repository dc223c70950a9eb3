// internal/scene/entity.go
package scene

import (
	"fmt"
	"image/color"
	"strings"
)

// Shape is the kind of primitive an entity is drawn as.
type Shape int

const (
	ShapeUnknown Shape = iota
	ShapeRect
	ShapeCircle
	ShapeTriangle
)

func (s Shape) String() string {
	switch s {
	case ShapeRect:
		return "rect"
	case ShapeCircle:
		return "circle"
	case ShapeTriangle:
		return "triangle"
	default:
		return fmt.Sprintf("shape(%d)", int(s))
	}
}

// ParseShape maps a shape tag to a Shape. Unrecognized tags give ShapeUnknown.
func ParseShape(tag string) Shape {
	switch strings.ToLower(strings.TrimSpace(tag)) {
	case "rect", "rectangle":
		return ShapeRect
	case "circle":
		return ShapeCircle
	case "triangle":
		return ShapeTriangle
	default:
		return ShapeUnknown
	}
}

// Entity is one thing to draw in a frame. X and Y are fractions of the
// surface size; every other length is in pixels.
type Entity struct {
	Shape Shape
	X, Y  float64
	Color color.Color

	// Rectangle
	W, H     float64
	Obstacle bool

	// Circle and triangle
	Radius float64

	// Circle
	Load, MaxLoad int

	// Triangle
	Value string
}
