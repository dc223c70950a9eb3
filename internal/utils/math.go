// internal/utils/math.go
package utils

import "math"

// Vec2 is a point in world units.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Dist returns the euclidean distance between a and b.
func Dist(a, b Vec2) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// Lerp interpolates linearly between from and to.
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

// MoveTowards steps from toward to by at most step and never overshoots.
func MoveTowards(from, to Vec2, step float64) Vec2 {
	d := Dist(from, to)
	if d <= step || d == 0 {
		return to
	}
	t := step / d
	return Vec2{Lerp(from.X, to.X, t), Lerp(from.Y, to.Y, t)}
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
