// internal/ui/button.go
package ui

import (
	"math"
	"time"

	"go-delivery-canvas/pkg/render"
)

var buttonOutline = render.MustParseHex("#ffffff")

// button holds what the round HUD buttons share: a centre, a hit radius and
// the time of the last click, used for a short pulse animation.
type button struct {
	X, Y          float64
	Size          float64
	LastClickTime time.Time
}

// IsClicked reports whether (x, y) falls inside the button's circle.
func (b *button) IsClicked(x, y float64) bool {
	return math.Hypot(x-b.X, y-b.Y) <= b.Size*1.5
}

// scale is 1.3 right after a click and decays back to 1.
func (b *button) scale(now time.Time) float64 {
	if b.LastClickTime.IsZero() {
		return 1
	}
	elapsed := now.Sub(b.LastClickTime).Seconds()
	return 1.0 + 0.3*math.Exp(-elapsed*8)
}

func (b *button) click(now time.Time) {
	b.LastClickTime = now
}
