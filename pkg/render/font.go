// pkg/render/font.go
package render

import (
	"fmt"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// FaceCache builds opentype faces on demand, one per pixel size.
// Sizes are rounded to a quarter pixel so similar labels share a face.
type FaceCache struct {
	font  *opentype.Font
	faces map[float64]font.Face
}

// NewFaceCache parses ttf. A nil ttf selects Go Regular.
func NewFaceCache(ttf []byte) (*FaceCache, error) {
	if ttf == nil {
		ttf = goregular.TTF
	}
	tt, err := opentype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	return &FaceCache{font: tt, faces: make(map[float64]font.Face)}, nil
}

func quantizeSize(size float64) float64 {
	return math.Round(size*4) / 4
}

// Face returns the face for size pixels, or nil when size is not positive.
func (c *FaceCache) Face(size float64) font.Face {
	size = quantizeSize(size)
	if !(size > 0) || math.IsInf(size, 0) {
		return nil
	}
	if face, ok := c.faces[size]; ok {
		return face
	}
	face, err := opentype.NewFace(c.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		Logger().Debug("font face unavailable", "size", size, "err", err)
		return nil
	}
	c.faces[size] = face
	return face
}

// Len reports how many faces are cached.
func (c *FaceCache) Len() int {
	return len(c.faces)
}

// Close releases all cached faces.
func (c *FaceCache) Close() error {
	for size, face := range c.faces {
		_ = face.Close()
		delete(c.faces, size)
	}
	return nil
}
