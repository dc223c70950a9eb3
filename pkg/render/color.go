// pkg/render/color.go
package render

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Palette holds the fixed decoration colors used when drawing entities.
// Entity fill colors come from the entities themselves.
type Palette struct {
	Outline        color.RGBA // circle border, slot border
	Border         color.RGBA // non-obstacle rectangle border
	SlotEmpty      color.RGBA
	SlotFilled     color.RGBA
	TriangleStroke color.RGBA
	Label          color.RGBA
}

// DefaultPalette returns the colors of the delivery canvas.
func DefaultPalette() Palette {
	return Palette{
		Outline:        color.RGBA{0, 0, 0, 255},
		Border:         color.RGBA{0, 0, 0, 255},
		SlotEmpty:      color.RGBA{255, 255, 255, 255},
		SlotFilled:     color.RGBA{0xa0, 0x8f, 0x73, 255}, // ochre
		TriangleStroke: color.RGBA{0x6a, 0x6a, 0x6a, 255},
		Label:          color.RGBA{255, 255, 255, 255},
	}
}

// ParseHex parses "#rgb", "#rrggbb" or "#rrggbbaa" (the leading '#' is optional).
func ParseHex(s string) (color.RGBA, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 && len(h) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid color format: %q", s)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(h[start:start+2], 16, 8)
		return uint8(v), err
	}

	var c color.RGBA
	var err error
	if c.R, err = parse(0); err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	if c.G, err = parse(2); err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	if c.B, err = parse(4); err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	c.A = 255
	if len(h) == 8 {
		if c.A, err = parse(6); err != nil {
			return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
		}
		// color.RGBA is alpha-premultiplied.
		c.R = uint8(uint16(c.R) * uint16(c.A) / 255)
		c.G = uint8(uint16(c.G) * uint16(c.A) / 255)
		c.B = uint8(uint16(c.B) * uint16(c.A) / 255)
	}
	return c, nil
}

// MustParseHex is ParseHex for package-level color tables. It panics on bad input.
func MustParseHex(s string) color.RGBA {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// HexColor is a color read from YAML as a hex string.
type HexColor struct {
	color.RGBA
	Set bool
}

func (c *HexColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}
	parsed, err := ParseHex(value.Value)
	if err != nil {
		return err
	}
	c.RGBA = parsed
	c.Set = true
	return nil
}

// PaletteOverrides lists optional replacements for palette entries.
type PaletteOverrides struct {
	Outline        HexColor `yaml:"outline"`
	Border         HexColor `yaml:"border"`
	SlotEmpty      HexColor `yaml:"slot_empty"`
	SlotFilled     HexColor `yaml:"slot_filled"`
	TriangleStroke HexColor `yaml:"triangle_stroke"`
	Label          HexColor `yaml:"label"`
}

// Apply returns p with every set override replaced.
func (o PaletteOverrides) Apply(p Palette) Palette {
	pick := func(dst *color.RGBA, c HexColor) {
		if c.Set {
			*dst = c.RGBA
		}
	}
	pick(&p.Outline, o.Outline)
	pick(&p.Border, o.Border)
	pick(&p.SlotEmpty, o.SlotEmpty)
	pick(&p.SlotFilled, o.SlotFilled)
	pick(&p.TriangleStroke, o.TriangleStroke)
	pick(&p.Label, o.Label)
	return p
}
