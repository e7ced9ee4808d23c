package csg

import (
	"fmt"
	"image/color"
	"strings"

	"golang.org/x/image/colornames"
)

// RGBA represents a solid's color tag with red, green, blue, and alpha
// components. Each component is in the range [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// DefaultColor is the color assigned to solids built without an explicit one.
var DefaultColor = RGBA{R: 0.72, G: 0.72, B: 0.75, A: 1}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1}
}

// Color converts RGBA to the standard color.Color interface.
func (c RGBA) Color() color.Color {
	return color.NRGBA{
		R: uint8(clamp255(c.R * 255)),
		G: uint8(clamp255(c.G * 255)),
		B: uint8(clamp255(c.B * 255)),
		A: uint8(clamp255(c.A * 255)),
	}
}

// FromColor converts a standard color.Color to RGBA. RGBA() channels are
// alpha-premultiplied; the straight components are recovered by dividing
// the alpha back out. Fully transparent colors have no recoverable RGB
// and convert to the zero RGBA.
func FromColor(c color.Color) RGBA {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return RGBA{}
	}
	return RGBA{
		R: float64(r) / float64(a),
		G: float64(g) / float64(a),
		B: float64(b) / float64(a),
		A: float64(a) / 65535,
	}
}

// Named looks up an SVG 1.1 color name ("red", "steelblue", ...).
// The lookup is case-insensitive. Unknown names return an error.
func Named(name string) (RGBA, error) {
	c, ok := colornames.Map[strings.ToLower(name)]
	if !ok {
		return RGBA{}, fmt.Errorf("csg: unknown color name %q", name)
	}
	return FromColor(c), nil
}

// Hex creates a color from a hex string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", with or without
// a leading '#'. Malformed strings yield opaque black.
func Hex(hex string) RGBA {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b, a uint32
	a = 255

	switch len(hex) {
	case 3: // RGB
		parseHexComponent(hex[0:1], &r)
		parseHexComponent(hex[1:2], &g)
		parseHexComponent(hex[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 4: // RGBA
		parseHexComponent(hex[0:1], &r)
		parseHexComponent(hex[1:2], &g)
		parseHexComponent(hex[2:3], &b)
		parseHexComponent(hex[3:4], &a)
		r, g, b, a = r*17, g*17, b*17, a*17
	case 6: // RRGGBB
		parseHexComponent(hex[0:2], &r)
		parseHexComponent(hex[2:4], &g)
		parseHexComponent(hex[4:6], &b)
	case 8: // RRGGBBAA
		parseHexComponent(hex[0:2], &r)
		parseHexComponent(hex[2:4], &g)
		parseHexComponent(hex[4:6], &b)
		parseHexComponent(hex[6:8], &a)
	}

	return RGBA{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}
}

func parseHexComponent(s string, out *uint32) {
	var v uint32
	for i := 0; i < len(s); i++ {
		c := s[i]
		v <<= 4
		switch {
		case c >= '0' && c <= '9':
			v |= uint32(c - '0')
		case c >= 'a' && c <= 'f':
			v |= uint32(c-'a') + 10
		case c >= 'A' && c <= 'F':
			v |= uint32(c-'A') + 10
		default:
			*out = 0
			return
		}
	}
	*out = v
}

func clamp255(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}
