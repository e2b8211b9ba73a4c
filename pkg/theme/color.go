package theme

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is an opaque or translucent sRGB color.
type Color struct {
	R, G, B uint8
	// A is the alpha channel; 255 is opaque.
	A uint8
}

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// RGBA returns a color with the given alpha.
func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Hex returns a color from a 0xRRGGBB literal.
func Hex(v uint32) Color {
	return RGB(uint8(v>>16), uint8(v>>8), uint8(v))
}

// ParseHex parses "#rgb", "#rrggbb" or "#rrggbbaa".
func ParseHex(s string) (Color, error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) == 6 {
		h += "ff"
	}
	if len(h) != 8 {
		return Color{}, fmt.Errorf("theme: invalid color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("theme: invalid color %q: %w", s, err)
	}
	return RGBA(uint8(v>>24), uint8(v>>16), uint8(v>>8), uint8(v)), nil
}

// WithAlpha returns c with alpha a.
func (c Color) WithAlpha(a uint8) Color {
	c.A = a
	return c
}

// CSS renders the color as #rrggbb, or rgba() when translucent.
func (c Color) CSS() string {
	if c.A == 255 {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.R, c.G, c.B, strconv.FormatFloat(float64(c.A)/255, 'f', 2, 64))
}

// String implements fmt.Stringer.
func (c Color) String() string { return c.CSS() }
