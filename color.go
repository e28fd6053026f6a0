package sierpinski

import (
	"fmt"
	"image/color"
)

// Color is an opaque RGB color with 8-bit channels.
type Color struct {
	R, G, B uint8
}

// RGB creates a color from 8-bit channel values.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// RGBA converts the color to an opaque color.RGBA.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// FromColor converts a standard color.Color to Color, dropping alpha.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: n.R, G: n.G, B: n.B}
}

// Float returns the channels scaled to [0, 1].
func (c Color) Float() (r, g, b float64) {
	return float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255
}

// CSS returns the color in canvas fill-style notation, e.g. "rgb(12, 34, 56)".
func (c Color) CSS() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// Hex returns the color as "#rrggbb".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return c.Hex()
}

// ParseHex parses a hex color.
// Supports formats: "RGB", "RRGGBB", with or without a leading '#'.
func ParseHex(hex string) (Color, error) {
	s := hex
	if s != "" && s[0] == '#' {
		s = s[1:]
	}

	var r, g, b uint32
	var ok bool
	switch len(s) {
	case 3:
		ok = parseHex(s[0:1], &r) && parseHex(s[1:2], &g) && parseHex(s[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 6:
		ok = parseHex(s[0:2], &r) && parseHex(s[2:4], &g) && parseHex(s[4:6], &b)
	}
	if !ok {
		return Color{}, fmt.Errorf("sierpinski: invalid hex color %q", hex)
	}
	return Color{R: uint8(r), G: uint8(g), B: uint8(b)}, nil
}

func parseHex(s string, val *uint32) bool {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return false
		}
	}
	return true
}

// Common colors
var (
	Black = RGB(0, 0, 0)
	White = RGB(255, 255, 255)
)
