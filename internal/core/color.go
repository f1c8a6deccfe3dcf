package core

import "fmt"

// Color is a cell foreground color: either one of the named palette entries
// below or a 24-bit RGB value built with RGB.
type Color uint32

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

const rgbFlag Color = 1 << 24

// RGB builds a true-color value.
func RGB(r, g, b uint8) Color {
	return rgbFlag | Color(r)<<16 | Color(g)<<8 | Color(b)
}

// IsRGB reports whether c was built with RGB.
func (c Color) IsRGB() bool {
	return c&rgbFlag != 0
}

// Components returns the red, green and blue channels of an RGB color.
func (c Color) Components() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// Hex formats an RGB color as #rrggbb. Palette colors return "".
func (c Color) Hex() string {
	if !c.IsRGB() {
		return ""
	}
	r, g, b := c.Components()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// Dim scales an RGB color toward black; f = 1 keeps it unchanged.
// Palette colors are returned as is.
func (c Color) Dim(f float64) Color {
	if !c.IsRGB() {
		return c
	}
	f = max(0, min(1, f))
	r, g, b := c.Components()
	return RGB(uint8(float64(r)*f), uint8(float64(g)*f), uint8(float64(b)*f))
}
