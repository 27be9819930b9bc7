package core

import "image/color"

// Color represents a foreground color for a terminal screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Terminal palette.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightWhite
	ColorCyan
	ColorGray
)

// paletteRGB holds the reference RGB value used when matching canvas
// colors to terminal colors. Dark tones resolve to the terminal's
// default foreground so they stay readable on dark backgrounds.
var paletteRGB = []struct {
	c   Color
	rgb [3]uint8
}{
	{ColorDefault, [3]uint8{0x22, 0x22, 0x22}},
	{ColorRed, [3]uint8{0xcd, 0x00, 0x00}},
	{ColorGreen, [3]uint8{0x00, 0x80, 0x00}},
	{ColorYellow, [3]uint8{0xcd, 0xcd, 0x00}},
	{ColorBlue, [3]uint8{0x00, 0x00, 0xee}},
	{ColorWhite, [3]uint8{0xe5, 0xe5, 0xe5}},
	{ColorBrightRed, [3]uint8{0xd3, 0x2f, 0x2f}},
	{ColorBrightGreen, [3]uint8{0x00, 0xff, 0x00}},
	{ColorBrightYellow, [3]uint8{0xff, 0xff, 0x00}},
	{ColorBrightWhite, [3]uint8{0xff, 0xff, 0xff}},
	{ColorCyan, [3]uint8{0x70, 0xc5, 0xce}},
	{ColorGray, [3]uint8{0x80, 0x80, 0x80}},
}

// NearestColor returns the palette entry closest to c in RGB space.
// Alpha is ignored.
func NearestColor(c color.Color) Color {
	if c == nil {
		return ColorDefault
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)

	best := ColorDefault
	bestDist := -1
	for _, p := range paletteRGB {
		dr := int(n.R) - int(p.rgb[0])
		dg := int(n.G) - int(p.rgb[1])
		db := int(n.B) - int(p.rgb[2])
		d := dr*dr + dg*dg + db*db
		if bestDist < 0 || d < bestDist {
			best = p.c
			bestDist = d
		}
	}
	return best
}

// IsTranslucent reports whether c is less than half opaque.
func IsTranslucent(c color.Color) bool {
	if c == nil {
		return true
	}
	_, _, _, a := c.RGBA()
	return a < 0x8000
}
