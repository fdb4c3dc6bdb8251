package core

import "strings"

// Color represents a foreground color for a screen cell.
// Hosts map it to ANSI codes (terminal) or RGB (window).
type Color uint8

// Predefined colors for page elements and game objects.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorOrange
	ColorGray
)

// String returns the name used in page files.
func (c Color) String() string {
	switch c {
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorYellow:
		return "yellow"
	case ColorBlue:
		return "blue"
	case ColorMagenta:
		return "magenta"
	case ColorCyan:
		return "cyan"
	case ColorWhite:
		return "white"
	case ColorOrange:
		return "orange"
	case ColorGray:
		return "gray"
	default:
		return "default"
	}
}

// RGB returns an approximate 8-bit RGB triple for pixel hosts.
func (c Color) RGB() (r, g, b uint8) {
	switch c {
	case ColorRed:
		return 0xd0, 0x3b, 0x3b
	case ColorGreen:
		return 0x3b, 0xb0, 0x5a
	case ColorYellow:
		return 0xe0, 0xc0, 0x30
	case ColorBlue:
		return 0x1b, 0x9d, 0xd0
	case ColorMagenta:
		return 0xb0, 0x4c, 0xc0
	case ColorCyan:
		return 0x30, 0xc0, 0xc8
	case ColorWhite:
		return 0xf0, 0xf0, 0xf0
	case ColorOrange:
		return 0xf0, 0x8c, 0x28
	case ColorGray:
		return 0x8a, 0x8a, 0x8a
	default:
		return 0xc8, 0xc8, 0xc8
	}
}

// ParseColor converts a page-file color name to a Color.
// Returns ColorDefault and false if the name is not recognized.
func ParseColor(s string) (Color, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "default":
		return ColorDefault, true
	case "red":
		return ColorRed, true
	case "green":
		return ColorGreen, true
	case "yellow":
		return ColorYellow, true
	case "blue":
		return ColorBlue, true
	case "magenta", "purple":
		return ColorMagenta, true
	case "cyan":
		return ColorCyan, true
	case "white":
		return ColorWhite, true
	case "orange":
		return ColorOrange, true
	case "gray", "grey":
		return ColorGray, true
	default:
		return ColorDefault, false
	}
}
