package board

import "strings"

// Color identifies an orb type on the board.
type Color uint8

const (
	ColorSword  Color = iota // Feeds the attack skill
	ColorShield              // Feeds the block skill
	ColorBoot                // Feeds the kick skill
	ColorEstus               // Feeds the heal skill
	ColorX                   // Obstacle orb, matches normally but grants nothing
	ColorCount               // Sentinel value for iteration
)

// NoColor marks a vacated slot between removal and refill.
const NoColor Color = 0xFF

// String returns the string representation of a color.
func (c Color) String() string {
	switch c {
	case ColorSword:
		return "sword"
	case ColorShield:
		return "shield"
	case ColorBoot:
		return "boot"
	case ColorEstus:
		return "estus"
	case ColorX:
		return "x"
	case NoColor:
		return "none"
	default:
		return "unknown"
	}
}

// Char returns a single character representation of the color for ASCII boards.
func (c Color) Char() rune {
	switch c {
	case ColorSword:
		return 'S'
	case ColorShield:
		return 'H'
	case ColorBoot:
		return 'B'
	case ColorEstus:
		return 'E'
	case ColorX:
		return 'X'
	case NoColor:
		return '.'
	default:
		return '?'
	}
}

// Valid returns true if c is one of the first n palette colors.
func (c Color) Valid(n int) bool {
	return int(c) < n && c < ColorCount
}

// ParseColor converts a name or single letter to a Color.
// Returns ColorSword and false if the string is not recognized.
func ParseColor(s string) (Color, bool) {
	switch strings.ToLower(s) {
	case "sword", "s":
		return ColorSword, true
	case "shield", "h":
		return ColorShield, true
	case "boot", "b":
		return ColorBoot, true
	case "estus", "e":
		return ColorEstus, true
	case "x", "obstacle":
		return ColorX, true
	default:
		return ColorSword, false
	}
}

// Palette returns the first n colors, clamped to the available range.
func Palette(n int) []Color {
	if n > int(ColorCount) {
		n = int(ColorCount)
	}
	if n < 0 {
		n = 0
	}
	colors := make([]Color, n)
	for i := range colors {
		colors[i] = Color(i)
	}
	return colors
}
