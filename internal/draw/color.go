package draw

import "strconv"

// Color is a palette entry. ColorNone marks an empty pixel.
type Color uint8

const (
	ColorNone Color = iota
	ColorMagenta
	ColorCyan
	ColorOrange
	ColorYellow
	ColorBlue
	ColorDarkBlue
	ColorWhite
	ColorGray
	ColorRed
	colorCount
)

// ansi256 maps palette entries to xterm 256-color codes.
var ansi256 = [colorCount]int{
	ColorNone:     0,
	ColorMagenta:  201, // #ff00ff
	ColorCyan:     51,  // #00ffff
	ColorOrange:   202, // #ff3300-ish
	ColorYellow:   226, // #ffff00
	ColorBlue:     33,  // #0088ff
	ColorDarkBlue: 19,  // #0022aa
	ColorWhite:    15,
	ColorGray:     244,
	ColorRed:      196,
}

// SGR sequences used by text overlays.
const (
	ColorReset      = "\033[0m"
	ColorBrightCyan = "\033[96m"
	ColorBold       = "\033[1m"
)

// Foreground returns the SGR sequence selecting c as the foreground color.
func Foreground(c Color) string {
	if c == ColorNone || c >= colorCount {
		return "\033[39m"
	}
	return "\033[38;5;" + strconv.Itoa(ansi256[c]) + "m"
}

// Background returns the SGR sequence selecting c as the background color.
func Background(c Color) string {
	if c == ColorNone || c >= colorCount {
		return "\033[49m"
	}
	return "\033[48;5;" + strconv.Itoa(ansi256[c]) + "m"
}
