// Package draw renders game frames to ANSI terminals.
package draw

import "math"

// Point represents a 2D coordinate.
type Point struct {
	X, Y float64
}

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockLight     = '░'
	BlockEmpty     = ' '
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// Bar renders a horizontal gauge of the given width filled to percent (0-100).
func Bar(width int, percent float64) string {
	if width <= 0 {
		return ""
	}
	filled := int(math.Round(float64(width) * percent / 100))
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}
	runes := make([]rune, width)
	for i := range runes {
		if i < filled {
			runes[i] = BlockFull
		} else {
			runes[i] = BlockLight
		}
	}
	return string(runes)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
