package draw

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFillRectScalesToPixels(t *testing.T) {
	// 10 columns x 5 rows = 10 x 10 pixels for a 100 x 100 logical space.
	c := NewScaledCanvas(10, 5, 100, 100)

	c.FillRect(20, 30, 20, 10, ColorCyan)

	assert.Equal(t, ColorCyan, c.Pixel(2, 3))
	assert.Equal(t, ColorCyan, c.Pixel(3, 3))
	assert.Equal(t, ColorNone, c.Pixel(4, 3))
	assert.Equal(t, ColorNone, c.Pixel(2, 4))
	assert.Equal(t, ColorNone, c.Pixel(1, 3))
}

func TestFillRectTinyStillVisible(t *testing.T) {
	c := NewScaledCanvas(10, 5, 100, 100)
	c.FillRect(51, 51, 1, 1, ColorYellow)
	assert.Equal(t, ColorYellow, c.Pixel(5, 5))
}

func TestFillRectClipsOutside(t *testing.T) {
	c := NewScaledCanvas(10, 5, 100, 100)
	assert.NotPanics(t, func() {
		c.FillRect(-50, -50, 30, 30, ColorRed)
		c.FillRect(150, 150, 30, 30, ColorRed)
		c.FillRect(90, 90, 50, 50, ColorRed)
	})
	assert.Equal(t, ColorRed, c.Pixel(9, 9))
	assert.Equal(t, ColorNone, c.Pixel(0, 0))
}

func TestRenderOnlyEmitsChangedCells(t *testing.T) {
	c := NewScaledCanvas(4, 2, 4, 4)

	var first bytes.Buffer
	c.Render(&first)
	assert.Equal(t, 8, strings.Count(first.String(), "H"), "first frame paints every cell")

	var second bytes.Buffer
	c.Render(&second)
	assert.Empty(t, second.String(), "unchanged frame emits nothing")

	c.SetFloat(0, 0, ColorMagenta)
	var third bytes.Buffer
	c.Render(&third)
	out := third.String()
	assert.Contains(t, out, "\033[1;1H")
	assert.Contains(t, out, string(BlockUpperHalf))
	assert.Contains(t, out, Foreground(ColorMagenta))
	assert.True(t, strings.HasSuffix(out, ColorReset))
}

func TestRenderCellGlyphs(t *testing.T) {
	c := NewScaledCanvas(3, 1, 3, 2)
	c.FillRect(0, 0, 1, 2, ColorCyan) // full
	c.SetFloat(1, 1, ColorYellow)     // lower half
	c.SetFloat(2, 0, ColorRed)        // top
	c.SetFloat(2, 1, ColorBlue)       // bottom with another color

	var buf bytes.Buffer
	c.Render(&buf)
	out := buf.String()

	assert.Contains(t, out, string(BlockFull))
	assert.Contains(t, out, string(BlockLowerHalf))
	assert.Contains(t, out, Background(ColorBlue))
}

func TestForceRedrawAndMarkTextDirty(t *testing.T) {
	c := NewScaledCanvas(4, 2, 4, 4)
	c.Render(&bytes.Buffer{})

	c.MarkTextDirty(2, 1, 2)
	var buf bytes.Buffer
	c.Render(&buf)
	assert.Equal(t, 2, strings.Count(buf.String(), "H"), "only the two dirty cells are repainted")

	c.ForceRedraw()
	buf.Reset()
	c.Render(&buf)
	assert.Equal(t, 8, strings.Count(buf.String(), "H"))
}

func TestResizeKeepsLogicalSpace(t *testing.T) {
	c := NewScaledCanvas(10, 5, 100, 100)
	c.Resize(20, 10)

	assert.Equal(t, 20, c.TerminalWidth())
	assert.Equal(t, 10, c.TerminalHeight())
	assert.Equal(t, 100.0, c.LogicalWidth())

	c.FillRect(50, 50, 5, 5, ColorCyan)
	assert.Equal(t, ColorCyan, c.Pixel(10, 10))
}

func TestDrawPolygonFilled(t *testing.T) {
	c := NewScaledCanvas(20, 10, 20, 20)
	c.DrawPolygon([]Point{{X: 2, Y: 10}, {X: 18, Y: 2}, {X: 18, Y: 18}}, true, ColorMagenta)

	assert.Equal(t, ColorMagenta, c.Pixel(12, 10), "interior is filled")
	assert.Equal(t, ColorNone, c.Pixel(1, 1))
}

func TestChunkWriterOffsets(t *testing.T) {
	var out bytes.Buffer
	cw := NewChunkWriter(&out, 3, 2)
	cw.WriteAt(1, 1, "hi")
	require.NoError(t, cw.Flush())
	assert.Equal(t, "\033[3;4Hhi", out.String())
	assert.Equal(t, 0, cw.Len())
}

func TestBar(t *testing.T) {
	assert.Equal(t, "█████░░░░░", Bar(10, 50))
	assert.Equal(t, "░░░░", Bar(4, 0))
	assert.Equal(t, "████", Bar(4, 150))
	assert.Equal(t, "", Bar(0, 50))
}
