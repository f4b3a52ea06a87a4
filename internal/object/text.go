package object

import (
	"unicode/utf8"

	"github.com/tomz197/cyberjet/internal/draw"
)

// Text is a line of overlay text drawn on top of the canvas.
// Coordinates are 1-based terminal positions relative to the canvas.
type Text struct {
	Col   int
	Row   int
	Value string
	Style string // ANSI prefix, e.g. draw.Foreground(draw.ColorWhite)
}

// Width returns the number of terminal columns the text covers.
func (t Text) Width() int {
	return utf8.RuneCountInString(t.Value)
}

// Draw writes the text at its position and marks the covered cells so the
// canvas repaints them once the text goes away.
func (t Text) Draw(cw *draw.ChunkWriter, canvas *draw.Canvas) {
	if t.Value == "" {
		return
	}
	col := max(t.Col, 1)
	row := max(t.Row, 1)
	cw.MoveCursor(col, row)
	if t.Style != "" {
		cw.WriteString(t.Style)
	}
	cw.WriteString(t.Value)
	if t.Style != "" {
		cw.WriteString(draw.ColorReset)
	}
	if canvas != nil {
		canvas.MarkTextDirty(col, row, t.Width())
	}
}

// Centered returns a Text horizontally centered within width columns.
func Centered(value string, width, row int, style string) Text {
	col := (width-utf8.RuneCountInString(value))/2 + 1
	return Text{Col: col, Row: row, Value: value, Style: style}
}
