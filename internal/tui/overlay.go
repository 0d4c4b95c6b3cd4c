package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// centerOver places card in the middle of a width x height canvas built from
// base. Lines of base outside the card stay visible on both sides.
func centerOver(base, card string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	canvas := canvasLines(base, width, height)
	cardLines := strings.Split(card, "\n")
	cardWidth := 0
	for _, l := range cardLines {
		cardWidth = max(cardWidth, ansi.StringWidth(l))
	}
	x := max((width-cardWidth)/2, 0)
	y := max((height-len(cardLines))/2, 0)

	for i, line := range cardLines {
		row := y + i
		if row >= height {
			break
		}
		canvas[row] = spliceLine(canvas[row], padCells(line, cardWidth), x, width)
	}
	return strings.Join(canvas, "\n")
}

// canvasLines cuts or pads s to exactly height lines of width cells.
func canvasLines(s string, width, height int) []string {
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i := range lines {
		lines[i] = padCells(lines[i], width)
	}
	return lines
}

// spliceLine writes insert over line starting at cell x, keeping the cells
// of line to the left and right of it.
func spliceLine(line, insert string, x, width int) string {
	left := ansi.Truncate(line, x, "")
	if w := ansi.StringWidth(left); w < x {
		left += strings.Repeat(" ", x-w)
	}
	end := x + ansi.StringWidth(insert)
	if end >= width {
		return ansi.Truncate(left+insert, width, "")
	}
	right := ansi.TruncateLeft(line, end, "")
	return left + insert + right
}

func padCells(s string, width int) string {
	s = ansi.Truncate(s, width, "")
	if w := ansi.StringWidth(s); w < width {
		s += strings.Repeat(" ", width-w)
	}
	return s
}
