// Package overlay draws a box on top of an already rendered screen.
package overlay

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Place draws top over base with its top-left corner at column x, row y.
// Cells of base outside top's bounding box keep their content and styling.
// Lines of base are padded to width first.
func Place(base, top string, x, y, width int) string {
	baseLines := strings.Split(base, "\n")
	x = max(x, 0)

	for i, line := range strings.Split(top, "\n") {
		row := y + i
		if row < 0 || row >= len(baseLines) {
			continue
		}
		lineWidth := ansi.StringWidth(line)
		if lineWidth == 0 {
			continue
		}

		b := baseLines[row]
		if w := ansi.StringWidth(b); w < width {
			b += strings.Repeat(" ", width-w)
		}

		end := x + lineWidth
		result := ansi.Truncate(b, x, "") + line
		if end < width {
			result += ansi.Cut(b, end, width)
		}
		baseLines[row] = result
	}
	return strings.Join(baseLines, "\n")
}

// Center draws top in the middle of a width x height base.
func Center(base, top string, width, height int) string {
	topLines := strings.Split(top, "\n")
	topWidth := 0
	for _, l := range topLines {
		topWidth = max(topWidth, ansi.StringWidth(l))
	}
	x := max((width-topWidth)/2, 0)
	y := max((height-len(topLines))/2, 0)
	return Place(base, top, x, y, width)
}
