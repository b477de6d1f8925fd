// Package render provides text layout helpers for cards and panes.
package render

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const ellipsis = "…"

// Sanitize drops control characters (except tab and newline) and invalid
// UTF-8 from catalog text, and turns non-breaking spaces into spaces.
func Sanitize(s string) string {
	clean := true
	for _, r := range s {
		if r == utf8.RuneError || r == '\u00a0' || (r != '\t' && r != '\n' && unicode.IsControl(r)) {
			clean = false
			break
		}
	}
	if clean {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		i += size
		switch {
		case r == utf8.RuneError && size <= 1:
		case r == '\u00a0':
			b.WriteByte(' ')
		case r != '\t' && r != '\n' && unicode.IsControl(r):
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Truncate shortens s to width cells, ending with an ellipsis when cut.
// Styled input keeps its escape sequences.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(s, width, ellipsis)
}

// Line flattens s onto one line and truncates it to width.
func Line(s string, width int) string {
	return Truncate(strings.Join(strings.Fields(Sanitize(s)), " "), width)
}

// Wrap word-wraps s to width and keeps at most maxLines lines, marking the
// last kept line with an ellipsis when text was dropped. maxLines <= 0 keeps
// everything.
func Wrap(s string, width, maxLines int) []string {
	if width <= 0 {
		return nil
	}
	s = strings.TrimSpace(Sanitize(s))
	if s == "" {
		return nil
	}
	lines := strings.Split(ansi.Wrap(s, width, ""), "\n")
	if maxLines <= 0 || len(lines) <= maxLines {
		return lines
	}
	lines = lines[:maxLines]
	last := strings.TrimRight(lines[maxLines-1], " ")
	if lipgloss.Width(last)+1 > width {
		last = ansi.Truncate(last, width-1, "")
	}
	lines[maxLines-1] = last + ellipsis
	return lines
}

// Pad fills s with spaces to width cells. Wider strings are returned as is.
func Pad(s string, width int) string {
	if gap := width - lipgloss.Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

// Fit truncates then pads s to exactly width cells.
func Fit(s string, width int) string {
	return Pad(Truncate(s, width), width)
}

// Row places left and right at the two ends of a width-cell line.
func Row(left, right string, width int) string {
	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + strings.Repeat(" ", gap) + right
}

// Center pads s on both sides to width cells.
func Center(s string, width int) string {
	gap := width - lipgloss.Width(s)
	if gap <= 0 {
		return s
	}
	return strings.Repeat(" ", gap/2) + s + strings.Repeat(" ", gap-gap/2)
}

// Lines pads or cuts lines to exactly height entries.
func Lines(lines []string, height int) []string {
	if height <= 0 {
		return nil
	}
	out := make([]string, height)
	copy(out, lines)
	return out
}

// Separator creates a horizontal rule of the specified width.
func Separator(width int) string {
	return strings.Repeat("─", max(width, 0))
}
