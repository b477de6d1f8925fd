package preview

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image/png"
	"strings"
)

// Kitty graphics protocol escape sequences
const (
	escStart  = "\x1b_G"
	escEnd    = "\x1b\\"
	chunkSize = 4096 // max base64 bytes per escape sequence
)

// Encode wraps PNG data in a transmit-and-display command sized to
// cols x rows cells. Returns "" for empty data.
func Encode(pngData []byte, cols, rows int) string {
	if len(pngData) == 0 {
		return ""
	}
	b64 := base64.StdEncoding.EncodeToString(pngData)

	var sb strings.Builder
	for i := 0; i < len(b64); i += chunkSize {
		end := min(i+chunkSize, len(b64))
		more := 0
		if end < len(b64) {
			more = 1
		}
		sb.WriteString(escStart)
		if i == 0 {
			// a=T: transmit and display, f=100: PNG, C=1: keep the cursor, q=2: no replies
			fmt.Fprintf(&sb, "a=T,f=100,c=%d,r=%d,C=1,q=2,m=%d;", cols, rows, more)
		} else {
			fmt.Fprintf(&sb, "m=%d;", more)
		}
		sb.WriteString(b64[i:end])
		sb.WriteString(escEnd)
	}
	return sb.String()
}

// ClearAll removes every image placement from the screen.
func ClearAll() string {
	return escStart + "a=d,d=a,q=2;" + escEnd
}

// Inject inserts seq into rendered right after the left border character
// of the given line, so the image is drawn from the first cell inside the
// frame. rendered is returned unchanged when the line does not exist.
func Inject(rendered string, line int, seq string) string {
	if seq == "" {
		return rendered
	}
	lines := strings.Split(rendered, "\n")
	if line < 0 || line >= len(lines) {
		return rendered
	}
	target := lines[line]
	idx := strings.Index(target, "│")
	if idx < 0 {
		return rendered
	}
	cut := idx + len("│")
	lines[line] = target[:cut] + seq + target[cut:]
	return strings.Join(lines, "\n")
}

// Placeholder returns a framed box with glyph centered, used when the
// terminal cannot show images or the preview is not loaded yet.
func Placeholder(cols, rows int, glyph string) string {
	if cols < 4 || rows < 2 {
		return ""
	}

	lines := make([]string, 0, rows)
	lines = append(lines, "┌"+strings.Repeat("─", cols-2)+"┐")
	for i := 1; i < rows-1; i++ {
		if i == rows/2 && glyph != "" {
			pad := (cols - 3) / 2
			lines = append(lines, "│"+strings.Repeat(" ", pad)+glyph+strings.Repeat(" ", cols-3-pad)+"│")
			continue
		}
		lines = append(lines, "│"+strings.Repeat(" ", cols-2)+"│")
	}
	lines = append(lines, "└"+strings.Repeat("─", cols-2)+"┘")
	return strings.Join(lines, "\n")
}

// Blank returns a cols x rows block of spaces that reserves the image area
// in the layout.
func Blank(cols, rows int) string {
	if cols <= 0 || rows <= 0 {
		return ""
	}
	line := strings.Repeat(" ", cols)
	lines := make([]string, rows)
	for i := range lines {
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

// CellSize returns the cell area a PNG covers at the nominal cell size,
// capped to maxCols x maxRows. Invalid data yields the full area.
func CellSize(pngData []byte, maxCols, maxRows int) (int, int) {
	cfg, err := png.DecodeConfig(bytes.NewReader(pngData))
	if err != nil || cfg.Width == 0 || cfg.Height == 0 {
		return maxCols, maxRows
	}
	cols := (cfg.Width + cellPixelWidth - 1) / cellPixelWidth
	rows := (cfg.Height + cellPixelHeight - 1) / cellPixelHeight
	return min(max(cols, 1), maxCols), min(max(rows, 1), maxRows)
}
