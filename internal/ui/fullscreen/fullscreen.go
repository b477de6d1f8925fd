// Package fullscreen renders the active item filling the terminal.
package fullscreen

import (
	"fmt"
	"strings"

	"github.com/llehouerou/gallery/internal/content"
	"github.com/llehouerou/gallery/internal/ui/grid"
	"github.com/llehouerou/gallery/internal/ui/playerbar"
	"github.com/llehouerou/gallery/internal/ui/preview"
	"github.com/llehouerou/gallery/internal/ui/render"
	"github.com/llehouerou/gallery/internal/ui/styles"
	"github.com/llehouerou/gallery/internal/viewer"
)

const (
	frameOverhead = 2 // top and bottom border
	headerLines   = 3 // badge row, title, separator
	minArtRows    = 3
	maxArtRows    = 24
)

// Props is everything the viewer needs to draw one frame.
type Props struct {
	Snapshot viewer.Snapshot
	Total    int  // length of the filtered list
	HasPrev  bool // navigation affordances
	HasNext  bool
	Preview  []byte // scaled PNG of the artwork, nil when not loaded
	Images   bool   // terminal can draw Kitty images
	Width    int
	Height   int
}

// HasArt reports whether the item gets an artwork area.
func HasArt(it content.Item) bool {
	return it.Kind == content.KindImage || it.Playable()
}

// ArtSize returns the maximum cell area for artwork at a frame size.
func ArtSize(width, height int) (cols, rows int) {
	inner := innerWidth(width)
	body := height - frameOverhead - headerLines
	rows = min(max(body*3/5, minArtRows), maxArtRows)
	cols = min(inner, rows*4)
	return cols, rows
}

func innerWidth(width int) int {
	return max(width-4, 1) // border + padding
}

// Render draws the framed viewer. It returns "" when nothing is open.
func Render(p Props) string {
	if !p.Snapshot.Open || p.Width <= 0 || p.Height <= 0 {
		return ""
	}
	active := p.Snapshot.Active
	it := active.Item
	inner := innerWidth(p.Width)
	t := styles.T()

	lines := []string{header(p, inner), t.S().Title.Render(render.Line(it.Title, inner)), t.S().Subtle.Render(render.Separator(inner))}

	artLine := -1
	var seq string
	if HasArt(it) {
		cols, rows := ArtSize(p.Width, p.Height)
		if p.Images && len(p.Preview) > 0 {
			c, r := preview.CellSize(p.Preview, cols, rows)
			seq = preview.Encode(p.Preview, c, r)
			artLine = len(lines) + 1 // +1 for the top border
			lines = append(lines, strings.Split(preview.Blank(cols, rows), "\n")...)
		} else {
			lines = append(lines, strings.Split(preview.Placeholder(cols, rows, grid.Glyph(it.Kind)), "\n")...)
		}
	}

	if st, ok := playerbar.NewState(p.Snapshot); ok {
		lines = append(lines, "", playerbar.RenderProgressBar(st, inner))
	}

	lines = append(lines, "")
	lines = append(lines, body(it, inner)...)

	if len(it.Tags) > 0 {
		tags := make([]string, len(it.Tags))
		for i, tag := range it.Tags {
			tags[i] = "#" + tag
		}
		lines = append(lines, "", t.S().Muted.Render(render.Line(strings.Join(tags, " "), inner)))
	}

	height := max(p.Height-frameOverhead, 1)
	lines = render.Lines(lines, height)
	for i := range lines {
		lines[i] = render.Pad(lines[i], inner)
	}

	out := styles.FrameStyle().Width(p.Width - 2).Render(strings.Join(lines, "\n"))
	if artLine >= 0 && artLine <= height {
		out = preview.Inject(out, artLine, seq)
	}
	return out
}

func header(p Props, inner int) string {
	t := styles.T()
	it := p.Snapshot.Active.Item

	left := styles.Badge(grid.Glyph(it.Kind)+" "+strings.ToUpper(it.Kind.String()), t.KindColor(it.Kind))
	if pos := p.Snapshot.Active.Position; pos >= 0 && pos < p.Total {
		left += t.S().Muted.Render(fmt.Sprintf("  %d / %d", pos+1, p.Total))
	}
	if !it.CreatedAt.IsZero() {
		left += t.S().Subtle.Render("  " + it.CreatedAt.Format("Jan 2, 2006"))
	}

	prev, next := t.S().Subtle, t.S().Subtle
	if p.HasPrev {
		prev = t.S().Key
	}
	if p.HasNext {
		next = t.S().Key
	}
	right := prev.Render("‹ prev") + t.S().Subtle.Render(" · ") + next.Render("next ›")
	return render.Row(left, right, inner)
}

func body(it content.Item, inner int) []string {
	t := styles.T()
	var lines []string
	switch it.Kind {
	case content.KindNote:
		for l := range strings.SplitSeq(it.Body, "\n") {
			if strings.TrimSpace(l) == "" {
				lines = append(lines, "")
				continue
			}
			lines = append(lines, render.Wrap(l, inner, 0)...)
		}
	case content.KindQuote:
		for _, l := range render.Wrap("“"+strings.TrimSpace(it.Quote)+"”", inner, 0) {
			lines = append(lines, t.S().Quote.Render(l))
		}
		if it.Source != "" {
			src := t.S().Muted.Render("— " + render.Line(it.Source, inner-2))
			lines = append(lines, "", render.Row("", src, inner))
		}
	case content.KindImage, content.KindVideo, content.KindAudio:
	}
	if it.Description != "" {
		if len(lines) > 0 {
			lines = append(lines, "")
		}
		for _, l := range render.Wrap(it.Description, inner, 0) {
			lines = append(lines, t.S().Muted.Render(l))
		}
	}
	return lines
}
