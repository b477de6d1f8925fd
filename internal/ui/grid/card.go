package grid

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/gallery/internal/content"
	"github.com/llehouerou/gallery/internal/ui/render"
	"github.com/llehouerou/gallery/internal/ui/styles"
)

const (
	// CardWidth and CardHeight are the outer cell dimensions of a card.
	CardWidth  = 30
	CardHeight = 6
	// cardGap separates cards horizontally.
	cardGap = 1

	snippetLines = 2
)

var kindGlyphs = map[content.Kind]string{
	content.KindImage: "▨",
	content.KindVideo: "▣",
	content.KindAudio: "♪",
	content.KindNote:  "✎",
	content.KindQuote: "❝",
}

// Glyph returns the icon shown in front of a kind label.
func Glyph(k content.Kind) string {
	if g, ok := kindGlyphs[k]; ok {
		return g
	}
	return "?"
}

// Snippet returns the text a card previews for an item.
func Snippet(it content.Item) string {
	switch it.Kind {
	case content.KindNote:
		if it.Body != "" {
			return it.Body
		}
	case content.KindQuote:
		if it.Quote != "" {
			q := "“" + strings.TrimSpace(it.Quote) + "”"
			if it.Source != "" {
				q += " — " + it.Source
			}
			return q
		}
	case content.KindImage, content.KindVideo, content.KindAudio:
	}
	return it.Description
}

// renderCard draws one card. playing marks the item loaded in the player.
func renderCard(it content.Item, selected, playing bool, now time.Time) string {
	t := styles.T()
	inner := CardWidth - 4 // border + padding

	badge := styles.Badge(Glyph(it.Kind)+" "+strings.ToUpper(it.Kind.String()), t.KindColor(it.Kind))
	when := ""
	if !it.CreatedAt.IsZero() {
		when = t.S().Subtle.Render(humanize.RelTime(it.CreatedAt, now, "ago", "from now"))
	}
	header := render.Row(badge, when, inner)
	if lipgloss.Width(header) > inner {
		header = badge
	}

	titleStyle := t.S().Title
	if playing {
		titleStyle = t.S().Playing
	}
	title := it.Title
	if playing {
		title = "▶ " + title
	}

	lines := []string{header, titleStyle.Render(render.Line(title, inner))}
	for _, l := range render.Lines(render.Wrap(Snippet(it), inner, snippetLines), snippetLines) {
		lines = append(lines, t.S().Muted.Render(l))
	}
	for i := range lines {
		lines[i] = render.Pad(lines[i], inner)
	}

	return styles.CardStyle(selected).Width(CardWidth - 2).Render(strings.Join(lines, "\n"))
}
