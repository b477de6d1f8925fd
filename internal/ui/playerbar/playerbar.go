// Package playerbar renders transport lines and the minimized corner player.
package playerbar

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/gallery/internal/content"
	"github.com/llehouerou/gallery/internal/ui/render"
	"github.com/llehouerou/gallery/internal/ui/styles"
	"github.com/llehouerou/gallery/internal/viewer"
)

const (
	// Width is the outer width of the corner player.
	Width = 44
	// Height is the outer height of the corner player: two content rows plus borders.
	Height = 4
)

// State holds everything needed to render a transport line.
type State struct {
	Title         string
	Kind          content.Kind
	Playing       bool
	Elapsed       float64
	Duration      float64
	DurationKnown bool
}

// NewState builds a State from a machine snapshot. ok is false when nothing
// playable is open.
func NewState(snap viewer.Snapshot) (State, bool) {
	if !snap.Playable() {
		return State{}, false
	}
	tr := snap.Active.Transport
	return State{
		Title:         snap.Active.Item.Title,
		Kind:          snap.Active.Item.Kind,
		Playing:       tr.Playing,
		Elapsed:       tr.Elapsed,
		Duration:      tr.Duration,
		DurationKnown: tr.DurationKnown,
	}, true
}

// Render returns the corner player box for the given outer width.
func Render(s State, width int) string {
	inner := max(width-4, 0) // border + padding

	glyph := "♪"
	if s.Kind == content.KindVideo {
		glyph = "▣"
	}
	t := styles.T()
	title := lipgloss.NewStyle().Foreground(t.KindColor(s.Kind)).Render(glyph) + " " +
		t.S().Title.Render(render.Line(s.Title, inner-2))

	body := render.Pad(title, inner) + "\n" + RenderProgressBar(s, inner)
	return styles.CornerStyle().Width(width - 2).Render(body)
}
