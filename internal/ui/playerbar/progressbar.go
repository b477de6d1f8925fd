package playerbar

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/gallery/internal/ui/styles"
)

const (
	playSymbol  = "▶"
	pauseSymbol = "⏸"
	unknownTime = "--:--"
	minBarWidth = 3
)

// RenderProgressBar renders a gradient transport line.
// Format: ▶  1:23  ━━━━━─────  4:56
func RenderProgressBar(s State, width int) string {
	status := playSymbol
	if !s.Playing {
		status = pauseSymbol
	}

	pos := FormatSeconds(s.Elapsed)
	dur := unknownTime
	if s.DurationKnown {
		dur = FormatSeconds(s.Duration)
	}

	fixed := lipgloss.Width(status) + 2 + lipgloss.Width(pos) + 2 + 2 + lipgloss.Width(dur)
	barWidth := width - fixed
	if barWidth < minBarWidth {
		return status + "  " + pos + " / " + dur
	}

	var ratio float64
	if s.DurationKnown && s.Duration > 0 {
		ratio = s.Elapsed / s.Duration
	}
	muted := styles.T().S().Muted
	return status + "  " + muted.Render(pos) + "  " + styles.GradientBar(barWidth, ratio) + "  " + muted.Render(dur)
}

// FormatSeconds renders seconds as m:ss, or h:mm:ss past an hour.
func FormatSeconds(sec float64) string {
	total := int(max(sec, 0))
	h, m, s := total/3600, (total/60)%60, total%60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}
