// Package styles holds the color palette and shared lipgloss styles.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/gallery/internal/content"
)

// Theme defines the color palette and pre-built styles for the application.
type Theme struct {
	// Brand/accent colors
	Primary   lipgloss.Color // Purple - selection, active states
	Secondary lipgloss.Color // Gold/orange - secondary accent

	// Text hierarchy (most to least prominent)
	FgBase   lipgloss.Color
	FgMuted  lipgloss.Color
	FgSubtle lipgloss.Color

	// Backgrounds
	BgBase   lipgloss.Color
	BgCursor lipgloss.Color

	// Borders
	Border      lipgloss.Color
	BorderFocus lipgloss.Color

	// Status colors
	Success lipgloss.Color // Green - playing
	Error   lipgloss.Color
	Warning lipgloss.Color

	// Kinds maps each content kind to its badge color.
	Kinds map[content.Kind]lipgloss.Color

	styles *Styles
}

// Styles contains pre-built lipgloss styles for common UI patterns.
type Styles struct {
	Base    lipgloss.Style
	Muted   lipgloss.Style
	Subtle  lipgloss.Style
	Title   lipgloss.Style
	Playing lipgloss.Style
	Quote   lipgloss.Style
	Key     lipgloss.Style // key names in the help footer
	Banner  lipgloss.Style // error banner
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
}

var defaultTheme = Theme{
	Primary:   lipgloss.Color("#a78bfa"),
	Secondary: lipgloss.Color("#f1a208"),

	FgBase:   lipgloss.Color("#c0c0c0"),
	FgMuted:  lipgloss.Color("#808080"),
	FgSubtle: lipgloss.Color("#585858"),

	BgBase:   lipgloss.Color("#1a1a1a"),
	BgCursor: lipgloss.Color("#303030"),

	Border:      lipgloss.Color("#585858"),
	BorderFocus: lipgloss.Color("#a78bfa"),

	Success: lipgloss.Color("#42b883"),
	Error:   lipgloss.Color("#ff5555"),
	Warning: lipgloss.Color("#f1a208"),

	Kinds: map[content.Kind]lipgloss.Color{
		content.KindImage: lipgloss.Color("#5fafd7"),
		content.KindVideo: lipgloss.Color("#d75f87"),
		content.KindAudio: lipgloss.Color("#42b883"),
		content.KindNote:  lipgloss.Color("#c0c0c0"),
		content.KindQuote: lipgloss.Color("#f1a208"),
	},
}

// T returns the default theme.
func T() *Theme {
	return &defaultTheme
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

// KindColor returns the badge color for a kind, falling back to FgMuted.
func (t *Theme) KindColor(k content.Kind) lipgloss.Color {
	if c, ok := t.Kinds[k]; ok {
		return c
	}
	return t.FgMuted
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)

	return &Styles{
		Base:   base,
		Muted:  lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle: lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title:  base.Bold(true),
		Playing: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),
		Quote: base.Italic(true),
		Key:   lipgloss.NewStyle().Foreground(t.Primary),
		Banner: lipgloss.NewStyle().
			Foreground(t.Error).
			Bold(true).
			Padding(0, 1),
		Success: lipgloss.NewStyle().Foreground(t.Success),
		Error:   lipgloss.NewStyle().Foreground(t.Error),
		Warning: lipgloss.NewStyle().Foreground(t.Warning),
	}
}
