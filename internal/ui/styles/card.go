package styles

import "github.com/charmbracelet/lipgloss"

// CardStyle returns the bordered style for a grid card.
func CardStyle(selected bool) lipgloss.Style {
	t := T()
	border := t.Border
	if selected {
		border = t.BorderFocus
	}
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1)
}

// FrameStyle returns the style of the full-screen viewer frame.
func FrameStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(T().BorderFocus).
		Padding(0, 1)
}

// CornerStyle returns the style of the minimized corner player.
func CornerStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(T().Primary).
		Padding(0, 1)
}

// Badge renders a kind label in its color.
func Badge(label string, color lipgloss.Color) string {
	return lipgloss.NewStyle().Foreground(color).Bold(true).Render(label)
}
