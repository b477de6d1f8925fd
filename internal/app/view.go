package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/gallery/internal/keymap"
	"github.com/llehouerou/gallery/internal/navigation"
	"github.com/llehouerou/gallery/internal/ui/fullscreen"
	"github.com/llehouerou/gallery/internal/ui/overlay"
	"github.com/llehouerou/gallery/internal/ui/playerbar"
	"github.com/llehouerou/gallery/internal/ui/preview"
	"github.com/llehouerou/gallery/internal/ui/render"
	"github.com/llehouerou/gallery/internal/ui/styles"
	"github.com/llehouerou/gallery/internal/viewer"
)

const (
	footerLines = 1
	searchLines = 1
)

// View renders the current frame.
func (m Model) View() string {
	if m.Width <= 0 || m.Height <= 0 {
		return ""
	}

	var out string
	switch {
	case m.ShowHelp:
		out = m.renderHelp()
	case m.fullScreen():
		out = m.renderViewer(m.previewData())
	default:
		out = m.renderGridMode()
	}

	// Drop image placements left by the viewer.
	if m.Images && !m.imageShown() {
		out = preview.ClearAll() + out
	}
	return out
}

func (m Model) imageShown() bool {
	return !m.ShowHelp && m.fullScreen() && len(m.previewData()) > 0
}

func (m Model) renderViewer(art []byte) string {
	snap := m.Machine.Snapshot()
	list := m.Catalog.Filtered()
	frame := fullscreen.Render(fullscreen.Props{
		Snapshot: snap,
		Total:    len(list),
		HasPrev:  navigation.HasPrev(list, snap.Active.Position),
		HasNext:  navigation.HasNext(list, snap.Active.Position),
		Preview:  art,
		Images:   m.Images,
		Width:    m.Width,
		Height:   m.viewerHeight(),
	})
	return frame + "\n" + m.renderFooter()
}

func (m Model) renderGridMode() string {
	lines := []string{m.Search.View(m.Catalog.Len(), len(m.Catalog.Items()))}
	if m.ErrorMsg != "" {
		lines = append(lines, styles.T().S().Banner.Render(render.Line(m.ErrorMsg, m.Width-2)))
	}

	g := m.Grid
	g.SetPlaying(m.Machine.Snapshot().ItemID())
	body := g.View()
	if m.loading && m.Grid.Len() == 0 && len(m.Catalog.Items()) == 0 {
		body = lipgloss.Place(m.Width, m.gridHeight(), lipgloss.Center, lipgloss.Center,
			styles.T().S().Muted.Render("Loading…"))
	}
	lines = append(lines, render.Lines(strings.Split(body, "\n"), m.gridHeight())...)

	if m.playerLines() > 0 {
		if st, ok := playerbar.NewState(m.Machine.Snapshot()); ok {
			box := playerbar.Render(st, m.cornerWidth())
			lines = append(lines, lipgloss.PlaceHorizontal(m.Width, lipgloss.Right, box))
		}
	}

	lines = append(lines, m.renderFooter())
	return strings.Join(lines, "\n")
}

// renderFooter shows the status line: loading state and key hints.
func (m Model) renderFooter() string {
	t := styles.T().S()
	var left string
	switch {
	case m.loading:
		left = t.Muted.Render("refreshing…")
	case m.fullScreen():
		left = t.Muted.Render(m.Machine.Snapshot().Active.Item.Kind.String())
	}
	hints := "? help  q quit"
	if m.fullScreen() {
		hints = "esc close  ←/→ browse  ? help"
		if m.Machine.Snapshot().Playable() {
			hints = "space play/pause  m minimize  esc close  ? help"
		}
	}
	return render.Row(left, t.Subtle.Render(hints), m.Width)
}

// renderHelp lists the bindings per context.
func (m Model) renderHelp() string {
	t := styles.T().S()
	sections := []struct {
		title   string
		context string
	}{
		{"General", keymap.ContextGlobal},
		{"Grid", keymap.ContextGrid},
		{"Viewer", keymap.ContextViewer},
		{"Playback", keymap.ContextPlayback},
	}

	var lines []string
	for i, sec := range sections {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, t.Title.Render(sec.title))
		for _, b := range keymap.ByContext(sec.context) {
			keys := make([]string, len(b.Keys))
			for j, k := range b.Keys {
				keys[j] = keyLabel(k)
			}
			lines = append(lines, t.Key.Render(render.Pad(strings.Join(keys, "/"), 18))+" "+b.Description)
		}
	}

	box := styles.FrameStyle().Render(strings.Join(lines, "\n"))

	// Drawn over the current screen; images are left out of the base.
	base := m.renderGridMode()
	if m.fullScreen() {
		base = m.renderViewer(nil)
	}
	return overlay.Center(base, box, m.Width, m.Height)
}

func keyLabel(k string) string {
	if k == " " {
		return "space"
	}
	return k
}

// Layout.

func (m Model) viewerHeight() int {
	return max(m.Height-footerLines, 1)
}

func (m Model) bannerLines() int {
	if m.ErrorMsg == "" {
		return 0
	}
	return 1
}

// playerLines is the height reserved for the corner player.
func (m Model) playerLines() int {
	snap := m.Machine.Snapshot()
	if !snap.Playable() || snap.Active.Mode != viewer.Minimized {
		return 0
	}
	return playerbar.Height
}

func (m Model) cornerWidth() int {
	return min(playerbar.Width, m.Width)
}

func (m Model) gridTop() int {
	return searchLines + m.bannerLines()
}

func (m Model) gridHeight() int {
	return max(m.Height-m.gridTop()-m.playerLines()-footerLines, 1)
}
