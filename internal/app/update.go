package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/gallery/internal/transport"
)

// Update handles messages and returns the updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m, cmd := m.update(msg)
	// The banner and the corner player change the grid area.
	m.resize()
	return m, cmd
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(CatalogMessage); ok {
		return m.handleCatalogMsg(msg)
	}

	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width, m.Height = msg.Width, msg.Height

	case TickMsg:
		m.Playback.Sync()
		return m, TickCmd()

	case PreviewLoadedMsg:
		m.handlePreviewLoaded(msg)
		return m, nil

	case transport.SignalMsg:
		m.Bridge.Handle(msg)
		m.followActive()

	case tea.KeyMsg:
		m, cmd = m.handleKeyMsg(msg)

	case tea.MouseMsg:
		m, cmd = m.handleMouseMsg(msg)

	default:
		// Cursor blink and other input internals.
		m.Search, cmd, _ = m.Search.Update(msg)
		return m, cmd
	}

	previewCmd := m.syncPreview()
	return m, tea.Batch(cmd, previewCmd)
}

// resize propagates the terminal size to the components.
func (m *Model) resize() {
	m.Search.SetWidth(m.Width)
	m.Grid.SetSize(m.Width, m.gridHeight())
}

// followActive keeps the grid cursor on the active item after navigation
// from the viewer or the host.
func (m *Model) followActive() {
	snap := m.Machine.Snapshot()
	if !snap.Open {
		return
	}
	if idx := m.Catalog.IndexOf(snap.Active.Item.ID); idx >= 0 {
		m.Grid.Select(idx)
	}
}
