package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/llehouerou/gallery/internal/ui/fullscreen"
	"github.com/llehouerou/gallery/internal/viewer"
)

// previewState tracks the artwork requested for the full-screen viewer.
type previewState struct {
	locator string
	cols    int
	rows    int
	data    []byte
}

func (p previewState) matches(locator string, cols, rows int) bool {
	return p.locator == locator && p.cols == cols && p.rows == rows
}

// previewTarget returns the artwork the viewer should show, if any.
func (m Model) previewTarget() (locator string, cols, rows int, ok bool) {
	if m.Previews == nil || !m.Images {
		return "", 0, 0, false
	}
	snap := m.Machine.Snapshot()
	if !snap.Open || snap.Active.Mode != viewer.FullScreen || !fullscreen.HasArt(snap.Active.Item) {
		return "", 0, 0, false
	}
	locator = snap.Active.Item.Artwork()
	if locator == "" {
		return "", 0, 0, false
	}
	cols, rows = fullscreen.ArtSize(m.Width, m.viewerHeight())
	return locator, cols, rows, true
}

// syncPreview requests artwork when the viewer shows a new item or the
// art area changed size.
func (m *Model) syncPreview() tea.Cmd {
	locator, cols, rows, ok := m.previewTarget()
	if !ok || m.preview.matches(locator, cols, rows) {
		return nil
	}
	m.preview = previewState{locator: locator, cols: cols, rows: rows}
	return LoadPreviewCmd(m.Previews, locator, cols, rows)
}

// handlePreviewLoaded stores artwork if it is still the one requested.
func (m *Model) handlePreviewLoaded(msg PreviewLoadedMsg) {
	if !m.preview.matches(msg.Locator, msg.Cols, msg.Rows) {
		return
	}
	if msg.Err != nil {
		m.Log.Debug("preview load failed", zap.String("locator", msg.Locator), zap.Error(msg.Err))
		return
	}
	m.preview.data = msg.Data
}

// previewData returns the loaded artwork for the current item, or nil.
func (m Model) previewData() []byte {
	locator, cols, rows, ok := m.previewTarget()
	if !ok || !m.preview.matches(locator, cols, rows) {
		return nil
	}
	return m.preview.data
}
