package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/gallery/internal/gesture"
	"github.com/llehouerou/gallery/internal/navigation"
	"github.com/llehouerou/gallery/internal/ui/playerbar"
)

// Nominal cell size used to turn mouse cell coordinates into the pixel
// distances the gesture detector thresholds on.
const (
	cellPixelWidth  = 8
	cellPixelHeight = 16
)

// handleMouseMsg turns drags into swipes, clicks into selection and the
// wheel into grid movement.
func (m Model) handleMouseMsg(msg tea.MouseMsg) (Model, tea.Cmd) {
	switch {
	case msg.Button == tea.MouseButtonWheelUp && msg.Action == tea.MouseActionPress:
		if !m.fullScreen() {
			m.Grid.Move(0, -1)
		}
	case msg.Button == tea.MouseButtonWheelDown && msg.Action == tea.MouseActionPress:
		if !m.fullScreen() {
			m.Grid.Move(0, 1)
		}
	case msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress:
		m.beginGesture(msg.X, msg.Y)
	case msg.Action == tea.MouseActionRelease:
		m.endGesture(msg.X, msg.Y)
	}
	return m, nil
}

// beginGesture starts tracking a drag. While minimized only drags starting
// on the corner player count.
func (m *Model) beginGesture(x, y int) {
	snap := m.Machine.Snapshot()
	if snap.Open && !m.fullScreen() && !m.inCornerPlayer(x, y) {
		m.Gestures.Cancel()
		m.click(x, y)
		return
	}
	if !snap.Open {
		m.click(x, y)
		return
	}
	m.Gestures.Begin(px(x, cellPixelWidth), px(y, cellPixelHeight), m.now())
}

func (m *Model) endGesture(x, y int) {
	if !m.Gestures.Active() {
		return
	}
	dir, ok := m.Gestures.End(px(x, cellPixelWidth), px(y, cellPixelHeight), m.now())
	if !ok {
		return
	}
	m.applySwipe(dir)
}

// applySwipe maps a swipe onto the viewer.
func (m *Model) applySwipe(dir gesture.Direction) {
	if !m.fullScreen() {
		if dir == gesture.Up {
			m.Machine.Restore()
		}
		return
	}
	switch dir {
	case gesture.Left:
		m.navigate(navigation.Next)
	case gesture.Right:
		m.navigate(navigation.Prev)
	case gesture.Down:
		if m.Machine.Snapshot().Playable() {
			m.Machine.Minimize()
		} else {
			m.Machine.Close()
		}
	case gesture.Up:
		m.Machine.Restore()
	}
}

// click selects the card under the pointer; clicking the selected card
// opens it.
func (m *Model) click(x, y int) {
	top := m.gridTop()
	if y < top || y >= top+m.gridHeight() {
		return
	}
	idx, ok := m.Grid.IndexAt(x, y-top)
	if !ok {
		return
	}
	if idx == m.Grid.Cursor() {
		m.openSelected()
		return
	}
	m.Grid.Select(idx)
}

// inCornerPlayer reports whether a cell lies on the minimized player box.
func (m Model) inCornerPlayer(x, y int) bool {
	if m.playerLines() == 0 {
		return false
	}
	top := m.Height - footerLines - playerbar.Height
	return y >= top && y < top+playerbar.Height && x >= m.Width-m.cornerWidth()
}

func px(cell, size int) float64 {
	return float64(cell * size)
}
