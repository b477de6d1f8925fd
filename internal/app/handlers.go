package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/gallery/internal/app/handler"
	"github.com/llehouerou/gallery/internal/keymap"
	"github.com/llehouerou/gallery/internal/navigation"
	"github.com/llehouerou/gallery/internal/viewer"
)

// handleKeyMsg routes a key press to the search field, the help overlay or
// the action handlers for the current display mode.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (Model, tea.Cmd) {
	key := msg.String()

	if m.Search.Focused() {
		return m.handleSearchKey(msg)
	}

	if m.ShowHelp {
		if m.Keys.Resolve(key) == keymap.ActionQuit {
			return m.quit()
		}
		m.ShowHelp = false
		return m, nil
	}

	action := m.Keys.ResolveIn(key, m.keyContexts()...)
	var quit bool
	handled, cmd := handler.Chain(action,
		func(a keymap.Action) handler.Result {
			if a == keymap.ActionQuit {
				quit = true
				return handler.HandledNoCmd
			}
			return m.handleGlobal(a)
		},
		m.handleViewer,
		m.handlePlayback,
		m.handleGrid,
	)
	if quit {
		return m.quit()
	}
	if !handled {
		return m, nil
	}
	return m, cmd
}

func (m Model) quit() (Model, tea.Cmd) {
	m.shutdown()
	return m, tea.Quit
}

// keyContexts lists the binding contexts active in the current mode, most
// specific first.
func (m Model) keyContexts() []string {
	snap := m.Machine.Snapshot()
	if snap.Open && snap.Active.Mode == viewer.FullScreen {
		return []string{keymap.ContextViewer, keymap.ContextPlayback}
	}
	if snap.Playable() {
		return []string{keymap.ContextGrid, keymap.ContextPlayback}
	}
	return []string{keymap.ContextGrid}
}

func (m Model) fullScreen() bool {
	snap := m.Machine.Snapshot()
	return snap.Open && snap.Active.Mode == viewer.FullScreen
}

func (m *Model) handleSearchKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m.quit()
	case "esc":
		m.Search.Blur()
		m.Search.SetValue("")
		m.applyQuery("")
		return *m, nil
	case "enter":
		m.Search.Blur()
		return *m, nil
	}

	var cmd tea.Cmd
	var changed bool
	m.Search, cmd, changed = m.Search.Update(msg)
	if changed {
		m.applyQuery(m.Search.Value())
	}
	return *m, cmd
}

func (m *Model) handleGlobal(a keymap.Action) handler.Result {
	switch a {
	case keymap.ActionHelp:
		m.ShowHelp = true
		return handler.HandledNoCmd
	case keymap.ActionRefresh:
		return handler.Handled(m.startFetch())
	}
	return handler.NotHandled
}

func (m *Model) handleViewer(a keymap.Action) handler.Result {
	if !m.fullScreen() {
		return handler.NotHandled
	}
	switch a {
	case keymap.ActionClose:
		m.Machine.Close()
	case keymap.ActionMinimize:
		// Only playable items have a corner player.
		m.Machine.Minimize()
	case keymap.ActionNextItem:
		m.navigate(navigation.Next)
	case keymap.ActionPrevItem:
		m.navigate(navigation.Prev)
	default:
		return handler.NotHandled
	}
	return handler.HandledNoCmd
}

func (m *Model) navigate(dir navigation.Direction) {
	m.Machine.Navigate(dir)
	m.followActive()
}

func (m *Model) handlePlayback(a keymap.Action) handler.Result {
	if !m.Machine.Snapshot().Playable() {
		return handler.NotHandled
	}
	switch a {
	case keymap.ActionPlayPause:
		m.Machine.TogglePlay()
	case keymap.ActionSeekForward:
		m.Machine.SeekBy(m.SeekStep)
	case keymap.ActionSeekBack:
		m.Machine.SeekBy(-m.SeekStep)
	case keymap.ActionRestore:
		m.Machine.Restore()
	case keymap.ActionStop:
		m.Machine.Close()
	default:
		return handler.NotHandled
	}
	return handler.HandledNoCmd
}

func (m *Model) handleGrid(a keymap.Action) handler.Result {
	if m.fullScreen() {
		return handler.NotHandled
	}
	switch a {
	case keymap.ActionSearch:
		return handler.Handled(m.Search.Focus())
	case keymap.ActionClearSearch:
		m.Search.SetValue("")
		m.applyQuery("")
	case keymap.ActionMoveUp:
		m.Grid.Move(0, -1)
	case keymap.ActionMoveDown:
		m.Grid.Move(0, 1)
	case keymap.ActionMoveLeft:
		m.Grid.Move(-1, 0)
	case keymap.ActionMoveRight:
		m.Grid.Move(1, 0)
	case keymap.ActionJumpStart:
		m.Grid.Select(0)
	case keymap.ActionJumpEnd:
		m.Grid.Select(m.Grid.Len() - 1)
	case keymap.ActionOpen:
		m.openSelected()
	default:
		return handler.NotHandled
	}
	return handler.HandledNoCmd
}

// openSelected opens the grid selection in the viewer.
func (m *Model) openSelected() {
	it, ok := m.Grid.Selected()
	if !ok {
		return
	}
	m.Machine.Open(it, m.Grid.Cursor())
}
