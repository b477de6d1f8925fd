// Package keymap defines key bindings for the application.
package keymap

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "grid", "viewer", "playback"
}

// Bindings contains all key bindings, in help order.
var Bindings = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", ContextGlobal},
	{ActionHelp, []string{"?"}, "Toggle help", ContextGlobal},
	{ActionRefresh, []string{"r"}, "Reload catalog", ContextGlobal},

	// Grid
	{ActionSearch, []string{"/"}, "Search", ContextGrid},
	{ActionClearSearch, []string{"esc"}, "Clear search", ContextGrid},
	{ActionMoveUp, []string{"k", "up"}, "Move up", ContextGrid},
	{ActionMoveDown, []string{"j", "down"}, "Move down", ContextGrid},
	{ActionMoveLeft, []string{"h", "left"}, "Move left", ContextGrid},
	{ActionMoveRight, []string{"l", "right"}, "Move right", ContextGrid},
	{ActionJumpStart, []string{"g", "home"}, "First item", ContextGrid},
	{ActionJumpEnd, []string{"G", "end"}, "Last item", ContextGrid},
	{ActionOpen, []string{"enter"}, "Open item", ContextGrid},

	// Full-screen viewer
	{ActionClose, []string{"esc", "backspace"}, "Close viewer", ContextViewer},
	{ActionMinimize, []string{"m"}, "Minimize player", ContextViewer},
	{ActionNextItem, []string{"l", "right", "pgdown"}, "Next item", ContextViewer},
	{ActionPrevItem, []string{"h", "left", "pgup"}, "Previous item", ContextViewer},

	// Playback, in the viewer and in the corner player
	{ActionPlayPause, []string{" "}, "Play/pause", ContextPlayback},
	{ActionSeekForward, []string{"shift+right", "."}, "Seek forward", ContextPlayback},
	{ActionSeekBack, []string{"shift+left", ","}, "Seek back", ContextPlayback},
	{ActionRestore, []string{"f"}, "Restore player", ContextPlayback},
	{ActionStop, []string{"x"}, "Close player", ContextPlayback},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range Bindings {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}
