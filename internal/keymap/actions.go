// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit    Action = "quit"
	ActionHelp    Action = "help"
	ActionRefresh Action = "refresh" // re-fetch the catalog

	// Grid actions
	ActionSearch      Action = "search"
	ActionClearSearch Action = "clear_search"
	ActionMoveUp      Action = "move_up"
	ActionMoveDown    Action = "move_down"
	ActionMoveLeft    Action = "move_left"
	ActionMoveRight   Action = "move_right"
	ActionJumpStart   Action = "jump_start"
	ActionJumpEnd     Action = "jump_end"
	ActionOpen        Action = "open"

	// Viewer actions
	ActionClose    Action = "close"
	ActionMinimize Action = "minimize"
	ActionRestore  Action = "restore"
	ActionNextItem Action = "next_item"
	ActionPrevItem Action = "prev_item"

	// Playback actions
	ActionPlayPause   Action = "play_pause"
	ActionSeekForward Action = "seek_forward"
	ActionSeekBack    Action = "seek_back"
	ActionStop        Action = "stop" // closes the minimized player
)

// Binding contexts. A key is looked up in its context first, then in global.
const (
	ContextGlobal   = "global"
	ContextGrid     = "grid"
	ContextViewer   = "viewer"
	ContextPlayback = "playback"
)
