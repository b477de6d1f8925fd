// Package handler provides the result type and dispatch chain for actions.
package handler

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/gallery/internal/keymap"
)

// Result is the outcome of offering an action to a handler.
type Result struct {
	Handled bool
	Cmd     tea.Cmd
}

// NotHandled is returned when a handler does not own the action.
var NotHandled = Result{}

// HandledNoCmd is for handlers that act without a follow-up command.
var HandledNoCmd = Result{Handled: true}

// Handled creates a Result for an action that was applied.
func Handled(cmd tea.Cmd) Result {
	return Result{Handled: true, Cmd: cmd}
}

// Handler attempts to apply an action.
type Handler func(keymap.Action) Result

// Chain offers action to each handler in order until one handles it.
// An empty action is never handled.
func Chain(action keymap.Action, handlers ...Handler) (bool, tea.Cmd) {
	if action == "" {
		return false, nil
	}
	for _, h := range handlers {
		if r := h(action); r.Handled {
			return true, r.Cmd
		}
	}
	return false, nil
}
