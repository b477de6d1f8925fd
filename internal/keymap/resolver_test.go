//nolint:goconst // test cases intentionally repeat strings for readability
package keymap

import (
	"slices"
	"testing"
)

func TestResolver_Resolve(t *testing.T) {
	bindings := []Binding{
		{ActionQuit, []string{"q", "ctrl+c"}, "Quit", ContextGlobal},
		{ActionPlayPause, []string{" "}, "Play/pause", ContextPlayback},
		{ActionMoveUp, []string{"k", "up"}, "Move up", ContextGrid},
	}

	r := NewResolver(bindings)

	tests := []struct {
		key      string
		expected Action
	}{
		{"q", ActionQuit},
		{"ctrl+c", ActionQuit},
		{" ", ""},
		{"k", ""},
		{"unknown", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := r.Resolve(tt.key); got != tt.expected {
				t.Errorf("Resolve(%q) = %q, want %q", tt.key, got, tt.expected)
			}
		})
	}
}

func TestResolver_ResolveIn(t *testing.T) {
	r := NewResolver(Bindings)

	tests := []struct {
		name     string
		key      string
		contexts []string
		expected Action
	}{
		{"grid left moves", "left", []string{ContextGrid}, ActionMoveLeft},
		{"viewer left goes back", "left", []string{ContextViewer, ContextPlayback}, ActionPrevItem},
		{"viewer esc closes", "esc", []string{ContextViewer}, ActionClose},
		{"grid esc clears search", "esc", []string{ContextGrid}, ActionClearSearch},
		{"first context wins", "esc", []string{ContextViewer, ContextGrid}, ActionClose},
		{"falls back to global", "q", []string{ContextViewer}, ActionQuit},
		{"space plays in playback", " ", []string{ContextGrid, ContextPlayback}, ActionPlayPause},
		{"space unbound in grid alone", " ", []string{ContextGrid}, ""},
		{"no contexts uses global", "r", nil, ActionRefresh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.ResolveIn(tt.key, tt.contexts...); got != tt.expected {
				t.Errorf("ResolveIn(%q, %v) = %q, want %q", tt.key, tt.contexts, got, tt.expected)
			}
		})
	}
}

func TestResolver_KeysFor(t *testing.T) {
	r := NewResolver([]Binding{
		{ActionQuit, []string{"q", "ctrl+c"}, "Quit", ContextGlobal},
		{ActionPlayPause, []string{" "}, "Play/pause", ContextPlayback},
	})

	if keys := r.KeysFor(ActionQuit); !slices.Equal(keys, []string{"q", "ctrl+c"}) {
		t.Errorf("KeysFor(quit) = %v", keys)
	}
	if keys := r.KeysFor(ActionPlayPause); !slices.Equal(keys, []string{" "}) {
		t.Errorf("KeysFor(play_pause) = %v", keys)
	}
	if keys := r.KeysFor(Action("unknown")); keys != nil {
		t.Errorf("KeysFor(unknown) = %v, want nil", keys)
	}
}

func TestResolver_DeduplicatesKeys(t *testing.T) {
	r := NewResolver([]Binding{
		{ActionClose, []string{"esc", "backspace"}, "Close", ContextViewer},
		{ActionClose, []string{"esc"}, "Close", ContextGrid},
	})

	keys := r.KeysFor(ActionClose)
	if !slices.Equal(keys, []string{"esc", "backspace"}) {
		t.Errorf("KeysFor(close) = %v, want [esc backspace]", keys)
	}
}

func TestDedupe(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{"no duplicates", []string{"a", "b", "c"}, []string{"a", "b", "c"}},
		{"with duplicates", []string{"a", "b", "a", "c", "b"}, []string{"a", "b", "c"}},
		{"all duplicates", []string{"a", "a", "a"}, []string{"a"}},
		{"empty slice", []string{}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := dedupe(tt.input); !slices.Equal(got, tt.expected) {
				t.Errorf("dedupe(%v) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestResolver_EmptyBindings(t *testing.T) {
	r := NewResolver([]Binding{})

	if action := r.ResolveIn("q", ContextGrid); action != "" {
		t.Errorf("ResolveIn on empty resolver should return empty, got %q", action)
	}
	if keys := r.KeysFor(ActionQuit); keys != nil {
		t.Errorf("KeysFor on empty resolver should return nil, got %v", keys)
	}
}
