// Package searchbar is the one-line query field above the grid.
package searchbar

import (
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/gallery/internal/ui/render"
	"github.com/llehouerou/gallery/internal/ui/styles"
)

const charLimit = 256

// Model wraps a text input with a match counter.
type Model struct {
	input textinput.Model
	width int
}

// New creates an unfocused search bar.
func New() Model {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "Search titles, notes and quotes..."
	ti.CharLimit = charLimit
	t := styles.T()
	ti.PromptStyle = t.S().Key
	ti.TextStyle = t.S().Base
	ti.PlaceholderStyle = t.S().Subtle
	return Model{input: ti}
}

// Focus starts editing and returns the cursor blink command.
func (m *Model) Focus() tea.Cmd {
	return m.input.Focus()
}

// Blur stops editing.
func (m *Model) Blur() {
	m.input.Blur()
}

// Focused reports whether the field is being edited.
func (m Model) Focused() bool {
	return m.input.Focused()
}

// Value returns the current query.
func (m Model) Value() string {
	return m.input.Value()
}

// SetValue replaces the query.
func (m *Model) SetValue(q string) {
	m.input.SetValue(q)
	m.input.CursorEnd()
}

// SetWidth sets the bar width in cells.
func (m *Model) SetWidth(width int) {
	m.width = width
	m.input.Width = max(width-len(m.input.Prompt)-12, 10) // room for the counter
}

// Update forwards messages to the input while focused. changed reports
// whether the query text changed.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd, bool) {
	if !m.input.Focused() {
		return m, nil, false
	}
	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd, m.input.Value() != before
}

// View renders the field with "shown/total" on the right.
func (m Model) View(shown, total int) string {
	if !m.input.Focused() && m.input.Value() == "" {
		hint := styles.T().S().Subtle.Render("/ search")
		return render.Row(hint, counter(shown, total), m.width)
	}
	return render.Row(m.input.View(), counter(shown, total), m.width)
}

func counter(shown, total int) string {
	return styles.T().S().Muted.Render(strconv.Itoa(shown) + "/" + strconv.Itoa(total))
}
