// Package grid renders the filtered catalog as a scrolling grid of cards.
package grid

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/gallery/internal/content"
	"github.com/llehouerou/gallery/internal/ui/render"
	"github.com/llehouerou/gallery/internal/ui/styles"
)

// Model is the card grid. The cursor indexes the item slice it was given.
type Model struct {
	items     []content.Item
	cursor    int
	offset    int // first visible row
	width     int
	height    int
	playingID string
	now       func() time.Time
}

// New creates an empty grid.
func New() Model {
	return Model{now: time.Now}
}

// SetClock replaces the time source used for relative timestamps.
func (m *Model) SetClock(now func() time.Time) {
	m.now = now
}

// SetItems replaces the items, keeping the cursor on the same item id when
// it is still present, clamped otherwise.
func (m *Model) SetItems(items []content.Item) {
	var keep string
	if it, ok := m.Selected(); ok {
		keep = it.ID
	}
	m.items = items
	m.cursor = 0
	for i, it := range items {
		if it.ID == keep {
			m.cursor = i
			break
		}
	}
	m.scroll()
}

// Len returns the number of items.
func (m Model) Len() int {
	return len(m.items)
}

// SetSize sets the available area in cells.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.scroll()
}

// SetPlaying marks the card of the item loaded in the player.
func (m *Model) SetPlaying(id string) {
	m.playingID = id
}

// Cursor returns the selected index.
func (m Model) Cursor() int {
	return m.cursor
}

// Selected returns the item under the cursor.
func (m Model) Selected() (content.Item, bool) {
	if m.cursor < 0 || m.cursor >= len(m.items) {
		return content.Item{}, false
	}
	return m.items[m.cursor], true
}

// Select moves the cursor to index, clamped.
func (m *Model) Select(index int) {
	if len(m.items) == 0 {
		m.cursor = 0
		return
	}
	m.cursor = min(max(index, 0), len(m.items)-1)
	m.scroll()
}

// Move shifts the cursor by dx columns and dy rows.
func (m *Model) Move(dx, dy int) {
	m.Select(m.cursor + dx + dy*m.Columns())
}

// Columns returns how many cards fit side by side.
func (m Model) Columns() int {
	return max((m.width+cardGap)/(CardWidth+cardGap), 1)
}

// VisibleRows returns how many card rows fit.
func (m Model) VisibleRows() int {
	return max(m.height/CardHeight, 1)
}

// IndexAt maps a cell position inside the grid to an item index.
func (m Model) IndexAt(x, y int) (int, bool) {
	if x < 0 || y < 0 {
		return 0, false
	}
	col := x / (CardWidth + cardGap)
	if col >= m.Columns() || x%(CardWidth+cardGap) >= CardWidth {
		return 0, false
	}
	idx := (m.offset+y/CardHeight)*m.Columns() + col
	if idx >= len(m.items) {
		return 0, false
	}
	return idx, true
}

func (m *Model) scroll() {
	row := m.cursor / m.Columns()
	visible := m.VisibleRows()
	if row < m.offset {
		m.offset = row
	}
	if row >= m.offset+visible {
		m.offset = row - visible + 1
	}
	lastRow := max((len(m.items)-1)/m.Columns(), 0)
	m.offset = min(max(m.offset, 0), max(lastRow-visible+1, 0))
}

// View renders the visible card rows.
func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	if len(m.items) == 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			styles.T().S().Muted.Render("Nothing matches."))
	}

	cols := m.Columns()
	now := time.Now()
	if m.now != nil {
		now = m.now()
	}
	gap := strings.Repeat(" ", cardGap)

	var rows []string
	for r := m.offset; r < m.offset+m.VisibleRows(); r++ {
		start := r * cols
		if start >= len(m.items) {
			break
		}
		var cards []string
		for i := start; i < min(start+cols, len(m.items)); i++ {
			it := m.items[i]
			cards = append(cards, renderCard(it, i == m.cursor, it.ID == m.playingID, now), gap)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards[:len(cards)-1]...))
	}

	lines := render.Lines(strings.Split(strings.Join(rows, "\n"), "\n"), m.height)
	for i := range lines {
		lines[i] = render.Pad(lines[i], m.width)
	}
	return strings.Join(lines, "\n")
}
