package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/gallery/internal/content"
)

// CatalogMessage is implemented by messages carrying catalog load results.
type CatalogMessage interface {
	tea.Msg
	catalogMessage()
}

// CachedCatalogMsg carries the result of the startup cache read.
type CachedCatalogMsg struct {
	Items []content.Item
	OK    bool // false on a cache miss
}

func (CachedCatalogMsg) catalogMessage() {}

// CatalogFetchedMsg carries the result of a catalog fetch.
type CatalogFetchedMsg struct {
	Seq   int
	Items []content.Item
	Err   error
}

func (CatalogFetchedMsg) catalogMessage() {}

// TickMsg drives the playback clock sync.
type TickMsg time.Time

// PreviewLoadedMsg carries scaled artwork for the full-screen viewer.
type PreviewLoadedMsg struct {
	Locator string
	Cols    int
	Rows    int
	Data    []byte
	Err     error
}
