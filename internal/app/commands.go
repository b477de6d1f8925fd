package app

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/gallery/internal/catalog"
	"github.com/llehouerou/gallery/internal/content"
	"github.com/llehouerou/gallery/internal/state"
)

const (
	tickInterval   = 250 * time.Millisecond
	previewTimeout = 20 * time.Second
)

// TickCmd returns a command that sends TickMsg after tickInterval.
func TickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// LoadCachedCmd reads the cached catalog off the event loop.
func LoadCachedCmd(cache state.Interface) tea.Cmd {
	return func() tea.Msg {
		items, ok := cache.ReadCached()
		return CachedCatalogMsg{Items: items, OK: ok}
	}
}

// FetchCmd loads the catalog from its source. seq tags the result so a
// retry supersedes an earlier fetch still in flight.
func FetchCmd(loader catalog.Loader, seq int) tea.Cmd {
	return func() tea.Msg {
		items, err := loader.Load(context.Background())
		return CatalogFetchedMsg{Seq: seq, Items: items, Err: err}
	}
}

// WriteCacheCmd stores freshly fetched items. Failures are logged by the
// cache itself.
func WriteCacheCmd(cache state.Interface, items []content.Item) tea.Cmd {
	return func() tea.Msg {
		cache.WriteCached(items)
		return nil
	}
}

// LoadPreviewCmd fetches and scales artwork for the viewer.
func LoadPreviewCmd(loader PreviewLoader, locator string, cols, rows int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), previewTimeout)
		defer cancel()
		data, err := loader.Load(ctx, locator, cols, rows)
		return PreviewLoadedMsg{Locator: locator, Cols: cols, Rows: rows, Data: data, Err: err}
	}
}
