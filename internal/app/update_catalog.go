package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/llehouerou/gallery/internal/content"
	"github.com/llehouerou/gallery/internal/errmsg"
)

// handleCatalogMsg routes catalog load results.
func (m Model) handleCatalogMsg(msg CatalogMessage) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case CachedCatalogMsg:
		return m.handleCachedCatalog(msg)
	case CatalogFetchedMsg:
		return m.handleCatalogFetched(msg)
	}
	return m, nil
}

// handleCachedCatalog shows cached items until a fetch succeeds. A cache
// result arriving after a successful fetch is ignored.
func (m Model) handleCachedCatalog(msg CachedCatalogMsg) (Model, tea.Cmd) {
	if m.fetched {
		m.Log.Debug("late cache result ignored")
		return m, nil
	}
	if !msg.OK {
		return m, nil
	}
	m.setItems(msg.Items)
	return m, nil
}

// handleCatalogFetched applies the latest fetch. Success replaces whatever
// is shown and refreshes the cache; failure keeps the items on screen and
// raises the error banner.
func (m Model) handleCatalogFetched(msg CatalogFetchedMsg) (Model, tea.Cmd) {
	if msg.Seq != m.fetchSeq {
		return m, nil
	}
	m.loading = false

	if msg.Err != nil {
		op := errmsg.OpCatalogLoad
		if m.fetched || len(m.Catalog.Items()) > 0 {
			op = errmsg.OpCatalogRefresh
		}
		m.ErrorMsg = errmsg.Format(op, msg.Err) + " (press r to retry)"
		m.Log.Warn("catalog fetch failed", zap.Error(msg.Err))
		return m, nil
	}

	m.fetched = true
	m.ErrorMsg = ""
	m.setItems(msg.Items)
	m.Log.Info("catalog loaded", zap.Int("items", len(msg.Items)))
	return m, WriteCacheCmd(m.StateMgr, msg.Items)
}

// startFetch re-runs the fetch, superseding any fetch still in flight.
func (m *Model) startFetch() tea.Cmd {
	m.fetchSeq++
	m.loading = true
	return FetchCmd(m.Loader, m.fetchSeq)
}

func (m *Model) setItems(items []content.Item) {
	m.Catalog.SetItems(items)
	m.Grid.SetItems(m.Catalog.Filtered())
}

// applyQuery refilters the grid and persists the query.
func (m *Model) applyQuery(q string) {
	if q == m.Catalog.Query() {
		return
	}
	m.Catalog.SetQuery(q)
	m.Grid.SetItems(m.Catalog.Filtered())
	m.StateMgr.SaveQuery(q)
}
