package catalog

import "github.com/llehouerou/gallery/internal/content"

// View holds the loaded catalog and the current search query. The filtered
// list is derived and recomputed only after items or query change.
type View struct {
	items    []content.Item
	query    string
	filtered []content.Item
	stale    bool
}

// NewView creates an empty view.
func NewView() *View {
	return &View{}
}

// SetItems replaces the catalog.
func (v *View) SetItems(items []content.Item) {
	v.items = items
	v.stale = true
}

// Items returns the full catalog.
func (v *View) Items() []content.Item {
	return v.items
}

// SetQuery changes the search query.
func (v *View) SetQuery(query string) {
	if query == v.query {
		return
	}
	v.query = query
	v.stale = true
}

// Query returns the current search query.
func (v *View) Query() string {
	return v.query
}

// Filtered returns the catalog restricted to the query.
func (v *View) Filtered() []content.Item {
	if v.stale || v.filtered == nil {
		v.filtered = content.Filter(v.items, v.query)
		v.stale = false
	}
	return v.filtered
}

// Len returns the number of filtered items.
func (v *View) Len() int {
	return len(v.Filtered())
}

// At returns the filtered item at index.
func (v *View) At(index int) (content.Item, bool) {
	list := v.Filtered()
	if index < 0 || index >= len(list) {
		return content.Item{}, false
	}
	return list[index], true
}

// IndexOf returns the filtered position of id, or -1.
func (v *View) IndexOf(id string) int {
	for i, it := range v.Filtered() {
		if it.ID == id {
			return i
		}
	}
	return -1
}
