package content

import (
	"strings"

	"golang.org/x/text/cases"
)

// SearchText returns the text a query is matched against: title,
// description, note body and quote text. Absent fields contribute nothing.
func (it Item) SearchText() string {
	parts := make([]string, 0, 4)
	for _, s := range []string{it.Title, it.Description, it.Body, it.Quote} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}

// Filter returns the items whose search text contains query, ignoring case.
// Order is preserved. An empty query returns items unchanged.
func Filter(items []Item, query string) []Item {
	if query == "" {
		return items
	}
	// cases.Caser is stateful; use a fresh one per call.
	fold := cases.Fold()
	needle := fold.String(query)

	result := make([]Item, 0, len(items))
	for _, it := range items {
		if strings.Contains(fold.String(it.SearchText()), needle) {
			result = append(result, it)
		}
	}
	return result
}
