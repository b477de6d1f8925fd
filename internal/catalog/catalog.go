// Package catalog loads gallery items from a fixture file or a remote content
// API, and keeps the filtered view the rest of the app navigates over.
package catalog

import (
	"context"

	"github.com/llehouerou/gallery/internal/content"
)

// Loader produces the ordered catalog.
type Loader interface {
	Load(ctx context.Context) ([]content.Item, error)
}

// Cache is the best-effort local copy of the last successful load.
// Implementations swallow their own failures.
type Cache interface {
	ReadCached() ([]content.Item, bool)
	WriteCached(items []content.Item)
}

// LoaderFunc adapts a function to Loader.
type LoaderFunc func(ctx context.Context) ([]content.Item, error)

// Load calls f.
func (f LoaderFunc) Load(ctx context.Context) ([]content.Item, error) {
	return f(ctx)
}
