package state

import (
	"time"

	"github.com/llehouerou/gallery/internal/catalog"
)

// Interface defines the state manager contract for dependency injection and testing.
type Interface interface {
	catalog.Cache
	CachedAt() (time.Time, bool)
	ClearCache() error
	SaveQuery(query string)
	GetQuery() (string, error)
	Close() error
}

// Verify Manager implements Interface at compile time.
var _ Interface = (*Manager)(nil)
