package state

import (
	"sync"
	"time"

	"github.com/llehouerou/gallery/internal/content"
)

// Mock is an in-memory test double for Manager.
type Mock struct {
	mu       sync.Mutex
	items    []content.Item
	cached   bool
	cachedAt time.Time
	query    string
	writes   int
	closed   bool
}

// NewMock creates a new mock state manager for testing.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) ReadCached() ([]content.Item, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.items, m.cached
}

func (m *Mock) WriteCached(items []content.Item) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = items
	m.cached = true
	m.cachedAt = time.Now()
	m.writes++
}

func (m *Mock) CachedAt() (time.Time, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cachedAt, m.cached
}

func (m *Mock) ClearCache() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = nil
	m.cached = false
	return nil
}

func (m *Mock) SaveQuery(query string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.query = query
}

func (m *Mock) GetQuery() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.query, nil
}

func (m *Mock) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// Test helpers

func (m *Mock) SetCached(items []content.Item) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = items
	m.cached = true
}

func (m *Mock) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}

func (m *Mock) IsClosed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
