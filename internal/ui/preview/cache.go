// Package preview loads, scales and encodes images for the Kitty graphics
// protocol, with a disk cache of scaled PNGs.
package preview

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/adrg/xdg"
	"github.com/cespare/xxhash/v2"
)

const (
	cacheDirName = "gallery/preview"
	cacheMaxAge  = 30 * 24 * time.Hour
)

// Cache stores scaled PNGs keyed by locator and cell size.
type Cache struct {
	dir string
}

// NewCache creates the cache directory under dir, or under the XDG cache
// home when dir is empty, and prunes stale entries in the background.
func NewCache(dir string) (*Cache, error) {
	if dir == "" {
		dir = filepath.Join(xdg.CacheHome, cacheDirName)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	c := &Cache{dir: dir}
	go c.prune(time.Now().Add(-cacheMaxAge))
	return c, nil
}

func cacheKey(locator string, cols, rows int) string {
	h := xxhash.New()
	_, _ = h.WriteString(locator)
	_, _ = h.WriteString(":" + strconv.Itoa(cols) + "x" + strconv.Itoa(rows))
	return strconv.FormatUint(h.Sum64(), 16)
}

func (c *Cache) path(locator string, cols, rows int) string {
	return filepath.Join(c.dir, cacheKey(locator, cols, rows)+".png")
}

// Get returns cached PNG data, or nil on a miss. A nil Cache always misses.
func (c *Cache) Get(locator string, cols, rows int) []byte {
	if c == nil {
		return nil
	}
	path := c.path(locator, cols, rows)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	now := time.Now()
	_ = os.Chtimes(path, now, now) //nolint:errcheck // keeps hot entries out of pruning
	return data
}

// Put stores PNG data. A nil Cache discards it.
func (c *Cache) Put(locator string, cols, rows int, data []byte) error {
	if c == nil {
		return nil
	}
	return os.WriteFile(c.path(locator, cols, rows), data, 0o600)
}

// prune removes entries last touched before cutoff.
func (c *Cache) prune(cutoff time.Time) {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			_ = os.Remove(filepath.Join(c.dir, entry.Name())) //nolint:errcheck // best-effort cleanup
		}
	}
}
