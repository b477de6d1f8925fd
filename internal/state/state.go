// Package state persists the local catalog cache and small bits of UI state
// in a sqlite database under the XDG data directory.
package state

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/adrg/xdg"
	"go.uber.org/zap"
	_ "modernc.org/sqlite" // SQLite driver
)

const (
	appName      = "gallery"
	dbFileName   = "gallery.db"
	saveDebounce = 500 * time.Millisecond
)

type Manager struct {
	db  *sql.DB
	log *zap.Logger

	saveMu       sync.Mutex
	saveTimer    *time.Timer
	pendingQuery *string
}

// Open opens the database at its XDG location.
func Open(log *zap.Logger) (*Manager, error) {
	dbPath, err := getDBPath()
	if err != nil {
		return nil, err
	}
	return OpenAt(dbPath, log)
}

// OpenAt opens (or creates) the database at path.
func OpenAt(dbPath string, log *zap.Logger) (*Manager, error) {
	if log == nil {
		log = zap.NewNop()
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}
	// Serialize access; the debounce timer writes from its own goroutine.
	db.SetMaxOpenConns(1)

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Manager{db: db, log: log}, nil
}

// Close flushes any pending debounced save and closes the database.
func (m *Manager) Close() error {
	m.saveMu.Lock()
	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}
	pending := m.pendingQuery
	m.pendingQuery = nil
	m.saveMu.Unlock()

	if pending != nil {
		m.writeQuery(*pending)
	}

	return m.db.Close()
}

func (m *Manager) DB() *sql.DB {
	return m.db
}

func getDBPath() (string, error) {
	return xdg.DataFile(filepath.Join(appName, dbFileName))
}
