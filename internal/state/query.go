package state

import (
	"database/sql"
	"errors"
	"time"

	"go.uber.org/zap"
)

// GetQuery returns the last saved search query, or "" on first run.
func (m *Manager) GetQuery() (string, error) {
	var q string
	err := m.db.QueryRow(`SELECT last_query FROM ui_state WHERE id = 1`).Scan(&q)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	return q, err
}

// SaveQuery schedules a debounced save of the search query. Typing bursts
// collapse into a single write.
func (m *Manager) SaveQuery(query string) {
	m.saveMu.Lock()
	defer m.saveMu.Unlock()

	m.pendingQuery = &query

	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}

	m.saveTimer = time.AfterFunc(saveDebounce, func() {
		m.saveMu.Lock()
		pending := m.pendingQuery
		m.pendingQuery = nil
		m.saveMu.Unlock()

		if pending != nil {
			m.writeQuery(*pending)
		}
	})
}

func (m *Manager) writeQuery(query string) {
	_, err := m.db.Exec(`
		INSERT INTO ui_state (id, last_query) VALUES (1, ?)
		ON CONFLICT(id) DO UPDATE SET last_query = excluded.last_query
	`, query)
	if err != nil {
		m.log.Warn("saving query failed", zap.Error(err))
	}
}
