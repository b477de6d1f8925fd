package state

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/llehouerou/gallery/internal/content"
	dbutil "github.com/llehouerou/gallery/internal/db"
)

// ReadCached returns the last cached catalog. A missing or unreadable cache
// is reported as a miss.
func (m *Manager) ReadCached() ([]content.Item, bool) {
	items, err := readCatalog(m.db)
	if err != nil {
		m.log.Warn("catalog cache read failed", zap.Error(err))
		return nil, false
	}
	if items == nil {
		return nil, false
	}
	return items, true
}

// WriteCached replaces the cached catalog. Failures are logged and dropped.
func (m *Manager) WriteCached(items []content.Item) {
	if err := writeCatalog(m.db, items, time.Now()); err != nil {
		m.log.Warn("catalog cache write failed", zap.Error(err))
	}
}

// CachedAt returns when the cache was last written.
func (m *Manager) CachedAt() (time.Time, bool) {
	var ts int64
	err := m.db.QueryRow(`SELECT fetched_at FROM catalog_meta WHERE id = 1`).Scan(&ts)
	if err != nil {
		return time.Time{}, false
	}
	return time.Unix(ts, 0), true
}

// ClearCache drops the cached catalog.
func (m *Manager) ClearCache() error {
	return dbutil.WithTx(context.Background(), m.db, func(tx *sql.Tx) error {
		if _, err := tx.Exec(`DELETE FROM catalog_items`); err != nil {
			return err
		}
		_, err := tx.Exec(`DELETE FROM catalog_meta`)
		return err
	})
}

// readCatalog returns nil, nil when nothing was ever cached.
func readCatalog(db *sql.DB) ([]content.Item, error) {
	var fetched int64
	err := db.QueryRow(`SELECT fetched_at FROM catalog_meta WHERE id = 1`).Scan(&fetched)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(`
		SELECT item_id, kind, title, description, media_url, cover_url, body, quote,
		       source, tags, created_at, initial_time, duration
		FROM catalog_items ORDER BY position
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []content.Item{}
	for rows.Next() {
		var it content.Item
		var kind string
		var description, mediaURL, coverURL, body, quote, source, tags sql.NullString
		var createdAt sql.NullInt64
		var initialTime, duration sql.NullFloat64
		if err := rows.Scan(&it.ID, &kind, &it.Title, &description, &mediaURL, &coverURL,
			&body, &quote, &source, &tags, &createdAt, &initialTime, &duration); err != nil {
			return nil, err
		}

		k, ok := content.ParseKind(kind)
		if !ok {
			return nil, fmt.Errorf("cached item %s has unknown kind %q", it.ID, kind)
		}
		it.Kind = k
		it.Description = dbutil.NullStringValue(description)
		it.MediaURL = dbutil.NullStringValue(mediaURL)
		it.CoverURL = dbutil.NullStringValue(coverURL)
		it.Body = dbutil.NullStringValue(body)
		it.Quote = dbutil.NullStringValue(quote)
		it.Source = dbutil.NullStringValue(source)
		it.CreatedAt = dbutil.UnixTime(createdAt)
		it.InitialTime = dbutil.NullFloat64Value(initialTime)
		it.Duration = dbutil.NullFloat64Value(duration)

		if raw := dbutil.NullStringValue(tags); raw != "" {
			if err := json.Unmarshal([]byte(raw), &it.Tags); err != nil {
				return nil, fmt.Errorf("cached item %s tags: %w", it.ID, err)
			}
		}

		items = append(items, it)
	}
	return items, rows.Err()
}

func writeCatalog(db *sql.DB, items []content.Item, now time.Time) error {
	return dbutil.WithTx(context.Background(), db, func(tx *sql.Tx) error {
		if _, err := tx.Exec(`DELETE FROM catalog_items`); err != nil {
			return err
		}

		stmt, err := tx.Prepare(`
			INSERT INTO catalog_items (position, item_id, kind, title, description, media_url,
			                           cover_url, body, quote, source, tags, created_at,
			                           initial_time, duration)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for i, it := range items {
			var tags sql.NullString
			if len(it.Tags) > 0 {
				raw, err := json.Marshal(it.Tags)
				if err != nil {
					return err
				}
				tags = sql.NullString{String: string(raw), Valid: true}
			}
			if _, err := stmt.Exec(i, it.ID, it.Kind.String(), it.Title, it.Description,
				it.MediaURL, it.CoverURL, it.Body, it.Quote, it.Source, tags,
				dbutil.UnixValue(it.CreatedAt), it.InitialTime, it.Duration); err != nil {
				return fmt.Errorf("cache item %s: %w", it.ID, err)
			}
		}

		_, err = tx.Exec(`
			INSERT INTO catalog_meta (id, fetched_at) VALUES (1, ?)
			ON CONFLICT(id) DO UPDATE SET fetched_at = excluded.fetched_at
		`, now.Unix())
		return err
	})
}
