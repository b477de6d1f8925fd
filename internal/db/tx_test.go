package db

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	_ "modernc.org/sqlite"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	db.SetMaxOpenConns(1)

	_, err = db.Exec(`CREATE TABLE items (id INTEGER PRIMARY KEY, title TEXT)`)
	if err != nil {
		db.Close()
		t.Fatalf("failed to create table: %v", err)
	}

	return db
}

func countRows(t *testing.T, db *sql.DB) int {
	t.Helper()
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM items`).Scan(&count); err != nil {
		t.Fatalf("query failed: %v", err)
	}
	return count
}

func TestWithTx_Commit(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	err := WithTx(context.Background(), db, func(tx *sql.Tx) error {
		for _, title := range []string{"dunes", "harbor"} {
			if _, err := tx.Exec(`INSERT INTO items (title) VALUES (?)`, title); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("WithTx failed: %v", err)
	}

	if got := countRows(t, db); got != 2 {
		t.Errorf("count = %d, want 2", got)
	}
}

func TestWithTx_RollbackOnError(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	abort := errors.New("abort")
	err := WithTx(context.Background(), db, func(tx *sql.Tx) error {
		if _, err := tx.Exec(`INSERT INTO items (title) VALUES (?)`, "dunes"); err != nil {
			return err
		}
		return abort
	})

	if !errors.Is(err, abort) {
		t.Fatalf("WithTx error = %v, want %v", err, abort)
	}
	if got := countRows(t, db); got != 0 {
		t.Errorf("count = %d, want 0 (rolled back)", got)
	}
}

func TestWithTx_CanceledContext(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := WithTx(ctx, db, func(_ *sql.Tx) error {
		called = true
		return nil
	})
	if err == nil {
		t.Fatal("expected error for canceled context")
	}
	if called {
		t.Error("fn should not run when the transaction cannot begin")
	}
}

func TestNullValues(t *testing.T) {
	if got := NullStringValue(sql.NullString{String: "x", Valid: true}); got != "x" {
		t.Errorf("NullStringValue(valid) = %q", got)
	}
	if got := NullStringValue(sql.NullString{String: "x"}); got != "" {
		t.Errorf("NullStringValue(invalid) = %q", got)
	}
	if got := NullFloat64Value(sql.NullFloat64{Float64: 1.5, Valid: true}); got != 1.5 {
		t.Errorf("NullFloat64Value(valid) = %v", got)
	}
	if got := NullFloat64Value(sql.NullFloat64{Float64: 1.5}); got != 0 {
		t.Errorf("NullFloat64Value(invalid) = %v", got)
	}
}

func TestUnixRoundTrip(t *testing.T) {
	ts := time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)
	if got := UnixTime(UnixValue(ts)); !got.Equal(ts) {
		t.Errorf("round trip = %v, want %v", got, ts)
	}
	if v := UnixValue(time.Time{}); v.Valid {
		t.Error("zero time should be NULL")
	}
	if got := UnixTime(sql.NullInt64{Valid: true}); !got.IsZero() {
		t.Errorf("UnixTime(0) = %v, want zero", got)
	}
}
