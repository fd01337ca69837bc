// Package store persists the demo host's picker state. The widget itself
// never touches this: the host owns persistence entirely.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	// modernc.org/sqlite driver name is "sqlite".
	_ "modernc.org/sqlite"
)

const lastPickKey = "last_pick"

// Store is a single-table SQLite key/value state file.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the state file at path.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open state db: %w", err)
	}
	// WAL enables one writer + many readers; busy_timeout helps avoid
	// "database is locked" flakiness when two instances share a state file.
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma: %w", err)
		}
	}
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS picker_state (
		k TEXT PRIMARY KEY,
		v TEXT NOT NULL
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate state db: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// SaveLastPick records the most recent committed selection. ok=false (a
// cleared selection) removes the record.
func (s *Store) SaveLastPick(ctx context.Context, date time.Time, ok bool) error {
	if !ok {
		if _, err := s.db.ExecContext(ctx, `DELETE FROM picker_state WHERE k = ?`, lastPickKey); err != nil {
			return fmt.Errorf("clear last pick: %w", err)
		}
		return nil
	}
	v := date.Format("2006-01-02")
	if _, err := s.db.ExecContext(ctx, `INSERT OR REPLACE INTO picker_state(k, v) VALUES(?, ?)`, lastPickKey, v); err != nil {
		return fmt.Errorf("save last pick: %w", err)
	}
	return nil
}

// LoadLastPick returns the stored selection, with ok=false when none exists.
func (s *Store) LoadLastPick(ctx context.Context) (time.Time, bool, error) {
	var v string
	err := s.db.QueryRowContext(ctx, `SELECT v FROM picker_state WHERE k = ?`, lastPickKey).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, fmt.Errorf("load last pick: %w", err)
	}
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		// A corrupt value behaves like no value rather than wedging startup.
		return time.Time{}, false, nil
	}
	return t, true, nil
}
