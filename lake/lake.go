package lake

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite" // pure Go SQLite driver
)

// Lake is a handle on the GTFS lake database.
type Lake struct {
	db *sql.DB
}

// Open connects to the lake database at path and ensures all static and
// realtime tables exist. Use ":memory:" for an ephemeral lake.
func Open(path string) (*Lake, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open lake %s: %w", path, err)
	}
	l := &Lake{db: db}
	if err := l.createTables(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return l, nil
}

// OpenReadOnly connects without running any DDL.
func OpenReadOnly(path string) (*Lake, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open lake %s: %w", path, err)
	}
	return &Lake{db: db}, nil
}

func (l *Lake) Close() error {
	return l.db.Close()
}

// DB exposes the underlying pool for callers that need raw access.
func (l *Lake) DB() *sql.DB {
	return l.db
}

func (l *Lake) createTables() error {
	for _, tbl := range StaticTables {
		if _, err := l.db.Exec(schema[tbl]); err != nil {
			return fmt.Errorf("create table %s: %w", tbl, err)
		}
	}
	for _, tbl := range RealtimeTables {
		if _, err := l.db.Exec(schema[tbl]); err != nil {
			return fmt.Errorf("create table %s: %w", tbl, err)
		}
	}
	return nil
}
