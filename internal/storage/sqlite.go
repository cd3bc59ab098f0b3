package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

const createKVTable = `
CREATE TABLE IF NOT EXISTS kv (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
`

type sqliteStore struct {
	db     *sql.DB
	prefix string
}

// OpenSQLite opens (or creates) a sqlite-backed store at the given path and
// ensures parent directories exist. Every key is namespaced with prefix
// before it reaches the database.
func OpenSQLite(path, prefix string) (Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	// single writer; the app has no concurrent sessions
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err := db.Exec(createKVTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("create kv table: %w", err)
	}

	return &sqliteStore{db: db, prefix: prefix}, nil
}

func (s *sqliteStore) Get(ctx context.Context, key string) ([]byte, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM kv WHERE key = ?`, s.prefix+key,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", key, err)
	}
	return []byte(value), nil
}

func (s *sqliteStore) Set(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx, `
INSERT INTO kv (key, value) VALUES (?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		s.prefix+key, string(value),
	)
	if err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

func (s *sqliteStore) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx,
		`DELETE FROM kv WHERE key = ?`, s.prefix+key,
	); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

func (s *sqliteStore) Close() error {
	return s.db.Close()
}
