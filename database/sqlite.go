package database

import (
	"context"
	"fmt"
	"log/slog"

	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

// sqlitePoolSize is small on purpose: the client has one user and
// SQLite serializes writes anyway.
const sqlitePoolSize = 2

// SQLiteStore is the default local Store, one row per key.
type SQLiteStore struct {
	pool   *sqlitex.Pool
	logger *slog.Logger
	path   string
}

// OpenSQLite opens (creating if needed) the database file at path.
func OpenSQLite(path string, logger *slog.Logger) (*SQLiteStore, error) {
	if path == "" {
		return nil, fmt.Errorf("sqlite store: path is required")
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	poolSize := sqlitePoolSize
	if path == ":memory:" {
		// Every in-memory connection is its own database
		poolSize = 1
	}

	pool, err := sqlitex.NewPool(path, sqlitex.PoolOptions{
		PoolSize:    poolSize,
		PrepareConn: prepareConnection,
	})
	if err != nil {
		return nil, fmt.Errorf("sqlite store: opening %s: %w", path, err)
	}

	logger.Info("sqlite store opened", "path", path, "pool_size", poolSize)
	return &SQLiteStore{pool: pool, logger: logger, path: path}, nil
}

func prepareConnection(conn *sqlite.Conn) error {
	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA busy_timeout=5000",
	}
	for _, pragma := range pragmas {
		if err := sqlitex.ExecuteTransient(conn, pragma, nil); err != nil {
			return fmt.Errorf("sqlite store: %s: %w", pragma, err)
		}
	}
	return sqlitex.ExecuteTransient(conn, kvSchema, nil)
}

func (s *SQLiteStore) Get(ctx context.Context, key string) (string, bool, error) {
	conn, err := s.pool.Take(ctx)
	if err != nil {
		return "", false, fmt.Errorf("sqlite store: take: %w", err)
	}
	defer s.pool.Put(conn)

	var (
		value string
		found bool
	)
	err = sqlitex.Execute(conn, `SELECT value FROM kv_store WHERE key = ?`, &sqlitex.ExecOptions{
		Args: []any{key},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			value = stmt.ColumnText(0)
			found = true
			return nil
		},
	})
	if err != nil {
		return "", false, fmt.Errorf("sqlite store: get %s: %w", key, err)
	}
	return value, found, nil
}

func (s *SQLiteStore) Set(ctx context.Context, key, value string) error {
	conn, err := s.pool.Take(ctx)
	if err != nil {
		return fmt.Errorf("sqlite store: take: %w", err)
	}
	defer s.pool.Put(conn)

	err = sqlitex.Execute(conn, `
		INSERT INTO kv_store (key, value) VALUES (?, ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value
	`, &sqlitex.ExecOptions{Args: []any{key, value}})
	if err != nil {
		return fmt.Errorf("sqlite store: set %s: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	if err := s.pool.Close(); err != nil {
		s.logger.Error("sqlite store close error", "path", s.path, "error", err)
		return fmt.Errorf("sqlite store: closing %s: %w", s.path, err)
	}
	s.logger.Info("sqlite store closed", "path", s.path)
	return nil
}
