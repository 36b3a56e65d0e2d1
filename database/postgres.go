package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/lib/pq"
)

const (
	connectRetries    = 30
	connectRetryDelay = 2 * time.Second
)

// PostgresStore keeps the key/value records in a shared PostgreSQL table.
type PostgresStore struct {
	db *sql.DB
}

// OpenPostgres establishes a connection to PostgreSQL, retrying while
// the server comes up, and creates the kv_store table.
func OpenPostgres(ctx context.Context, dsn string, logger *slog.Logger) (*PostgresStore, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	// One user, a handful of keys
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(5 * time.Minute)

	for i := 0; i < connectRetries; i++ {
		err = db.PingContext(ctx)
		if err == nil {
			break
		}
		logger.Warn("failed to connect to database",
			"attempt", i+1, "max_attempts", connectRetries, "error", err)
		select {
		case <-ctx.Done():
			db.Close()
			return nil, ctx.Err()
		case <-time.After(connectRetryDelay):
		}
	}
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", connectRetries, err)
	}
	logger.Info("successfully connected to database")

	if _, err := db.ExecContext(ctx, kvSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("error creating kv_store: %w", err)
	}

	return &PostgresStore{db: db}, nil
}

func (p *PostgresStore) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := p.db.QueryRowContext(ctx, `SELECT value FROM kv_store WHERE key = $1`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return value, true, nil
}

func (p *PostgresStore) Set(ctx context.Context, key, value string) error {
	_, err := p.db.ExecContext(ctx, `
		INSERT INTO kv_store (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

func (p *PostgresStore) Close() error {
	if p.db != nil {
		return p.db.Close()
	}
	return nil
}
