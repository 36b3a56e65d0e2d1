package database

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/codewithtanvir/railsheba-premium/config"
)

// Store is a durable key/value mapping. Writes are synchronous: a Get
// after a successful Set of the same key observes the new value.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Close() error
}

// Open connects the store selected by cfg.StoreBackend and makes sure
// its schema exists.
func Open(ctx context.Context, cfg *config.Config, logger *slog.Logger) (Store, error) {
	switch cfg.StoreBackend {
	case "memory":
		return NewMemoryStore(), nil
	case "postgres":
		return OpenPostgres(ctx, cfg.PostgresDSN(), logger)
	case "sqlite":
		return OpenSQLite(cfg.SQLitePath, logger)
	default:
		return nil, fmt.Errorf("unsupported store backend: %s", cfg.StoreBackend)
	}
}
