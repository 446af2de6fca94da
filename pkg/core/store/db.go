// Package store is the Postgres-backed configuration side of the
// quoting engine: admin-editable industry overrides and region pricing
// tables. The engine only ever reads here; writes happen through the
// admin surface and the seed tool.
package store

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
)

var (
	pool *pgxpool.Pool
	once sync.Once
)

// InitDB initializes the connection pool from DATABASE_URL. The pool
// is optional for the engine: callers run with template defaults and
// built-in pricing when no database is configured.
func InitDB(ctx context.Context) error {
	var err error
	once.Do(func() {
		dbURL := os.Getenv("DATABASE_URL")
		if dbURL == "" {
			err = fmt.Errorf("DATABASE_URL environment variable not set")
			return
		}

		cfg, parseErr := pgxpool.ParseConfig(dbURL)
		if parseErr != nil {
			err = fmt.Errorf("failed to parse database config: %w", parseErr)
			return
		}

		pool, err = pgxpool.NewWithConfig(ctx, cfg)
		if err == nil {
			logrus.WithField("component", "store").Info("database pool initialized")
		}
	})
	return err
}

// GetPool returns the connection pool, nil when InitDB has not run or
// failed.
func GetPool() *pgxpool.Pool {
	return pool
}

// Close closes the connection pool.
func Close() {
	if pool != nil {
		pool.Close()
	}
}
