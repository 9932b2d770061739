// Package db owns the PostgreSQL pool and the schema migrations.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/leadexchange/leadmarket/internal/config"

	// postgres driver for database/sql
	_ "github.com/lib/pq"
)

// DBTX is satisfied by both *sql.DB and *sql.Tx, so repositories run
// unchanged inside or outside a transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

var (
	_ DBTX = (*sql.DB)(nil)
	_ DBTX = (*sql.Tx)(nil)
)

// DB is the shared connection pool.
type DB struct {
	*sql.DB
	logger *slog.Logger
}

// Connect opens the pool described by cfg and verifies it with a ping. The
// pool is closed again if the ping fails.
func Connect(ctx context.Context, cfg *config.DatabaseConfig, logger *slog.Logger) (*DB, error) {
	logger = logger.With("db_host", cfg.Host, "db_name", cfg.DBName)

	pool, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.DBName, err)
	}
	pool.SetMaxOpenConns(cfg.MaxOpenConns)
	pool.SetMaxIdleConns(cfg.MaxIdleConns)
	pool.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := pool.PingContext(ctx); err != nil {
		_ = pool.Close() //nolint:errcheck // pool never became usable
		logger.Error("database unreachable", "error", err)
		return nil, fmt.Errorf("ping %s: %w", cfg.DBName, err)
	}

	logger.Info("database pool ready",
		"max_open_conns", cfg.MaxOpenConns,
		"max_idle_conns", cfg.MaxIdleConns,
	)
	return &DB{DB: pool, logger: logger}, nil
}

// BeginReadCommitted starts a READ COMMITTED transaction. Purchases rely on
// the row locks taken inside it rather than on a stricter isolation level.
func (db *DB) BeginReadCommitted(ctx context.Context) (*sql.Tx, error) {
	tx, err := db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	return tx, nil
}

// Close releases the pool.
func (db *DB) Close() error {
	db.logger.Info("closing database pool")
	return db.DB.Close()
}
