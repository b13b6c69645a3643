// Package postgres opens the relational store that backs the user roster and the listing catalog.
package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // PostgreSQL driver
)

// Config holds connection and pool parameters.
type Config struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// DB wraps a sqlx handle.
type DB struct {
	*sqlx.DB
}

// Open creates the pool without connecting. Use WaitForReady to block until Postgres answers.
func Open(cfg Config) (*DB, error) {
	if cfg.DSN == "" {
		return nil, fmt.Errorf("dsn is required")
	}

	conn, err := sqlx.Open("postgres", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if cfg.MaxOpenConns > 0 {
		conn.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		conn.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		conn.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	return &DB{DB: conn}, nil
}

// Ping checks connectivity.
func (d *DB) Ping(ctx context.Context) error {
	if err := d.PingContext(ctx); err != nil {
		return fmt.Errorf("ping postgres: %w", err)
	}
	return nil
}

// Close releases the pool.
func (d *DB) Close() {
	_ = d.DB.Close()
}

// WaitForReady polls Ping until Postgres responds or timeout expires.
func (d *DB) WaitForReady(ctx context.Context, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ticker := time.NewTicker(250 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return fmt.Errorf("timeout waiting for postgres: %w", ctx.Err())
		case <-ticker.C:
			if err := d.Ping(ctx); err == nil {
				return nil
			}
		}
	}
}
