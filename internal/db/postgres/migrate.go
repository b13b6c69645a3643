package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"path"
	"slices"

	"github.com/kailas-cloud/roommatch/internal/db"
)

// execer is the subset of *DB that Migrate needs.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	SelectContext(ctx context.Context, dest any, query string, args ...any) error
}

const createMigrationsTable = `CREATE TABLE IF NOT EXISTS schema_migrations (
	name       TEXT PRIMARY KEY,
	applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// Migrate applies every *.sql file in fsys that schema_migrations does not list yet,
// in lexical order, and returns the names it applied.
func Migrate(ctx context.Context, d execer, fsys fs.FS) ([]string, error) {
	if _, err := d.ExecContext(ctx, createMigrationsTable); err != nil {
		return nil, &db.Error{Op: db.OpExec, Err: fmt.Errorf("create schema_migrations: %w", err)}
	}

	var done []string
	if err := d.SelectContext(ctx, &done, `SELECT name FROM schema_migrations`); err != nil {
		return nil, &db.Error{Op: db.OpSelect, Err: fmt.Errorf("list migrations: %w", err)}
	}

	names, err := fs.Glob(fsys, "*.sql")
	if err != nil {
		return nil, fmt.Errorf("glob migrations: %w", err)
	}
	slices.Sort(names)

	var applied []string
	for _, name := range names {
		if slices.Contains(done, name) {
			continue
		}
		body, err := fs.ReadFile(fsys, name)
		if err != nil {
			return applied, fmt.Errorf("read %s: %w", name, err)
		}
		if _, err := d.ExecContext(ctx, string(body)); err != nil {
			return applied, &db.Error{Op: db.OpExec, Err: fmt.Errorf("apply %s: %w", path.Base(name), err)}
		}
		if _, err := d.ExecContext(ctx, `INSERT INTO schema_migrations (name) VALUES ($1)`, name); err != nil {
			return applied, &db.Error{Op: db.OpExec, Err: fmt.Errorf("record %s: %w", name, err)}
		}
		applied = append(applied, name)
	}
	return applied, nil
}
