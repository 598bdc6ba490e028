package db

import (
	"context"
	"fmt"
	"io/fs"
	"sort"

	"offer-agent/migrations"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ApplyMigrations runs every embedded .sql file against the pool in lexical
// order. The files are idempotent, so this is safe to call on every boot.
func ApplyMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	entries, err := fs.Glob(migrations.Files, "*.sql")
	if err != nil {
		return fmt.Errorf("list migrations: %w", err)
	}
	sort.Strings(entries)

	for _, name := range entries {
		sql, err := fs.ReadFile(migrations.Files, name)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", name, err)
		}
		if _, err := pool.Exec(ctx, string(sql)); err != nil {
			return fmt.Errorf("apply migration %s: %w", name, err)
		}
	}
	return nil
}
