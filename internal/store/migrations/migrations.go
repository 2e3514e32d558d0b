package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

//go:embed sql/*.sql
var sqlFiles embed.FS

const createSchemaMigrations = `
	CREATE TABLE IF NOT EXISTS schema_migrations (
		version INTEGER PRIMARY KEY,
		applied_at TIMESTAMP DEFAULT now()
	)`

type migration struct {
	version int
	name    string
	query   string
}

// Run applies every migration not yet recorded in schema_migrations.
func Run(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, createSchemaMigrations); err != nil {
		return fmt.Errorf("failed to create schema_migrations: %w", err)
	}

	all, err := load()
	if err != nil {
		return err
	}

	for _, m := range all {
		var applied int
		if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM schema_migrations WHERE version = ?`, m.version).Scan(&applied); err != nil {
			return fmt.Errorf("failed to read migration %d: %w", m.version, err)
		}
		if applied > 0 {
			continue
		}

		if err := apply(ctx, db, m); err != nil {
			return err
		}
		zap.S().Named("migrations").Debugw("migration applied", "version", m.version, "name", m.name)
	}

	return nil
}

func apply(ctx context.Context, db *sql.DB, m migration) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, m.query); err != nil {
		return fmt.Errorf("failed to apply migration %s: %w", m.name, err)
	}
	if _, err := tx.ExecContext(ctx, `INSERT INTO schema_migrations (version) VALUES (?)`, m.version); err != nil {
		return fmt.Errorf("failed to record migration %s: %w", m.name, err)
	}

	return tx.Commit()
}

func load() ([]migration, error) {
	entries, err := fs.ReadDir(sqlFiles, "sql")
	if err != nil {
		return nil, err
	}

	var all []migration
	for _, e := range entries {
		prefix, _, ok := strings.Cut(e.Name(), "_")
		if !ok {
			return nil, fmt.Errorf("migration %s has no version prefix", e.Name())
		}
		version, err := strconv.Atoi(prefix)
		if err != nil {
			return nil, fmt.Errorf("migration %s has an invalid version: %w", e.Name(), err)
		}
		content, err := fs.ReadFile(sqlFiles, "sql/"+e.Name())
		if err != nil {
			return nil, err
		}
		all = append(all, migration{version: version, name: e.Name(), query: string(content)})
	}

	sort.Slice(all, func(i, j int) bool { return all[i].version < all[j].version })
	return all, nil
}
