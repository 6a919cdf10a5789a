// Package migrate applies the embedded SQL migrations that define the
// jobtrackr schema. Applied versions are tracked in a schema_migrations
// ledger table so Run can be called on every startup.
package migrate

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// migration is one embedded file, named NNNN_description.sql. The full
// filename minus the extension is the ledger version, so renaming an applied
// file would re-run it.
type migration struct {
	version string
	file    string
}

// Run applies every pending migration in filename order, each in its own
// transaction together with its ledger insert. Already-applied versions are
// skipped, so repeated calls are safe.
func Run(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version TEXT PRIMARY KEY,
			applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`); err != nil {
		return fmt.Errorf("ensure schema_migrations ledger: %w", err)
	}

	pending, err := pendingMigrations(ctx, db)
	if err != nil {
		return err
	}

	logger := slog.Default().With("component", "migrate")
	for _, m := range pending {
		if err := apply(ctx, db, logger, m); err != nil {
			return err
		}
	}
	if len(pending) > 0 {
		logger.InfoContext(ctx, "schema migrations applied", "count", len(pending))
	}
	return nil
}

// pendingMigrations lists embedded migrations not yet in the ledger, sorted
// by filename.
func pendingMigrations(ctx context.Context, db *sql.DB) ([]migration, error) {
	applied, err := appliedVersions(ctx, db)
	if err != nil {
		return nil, err
	}

	entries, err := migrationsFS.ReadDir("migrations")
	if err != nil {
		return nil, fmt.Errorf("read embedded migrations: %w", err)
	}

	var pending []migration
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".sql") {
			continue
		}
		version := strings.TrimSuffix(e.Name(), ".sql")
		if _, ok := applied[version]; ok {
			continue
		}
		pending = append(pending, migration{version: version, file: e.Name()})
	}
	sort.Slice(pending, func(i, j int) bool { return pending[i].file < pending[j].file })
	return pending, nil
}

func appliedVersions(ctx context.Context, db *sql.DB) (map[string]struct{}, error) {
	rows, err := db.QueryContext(ctx, `SELECT version FROM schema_migrations`)
	if err != nil {
		return nil, fmt.Errorf("read schema_migrations ledger: %w", err)
	}
	defer rows.Close()

	applied := make(map[string]struct{})
	for rows.Next() {
		var version string
		if err := rows.Scan(&version); err != nil {
			return nil, fmt.Errorf("scan applied version: %w", err)
		}
		applied[version] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read schema_migrations ledger: %w", err)
	}
	return applied, nil
}

// apply runs one migration and records it, both in the same transaction so a
// failed statement leaves the ledger untouched.
func apply(ctx context.Context, db *sql.DB, logger *slog.Logger, m migration) error {
	stmts, err := migrationsFS.ReadFile("migrations/" + m.file)
	if err != nil {
		return fmt.Errorf("read migration %s: %w", m.file, err)
	}

	logger.InfoContext(ctx, "applying migration", "version", m.version)

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin migration %s: %w", m.file, err)
	}
	defer func() {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			logger.ErrorContext(ctx, "migration rollback failed",
				"version", m.version, "error", rbErr)
		}
	}()

	if _, err := tx.ExecContext(ctx, string(stmts)); err != nil {
		return fmt.Errorf("apply migration %s: %w", m.file, err)
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO schema_migrations (version) VALUES ($1)`, m.version); err != nil {
		return fmt.Errorf("record migration %s: %w", m.file, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit migration %s: %w", m.file, err)
	}
	return nil
}
