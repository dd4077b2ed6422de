package postgres

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"slices"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/jmoiron/sqlx"
)

//go:embed migrations/*.sql
var embedded embed.FS

// Migration is one schema step loaded from a "v<semver>_<name>.sql" file.
type Migration struct {
	Version *semver.Version
	Name    string
	Up      string
}

// EmbeddedMigrations returns the migrations shipped with the binary.
func EmbeddedMigrations() ([]Migration, error) {
	sub, err := fs.Sub(embedded, "migrations")
	if err != nil {
		return nil, err
	}
	return LoadMigrations(sub)
}

// LoadMigrations reads every .sql file at the root of fsys, ordered by version.
func LoadMigrations(fsys fs.FS) ([]Migration, error) {
	files, err := fs.Glob(fsys, "*.sql")
	if err != nil {
		return nil, err
	}

	migrations := make([]Migration, 0, len(files))
	seen := make(map[string]bool, len(files))
	for _, file := range files {
		version, name, ok := strings.Cut(strings.TrimSuffix(path.Base(file), ".sql"), "_")
		if !ok {
			return nil, fmt.Errorf("migration %s: expected v<version>_<name>.sql", file)
		}
		v, err := semver.NewVersion(version)
		if err != nil {
			return nil, fmt.Errorf("migration %s: invalid version: %w", file, err)
		}
		if seen[v.String()] {
			return nil, fmt.Errorf("migration %s: duplicate version %s", file, v)
		}
		seen[v.String()] = true

		up, err := fs.ReadFile(fsys, file)
		if err != nil {
			return nil, fmt.Errorf("failed to read migration %s: %w", file, err)
		}
		migrations = append(migrations, Migration{Version: v, Name: name, Up: string(up)})
	}

	slices.SortFunc(migrations, func(a, b Migration) int {
		return a.Version.Compare(b.Version)
	})
	return migrations, nil
}

// Migrate applies the migrations newer than the latest version recorded in
// schema_version. Each migration runs in its own transaction.
func Migrate(ctx context.Context, logger *slog.Logger, db *sqlx.DB, migrations []Migration) error {
	_, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS schema_version (
		version TEXT PRIMARY KEY,
		applied_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`)
	if err != nil {
		return fmt.Errorf("failed to create schema_version: %w", err)
	}

	current, err := CurrentVersion(ctx, db)
	if err != nil {
		return err
	}

	for _, m := range migrations {
		if !current.LessThan(m.Version) {
			continue
		}
		if err := apply(ctx, db, m); err != nil {
			return err
		}
		logger.Info("migration applied", slog.String("version", m.Version.String()), slog.String("name", m.Name))
		current = m.Version
	}
	return nil
}

// CurrentVersion returns the greatest applied version, or 0.0.0 on an empty database.
func CurrentVersion(ctx context.Context, db *sqlx.DB) (*semver.Version, error) {
	var applied []string
	if err := db.SelectContext(ctx, &applied, `SELECT version FROM schema_version`); err != nil {
		return nil, fmt.Errorf("failed to read schema_version: %w", err)
	}

	current := semver.MustParse("0.0.0")
	for _, s := range applied {
		v, err := semver.NewVersion(s)
		if err != nil {
			return nil, fmt.Errorf("invalid schema version %q: %w", s, err)
		}
		if v.GreaterThan(current) {
			current = v
		}
	}
	return current, nil
}

func apply(ctx context.Context, db *sqlx.DB, m Migration) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, m.Up); err != nil {
		return fmt.Errorf("failed to apply migration %s: %w", m.Version, err)
	}
	query := db.Rebind(`INSERT INTO schema_version (version) VALUES (?)`)
	if _, err := tx.ExecContext(ctx, query, m.Version.String()); err != nil {
		return fmt.Errorf("failed to record migration %s: %w", m.Version, err)
	}
	return tx.Commit()
}
