// Package migrations embeds the SQL migration files so they can be used
// by the goose programmatic API in tests and server bootstrap.
//
// Each supported database driver has its own directory because the DDL
// differs (BIGSERIAL vs AUTOINCREMENT).
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var all embed.FS

// Postgres holds the *.sql migrations for the Postgres store.
var Postgres = mustSub("postgres")

// SQLite holds the *.sql migrations for the SQLite store.
var SQLite = mustSub("sqlite")

// For returns the goose dialect and migration files for the named driver
// ("postgres" or "sqlite").
func For(driver string) (goose.Dialect, fs.FS, error) {
	switch driver {
	case "postgres":
		return goose.DialectPostgres, Postgres, nil
	case "sqlite":
		return goose.DialectSQLite3, SQLite, nil
	default:
		return "", nil, fmt.Errorf("migrations.For: unsupported driver %q", driver)
	}
}

// Up applies every pending migration for driver to db and returns the number
// of migrations applied.
func Up(ctx context.Context, driver string, db *sql.DB) (int, error) {
	dialect, fsys, err := For(driver)
	if err != nil {
		return 0, err
	}

	provider, err := goose.NewProvider(dialect, db, fsys)
	if err != nil {
		return 0, fmt.Errorf("migrations.Up: create goose provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return 0, fmt.Errorf("migrations.Up: %w", err)
	}
	return len(results), nil
}

func mustSub(dir string) fs.FS {
	sub, err := fs.Sub(all, dir)
	if err != nil {
		panic("migrations: " + err.Error())
	}
	return sub
}
