// Package database opens the configured store, applies migrations, and hands
// back a ready repo.PersonRepo. It is the only package that knows which
// driver is in use.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/jackc/pgx/v5/tracelog"

	"github.com/leska/people-api/internal/config"
	"github.com/leska/people-api/internal/repo"
	"github.com/leska/people-api/migrations"
)

// Store is an opened database together with the PersonRepo built on it.
// Call Close when the server shuts down.
type Store struct {
	People repo.PersonRepo
	close  func()
}

// Close releases the underlying connections.
func (s *Store) Close() {
	if s.close != nil {
		s.close()
	}
}

// Open connects to the database described by cfg, verifies it is reachable,
// optionally applies pending migrations, and returns the Store.
func Open(ctx context.Context, cfg config.Config, log *slog.Logger) (*Store, error) {
	switch cfg.DatabaseDriver {
	case config.DriverPostgres:
		return openPostgres(ctx, cfg, log)
	case config.DriverSQLite:
		return openSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("database.Open: unsupported driver %q", cfg.DatabaseDriver)
	}
}

func openPostgres(ctx context.Context, cfg config.Config, log *slog.Logger) (*Store, error) {
	pool, err := NewPool(ctx, cfg.DatabaseURL, log, cfg.LogLevel == "debug")
	if err != nil {
		return nil, err
	}

	if cfg.MigrateOnStart {
		// goose needs database/sql; borrow a *sql.DB view over the same pool.
		db := stdlib.OpenDBFromPool(pool)
		err := migrate(ctx, config.DriverPostgres, db, log)
		db.Close()
		if err != nil {
			pool.Close()
			return nil, err
		}
	}

	return &Store{People: repo.NewPersonRepo(pool), close: pool.Close}, nil
}

func openSQLite(ctx context.Context, cfg config.Config, log *slog.Logger) (*Store, error) {
	db, err := repo.OpenSQLite(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("database.Open: %w", err)
	}

	if cfg.MigrateOnStart {
		if err := migrate(ctx, config.DriverSQLite, db, log); err != nil {
			db.Close()
			return nil, err
		}
	}

	return &Store{People: repo.NewSQLitePersonRepo(db), close: func() { db.Close() }}, nil
}

func migrate(ctx context.Context, driver string, db *sql.DB, log *slog.Logger) error {
	n, err := migrations.Up(ctx, driver, db)
	if err != nil {
		return fmt.Errorf("database.Open: %w", err)
	}
	log.Info("migrations applied", "driver", driver, "count", n)
	return nil
}

// NewPool builds a pgxpool.Pool for url and pings it.
// When traceSQL is set every query is logged at debug level through log.
func NewPool(ctx context.Context, url string, log *slog.Logger, traceSQL bool) (*pgxpool.Pool, error) {
	pcfg, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, fmt.Errorf("database.NewPool: parse config: %w", err)
	}

	if traceSQL {
		pcfg.ConnConfig.Tracer = &tracelog.TraceLog{
			Logger:   SlogTraceLogger(log),
			LogLevel: tracelog.LogLevelDebug,
		}
	}

	// NewWithConfig does not open connections immediately; Ping forces one.
	pool, err := pgxpool.NewWithConfig(ctx, pcfg)
	if err != nil {
		return nil, fmt.Errorf("database.NewPool: create pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("database.NewPool: ping: %w", err)
	}
	return pool, nil
}

// SlogTraceLogger adapts a slog.Logger to pgx's tracelog.Logger.
func SlogTraceLogger(log *slog.Logger) tracelog.Logger {
	return tracelog.LoggerFunc(func(ctx context.Context, level tracelog.LogLevel, msg string, data map[string]any) {
		attrs := make([]slog.Attr, 0, len(data))
		for k, v := range data {
			attrs = append(attrs, slog.Any(k, v))
		}
		log.LogAttrs(ctx, slogLevel(level), msg, attrs...)
	})
}

func slogLevel(level tracelog.LogLevel) slog.Level {
	switch level {
	case tracelog.LogLevelTrace, tracelog.LogLevelDebug:
		return slog.LevelDebug
	case tracelog.LogLevelInfo:
		return slog.LevelInfo
	case tracelog.LogLevelWarn:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}
