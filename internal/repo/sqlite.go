package repo

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3" // registers the "sqlite3" driver for database/sql

	"github.com/leska/people-api/internal/domain"
)

// sqlDB is the subset of *sql.DB and *sql.Tx used by the SQLite store.
// Like db above, it lets tests run each case inside a rolled-back transaction.
type sqlDB interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// sqlitePersonRepo is the SQLite implementation of PersonRepo.
type sqlitePersonRepo struct {
	db sqlDB
}

// NewSQLitePersonRepo constructs a PersonRepo backed by a SQLite database
// opened with the "sqlite3" driver.
func NewSQLitePersonRepo(db sqlDB) PersonRepo {
	return &sqlitePersonRepo{db: db}
}

// OpenSQLite opens a SQLite database at dsn (e.g. "file:people.db" or
// "file::memory:?cache=shared") and verifies it is reachable.
// SQLite allows a single writer, so the pool is capped at one connection.
func OpenSQLite(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("repo.OpenSQLite: open: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("repo.OpenSQLite: ping: %w", err)
	}
	return db, nil
}

// Create inserts a new person row and returns it with the generated id.
func (r *sqlitePersonRepo) Create(ctx context.Context, p domain.Person) (domain.Person, error) {
	const q = `INSERT INTO people (name, age, email) VALUES (?, ?, ?)`

	res, err := r.db.ExecContext(ctx, q, p.Name, p.Age, p.Email)
	if err != nil {
		return domain.Person{}, fmt.Errorf("repo.SQLitePersonRepo.Create: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return domain.Person{}, fmt.Errorf("repo.SQLitePersonRepo.Create: last insert id: %w", err)
	}

	p.ID = id
	return p, nil
}

// GetByID retrieves a person by primary key.
func (r *sqlitePersonRepo) GetByID(ctx context.Context, id int64) (domain.Person, error) {
	const q = `SELECT id, name, age, email FROM people WHERE id = ?`

	result, err := scanPerson(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		return domain.Person{}, fmt.Errorf("repo.SQLitePersonRepo.GetByID: %w", err)
	}
	return result, nil
}

// List returns all people ordered by id.
func (r *sqlitePersonRepo) List(ctx context.Context) ([]domain.Person, error) {
	const q = `SELECT id, name, age, email FROM people ORDER BY id`

	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.SQLitePersonRepo.List: %w", err)
	}
	defer rows.Close()

	var people []domain.Person
	for rows.Next() {
		p, err := scanPerson(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.SQLitePersonRepo.List: scan: %w", err)
		}
		people = append(people, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.SQLitePersonRepo.List: rows: %w", err)
	}

	return people, nil
}
