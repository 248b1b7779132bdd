// Package repo contains all database access logic for the People API.
// PersonRepo is the store interface; this file holds the Postgres
// implementation and sqlite.go the SQLite one.
// No business logic lives here, only SQL and type mapping.
package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/leska/people-api/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PersonRepo defines the persistence operations for people.
// The service layer depends on this interface, not a concrete store,
// which allows the service to be unit-tested with a mock.
type PersonRepo interface {
	// Create inserts a new person and returns the persisted record with its
	// store-generated ID populated.
	Create(ctx context.Context, p domain.Person) (domain.Person, error)

	// GetByID retrieves a single person by primary key.
	// Returns domain.ErrNotFound if no person with that ID exists.
	GetByID(ctx context.Context, id int64) (domain.Person, error)

	// List returns every person ordered by ID ascending.
	List(ctx context.Context) ([]domain.Person, error)
}

// pgPersonRepo is the Postgres implementation of PersonRepo.
type pgPersonRepo struct {
	db db
}

// NewPersonRepo constructs a Postgres-backed PersonRepo.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewPersonRepo(db db) PersonRepo {
	return &pgPersonRepo{db: db}
}

// Create inserts a new person row and returns the full persisted record.
func (r *pgPersonRepo) Create(ctx context.Context, p domain.Person) (domain.Person, error) {
	const q = `
		INSERT INTO people (name, age, email)
		VALUES (@name, @age, @email)
		RETURNING id, name, age, email`

	args := pgx.NamedArgs{
		"name":  p.Name,
		"age":   p.Age,
		"email": p.Email,
	}

	result, err := scanPerson(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Person{}, fmt.Errorf("repo.PersonRepo.Create: %w", err)
	}
	return result, nil
}

// GetByID retrieves a person by primary key.
func (r *pgPersonRepo) GetByID(ctx context.Context, id int64) (domain.Person, error) {
	const q = `
		SELECT id, name, age, email
		FROM people
		WHERE id = @id`

	result, err := scanPerson(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Person{}, fmt.Errorf("repo.PersonRepo.GetByID: %w", err)
	}
	return result, nil
}

// List returns all people ordered by id.
func (r *pgPersonRepo) List(ctx context.Context) ([]domain.Person, error) {
	const q = `
		SELECT id, name, age, email
		FROM people
		ORDER BY id`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.PersonRepo.List: %w", err)
	}
	defer rows.Close()

	var people []domain.Person
	for rows.Next() {
		p, err := scanPerson(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.PersonRepo.List: scan: %w", err)
		}
		people = append(people, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.PersonRepo.List: rows: %w", err)
	}

	return people, nil
}

// scanner is satisfied by pgx.Row, pgx.Rows, *sql.Row and *sql.Rows, so
// scanPerson serves both stores.
type scanner interface {
	Scan(dest ...any) error
}

// scanPerson maps a single row (id, name, age, email) into a domain.Person.
// A missing row from either driver becomes domain.ErrNotFound.
func scanPerson(s scanner) (domain.Person, error) {
	var p domain.Person
	if err := s.Scan(&p.ID, &p.Name, &p.Age, &p.Email); err != nil {
		if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) {
			return domain.Person{}, domain.ErrNotFound
		}
		return domain.Person{}, err
	}
	return p, nil
}
