package repo_test

import (
	"context"
	"log"
	"os"
	"testing"

	"github.com/leska/people-api/migrations"
	"github.com/leska/people-api/testutil"
)

// TestMain runs before any test in the repo_test package.
// When TEST_DATABASE_URL is set it applies all pending Postgres migrations so
// individual tests never need to think about schema state. SQLite tests build
// their own in-memory database and do not depend on this.
func TestMain(m *testing.M) {
	if os.Getenv("TEST_DATABASE_URL") == "" {
		// No test DB configured; Postgres tests skip themselves.
		os.Exit(m.Run())
	}

	// goose needs database/sql, not a pgx pool. TestMain has no *testing.T,
	// so the connection is opened with the panicking helper.
	db := testutil.MustOpenSQLDB(os.Getenv("TEST_DATABASE_URL"))
	defer db.Close()

	if _, err := migrations.Up(context.Background(), "postgres", db); err != nil {
		log.Fatalf("TestMain: run migrations: %v", err)
	}

	os.Exit(m.Run())
}
