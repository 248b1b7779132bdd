package repo_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leska/people-api/internal/domain"
	"github.com/leska/people-api/internal/repo"
	"github.com/leska/people-api/testutil"
)

// newPGRepo opens a transaction against the test database and returns a
// PersonRepo backed by that transaction. The transaction is automatically
// rolled back when the test finishes, giving free per-test isolation.
//
// Requires TEST_DATABASE_URL to be set; skipped otherwise.
func newPGRepo(t *testing.T) repo.PersonRepo {
	t.Helper()
	pool := testutil.NewPool(t)

	tx, err := pool.Begin(context.Background())
	require.NoError(t, err, "begin transaction")

	t.Cleanup(func() {
		// Rollback discards all changes made during the test, so no cleanup SQL needed.
		_ = tx.Rollback(context.Background())
	})

	return repo.NewPersonRepo(tx)
}

// personFixture returns a valid domain.Person with a unique email.
// Callers can override individual fields after calling this function.
func personFixture() domain.Person {
	return domain.Person{
		Name:  "Alice",
		Age:   30,
		Email: uuid.NewString() + "@example.com",
	}
}

func TestPGPersonRepo(t *testing.T) {
	testPersonRepo(t, newPGRepo)
}

// testPersonRepo is the behaviour every PersonRepo implementation must share.
// newRepo must return an isolated, migrated, empty-or-throwaway store.
func testPersonRepo(t *testing.T, newRepo func(t *testing.T) repo.PersonRepo) {
	t.Run("Create", func(t *testing.T) {
		r := newRepo(t)
		ctx := context.Background()

		input := personFixture()
		got, err := r.Create(ctx, input)

		require.NoError(t, err)
		assert.NotZero(t, got.ID, "ID should be store-generated")
		assert.Equal(t, input.Name, got.Name)
		assert.Equal(t, input.Age, got.Age)
		assert.Equal(t, input.Email, got.Email)
	})

	t.Run("Create_IgnoresCallerID", func(t *testing.T) {
		r := newRepo(t)
		ctx := context.Background()

		first, err := r.Create(ctx, personFixture())
		require.NoError(t, err)

		input := personFixture()
		input.ID = first.ID // must not collide; the store assigns ids
		second, err := r.Create(ctx, input)

		require.NoError(t, err)
		assert.NotEqual(t, first.ID, second.ID)
	})

	t.Run("GetByID", func(t *testing.T) {
		r := newRepo(t)
		ctx := context.Background()

		created, err := r.Create(ctx, personFixture())
		require.NoError(t, err)

		got, err := r.GetByID(ctx, created.ID)

		require.NoError(t, err)
		assert.Equal(t, created, got)
	})

	t.Run("GetByID_NotFound", func(t *testing.T) {
		r := newRepo(t)

		_, err := r.GetByID(context.Background(), 999999999)

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("List_OrderedByID", func(t *testing.T) {
		r := newRepo(t)
		ctx := context.Background()

		p1 := personFixture()
		p1.Name = "First"
		p2 := personFixture()
		p2.Name = "Second"

		c1, err := r.Create(ctx, p1)
		require.NoError(t, err)
		c2, err := r.Create(ctx, p2)
		require.NoError(t, err)

		people, err := r.List(ctx)
		require.NoError(t, err)

		var ids []int64
		for _, p := range people {
			ids = append(ids, p.ID)
		}
		assert.Contains(t, ids, c1.ID)
		assert.Contains(t, ids, c2.ID)
		assert.IsIncreasing(t, ids, "List must be ordered by id")
	})

	t.Run("List_Idempotent", func(t *testing.T) {
		r := newRepo(t)
		ctx := context.Background()

		_, err := r.Create(ctx, personFixture())
		require.NoError(t, err)

		first, err := r.List(ctx)
		require.NoError(t, err)
		second, err := r.List(ctx)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})
}
