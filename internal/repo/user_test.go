package repo_test

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yalrayes/rihla/internal/domain"
	"github.com/yalrayes/rihla/internal/repo"
	"github.com/yalrayes/rihla/testutil"
)

// newTestTx opens a transaction against the test database that rolls back
// automatically when the test finishes, giving free per-test isolation.
// Requires TEST_DATABASE_URL; skips otherwise.
func newTestTx(t *testing.T) pgx.Tx {
	t.Helper()
	pool := testutil.NewPool(t)

	tx, err := pool.Begin(context.Background())
	require.NoError(t, err, "begin transaction")

	t.Cleanup(func() {
		_ = tx.Rollback(context.Background())
	})
	return tx
}

func userFixture() domain.User {
	return domain.User{
		Username: "ahmed",
		Password: "$2a$10$fixture-hash",
		FullName: "Ahmed Al Rayes",
		Email:    "ahmed@example.com",
	}
}

func TestUserRepo_Create(t *testing.T) {
	r := repo.NewUserRepo(newTestTx(t))
	ctx := context.Background()

	input := userFixture()
	got, err := r.Create(ctx, input)

	require.NoError(t, err)
	assert.Positive(t, got.ID, "ID should be DB-generated")
	assert.Equal(t, input.Username, got.Username)
	assert.Equal(t, input.Password, got.Password)
	assert.Equal(t, input.FullName, got.FullName)
	assert.Equal(t, input.Email, got.Email)
	assert.False(t, got.CreatedAt.IsZero(), "CreatedAt should be set by DB")
}

func TestUserRepo_Create_DuplicateUsername(t *testing.T) {
	r := repo.NewUserRepo(newTestTx(t))
	ctx := context.Background()

	_, err := r.Create(ctx, userFixture())
	require.NoError(t, err)

	dup := userFixture()
	dup.Email = "other@example.com"
	_, err = r.Create(ctx, dup)

	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestUserRepo_GetByID(t *testing.T) {
	r := repo.NewUserRepo(newTestTx(t))
	ctx := context.Background()

	created, err := r.Create(ctx, userFixture())
	require.NoError(t, err)

	got, err := r.GetByID(ctx, created.ID)

	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, created.Username, got.Username)
}

func TestUserRepo_GetByID_NotFound(t *testing.T) {
	r := repo.NewUserRepo(newTestTx(t))

	_, err := r.GetByID(context.Background(), 999999999)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUserRepo_GetByUsername(t *testing.T) {
	r := repo.NewUserRepo(newTestTx(t))
	ctx := context.Background()

	created, err := r.Create(ctx, userFixture())
	require.NoError(t, err)

	got, err := r.GetByUsername(ctx, "ahmed")

	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, created.Password, got.Password, "hash must round-trip for login checks")
}

func TestUserRepo_GetByUsername_NotFound(t *testing.T) {
	r := repo.NewUserRepo(newTestTx(t))

	_, err := r.GetByUsername(context.Background(), "nobody")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
