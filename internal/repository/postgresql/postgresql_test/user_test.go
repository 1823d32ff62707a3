package postgresql_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/spbu-ops/setoran-backend-go/internal/domain/user"
	"github.com/spbu-ops/setoran-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestUserRepository_CreateAndLookup(t *testing.T) {
	db := requireTestDB(t)
	truncateTables(t, db, "users")

	repo := postgresql.NewUserRepository(db)
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("rahasia-123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	created, err := repo.Create(ctx, user.User{
		ID:           uuid.NewString(),
		Name:         "Budi",
		Email:        "budi@example.com",
		PasswordHash: string(hash),
		Role:         user.RoleStaff,
	})
	require.NoError(t, err)
	assert.False(t, created.CreatedAt.IsZero())

	byEmail, err := repo.GetByEmail(ctx, "budi@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID)
	assert.Equal(t, user.RoleStaff, byEmail.Role)

	byID, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Budi", byID.Name)

	exists, err := repo.ExistsByEmail(ctx, "budi@example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	_, err = repo.GetByEmail(ctx, "unknown@example.com")
	assert.ErrorIs(t, err, pgx.ErrNoRows)
}

func TestWithTransaction_RollsBackOnError(t *testing.T) {
	db := requireTestDB(t)
	truncateTables(t, db, "users")

	repo := postgresql.NewUserRepository(db)
	ctx := context.Background()

	boom := errors.New("boom")
	err := postgresql.WithTransaction(ctx, db, func(txCtx context.Context) error {
		_, err := repo.Create(txCtx, user.User{
			ID:           uuid.NewString(),
			Name:         "Budi",
			Email:        "budi@example.com",
			PasswordHash: "x",
			Role:         user.RoleStaff,
		})
		require.NoError(t, err)
		return boom
	})
	assert.ErrorIs(t, err, boom)

	exists, err := repo.ExistsByEmail(ctx, "budi@example.com")
	require.NoError(t, err)
	assert.False(t, exists, "insert should have been rolled back")
}

func TestWithTransaction_CommitsOnSuccess(t *testing.T) {
	db := requireTestDB(t)
	truncateTables(t, db, "users")

	repo := postgresql.NewUserRepository(db)
	ctx := context.Background()

	err := postgresql.WithTransaction(ctx, db, func(txCtx context.Context) error {
		_, err := repo.Create(txCtx, user.User{
			ID:           uuid.NewString(),
			Name:         "Siti",
			Email:        "siti@example.com",
			PasswordHash: "x",
			Role:         user.RoleStaff,
		})
		return err
	})
	require.NoError(t, err)

	exists, err := repo.ExistsByEmail(ctx, "siti@example.com")
	require.NoError(t, err)
	assert.True(t, exists)
}
