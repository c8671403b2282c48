package repository

import (
	"context"
	"path/filepath"
	"testing"

	"kirana-connect/internal/data/entity"
	"kirana-connect/pkg/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newUserRepo(t *testing.T) (UserRepository, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "users.json")
	return NewUserRepository(storage.NewFileStore(path), zap.NewNop()), path
}

func testUser(email string) *entity.User {
	return &entity.User{
		ID:           uuid.New(),
		Name:         "Asha Sharma",
		Email:        email,
		PasswordHash: "$2a$10$fakefakefakefakefakefake",
		Role:         entity.RoleCustomer,
	}
}

func TestUserCreateAndFind(t *testing.T) {
	repo, _ := newUserRepo(t)
	ctx := context.Background()

	user := testUser("asha@example.com")
	require.NoError(t, repo.Create(ctx, user))

	found, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, user.Email, found.Email)

	count, err := repo.CountAll(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestUserFindByEmailIsCaseInsensitive(t *testing.T) {
	repo, _ := newUserRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testUser("Asha@Example.com")))

	found, err := repo.FindByEmail(ctx, "asha@example.COM")
	require.NoError(t, err)
	require.NotNil(t, found)

	missing, err := repo.FindByEmail(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUserCreateRejectsDuplicateEmail(t *testing.T) {
	repo, _ := newUserRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testUser("asha@example.com")))

	err := repo.Create(ctx, testUser("ASHA@example.com"))
	require.ErrorIs(t, err, ErrEmailExists)

	count, err := repo.CountAll(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestUserSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")
	ctx := context.Background()

	first := NewUserRepository(storage.NewFileStore(path), zap.NewNop())
	user := testUser("asha@example.com")
	require.NoError(t, first.Create(ctx, user))

	// A fresh store over the same file sees the record
	second := NewUserRepository(storage.NewFileStore(path), zap.NewNop())
	found, err := second.FindByID(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, user.PasswordHash, found.PasswordHash)
}
