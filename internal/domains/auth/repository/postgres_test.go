package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-backend/internal/domains/auth"
	"library-backend/internal/testing/testdb"
)

func TestPostgresUsers(t *testing.T) {
	repo := NewPostgresRepository(testdb.Setup(t))
	ctx := context.Background()

	_, err := repo.FindByUsername(ctx, "leandro")
	assert.ErrorIs(t, err, auth.ErrUserNotFound)

	u := &auth.User{
		Username:              "leandro",
		FullName:              "Leandro Costa",
		PasswordHash:          "$2a$10$hash",
		AccountNonExpired:     true,
		AccountNonLocked:      true,
		CredentialsNonExpired: true,
		Enabled:               true,
	}
	require.NoError(t, repo.Create(ctx, u))
	assert.NotZero(t, u.ID)
	assert.False(t, u.CreatedAt.IsZero())

	found, err := repo.FindByUsername(ctx, "leandro")
	require.NoError(t, err)
	assert.Equal(t, u.ID, found.ID)
	assert.True(t, found.CanSignIn())

	dup := *u
	assert.ErrorIs(t, repo.Create(ctx, &dup), auth.ErrUserExists)
}
