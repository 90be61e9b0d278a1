package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"library-backend/internal/domains/auth"
	"library-backend/internal/shared/apperror"
	"library-backend/internal/testing/fixtures"
	"library-backend/internal/testing/memstore"
	"library-backend/pkg/cache"
	"library-backend/pkg/jwt"
)

type env struct {
	svc    *authService
	repo   *memstore.UserRepository
	cache  *cache.MemoryCache
	tokens *jwt.Manager
}

func newEnv(t *testing.T, users ...auth.User) env {
	t.Helper()
	repo := memstore.NewUserRepository(users...)
	c := cache.NewMemoryCache()
	tokens := jwt.NewManager("test-secret", "library-backend", time.Hour, 3*time.Hour)

	svc := NewAuthService(repo, tokens, c, 3*time.Hour).(*authService)
	svc.bcryptCost = bcrypt.MinCost
	return env{svc: svc, repo: repo, cache: c, tokens: tokens}
}

func creds(username, password string) *auth.AccountCredentialsDTO {
	return &auth.AccountCredentialsDTO{Username: username, Password: password}
}

func TestSignIn(t *testing.T) {
	e := newEnv(t, fixtures.User("leandro", "admin123"))
	ctx := context.Background()

	token, err := e.svc.SignIn(ctx, creds("leandro", "admin123"))
	require.NoError(t, err)

	assert.Equal(t, "leandro", token.Username)
	assert.True(t, token.Authenticated)
	assert.Equal(t, time.Hour, token.Expiration.Sub(token.Created))

	claims, err := e.tokens.ValidateAccessToken(token.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "leandro", claims.Username)

	var stored string
	found, err := e.cache.Get(ctx, auth.RefreshTokenKey("leandro"), &stored)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, token.RefreshToken, stored)
}

func TestSignInRejected(t *testing.T) {
	disabled := fixtures.User("disabled", "admin123")
	disabled.Enabled = false
	e := newEnv(t, fixtures.User("leandro", "admin123"), disabled)

	tests := []struct {
		name  string
		creds *auth.AccountCredentialsDTO
		want  error
	}{
		{"wrong password", creds("leandro", "nope"), auth.ErrInvalidCredentials},
		{"unknown user", creds("ghost", "admin123"), auth.ErrInvalidCredentials},
		{"disabled account", creds("disabled", "admin123"), auth.ErrInvalidCredentials},
		{"missing password", creds("leandro", ""), apperror.ErrInvalidInput},
		{"nil payload", nil, apperror.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := e.svc.SignIn(context.Background(), tt.creds)
			assert.Nil(t, token)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestSignInMessageIsGeneric(t *testing.T) {
	e := newEnv(t, fixtures.User("leandro", "admin123"))

	_, err := e.svc.SignIn(context.Background(), creds("leandro", "nope"))
	assert.Equal(t, "Invalid username/password supplied!", apperror.PublicMessage(err))
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)
}

func TestRefreshRotatesToken(t *testing.T) {
	e := newEnv(t, fixtures.User("leandro", "admin123"))
	ctx := context.Background()

	first, err := e.svc.SignIn(ctx, creds("leandro", "admin123"))
	require.NoError(t, err)

	second, err := e.svc.Refresh(ctx, "leandro", first.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, first.RefreshToken, second.RefreshToken)

	// the superseded token no longer matches the stored one
	_, err = e.svc.Refresh(ctx, "leandro", first.RefreshToken)
	assert.ErrorIs(t, err, auth.ErrInvalidClient)

	_, err = e.svc.Refresh(ctx, "leandro", second.RefreshToken)
	assert.NoError(t, err)
}

func TestRefreshRejected(t *testing.T) {
	e := newEnv(t, fixtures.User("leandro", "admin123"), fixtures.User("other", "admin123"))
	ctx := context.Background()

	token, err := e.svc.SignIn(ctx, creds("leandro", "admin123"))
	require.NoError(t, err)

	t.Run("access token", func(t *testing.T) {
		_, err := e.svc.Refresh(ctx, "leandro", token.AccessToken)
		assert.ErrorIs(t, err, auth.ErrInvalidClient)
	})

	t.Run("other username", func(t *testing.T) {
		_, err := e.svc.Refresh(ctx, "other", token.RefreshToken)
		assert.ErrorIs(t, err, auth.ErrInvalidClient)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := e.svc.Refresh(ctx, "leandro", "not-a-token")
		assert.ErrorIs(t, err, auth.ErrInvalidClient)
	})

	t.Run("evicted from cache", func(t *testing.T) {
		require.NoError(t, e.cache.Delete(ctx, auth.RefreshTokenKey("leandro")))
		_, err := e.svc.Refresh(ctx, "leandro", token.RefreshToken)
		assert.ErrorIs(t, err, auth.ErrInvalidClient)
	})
}

func TestEnsureUser(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	require.NoError(t, e.svc.EnsureUser(ctx, "leandro", "admin123", "Leandro Costa"))
	require.NoError(t, e.svc.EnsureUser(ctx, "leandro", "changed", "Leandro Costa"))
	assert.EqualValues(t, 1, e.repo.Writes())

	// the first password stays in effect
	_, err := e.svc.SignIn(ctx, creds("leandro", "admin123"))
	assert.NoError(t, err)
	_, err = e.svc.SignIn(ctx, creds("leandro", "changed"))
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) FindByUsername(ctx context.Context, username string) (*auth.User, error) {
	args := m.Called(ctx, username)
	u, _ := args.Get(0).(*auth.User)
	return u, args.Error(1)
}

func (m *mockRepository) Create(ctx context.Context, u *auth.User) error {
	return m.Called(ctx, u).Error(0)
}

func TestEnsureUserRaceAndFailures(t *testing.T) {
	ctx := context.Background()
	tokens := jwt.NewManager("test-secret", "library-backend", time.Hour, time.Hour)

	t.Run("concurrent insert wins", func(t *testing.T) {
		repo := new(mockRepository)
		repo.On("FindByUsername", ctx, "leandro").Return(nil, auth.ErrUserNotFound)
		repo.On("Create", ctx, mock.AnythingOfType("*auth.User")).Return(auth.ErrUserExists)

		svc := NewAuthService(repo, tokens, cache.NewMemoryCache(), time.Hour).(*authService)
		svc.bcryptCost = bcrypt.MinCost

		assert.NoError(t, svc.EnsureUser(ctx, "leandro", "admin123", ""))
		repo.AssertExpectations(t)
	})

	t.Run("store failure surfaces", func(t *testing.T) {
		boom := errors.New("connection refused")
		repo := new(mockRepository)
		repo.On("FindByUsername", ctx, "leandro").Return(nil, boom)

		svc := NewAuthService(repo, tokens, cache.NewMemoryCache(), time.Hour)
		assert.ErrorIs(t, svc.EnsureUser(ctx, "leandro", "admin123", ""), boom)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}
