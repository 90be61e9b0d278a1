package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"library-backend/internal/domains/auth"
	"library-backend/internal/shared/apperror"
	"library-backend/pkg/cache"
)

type authService struct {
	repo       auth.Repository
	tokens     auth.TokenIssuer
	cache      cache.Cache
	refreshTTL time.Duration
	bcryptCost int
}

// NewAuthService wires sign-in and refresh. Issued refresh tokens are kept in
// the cache for refreshTTL; only the most recent one per user is accepted.
func NewAuthService(repo auth.Repository, tokens auth.TokenIssuer, c cache.Cache, refreshTTL time.Duration) auth.Service {
	return &authService{
		repo:       repo,
		tokens:     tokens,
		cache:      c,
		refreshTTL: refreshTTL,
		bcryptCost: bcrypt.DefaultCost,
	}
}

func (s *authService) SignIn(ctx context.Context, creds *auth.AccountCredentialsDTO) (*auth.TokenDTO, error) {
	if creds == nil {
		return nil, apperror.InvalidInput("Invalid client request!")
	}
	if err := creds.Validate(); err != nil {
		return nil, apperror.Validation(err)
	}

	u, err := s.repo.FindByUsername(ctx, creds.Username)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			return nil, auth.ErrInvalidCredentials
		}
		return nil, err
	}

	if !u.CanSignIn() {
		return nil, auth.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(creds.Password)); err != nil {
		return nil, auth.ErrInvalidCredentials
	}

	return s.issue(ctx, u.Username)
}

func (s *authService) Refresh(ctx context.Context, username, refreshToken string) (*auth.TokenDTO, error) {
	if username == "" || refreshToken == "" {
		return nil, auth.ErrInvalidClient
	}

	claims, err := s.tokens.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, auth.ErrInvalidClient
	}
	if claims.Username != username {
		return nil, auth.ErrInvalidClient
	}

	var stored string
	found, err := s.cache.Get(ctx, auth.RefreshTokenKey(username), &stored)
	if err != nil {
		return nil, fmt.Errorf("load refresh token: %w", err)
	}
	if !found || stored != refreshToken {
		return nil, auth.ErrInvalidClient
	}

	u, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			return nil, auth.ErrInvalidClient
		}
		return nil, err
	}
	if !u.CanSignIn() {
		return nil, auth.ErrInvalidClient
	}

	return s.issue(ctx, username)
}

func (s *authService) EnsureUser(ctx context.Context, username, password, fullName string) error {
	_, err := s.repo.FindByUsername(ctx, username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, auth.ErrUserNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	u := &auth.User{
		Username:              username,
		FullName:              fullName,
		PasswordHash:          string(hash),
		AccountNonExpired:     true,
		AccountNonLocked:      true,
		CredentialsNonExpired: true,
		Enabled:               true,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		// another instance seeded it first
		if errors.Is(err, auth.ErrUserExists) {
			return nil
		}
		return err
	}

	log.Info().Str("username", username).Msg("Default user created")
	return nil
}

func (s *authService) issue(ctx context.Context, username string) (*auth.TokenDTO, error) {
	access, err := s.tokens.GenerateAccessToken(username)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	refresh, err := s.tokens.GenerateRefreshToken(username)
	if err != nil {
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}

	if err := s.cache.Set(ctx, auth.RefreshTokenKey(username), refresh.Value, s.refreshTTL); err != nil {
		return nil, fmt.Errorf("store refresh token: %w", err)
	}

	return &auth.TokenDTO{
		Username:      username,
		Authenticated: true,
		Created:       access.IssuedAt,
		Expiration:    access.ExpiresAt,
		AccessToken:   access.Value,
		RefreshToken:  refresh.Value,
	}, nil
}
