package auth

import (
	"context"

	"library-backend/pkg/jwt"
)

// TokenIssuer is satisfied by *jwt.Manager.
type TokenIssuer interface {
	GenerateAccessToken(username string) (jwt.Token, error)
	GenerateRefreshToken(username string) (jwt.Token, error)
	ValidateRefreshToken(token string) (*jwt.Claims, error)
}

type Service interface {
	SignIn(ctx context.Context, creds *AccountCredentialsDTO) (*TokenDTO, error)
	Refresh(ctx context.Context, username, refreshToken string) (*TokenDTO, error)

	// EnsureUser creates the account when no user with that name exists yet.
	EnsureUser(ctx context.Context, username, password, fullName string) error
}
