package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"library-backend/internal/domains/auth"
	"library-backend/internal/infrastructure/database"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository returns an auth.Repository backed by the users table.
func NewPostgresRepository(pool *pgxpool.Pool) auth.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) FindByUsername(ctx context.Context, username string) (*auth.User, error) {
	query := `
		SELECT id, username, full_name, password_hash,
		       account_non_expired, account_non_locked, credentials_non_expired,
		       enabled, created_at
		FROM users
		WHERE username = $1
	`

	var u auth.User
	err := r.pool.QueryRow(ctx, query, username).Scan(
		&u.ID,
		&u.Username,
		&u.FullName,
		&u.PasswordHash,
		&u.AccountNonExpired,
		&u.AccountNonLocked,
		&u.CredentialsNonExpired,
		&u.Enabled,
		&u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, auth.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}

	return &u, nil
}

func (r *postgresRepository) Create(ctx context.Context, u *auth.User) error {
	query := `
		INSERT INTO users (
			username, full_name, password_hash,
			account_non_expired, account_non_locked, credentials_non_expired, enabled
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`

	err := r.pool.QueryRow(ctx, query,
		u.Username,
		u.FullName,
		u.PasswordHash,
		u.AccountNonExpired,
		u.AccountNonLocked,
		u.CredentialsNonExpired,
		u.Enabled,
	).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return auth.ErrUserExists
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}
