package auth

import (
	"errors"

	"library-backend/internal/shared/apperror"
)

var (
	ErrInvalidCredentials = apperror.Unauthorized("Invalid username/password supplied!")
	ErrInvalidClient      = apperror.Unauthorized("Invalid client request!")
	ErrUserNotFound       = apperror.NotFound("Username not found!")

	// ErrUserExists is returned by Repository.Create on a duplicate username.
	ErrUserExists = errors.New("username already exists")
)
