package database

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestDSN(t *testing.T) {
	cfg := &DBConfig{Host: "db", Port: 5432, Username: "library", Password: "p@ss word", DBName: "library"}
	assert.Equal(t, "postgres://library:p%40ss%20word@db:5432/library?sslmode=disable", cfg.DSN())

	cfg.SSLMode = "require"
	assert.Contains(t, cfg.DSN(), "sslmode=require")
}

func TestPgErrorCode(t *testing.T) {
	wrapped := fmt.Errorf("insert user: %w", &pgconn.PgError{Code: CodeUniqueViolation})

	assert.Equal(t, CodeUniqueViolation, PgErrorCode(wrapped))
	assert.True(t, IsUniqueViolation(wrapped))
	assert.Equal(t, "", PgErrorCode(errors.New("boom")))
}

func TestClosedPool(t *testing.T) {
	db := NewPostgresDB(&DBConfig{})

	assert.Error(t, db.Ping(t.Context()))
	assert.NoError(t, db.Close())
	_, err := db.Stats()
	assert.Error(t, err)
}
