// Package testdb prepares a real Postgres database for repository tests.
//
// Tests using it are skipped unless TEST_DATABASE_URL is set. Every Setup
// call resets the schema, so run these packages with -p 1 when they share
// one database.
package testdb

import (
	"context"
	"database/sql"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/require"

	"library-backend/internal/infrastructure/database"
)

// EnvURL names the variable holding the test database connection string.
const EnvURL = "TEST_DATABASE_URL"

// Timeout bounds schema setup and each test's queries.
const Timeout = 30 * time.Second

// URL returns the test database URL, or "" when integration tests are off.
func URL() string {
	return os.Getenv(EnvURL)
}

// Setup resets the schema to the seeded state and returns a pool closed at
// test cleanup.
func Setup(t *testing.T) *pgxpool.Pool {
	t.Helper()

	url := URL()
	if url == "" {
		t.Skipf("%s not set, skipping Postgres integration test", EnvURL)
	}

	ctx, cancel := context.WithTimeout(context.Background(), Timeout)
	defer cancel()

	db, err := sql.Open("postgres", url)
	require.NoError(t, err, "open migration connection")
	defer db.Close()

	require.NoError(t, database.RunMigrations(ctx, db, database.MigrateReset), "reset schema")
	require.NoError(t, database.RunMigrations(ctx, db, database.MigrateUp), "apply migrations")

	pool, err := pgxpool.New(ctx, url)
	require.NoError(t, err, "open pool")
	t.Cleanup(pool.Close)

	return pool
}
