//go:build integration

package postgresql_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/cmlabs-hris/overtime-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	postgrescontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
)

// newTestDatabase starts a disposable PostgreSQL, applies the migrations and
// returns a connected pool. TEST_DATABASE_URL skips the container.
func newTestDatabase(t *testing.T) *database.DB {
	t.Helper()
	ctx := context.Background()

	connStr := os.Getenv("TEST_DATABASE_URL")
	if connStr == "" {
		pg, err := postgrescontainer.Run(ctx, "postgres:16-alpine",
			postgrescontainer.WithDatabase("overtime"),
			postgrescontainer.WithUsername("overtime"),
			postgrescontainer.WithPassword("overtime"),
		)
		require.NoError(t, err)
		t.Cleanup(func() { _ = pg.Terminate(ctx) })

		connStr, err = pg.ConnectionString(ctx, "sslmode=disable")
		require.NoError(t, err)
	}

	require.NoError(t, waitForDatabase(ctx, connStr))
	runMigrations(t, ctx, connStr)

	db, err := database.NewPostgreSQLDB(connStr, 4, 1)
	require.NoError(t, err)
	t.Cleanup(db.Close)

	truncateAllTables(t, ctx, db)
	return db
}

func runMigrations(t *testing.T, ctx context.Context, connStr string) {
	files := []string{
		"../../../../migrations/0001_init.up.sql",
	}

	pool, err := pgxpool.New(ctx, connStr)
	require.NoError(t, err)
	defer pool.Close()

	for _, rel := range files {
		contents, readErr := os.ReadFile(resolvePath(t, rel))
		require.NoError(t, readErr)

		_, execErr := pool.Exec(ctx, string(contents))
		require.NoError(t, execErr)
	}
}

func truncateAllTables(t *testing.T, ctx context.Context, db *database.DB) {
	for _, table := range []string{"manual_entries", "checkins", "employees"} {
		_, err := db.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", table))
		require.NoError(t, err, "truncate %s", table)
	}
}

func resolvePath(t *testing.T, rel string) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	require.True(t, ok)
	return filepath.Join(filepath.Dir(file), rel)
}

func waitForDatabase(ctx context.Context, connStr string) error {
	deadline := time.Now().Add(30 * time.Second)
	for {
		pool, err := pgxpool.New(ctx, connStr)
		if err == nil {
			err = pool.Ping(ctx)
			pool.Close()
			if err == nil {
				return nil
			}
		}
		if time.Now().After(deadline) {
			return err
		}
		time.Sleep(time.Second)
	}
}
