// Package dbtest starts a disposable PostgreSQL for integration tests.
package dbtest

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/osse101/SkinBot_Go/internal/database"
	"github.com/osse101/SkinBot_Go/internal/database/migrations"
)

// Image is the PostgreSQL image used for tests
const Image = "postgres:15-alpine"

// Start runs a container and returns its connection string and a terminate func.
// It returns an error instead of panicking when Docker is unavailable.
func Start(ctx context.Context) (connStr string, terminate func(), err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("docker unavailable: %v", r)
		}
	}()

	container, err := postgres.Run(ctx,
		Image,
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	if err != nil {
		return "", nil, fmt.Errorf("failed to start postgres container: %w", err)
	}

	terminate = func() { _ = container.Terminate(context.Background()) }

	connStr, err = container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		terminate()
		return "", nil, fmt.Errorf("failed to get connection string: %w", err)
	}
	return connStr, terminate, nil
}

// MigratedPool opens a pool on connStr and applies the schema
func MigratedPool(ctx context.Context, connStr string) (*pgxpool.Pool, error) {
	pool, err := database.NewPool(ctx, connStr, 5, time.Minute, time.Hour)
	if err != nil {
		return nil, err
	}
	if _, err := migrations.Up(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}
