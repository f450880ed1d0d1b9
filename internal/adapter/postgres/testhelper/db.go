package testhelper

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	postgres "github.com/heartmarshall/clientforge-backend/internal/adapter/postgres"
	"github.com/heartmarshall/clientforge-backend/migrations"
)

const image = "docker.io/postgres:17-alpine"

// shared is started on first use and lives for the whole test binary.
var shared struct {
	once sync.Once
	dsn  string
	err  error
}

// SetupTestDB returns a pool on a migrated PostgreSQL container shared by
// every test in the binary. The pool closes with the test. Skipped under -short.
func SetupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()

	if testing.Short() {
		t.Skip("testhelper: container-backed test skipped in -short mode")
	}

	shared.once.Do(func() {
		shared.dsn, shared.err = startMigrated()
	})
	if shared.err != nil {
		t.Fatalf("testhelper: database unavailable: %v", shared.err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, shared.dsn)
	if err != nil {
		t.Fatalf("testhelper: open pool: %v", err)
	}
	t.Cleanup(pool.Close)

	return pool
}

func startMigrated() (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	container, err := tcpostgres.Run(ctx, image,
		tcpostgres.WithDatabase("clientforge_test"),
		tcpostgres.WithUsername("clientforge"),
		tcpostgres.WithPassword("clientforge"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(time.Minute),
		),
	)
	if err != nil {
		return "", fmt.Errorf("start postgres container: %w", err)
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return "", fmt.Errorf("container connection string: %w", err)
	}

	if err := postgres.Migrate(ctx, dsn, migrations.FS, nil); err != nil {
		return "", fmt.Errorf("migrate: %w", err)
	}
	return dsn, nil
}
