// Package testhelper boots the shared Postgres instance behind the
// integration tests.
package testhelper

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver for goose
	"github.com/pressly/goose/v3"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// ExternalDSNEnv points the tests at an already-running database instead of
// a container. The schema is still migrated on first use.
const ExternalDSNEnv = "TEST_DATABASE_DSN"

var initOnce struct {
	sync.Once
	dsn string
	err error
}

// SetupTestDB hands the caller a pool on the shared test database. The first
// call of the process starts a Postgres container (or honors ExternalDSNEnv)
// and brings the schema up to date with the goose migrations; later calls
// reuse it. The pool closes with the test, the database outlives it.
func SetupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()

	initOnce.Do(func() {
		initOnce.dsn, initOnce.err = prepareDatabase()
	})
	if initOnce.err != nil {
		t.Fatalf("testhelper: %v", initOnce.err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, initOnce.dsn)
	if err != nil {
		t.Fatalf("testhelper: connect to test database: %v", err)
	}
	t.Cleanup(pool.Close)

	return pool
}

func prepareDatabase() (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	dsn := os.Getenv(ExternalDSNEnv)
	if dsn == "" {
		var err error
		dsn, err = startPostgres(ctx)
		if err != nil {
			return "", err
		}
	}

	if err := migrate(ctx, dsn); err != nil {
		return "", err
	}
	return dsn, nil
}

func startPostgres(ctx context.Context) (string, error) {
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:17-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "lingreader",
				"POSTGRES_PASSWORD": "lingreader",
				"POSTGRES_DB":       "lingreader_test",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(time.Minute),
		},
		Started: true,
	})
	if err != nil {
		return "", fmt.Errorf("start postgres container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return "", fmt.Errorf("container host: %w", err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		return "", fmt.Errorf("container port: %w", err)
	}

	return fmt.Sprintf("postgres://lingreader:lingreader@%s:%s/lingreader_test?sslmode=disable", host, port.Port()), nil
}

// migrate applies the repo's goose migrations. goose needs database/sql, so
// this opens a short-lived pgx stdlib connection alongside the pool.
func migrate(ctx context.Context, dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("open migration connection: %w", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("ping migration connection: %w", err)
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, os.DirFS(migrationsDir()))
	if err != nil {
		return fmt.Errorf("goose provider: %w", err)
	}
	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}

// migrationsDir locates migrations/ at the repo root relative to this file.
func migrationsDir() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "..", "..", "..", "..", "migrations")
}
