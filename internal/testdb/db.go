package testdb

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"

	"github.com/kinetra/fitpulse-v2/backend/config"
	"github.com/kinetra/fitpulse-v2/backend/internal/database"
)

// TestDB wraps a throwaway Postgres instance for integration tests that
// need real date columns and jsonb instead of the sqlite stand-in.
type TestDB struct {
	DB        *gorm.DB
	Config    *config.Config
	Container testcontainers.Container
}

// Close terminates the backing container.
func (td *TestDB) Close() error {
	if td.Container != nil {
		return td.Container.Terminate(context.Background())
	}
	return nil
}

// SetupTestDB starts a Postgres container, connects through the regular
// database package and runs the schema migrations. Skips the test when
// Docker is unavailable (set TESTDB_REQUIRED=1 to fail instead).
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	_ = os.Setenv("ENV", "test")
	_ = os.Setenv("JWT_SECRET", "test-secret")

	ctx := context.Background()
	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "test",
			"POSTGRES_PASSWORD": "test",
			"POSTGRES_DB":       "test",
		},
		WaitingFor: wait.ForAll(
			wait.ForLog("database system is ready to accept connections"),
			wait.ForListeningPort("5432/tcp"),
		),
	}

	// testcontainers panics (rather than returning an error) when no Docker
	// host can be discovered at all; fold that into the error path below so
	// the documented skip-when-unavailable behavior still applies.
	container, err := func() (c testcontainers.Container, err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("docker host discovery panicked: %v", r)
			}
		}()
		return testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: req,
			Started:          true,
		})
	}()
	if err != nil {
		if os.Getenv("TESTDB_REQUIRED") == "1" {
			t.Fatalf("failed to start postgres container: %v", err)
		}
		t.Skipf("skipping, docker not available: %v", err)
	}

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	_ = os.Setenv("DB_HOST", host)
	_ = os.Setenv("DB_PORT", port.Port())
	_ = os.Setenv("DB_USER", "test")
	_ = os.Setenv("DB_PASSWORD", "test")
	_ = os.Setenv("DB_NAME", "test")
	_ = os.Setenv("DB_SSL_MODE", "disable")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	db, err := database.New(cfg)
	require.NoError(t, err)

	require.NoError(t, database.RunMigrations(db))

	return &TestDB{
		DB:        db,
		Config:    cfg,
		Container: container,
	}
}
