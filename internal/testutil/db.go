package testutil

import (
	"database/sql"
	"os"
	"testing"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/lib/pq"

	"github.com/chamchi6619/pantry-app-v1-sub000/internal/db"
)

// SetupDB opens the database named by TEST_DATABASE_URL, migrates it, and
// truncates both tables so the test starts from a clean slate. Tests calling
// it are skipped when the variable is unset.
func SetupDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping integration test")
	}

	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })

	if err := sqlDB.Ping(); err != nil {
		t.Fatalf("ping test database: %v", err)
	}

	srcDriver, err := iofs.New(db.MigrationsFS, "migrations")
	if err != nil {
		t.Fatalf("create migration source: %v", err)
	}
	dbDriver, err := postgres.WithInstance(sqlDB, &postgres.Config{})
	if err != nil {
		t.Fatalf("create migration driver: %v", err)
	}
	m, err := migrate.NewWithInstance("iofs", srcDriver, "postgres", dbDriver)
	if err != nil {
		t.Fatalf("create migrator: %v", err)
	}
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		t.Fatalf("run migrations: %v", err)
	}

	if _, err := sqlDB.Exec("TRUNCATE ingredients, canonical_items CASCADE"); err != nil {
		t.Fatalf("truncate tables: %v", err)
	}

	return sqlDB
}
