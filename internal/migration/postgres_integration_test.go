package migration

import (
	"database/sql"
	"os"
	"testing"

	_ "github.com/lib/pq"
)

// setupPostgresTestDB opens the database named by WEEKGRID_TEST_POSTGRES.
// Example: WEEKGRID_TEST_POSTGRES="postgres://localhost:5432/testdb?sslmode=disable"
func setupPostgresTestDB(t *testing.T) *sql.DB {
	connStr := os.Getenv("WEEKGRID_TEST_POSTGRES")
	if connStr == "" {
		t.Skip("WEEKGRID_TEST_POSTGRES not set, skipping PostgreSQL integration test")
	}

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		t.Fatalf("failed to open postgres database: %v", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		t.Fatalf("failed to ping postgres database: %v", err)
	}

	t.Cleanup(func() {
		db.Exec("DROP TABLE IF EXISTS schema_version")
		db.Exec("DROP TABLE IF EXISTS test_users")
		db.Close()
	})
	return db
}

func TestPostgresApplyMigrations(t *testing.T) {
	db := setupPostgresTestDB(t)
	runner := NewRunnerFor(db, migrationFS(map[string]string{
		"001_init.sql": "CREATE TABLE test_users (id SERIAL PRIMARY KEY);",
	}), DriverPostgres)

	count, err := runner.ApplyMigrations(nil)
	if err != nil {
		t.Fatalf("ApplyMigrations failed: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected 1 migration applied, got %d", count)
	}

	if err := runner.SetVersion(2); err != nil {
		t.Fatalf("SetVersion(2) failed: %v", err)
	}
	if version, _ := runner.GetCurrentVersion(); version != 2 {
		t.Errorf("Expected version 2, got %d", version)
	}
}
