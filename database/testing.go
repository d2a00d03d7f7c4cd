package database

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var (
	testDB *DB
)

// GetTestDB returns the shared test database connection.
// Available after TestMain has run and SetupTestDB succeeded.
// Returns nil if called before TestMain.
func GetTestDB() *DB {
	return testDB
}

// SetupTestDB creates a test database connection and runs migrations.
// Should be called once in TestMain, not in individual tests.
// Migrations are embedded inline (not read from files) for test isolation.
// Returns error if connection fails or migrations fail.
func SetupTestDB(dbURL string) (*DB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := Connect(ctx, dbURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to test database: %w", err)
	}

	if err := runTestMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}

func runTestMigrations(db *DB) error {
	ctx := context.Background()

	migrations := []string{
		`
		CREATE TABLE IF NOT EXISTS projects (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			title VARCHAR(255) NOT NULL,
			description TEXT NOT NULL,
			category VARCHAR(100) NOT NULL,
			status VARCHAR(20) NOT NULL,
			client VARCHAR(255) NOT NULL,
			start_date DATE NOT NULL,
			end_date DATE,
			budget NUMERIC(12,2) NOT NULL DEFAULT 0,
			progress INTEGER NOT NULL DEFAULT 0,
			technologies TEXT,
			image_url TEXT,
			live_url TEXT,
			github_url TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
		CREATE INDEX IF NOT EXISTS idx_projects_updated_at ON projects(updated_at DESC);
		`,
		`
		CREATE TABLE IF NOT EXISTS clients (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) NOT NULL,
			company VARCHAR(255) NOT NULL DEFAULT '',
			phone VARCHAR(50),
			projects_count INTEGER NOT NULL DEFAULT 0,
			total_spent NUMERIC(12,2) NOT NULL DEFAULT 0,
			last_contact DATE NOT NULL,
			status VARCHAR(20) NOT NULL DEFAULT 'active',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
		`,
		`
		CREATE TABLE IF NOT EXISTS activities (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			type VARCHAR(50) NOT NULL,
			title VARCHAR(255) NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
		`,
		`
		CREATE TABLE IF NOT EXISTS analytics (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			metric_date DATE NOT NULL,
			total_projects INTEGER NOT NULL DEFAULT 0,
			active_projects INTEGER NOT NULL DEFAULT 0,
			completed_projects INTEGER NOT NULL DEFAULT 0,
			total_revenue NUMERIC(14,2) NOT NULL DEFAULT 0,
			monthly_growth NUMERIC(6,2) NOT NULL DEFAULT 0,
			client_satisfaction NUMERIC(4,2) NOT NULL DEFAULT 0
		);
		`,
	}

	for _, migration := range migrations {
		_, err := db.Pool.Exec(ctx, migration)
		if err != nil {
			return err
		}
	}

	return nil
}

// CleanupTestDB truncates all tables for a fresh test state.
// Call this at the start of each integration test.
// Fails the test if truncation fails.
func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	ctx := context.Background()
	_, err := db.Pool.Exec(ctx, "TRUNCATE TABLE projects, clients, activities, analytics CASCADE")
	require.NoError(t, err)
}

// TeardownTestDB closes the test database connection.
// Should be called once in TestMain after all tests complete.
// Safe to call with nil DB (no-op).
func TeardownTestDB(db *DB) {
	if db != nil {
		db.Close()
	}
}
