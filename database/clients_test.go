package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedClient(t *testing.T, db *DB, name string, projectsCount int, totalSpent float64) {
	t.Helper()

	ctx := context.Background()
	_, err := db.Pool.Exec(ctx, `
		INSERT INTO clients (name, email, company, projects_count, total_spent, last_contact)
		VALUES ($1, $2, 'Example Corp', $3, $4, '2024-05-01')
	`, name, name+"@example.com", projectsCount, totalSpent)
	require.NoError(t, err)
}

func TestListClients_OrderedByName(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db := GetTestDB()
	CleanupTestDB(t, db)

	seedClient(t, db, "Charlie Ltd", 2, 5000)
	seedClient(t, db, "Alpha Inc", 5, 20000)
	seedClient(t, db, "Bravo GmbH", 1, 800)

	clients, err := db.ListClients(context.Background())
	require.NoError(t, err)
	require.Len(t, clients, 3)

	assert.Equal(t, "Alpha Inc", clients[0].Name)
	assert.Equal(t, "Bravo GmbH", clients[1].Name)
	assert.Equal(t, "Charlie Ltd", clients[2].Name)
}

func TestListClients_AggregatesAsStored(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db := GetTestDB()
	CleanupTestDB(t, db)

	// The denormalized aggregates are independent of project rows: a
	// client with no projects in the store still reports what was saved.
	seedClient(t, db, "Alpha Inc", 7, 42000)

	clients, err := db.ListClients(context.Background())
	require.NoError(t, err)
	require.Len(t, clients, 1)

	assert.Equal(t, 7, clients[0].ProjectsCount)
	assert.Equal(t, 42000.0, clients[0].TotalSpent)
	assert.Equal(t, "active", clients[0].Status)
}

func TestListClients_Empty(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db := GetTestDB()
	CleanupTestDB(t, db)

	clients, err := db.ListClients(context.Background())
	require.NoError(t, err)
	assert.Empty(t, clients)
}
