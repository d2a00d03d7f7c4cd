package database

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedActivity(t *testing.T, db *DB, activityType, title string, createdAt time.Time) {
	t.Helper()

	ctx := context.Background()
	_, err := db.Pool.Exec(ctx, `
		INSERT INTO activities (type, title, description, created_at)
		VALUES ($1, $2, '', $3)
	`, activityType, title, createdAt)
	require.NoError(t, err)
}

func TestRecentActivities_NewestFirstCappedAtTen(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db := GetTestDB()
	CleanupTestDB(t, db)

	base := time.Date(2024, time.May, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 12; i++ {
		seedActivity(t, db, "project_created", fmt.Sprintf("Activity %d", i), base.Add(time.Duration(i)*time.Hour))
	}

	activities, err := db.RecentActivities(context.Background())
	require.NoError(t, err)
	require.Len(t, activities, 10)

	assert.Equal(t, "Activity 11", activities[0].Title)
	for i := 1; i < len(activities); i++ {
		assert.False(t, activities[i-1].Timestamp.Before(activities[i].Timestamp),
			"activities must be ordered newest first")
	}
}

func TestRecentActivities_Empty(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db := GetTestDB()
	CleanupTestDB(t, db)

	activities, err := db.RecentActivities(context.Background())
	require.NoError(t, err)
	assert.Empty(t, activities)
}
