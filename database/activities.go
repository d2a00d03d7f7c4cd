package database

import (
	"context"
	"fmt"
	"powerdash/models"
)

const recentActivityLimit = 10

// RecentActivities returns the newest activities, capped at
// recentActivityLimit. The creation time is exposed as the public
// timestamp field.
func (db *DB) RecentActivities(ctx context.Context) ([]models.Activity, error) {
	query := `
		SELECT id, type, title, description, created_at
		FROM activities
		ORDER BY created_at DESC
		LIMIT $1
	`

	rows, err := db.Pool.Query(ctx, query, recentActivityLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}
	defer rows.Close()

	activities := []models.Activity{}
	for rows.Next() {
		var activity models.Activity
		err := rows.Scan(
			&activity.ID,
			&activity.Type,
			&activity.Title,
			&activity.Description,
			&activity.Timestamp,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan activity: %w", err)
		}
		activities = append(activities, activity)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating activities: %w", err)
	}

	return activities, nil
}
