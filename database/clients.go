package database

import (
	"context"
	"fmt"
	"powerdash/models"
)

// ListClients returns all clients ordered by name ascending.
// projects_count and total_spent are denormalized aggregates and are
// returned exactly as stored, never recomputed from project rows.
func (db *DB) ListClients(ctx context.Context) ([]models.Client, error) {
	query := `
		SELECT
			id, name, email, company, phone,
			projects_count, total_spent, last_contact, status,
			created_at, updated_at
		FROM clients
		ORDER BY name
	`

	rows, err := db.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	defer rows.Close()

	clients := []models.Client{}
	for rows.Next() {
		var client models.Client
		err := rows.Scan(
			&client.ID,
			&client.Name,
			&client.Email,
			&client.Company,
			&client.Phone,
			&client.ProjectsCount,
			&client.TotalSpent,
			&client.LastContact,
			&client.Status,
			&client.CreatedAt,
			&client.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan client: %w", err)
		}
		clients = append(clients, client)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating clients: %w", err)
	}

	return clients, nil
}
