package database

import (
	"context"
	"errors"
	"fmt"
	"powerdash/models"

	"github.com/jackc/pgx/v5"
)

// Placeholder values served when stats are aggregated live because no
// snapshot row exists yet. Not derived from data.
const (
	fallbackMonthlyGrowth      = 15.3
	fallbackClientSatisfaction = 4.8
)

const chartMonths = 6

// ListSnapshots returns all analytics snapshots, newest first.
func (db *DB) ListSnapshots(ctx context.Context) ([]models.AnalyticsSnapshot, error) {
	query := `
		SELECT
			id, metric_date, total_projects, active_projects,
			completed_projects, total_revenue, monthly_growth, client_satisfaction
		FROM analytics
		ORDER BY metric_date DESC
	`

	rows, err := db.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}
	defer rows.Close()

	snapshots := []models.AnalyticsSnapshot{}
	for rows.Next() {
		var snapshot models.AnalyticsSnapshot
		err := rows.Scan(
			&snapshot.ID,
			&snapshot.MetricDate,
			&snapshot.TotalProjects,
			&snapshot.ActiveProjects,
			&snapshot.CompletedProjects,
			&snapshot.TotalRevenue,
			&snapshot.MonthlyGrowth,
			&snapshot.ClientSatisfaction,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan snapshot: %w", err)
		}
		snapshots = append(snapshots, snapshot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating snapshots: %w", err)
	}

	return snapshots, nil
}

// DashboardStats reads the most recent snapshot. When no snapshot exists
// the stats are aggregated live from project rows and the growth and
// satisfaction fields are filled with fixed placeholders; an empty
// analytics table is not an error.
func (db *DB) DashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	query := `
		SELECT
			total_projects, active_projects, completed_projects,
			total_revenue, monthly_growth, client_satisfaction
		FROM analytics
		ORDER BY metric_date DESC
		LIMIT 1
	`

	var stats models.DashboardStats
	err := db.Pool.QueryRow(ctx, query).Scan(
		&stats.TotalProjects,
		&stats.ActiveProjects,
		&stats.CompletedProjects,
		&stats.TotalRevenue,
		&stats.MonthlyGrowth,
		&stats.ClientSatisfaction,
	)
	if err == nil {
		return &stats, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("failed to get dashboard stats: %w", err)
	}

	fallback := `
		SELECT
			COUNT(*),
			COALESCE(SUM(CASE WHEN status = 'active' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN status = 'completed' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(budget), 0)
		FROM projects
	`

	err = db.Pool.QueryRow(ctx, fallback).Scan(
		&stats.TotalProjects,
		&stats.ActiveProjects,
		&stats.CompletedProjects,
		&stats.TotalRevenue,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate project stats: %w", err)
	}

	stats.MonthlyGrowth = fallbackMonthlyGrowth
	stats.ClientSatisfaction = fallbackClientSatisfaction
	return &stats, nil
}

// ChartData returns up to six months of chart points in chronological
// order. The clients figure is the number of distinct project clients
// created in each snapshot's month.
func (db *DB) ChartData(ctx context.Context) ([]models.ChartPoint, error) {
	query := `
		SELECT
			to_char(a.metric_date, 'YYYY-MM'),
			a.total_projects,
			a.total_revenue,
			(
				SELECT COUNT(DISTINCT p.client)
				FROM projects p
				WHERE date_trunc('month', p.created_at) = date_trunc('month', a.metric_date::timestamp)
			)
		FROM analytics a
		ORDER BY a.metric_date DESC
		LIMIT $1
	`

	rows, err := db.Pool.Query(ctx, query, chartMonths)
	if err != nil {
		return nil, fmt.Errorf("failed to query chart data: %w", err)
	}
	defer rows.Close()

	points := []models.ChartPoint{}
	for rows.Next() {
		var point models.ChartPoint
		err := rows.Scan(&point.Date, &point.Projects, &point.Revenue, &point.Clients)
		if err != nil {
			return nil, fmt.Errorf("failed to scan chart point: %w", err)
		}
		points = append(points, point)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating chart data: %w", err)
	}

	// Queried newest-first; charts want oldest-first.
	for i, j := 0, len(points)-1; i < j; i, j = i+1, j-1 {
		points[i], points[j] = points[j], points[i]
	}

	return points, nil
}
