package database

import (
	"context"
	"fmt"
	"powerdash/models"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedSnapshot(t *testing.T, db *DB, metricDate string, totalProjects int, totalRevenue float64) {
	t.Helper()

	ctx := context.Background()
	_, err := db.Pool.Exec(ctx, `
		INSERT INTO analytics
			(metric_date, total_projects, active_projects, completed_projects,
			 total_revenue, monthly_growth, client_satisfaction)
		VALUES ($1, $2, 3, 2, $3, 12.5, 4.6)
	`, metricDate, totalProjects, totalRevenue)
	require.NoError(t, err)
}

func seedProjectWithStatus(t *testing.T, db *DB, title, status string, budget float64) {
	t.Helper()

	ctx := context.Background()
	_, err := db.Pool.Exec(ctx, `
		INSERT INTO projects (title, description, category, status, client, start_date, budget, progress)
		VALUES ($1, 'seeded', 'Web', $2, 'Acme', '2024-01-01', $3, 50)
	`, title, status, budget)
	require.NoError(t, err)
}

func TestDashboardStats_FromSnapshot(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db := GetTestDB()
	CleanupTestDB(t, db)

	seedSnapshot(t, db, "2024-04-01", 10, 50000)
	seedSnapshot(t, db, "2024-05-01", 12, 61000)

	stats, err := db.DashboardStats(context.Background())
	require.NoError(t, err)

	// Latest snapshot wins, live project rows are not consulted.
	assert.Equal(t, 12, stats.TotalProjects)
	assert.Equal(t, 61000.0, stats.TotalRevenue)
	assert.Equal(t, 12.5, stats.MonthlyGrowth)
	assert.Equal(t, 4.6, stats.ClientSatisfaction)
}

func TestDashboardStats_FallbackFromProjects(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db := GetTestDB()
	CleanupTestDB(t, db)

	seedProjectWithStatus(t, db, "P1", "active", 100)
	seedProjectWithStatus(t, db, "P2", "active", 200)
	seedProjectWithStatus(t, db, "P3", "completed", 300)

	stats, err := db.DashboardStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, stats.TotalProjects)
	assert.Equal(t, 2, stats.ActiveProjects)
	assert.Equal(t, 1, stats.CompletedProjects)
	assert.Equal(t, 600.0, stats.TotalRevenue)
	assert.Equal(t, fallbackMonthlyGrowth, stats.MonthlyGrowth)
	assert.Equal(t, fallbackClientSatisfaction, stats.ClientSatisfaction)
}

func TestDashboardStats_EmptyStore(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db := GetTestDB()
	CleanupTestDB(t, db)

	stats, err := db.DashboardStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, stats.TotalProjects)
	assert.Equal(t, 0.0, stats.TotalRevenue)
	assert.Equal(t, fallbackMonthlyGrowth, stats.MonthlyGrowth)
	assert.Equal(t, fallbackClientSatisfaction, stats.ClientSatisfaction)
}

func TestListSnapshots_NewestFirst(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db := GetTestDB()
	CleanupTestDB(t, db)

	seedSnapshot(t, db, "2024-03-01", 8, 30000)
	seedSnapshot(t, db, "2024-05-01", 12, 61000)
	seedSnapshot(t, db, "2024-04-01", 10, 50000)

	snapshots, err := db.ListSnapshots(context.Background())
	require.NoError(t, err)
	require.Len(t, snapshots, 3)

	assert.Equal(t, models.NewDate(2024, time.May, 1), snapshots[0].MetricDate)
	assert.Equal(t, models.NewDate(2024, time.April, 1), snapshots[1].MetricDate)
	assert.Equal(t, models.NewDate(2024, time.March, 1), snapshots[2].MetricDate)
}

func TestChartData_ChronologicalCappedAtSix(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db := GetTestDB()
	CleanupTestDB(t, db)

	// Eight months of snapshots; only the six most recent may appear.
	for month := 1; month <= 8; month++ {
		seedSnapshot(t, db, fmt.Sprintf("2024-%02d-01", month), month, float64(month)*1000)
	}

	points, err := db.ChartData(context.Background())
	require.NoError(t, err)
	require.Len(t, points, 6)

	assert.Equal(t, "2024-03", points[0].Date)
	assert.Equal(t, "2024-08", points[5].Date)
	for i := 1; i < len(points); i++ {
		assert.Less(t, points[i-1].Date, points[i].Date,
			"chart points must be in ascending chronological order")
	}
}

func TestChartData_CountsDistinctClientsPerMonth(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db := GetTestDB()
	CleanupTestDB(t, db)

	seedSnapshot(t, db, "2024-05-01", 4, 20000)

	ctx := context.Background()
	seed := `
		INSERT INTO projects (title, description, category, status, client, start_date, budget, progress, created_at)
		VALUES ($1, 'seeded', 'Web', 'active', $2, '2024-05-01', 100, 10, $3)
	`
	may := time.Date(2024, time.May, 10, 9, 0, 0, 0, time.UTC)
	june := time.Date(2024, time.June, 2, 9, 0, 0, 0, time.UTC)

	_, err := db.Pool.Exec(ctx, seed, "P1", "Acme", may)
	require.NoError(t, err)
	_, err = db.Pool.Exec(ctx, seed, "P2", "Acme", may.Add(time.Hour))
	require.NoError(t, err)
	_, err = db.Pool.Exec(ctx, seed, "P3", "Globex", may.Add(2*time.Hour))
	require.NoError(t, err)
	_, err = db.Pool.Exec(ctx, seed, "P4", "Initech", june)
	require.NoError(t, err)

	points, err := db.ChartData(ctx)
	require.NoError(t, err)
	require.Len(t, points, 1)

	assert.Equal(t, "2024-05", points[0].Date)
	assert.Equal(t, 4, points[0].Projects)
	assert.Equal(t, 20000.0, points[0].Revenue)
	assert.Equal(t, 2, points[0].Clients, "distinct clients among projects created in the snapshot month")
}
