package models

import (
	"github.com/google/uuid"
)

// AnalyticsSnapshot is one periodic aggregate row, keyed by month.
type AnalyticsSnapshot struct {
	ID                 uuid.UUID `json:"id"`
	MetricDate         Date      `json:"metricDate"`
	TotalProjects      int       `json:"totalProjects"`
	ActiveProjects     int       `json:"activeProjects"`
	CompletedProjects  int       `json:"completedProjects"`
	TotalRevenue       float64   `json:"totalRevenue"`
	MonthlyGrowth      float64   `json:"monthlyGrowth"`
	ClientSatisfaction float64   `json:"clientSatisfaction"`
}

// DashboardStats is the flat object served by /dashboard-stats, either
// copied from the latest snapshot or aggregated live from project rows.
type DashboardStats struct {
	TotalProjects      int     `json:"totalProjects"`
	ActiveProjects     int     `json:"activeProjects"`
	CompletedProjects  int     `json:"completedProjects"`
	TotalRevenue       float64 `json:"totalRevenue"`
	MonthlyGrowth      float64 `json:"monthlyGrowth"`
	ClientSatisfaction float64 `json:"clientSatisfaction"`
}

// ChartPoint is one month of chart data. Date is formatted "YYYY-MM".
type ChartPoint struct {
	Date     string  `json:"date"`
	Projects int     `json:"projects"`
	Revenue  float64 `json:"revenue"`
	Clients  int     `json:"clients"`
}
