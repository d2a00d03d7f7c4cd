package handlers

import (
	"net/http"
	"powerdash/database"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

func ListAnalytics(db *database.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		snapshots, err := db.ListSnapshots(ctx)
		if err != nil {
			log.Error().Err(err).Msg("list analytics failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, snapshots)
	}
}

// GetDashboardStats serves the headline numbers. The DB layer falls back
// to live aggregation when the analytics table is empty.
func GetDashboardStats(db *database.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		stats, err := db.DashboardStats(ctx)
		if err != nil {
			log.Error().Err(err).Msg("dashboard stats failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, stats)
	}
}

func GetChartData(db *database.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		points, err := db.ChartData(ctx)
		if err != nil {
			log.Error().Err(err).Msg("chart data failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, points)
	}
}
