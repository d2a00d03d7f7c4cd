package handlers

import (
	"net/http"
	"powerdash/database"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

func ListActivities(db *database.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		activities, err := db.RecentActivities(ctx)
		if err != nil {
			log.Error().Err(err).Msg("list activities failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, activities)
	}
}
