package handlers

import (
	"net/http"
	"powerdash/database"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

func ListClients(db *database.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		clients, err := db.ListClients(ctx)
		if err != nil {
			log.Error().Err(err).Msg("list clients failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, clients)
	}
}
