package handlers

import (
	"net/http"
	"powerdash/database"
	"powerdash/middleware"

	"github.com/gin-gonic/gin"
)

// NewRouter wires every endpoint, once at the root and once under /api,
// since callers may or may not include the leading api segment.
// Unknown routes and unsupported methods get the fixed JSON envelopes;
// nothing reaches the transport layer unformatted.
func NewRouter(db *database.DB, allowedOrigin string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.CustomRecovery(func(c *gin.Context, _ interface{}) {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}))
	r.Use(middleware.CORS(allowedOrigin))

	r.HandleMethodNotAllowed = true
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Endpoint not found"})
	})
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
	})

	r.GET("/health", HealthCheck)

	registerRoutes(&r.RouterGroup, db)
	registerRoutes(r.Group("/api"), db)

	return r
}

func registerRoutes(g *gin.RouterGroup, db *database.DB) {
	g.GET("/projects", ListProjects(db))
	g.POST("/projects", CreateProject(db))
	g.GET("/projects/:id", GetProject(db))
	g.PUT("/projects/:id", UpdateProject(db))
	g.DELETE("/projects/:id", DeleteProject(db))

	g.GET("/clients", ListClients(db))
	g.GET("/activities", ListActivities(db))
	g.GET("/analytics", ListAnalytics(db))
	g.GET("/dashboard-stats", GetDashboardStats(db))
	g.GET("/chart-data", GetChartData(db))
}

func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}
