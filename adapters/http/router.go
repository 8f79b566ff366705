package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/namdhoang/portfolio-hub/pkg/logger"
)

// NewRouter wires the HTTP surface. Kept separate from main so tests can
// run the exact same routing against fakes.
func NewRouter(profileHandler *ProfileHandler, queryHandler *QueryHandler, log logger.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), CORSMiddleware(), ErrorMiddleware(log))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"message":   "Server is running",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	api := router.Group("/api")
	{
		api.POST("/profile", profileHandler.CreateProfile)
		api.GET("/profile/:id", profileHandler.GetProfile)
		api.GET("/profile/:id/views", profileHandler.GetProfileViews)
		api.PUT("/profile/:id", profileHandler.UpdateProfile)
		api.DELETE("/profile/:id", profileHandler.DeleteProfile)
		api.GET("/profiles", profileHandler.ListProfiles)

		api.GET("/projects", queryHandler.ListProjects)
		api.GET("/skills/top", queryHandler.TopSkills)
		api.GET("/search", queryHandler.Search)
	}

	return router
}
