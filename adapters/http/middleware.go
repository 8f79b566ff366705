package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/namdhoang/portfolio-hub/pkg/apperror"
	"github.com/namdhoang/portfolio-hub/pkg/logger"
)

// ErrorMiddleware turns errors attached via c.Error into the response
// envelope. Handlers never write error bodies themselves.
func ErrorMiddleware(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err

		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			status := apperror.ToHTTPStatus(appErr)
			if status >= http.StatusInternalServerError {
				log.Error("request failed", err, zap.String("path", c.FullPath()))
			}
			c.JSON(status, gin.H{"success": false, "error": appErr.Message})
			return
		}

		log.Error("unhandled error", err, zap.String("path", c.FullPath()))
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "an unexpected error occurred",
		})
	}
}

// CORSMiddleware lets the static browser client, served from anywhere, talk
// to the API. The data is public and the API carries no credentials.
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Accept, Origin")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
