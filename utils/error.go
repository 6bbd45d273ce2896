package utils

import (
	"net/http"

	"parklot/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorHandler is a middleware that catches panics and renders them as the
// standard failure envelope with an INTERNAL code.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger := GetLogger()
				logger.Error("Unhandled panic", zap.Any("error", err))

				c.JSON(http.StatusInternalServerError,
					models.FailResponse("INTERNAL", "An unexpected error occurred. Please try again later."))
				c.Abort()
			}
		}()
		c.Next()
	}
}
