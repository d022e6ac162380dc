package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"voicesalon/middleware"
)

// getLogger retrieves the request logger set by middleware.RequestLogger,
// falling back to the global logger.
func getLogger(c *gin.Context) *zap.Logger {
	if l, exists := c.Get(middleware.LoggerKey); exists {
		if logger, ok := l.(*zap.Logger); ok {
			return logger
		}
	}
	return zap.L()
}
