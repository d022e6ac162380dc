package utils

import (
	"fmt"
	"net/http"

	"voicesalon/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse defines the structure of error responses
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// ErrorHandler is a middleware to catch panics and return structured errors
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				GetLogger().Error("Unhandled panic",
					zap.Any("error", err),
					zap.String("path", c.Request.URL.Path))

				message := "Something went wrong"
				if config.IsDevelopment() {
					message = fmt.Sprint(err)
				}
				c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
					Error:   "Internal server error",
					Message: message,
				})
			}
		}()
		c.Next()
	}
}

// JSONError sends a standardized JSON error response. The underlying cause is
// logged and only echoed back in development.
func JSONError(c *gin.Context, status int, message string, cause error) {
	fields := []zap.Field{zap.Int("status", status), zap.String("path", c.Request.URL.Path)}
	if cause != nil {
		fields = append(fields, zap.Error(cause))
	}
	GetLogger().Warn(message, fields...)

	resp := ErrorResponse{Error: message}
	if cause != nil && config.IsDevelopment() {
		resp.Message = cause.Error()
	}
	c.JSON(status, resp)
}
