package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"voicesalon/config"
	"voicesalon/utils"
)

const (
	serviceName = "Voice Salon Bot API"
	version     = "2.0.0"
)

// Endpoints is the index served at / and listed by the 404 handler.
var Endpoints = gin.H{
	"health":       "/health",
	"services":     "/api/services",
	"hours":        "/api/hours",
	"location":     "/api/location",
	"general":      "/api/general",
	"appointments": "/api/appointments",
	"elevenlabs": gin.H{
		"webhook":            "/api/elevenlabs/webhook",
		"health":             "/api/elevenlabs/health",
		"signed_url":         "/api/elevenlabs/signed-url",
		"conversation_token": "/api/elevenlabs/conversation-token",
	},
	"vapi": gin.H{
		"webhook": "/api/vapi/webhook",
		"tools":   "/api/vapi/tools",
	},
}

// Health handles GET /health. Redis is reported when it is configured.
func Health(c *gin.Context) {
	body := gin.H{
		"status":    "OK",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   serviceName,
		"version":   version,
	}
	if config.RedisEnabled() {
		body["redis"] = utils.GetHealthStatus()
	}
	c.JSON(http.StatusOK, body)
}

// Root handles GET /.
func Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message":   serviceName,
		"version":   version,
		"endpoints": Endpoints,
	})
}

// NoRoute renders unknown routes as JSON.
func NoRoute(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{
		"error":              "Endpoint not found",
		"message":            "The endpoint " + c.Request.URL.Path + " does not exist",
		"availableEndpoints": []string{"/health", "/api/services", "/api/hours", "/api/location", "/api/general", "/api/appointments", "/api/elevenlabs", "/api/vapi"},
	})
}
