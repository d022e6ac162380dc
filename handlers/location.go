package handlers

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"voicesalon/middleware"
	"voicesalon/models"
	"voicesalon/services/location"
)

type LocationHandler struct {
	Guide *location.Guide
}

func NewLocationHandler(g *location.Guide) *LocationHandler {
	return &LocationHandler{Guide: g}
}

func (h *LocationHandler) locationPayload(lang models.Language) gin.H {
	loc := h.Guide.Location()
	spoken := fmt.Sprintf("We're at %s, %s.", loc.Address, loc.Area())
	if lang.IsSpanish() {
		spoken = fmt.Sprintf("Estamos en %s, %s.", loc.Address, loc.Area())
	}
	return gin.H{
		"success": true,
		"data": gin.H{
			"location": h.Guide.Location(),
			"parking":  h.Guide.Parking(),
		},
		"voice_response": spoken,
	}
}

func (h *LocationHandler) addressPayload() gin.H { return dataBody(h.Guide.Address()) }

func (h *LocationHandler) directionsPayload() gin.H { return dataBody(h.Guide.Directions()) }

func (h *LocationHandler) transportPayload(lang models.Language) gin.H {
	loc := h.Guide.Location()
	return gin.H{
		"success": true,
		"data": gin.H{
			"public_transport": loc.PublicTransport,
			"landmarks":        h.Guide.Directions().Landmarks,
		},
		"voice_response": h.Guide.TransportSummary(lang),
	}
}

func (h *LocationHandler) parkingPayload(lang models.Language) gin.H {
	return gin.H{
		"success":        true,
		"data":           gin.H{"parking": h.Guide.Parking()},
		"voice_response": h.Guide.ParkingSummary(lang),
	}
}

func (h *LocationHandler) summaryPayload(lang models.Language) gin.H {
	return dataBody(h.Guide.Summary(lang))
}

// GetLocation handles GET /api/location.
func (h *LocationHandler) GetLocation(c *gin.Context) {
	respond(c, h.locationPayload(middleware.LanguageFrom(c)), nil, "Error fetching location")
}

func (h *LocationHandler) GetAddress(c *gin.Context) {
	respond(c, h.addressPayload(), nil, "Error fetching address")
}

func (h *LocationHandler) GetDirections(c *gin.Context) {
	respond(c, h.directionsPayload(), nil, "Error fetching directions")
}

func (h *LocationHandler) GetTransport(c *gin.Context) {
	respond(c, h.transportPayload(middleware.LanguageFrom(c)), nil, "Error fetching transport information")
}

func (h *LocationHandler) GetParking(c *gin.Context) {
	respond(c, h.parkingPayload(middleware.LanguageFrom(c)), nil, "Error fetching parking information")
}

func (h *LocationHandler) GetSummary(c *gin.Context) {
	respond(c, h.summaryPayload(middleware.LanguageFrom(c)), nil, "Error fetching location summary")
}
