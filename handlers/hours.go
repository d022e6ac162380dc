package handlers

import (
	"github.com/gin-gonic/gin"

	"voicesalon/middleware"
	"voicesalon/models"
	"voicesalon/services/hours"
)

type HoursHandler struct {
	Board *hours.Board
}

func NewHoursHandler(b *hours.Board) *HoursHandler {
	return &HoursHandler{Board: b}
}

func (h *HoursHandler) allPayload(lang models.Language) gin.H {
	summary := h.Board.Summary(lang)
	return gin.H{
		"success": true,
		"data": gin.H{
			"business_hours": h.Board.Schedule(),
			"summary":        summary,
		},
		"voice_response": summary.Summary,
	}
}

func (h *HoursHandler) todayPayload() gin.H {
	return dataBody(h.Board.Today())
}

func (h *HoursHandler) statusPayload(lang models.Language) gin.H {
	status := h.Board.Status(lang)
	return gin.H{"success": true, "data": status, "voice_response": status.Message}
}

func (h *HoursHandler) weekPayload(lang models.Language) gin.H {
	return dataBody(gin.H{
		"weekly_schedule": h.Board.Week(),
		"summary":         h.Board.Summary(lang),
	})
}

// GetAllHours handles GET /api/hours.
func (h *HoursHandler) GetAllHours(c *gin.Context) {
	respond(c, h.allPayload(middleware.LanguageFrom(c)), nil, "Error fetching business hours")
}

func (h *HoursHandler) GetToday(c *gin.Context) {
	respond(c, h.todayPayload(), nil, "Error fetching today's hours")
}

func (h *HoursHandler) GetStatus(c *gin.Context) {
	respond(c, h.statusPayload(middleware.LanguageFrom(c)), nil, "Error fetching business status")
}

func (h *HoursHandler) GetWeek(c *gin.Context) {
	respond(c, h.weekPayload(middleware.LanguageFrom(c)), nil, "Error fetching weekly schedule")
}
