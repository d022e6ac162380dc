package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"voicesalon/middleware"
	"voicesalon/models"
	"voicesalon/services/appointment"
)

var requiredBookingFields = []string{"clientName", "service", "dateTimeText"}

type AppointmentHandler struct {
	Service *appointment.Service
}

func NewAppointmentHandler(svc *appointment.Service) *AppointmentHandler {
	return &AppointmentHandler{Service: svc}
}

type parseRequest struct {
	Text string `json:"text"`
	Lang string `json:"lang"`
}

type bookRequest struct {
	ClientName   string `json:"clientName"`
	Service      string `json:"service"`
	DateTimeText string `json:"dateTimeText"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	VoiceEmail   string `json:"voiceEmail"`
	Lang         string `json:"lang"`
}

func (r bookRequest) toModel(lang models.Language) models.AppointmentRequest {
	email := r.Email
	if strings.TrimSpace(email) == "" {
		email = r.VoiceEmail
	}
	return models.AppointmentRequest{
		ClientName:   strings.TrimSpace(r.ClientName),
		Service:      strings.TrimSpace(r.Service),
		DateTimeText: strings.TrimSpace(r.DateTimeText),
		Phone:        r.Phone,
		Email:        email,
		Language:     lang,
	}
}

// bodyLanguage lets a "lang" field in a JSON body override the negotiated language.
func bodyLanguage(raw string, negotiated models.Language) models.Language {
	if strings.TrimSpace(raw) != "" {
		return models.ParseLanguage(raw)
	}
	return negotiated
}

func (h *AppointmentHandler) parsePayload(text string, lang models.Language) (gin.H, error) {
	if strings.TrimSpace(text) == "" {
		return nil, badRequest("Text parameter is required", nil)
	}
	outcome := h.Service.Interpret(text, lang)
	body := gin.H{
		"success":         outcome.State == models.StateValidated,
		"voice_response":  outcome.Reply.Message,
		"parsed_datetime": outcome.Parsed,
		"state":           outcome.State,
	}
	if outcome.Reply.NeedsClarification {
		body["needs_clarification"] = true
	}
	if outcome.Validation != nil && !outcome.Validation.Valid {
		body["reason"] = outcome.Validation.Reason
	}
	return body, nil
}

func (h *AppointmentHandler) bookPayload(ctx context.Context, req models.AppointmentRequest) (gin.H, error) {
	booking, err := h.Service.Book(ctx, req)
	var reqErr *appointment.RequestError
	if errors.As(err, &reqErr) {
		msg := "Missing required data"
		if req.Language.IsSpanish() {
			msg = "Faltan datos requeridos"
		}
		return nil, badRequest(msg, gin.H{"required": requiredBookingFields, "missing": reqErr.Fields})
	}
	if err != nil {
		return nil, err
	}

	body := gin.H{
		"success":        booking.Success,
		"voice_response": booking.Reply.Message,
		"state":          booking.State,
	}
	if booking.Reply.NeedsClarification {
		body["needs_clarification"] = true
	}
	if booking.Success {
		body["summary"] = booking.Reply.Summary
		body["appointment"] = gin.H{
			"clientName":        booking.Appointment.ClientName,
			"service":           booking.Appointment.Service,
			"date":              booking.Appointment.Date,
			"time":              booking.Appointment.Time,
			"phone":             booking.Appointment.Phone,
			"email":             booking.Appointment.Email,
			"calendar_event_id": booking.Event.ID,
			"calendar_url":      booking.Event.URL,
		}
	}
	return body, nil
}

func (h *AppointmentHandler) availablePayload(date string, lang models.Language) (gin.H, error) {
	avail, err := h.Service.AvailableTimes(strings.TrimSpace(date), lang)
	var reqErr *appointment.RequestError
	if errors.As(err, &reqErr) {
		return nil, badRequest("Invalid date, expected YYYY-MM-DD", nil)
	}
	if err != nil {
		return nil, err
	}
	if !avail.Open {
		return gin.H{"success": false, "voice_response": avail.Reply.Message, "available_times": avail.Slots}, nil
	}
	return gin.H{
		"success":         true,
		"voice_response":  avail.Reply.Message,
		"available_times": avail.Slots,
		"business_hours":  avail.Hours.String(),
	}, nil
}

// ParseDateTime handles POST /api/appointments/parse-datetime.
func (h *AppointmentHandler) ParseDateTime(c *gin.Context) {
	var req parseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		getLogger(c).Warn("ParseDateTime: invalid request body", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request body"})
		return
	}
	payload, err := h.parsePayload(req.Text, bodyLanguage(req.Lang, middleware.LanguageFrom(c)))
	respond(c, payload, err, "Error parsing datetime")
}

// BookAppointment handles POST /api/appointments/book.
func (h *AppointmentHandler) BookAppointment(c *gin.Context) {
	var req bookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		getLogger(c).Warn("BookAppointment: invalid request body", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request body"})
		return
	}
	lang := bodyLanguage(req.Lang, middleware.LanguageFrom(c))
	payload, err := h.bookPayload(c.Request.Context(), req.toModel(lang))
	respond(c, payload, err, "Error booking appointment")
}

// AvailableTimes handles GET /api/appointments/available-times/:date.
func (h *AppointmentHandler) AvailableTimes(c *gin.Context) {
	payload, err := h.availablePayload(c.Param("date"), middleware.LanguageFrom(c))
	respond(c, payload, err, "Error getting available times")
}
