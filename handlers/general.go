package handlers

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"voicesalon/middleware"
	"voicesalon/models"
	"voicesalon/services/catalog"
	"voicesalon/services/hours"
	"voicesalon/services/language"
	"voicesalon/services/location"
)

// GeneralHandler answers the salon-wide questions: welcome, about, contact
// and current status.
type GeneralHandler struct {
	SalonName string
	Catalog   *catalog.Catalog
	Board     *hours.Board
	Guide     *location.Guide
	Location  *time.Location
	now       func() time.Time
}

func NewGeneralHandler(salonName string, c *catalog.Catalog, b *hours.Board, g *location.Guide, loc *time.Location) *GeneralHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &GeneralHandler{SalonName: salonName, Catalog: c, Board: b, Guide: g, Location: loc, now: time.Now}
}

func (h *GeneralHandler) welcomePayload(lang models.Language) gin.H {
	now := h.now().In(h.Location)
	w := language.WelcomeMessage(now, lang, h.SalonName, h.Guide.Location().Area(), h.Board.Schedule())
	return gin.H{"success": true, "data": w, "voice_response": w.Greeting + " " + w.Question}
}

func (h *GeneralHandler) aboutPayload(lang models.Language) gin.H {
	loc := h.Guide.Location()
	hoursText, open := language.DescribeOpenDays(h.Board.Schedule(), lang)
	if !open {
		hoursText = language.SummarizeHours(h.Board.Schedule(), lang).Summary
	}

	description := fmt.Sprintf("Beauty center specialized in manicures, pedicures, eyebrows, eyelashes and facial treatments in %s. Located at %s.",
		loc.City, loc.Address)
	if lang.IsSpanish() {
		description = fmt.Sprintf("Centro de belleza especializado en manicuras, pedicuras, cejas, pestañas y tratamientos faciales en %s. Ubicados en %s.",
			loc.City, loc.Address)
	}

	return dataBody(gin.H{
		"business_name":    h.SalonName,
		"location":         loc.Address,
		"hours_summary":    hoursText,
		"description":      description,
		"services_summary": h.serviceNames(lang),
	})
}

// serviceNames lists the translated category names without repeats.
func (h *GeneralHandler) serviceNames(lang models.Language) []string {
	seen := map[string]bool{}
	names := []string{}
	for _, category := range h.Catalog.Categories() {
		name := language.TranslateCategory(category, lang)
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	return names
}

func (h *GeneralHandler) overviewPayload() gin.H {
	return dataBody(h.Catalog.Overview())
}

func (h *GeneralHandler) contactPayload() gin.H {
	loc := h.Guide.Location()
	return dataBody(gin.H{
		"business_name": h.SalonName,
		"address":       loc.Address,
		"city":          loc.City,
		"postal_code":   loc.PostalCode,
		"country":       loc.Country,
		"google_maps":   loc.GoogleMapsURL,
		"hours":         h.Board.Schedule(),
		"transport":     loc.PublicTransport,
		"parking":       h.Guide.Parking(),
	})
}

func (h *GeneralHandler) statusPayload(lang models.Language) gin.H {
	status := h.Board.Status(lang)
	return gin.H{"success": true, "data": status, "voice_response": status.Message}
}

// Welcome handles GET /api/general/welcome.
func (h *GeneralHandler) Welcome(c *gin.Context) {
	respond(c, h.welcomePayload(middleware.LanguageFrom(c)), nil, "Error generating welcome message")
}

func (h *GeneralHandler) About(c *gin.Context) {
	respond(c, h.aboutPayload(middleware.LanguageFrom(c)), nil, "Error fetching business information")
}

func (h *GeneralHandler) ServicesOverview(c *gin.Context) {
	respond(c, h.overviewPayload(), nil, "Error fetching services overview")
}

func (h *GeneralHandler) Contact(c *gin.Context) {
	respond(c, h.contactPayload(), nil, "Error fetching contact information")
}

func (h *GeneralHandler) Status(c *gin.Context) {
	respond(c, h.statusPayload(middleware.LanguageFrom(c)), nil, "Error fetching business status")
}
