package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"voicesalon/middleware"
	"voicesalon/models"
	"voicesalon/services/catalog"
)

type ServiceHandler struct {
	Catalog *catalog.Catalog
}

func NewServiceHandler(c *catalog.Catalog) *ServiceHandler {
	return &ServiceHandler{Catalog: c}
}

func (h *ServiceHandler) listPayload(lang models.Language) gin.H {
	services := h.Catalog.List(lang)
	return gin.H{"success": true, "data": services, "total": len(services)}
}

func (h *ServiceHandler) searchPayload(query string, lang models.Language) (gin.H, error) {
	if strings.TrimSpace(query) == "" {
		return nil, badRequest("Query parameter is required", nil)
	}
	res := h.Catalog.Search(query, lang)
	return gin.H{
		"success":           true,
		"query":             res.Query,
		"search_terms_used": res.Terms,
		"data":              res.Services,
		"total":             len(res.Services),
	}, nil
}

func (h *ServiceHandler) categoryPayload(name string, lang models.Language) (gin.H, error) {
	svc, found := h.Catalog.Category(name)
	if !found {
		return nil, notFound("Service category not found", gin.H{"available_categories": h.Catalog.Categories()})
	}
	return gin.H{
		"success":        true,
		"data":           svc,
		"price_range":    catalog.PriceRangeOf(svc),
		"voice_response": catalog.PriceRangeText(svc, lang),
	}, nil
}

func (h *ServiceHandler) popularPayload() gin.H {
	popular := h.Catalog.Popular()
	return gin.H{"success": true, "data": popular, "total": len(popular)}
}

func (h *ServiceHandler) priceRangePayload(min, max float64, valid bool) (gin.H, error) {
	if !valid {
		return nil, badRequest("Invalid price range parameters", nil)
	}
	services := h.Catalog.InPriceRange(min, max)
	return gin.H{
		"success":     true,
		"price_range": models.PriceRange{Min: min, Max: max},
		"data":        services,
		"total":       len(services),
	}, nil
}

// ListServices handles GET /api/services.
func (h *ServiceHandler) ListServices(c *gin.Context) {
	respond(c, h.listPayload(middleware.LanguageFrom(c)), nil, "Error fetching services")
}

// SearchServices handles GET /api/services/search?query=.
func (h *ServiceHandler) SearchServices(c *gin.Context) {
	payload, err := h.searchPayload(c.Query("query"), middleware.LanguageFrom(c))
	respond(c, payload, err, "Error searching services")
}

// GetCategory handles GET /api/services/:category.
func (h *ServiceHandler) GetCategory(c *gin.Context) {
	payload, err := h.categoryPayload(c.Param("category"), middleware.LanguageFrom(c))
	respond(c, payload, err, "Error fetching service category")
}

func (h *ServiceHandler) PopularServices(c *gin.Context) {
	respond(c, h.popularPayload(), nil, "Error fetching popular services")
}

// ServicesByPrice handles GET /api/services/price-range/:min/:max.
func (h *ServiceHandler) ServicesByPrice(c *gin.Context) {
	min, minErr := strconv.ParseFloat(c.Param("min"), 64)
	max, maxErr := strconv.ParseFloat(c.Param("max"), 64)
	payload, err := h.priceRangePayload(min, max, minErr == nil && maxErr == nil)
	respond(c, payload, err, "Error fetching services by price")
}
