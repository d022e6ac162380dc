package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"voicesalon/models"
	"voicesalon/services/language"
)

const maxPopular = 6

var popularMarkers = []string{"pack", "manicura", "pelo a pelo", "volumen ruso"}

// Catalog answers questions about the salon's services. It only reads the
// data it was built with.
type Catalog struct {
	services []models.Service
}

func New(data models.SalonData) *Catalog {
	return &Catalog{services: data.Services}
}

// ServiceSummary is the list view of a service.
type ServiceSummary struct {
	Category           string   `json:"category"`
	PriceOriginalEUR   float64  `json:"price_original_eur,omitempty"`
	PriceDiscountedEUR float64  `json:"price_discounted_eur,omitempty"`
	Duration           string   `json:"duration,omitempty"`
	Includes           []string `json:"includes,omitempty"`
	Variants           int      `json:"variants"`
}

func (c *Catalog) List(lang models.Language) []ServiceSummary {
	out := make([]ServiceSummary, 0, len(c.services))
	for _, s := range c.services {
		out = append(out, ServiceSummary{
			Category:           language.TranslateCategory(s.Category, lang),
			PriceOriginalEUR:   s.PriceOriginalEUR,
			PriceDiscountedEUR: s.PriceDiscountedEUR,
			Duration:           s.Duration,
			Includes:           s.Includes,
			Variants:           len(s.Variants),
		})
	}
	return out
}

// Categories returns the raw category names in catalog order.
func (c *Catalog) Categories() []string {
	out := make([]string, 0, len(c.services))
	for _, s := range c.services {
		out = append(out, s.Category)
	}
	return out
}

// SearchResult is what a search matched and which terms it tried.
type SearchResult struct {
	Query    string           `json:"query"`
	Terms    []string         `json:"search_terms_used"`
	Services []models.Service `json:"data"`
}

// Search matches the query and its synonyms against category and variant
// names, ignoring case and accents.
func (c *Catalog) Search(query string, lang models.Language) SearchResult {
	terms := searchTerms(query)
	result := SearchResult{Query: terms[0], Terms: terms, Services: []models.Service{}}
	for _, s := range c.services {
		if !matchesAny(s.Category, terms) && !variantMatches(s, terms) {
			continue
		}
		s.Category = language.TranslateCategory(s.Category, lang)
		result.Services = append(result.Services, s)
	}
	return result
}

func variantMatches(s models.Service, terms []string) bool {
	for _, v := range s.Variants {
		if matchesAny(v.Name, terms) {
			return true
		}
	}
	return false
}

// Category finds a service by category name, ignoring case, accents and
// punctuation.
func (c *Catalog) Category(name string) (models.Service, bool) {
	want := slug(name)
	if want == "" {
		return models.Service{}, false
	}
	for _, s := range c.services {
		if slug(s.Category) == want {
			return s, true
		}
	}
	return models.Service{}, false
}

// Popular returns packs and the signature manicure and lash services.
func (c *Catalog) Popular() []models.Service {
	return c.popular(maxPopular)
}

func (c *Catalog) popular(limit int) []models.Service {
	out := []models.Service{}
	for _, s := range c.services {
		if len(out) == limit {
			break
		}
		lower := strings.ToLower(s.Category)
		for _, marker := range popularMarkers {
			if strings.Contains(lower, marker) {
				out = append(out, s)
				break
			}
		}
	}
	return out
}

// InPriceRange filters by effective price, both bounds included.
func (c *Catalog) InPriceRange(min, max float64) []models.Service {
	out := []models.Service{}
	for _, s := range c.services {
		if p := s.EffectivePrice(); p >= min && p <= max {
			out = append(out, s)
		}
	}
	return out
}

// PriceRangeOf spans the variants of a service, or its own price when it has none.
func PriceRangeOf(s models.Service) models.PriceRange {
	if len(s.Variants) == 0 {
		p := s.EffectivePrice()
		return models.PriceRange{Min: p, Max: p}
	}
	r := models.PriceRange{Min: s.Variants[0].EffectivePrice(), Max: s.Variants[0].EffectivePrice()}
	for _, v := range s.Variants[1:] {
		p := v.EffectivePrice()
		if p < r.Min {
			r.Min = p
		}
		if p > r.Max {
			r.Max = p
		}
	}
	return r
}

// PriceRangeText renders a price range for speech: "25€" or "from 15€ to 30€".
func PriceRangeText(s models.Service, lang models.Language) string {
	r := PriceRangeOf(s)
	if r.Min == r.Max {
		return euros(r.Min)
	}
	if lang.IsSpanish() {
		return fmt.Sprintf("desde %s hasta %s", euros(r.Min), euros(r.Max))
	}
	return fmt.Sprintf("from %s to %s", euros(r.Min), euros(r.Max))
}

func euros(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "€"
}
