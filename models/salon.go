package models

// SalonData mirrors products.json.
type SalonData struct {
	Services []Service `json:"services"`
}

// Service is one catalog category. A zero discounted price means no discount.
type Service struct {
	Category           string    `json:"category"`
	PriceOriginalEUR   float64   `json:"price_original_eur,omitempty"`
	PriceDiscountedEUR float64   `json:"price_discounted_eur,omitempty"`
	Duration           string    `json:"duration,omitempty"`
	Includes           []string  `json:"includes,omitempty"`
	Variants           []Variant `json:"variants,omitempty"`
}

type Variant struct {
	Name               string  `json:"name"`
	PriceOriginalEUR   float64 `json:"price_original_eur,omitempty"`
	PriceDiscountedEUR float64 `json:"price_discounted_eur,omitempty"`
	Duration           string  `json:"duration,omitempty"`
}

// EffectivePrice is the discounted price when present, otherwise the original.
func (s Service) EffectivePrice() float64 {
	if s.PriceDiscountedEUR > 0 {
		return s.PriceDiscountedEUR
	}
	return s.PriceOriginalEUR
}

func (v Variant) EffectivePrice() float64 {
	if v.PriceDiscountedEUR > 0 {
		return v.PriceDiscountedEUR
	}
	return v.PriceOriginalEUR
}

// PriceRange is the cheapest and most expensive option of a service.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}
