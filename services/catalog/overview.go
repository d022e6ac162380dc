package catalog

import "voicesalon/models"

type CategoryOverview struct {
	Category     string            `json:"category"`
	HasVariants  bool              `json:"has_variants"`
	VariantCount int               `json:"variant_count"`
	PriceRange   models.PriceRange `json:"price_range"`
	Duration     string            `json:"duration,omitempty"`
}

type PopularEntry struct {
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Duration string  `json:"duration,omitempty"`
}

type PriceBounds struct {
	Lowest  float64 `json:"lowest"`
	Highest float64 `json:"highest"`
}

// Overview summarizes the whole catalog for the general endpoints.
type Overview struct {
	TotalServices  int                `json:"total_services"`
	MainCategories []CategoryOverview `json:"main_categories"`
	Popular        []PopularEntry     `json:"popular_services"`
	PriceRanges    PriceBounds        `json:"price_ranges"`
}

func (c *Catalog) Overview() Overview {
	o := Overview{
		TotalServices:  len(c.services),
		MainCategories: make([]CategoryOverview, 0, len(c.services)),
		Popular:        []PopularEntry{},
	}
	for i, s := range c.services {
		o.MainCategories = append(o.MainCategories, CategoryOverview{
			Category:     s.Category,
			HasVariants:  len(s.Variants) > 0,
			VariantCount: len(s.Variants),
			PriceRange:   PriceRangeOf(s),
			Duration:     s.Duration,
		})
		p := s.EffectivePrice()
		if i == 0 || p < o.PriceRanges.Lowest {
			o.PriceRanges.Lowest = p
		}
		if i == 0 || p > o.PriceRanges.Highest {
			o.PriceRanges.Highest = p
		}
	}
	for _, s := range c.popular(5) {
		o.Popular = append(o.Popular, PopularEntry{Category: s.Category, Price: s.EffectivePrice(), Duration: s.Duration})
	}
	return o
}
