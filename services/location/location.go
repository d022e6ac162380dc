package location

import (
	"fmt"
	"strings"

	"voicesalon/models"
)

// Guide answers where the salon is and how to get there.
type Guide struct {
	location models.Location
	parking  models.Parking
}

func NewGuide(data models.ScheduleData) *Guide {
	return &Guide{location: data.Location, parking: data.Parking}
}

func (g *Guide) Location() models.Location { return g.location }
func (g *Guide) Parking() models.Parking   { return g.parking }

type Address struct {
	Address       string `json:"address"`
	City          string `json:"city"`
	PostalCode    string `json:"postal_code"`
	Country       string `json:"country"`
	GoogleMapsURL string `json:"google_maps_url"`
}

func (g *Guide) Address() Address {
	return Address{
		Address:       g.location.Address,
		City:          g.location.City,
		PostalCode:    g.location.PostalCode,
		Country:       g.location.Country,
		GoogleMapsURL: g.location.GoogleMapsURL,
	}
}

type Directions struct {
	Directions      string                 `json:"directions,omitempty"`
	Landmarks       []string               `json:"landmarks"`
	PublicTransport models.PublicTransport `json:"public_transport"`
}

func (g *Guide) Directions() Directions {
	return Directions{
		Directions:      g.location.Directions,
		Landmarks:       nonNil(g.location.Landmarks),
		PublicTransport: g.location.PublicTransport,
	}
}

// Summary is the location answer read out by the voice agent.
type Summary struct {
	Address          string `json:"address"`
	City             string `json:"city"`
	Directions       string `json:"directions,omitempty"`
	TransportSummary string `json:"transport_summary"`
	ParkingSummary   string `json:"parking_summary"`
	GoogleMaps       string `json:"google_maps"`
}

func (g *Guide) Summary(lang models.Language) Summary {
	return Summary{
		Address:          g.location.Address,
		City:             g.location.City,
		Directions:       g.location.Directions,
		TransportSummary: g.TransportSummary(lang),
		ParkingSummary:   g.ParkingSummary(lang),
		GoogleMaps:       g.location.GoogleMapsURL,
	}
}

// TransportSummary lists bus and metro lines in one spoken sentence set.
func (g *Guide) TransportSummary(lang models.Language) string {
	buses := lineNames(g.location.PublicTransport.Bus)
	metro := lineNames(g.location.PublicTransport.Metro)
	es := lang.IsSpanish()

	var b strings.Builder
	if area := g.location.Area(); area != "" {
		if es {
			fmt.Fprintf(&b, "Estamos en %s. ", area)
		} else {
			fmt.Fprintf(&b, "We're in %s. ", area)
		}
	}
	if buses != "" {
		if es {
			fmt.Fprintf(&b, "Autobuses: %s. ", buses)
		} else {
			fmt.Fprintf(&b, "Buses: %s. ", buses)
		}
	}
	if metro != "" {
		fmt.Fprintf(&b, "Metro: %s. ", metro)
	}
	if es {
		b.WriteString("Fácil acceso en transporte público.")
	} else {
		b.WriteString("Easy access by public transport.")
	}
	return b.String()
}

// ParkingSummary describes parking options, or their absence.
func (g *Guide) ParkingSummary(lang models.Language) string {
	es := lang.IsSpanish()
	if !g.parking.Available {
		if es {
			return "No hay parking disponible en el local."
		}
		return "There is no parking at the salon."
	}
	if len(g.parking.Options) == 0 {
		if es {
			return "Parking disponible pero sin información específica."
		}
		return "Parking is available, but we have no specific details."
	}

	options := make([]string, 0, len(g.parking.Options))
	for _, o := range g.parking.Options {
		options = append(options, fmt.Sprintf("%s: %s (%s)", o.Type, o.Cost, o.Distance))
	}
	prefix := "Parking available: "
	if es {
		prefix = "Parking disponible: "
	}
	summary := prefix + strings.Join(options, ". ") + "."
	if g.parking.Notes != "" {
		summary += " " + g.parking.Notes
	}
	return summary
}

func lineNames(lines []models.TransitLine) string {
	names := make([]string, 0, len(lines))
	for _, l := range lines {
		names = append(names, l.Line)
	}
	return strings.Join(names, ", ")
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
