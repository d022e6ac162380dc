package location

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"voicesalon/models"
)

func testGuide() *Guide {
	return NewGuide(models.ScheduleData{
		Location: models.Location{
			Address:      "Calle Santos Justo y Pastor 12",
			Neighborhood: "Campanar",
			City:         "Valencia",
			PublicTransport: models.PublicTransport{
				Bus:   []models.TransitLine{{Line: "62"}, {Line: "98"}},
				Metro: []models.TransitLine{{Line: "L1", Stop: "Campanar"}},
			},
		},
		Parking: models.Parking{
			Available: true,
			Options:   []models.ParkingOption{{Type: "Calle", Cost: "Gratis", Distance: "50m"}},
			Notes:     "Zona azul por las mañanas.",
		},
	})
}

func TestGuide_TransportSummary(t *testing.T) {
	g := testGuide()
	assert.Equal(t,
		"Estamos en Campanar, Valencia. Autobuses: 62, 98. Metro: L1. Fácil acceso en transporte público.",
		g.TransportSummary(models.LangSpanish))
	assert.Equal(t,
		"We're in Campanar, Valencia. Buses: 62, 98. Metro: L1. Easy access by public transport.",
		g.TransportSummary(models.LangEnglish))
}

func TestGuide_ParkingSummary(t *testing.T) {
	assert.Equal(t,
		"Parking disponible: Calle: Gratis (50m). Zona azul por las mañanas.",
		testGuide().ParkingSummary(models.LangSpanish))

	none := NewGuide(models.ScheduleData{})
	assert.Equal(t, "There is no parking at the salon.", none.ParkingSummary(models.LangEnglish))
	assert.Empty(t, none.Directions().Landmarks)
	assert.NotNil(t, none.Directions().Landmarks)
}
