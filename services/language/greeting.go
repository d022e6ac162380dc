package language

import (
	"fmt"
	"strings"
	"time"

	"voicesalon/models"
)

// Greeting returns a time-of-day greeting for the hour of now.
func Greeting(now time.Time, lang models.Language, salonName string) string {
	hour := now.Hour()
	if lang.IsSpanish() {
		switch {
		case hour >= 6 && hour < 12:
			return fmt.Sprintf("¡Buenos días! Soy tu asesor de %s 👋", salonName)
		case hour >= 12 && hour < 18:
			return fmt.Sprintf("¡Buenas tardes! Soy tu asesor de %s 👋", salonName)
		default:
			return fmt.Sprintf("¡Buenas noches! Soy tu asesor de %s 👋", salonName)
		}
	}
	switch {
	case hour >= 6 && hour < 12:
		return fmt.Sprintf("Good morning! I'm your %s advisor 👋", salonName)
	case hour >= 12 && hour < 18:
		return fmt.Sprintf("Good afternoon! I'm your %s advisor 👋", salonName)
	default:
		return fmt.Sprintf("Good evening! I'm your %s advisor 👋", salonName)
	}
}

// StatusMessage is the short open/closed line used by the hours endpoints.
func StatusMessage(isOpen bool, lang models.Language) string {
	if lang.IsSpanish() {
		if isOpen {
			return "Abierto ahora"
		}
		return "Cerrado ahora"
	}
	if isOpen {
		return "Open now"
	}
	return "Closed now"
}

type categoryName struct {
	key    string
	en, es string
}

var categoryNames = []categoryName{
	{"manicuras", "Manicures", "Manicuras"},
	{"pedicuras", "Pedicures", "Pedicuras"},
	{"cejas", "Eyebrows", "Cejas"},
	{"pestañas", "Eyelashes", "Pestañas"},
	{"faciales", "Facial treatments", "Faciales"},
}

// TranslateCategory maps a catalog category to a display name. Categories
// without a known translation are returned unchanged.
func TranslateCategory(category string, lang models.Language) string {
	lower := strings.ToLower(category)
	for _, c := range categoryNames {
		if strings.Contains(lower, c.key) {
			if lang.IsSpanish() {
				return c.es
			}
			return c.en
		}
	}
	return category
}

// Welcome is the opening message of a voice conversation.
type Welcome struct {
	Greeting string   `json:"greeting"`
	Message  string   `json:"message"`
	Services []string `json:"services"`
	Hours    string   `json:"hours"`
	Location string   `json:"location"`
	Question string   `json:"question"`
}

// WelcomeMessage builds the greeting payload. The hours line is rendered from
// the schedule.
func WelcomeMessage(now time.Time, lang models.Language, salonName, area string, schedule models.WeeklySchedule) Welcome {
	hours, ok := DescribeOpenDays(schedule, lang)
	if lang.IsSpanish() {
		if !ok {
			hours = "cerrado temporalmente"
		}
		return Welcome{
			Greeting: Greeting(now, lang, salonName),
			Message:  "Te ayudo con información sobre nuestros servicios:",
			Services: []string{
				"👁️ Extensiones de pestañas (Pelo a pelo, Volumen ruso)",
				"💅 Manicura y pedicura profesional",
				"✂️ Cejas (tinte, depilación, laminado)",
				"💎 Packs especiales desde 49€",
			},
			Hours:    "Horario: " + hours,
			Location: "Ubicación: " + area,
			Question: "¿Qué servicio te interesa?",
		}
	}
	if !ok {
		hours = "temporarily closed"
	}
	return Welcome{
		Greeting: Greeting(now, lang, salonName),
		Message:  "I can help you with information about our services:",
		Services: []string{
			"👁️ Eyelash extensions (Lash by lash, Russian volume)",
			"💅 Professional manicure and pedicure",
			"✂️ Eyebrows (tinting, waxing, lamination)",
			"💎 Special packages from €49",
		},
		Hours:    "Hours: " + hours,
		Location: "Location: " + area,
		Question: "What service interests you?",
	}
}
