package language

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"voicesalon/models"
)

var salonHours = models.WeeklySchedule{
	"Monday":    "10:00-18:00",
	"Tuesday":   "10:00-18:00",
	"Wednesday": "10:00-18:00",
	"Thursday":  "10:00-18:00",
	"Friday":    "10:00-18:00",
	"Saturday":  "Closed",
	"Sunday":    "Closed",
}

func TestDetectLanguage(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		header string
		want   models.Language
	}{
		{"query wins", "ES", "en-US,en;q=0.9", models.LangSpanish},
		{"unknown query", "fr", "es-ES", models.LangEnglish},
		{"spanish header", "", "es-ES,es;q=0.9", models.LangSpanish},
		{"preferred spanish over english", "", "es-ES,es;q=0.9,en;q=0.8", models.LangSpanish},
		{"english header", "", "en-GB,en;q=0.9", models.LangEnglish},
		{"unsupported header", "", "de-DE", models.LangEnglish},
		{"no hints", "", "", models.LangEnglish},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectLanguage(tt.query, tt.header))
		})
	}
}

func TestGreeting(t *testing.T) {
	at := func(hour int) time.Time { return time.Date(2024, 6, 5, hour, 0, 0, 0, time.UTC) }

	assert.Equal(t, "Good morning! I'm your Hera's advisor 👋", Greeting(at(9), models.LangEnglish, "Hera's"))
	assert.Equal(t, "¡Buenas tardes! Soy tu asesor de Hera's 👋", Greeting(at(15), models.LangSpanish, "Hera's"))
	assert.Equal(t, "Good evening! I'm your Hera's advisor 👋", Greeting(at(5), models.LangEnglish, "Hera's"))
}

func TestTranslateCategory(t *testing.T) {
	assert.Equal(t, "Manicures", TranslateCategory("MANICURAS", models.LangEnglish))
	assert.Equal(t, "Pestañas", TranslateCategory("Extensiones de pestañas", models.LangSpanish))
	assert.Equal(t, "Packs", TranslateCategory("Packs", models.LangEnglish))
}

func TestDescribeOpenDays(t *testing.T) {
	en, ok := DescribeOpenDays(salonHours, models.LangEnglish)
	assert.True(t, ok)
	assert.Equal(t, "Monday to Friday from 10:00 to 18:00", en)

	es, _ := DescribeOpenDays(salonHours, models.LangSpanish)
	assert.Equal(t, "de lunes a viernes de 10:00 a 18:00", es)

	split := models.WeeklySchedule{"Monday": "10:00-14:00", "Wednesday": "10:00-14:00", "Saturday": "09:00-13:00"}
	got, _ := DescribeOpenDays(split, models.LangSpanish)
	assert.Equal(t, "el lunes de 10:00 a 14:00, el miércoles de 10:00 a 14:00 y el sábado de 09:00 a 13:00", got)

	_, ok = DescribeOpenDays(models.WeeklySchedule{"Monday": "Closed"}, models.LangEnglish)
	assert.False(t, ok)
}

func TestSummarizeHours(t *testing.T) {
	en := SummarizeHours(salonHours, models.LangEnglish)
	assert.Equal(t, "Open Monday to Friday from 10:00 to 18:00. Closed Saturdays and Sundays.", en.Summary)
	assert.Equal(t, []string{"Saturday", "Sunday"}, en.ClosedDays)
	assert.Len(t, en.OpenDays, 5)
	assert.Equal(t, "Monday: 10:00-18:00", en.OpenDays[0])

	es := SummarizeHours(salonHours, models.LangSpanish)
	assert.Equal(t, "Abierto de lunes a viernes de 10:00 a 18:00. Cerrado sábados y domingos.", es.Summary)
}

func TestWelcomeMessage(t *testing.T) {
	now := time.Date(2024, 6, 5, 10, 0, 0, 0, time.UTC)
	w := WelcomeMessage(now, models.LangSpanish, "Hera's Nails & Lashes", "Campanar, Valencia", salonHours)
	assert.Equal(t, "Horario: de lunes a viernes de 10:00 a 18:00", w.Hours)
	assert.Equal(t, "Ubicación: Campanar, Valencia", w.Location)
	assert.Len(t, w.Services, 4)
}

func TestLongDate(t *testing.T) {
	day := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "Monday, June 10, 2024", LongDate(day, models.LangEnglish))
	assert.Equal(t, "lunes, 10 de junio de 2024", LongDate(day, models.LangSpanish))
}
