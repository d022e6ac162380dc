package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"voicesalon/handlers"
	"voicesalon/middleware"
	"voicesalon/models"
	"voicesalon/services/appointment"
	"voicesalon/services/calendar"
	"voicesalon/services/conversation"
	"voicesalon/services/salondata"
	"voicesalon/services/voiceai"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testDirectory() *salondata.Directory {
	return &salondata.Directory{
		Schedule: models.ScheduleData{
			BusinessHours: models.WeeklySchedule{
				"Monday": "10:00-18:00", "Tuesday": "10:00-18:00", "Wednesday": "10:00-18:00",
				"Thursday": "10:00-18:00", "Friday": "10:00-18:00",
				"Saturday": "Closed", "Sunday": "Closed",
			},
			Location: models.Location{
				Address:      "Calle de Campanar 12",
				Neighborhood: "Campanar",
				City:         "Valencia",
				PostalCode:   "46015",
				Country:      "Spain",
				PublicTransport: models.PublicTransport{
					Metro: []models.TransitLine{{Line: "L1", Stop: "Campanar"}},
				},
			},
			Parking: models.Parking{Available: true, Options: []models.ParkingOption{{Type: "street", Cost: "free", Distance: "50m"}}},
		},
		Catalog: models.SalonData{Services: []models.Service{
			{Category: "Manicuras", Variants: []models.Variant{
				{Name: "Manicura semipermanente", PriceOriginalEUR: 20, PriceDiscountedEUR: 15},
				{Name: "Manicura rusa", PriceOriginalEUR: 30},
			}},
			{Category: "Pedicuras", PriceOriginalEUR: 25, Duration: "45 min"},
			{Category: "Pack manicura + pedicura", PriceOriginalEUR: 60, PriceDiscountedEUR: 49},
		}},
	}
}

type harness struct {
	router  *gin.Engine
	tracker *conversation.Tracker
}

func newHarness(t *testing.T, elevenLabsURL string) *harness {
	t.Helper()
	loc, err := time.LoadLocation("Europe/Madrid")
	require.NoError(t, err)

	dir := testDirectory()
	parser := appointment.NewParser(loc).WithClock(func() time.Time {
		return time.Date(2024, 6, 5, 10, 0, 0, 0, loc)
	})
	svc := appointment.NewService(parser, dir.Hours(), calendar.NewLocalCalendar(nil), nil, nil, nil)

	tracker := conversation.NewTracker(conversation.NewMemoryStore(time.Hour), nil)
	hb, err := handlers.NewHandlerBundle(handlers.Deps{
		SalonName:    "Hera's Nails & Lashes",
		Directory:    dir,
		TimeZone:     loc,
		Appointments: svc,
		ElevenLabs:   voiceai.NewElevenLabsClient(elevenLabsURL, "key", "agent-1", nil),
		Dispatcher:   voiceai.NewDispatcher(nil),
		Tracker:      tracker,
		VapiSecret:   "s3cret",
		BaseURL:      "https://bot.example",
	})
	require.NoError(t, err)

	r := gin.New()
	r.Use(middleware.RequestLogger(zap.NewNop()), middleware.Language())
	RegisterRoutes(r, hb)
	return &harness{router: r, tracker: tracker}
}

func (h *harness) do(t *testing.T, method, path string, body any, headers map[string]string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	h.router.ServeHTTP(w, req)

	out := map[string]any{}
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	}
	return w, out
}

func TestHealthAndIndex(t *testing.T) {
	h := newHarness(t, "")

	w, body := h.do(t, http.MethodGet, "/health", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", body["status"])

	_, body = h.do(t, http.MethodGet, "/", nil, nil)
	assert.Contains(t, body["endpoints"], "appointments")

	w, body = h.do(t, http.MethodGet, "/api/nope", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Endpoint not found", body["error"])
}

func TestServiceRoutes(t *testing.T) {
	h := newHarness(t, "")

	_, body := h.do(t, http.MethodGet, "/api/services?lang=en", nil, nil)
	assert.Equal(t, true, body["success"])
	assert.EqualValues(t, 3, body["total"])

	w, body := h.do(t, http.MethodGet, "/api/services/search?query=manicure", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 2, body["total"])

	w, body = h.do(t, http.MethodGet, "/api/services/search", nil, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Query parameter is required", body["error"])

	w, _ = h.do(t, http.MethodGet, "/api/services/popular", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	_, body = h.do(t, http.MethodGet, "/api/services/price-range/20/50", nil, nil)
	assert.EqualValues(t, 2, body["total"])

	w, _ = h.do(t, http.MethodGet, "/api/services/price-range/cheap/50", nil, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, body = h.do(t, http.MethodGet, "/api/services/pedicuras", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Pedicuras", body["data"].(map[string]any)["category"])

	w, body = h.do(t, http.MethodGet, "/api/services/massages", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Len(t, body["available_categories"], 3)
}

func TestHoursAndLocationRoutes(t *testing.T) {
	h := newHarness(t, "")

	_, body := h.do(t, http.MethodGet, "/api/hours?lang=es", nil, nil)
	assert.Contains(t, body["voice_response"], "lunes a viernes")

	_, body = h.do(t, http.MethodGet, "/api/hours/week", nil, nil)
	week := body["data"].(map[string]any)["weekly_schedule"].([]any)
	require.Len(t, week, 7)
	assert.Equal(t, "Monday", week[0].(map[string]any)["day"])

	for _, path := range []string{"/api/hours/today", "/api/hours/status", "/api/general/status"} {
		w, body := h.do(t, http.MethodGet, path, nil, nil)
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.Equal(t, true, body["success"], path)
	}

	_, body = h.do(t, http.MethodGet, "/api/location/address", nil, nil)
	assert.Equal(t, "46015", body["data"].(map[string]any)["postal_code"])

	_, body = h.do(t, http.MethodGet, "/api/location", nil, map[string]string{"Accept-Language": "es-ES"})
	assert.Equal(t, "Estamos en Calle de Campanar 12, Campanar, Valencia.", body["voice_response"])

	for _, path := range []string{"/api/location/directions", "/api/location/transport", "/api/location/parking", "/api/location/summary"} {
		w, _ := h.do(t, http.MethodGet, path, nil, nil)
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}

func TestGeneralRoutes(t *testing.T) {
	h := newHarness(t, "")

	_, body := h.do(t, http.MethodGet, "/api/general/about?lang=en", nil, nil)
	about := body["data"].(map[string]any)
	assert.Equal(t, "Hera's Nails & Lashes", about["business_name"])
	assert.Equal(t, "Monday to Friday from 10:00 to 18:00", about["hours_summary"])

	_, body = h.do(t, http.MethodGet, "/api/general/services-overview", nil, nil)
	overview := body["data"].(map[string]any)
	assert.EqualValues(t, 3, overview["total_services"])

	_, body = h.do(t, http.MethodGet, "/api/general/contact", nil, nil)
	assert.Equal(t, "Valencia", body["data"].(map[string]any)["city"])

	w, _ := h.do(t, http.MethodGet, "/api/general/welcome?lang=es", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAppointmentRoutes(t *testing.T) {
	h := newHarness(t, "")

	t.Run("parse valid", func(t *testing.T) {
		_, body := h.do(t, http.MethodPost, "/api/appointments/parse-datetime", gin.H{"text": "tomorrow at 2 PM"}, nil)
		assert.Equal(t, true, body["success"])
		parsed := body["parsed_datetime"].(map[string]any)
		assert.Equal(t, "2024-06-06", parsed["date"])
		assert.Equal(t, "14:00", parsed["time"])
		assert.Contains(t, body["voice_response"], "06/06/2024")
	})

	t.Run("parse closed day in spanish", func(t *testing.T) {
		_, body := h.do(t, http.MethodPost, "/api/appointments/parse-datetime", gin.H{"text": "el sábado a las 11:00", "lang": "es"}, nil)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, true, body["needs_clarification"])
		assert.Equal(t, "closed_on_day", body["reason"])
	})

	t.Run("parse without text", func(t *testing.T) {
		w, _ := h.do(t, http.MethodPost, "/api/appointments/parse-datetime", gin.H{}, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("book", func(t *testing.T) {
		w, body := h.do(t, http.MethodPost, "/api/appointments/book", gin.H{
			"clientName":   "Ana",
			"service":      "Manicura",
			"dateTimeText": "Friday at 10 AM",
			"voiceEmail":   "ana at gmail dot com",
		}, nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, true, body["success"])
		appt := body["appointment"].(map[string]any)
		assert.Equal(t, "2024-06-07", appt["date"])
		assert.Equal(t, "ana@gmail.com", appt["email"])
		assert.Equal(t, "Not provided", appt["phone"])
		assert.Regexp(t, `^local-`, appt["calendar_event_id"])
	})

	t.Run("book missing fields", func(t *testing.T) {
		w, body := h.do(t, http.MethodPost, "/api/appointments/book?lang=es", gin.H{"clientName": "Ana"}, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Faltan datos requeridos", body["error"])
		assert.Equal(t, []any{"clientName", "service", "dateTimeText"}, body["required"])
		assert.Equal(t, []any{"service", "dateTimeText"}, body["missing"])
	})

	t.Run("available times", func(t *testing.T) {
		_, body := h.do(t, http.MethodGet, "/api/appointments/available-times/2024-06-07", nil, nil)
		assert.Equal(t, true, body["success"])
		assert.Len(t, body["available_times"], 8)
		assert.Equal(t, "10:00-18:00", body["business_hours"])

		_, body = h.do(t, http.MethodGet, "/api/appointments/available-times/2024-06-08", nil, nil)
		assert.Equal(t, false, body["success"])

		w, _ := h.do(t, http.MethodGet, "/api/appointments/available-times/June-7", nil, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestVapiRoutes(t *testing.T) {
	h := newHarness(t, "")

	msg := gin.H{"message": gin.H{
		"type": "tool-calls",
		"call": gin.H{"id": "call-42"},
		"toolCallList": []gin.H{{
			"id":       "tc-1",
			"type":     "function",
			"function": gin.H{"name": "parseAppointmentDateTime", "arguments": gin.H{"text": "mañana a las 5 de la tarde", "lang": "es"}},
		}},
	}}

	w, _ := h.do(t, http.MethodPost, "/api/vapi/webhook", msg, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, body := h.do(t, http.MethodPost, "/api/vapi/webhook", msg, map[string]string{"X-Vapi-Secret": "s3cret"})
	assert.Equal(t, http.StatusOK, w.Code)
	results := body["results"].([]any)
	require.Len(t, results, 1)
	first := results[0].(map[string]any)
	assert.Equal(t, "tc-1", first["toolCallId"])
	assert.Contains(t, first["result"], "06/06/2024")

	lang, ok := h.tracker.Language(t.Context(), "call-42")
	assert.True(t, ok)
	assert.Equal(t, models.LangSpanish, lang)

	_, body = h.do(t, http.MethodGet, "/api/vapi/tools", nil, nil)
	assert.EqualValues(t, 23, body["total"])
}

func TestElevenLabsRoutes(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/convai/agents/agent-1":
			_, _ = w.Write([]byte(`{"agent_id":"agent-1","name":"Hera"}`))
		case "/convai/conversation/function-results":
			_, _ = w.Write([]byte(`{"ok":true}`))
		default:
			http.Error(w, "boom", http.StatusInternalServerError)
		}
	}))
	defer upstream.Close()
	h := newHarness(t, upstream.URL)

	_, body := h.do(t, http.MethodGet, "/api/elevenlabs/health", nil, nil)
	assert.Equal(t, "OK", body["status"])
	assert.Equal(t, "Hera", body["agent"].(map[string]any)["name"])

	w, body := h.do(t, http.MethodGet, "/api/elevenlabs/signed-url", nil, nil)
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Equal(t, false, body["success"])

	_, body = h.do(t, http.MethodPost, "/api/elevenlabs/webhook", gin.H{
		"conversation_id": "conv-1",
		"function_calls": []gin.H{
			{"name": "parseAppointmentDateTime", "arguments": gin.H{"text": "Friday at 10 AM"}},
			{"name": "unknownTool"},
		},
	}, nil)
	results := body["results"].([]any)
	require.Len(t, results, 2)
	assert.Equal(t, true, results[0].(map[string]any)["success"])
	assert.Equal(t, "Unknown function: unknownTool", results[1].(map[string]any)["error"])

	lang, ok := h.tracker.Language(t.Context(), "conv-1")
	assert.True(t, ok)
	assert.Equal(t, models.LangEnglish, lang)

	_, body = h.do(t, http.MethodPost, "/api/elevenlabs/webhook", gin.H{"conversation_id": "conv-2"}, nil)
	assert.Equal(t, gin.H{"success": true}, gin.H(body))
}
