package calendar

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"voicesalon/models"
	"voicesalon/services/appointment"
)

var testAppointment = models.Appointment{
	ClientName: "Ana",
	Service:    "Manicura",
	Date:       "2024-06-10",
	Time:       "17:30",
	Phone:      "600123123",
	Email:      models.NotProvided,
}

func madrid(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Europe/Madrid")
	require.NoError(t, err)
	return loc
}

func TestBuildEvent(t *testing.T) {
	event, err := buildEvent(testAppointment, madrid(t))
	require.NoError(t, err)

	assert.Equal(t, "Appointment - Manicura", event.Summary)
	assert.Contains(t, event.Description, "Client: Ana")
	assert.Equal(t, "2024-06-10T17:30:00+02:00", event.Start.DateTime)
	assert.Equal(t, "2024-06-10T18:30:00+02:00", event.End.DateTime)
	assert.Equal(t, "Europe/Madrid", event.Start.TimeZone)
	require.Len(t, event.Reminders.Overrides, 2)
	assert.Equal(t, int64(1440), event.Reminders.Overrides[0].Minutes)
}

func TestBuildEvent_BadDate(t *testing.T) {
	appt := testAppointment
	appt.Date = "tomorrow"
	_, err := buildEvent(appt, time.UTC)
	assert.Error(t, err)
}

func TestGoogleCalendar_CreateEvent(t *testing.T) {
	var got gcal.Event
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.True(t, strings.HasSuffix(r.URL.Path, "/calendars/salon@example.com/events"), r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"evt123","htmlLink":"https://calendar.google.com/event?eid=evt123"}`))
	}))
	defer srv.Close()

	svc, err := gcal.NewService(context.Background(),
		option.WithEndpoint(srv.URL+"/"),
		option.WithHTTPClient(srv.Client()),
	)
	require.NoError(t, err)

	cal := NewGoogleCalendarWithService(svc, "salon@example.com", madrid(t), nil)
	event, err := cal.CreateEvent(context.Background(), testAppointment)
	require.NoError(t, err)

	assert.Equal(t, "evt123", event.ID)
	assert.Equal(t, "https://calendar.google.com/event?eid=evt123", event.URL)
	assert.Equal(t, "Appointment - Manicura", got.Summary)
}

func TestLocalCalendar(t *testing.T) {
	event, err := NewLocalCalendar(nil).CreateEvent(context.Background(), testAppointment)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(event.ID, "local-"))
	assert.Equal(t, "Calendar integration not configured", event.Note)
	assert.Empty(t, event.URL)
}

func TestNew_WithoutCredentialsIsLocal(t *testing.T) {
	_, ok := New(context.Background(), "", "", time.UTC, nil).(*LocalCalendar)
	assert.True(t, ok)
}

func TestNew_UnusableCredentialsFailBookings(t *testing.T) {
	ctx := context.Background()
	creator := New(ctx, filepath.Join(t.TempDir(), "missing-creds.json"), "", time.UTC, nil)

	_, isLocal := creator.(*LocalCalendar)
	assert.False(t, isLocal)

	event, err := creator.CreateEvent(ctx, testAppointment)
	assert.Nil(t, event)
	assert.ErrorContains(t, err, "google calendar unavailable")

	loc := madrid(t)
	parser := appointment.NewParser(loc).WithClock(func() time.Time {
		return time.Date(2024, 6, 5, 10, 0, 0, 0, loc)
	})
	schedule := models.WeeklySchedule{"Thursday": "10:00-18:00"}
	booking, err := appointment.NewService(parser, schedule, creator, nil, nil, nil).Book(ctx, models.AppointmentRequest{
		ClientName:   "Ana",
		Service:      "Manicura",
		DateTimeText: "tomorrow at 2 PM",
		Language:     models.LangEnglish,
	})
	require.NoError(t, err)
	assert.False(t, booking.Success)
	assert.Nil(t, booking.Appointment)
	assert.Equal(t, appointment.NewFormatter(schedule).BookingFailed(models.LangEnglish), booking.Reply)
}
