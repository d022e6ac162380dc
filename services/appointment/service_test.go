package appointment

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voicesalon/models"
)

type fakeCalendar struct {
	err    error
	booked []models.Appointment
}

func (c *fakeCalendar) CreateEvent(_ context.Context, appt models.Appointment) (*models.CalendarEvent, error) {
	if c.err != nil {
		return nil, c.err
	}
	c.booked = append(c.booked, appt)
	return &models.CalendarEvent{ID: "evt-1", URL: "https://calendar.example/evt-1"}, nil
}

type fakeMailer struct {
	confirmations []string
	salonNotified int
	err           error
}

func (m *fakeMailer) SendConfirmation(_ context.Context, appt models.Appointment, _ models.Language) error {
	m.confirmations = append(m.confirmations, appt.Email)
	return m.err
}

func (m *fakeMailer) NotifySalon(context.Context, models.Appointment, models.Language) error {
	m.salonNotified++
	return m.err
}

type fakeReminders struct{ scheduled int }

func (r *fakeReminders) ScheduleReminder(context.Context, models.Appointment, models.Language) error {
	r.scheduled++
	return nil
}

func newTestService(t *testing.T, cal *fakeCalendar, mailer *fakeMailer, reminders *fakeReminders) *Service {
	var (
		sender    ConfirmationSender
		scheduler ReminderScheduler
	)
	if mailer != nil {
		sender = mailer
	}
	if reminders != nil {
		scheduler = reminders
	}
	return NewService(fixedParser(t), weekdaySchedule, cal, sender, scheduler, nil)
}

func TestService_Interpret(t *testing.T) {
	svc := newTestService(t, &fakeCalendar{}, nil, nil)

	tests := []struct {
		name       string
		text       string
		lang       models.Language
		wantState  models.IntakeState
		wantReason models.ValidationReason
	}{
		{"valid", "tomorrow at 2 PM", models.LangEnglish, models.StateValidated, ""},
		{"unparseable", "whenever", models.LangEnglish, models.StateNeedsClarification, ""},
		{"closed day", "el sábado a las 11:00", models.LangSpanish, models.StateNeedsClarification, models.ReasonClosedOnDay},
		{"outside hours", "monday at 7 pm", models.LangEnglish, models.StateNeedsClarification, models.ReasonOutsideHours},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := svc.Interpret(tt.text, tt.lang)
			assert.Equal(t, tt.wantState, got.State)
			assert.NotEmpty(t, got.Reply.Message)
			if tt.wantReason != "" {
				require.NotNil(t, got.Validation)
				assert.Equal(t, tt.wantReason, got.Validation.Reason)
			}
		})
	}
}

func TestService_Book(t *testing.T) {
	cal := &fakeCalendar{}
	mailer := &fakeMailer{}
	reminders := &fakeReminders{}
	svc := newTestService(t, cal, mailer, reminders)

	booking, err := svc.Book(context.Background(), models.AppointmentRequest{
		ClientName:   "Ana",
		Service:      "manicura",
		DateTimeText: "el lunes a las 10 de la mañana",
		Email:        "ana at gmail dot com",
		Language:     models.LangSpanish,
	})
	require.NoError(t, err)

	assert.True(t, booking.Success)
	assert.Equal(t, models.StateConfirmed, booking.State)
	require.NotNil(t, booking.Appointment)
	assert.Equal(t, "2024-06-10", booking.Appointment.Date)
	assert.Equal(t, "10:00", booking.Appointment.Time)
	assert.Equal(t, models.NotProvided, booking.Appointment.Phone)
	assert.Equal(t, "ana@gmail.com", booking.Appointment.Email)
	assert.Equal(t, "evt-1", booking.Event.ID)
	assert.Contains(t, booking.Reply.Message, "10/06/2024")

	assert.Len(t, cal.booked, 1)
	assert.Equal(t, []string{"ana@gmail.com"}, mailer.confirmations)
	assert.Equal(t, 1, mailer.salonNotified)
	assert.Equal(t, 1, reminders.scheduled)
}

func TestService_BookWithoutEmailSkipsConfirmation(t *testing.T) {
	mailer := &fakeMailer{}
	svc := newTestService(t, &fakeCalendar{}, mailer, nil)

	booking, err := svc.Book(context.Background(), models.AppointmentRequest{
		ClientName:   "Jane",
		Service:      "pedicura",
		DateTimeText: "friday at 11:00",
		Phone:        "600000000",
		Language:     models.LangEnglish,
	})
	require.NoError(t, err)
	assert.True(t, booking.Success)
	assert.Empty(t, mailer.confirmations)
	assert.Equal(t, 1, mailer.salonNotified)
	assert.Contains(t, booking.Reply.Message, "SMS")
}

func TestService_BookMissingFields(t *testing.T) {
	svc := newTestService(t, &fakeCalendar{}, nil, nil)

	_, err := svc.Book(context.Background(), models.AppointmentRequest{ClientName: "Ana"})
	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, []string{"service", "dateTimeText"}, reqErr.Fields)
}

func TestService_BookCalendarFailure(t *testing.T) {
	mailer := &fakeMailer{}
	svc := newTestService(t, &fakeCalendar{err: errors.New("quota exceeded")}, mailer, nil)

	booking, err := svc.Book(context.Background(), models.AppointmentRequest{
		ClientName:   "Ana",
		Service:      "cejas",
		DateTimeText: "tomorrow at 2 PM",
		Email:        "ana@example.com",
		Language:     models.LangEnglish,
	})
	require.NoError(t, err)
	assert.False(t, booking.Success)
	assert.Contains(t, booking.Reply.Message, "problem creating the appointment")
	assert.Empty(t, mailer.confirmations)
}

func TestService_BookNeedsClarification(t *testing.T) {
	cal := &fakeCalendar{}
	svc := newTestService(t, cal, nil, nil)

	booking, err := svc.Book(context.Background(), models.AppointmentRequest{
		ClientName:   "Ana",
		Service:      "cejas",
		DateTimeText: "sunday at noon",
		Language:     models.LangEnglish,
	})
	require.NoError(t, err)
	assert.False(t, booking.Success)
	assert.True(t, booking.Reply.NeedsClarification)
	assert.Empty(t, cal.booked)
}

func TestService_AvailableTimes(t *testing.T) {
	svc := newTestService(t, &fakeCalendar{}, nil, nil)

	open, err := svc.AvailableTimes("2024-06-10", models.LangEnglish)
	require.NoError(t, err)
	assert.True(t, open.Open)
	assert.Equal(t, []string{"10:00", "11:00", "12:00", "13:00", "14:00", "15:00", "16:00", "17:00"}, open.Slots)

	closed, err := svc.AvailableTimes("2024-06-08", models.LangSpanish)
	require.NoError(t, err)
	assert.False(t, closed.Open)
	assert.Equal(t, "Lo siento, estamos cerrados ese día.", closed.Reply.Message)

	_, err = svc.AvailableTimes("next week", models.LangEnglish)
	var reqErr *RequestError
	assert.ErrorAs(t, err, &reqErr)
}

func TestSlots_HalfHourOpening(t *testing.T) {
	hours, err := models.ParseOpenInterval("09:30-12:00")
	require.NoError(t, err)
	assert.Equal(t, []string{"09:30", "10:30"}, Slots(hours, SlotLength))
}
