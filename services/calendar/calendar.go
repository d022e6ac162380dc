package calendar

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"voicesalon/models"
	"voicesalon/services/appointment"
)

// GoogleCalendar books appointments as Google Calendar events.
type GoogleCalendar struct {
	service    *gcal.Service
	calendarID string
	loc        *time.Location
	logger     *zap.Logger
}

// NewGoogleCalendar authenticates with a service account key file.
func NewGoogleCalendar(ctx context.Context, credentialsFile, calendarID string, loc *time.Location, logger *zap.Logger) (*GoogleCalendar, error) {
	svc, err := gcal.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(gcal.CalendarEventsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("google calendar client: %w", err)
	}
	return NewGoogleCalendarWithService(svc, calendarID, loc, logger), nil
}

func NewGoogleCalendarWithService(svc *gcal.Service, calendarID string, loc *time.Location, logger *zap.Logger) *GoogleCalendar {
	if logger == nil {
		logger = zap.NewNop()
	}
	if calendarID == "" {
		calendarID = "primary"
	}
	return &GoogleCalendar{service: svc, calendarID: calendarID, loc: loc, logger: logger}
}

func (g *GoogleCalendar) CreateEvent(ctx context.Context, appt models.Appointment) (*models.CalendarEvent, error) {
	event, err := buildEvent(appt, g.loc)
	if err != nil {
		return nil, err
	}

	created, err := g.service.Events.Insert(g.calendarID, event).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("insert calendar event: %w", err)
	}

	g.logger.Info("Calendar event created",
		zap.String("event_id", created.Id),
		zap.String("calendar", g.calendarID),
	)
	return &models.CalendarEvent{ID: created.Id, URL: created.HtmlLink}, nil
}

// buildEvent makes a one-slot event with an email reminder the day before and
// a popup half an hour before.
func buildEvent(appt models.Appointment, loc *time.Location) (*gcal.Event, error) {
	start, err := appt.StartsAt(loc)
	if err != nil {
		return nil, fmt.Errorf("appointment start: %w", err)
	}
	end := start.Add(appointment.SlotLength)

	return &gcal.Event{
		Summary: "Appointment - " + appt.Service,
		Description: fmt.Sprintf("Client: %s\nService: %s\nPhone: %s\nEmail: %s",
			appt.ClientName, appt.Service, appt.Phone, appt.Email),
		Start: &gcal.EventDateTime{DateTime: start.Format(time.RFC3339), TimeZone: loc.String()},
		End:   &gcal.EventDateTime{DateTime: end.Format(time.RFC3339), TimeZone: loc.String()},
		Reminders: &gcal.EventReminders{
			UseDefault: false,
			Overrides: []*gcal.EventReminder{
				{Method: "email", Minutes: 24 * 60},
				{Method: "popup", Minutes: 30},
			},
			ForceSendFields: []string{"UseDefault"},
		},
	}, nil
}

// LocalCalendar stands in when no Google credentials are configured. It
// accepts every appointment and hands out local ids.
type LocalCalendar struct {
	logger *zap.Logger
}

func NewLocalCalendar(logger *zap.Logger) *LocalCalendar {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LocalCalendar{logger: logger}
}

func (l *LocalCalendar) CreateEvent(_ context.Context, appt models.Appointment) (*models.CalendarEvent, error) {
	id := "local-" + uuid.NewString()
	l.logger.Info("Google Calendar not configured, keeping appointment locally",
		zap.String("event_id", id),
		zap.String("date", appt.Date),
		zap.String("time", appt.Time),
	)
	return &models.CalendarEvent{ID: id, Note: "Calendar integration not configured"}, nil
}

// UnavailableCalendar rejects every event with the error that kept the
// Google client from being built, so bookings fail instead of being kept
// only locally.
type UnavailableCalendar struct {
	err error
}

func (u *UnavailableCalendar) CreateEvent(context.Context, models.Appointment) (*models.CalendarEvent, error) {
	return nil, fmt.Errorf("google calendar unavailable: %w", u.err)
}

// New picks the Google calendar when credentials are set and the local one
// when they are not. Credentials that are set but unusable give a calendar
// that fails every booking.
func New(ctx context.Context, credentialsFile, calendarID string, loc *time.Location, logger *zap.Logger) appointment.EventCreator {
	if credentialsFile == "" {
		return NewLocalCalendar(logger)
	}
	g, err := NewGoogleCalendar(ctx, credentialsFile, calendarID, loc, logger)
	if err != nil {
		if logger != nil {
			logger.Error("Google Calendar unavailable, bookings will fail", zap.String("credentials", credentialsFile), zap.Error(err))
		}
		return &UnavailableCalendar{err: err}
	}
	return g
}
