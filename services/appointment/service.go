package appointment

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"voicesalon/models"
)

// EventCreator books the appointment in the salon calendar.
type EventCreator interface {
	CreateEvent(ctx context.Context, appt models.Appointment) (*models.CalendarEvent, error)
}

// ConfirmationSender emails the client and the salon about a new booking.
type ConfirmationSender interface {
	SendConfirmation(ctx context.Context, appt models.Appointment, lang models.Language) error
	NotifySalon(ctx context.Context, appt models.Appointment, lang models.Language) error
}

// ReminderScheduler queues a reminder ahead of the appointment.
type ReminderScheduler interface {
	ScheduleReminder(ctx context.Context, appt models.Appointment, lang models.Language) error
}

// SlotLength is the duration of a bookable slot and of the calendar event.
const SlotLength = time.Hour

// Outcome is the result of running a phrase through parse, validate and format.
type Outcome struct {
	State      models.IntakeState       `json:"state"`
	Parsed     models.ParsedDateTime    `json:"parsed_datetime"`
	Validation *models.ValidationResult `json:"validation,omitempty"`
	Reply      VoiceReply               `json:"reply"`
}

// Booking is the result of a booking attempt. Success is false when the
// caller must rephrase or the calendar rejected the event.
type Booking struct {
	Success     bool                  `json:"success"`
	State       models.IntakeState    `json:"state"`
	Reply       VoiceReply            `json:"reply"`
	Appointment *models.Appointment   `json:"appointment,omitempty"`
	Event       *models.CalendarEvent `json:"event,omitempty"`
}

// Availability lists the bookable slots of one day.
type Availability struct {
	Open  bool                `json:"open"`
	Hours models.OpenInterval `json:"-"`
	Slots []string            `json:"available_times"`
	Reply VoiceReply          `json:"reply"`
}

type Service struct {
	parser    *Parser
	schedule  models.WeeklySchedule
	formatter *Formatter
	calendar  EventCreator
	mailer    ConfirmationSender
	reminders ReminderScheduler
	logger    *zap.Logger
}

// NewService wires the booking flow. mailer and reminders may be nil, in
// which case those follow-ups are skipped.
func NewService(
	parser *Parser,
	schedule models.WeeklySchedule,
	calendar EventCreator,
	mailer ConfirmationSender,
	reminders ReminderScheduler,
	logger *zap.Logger,
) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		parser:    parser,
		schedule:  schedule,
		formatter: NewFormatter(schedule),
		calendar:  calendar,
		mailer:    mailer,
		reminders: reminders,
		logger:    logger,
	}
}

func (s *Service) Formatter() *Formatter { return s.formatter }

// Interpret parses a date/time phrase and checks it against business hours.
func (s *Service) Interpret(text string, lang models.Language) Outcome {
	parsed := s.parser.ParseDateTime(text, lang)
	s.logger.Debug("Parsed appointment phrase",
		zap.String("text", text),
		zap.String("lang", string(lang)),
		zap.Stringp("date", parsed.Date),
		zap.Stringp("time", parsed.Time),
	)

	if !parsed.IsValid {
		return Outcome{
			State:  models.StateNeedsClarification,
			Parsed: parsed,
			Reply:  s.formatter.Clarification(lang),
		}
	}

	result := ValidateAppointmentTime(parsed.DateValue(), parsed.TimeValue(), s.schedule)
	s.logger.Debug("Validated appointment time",
		zap.Bool("valid", result.Valid),
		zap.String("reason", string(result.Reason)),
	)
	if !result.Valid {
		return Outcome{
			State:      models.StateNeedsClarification,
			Parsed:     parsed,
			Validation: &result,
			Reply:      s.formatter.Rejection(result, parsed.DateValue(), lang),
		}
	}

	return Outcome{
		State:      models.StateValidated,
		Parsed:     parsed,
		Validation: &result,
		Reply:      s.formatter.Understood(parsed, lang),
	}
}

// Book interprets the request, creates the calendar event and sends the
// follow-ups. Email and reminder failures are logged and do not fail the
// booking.
func (s *Service) Book(ctx context.Context, req models.AppointmentRequest) (*Booking, error) {
	if missing := req.MissingFields(); len(missing) > 0 {
		return nil, NewMissingFieldsError(missing)
	}
	lang := req.Language

	outcome := s.Interpret(req.DateTimeText, lang)
	if outcome.State != models.StateValidated {
		return &Booking{State: outcome.State, Reply: outcome.Reply}, nil
	}

	appt := models.Appointment{
		ClientName: strings.TrimSpace(req.ClientName),
		Service:    strings.TrimSpace(req.Service),
		Date:       outcome.Parsed.DateValue(),
		Time:       outcome.Parsed.TimeValue(),
		Phone:      orNotProvided(req.Phone),
		Email:      s.normalizeEmail(req.Email),
	}

	event, err := s.calendar.CreateEvent(ctx, appt)
	if err != nil {
		s.logger.Error("Failed to create calendar event",
			zap.String("client", appt.ClientName),
			zap.String("date", appt.Date),
			zap.String("time", appt.Time),
			zap.Error(err),
		)
		return &Booking{State: models.StateValidated, Reply: s.formatter.BookingFailed(lang)}, nil
	}

	s.followUp(ctx, appt, lang)

	s.logger.Info("Appointment booked",
		zap.String("service", appt.Service),
		zap.String("date", appt.Date),
		zap.String("time", appt.Time),
		zap.String("event_id", event.ID),
	)
	return &Booking{
		Success:     true,
		State:       models.StateConfirmed,
		Reply:       s.formatter.Confirmation(appt, lang),
		Appointment: &appt,
		Event:       event,
	}, nil
}

func (s *Service) followUp(ctx context.Context, appt models.Appointment, lang models.Language) {
	if s.mailer != nil {
		if appt.HasEmail() {
			if err := s.mailer.SendConfirmation(ctx, appt, lang); err != nil {
				s.logger.Warn("Failed to send confirmation email", zap.String("email", appt.Email), zap.Error(err))
			}
		}
		if err := s.mailer.NotifySalon(ctx, appt, lang); err != nil {
			s.logger.Warn("Failed to notify salon", zap.Error(err))
		}
	}
	if s.reminders != nil {
		if err := s.reminders.ScheduleReminder(ctx, appt, lang); err != nil {
			s.logger.Warn("Failed to schedule reminder", zap.Error(err))
		}
	}
}

// normalizeEmail accepts typed addresses as is and decodes spoken ones.
func (s *Service) normalizeEmail(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == models.NotProvided {
		return models.NotProvided
	}
	if email, ok := ParseEmailFromVoice(raw); ok {
		return email
	}
	s.logger.Debug("Could not read email address", zap.String("email", raw))
	return models.NotProvided
}

func orNotProvided(v string) string {
	if v = strings.TrimSpace(v); v == "" {
		return models.NotProvided
	}
	return v
}

// AvailableTimes lists the hourly slots of an ISO date.
func (s *Service) AvailableTimes(date string, lang models.Language) (*Availability, error) {
	day, err := time.Parse(models.ISODate, date)
	if err != nil {
		return nil, NewInvalidDateError(date)
	}

	hours, open := s.schedule.DayHours(day.Weekday())
	if !open {
		return &Availability{Slots: []string{}, Reply: s.formatter.ClosedDay(lang)}, nil
	}

	slots := Slots(hours, SlotLength)
	return &Availability{
		Open:  true,
		Hours: hours,
		Slots: slots,
		Reply: s.formatter.AvailableTimes(date, hours, slots, lang),
	}, nil
}

// Slots returns the start times from opening onward, every step, that still
// end by closing time.
func Slots(hours models.OpenInterval, step time.Duration) []string {
	minutes := int(step / time.Minute)
	slots := []string{}
	if minutes <= 0 {
		return slots
	}
	for start := hours.Start; start+minutes <= hours.End; start += minutes {
		slots = append(slots, models.FormatClock(start))
	}
	return slots
}
