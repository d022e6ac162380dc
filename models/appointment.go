package models

import "time"

// NotProvided is stored in place of a missing phone or email.
const NotProvided = "Not provided"

// ISODate is the layout used for resolved appointment dates.
const ISODate = "2006-01-02"

// ParsedDateTime is the outcome of reading a free-text date/time phrase.
// Date and Time are nil when the phrase did not resolve them.
type ParsedDateTime struct {
	Date    *string `json:"date"`
	Time    *string `json:"time"`
	IsValid bool    `json:"isValid"`
}

// NewParsedDateTime builds a result from possibly empty date and time strings.
func NewParsedDateTime(date, clock string) ParsedDateTime {
	var p ParsedDateTime
	if date != "" {
		p.Date = &date
	}
	if clock != "" {
		p.Time = &clock
	}
	p.IsValid = p.Date != nil && p.Time != nil
	return p
}

// DateValue returns the resolved date or "".
func (p ParsedDateTime) DateValue() string {
	if p.Date == nil {
		return ""
	}
	return *p.Date
}

// TimeValue returns the resolved time or "".
func (p ParsedDateTime) TimeValue() string {
	if p.Time == nil {
		return ""
	}
	return *p.Time
}

type ValidationReason string

const (
	ReasonClosedOnDay  ValidationReason = "closed_on_day"
	ReasonOutsideHours ValidationReason = "outside_hours"
)

// ValidationResult reports whether a date/time falls in business hours.
type ValidationResult struct {
	Valid  bool             `json:"valid"`
	Reason ValidationReason `json:"reason,omitempty"`
}

// IntakeState tracks the appointment intake flow for one conversational turn.
type IntakeState string

const (
	StateAwaitingPhrase     IntakeState = "awaiting_phrase"
	StateParsed             IntakeState = "parsed"
	StateValidated          IntakeState = "validated"
	StateConfirmed          IntakeState = "confirmed"
	StateNeedsClarification IntakeState = "needs_clarification"
)

// AppointmentRequest is the booking payload sent by the voice platforms.
type AppointmentRequest struct {
	ClientName   string   `json:"clientName"`
	Service      string   `json:"service"`
	DateTimeText string   `json:"dateTimeText"`
	Phone        string   `json:"phone,omitempty"`
	Email        string   `json:"email,omitempty"`
	Language     Language `json:"-"`
}

// MissingFields lists the required fields that are empty.
func (r AppointmentRequest) MissingFields() []string {
	var missing []string
	if r.ClientName == "" {
		missing = append(missing, "clientName")
	}
	if r.Service == "" {
		missing = append(missing, "service")
	}
	if r.DateTimeText == "" {
		missing = append(missing, "dateTimeText")
	}
	return missing
}

// Appointment is a request whose date and time have been resolved.
type Appointment struct {
	ClientName string `json:"clientName"`
	Service    string `json:"service"`
	Date       string `json:"date"`
	Time       string `json:"time"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
}

// HasEmail reports whether a real email address was supplied.
func (a Appointment) HasEmail() bool {
	return a.Email != "" && a.Email != NotProvided
}

// StartsAt combines the date and time in loc.
func (a Appointment) StartsAt(loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(ISODate+" 15:04", a.Date+" "+a.Time, loc)
}

// CalendarEvent is what the calendar integration returns for a booking.
type CalendarEvent struct {
	ID   string `json:"calendar_event_id"`
	URL  string `json:"calendar_url,omitempty"`
	Note string `json:"note,omitempty"`
}
