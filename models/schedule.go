package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ClosedMarker is the literal used in schedule.json for a day without hours.
const ClosedMarker = "Closed"

// Weekdays lists the canonical weekday names, Monday first.
var Weekdays = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
	time.Friday, time.Saturday, time.Sunday,
}

// WeeklySchedule maps an English weekday name to "HH:MM-HH:MM" or "Closed".
// It is read-only once loaded.
type WeeklySchedule map[string]string

// DayHours returns the open interval for a weekday. Missing, closed and
// malformed entries all report false.
func (s WeeklySchedule) DayHours(day time.Weekday) (OpenInterval, bool) {
	raw, ok := s[day.String()]
	if !ok || raw == ClosedMarker {
		return OpenInterval{}, false
	}
	iv, err := ParseOpenInterval(raw)
	if err != nil {
		return OpenInterval{}, false
	}
	return iv, true
}

// Raw returns the schedule entry for a weekday, "Closed" when absent.
func (s WeeklySchedule) Raw(day time.Weekday) string {
	if raw, ok := s[day.String()]; ok && raw != "" {
		return raw
	}
	return ClosedMarker
}

// OpenInterval is an opening window in minutes since midnight, both ends inclusive.
type OpenInterval struct {
	Start int
	End   int
}

// ParseOpenInterval parses "HH:MM-HH:MM" with start strictly before end.
func ParseOpenInterval(raw string) (OpenInterval, error) {
	parts := strings.Split(strings.TrimSpace(raw), "-")
	if len(parts) != 2 {
		return OpenInterval{}, fmt.Errorf("interval %q: want HH:MM-HH:MM", raw)
	}
	start, err := ParseClock(parts[0])
	if err != nil {
		return OpenInterval{}, fmt.Errorf("interval %q: %w", raw, err)
	}
	end, err := ParseClock(parts[1])
	if err != nil {
		return OpenInterval{}, fmt.Errorf("interval %q: %w", raw, err)
	}
	if start >= end {
		return OpenInterval{}, fmt.Errorf("interval %q: start must be before end", raw)
	}
	return OpenInterval{Start: start, End: end}, nil
}

// Contains reports whether minute lies within the interval, boundaries included.
func (iv OpenInterval) Contains(minute int) bool {
	return minute >= iv.Start && minute <= iv.End
}

func (iv OpenInterval) StartClock() string { return FormatClock(iv.Start) }
func (iv OpenInterval) EndClock() string   { return FormatClock(iv.End) }

func (iv OpenInterval) String() string {
	return iv.StartClock() + "-" + iv.EndClock()
}

// ParseClock parses a 24-hour "HH:MM" (one or two hour digits) into minutes since midnight.
func ParseClock(raw string) (int, error) {
	h, m, ok := strings.Cut(strings.TrimSpace(raw), ":")
	if !ok || len(m) != 2 || len(h) == 0 || len(h) > 2 {
		return 0, fmt.Errorf("clock %q: want HH:MM", raw)
	}
	hour, err := strconv.Atoi(h)
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("clock %q: bad hour", raw)
	}
	minute, err := strconv.Atoi(m)
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("clock %q: bad minute", raw)
	}
	return hour*60 + minute, nil
}

// FormatClock renders minutes since midnight as zero-padded "HH:MM".
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// ScheduleData mirrors schedule.json.
type ScheduleData struct {
	BusinessHours WeeklySchedule `json:"business_hours"`
	Timezone      string         `json:"timezone,omitempty"`
	Location      Location       `json:"location"`
	Parking       Parking        `json:"parking"`
}

type Location struct {
	Address         string          `json:"address"`
	Neighborhood    string          `json:"neighborhood,omitempty"`
	City            string          `json:"city"`
	PostalCode      string          `json:"postal_code"`
	Country         string          `json:"country"`
	GoogleMapsURL   string          `json:"google_maps_url"`
	Directions      string          `json:"directions"`
	Landmarks       []string        `json:"landmarks"`
	PublicTransport PublicTransport `json:"public_transport"`
}

// Area is the neighborhood and city, as said on the phone.
func (l Location) Area() string {
	switch {
	case l.Neighborhood != "" && l.City != "":
		return l.Neighborhood + ", " + l.City
	case l.Neighborhood != "":
		return l.Neighborhood
	default:
		return l.City
	}
}

type PublicTransport struct {
	Bus   []TransitLine `json:"bus"`
	Metro []TransitLine `json:"metro"`
}

type TransitLine struct {
	Line     string `json:"line"`
	Stop     string `json:"stop,omitempty"`
	Distance string `json:"distance,omitempty"`
}

type Parking struct {
	Available bool            `json:"available"`
	Options   []ParkingOption `json:"options"`
	Notes     string          `json:"notes,omitempty"`
}

type ParkingOption struct {
	Type     string `json:"type"`
	Cost     string `json:"cost"`
	Distance string `json:"distance"`
}
