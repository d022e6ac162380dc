package hours

import (
	"time"

	"voicesalon/models"
	"voicesalon/services/language"
)

type Status string

const (
	StatusOpen           Status = "open"
	StatusOpensLater     Status = "opens_later"
	StatusClosedForToday Status = "closed_for_today"
	StatusClosed         Status = "closed"
)

// Board answers "are you open?" questions against the weekly schedule in the
// salon's time zone.
type Board struct {
	schedule models.WeeklySchedule
	loc      *time.Location
	now      func() time.Time
}

func NewBoard(schedule models.WeeklySchedule, loc *time.Location) *Board {
	if loc == nil {
		loc = time.UTC
	}
	return &Board{schedule: schedule, loc: loc, now: time.Now}
}

// WithClock returns a copy of b that reads the current time from now.
func (b *Board) WithClock(now func() time.Time) *Board {
	cp := *b
	cp.now = now
	return &cp
}

func (b *Board) Schedule() models.WeeklySchedule { return b.schedule }

type Today struct {
	Day         string `json:"day"`
	Hours       string `json:"hours"`
	IsOpen      bool   `json:"is_open"`
	Status      Status `json:"status"`
	CurrentTime string `json:"current_time"`
}

type NextOpen struct {
	Day   string `json:"day"`
	Hours string `json:"hours"`
}

type BusinessStatus struct {
	IsOpen      bool      `json:"is_open"`
	Status      Status    `json:"status"`
	Message     string    `json:"message"`
	Today       string    `json:"today"`
	TodayHours  string    `json:"today_hours"`
	CurrentTime string    `json:"current_time"`
	NextOpen    *NextOpen `json:"next_open"`
}

type DayEntry struct {
	Day    string `json:"day"`
	Hours  string `json:"hours"`
	IsOpen bool   `json:"is_open"`
}

func (b *Board) localNow() time.Time {
	return b.now().In(b.loc)
}

// statusAt classifies a moment against that day's hours. The salon counts as
// open from the opening minute up to, not including, the closing minute.
func (b *Board) statusAt(t time.Time) (Status, models.OpenInterval, bool) {
	hours, open := b.schedule.DayHours(t.Weekday())
	if !open {
		return StatusClosed, hours, false
	}
	minute := t.Hour()*60 + t.Minute()
	switch {
	case minute < hours.Start:
		return StatusOpensLater, hours, true
	case minute < hours.End:
		return StatusOpen, hours, true
	default:
		return StatusClosedForToday, hours, true
	}
}

// Today describes the current day.
func (b *Board) Today() Today {
	now := b.localNow()
	status, _, openDay := b.statusAt(now)
	return Today{
		Day:         now.Weekday().String(),
		Hours:       b.schedule.Raw(now.Weekday()),
		IsOpen:      openDay,
		Status:      status,
		CurrentTime: now.Format("15:04"),
	}
}

// Status reports whether the salon is open right now and, if not, when it
// next opens: later today before opening time, otherwise the next open day.
func (b *Board) Status(lang models.Language) BusinessStatus {
	now := b.localNow()
	status, hours, _ := b.statusAt(now)

	s := BusinessStatus{
		IsOpen:      status == StatusOpen,
		Status:      status,
		Message:     statusMessage(status, hours, lang),
		Today:       now.Weekday().String(),
		TodayHours:  b.schedule.Raw(now.Weekday()),
		CurrentTime: now.Format("15:04"),
	}
	switch status {
	case StatusOpen:
	case StatusOpensLater:
		s.NextOpen = &NextOpen{Day: now.Weekday().String(), Hours: hours.String()}
	default:
		s.NextOpen = b.NextOpenDay(now.Weekday())
	}
	return s
}

func statusMessage(status Status, hours models.OpenInterval, lang models.Language) string {
	es := lang.IsSpanish()
	switch status {
	case StatusOpen:
		return language.StatusMessage(true, lang)
	case StatusOpensLater:
		if es {
			return "Abre a las " + hours.StartClock()
		}
		return "Opens at " + hours.StartClock()
	case StatusClosedForToday:
		if es {
			return "Cerrado por hoy"
		}
		return "Closed for today"
	default:
		if es {
			return "Cerrado hoy"
		}
		return "Closed today"
	}
}

// NextOpenDay is the first open day strictly after from, wrapping around the
// week. It is nil when the salon never opens.
func (b *Board) NextOpenDay(from time.Weekday) *NextOpen {
	for i := 1; i <= 7; i++ {
		day := time.Weekday((int(from) + i) % 7)
		if hours, open := b.schedule.DayHours(day); open {
			return &NextOpen{Day: day.String(), Hours: hours.String()}
		}
	}
	return nil
}

// Week lists Monday to Sunday; days missing from the schedule show as Closed.
func (b *Board) Week() []DayEntry {
	out := make([]DayEntry, 0, len(models.Weekdays))
	for _, day := range models.Weekdays {
		_, open := b.schedule.DayHours(day)
		out = append(out, DayEntry{Day: day.String(), Hours: b.schedule.Raw(day), IsOpen: open})
	}
	return out
}

// Summary is the localized open/closed days summary.
func (b *Board) Summary(lang models.Language) language.HoursSummary {
	return language.SummarizeHours(b.schedule, lang)
}
