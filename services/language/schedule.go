package language

import (
	"fmt"
	"strings"
	"time"

	"voicesalon/models"
)

var spanishDays = map[time.Weekday]string{
	time.Monday:    "lunes",
	time.Tuesday:   "martes",
	time.Wednesday: "miércoles",
	time.Thursday:  "jueves",
	time.Friday:    "viernes",
	time.Saturday:  "sábado",
	time.Sunday:    "domingo",
}

// DayName returns the weekday name, capitalized in English and lower case in
// Spanish as each language writes it mid-sentence.
func DayName(day time.Weekday, lang models.Language) string {
	if lang.IsSpanish() {
		return spanishDays[day]
	}
	return day.String()
}

func pluralDayName(day time.Weekday, lang models.Language) string {
	name := DayName(day, lang)
	if strings.HasSuffix(name, "s") {
		return name
	}
	return name + "s"
}

// JoinList joins items as "a, b and c" (or "a, b y c").
func JoinList(items []string, lang models.Language) string {
	and := " and "
	if lang.IsSpanish() {
		and = " y "
	}
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	}
	return strings.Join(items[:len(items)-1], ", ") + and + items[len(items)-1]
}

type dayGroup struct {
	days  []time.Weekday
	hours models.OpenInterval
}

// openGroups collapses runs of consecutive days, Monday first, that share the
// same opening interval.
func openGroups(schedule models.WeeklySchedule) []dayGroup {
	var groups []dayGroup
	prevOpen := false
	for _, day := range models.Weekdays {
		hours, open := schedule.DayHours(day)
		if !open {
			prevOpen = false
			continue
		}
		if prevOpen && groups[len(groups)-1].hours == hours {
			last := &groups[len(groups)-1]
			last.days = append(last.days, day)
		} else {
			groups = append(groups, dayGroup{days: []time.Weekday{day}, hours: hours})
		}
		prevOpen = true
	}
	return groups
}

func (g dayGroup) describe(lang models.Language) string {
	first, last := g.days[0], g.days[len(g.days)-1]
	if lang.IsSpanish() {
		var days string
		switch len(g.days) {
		case 1:
			days = "el " + DayName(first, lang)
		case 2:
			days = DayName(first, lang) + " y " + DayName(last, lang)
		default:
			days = "de " + DayName(first, lang) + " a " + DayName(last, lang)
		}
		return days + " de " + g.hours.StartClock() + " a " + g.hours.EndClock()
	}
	var days string
	switch len(g.days) {
	case 1:
		days = DayName(first, lang)
	case 2:
		days = DayName(first, lang) + " and " + DayName(last, lang)
	default:
		days = DayName(first, lang) + " to " + DayName(last, lang)
	}
	return days + " from " + g.hours.StartClock() + " to " + g.hours.EndClock()
}

// DescribeOpenDays renders the opening days, for example
// "Monday to Friday from 10:00 to 18:00". It reports false when the salon is
// never open.
func DescribeOpenDays(schedule models.WeeklySchedule, lang models.Language) (string, bool) {
	groups := openGroups(schedule)
	if len(groups) == 0 {
		return "", false
	}
	parts := make([]string, len(groups))
	for i, g := range groups {
		parts[i] = g.describe(lang)
	}
	return JoinList(parts, lang), true
}

// HoursSummary lists open and closed days in schedule order with a one-line
// summary.
type HoursSummary struct {
	OpenDays   []string `json:"open_days"`
	ClosedDays []string `json:"closed_days"`
	Summary    string   `json:"summary"`
}

func SummarizeHours(schedule models.WeeklySchedule, lang models.Language) HoursSummary {
	summary := HoursSummary{OpenDays: []string{}, ClosedDays: []string{}}
	var closed []string
	for _, day := range models.Weekdays {
		if _, listed := schedule[day.String()]; !listed {
			continue
		}
		if hours, open := schedule.DayHours(day); open {
			summary.OpenDays = append(summary.OpenDays, day.String()+": "+hours.String())
			continue
		}
		summary.ClosedDays = append(summary.ClosedDays, day.String())
		closed = append(closed, pluralDayName(day, lang))
	}

	open, ok := DescribeOpenDays(schedule, lang)
	var b strings.Builder
	if lang.IsSpanish() {
		if ok {
			b.WriteString("Abierto " + open + ".")
		}
		if len(closed) > 0 {
			if b.Len() > 0 {
				b.WriteString(" ")
			}
			b.WriteString("Cerrado " + JoinList(closed, lang) + ".")
		}
	} else {
		if ok {
			b.WriteString("Open " + open + ".")
		}
		if len(closed) > 0 {
			if b.Len() > 0 {
				b.WriteString(" ")
			}
			b.WriteString("Closed " + JoinList(closed, lang) + ".")
		}
	}
	summary.Summary = b.String()
	return summary
}

var spanishMonths = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// LongDate spells a date out: "Monday, June 10, 2024" or
// "lunes, 10 de junio de 2024".
func LongDate(t time.Time, lang models.Language) string {
	if lang.IsSpanish() {
		return fmt.Sprintf("%s, %d de %s de %d", DayName(t.Weekday(), lang), t.Day(), spanishMonths[t.Month()-1], t.Year())
	}
	return t.Format("Monday, January 2, 2006")
}
