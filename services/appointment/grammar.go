package appointment

import (
	"regexp"
	"strconv"
	"time"

	"voicesalon/models"
)

// dateRule resolves a calendar day from a regexp match. Rules are tried in
// order; a rule that matches but cannot resolve falls through to the next.
type dateRule struct {
	name    string
	pattern *regexp.Regexp
	resolve func(m []string, today time.Time) (time.Time, bool)
}

// timeRule resolves minutes since midnight from a regexp match.
type timeRule struct {
	name    string
	pattern *regexp.Regexp
	resolve func(m []string) (int, bool)
}

type grammar struct {
	// dateMask is blanked out before the date rules run, so that idioms such
	// as "de la mañana" read as a time of day and not as "tomorrow".
	dateMask *regexp.Regexp
	dates    []dateRule
	times    []timeRule
}

func (g grammar) resolveDate(text string, today time.Time) string {
	if g.dateMask != nil {
		text = g.dateMask.ReplaceAllString(text, " ")
	}
	for _, r := range g.dates {
		m := r.pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if d, ok := r.resolve(m, today); ok {
			return d.Format(models.ISODate)
		}
	}
	return ""
}

func (g grammar) resolveTime(text string) string {
	for _, r := range g.times {
		m := r.pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if minutes, ok := r.resolve(m); ok {
			return models.FormatClock(minutes)
		}
	}
	return ""
}

const (
	morningClock   = 10 * 60
	afternoonClock = 14 * 60
	eveningClock   = 18 * 60
)

var weekdayByName = map[string]time.Weekday{
	"monday": time.Monday, "lunes": time.Monday,
	"tuesday": time.Tuesday, "martes": time.Tuesday,
	"wednesday": time.Wednesday, "miércoles": time.Wednesday, "miercoles": time.Wednesday,
	"thursday": time.Thursday, "jueves": time.Thursday,
	"friday": time.Friday, "viernes": time.Friday,
	"saturday": time.Saturday, "sábado": time.Saturday, "sabado": time.Saturday,
	"sunday": time.Sunday, "domingo": time.Sunday,
}

var monthByName = map[string]time.Month{
	"january": time.January, "enero": time.January,
	"february": time.February, "febrero": time.February,
	"march": time.March, "marzo": time.March,
	"april": time.April, "abril": time.April,
	"may": time.May, "mayo": time.May,
	"june": time.June, "junio": time.June,
	"july": time.July, "julio": time.July,
	"august": time.August, "agosto": time.August,
	"september": time.September, "septiembre": time.September, "setiembre": time.September,
	"october": time.October, "octubre": time.October,
	"november": time.November, "noviembre": time.November,
	"december": time.December, "diciembre": time.December,
}

const (
	enMonths = `january|february|march|april|may|june|july|august|september|october|november|december`
	esMonths = `enero|febrero|marzo|abril|mayo|junio|julio|agosto|septiembre|setiembre|octubre|noviembre|diciembre`
)

var (
	weekdayPattern = regexp.MustCompile(`monday|tuesday|wednesday|thursday|friday|saturday|sunday|lunes|martes|miércoles|miercoles|jueves|viernes|sábado|sabado|domingo`)

	hourMinutePattern = regexp.MustCompile(`\b(\d{1,2}):(\d{2})\s*(am|pm)?\b`)
	hourOnlyPattern   = regexp.MustCompile(`\b(\d{1,2})\s*(am|pm)\b`)
	numericDate       = regexp.MustCompile(`\b(\d{1,2})/(\d{1,2})(?:/(\d+))?\b`)
)

// weekdayRule picks the next occurrence of the first weekday named, today included.
var weekdayRule = dateRule{
	name:    "weekday",
	pattern: weekdayPattern,
	resolve: func(m []string, today time.Time) (time.Time, bool) {
		target, ok := weekdayByName[m[0]]
		if !ok {
			return time.Time{}, false
		}
		days := (int(target) - int(today.Weekday()) + 7) % 7
		return today.AddDate(0, 0, days), true
	},
}

func offsetRule(name, pattern string, days int) dateRule {
	return dateRule{
		name:    name,
		pattern: regexp.MustCompile(pattern),
		resolve: func(_ []string, today time.Time) (time.Time, bool) {
			return today.AddDate(0, 0, days), true
		},
	}
}

// monthDayRule reads a month name and a day number from the given groups.
func monthDayRule(name, pattern string, monthGroup, dayGroup int) dateRule {
	return dateRule{
		name:    name,
		pattern: regexp.MustCompile(pattern),
		resolve: func(m []string, today time.Time) (time.Time, bool) {
			month, ok := monthByName[m[monthGroup]]
			if !ok {
				return time.Time{}, false
			}
			day, err := strconv.Atoi(m[dayGroup])
			if err != nil {
				return time.Time{}, false
			}
			return calendarDate(today, 0, month, day)
		},
	}
}

// numericDateRule reads D/M or M/D with an optional year of two or four
// digits. Two-digit years are taken as 20YY.
func numericDateRule(dayFirst bool) dateRule {
	return dateRule{
		name:    "numeric",
		pattern: numericDate,
		resolve: func(m []string, today time.Time) (time.Time, bool) {
			a, _ := strconv.Atoi(m[1])
			b, _ := strconv.Atoi(m[2])
			day, month := b, a
			if dayFirst {
				day, month = a, b
			}
			if month < 1 || month > 12 {
				return time.Time{}, false
			}
			year := 0
			switch len(m[3]) {
			case 0:
			case 2:
				yy, _ := strconv.Atoi(m[3])
				year = 2000 + yy
			case 4:
				year, _ = strconv.Atoi(m[3])
			default:
				return time.Time{}, false
			}
			return calendarDate(today, year, time.Month(month), day)
		},
	}
}

// calendarDate builds year-month-day in today's location. Without a year the
// current one is used, moving to next year once the date has passed.
// Impossible days such as February 30 do not resolve.
func calendarDate(today time.Time, year int, month time.Month, day int) (time.Time, bool) {
	build := func(y int) (time.Time, bool) {
		t := time.Date(y, month, day, 0, 0, 0, 0, today.Location())
		return t, t.Month() == month && t.Day() == day
	}
	if year > 0 {
		return build(year)
	}
	t, ok := build(today.Year())
	if ok && !t.Before(today) {
		return t, true
	}
	return build(today.Year() + 1)
}

// to24h applies the 12-hour conversion when a period is present; without one
// the hour is taken as 24-hour time.
func to24h(hour, minute int, period string) (int, bool) {
	if period != "" && (hour < 1 || hour > 12) {
		return 0, false
	}
	switch period {
	case "pm":
		if hour != 12 {
			hour += 12
		}
	case "am":
		if hour == 12 {
			hour = 0
		}
	}
	if hour > 23 || minute > 59 {
		return 0, false
	}
	return hour*60 + minute, true
}

var hourMinuteRule = timeRule{
	name:    "hour_minute",
	pattern: hourMinutePattern,
	resolve: func(m []string) (int, bool) {
		hour, _ := strconv.Atoi(m[1])
		minute, _ := strconv.Atoi(m[2])
		return to24h(hour, minute, m[3])
	},
}

var hourOnlyRule = timeRule{
	name:    "hour_only",
	pattern: hourOnlyPattern,
	resolve: func(m []string) (int, bool) {
		hour, _ := strconv.Atoi(m[1])
		return to24h(hour, 0, m[2])
	},
}

// spanishPeriodRule handles "a las 10 de la mañana", "2:30 de la tarde" and
// "9 de la noche".
var spanishPeriodRule = timeRule{
	name:    "hour_de_la",
	pattern: regexp.MustCompile(`\b(\d{1,2})(?::(\d{2}))?\s+de\s+la\s+(mañana|manana|tarde|noche)`),
	resolve: func(m []string) (int, bool) {
		hour, _ := strconv.Atoi(m[1])
		minute := 0
		if m[2] != "" {
			minute, _ = strconv.Atoi(m[2])
		}
		period := "pm"
		if m[3] == "mañana" || m[3] == "manana" {
			period = "am"
		} else if m[3] == "noche" && hour == 12 {
			period = "am"
		}
		return to24h(hour, minute, period)
	},
}

func fixedTimeRule(name, pattern string, minutes int) timeRule {
	return timeRule{
		name:    name,
		pattern: regexp.MustCompile(pattern),
		resolve: func([]string) (int, bool) { return minutes, true },
	}
}

var grammars = map[models.Language]grammar{
	models.LangEnglish: {
		dates: []dateRule{
			offsetRule("today", `today|tonight`, 0),
			offsetRule("tomorrow", `tomorrow`, 1),
			weekdayRule,
			monthDayRule("month_day", `\b(`+enMonths+`)\s+(\d{1,2})(?:st|nd|rd|th)?\b`, 1, 2),
			monthDayRule("day_month", `\b(\d{1,2})(?:st|nd|rd|th)?\s+(?:of\s+)?(`+enMonths+`)\b`, 2, 1),
			numericDateRule(false),
		},
		times: []timeRule{
			hourMinuteRule,
			hourOnlyRule,
			fixedTimeRule("morning", `morning|mañana|manana`, morningClock),
			fixedTimeRule("afternoon", `afternoon|tarde`, afternoonClock),
			fixedTimeRule("evening", `evening|noche`, eveningClock),
		},
	},
	models.LangSpanish: {
		dateMask: regexp.MustCompile(`\b(?:de|por|en)\s+la\s+(?:mañana|manana)`),
		dates: []dateRule{
			offsetRule("today", `hoy|esta noche`, 0),
			offsetRule("tomorrow", `mañana|manana`, 1),
			weekdayRule,
			monthDayRule("day_de_month", `\b(\d{1,2})\s+de\s+(`+esMonths+`)\b`, 2, 1),
			monthDayRule("month_day", `\b(`+esMonths+`)\s+(\d{1,2})\b`, 1, 2),
			numericDateRule(true),
		},
		times: []timeRule{
			spanishPeriodRule,
			hourMinuteRule,
			hourOnlyRule,
			// "por la mañana" names the time of day; a bare "mañana" is
			// read as the day when "tarde" or "noche" gives the time.
			fixedTimeRule("morning_idiom", `\b(?:de|por|en)\s+la\s+(?:mañana|manana)`, morningClock),
			fixedTimeRule("afternoon", `tarde`, afternoonClock),
			fixedTimeRule("evening", `noche`, eveningClock),
			fixedTimeRule("morning", `mañana|manana`, morningClock),
		},
	},
}
