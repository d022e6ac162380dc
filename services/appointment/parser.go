package appointment

import (
	"regexp"
	"strings"
	"time"

	"voicesalon/models"
)

// Parser reads spoken date/time phrases such as "tomorrow at 2 PM" or
// "el viernes a las 10 de la mañana" relative to the current day in the salon
// time zone.
type Parser struct {
	loc *time.Location
	now func() time.Time
}

// NewParser creates a parser for the given location. A nil location means UTC.
func NewParser(loc *time.Location) *Parser {
	if loc == nil {
		loc = time.UTC
	}
	return &Parser{loc: loc, now: time.Now}
}

// WithClock returns a copy of p that reads the current time from now.
func (p *Parser) WithClock(now func() time.Time) *Parser {
	cp := *p
	cp.now = now
	return &cp
}

// Location returns the time zone dates are resolved in.
func (p *Parser) Location() *time.Location {
	return p.loc
}

var meridiemPattern = regexp.MustCompile(`\b([ap])\.\s?m\.`)

// ParseDateTime resolves the date and the time in text independently. It
// never fails: anything it cannot read comes back as nil.
func (p *Parser) ParseDateTime(text string, lang models.Language) models.ParsedDateTime {
	g, ok := grammars[lang]
	if !ok {
		g = grammars[models.LangEnglish]
	}

	normalized := normalizePhrase(text)
	today := p.today()

	return models.NewParsedDateTime(
		g.resolveDate(normalized, today),
		g.resolveTime(normalized),
	)
}

func (p *Parser) today() time.Time {
	now := p.now().In(p.loc)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, p.loc)
}

func normalizePhrase(text string) string {
	lowered := strings.ToLower(strings.TrimSpace(text))
	return meridiemPattern.ReplaceAllString(lowered, "${1}m")
}
