package language

import (
	"strings"

	textlang "golang.org/x/text/language"

	"voicesalon/models"
)

var (
	supported = []textlang.Tag{textlang.English, textlang.Spanish}
	matcher   = textlang.NewMatcher(supported)
)

// DetectLanguage picks the response language. An explicit ?lang= wins, then
// the Accept-Language header is negotiated against English and Spanish.
// English is the default for voice calls that send neither.
func DetectLanguage(queryLang, acceptLanguage string) models.Language {
	if q := strings.TrimSpace(queryLang); q != "" {
		return models.ParseLanguage(q)
	}
	if strings.TrimSpace(acceptLanguage) == "" {
		return models.LangEnglish
	}

	tags, _, err := textlang.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return models.LangEnglish
	}
	_, idx, confidence := matcher.Match(tags...)
	if confidence == textlang.No {
		return models.LangEnglish
	}
	if supported[idx] == textlang.Spanish {
		return models.LangSpanish
	}
	return models.LangEnglish
}
