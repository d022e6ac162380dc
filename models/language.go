package models

import "strings"

// Language is a two-letter tag for the supported response languages.
type Language string

const (
	LangEnglish Language = "en"
	LangSpanish Language = "es"
)

// ParseLanguage maps a raw tag to a supported language; anything that is not
// Spanish falls back to English.
func ParseLanguage(raw string) Language {
	if Language(strings.ToLower(strings.TrimSpace(raw))) == LangSpanish {
		return LangSpanish
	}
	return LangEnglish
}

func (l Language) IsSpanish() bool {
	return l == LangSpanish
}
