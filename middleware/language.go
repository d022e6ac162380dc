package middleware

import (
	"github.com/gin-gonic/gin"

	"voicesalon/models"
	"voicesalon/services/language"
)

// LanguageKey holds the negotiated models.Language.
const LanguageKey = "lang"

// Language negotiates the response language from ?lang= and Accept-Language.
func Language() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(LanguageKey, language.DetectLanguage(c.Query("lang"), c.GetHeader("Accept-Language")))
		c.Next()
	}
}

// LanguageFrom returns the language set by Language, English when unset.
func LanguageFrom(c *gin.Context) models.Language {
	if v, ok := c.Get(LanguageKey); ok {
		if lang, ok := v.(models.Language); ok {
			return lang
		}
	}
	return models.LangEnglish
}
