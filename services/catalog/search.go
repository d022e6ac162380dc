package catalog

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// synonyms expand an English or colloquial term into the Spanish words used
// by the catalog.
var synonyms = map[string][]string{
	"manicure":  {"manicuras", "manicura"},
	"manicures": {"manicuras", "manicura"},
	"pedicure":  {"pedicuras", "pedicura"},
	"pedicures": {"pedicuras", "pedicura"},
	"eyebrows":  {"cejas", "ceja"},
	"eyebrow":   {"cejas", "ceja"},
	"eyelashes": {"pestañas", "pestaña"},
	"eyelash":   {"pestañas", "pestaña"},
	"lashes":    {"pestañas", "pestaña"},
	"facial":    {"faciales", "facial"},
	"facials":   {"faciales", "facial"},
	"nails":     {"uñas", "uña", "manicuras", "pedicuras"},
	"nail":      {"uñas", "uña", "manicuras", "pedicuras"},
}

// fold lower-cases s and strips diacritics so "Pestañas" matches "pestanas".
func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, strings.ToLower(s))
	if err != nil {
		return strings.ToLower(s)
	}
	return out
}

// searchTerms returns the query followed by its synonyms.
func searchTerms(query string) []string {
	term := strings.ToLower(strings.TrimSpace(query))
	terms := []string{term}
	if extra, ok := synonyms[fold(term)]; ok {
		terms = append(terms, extra...)
	}
	return terms
}

func matchesAny(text string, terms []string) bool {
	folded := fold(text)
	for _, term := range terms {
		if strings.Contains(folded, fold(term)) {
			return true
		}
	}
	return false
}

// slug keeps only ASCII letters and digits of the folded name, so
// "Pelo a pelo" and "pelo-a-pelo" compare equal.
func slug(s string) string {
	var b strings.Builder
	for _, r := range fold(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
