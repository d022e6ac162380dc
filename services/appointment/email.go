package appointment

import (
	"regexp"
	"strings"
)

var (
	directEmail  = regexp.MustCompile(`([a-z0-9._%+-]+@[a-z0-9.-]+\.[a-z]{2,})`)
	spokenDotted = regexp.MustCompile(`([a-z0-9._%+-]+)\s+(?:at|arroba)\s+([a-z0-9-]+(?:\s+(?:dot|punto)\s+[a-z0-9-]+)+)`)
	spokenAt     = regexp.MustCompile(`([a-z0-9._%+-]+)\s+(?:at|arroba)\s+([a-z0-9.-]+)`)
	spokenDot    = regexp.MustCompile(`\s+(?:dot|punto)\s+`)
	spokenAtWord = regexp.MustCompile(`\s+(?:at|arroba)\s+`)
)

// providerDomains completes "ana at gmail" when the caller drops the suffix.
var providerDomains = map[string]string{
	"gmail":   "gmail.com",
	"yahoo":   "yahoo.com",
	"hotmail": "hotmail.com",
	"outlook": "outlook.com",
}

// ParseEmailFromVoice turns a transcribed address such as
// "ana dot garcia at gmail dot com" or "ana arroba gmail punto com" into
// "ana.garcia@gmail.com". It reports false when no address is recognizable.
func ParseEmailFromVoice(text string) (string, bool) {
	lower := strings.ToLower(strings.TrimSpace(text))

	if m := directEmail.FindStringSubmatch(lower); m != nil {
		return m[1], true
	}

	// Spoken dots inside the local part are joined before looking for "at".
	lower = joinLocalPartDots(lower)

	if m := spokenDotted.FindStringSubmatch(lower); m != nil {
		return m[1] + "@" + spokenDot.ReplaceAllString(m[2], "."), true
	}
	if m := spokenAt.FindStringSubmatch(lower); m != nil {
		domain := m[2]
		if full, ok := providerDomains[domain]; ok {
			domain = full
		}
		return m[1] + "@" + domain, true
	}
	return "", false
}

func joinLocalPartDots(s string) string {
	at := spokenAtWord.FindStringIndex(s)
	if at == nil {
		return s
	}
	return spokenDot.ReplaceAllString(s[:at[0]], ".") + s[at[0]:]
}
