package showtimes

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var htmlTag = regexp.MustCompile(`<.*?>`)

// CleanSynopsis drops HTML tags and non-breaking spaces and NFKD-normalizes the text.
func CleanSynopsis(raw string) string {
	if raw == "" {
		return ""
	}
	text := htmlTag.ReplaceAllString(raw, "")
	text = strings.ReplaceAll(text, "\u00a0", " ")
	return norm.NFKD.String(text)
}

// StripAccents removes combining marks, "Éthiopie" becomes "Ethiopie".
func StripAccents(s string) string {
	decomposed := norm.NFD.String(s)
	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
