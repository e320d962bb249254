package validators

import (
	"strings"
	"unicode"
)

// SanitizeString prepares free-form user text (post bodies, comments, chat
// messages) for storage: surrounding whitespace and control characters are
// dropped, and the result is truncated to maxLen runes when maxLen is
// positive. Truncation never splits a multi-byte character.
func SanitizeString(input string, maxLen int) string {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && r != '\n' && r != '\t' {
			return -1
		}
		return r
	}, strings.TrimSpace(input))

	if maxLen <= 0 {
		return cleaned
	}
	runes := []rune(cleaned)
	if len(runes) <= maxLen {
		return cleaned
	}
	return strings.TrimSpace(string(runes[:maxLen]))
}
