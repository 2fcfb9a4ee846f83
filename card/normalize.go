// Package card implements card number normalization, Luhn validation, brand
// classification and display masking. Every function is pure and total: bad
// input yields a negative result, never a panic or an error.
package card

import "strings"

// Normalize strips spaces and hyphens from a raw card number. Other
// characters stay in place on purpose; digit-only and length checks are
// ValidateLuhn's job.
func Normalize(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for i := 0; i < len(raw); i++ {
		if raw[i] == ' ' || raw[i] == '-' {
			continue
		}
		b.WriteByte(raw[i])
	}
	return b.String()
}

// DisplayNumber masks a card number for display, keeping only the last four
// characters.
func DisplayNumber(number string) string {
	if len(number) >= 4 {
		return "****-****-****-" + number[len(number)-4:]
	}
	return "****"
}
