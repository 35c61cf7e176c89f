package domain

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NormalizeName lowercases and trims a name for case-insensitive comparison
func NormalizeName(s string) string {
	// Casers keep state, so each call gets its own
	return cases.Lower(language.Und).String(strings.TrimSpace(s))
}
