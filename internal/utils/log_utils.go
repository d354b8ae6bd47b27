package utils

import (
	"strings"
	"unicode"
)

// MaxLogStringLength caps user-provided strings in logs
const MaxLogStringLength = 120

// SanitizeLogString makes a user-controlled string, such as an
// uploaded filename, safe to log: control characters become spaces,
// long values are truncated, and % is escaped so the value cannot act
// as a format directive.
func SanitizeLogString(input string) string {
	if input == "" {
		return ""
	}

	if len(input) > MaxLogStringLength {
		input = input[:MaxLogStringLength] + "... (truncated)"
	}

	sanitized := strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return ' '
		}
		return r
	}, input)

	return strings.ReplaceAll(sanitized, "%", "%%")
}
