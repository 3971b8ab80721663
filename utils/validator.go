package utils

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxDisplayNameLength is the longest display name, in runes, shown on a page
const MaxDisplayNameLength = 64

// IsHexString checks if a string contains only hexadecimal characters
func IsHexString(s string) bool {
	for _, c := range s {
		if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')) {
			return false
		}
	}
	return true
}

// SanitizeDisplayName drops control characters, collapses whitespace and
// truncates to MaxDisplayNameLength runes.
func SanitizeDisplayName(name string) string {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && !unicode.IsSpace(r) {
			return -1
		}
		return r
	}, name)

	cleaned = strings.Join(strings.Fields(cleaned), " ")

	if utf8.RuneCountInString(cleaned) > MaxDisplayNameLength {
		cleaned = strings.TrimSpace(string([]rune(cleaned)[:MaxDisplayNameLength]))
	}
	return cleaned
}

// ValidateDisplayName rejects names that sanitization would change beyond
// whitespace trimming. An empty name is allowed.
func ValidateDisplayName(name string) error {
	if utf8.RuneCountInString(name) > MaxDisplayNameLength {
		return fmt.Errorf("display name must be at most %d characters", MaxDisplayNameLength)
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return fmt.Errorf("display name cannot contain control characters")
		}
	}
	return nil
}
