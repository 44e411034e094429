package validation

import (
	"regexp"
	"strings"
)

var countryCodeRegex = regexp.MustCompile(`^[A-Za-z]{2}$`)

// IsNotEmpty checks if string is not empty after trimming
func IsNotEmpty(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsCountryCode reports whether s is exactly two letters after trimming
func IsCountryCode(s string) bool {
	return countryCodeRegex.MatchString(strings.TrimSpace(s))
}

// IsTemperatureUnit validates a preferences temperature unit
func IsTemperatureUnit(unit string) bool {
	return unit == "C" || unit == "F"
}
