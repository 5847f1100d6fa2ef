package domain

import (
	"regexp"
	"strings"
)

// gstinPattern is the 15-character GSTIN structure: state code, PAN,
// entity digit, literal Z, check character.
var gstinPattern = regexp.MustCompile(`^[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z]{1}[1-9A-Z]{1}Z[0-9A-Z]{1}$`)

// NormalizeGSTIN trims surrounding whitespace and uppercases the value.
func NormalizeGSTIN(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

// ValidGSTIN reports whether the normalized value matches the GSTIN pattern.
func ValidGSTIN(raw string) bool {
	return gstinPattern.MatchString(NormalizeGSTIN(raw))
}
