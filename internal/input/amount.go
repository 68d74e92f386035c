// Package input validates and normalizes user-entered expense fields before
// they reach storage. Nothing here mutates or persists.
package input

import (
	"regexp"
	"strconv"
	"strings"
)

// amountJunk matches every character that is not part of a numeric amount.
// Stripping it drops currency prefixes like "Rp" and grouping spaces.
var amountJunk = regexp.MustCompile(`[^\d.,-]`)

// ValidateAmount reports whether s parses as a strictly positive amount.
// A comma is accepted as a decimal separator, but more than one comma or
// more than one dot means the separators are ambiguous and the value is
// rejected (so "1.000.000" is invalid rather than silently misread).
func ValidateAmount(s string) bool {
	cleaned := cleanAmount(s)
	if cleaned == "" {
		return false
	}

	if strings.Count(cleaned, ".") > 1 || strings.Count(cleaned, ",") > 1 {
		return false
	}

	value, err := strconv.ParseFloat(strings.ReplaceAll(cleaned, ",", "."), 64)
	if err != nil {
		return false
	}

	return value > 0
}

// ParseAmount applies the same cleanup as ValidateAmount and returns the
// numeric value, defaulting to 0 on unparseable input. Calling it on
// unvalidated input masks errors as zero; validate first.
func ParseAmount(s string) float64 {
	cleaned := cleanAmount(s)
	if cleaned == "" {
		return 0
	}

	value, err := strconv.ParseFloat(strings.ReplaceAll(cleaned, ",", "."), 64)
	if err != nil {
		return 0
	}

	return value
}

func cleanAmount(s string) string {
	return amountJunk.ReplaceAllString(s, "")
}
