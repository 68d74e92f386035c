package input

import (
	"time"

	"github.com/anindyar/dompet/internal/model"
)

// ValidateDate reports whether s is a calendar date in YYYY-MM-DD form.
func ValidateDate(s string) bool {
	_, err := time.Parse(model.DateLayout, s)
	return err == nil
}

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(model.DateLayout, s)
}

// PreviousMonth steps one calendar month back from year/month, crossing
// year boundaries as needed.
func PreviousMonth(year, month int) (int, int) {
	if month == 1 {
		return year - 1, 12
	}
	return year, month - 1
}
