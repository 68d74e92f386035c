package cli

import (
	"math"
	"strconv"
	"strings"
	"time"
)

var monthNames = [12]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

var weekdayNames = map[time.Weekday]string{
	time.Monday:    "Senin",
	time.Tuesday:   "Selasa",
	time.Wednesday: "Rabu",
	time.Thursday:  "Kamis",
	time.Friday:    "Jumat",
	time.Saturday:  "Sabtu",
	time.Sunday:    "Minggu",
}

var categoryIcons = map[string]string{
	"Makanan & Minuman": "🍔",
	"Transportasi":      "🚗",
	"Belanja":           "🛍️",
	"Hiburan":           "🎬",
	"Kesehatan":         "🏥",
	"Pendidikan":        "📚",
	"Tagihan":           "📋",
	"Lain-lain":         "📦",
}

// FormatRupiah renders a rounded amount as rupiah with dot thousand
// separators, e.g. 1500000 -> "Rp 1.500.000".
func FormatRupiah(amount float64) string {
	rounded := int64(math.Round(math.Abs(amount)))

	digits := strconv.FormatInt(rounded, 10)
	var sb strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			sb.WriteByte('.')
		}
		sb.WriteRune(d)
	}

	if amount < 0 {
		return "Rp -" + sb.String()
	}
	return "Rp " + sb.String()
}

// FormatPercentage renders a percentage with one decimal place.
func FormatPercentage(value float64) string {
	return strconv.FormatFloat(value, 'f', 1, 64) + "%"
}

// MonthName returns the Indonesian month name, or "" for an out-of-range
// month number.
func MonthName(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return monthNames[month-1]
}

// WeekdayName returns the Indonesian weekday name.
func WeekdayName(d time.Weekday) string {
	return weekdayNames[d]
}

// FormatDate renders a date as DD/MM/YYYY for display.
func FormatDate(t time.Time) string {
	return t.Format("02/01/2006")
}

// FormatCategory prefixes a category name with its icon when one is known.
func FormatCategory(category string) string {
	if icon, ok := categoryIcons[category]; ok {
		return icon + " " + category
	}
	return "📦 " + category
}
