package cli

import (
	"testing"
	"time"
)

func TestFormatRupiah(t *testing.T) {
	tests := []struct {
		want   string
		amount float64
	}{
		{"Rp 0", 0},
		{"Rp 500", 500},
		{"Rp 1.500", 1500},
		{"Rp 25.000", 25000},
		{"Rp 1.500.000", 1500000},
		{"Rp 1.000.000.000", 1e9},
		{"Rp -25.000", -25000},
		{"Rp 1.000", 999.6},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := FormatRupiah(tt.amount); got != tt.want {
				t.Errorf("FormatRupiah(%f) = %q, want %q", tt.amount, got, tt.want)
			}
		})
	}
}

func TestFormatPercentage(t *testing.T) {
	if got := FormatPercentage(33.333); got != "33.3%" {
		t.Errorf("FormatPercentage(33.333) = %q, want 33.3%%", got)
	}
	if got := FormatPercentage(100); got != "100.0%" {
		t.Errorf("FormatPercentage(100) = %q, want 100.0%%", got)
	}
}

func TestMonthName(t *testing.T) {
	tests := []struct {
		want  string
		month int
	}{
		{"Januari", 1},
		{"Agustus", 8},
		{"Desember", 12},
		{"", 0},
		{"", 13},
	}

	for _, tt := range tests {
		if got := MonthName(tt.month); got != tt.want {
			t.Errorf("MonthName(%d) = %q, want %q", tt.month, got, tt.want)
		}
	}
}

func TestWeekdayName(t *testing.T) {
	if got := WeekdayName(time.Monday); got != "Senin" {
		t.Errorf("WeekdayName(Monday) = %q, want Senin", got)
	}
	if got := WeekdayName(time.Sunday); got != "Minggu" {
		t.Errorf("WeekdayName(Sunday) = %q, want Minggu", got)
	}
}

func TestFormatDate(t *testing.T) {
	date := time.Date(2024, 8, 17, 0, 0, 0, 0, time.UTC)
	if got := FormatDate(date); got != "17/08/2024" {
		t.Errorf("FormatDate = %q, want 17/08/2024", got)
	}
}

func TestFormatCategory(t *testing.T) {
	if got := FormatCategory("Transportasi"); got != "🚗 Transportasi" {
		t.Errorf("FormatCategory(Transportasi) = %q", got)
	}
	// Unknown categories fall back to the generic icon
	if got := FormatCategory("Olahraga"); got != "📦 Olahraga" {
		t.Errorf("FormatCategory(Olahraga) = %q", got)
	}
}
