package input

import (
	"testing"
	"time"
)

func TestValidateDate(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"2024-01-15", true},
		{"2024-12-31", true},
		{"2024-02-30", false},
		{"2024-13-01", false},
		{"15-01-2024", false},
		{"2024/01/15", false},
		{"2024-1-5", false},
		{"", false},
		{"not a date", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ValidateDate(tt.input); got != tt.want {
				t.Errorf("ValidateDate(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2024-03-17")
	if err != nil {
		t.Fatalf("ParseDate failed: %v", err)
	}

	want := time.Date(2024, 3, 17, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("ParseDate = %v, want %v", got, want)
	}

	if _, err := ParseDate("17/03/2024"); err == nil {
		t.Error("Expected error for wrong format, got nil")
	}
}

func TestPreviousMonth(t *testing.T) {
	tests := []struct {
		name      string
		year      int
		month     int
		wantYear  int
		wantMonth int
	}{
		{"mid year", 2024, 6, 2024, 5},
		{"january wraps to december", 2024, 1, 2023, 12},
		{"february", 2024, 2, 2024, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotYear, gotMonth := PreviousMonth(tt.year, tt.month)
			if gotYear != tt.wantYear || gotMonth != tt.wantMonth {
				t.Errorf("PreviousMonth(%d, %d) = (%d, %d), want (%d, %d)",
					tt.year, tt.month, gotYear, gotMonth, tt.wantYear, tt.wantMonth)
			}
		})
	}
}
