package input

import "testing"

func TestValidateCategory(t *testing.T) {
	allowed := []string{"Makanan & Minuman", "Transportasi"}

	tests := []struct {
		name     string
		category string
		allowed  []string
		want     bool
	}{
		{"known category", "Transportasi", allowed, true},
		{"unknown category", "Olahraga", allowed, false},
		{"empty name", "", allowed, false},
		{"no reference list accepts anything non-empty", "Apapun", nil, true},
		{"no reference list still rejects empty", "", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidateCategory(tt.category, tt.allowed); got != tt.want {
				t.Errorf("ValidateCategory(%q) = %v, want %v", tt.category, got, tt.want)
			}
		})
	}
}
