package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultDBPath(t *testing.T) {
	want := filepath.Join("data", "expenses.db")
	if got := DefaultDBPath(); got != want {
		t.Errorf("DefaultDBPath() = %q, want %q", got, want)
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Fatalf("Failed to get home dir: %v", err)
	}

	t.Setenv("DOMPET_TEST_DIR", "/tmp/dompet")

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"plain path", "/var/lib/dompet.db", "/var/lib/dompet.db"},
		{"tilde prefix", "~/dompet.db", filepath.Join(home, "dompet.db")},
		{"bare tilde", "~", home},
		{"env var", "$DOMPET_TEST_DIR/db.sqlite", "/tmp/dompet/db.sqlite"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExpandPath(tt.input); got != tt.want {
				t.Errorf("ExpandPath(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
