package utils

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestGenerateBookingRef(t *testing.T) {
	ref := GenerateBookingRef()
	if ref == "" {
		t.Fatal("empty booking ref")
	}
	if _, err := uuid.Parse(ref); err != nil {
		t.Errorf("booking ref %q is not a UUID: %v", ref, err)
	}

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		r := GenerateBookingRef()
		if seen[r] {
			t.Fatalf("duplicate booking ref %q", r)
		}
		seen[r] = true
	}
}

func TestFallbackBookingRef(t *testing.T) {
	ref := fallbackBookingRef()
	if !strings.HasPrefix(ref, "BK-") {
		t.Errorf("fallback ref %q missing BK- prefix", ref)
	}
	parts := strings.Split(ref, "-")
	if len(parts) != 4 {
		t.Fatalf("fallback ref %q has %d segments, want 4", ref, len(parts))
	}
	if len(parts[1]) != 8 || len(parts[2]) != 6 || len(parts[3]) != 6 {
		t.Errorf("fallback ref %q segment lengths wrong", ref)
	}
}
