package schedule

import (
	"testing"
	"time"
)

func TestParseDateKeyIsLocal(t *testing.T) {
	got, err := ParseDateKey("2026-01-24")
	if err != nil {
		t.Fatalf("ParseDateKey: %v", err)
	}
	// The parsed day must round-trip regardless of the host timezone.
	if got.Year() != 2026 || got.Month() != time.January || got.Day() != 24 {
		t.Errorf("parsed %v, want 2026-01-24 local", got)
	}
	if KeyOf(got) != "2026-01-24" {
		t.Errorf("round trip gave %s", KeyOf(got))
	}
}

func TestParseDateKeyRejectsGarbage(t *testing.T) {
	for _, bad := range []string{"", "2026-1-24", "24/01/2026", "soon"} {
		if _, err := ParseDateKey(bad); err == nil {
			t.Errorf("ParseDateKey(%q) accepted", bad)
		}
	}
}

func TestDateKeyOrdering(t *testing.T) {
	// Zero-padded keys order correctly as plain strings, including across
	// month and year boundaries.
	ordered := []DateKey{"2025-12-31", "2026-01-01", "2026-01-09", "2026-01-10", "2026-02-01"}
	for i := 1; i < len(ordered); i++ {
		if !(ordered[i-1] < ordered[i]) {
			t.Errorf("%s not < %s", ordered[i-1], ordered[i])
		}
	}
}

func TestAddDays(t *testing.T) {
	tests := []struct {
		key  DateKey
		n    int
		want DateKey
	}{
		{"2026-01-10", 31, "2026-02-10"},
		{"2026-01-31", 1, "2026-02-01"},
		{"2025-12-31", 1, "2026-01-01"},
		{"2024-02-28", 1, "2024-02-29"}, // leap day
		{"2026-01-10", 0, "2026-01-10"},
	}
	for _, tt := range tests {
		if got := tt.key.AddDays(tt.n); got != tt.want {
			t.Errorf("%s.AddDays(%d) = %s, want %s", tt.key, tt.n, got, tt.want)
		}
	}

	// Unparseable keys pass through unchanged.
	if got := DateKey("soon").AddDays(5); got != "soon" {
		t.Errorf("bad key AddDays = %s", got)
	}
}
