package schedule

import (
	"testing"

	"github.com/RobTisdell/robtisdell.git.io/app/models"
)

func TestFormatTime(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"00:00", "12:00 AM"},
		{"00:30", "12:30 AM"},
		{"09:05", "9:05 AM"},
		{"9:5", "9:05 AM"},
		{"11:59", "11:59 AM"},
		{"12:00", "12:00 PM"},
		{"12:01", "12:01 PM"},
		{"13:00", "1:00 PM"},
		{"18:00", "6:00 PM"},
		{"23:59", "11:59 PM"},
		{"", "TBD"},
		{"noon", "TBD"},
		{"12", "TBD"},
		{"ab:cd", "TBD"},
	}
	for _, tt := range tests {
		if got := FormatTime(tt.in); got != tt.want {
			t.Errorf("FormatTime(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatDisplayDate(t *testing.T) {
	if got := FormatDisplayDate("2026-01-24"); got != "January 24, 2026" {
		t.Errorf("got %q, want %q", got, "January 24, 2026")
	}
	if got := FormatDisplayDate("2026-03-05"); got != "March 5, 2026" {
		t.Errorf("got %q, want %q", got, "March 5, 2026")
	}
	// Unparseable keys fall back to the raw value.
	if got := FormatDisplayDate("soon"); got != "soon" {
		t.Errorf("got %q, want raw fallback", got)
	}
}

func TestMapSearchURL(t *testing.T) {
	got := MapSearchURL("123 Main St, Springfield")
	want := "https://www.google.com/maps/search/?api=1&query=123%20Main%20St%2C%20Springfield"
	if got != want {
		t.Errorf("MapSearchURL:\ngot  %s\nwant %s", got, want)
	}
	// Spaces must be %20; a literal + in the address must not survive
	// as a raw plus either.
	got = MapSearchURL("5th + Main")
	want = "https://www.google.com/maps/search/?api=1&query=5th%20%2B%20Main"
	if got != want {
		t.Errorf("MapSearchURL:\ngot  %s\nwant %s", got, want)
	}
}

func TestDayRangeLabel(t *testing.T) {
	if got := DayRangeLabel(models.DayGroup{StartDay: 3, EndDay: 3}); got != "Day 3" {
		t.Errorf("single day: got %q", got)
	}
	if got := DayRangeLabel(models.DayGroup{StartDay: 2, EndDay: 4}); got != "Days 2–4" {
		t.Errorf("range: got %q", got)
	}
}
