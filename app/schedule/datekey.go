package schedule

import (
	"fmt"
	"time"
)

// DateKey is a calendar day in YYYY-MM-DD form. Zero-padded ISO keys order
// correctly under plain string comparison, so day equality and range checks
// never touch time.Time and cannot drift across timezones.
type DateKey string

const dateKeyLayout = "2006-01-02"

// ParseDateKey parses a YYYY-MM-DD string as a local calendar day. Date-only
// strings must never go through UTC parsing: interpreting "2026-01-24" as
// UTC midnight shifts it to the previous day in western timezones.
func ParseDateKey(s string) (time.Time, error) {
	t, err := time.ParseInLocation(dateKeyLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// KeyOf formats a time as its local calendar day key.
func KeyOf(t time.Time) DateKey {
	return DateKey(t.Format(dateKeyLayout))
}

// KeyFor builds the key for a concrete year/month/day.
func KeyFor(year int, month time.Month, day int) DateKey {
	return KeyOf(time.Date(year, month, day, 0, 0, 0, 0, time.Local))
}

// Today returns the current local calendar day key.
func Today() DateKey {
	return KeyOf(time.Now())
}

// AddDays returns the key n days after k. An unparseable key is returned
// unchanged so a bad input degrades to a non-matching comparison instead
// of a panic.
func (k DateKey) AddDays(n int) DateKey {
	t, err := ParseDateKey(string(k))
	if err != nil {
		return k
	}
	return KeyOf(t.AddDate(0, 0, n))
}

// Time resolves the key to local midnight of its day.
func (k DateKey) Time() (time.Time, error) {
	return ParseDateKey(string(k))
}

func (k DateKey) String() string { return string(k) }
