package schedule

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/RobTisdell/robtisdell.git.io/app/models"
)

// FormatTime converts a 24-hour "HH:MM" string to 12-hour AM/PM form.
// The data files keep military time for maintenance reasons; display is
// always 12-hour. Hour 0 and hour 12 both render as 12, minutes are
// zero-padded, and anything non-numeric renders as TBD.
func FormatTime(hhmm string) string {
	parts := strings.SplitN(hhmm, ":", 2)
	if len(parts) != 2 {
		return "TBD"
	}
	hour, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return "TBD"
	}
	minute, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return "TBD"
	}

	ampm := "AM"
	if hour >= 12 {
		ampm = "PM"
	}
	hour = hour % 12
	if hour == 0 {
		hour = 12
	}
	return fmt.Sprintf("%d:%02d %s", hour, minute, ampm)
}

// FormatDisplayDate renders a day key as "January 2, 2006". An
// unparseable key falls back to the raw string.
func FormatDisplayDate(key DateKey) string {
	t, err := key.Time()
	if err != nil {
		return string(key)
	}
	return t.Format("January 2, 2006")
}

// MapSearchURL builds a Google Maps search link for a street address,
// percent-encoding the query the way the browser's encodeURIComponent
// does (spaces as %20, not +).
func MapSearchURL(address string) string {
	encoded := strings.ReplaceAll(url.QueryEscape(address), "+", "%20")
	return "https://www.google.com/maps/search/?api=1&query=" + encoded
}

// DayRangeLabel renders a group's inclusive day span: "Day 3" for a
// single day, "Days 2–4" for a run.
func DayRangeLabel(g models.DayGroup) string {
	if g.StartDay == g.EndDay {
		return fmt.Sprintf("Day %d", g.StartDay)
	}
	return fmt.Sprintf("Days %d–%d", g.StartDay, g.EndDay)
}
