package schedule

import (
	"sort"
	"strings"

	"github.com/RobTisdell/robtisdell.git.io/app/models"
)

// FirstDay returns the key of the earliest scheduled day.
func FirstDay(schedule []models.ScheduleEntry) DateKey {
	if len(schedule) == 0 {
		return ""
	}
	return DateKey(schedule[0].Date)
}

// LastDay returns the key of the latest scheduled day.
func LastDay(schedule []models.ScheduleEntry) DateKey {
	if len(schedule) == 0 {
		return ""
	}
	return DateKey(schedule[len(schedule)-1].Date)
}

// IsEventOnDay reports whether day appears verbatim in the schedule.
// Membership is exact key equality, not a first/last range check:
// schedules may have gaps (a weekly series skips the days between).
func IsEventOnDay(schedule []models.ScheduleEntry, day DateKey) bool {
	for _, entry := range schedule {
		if DateKey(entry.Date) == day {
			return true
		}
	}
	return false
}

// IsEventInWindow reports whether the event belongs on the upcoming list:
// either today falls inside its first..last span (currently occurring) or
// its first day arrives within the next horizonDays days, both inclusive.
func IsEventInWindow(schedule []models.ScheduleEntry, today DateKey, horizonDays int) bool {
	if len(schedule) == 0 {
		return false
	}
	first, last := FirstDay(schedule), LastDay(schedule)

	if first <= today && today <= last {
		return true
	}
	return today <= first && first <= today.AddDays(horizonDays)
}

// IsEventPast reports whether the event has fully finished: its last
// scheduled day is before today. Using the last day keeps a multi-day
// event off the previous list until it actually ends.
func IsEventPast(schedule []models.ScheduleEntry, today DateKey) bool {
	if len(schedule) == 0 {
		return false
	}
	return LastDay(schedule) < today
}

// SortUpcoming orders events ascending by first scheduled day, then by
// name so same-day events have a stable order.
func SortUpcoming(events []*models.Event) {
	sort.SliceStable(events, func(i, j int) bool {
		a, b := FirstDay(events[i].Schedule), FirstDay(events[j].Schedule)
		if a != b {
			return a < b
		}
		return strings.ToLower(events[i].Name) < strings.ToLower(events[j].Name)
	})
}

// SortPrevious orders events descending by first scheduled day (most
// recent first), then by name.
func SortPrevious(events []*models.Event) {
	sort.SliceStable(events, func(i, j int) bool {
		a, b := FirstDay(events[i].Schedule), FirstDay(events[j].Schedule)
		if a != b {
			return a > b
		}
		return strings.ToLower(events[i].Name) < strings.ToLower(events[j].Name)
	})
}
