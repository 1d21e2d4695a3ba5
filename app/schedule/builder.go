package schedule

import (
	"errors"
	"fmt"
	"sort"

	"github.com/RobTisdell/robtisdell.git.io/app/models"
)

// ErrMalformedEvent marks an event record whose schedule cannot be
// resolved. Callers skip the record and keep rendering the rest.
var ErrMalformedEvent = errors.New("malformed event record")

// Legacy records expand one entry per day of the inclusive StartDate..
// EndDate range; the cap keeps a typo'd year from expanding into
// thousands of entries.
const maxLegacyDays = 366

// BuildDailySchedule resolves an event into its ordered per-day schedule.
// Days is the canonical representation; records without it fall back to
// the legacy flat fields. The function is pure: calling it twice on the
// same record yields identical output, so callers may cache the result.
func BuildDailySchedule(ev *models.Event) ([]models.ScheduleEntry, error) {
	if len(ev.Days) > 0 {
		return buildFromDays(ev)
	}
	if ev.StartDate != "" && ev.EndDate != "" {
		return buildFromLegacy(ev)
	}
	return nil, fmt.Errorf("%w: %q has neither Days nor StartDate/EndDate", ErrMalformedEvent, ev.Name)
}

func buildFromDays(ev *models.Event) ([]models.ScheduleEntry, error) {
	days := make([]models.DaySpec, len(ev.Days))
	copy(days, ev.Days)

	for _, d := range days {
		if _, err := ParseDateKey(d.Date); err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrMalformedEvent, ev.Name, err)
		}
	}

	sort.SliceStable(days, func(i, j int) bool {
		return days[i].Date < days[j].Date
	})

	schedule := make([]models.ScheduleEntry, 0, len(days))
	for i, day := range days {
		if i > 0 && day.Date == days[i-1].Date {
			return nil, fmt.Errorf("%w: %q repeats day %s", ErrMalformedEvent, ev.Name, day.Date)
		}

		times := day.OverrideTimes
		if times == nil {
			times = ev.DefaultTimes
		}
		loc := day.OverrideLocation
		if loc == nil {
			loc = ev.DefaultLocation
		}
		// Missing defaults degrade to blank fields; the renderers show
		// TBD rather than rejecting the whole record.
		if times == nil {
			times = &models.TimeRange{}
		}
		if loc == nil {
			loc = &models.Location{}
		}

		schedule = append(schedule, models.ScheduleEntry{
			DayNumber:       i + 1,
			Date:            day.Date,
			StartTime:       times.Start,
			EndTime:         times.End,
			Location:        loc.Name,
			LocationURL:     loc.URL,
			LocationAddress: loc.Address,
		})
	}
	return schedule, nil
}

// buildFromLegacy adapts the deprecated flat shape: every day of the
// inclusive date range gets the same time window and location. The old
// late-night spillover heuristic (collapsing a short midnight-crossing
// span into one day) is intentionally not carried over; data that needs
// per-day precision should use Days.
func buildFromLegacy(ev *models.Event) ([]models.ScheduleEntry, error) {
	start, err := ParseDateKey(ev.StartDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrMalformedEvent, ev.Name, err)
	}
	end, err := ParseDateKey(ev.EndDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrMalformedEvent, ev.Name, err)
	}
	if end.Before(start) {
		return nil, fmt.Errorf("%w: %q ends %s before it starts %s", ErrMalformedEvent, ev.Name, ev.EndDate, ev.StartDate)
	}

	var schedule []models.ScheduleEntry
	for d, n := start, 1; !d.After(end); d, n = d.AddDate(0, 0, 1), n+1 {
		if n > maxLegacyDays {
			return nil, fmt.Errorf("%w: %q spans more than %d days", ErrMalformedEvent, ev.Name, maxLegacyDays)
		}
		schedule = append(schedule, models.ScheduleEntry{
			DayNumber:       n,
			Date:            string(KeyOf(d)),
			StartTime:       ev.StartTime,
			EndTime:         ev.EndTime,
			Location:        ev.Location,
			LocationURL:     ev.LocationURL,
			LocationAddress: ev.LocationAddress,
		})
	}
	return schedule, nil
}
