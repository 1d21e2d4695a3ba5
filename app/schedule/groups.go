package schedule

import "github.com/RobTisdell/robtisdell.git.io/app/models"

// GroupConsecutiveDays collapses runs of schedule entries that share the
// same location and time window into display groups. A new group starts
// whenever any of location, URL, address, start or end time changes from
// the previous entry. The output partitions the schedule contiguously in
// ascending day order.
func GroupConsecutiveDays(entries []models.ScheduleEntry) []models.DayGroup {
	var groups []models.DayGroup

	for _, day := range entries {
		if n := len(groups); n > 0 {
			cur := &groups[n-1]
			same := cur.Location == day.Location &&
				cur.LocationAddress == day.LocationAddress &&
				cur.LocationURL == day.LocationURL &&
				cur.StartTime == day.StartTime &&
				cur.EndTime == day.EndTime
			if same {
				cur.EndDay = day.DayNumber
				continue
			}
		}
		groups = append(groups, models.DayGroup{
			StartDay:        day.DayNumber,
			EndDay:          day.DayNumber,
			Location:        day.Location,
			LocationURL:     day.LocationURL,
			LocationAddress: day.LocationAddress,
			StartTime:       day.StartTime,
			EndTime:         day.EndTime,
		})
	}
	return groups
}
