package events

import (
	"strings"

	"github.com/RobTisdell/robtisdell.git.io/app/models"
	"github.com/RobTisdell/robtisdell.git.io/app/schedule"
)

// EventBox is the view model for one entry of the upcoming/previous
// lists: the image box with type, location, date(s), time and blurb.
type EventBox struct {
	ID          string
	Name        string
	Image       string
	Type        string
	Description string

	// DateLabel is "Date" for single-day events and "Dates" for runs.
	DateLabel   string
	DateDisplay string
	TimeDisplay string

	LocationName   string
	LocationURL    string
	HasLocationURL bool
	Address        string
	HasAddress     bool
	MapURL         string
}

// newEventBox derives the list view from an event's resolved schedule.
// The box summarizes: first-day through last-day dates, the first day's
// start time through the last day's end time, and the first day's venue.
func newEventBox(ev *models.Event) EventBox {
	sched := ev.Schedule
	first := sched[0]
	last := sched[len(sched)-1]

	box := EventBox{
		ID:          ev.ID.String(),
		Name:        ev.Name,
		Image:       ev.Image,
		Type:        ev.Type,
		Description: ev.Description,
	}
	if box.Image == "" {
		box.Image = "default.png"
	}

	if first.Date == last.Date {
		box.DateLabel = "Date"
		box.DateDisplay = schedule.FormatDisplayDate(schedule.DateKey(first.Date))
	} else {
		box.DateLabel = "Dates"
		box.DateDisplay = schedule.FormatDisplayDate(schedule.DateKey(first.Date)) +
			" - " + schedule.FormatDisplayDate(schedule.DateKey(last.Date))
	}
	box.TimeDisplay = schedule.FormatTime(first.StartTime) + " - " + schedule.FormatTime(last.EndTime)

	box.LocationName = first.Location
	if box.LocationName == "" {
		box.LocationName = "TBD"
	}
	if first.LocationURL != "" && first.LocationURL != "None" {
		box.LocationURL = first.LocationURL
		box.HasLocationURL = true
	}
	box.Address = first.LocationAddress
	if strings.TrimSpace(box.Address) != "" {
		box.HasAddress = true
		box.MapURL = schedule.MapSearchURL(box.Address)
	} else {
		box.Address = "Address TBD"
	}
	return box
}

func newEventBoxes(events []*models.Event) []EventBox {
	boxes := make([]EventBox, 0, len(events))
	for _, ev := range events {
		boxes = append(boxes, newEventBox(ev))
	}
	return boxes
}

// filterUpcoming returns events in the upcoming window, soonest first.
func filterUpcoming(events []*models.Event, today schedule.DateKey, horizonDays int) []*models.Event {
	var filtered []*models.Event
	for _, ev := range events {
		if schedule.IsEventInWindow(ev.Schedule, today, horizonDays) {
			filtered = append(filtered, ev)
		}
	}
	schedule.SortUpcoming(filtered)
	return filtered
}

// filterPrevious returns fully finished events, most recent first.
func filterPrevious(events []*models.Event, today schedule.DateKey) []*models.Event {
	var filtered []*models.Event
	for _, ev := range events {
		if schedule.IsEventPast(ev.Schedule, today) {
			filtered = append(filtered, ev)
		}
	}
	schedule.SortPrevious(filtered)
	return filtered
}

// paginate slices one page out of the previous-events list. Pages are
// 1-based; out-of-range pages clamp to the valid range.
func paginate(events []*models.Event, page, perPage int) (pageEvents []*models.Event, clampedPage, totalPages int) {
	if perPage <= 0 {
		perPage = 8
	}
	totalPages = (len(events) + perPage - 1) / perPage
	if totalPages == 0 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}
	start := (page - 1) * perPage
	end := start + perPage
	if start > len(events) {
		start = len(events)
	}
	if end > len(events) {
		end = len(events)
	}
	return events[start:end], page, totalPages
}
