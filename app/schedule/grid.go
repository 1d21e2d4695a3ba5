package schedule

import (
	"time"

	"github.com/RobTisdell/robtisdell.git.io/app/models"
)

// GridCells is the fixed size of the rendered month grid: 6 rows of 7
// days, regardless of how many weeks the month actually touches.
const GridCells = 42

// CalendarCell is one day slot of the month grid. Inactive cells are the
// leading/trailing spillover from adjacent months; they keep their day
// number for display but never carry a date key or events.
type CalendarCell struct {
	Day      int             `json:"day"`
	DateKey  DateKey         `json:"date,omitempty"`
	Inactive bool            `json:"inactive"`
	IsToday  bool            `json:"is_today"`
	Events   []*models.Event `json:"-"`
	EventIDs []string        `json:"event_ids,omitempty"`
}

// BuildMonthGrid produces the 42 cells for the given month, attaching to
// each in-month cell every event whose schedule contains that day. The
// grid is recomputed from scratch on every call; month navigation just
// calls it again.
func BuildMonthGrid(year int, month time.Month, today DateKey, events []*models.Event) []CalendarCell {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, time.Local).Day()
	lead := int(first.Weekday()) // Sunday-first grid

	cells := make([]CalendarCell, 0, GridCells)

	for i := lead; i > 0; i-- {
		d := first.AddDate(0, 0, -i)
		cells = append(cells, CalendarCell{Day: d.Day(), Inactive: true})
	}

	for day := 1; day <= daysInMonth; day++ {
		key := KeyFor(year, month, day)
		cell := CalendarCell{
			Day:     day,
			DateKey: key,
			IsToday: key == today,
		}
		for _, ev := range events {
			if IsEventOnDay(ev.Schedule, key) {
				cell.Events = append(cell.Events, ev)
				cell.EventIDs = append(cell.EventIDs, ev.ID.String())
			}
		}
		cells = append(cells, cell)
	}

	for day := 1; len(cells) < GridCells; day++ {
		cells = append(cells, CalendarCell{Day: day, Inactive: true})
	}
	return cells
}

// MonthLabel formats the grid heading, e.g. "February 2026".
func MonthLabel(year int, month time.Month) string {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.Local).Format("January 2006")
}
