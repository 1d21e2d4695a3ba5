package schedule

import (
	"strings"

	"github.com/RobTisdell/robtisdell.git.io/app/models"
)

// ModalView is everything the event-details modal needs, derived from the
// event's schedule and its consecutive-day groups.
type ModalView struct {
	ID          string
	Name        string
	Type        string
	Description string
	Image       string

	// SingleDay events omit the Day N labels entirely.
	SingleDay bool
	When      []WhenRow
	Where     []WhereBlock
}

// WhenRow is one "Day N: date, start – end" line. Label is empty for
// single-day events.
type WhenRow struct {
	Label string
	Date  string
	Start string
	End   string
}

// WhereBlock is one location block per day group. Label reflects the
// group's DayNumber range, never calendar dates: DayNumber is the stable
// ordinal the rest of the UI uses.
type WhereBlock struct {
	Label      string
	Name       string
	URL        string
	HasURL     bool
	Address    string
	MapURL     string
	HasAddress bool
}

// Present builds the modal render model for one event. The schedule must
// already be resolved (ingestion guarantees this for every stored event).
func Present(ev *models.Event) ModalView {
	sched := ev.Schedule
	groups := GroupConsecutiveDays(sched)

	view := ModalView{
		ID:          ev.ID.String(),
		Name:        ev.Name,
		Type:        ev.Type,
		Description: ev.Description,
		Image:       ev.Image,
		SingleDay:   len(sched) == 1,
	}
	if view.Image == "" {
		view.Image = "default.png"
	}

	for _, day := range sched {
		row := WhenRow{
			Date:  FormatDisplayDate(DateKey(day.Date)),
			Start: FormatTime(day.StartTime),
			End:   FormatTime(day.EndTime),
		}
		if !view.SingleDay {
			row.Label = DayRangeLabel(models.DayGroup{StartDay: day.DayNumber, EndDay: day.DayNumber})
		}
		view.When = append(view.When, row)
	}

	for _, g := range groups {
		block := WhereBlock{
			Name:    g.Location,
			Address: g.LocationAddress,
		}
		if !view.SingleDay {
			block.Label = DayRangeLabel(g)
		}
		if block.Name == "" {
			block.Name = "TBD"
		}
		// Early data used the literal string "None" for link-less venues.
		if g.LocationURL != "" && g.LocationURL != "None" {
			block.URL = g.LocationURL
			block.HasURL = true
		}
		if strings.TrimSpace(g.LocationAddress) != "" {
			block.HasAddress = true
			block.MapURL = MapSearchURL(g.LocationAddress)
		}
		view.Where = append(view.Where, block)
	}
	return view
}
