package events

import (
	"testing"

	"github.com/RobTisdell/robtisdell.git.io/app/models"
	"github.com/RobTisdell/robtisdell.git.io/app/schedule"
)

func eventOn(name string, dates ...string) *models.Event {
	ev := &models.Event{ID: models.FlexID(name), Name: name}
	for i, d := range dates {
		ev.Schedule = append(ev.Schedule, models.ScheduleEntry{
			DayNumber: i + 1, Date: d,
			StartTime: "19:00", EndTime: "22:00",
			Location: "The Eagle", LocationURL: "https://example.com/eagle",
			LocationAddress: "123 Main St",
		})
	}
	return ev
}

func TestNewEventBoxSingleDay(t *testing.T) {
	box := newEventBox(eventOn("Bar Night", "2026-01-10"))

	if box.DateLabel != "Date" {
		t.Errorf("DateLabel = %q, want Date", box.DateLabel)
	}
	if box.DateDisplay != "January 10, 2026" {
		t.Errorf("DateDisplay = %q", box.DateDisplay)
	}
	if box.TimeDisplay != "7:00 PM - 10:00 PM" {
		t.Errorf("TimeDisplay = %q", box.TimeDisplay)
	}
	if !box.HasLocationURL || !box.HasAddress {
		t.Errorf("location links missing: %+v", box)
	}
	if box.Image != "default.png" {
		t.Errorf("Image = %q, want default.png fallback", box.Image)
	}
}

func TestNewEventBoxMultiDay(t *testing.T) {
	box := newEventBox(eventOn("Winter Weekend", "2026-01-23", "2026-01-24", "2026-01-25"))

	if box.DateLabel != "Dates" {
		t.Errorf("DateLabel = %q, want Dates", box.DateLabel)
	}
	if box.DateDisplay != "January 23, 2026 - January 25, 2026" {
		t.Errorf("DateDisplay = %q", box.DateDisplay)
	}
}

func TestNewEventBoxTBDFallbacks(t *testing.T) {
	ev := &models.Event{
		ID: "mystery", Name: "Mystery",
		Schedule: []models.ScheduleEntry{
			{DayNumber: 1, Date: "2026-03-01", LocationURL: "None"},
		},
	}
	box := newEventBox(ev)

	if box.LocationName != "TBD" {
		t.Errorf("LocationName = %q, want TBD", box.LocationName)
	}
	if box.HasLocationURL {
		t.Error("URL sentinel None treated as a link")
	}
	if box.HasAddress || box.Address != "Address TBD" {
		t.Errorf("Address = %q (has=%v), want Address TBD", box.Address, box.HasAddress)
	}
	if box.TimeDisplay != "TBD - TBD" {
		t.Errorf("TimeDisplay = %q", box.TimeDisplay)
	}
}

func TestNewEventBoxWhitespaceAddress(t *testing.T) {
	ev := &models.Event{
		ID: "padded", Name: "Padded",
		Schedule: []models.ScheduleEntry{
			{DayNumber: 1, Date: "2026-03-01", LocationAddress: "   "},
		},
	}
	box := newEventBox(ev)

	if box.HasAddress {
		t.Error("whitespace-only address treated as mappable")
	}
	if box.Address != "Address TBD" {
		t.Errorf("Address = %q, want Address TBD", box.Address)
	}
	if box.MapURL != "" {
		t.Errorf("MapURL = %q, want empty", box.MapURL)
	}
}

func TestFilterUpcomingAndPrevious(t *testing.T) {
	today := schedule.DateKey("2026-01-10")
	all := []*models.Event{
		eventOn("Finished", "2026-01-05"),
		eventOn("Running", "2026-01-09", "2026-01-10", "2026-01-11"),
		eventOn("Soon", "2026-01-20"),
		eventOn("Far Future", "2026-06-01"),
	}

	upcoming := filterUpcoming(all, today, 31)
	if len(upcoming) != 2 {
		t.Fatalf("got %d upcoming, want 2", len(upcoming))
	}
	if upcoming[0].Name != "Running" || upcoming[1].Name != "Soon" {
		t.Errorf("upcoming order: %s, %s", upcoming[0].Name, upcoming[1].Name)
	}

	previous := filterPrevious(all, today)
	if len(previous) != 1 || previous[0].Name != "Finished" {
		t.Errorf("previous = %v", previous)
	}
}

func TestPaginate(t *testing.T) {
	var events []*models.Event
	for i := 0; i < 10; i++ {
		events = append(events, eventOn("ev", "2026-01-01"))
	}

	tests := []struct {
		name                         string
		page, perPage                int
		wantLen, wantPage, wantTotal int
	}{
		{"first page", 1, 4, 4, 1, 3},
		{"middle page", 2, 4, 4, 2, 3},
		{"short last page", 3, 4, 2, 3, 3},
		{"past the end clamps", 99, 4, 2, 3, 3},
		{"below one clamps", 0, 4, 4, 1, 3},
		{"zero per page defaults", 1, 0, 8, 1, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, page, total := paginate(events, tt.page, tt.perPage)
			if len(got) != tt.wantLen || page != tt.wantPage || total != tt.wantTotal {
				t.Errorf("got len=%d page=%d total=%d, want len=%d page=%d total=%d",
					len(got), page, total, tt.wantLen, tt.wantPage, tt.wantTotal)
			}
		})
	}

	// Empty list still reports one page.
	got, page, total := paginate(nil, 1, 4)
	if len(got) != 0 || page != 1 || total != 1 {
		t.Errorf("empty list: len=%d page=%d total=%d", len(got), page, total)
	}
}
