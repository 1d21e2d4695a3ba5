package schedule

import (
	"errors"
	"reflect"
	"testing"

	"github.com/RobTisdell/robtisdell.git.io/app/models"
)

func TestBuildDailyScheduleOverrides(t *testing.T) {
	ev := &models.Event{
		Name:         "Winter Weekend",
		DefaultTimes: &models.TimeRange{Start: "18:00", End: "23:00"},
		DefaultLocation: &models.Location{
			Name:    "Harbor Hotel",
			URL:     "https://example.com/harbor",
			Address: "400 Water St",
		},
		Days: []models.DaySpec{
			// Deliberately out of order; the builder must sort by date.
			{Date: "2026-01-25",
				OverrideTimes:    &models.TimeRange{Start: "11:00", End: "15:00"},
				OverrideLocation: &models.Location{Name: "Community Hall", URL: "None", Address: "78 Oak Ave"}},
			{Date: "2026-01-23"},
			{Date: "2026-01-24", OverrideTimes: &models.TimeRange{Start: "10:00", End: "23:59"}},
		},
	}

	sched, err := BuildDailySchedule(ev)
	if err != nil {
		t.Fatalf("BuildDailySchedule: %v", err)
	}

	want := []models.ScheduleEntry{
		{DayNumber: 1, Date: "2026-01-23", StartTime: "18:00", EndTime: "23:00",
			Location: "Harbor Hotel", LocationURL: "https://example.com/harbor", LocationAddress: "400 Water St"},
		{DayNumber: 2, Date: "2026-01-24", StartTime: "10:00", EndTime: "23:59",
			Location: "Harbor Hotel", LocationURL: "https://example.com/harbor", LocationAddress: "400 Water St"},
		{DayNumber: 3, Date: "2026-01-25", StartTime: "11:00", EndTime: "15:00",
			Location: "Community Hall", LocationURL: "None", LocationAddress: "78 Oak Ave"},
	}
	if !reflect.DeepEqual(sched, want) {
		t.Errorf("schedule mismatch:\ngot  %+v\nwant %+v", sched, want)
	}
}

func TestBuildDailyScheduleIsPure(t *testing.T) {
	ev := &models.Event{
		Name:         "Bar Night",
		DefaultTimes: &models.TimeRange{Start: "21:00", End: "23:59"},
		Days:         []models.DaySpec{{Date: "2026-01-10"}},
	}

	first, err := BuildDailySchedule(ev)
	if err != nil {
		t.Fatalf("first build: %v", err)
	}
	second, err := BuildDailySchedule(ev)
	if err != nil {
		t.Fatalf("second build: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated builds differ:\nfirst  %+v\nsecond %+v", first, second)
	}
}

func TestBuildDailyScheduleMissingDefaults(t *testing.T) {
	ev := &models.Event{
		Name: "Mystery Event",
		Days: []models.DaySpec{{Date: "2026-03-01"}},
	}

	sched, err := BuildDailySchedule(ev)
	if err != nil {
		t.Fatalf("BuildDailySchedule: %v", err)
	}
	if len(sched) != 1 {
		t.Fatalf("got %d entries, want 1", len(sched))
	}
	if sched[0].StartTime != "" || sched[0].Location != "" {
		t.Errorf("missing defaults should yield blank fields, got %+v", sched[0])
	}
}

func TestBuildDailyScheduleLegacy(t *testing.T) {
	ev := &models.Event{
		Name:            "Charity Auction",
		StartDate:       "2025-11-07",
		EndDate:         "2025-11-09",
		StartTime:       "19:00",
		EndTime:         "22:00",
		Location:        "The Eagle",
		LocationURL:     "https://example.com/eagle",
		LocationAddress: "123 Main St",
	}

	sched, err := BuildDailySchedule(ev)
	if err != nil {
		t.Fatalf("BuildDailySchedule: %v", err)
	}
	if len(sched) != 3 {
		t.Fatalf("got %d entries, want 3", len(sched))
	}
	wantDates := []string{"2025-11-07", "2025-11-08", "2025-11-09"}
	for i, entry := range sched {
		if entry.DayNumber != i+1 {
			t.Errorf("entry %d: DayNumber = %d, want %d", i, entry.DayNumber, i+1)
		}
		if entry.Date != wantDates[i] {
			t.Errorf("entry %d: Date = %s, want %s", i, entry.Date, wantDates[i])
		}
		if entry.StartTime != "19:00" || entry.Location != "The Eagle" {
			t.Errorf("entry %d: legacy fields not carried: %+v", i, entry)
		}
	}
}

func TestBuildDailyScheduleMalformed(t *testing.T) {
	tests := []struct {
		name string
		ev   models.Event
	}{
		{"no schedule at all", models.Event{Name: "empty"}},
		{"bad date in days", models.Event{
			Name: "bad date",
			Days: []models.DaySpec{{Date: "January 5th"}},
		}},
		{"duplicate day", models.Event{
			Name: "dup",
			Days: []models.DaySpec{{Date: "2026-01-10"}, {Date: "2026-01-10"}},
		}},
		{"end before start", models.Event{
			Name: "backwards", StartDate: "2026-01-10", EndDate: "2026-01-05",
		}},
		{"bad legacy date", models.Event{
			Name: "bad legacy", StartDate: "not-a-date", EndDate: "2026-01-05",
		}},
		{"runaway range", models.Event{
			Name: "typo year", StartDate: "2026-01-01", EndDate: "2226-01-01",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildDailySchedule(&tt.ev)
			if !errors.Is(err, ErrMalformedEvent) {
				t.Errorf("got err %v, want ErrMalformedEvent", err)
			}
		})
	}
}
