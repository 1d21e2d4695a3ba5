package models

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Event represents one entry of the events feed. Newer records describe
// their schedule with a Days list plus event-level defaults; older records
// use the flat StartDate/EndDate shape. Both are normalized into the same
// daily schedule at ingestion, so everything past the sources layer only
// ever sees Schedule.
type Event struct {
	ID          FlexID `json:"ID"`
	Name        string `json:"Name"`
	Description string `json:"Description"`
	Type        string `json:"Type"`
	Image       string `json:"Image"`

	Days            []DaySpec  `json:"Days,omitempty"`
	DefaultTimes    *TimeRange `json:"DefaultTimes,omitempty"`
	DefaultLocation *Location  `json:"DefaultLocation,omitempty"`

	// Legacy flat shape, superseded by Days.
	StartDate       string `json:"StartDate,omitempty"`
	EndDate         string `json:"EndDate,omitempty"`
	StartTime       string `json:"StartTime,omitempty"`
	EndTime         string `json:"EndTime,omitempty"`
	Location        string `json:"Location,omitempty"`
	LocationURL     string `json:"LocationURL,omitempty"`
	LocationAddress string `json:"LocationAddress,omitempty"`

	// Schedule is the resolved per-day schedule, populated once at
	// ingestion and reused by every consumer for the lifetime of the
	// cached event.
	Schedule []ScheduleEntry `json:"-"`
}

// DaySpec is one calendar day within an event's Days list. Overrides, when
// present, supersede the event-level defaults for that day only.
type DaySpec struct {
	Date             string     `json:"Date"`
	OverrideTimes    *TimeRange `json:"OverrideTimes,omitempty"`
	OverrideLocation *Location  `json:"OverrideLocation,omitempty"`
}

// TimeRange holds a start/end pair in 24-hour HH:MM form.
type TimeRange struct {
	Start string `json:"Start"`
	End   string `json:"End"`
}

// Location names a venue with an optional link and street address.
type Location struct {
	Name    string `json:"Name"`
	URL     string `json:"URL"`
	Address string `json:"Address"`
}

// ScheduleEntry is the resolved time and location for one concrete day of
// an event. DayNumber is 1-based and contiguous in sorted-date order.
type ScheduleEntry struct {
	DayNumber       int    `json:"day_number"`
	Date            string `json:"date"`
	StartTime       string `json:"start_time"`
	EndTime         string `json:"end_time"`
	Location        string `json:"location"`
	LocationURL     string `json:"location_url"`
	LocationAddress string `json:"location_address"`
}

// DayGroup is a maximal run of consecutive schedule entries sharing the
// same location and time window. StartDay/EndDay are inclusive DayNumbers.
type DayGroup struct {
	StartDay        int    `json:"start_day"`
	EndDay          int    `json:"end_day"`
	Location        string `json:"location"`
	LocationURL     string `json:"location_url"`
	LocationAddress string `json:"location_address"`
	StartTime       string `json:"start_time"`
	EndTime         string `json:"end_time"`
}

// FlexID tolerates the feed's inconsistent ID typing: some revisions of
// the data use numbers, some use strings. The canonical form is a string.
type FlexID string

func (id *FlexID) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*id = ""
		return nil
	}
	if len(s) > 0 && s[0] == '"' {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*id = FlexID(v)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = FlexID(n.String())
	return nil
}

func (id FlexID) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(id))
}

func (id FlexID) String() string { return string(id) }

// ParseYear extracts a four-digit year prefix, used by the titleholder
// pages; returns 0 when the value is too short or non-numeric.
func ParseYear(s string) int {
	if len(s) < 4 {
		return 0
	}
	y, err := strconv.Atoi(s[:4])
	if err != nil {
		return 0
	}
	return y
}
