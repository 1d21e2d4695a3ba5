package calendar

import (
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/gofiber/fiber/v2"

	"github.com/RobTisdell/robtisdell.git.io/app/models"
	"github.com/RobTisdell/robtisdell.git.io/app/schedule"
)

// GetCalendarICS exports the full event schedule as an iCalendar feed,
// one VEVENT per scheduled day so per-day overrides keep their own time
// and venue.
func (h *handlers) GetCalendarICS(c *fiber.Ctx) error {
	if err := h.store.EnsureFresh(c.Context()); err != nil {
		log.Printf("ics refresh: %v", err)
	}
	events, err := h.store.Events()
	if err != nil {
		return c.Status(fiber.StatusBadGateway).SendString("events feed unavailable")
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//robtisdell.git.io//events//EN")
	cal.SetXWRCalName("Community Events")

	now := time.Now()
	for _, ev := range events {
		for _, day := range ev.Schedule {
			addDayEvent(cal, ev, day, now)
		}
	}

	c.Set(fiber.HeaderContentType, "text/calendar; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="events.ics"`)
	return c.SendString(cal.Serialize())
}

func addDayEvent(cal *ics.Calendar, ev *models.Event, day models.ScheduleEntry, stamp time.Time) {
	uid := fmt.Sprintf("%s-day%d@robtisdell.git.io", ev.ID, day.DayNumber)
	ve := cal.AddEvent(uid)
	ve.SetDtStampTime(stamp)
	ve.SetSummary(ev.Name)
	if ev.Description != "" {
		ve.SetDescription(ev.Description)
	}
	if day.Location != "" {
		loc := day.Location
		if day.LocationAddress != "" {
			loc += ", " + day.LocationAddress
		}
		ve.SetLocation(loc)
	}
	if day.LocationURL != "" && day.LocationURL != "None" {
		ve.SetURL(day.LocationURL)
	}

	date, err := schedule.ParseDateKey(day.Date)
	if err != nil {
		return
	}

	start, okStart := combine(date, day.StartTime)
	end, okEnd := combine(date, day.EndTime)
	if !okStart || !okEnd {
		// No usable times: publish as an all-day entry.
		ve.SetAllDayStartAt(date)
		ve.SetAllDayEndAt(date.AddDate(0, 0, 1))
		return
	}
	if !end.After(start) {
		// A 21:00-02:00 window ends the next morning.
		end = end.AddDate(0, 0, 1)
	}
	ve.SetStartAt(start)
	ve.SetEndAt(end)
}

// combine merges a local calendar day with an HH:MM wall-clock time.
func combine(day time.Time, hhmm string) (time.Time, bool) {
	parts := strings.SplitN(hhmm, ":", 2)
	if len(parts) != 2 {
		return time.Time{}, false
	}
	hour, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || hour < 0 || hour > 23 {
		return time.Time{}, false
	}
	minute, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil || minute < 0 || minute > 59 {
		return time.Time{}, false
	}
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, time.Local), true
}
