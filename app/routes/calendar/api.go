package calendar

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/RobTisdell/robtisdell.git.io/app/metrics"
	"github.com/RobTisdell/robtisdell.git.io/app/schedule"
)

// displayedMonth resolves the requested month, defaulting to the current
// one. Month arithmetic goes through time.Date so "month 0" and "month
// 13" from prev/next navigation normalize naturally.
func displayedMonth(c *fiber.Ctx) (int, time.Month) {
	now := time.Now()
	year := c.QueryInt("year", now.Year())
	month := c.QueryInt("month", int(now.Month()))
	t := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
	return t.Year(), t.Month()
}

// CalendarPage renders the 6x7 month grid. A failed events fetch still
// renders the grid, just without event notes, matching how the site has
// always degraded.
func (h *handlers) CalendarPage(c *fiber.Ctx) error {
	metrics.PageRenders.WithLabelValues("calendar").Inc()

	if err := h.store.EnsureFresh(c.Context()); err != nil {
		log.Printf("calendar refresh: %v", err)
	}
	events, err := h.store.Events()
	if err != nil {
		log.Printf("calendar events unavailable: %v", err)
		events = nil
	}

	year, month := displayedMonth(c)
	cells := schedule.BuildMonthGrid(year, month, schedule.Today(), events)

	prev := time.Date(year, month-1, 1, 0, 0, 0, 0, time.Local)
	next := time.Date(year, month+1, 1, 0, 0, 0, 0, time.Local)

	return c.Render("calendar/index", fiber.Map{
		"Title":       "Calendar",
		"CurrentPage": "calendar",
		"MonthLabel":  schedule.MonthLabel(year, month),
		"Cells":       cells,
		"PrevYear":    prev.Year(),
		"PrevMonth":   int(prev.Month()),
		"NextYear":    next.Year(),
		"NextMonth":   int(next.Month()),
		"EventsDown":  err != nil,
	})
}

// GetCalendarAPI returns the 42-cell grid as JSON.
func (h *handlers) GetCalendarAPI(c *fiber.Ctx) error {
	if err := h.store.EnsureFresh(c.Context()); err != nil {
		log.Printf("calendar refresh: %v", err)
	}
	events, err := h.store.Events()
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to fetch events",
		})
	}

	year, month := displayedMonth(c)
	cells := schedule.BuildMonthGrid(year, month, schedule.Today(), events)

	type cellDTO struct {
		Day      int      `json:"day"`
		Date     string   `json:"date,omitempty"`
		Inactive bool     `json:"inactive"`
		IsToday  bool     `json:"is_today"`
		Events   []evNote `json:"events,omitempty"`
	}
	dtos := make([]cellDTO, 0, len(cells))
	for _, cell := range cells {
		dto := cellDTO{
			Day:      cell.Day,
			Date:     string(cell.DateKey),
			Inactive: cell.Inactive,
			IsToday:  cell.IsToday,
		}
		for _, ev := range cell.Events {
			dto.Events = append(dto.Events, evNote{ID: ev.ID.String(), Name: ev.Name})
		}
		dtos = append(dtos, dto)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"year":    year,
		"month":   int(month),
		"label":   schedule.MonthLabel(year, month),
		"cells":   dtos,
	})
}

type evNote struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
