package calendar

import (
	"github.com/gofiber/fiber/v2"

	"github.com/RobTisdell/robtisdell.git.io/app/sources"
)

// SetupCalendarRoutes sets up the month-grid page, its JSON API, and the
// iCalendar export.
func SetupCalendarRoutes(app *fiber.App, store *sources.Store) {
	h := &handlers{store: store}

	app.Get("/calendar", h.CalendarPage)
	app.Get("/calendar.ics", h.GetCalendarICS)
	app.Get("/api/calendar", h.GetCalendarAPI)
}

type handlers struct {
	store *sources.Store
}
