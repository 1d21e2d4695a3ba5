package events

import (
	"github.com/gofiber/fiber/v2"

	"github.com/RobTisdell/robtisdell.git.io/app/sources"
)

// Options carries the list-page tuning knobs from config.
type Options struct {
	HorizonDays   int
	EventsPerPage int
}

// SetupEventsRoutes sets up the event list pages and APIs.
func SetupEventsRoutes(app *fiber.App, store *sources.Store, opts Options) {
	h := &handlers{store: store, opts: opts}

	// Page routes
	app.Get("/events/upcoming", h.UpcomingEventsPage)
	app.Get("/events/previous", h.PreviousEventsPage)

	// API routes
	api := app.Group("/api/events")
	api.Get("/", h.GetEventsAPI)
	api.Get("/upcoming", h.GetUpcomingEventsAPI)
	api.Get("/previous", h.GetPreviousEventsAPI)
	api.Get("/:id/modal", h.GetEventModal)
}

type handlers struct {
	store *sources.Store
	opts  Options
}
