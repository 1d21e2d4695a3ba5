package events

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/RobTisdell/robtisdell.git.io/app/metrics"
	"github.com/RobTisdell/robtisdell.git.io/app/schedule"
)

// UpcomingEventsPage renders the upcoming-events list: events currently
// occurring or starting within the horizon window, soonest first.
func (h *handlers) UpcomingEventsPage(c *fiber.Ctx) error {
	metrics.PageRenders.WithLabelValues("events_upcoming").Inc()

	if err := h.store.EnsureFresh(c.Context()); err != nil {
		log.Printf("upcoming events refresh: %v", err)
	}
	all, err := h.store.Events()
	if err != nil {
		return c.Render("events/upcoming", fiber.Map{
			"Title":       "Upcoming Events",
			"CurrentPage": "upcoming_events",
			"LoadError":   true,
		})
	}

	upcoming := filterUpcoming(all, schedule.Today(), h.opts.HorizonDays)
	return c.Render("events/upcoming", fiber.Map{
		"Title":       "Upcoming Events",
		"CurrentPage": "upcoming_events",
		"Events":      newEventBoxes(upcoming),
		"HasEvents":   len(upcoming) > 0,
	})
}

// PreviousEventsPage renders finished events, most recent first, eight
// per page.
func (h *handlers) PreviousEventsPage(c *fiber.Ctx) error {
	metrics.PageRenders.WithLabelValues("events_previous").Inc()

	if err := h.store.EnsureFresh(c.Context()); err != nil {
		log.Printf("previous events refresh: %v", err)
	}
	all, err := h.store.Events()
	if err != nil {
		return c.Render("events/previous", fiber.Map{
			"Title":       "Previous Events",
			"CurrentPage": "previous_events",
			"LoadError":   true,
		})
	}

	previous := filterPrevious(all, schedule.Today())
	pageEvents, page, totalPages := paginate(previous, c.QueryInt("page", 1), h.opts.EventsPerPage)

	return c.Render("events/previous", fiber.Map{
		"Title":       "Previous Events",
		"CurrentPage": "previous_events",
		"Events":      newEventBoxes(pageEvents),
		"HasEvents":   len(pageEvents) > 0,
		"Page":        page,
		"TotalPages":  totalPages,
		"HasPrev":     page > 1,
		"HasNext":     page < totalPages,
		"PrevPage":    page - 1,
		"NextPage":    page + 1,
	})
}

// GetEventsAPI returns every normalized event with its resolved schedule.
func (h *handlers) GetEventsAPI(c *fiber.Ctx) error {
	if err := h.store.EnsureFresh(c.Context()); err != nil {
		log.Printf("events refresh: %v", err)
	}
	all, err := h.store.Events()
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to fetch events",
		})
	}

	type eventDTO struct {
		ID          string `json:"id"`
		Name        string `json:"name"`
		Type        string `json:"type"`
		Description string `json:"description"`
		Image       string `json:"image"`
		Schedule    any    `json:"schedule"`
	}
	dtos := make([]eventDTO, 0, len(all))
	for _, ev := range all {
		dtos = append(dtos, eventDTO{
			ID:          ev.ID.String(),
			Name:        ev.Name,
			Type:        ev.Type,
			Description: ev.Description,
			Image:       ev.Image,
			Schedule:    ev.Schedule,
		})
	}
	return c.JSON(fiber.Map{
		"success": true,
		"events":  dtos,
	})
}

// GetUpcomingEventsAPI returns the horizon-filtered upcoming list.
func (h *handlers) GetUpcomingEventsAPI(c *fiber.Ctx) error {
	if err := h.store.EnsureFresh(c.Context()); err != nil {
		log.Printf("upcoming events refresh: %v", err)
	}
	all, err := h.store.Events()
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to fetch events",
		})
	}
	upcoming := filterUpcoming(all, schedule.Today(), h.opts.HorizonDays)
	return c.JSON(fiber.Map{
		"success": true,
		"events":  newEventBoxes(upcoming),
	})
}

// GetPreviousEventsAPI returns one page of finished events.
func (h *handlers) GetPreviousEventsAPI(c *fiber.Ctx) error {
	if err := h.store.EnsureFresh(c.Context()); err != nil {
		log.Printf("previous events refresh: %v", err)
	}
	all, err := h.store.Events()
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to fetch events",
		})
	}
	previous := filterPrevious(all, schedule.Today())
	pageEvents, page, totalPages := paginate(previous, c.QueryInt("page", 1), h.opts.EventsPerPage)
	return c.JSON(fiber.Map{
		"success":     true,
		"events":      newEventBoxes(pageEvents),
		"page":        page,
		"total_pages": totalPages,
	})
}

// GetEventModal renders the event-details modal fragment (no layout) for
// the calendar page's click handler.
func (h *handlers) GetEventModal(c *fiber.Ctx) error {
	if err := h.store.EnsureFresh(c.Context()); err != nil {
		log.Printf("event modal refresh: %v", err)
	}
	ev, ok := h.store.EventByID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"error":   "Event not found",
		})
	}
	return c.Render("events/modal", schedule.Present(ev), "")
}
