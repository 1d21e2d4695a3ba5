package staff

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/RobTisdell/robtisdell.git.io/app/config"
	"github.com/RobTisdell/robtisdell.git.io/app/metrics"
	"github.com/RobTisdell/robtisdell.git.io/app/sources"
)

// SetupStaffRoutes sets up the current/former staff pages and API.
func SetupStaffRoutes(app *fiber.App, store *sources.Store, rankings *config.Rankings) {
	h := &handlers{store: store, rankings: rankings}

	app.Get("/staff", h.StaffPage)
	app.Get("/staff/former", h.FormerStaffPage)
	app.Get("/api/staff", h.GetStaffAPI)
}

type handlers struct {
	store    *sources.Store
	rankings *config.Rankings
}

// StaffPage renders active staff, ordered by position rank then name.
func (h *handlers) StaffPage(c *fiber.Ctx) error {
	metrics.PageRenders.WithLabelValues("staff").Inc()

	if err := h.store.EnsureFresh(c.Context()); err != nil {
		log.Printf("staff refresh: %v", err)
	}
	all, err := h.store.Staff()
	if err != nil {
		return c.Render("staff/index", fiber.Map{
			"Title":       "Current Staff",
			"CurrentPage": "staff",
			"LoadError":   true,
		})
	}

	active := SortActiveStaff(all, h.rankings)
	return c.Render("staff/index", fiber.Map{
		"Title":       "Current Staff",
		"CurrentPage": "staff",
		"Staff":       active,
		"HasStaff":    len(active) > 0,
	})
}

// FormerStaffPage renders inactive staff, ordered by the best rank among
// their past positions, then name.
func (h *handlers) FormerStaffPage(c *fiber.Ctx) error {
	metrics.PageRenders.WithLabelValues("formerstaff").Inc()

	if err := h.store.EnsureFresh(c.Context()); err != nil {
		log.Printf("former staff refresh: %v", err)
	}
	all, err := h.store.Staff()
	if err != nil {
		return c.Render("staff/former", fiber.Map{
			"Title":       "Former Staff",
			"CurrentPage": "formerstaff",
			"LoadError":   true,
		})
	}

	former := SortFormerStaff(all, h.rankings)
	views := make([]formerStaffView, 0, len(former))
	for _, m := range former {
		views = append(views, newFormerStaffView(m))
	}
	return c.Render("staff/former", fiber.Map{
		"Title":       "Former Staff",
		"CurrentPage": "formerstaff",
		"Staff":       views,
		"HasStaff":    len(views) > 0,
	})
}

// GetStaffAPI returns the raw staff feed.
func (h *handlers) GetStaffAPI(c *fiber.Ctx) error {
	if err := h.store.EnsureFresh(c.Context()); err != nil {
		log.Printf("staff refresh: %v", err)
	}
	all, err := h.store.Staff()
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to fetch staff",
		})
	}
	return c.JSON(fiber.Map{
		"success": true,
		"staff":   all,
	})
}
