package titleholders

import (
	"log"
	"sort"

	"github.com/gofiber/fiber/v2"

	"github.com/RobTisdell/robtisdell.git.io/app/metrics"
	"github.com/RobTisdell/robtisdell.git.io/app/models"
	"github.com/RobTisdell/robtisdell.git.io/app/sources"
)

// SetupTitleholdersRoutes sets up the current/former titleholder pages
// and API.
func SetupTitleholdersRoutes(app *fiber.App, store *sources.Store) {
	h := &handlers{store: store}

	app.Get("/titleholders", h.CurrentTitleholderPage)
	app.Get("/titleholders/former", h.FormerTitleholdersPage)
	app.Get("/api/titleholders", h.GetTitleholdersAPI)
}

type handlers struct {
	store *sources.Store
}

// titleholderView adds the display year (first four digits of Year) to a
// feed record.
type titleholderView struct {
	models.Titleholder
	DisplayYear string
}

func newTitleholderView(t models.Titleholder) titleholderView {
	year := t.Year
	if len(year) > 4 {
		year = year[:4]
	}
	return titleholderView{Titleholder: t, DisplayYear: year}
}

// CurrentTitleholderPage renders the active titleholder(s).
func (h *handlers) CurrentTitleholderPage(c *fiber.Ctx) error {
	metrics.PageRenders.WithLabelValues("titleholder").Inc()

	if err := h.store.EnsureFresh(c.Context()); err != nil {
		log.Printf("titleholders refresh: %v", err)
	}
	all, err := h.store.Titleholders()
	if err != nil {
		return c.Render("titleholders/index", fiber.Map{
			"Title":       "Current Titleholder",
			"CurrentPage": "current_titleholder",
			"LoadError":   true,
		})
	}

	var active []titleholderView
	for _, t := range all {
		if t.Active {
			active = append(active, newTitleholderView(t))
		}
	}
	return c.Render("titleholders/index", fiber.Map{
		"Title":        "Current Titleholder",
		"CurrentPage":  "current_titleholder",
		"Titleholders": active,
		"HasAny":       len(active) > 0,
	})
}

// FormerTitleholdersPage renders retired titleholders, newest year first.
func (h *handlers) FormerTitleholdersPage(c *fiber.Ctx) error {
	metrics.PageRenders.WithLabelValues("previous_titleholders").Inc()

	if err := h.store.EnsureFresh(c.Context()); err != nil {
		log.Printf("titleholders refresh: %v", err)
	}
	all, err := h.store.Titleholders()
	if err != nil {
		return c.Render("titleholders/former", fiber.Map{
			"Title":       "Previous Titleholders",
			"CurrentPage": "previous_titleholders",
			"LoadError":   true,
		})
	}

	var former []titleholderView
	for _, t := range all {
		if !t.Active {
			former = append(former, newTitleholderView(t))
		}
	}
	sort.SliceStable(former, func(i, j int) bool {
		return models.ParseYear(former[i].Year) > models.ParseYear(former[j].Year)
	})
	return c.Render("titleholders/former", fiber.Map{
		"Title":        "Previous Titleholders",
		"CurrentPage":  "previous_titleholders",
		"Titleholders": former,
		"HasAny":       len(former) > 0,
	})
}

// GetTitleholdersAPI returns the raw titleholders feed.
func (h *handlers) GetTitleholdersAPI(c *fiber.Ctx) error {
	if err := h.store.EnsureFresh(c.Context()); err != nil {
		log.Printf("titleholders refresh: %v", err)
	}
	all, err := h.store.Titleholders()
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to fetch titleholders",
		})
	}
	return c.JSON(fiber.Map{
		"success":      true,
		"titleholders": all,
	})
}
