package pages

import (
	"github.com/gofiber/fiber/v2"

	"github.com/RobTisdell/robtisdell.git.io/app/metrics"
)

// contentPages maps URL paths to static content templates. These are the
// plain informational pages of the site; the data-driven pages live in
// their own route packages.
var contentPages = map[string]struct {
	Template string
	Title    string
	NavKey   string
}{
	"/about":      {"pages/about", "About Us", "about"},
	"/membership": {"pages/membership", "Membership", "membership"},
	"/contest":    {"pages/contest", "Contest", "contest"},
	"/affiliates": {"pages/affiliates", "Affiliates", "affiliates"},
}

// SetupPagesRoutes sets up the static content pages and the root
// redirect. About is the site's default landing page.
func SetupPagesRoutes(app *fiber.App) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/about")
	})

	for path, page := range contentPages {
		page := page
		app.Get(path, func(c *fiber.Ctx) error {
			metrics.PageRenders.WithLabelValues(page.NavKey).Inc()
			return c.Render(page.Template, fiber.Map{
				"Title":       page.Title,
				"CurrentPage": page.NavKey,
			})
		})
	}
}
