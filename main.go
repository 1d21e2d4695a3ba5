package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/template/html/v2"

	"github.com/RobTisdell/robtisdell.git.io/app/config"
	"github.com/RobTisdell/robtisdell.git.io/app/metrics"
	"github.com/RobTisdell/robtisdell.git.io/app/routes/admin"
	"github.com/RobTisdell/robtisdell.git.io/app/routes/calendar"
	"github.com/RobTisdell/robtisdell.git.io/app/routes/events"
	"github.com/RobTisdell/robtisdell.git.io/app/routes/pages"
	"github.com/RobTisdell/robtisdell.git.io/app/routes/staff"
	"github.com/RobTisdell/robtisdell.git.io/app/routes/titleholders"
	"github.com/RobTisdell/robtisdell.git.io/app/services"
	"github.com/RobTisdell/robtisdell.git.io/app/sources"
)

// customErrorHandler returns JSON for /api requests and the error
// template for web requests.
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	if len(c.Path()) >= 4 && c.Path()[:4] == "/api" {
		return c.Status(code).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"code":    code,
		})
	}

	switch code {
	case fiber.StatusNotFound:
		return c.Status(code).Render("404", fiber.Map{
			"Title":       "Page Not Found",
			"CurrentPage": "",
		})
	default:
		return c.Status(code).Render("error", fiber.Map{
			"Title":        "Error",
			"CurrentPage":  "",
			"ErrorCode":    code,
			"ErrorTitle":   "An Error Occurred",
			"ErrorMessage": err.Error(),
		})
	}
}

func main() {
	cfg := config.Load()

	rankings, err := config.LoadRankings(cfg.Site.RankingsFile)
	if err != nil {
		log.Printf("Warning: rankings file %s: %v (using built-in order)", cfg.Site.RankingsFile, err)
	}

	store := sources.NewStore(
		cfg.Sources.Events,
		cfg.Sources.Staff,
		cfg.Sources.Titleholders,
		time.Duration(cfg.Sources.CacheTTLSeconds)*time.Second,
	)

	// Warm the cache and keep it warm in the background.
	refresher := services.StartRefresher(store, cfg.Sources.RefreshCron)
	defer refresher.Stop()

	// Initialize template engine
	engine := html.New("./app/templates", ".html")

	app := fiber.New(fiber.Config{
		Views:        engine,
		ViewsLayout:  "layouts/main",
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	// Static files (event images, stylesheets)
	app.Static("/static", "./static")
	app.Static("/img", "./static/img")

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("OK")
	})
	app.Get("/metrics", metrics.Handler())

	// Routes
	pages.SetupPagesRoutes(app)
	calendar.SetupCalendarRoutes(app, store)
	events.SetupEventsRoutes(app, store, events.Options{
		HorizonDays:   cfg.Site.HorizonDays,
		EventsPerPage: cfg.Site.EventsPerPage,
	})
	staff.SetupStaffRoutes(app, store, rankings)
	titleholders.SetupTitleholdersRoutes(app, store)
	admin.SetupAdminRoutes(app, store, cfg.Admin.RefreshUser, cfg.Admin.RefreshPasswordHash)

	// Catch-all route for 404 errors (must be last)
	app.Use("*", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Page not found")
	})

	log.Printf("Server starting on %s", cfg.Server.Listen)
	log.Fatal(app.Listen(cfg.Server.Listen))
}
