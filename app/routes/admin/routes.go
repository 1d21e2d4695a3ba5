package admin

import (
	"crypto/subtle"
	"encoding/base64"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/RobTisdell/robtisdell.git.io/app/sources"
)

// SetupAdminRoutes sets up the forced cache refresh endpoint. It is only
// registered when a bcrypt password hash is configured; the site has no
// other write surface.
func SetupAdminRoutes(app *fiber.App, store *sources.Store, user, passwordHash string) {
	if passwordHash == "" {
		log.Println("admin refresh endpoint disabled (no password hash configured)")
		return
	}
	h := &handlers{store: store, user: user, passwordHash: passwordHash}
	app.Post("/api/refresh", h.requireBasicAuth, h.ForceRefresh)
}

type handlers struct {
	store        *sources.Store
	user         string
	passwordHash string
}

func (h *handlers) requireBasicAuth(c *fiber.Ctx) error {
	auth := c.Get(fiber.HeaderAuthorization)
	const prefix = "Basic "
	if !strings.HasPrefix(auth, prefix) {
		return unauthorized(c)
	}
	decoded, err := base64.StdEncoding.DecodeString(auth[len(prefix):])
	if err != nil {
		return unauthorized(c)
	}
	user, password, ok := strings.Cut(string(decoded), ":")
	if !ok {
		return unauthorized(c)
	}
	if subtle.ConstantTimeCompare([]byte(user), []byte(h.user)) != 1 {
		return unauthorized(c)
	}
	if !CheckPasswordHash(password, h.passwordHash) {
		return unauthorized(c)
	}
	return c.Next()
}

func unauthorized(c *fiber.Ctx) error {
	c.Set(fiber.HeaderWWWAuthenticate, `Basic realm="refresh", charset="UTF-8"`)
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"success": false,
		"error":   "Unauthorized",
	})
}

// CheckPasswordHash compares a plaintext password against a bcrypt hash.
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// ForceRefresh re-fetches all sources immediately.
func (h *handlers) ForceRefresh(c *fiber.Ctx) error {
	if err := h.store.Refresh(c.Context()); err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Sources refreshed",
	})
}
