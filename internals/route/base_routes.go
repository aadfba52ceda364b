// internals/route/base_routes.go
package route

import (
	"time"

	"github.com/gofiber/fiber/v2"

	database "elevencentral_backend/internals/databases"
	helper "elevencentral_backend/internals/helpers"
)

var startedAt = time.Now()

// BaseRoutes mounts the unauthenticated service endpoints.
func BaseRoutes(app *fiber.App) {
	app.Get("/", func(c *fiber.Ctx) error {
		return helper.JsonOK(c, "ok", fiber.Map{
			"service": "elevencentral-backend",
		})
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		dbStatus := "up"
		if err := database.Ping(); err != nil {
			dbStatus = "down"
		}
		return helper.JsonOK(c, "ok", fiber.Map{
			"uptime":   time.Since(startedAt).Round(time.Second).String(),
			"database": dbStatus,
		})
	})
}
