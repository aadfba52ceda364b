// internals/route/index.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	adminRoute "elevencentral_backend/internals/features/admin/route"
	connectRoute "elevencentral_backend/internals/features/connect/route"
	"elevencentral_backend/internals/features/connect/hub"
	gratuityRoute "elevencentral_backend/internals/features/gratuity/route"
	scheduleRoute "elevencentral_backend/internals/features/schedule/route"
	universityRoute "elevencentral_backend/internals/features/university/route"
	authRoute "elevencentral_backend/internals/features/users/auth/route"
	authMiddleware "elevencentral_backend/internals/middlewares/auth"
)

// SetupRoutes wires every feature under /api. Auth endpoints stay public;
// everything else requires a valid access token.
func SetupRoutes(app *fiber.App, db *gorm.DB, connectHub *hub.Hub) {
	BaseRoutes(app)
	authRoute.AuthRoutes(app, db)

	api := app.Group("/api", authMiddleware.AuthMiddleware(db))

	universityRoute.UniversityRoutes(api.Group("/university"), db)
	scheduleRoute.ScheduleRoutes(api.Group("/schedule"), db)
	gratuityRoute.GratuityRoutes(api.Group("/gratuity"), db)
	connectRoute.ConnectRoutes(api.Group("/connect"), db, connectHub)
	adminRoute.AdminRoutes(api, db)
}
