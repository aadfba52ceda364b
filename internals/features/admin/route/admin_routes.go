// internals/features/admin/route/admin_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"elevencentral_backend/internals/constants"
	dashboardController "elevencentral_backend/internals/features/admin/dashboard/controller"
	devActionsController "elevencentral_backend/internals/features/admin/devactions/controller"
	"elevencentral_backend/internals/middlewares/auth"
)

// AdminRoutes mounts /api/admin and /api/dev-actions, both admin-only.
func AdminRoutes(api fiber.Router, db *gorm.DB) {
	dashboardCtl := dashboardController.NewDashboardController(db)
	devActionsCtl := devActionsController.NewDevActionsController(db)

	adminGuard := auth.OnlyRolesSlice(
		constants.RoleErrorAdmin("the admin area"),
		constants.AdminAndAbove,
	)

	admin := api.Group("/admin", adminGuard)
	admin.Get("/dashboard", dashboardCtl.Overview)

	api.Post("/dev-actions", adminGuard, devActionsCtl.Dispatch)
}
