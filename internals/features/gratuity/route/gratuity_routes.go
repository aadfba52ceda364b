// internals/features/gratuity/route/gratuity_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"elevencentral_backend/internals/constants"
	reportController "elevencentral_backend/internals/features/gratuity/reports/controller"
	"elevencentral_backend/internals/middlewares/auth"
)

// GratuityRoutes mounts /api/gratuity. Staff submit and read their reports;
// the cross-staff summary is a manager view.
func GratuityRoutes(r fiber.Router, db *gorm.DB) {
	reportCtl := reportController.NewGratuityReportController(db)

	managerGuard := auth.OnlyRolesSlice(
		constants.RoleErrorManager("gratuity summaries"),
		constants.ManagerAndAbove,
	)

	reports := r.Group("/reports")
	reports.Get("/summary", managerGuard, reportCtl.Summary)
	reports.Get("/", reportCtl.List)
	reports.Get("/:id", reportCtl.GetByID)
	reports.Post("/", reportCtl.Create)
	reports.Put("/:id", reportCtl.Update)
	reports.Delete("/:id", managerGuard, reportCtl.Delete)
}
