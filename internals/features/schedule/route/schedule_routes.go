// internals/features/schedule/route/schedule_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"elevencentral_backend/internals/constants"
	appointmentController "elevencentral_backend/internals/features/schedule/appointments/controller"
	"elevencentral_backend/internals/middlewares/auth"
)

// ScheduleRoutes mounts /api/schedule. Staff can view the calendar;
// managing appointments is a manager action.
func ScheduleRoutes(r fiber.Router, db *gorm.DB) {
	appointmentCtl := appointmentController.NewAppointmentController(db)

	writeGuard := auth.OnlyRolesSlice(
		constants.RoleErrorManager("schedule management"),
		constants.ManagerAndAbove,
	)

	appointments := r.Group("/appointments")
	appointments.Get("/", appointmentCtl.List)
	appointments.Get("/:id", appointmentCtl.GetByID)
	appointments.Post("/", writeGuard, appointmentCtl.Create)
	appointments.Put("/:id", writeGuard, appointmentCtl.Update)
	appointments.Patch("/:id/status", writeGuard, appointmentCtl.ChangeStatus)
	appointments.Delete("/:id", writeGuard, appointmentCtl.Delete)
}
