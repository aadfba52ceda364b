// internals/features/university/route/university_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"elevencentral_backend/internals/constants"
	contentController "elevencentral_backend/internals/features/university/content/controller"
	courseController "elevencentral_backend/internals/features/university/courses/controller"
	lessonController "elevencentral_backend/internals/features/university/lessons/controller"
	moduleController "elevencentral_backend/internals/features/university/modules/controller"
	programController "elevencentral_backend/internals/features/university/programs/controller"
	"elevencentral_backend/internals/middlewares/auth"
)

// UniversityRoutes mounts /api/university. All staff can read; writes and
// maintenance require manager and above.
func UniversityRoutes(r fiber.Router, db *gorm.DB) {
	programCtl := &programController.ProgramController{DB: db}
	courseCtl := courseController.NewCourseController(db)
	lessonCtl := lessonController.NewLessonController(db)
	moduleCtl := moduleController.NewModuleController(db)
	contentCtl := contentController.NewContentController(db)

	writeGuard := auth.OnlyRolesSlice(
		constants.RoleErrorManager("university content management"),
		constants.ManagerAndAbove,
	)
	adminGuard := auth.OnlyRolesSlice(
		constants.RoleErrorAdmin("university maintenance"),
		constants.AdminAndAbove,
	)

	// /api/university/hierarchy
	r.Get("/hierarchy", contentCtl.Hierarchy)

	// /api/university/programs
	programs := r.Group("/programs")
	programs.Get("/", programCtl.List)
	programs.Get("/:id", programCtl.GetByID)
	programs.Post("/", writeGuard, programCtl.Create)
	programs.Put("/:id", writeGuard, programCtl.Update)
	programs.Patch("/:id/status", writeGuard, programCtl.ChangeStatus)
	programs.Delete("/:id", adminGuard, programCtl.Delete)

	// /api/university/courses
	courses := r.Group("/courses")
	courses.Get("/", courseCtl.List)
	courses.Get("/:id", courseCtl.GetByID)
	courses.Post("/", writeGuard, courseCtl.Create)
	courses.Put("/reorder", writeGuard, courseCtl.Reorder)
	courses.Post("/reassign", writeGuard, courseCtl.Reassign)
	courses.Put("/:id", writeGuard, courseCtl.Update)
	courses.Patch("/:id/status", writeGuard, courseCtl.ChangeStatus)
	courses.Delete("/:id", adminGuard, courseCtl.Delete)

	// /api/university/lessons
	lessons := r.Group("/lessons")
	lessons.Get("/", lessonCtl.List)
	lessons.Get("/:id", lessonCtl.GetByID)
	lessons.Post("/", writeGuard, lessonCtl.Create)
	lessons.Put("/reorder", writeGuard, lessonCtl.Reorder)
	lessons.Post("/reassign", writeGuard, lessonCtl.Reassign)
	lessons.Put("/:id", writeGuard, lessonCtl.Update)
	lessons.Patch("/:id/status", writeGuard, lessonCtl.ChangeStatus)
	lessons.Delete("/:id", adminGuard, lessonCtl.Delete)

	// /api/university/modules
	modules := r.Group("/modules")
	modules.Get("/", moduleCtl.List)
	modules.Get("/:id", moduleCtl.GetByID)
	modules.Post("/", writeGuard, moduleCtl.Create)
	modules.Put("/reorder", writeGuard, moduleCtl.Reorder)
	modules.Post("/reassign", writeGuard, moduleCtl.Reassign)
	modules.Put("/:id", writeGuard, moduleCtl.Update)
	modules.Patch("/:id/status", writeGuard, moduleCtl.ChangeStatus)
	modules.Delete("/:id", adminGuard, moduleCtl.Delete)

	// /api/university/maintenance
	maintenance := r.Group("/maintenance", adminGuard)
	maintenance.Post("/fix-sequences", contentCtl.FixSequences)
	maintenance.Get("/orphans", contentCtl.ListOrphans)
	maintenance.Post("/orphans/delete", contentCtl.DeleteOrphans)
}
