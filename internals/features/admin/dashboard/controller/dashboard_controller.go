// internals/features/admin/dashboard/controller/dashboard_controller.go
package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"elevencentral_backend/internals/apierr"
	channelModel "elevencentral_backend/internals/features/connect/channels/model"
	messageModel "elevencentral_backend/internals/features/connect/messages/model"
	gratuityModel "elevencentral_backend/internals/features/gratuity/reports/model"
	appointmentModel "elevencentral_backend/internals/features/schedule/appointments/model"
	courseModel "elevencentral_backend/internals/features/university/courses/model"
	lessonModel "elevencentral_backend/internals/features/university/lessons/model"
	moduleModel "elevencentral_backend/internals/features/university/modules/model"
	programModel "elevencentral_backend/internals/features/university/programs/model"
	userModel "elevencentral_backend/internals/features/users/user/model"
	helper "elevencentral_backend/internals/helpers"
)

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

// =========================================================
// OVERVIEW - GET /api/admin/dashboard
// Row counts per area for the admin landing page. University counts
// are broken down by status.
// =========================================================
func (h *DashboardController) Overview(c *fiber.Ctx) error {
	counts := fiber.Map{}

	totals := []struct {
		key   string
		model any
	}{
		{"users", &userModel.UserModel{}},
		{"appointments", &appointmentModel.AppointmentModel{}},
		{"gratuity_reports", &gratuityModel.GratuityReportModel{}},
		{"channels", &channelModel.ChannelModel{}},
		{"messages", &messageModel.MessageModel{}},
	}
	for _, t := range totals {
		var n int64
		if err := h.DB.Model(t.model).Count(&n).Error; err != nil {
			return apierr.Store(err)
		}
		counts[t.key] = n
	}

	byStatus := []struct {
		key       string
		model     any
		statusCol string
	}{
		{"programs", &programModel.ProgramModel{}, "program_status"},
		{"courses", &courseModel.CourseModel{}, "course_status"},
		{"lessons", &lessonModel.LessonModel{}, "lesson_status"},
		{"modules", &moduleModel.ModuleModel{}, "module_status"},
	}
	for _, t := range byStatus {
		breakdown, err := h.countByStatus(t.model, t.statusCol)
		if err != nil {
			return err
		}
		counts[t.key] = breakdown
	}

	// midnight in the venue's local day, not UTC
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	var todayCount int64
	if err := h.DB.Model(&appointmentModel.AppointmentModel{}).
		Where("appointment_deleted_at IS NULL").
		Where("appointment_starts_at >= ? AND appointment_starts_at < ?",
			today, today.AddDate(0, 0, 1)).
		Count(&todayCount).Error; err != nil {
		return apierr.Store(err)
	}
	counts["appointments_today"] = todayCount

	return helper.JsonOK(c, "ok", counts)
}

func (h *DashboardController) countByStatus(m any, statusCol string) (fiber.Map, error) {
	type row struct {
		Status string
		N      int64
	}
	var rows []row
	if err := h.DB.Model(m).
		Select(statusCol + " AS status, COUNT(*) AS n").
		Group(statusCol).
		Scan(&rows).Error; err != nil {
		return nil, apierr.Store(err)
	}

	breakdown := fiber.Map{"total": int64(0)}
	var total int64
	for _, r := range rows {
		breakdown[r.Status] = r.N
		total += r.N
	}
	breakdown["total"] = total
	return breakdown, nil
}
