package controller

import (
	"fmt"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	channelModel "elevencentral_backend/internals/features/connect/channels/model"
	messageModel "elevencentral_backend/internals/features/connect/messages/model"
	gratuityModel "elevencentral_backend/internals/features/gratuity/reports/model"
	appointmentModel "elevencentral_backend/internals/features/schedule/appointments/model"
	courseModel "elevencentral_backend/internals/features/university/courses/model"
	lessonModel "elevencentral_backend/internals/features/university/lessons/model"
	moduleModel "elevencentral_backend/internals/features/university/modules/model"
	programModel "elevencentral_backend/internals/features/university/programs/model"
	"elevencentral_backend/internals/features/university/status"
	userModel "elevencentral_backend/internals/features/users/user/model"
	helper "elevencentral_backend/internals/helpers"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&userModel.UserModel{},
		&programModel.ProgramModel{},
		&courseModel.CourseModel{},
		&lessonModel.LessonModel{},
		&moduleModel.ModuleModel{},
		&appointmentModel.AppointmentModel{},
		&gratuityModel.GratuityReportModel{},
		&channelModel.ChannelModel{},
		&messageModel.MessageModel{},
	))
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		_ = sqlDB.Close()
	})

	app := fiber.New(fiber.Config{ErrorHandler: helper.ErrorHandler})
	ctl := NewDashboardController(db)
	app.Get("/dashboard", ctl.Overview)
	return app, db
}

func getOverview(t *testing.T, app *fiber.App) map[string]any {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", "/dashboard", nil), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var parsed map[string]any
	require.NoError(t, sonic.Unmarshal(raw, &parsed))
	return parsed["data"].(map[string]any)
}

func makeAppointment(t *testing.T, db *gorm.DB, staffID uuid.UUID, startsAt time.Time) *appointmentModel.AppointmentModel {
	t.Helper()
	a := &appointmentModel.AppointmentModel{
		AppointmentStaffUserID: staffID,
		AppointmentTitle:       "Shift",
		AppointmentStartsAt:    startsAt,
		AppointmentEndsAt:      startsAt.Add(time.Hour),
	}
	require.NoError(t, db.Create(a).Error)
	return a
}

func TestOverviewCountsByStatus(t *testing.T) {
	app, db := newTestApp(t)

	for _, st := range []status.Status{status.Draft, status.Published, status.Published} {
		p := &programModel.ProgramModel{ProgramTitle: "P", ProgramStatus: st}
		require.NoError(t, db.Create(p).Error)
	}

	data := getOverview(t, app)
	programs := data["programs"].(map[string]any)
	assert.EqualValues(t, 3, programs["total"])
	assert.EqualValues(t, 1, programs["draft"])
	assert.EqualValues(t, 2, programs["published"])

	courses := data["courses"].(map[string]any)
	assert.EqualValues(t, 0, courses["total"])
}

// Counting "today" must use the local calendar day. An appointment just
// after local midnight belongs to today even when the UTC date differs.
func TestOverviewAppointmentsTodayUsesLocalDay(t *testing.T) {
	app, db := newTestApp(t)

	staff := &userModel.UserModel{
		UserFullName: "Ana Diaz",
		UserEmail:    "ana.diaz@11central.test",
		UserRole:     "staff",
		UserIsActive: true,
	}
	require.NoError(t, db.Create(staff).Error)

	now := time.Now()
	localMidnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	makeAppointment(t, db, staff.UserID, localMidnight.Add(30*time.Minute))
	makeAppointment(t, db, staff.UserID, localMidnight.Add(-30*time.Minute))
	deleted := makeAppointment(t, db, staff.UserID, localMidnight.Add(2*time.Hour))
	nowTs := time.Now()
	require.NoError(t, db.Model(deleted).Update("appointment_deleted_at", nowTs).Error)

	data := getOverview(t, app)
	assert.EqualValues(t, 1, data["appointments_today"])
	assert.EqualValues(t, 3, data["appointments"])
}
