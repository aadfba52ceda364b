package controller

import (
	"fmt"
	"io"
	"net/http/httptest"
	"strings"
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

	model "elevencentral_backend/internals/features/schedule/appointments/model"
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
		&model.AppointmentModel{},
	))
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		_ = sqlDB.Close()
	})

	app := fiber.New(fiber.Config{ErrorHandler: helper.ErrorHandler})
	ctl := NewAppointmentController(db)
	app.Post("/appointments", ctl.Create)
	app.Get("/appointments", ctl.List)
	app.Get("/appointments/:id", ctl.GetByID)
	app.Put("/appointments/:id", ctl.Update)
	app.Patch("/appointments/:id/status", ctl.ChangeStatus)
	app.Delete("/appointments/:id", ctl.Delete)
	return app, db
}

func makeStaff(t *testing.T, db *gorm.DB, name string) *userModel.UserModel {
	t.Helper()
	u := &userModel.UserModel{
		UserFullName: name,
		UserEmail:    strings.ToLower(strings.ReplaceAll(name, " ", ".")) + "@11central.test",
		UserRole:     "staff",
		UserIsActive: true,
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string) (int, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var parsed map[string]any
	require.NoError(t, sonic.Unmarshal(raw, &parsed))
	return resp.StatusCode, parsed
}

func TestCreateAppointment(t *testing.T) {
	app, db := newTestApp(t)
	staff := makeStaff(t, db, "Ana Diaz")

	starts := time.Date(2026, 9, 14, 18, 0, 0, 0, time.UTC)
	body := fmt.Sprintf(`{
		"appointment_staff_user_id": %q,
		"appointment_title": "Floor walkthrough",
		"appointment_location": "Main floor",
		"appointment_starts_at": %q,
		"appointment_ends_at": %q
	}`, staff.UserID, starts.Format(time.RFC3339), starts.Add(time.Hour).Format(time.RFC3339))

	code, resp := doJSON(t, app, "POST", "/appointments", body)
	require.Equal(t, fiber.StatusCreated, code)
	data := resp["data"].(map[string]any)
	assert.Equal(t, "scheduled", data["appointment_status"])
	assert.Equal(t, "Floor walkthrough", data["appointment_title"])
}

func TestCreateAppointmentRejectsInvertedTimes(t *testing.T) {
	app, db := newTestApp(t)
	staff := makeStaff(t, db, "Ben Ortiz")

	starts := time.Date(2026, 9, 14, 18, 0, 0, 0, time.UTC)
	body := fmt.Sprintf(`{
		"appointment_staff_user_id": %q,
		"appointment_title": "Backwards",
		"appointment_starts_at": %q,
		"appointment_ends_at": %q
	}`, staff.UserID, starts.Format(time.RFC3339), starts.Add(-time.Hour).Format(time.RFC3339))

	code, resp := doJSON(t, app, "POST", "/appointments", body)
	assert.Equal(t, fiber.StatusBadRequest, code)
	assert.Equal(t, false, resp["success"])
}

func TestCreateAppointmentUnknownStaff(t *testing.T) {
	app, _ := newTestApp(t)

	starts := time.Now().Add(24 * time.Hour).UTC()
	body := fmt.Sprintf(`{
		"appointment_staff_user_id": %q,
		"appointment_title": "Ghost shift",
		"appointment_starts_at": %q,
		"appointment_ends_at": %q
	}`, uuid.New(), starts.Format(time.RFC3339), starts.Add(time.Hour).Format(time.RFC3339))

	code, resp := doJSON(t, app, "POST", "/appointments", body)
	assert.Equal(t, fiber.StatusNotFound, code)
	errBody := resp["error"].(map[string]any)
	assert.Equal(t, "USER_NOT_FOUND", errBody["code"])
}

func TestListAppointmentsByDay(t *testing.T) {
	app, db := newTestApp(t)
	staff := makeStaff(t, db, "Cara Lee")

	day := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
	for _, offset := range []time.Duration{10 * time.Hour, 20 * time.Hour, 40 * time.Hour} {
		a := &model.AppointmentModel{
			AppointmentStaffUserID: staff.UserID,
			AppointmentTitle:       "Shift",
			AppointmentStartsAt:    day.Add(offset),
			AppointmentEndsAt:      day.Add(offset + time.Hour),
		}
		require.NoError(t, db.Create(a).Error)
	}

	code, resp := doJSON(t, app, "GET", "/appointments?date=2026-09-14", "")
	require.Equal(t, fiber.StatusOK, code)
	data := resp["data"].([]any)
	assert.Len(t, data, 2)
}

func TestAppointmentStatusIsTerminal(t *testing.T) {
	app, db := newTestApp(t)
	staff := makeStaff(t, db, "Dan Cho")

	a := &model.AppointmentModel{
		AppointmentStaffUserID: staff.UserID,
		AppointmentTitle:       "Tasting",
		AppointmentStartsAt:    time.Now().Add(time.Hour),
		AppointmentEndsAt:      time.Now().Add(2 * time.Hour),
	}
	require.NoError(t, db.Create(a).Error)

	code, _ := doJSON(t, app, "PATCH", "/appointments/"+a.AppointmentID.String()+"/status",
		`{"status":"completed"}`)
	require.Equal(t, fiber.StatusOK, code)

	code, resp := doJSON(t, app, "PATCH", "/appointments/"+a.AppointmentID.String()+"/status",
		`{"status":"cancelled"}`)
	assert.Equal(t, fiber.StatusBadRequest, code)
	assert.Equal(t, false, resp["success"])
}

func TestDeleteAppointmentIsSoft(t *testing.T) {
	app, db := newTestApp(t)
	staff := makeStaff(t, db, "Eva Kim")

	a := &model.AppointmentModel{
		AppointmentStaffUserID: staff.UserID,
		AppointmentTitle:       "One on one",
		AppointmentStartsAt:    time.Now().Add(time.Hour),
		AppointmentEndsAt:      time.Now().Add(2 * time.Hour),
	}
	require.NoError(t, db.Create(a).Error)

	code, _ := doJSON(t, app, "DELETE", "/appointments/"+a.AppointmentID.String(), "")
	require.Equal(t, fiber.StatusOK, code)

	code, _ = doJSON(t, app, "GET", "/appointments/"+a.AppointmentID.String(), "")
	assert.Equal(t, fiber.StatusNotFound, code)

	// the row survives for audit
	var n int64
	require.NoError(t, db.Model(&model.AppointmentModel{}).
		Where("appointment_id = ?", a.AppointmentID).Count(&n).Error)
	assert.EqualValues(t, 1, n)
}
