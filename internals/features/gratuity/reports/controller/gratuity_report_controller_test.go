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

	model "elevencentral_backend/internals/features/gratuity/reports/model"
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
		&model.GratuityReportModel{},
	))
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		_ = sqlDB.Close()
	})

	app := fiber.New(fiber.Config{ErrorHandler: helper.ErrorHandler})
	ctl := NewGratuityReportController(db)
	app.Get("/reports/summary", ctl.Summary)
	app.Get("/reports", ctl.List)
	app.Get("/reports/:id", ctl.GetByID)
	app.Post("/reports", ctl.Create)
	app.Put("/reports/:id", ctl.Update)
	app.Delete("/reports/:id", ctl.Delete)
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

func makeReport(t *testing.T, db *gorm.DB, staffID uuid.UUID, day string, cents int64) *model.GratuityReportModel {
	t.Helper()
	d, err := time.Parse("2006-01-02", day)
	require.NoError(t, err)
	m := &model.GratuityReportModel{
		GratuityStaffUserID: staffID,
		GratuityShiftDate:   d,
		GratuityAmountCents: cents,
	}
	require.NoError(t, db.Create(m).Error)
	return m
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

func TestCreateGratuityReport(t *testing.T) {
	app, db := newTestApp(t)
	staff := makeStaff(t, db, "Ana Diaz")

	body := fmt.Sprintf(`{
		"gratuity_staff_user_id": %q,
		"gratuity_shift_date": "2026-08-28",
		"gratuity_amount_cents": 18550,
		"gratuity_breakdown": {"cash": 5550, "card": 13000}
	}`, staff.UserID)

	code, resp := doJSON(t, app, "POST", "/reports", body)
	require.Equal(t, fiber.StatusCreated, code)
	data := resp["data"].(map[string]any)
	assert.Equal(t, "2026-08-28", data["gratuity_shift_date"])
	assert.EqualValues(t, 18550, data["gratuity_amount_cents"])
}

func TestCreateGratuityReportRejectsDuplicateShift(t *testing.T) {
	app, db := newTestApp(t)
	staff := makeStaff(t, db, "Ben Ortiz")
	makeReport(t, db, staff.UserID, "2026-08-28", 10000)

	body := fmt.Sprintf(`{
		"gratuity_staff_user_id": %q,
		"gratuity_shift_date": "2026-08-28",
		"gratuity_amount_cents": 500
	}`, staff.UserID)

	code, resp := doJSON(t, app, "POST", "/reports", body)
	assert.Equal(t, fiber.StatusConflict, code)
	errBody := resp["error"].(map[string]any)
	assert.Equal(t, "GRATUITY_DUPLICATE", errBody["code"])

	// the original report is untouched
	var n int64
	require.NoError(t, db.Model(&model.GratuityReportModel{}).
		Where("gratuity_staff_user_id = ?", staff.UserID).Count(&n).Error)
	assert.EqualValues(t, 1, n)
}

func TestGratuitySummaryTotalsAndOrdering(t *testing.T) {
	app, db := newTestApp(t)
	high := makeStaff(t, db, "Cara Lee")
	low := makeStaff(t, db, "Dan Cho")

	makeReport(t, db, high.UserID, "2026-08-25", 30000)
	makeReport(t, db, high.UserID, "2026-08-26", 25000)
	makeReport(t, db, low.UserID, "2026-08-25", 12000)
	// outside the queried range, must not count
	makeReport(t, db, low.UserID, "2026-07-01", 99999)

	code, resp := doJSON(t, app, "GET", "/reports/summary?from=2026-08-01&to=2026-08-31", "")
	require.Equal(t, fiber.StatusOK, code)

	data := resp["data"].([]any)
	require.Len(t, data, 2)

	first := data[0].(map[string]any)
	second := data[1].(map[string]any)
	assert.Equal(t, high.UserID.String(), first["staff_user_id"])
	assert.EqualValues(t, 55000, first["total_cents"])
	assert.EqualValues(t, 2, first["report_count"])
	assert.Equal(t, low.UserID.String(), second["staff_user_id"])
	assert.EqualValues(t, 12000, second["total_cents"])
}

func TestGratuitySummaryEmptyRange(t *testing.T) {
	app, _ := newTestApp(t)

	code, resp := doJSON(t, app, "GET", "/reports/summary?from=2030-01-01", "")
	require.Equal(t, fiber.StatusOK, code)
	assert.Len(t, resp["data"].([]any), 0)
}

func TestUpdateGratuityReportAmount(t *testing.T) {
	app, db := newTestApp(t)
	staff := makeStaff(t, db, "Eva Kim")
	m := makeReport(t, db, staff.UserID, "2026-08-20", 7000)

	code, resp := doJSON(t, app, "PUT", "/reports/"+m.GratuityID.String(),
		`{"gratuity_amount_cents": 8250}`)
	require.Equal(t, fiber.StatusOK, code)
	data := resp["data"].(map[string]any)
	assert.EqualValues(t, 8250, data["gratuity_amount_cents"])
}
