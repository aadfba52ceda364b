// internals/features/gratuity/reports/controller/gratuity_report_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"elevencentral_backend/internals/apierr"
	dto "elevencentral_backend/internals/features/gratuity/reports/dto"
	model "elevencentral_backend/internals/features/gratuity/reports/model"
	userModel "elevencentral_backend/internals/features/users/user/model"
	helper "elevencentral_backend/internals/helpers"
)

type GratuityReportController struct {
	DB *gorm.DB
}

var validate = validator.New()

func NewGratuityReportController(db *gorm.DB) *GratuityReportController {
	return &GratuityReportController{DB: db}
}

// =========================================================
// CREATE - POST /api/gratuity/reports
// One report per staff member per shift date.
// =========================================================
func (h *GratuityReportController) Create(c *fiber.Ctx) error {
	var req dto.GratuityCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apierr.Validation("invalid payload")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(err)
	}

	var staff userModel.UserModel
	if err := h.DB.First(&staff, "user_id = ?", req.GratuityStaffUserID).Error; err != nil {
		return apierr.StoreNotFound(err, "USER_NOT_FOUND", "staff user not found")
	}

	m := req.ToModel()

	var existing int64
	if err := h.DB.Model(&model.GratuityReportModel{}).
		Where("gratuity_staff_user_id = ? AND gratuity_shift_date = ?",
			m.GratuityStaffUserID, m.GratuityShiftDate).
		Count(&existing).Error; err != nil {
		return apierr.Store(err)
	}
	if existing > 0 {
		return &apierr.Error{
			Kind:    apierr.KindValidation,
			Status:  fiber.StatusConflict,
			Code:    "GRATUITY_DUPLICATE",
			Message: "a report for this staff member and shift date already exists",
		}
	}

	if err := h.DB.Create(m).Error; err != nil {
		return apierr.Store(err)
	}
	return helper.JsonCreated(c, "gratuity report created", dto.ToGratuityResponse(m))
}

// =========================================================
// LIST - GET /api/gratuity/reports?staff_user_id=&from=&to=
// from/to are shift dates (YYYY-MM-DD), inclusive.
// =========================================================
func (h *GratuityReportController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&model.GratuityReportModel{})

	if sid := c.Query("staff_user_id"); sid != "" {
		id, aerr := helper.ParseUUIDParam(sid, "staff user id")
		if aerr != nil {
			return aerr
		}
		q = q.Where("gratuity_staff_user_id = ?", id)
	}
	q, aerr := applyDateRange(c, q)
	if aerr != nil {
		return aerr
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return apierr.Store(err)
	}

	var rows []model.GratuityReportModel
	if err := q.Order("gratuity_shift_date DESC, gratuity_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return apierr.Store(err)
	}

	return helper.JsonList(c, "ok",
		dto.ToGratuityResponses(rows),
		helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// =========================================================
// SUMMARY - GET /api/gratuity/reports/summary?staff_user_id=&from=&to=
// Per-staff totals over the range, highest earners first.
// =========================================================
func (h *GratuityReportController) Summary(c *fiber.Ctx) error {
	q := h.DB.Model(&model.GratuityReportModel{})

	if sid := c.Query("staff_user_id"); sid != "" {
		id, aerr := helper.ParseUUIDParam(sid, "staff user id")
		if aerr != nil {
			return aerr
		}
		q = q.Where("gratuity_staff_user_id = ?", id)
	}
	q, aerr := applyDateRange(c, q)
	if aerr != nil {
		return aerr
	}

	var summaries []dto.GratuitySummary
	if err := q.
		Select("gratuity_staff_user_id AS staff_user_id, COUNT(*) AS report_count, COALESCE(SUM(gratuity_amount_cents), 0) AS total_cents").
		Group("gratuity_staff_user_id").
		Order("total_cents DESC").
		Scan(&summaries).Error; err != nil {
		return apierr.Store(err)
	}
	if summaries == nil {
		summaries = []dto.GratuitySummary{}
	}

	return helper.JsonOK(c, "ok", summaries)
}

// =========================================================
// DETAIL - GET /api/gratuity/reports/:id
// =========================================================
func (h *GratuityReportController) GetByID(c *fiber.Ctx) error {
	id, aerr := helper.ParseUUIDParam(c.Params("id"), "gratuity report id")
	if aerr != nil {
		return aerr
	}
	var m model.GratuityReportModel
	if err := h.DB.First(&m, "gratuity_id = ?", id).Error; err != nil {
		return apierr.StoreNotFound(err, "GRATUITY_NOT_FOUND", "gratuity report not found")
	}
	return helper.JsonOK(c, "ok", dto.ToGratuityResponse(&m))
}

// =========================================================
// UPDATE - PUT /api/gratuity/reports/:id
// =========================================================
func (h *GratuityReportController) Update(c *fiber.Ctx) error {
	id, aerr := helper.ParseUUIDParam(c.Params("id"), "gratuity report id")
	if aerr != nil {
		return aerr
	}

	var req dto.GratuityUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apierr.Validation("invalid payload")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(err)
	}

	var m model.GratuityReportModel
	if err := h.DB.First(&m, "gratuity_id = ?", id).Error; err != nil {
		return apierr.StoreNotFound(err, "GRATUITY_NOT_FOUND", "gratuity report not found")
	}

	req.Apply(&m)
	if err := h.DB.Save(&m).Error; err != nil {
		return apierr.Store(err)
	}
	return helper.JsonUpdated(c, "gratuity report updated", dto.ToGratuityResponse(&m))
}

// =========================================================
// DELETE - DELETE /api/gratuity/reports/:id
// =========================================================
func (h *GratuityReportController) Delete(c *fiber.Ctx) error {
	id, aerr := helper.ParseUUIDParam(c.Params("id"), "gratuity report id")
	if aerr != nil {
		return aerr
	}

	var m model.GratuityReportModel
	if err := h.DB.First(&m, "gratuity_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierr.NotFound("GRATUITY_NOT_FOUND", "gratuity report not found")
		}
		return apierr.Store(err)
	}

	if err := h.DB.Delete(&m).Error; err != nil {
		return apierr.Store(err)
	}
	return helper.JsonDeleted(c, "gratuity report deleted", dto.ToGratuityResponse(&m))
}

func applyDateRange(c *fiber.Ctx, q *gorm.DB) (*gorm.DB, error) {
	if from := c.Query("from"); from != "" {
		t, err := time.Parse("2006-01-02", from)
		if err != nil {
			return nil, apierr.Validation("from must be YYYY-MM-DD")
		}
		q = q.Where("gratuity_shift_date >= ?", t)
	}
	if to := c.Query("to"); to != "" {
		t, err := time.Parse("2006-01-02", to)
		if err != nil {
			return nil, apierr.Validation("to must be YYYY-MM-DD")
		}
		q = q.Where("gratuity_shift_date <= ?", t)
	}
	return q, nil
}
