// internals/features/schedule/appointments/controller/appointment_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"elevencentral_backend/internals/apierr"
	dto "elevencentral_backend/internals/features/schedule/appointments/dto"
	model "elevencentral_backend/internals/features/schedule/appointments/model"
	userModel "elevencentral_backend/internals/features/users/user/model"
	helper "elevencentral_backend/internals/helpers"
)

type AppointmentController struct {
	DB *gorm.DB
}

var validate = validator.New()

func NewAppointmentController(db *gorm.DB) *AppointmentController {
	return &AppointmentController{DB: db}
}

// =========================================================
// CREATE - POST /api/schedule/appointments
// =========================================================
func (h *AppointmentController) Create(c *fiber.Ctx) error {
	var req dto.AppointmentCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apierr.Validation("invalid payload")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(err)
	}
	if !req.AppointmentEndsAt.After(req.AppointmentStartsAt) {
		return apierr.ValidationWithDetails("appointment must end after it starts", fiber.Map{
			"starts_at": req.AppointmentStartsAt,
			"ends_at":   req.AppointmentEndsAt,
		})
	}

	var staff userModel.UserModel
	if err := h.DB.First(&staff, "user_id = ?", req.AppointmentStaffUserID).Error; err != nil {
		return apierr.StoreNotFound(err, "USER_NOT_FOUND", "staff user not found")
	}

	m := req.ToModel()
	if err := h.DB.Create(m).Error; err != nil {
		return apierr.Store(err)
	}
	return helper.JsonCreated(c, "appointment created", dto.ToAppointmentResponse(m))
}

// =========================================================
// LIST - GET /api/schedule/appointments?staff_user_id=&date=&from=&to=&status=
// ?date takes a calendar day (YYYY-MM-DD) and wins over from/to.
// =========================================================
func (h *AppointmentController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&model.AppointmentModel{}).
		Where("appointment_deleted_at IS NULL")

	if sid := c.Query("staff_user_id"); sid != "" {
		id, aerr := helper.ParseUUIDParam(sid, "staff user id")
		if aerr != nil {
			return aerr
		}
		q = q.Where("appointment_staff_user_id = ?", id)
	}
	if st := c.Query("status"); st != "" {
		if !model.ValidAppointmentStatus(st) {
			return apierr.Validation("invalid status filter")
		}
		q = q.Where("appointment_status = ?", st)
	}
	if day := c.Query("date"); day != "" {
		start, err := time.Parse("2006-01-02", day)
		if err != nil {
			return apierr.Validation("date must be YYYY-MM-DD")
		}
		q = q.Where("appointment_starts_at >= ? AND appointment_starts_at < ?",
			start, start.AddDate(0, 0, 1))
	} else {
		if from := c.Query("from"); from != "" {
			t, err := time.Parse(time.RFC3339, from)
			if err != nil {
				return apierr.Validation("from must be RFC3339")
			}
			q = q.Where("appointment_starts_at >= ?", t)
		}
		if to := c.Query("to"); to != "" {
			t, err := time.Parse(time.RFC3339, to)
			if err != nil {
				return apierr.Validation("to must be RFC3339")
			}
			q = q.Where("appointment_starts_at < ?", t)
		}
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return apierr.Store(err)
	}

	var rows []model.AppointmentModel
	if err := q.Order("appointment_starts_at ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return apierr.Store(err)
	}

	return helper.JsonList(c, "ok",
		dto.ToAppointmentResponses(rows),
		helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// =========================================================
// DETAIL - GET /api/schedule/appointments/:id
// =========================================================
func (h *AppointmentController) GetByID(c *fiber.Ctx) error {
	id, aerr := helper.ParseUUIDParam(c.Params("id"), "appointment id")
	if aerr != nil {
		return aerr
	}
	var m model.AppointmentModel
	if err := h.DB.First(&m, "appointment_id = ? AND appointment_deleted_at IS NULL", id).Error; err != nil {
		return apierr.StoreNotFound(err, "APPOINTMENT_NOT_FOUND", "appointment not found")
	}
	return helper.JsonOK(c, "ok", dto.ToAppointmentResponse(&m))
}

// =========================================================
// UPDATE - PUT /api/schedule/appointments/:id
// =========================================================
func (h *AppointmentController) Update(c *fiber.Ctx) error {
	id, aerr := helper.ParseUUIDParam(c.Params("id"), "appointment id")
	if aerr != nil {
		return aerr
	}

	var req dto.AppointmentUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apierr.Validation("invalid payload")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(err)
	}

	var m model.AppointmentModel
	if err := h.DB.First(&m, "appointment_id = ? AND appointment_deleted_at IS NULL", id).Error; err != nil {
		return apierr.StoreNotFound(err, "APPOINTMENT_NOT_FOUND", "appointment not found")
	}

	req.Apply(&m)
	if !m.AppointmentEndsAt.After(m.AppointmentStartsAt) {
		return apierr.ValidationWithDetails("appointment must end after it starts", fiber.Map{
			"starts_at": m.AppointmentStartsAt,
			"ends_at":   m.AppointmentEndsAt,
		})
	}
	if err := h.DB.Save(&m).Error; err != nil {
		return apierr.Store(err)
	}
	return helper.JsonUpdated(c, "appointment updated", dto.ToAppointmentResponse(&m))
}

// =========================================================
// STATUS - PATCH /api/schedule/appointments/:id/status
// Completed and cancelled are terminal.
// =========================================================
func (h *AppointmentController) ChangeStatus(c *fiber.Ctx) error {
	id, aerr := helper.ParseUUIDParam(c.Params("id"), "appointment id")
	if aerr != nil {
		return aerr
	}

	var req dto.AppointmentStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apierr.Validation("invalid payload")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(err)
	}

	var m model.AppointmentModel
	if err := h.DB.First(&m, "appointment_id = ? AND appointment_deleted_at IS NULL", id).Error; err != nil {
		return apierr.StoreNotFound(err, "APPOINTMENT_NOT_FOUND", "appointment not found")
	}

	if m.AppointmentStatus != model.AppointmentScheduled && req.Status != m.AppointmentStatus {
		return apierr.ValidationWithDetails("status transition not permitted", fiber.Map{
			"from": m.AppointmentStatus,
			"to":   req.Status,
		})
	}

	if err := h.DB.Model(&m).Update("appointment_status", req.Status).Error; err != nil {
		return apierr.Store(err)
	}
	m.AppointmentStatus = req.Status
	return helper.JsonUpdated(c, "appointment status changed", dto.ToAppointmentResponse(&m))
}

// =========================================================
// DELETE - DELETE /api/schedule/appointments/:id (soft)
// =========================================================
func (h *AppointmentController) Delete(c *fiber.Ctx) error {
	id, aerr := helper.ParseUUIDParam(c.Params("id"), "appointment id")
	if aerr != nil {
		return aerr
	}

	var m model.AppointmentModel
	if err := h.DB.First(&m, "appointment_id = ? AND appointment_deleted_at IS NULL", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierr.NotFound("APPOINTMENT_NOT_FOUND", "appointment not found")
		}
		return apierr.Store(err)
	}

	now := time.Now()
	if err := h.DB.Model(&m).Update("appointment_deleted_at", now).Error; err != nil {
		return apierr.Store(err)
	}
	return helper.JsonDeleted(c, "appointment deleted", dto.ToAppointmentResponse(&m))
}
