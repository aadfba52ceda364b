// internals/features/university/programs/controller/program_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"elevencentral_backend/internals/apierr"
	dto "elevencentral_backend/internals/features/university/programs/dto"
	model "elevencentral_backend/internals/features/university/programs/model"
	"elevencentral_backend/internals/features/university/status"
	helper "elevencentral_backend/internals/helpers"
)

type ProgramController struct {
	DB *gorm.DB
}

var validate = validator.New()

// =========================================================
// CREATE - POST /api/university/programs
// =========================================================
func (h *ProgramController) Create(c *fiber.Ctx) error {
	var req dto.ProgramCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apierr.Validation("invalid payload")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(err)
	}

	m := req.ToModel()
	if err := h.DB.Create(m).Error; err != nil {
		return apierr.Store(err)
	}
	return helper.JsonCreated(c, "program created", dto.ToProgramResponse(m))
}

// =========================================================
// LIST - GET /api/university/programs?status=&page=&per_page=
// =========================================================
func (h *ProgramController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&model.ProgramModel{})
	if st := c.Query("status"); st != "" {
		if !status.Status(st).Valid() {
			return apierr.Validation("invalid status filter")
		}
		q = q.Where("program_status = ?", st)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return apierr.Store(err)
	}

	var programs []model.ProgramModel
	if err := q.Order("program_created_at ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&programs).Error; err != nil {
		return apierr.Store(err)
	}

	return helper.JsonList(c, "ok",
		dto.ToProgramResponses(programs),
		helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// =========================================================
// DETAIL - GET /api/university/programs/:id
// =========================================================
func (h *ProgramController) GetByID(c *fiber.Ctx) error {
	id, aerr := helper.ParseUUIDParam(c.Params("id"), "program id")
	if aerr != nil {
		return aerr
	}
	var m model.ProgramModel
	if err := h.DB.First(&m, "program_id = ?", id).Error; err != nil {
		return apierr.StoreNotFound(err, "PROGRAM_NOT_FOUND", "program not found")
	}
	return helper.JsonOK(c, "ok", dto.ToProgramResponse(&m))
}

// =========================================================
// UPDATE - PUT /api/university/programs/:id
// =========================================================
func (h *ProgramController) Update(c *fiber.Ctx) error {
	id, aerr := helper.ParseUUIDParam(c.Params("id"), "program id")
	if aerr != nil {
		return aerr
	}

	var req dto.ProgramUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apierr.Validation("invalid payload")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(err)
	}

	var m model.ProgramModel
	if err := h.DB.First(&m, "program_id = ?", id).Error; err != nil {
		return apierr.StoreNotFound(err, "PROGRAM_NOT_FOUND", "program not found")
	}

	req.Apply(&m)
	if err := h.DB.Save(&m).Error; err != nil {
		return apierr.Store(err)
	}
	return helper.JsonUpdated(c, "program updated", dto.ToProgramResponse(&m))
}

// =========================================================
// STATUS - PATCH /api/university/programs/:id/status
// Enforces draft→published→archived plus archived→published (restore).
// =========================================================
func (h *ProgramController) ChangeStatus(c *fiber.Ctx) error {
	id, aerr := helper.ParseUUIDParam(c.Params("id"), "program id")
	if aerr != nil {
		return aerr
	}

	var req dto.StatusChangeRequest
	if err := c.BodyParser(&req); err != nil {
		return apierr.Validation("invalid payload")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(err)
	}

	var m model.ProgramModel
	if err := h.DB.First(&m, "program_id = ?", id).Error; err != nil {
		return apierr.StoreNotFound(err, "PROGRAM_NOT_FOUND", "program not found")
	}

	next := status.Status(req.Status)
	if !status.CanTransition(m.ProgramStatus, next) {
		return apierr.ValidationWithDetails("status transition not permitted", fiber.Map{
			"from": m.ProgramStatus,
			"to":   next,
		})
	}

	if err := h.DB.Model(&m).Update("program_status", next).Error; err != nil {
		return apierr.Store(err)
	}
	m.ProgramStatus = next
	return helper.JsonUpdated(c, "program status changed", dto.ToProgramResponse(&m))
}

// =========================================================
// DELETE - DELETE /api/university/programs/:id
// Hard delete; courses under the program become orphans handled by the
// cleanup path, matching the no-cascade contract.
// =========================================================
func (h *ProgramController) Delete(c *fiber.Ctx) error {
	id, aerr := helper.ParseUUIDParam(c.Params("id"), "program id")
	if aerr != nil {
		return aerr
	}

	var m model.ProgramModel
	if err := h.DB.First(&m, "program_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierr.NotFound("PROGRAM_NOT_FOUND", "program not found")
		}
		return apierr.Store(err)
	}

	if err := h.DB.Delete(&m).Error; err != nil {
		return apierr.Store(err)
	}
	return helper.JsonDeleted(c, "program deleted", dto.ToProgramResponse(&m))
}
