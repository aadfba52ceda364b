// internals/features/university/modules/controller/module_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"elevencentral_backend/internals/apierr"
	"elevencentral_backend/internals/features/university/content"
	lessonModel "elevencentral_backend/internals/features/university/lessons/model"
	dto "elevencentral_backend/internals/features/university/modules/dto"
	model "elevencentral_backend/internals/features/university/modules/model"
	"elevencentral_backend/internals/features/university/status"
	helper "elevencentral_backend/internals/helpers"
)

type ModuleController struct {
	DB      *gorm.DB
	Content *content.Service
}

var validate = validator.New()

func NewModuleController(db *gorm.DB) *ModuleController {
	return &ModuleController{DB: db, Content: content.NewService(db)}
}

// =========================================================
// CREATE - POST /api/university/modules
// =========================================================
func (h *ModuleController) Create(c *fiber.Ctx) error {
	var req dto.ModuleCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apierr.Validation("invalid payload")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(err)
	}

	var parent lessonModel.LessonModel
	if err := h.DB.First(&parent, "lesson_id = ?", req.ModuleLessonID).Error; err != nil {
		return apierr.StoreNotFound(err, "LESSON_NOT_FOUND", "lesson not found")
	}

	var siblings int64
	if err := h.DB.Model(&model.ModuleModel{}).
		Where("module_lesson_id = ?", req.ModuleLessonID).
		Count(&siblings).Error; err != nil {
		return apierr.Store(err)
	}

	m := req.ToModel(int(siblings) + 1)
	if err := h.DB.Create(m).Error; err != nil {
		return apierr.Store(err)
	}
	return helper.JsonCreated(c, "module created", dto.ToModuleResponse(m))
}

// =========================================================
// LIST - GET /api/university/modules?lesson_id=&status=
// =========================================================
func (h *ModuleController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&model.ModuleModel{})
	if lid := c.Query("lesson_id"); lid != "" {
		id, aerr := helper.ParseUUIDParam(lid, "lesson id")
		if aerr != nil {
			return aerr
		}
		q = q.Where("module_lesson_id = ?", id)
	}
	if st := c.Query("status"); st != "" {
		if !status.Status(st).Valid() {
			return apierr.Validation("invalid status filter")
		}
		q = q.Where("module_status = ?", st)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return apierr.Store(err)
	}

	var modules []model.ModuleModel
	if err := q.Order("module_sequence_order ASC, module_created_at ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&modules).Error; err != nil {
		return apierr.Store(err)
	}

	return helper.JsonList(c, "ok",
		dto.ToModuleResponses(modules),
		helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// =========================================================
// DETAIL - GET /api/university/modules/:id
// =========================================================
func (h *ModuleController) GetByID(c *fiber.Ctx) error {
	id, aerr := helper.ParseUUIDParam(c.Params("id"), "module id")
	if aerr != nil {
		return aerr
	}
	var m model.ModuleModel
	if err := h.DB.First(&m, "module_id = ?", id).Error; err != nil {
		return apierr.StoreNotFound(err, "MODULE_NOT_FOUND", "module not found")
	}
	return helper.JsonOK(c, "ok", dto.ToModuleResponse(&m))
}

// =========================================================
// UPDATE - PUT /api/university/modules/:id
// =========================================================
func (h *ModuleController) Update(c *fiber.Ctx) error {
	id, aerr := helper.ParseUUIDParam(c.Params("id"), "module id")
	if aerr != nil {
		return aerr
	}

	var req dto.ModuleUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apierr.Validation("invalid payload")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(err)
	}

	var m model.ModuleModel
	if err := h.DB.First(&m, "module_id = ?", id).Error; err != nil {
		return apierr.StoreNotFound(err, "MODULE_NOT_FOUND", "module not found")
	}

	req.Apply(&m)
	if err := h.DB.Save(&m).Error; err != nil {
		return apierr.Store(err)
	}
	return helper.JsonUpdated(c, "module updated", dto.ToModuleResponse(&m))
}

// =========================================================
// STATUS - PATCH /api/university/modules/:id/status
// =========================================================
func (h *ModuleController) ChangeStatus(c *fiber.Ctx) error {
	id, aerr := helper.ParseUUIDParam(c.Params("id"), "module id")
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

	var m model.ModuleModel
	if err := h.DB.First(&m, "module_id = ?", id).Error; err != nil {
		return apierr.StoreNotFound(err, "MODULE_NOT_FOUND", "module not found")
	}

	next := status.Status(req.Status)
	if !status.CanTransition(m.ModuleStatus, next) {
		return apierr.ValidationWithDetails("status transition not permitted", fiber.Map{
			"from": m.ModuleStatus,
			"to":   next,
		})
	}

	if err := h.DB.Model(&m).Update("module_status", next).Error; err != nil {
		return apierr.Store(err)
	}
	m.ModuleStatus = next
	return helper.JsonUpdated(c, "module status changed", dto.ToModuleResponse(&m))
}

// =========================================================
// REORDER - PUT /api/university/modules/reorder
// =========================================================
func (h *ModuleController) Reorder(c *fiber.Ctx) error {
	var req dto.ReorderRequest
	if err := c.BodyParser(&req); err != nil {
		return apierr.Validation("invalid payload")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(err)
	}

	var parent lessonModel.LessonModel
	if err := h.DB.First(&parent, "lesson_id = ?", req.LessonID).Error; err != nil {
		return apierr.StoreNotFound(err, "LESSON_NOT_FOUND", "lesson not found")
	}

	for i, moduleID := range req.ModuleIDs {
		res := h.DB.Model(&model.ModuleModel{}).
			Where("module_id = ? AND module_lesson_id = ?", moduleID, req.LessonID).
			Update("module_sequence_order", i+1)
		if res.Error != nil {
			return apierr.Store(res.Error)
		}
		if res.RowsAffected == 0 {
			return apierr.BadTarget("MODULE_NOT_FOUND", "module not found in this lesson")
		}
	}

	changes, err := h.Content.NormalizeEntity("module")
	if err != nil {
		return err
	}
	return helper.JsonUpdated(c, "modules reordered", fiber.Map{
		"normalized": changes,
	})
}

// =========================================================
// REASSIGN - POST /api/university/modules/reassign
// =========================================================
func (h *ModuleController) Reassign(c *fiber.Ctx) error {
	var req dto.ReassignRequest
	if err := c.BodyParser(&req); err != nil {
		return apierr.Validation("invalid payload")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(err)
	}

	updated, err := h.Content.ReassignChildren("module", req.TargetLessonID, req.ModuleIDs)
	if err != nil {
		return err
	}
	changes, err := h.Content.NormalizeEntity("module")
	if err != nil {
		return err
	}
	return helper.JsonUpdated(c, "modules reassigned", fiber.Map{
		"updated":    updated,
		"normalized": changes,
	})
}

// =========================================================
// DELETE - DELETE /api/university/modules/:id
// =========================================================
func (h *ModuleController) Delete(c *fiber.Ctx) error {
	id, aerr := helper.ParseUUIDParam(c.Params("id"), "module id")
	if aerr != nil {
		return aerr
	}

	var m model.ModuleModel
	if err := h.DB.First(&m, "module_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierr.NotFound("MODULE_NOT_FOUND", "module not found")
		}
		return apierr.Store(err)
	}

	if err := h.DB.Delete(&m).Error; err != nil {
		return apierr.Store(err)
	}
	return helper.JsonDeleted(c, "module deleted", dto.ToModuleResponse(&m))
}
