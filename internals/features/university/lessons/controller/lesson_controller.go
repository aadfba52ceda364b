// internals/features/university/lessons/controller/lesson_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"elevencentral_backend/internals/apierr"
	"elevencentral_backend/internals/features/university/content"
	courseModel "elevencentral_backend/internals/features/university/courses/model"
	dto "elevencentral_backend/internals/features/university/lessons/dto"
	model "elevencentral_backend/internals/features/university/lessons/model"
	"elevencentral_backend/internals/features/university/status"
	helper "elevencentral_backend/internals/helpers"
)

type LessonController struct {
	DB      *gorm.DB
	Content *content.Service
}

var validate = validator.New()

func NewLessonController(db *gorm.DB) *LessonController {
	return &LessonController{DB: db, Content: content.NewService(db)}
}

// =========================================================
// CREATE - POST /api/university/lessons
// =========================================================
func (h *LessonController) Create(c *fiber.Ctx) error {
	var req dto.LessonCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apierr.Validation("invalid payload")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(err)
	}

	var parent courseModel.CourseModel
	if err := h.DB.First(&parent, "course_id = ?", req.LessonCourseID).Error; err != nil {
		return apierr.StoreNotFound(err, "COURSE_NOT_FOUND", "course not found")
	}

	var siblings int64
	if err := h.DB.Model(&model.LessonModel{}).
		Where("lesson_course_id = ?", req.LessonCourseID).
		Count(&siblings).Error; err != nil {
		return apierr.Store(err)
	}

	m := req.ToModel(int(siblings) + 1)
	if err := h.DB.Create(m).Error; err != nil {
		return apierr.Store(err)
	}
	return helper.JsonCreated(c, "lesson created", dto.ToLessonResponse(m))
}

// =========================================================
// LIST - GET /api/university/lessons?course_id=&status=
// =========================================================
func (h *LessonController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&model.LessonModel{})
	if cid := c.Query("course_id"); cid != "" {
		id, aerr := helper.ParseUUIDParam(cid, "course id")
		if aerr != nil {
			return aerr
		}
		q = q.Where("lesson_course_id = ?", id)
	}
	if st := c.Query("status"); st != "" {
		if !status.Status(st).Valid() {
			return apierr.Validation("invalid status filter")
		}
		q = q.Where("lesson_status = ?", st)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return apierr.Store(err)
	}

	var lessons []model.LessonModel
	if err := q.Order("lesson_sequence_order ASC, lesson_created_at ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&lessons).Error; err != nil {
		return apierr.Store(err)
	}

	return helper.JsonList(c, "ok",
		dto.ToLessonResponses(lessons),
		helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// =========================================================
// DETAIL - GET /api/university/lessons/:id
// =========================================================
func (h *LessonController) GetByID(c *fiber.Ctx) error {
	id, aerr := helper.ParseUUIDParam(c.Params("id"), "lesson id")
	if aerr != nil {
		return aerr
	}
	var m model.LessonModel
	if err := h.DB.First(&m, "lesson_id = ?", id).Error; err != nil {
		return apierr.StoreNotFound(err, "LESSON_NOT_FOUND", "lesson not found")
	}
	return helper.JsonOK(c, "ok", dto.ToLessonResponse(&m))
}

// =========================================================
// UPDATE - PUT /api/university/lessons/:id
// =========================================================
func (h *LessonController) Update(c *fiber.Ctx) error {
	id, aerr := helper.ParseUUIDParam(c.Params("id"), "lesson id")
	if aerr != nil {
		return aerr
	}

	var req dto.LessonUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apierr.Validation("invalid payload")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(err)
	}

	var m model.LessonModel
	if err := h.DB.First(&m, "lesson_id = ?", id).Error; err != nil {
		return apierr.StoreNotFound(err, "LESSON_NOT_FOUND", "lesson not found")
	}

	req.Apply(&m)
	if err := h.DB.Save(&m).Error; err != nil {
		return apierr.Store(err)
	}
	return helper.JsonUpdated(c, "lesson updated", dto.ToLessonResponse(&m))
}

// =========================================================
// STATUS - PATCH /api/university/lessons/:id/status
// =========================================================
func (h *LessonController) ChangeStatus(c *fiber.Ctx) error {
	id, aerr := helper.ParseUUIDParam(c.Params("id"), "lesson id")
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

	var m model.LessonModel
	if err := h.DB.First(&m, "lesson_id = ?", id).Error; err != nil {
		return apierr.StoreNotFound(err, "LESSON_NOT_FOUND", "lesson not found")
	}

	next := status.Status(req.Status)
	if !status.CanTransition(m.LessonStatus, next) {
		return apierr.ValidationWithDetails("status transition not permitted", fiber.Map{
			"from": m.LessonStatus,
			"to":   next,
		})
	}

	if err := h.DB.Model(&m).Update("lesson_status", next).Error; err != nil {
		return apierr.Store(err)
	}
	m.LessonStatus = next
	return helper.JsonUpdated(c, "lesson status changed", dto.ToLessonResponse(&m))
}

// =========================================================
// REORDER - PUT /api/university/lessons/reorder
// =========================================================
func (h *LessonController) Reorder(c *fiber.Ctx) error {
	var req dto.ReorderRequest
	if err := c.BodyParser(&req); err != nil {
		return apierr.Validation("invalid payload")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(err)
	}

	var parent courseModel.CourseModel
	if err := h.DB.First(&parent, "course_id = ?", req.CourseID).Error; err != nil {
		return apierr.StoreNotFound(err, "COURSE_NOT_FOUND", "course not found")
	}

	for i, lessonID := range req.LessonIDs {
		res := h.DB.Model(&model.LessonModel{}).
			Where("lesson_id = ? AND lesson_course_id = ?", lessonID, req.CourseID).
			Update("lesson_sequence_order", i+1)
		if res.Error != nil {
			return apierr.Store(res.Error)
		}
		if res.RowsAffected == 0 {
			return apierr.BadTarget("LESSON_NOT_FOUND", "lesson not found in this course")
		}
	}

	changes, err := h.Content.NormalizeEntity("lesson")
	if err != nil {
		return err
	}
	return helper.JsonUpdated(c, "lessons reordered", fiber.Map{
		"normalized": changes,
	})
}

// =========================================================
// REASSIGN - POST /api/university/lessons/reassign
// =========================================================
func (h *LessonController) Reassign(c *fiber.Ctx) error {
	var req dto.ReassignRequest
	if err := c.BodyParser(&req); err != nil {
		return apierr.Validation("invalid payload")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(err)
	}

	updated, err := h.Content.ReassignChildren("lesson", req.TargetCourseID, req.LessonIDs)
	if err != nil {
		return err
	}
	changes, err := h.Content.NormalizeEntity("lesson")
	if err != nil {
		return err
	}
	return helper.JsonUpdated(c, "lessons reassigned", fiber.Map{
		"updated":    updated,
		"normalized": changes,
	})
}

// =========================================================
// DELETE - DELETE /api/university/lessons/:id
// =========================================================
func (h *LessonController) Delete(c *fiber.Ctx) error {
	id, aerr := helper.ParseUUIDParam(c.Params("id"), "lesson id")
	if aerr != nil {
		return aerr
	}

	var m model.LessonModel
	if err := h.DB.First(&m, "lesson_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierr.NotFound("LESSON_NOT_FOUND", "lesson not found")
		}
		return apierr.Store(err)
	}

	if err := h.DB.Delete(&m).Error; err != nil {
		return apierr.Store(err)
	}
	return helper.JsonDeleted(c, "lesson deleted", dto.ToLessonResponse(&m))
}
