// internals/features/university/courses/controller/course_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"elevencentral_backend/internals/apierr"
	"elevencentral_backend/internals/features/university/content"
	dto "elevencentral_backend/internals/features/university/courses/dto"
	model "elevencentral_backend/internals/features/university/courses/model"
	programModel "elevencentral_backend/internals/features/university/programs/model"
	"elevencentral_backend/internals/features/university/status"
	helper "elevencentral_backend/internals/helpers"
)

type CourseController struct {
	DB      *gorm.DB
	Content *content.Service
}

var validate = validator.New()

func NewCourseController(db *gorm.DB) *CourseController {
	return &CourseController{DB: db, Content: content.NewService(db)}
}

// =========================================================
// CREATE - POST /api/university/courses
// The new course is appended at the end of its program's ordering.
// =========================================================
func (h *CourseController) Create(c *fiber.Ctx) error {
	var req dto.CourseCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apierr.Validation("invalid payload")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(err)
	}

	var parent programModel.ProgramModel
	if err := h.DB.First(&parent, "program_id = ?", req.CourseProgramID).Error; err != nil {
		return apierr.StoreNotFound(err, "PROGRAM_NOT_FOUND", "program not found")
	}

	var siblings int64
	if err := h.DB.Model(&model.CourseModel{}).
		Where("course_program_id = ?", req.CourseProgramID).
		Count(&siblings).Error; err != nil {
		return apierr.Store(err)
	}

	m := req.ToModel(int(siblings) + 1)
	if err := h.DB.Create(m).Error; err != nil {
		return apierr.Store(err)
	}
	return helper.JsonCreated(c, "course created", dto.ToCourseResponse(m))
}

// =========================================================
// LIST - GET /api/university/courses?program_id=&status=
// =========================================================
func (h *CourseController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&model.CourseModel{})
	if pid := c.Query("program_id"); pid != "" {
		id, aerr := helper.ParseUUIDParam(pid, "program id")
		if aerr != nil {
			return aerr
		}
		q = q.Where("course_program_id = ?", id)
	}
	if st := c.Query("status"); st != "" {
		if !status.Status(st).Valid() {
			return apierr.Validation("invalid status filter")
		}
		q = q.Where("course_status = ?", st)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return apierr.Store(err)
	}

	var courses []model.CourseModel
	if err := q.Order("course_sequence_order ASC, course_created_at ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&courses).Error; err != nil {
		return apierr.Store(err)
	}

	return helper.JsonList(c, "ok",
		dto.ToCourseResponses(courses),
		helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// =========================================================
// DETAIL - GET /api/university/courses/:id
// =========================================================
func (h *CourseController) GetByID(c *fiber.Ctx) error {
	id, aerr := helper.ParseUUIDParam(c.Params("id"), "course id")
	if aerr != nil {
		return aerr
	}
	var m model.CourseModel
	if err := h.DB.First(&m, "course_id = ?", id).Error; err != nil {
		return apierr.StoreNotFound(err, "COURSE_NOT_FOUND", "course not found")
	}
	return helper.JsonOK(c, "ok", dto.ToCourseResponse(&m))
}

// =========================================================
// UPDATE - PUT /api/university/courses/:id
// =========================================================
func (h *CourseController) Update(c *fiber.Ctx) error {
	id, aerr := helper.ParseUUIDParam(c.Params("id"), "course id")
	if aerr != nil {
		return aerr
	}

	var req dto.CourseUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apierr.Validation("invalid payload")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(err)
	}

	var m model.CourseModel
	if err := h.DB.First(&m, "course_id = ?", id).Error; err != nil {
		return apierr.StoreNotFound(err, "COURSE_NOT_FOUND", "course not found")
	}

	req.Apply(&m)
	if err := h.DB.Save(&m).Error; err != nil {
		return apierr.Store(err)
	}
	return helper.JsonUpdated(c, "course updated", dto.ToCourseResponse(&m))
}

// =========================================================
// STATUS - PATCH /api/university/courses/:id/status
// =========================================================
func (h *CourseController) ChangeStatus(c *fiber.Ctx) error {
	id, aerr := helper.ParseUUIDParam(c.Params("id"), "course id")
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

	var m model.CourseModel
	if err := h.DB.First(&m, "course_id = ?", id).Error; err != nil {
		return apierr.StoreNotFound(err, "COURSE_NOT_FOUND", "course not found")
	}

	next := status.Status(req.Status)
	if !status.CanTransition(m.CourseStatus, next) {
		return apierr.ValidationWithDetails("status transition not permitted", fiber.Map{
			"from": m.CourseStatus,
			"to":   next,
		})
	}

	if err := h.DB.Model(&m).Update("course_status", next).Error; err != nil {
		return apierr.Store(err)
	}
	m.CourseStatus = next
	return helper.JsonUpdated(c, "course status changed", dto.ToCourseResponse(&m))
}

// =========================================================
// REORDER - PUT /api/university/courses/reorder
// Writes the submitted ordering as 1..N, then runs the normalizer so any
// sibling missing from the submitted list is packed in behind.
// =========================================================
func (h *CourseController) Reorder(c *fiber.Ctx) error {
	var req dto.ReorderRequest
	if err := c.BodyParser(&req); err != nil {
		return apierr.Validation("invalid payload")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(err)
	}

	var parent programModel.ProgramModel
	if err := h.DB.First(&parent, "program_id = ?", req.ProgramID).Error; err != nil {
		return apierr.StoreNotFound(err, "PROGRAM_NOT_FOUND", "program not found")
	}

	for i, courseID := range req.CourseIDs {
		res := h.DB.Model(&model.CourseModel{}).
			Where("course_id = ? AND course_program_id = ?", courseID, req.ProgramID).
			Update("course_sequence_order", i+1)
		if res.Error != nil {
			return apierr.Store(res.Error)
		}
		if res.RowsAffected == 0 {
			return apierr.BadTarget("COURSE_NOT_FOUND", "course not found in this program")
		}
	}

	changes, err := h.Content.NormalizeEntity("course")
	if err != nil {
		return err
	}
	return helper.JsonUpdated(c, "courses reordered", fiber.Map{
		"normalized": changes,
	})
}

// =========================================================
// REASSIGN - POST /api/university/courses/reassign
// Moves courses to another program, then normalizes both groups.
// =========================================================
func (h *CourseController) Reassign(c *fiber.Ctx) error {
	var req dto.ReassignRequest
	if err := c.BodyParser(&req); err != nil {
		return apierr.Validation("invalid payload")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(err)
	}

	updated, err := h.Content.ReassignChildren("course", req.TargetProgramID, req.CourseIDs)
	if err != nil {
		return err
	}
	changes, err := h.Content.NormalizeEntity("course")
	if err != nil {
		return err
	}
	return helper.JsonUpdated(c, "courses reassigned", fiber.Map{
		"updated":    updated,
		"normalized": changes,
	})
}

// =========================================================
// DELETE - DELETE /api/university/courses/:id
// =========================================================
func (h *CourseController) Delete(c *fiber.Ctx) error {
	id, aerr := helper.ParseUUIDParam(c.Params("id"), "course id")
	if aerr != nil {
		return aerr
	}

	var m model.CourseModel
	if err := h.DB.First(&m, "course_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierr.NotFound("COURSE_NOT_FOUND", "course not found")
		}
		return apierr.Store(err)
	}

	if err := h.DB.Delete(&m).Error; err != nil {
		return apierr.Store(err)
	}
	return helper.JsonDeleted(c, "course deleted", dto.ToCourseResponse(&m))
}
