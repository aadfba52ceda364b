// internals/features/connect/channels/controller/channel_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"elevencentral_backend/internals/apierr"
	dto "elevencentral_backend/internals/features/connect/channels/dto"
	model "elevencentral_backend/internals/features/connect/channels/model"
	helper "elevencentral_backend/internals/helpers"
)

type ChannelController struct {
	DB *gorm.DB
}

var validate = validator.New()

func NewChannelController(db *gorm.DB) *ChannelController {
	return &ChannelController{DB: db}
}

// =========================================================
// CREATE - POST /api/connect/channels
// =========================================================
func (h *ChannelController) Create(c *fiber.Ctx) error {
	uid, ok := c.Locals("user_id").(string)
	if !ok || uid == "" {
		return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - missing user identity")
	}
	creatorID, aerr := helper.ParseUUIDParam(uid, "user id")
	if aerr != nil {
		return aerr
	}

	var req dto.ChannelCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apierr.Validation("invalid payload")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(err)
	}

	m := req.ToModel(creatorID)
	if err := h.DB.Create(m).Error; err != nil {
		return apierr.Store(err)
	}
	return helper.JsonCreated(c, "channel created", dto.ToChannelResponse(m))
}

// =========================================================
// LIST - GET /api/connect/channels?include_archived=
// =========================================================
func (h *ChannelController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&model.ChannelModel{})
	if c.Query("include_archived") != "true" {
		q = q.Where("channel_is_archived = ?", false)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return apierr.Store(err)
	}

	var rows []model.ChannelModel
	if err := q.Order("channel_name ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return apierr.Store(err)
	}

	return helper.JsonList(c, "ok",
		dto.ToChannelResponses(rows),
		helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// =========================================================
// DETAIL - GET /api/connect/channels/:id
// =========================================================
func (h *ChannelController) GetByID(c *fiber.Ctx) error {
	id, aerr := helper.ParseUUIDParam(c.Params("id"), "channel id")
	if aerr != nil {
		return aerr
	}
	var m model.ChannelModel
	if err := h.DB.First(&m, "channel_id = ?", id).Error; err != nil {
		return apierr.StoreNotFound(err, "CHANNEL_NOT_FOUND", "channel not found")
	}
	return helper.JsonOK(c, "ok", dto.ToChannelResponse(&m))
}

// =========================================================
// UPDATE - PUT /api/connect/channels/:id
// Archiving happens through channel_is_archived here.
// =========================================================
func (h *ChannelController) Update(c *fiber.Ctx) error {
	id, aerr := helper.ParseUUIDParam(c.Params("id"), "channel id")
	if aerr != nil {
		return aerr
	}

	var req dto.ChannelUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apierr.Validation("invalid payload")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(err)
	}

	var m model.ChannelModel
	if err := h.DB.First(&m, "channel_id = ?", id).Error; err != nil {
		return apierr.StoreNotFound(err, "CHANNEL_NOT_FOUND", "channel not found")
	}

	req.Apply(&m)
	if err := h.DB.Save(&m).Error; err != nil {
		return apierr.Store(err)
	}
	return helper.JsonUpdated(c, "channel updated", dto.ToChannelResponse(&m))
}

// =========================================================
// DELETE - DELETE /api/connect/channels/:id
// =========================================================
func (h *ChannelController) Delete(c *fiber.Ctx) error {
	id, aerr := helper.ParseUUIDParam(c.Params("id"), "channel id")
	if aerr != nil {
		return aerr
	}

	var m model.ChannelModel
	if err := h.DB.First(&m, "channel_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierr.NotFound("CHANNEL_NOT_FOUND", "channel not found")
		}
		return apierr.Store(err)
	}

	if err := h.DB.Delete(&m).Error; err != nil {
		return apierr.Store(err)
	}
	return helper.JsonDeleted(c, "channel deleted", dto.ToChannelResponse(&m))
}
