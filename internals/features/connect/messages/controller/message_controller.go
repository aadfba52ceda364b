// internals/features/connect/messages/controller/message_controller.go
package controller

import (
	"errors"
	"log"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"elevencentral_backend/internals/apierr"
	"elevencentral_backend/internals/constants"
	channelModel "elevencentral_backend/internals/features/connect/channels/model"
	"elevencentral_backend/internals/features/connect/hub"
	dto "elevencentral_backend/internals/features/connect/messages/dto"
	model "elevencentral_backend/internals/features/connect/messages/model"
	helper "elevencentral_backend/internals/helpers"
)

type MessageController struct {
	DB  *gorm.DB
	Hub *hub.Hub
}

var validate = validator.New()

func NewMessageController(db *gorm.DB, h *hub.Hub) *MessageController {
	return &MessageController{DB: db, Hub: h}
}

// =========================================================
// CREATE - POST /api/connect/messages
// Persists the message, then fans it out to live subscribers.
// =========================================================
func (h *MessageController) Create(c *fiber.Ctx) error {
	uid, ok := c.Locals("user_id").(string)
	if !ok || uid == "" {
		return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - missing user identity")
	}
	senderID, aerr := helper.ParseUUIDParam(uid, "user id")
	if aerr != nil {
		return aerr
	}

	var req dto.MessageCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apierr.Validation("invalid payload")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(err)
	}

	var channel channelModel.ChannelModel
	if err := h.DB.First(&channel, "channel_id = ?", req.MessageChannelID).Error; err != nil {
		return apierr.StoreNotFound(err, "CHANNEL_NOT_FOUND", "channel not found")
	}
	if channel.ChannelIsArchived {
		return apierr.Validation("channel is archived")
	}

	m := req.ToModel(senderID)
	if err := h.DB.Create(m).Error; err != nil {
		return apierr.Store(err)
	}

	resp := dto.ToMessageResponse(m)
	if payload, err := sonic.Marshal(resp); err == nil {
		h.Hub.Broadcast(m.MessageChannelID.String(), payload)
	} else {
		log.Printf("[ERROR] broadcast marshal failed: %v", err)
	}

	return helper.JsonCreated(c, "message sent", resp)
}

// =========================================================
// LIST - GET /api/connect/messages?channel_id=&before=
// Newest first; ?before= pages back through history.
// =========================================================
func (h *MessageController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 50, 200)

	channelID, aerr := helper.ParseUUIDParam(c.Query("channel_id"), "channel id")
	if aerr != nil {
		return aerr
	}

	q := h.DB.Model(&model.MessageModel{}).
		Where("message_channel_id = ? AND message_deleted_at IS NULL", channelID)

	if before := c.Query("before"); before != "" {
		t, err := time.Parse(time.RFC3339, before)
		if err != nil {
			return apierr.Validation("before must be RFC3339")
		}
		q = q.Where("message_created_at < ?", t)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return apierr.Store(err)
	}

	var rows []model.MessageModel
	if err := q.Order("message_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return apierr.Store(err)
	}

	return helper.JsonList(c, "ok",
		dto.ToMessageResponses(rows),
		helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// =========================================================
// EDIT - PUT /api/connect/messages/:id
// Only the sender may edit their message.
// =========================================================
func (h *MessageController) Edit(c *fiber.Ctx) error {
	uid, _ := c.Locals("user_id").(string)
	id, aerr := helper.ParseUUIDParam(c.Params("id"), "message id")
	if aerr != nil {
		return aerr
	}

	var req dto.MessageEditRequest
	if err := c.BodyParser(&req); err != nil {
		return apierr.Validation("invalid payload")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(err)
	}

	var m model.MessageModel
	if err := h.DB.First(&m, "message_id = ? AND message_deleted_at IS NULL", id).Error; err != nil {
		return apierr.StoreNotFound(err, "MESSAGE_NOT_FOUND", "message not found")
	}
	if m.MessageSenderID.String() != uid {
		return fiber.NewError(fiber.StatusForbidden, "❌ Only the sender may edit this message.")
	}

	now := time.Now()
	m.MessageBody = req.MessageBody
	m.MessageEditedAt = &now
	if err := h.DB.Save(&m).Error; err != nil {
		return apierr.Store(err)
	}
	return helper.JsonUpdated(c, "message edited", dto.ToMessageResponse(&m))
}

// =========================================================
// DELETE - DELETE /api/connect/messages/:id (soft)
// Sender or manager and above.
// =========================================================
func (h *MessageController) Delete(c *fiber.Ctx) error {
	uid, _ := c.Locals("user_id").(string)
	role, _ := c.Locals("userRole").(string)

	id, aerr := helper.ParseUUIDParam(c.Params("id"), "message id")
	if aerr != nil {
		return aerr
	}

	var m model.MessageModel
	if err := h.DB.First(&m, "message_id = ? AND message_deleted_at IS NULL", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierr.NotFound("MESSAGE_NOT_FOUND", "message not found")
		}
		return apierr.Store(err)
	}

	if m.MessageSenderID.String() != uid && role == constants.RoleStaff {
		return fiber.NewError(fiber.StatusForbidden, "❌ Only the sender or a manager may delete this message.")
	}

	now := time.Now()
	if err := h.DB.Model(&m).Update("message_deleted_at", now).Error; err != nil {
		return apierr.Store(err)
	}
	return helper.JsonDeleted(c, "message deleted", dto.ToMessageResponse(&m))
}
