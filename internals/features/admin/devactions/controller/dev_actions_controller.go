// internals/features/admin/devactions/controller/dev_actions_controller.go
package controller

import (
	"encoding/json"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"elevencentral_backend/internals/apierr"
	"elevencentral_backend/internals/configs"
	"elevencentral_backend/internals/features/university/content"
	helper "elevencentral_backend/internals/helpers"
)

// DevActionsController exposes maintenance operations behind a single
// dispatch endpoint. It is rejected outright outside development.
type DevActionsController struct {
	DB      *gorm.DB
	Content *content.Service
}

func NewDevActionsController(db *gorm.DB) *DevActionsController {
	return &DevActionsController{DB: db, Content: content.NewService(db)}
}

type devActionRequest struct {
	Action string          `json:"action"`
	Data   json.RawMessage `json:"data"`
}

type deleteOrphansPayload struct {
	Entity string   `json:"entity"`
	IDs    []string `json:"ids"`
}

type reassignPayload struct {
	Entity   string   `json:"entity"`
	TargetID string   `json:"target_id"`
	IDs      []string `json:"ids"`
}

// =========================================================
// DISPATCH - POST /api/dev-actions
// Body: { "action": "...", "data": {...} }
// =========================================================
func (h *DevActionsController) Dispatch(c *fiber.Ctx) error {
	if !configs.IsDevelopment() {
		return fiber.NewError(fiber.StatusForbidden, "❌ Dev actions are only available in development.")
	}

	var req devActionRequest
	if err := c.BodyParser(&req); err != nil {
		return apierr.Validation("invalid payload")
	}

	switch req.Action {
	case "fix_sequences":
		out, err := h.Content.NormalizeAll()
		if err != nil {
			return err
		}
		return helper.JsonOK(c, "sequences normalized", out)

	case "delete_orphans":
		var payload deleteOrphansPayload
		if err := sonic.Unmarshal(req.Data, &payload); err != nil {
			return apierr.Validation("invalid data payload")
		}
		ids, aerr := helper.ParseUUIDList(payload.IDs, "ids")
		if aerr != nil {
			return aerr
		}
		res, err := h.Content.DeleteOrphans(payload.Entity, ids)
		if err != nil {
			return err
		}
		return helper.JsonOK(c, "orphans deleted", res)

	case "reassign_children":
		var payload reassignPayload
		if err := sonic.Unmarshal(req.Data, &payload); err != nil {
			return apierr.Validation("invalid data payload")
		}
		targetID, aerr := helper.ParseUUIDParam(payload.TargetID, "target id")
		if aerr != nil {
			return aerr
		}
		ids, aerr := helper.ParseUUIDList(payload.IDs, "ids")
		if aerr != nil {
			return aerr
		}
		updated, err := h.Content.ReassignChildren(payload.Entity, targetID, ids)
		if err != nil {
			return err
		}
		return helper.JsonOK(c, "children reassigned", updated)

	case "rebuild_hierarchy":
		tree, err := h.Content.BuildHierarchy()
		if err != nil {
			return err
		}
		return helper.JsonOK(c, "hierarchy rebuilt", tree)

	default:
		return apierr.ValidationWithDetails("unknown action", fiber.Map{
			"action": req.Action,
			"known":  []string{"fix_sequences", "delete_orphans", "reassign_children", "rebuild_hierarchy"},
		})
	}
}
