// internals/features/university/content/controller/content_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"elevencentral_backend/internals/apierr"
	"elevencentral_backend/internals/features/university/content"
	helper "elevencentral_backend/internals/helpers"
)

type ContentController struct {
	Service *content.Service
}

func NewContentController(db *gorm.DB) *ContentController {
	return &ContentController{Service: content.NewService(db)}
}

// =========================================================
// HIERARCHY - GET /api/university/hierarchy
// Full nested program→course→lesson→module tree for the admin view.
// =========================================================
func (h *ContentController) Hierarchy(c *fiber.Ctx) error {
	tree, err := h.Service.BuildHierarchy()
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "ok", tree)
}

// =========================================================
// FIX SEQUENCES - POST /api/university/maintenance/fix-sequences
// Admin-triggered sweep; ?entity= narrows it to one level.
// =========================================================
func (h *ContentController) FixSequences(c *fiber.Ctx) error {
	if entity := c.Query("entity"); entity != "" {
		changes, err := h.Service.NormalizeEntity(entity)
		if err != nil {
			return err
		}
		return helper.JsonOK(c, "sequences normalized", fiber.Map{entity: changes})
	}
	out, err := h.Service.NormalizeAll()
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "sequences normalized", out)
}

// =========================================================
// ORPHANS - GET /api/university/maintenance/orphans?entity=
// Lists orphaned IDs at one level; feeds the delete call below.
// =========================================================
func (h *ContentController) ListOrphans(c *fiber.Ctx) error {
	entity := c.Query("entity")
	if entity == "" {
		return apierr.Validation("entity query parameter is required")
	}
	ids, err := h.Service.FindOrphans(entity)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "ok", fiber.Map{"entity": entity, "orphan_ids": ids})
}

// =========================================================
// DELETE ORPHANS - POST /api/university/maintenance/orphans/delete
// Body: { "entity": "...", "ids": [...] }
// =========================================================
func (h *ContentController) DeleteOrphans(c *fiber.Ctx) error {
	var req struct {
		Entity string   `json:"entity"`
		IDs    []string `json:"ids"`
	}
	if err := c.BodyParser(&req); err != nil {
		return apierr.Validation("invalid payload")
	}
	ids, aerr := helper.ParseUUIDList(req.IDs, "ids")
	if aerr != nil {
		return aerr
	}
	res, err := h.Service.DeleteOrphans(req.Entity, ids)
	if err != nil {
		return err
	}
	return helper.JsonDeleted(c, "orphans deleted", res)
}
