// internals/features/university/modules/dto/module_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	model "elevencentral_backend/internals/features/university/modules/model"
	"elevencentral_backend/internals/features/university/status"
)

/* =========================
   REQUEST
   ========================= */

type ModuleCreateRequest struct {
	ModuleLessonID  uuid.UUID      `json:"module_lesson_id" validate:"required"`
	ModuleTitle     string         `json:"module_title" validate:"required,min=2,max=200"`
	ModuleContent   *string        `json:"module_content" validate:"omitempty"`
	ModuleVideoURL  *string        `json:"module_video_url" validate:"omitempty,url"`
	ModuleVideoMeta datatypes.JSON `json:"module_video_meta" validate:"omitempty"`
}

func (r *ModuleCreateRequest) Normalize() {
	r.ModuleTitle = strings.TrimSpace(r.ModuleTitle)
	r.ModuleContent = trimPtr(r.ModuleContent)
	r.ModuleVideoURL = trimPtr(r.ModuleVideoURL)
}

func (r *ModuleCreateRequest) ToModel(seq int) *model.ModuleModel {
	return &model.ModuleModel{
		ModuleLessonID:      r.ModuleLessonID,
		ModuleTitle:         r.ModuleTitle,
		ModuleContent:       r.ModuleContent,
		ModuleVideoURL:      r.ModuleVideoURL,
		ModuleVideoMeta:     r.ModuleVideoMeta,
		ModuleSequenceOrder: seq,
		ModuleStatus:        status.Draft,
	}
}

type ModuleUpdateRequest struct {
	ModuleTitle     *string        `json:"module_title" validate:"omitempty,min=2,max=200"`
	ModuleContent   *string        `json:"module_content" validate:"omitempty"`
	ModuleVideoURL  *string        `json:"module_video_url" validate:"omitempty,url"`
	ModuleVideoMeta datatypes.JSON `json:"module_video_meta" validate:"omitempty"`
}

func (r *ModuleUpdateRequest) Normalize() {
	r.ModuleTitle = trimPtr(r.ModuleTitle)
	r.ModuleContent = trimPtr(r.ModuleContent)
	r.ModuleVideoURL = trimPtr(r.ModuleVideoURL)
}

func (r *ModuleUpdateRequest) Apply(m *model.ModuleModel) {
	if r.ModuleTitle != nil {
		m.ModuleTitle = *r.ModuleTitle
	}
	if r.ModuleContent != nil {
		m.ModuleContent = r.ModuleContent
	}
	if r.ModuleVideoURL != nil {
		m.ModuleVideoURL = r.ModuleVideoURL
	}
	if len(r.ModuleVideoMeta) > 0 {
		m.ModuleVideoMeta = r.ModuleVideoMeta
	}
}

type StatusChangeRequest struct {
	Status string `json:"status" validate:"required,oneof=draft published archived"`
}

type ReorderRequest struct {
	LessonID  uuid.UUID   `json:"lesson_id" validate:"required"`
	ModuleIDs []uuid.UUID `json:"module_ids" validate:"required,min=1"`
}

type ReassignRequest struct {
	TargetLessonID uuid.UUID   `json:"target_lesson_id" validate:"required"`
	ModuleIDs      []uuid.UUID `json:"module_ids" validate:"required,min=1"`
}

/* =========================
   RESPONSE
   ========================= */

type ModuleResponse struct {
	ModuleID            uuid.UUID      `json:"module_id"`
	ModuleLessonID      uuid.UUID      `json:"module_lesson_id"`
	ModuleTitle         string         `json:"module_title"`
	ModuleContent       *string        `json:"module_content,omitempty"`
	ModuleVideoURL      *string        `json:"module_video_url,omitempty"`
	ModuleVideoMeta     datatypes.JSON `json:"module_video_meta,omitempty"`
	ModuleSequenceOrder int            `json:"module_sequence_order"`
	ModuleStatus        status.Status  `json:"module_status"`
	ModuleCreatedAt     time.Time      `json:"module_created_at"`
	ModuleUpdatedAt     time.Time      `json:"module_updated_at"`
}

func ToModuleResponse(m *model.ModuleModel) ModuleResponse {
	return ModuleResponse{
		ModuleID:            m.ModuleID,
		ModuleLessonID:      m.ModuleLessonID,
		ModuleTitle:         m.ModuleTitle,
		ModuleContent:       m.ModuleContent,
		ModuleVideoURL:      m.ModuleVideoURL,
		ModuleVideoMeta:     m.ModuleVideoMeta,
		ModuleSequenceOrder: m.ModuleSequenceOrder,
		ModuleStatus:        m.ModuleStatus,
		ModuleCreatedAt:     m.ModuleCreatedAt,
		ModuleUpdatedAt:     m.ModuleUpdatedAt,
	}
}

func ToModuleResponses(models []model.ModuleModel) []ModuleResponse {
	out := make([]ModuleResponse, 0, len(models))
	for i := range models {
		out = append(out, ToModuleResponse(&models[i]))
	}
	return out
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
