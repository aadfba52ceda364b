// internals/features/university/programs/dto/program_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "elevencentral_backend/internals/features/university/programs/model"
	"elevencentral_backend/internals/features/university/status"
)

/* =========================
   REQUEST
   ========================= */

type ProgramCreateRequest struct {
	ProgramTitle        string  `json:"program_title" validate:"required,min=2,max=200"`
	ProgramDescription  *string `json:"program_description" validate:"omitempty,max=5000"`
	ProgramThumbnailURL *string `json:"program_thumbnail_url" validate:"omitempty,url"`
}

func (r *ProgramCreateRequest) Normalize() {
	r.ProgramTitle = strings.TrimSpace(r.ProgramTitle)
	r.ProgramDescription = trimPtr(r.ProgramDescription)
	r.ProgramThumbnailURL = trimPtr(r.ProgramThumbnailURL)
}

func (r *ProgramCreateRequest) ToModel() *model.ProgramModel {
	return &model.ProgramModel{
		ProgramTitle:        r.ProgramTitle,
		ProgramDescription:  r.ProgramDescription,
		ProgramThumbnailURL: r.ProgramThumbnailURL,
		ProgramStatus:       status.Draft,
	}
}

type ProgramUpdateRequest struct {
	ProgramTitle        *string `json:"program_title" validate:"omitempty,min=2,max=200"`
	ProgramDescription  *string `json:"program_description" validate:"omitempty,max=5000"`
	ProgramThumbnailURL *string `json:"program_thumbnail_url" validate:"omitempty,url"`
}

func (r *ProgramUpdateRequest) Normalize() {
	r.ProgramTitle = trimPtr(r.ProgramTitle)
	r.ProgramDescription = trimPtr(r.ProgramDescription)
	r.ProgramThumbnailURL = trimPtr(r.ProgramThumbnailURL)
}

func (r *ProgramUpdateRequest) Apply(m *model.ProgramModel) {
	if r.ProgramTitle != nil {
		m.ProgramTitle = *r.ProgramTitle
	}
	if r.ProgramDescription != nil {
		m.ProgramDescription = r.ProgramDescription
	}
	if r.ProgramThumbnailURL != nil {
		m.ProgramThumbnailURL = r.ProgramThumbnailURL
	}
}

type StatusChangeRequest struct {
	Status string `json:"status" validate:"required,oneof=draft published archived"`
}

/* =========================
   RESPONSE
   ========================= */

type ProgramResponse struct {
	ProgramID           uuid.UUID     `json:"program_id"`
	ProgramTitle        string        `json:"program_title"`
	ProgramDescription  *string       `json:"program_description,omitempty"`
	ProgramThumbnailURL *string       `json:"program_thumbnail_url,omitempty"`
	ProgramStatus       status.Status `json:"program_status"`
	ProgramCreatedAt    time.Time     `json:"program_created_at"`
	ProgramUpdatedAt    time.Time     `json:"program_updated_at"`
}

func ToProgramResponse(m *model.ProgramModel) ProgramResponse {
	return ProgramResponse{
		ProgramID:           m.ProgramID,
		ProgramTitle:        m.ProgramTitle,
		ProgramDescription:  m.ProgramDescription,
		ProgramThumbnailURL: m.ProgramThumbnailURL,
		ProgramStatus:       m.ProgramStatus,
		ProgramCreatedAt:    m.ProgramCreatedAt,
		ProgramUpdatedAt:    m.ProgramUpdatedAt,
	}
}

func ToProgramResponses(models []model.ProgramModel) []ProgramResponse {
	out := make([]ProgramResponse, 0, len(models))
	for i := range models {
		out = append(out, ToProgramResponse(&models[i]))
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
