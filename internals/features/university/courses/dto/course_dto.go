// internals/features/university/courses/dto/course_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "elevencentral_backend/internals/features/university/courses/model"
	"elevencentral_backend/internals/features/university/status"
)

/* =========================
   REQUEST
   ========================= */

type CourseCreateRequest struct {
	CourseProgramID   uuid.UUID `json:"course_program_id" validate:"required"`
	CourseTitle       string    `json:"course_title" validate:"required,min=2,max=200"`
	CourseDescription *string   `json:"course_description" validate:"omitempty,max=5000"`
}

func (r *CourseCreateRequest) Normalize() {
	r.CourseTitle = strings.TrimSpace(r.CourseTitle)
	r.CourseDescription = trimPtr(r.CourseDescription)
}

func (r *CourseCreateRequest) ToModel(seq int) *model.CourseModel {
	return &model.CourseModel{
		CourseProgramID:     r.CourseProgramID,
		CourseTitle:         r.CourseTitle,
		CourseDescription:   r.CourseDescription,
		CourseSequenceOrder: seq,
		CourseStatus:        status.Draft,
	}
}

type CourseUpdateRequest struct {
	CourseTitle       *string `json:"course_title" validate:"omitempty,min=2,max=200"`
	CourseDescription *string `json:"course_description" validate:"omitempty,max=5000"`
}

func (r *CourseUpdateRequest) Normalize() {
	r.CourseTitle = trimPtr(r.CourseTitle)
	r.CourseDescription = trimPtr(r.CourseDescription)
}

func (r *CourseUpdateRequest) Apply(m *model.CourseModel) {
	if r.CourseTitle != nil {
		m.CourseTitle = *r.CourseTitle
	}
	if r.CourseDescription != nil {
		m.CourseDescription = r.CourseDescription
	}
}

type StatusChangeRequest struct {
	Status string `json:"status" validate:"required,oneof=draft published archived"`
}

// ReorderRequest carries the full intended ordering of one program's courses.
type ReorderRequest struct {
	ProgramID uuid.UUID   `json:"program_id" validate:"required"`
	CourseIDs []uuid.UUID `json:"course_ids" validate:"required,min=1"`
}

// ReassignRequest moves courses under a different program.
type ReassignRequest struct {
	TargetProgramID uuid.UUID   `json:"target_program_id" validate:"required"`
	CourseIDs       []uuid.UUID `json:"course_ids" validate:"required,min=1"`
}

/* =========================
   RESPONSE
   ========================= */

type CourseResponse struct {
	CourseID            uuid.UUID     `json:"course_id"`
	CourseProgramID     uuid.UUID     `json:"course_program_id"`
	CourseTitle         string        `json:"course_title"`
	CourseDescription   *string       `json:"course_description,omitempty"`
	CourseSequenceOrder int           `json:"course_sequence_order"`
	CourseStatus        status.Status `json:"course_status"`
	CourseCreatedAt     time.Time     `json:"course_created_at"`
	CourseUpdatedAt     time.Time     `json:"course_updated_at"`
}

func ToCourseResponse(m *model.CourseModel) CourseResponse {
	return CourseResponse{
		CourseID:            m.CourseID,
		CourseProgramID:     m.CourseProgramID,
		CourseTitle:         m.CourseTitle,
		CourseDescription:   m.CourseDescription,
		CourseSequenceOrder: m.CourseSequenceOrder,
		CourseStatus:        m.CourseStatus,
		CourseCreatedAt:     m.CourseCreatedAt,
		CourseUpdatedAt:     m.CourseUpdatedAt,
	}
}

func ToCourseResponses(models []model.CourseModel) []CourseResponse {
	out := make([]CourseResponse, 0, len(models))
	for i := range models {
		out = append(out, ToCourseResponse(&models[i]))
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
