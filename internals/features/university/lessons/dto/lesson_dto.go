// internals/features/university/lessons/dto/lesson_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "elevencentral_backend/internals/features/university/lessons/model"
	"elevencentral_backend/internals/features/university/status"
)

/* =========================
   REQUEST
   ========================= */

type LessonCreateRequest struct {
	LessonCourseID    uuid.UUID `json:"lesson_course_id" validate:"required"`
	LessonTitle       string    `json:"lesson_title" validate:"required,min=2,max=200"`
	LessonDescription *string   `json:"lesson_description" validate:"omitempty,max=5000"`
}

func (r *LessonCreateRequest) Normalize() {
	r.LessonTitle = strings.TrimSpace(r.LessonTitle)
	r.LessonDescription = trimPtr(r.LessonDescription)
}

func (r *LessonCreateRequest) ToModel(seq int) *model.LessonModel {
	return &model.LessonModel{
		LessonCourseID:      r.LessonCourseID,
		LessonTitle:         r.LessonTitle,
		LessonDescription:   r.LessonDescription,
		LessonSequenceOrder: seq,
		LessonStatus:        status.Draft,
	}
}

type LessonUpdateRequest struct {
	LessonTitle       *string `json:"lesson_title" validate:"omitempty,min=2,max=200"`
	LessonDescription *string `json:"lesson_description" validate:"omitempty,max=5000"`
}

func (r *LessonUpdateRequest) Normalize() {
	r.LessonTitle = trimPtr(r.LessonTitle)
	r.LessonDescription = trimPtr(r.LessonDescription)
}

func (r *LessonUpdateRequest) Apply(m *model.LessonModel) {
	if r.LessonTitle != nil {
		m.LessonTitle = *r.LessonTitle
	}
	if r.LessonDescription != nil {
		m.LessonDescription = r.LessonDescription
	}
}

type StatusChangeRequest struct {
	Status string `json:"status" validate:"required,oneof=draft published archived"`
}

type ReorderRequest struct {
	CourseID  uuid.UUID   `json:"course_id" validate:"required"`
	LessonIDs []uuid.UUID `json:"lesson_ids" validate:"required,min=1"`
}

type ReassignRequest struct {
	TargetCourseID uuid.UUID   `json:"target_course_id" validate:"required"`
	LessonIDs      []uuid.UUID `json:"lesson_ids" validate:"required,min=1"`
}

/* =========================
   RESPONSE
   ========================= */

type LessonResponse struct {
	LessonID            uuid.UUID     `json:"lesson_id"`
	LessonCourseID      uuid.UUID     `json:"lesson_course_id"`
	LessonTitle         string        `json:"lesson_title"`
	LessonDescription   *string       `json:"lesson_description,omitempty"`
	LessonSequenceOrder int           `json:"lesson_sequence_order"`
	LessonStatus        status.Status `json:"lesson_status"`
	LessonCreatedAt     time.Time     `json:"lesson_created_at"`
	LessonUpdatedAt     time.Time     `json:"lesson_updated_at"`
}

func ToLessonResponse(m *model.LessonModel) LessonResponse {
	return LessonResponse{
		LessonID:            m.LessonID,
		LessonCourseID:      m.LessonCourseID,
		LessonTitle:         m.LessonTitle,
		LessonDescription:   m.LessonDescription,
		LessonSequenceOrder: m.LessonSequenceOrder,
		LessonStatus:        m.LessonStatus,
		LessonCreatedAt:     m.LessonCreatedAt,
		LessonUpdatedAt:     m.LessonUpdatedAt,
	}
}

func ToLessonResponses(models []model.LessonModel) []LessonResponse {
	out := make([]LessonResponse, 0, len(models))
	for i := range models {
		out = append(out, ToLessonResponse(&models[i]))
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
