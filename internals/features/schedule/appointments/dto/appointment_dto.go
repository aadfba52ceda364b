// internals/features/schedule/appointments/dto/appointment_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "elevencentral_backend/internals/features/schedule/appointments/model"
)

/* =========================
   REQUEST
   ========================= */

type AppointmentCreateRequest struct {
	AppointmentStaffUserID uuid.UUID `json:"appointment_staff_user_id" validate:"required"`
	AppointmentTitle       string    `json:"appointment_title" validate:"required,min=2,max=200"`
	AppointmentLocation    *string   `json:"appointment_location" validate:"omitempty,max=200"`
	AppointmentNotes       *string   `json:"appointment_notes" validate:"omitempty"`
	AppointmentStartsAt    time.Time `json:"appointment_starts_at" validate:"required"`
	AppointmentEndsAt      time.Time `json:"appointment_ends_at" validate:"required"`
}

func (r *AppointmentCreateRequest) Normalize() {
	r.AppointmentTitle = strings.TrimSpace(r.AppointmentTitle)
	r.AppointmentLocation = trimPtr(r.AppointmentLocation)
	r.AppointmentNotes = trimPtr(r.AppointmentNotes)
}

func (r *AppointmentCreateRequest) ToModel() *model.AppointmentModel {
	return &model.AppointmentModel{
		AppointmentStaffUserID: r.AppointmentStaffUserID,
		AppointmentTitle:       r.AppointmentTitle,
		AppointmentLocation:    r.AppointmentLocation,
		AppointmentNotes:       r.AppointmentNotes,
		AppointmentStartsAt:    r.AppointmentStartsAt,
		AppointmentEndsAt:      r.AppointmentEndsAt,
		AppointmentStatus:      model.AppointmentScheduled,
	}
}

type AppointmentUpdateRequest struct {
	AppointmentTitle    *string    `json:"appointment_title" validate:"omitempty,min=2,max=200"`
	AppointmentLocation *string    `json:"appointment_location" validate:"omitempty,max=200"`
	AppointmentNotes    *string    `json:"appointment_notes" validate:"omitempty"`
	AppointmentStartsAt *time.Time `json:"appointment_starts_at" validate:"omitempty"`
	AppointmentEndsAt   *time.Time `json:"appointment_ends_at" validate:"omitempty"`
}

func (r *AppointmentUpdateRequest) Normalize() {
	r.AppointmentTitle = trimPtr(r.AppointmentTitle)
	r.AppointmentLocation = trimPtr(r.AppointmentLocation)
	r.AppointmentNotes = trimPtr(r.AppointmentNotes)
}

func (r *AppointmentUpdateRequest) Apply(m *model.AppointmentModel) {
	if r.AppointmentTitle != nil {
		m.AppointmentTitle = *r.AppointmentTitle
	}
	if r.AppointmentLocation != nil {
		m.AppointmentLocation = r.AppointmentLocation
	}
	if r.AppointmentNotes != nil {
		m.AppointmentNotes = r.AppointmentNotes
	}
	if r.AppointmentStartsAt != nil {
		m.AppointmentStartsAt = *r.AppointmentStartsAt
	}
	if r.AppointmentEndsAt != nil {
		m.AppointmentEndsAt = *r.AppointmentEndsAt
	}
}

type AppointmentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=scheduled completed cancelled"`
}

/* =========================
   RESPONSE
   ========================= */

type AppointmentResponse struct {
	AppointmentID          uuid.UUID `json:"appointment_id"`
	AppointmentStaffUserID uuid.UUID `json:"appointment_staff_user_id"`
	AppointmentTitle       string    `json:"appointment_title"`
	AppointmentLocation    *string   `json:"appointment_location,omitempty"`
	AppointmentNotes       *string   `json:"appointment_notes,omitempty"`
	AppointmentStartsAt    time.Time `json:"appointment_starts_at"`
	AppointmentEndsAt      time.Time `json:"appointment_ends_at"`
	AppointmentStatus      string    `json:"appointment_status"`
	AppointmentCreatedAt   time.Time `json:"appointment_created_at"`
	AppointmentUpdatedAt   time.Time `json:"appointment_updated_at"`
}

func ToAppointmentResponse(m *model.AppointmentModel) AppointmentResponse {
	return AppointmentResponse{
		AppointmentID:          m.AppointmentID,
		AppointmentStaffUserID: m.AppointmentStaffUserID,
		AppointmentTitle:       m.AppointmentTitle,
		AppointmentLocation:    m.AppointmentLocation,
		AppointmentNotes:       m.AppointmentNotes,
		AppointmentStartsAt:    m.AppointmentStartsAt,
		AppointmentEndsAt:      m.AppointmentEndsAt,
		AppointmentStatus:      m.AppointmentStatus,
		AppointmentCreatedAt:   m.AppointmentCreatedAt,
		AppointmentUpdatedAt:   m.AppointmentUpdatedAt,
	}
}

func ToAppointmentResponses(models []model.AppointmentModel) []AppointmentResponse {
	out := make([]AppointmentResponse, 0, len(models))
	for i := range models {
		out = append(out, ToAppointmentResponse(&models[i]))
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
