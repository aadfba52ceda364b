// internals/features/gratuity/reports/dto/gratuity_report_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	model "elevencentral_backend/internals/features/gratuity/reports/model"
)

/* =========================
   REQUEST
   ========================= */

type GratuityCreateRequest struct {
	GratuityStaffUserID uuid.UUID      `json:"gratuity_staff_user_id" validate:"required"`
	GratuityShiftDate   string         `json:"gratuity_shift_date" validate:"required,datetime=2006-01-02"`
	GratuityVenueArea   *string        `json:"gratuity_venue_area" validate:"omitempty,max=100"`
	GratuityAmountCents int64          `json:"gratuity_amount_cents" validate:"required,gt=0"`
	GratuityBreakdown   datatypes.JSON `json:"gratuity_breakdown" validate:"omitempty"`
	GratuityNotes       *string        `json:"gratuity_notes" validate:"omitempty"`
}

func (r *GratuityCreateRequest) Normalize() {
	r.GratuityShiftDate = strings.TrimSpace(r.GratuityShiftDate)
	r.GratuityVenueArea = trimPtr(r.GratuityVenueArea)
	r.GratuityNotes = trimPtr(r.GratuityNotes)
}

func (r *GratuityCreateRequest) ToModel() *model.GratuityReportModel {
	day, _ := time.Parse("2006-01-02", r.GratuityShiftDate)
	return &model.GratuityReportModel{
		GratuityStaffUserID: r.GratuityStaffUserID,
		GratuityShiftDate:   day,
		GratuityVenueArea:   r.GratuityVenueArea,
		GratuityAmountCents: r.GratuityAmountCents,
		GratuityBreakdown:   r.GratuityBreakdown,
		GratuityNotes:       r.GratuityNotes,
	}
}

type GratuityUpdateRequest struct {
	GratuityVenueArea   *string        `json:"gratuity_venue_area" validate:"omitempty,max=100"`
	GratuityAmountCents *int64         `json:"gratuity_amount_cents" validate:"omitempty,gt=0"`
	GratuityBreakdown   datatypes.JSON `json:"gratuity_breakdown" validate:"omitempty"`
	GratuityNotes       *string        `json:"gratuity_notes" validate:"omitempty"`
}

func (r *GratuityUpdateRequest) Apply(m *model.GratuityReportModel) {
	if r.GratuityVenueArea != nil {
		m.GratuityVenueArea = trimPtr(r.GratuityVenueArea)
	}
	if r.GratuityAmountCents != nil {
		m.GratuityAmountCents = *r.GratuityAmountCents
	}
	if len(r.GratuityBreakdown) > 0 {
		m.GratuityBreakdown = r.GratuityBreakdown
	}
	if r.GratuityNotes != nil {
		v := strings.TrimSpace(*r.GratuityNotes)
		if v == "" {
			m.GratuityNotes = nil
		} else {
			m.GratuityNotes = &v
		}
	}
}

/* =========================
   RESPONSE
   ========================= */

type GratuityResponse struct {
	GratuityID          uuid.UUID      `json:"gratuity_id"`
	GratuityStaffUserID uuid.UUID      `json:"gratuity_staff_user_id"`
	GratuityShiftDate   string         `json:"gratuity_shift_date"`
	GratuityVenueArea   *string        `json:"gratuity_venue_area,omitempty"`
	GratuityAmountCents int64          `json:"gratuity_amount_cents"`
	GratuityBreakdown   datatypes.JSON `json:"gratuity_breakdown,omitempty"`
	GratuityNotes       *string        `json:"gratuity_notes,omitempty"`
	GratuityCreatedAt   time.Time      `json:"gratuity_created_at"`
	GratuityUpdatedAt   time.Time      `json:"gratuity_updated_at"`
}

func ToGratuityResponse(m *model.GratuityReportModel) GratuityResponse {
	return GratuityResponse{
		GratuityID:          m.GratuityID,
		GratuityStaffUserID: m.GratuityStaffUserID,
		GratuityShiftDate:   m.GratuityShiftDate.Format("2006-01-02"),
		GratuityVenueArea:   m.GratuityVenueArea,
		GratuityAmountCents: m.GratuityAmountCents,
		GratuityBreakdown:   m.GratuityBreakdown,
		GratuityNotes:       m.GratuityNotes,
		GratuityCreatedAt:   m.GratuityCreatedAt,
		GratuityUpdatedAt:   m.GratuityUpdatedAt,
	}
}

func ToGratuityResponses(models []model.GratuityReportModel) []GratuityResponse {
	out := make([]GratuityResponse, 0, len(models))
	for i := range models {
		out = append(out, ToGratuityResponse(&models[i]))
	}
	return out
}

// GratuitySummary is the aggregation row returned by the summary endpoint.
type GratuitySummary struct {
	StaffUserID uuid.UUID `json:"staff_user_id"`
	ReportCount int64     `json:"report_count"`
	TotalCents  int64     `json:"total_cents"`
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
