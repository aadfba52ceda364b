// internals/features/gratuity/reports/model/gratuity_report_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// GratuityReportModel is one staff member's declared gratuity for a shift.
// Amounts are stored in cents to avoid float drift.
type GratuityReportModel struct {
	GratuityID          uuid.UUID      `gorm:"column:gratuity_id;type:uuid;primaryKey" json:"gratuity_id"`
	GratuityStaffUserID uuid.UUID      `gorm:"column:gratuity_staff_user_id;type:uuid;not null;index" json:"gratuity_staff_user_id"`
	GratuityShiftDate   time.Time      `gorm:"column:gratuity_shift_date;not null;index" json:"gratuity_shift_date"`
	GratuityVenueArea   *string        `gorm:"column:gratuity_venue_area;type:varchar(100)" json:"gratuity_venue_area,omitempty"`
	GratuityAmountCents int64          `gorm:"column:gratuity_amount_cents;not null" json:"gratuity_amount_cents"`
	GratuityBreakdown   datatypes.JSON `gorm:"column:gratuity_breakdown" json:"gratuity_breakdown,omitempty"`
	GratuityNotes       *string        `gorm:"column:gratuity_notes;type:text" json:"gratuity_notes,omitempty"`
	GratuityCreatedAt   time.Time      `gorm:"column:gratuity_created_at;autoCreateTime" json:"gratuity_created_at"`
	GratuityUpdatedAt   time.Time      `gorm:"column:gratuity_updated_at;autoUpdateTime" json:"gratuity_updated_at"`
}

func (GratuityReportModel) TableName() string {
	return "gratuity_reports"
}

func (m *GratuityReportModel) BeforeCreate(tx *gorm.DB) error {
	if m.GratuityID == uuid.Nil {
		m.GratuityID = uuid.New()
	}
	return nil
}
