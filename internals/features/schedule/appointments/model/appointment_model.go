// internals/features/schedule/appointments/model/appointment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	AppointmentScheduled = "scheduled"
	AppointmentCompleted = "completed"
	AppointmentCancelled = "cancelled"
)

type AppointmentModel struct {
	AppointmentID          uuid.UUID  `gorm:"column:appointment_id;type:uuid;primaryKey" json:"appointment_id"`
	AppointmentStaffUserID uuid.UUID  `gorm:"column:appointment_staff_user_id;type:uuid;not null;index" json:"appointment_staff_user_id"`
	AppointmentTitle       string     `gorm:"column:appointment_title;type:varchar(200);not null" json:"appointment_title"`
	AppointmentLocation    *string    `gorm:"column:appointment_location;type:varchar(200)" json:"appointment_location,omitempty"`
	AppointmentNotes       *string    `gorm:"column:appointment_notes;type:text" json:"appointment_notes,omitempty"`
	AppointmentStartsAt    time.Time  `gorm:"column:appointment_starts_at;not null;index" json:"appointment_starts_at"`
	AppointmentEndsAt      time.Time  `gorm:"column:appointment_ends_at;not null" json:"appointment_ends_at"`
	AppointmentStatus      string     `gorm:"column:appointment_status;type:varchar(20);not null;default:scheduled" json:"appointment_status"`
	AppointmentCreatedAt   time.Time  `gorm:"column:appointment_created_at;autoCreateTime" json:"appointment_created_at"`
	AppointmentUpdatedAt   time.Time  `gorm:"column:appointment_updated_at;autoUpdateTime" json:"appointment_updated_at"`
	AppointmentDeletedAt   *time.Time `gorm:"column:appointment_deleted_at;index" json:"-"`
}

func (AppointmentModel) TableName() string {
	return "appointments"
}

func (m *AppointmentModel) BeforeCreate(tx *gorm.DB) error {
	if m.AppointmentID == uuid.Nil {
		m.AppointmentID = uuid.New()
	}
	if m.AppointmentStatus == "" {
		m.AppointmentStatus = AppointmentScheduled
	}
	return nil
}

func ValidAppointmentStatus(s string) bool {
	switch s {
	case AppointmentScheduled, AppointmentCompleted, AppointmentCancelled:
		return true
	}
	return false
}
