package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"elevencentral_backend/internals/features/university/status"
)

/* =======================================================
   courses
======================================================= */

type CourseModel struct {
	CourseID        uuid.UUID `json:"course_id" gorm:"column:course_id;type:uuid;primaryKey"`
	CourseProgramID uuid.UUID `json:"course_program_id" gorm:"column:course_program_id;type:uuid;not null;index:idx_courses_program"`

	CourseTitle       string  `json:"course_title" gorm:"column:course_title;type:varchar(200);not null"`
	CourseDescription *string `json:"course_description,omitempty" gorm:"column:course_description;type:text"`

	// dense 1..N rank among siblings of the same program; repaired on
	// demand by the sequence normalizer, not enforced by a constraint
	CourseSequenceOrder int `json:"course_sequence_order" gorm:"column:course_sequence_order;not null;default:1"`

	CourseStatus status.Status `json:"course_status" gorm:"column:course_status;type:varchar(20);not null;default:'draft'"`

	CourseCreatedAt time.Time `json:"course_created_at" gorm:"column:course_created_at;not null;autoCreateTime"`
	CourseUpdatedAt time.Time `json:"course_updated_at" gorm:"column:course_updated_at;not null;autoUpdateTime"`
}

func (CourseModel) TableName() string { return "courses" }

func (m *CourseModel) BeforeCreate(tx *gorm.DB) error {
	if m.CourseID == uuid.Nil {
		m.CourseID = uuid.New()
	}
	if m.CourseStatus == "" {
		m.CourseStatus = status.Draft
	}
	return nil
}
