package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"elevencentral_backend/internals/features/university/status"
)

/* =======================================================
   lessons
======================================================= */

type LessonModel struct {
	LessonID       uuid.UUID `json:"lesson_id" gorm:"column:lesson_id;type:uuid;primaryKey"`
	LessonCourseID uuid.UUID `json:"lesson_course_id" gorm:"column:lesson_course_id;type:uuid;not null;index:idx_lessons_course"`

	LessonTitle       string  `json:"lesson_title" gorm:"column:lesson_title;type:varchar(200);not null"`
	LessonDescription *string `json:"lesson_description,omitempty" gorm:"column:lesson_description;type:text"`

	LessonSequenceOrder int `json:"lesson_sequence_order" gorm:"column:lesson_sequence_order;not null;default:1"`

	LessonStatus status.Status `json:"lesson_status" gorm:"column:lesson_status;type:varchar(20);not null;default:'draft'"`

	LessonCreatedAt time.Time `json:"lesson_created_at" gorm:"column:lesson_created_at;not null;autoCreateTime"`
	LessonUpdatedAt time.Time `json:"lesson_updated_at" gorm:"column:lesson_updated_at;not null;autoUpdateTime"`
}

func (LessonModel) TableName() string { return "lessons" }

func (m *LessonModel) BeforeCreate(tx *gorm.DB) error {
	if m.LessonID == uuid.Nil {
		m.LessonID = uuid.New()
	}
	if m.LessonStatus == "" {
		m.LessonStatus = status.Draft
	}
	return nil
}
